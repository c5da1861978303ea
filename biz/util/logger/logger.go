package logger

import (
	"context"
	"io"

	"stock_tracker/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init installs the logrus-backed logger as the hlog implementation.
func Init() {
	l := NewLogger()
	l.SetOutput(newOutput())
	l.SetLevel(newLevel())
	hlog.SetLogger(l)
}

var _ hlog.FullLogger = (*Logger)(nil)

type Logger struct {
	l *logrus.Logger
}

func NewLogger() *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{l: l}
}

func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}

func (lg *Logger) SetLevel(lv hlog.Level) {
	lg.l.SetLevel(logrusLevel(lv))
}

// entry attaches the request log id when one is carried by the context.
func (lg *Logger) entry(ctx context.Context) *logrus.Entry {
	if logId := trace_info.GetLogId(ctx); logId != "" {
		return lg.l.WithField("log_id", logId)
	}
	return logrus.NewEntry(lg.l)
}

func (lg *Logger) Trace(v ...interface{})  { lg.l.Trace(v...) }
func (lg *Logger) Debug(v ...interface{})  { lg.l.Debug(v...) }
func (lg *Logger) Info(v ...interface{})   { lg.l.Info(v...) }
func (lg *Logger) Notice(v ...interface{}) { lg.l.Warn(v...) }
func (lg *Logger) Warn(v ...interface{})   { lg.l.Warn(v...) }
func (lg *Logger) Error(v ...interface{})  { lg.l.Error(v...) }
func (lg *Logger) Fatal(v ...interface{})  { lg.l.Fatal(v...) }

func (lg *Logger) Tracef(format string, v ...interface{})  { lg.l.Tracef(format, v...) }
func (lg *Logger) Debugf(format string, v ...interface{})  { lg.l.Debugf(format, v...) }
func (lg *Logger) Infof(format string, v ...interface{})   { lg.l.Infof(format, v...) }
func (lg *Logger) Noticef(format string, v ...interface{}) { lg.l.Warnf(format, v...) }
func (lg *Logger) Warnf(format string, v ...interface{})   { lg.l.Warnf(format, v...) }
func (lg *Logger) Errorf(format string, v ...interface{})  { lg.l.Errorf(format, v...) }
func (lg *Logger) Fatalf(format string, v ...interface{})  { lg.l.Fatalf(format, v...) }

func (lg *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Tracef(format, v...)
}

func (lg *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Debugf(format, v...)
}

func (lg *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Errorf(format, v...)
}

func (lg *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Fatalf(format, v...)
}

func logrusLevel(lv hlog.Level) logrus.Level {
	switch lv {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo:
		return logrus.InfoLevel
	case hlog.LevelNotice, hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.TraceLevel
}
