package random

import (
	"github.com/bytedance/gopkg/lang/fastrand"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandStr(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = charset[fastrand.Intn(len(charset))]
	}
	return string(b)
}
