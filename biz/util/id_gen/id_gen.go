package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"stock_tracker/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var hostSuffix = ip.IPv4Hex() + strconv.FormatUint(uint64(os.Getpid()), 10)

// NewID builds a request-scoped log id: timestamp + host + pid + random tail.
func NewID() string {
	sb := strings.Builder{}
	sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
	sb.WriteString(hostSuffix)
	sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
	return sb.String()
}
