package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// appendValue writes the locale-invariant string form of v into buf.
// Common types go through strconv so that output never depends on the
// process locale; everything else falls back to fmt's %v.
func appendValue(buf *bytes.Buffer, v any) {
	switch x := v.(type) {
	case nil:
		buf.WriteString("<nil>")
	case string:
		buf.WriteString(x)
	case []byte:
		buf.Write(x)
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case int:
		buf.WriteString(strconv.Itoa(x))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(x, 10))
	case float32:
		buf.WriteString(strconv.FormatFloat(float64(x), 'f', -1, 32))
	case float64:
		buf.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	case time.Duration:
		buf.WriteString(x.String())
	case time.Time:
		buf.WriteString(x.Format(time.RFC3339))
	case error:
		buf.WriteString(x.Error())
	case fmt.Stringer:
		buf.WriteString(x.String())
	default:
		fmt.Fprintf(buf, "%v", x)
	}
}
