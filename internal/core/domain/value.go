package domain

import (
	"fmt"
	"strconv"
	"time"
)

// SQLite's own text layouts for date and time values. UTC values carry
// no offset, so a stored "2024-01-02 03:04:05" renders unchanged.
const (
	sqliteTimeUTC    = "2006-01-02 15:04:05.999999999"
	sqliteTimeOffset = "2006-01-02 15:04:05.999999999-07:00"
)

// FormatValue renders a driver value as text.
// NULL becomes the empty string and blobs are returned as raw text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Location() == time.UTC {
			return val.Format(sqliteTimeUTC)
		}
		return val.Format(sqliteTimeOffset)
	default:
		return fmt.Sprint(val)
	}
}
