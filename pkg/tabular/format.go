package tabular

import (
	"strconv"
	"time"
)

// Format renders a cell value for display. Missing values render empty.
func Format(v any) string {
	if IsMissing(v) {
		return ""
	}

	v = deref(v)
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.Format(time.DateTime)
	default:
		return text(t)
	}
}
