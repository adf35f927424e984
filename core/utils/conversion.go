package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts loosely typed values (JSON numbers, strings, bytes) to int.
// Values that cannot be parsed yield 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	case nil:
		return 0
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}

// ToIntOr is ToInt with a fallback for empty or unparsable input.
func ToIntOr(val any, def int) int {
	if s, ok := val.(string); ok {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return def
		}
	}
	if val == nil {
		return def
	}
	return ToInt(val)
}

// ToString converts various types to string. Nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "si").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32, float64:
		return ToInt(v) == 1
	case string:
		return isTruthy(v)
	case []byte:
		return isTruthy(string(v))
	default:
		return false
	}
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "si", "sí":
		return true
	default:
		return false
	}
}
