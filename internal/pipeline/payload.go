package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Accessors over untyped JSON (map[string]any / []any / json.Number).
// Every failure is a *MappingError carrying the path of the bad value.

// Object asserts that v is a JSON object.
func Object(v any, path string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &MappingError{Path: path, Reason: fmt.Sprintf("expected object, got %s", typeName(v))}
	}
	return obj, nil
}

// List asserts that v is a JSON array.
func List(v any, path string) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, &MappingError{Path: path, Reason: fmt.Sprintf("expected list, got %s", typeName(v))}
	}
	return list, nil
}

// ObjectField reads a required nested object.
func ObjectField(obj map[string]any, key, path string) (map[string]any, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	return Object(v, JoinPath(path, key))
}

// ListField reads a required nested array.
func ListField(obj map[string]any, key, path string) ([]any, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return nil, err
	}
	return List(v, JoinPath(path, key))
}

// StringField reads a required string.
func StringField(obj map[string]any, key, path string) (string, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &MappingError{Path: JoinPath(path, key), Reason: fmt.Sprintf("expected string, got %s", typeName(v))}
	}
	return s, nil
}

// IntField reads a required integral number.
func IntField(obj map[string]any, key, path string) (int64, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return 0, err
	}

	p := JoinPath(path, key)
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return i, nil
		}
		// integral values written as 1.0 or 1e0
		f, err := n.Float64()
		if err != nil || !isIntegral(f) {
			return 0, &MappingError{Path: p, Reason: fmt.Sprintf("expected integer, got %s", n)}
		}
		return int64(f), nil
	case float64:
		if !isIntegral(n) {
			return 0, &MappingError{Path: p, Reason: fmt.Sprintf("expected integer, got %v", n)}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, &MappingError{Path: p, Reason: fmt.Sprintf("expected integer, got %s", typeName(v))}
	}
}

// isIntegral reports whether f has no fractional part and fits in an int64.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// NumberField reads a required number.
func NumberField(obj map[string]any, key, path string) (float64, error) {
	v, err := field(obj, key, path)
	if err != nil {
		return 0, err
	}

	p := JoinPath(path, key)
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &MappingError{Path: p, Reason: fmt.Sprintf("expected number, got %s", n)}
		}
		return f, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, &MappingError{Path: p, Reason: fmt.Sprintf("expected number, got %s", typeName(v))}
	}
}

// JoinPath appends key to a dotted path.
func JoinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// IndexPath appends an array index to a path.
func IndexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func field(obj map[string]any, key, path string) (any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, &MappingError{Path: JoinPath(path, key), Reason: "missing field"}
	}
	if v == nil {
		return nil, &MappingError{Path: JoinPath(path, key), Reason: "null value"}
	}
	return v, nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
