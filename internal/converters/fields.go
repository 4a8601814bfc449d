package converters

import (
	"encoding/json"
	"fmt"
	"time"
)

// FieldError reports a document field that is missing or has the wrong type
type FieldError struct {
	Path    string
	Problem string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Problem)
}

func fieldErr(path, problem string) error {
	return &FieldError{Path: path, Problem: problem}
}

// asObject asserts that v is a JSON object
func asObject(path string, v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fieldErr(path, "must be an object")
	}
	return obj, nil
}

// stringField reads a string field. Revived timestamps give back their raw text.
func stringField(obj map[string]any, path, key string, required bool) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		if required {
			return "", fieldErr(path+"."+key, "is required")
		}
		return "", nil
	}

	switch val := v.(type) {
	case string:
		return val, nil
	case RevivedTime:
		return val.Raw, nil
	default:
		return "", fieldErr(path+"."+key, "must be a string")
	}
}

// timeField reads a required timestamp field
func timeField(obj map[string]any, path, key string) (time.Time, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return time.Time{}, fieldErr(path+"."+key, "is required")
	}

	rt, ok := v.(RevivedTime)
	if !ok {
		return time.Time{}, fieldErr(path+"."+key, "must be an ISO-8601 timestamp")
	}
	return rt.Time, nil
}

// countField reads an optional non-negative integer field
func countField(obj map[string]any, path, key string) (int, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0, nil
	}

	var n int64
	switch val := v.(type) {
	case json.Number:
		parsed, err := val.Int64()
		if err != nil {
			return 0, fieldErr(path+"."+key, "must be an integer")
		}
		n = parsed
	case float64:
		if val != float64(int64(val)) {
			return 0, fieldErr(path+"."+key, "must be an integer")
		}
		n = int64(val)
	default:
		return 0, fieldErr(path+"."+key, "must be a number")
	}

	if n < 0 {
		return 0, fieldErr(path+"."+key, "cannot be negative")
	}
	return int(n), nil
}
