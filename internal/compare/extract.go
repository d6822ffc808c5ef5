package compare

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Device specs come from jsonb columns and spreadsheet imports, so a block may
// be a decoded map, raw JSON bytes, a stringified JSON object, or missing
// entirely. Every extractor tolerates all of those and falls back to a neutral
// default instead of propagating nil or NaN.

func asSpecMap(v interface{}) map[string]interface{} {
	switch t := v.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		return t
	case []byte:
		return parseSpecJSON(t)
	case json.RawMessage:
		return parseSpecJSON(t)
	case string:
		return parseSpecJSON([]byte(t))
	default:
		return map[string]interface{}{}
	}
}

func parseSpecJSON(raw []byte) map[string]interface{} {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &m); err == nil && m != nil {
		return m
	}
	// Double-encoded blocks show up from older imports: a JSON string whose
	// content is itself a JSON object.
	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
		if err := json.Unmarshal([]byte(s), &m); err == nil && m != nil {
			return m
		}
	}
	return map[string]interface{}{}
}

// lookupString tries each key in order; the first non-empty string wins. A map
// value is searched one level deep for a nested name-like field.
func lookupString(spec map[string]interface{}, keys ...string) (string, bool) {
	for _, key := range keys {
		v, ok := spec[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s, true
			}
		case map[string]interface{}:
			for _, nested := range []string{"name", "model", "text", "value"} {
				if s, ok := t[nested].(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s), true
				}
			}
		}
	}
	return "", false
}

var leadingNumberRe = regexp.MustCompile(`-?\d+(\.\d+)?`)

// lookupNumber tries each key in order and coerces the first usable value.
// Strings with unit suffixes ("120Hz", "5000 mAh", "50MP") parse by their
// leading number.
func lookupNumber(spec map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := spec[key]
		if !ok {
			continue
		}
		if f, ok := coerceNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

func coerceNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		match := leadingNumberRe.FindString(t)
		if match == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(match, 64)
		return f, err == nil
	case map[string]interface{}:
		for _, nested := range []string{"value", "mp", "mah", "capacity", "count"} {
			if inner, ok := t[nested]; ok {
				if f, ok := coerceNumber(inner); ok {
					return f, true
				}
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// lookupList returns the length of the first array-valued key, for counting
// rear camera sensor entries.
func lookupListLen(spec map[string]interface{}, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := spec[key]
		if !ok {
			continue
		}
		if arr, ok := v.([]interface{}); ok && len(arr) > 0 {
			return len(arr), true
		}
	}
	return 0, false
}
