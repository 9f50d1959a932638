package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var errNotWrapped = errors.New("not a schema-wrapped value")

// ParseStringAs parses content into a value of type T.
//
// Strings, bools, signed and unsigned integers and floats are converted
// directly with strconv; when that fails and content is a schema envelope
// such as {"type":"number","value":3}, the inner value is used instead.
// Every other kind is decoded as JSON. Malformed JSON is passed through
// jsonrepair and decoded again, and as a last step schema envelopes nested
// anywhere in the document are unwrapped.
//
// Example usage:
//
//	type Request struct {
//	    A  float64 `json:"A"`
//	    B  float64 `json:"B"`
//	    Op string  `json:"Op"`
//	}
//
//	req, err := ParseStringAs[Request](`{"A": 3, "B": 5, "Op": "add"}`)
//
//	// Unquoted keys and single quotes are repaired
//	req, err = ParseStringAs[Request](`{A: 3, B: 5, Op: 'add'}`)
//
//	n, err := ParseStringAs[float64]("2.5")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		if strings.HasPrefix(content, "{") {
			if unwrapped, err := unwrapPrimitive(content); err == nil {
				target.SetString(unwrapped)
				return result, nil
			}
		}
		target.SetString(content)
		return result, nil

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		err := setPrimitive(target, content)
		if err == nil {
			return result, nil
		}
		if unwrapped, unwrapErr := unwrapPrimitive(content); unwrapErr == nil {
			if retryErr := setPrimitive(target, unwrapped); retryErr == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("failed to parse content as %s: %w", target.Kind(), err)

	default:
		return parseJSON[T](content)
	}
}

// setPrimitive converts s according to the kind of v and stores it.
func setPrimitive(v reflect.Value, s string) error {
	s = strings.TrimSpace(s)
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}

// parseJSON decodes content into T, repairing and unwrapping as needed.
func parseJSON[T any](content string) (T, error) {
	var result T
	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	err = json.Unmarshal([]byte(repaired), &result)
	if err == nil {
		return result, nil
	}

	// Schema-shaped data: {"A": {"type": "number", "value": 3}}
	if unwrapped, unwrapErr := unwrapSchemaValues(repaired); unwrapErr == nil {
		var retry T
		if json.Unmarshal([]byte(unwrapped), &retry) == nil {
			return retry, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repaired)
}

// unwrapPrimitive returns the string form of the value held by a top-level
// {"type": ..., "value": ...} envelope.
func unwrapPrimitive(content string) (string, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}

	value, ok := envelopeValue(data)
	if !ok {
		return "", errNotWrapped
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// unwrapSchemaValues rewrites every schema envelope in jsonStr with the value
// it carries.
//
//	{"A": {"type": "number", "value": 3}, "Op": {"type": "string", "value": "add"}}
//
// becomes
//
//	{"A": 3, "Op": "add"}
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	raw, err := json.Marshal(unwrapRecursive(data))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unwrapRecursive(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if inner, ok := envelopeValue(v); ok {
			return unwrapRecursive(inner)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrapRecursive(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrapRecursive(val)
		}
		return out
	default:
		return data
	}
}

// envelopeValue reports whether m is exactly {"type": ..., "value": ...}.
func envelopeValue(m map[string]any) (any, bool) {
	if len(m) != 2 {
		return nil, false
	}
	if _, hasType := m["type"]; !hasType {
		return nil, false
	}
	value, hasValue := m["value"]
	return value, hasValue
}
