package lang

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
)

// FromNative converts a tree of native Go values, as produced by the JSON and
// YAML decoders, to a [Value].
//
// Maps must be keyed by strings (or by values with a string form, as YAML
// allows). Numbers of any Go numeric type and [json.Number] become [Number].
func FromNative(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil

	case Value:
		return v, nil

	case string:
		return String(v), nil

	case bool:
		return Bool(v), nil

	case json.Number:
		return Number(v.String()), nil

	case int:
		return Number(strconv.Itoa(v)), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Number(fmt.Sprint(v)), nil

	case float32:
		return Number(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return Number(strconv.FormatFloat(v, 'g', -1, 64)), nil

	case *big.Int:
		return Number(v.String()), nil

	case []any:
		out := make(Array, len(v))

		for i, elem := range v {
			val, err := FromNative(elem)
			if err != nil {
				return nil, err
			}

			out[i] = val
		}

		return out, nil

	case []string:
		out := make(Array, len(v))
		for i, elem := range v {
			out[i] = String(elem)
		}

		return out, nil

	case map[string]any:
		out := make(Object, len(v))

		for key, elem := range v {
			val, err := FromNative(elem)
			if err != nil {
				return nil, err
			}

			out[key] = val
		}

		return out, nil

	case map[string]string:
		out := make(Object, len(v))
		for key, elem := range v {
			out[key] = String(elem)
		}

		return out, nil

	case map[any]any:
		out := make(Object, len(v))

		for key, elem := range v {
			val, err := FromNative(elem)
			if err != nil {
				return nil, err
			}

			out[fmt.Sprint(key)] = val
		}

		return out, nil

	default:
		return nil, ErrInvalidValue.With(
			slog.String("type", fmt.Sprintf("%T", v)),
		)
	}
}

// ToNative converts a [Value] to native Go values suitable for encoding.
// Numbers become int64 when they are decimal integers, float64 when they are
// other JSON numbers, and otherwise keep their source text.
func ToNative(v Value) any {
	switch v := v.(type) {
	case Object:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = ToNative(elem)
		}

		return out

	case Array:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = ToNative(elem)
		}

		return out

	case String:
		return string(v)

	case Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i
		}

		// Only JSON number syntax; hex, underscores, and Inf keep their text.
		if json.Valid([]byte(v)) {
			if f, err := strconv.ParseFloat(string(v), 64); err == nil {
				return f
			}
		}

		return string(v)

	case Bool:
		return bool(v)

	default:
		return nil
	}
}

// MarshalJSON implements [json.Marshaler].
func (o Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]Value(o))
}

// MarshalJSON implements [json.Marshaler].
func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]Value(a))
}

// MarshalJSON implements [json.Marshaler]. The source text is emitted
// verbatim when it is a valid JSON number, otherwise it is quoted.
func (n Number) MarshalJSON() ([]byte, error) {
	if json.Valid([]byte(n)) {
		return []byte(n), nil
	}

	return json.Marshal(string(n))
}

// MarshalJSON implements [json.Marshaler].
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
