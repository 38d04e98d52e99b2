package zanox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Items normalizes the API's collection shapes: a single object, an
// array, null, or an empty string all decode to a slice.
type Items[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (i *Items[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte(`""`)):
		*i = nil

		return nil
	case data[0] == '[':
		var items []T

		err := json.Unmarshal(data, &items)
		if err != nil {
			return err //nolint:wrapcheck // keeps ParseError unwrapped
		}

		*i = items

		return nil
	default:
		var item T

		err := json.Unmarshal(data, &item)
		if err != nil {
			return err //nolint:wrapcheck // keeps ParseError unwrapped
		}

		*i = Items[T]{item}

		return nil
	}
}

// Strings decodes either a single string or an array of strings.
type Strings []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Strings) UnmarshalJSON(data []byte) error {
	var items Items[string]

	err := items.UnmarshalJSON(data)
	if err != nil {
		return fmt.Errorf("decoding strings: %w", err)
	}

	*s = Strings(items)

	return nil
}

// ID is an integer identifier the API renders as a number or a numeric string.
type ID int

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	n, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("decoding identifier: %w", err)
	}

	*id = ID(int(n))

	return nil
}

// Number is a decimal the API renders as a number or a numeric string.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	value, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}

	*n = Number(value)

	return nil
}

func parseNumber(data []byte) (float64, error) {
	text := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if text == "" || text == "null" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrUnexpectedShape, text)
	}

	return value, nil
}

// fields is a decoded JSON object used to check key presence before decoding.
type fields map[string]json.RawMessage

func decodeFields(resource string, data []byte) (fields, error) {
	var obj fields

	err := json.Unmarshal(data, &obj)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", resource, err)
	}

	return obj, nil
}

func (f fields) has(key string) bool {
	raw, ok := f[key]

	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (f fields) require(resource string, keys ...string) error {
	var missing []string

	for _, key := range keys {
		if !f.has(key) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return &ParseError{Resource: resource, Missing: missing}
	}

	return nil
}

// Envelope is a decoded list response.
type Envelope[T any] struct {
	Total int
	Items []T
}

// DecodeEnvelope reads the top-level total and the items nested under
// wrapperKey.itemKey. A missing wrapper yields no items; a missing total
// is a *ParseError.
func DecodeEnvelope[T any](body []byte, wrapperKey, itemKey string) (*Envelope[T], error) {
	var top fields

	err := json.Unmarshal(body, &top)
	if err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}

	err = top.require("envelope", "total")
	if err != nil {
		return nil, err
	}

	var total Number

	err = json.Unmarshal(top["total"], &total)
	if err != nil {
		return nil, fmt.Errorf("decoding total: %w", err)
	}

	envelope := &Envelope[T]{Total: int(total)}

	wrapper, ok := top[wrapperKey]
	if !ok {
		return envelope, nil
	}

	items, err := decodeNested[T](wrapper, itemKey)
	if err != nil {
		return nil, err
	}

	envelope.Items = items

	return envelope, nil
}

// decodeNested reads key out of an object; arrays of objects contribute the
// key of their first element, and empty strings or nulls yield nothing.
func decodeNested[T any](data json.RawMessage, key string) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	if data[0] == '[' {
		var wrappers []fields

		err := json.Unmarshal(data, &wrappers)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}

		if len(wrappers) == 0 {
			return nil, nil
		}

		return decodeKey[T](wrappers[0], key)
	}

	var wrapper fields

	err := json.Unmarshal(data, &wrapper)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}

	return decodeKey[T](wrapper, key)
}

func decodeKey[T any](wrapper fields, key string) ([]T, error) {
	raw, ok := wrapper[key]
	if !ok {
		return nil, nil
	}

	var items Items[T]

	err := json.Unmarshal(raw, &items)
	if err != nil {
		return nil, err //nolint:wrapcheck // keeps ParseError unwrapped
	}

	return items, nil
}

// DecodeItem reads the first element under itemKey of a single-item
// response. It returns nil when the key is absent or when its first
// element is null or an empty object.
func DecodeItem[T any](body []byte, itemKey string) (*T, error) {
	var top fields

	err := json.Unmarshal(body, &top)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	raw, ok := top[itemKey]
	if !ok {
		return nil, nil
	}

	var elements Items[json.RawMessage]

	err = json.Unmarshal(raw, &elements)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", itemKey, err)
	}

	if len(elements) == 0 || isEmptyItem(elements[0]) {
		return nil, nil
	}

	var item T

	err = json.Unmarshal(elements[0], &item)
	if err != nil {
		return nil, err //nolint:wrapcheck // keeps ParseError unwrapped
	}

	return &item, nil
}

func isEmptyItem(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}

	if raw[0] != '{' {
		return false
	}

	var obj fields

	return json.Unmarshal(raw, &obj) == nil && len(obj) == 0
}
