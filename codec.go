package secretval

import (
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// Codec converts values of type V to and from the stored byte payload.
// Encode may return a nil slice without error to signal "no value",
// which makes Set remove the item instead of storing.
type Codec[V any] interface {
	Encode(value V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// StringCodec stores a string as its raw UTF-8 bytes. The empty string
// encodes to an empty, non-nil slice, so setting "" stores a zero-length
// item rather than deleting.
type StringCodec struct{}

func (StringCodec) Encode(value string) ([]byte, error) {
	return []byte(value), nil
}

func (StringCodec) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("stored bytes are not valid UTF-8")
	}
	return string(data), nil
}

// JSONCodec serializes V through encoding/json. It is the recommended
// codec for any non-string value.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (JSONCodec[V]) Decode(data []byte) (V, error) {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}
