// Package protocol defines the wire shapes of the GenUI operation stream
// and decodes them into validated, typed operations.
//
// An operation arrives as a single-key JSON envelope naming the operation,
// e.g. {"surfaceUpdate": {...}}. Decoding is strict: a structurally malformed
// operation (missing required field, unknown discriminator) produces a typed
// *errors.ParseError and no operation, so the processor never sees it.
package protocol

import "encoding/json"

// MessageCodec encodes and decodes messages on the operation stream.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission.
	Encode(value any) ([]byte, error)

	// Decode converts received bytes to a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding.
// JSON prioritizes interoperability and minimal host dependencies.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used to decode the operation stream.
var DefaultCodec MessageCodec = JsonCodec{}
