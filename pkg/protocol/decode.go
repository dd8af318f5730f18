package protocol

import (
	"github.com/go-drift/genui/pkg/errors"
)

// DecodeOperation decodes one JSON-encoded operation envelope.
// The envelope is a single-key object naming the operation:
//
//	{"surfaceUpdate": {"surfaceId": "s1", "components": [...]}}
//
// A malformed envelope returns a *errors.ParseError and no operation.
func DecodeOperation(data []byte) (Operation, error) {
	decoded, err := DefaultCodec.Decode(data)
	if err != nil {
		return nil, &errors.ParseError{Field: "operation", Want: "JSON object", Got: string(data)}
	}
	envelope, ok := decoded.(map[string]any)
	if !ok {
		return nil, &errors.ParseError{Field: "operation", Want: "JSON object", Got: decoded}
	}
	return ParseOperation(envelope)
}

// ParseOperation validates a decoded envelope and returns the typed
// operation. Validation is complete before the operation is returned, so
// callers may apply the result without re-checking structure.
func ParseOperation(envelope map[string]any) (Operation, error) {
	if len(envelope) != 1 {
		return nil, &errors.ParseError{Field: "operation", Want: "single-key envelope", Got: envelope}
	}
	for name, body := range envelope {
		fields, ok := body.(map[string]any)
		if !ok {
			return nil, &errors.ParseError{Field: name, Want: "object", Got: body}
		}
		switch name {
		case OpBeginRendering:
			return parseBeginRendering(fields)
		case OpSurfaceUpdate:
			return parseSurfaceUpdate(fields)
		case OpDataModelUpdate:
			return parseDataModelUpdate(fields)
		case OpDeleteSurface:
			return parseDeleteSurface(fields)
		default:
			return nil, &errors.ParseError{Field: "operation", Want: "known operation name", Got: name}
		}
	}
	return nil, &errors.ParseError{Field: "operation", Want: "single-key envelope", Got: envelope}
}

func parseBeginRendering(fields map[string]any) (Operation, error) {
	surface, err := requireString(fields, "surfaceId")
	if err != nil {
		return nil, err
	}
	root, err := requireString(fields, "root")
	if err != nil {
		return nil, err
	}
	op := &BeginRendering{
		Surface:   surface,
		Root:      root,
		CatalogID: optionalString(fields, "catalogId"),
	}
	if raw, present := fields["styles"]; present {
		styles, ok := raw.(map[string]any)
		if !ok {
			return nil, &errors.ParseError{Field: "styles", Want: "object", Got: raw}
		}
		op.Styles = styles
	}
	return op, nil
}

func parseSurfaceUpdate(fields map[string]any) (Operation, error) {
	surface, err := requireString(fields, "surfaceId")
	if err != nil {
		return nil, err
	}
	raw, present := fields["components"]
	if !present {
		return nil, &errors.ParseError{Field: "components", Want: "array", Got: nil}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &errors.ParseError{Field: "components", Want: "array", Got: raw}
	}
	components := make([]Component, 0, len(list))
	for _, item := range list {
		component, err := parseComponent(item)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return &SurfaceUpdate{Surface: surface, Components: components}, nil
}

func parseComponent(raw any) (Component, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return Component{}, &errors.ParseError{Field: "components[]", Want: "object", Got: raw}
	}
	id, err := requireString(fields, "id")
	if err != nil {
		return Component{}, err
	}
	typeTag, err := requireString(fields, "type")
	if err != nil {
		return Component{}, err
	}
	component := Component{ID: id, Type: typeTag}
	if props, present := fields["properties"]; present {
		m, ok := props.(map[string]any)
		if !ok {
			return Component{}, &errors.ParseError{Field: "properties", Want: "object", Got: props}
		}
		component.Properties = m
	}
	if weight, present := fields["weight"]; present {
		n, ok := toInt(weight)
		if !ok {
			return Component{}, &errors.ParseError{Field: "weight", Want: "integer", Got: weight}
		}
		component.Weight = n
	}
	return component, nil
}

func parseDataModelUpdate(fields map[string]any) (Operation, error) {
	surface, err := requireString(fields, "surfaceId")
	if err != nil {
		return nil, err
	}
	raw, present := fields["contents"]
	if !present {
		return nil, &errors.ParseError{Field: "contents", Want: "array", Got: nil}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &errors.ParseError{Field: "contents", Want: "array", Got: raw}
	}
	contents, err := parseEntries(list)
	if err != nil {
		return nil, err
	}
	return &DataModelUpdate{
		Surface:  surface,
		Path:     optionalString(fields, "path"),
		Contents: contents,
	}, nil
}

func parseEntries(list []any) ([]DataEntry, error) {
	entries := make([]DataEntry, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, &errors.ParseError{Field: "contents[]", Want: "object", Got: item}
		}
		key, err := requireString(fields, "key")
		if err != nil {
			return nil, err
		}
		raw, present := fields["value"]
		if !present {
			return nil, &errors.ParseError{Field: "value", Want: "string, number, boolean, or object", Got: nil}
		}
		value, err := parseEntryValue(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DataEntry{Key: key, Value: value})
	}
	return entries, nil
}

// parseEntryValue validates one typed value. Nested entry lists become
// []DataEntry; plain JSON objects pass through with each member validated.
func parseEntryValue(raw any) (any, error) {
	switch v := raw.(type) {
	case string, bool, float64:
		return v, nil
	case []any:
		return parseEntries(v)
	case map[string]any:
		object := make(map[string]any, len(v))
		for key, member := range v {
			parsed, err := parseEntryValue(member)
			if err != nil {
				return nil, err
			}
			object[key] = parsed
		}
		return object, nil
	default:
		return nil, &errors.ParseError{Field: "value", Want: "string, number, boolean, or object", Got: raw}
	}
}

func parseDeleteSurface(fields map[string]any) (Operation, error) {
	surface, err := requireString(fields, "surfaceId")
	if err != nil {
		return nil, err
	}
	return &DeleteSurface{Surface: surface}, nil
}

// requireString extracts a non-empty string field.
func requireString(fields map[string]any, name string) (string, error) {
	raw, present := fields[name]
	if !present {
		return "", &errors.ParseError{Field: name, Want: "non-empty string", Got: nil}
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", &errors.ParseError{Field: name, Want: "non-empty string", Got: raw}
	}
	return s, nil
}

// optionalString extracts a string field, returning "" when absent or not a
// string.
func optionalString(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}

// toInt converts the numeric types a decoded JSON tree can carry to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
