package dynamic

// Classify maps a raw decoded property value onto exactly one variant:
//
//   - a bare scalar → Literal
//   - an object with both "componentId" and "path" → Template
//   - an object with key "path" → PathBinding
//   - an object with key "call" → FunctionCall, args classified recursively
//   - a list of strings → ChildrenList
//   - any other list → List of classified items
//   - anything else → Unrecognized
//
// Template is checked before PathBinding because both shapes carry "path".
func Classify(raw any) Value {
	switch v := raw.(type) {
	case string, bool, float64, float32, int, int32, int64:
		return Literal{Value: v}
	case map[string]any:
		return classifyObject(v)
	case []any:
		return classifyList(v)
	case []string:
		return ChildrenList{IDs: append([]string(nil), v...)}
	default:
		return Unrecognized{}
	}
}

func classifyObject(object map[string]any) Value {
	componentID, hasComponent := object["componentId"].(string)
	path, hasPath := object["path"].(string)
	if hasComponent && hasPath {
		return Template{ComponentID: componentID, Path: path}
	}
	if hasPath {
		return PathBinding{Path: path}
	}
	if name, ok := object["call"].(string); ok {
		call := &FunctionCall{Name: name, Args: map[string]Value{}}
		if args, ok := object["args"].(map[string]any); ok {
			for key, value := range args {
				call.Args[key] = Classify(value)
			}
		}
		if returnType, ok := object["returnType"].(string); ok {
			call.ReturnType = returnType
		}
		return call
	}
	return Unrecognized{}
}

func classifyList(list []any) Value {
	ids := make([]string, len(list))
	allStrings := len(list) > 0
	for i, item := range list {
		id, ok := item.(string)
		if !ok {
			allStrings = false
			break
		}
		ids[i] = id
	}
	if allStrings {
		return ChildrenList{IDs: ids}
	}
	items := make([]Value, len(list))
	for i, item := range list {
		items[i] = Classify(item)
	}
	return List{Items: items}
}

// ClassifyChildren classifies a raw children property. It returns a
// ChildrenList, a Template, or Unrecognized. An empty list is an empty
// ChildrenList.
func ClassifyChildren(raw any) Value {
	switch v := Classify(raw).(type) {
	case ChildrenList, Template:
		return v
	case List:
		if len(v.Items) == 0 {
			return ChildrenList{}
		}
		return Unrecognized{}
	default:
		return Unrecognized{}
	}
}
