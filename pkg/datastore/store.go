// Package datastore provides the per-surface reactive data tree.
//
// A DataStore is the single source of truth for one surface. It holds an
// arbitrary nested tree of objects, arrays, and scalars, addressed by
// slash-delimited pointer paths ("" or "/" is the root). Reads are typed and
// report absence instead of failing; Update destructively replaces the
// subtree at a path and is immediately visible to the next read.
//
// WithBasePath produces a scoped view that resolves every path under a
// prefix. Views compose by address concatenation and never copy data, which
// keeps per-item contexts for large list templates cheap.
//
// A DataStore has a single logical owner: it provides no internal locking,
// matching the rest of the core. Concurrent access to the same surface
// requires external mutual exclusion.
package datastore

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Errors returned by Update.
var (
	// ErrRootNotObject indicates a root write whose value is not an object.
	ErrRootNotObject = errors.New("datastore: root value must be an object")

	// ErrIndexOutOfRange indicates a write through an array index that is
	// negative or beyond the current bounds. Out-of-bounds writes are
	// rejected rather than null-padded.
	ErrIndexOutOfRange = errors.New("datastore: array index out of range")

	// ErrInvalidIndex indicates a non-integer path segment addressing an
	// array.
	ErrInvalidIndex = errors.New("datastore: array segment is not an integer")
)

// Store is the read/write interface consumed by the resolver, the
// evaluator, and the renderer. Both *DataStore and the views returned by
// WithBasePath satisfy it.
type Store interface {
	// GetString returns the string leaf at path, or false if the path is
	// absent or holds another shape.
	GetString(path string) (string, bool)
	// GetNumber returns the numeric leaf at path.
	GetNumber(path string) (float64, bool)
	// GetBoolean returns the boolean leaf at path.
	GetBoolean(path string) (bool, bool)
	// GetStringList returns the array of strings at path.
	GetStringList(path string) ([]string, bool)
	// GetArraySize returns the length of the array at path.
	GetArraySize(path string) (int, bool)
	// GetObjectKeys returns the sorted member names of the object at path.
	GetObjectKeys(path string) ([]string, bool)
	// Update destructively replaces the subtree at path, creating
	// intermediate objects as needed. The write is visible to the next
	// read. A rejected write leaves the tree untouched.
	Update(path string, value any) error
	// WithBasePath returns a view resolving every path under base.
	// Views compose: s.WithBasePath(a).WithBasePath(b) resolves exactly
	// like s.WithBasePath(a + "/" + b).
	WithBasePath(base string) Store
}

// DataStore is the owning implementation of Store for one surface.
type DataStore struct {
	root      map[string]any
	listeners map[int]func(path string)
	nextID    int
}

// NewDataStore creates an empty data store.
func NewDataStore() *DataStore {
	return &DataStore{root: make(map[string]any)}
}

// AddListener registers a callback fired with the written path after every
// successful Update, including updates made through views. It returns an
// unsubscribe function. Listeners fire synchronously on the mutating
// goroutine.
func (s *DataStore) AddListener(fn func(path string)) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func(path string))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *DataStore) notify(path string) {
	for _, fn := range s.listeners {
		fn(path)
	}
}

// lookup walks the tree to the node at path.
func (s *DataStore) lookup(path string) (any, bool) {
	node := any(s.root)
	for _, segment := range splitPath(path) {
		switch container := node.(type) {
		case map[string]any:
			child, present := container[segment]
			if !present {
				return nil, false
			}
			node = child
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(container) {
				return nil, false
			}
			node = container[index]
		default:
			return nil, false
		}
	}
	return node, true
}

// GetString returns the string leaf at path.
func (s *DataStore) GetString(path string) (string, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return "", false
	}
	value, ok := node.(string)
	return value, ok
}

// GetNumber returns the numeric leaf at path.
func (s *DataStore) GetNumber(path string) (float64, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return 0, false
	}
	switch value := node.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}

// GetBoolean returns the boolean leaf at path.
func (s *DataStore) GetBoolean(path string) (bool, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return false, false
	}
	value, ok := node.(bool)
	return value, ok
}

// GetStringList returns the array of strings at path. Arrays holding any
// non-string element report false.
func (s *DataStore) GetStringList(path string) ([]string, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return nil, false
	}
	switch list := node.(type) {
	case []string:
		return append([]string(nil), list...), true
	case []any:
		values := make([]string, len(list))
		for i, item := range list {
			value, ok := item.(string)
			if !ok {
				return nil, false
			}
			values[i] = value
		}
		return values, true
	default:
		return nil, false
	}
}

// GetArraySize returns the length of the array at path. Template iteration
// counts are driven by this.
func (s *DataStore) GetArraySize(path string) (int, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return 0, false
	}
	switch list := node.(type) {
	case []any:
		return len(list), true
	case []string:
		return len(list), true
	default:
		return 0, false
	}
}

// GetObjectKeys returns the member names of the object at path, sorted for
// deterministic iteration.
func (s *DataStore) GetObjectKeys(path string) ([]string, bool) {
	node, ok := s.lookup(path)
	if !ok {
		return nil, false
	}
	object, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, true
}

// Update destructively replaces the subtree at path. Intermediate objects
// are created as needed; an existing scalar on the way is replaced by an
// object. Writes through arrays require an in-bounds integer index —
// out-of-bounds writes are rejected and the tree is left untouched.
//
// A root write (path "" or "/") replaces the whole tree and requires an
// object value.
func (s *DataStore) Update(path string, value any) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		object, ok := value.(map[string]any)
		if !ok {
			return ErrRootNotObject
		}
		s.root = object
		s.notify("")
		return nil
	}
	// Validate before mutating so a rejected write cannot leave
	// half-created intermediate containers behind.
	if err := s.validateWrite(segments); err != nil {
		return err
	}
	s.root = writeTree(s.root, segments, value).(map[string]any)
	s.notify(strings.Join(segments, "/"))
	return nil
}

// validateWrite walks the existing tree along segments and reports the
// first addressing error. Missing or scalar nodes are fine (they become
// fresh objects during the write); arrays are the only rejecting step.
func (s *DataStore) validateWrite(segments []string) error {
	node := any(s.root)
	for _, segment := range segments {
		switch container := node.(type) {
		case map[string]any:
			child, present := container[segment]
			if !present {
				return nil
			}
			node = child
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return ErrInvalidIndex
			}
			if index < 0 || index >= len(container) {
				return ErrIndexOutOfRange
			}
			node = container[index]
		default:
			return nil
		}
	}
	return nil
}

// writeTree places value at segments under node, returning the (possibly
// replaced) node. Only called after validateWrite, so array steps cannot
// fail here.
func writeTree(node any, segments []string, value any) any {
	segment := segments[0]
	switch container := node.(type) {
	case map[string]any:
		if len(segments) == 1 {
			container[segment] = value
			return container
		}
		child, present := container[segment]
		if !present || !isContainer(child) {
			child = map[string]any{}
		}
		container[segment] = writeTree(child, segments[1:], value)
		return container
	case []any:
		index, _ := strconv.Atoi(segment)
		if len(segments) == 1 {
			container[index] = value
			return container
		}
		child := container[index]
		if !isContainer(child) {
			child = map[string]any{}
		}
		container[index] = writeTree(child, segments[1:], value)
		return container
	default:
		// Scalar on the way down: destructively replaced by an object.
		return writeTree(map[string]any{}, segments, value)
	}
}

func isContainer(node any) bool {
	switch node.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// WithBasePath returns a scoped view of this store.
func (s *DataStore) WithBasePath(base string) Store {
	return view{owner: s, base: strings.Trim(base, "/")}
}
