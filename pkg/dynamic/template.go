package dynamic

import (
	"strconv"

	"github.com/go-drift/genui/pkg/datastore"
)

// Template repeats one component definition once per element of the array
// at Path. The classifier is stateless: consumers re-resolve the template on
// every pass, so a grown or shrunk array is reflected by the next
// InstanceCount call and the consuming layer drops generated items that are
// no longer backed by an element.
type Template struct {
	ComponentID string
	Path        string
}

func (Template) Kind() ValueKind { return KindChildrenTemplate }

// InstanceCount returns the number of instances the template currently
// expands to: the size of the array at Path, or zero when the path is
// absent or not an array.
func (t Template) InstanceCount(store datastore.Store) int {
	size, ok := store.GetArraySize(t.Path)
	if !ok {
		return 0
	}
	return size
}

// InstanceStore returns the scoped data context for one instance, addressing
// the array element by index. Instances iterate in array index order.
func (t Template) InstanceStore(store datastore.Store, index int) datastore.Store {
	return store.WithBasePath(t.Path + "/" + strconv.Itoa(index))
}
