package protocol

// Wire names of the stream operations, used as envelope discriminators.
const (
	OpBeginRendering  = "beginRendering"
	OpSurfaceUpdate   = "surfaceUpdate"
	OpDataModelUpdate = "dataModelUpdate"
	OpDeleteSurface   = "deleteSurface"
)

// Operation is one atomic protocol instruction mutating surface or
// data-store state.
type Operation interface {
	// Name returns the wire name of the operation.
	Name() string
	// SurfaceID returns the surface the operation addresses.
	SurfaceID() string
}

// BeginRendering establishes or reconfigures a surface's root component id
// and optional styling.
type BeginRendering struct {
	Surface   string
	Root      string
	CatalogID string
	Styles    map[string]any
}

func (o *BeginRendering) Name() string      { return OpBeginRendering }
func (o *BeginRendering) SurfaceID() string { return o.Surface }

// Component is one component definition carried by a SurfaceUpdate.
// Properties stay a raw decoded tree; classification is the resolver's job.
type Component struct {
	ID         string
	Type       string
	Properties map[string]any
	// Weight orders siblings in weighted layouts. Zero means unspecified.
	Weight int
}

// SurfaceUpdate upserts each listed component by id into the surface's
// component map. Components are replaced wholesale; there is no field merge.
type SurfaceUpdate struct {
	Surface    string
	Components []Component
}

func (o *SurfaceUpdate) Name() string      { return OpSurfaceUpdate }
func (o *SurfaceUpdate) SurfaceID() string { return o.Surface }

// DataEntry is one key/typed-value pair in a DataModelUpdate.
// Value is a string, number, boolean, or a nested []DataEntry object.
type DataEntry struct {
	Key   string
	Value any
}

// DataModelUpdate merges a list of entries into an object and stores it at
// Path in the surface's data store, overwriting any existing subtree there.
// An empty Path addresses the root.
type DataModelUpdate struct {
	Surface  string
	Path     string
	Contents []DataEntry
}

func (o *DataModelUpdate) Name() string      { return OpDataModelUpdate }
func (o *DataModelUpdate) SurfaceID() string { return o.Surface }

// DeleteSurface removes a surface and its data store.
// Deleting an unknown surface is a no-op.
type DeleteSurface struct {
	Surface string
}

func (o *DeleteSurface) Name() string      { return OpDeleteSurface }
func (o *DeleteSurface) SurfaceID() string { return o.Surface }

// EntriesToTree collapses a list of entries into a nested object tree.
// Entries whose value is itself a []DataEntry become nested objects.
// Later entries win over earlier ones with the same key.
func EntriesToTree(entries []DataEntry) map[string]any {
	tree := make(map[string]any, len(entries))
	for _, entry := range entries {
		if nested, ok := entry.Value.([]DataEntry); ok {
			tree[entry.Key] = EntriesToTree(nested)
			continue
		}
		tree[entry.Key] = entry.Value
	}
	return tree
}
