package surface

import (
	"sort"

	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/protocol"
	"github.com/go-drift/genui/pkg/styles"
)

// Registry owns the surfaces driven by one operation stream.
type Registry struct {
	surfaces map[string]*Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]*Surface)}
}

// Apply applies one operation. Operations addressing unknown surfaces create
// them implicitly, tolerating streaming order; DeleteSurface on an unknown
// id is a no-op. A rejected operation returns a *errors.OperationError and
// leaves all state untouched.
func (r *Registry) Apply(op protocol.Operation) error {
	if op == nil {
		return r.reject("operation", "", &errors.ParseError{Field: "operation", Want: "operation", Got: nil})
	}
	switch o := op.(type) {
	case *protocol.BeginRendering:
		return r.applyBeginRendering(o)
	case *protocol.SurfaceUpdate:
		return r.applySurfaceUpdate(o)
	case *protocol.DataModelUpdate:
		return r.applyDataModelUpdate(o)
	case *protocol.DeleteSurface:
		delete(r.surfaces, o.Surface)
		return nil
	default:
		return r.reject(op.Name(), op.SurfaceID(), &errors.ParseError{Field: "operation", Want: "known operation type", Got: op})
	}
}

// ApplyJSON decodes one JSON operation envelope and applies it.
func (r *Registry) ApplyJSON(data []byte) error {
	op, err := protocol.DecodeOperation(data)
	if err != nil {
		return r.reject("operation", "", err)
	}
	return r.Apply(op)
}

func (r *Registry) applyBeginRendering(op *protocol.BeginRendering) error {
	if op.Surface == "" {
		return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "surfaceId", Want: "non-empty string", Got: op.Surface})
	}
	if op.Root == "" {
		return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "root", Want: "non-empty string", Got: op.Root})
	}
	r.ensure(op.Surface).beginRendering(op)
	return nil
}

func (r *Registry) applySurfaceUpdate(op *protocol.SurfaceUpdate) error {
	if op.Surface == "" {
		return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "surfaceId", Want: "non-empty string", Got: op.Surface})
	}
	// Validate the whole batch before the first upsert so a bad component
	// cannot leave a half-applied update behind.
	for _, component := range op.Components {
		if component.ID == "" {
			return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "id", Want: "non-empty string", Got: component.ID})
		}
		if component.Type == "" {
			return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "type", Want: "non-empty string", Got: component.Type})
		}
	}
	r.ensure(op.Surface).upsert(op.Components)
	return nil
}

func (r *Registry) applyDataModelUpdate(op *protocol.DataModelUpdate) error {
	if op.Surface == "" {
		return r.reject(op.Name(), op.Surface, &errors.ParseError{Field: "surfaceId", Want: "non-empty string", Got: op.Surface})
	}
	tree := protocol.EntriesToTree(op.Contents)
	_, existed := r.surfaces[op.Surface]
	s := r.ensure(op.Surface)
	if err := s.Store.Update(op.Path, tree); err != nil {
		if !existed {
			delete(r.surfaces, op.Surface)
		}
		return r.reject(op.Name(), op.Surface, err)
	}
	return nil
}

// ensure returns the surface for id, creating it if unseen.
func (r *Registry) ensure(id string) *Surface {
	if s, ok := r.surfaces[id]; ok {
		return s
	}
	s := newSurface(id)
	r.surfaces[id] = s
	return s
}

// reject reports a rejected operation and returns the typed error.
func (r *Registry) reject(operation, surfaceID string, cause error) error {
	err := &errors.OperationError{Operation: operation, Surface: surfaceID, Err: cause}
	errors.Report(&errors.GenUIError{
		Op:      "surface.Apply",
		Kind:    errors.KindOperation,
		Surface: surfaceID,
		Err:     err,
	})
	return err
}

// DefinitionOf returns the current component tree of a surface, or false
// when the surface does not exist (never created, or deleted).
func (r *Registry) DefinitionOf(id string) (*Definition, bool) {
	s, ok := r.surfaces[id]
	if !ok {
		return nil, false
	}
	return &Definition{
		RootID:     s.RootID,
		CatalogID:  s.CatalogID,
		Components: s.Components,
	}, true
}

// DataStoreOf returns a surface's data store, or false when the surface
// does not exist.
func (r *Registry) DataStoreOf(id string) (*datastore.DataStore, bool) {
	s, ok := r.surfaces[id]
	if !ok {
		return nil, false
	}
	return s.Store, true
}

// ThemeOf returns a surface's parsed styling.
func (r *Registry) ThemeOf(id string) (styles.Theme, bool) {
	s, ok := r.surfaces[id]
	if !ok {
		return styles.Theme{}, false
	}
	return s.Theme, true
}

// IDs returns the ids of all live surfaces, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close drops every surface. Applying further operations recreates
// surfaces from scratch.
func (r *Registry) Close() {
	r.surfaces = make(map[string]*Surface)
}
