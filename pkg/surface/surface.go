// Package surface applies the operation stream to per-surface state and
// exposes the queries renderers consume.
//
// A Registry is an explicit, owned object with create/destroy lifecycle —
// there is no package-level surface state. Mutation is single-owner: one
// logical owner applies operations and reads or writes a surface's data
// store at a time. Different surfaces are independent; concurrent access to
// the same surface requires external mutual exclusion, and the registry
// deliberately provides no internal locking.
//
// Every operation applies atomically from the caller's perspective. A
// rejected operation returns a typed error, is reported to the error
// handler, and leaves all state exactly as it was.
package surface

import (
	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/protocol"
	"github.com/go-drift/genui/pkg/styles"
)

// Surface is one independently addressable UI instance: a component map, a
// root reference, parsed styling, and an owned data store.
type Surface struct {
	// ID is the surface id the stream addresses.
	ID string
	// RootID is the id of the root component. It may reference a component
	// that has not arrived yet; a dangling root is legal mid-stream.
	RootID string
	// CatalogID identifies the component catalog the surface renders with.
	CatalogID string
	// Components maps component id to its latest definition.
	Components map[string]*protocol.Component
	// Theme is the styling parsed from the latest BeginRendering.
	Theme styles.Theme
	// Store is the surface's data store.
	Store *datastore.DataStore
}

func newSurface(id string) *Surface {
	return &Surface{
		ID:         id,
		Components: make(map[string]*protocol.Component),
		Store:      datastore.NewDataStore(),
	}
}

// beginRendering sets the root reference and styling. Components previously
// upserted by SurfaceUpdate are preserved: the stream is order-tolerant and
// components may legitimately arrive before the root does.
func (s *Surface) beginRendering(op *protocol.BeginRendering) {
	s.RootID = op.Root
	if op.CatalogID != "" {
		s.CatalogID = op.CatalogID
	}
	if op.Styles != nil {
		s.Theme = styles.ParseTheme(op.Styles)
	}
}

// upsert replaces each listed component wholesale by id. Last write wins;
// there is no field-level merge.
func (s *Surface) upsert(components []protocol.Component) {
	for i := range components {
		component := components[i]
		s.Components[component.ID] = &component
	}
}

// Definition is the queryable snapshot of a surface's component tree.
// Components is the live map; callers must treat it as read-only.
type Definition struct {
	RootID     string
	CatalogID  string
	Components map[string]*protocol.Component
}
