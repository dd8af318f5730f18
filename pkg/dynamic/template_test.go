package dynamic

import (
	"testing"

	"github.com/go-drift/genui/pkg/datastore"
)

func TestTemplate_InstanceStores(t *testing.T) {
	store := datastore.NewDataStore()
	err := store.Update("items", []any{
		map[string]any{"label": "first"},
		map[string]any{"label": "second"},
		map[string]any{"label": "third"},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	template := Template{ComponentID: "row", Path: "items"}
	if got := template.InstanceCount(store); got != 3 {
		t.Fatalf("InstanceCount = %d; want 3", got)
	}

	// Instances follow array index order.
	want := []string{"first", "second", "third"}
	for i, label := range want {
		scoped := template.InstanceStore(store, i)
		if got, ok := scoped.GetString("label"); !ok || got != label {
			t.Errorf("instance %d label = %q, %v; want %q, true", i, got, ok, label)
		}
	}
}

func TestTemplate_ShrinkingArrayReflectedOnReResolve(t *testing.T) {
	store := datastore.NewDataStore()
	if err := store.Update("items", []any{"a", "b", "c"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	template := Template{ComponentID: "row", Path: "items"}
	if got := template.InstanceCount(store); got != 3 {
		t.Fatalf("InstanceCount = %d; want 3", got)
	}

	// The template is stateless: after the array shrinks, the next
	// resolution reports the new count and the dropped index reads absent.
	if err := store.Update("items", []any{"a"}); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if got := template.InstanceCount(store); got != 1 {
		t.Errorf("InstanceCount after shrink = %d; want 1", got)
	}
	stale := template.InstanceStore(store, 2)
	if _, ok := stale.GetString(""); ok {
		t.Error("index 2 still resolves after the array shrank")
	}
}

func TestTemplate_AbsentArrayCountsZero(t *testing.T) {
	store := datastore.NewDataStore()
	template := Template{ComponentID: "row", Path: "missing"}
	if got := template.InstanceCount(store); got != 0 {
		t.Errorf("InstanceCount = %d; want 0", got)
	}
}
