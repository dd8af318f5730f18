package datastore

import (
	"errors"
	"reflect"
	"testing"
)

func TestUpdate_ReadAfterWrite(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("user/name", "Ada"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, ok := store.GetString("user/name"); !ok || got != "Ada" {
		t.Errorf("GetString(user/name) = %q, %v; want Ada, true", got, ok)
	}

	if err := store.Update("user/age", 36.0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, ok := store.GetNumber("user/age"); !ok || got != 36 {
		t.Errorf("GetNumber(user/age) = %v, %v; want 36, true", got, ok)
	}

	if err := store.Update("user/active", true); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, ok := store.GetBoolean("user/active"); !ok || !got {
		t.Errorf("GetBoolean(user/active) = %v, %v; want true, true", got, ok)
	}
}

func TestUpdate_OverwritesSubtree(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("user", map[string]any{"name": "Ada", "age": 36.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("user", map[string]any{"name": "Grace"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got, ok := store.GetString("user/name"); !ok || got != "Grace" {
		t.Errorf("GetString(user/name) = %q, %v; want Grace, true", got, ok)
	}
	// The old subtree is gone, not merged.
	if _, ok := store.GetNumber("user/age"); ok {
		t.Error("GetNumber(user/age) resolved after the subtree was replaced")
	}
}

func TestUpdate_CreatesIntermediateObjects(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("a/b/c/d", "deep"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, ok := store.GetString("a/b/c/d"); !ok || got != "deep" {
		t.Errorf("GetString(a/b/c/d) = %q, %v; want deep, true", got, ok)
	}
	if keys, ok := store.GetObjectKeys("a/b"); !ok || len(keys) != 1 || keys[0] != "c" {
		t.Errorf("GetObjectKeys(a/b) = %v, %v; want [c], true", keys, ok)
	}
}

func TestUpdate_ReplacesScalarOnTheWay(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("a", "scalar"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("a/b", "nested"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, ok := store.GetString("a/b"); !ok || got != "nested" {
		t.Errorf("GetString(a/b) = %q, %v; want nested, true", got, ok)
	}
}

func TestUpdate_RootReplacesTree(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("old", "value"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("", map[string]any{"fresh": "tree"}); err != nil {
		t.Fatalf("root Update failed: %v", err)
	}

	if _, ok := store.GetString("old"); ok {
		t.Error("old key survived a root replacement")
	}
	if got, ok := store.GetString("fresh"); !ok || got != "tree" {
		t.Errorf("GetString(fresh) = %q, %v; want tree, true", got, ok)
	}

	if err := store.Update("/", "not an object"); !errors.Is(err, ErrRootNotObject) {
		t.Errorf("root Update with scalar = %v; want ErrRootNotObject", err)
	}
}

func TestUpdate_ArrayElement(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("items", []any{"a", "b", "c"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("items/1", "B"); err != nil {
		t.Fatalf("Update of items/1 failed: %v", err)
	}

	want := []string{"a", "B", "c"}
	if got, ok := store.GetStringList("items"); !ok || !reflect.DeepEqual(got, want) {
		t.Errorf("GetStringList(items) = %v, %v; want %v, true", got, ok, want)
	}
}

func TestUpdate_OutOfBoundsArrayWriteRejected(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("items", []any{"a", "b"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if err := store.Update("items/2", "c"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("write at len = %v; want ErrIndexOutOfRange", err)
	}
	if err := store.Update("items/-1", "z"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("write at -1 = %v; want ErrIndexOutOfRange", err)
	}
	if err := store.Update("items/x", "z"); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("write at non-integer = %v; want ErrInvalidIndex", err)
	}

	// The rejected writes left the array untouched.
	want := []string{"a", "b"}
	if got, ok := store.GetStringList("items"); !ok || !reflect.DeepEqual(got, want) {
		t.Errorf("GetStringList(items) = %v, %v; want %v, true", got, ok, want)
	}
}

func TestUpdate_RejectedDeepWriteLeavesNoDebris(t *testing.T) {
	store := NewDataStore()

	if err := store.Update("list", []any{"only"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("list/5/name", "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("deep out-of-bounds write = %v; want ErrIndexOutOfRange", err)
	}

	// No intermediate containers were created on the failed path.
	if keys, ok := store.GetObjectKeys(""); !ok || len(keys) != 1 || keys[0] != "list" {
		t.Errorf("GetObjectKeys(root) = %v, %v; want [list], true", keys, ok)
	}
}

func TestGetters_WrongShapeReportsAbsent(t *testing.T) {
	store := NewDataStore()
	if err := store.Update("name", "Ada"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("tags", []any{"x", 1.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, ok := store.GetNumber("name"); ok {
		t.Error("GetNumber resolved a string leaf")
	}
	if _, ok := store.GetBoolean("name"); ok {
		t.Error("GetBoolean resolved a string leaf")
	}
	if _, ok := store.GetStringList("tags"); ok {
		t.Error("GetStringList resolved a mixed array")
	}
	if _, ok := store.GetString("missing"); ok {
		t.Error("GetString resolved an absent path")
	}
	if _, ok := store.GetArraySize("name"); ok {
		t.Error("GetArraySize resolved a string leaf")
	}
}

func TestGetArraySizeAndObjectKeys(t *testing.T) {
	store := NewDataStore()
	if err := store.Update("items", []any{"a", "b", "c"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("user", map[string]any{"name": "Ada", "age": 36.0}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if size, ok := store.GetArraySize("items"); !ok || size != 3 {
		t.Errorf("GetArraySize(items) = %d, %v; want 3, true", size, ok)
	}
	want := []string{"age", "name"}
	if keys, ok := store.GetObjectKeys("user"); !ok || !reflect.DeepEqual(keys, want) {
		t.Errorf("GetObjectKeys(user) = %v, %v; want %v, true", keys, ok, want)
	}
}

func TestPathNormalization(t *testing.T) {
	store := NewDataStore()
	if err := store.Update("/user/name/", "Ada"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	for _, path := range []string{"user/name", "/user/name", "user//name", "/user/name/"} {
		if got, ok := store.GetString(path); !ok || got != "Ada" {
			t.Errorf("GetString(%q) = %q, %v; want Ada, true", path, got, ok)
		}
	}
}

func TestAddListener_NotifiesOnUpdate(t *testing.T) {
	store := NewDataStore()

	var paths []string
	unsubscribe := store.AddListener(func(path string) {
		paths = append(paths, path)
	})

	if err := store.Update("user/name", "Ada"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update("items", []any{"a"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// A rejected write must not notify.
	if err := store.Update("items/9", "x"); err == nil {
		t.Fatal("expected out-of-bounds write to fail")
	}

	want := []string{"user/name", "items"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("listener saw %v; want %v", paths, want)
	}

	unsubscribe()
	if err := store.Update("user/name", "Grace"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("listener fired after unsubscribe: %v", paths)
	}
}

func TestAddListener_SeesViewWrites(t *testing.T) {
	store := NewDataStore()
	if err := store.Update("items", []any{map[string]any{"name": "a"}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var got string
	store.AddListener(func(path string) { got = path })

	item := store.WithBasePath("items/0")
	if err := item.Update("name", "A"); err != nil {
		t.Fatalf("view Update failed: %v", err)
	}
	if got != "items/0/name" {
		t.Errorf("listener saw %q; want items/0/name", got)
	}
}
