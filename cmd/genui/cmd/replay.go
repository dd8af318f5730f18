package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-drift/genui/cmd/genui/internal/config"
	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/dynamic"
	"github.com/go-drift/genui/pkg/expr"
	"github.com/go-drift/genui/pkg/surface"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Apply an operation stream and print the resolved surfaces",
		Long: `Replay applies every operation in a stream file to a fresh surface
registry and prints each surface's component tree with its properties
resolved: literals as-is, path bindings read from the data store, and
function calls evaluated.

Malformed operations are reported and dropped; the surfaces keep their
last good state, exactly as a live renderer would.

The optional genui.yaml in the working directory can pin the protocol
version and filter the printed surfaces.`,
		Usage: "genui replay <stream.jsonl>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay requires exactly one stream file")
	}

	resolved, err := config.Resolve(".")
	if err != nil {
		return err
	}

	registry := surface.NewRegistry()
	dropped, err := applyStream(registry, args[0], resolved.Verbose)
	if err != nil {
		return err
	}

	for _, id := range registry.IDs() {
		if resolved.Surface != "" && id != resolved.Surface {
			continue
		}
		printSurface(registry, id)
	}
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "%d operation(s) dropped\n", dropped)
	}
	return nil
}

// applyStream applies one JSON operation envelope per line. Malformed
// operations are counted and dropped, not fatal.
func applyStream(registry *surface.Registry, path string, verbose bool) (dropped int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open stream: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := registry.ApplyJSON([]byte(text)); err != nil {
			dropped++
			if verbose {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return dropped, fmt.Errorf("failed to read stream: %w", err)
	}
	return dropped, nil
}

func printSurface(registry *surface.Registry, id string) {
	definition, ok := registry.DefinitionOf(id)
	if !ok {
		return
	}
	store, _ := registry.DataStoreOf(id)

	fmt.Printf("surface %s (root=%s)\n", id, definition.RootID)
	ids := make([]string, 0, len(definition.Components))
	for componentID := range definition.Components {
		ids = append(ids, componentID)
	}
	sort.Strings(ids)

	evaluator := expr.NewEvaluator(store)
	for _, componentID := range ids {
		component := definition.Components[componentID]
		fmt.Printf("  %s (%s)\n", component.ID, component.Type)
		names := make([]string, 0, len(component.Properties))
		for name := range component.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			value := dynamic.Classify(component.Properties[name])
			fmt.Printf("    %s = %s\n", name, describe(value, store, evaluator))
		}
	}
}

// describe renders one classified property value for the replay output.
func describe(value dynamic.Value, store datastore.Store, evaluator *expr.Evaluator) string {
	switch v := value.(type) {
	case dynamic.Literal:
		return fmt.Sprintf("%v", v.Value)
	case dynamic.PathBinding:
		resolved, ok := readPath(store, v.Path)
		if !ok {
			return fmt.Sprintf("path(%s) -> (unset)", v.Path)
		}
		return fmt.Sprintf("path(%s) -> %v", v.Path, resolved)
	case *dynamic.FunctionCall:
		result, ok := evaluator.Evaluate(v)
		if !ok {
			return fmt.Sprintf("%s(...) -> (unresolved)", v.Name)
		}
		return fmt.Sprintf("%s(...) -> %v", v.Name, result)
	case dynamic.ChildrenList:
		return "children [" + strings.Join(v.IDs, " ") + "]"
	case dynamic.Template:
		return fmt.Sprintf("template %s x%d over %s", v.ComponentID, v.InstanceCount(store), v.Path)
	default:
		return "(unrecognized)"
	}
}

func readPath(store datastore.Store, path string) (any, bool) {
	if s, ok := store.GetString(path); ok {
		return s, true
	}
	if n, ok := store.GetNumber(path); ok {
		return n, true
	}
	if b, ok := store.GetBoolean(path); ok {
		return b, true
	}
	if list, ok := store.GetStringList(path); ok {
		return list, true
	}
	return nil, false
}
