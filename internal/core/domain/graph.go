// Package domain contains the core domain models: assets, evaluated entries and the bundle graph.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of bundles.
type Graph struct {
	bundles        map[Ident]Bundle
	dependents     map[Ident][]Ident
	executionOrder []Ident
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		bundles:    make(map[Ident]Bundle),
		dependents: make(map[Ident][]Ident),
	}
}

// AddBundle adds a bundle to the graph.
// It returns an error if a bundle with the same name already exists.
func (g *Graph) AddBundle(b *Bundle) error {
	if _, exists := g.bundles[b.Name]; exists {
		return zerr.With(zerr.Wrap(ErrBundleAlreadyExists, "cannot add bundle"), "bundle", b.Name.String())
	}
	g.bundles[b.Name] = *b
	for _, dep := range b.DependsOn {
		g.dependents[dep] = append(g.dependents[dep], b.Name)
	}
	return nil
}

// Get returns the bundle with the given name.
func (g *Graph) Get(name Ident) (Bundle, bool) {
	b, ok := g.bundles[name]
	return b, ok
}

// Len returns the number of bundles.
func (g *Graph) Len() int {
	return len(g.bundles)
}

// Dependents returns the bundles that depend on name.
func (g *Graph) Dependents(name Ident) []Ident {
	return slices.Clone(g.dependents[name])
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order used by Walk if successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]Ident, 0, len(g.bundles))
	visited := make(map[Ident]int) // 0: unvisited, 1: visiting, 2: visited
	var path []Ident

	var visit func(u Ident) error
	visit = func(u Ident) error {
		visited[u] = 1
		path = append(path, u)

		bundle, exists := g.bundles[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "invalid bundle graph"), "dependency", u.String())
		}

		for _, dep := range bundle.DependsOn {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Sorted roots keep Walk deterministic across runs.
	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []Ident, dep Ident) error {
	start := slices.Index(path, dep)
	names := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		names = append(names, node.String())
	}
	names = append(names, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid bundle graph"), "cycle", strings.Join(names, " -> "))
}

// Walk returns an iterator that yields bundles in dependency order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Bundle] {
	return func(yield func(Bundle) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.bundles[name]) {
				return
			}
		}
	}
}

// Closure returns the named bundles and everything they transitively depend on.
// An empty targets list selects every bundle.
func (g *Graph) Closure(targets []Ident) (map[Ident]struct{}, error) {
	if len(targets) == 0 {
		targets = g.sortedNames()
	}

	selected := make(map[Ident]struct{}, len(g.bundles))
	stack := slices.Clone(targets)
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := selected[name]; seen {
			continue
		}
		bundle, ok := g.bundles[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrBundleNotFound, "cannot select bundle"), "bundle", name.String())
		}
		selected[name] = struct{}{}
		stack = append(stack, bundle.DependsOn...)
	}
	return selected, nil
}

func (g *Graph) sortedNames() []Ident {
	names := make([]Ident, 0, len(g.bundles))
	for name := range g.bundles {
		names = append(names, name)
	}
	slices.SortFunc(names, Ident.Compare)
	return names
}
