package domain

// Bundle is a unit of output: a set of modules placed into one entry chunk,
// static assets shipped alongside, and the entries evaluated when it loads.
type Bundle struct {
	Name Ident
	// Modules are project-relative paths of chunkable source modules.
	Modules []Ident
	// Assets are project-relative paths of static assets added to the evaluation pool.
	Assets []Ident
	// Evaluate lists the entries to execute, in execution order.
	Evaluate []Ident
	// DependsOn names bundles whose outputs must be reachable from this bundle's evaluation.
	DependsOn []Ident
}

// HasModule reports whether path is declared as a module of the bundle.
func (b *Bundle) HasModule(path Ident) bool {
	for _, m := range b.Modules {
		if m == path {
			return true
		}
	}
	return false
}

// Project is a loaded configuration: where to build from, where to write, and what.
type Project struct {
	// Root is the absolute directory module and asset paths are relative to.
	Root string
	// OutputDir is the absolute directory outputs are emitted into.
	OutputDir string
	// Environment is the target environment for every bundle.
	Environment Environment
	// Graph holds the bundles.
	Graph *Graph
}
