package ports

// InputResolver defines the interface for resolving module and asset patterns.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands glob patterns and directories under root into a sorted,
	// de-duplicated list of slash-separated paths relative to root.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
