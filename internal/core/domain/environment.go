package domain

// EnvironmentKind names a target runtime environment.
type EnvironmentKind string

const (
	// EnvBrowser targets browsers: chunks are scripts loaded in parallel by a bootstrap.
	EnvBrowser EnvironmentKind = "browser"
	// EnvManifest targets a native runtime that reads a CBOR load manifest.
	EnvManifest EnvironmentKind = "manifest"
)

// Environment describes the target a chunking context produces output for.
type Environment struct {
	Kind EnvironmentKind
	// PublicPath prefixes asset URLs in browser output.
	PublicPath string
}

// Valid reports whether the kind is supported.
func (e Environment) Valid() bool {
	switch e.Kind {
	case EnvBrowser, EnvManifest:
		return true
	default:
		return false
	}
}

// String returns the environment kind.
func (e Environment) String() string {
	return string(e.Kind)
}
