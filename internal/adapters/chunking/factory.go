// Package chunking selects the evaluation strategy for a target environment.
package chunking

import (
	"go.trai.ch/stitch/internal/adapters/chunking/browser"
	"go.trai.ch/stitch/internal/adapters/chunking/manifest"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StrategyFactory = (*Factory)(nil)

// Factory implements ports.StrategyFactory.
type Factory struct {
	hasher ports.Hasher
}

// NewFactory creates a Factory whose strategies digest content with hasher.
func NewFactory(hasher ports.Hasher) *Factory {
	return &Factory{hasher: hasher}
}

// New returns the strategy for env.
func (f *Factory) New(env domain.Environment) (ports.EvaluationStrategy, error) {
	switch env.Kind {
	case domain.EnvBrowser:
		return browser.New(env, f.hasher), nil
	case domain.EnvManifest:
		return manifest.New(env, f.hasher)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEnvironment, "no strategy for environment"), "kind", string(env.Kind))
	}
}
