package chunking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/chunking"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestFactory_New(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind      domain.EnvironmentKind
		extension string
	}{
		{kind: domain.EnvBrowser, extension: ".js"},
		{kind: domain.EnvManifest, extension: ".cbor"},
	}

	factory := chunking.NewFactory(fs.NewHasher())
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			env := domain.Environment{Kind: tt.kind}
			strategy, err := factory.New(env)
			require.NoError(t, err)
			assert.Equal(t, env, strategy.Environment())
			assert.Equal(t, tt.extension, strategy.Extension())
		})
	}
}

func TestFactory_New_UnknownEnvironment(t *testing.T) {
	t.Parallel()

	_, err := chunking.NewFactory(fs.NewHasher()).New(domain.Environment{Kind: "node"})
	require.ErrorIs(t, err, domain.ErrUnknownEnvironment)
}
