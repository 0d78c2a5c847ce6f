package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stitch/internal/core/domain"
)

type keyedAsset struct {
	staticAsset
	key string
}

func (k keyedAsset) Key() string { return k.key }

func TestJoinKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1:a3:b|c", domain.JoinKey("a", "b|c"))
	assert.NotEqual(t, domain.JoinKey("a", "b|c"), domain.JoinKey("a|b", "c"))
	assert.NotEqual(t, domain.JoinKey("a", ""), domain.JoinKey("a"))
	assert.NotEqual(t, domain.JoinKey(domain.JoinKey("a", "b"), "c"), domain.JoinKey("a", domain.JoinKey("b", "c")))
}

func TestAssetKey(t *testing.T) {
	t.Parallel()

	plain := staticAsset{id: "static/logo.svg"}
	assert.Equal(t, "static/logo.svg", domain.AssetKey(plain))
	assert.Equal(t, "/abs/static/logo.svg", domain.AssetKey(keyedAsset{staticAsset: plain, key: "/abs/static/logo.svg"}))
	assert.Equal(t, "/abs/static/logo.svg", domain.EntryOf(keyedModule{
		moduleAsset: moduleAsset{plain},
		key:         "/abs/static/logo.svg",
	}).Key())
}

type keyedModule struct {
	moduleAsset
	key string
}

func (k keyedModule) Key() string { return k.key }
