package domain

import (
	"strconv"
	"strings"
)

// Keyed is implemented by assets whose cache identity is narrower than their ident,
// for example a project file whose ident is relative to a root.
type Keyed interface {
	Key() string
}

// AssetKey returns the cache identity of a.
func AssetKey(a Asset) string {
	if k, ok := a.(Keyed); ok {
		return k.Key()
	}
	return a.Ident().String()
}

// JoinKey joins parts into a single memo key.
// Each part is length-prefixed, so no separator inside a part can make two part lists collide.
func JoinKey(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}
