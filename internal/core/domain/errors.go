package domain

import "go.trai.ch/zerr"

var (
	// ErrResolution is returned when a referenced value cannot be resolved to its concrete form,
	// either because the computation producing it failed or because it lacks a required capability.
	ErrResolution = zerr.New("failed to resolve value")

	// ErrUnresolvedEntry is returned when an evaluated entry cannot be resolved to a concrete
	// EvaluatedEntry at the point a chunk needs it.
	ErrUnresolvedEntry = zerr.New("unresolved evaluated entry")

	// ErrChunkConstruction is returned when a chunking strategy cannot place or emit an asset.
	ErrChunkConstruction = zerr.New("failed to construct chunk")

	// ErrNotChunkable is returned when an asset does not implement ChunkableAsset.
	ErrNotChunkable = zerr.New("asset is not chunkable")

	// ErrEvaluationOrder is returned when a strategy emits entry executions out of their stored order.
	ErrEvaluationOrder = zerr.New("entries emitted out of order")

	// ErrAssetUnreachable is returned when an evaluation does not reference an asset of its pool.
	ErrAssetUnreachable = zerr.New("asset not reachable from evaluation")

	// ErrMemoCycle is returned when a memoized computation depends on itself.
	ErrMemoCycle = zerr.New("memoized computation depends on itself")

	// ErrBundleAlreadyExists is returned when attempting to add a bundle with a name that already exists.
	ErrBundleAlreadyExists = zerr.New("bundle already exists")

	// ErrMissingDependency is returned when a bundle references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the bundle dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrBundleNotFound is returned when a requested bundle is not found in the graph.
	ErrBundleNotFound = zerr.New("bundle not found")

	// ErrInvalidBundleName is returned when a bundle name contains invalid characters.
	ErrInvalidBundleName = zerr.New("bundle name can only contain alphanumeric characters, hyphens and underscores")

	// ErrNoEntries is returned when a bundle declares nothing to evaluate.
	ErrNoEntries = zerr.New("bundle has no entries to evaluate")

	// ErrUnknownEnvironment is returned when the configured environment kind is not supported.
	ErrUnknownEnvironment = zerr.New("unknown environment kind, expected 'browser' or 'manifest'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find stitch.yaml")

	// ErrInputNotFound is returned when a declared module or asset pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrAssetReadFailed is returned when an asset's source file cannot be read.
	ErrAssetReadFailed = zerr.New("failed to read asset")

	// ErrStoreCreateFailed is returned when a store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a build record or blob cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from store")

	// ErrStoreWriteFailed is returned when a build record or blob cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write to store")

	// ErrStoreEncodeFailed is returned when a build record cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode build record")

	// ErrStoreDecodeFailed is returned when a build record or blob cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode store entry")

	// ErrEmitFailed is returned when an output file cannot be written.
	ErrEmitFailed = zerr.New("failed to emit output")

	// ErrBuildFailed is returned when one or more bundles failed to build.
	ErrBuildFailed = zerr.New("build failed")
)
