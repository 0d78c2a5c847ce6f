package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Sum returns the hex digest of data.
	Sum(data []byte) string

	// SumFile returns the hex digest of the file at path.
	SumFile(path string) (string, error)
}
