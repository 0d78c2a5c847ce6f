package domain

import "time"

// OutputRecord describes one file emitted for a bundle.
type OutputRecord struct {
	Path      string `cbor:"1,keyasint"`
	Digest    string `cbor:"2,keyasint"`
	Size      int    `cbor:"3,keyasint"`
	// Generated marks chunk and evaluation outputs, which are pruned once no longer produced.
	Generated bool   `cbor:"4,keyasint,omitempty"`
}

// BuildRecord represents the result of the last successful build of a bundle.
type BuildRecord struct {
	Bundle     string         `cbor:"1,keyasint"`
	Evaluation string         `cbor:"2,keyasint"`
	Outputs    []OutputRecord `cbor:"3,keyasint"`
	Timestamp  time.Time      `cbor:"4,keyasint"`
}

// Digest returns the recorded digest for path, if any.
func (r *BuildRecord) Digest(path string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, out := range r.Outputs {
		if out.Path == path {
			return out.Digest, true
		}
	}
	return "", false
}
