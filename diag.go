package slhdsa

import "github.com/cespare/xxhash"

// keyTag returns a short, non-secret correlation tag derived from a
// public seed, for use in diagnostic log lines. PK.seed is public by
// definition, so tagging with a fast non-cryptographic hash of it (rather
// than printing it, or a slow cryptographic digest) is fine for telling
// "which key" apart in a log stream without allocating or hashing with a
// security-relevant primitive on every signing call.
func keyTag(pkSeed []byte) uint64 {
	return xxhash.Sum64(pkSeed)
}
