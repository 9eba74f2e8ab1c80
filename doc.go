// Package slhdsa implements the core of SLH-DSA, the stateless hash-based
// signature scheme standardized as FIPS 205.
//
// It covers the five co-recursive hash-tree layers the scheme is built
// from — the parameterized hash/PRF suite, WOTS+ one-time signatures, XMSS
// Merkle trees, a layered hypertree, and FORS few-time signatures — plus the
// top-level orchestrator that ties them together: key generation, signing
// and verification, and the pure and pre-hash message encodings.
//
// All twelve named parameter sets from the standard are registered and
// reachable through NewContextFromName. Everything here is symmetric
// cryptography: SHA-2, SHAKE and their HMAC/MGF1 derivatives, consumed
// through the standard library and golang.org/x/crypto/sha3.
package slhdsa
