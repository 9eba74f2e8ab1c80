package slhdsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// taggedHash is the shared shape of F, H, T_ℓ and T_k: a keyed hash of
// PK.seed, an address and a payload, truncated to n bytes. `long` selects
// the SHA-512-backed member of the pair for the SHA-2 cat3/5 family (used
// by H and T_ℓ/T_k; PRF and F always use the "short", SHA-256 member).
// SHAKE ignores the distinction: PRF, F, H and Tlen are all the same
// SHAKE256 call under that suite, over the full 32-byte address.
func (ctx *Context) taggedHash(pkSeed, payload []byte, addr *Address, long bool) []byte {
	n := ctx.n()
	switch ctx.Params.Suite {
	case SuiteShake:
		return shakeSumBytes(n, pkSeed, addr.Bytes(), payload)
	case SuiteSha2Cat1:
		return sha2TaggedHash(sha256.New, 64, pkSeed, addr, payload, n)
	case SuiteSha2Cat35:
		if long {
			return sha2TaggedHash(sha512.New, 128, pkSeed, addr, payload, n)
		}
		return sha2TaggedHash(sha256.New, 64, pkSeed, addr, payload, n)
	default:
		panic("slhdsa: unknown hash suite")
	}
}

// shakeSumBytes writes every chunk into a SHAKE256 sponge and squeezes n
// bytes of output.
func shakeSumBytes(n int, chunks ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, c := range chunks {
		h.Write(c)
	}
	out := make([]byte, n)
	h.Read(out)
	return out
}

// sha2TaggedHash implements PK.seed || toByte(0, blockSize-n) || ADRS_c ||
// payload, truncated to n bytes, per the SHA-2 hash suite definitions.
func sha2TaggedHash(newHash func() hash.Hash, blockSize int, pkSeed []byte, addr *Address, payload []byte, n int) []byte {
	h := newHash()
	h.Write(pkSeed)
	h.Write(make([]byte, blockSize-n))
	h.Write(addr.CompressedBytes())
	h.Write(payload)
	return h.Sum(nil)[:n]
}

// PRF derives a WOTS+/FORS secret value under the given address.
func (ctx *Context) PRF(pkSeed, skSeed []byte, addr *Address) []byte {
	return ctx.taggedHash(pkSeed, skSeed, addr, false)
}

// F is the single-block chain hash used by WOTS+ and FORS leaves.
func (ctx *Context) F(pkSeed, payload []byte, addr *Address) []byte {
	return ctx.taggedHash(pkSeed, payload, addr, false)
}

// H combines two n-byte children into their parent, used by XMSS, the
// hypertree and FORS internal tree nodes.
func (ctx *Context) H(pkSeed, left, right []byte, addr *Address) []byte {
	payload := make([]byte, 0, len(left)+len(right))
	payload = append(payload, left...)
	payload = append(payload, right...)
	return ctx.taggedHash(pkSeed, payload, addr, true)
}

// Tlen compresses `blocks` n-byte strings (a WOTS+ public key's chain
// outputs, or a FORS signature's recovered roots) into a single n-byte
// value.
func (ctx *Context) Tlen(pkSeed []byte, blocks [][]byte, addr *Address) []byte {
	payload := make([]byte, 0, len(blocks)*ctx.n())
	for _, b := range blocks {
		payload = append(payload, b...)
	}
	return ctx.taggedHash(pkSeed, payload, addr, true)
}

// PRFMsg derives the randomizer R from the secret PRF key, an optional
// randomizer (or PK.seed, for deterministic signing) and the encoded
// message.
func (ctx *Context) PRFMsg(skPrf, optRand, mPrime []byte) []byte {
	n := ctx.n()
	switch ctx.Params.Suite {
	case SuiteShake:
		return shakeSumBytes(n, skPrf, optRand, mPrime)
	case SuiteSha2Cat1:
		return hmacSum(sha256.New, skPrf, n, optRand, mPrime)
	case SuiteSha2Cat35:
		return hmacSum(sha512.New, skPrf, n, optRand, mPrime)
	default:
		panic("slhdsa: unknown hash suite")
	}
}

func hmacSum(newHash func() hash.Hash, key []byte, n int, parts ...[]byte) []byte {
	mac := hmac.New(newHash, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)[:n]
}

// HMsg computes the full message digest from the randomizer R and the
// public key, expanded/truncated to exactly m bytes.
func (ctx *Context) HMsg(r, pkSeed, pkRoot, mPrime []byte) []byte {
	m := ctx.m()
	switch ctx.Params.Suite {
	case SuiteShake:
		return shakeSumBytes(m, r, pkSeed, pkRoot, mPrime)
	case SuiteSha2Cat1:
		return mgf1HMsg(sha256.New, r, pkSeed, pkRoot, mPrime, m)
	case SuiteSha2Cat35:
		return mgf1HMsg(sha512.New, r, pkSeed, pkRoot, mPrime, m)
	default:
		panic("slhdsa: unknown hash suite")
	}
}

func mgf1HMsg(newHash func() hash.Hash, r, pkSeed, pkRoot, mPrime []byte, m int) []byte {
	inner := newHash()
	inner.Write(r)
	inner.Write(pkSeed)
	inner.Write(pkRoot)
	inner.Write(mPrime)

	seed := make([]byte, 0, len(r)+len(pkSeed)+inner.Size())
	seed = append(seed, r...)
	seed = append(seed, pkSeed...)
	seed = inner.Sum(seed)

	mask, err := mgf1(seed, m, newHash)
	if err != nil {
		// mgf1 only fails when m exceeds 2^32*hLen, which cannot happen
		// for any registered parameter set's (tiny) m.
		panic(err)
	}
	return mask
}
