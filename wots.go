package slhdsa

// wotsChain applies F to X a total of s times, advancing the chain's
// hash_address word from i to i+s-1. Precondition: i+s <= w-1.
func (ctx *Context) wotsChain(pkSeed, x []byte, i, s uint32, addr Address) ([]byte, Error) {
	if i+s > wotsW-1 {
		return nil, errorf(InvalidParameters, "wots chain: i=%d s=%d exceeds w-1=%d", i, s, wotsW-1)
	}
	out := append([]byte(nil), x...)
	for j := i; j < i+s; j++ {
		addr.SetHashAddress(j)
		out = ctx.F(pkSeed, out, &addr)
	}
	return out, nil
}

// wotsDigits returns the digit sequence for the checksum computation,
// appending a properly bit-shifted base-w encoding of the WOTS+ checksum
// to msg's own base-w digits. The shift uses the portable formula
// (8 - (len2*lg_w mod 8)) mod 8, valid regardless of lg_w.
func (ctx *Context) wotsDigits(msg []byte) []uint32 {
	len1 := ctx.Params.Len1()
	len2 := ctx.Params.Len2()

	digits := base2b(msg, wotsLogW, len1)

	var csum uint64
	for _, d := range digits {
		csum += uint64(wotsW - 1 - d)
	}

	shift := (8 - (uint(len2)*wotsLogW)%8) % 8
	csum <<= shift

	csumBytes := toByte(csum, ceilDiv(len2*wotsLogW, 8))
	csumDigits := base2b(csumBytes, wotsLogW, len2)

	return append(digits, csumDigits...)
}

// wotsSecretKey derives the c'th WOTS+ chain's secret seed. keyPair is the
// keypair_address word of the caller's ADRS, preserved explicitly: every
// SetTypeAndClear call zeroes it along with the rest of the trailing words,
// so it must be reapplied after each retype to keep the derivation bound
// to the right leaf.
func (ctx *Context) wotsSecretKey(skSeed, pkSeed []byte, addr Address, keyPair, c uint32) []byte {
	addr.SetTypeAndClear(AddrWotsPRF)
	addr.SetKeyPairAddress(keyPair)
	addr.SetChainAddress(c)
	return ctx.PRF(pkSeed, skSeed, &addr)
}

// wotsPkGen computes the len chain public values and compresses them into
// a single n-byte WOTS+ public key. addr's keypair_address must already be
// set by the caller (its type is expected to be AddrWotsHash).
func (ctx *Context) wotsPkGen(skSeed, pkSeed []byte, addr Address) []byte {
	keyPair := addr[5]
	length := ctx.Params.Len()
	tmp := make([][]byte, length)
	for c := 0; c < length; c++ {
		sk := ctx.wotsSecretKey(skSeed, pkSeed, addr, keyPair, uint32(c))

		chainAddr := addr
		chainAddr.SetTypeAndClear(AddrWotsHash)
		chainAddr.SetKeyPairAddress(keyPair)
		chainAddr.SetChainAddress(uint32(c))
		t, err := ctx.wotsChain(pkSeed, sk, 0, wotsW-1, chainAddr)
		if err != nil {
			panic(err) // c < len and w-1 bounds are a class invariant, never violated here
		}
		tmp[c] = t
	}

	pkAddr := addr
	pkAddr.SetTypeAndClear(AddrWotsPK)
	pkAddr.SetKeyPairAddress(keyPair)
	return ctx.Tlen(pkSeed, tmp, &pkAddr)
}

// wotsSign produces the len chain values of a WOTS+ signature over msg, an
// n-byte value. addr's keypair_address must already be set by the caller.
func (ctx *Context) wotsSign(msg, skSeed, pkSeed []byte, addr Address) [][]byte {
	keyPair := addr[5]
	digits := ctx.wotsDigits(msg)
	sig := make([][]byte, len(digits))
	for c, d := range digits {
		sk := ctx.wotsSecretKey(skSeed, pkSeed, addr, keyPair, uint32(c))

		chainAddr := addr
		chainAddr.SetTypeAndClear(AddrWotsHash)
		chainAddr.SetKeyPairAddress(keyPair)
		chainAddr.SetChainAddress(uint32(c))
		s, err := ctx.wotsChain(pkSeed, sk, 0, d, chainAddr)
		if err != nil {
			panic(err)
		}
		sig[c] = s
	}
	return sig
}

// wotsPkFromSig recovers the WOTS+ public key a signature would verify
// against, without knowledge of the secret key. addr's keypair_address
// must already be set by the caller.
func (ctx *Context) wotsPkFromSig(sig [][]byte, msg, pkSeed []byte, addr Address) ([]byte, Error) {
	keyPair := addr[5]
	digits := ctx.wotsDigits(msg)
	if len(digits) != len(sig) {
		return nil, errorf(InvalidLength, "wots pkFromSig: expected %d chains, got %d", len(digits), len(sig))
	}

	tmp := make([][]byte, len(sig))
	for c, d := range digits {
		chainAddr := addr
		chainAddr.SetTypeAndClear(AddrWotsHash)
		chainAddr.SetKeyPairAddress(keyPair)
		chainAddr.SetChainAddress(uint32(c))
		t, err := ctx.wotsChain(pkSeed, sig[c], d, wotsW-1-d, chainAddr)
		if err != nil {
			return nil, err
		}
		tmp[c] = t
	}

	pkAddr := addr
	pkAddr.SetTypeAndClear(AddrWotsPK)
	pkAddr.SetKeyPairAddress(keyPair)
	return ctx.Tlen(pkSeed, tmp, &pkAddr), nil
}
