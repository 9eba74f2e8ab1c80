package slhdsa

import "io"

// Signature is R || SIG_FORS || SIG_HT.
type Signature struct {
	ctx *Context

	r       []byte
	forsSig []forsTreeSignature
	htSig   htSignature
}

// MarshalBinary serializes sig to its exact wire length, Params.SigBytes.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	n := sig.ctx.n()
	out := make([]byte, 0, sig.ctx.Params.SigBytes)
	out = append(out, sig.r...)
	out = append(out, forsSignatureBytes(sig.forsSig)...)
	out = append(out, sig.htSig.bytes(n, sig.ctx.Params.Len(), sig.ctx.h1())...)
	return out, nil
}

// ParseSignature deserializes a signature of exactly Params.SigBytes
// bytes.
func (ctx *Context) ParseSignature(b []byte) (*Signature, Error) {
	p := ctx.Params
	if len(b) != p.SigBytes {
		return nil, errorf(InvalidLength, "signature: expected %d bytes, got %d", p.SigBytes, len(b))
	}
	n := p.N
	r := append([]byte(nil), b[0:n]...)
	off := n

	forsLen := p.K * (1 + p.A) * n
	forsSig, err := parseForsSignature(b[off:off+forsLen], n, p.A, p.K)
	if err != nil {
		return nil, err
	}
	off += forsLen

	htSig, err := parseHTSignature(b[off:], n, p.Len(), p.H1, p.D)
	if err != nil {
		return nil, err
	}

	return &Signature{ctx: ctx, r: r, forsSig: forsSig, htSig: htSig}, nil
}

// splitDigest pulls (md, idx_tree, idx_leaf) out of a full H_msg digest,
// per the exact byte counts the spec's digest-split invariant requires.
func (ctx *Context) splitDigest(digest []byte) ([]byte, TreeIndex, uint32) {
	mdLen, idxTreeLen, idxLeafLen := ctx.digestSplitLengths()

	md := digest[0:mdLen]
	idxTreeRaw := digest[mdLen : mdLen+idxTreeLen]
	idxLeafRaw := digest[mdLen+idxTreeLen : mdLen+idxTreeLen+idxLeafLen]

	idxTree := TreeIndexFromBytes(idxTreeRaw).Residue(uint32(ctx.h() - ctx.h1()))

	h1 := ctx.h1()
	idxLeaf := uint32(toInt(idxLeafRaw, len(idxLeafRaw)))
	if h1 < 32 {
		idxLeaf &= (uint32(1) << uint(h1)) - 1
	}

	return md, idxTree, idxLeaf
}

// signInternal is slh_sign_internal: given the already-encoded message
// M' and a randomizer source addrnd (PK.seed for deterministic signing, a
// fresh random value otherwise), produce the full signature.
func (sk *PrivateKey) signInternal(mPrime, addrnd []byte) *Signature {
	ctx := sk.ctx
	pkgLogger.Logf("slhdsa: signing suite=%s tag=%x mlen=%d", ctx.Params.Name, keyTag(sk.pkSeed), len(mPrime))

	r := ctx.PRFMsg(sk.skPrf, addrnd, mPrime)
	digest := ctx.HMsg(r, sk.pkSeed, sk.pkRoot, mPrime)
	md, idxTree, idxLeaf := ctx.splitDigest(digest)

	addr := Address{}
	addr.SetTreeAddress(idxTree)
	addr.SetTypeAndClear(AddrForsTree)
	addr.SetKeyPairAddress(idxLeaf)

	sigFors := ctx.forsSign(md, sk.skSeed, sk.pkSeed, addr)
	pkFors, err := ctx.forsPkFromSig(sigFors, md, sk.pkSeed, addr)
	if err != nil {
		panic(err) // sigFors was just produced for this exact md/addr
	}

	sigHT := ctx.htSign(pkFors, sk.skSeed, sk.pkSeed, idxTree, idxLeaf)

	return &Signature{ctx: ctx, r: r, forsSig: sigFors, htSig: sigHT}
}

// Sign produces a pure-mode SLH-DSA signature over msg under the given
// context string. When deterministic is true, addrnd is fixed to PK.seed
// and repeated calls yield byte-identical signatures; otherwise rand
// supplies a fresh n-byte randomizer per call.
func (sk *PrivateKey) Sign(rand io.Reader, msg, ctxStr []byte, deterministic bool) (*Signature, Error) {
	mPrime, err := encodePure(ctxStr, msg)
	if err != nil {
		return nil, err
	}
	addrnd, err := sk.randomizer(rand, deterministic)
	if err != nil {
		return nil, err
	}
	return sk.signInternal(mPrime, addrnd), nil
}

// SignPreHash produces a pre-hash SLH-DSA signature: the message is first
// hashed with ph and the result, tagged with ph's OID, is signed in place
// of the raw message.
func (sk *PrivateKey) SignPreHash(rand io.Reader, msg, ctxStr []byte, ph PreHashFunc, deterministic bool) (*Signature, Error) {
	mPrime, err := encodePreHash(ctxStr, msg, ph)
	if err != nil {
		return nil, err
	}
	addrnd, err := sk.randomizer(rand, deterministic)
	if err != nil {
		return nil, err
	}
	return sk.signInternal(mPrime, addrnd), nil
}

func (sk *PrivateKey) randomizer(rand io.Reader, deterministic bool) ([]byte, Error) {
	if deterministic {
		return sk.pkSeed, nil
	}
	return readFull(rand, sk.ctx.n())
}
