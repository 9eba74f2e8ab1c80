package slhdsa

// verifyInternal is slh_verify_internal: recompute the digest split,
// recover PK_FORS, and check the hypertree signature folds to PK.root.
// It never panics; any malformed input is reported as a false verdict.
func (pk *PublicKey) verifyInternal(mPrime []byte, sig *Signature) bool {
	ctx := pk.ctx
	if sig == nil || sig.ctx == nil || sig.ctx.Params.Name != ctx.Params.Name {
		return false
	}

	digest := ctx.HMsg(sig.r, pk.pkSeed, pk.pkRoot, mPrime)
	md, idxTree, idxLeaf := ctx.splitDigest(digest)

	addr := Address{}
	addr.SetTreeAddress(idxTree)
	addr.SetTypeAndClear(AddrForsTree)
	addr.SetKeyPairAddress(idxLeaf)

	pkFors, err := ctx.forsPkFromSig(sig.forsSig, md, pk.pkSeed, addr)
	if err != nil {
		return false
	}

	return ctx.htVerify(pkFors, sig.htSig, pk.pkSeed, pk.pkRoot, idxTree, idxLeaf)
}

// Verify reports whether sig is a valid pure-mode signature of msg under
// ctxStr. It is total: malformed signatures or a mismatched parameter set
// yield false rather than an error.
func (pk *PublicKey) Verify(sig *Signature, msg, ctxStr []byte) bool {
	mPrime, err := encodePure(ctxStr, msg)
	if err != nil {
		return false
	}
	return pk.verifyInternal(mPrime, sig)
}

// VerifyPreHash reports whether sig is a valid pre-hash signature of msg
// (hashed with ph) under ctxStr.
func (pk *PublicKey) VerifyPreHash(sig *Signature, msg, ctxStr []byte, ph PreHashFunc) bool {
	mPrime, err := encodePreHash(ctxStr, msg, ph)
	if err != nil {
		return false
	}
	return pk.verifyInternal(mPrime, sig)
}
