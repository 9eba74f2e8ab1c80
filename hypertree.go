package slhdsa

// htSignature is the ordered concatenation of a hypertree's d per-layer
// XMSS signatures, bottom layer first.
type htSignature []xmssSignature

// htSign signs msg (typically a FORS public key) through the d-layer
// hypertree rooted at idxTree/idxLeaf. idxTree is consumed by value; the
// caller need not clone it itself.
func (ctx *Context) htSign(msg, skSeed, pkSeed []byte, idxTree TreeIndex, idxLeaf uint32) htSignature {
	d := ctx.d()
	h1 := uint32(ctx.h1())

	out := make(htSignature, d)

	addr := Address{}
	addr.SetLayer(0)
	addr.SetTreeAddress(idxTree)
	out[0] = ctx.xmssSign(msg, skSeed, pkSeed, idxLeaf, addr)

	curTree := idxTree
	curLeaf := idxLeaf
	curMsg := msg

	for j := 1; j < d; j++ {
		prevAddr := Address{}
		prevAddr.SetLayer(uint32(j - 1))
		prevAddr.SetTreeAddress(curTree)
		root, err := ctx.xmssPkFromSig(curLeaf, out[j-1], curMsg, pkSeed, prevAddr)
		if err != nil {
			panic(err) // out[j-1] was just produced by xmssSign above; shape is guaranteed
		}

		curLeaf = curTree.Residue(h1).Lo
		curTree = curTree.RemoveBits(h1)

		layerAddr := Address{}
		layerAddr.SetLayer(uint32(j))
		layerAddr.SetTreeAddress(curTree)
		out[j] = ctx.xmssSign(root, skSeed, pkSeed, curLeaf, layerAddr)

		curMsg = root
	}

	return out
}

// htVerify reports whether sig is a valid hypertree signature of msg under
// idxTree/idxLeaf, terminating at pkRoot.
func (ctx *Context) htVerify(msg []byte, sig htSignature, pkSeed, pkRoot []byte, idxTree TreeIndex, idxLeaf uint32) bool {
	d := ctx.d()
	h1 := uint32(ctx.h1())
	if len(sig) != d {
		return false
	}

	curTree := idxTree
	curLeaf := idxLeaf
	curMsg := msg

	for j := 0; j < d; j++ {
		addr := Address{}
		addr.SetLayer(uint32(j))
		addr.SetTreeAddress(curTree)

		node, err := ctx.xmssPkFromSig(curLeaf, sig[j], curMsg, pkSeed, addr)
		if err != nil {
			return false
		}
		curMsg = node

		if j < d-1 {
			curLeaf = curTree.Residue(h1).Lo
			curTree = curTree.RemoveBits(h1)
		}
	}

	return constantTimeEqual(curMsg, pkRoot)
}

func (sig htSignature) bytes(n, wotsLen, h1 int) []byte {
	var out []byte
	for _, s := range sig {
		out = append(out, s.bytes(n)...)
	}
	return out
}

func parseHTSignature(b []byte, n, wotsLen, h1, d int) (htSignature, Error) {
	perLayer := (wotsLen + h1) * n
	if len(b) != perLayer*d {
		return nil, errorf(InvalidLength, "ht signature: expected %d bytes, got %d", perLayer*d, len(b))
	}
	sig := make(htSignature, d)
	for j := 0; j < d; j++ {
		s, err := parseXMSSSignature(b[j*perLayer:(j+1)*perLayer], n, wotsLen, h1)
		if err != nil {
			return nil, err
		}
		sig[j] = s
	}
	return sig, nil
}
