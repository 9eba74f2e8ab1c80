package slhdsa

// xmssNode computes the XMSS tree node at height z, index i (0 <= i <
// 2^(h'-z)), recursively from the WOTS+ public keys at the leaves.
//
// addr is taken by value and cloned by the caller at each recursion level,
// per the stack-owned-address discipline the scheme requires; this
// function only ever mutates its own local copy.
func (ctx *Context) xmssNode(skSeed, pkSeed []byte, i, z uint32, addr Address) []byte {
	if z == 0 {
		leafAddr := addr
		leafAddr.SetTypeAndClear(AddrWotsHash)
		leafAddr.SetKeyPairAddress(i)
		return ctx.wotsPkGen(skSeed, pkSeed, leafAddr)
	}

	left := ctx.xmssNode(skSeed, pkSeed, 2*i, z-1, addr)
	right := ctx.xmssNode(skSeed, pkSeed, 2*i+1, z-1, addr)

	treeAddr := addr
	treeAddr.SetTypeAndClear(AddrTree)
	treeAddr.SetTreeHeight(z)
	treeAddr.SetTreeIndex(i)
	return ctx.H(pkSeed, left, right, &treeAddr)
}

// xmssSignature is a WOTS+ signature together with its h' authentication
// nodes.
type xmssSignature struct {
	wotsSig  [][]byte
	authPath [][]byte
}

// xmssSign produces an XMSS signature over msg under leaf idx.
func (ctx *Context) xmssSign(msg, skSeed, pkSeed []byte, idx uint32, addr Address) xmssSignature {
	h1 := ctx.h1()
	auth := make([][]byte, h1)
	for j := 0; j < h1; j++ {
		k := (idx >> uint(j)) ^ 1
		auth[j] = ctx.xmssNode(skSeed, pkSeed, k, uint32(j), addr)
	}

	sigAddr := addr
	sigAddr.SetTypeAndClear(AddrWotsHash)
	sigAddr.SetKeyPairAddress(idx)
	wotsSig := ctx.wotsSign(msg, skSeed, pkSeed, sigAddr)

	return xmssSignature{wotsSig: wotsSig, authPath: auth}
}

// xmssPkFromSig recovers the XMSS tree root a signature/message pair
// would verify against.
func (ctx *Context) xmssPkFromSig(idx uint32, sig xmssSignature, msg, pkSeed []byte, addr Address) ([]byte, Error) {
	wotsAddr := addr
	wotsAddr.SetTypeAndClear(AddrWotsHash)
	wotsAddr.SetKeyPairAddress(idx)
	node, err := ctx.wotsPkFromSig(sig.wotsSig, msg, pkSeed, wotsAddr)
	if err != nil {
		return nil, err
	}

	treeIndex := idx
	for k := 0; k < ctx.h1(); k++ {
		treeAddr := addr
		treeAddr.SetTypeAndClear(AddrTree)
		treeAddr.SetTreeHeight(uint32(k + 1))

		if (idx>>uint(k))&1 == 0 {
			treeIndex /= 2
			treeAddr.SetTreeIndex(treeIndex)
			node = ctx.H(pkSeed, node, sig.authPath[k], &treeAddr)
		} else {
			treeIndex = (treeIndex - 1) / 2
			treeAddr.SetTreeIndex(treeIndex)
			node = ctx.H(pkSeed, sig.authPath[k], node, &treeAddr)
		}
	}

	return node, nil
}

func (s xmssSignature) bytes(n int) []byte {
	out := make([]byte, 0, (len(s.wotsSig)+len(s.authPath))*n)
	for _, c := range s.wotsSig {
		out = append(out, c...)
	}
	for _, a := range s.authPath {
		out = append(out, a...)
	}
	return out
}

func parseXMSSSignature(b []byte, n, wotsLen, h1 int) (xmssSignature, Error) {
	expect := (wotsLen + h1) * n
	if len(b) != expect {
		return xmssSignature{}, errorf(InvalidLength, "xmss signature: expected %d bytes, got %d", expect, len(b))
	}
	sig := xmssSignature{
		wotsSig:  make([][]byte, wotsLen),
		authPath: make([][]byte, h1),
	}
	off := 0
	for i := range sig.wotsSig {
		sig.wotsSig[i] = b[off : off+n]
		off += n
	}
	for i := range sig.authPath {
		sig.authPath[i] = b[off : off+n]
		off += n
	}
	return sig, nil
}
