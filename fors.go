package slhdsa

// forsSecretKey derives the global leaf index idx's one-time secret value.
// addr's keypair_address is preserved explicitly across the retype to
// AddrForsPRF, as required by set_type_and_clear.
func (ctx *Context) forsSecretKey(skSeed, pkSeed []byte, addr Address, idx uint32) []byte {
	keyPair := addr[5]
	addr.SetTypeAndClear(AddrForsPRF)
	addr.SetKeyPairAddress(keyPair)
	addr.SetTreeIndex(idx)
	return ctx.PRF(pkSeed, skSeed, &addr)
}

// forsNode computes the FORS internal node at height z over the global
// leaf index space [0, k*2^a), addressed directly by idx = the node's
// tree_index at that height. addr's type is expected to already be
// AddrForsTree with keypair_address set by the caller; it is not retyped
// since it does not change across the recursion.
func (ctx *Context) forsNode(skSeed, pkSeed []byte, idx, z uint32, addr Address) []byte {
	if z == 0 {
		sk := ctx.forsSecretKey(skSeed, pkSeed, addr, idx)
		leafAddr := addr
		leafAddr.SetTreeHeight(0)
		leafAddr.SetTreeIndex(idx)
		return ctx.F(pkSeed, sk, &leafAddr)
	}

	left := ctx.forsNode(skSeed, pkSeed, 2*idx, z-1, addr)
	right := ctx.forsNode(skSeed, pkSeed, 2*idx+1, z-1, addr)

	nodeAddr := addr
	nodeAddr.SetTreeHeight(z)
	nodeAddr.SetTreeIndex(idx)
	return ctx.H(pkSeed, left, right, &nodeAddr)
}

// forsTreeSignature is one FORS tree's contribution: the revealed leaf
// secret and its a-long authentication path.
type forsTreeSignature struct {
	secret   []byte
	authPath [][]byte
}

// forsSign signs the a*k-bit digest md, split into k base-2^a indices by
// the caller's addressing convention. addr's type must already be
// AddrForsTree with keypair_address (= idx_leaf) set.
func (ctx *Context) forsSign(md, skSeed, pkSeed []byte, addr Address) []forsTreeSignature {
	a := ctx.a()
	k := ctx.k()
	indices := base2b(md, uint(a), k)

	sig := make([]forsTreeSignature, k)
	for i := 0; i < k; i++ {
		base := uint32(i) << uint(a)
		leafIdx := base + indices[i]
		secret := ctx.forsSecretKey(skSeed, pkSeed, addr, leafIdx)

		auth := make([][]byte, a)
		for j := 0; j < a; j++ {
			sibling := (uint32(i) << uint(a-j)) + ((indices[i] >> uint(j)) ^ 1)
			auth[j] = ctx.forsNode(skSeed, pkSeed, sibling, uint32(j), addr)
		}

		sig[i] = forsTreeSignature{secret: secret, authPath: auth}
	}
	return sig
}

// forsPkFromSig recovers the FORS public key (the compressed k roots) a
// signature would verify against for digest md.
func (ctx *Context) forsPkFromSig(sig []forsTreeSignature, md, pkSeed []byte, addr Address) ([]byte, Error) {
	a := ctx.a()
	k := ctx.k()
	if len(sig) != k {
		return nil, errorf(InvalidLength, "fors pkFromSig: expected %d trees, got %d", k, len(sig))
	}
	indices := base2b(md, uint(a), k)

	keyPair := addr[5]
	roots := make([][]byte, k)
	for i := 0; i < k; i++ {
		base := uint32(i) << uint(a)
		leafIdx := base + indices[i]

		leafAddr := addr
		leafAddr.SetTreeHeight(0)
		leafAddr.SetTreeIndex(leafIdx)
		node := ctx.F(pkSeed, sig[i].secret, &leafAddr)

		treeIdx := leafIdx
		for j := 0; j < a; j++ {
			nodeAddr := addr
			nodeAddr.SetTreeHeight(uint32(j + 1))

			if (indices[i]>>uint(j))&1 == 0 {
				treeIdx /= 2
				nodeAddr.SetTreeIndex(treeIdx)
				node = ctx.H(pkSeed, node, sig[i].authPath[j], &nodeAddr)
			} else {
				treeIdx = (treeIdx - 1) / 2
				nodeAddr.SetTreeIndex(treeIdx)
				node = ctx.H(pkSeed, sig[i].authPath[j], node, &nodeAddr)
			}
		}
		roots[i] = node
	}

	rootsAddr := addr
	rootsAddr.SetTypeAndClear(AddrForsRoots)
	rootsAddr.SetKeyPairAddress(keyPair)
	return ctx.Tlen(pkSeed, roots, &rootsAddr), nil
}

func forsSignatureBytes(sig []forsTreeSignature) []byte {
	var out []byte
	for _, t := range sig {
		out = append(out, t.secret...)
		for _, a := range t.authPath {
			out = append(out, a...)
		}
	}
	return out
}

func parseForsSignature(b []byte, n, a, k int) ([]forsTreeSignature, Error) {
	expect := k * (1 + a) * n
	if len(b) != expect {
		return nil, errorf(InvalidLength, "fors signature: expected %d bytes, got %d", expect, len(b))
	}
	sig := make([]forsTreeSignature, k)
	off := 0
	for i := range sig {
		sig[i].secret = b[off : off+n]
		off += n
		sig[i].authPath = make([][]byte, a)
		for j := range sig[i].authPath {
			sig[i].authPath[j] = b[off : off+n]
			off += n
		}
	}
	return sig, nil
}
