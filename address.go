package slhdsa

// AddressType tags what an Address is being used for, and governs how its
// three trailing words are interpreted.
type AddressType uint32

const (
	AddrWotsHash AddressType = iota
	AddrWotsPK
	AddrTree
	AddrForsTree
	AddrForsRoots
	AddrWotsPRF
	AddrForsPRF
)

// Address is the 32-byte structured domain separator (ADRS) passed to every
// hash call. Logically eight big-endian 32-bit words: layer, a 96-bit tree
// field (three words), a type, and three trailing words whose meaning
// depends on type.
//
// Callers own their Address values; recursive node computations take them
// by value and clone before descending, per the single-threaded, stack-owned
// discipline the scheme requires.
type Address [8]uint32

// SetLayer sets the hypertree layer word.
func (a *Address) SetLayer(layer uint32) { a[0] = layer }

// SetTreeAddress sets the 96-bit tree field from a TreeIndex.
func (a *Address) SetTreeAddress(t TreeIndex) {
	a[1] = t.Hi
	a[2] = t.Mid
	a[3] = t.Lo
}

// SetTypeAndClear sets the type word and zeroes the three trailing words,
// per the set_type_and_clear invariant that must hold on every type change.
func (a *Address) SetTypeAndClear(t AddressType) {
	a[4] = uint32(t)
	a[5], a[6], a[7] = 0, 0, 0
}

// SetKeyPairAddress sets the keypair-address trailing word (word 5), used
// under AddrWotsHash, AddrWotsPK, AddrWotsPRF, AddrForsTree, AddrForsRoots
// and AddrForsPRF.
func (a *Address) SetKeyPairAddress(x uint32) { a[5] = x }

// SetChainAddress sets the WOTS+ chain index (word 6), used under
// AddrWotsHash and AddrWotsPRF.
func (a *Address) SetChainAddress(x uint32) { a[6] = x }

// SetHashAddress sets the WOTS+ chain step counter (word 7), used under
// AddrWotsHash.
func (a *Address) SetHashAddress(x uint32) { a[7] = x }

// SetTreeHeight sets the tree-height trailing word (word 6), used under
// AddrTree and AddrForsTree.
func (a *Address) SetTreeHeight(x uint32) { a[6] = x }

// SetTreeIndex sets the tree-index trailing word (word 7), used under
// AddrTree, AddrForsTree and AddrForsPRF.
func (a *Address) SetTreeIndex(x uint32) { a[7] = x }

// Bytes serializes the address in its full 32-byte big-endian form, used
// by the SHAKE hash suite.
func (a *Address) Bytes() []byte {
	buf := make([]byte, 32)
	a.WriteInto(buf)
	return buf
}

// WriteInto writes the full 32-byte form into buf, which must have length
// at least 32.
func (a *Address) WriteInto(buf []byte) {
	for i := 0; i < 8; i++ {
		toByteInto(uint64(a[i]), buf[i*4:i*4+4])
	}
}

// CompressedBytes serializes the 22-byte compressed address form used by
// the SHA-2 hash suites: one low byte of layer, the low 8 bytes of the
// 96-bit tree field, one low byte of type, and all twelve trailing bytes.
func (a *Address) CompressedBytes() []byte {
	buf := make([]byte, 22)
	a.WriteCompressedInto(buf)
	return buf
}

// WriteCompressedInto writes the 22-byte compressed form into buf, which
// must have length at least 22.
func (a *Address) WriteCompressedInto(buf []byte) {
	full := a.Bytes()
	buf[0] = full[3]          // low byte of layer
	copy(buf[1:9], full[8:16]) // low 64 bits of the tree field
	buf[9] = full[19]         // low byte of type
	copy(buf[10:22], full[20:32])
}

// TreeIndex is a 96-bit big-endian unsigned integer represented as three
// 32-bit limbs (Hi, Mid, Lo), wide enough for FIPS 205's 96-bit tree
// address. A 64-bit representation is insufficient: it fails the largest
// test vectors for the 256s/256f parameter sets.
type TreeIndex struct {
	Hi, Mid, Lo uint32
}

// TreeIndexFromBytes builds a TreeIndex from a big-endian byte slice of up
// to 12 bytes. Shorter slices are treated as right-aligned (the low end of
// the value), with the high end implicitly zero.
func TreeIndexFromBytes(raw []byte) TreeIndex {
	var buf [12]byte
	copy(buf[12-len(raw):], raw)
	return TreeIndex{
		Hi:  uint32(toInt(buf[0:4], 4)),
		Mid: uint32(toInt(buf[4:8], 4)),
		Lo:  uint32(toInt(buf[8:12], 4)),
	}
}

// Bytes serializes the TreeIndex as 12 big-endian bytes.
func (t TreeIndex) Bytes() []byte {
	buf := make([]byte, 12)
	toByteInto(uint64(t.Hi), buf[0:4])
	toByteInto(uint64(t.Mid), buf[4:8])
	toByteInto(uint64(t.Lo), buf[8:12])
	return buf
}

func clampBits(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// maskLow returns a mask keeping the low n bits of a 32-bit word, for n in
// [0, 32]. Relies on Go's defined shift semantics: shifting a uint32 by 32
// yields 0, so (1<<32)-1 wraps to all-ones, exactly the n=32 case.
func maskLow(n uint32) uint32 {
	return uint32(1)<<n - 1
}

// Residue returns the low `bits` bits of t, zeroing the rest. This is
// idx_tree.mod_2^bits in the spec's notation.
func (t TreeIndex) Residue(bits uint32) TreeIndex {
	b := int(bits)
	loKeep := clampBits(b, 0, 32)
	midKeep := clampBits(b-32, 0, 32)
	hiKeep := clampBits(b-64, 0, 32)
	return TreeIndex{
		Hi:  t.Hi & maskLow(uint32(hiKeep)),
		Mid: t.Mid & maskLow(uint32(midKeep)),
		Lo:  t.Lo & maskLow(uint32(loKeep)),
	}
}

// RemoveBits right-shifts the 96-bit value by `bits`.
func (t TreeIndex) RemoveBits(bits uint32) TreeIndex {
	if bits == 0 {
		return t
	}
	if bits >= 96 {
		return TreeIndex{}
	}
	buf := t.Bytes()
	shifted := shiftRightBytes(buf, bits)
	return TreeIndexFromBytes(shifted)
}

func shiftRightBytes(b []byte, bits uint32) []byte {
	out := make([]byte, len(b))
	byteShift := int(bits / 8)
	bitShift := bits % 8
	for i := len(b) - 1; i >= 0; i-- {
		srcIdx := i - byteShift
		if srcIdx < 0 {
			continue
		}
		cur := b[srcIdx]
		var prev byte
		if srcIdx-1 >= 0 {
			prev = b[srcIdx-1]
		}
		out[i] = (cur >> bitShift) | (prev << (8 - bitShift))
	}
	return out
}
