package slhdsa

import (
	"bytes"
	"testing"
)

func TestAddressSetTypeAndClearZeroesTrailingWords(t *testing.T) {
	var a Address
	a.SetLayer(7)
	a.SetTreeAddress(TreeIndex{Hi: 1, Mid: 2, Lo: 3})
	a.SetKeyPairAddress(9)
	a.SetChainAddress(8)
	a.SetHashAddress(6)

	a.SetTypeAndClear(AddrTree)

	if a[5] != 0 || a[6] != 0 || a[7] != 0 {
		t.Fatalf("SetTypeAndClear left trailing words non-zero: %v", a)
	}
	if a[4] != uint32(AddrTree) {
		t.Fatalf("type word not set: got %d", a[4])
	}
	// Layer and tree address must survive a retype.
	if a[0] != 7 || a[1] != 1 || a[2] != 2 || a[3] != 3 {
		t.Fatalf("retype disturbed layer/tree words: %v", a)
	}
}

func TestAddressBytesLayout(t *testing.T) {
	var a Address
	a.SetLayer(0x01020304)
	a.SetTreeAddress(TreeIndex{Hi: 0x05060708, Mid: 0x090a0b0c, Lo: 0x0d0e0f10})
	a.SetTypeAndClear(AddrWotsHash)
	a.SetKeyPairAddress(0x11121314)
	a.SetChainAddress(0x15161718)
	a.SetHashAddress(0x191a1b1c)

	full := a.Bytes()
	if len(full) != 32 {
		t.Fatalf("expected 32-byte full form, got %d", len(full))
	}
	want := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c,
		0x0d, 0x0e, 0x0f, 0x10,
		0x00, 0x00, 0x00, 0x00, // AddrWotsHash == 0
		0x11, 0x12, 0x13, 0x14,
		0x15, 0x16, 0x17, 0x18,
		0x19, 0x1a, 0x1b, 0x1c,
	}
	if !bytes.Equal(full, want) {
		t.Fatalf("full form mismatch:\n got  %x\n want %x", full, want)
	}

	comp := a.CompressedBytes()
	if len(comp) != 22 {
		t.Fatalf("expected 22-byte compressed form, got %d", len(comp))
	}
	wantComp := []byte{
		0x04,                                           // low byte of layer
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, // low 64 bits of tree field
		0x00,                               // low byte of type
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, // trailing 12
	}
	if !bytes.Equal(comp, wantComp) {
		t.Fatalf("compressed form mismatch:\n got  %x\n want %x", comp, wantComp)
	}
}

func TestTreeIndexResidue(t *testing.T) {
	full := TreeIndex{Hi: 0xffffffff, Mid: 0xffffffff, Lo: 0xffffffff}

	r0 := full.Residue(0)
	if r0 != (TreeIndex{}) {
		t.Fatalf("Residue(0) should be zero, got %v", r0)
	}

	r8 := full.Residue(8)
	if r8 != (TreeIndex{Lo: 0xff}) {
		t.Fatalf("Residue(8) = %v, want Lo=0xff", r8)
	}

	r32 := full.Residue(32)
	if r32 != (TreeIndex{Lo: 0xffffffff}) {
		t.Fatalf("Residue(32) = %v, want Lo all-ones only", r32)
	}

	r40 := full.Residue(40)
	if r40 != (TreeIndex{Mid: 0xff, Lo: 0xffffffff}) {
		t.Fatalf("Residue(40) = %v", r40)
	}

	r96 := full.Residue(96)
	if r96 != full {
		t.Fatalf("Residue(96) should be identity, got %v", r96)
	}
}

func TestTreeIndexRemoveBits(t *testing.T) {
	ti := TreeIndex{Hi: 0x00000001, Mid: 0x00000000, Lo: 0x00000000}
	// 2^64, shifted right by 8 bits, should be 2^56.
	shifted := ti.RemoveBits(8)
	want := TreeIndex{Hi: 0x00000000, Mid: 0x01000000, Lo: 0x00000000}
	if shifted != want {
		t.Fatalf("RemoveBits(8) = %+v, want %+v", shifted, want)
	}

	zero := ti.RemoveBits(96)
	if zero != (TreeIndex{}) {
		t.Fatalf("RemoveBits(96) should be zero, got %v", zero)
	}

	same := ti.RemoveBits(0)
	if same != ti {
		t.Fatalf("RemoveBits(0) should be identity")
	}
}

func TestTreeIndexFromBytesRoundTrip(t *testing.T) {
	ti := TreeIndex{Hi: 0xdeadbeef, Mid: 0x01020304, Lo: 0xcafebabe}
	got := TreeIndexFromBytes(ti.Bytes())
	if got != ti {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, ti)
	}
}
