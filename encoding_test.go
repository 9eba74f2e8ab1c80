package slhdsa

import (
	"bytes"
	"testing"
)

func TestEncodePureLayout(t *testing.T) {
	ctxStr := []byte("my-context")
	msg := []byte("hello")
	got, err := encodePure(ctxStr, msg)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0x00, byte(len(ctxStr))}, append(append([]byte{}, ctxStr...), msg...)...)
	if !bytes.Equal(got, want) {
		t.Fatalf("encodePure mismatch:\n got  %x\n want %x", got, want)
	}
}

func TestEncodePureRejectsOversizeContext(t *testing.T) {
	_, err := encodePure(bytes.Repeat([]byte{1}, 256), []byte("m"))
	if err == nil || err.Kind() != InvalidLength {
		t.Fatalf("expected InvalidLength, got %v", err)
	}
}

func TestEncodePreHashLayoutAndOIDs(t *testing.T) {
	cases := []struct {
		ph      PreHashFunc
		oidHex  string
		digLen  int
	}{
		{PreHashSHA256, "0609608648016503040201", 32},
		{PreHashSHA512, "0609608648016503040203", 64},
		{PreHashSHAKE128, "060960864801650304020b", 32},
		{PreHashSHAKE256, "060960864801650304020c", 64},
	}
	ctxStr := []byte("ctx")
	msg := []byte("a message to be pre-hashed")

	for _, c := range cases {
		got, err := encodePreHash(ctxStr, msg, c.ph)
		if err != nil {
			t.Fatalf("ph=%d: %v", c.ph, err)
		}
		if got[0] != 0x01 {
			t.Fatalf("ph=%d: leading domain byte = %#x, want 0x01", c.ph, got[0])
		}
		if int(got[1]) != len(ctxStr) {
			t.Fatalf("ph=%d: context length byte = %d, want %d", c.ph, got[1], len(ctxStr))
		}
		off := 2 + len(ctxStr)
		oid := got[off : off+11]
		wantOID := mustDecode(t, c.oidHex)
		if !bytes.Equal(oid, wantOID) {
			t.Fatalf("ph=%d: OID mismatch:\n got  %x\n want %x", c.ph, oid, wantOID)
		}
		digest := got[off+11:]
		if len(digest) != c.digLen {
			t.Fatalf("ph=%d: digest length = %d, want %d", c.ph, len(digest), c.digLen)
		}
	}
}

func TestEncodePreHashUnsupportedFunction(t *testing.T) {
	_, err := encodePreHash(nil, []byte("m"), PreHashFunc(99))
	if err == nil || err.Kind() != UnsupportedHash {
		t.Fatalf("expected UnsupportedHash, got %v", err)
	}
}
