package slhdsa

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// PreHashFunc names a hash function usable as the PH in pre-hash signing,
// each with its 11-byte ASN.1 DER OID.
type PreHashFunc int

const (
	PreHashSHA256 PreHashFunc = iota
	PreHashSHA512
	PreHashSHAKE128
	PreHashSHAKE256
)

var preHashOIDs = map[PreHashFunc][]byte{
	PreHashSHA256:   {0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01},
	PreHashSHA512:   {0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03},
	PreHashSHAKE128: {0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0B},
	PreHashSHAKE256: {0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0C},
}

func (ph PreHashFunc) digest(msg []byte) ([]byte, Error) {
	switch ph {
	case PreHashSHA256:
		sum := sha256.Sum256(msg)
		return sum[:], nil
	case PreHashSHA512:
		sum := sha512.Sum512(msg)
		return sum[:], nil
	case PreHashSHAKE128:
		h := sha3.NewShake128()
		h.Write(msg)
		out := make([]byte, 32)
		h.Read(out)
		return out, nil
	case PreHashSHAKE256:
		h := sha3.NewShake256()
		h.Write(msg)
		out := make([]byte, 64)
		h.Read(out)
		return out, nil
	default:
		return nil, errorf(UnsupportedHash, "unsupported pre-hash function %d", ph)
	}
}

const maxContextLen = 255

// encodePure builds the pure-mode M' = 0x00 || len(ctx) || ctx || M.
func encodePure(ctxStr, msg []byte) ([]byte, Error) {
	if len(ctxStr) > maxContextLen {
		return nil, errorf(InvalidLength, "context string exceeds %d bytes", maxContextLen)
	}
	out := make([]byte, 0, 2+len(ctxStr)+len(msg))
	out = append(out, 0x00, byte(len(ctxStr)))
	out = append(out, ctxStr...)
	out = append(out, msg...)
	return out, nil
}

// encodePreHash builds the pre-hash M' = 0x01 || len(ctx) || ctx ||
// OID(PH) || PH(M).
func encodePreHash(ctxStr, msg []byte, ph PreHashFunc) ([]byte, Error) {
	if len(ctxStr) > maxContextLen {
		return nil, errorf(InvalidLength, "context string exceeds %d bytes", maxContextLen)
	}
	oid, ok := preHashOIDs[ph]
	if !ok {
		return nil, errorf(UnsupportedHash, "unsupported pre-hash function %d", ph)
	}
	digest, err := ph.digest(msg)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 2+len(ctxStr)+len(oid)+len(digest))
	out = append(out, 0x01, byte(len(ctxStr)))
	out = append(out, ctxStr...)
	out = append(out, oid...)
	out = append(out, digest...)
	return out, nil
}
