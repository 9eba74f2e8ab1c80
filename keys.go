package slhdsa

import (
	"io"
)

// PrivateKey is an SLH-DSA signing key: SK.seed, SK.prf, PK.seed and
// PK.root, each n bytes, immutable once created.
type PrivateKey struct {
	ctx *Context

	skSeed []byte
	skPrf  []byte
	pkSeed []byte
	pkRoot []byte
}

// PublicKey is an SLH-DSA verification key: PK.seed and PK.root.
type PublicKey struct {
	ctx *Context

	pkSeed []byte
	pkRoot []byte
}

// Context returns the parameter-set context a key was created under.
func (sk *PrivateKey) Context() *Context { return sk.ctx }
func (pk *PublicKey) Context() *Context  { return pk.ctx }

func readFull(r io.Reader, n int) ([]byte, Error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapErrorf(RngFailure, err, "reading %d random bytes", n)
	}
	return buf, nil
}

// GenerateKey draws a fresh signing key/public key pair using rand as the
// entropy source. It fails with WeakKey in the astronomically unlikely
// event any drawn seed, or the derived root, is all-zero.
func (ctx *Context) GenerateKey(rand io.Reader) (*PrivateKey, *PublicKey, Error) {
	n := ctx.n()

	skSeed, err := readFull(rand, n)
	if err != nil {
		return nil, nil, err
	}
	skPrf, err := readFull(rand, n)
	if err != nil {
		return nil, nil, err
	}
	pkSeed, err := readFull(rand, n)
	if err != nil {
		return nil, nil, err
	}

	if verr := validateNonZero(map[string][]byte{
		"SK.seed": skSeed,
		"SK.prf":  skPrf,
		"PK.seed": pkSeed,
	}); verr != nil {
		return nil, nil, verr
	}

	addr := Address{}
	addr.SetLayer(uint32(ctx.d() - 1))
	pkRoot := ctx.xmssNode(skSeed, pkSeed, 0, uint32(ctx.h1()), addr)

	if verr := validateNonZero(map[string][]byte{"PK.root": pkRoot}); verr != nil {
		return nil, nil, verr
	}

	sk := &PrivateKey{ctx: ctx, skSeed: skSeed, skPrf: skPrf, pkSeed: pkSeed, pkRoot: pkRoot}
	pk := &PublicKey{ctx: ctx, pkSeed: pkSeed, pkRoot: pkRoot}
	pkgLogger.Logf("slhdsa: generated key pair suite=%s tag=%x", ctx.Params.Name, keyTag(pkSeed))
	return sk, pk, nil
}

// Public returns the public key corresponding to sk.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{ctx: sk.ctx, pkSeed: sk.pkSeed, pkRoot: sk.pkRoot}
}

// MarshalBinary serializes sk as SK.seed || SK.prf || PK.seed || PK.root,
// exactly 4n bytes.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, sk.ctx.Params.SKLen())
	out = append(out, sk.skSeed...)
	out = append(out, sk.skPrf...)
	out = append(out, sk.pkSeed...)
	out = append(out, sk.pkRoot...)
	return out, nil
}

// MarshalBinary serializes pk as PK.seed || PK.root, exactly 2n bytes.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, pk.ctx.Params.PKLen())
	out = append(out, pk.pkSeed...)
	out = append(out, pk.pkRoot...)
	return out, nil
}

// ParsePrivateKey deserializes a 4n-byte signing key and checks that it is
// not weak. It does not recompute PK.root from SK.seed: that check belongs
// to ParsePrivateKeyChecked, which is more expensive.
func (ctx *Context) ParsePrivateKey(b []byte) (*PrivateKey, Error) {
	n := ctx.n()
	if len(b) != ctx.Params.SKLen() {
		return nil, errorf(InvalidLength, "signing key: expected %d bytes, got %d", ctx.Params.SKLen(), len(b))
	}
	sk := &PrivateKey{
		ctx:    ctx,
		skSeed: append([]byte(nil), b[0:n]...),
		skPrf:  append([]byte(nil), b[n:2*n]...),
		pkSeed: append([]byte(nil), b[2*n:3*n]...),
		pkRoot: append([]byte(nil), b[3*n:4*n]...),
	}
	if verr := validateNonZero(map[string][]byte{
		"SK.seed": sk.skSeed, "SK.prf": sk.skPrf, "PK.seed": sk.pkSeed, "PK.root": sk.pkRoot,
	}); verr != nil {
		return nil, verr
	}
	return sk, nil
}

// ParsePrivateKeyChecked is ParsePrivateKey followed by a full recomputation
// of PK.root from SK.seed/PK.seed, failing with RootMismatch on disagreement.
func (ctx *Context) ParsePrivateKeyChecked(b []byte) (*PrivateKey, Error) {
	sk, err := ctx.ParsePrivateKey(b)
	if err != nil {
		return nil, err
	}
	addr := Address{}
	addr.SetLayer(uint32(ctx.d() - 1))
	recomputed := ctx.xmssNode(sk.skSeed, sk.pkSeed, 0, uint32(ctx.h1()), addr)
	if !constantTimeEqual(recomputed, sk.pkRoot) {
		return nil, errorf(RootMismatch, "signing key's PK.root disagrees with SK.seed")
	}
	return sk, nil
}

// ParsePublicKey deserializes a 2n-byte public key and checks that it is
// not weak.
func (ctx *Context) ParsePublicKey(b []byte) (*PublicKey, Error) {
	n := ctx.n()
	if len(b) != ctx.Params.PKLen() {
		return nil, errorf(InvalidLength, "public key: expected %d bytes, got %d", ctx.Params.PKLen(), len(b))
	}
	pk := &PublicKey{
		ctx:    ctx,
		pkSeed: append([]byte(nil), b[0:n]...),
		pkRoot: append([]byte(nil), b[n:2*n]...),
	}
	if verr := validateNonZero(map[string][]byte{"PK.seed": pk.pkSeed, "PK.root": pk.pkRoot}); verr != nil {
		return nil, verr
	}
	return pk, nil
}
