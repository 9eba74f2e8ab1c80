package slhdsa

import (
	"crypto"
	"io"
)

// StdSigner adapts a *PrivateKey to the standard library's crypto.Signer
// interface, for callers (e.g. TLS or x509 plumbing expecting that shape)
// that want to drive SLH-DSA through stdlib-shaped signing code. It wraps
// PrivateKey.Sign/Public under a fixed context string and deterministic
// signing; it does not change slh_sign_internal's semantics at all.
type StdSigner struct {
	sk     *PrivateKey
	ctxStr []byte
}

// AsStdSigner wraps sk as a crypto.Signer, signing with the given context
// string on every call.
func (sk *PrivateKey) AsStdSigner(ctxStr []byte) *StdSigner {
	return &StdSigner{sk: sk, ctxStr: ctxStr}
}

// Public implements crypto.Signer.
func (s *StdSigner) Public() crypto.PublicKey {
	return s.sk.Public()
}

// Sign implements crypto.Signer. opts is accepted for interface
// compatibility and ignored: SLH-DSA signs msg directly rather than a
// caller-supplied pre-hashed digest, so there is no hash algorithm to
// negotiate through SignerOpts.
func (s *StdSigner) Sign(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := s.sk.Sign(rand, msg, s.ctxStr, true)
	if err != nil {
		return nil, err
	}
	return sig.MarshalBinary()
}

// Equal reports whether pk and x are the same SLH-DSA public key, for
// crypto.PublicKey-shaped callers (e.g. x509) that expect an Equal method.
func (pk *PublicKey) Equal(x crypto.PublicKey) bool {
	other, ok := x.(*PublicKey)
	if !ok {
		return false
	}
	if pk.ctx.Params.Name != other.ctx.Params.Name {
		return false
	}
	return constantTimeEqual(pk.pkSeed, other.pkSeed) && constantTimeEqual(pk.pkRoot, other.pkRoot)
}
