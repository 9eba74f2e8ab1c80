package slhdsa

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestKeygenSignVerifyAllParamSets is the universal invariant of §8: for
// every registered parameter set, keygen -> sign -> verify succeeds.
// The "s" variants have the tallest XMSS trees, so signing under them is
// the expensive part of the suite; the other signing tests use the cheaper
// "f" instances.
func TestKeygenSignVerifyAllParamSets(t *testing.T) {
	for _, name := range ListNames() {
		t.Run(name, func(t *testing.T) {
			ctx, err := NewContextFromName(name)
			if err != nil {
				t.Fatal(err)
			}
			rng := rand.New(rand.NewSource(1))
			sk, pk, gerr := ctx.GenerateKey(rng)
			if gerr != nil {
				t.Fatalf("GenerateKey: %v", gerr)
			}

			msg := []byte("the quick brown fox jumps over the lazy dog")
			sig, serr := sk.Sign(rng, msg, []byte("ctx"), false)
			if serr != nil {
				t.Fatalf("Sign: %v", serr)
			}

			sigBytes, merr := sig.MarshalBinary()
			if merr != nil {
				t.Fatalf("MarshalBinary: %v", merr)
			}
			if len(sigBytes) != ctx.Params.SigBytes {
				t.Fatalf("signature length = %d, want %d", len(sigBytes), ctx.Params.SigBytes)
			}

			if !pk.Verify(sig, msg, []byte("ctx")) {
				t.Fatal("Verify rejected a freshly produced signature")
			}
		})
	}
}

func TestSignDeterministicRepeatsByteIdentical(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	sk, _, gerr := ctx.GenerateKey(rand.New(rand.NewSource(2)))
	if gerr != nil {
		t.Fatal(gerr)
	}
	msg := []byte("deterministic signing message")

	sig1, err1 := sk.Sign(rngFailure{}, msg, nil, true)
	if err1 != nil {
		t.Fatalf("Sign (deterministic, no rng consumed): %v", err1)
	}
	sig2, err2 := sk.Sign(rngFailure{}, msg, nil, true)
	if err2 != nil {
		t.Fatalf("Sign (deterministic, no rng consumed): %v", err2)
	}

	b1, _ := sig1.MarshalBinary()
	b2, _ := sig2.MarshalBinary()
	if !bytes.Equal(b1, b2) {
		t.Fatal("deterministic signing produced different signatures for the same message")
	}
}

func TestSignHedgedVariesAcrossCalls(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))
	sk, _, gerr := ctx.GenerateKey(rng)
	if gerr != nil {
		t.Fatal(gerr)
	}
	msg := []byte("hedged signing message")

	sig1, _ := sk.Sign(rng, msg, nil, false)
	sig2, _ := sk.Sign(rng, msg, nil, false)
	b1, _ := sig1.MarshalBinary()
	b2, _ := sig2.MarshalBinary()
	if bytes.Equal(b1, b2) {
		t.Fatal("hedged signing produced identical signatures across two calls")
	}
}

// TestBitFlipRejection is the §8 universal invariant: flipping any single
// bit in the signature, message, public key or context causes Verify to
// return false.
func TestBitFlipRejection(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(4))
	sk, pk, gerr := ctx.GenerateKey(rng)
	if gerr != nil {
		t.Fatal(gerr)
	}
	msg := []byte("message to be tampered with")
	ctxStr := []byte("app-context")

	sig, serr := sk.Sign(rng, msg, ctxStr, true)
	if serr != nil {
		t.Fatal(serr)
	}
	if !pk.Verify(sig, msg, ctxStr) {
		t.Fatal("baseline signature failed to verify")
	}

	sigBytes, _ := sig.MarshalBinary()
	flipped := append([]byte(nil), sigBytes...)
	flipped[0] ^= 0x01
	flippedSig, perr := ctx.ParseSignature(flipped)
	if perr != nil {
		t.Fatalf("ParseSignature: %v", perr)
	}
	if pk.Verify(flippedSig, msg, ctxStr) {
		t.Fatal("Verify accepted a signature with a flipped bit")
	}

	badMsg := append([]byte(nil), msg...)
	badMsg[0] ^= 0x01
	if pk.Verify(sig, badMsg, ctxStr) {
		t.Fatal("Verify accepted a tampered message")
	}

	badCtx := append([]byte(nil), ctxStr...)
	badCtx[0] ^= 0x01
	if pk.Verify(sig, msg, badCtx) {
		t.Fatal("Verify accepted a tampered context string")
	}

	pkBytes, _ := pk.MarshalBinary()
	badPKBytes := append([]byte(nil), pkBytes...)
	badPKBytes[0] ^= 0x01
	badPK, pkerr := ctx.ParsePublicKey(badPKBytes)
	if pkerr != nil {
		t.Fatalf("ParsePublicKey: %v", pkerr)
	}
	if badPK.Verify(sig, msg, ctxStr) {
		t.Fatal("Verify accepted a signature under a tampered public key")
	}
}

func TestVerifyIsTotalOnMalformedSignature(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	_, pk, gerr := ctx.GenerateKey(rand.New(rand.NewSource(5)))
	if gerr != nil {
		t.Fatal(gerr)
	}
	if _, perr := ctx.ParseSignature(make([]byte, 10)); perr == nil || perr.Kind() != InvalidLength {
		t.Fatalf("expected InvalidLength on short signature, got %v", perr)
	}
	// A nil signature must never panic Verify; it must simply fail.
	if pk.Verify(nil, []byte("m"), nil) {
		t.Fatal("Verify accepted a nil signature")
	}
}

func TestSignRejectsOversizeContext(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	sk, _, gerr := ctx.GenerateKey(rand.New(rand.NewSource(6)))
	if gerr != nil {
		t.Fatal(gerr)
	}
	bigCtx := bytes.Repeat([]byte{0x01}, 256)
	_, serr := sk.Sign(rand.New(rand.NewSource(6)), []byte("m"), bigCtx, true)
	if serr == nil || serr.Kind() != InvalidLength {
		t.Fatalf("expected InvalidLength for oversize context, got %v", serr)
	}
}

func TestPreHashSignVerifyRoundTrip(t *testing.T) {
	ctx, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(8))
	sk, pk, gerr := ctx.GenerateKey(rng)
	if gerr != nil {
		t.Fatal(gerr)
	}
	msg := []byte("message signed in pre-hash mode")

	for _, ph := range []PreHashFunc{PreHashSHA256, PreHashSHA512, PreHashSHAKE128, PreHashSHAKE256} {
		sig, serr := sk.SignPreHash(rng, msg, []byte("ctx"), ph, true)
		if serr != nil {
			t.Fatalf("ph=%d: SignPreHash: %v", ph, serr)
		}
		if !pk.VerifyPreHash(sig, msg, []byte("ctx"), ph) {
			t.Fatalf("ph=%d: VerifyPreHash rejected a valid signature", ph)
		}
		// Signing pre-hash and verifying pure (or vice versa) must fail:
		// the encodings differ by their leading domain byte.
		if pk.Verify(sig, msg, []byte("ctx")) {
			t.Fatalf("ph=%d: pure-mode Verify accepted a pre-hash signature", ph)
		}
	}
}

func TestVerifyRejectsMismatchedParamSet(t *testing.T) {
	ctxA, err := NewContextFromName("SLH-DSA-SHAKE-128f")
	if err != nil {
		t.Fatal(err)
	}
	ctxB, err := NewContextFromName("SLH-DSA-SHAKE-128s")
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(9))
	skA, _, _ := ctxA.GenerateKey(rng)
	_, pkB, _ := ctxB.GenerateKey(rng)

	msg := []byte("cross parameter set message")
	sig, serr := skA.Sign(rng, msg, nil, true)
	if serr != nil {
		t.Fatal(serr)
	}
	if pkB.Verify(sig, msg, nil) {
		t.Fatal("Verify accepted a signature produced under a different parameter set")
	}
}
