package crypto

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vellumchain/vellum/common"
)

var (
	ErrSigningFailed      = errors.New("signing failed")
	ErrVerificationFailed = errors.New("signature verification failed")
)

// Signable is a payload with a canonical byte encoding to sign over.
// The encoding must embed the payload kind so that a signature over
// one payload type never verifies against another.
type Signable interface {
	SignBytes() ([]byte, error)
}

// TypedSignature is a signature permanently bound, at the type level,
// to the payload type it was computed over.
type TypedSignature[T Signable] struct {
	Signature Signature `json:"signature"`
	Signer    PublicKey `json:"signer"`
}

// Sign signs the canonical encoding of payload under the private key
// and returns the signature bound to the payload type. It fails only
// on bad key material; the payload is already valid by construction.
func Sign[T Signable](payload T, key PrivateKey) (TypedSignature[T], error) {
	var ts TypedSignature[T]
	signer, err := key.PublicKey()
	if err != nil {
		return ts, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	msg, err := payload.SignBytes()
	if err != nil {
		return ts, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}
	digest := common.Sha3Hash(msg)
	copy(ts.Signature[:], ed25519.Sign(ed25519.PrivateKey(key), digest.Bytes()))
	ts.Signer = signer
	return ts, nil
}

// Verify checks the signature against the canonical encoding of
// payload and the signer's public key.
func (ts TypedSignature[T]) Verify(payload T) error {
	msg, err := payload.SignBytes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	digest := common.Sha3Hash(msg)
	if !ed25519.Verify(ts.Signer[:], digest.Bytes(), ts.Signature[:]) {
		return ErrVerificationFailed
	}
	return nil
}

// String returns the canonical JSON text of the typed signature. The
// output is accepted back by DecodeTypedSignature, so a printed
// signature can be passed verbatim as a proof argument.
func (ts TypedSignature[T]) String() string {
	b, err := json.Marshal(ts)
	if err != nil {
		return fmt.Sprintf("TypedSignature{%v by %v}", ts.Signature, ts.Signer)
	}
	return string(b)
}

// DecodeTypedSignature decodes the canonical JSON text of a typed
// signature (a proof) for the given payload type.
func DecodeTypedSignature[T Signable](s string) (TypedSignature[T], error) {
	var ts TypedSignature[T]
	if err := json.Unmarshal([]byte(s), &ts); err != nil {
		return TypedSignature[T]{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return ts, nil
}

// SignHash256 signs a raw 32-byte digest directly. This is the ad-hoc
// signing path with no payload type binding.
func SignHash256(h common.Hash256, key PrivateKey) (Signature, error) {
	var sig Signature
	if len(key) != PrivateKeyLength {
		return sig, fmt.Errorf("%w: %v", ErrSigningFailed, ErrInvalidPrivateKey)
	}
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(key), h.Bytes()))
	return sig, nil
}

// VerifyHash256 checks an ad-hoc signature over a raw 32-byte digest.
func VerifyHash256(h common.Hash256, signer PublicKey, sig Signature) error {
	if !ed25519.Verify(signer[:], h.Bytes(), sig[:]) {
		return ErrVerificationFailed
	}
	return nil
}
