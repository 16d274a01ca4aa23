package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

// key material byte lengths (ed25519)
const (
	PublicKeyLength  = ed25519.PublicKeySize
	PrivateKeyLength = ed25519.PrivateKeySize
	SignatureLength  = ed25519.SignatureSize
)

var (
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
)

// PublicKey identifies a ledger member and verifies its signatures.
type PublicKey [PublicKeyLength]byte

// PrivateKey is the scoped sensitive signing key of the operator. It
// is read for signing only and must never be logged or transmitted.
type PrivateKey []byte

// Signature holds raw ed25519 signature bytes.
type Signature [SignatureLength]byte

// DecodePublicKey decodes hexadecimal text into a PublicKey.
func DecodePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(b) != PublicKeyLength {
		return pk, fmt.Errorf("%w: must be %v bytes, got %v", ErrInvalidPublicKey, PublicKeyLength, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// DecodePrivateKey decodes hexadecimal text into a PrivateKey and
// checks that the embedded public half is consistent.
func DecodePrivateKey(s string) (PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if len(b) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: must be %v bytes, got %v", ErrInvalidPrivateKey, PrivateKeyLength, len(b))
	}
	// the public half is a function of the seed; reject keys where
	// the two halves disagree
	seeded := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !bytes.Equal(seeded, b) {
		return nil, fmt.Errorf("%w: public half does not match seed", ErrInvalidPrivateKey)
	}
	return PrivateKey(b), nil
}

// DecodeSignature decodes hexadecimal text into a Signature.
func DecodeSignature(s string) (Signature, error) {
	var sig Signature
	b, err := hex.DecodeString(s)
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("%w: must be %v bytes, got %v", ErrInvalidSignature, SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// PublicKey derives the public half of the private key.
func (sk PrivateKey) PublicKey() (PublicKey, error) {
	var pk PublicKey
	if len(sk) != PrivateKeyLength {
		return pk, fmt.Errorf("%w: must be %v bytes, got %v", ErrInvalidPrivateKey, PrivateKeyLength, len(sk))
	}
	copy(pk[:], ed25519.PrivateKey(sk).Public().(ed25519.PublicKey))
	return pk, nil
}

// Hex returns the lowercase hexadecimal encoding of the public key.
func (pk PublicKey) Hex() string { return hex.EncodeToString(pk[:]) }

func (pk PublicKey) String() string { return pk.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	decoded, err := DecodePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = decoded
	return nil
}

// Hex returns the lowercase hexadecimal encoding of the signature.
func (sig Signature) Hex() string { return hex.EncodeToString(sig[:]) }

func (sig Signature) String() string { return sig.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sig *Signature) UnmarshalText(text []byte) error {
	decoded, err := DecodeSignature(string(text))
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}

// GenerateKey creates a fresh ed25519 key pair.
func GenerateKey() (PublicKey, PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return PublicKey{}, nil, err
	}
	var pk PublicKey
	copy(pk[:], pub)
	return pk, PrivateKey(priv), nil
}
