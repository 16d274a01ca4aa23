package common

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// hash byte lengths
const (
	CommitHashLength = 20
	Hash256Length    = 32
)

// errors of decoding hexadecimal hash text
var (
	ErrInvalidHash     = errors.New("invalid hash")
	ErrWrongHashLength = errors.New("wrong hash length")
)

// CommitHash identifies one content-addressed unit of ledger history.
type CommitHash [CommitHashLength]byte

// Hash256 is the general purpose content hash of the ledger.
type Hash256 [Hash256Length]byte

// DecodeCommitHash decodes hexadecimal text (no prefix, no separators)
// into a CommitHash. Non-hex text and decoded lengths other than 20
// bytes are hard errors, never truncated or padded.
func DecodeCommitHash(s string) (CommitHash, error) {
	var h CommitHash
	b, err := decodeHashHex(s, CommitHashLength)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// DecodeHash256 decodes hexadecimal text into a Hash256. Non-hex text
// and decoded lengths other than 32 bytes are hard errors.
func DecodeHash256(s string) (Hash256, error) {
	var h Hash256
	b, err := decodeHashHex(s, Hash256Length)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// decodeHashHex decodes hex text and enforces the exact byte length.
// Non-hex bytes win over length problems so that garbage input is
// reported as such even when it is also the wrong size.
func decodeHashHex(s string, wantLen int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		if errors.Is(err, hex.ErrLength) {
			return nil, fmt.Errorf("%w: a hash must be in %v bytes, got odd hex text of %v chars", ErrWrongHashLength, wantLen, len(s))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("%w: a hash must be in %v bytes, got %v", ErrWrongHashLength, wantLen, len(b))
	}
	return b, nil
}

// Bytes returns the hash as a byte slice.
func (h CommitHash) Bytes() []byte { return h[:] }

// Hex returns the lowercase hexadecimal encoding of the hash.
func (h CommitHash) Hex() string { return hex.EncodeToString(h[:]) }

func (h CommitHash) String() string { return h.Hex() }

// Bytes returns the hash as a byte slice.
func (h Hash256) Bytes() []byte { return h[:] }

// Hex returns the lowercase hexadecimal encoding of the hash.
func (h Hash256) Hex() string { return hex.EncodeToString(h[:]) }

func (h Hash256) String() string { return h.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (h CommitHash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *CommitHash) UnmarshalText(text []byte) error {
	decoded, err := DecodeCommitHash(string(text))
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash256) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash256) UnmarshalText(text []byte) error {
	decoded, err := DecodeHash256(string(text))
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// Sha3Hash calculates the SHA3-256 content hash of the concatenation
// of the given byte slices.
func Sha3Hash(data ...[]byte) (h Hash256) {
	d := sha3.New256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}
