package crypto

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellumchain/vellum/common"
)

type notePayload struct {
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

func (p notePayload) SignBytes() ([]byte, error) {
	return json.Marshal(struct {
		Kind string      `json:"kind"`
		Data notePayload `json:"data"`
	}{"note", p})
}

type otherPayload struct {
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

func (p otherPayload) SignBytes() ([]byte, error) {
	return json.Marshal(struct {
		Kind string       `json:"kind"`
		Data otherPayload `json:"data"`
	}{"other", p})
}

func TestSignAndVerify(t *testing.T) {
	_, sk, err := GenerateKey()
	require.NoError(t, err)

	payload := notePayload{Note: "hello", Timestamp: 1}
	ts, err := Sign(payload, sk)
	require.NoError(t, err)
	assert.NoError(t, ts.Verify(payload))

	// any change of the payload must break verification
	assert.Error(t, ts.Verify(notePayload{Note: "hello", Timestamp: 2}))
	assert.Error(t, ts.Verify(notePayload{Note: "bye", Timestamp: 1}))
}

func TestSignDistinctTimestamps(t *testing.T) {
	_, sk, err := GenerateKey()
	require.NoError(t, err)

	s1, err := Sign(notePayload{Note: "x", Timestamp: 100}, sk)
	require.NoError(t, err)
	s2, err := Sign(notePayload{Note: "x", Timestamp: 101}, sk)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Signature, s2.Signature)
}

func TestTypedSignatureCrossTypeRejected(t *testing.T) {
	_, sk, err := GenerateKey()
	require.NoError(t, err)

	signed, err := Sign(notePayload{Note: "x", Timestamp: 7}, sk)
	require.NoError(t, err)

	// transplant the raw signature bytes onto the other payload type;
	// the kind tag in the sign bytes must make verification fail even
	// though the key matches and the fields are identical
	transplanted := TypedSignature[otherPayload]{
		Signature: signed.Signature,
		Signer:    signed.Signer,
	}
	assert.ErrorIs(t, transplanted.Verify(otherPayload{Note: "x", Timestamp: 7}), ErrVerificationFailed)
}

func TestSignBadKeyMaterial(t *testing.T) {
	_, err := Sign(notePayload{}, PrivateKey([]byte("short")))
	assert.ErrorIs(t, err, ErrSigningFailed)

	_, err = SignHash256(common.Hash256{}, nil)
	assert.ErrorIs(t, err, ErrSigningFailed)
}

func TestSignHash256(t *testing.T) {
	pk, sk, err := GenerateKey()
	require.NoError(t, err)

	h := common.Sha3Hash([]byte("content"))
	sig, err := SignHash256(h, sk)
	require.NoError(t, err)
	assert.NoError(t, VerifyHash256(h, pk, sig))

	other := common.Sha3Hash([]byte("tampered"))
	assert.ErrorIs(t, VerifyHash256(other, pk, sig), ErrVerificationFailed)
}

func TestTypedSignatureRoundTripText(t *testing.T) {
	_, sk, err := GenerateKey()
	require.NoError(t, err)

	signed, err := Sign(notePayload{Note: "x", Timestamp: 3}, sk)
	require.NoError(t, err)

	decoded, err := DecodeTypedSignature[notePayload](signed.String())
	require.NoError(t, err)
	assert.Equal(t, signed, decoded)
	assert.NoError(t, decoded.Verify(notePayload{Note: "x", Timestamp: 3}))
}

func TestDecodeKeys(t *testing.T) {
	pk, sk, err := GenerateKey()
	require.NoError(t, err)

	gotPK, err := DecodePublicKey(pk.Hex())
	require.NoError(t, err)
	assert.Equal(t, pk, gotPK)

	_, err = DecodePublicKey(strings.Repeat("a", 63))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
	_, err = DecodePublicKey(strings.Repeat("g", 64))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	decodedSK, err := DecodePrivateKey(hex.EncodeToString(sk))
	require.NoError(t, err)
	derived, err := decodedSK.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, pk, derived)

	// corrupt the embedded public half
	bad := make([]byte, PrivateKeyLength)
	copy(bad, sk)
	bad[PrivateKeyLength-1] ^= 0xff
	_, err = DecodePrivateKey(hex.EncodeToString(bad))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}
