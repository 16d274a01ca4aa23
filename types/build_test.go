package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellumchain/vellum/crypto"
)

func signedDelegationProof(t *testing.T, sk crypto.PrivateKey, data DelegationTransactionData) string {
	t.Helper()
	proof, err := crypto.Sign(data, sk)
	require.NoError(t, err)
	return proof.String()
}

func TestNewTxDelegate(t *testing.T) {
	delegator, sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	delegatee, _, err := crypto.GenerateKey()
	require.NoError(t, err)

	data := DelegationTransactionData{
		Delegator:   delegator,
		Delegatee:   delegatee,
		Governance:  true,
		BlockHeight: 100,
	}
	proof := signedDelegationProof(t, sk, data)

	tx, err := NewTxDelegate(delegator.Hex(), delegatee.Hex(), "true", proof)
	require.NoError(t, err)
	assert.Equal(t, delegator, tx.Delegator)
	assert.Equal(t, delegatee, tx.Delegatee)
	assert.True(t, tx.Governance)
	assert.NoError(t, tx.Proof.Verify(data))
	assert.GreaterOrEqual(t, int64(tx.Timestamp), int64(0))
}

func TestNewTxDelegateFieldErrors(t *testing.T) {
	delegator, sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	delegatee, _, err := crypto.GenerateKey()
	require.NoError(t, err)
	proof := signedDelegationProof(t, sk, DelegationTransactionData{Delegator: delegator})

	tests := []struct {
		name       string
		delegator  string
		delegatee  string
		governance string
		proof      string
		wantErr    error
	}{
		{"bad delegator", "zz", delegatee.Hex(), "true", proof, ErrInvalidDelegator},
		{"bad delegatee", delegator.Hex(), "zz", "true", proof, ErrInvalidDelegatee},
		{"bad governance", delegator.Hex(), delegatee.Hex(), "maybe", proof, ErrInvalidGovernanceFlag},
		{"bad proof", delegator.Hex(), delegatee.Hex(), "true", "{not json", ErrInvalidProof},
	}
	for _, test := range tests {
		_, err := NewTxDelegate(test.delegator, test.delegatee, test.governance, test.proof)
		assert.ErrorIs(t, err, test.wantErr, test.name)
	}
}

// first-error-wins: the delegator error masks every later malformed
// field, and a proof error is reported only once everything before it
// decoded
func TestNewTxDelegateFailFastOrder(t *testing.T) {
	delegator, _, err := crypto.GenerateKey()
	require.NoError(t, err)
	delegatee, _, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = NewTxDelegate("bad", "also bad", "nope", "junk")
	assert.ErrorIs(t, err, ErrInvalidDelegator)

	_, err = NewTxDelegate(delegator.Hex(), "also bad", "nope", "junk")
	assert.ErrorIs(t, err, ErrInvalidDelegatee)

	_, err = NewTxDelegate(delegator.Hex(), delegatee.Hex(), "nope", "junk")
	assert.ErrorIs(t, err, ErrInvalidGovernanceFlag)

	_, err = NewTxDelegate(delegator.Hex(), delegatee.Hex(), "false", "junk")
	assert.ErrorIs(t, err, ErrInvalidProof)
}

func TestNewTxUndelegate(t *testing.T) {
	delegator, sk, err := crypto.GenerateKey()
	require.NoError(t, err)

	data := UndelegationTransactionData{Delegator: delegator, BlockHeight: 42}
	proofSig, err := crypto.Sign(data, sk)
	require.NoError(t, err)

	tx, err := NewTxUndelegate(delegator.Hex(), proofSig.String())
	require.NoError(t, err)
	assert.Equal(t, delegator, tx.Delegator)
	assert.NoError(t, tx.Proof.Verify(data))

	_, err = NewTxUndelegate("junk", proofSig.String())
	assert.ErrorIs(t, err, ErrInvalidDelegator)
	_, err = NewTxUndelegate(delegator.Hex(), "junk")
	assert.ErrorIs(t, err, ErrInvalidProof)
}

func TestTimestampNonDecreasing(t *testing.T) {
	delegator, sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	proof := signedDelegationProof(t, sk, DelegationTransactionData{Delegator: delegator})

	var last Timestamp
	for i := 0; i < 10; i++ {
		tx, err := NewTxDelegate(delegator.Hex(), delegator.Hex(), "true", proof)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, int64(tx.Timestamp), int64(last))
		last = tx.Timestamp
	}
}

func TestExtraAgendaTransactionKinds(t *testing.T) {
	txs := []ExtraAgendaTransaction{
		&TxDelegate{},
		&TxUndelegate{},
		&TxReport{},
	}
	kinds := make(map[TxKind]bool)
	for _, tx := range txs {
		kinds[tx.TxKind()] = true
	}
	assert.Len(t, kinds, 3)
}
