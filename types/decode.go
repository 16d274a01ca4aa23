package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
)

// Decoding errors name the semantic role of the malformed argument so
// that operator-facing messages point at the offending input.
var (
	ErrInvalidDelegator         = errors.New("invalid delegator")
	ErrInvalidDelegatee         = errors.New("invalid delegatee")
	ErrInvalidGovernanceFlag    = errors.New("invalid governance flag")
	ErrInvalidProof             = errors.New("invalid proof")
	ErrInvalidFinalizationProof = errors.New("invalid finalization proof")
	ErrInvalidVoteTarget        = errors.New("invalid agenda commit hash to vote on")
	ErrInvalidVetoTarget        = errors.New("invalid block commit hash to veto on")
)

// DecodeDelegator decodes the delegator public key argument.
func DecodeDelegator(s string) (crypto.PublicKey, error) {
	pk, err := crypto.DecodePublicKey(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %v", ErrInvalidDelegator, err)
	}
	return pk, nil
}

// DecodeDelegatee decodes the delegatee public key argument.
func DecodeDelegatee(s string) (crypto.PublicKey, error) {
	pk, err := crypto.DecodePublicKey(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %v", ErrInvalidDelegatee, err)
	}
	return pk, nil
}

// DecodeGovernanceFlag decodes the governance flag argument.
func DecodeGovernanceFlag(s string) (bool, error) {
	governance, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidGovernanceFlag, s)
	}
	return governance, nil
}

// DecodeDelegationProof decodes a proof argument authorizing a
// delegation.
func DecodeDelegationProof(s string) (crypto.TypedSignature[DelegationTransactionData], error) {
	proof, err := crypto.DecodeTypedSignature[DelegationTransactionData](s)
	if err != nil {
		return proof, fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return proof, nil
}

// DecodeUndelegationProof decodes a proof argument authorizing an
// undelegation.
func DecodeUndelegationProof(s string) (crypto.TypedSignature[UndelegationTransactionData], error) {
	proof, err := crypto.DecodeTypedSignature[UndelegationTransactionData](s)
	if err != nil {
		return proof, fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return proof, nil
}

// DecodeFinalizationProof decodes the canonical JSON text of a
// finalization proof, as consumed by sync.
func DecodeFinalizationProof(s string) (*FinalizationProof, error) {
	proof := new(FinalizationProof)
	if err := json.Unmarshal([]byte(s), proof); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFinalizationProof, err)
	}
	return proof, nil
}

// DecodeVoteTarget decodes the agenda commit hash argument of vote.
func DecodeVoteTarget(s string) (common.CommitHash, error) {
	h, err := common.DecodeCommitHash(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidVoteTarget, err)
	}
	return h, nil
}

// DecodeVetoTarget decodes the block commit hash argument of veto.
func DecodeVetoTarget(s string) (common.CommitHash, error) {
	h, err := common.DecodeCommitHash(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidVetoTarget, err)
	}
	return h, nil
}
