package types

import (
	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
)

// NewTxDelegate assembles a delegation transaction from untyped
// operator input. Fields are decoded fail-fast in the order
// delegator, delegatee, governance, proof; the first malformed field
// is a terminal failure carrying that field's role error. The
// timestamp is stamped from the process clock, never supplied by the
// caller.
func NewTxDelegate(delegator, delegatee, governance, proof string) (*TxDelegate, error) {
	delegatorKey, err := DecodeDelegator(delegator)
	if err != nil {
		return nil, err
	}
	delegateeKey, err := DecodeDelegatee(delegatee)
	if err != nil {
		return nil, err
	}
	governanceFlag, err := DecodeGovernanceFlag(governance)
	if err != nil {
		return nil, err
	}
	proofSig, err := DecodeDelegationProof(proof)
	if err != nil {
		return nil, err
	}
	return &TxDelegate{
		Delegator:  delegatorKey,
		Delegatee:  delegateeKey,
		Governance: governanceFlag,
		Proof:      proofSig,
		Timestamp:  Timestamp(common.NowMilli()),
	}, nil
}

// NewTxUndelegate assembles an undelegation transaction from untyped
// operator input, decoding delegator then proof fail-fast and
// stamping the current timestamp.
func NewTxUndelegate(delegator, proof string) (*TxUndelegate, error) {
	delegatorKey, err := DecodeDelegator(delegator)
	if err != nil {
		return nil, err
	}
	proofSig, err := DecodeUndelegationProof(proof)
	if err != nil {
		return nil, err
	}
	return &TxUndelegate{
		Delegator: delegatorKey,
		Proof:     proofSig,
		Timestamp: Timestamp(common.NowMilli()),
	}, nil
}

// NewDelegationData builds the unsigned delegation payload for the
// local signing flow, where the delegator is the operator's own key.
func NewDelegationData(delegator crypto.PublicKey, delegatee, governance string, targetHeight uint64) (*DelegationTransactionData, error) {
	delegateeKey, err := DecodeDelegatee(delegatee)
	if err != nil {
		return nil, err
	}
	governanceFlag, err := DecodeGovernanceFlag(governance)
	if err != nil {
		return nil, err
	}
	return &DelegationTransactionData{
		Delegator:   delegator,
		Delegatee:   delegateeKey,
		Governance:  governanceFlag,
		BlockHeight: BlockHeight(targetHeight),
	}, nil
}

// NewUndelegationData builds the unsigned undelegation payload for
// the local signing flow.
func NewUndelegationData(delegator crypto.PublicKey, targetHeight uint64) *UndelegationTransactionData {
	return &UndelegationTransactionData{
		Delegator:   delegator,
		BlockHeight: BlockHeight(targetHeight),
	}
}
