package types

import (
	"encoding/json"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
)

// BlockHeight counts finalized blocks from genesis.
type BlockHeight uint64

// Timestamp is a non-negative count of milliseconds since the Unix
// epoch, produced by the process clock at construction time.
type Timestamp int64

// MemberName identifies a governance member by its registered name.
type MemberName string

// TxKind tags the variants of ExtraAgendaTransaction.
type TxKind string

// extra-agenda transaction kinds
const (
	TxKindDelegate   TxKind = "delegate"
	TxKindUndelegate TxKind = "undelegate"
	TxKindReport     TxKind = "report"
)

// ExtraAgendaTransaction is a governance-layer transaction submitted
// outside the normal block-agenda flow. The variant set is closed:
// TxDelegate, TxUndelegate and TxReport (reserved). Submission sites
// must switch exhaustively over TxKind so that a new variant breaks
// every consumer that does not handle it.
type ExtraAgendaTransaction interface {
	TxKind() TxKind
	extraAgendaTransaction()
}

// DelegationTransactionData is the unsigned payload of a delegation:
// a request to transfer the delegator's voting weight to the
// delegatee, scoped to a governance context and block height.
type DelegationTransactionData struct {
	Delegator   crypto.PublicKey `json:"delegator"`
	Delegatee   crypto.PublicKey `json:"delegatee"`
	Governance  bool             `json:"governance"`
	BlockHeight BlockHeight      `json:"block_height"`
}

// UndelegationTransactionData is the unsigned payload reversing an
// active delegation as of the given height.
type UndelegationTransactionData struct {
	Delegator   crypto.PublicKey `json:"delegator"`
	BlockHeight BlockHeight      `json:"block_height"`
}

// SignBytes implements crypto.Signable.
func (d DelegationTransactionData) SignBytes() ([]byte, error) {
	return signBytes("delegation-transaction-data", d)
}

// SignBytes implements crypto.Signable.
func (d UndelegationTransactionData) SignBytes() ([]byte, error) {
	return signBytes("undelegation-transaction-data", d)
}

// TxDelegate transfers the delegator's voting weight to the
// delegatee. Proof is the delegator's signature over the matching
// DelegationTransactionData.
type TxDelegate struct {
	Delegator  crypto.PublicKey                                 `json:"delegator"`
	Delegatee  crypto.PublicKey                                 `json:"delegatee"`
	Governance bool                                             `json:"governance"`
	Proof      crypto.TypedSignature[DelegationTransactionData] `json:"proof"`
	Timestamp  Timestamp                                        `json:"timestamp"`
}

// TxUndelegate reverses an active delegation of the delegator. Proof
// is the delegator's signature over the matching
// UndelegationTransactionData.
type TxUndelegate struct {
	Delegator crypto.PublicKey                                   `json:"delegator"`
	Proof     crypto.TypedSignature[UndelegationTransactionData] `json:"proof"`
	Timestamp Timestamp                                          `json:"timestamp"`
}

// TxReport is a reserved variant for reporting misbehavior. It is not
// implemented yet; carrying it in the kind set keeps consumers
// prepared for it.
type TxReport struct {
	Timestamp Timestamp `json:"timestamp"`
}

func (*TxDelegate) TxKind() TxKind   { return TxKindDelegate }
func (*TxUndelegate) TxKind() TxKind { return TxKindUndelegate }
func (*TxReport) TxKind() TxKind     { return TxKindReport }

func (*TxDelegate) extraAgendaTransaction()   {}
func (*TxUndelegate) extraAgendaTransaction() {}
func (*TxReport) extraAgendaTransaction()     {}

// SignBytes implements crypto.Signable.
func (tx *TxDelegate) SignBytes() ([]byte, error) {
	return signBytes(string(TxKindDelegate), tx)
}

// SignBytes implements crypto.Signable.
func (tx *TxUndelegate) SignBytes() ([]byte, error) {
	return signBytes(string(TxKindUndelegate), tx)
}

// FinalizationProof is the evidence that a block at a given height
// has been irreversibly agreed upon, consumed during sync.
type FinalizationProof struct {
	Height     BlockHeight                                     `json:"height"`
	Round      uint64                                          `json:"round"`
	Signatures []crypto.TypedSignature[FinalizationSignTarget] `json:"signatures"`
}

// FinalizationSignTarget is what each member signs when finalizing a
// block.
type FinalizationSignTarget struct {
	BlockHash common.Hash256 `json:"block_hash"`
	Round     uint64         `json:"round"`
}

// SignBytes implements crypto.Signable.
func (t FinalizationSignTarget) SignBytes() ([]byte, error) {
	return signBytes("finalization-sign-target", t)
}

// signBytes produces the canonical signing encoding: JSON of the
// payload wrapped with its kind tag. The tag is the domain separator
// that keeps signatures from being replayed across payload types.
func signBytes(kind string, payload interface{}) ([]byte, error) {
	return json.Marshal(struct {
		Kind string      `json:"kind"`
		Data interface{} `json:"data"`
	}{kind, payload})
}
