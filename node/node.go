// Package node is the boundary to the vellum node that executes
// lifecycle operations: consensus progress, repository storage and
// network gossip live behind this interface and are not implemented
// here.
package node

import (
	"encoding/json"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
	"github.com/vellumchain/vellum/types"
)

// Node is a handle to an initialized vellum node. Every operation is
// independently fallible and treated as an opaque suspend point: one
// call is issued, and the caller resumes with a result or an error.
// No cancellation or timeout policy is applied at this layer.
type Node interface {
	// Sync verifies the given finalization proof and advances the
	// finalized branch accordingly.
	Sync(proof *types.FinalizationProof) error
	// Clean removes temporary branches; hard cleaning also resets
	// the work branch.
	Clean(hard bool) error
	// CreateExtraAgendaTransaction records a governance transaction
	// outside the normal agenda flow.
	CreateExtraAgendaTransaction(tx types.ExtraAgendaTransaction) error
	// CreateBlock proposes a block on top of the current agenda.
	CreateBlock() error
	// CreateAgenda proposes an agenda from pending transactions.
	CreateAgenda() error
	// Vote casts an approval vote on the given agenda commit.
	Vote(hash common.CommitHash) error
	// VetoRound vetoes the current consensus round.
	VetoRound() error
	// VetoBlock vetoes the given block commit.
	VetoBlock(hash common.CommitHash) error
	// ProgressForConsensus makes one step of consensus progress.
	ProgressForConsensus() error
	// Fetch updates the local state from the peers.
	Fetch() error
	// Broadcast publishes the local state to the peers.
	Broadcast() error
	// Show reports the content of the given commit.
	Show(hash common.CommitHash) (*CommitInfo, error)
}

// CommitKind names what kind of commit a hash points at.
type CommitKind string

// commit kinds
const (
	CommitKindBlock                  CommitKind = "block"
	CommitKindAgenda                 CommitKind = "agenda"
	CommitKindTransaction            CommitKind = "transaction"
	CommitKindExtraAgendaTransaction CommitKind = "extra-agenda-transaction"
	CommitKindChatLog                CommitKind = "chat-log"
)

// BlockHeader is the header of a finalized or proposed block, as
// reported by Show.
type BlockHeader struct {
	Author            crypto.PublicKey  `json:"author"`
	PreviousBlockHash common.Hash256    `json:"previous_block_hash"`
	Height            types.BlockHeight `json:"height"`
	Timestamp         types.Timestamp   `json:"timestamp"`
}

// ToHash256 computes the content hash of the header.
func (h *BlockHeader) ToHash256() (common.Hash256, error) {
	b, err := h.SignBytes()
	if err != nil {
		return common.Hash256{}, err
	}
	return common.Sha3Hash(b), nil
}

// SignBytes implements crypto.Signable.
func (h *BlockHeader) SignBytes() ([]byte, error) {
	return json.Marshal(struct {
		Kind string       `json:"kind"`
		Data *BlockHeader `json:"data"`
	}{"block-header", h})
}

// CommitInfo is the result of Show.
type CommitInfo struct {
	Kind        CommitKind     `json:"kind"`
	Hash        common.Hash256 `json:"hash"`
	BlockHeader *BlockHeader   `json:"block_header,omitempty"`
}
