package node

import (
	"errors"
	"fmt"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/params"
	"github.com/vellumchain/vellum/rpc/client"
	"github.com/vellumchain/vellum/types"
)

// integrityErrorCode is the JSON-RPC error code the node daemon uses
// to report repository corruption or tampering.
const integrityErrorCode = -32097

// remoteNode forwards each lifecycle call to the node daemon over
// JSON-RPC, one method per call. It holds no state besides the
// daemon's address.
type remoteNode struct {
	url     string
	timeout int // seconds
}

// Initialize connects to the node daemon from the config and asks it
// to open the repository at path.
func Initialize(config *params.NodeConfig, path string) (Node, error) {
	n, err := newRemoteNode(config)
	if err != nil {
		return nil, err
	}
	if err := n.call(nil, "vellum_initialize", path); err != nil {
		return nil, err
	}
	return n, nil
}

// Genesis finalizes the genesis setup of the repository at path.
func Genesis(config *params.NodeConfig, path string) error {
	n, err := newRemoteNode(config)
	if err != nil {
		return err
	}
	return n.call(nil, "vellum_genesis", path)
}

// Clone clones a remote repository to path and initializes it.
func Clone(config *params.NodeConfig, path, url string) error {
	n, err := newRemoteNode(config)
	if err != nil {
		return err
	}
	return n.call(nil, "vellum_clone", path, url)
}

// Serve runs the peer-to-peer server of the repository at path. It
// blocks until the server terminates, so the request carries no
// timeout.
func Serve(config *params.NodeConfig, path string) error {
	n, err := newRemoteNode(config)
	if err != nil {
		return err
	}
	n.timeout = 0
	return n.call(nil, "vellum_serve", path)
}

func newRemoteNode(config *params.NodeConfig) (*remoteNode, error) {
	if config.RPC == nil || config.RPC.Address == "" {
		return nil, errors.New("node rpc address is not configured")
	}
	return &remoteNode{
		url:     config.RPC.Address,
		timeout: config.RPCTimeout(),
	}, nil
}

// call posts one JSON-RPC request and classifies the failure: the
// daemon's integrity error code becomes *IntegrityError, everything
// else passes through unchanged.
func (n *remoteNode) call(result interface{}, method string, args ...interface{}) error {
	err := client.RPCPostWithTimeoutAndID(result, n.timeout, 1, n.url, method, args...)
	if err == nil {
		return nil
	}
	var rpcErr *client.JSONRPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == integrityErrorCode {
		return &IntegrityError{Message: rpcErr.Message}
	}
	return err
}

func (n *remoteNode) Sync(proof *types.FinalizationProof) error {
	return n.call(nil, "vellum_sync", proof)
}

func (n *remoteNode) Clean(hard bool) error {
	return n.call(nil, "vellum_clean", hard)
}

// extraAgendaEnvelope carries the kind tag next to the transaction so
// the daemon can decode the variant.
type extraAgendaEnvelope struct {
	Kind types.TxKind                 `json:"kind"`
	Tx   types.ExtraAgendaTransaction `json:"tx"`
}

func (n *remoteNode) CreateExtraAgendaTransaction(tx types.ExtraAgendaTransaction) error {
	// exhaustive over the closed variant set; a new kind must be
	// handled here explicitly
	switch tx.TxKind() {
	case types.TxKindDelegate, types.TxKindUndelegate:
	case types.TxKindReport:
		return fmt.Errorf("%w: report transactions", common.ErrNotImplemented)
	default:
		return fmt.Errorf("unknown extra-agenda transaction kind %q", tx.TxKind())
	}
	return n.call(nil, "vellum_createExtraAgendaTransaction", extraAgendaEnvelope{Kind: tx.TxKind(), Tx: tx})
}

func (n *remoteNode) CreateBlock() error {
	return n.call(nil, "vellum_createBlock")
}

func (n *remoteNode) CreateAgenda() error {
	return n.call(nil, "vellum_createAgenda")
}

func (n *remoteNode) Vote(hash common.CommitHash) error {
	return n.call(nil, "vellum_vote", hash)
}

func (n *remoteNode) VetoRound() error {
	return n.call(nil, "vellum_vetoRound")
}

func (n *remoteNode) VetoBlock(hash common.CommitHash) error {
	return n.call(nil, "vellum_vetoBlock", hash)
}

func (n *remoteNode) ProgressForConsensus() error {
	return n.call(nil, "vellum_progressForConsensus")
}

func (n *remoteNode) Fetch() error {
	return n.call(nil, "vellum_fetch")
}

func (n *remoteNode) Broadcast() error {
	return n.call(nil, "vellum_broadcast")
}

func (n *remoteNode) Show(hash common.CommitHash) (*CommitInfo, error) {
	info := new(CommitInfo)
	if err := n.call(info, "vellum_show", hash); err != nil {
		return nil, err
	}
	return info, nil
}
