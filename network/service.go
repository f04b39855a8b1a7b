package network

import (
	"context"

	"github.com/terracoremate/hivekit/protocol"
	"github.com/terracoremate/hivekit/tx"
)

// ChainService is the node surface the rest of the module depends on.
type ChainService interface {
	// GetDynamicGlobalProperties returns the chain's current global state.
	GetDynamicGlobalProperties(ctx context.Context) (*DynamicGlobalProperties, error)

	// HeadState returns the head block used to anchor new transactions.
	HeadState(ctx context.Context) (*tx.HeadState, error)

	// BroadcastTransaction submits a signed transaction and waits for inclusion.
	BroadcastTransaction(ctx context.Context, signed *tx.SignedTransaction) (*BroadcastResult, error)
}

// DynamicGlobalProperties is the subset of database_api.get_dynamic_global_properties
// used to anchor transactions.
type DynamicGlobalProperties struct {
	HeadBlockNumber       uint32        `json:"head_block_number"`
	HeadBlockID           string        `json:"head_block_id"`
	Time                  protocol.Time `json:"time"`
	LastIrreversibleBlock uint32        `json:"last_irreversible_block_num"`
	CurrentWitness        string        `json:"current_witness"`
}

// BroadcastResult is the node's receipt for a synchronous broadcast.
type BroadcastResult struct {
	ID       string `json:"id"`
	BlockNum uint32 `json:"block_num"`
	TrxNum   uint32 `json:"trx_num"`
	Expired  bool   `json:"expired"`
}
