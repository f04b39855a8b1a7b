package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/terracoremate/hivekit/tx"
)

// Compile-time interface checks.
var (
	_ ChainService         = (*RPCClient)(nil)
	_ tx.HeadStateProvider = (*RPCClient)(nil)
)

const (
	methodGlobalProperties = "database_api.get_dynamic_global_properties"
	methodBroadcastSync    = "condenser_api.broadcast_transaction_synchronous"
)

// GetDynamicGlobalProperties returns the chain's current global state.
func (c *RPCClient) GetDynamicGlobalProperties(ctx context.Context) (*DynamicGlobalProperties, error) {
	var props DynamicGlobalProperties
	if err := c.Call(ctx, methodGlobalProperties, struct{}{}, &props); err != nil {
		return nil, err
	}
	if props.HeadBlockID == "" {
		return nil, fmt.Errorf("%w: missing head_block_id", ErrInvalidResponse)
	}
	return &props, nil
}

// HeadState adapts GetDynamicGlobalProperties to tx.HeadStateProvider.
func (c *RPCClient) HeadState(ctx context.Context) (*tx.HeadState, error) {
	props, err := c.GetDynamicGlobalProperties(ctx)
	if err != nil {
		return nil, err
	}
	return &tx.HeadState{
		HeadBlockNumber: props.HeadBlockNumber,
		HeadBlockID:     props.HeadBlockID,
		Time:            props.Time.Time,
	}, nil
}

// BroadcastTransaction submits a signed transaction through condenser_api and
// blocks until the node reports the including block.
func (c *RPCClient) BroadcastTransaction(ctx context.Context, signed *tx.SignedTransaction) (*BroadcastResult, error) {
	if signed == nil || signed.Tx == nil {
		return nil, ErrNilParam
	}
	var result BroadcastResult
	if err := c.Call(ctx, methodBroadcastSync, []interface{}{signed.Tx}, &result); err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return nil, fmt.Errorf("%w: %w", ErrBroadcastRejected, rpcErr)
		}
		return nil, err
	}
	if result.ID == "" {
		result.ID = signed.ID
	}
	return &result, nil
}
