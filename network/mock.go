package network

import (
	"context"

	"github.com/terracoremate/hivekit/tx"
)

// MockChainService is a test double for ChainService.
// All function fields must be set before the corresponding method is called.
type MockChainService struct {
	GetDynamicGlobalPropertiesFn func(ctx context.Context) (*DynamicGlobalProperties, error)
	HeadStateFn                  func(ctx context.Context) (*tx.HeadState, error)
	BroadcastTransactionFn       func(ctx context.Context, signed *tx.SignedTransaction) (*BroadcastResult, error)
}

func (m *MockChainService) GetDynamicGlobalProperties(ctx context.Context) (*DynamicGlobalProperties, error) {
	return m.GetDynamicGlobalPropertiesFn(ctx)
}
func (m *MockChainService) HeadState(ctx context.Context) (*tx.HeadState, error) {
	return m.HeadStateFn(ctx)
}
func (m *MockChainService) BroadcastTransaction(ctx context.Context, signed *tx.SignedTransaction) (*BroadcastResult, error) {
	return m.BroadcastTransactionFn(ctx, signed)
}
