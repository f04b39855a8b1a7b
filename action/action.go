// Package action turns game and contract requests into custom_json
// operations and submits them as signed transactions.
package action

import (
	"fmt"

	"github.com/terracoremate/hivekit/protocol"
	"github.com/terracoremate/hivekit/wallet"
)

const (
	// ContractID is the custom_json id routed to the sidechain contracts.
	ContractID = "ssc-mainnet-hive"

	// WatermarkKey and WatermarkValue tag payloads with the issuing app.
	WatermarkKey   = "app"
	WatermarkValue = "terracoremate"

	// maxIDLen is the chain's limit on custom_json ids.
	maxIDLen = 32
)

// Action is one custom_json request on behalf of Account.
type Action struct {
	ID      string
	Role    wallet.KeyRole
	Account string
	Params  *Params

	// NoWatermark suppresses the "app" tag.
	NoWatermark bool
}

// BuildGenericAction returns an action carrying params under protocol id.
// Only the posting and active roles may authorize custom actions.
func BuildGenericAction(account, id string, role wallet.KeyRole, params *Params) (*Action, error) {
	if err := wallet.ValidateUsername(account); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	if id == "" || len(id) > maxIDLen {
		return nil, fmt.Errorf("%w: id %q must be 1 to %d characters", ErrInvalidAction, id, maxIDLen)
	}
	if role != wallet.Posting && role != wallet.Active {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRole, role)
	}
	if params == nil {
		params = NewParams()
	}
	return &Action{ID: id, Role: role, Account: account, Params: params}, nil
}

// BuildContractAction returns an active-key action invoking contractAction
// on contract with payload.
func BuildContractAction(account, contract, contractAction string, payload *Params) (*Action, error) {
	if contract == "" || contractAction == "" {
		return nil, fmt.Errorf("%w: contract and contract action are required", ErrInvalidAction)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: contract payload", ErrNilParam)
	}
	params := NewParams()
	params.Add("contractName", contract)
	params.Add("contractAction", contractAction)
	params.Add("contractPayload", payload)
	return BuildGenericAction(account, ContractID, wallet.Active, params)
}

// Payload renders the JSON text of the action, watermark included.
func (a *Action) Payload() (string, error) {
	params := a.Params
	if params == nil {
		params = NewParams()
	}
	if !a.NoWatermark {
		params = params.Clone()
		params.Add(WatermarkKey, WatermarkValue)
	}
	data, err := params.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Operation renders the action as a custom_json operation. The account is
// placed in the authority list matching Role; the other list is empty.
func (a *Action) Operation() (*protocol.CustomJSON, error) {
	payload, err := a.Payload()
	if err != nil {
		return nil, err
	}
	op := &protocol.CustomJSON{
		RequiredAuths:        []string{},
		RequiredPostingAuths: []string{},
		ID:                   a.ID,
		JSON:                 payload,
	}
	switch a.Role {
	case wallet.Active:
		op.RequiredAuths = []string{a.Account}
	case wallet.Posting:
		op.RequiredPostingAuths = []string{a.Account}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRole, a.Role)
	}
	return op, nil
}
