package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/terracoremate/hivekit/codec"
)

// Operation is one variant of the closed operation catalog. Fields lists
// the payload in wire order; the tag is written before it.
type Operation interface {
	codec.Record
	Type() OpType
}

// EncodeOperation writes the varint tag of op followed by its fields.
func EncodeOperation(e *codec.Encoder, op Operation) error {
	if op == nil {
		return ErrNilOperation
	}
	t := op.Type()
	if !t.Valid() {
		return fmt.Errorf("%w: tag %d", ErrUnknownOperation, t)
	}
	if t.Deprecated() {
		return fmt.Errorf("%w: %s", ErrDeprecatedOperation, t)
	}
	if err := e.WriteOperation(uint64(t), op); err != nil {
		return fmt.Errorf("%s: %w", t, err)
	}
	return nil
}

// Operations is an ordered operation list.
type Operations []Operation

func (ops Operations) MarshalHive(e *codec.Encoder) error {
	e.WriteVarint(uint64(len(ops)))
	for i, op := range ops {
		if err := EncodeOperation(e, op); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// Names returns the operation names in order.
func (ops Operations) Names() []string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		if op == nil {
			names = append(names, "nil")
			continue
		}
		names = append(names, op.Type().String())
	}
	return names
}

// MarshalJSON renders each operation as ["name", {payload}].
func (ops Operations) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(ops))
	for i, op := range ops {
		b, err := MarshalOperationJSON(op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		out = append(out, b)
	}
	return json.Marshal(out)
}

func (ops *Operations) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Operations, 0, len(raw))
	for i, r := range raw {
		op, err := UnmarshalOperationJSON(r)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		out = append(out, op)
	}
	*ops = out
	return nil
}

// MarshalOperationJSON renders op as ["name", {payload}].
func MarshalOperationJSON(op Operation) ([]byte, error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	return json.Marshal([2]any{op.Type().String(), op})
}

// UnmarshalOperationJSON parses ["name", {payload}] into a catalog value.
func UnmarshalOperationJSON(data []byte) (Operation, error) {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var name string
	if err := json.Unmarshal(raw[0], &name); err != nil {
		return nil, err
	}
	t, ok := LookupOpType(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	op, err := NewOperation(t)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw[1], op); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return op, nil
}

// NewOperation returns a pointer to a zero value of the variant tagged t.
func NewOperation(t OpType) (Operation, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownOperation, t)
	}
	if t.Deprecated() {
		return nil, fmt.Errorf("%w: %s", ErrDeprecatedOperation, t)
	}
	return opFactory[t](), nil
}

var opFactory = [opCount]func() Operation{
	OpVote:                        func() Operation { return &Vote{} },
	OpComment:                     func() Operation { return &Comment{} },
	OpTransfer:                    func() Operation { return &Transfer{} },
	OpTransferToVesting:           func() Operation { return &TransferToVesting{} },
	OpWithdrawVesting:             func() Operation { return &WithdrawVesting{} },
	OpLimitOrderCreate:            func() Operation { return &LimitOrderCreate{} },
	OpLimitOrderCancel:            func() Operation { return &LimitOrderCancel{} },
	OpFeedPublish:                 func() Operation { return &FeedPublish{} },
	OpConvert:                     func() Operation { return &Convert{} },
	OpAccountCreate:               func() Operation { return &AccountCreate{} },
	OpAccountUpdate:               func() Operation { return &AccountUpdate{} },
	OpWitnessUpdate:               func() Operation { return &WitnessUpdate{} },
	OpAccountWitnessVote:          func() Operation { return &AccountWitnessVote{} },
	OpAccountWitnessProxy:         func() Operation { return &AccountWitnessProxy{} },
	OpCustom:                      func() Operation { return &Custom{} },
	OpDeleteComment:               func() Operation { return &DeleteComment{} },
	OpCustomJSON:                  func() Operation { return &CustomJSON{} },
	OpCommentOptions:              func() Operation { return &CommentOptions{} },
	OpSetWithdrawVestingRoute:     func() Operation { return &SetWithdrawVestingRoute{} },
	OpLimitOrderCreate2:           func() Operation { return &LimitOrderCreate2{} },
	OpClaimAccount:                func() Operation { return &ClaimAccount{} },
	OpCreateClaimedAccount:        func() Operation { return &CreateClaimedAccount{} },
	OpRequestAccountRecovery:      func() Operation { return &RequestAccountRecovery{} },
	OpRecoverAccount:              func() Operation { return &RecoverAccount{} },
	OpChangeRecoveryAccount:       func() Operation { return &ChangeRecoveryAccount{} },
	OpEscrowTransfer:              func() Operation { return &EscrowTransfer{} },
	OpEscrowDispute:               func() Operation { return &EscrowDispute{} },
	OpEscrowRelease:               func() Operation { return &EscrowRelease{} },
	OpEscrowApprove:               func() Operation { return &EscrowApprove{} },
	OpTransferToSavings:           func() Operation { return &TransferToSavings{} },
	OpTransferFromSavings:         func() Operation { return &TransferFromSavings{} },
	OpCancelTransferFromSavings:   func() Operation { return &CancelTransferFromSavings{} },
	OpCustomBinary:                func() Operation { return &CustomBinary{} },
	OpDeclineVotingRights:         func() Operation { return &DeclineVotingRights{} },
	OpResetAccount:                func() Operation { return &ResetAccount{} },
	OpSetResetAccount:             func() Operation { return &SetResetAccount{} },
	OpClaimRewardBalance:          func() Operation { return &ClaimRewardBalance{} },
	OpDelegateVestingShares:       func() Operation { return &DelegateVestingShares{} },
	OpAccountCreateWithDelegation: func() Operation { return &AccountCreateWithDelegation{} },
	OpWitnessSetProperties:        func() Operation { return &WitnessSetProperties{} },
	OpAccountUpdate2:              func() Operation { return &AccountUpdate2{} },
	OpCreateProposal:              func() Operation { return &CreateProposal{} },
	OpUpdateProposalVotes:         func() Operation { return &UpdateProposalVotes{} },
	OpRemoveProposal:              func() Operation { return &RemoveProposal{} },
	OpUpdateProposal:              func() Operation { return &UpdateProposal{} },
	OpCollateralizedConvert:       func() Operation { return &CollateralizedConvert{} },
	OpRecurrentTransfer:           func() Operation { return &RecurrentTransfer{} },
}
