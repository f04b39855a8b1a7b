package protocol

// OpType is the stable numeric tag of an operation. Tags are part of the
// wire format and never change; retired tags stay reserved.
type OpType uint8

const (
	OpVote OpType = iota
	OpComment
	OpTransfer
	OpTransferToVesting
	OpWithdrawVesting
	OpLimitOrderCreate
	OpLimitOrderCancel
	OpFeedPublish
	OpConvert
	OpAccountCreate
	OpAccountUpdate
	OpWitnessUpdate
	OpAccountWitnessVote
	OpAccountWitnessProxy
	OpPow
	OpCustom
	OpReportOverProduction
	OpDeleteComment
	OpCustomJSON
	OpCommentOptions
	OpSetWithdrawVestingRoute
	OpLimitOrderCreate2
	OpClaimAccount
	OpCreateClaimedAccount
	OpRequestAccountRecovery
	OpRecoverAccount
	OpChangeRecoveryAccount
	OpEscrowTransfer
	OpEscrowDispute
	OpEscrowRelease
	OpPow2
	OpEscrowApprove
	OpTransferToSavings
	OpTransferFromSavings
	OpCancelTransferFromSavings
	OpCustomBinary
	OpDeclineVotingRights
	OpResetAccount
	OpSetResetAccount
	OpClaimRewardBalance
	OpDelegateVestingShares
	OpAccountCreateWithDelegation
	OpWitnessSetProperties
	OpAccountUpdate2
	OpCreateProposal
	OpUpdateProposalVotes
	OpRemoveProposal
	OpUpdateProposal
	OpCollateralizedConvert
	OpRecurrentTransfer

	opCount
)

var opNames = [opCount]string{
	"vote",
	"comment",
	"transfer",
	"transfer_to_vesting",
	"withdraw_vesting",
	"limit_order_create",
	"limit_order_cancel",
	"feed_publish",
	"convert",
	"account_create",
	"account_update",
	"witness_update",
	"account_witness_vote",
	"account_witness_proxy",
	"pow",
	"custom",
	"report_over_production",
	"delete_comment",
	"custom_json",
	"comment_options",
	"set_withdraw_vesting_route",
	"limit_order_create2",
	"claim_account",
	"create_claimed_account",
	"request_account_recovery",
	"recover_account",
	"change_recovery_account",
	"escrow_transfer",
	"escrow_dispute",
	"escrow_release",
	"pow2",
	"escrow_approve",
	"transfer_to_savings",
	"transfer_from_savings",
	"cancel_transfer_from_savings",
	"custom_binary",
	"decline_voting_rights",
	"reset_account",
	"set_reset_account",
	"claim_reward_balance",
	"delegate_vesting_shares",
	"account_create_with_delegation",
	"witness_set_properties",
	"account_update2",
	"create_proposal",
	"update_proposal_votes",
	"remove_proposal",
	"update_proposal",
	"collateralized_convert",
	"recurrent_transfer",
}

var opByName = func() map[string]OpType {
	m := make(map[string]OpType, opCount)
	for i, name := range opNames {
		m[name] = OpType(i)
	}
	return m
}()

// String returns the snake_case operation name used in JSON.
func (t OpType) String() string {
	if t >= opCount {
		return "unknown"
	}
	return opNames[t]
}

// Valid reports whether t is inside the catalog numbering.
func (t OpType) Valid() bool { return t < opCount }

// Deprecated reports whether t is a retired placeholder tag.
func (t OpType) Deprecated() bool {
	switch t {
	case OpPow, OpReportOverProduction, OpPow2:
		return true
	}
	return false
}

// LookupOpType returns the tag for an operation name.
func LookupOpType(name string) (OpType, bool) {
	t, ok := opByName[name]
	return t, ok
}
