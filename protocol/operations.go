package protocol

import (
	"encoding/json"

	"github.com/terracoremate/hivekit/codec"
)

// Vote casts or removes a vote on a post.
type Vote struct {
	Voter    string `json:"voter"`
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Weight   int16  `json:"weight"`
}

// Type implements Operation.
func (Vote) Type() OpType { return OpVote }

// Fields lists the wire fields in catalog order.
func (o Vote) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("voter", codec.String(o.Voter)),
		codec.Req("author", codec.String(o.Author)),
		codec.Req("permlink", codec.String(o.Permlink)),
		codec.Req("weight", codec.Int16(o.Weight)),
	}
}

// Comment creates or edits a post or reply.
type Comment struct {
	ParentAuthor   string `json:"parent_author"`
	ParentPermlink string `json:"parent_permlink"`
	Author         string `json:"author"`
	Permlink       string `json:"permlink"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	JSONMetadata   string `json:"json_metadata"`
}

// Type implements Operation.
func (Comment) Type() OpType { return OpComment }

// Fields lists the wire fields in catalog order.
func (o Comment) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("parent_author", codec.String(o.ParentAuthor)),
		codec.Req("parent_permlink", codec.String(o.ParentPermlink)),
		codec.Req("author", codec.String(o.Author)),
		codec.Req("permlink", codec.String(o.Permlink)),
		codec.Req("title", codec.String(o.Title)),
		codec.Req("body", codec.String(o.Body)),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
	}
}

// Transfer moves liquid funds between accounts.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
	Memo   string `json:"memo"`
}

// Type implements Operation.
func (Transfer) Type() OpType { return OpTransfer }

// Fields lists the wire fields in catalog order.
func (o Transfer) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("amount", o.Amount),
		codec.Req("memo", codec.String(o.Memo)),
	}
}

// TransferToVesting powers up liquid HIVE into vesting shares of To.
type TransferToVesting struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
}

// Type implements Operation.
func (TransferToVesting) Type() OpType { return OpTransferToVesting }

// Fields lists the wire fields in catalog order.
func (o TransferToVesting) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("amount", o.Amount),
	}
}

// WithdrawVesting starts a power down of vesting shares.
type WithdrawVesting struct {
	Account       string `json:"account"`
	VestingShares Asset  `json:"vesting_shares"`
}

// Type implements Operation.
func (WithdrawVesting) Type() OpType { return OpWithdrawVesting }

// Fields lists the wire fields in catalog order.
func (o WithdrawVesting) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("vesting_shares", o.VestingShares),
	}
}

// LimitOrderCreate places an order on the internal HIVE/HBD market.
type LimitOrderCreate struct {
	Owner        string `json:"owner"`
	OrderID      uint32 `json:"orderid"`
	AmountToSell Asset  `json:"amount_to_sell"`
	MinToReceive Asset  `json:"min_to_receive"`
	FillOrKill   bool   `json:"fill_or_kill"`
	Expiration   Time   `json:"expiration"`
}

// Type implements Operation.
func (LimitOrderCreate) Type() OpType { return OpLimitOrderCreate }

// Fields lists the wire fields in catalog order.
func (o LimitOrderCreate) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("orderid", codec.Uint32(o.OrderID)),
		codec.Req("amount_to_sell", o.AmountToSell),
		codec.Req("min_to_receive", o.MinToReceive),
		codec.Req("fill_or_kill", codec.Bool(o.FillOrKill)),
		codec.Req("expiration", o.Expiration),
	}
}

// LimitOrderCancel cancels an open market order.
type LimitOrderCancel struct {
	Owner   string `json:"owner"`
	OrderID uint32 `json:"orderid"`
}

// Type implements Operation.
func (LimitOrderCancel) Type() OpType { return OpLimitOrderCancel }

// Fields lists the wire fields in catalog order.
func (o LimitOrderCancel) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("orderid", codec.Uint32(o.OrderID)),
	}
}

// FeedPublish publishes a witness price feed.
type FeedPublish struct {
	Publisher    string `json:"publisher"`
	ExchangeRate Price  `json:"exchange_rate"`
}

// Type implements Operation.
func (FeedPublish) Type() OpType { return OpFeedPublish }

// Fields lists the wire fields in catalog order.
func (o FeedPublish) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("publisher", codec.String(o.Publisher)),
		codec.Req("exchange_rate", o.ExchangeRate),
	}
}

// Convert converts HBD to HIVE at the median feed price.
type Convert struct {
	Owner     string `json:"owner"`
	RequestID uint32 `json:"requestid"`
	Amount    Asset  `json:"amount"`
}

// Type implements Operation.
func (Convert) Type() OpType { return OpConvert }

// Fields lists the wire fields in catalog order.
func (o Convert) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("requestid", codec.Uint32(o.RequestID)),
		codec.Req("amount", o.Amount),
	}
}

// AccountCreate creates an account, paying the fee in HIVE.
type AccountCreate struct {
	Fee            Asset     `json:"fee"`
	Creator        string    `json:"creator"`
	NewAccountName string    `json:"new_account_name"`
	Owner          Authority `json:"owner"`
	Active         Authority `json:"active"`
	Posting        Authority `json:"posting"`
	MemoKey        PublicKey `json:"memo_key"`
	JSONMetadata   string    `json:"json_metadata"`
}

// Type implements Operation.
func (AccountCreate) Type() OpType { return OpAccountCreate }

// Fields lists the wire fields in catalog order.
func (o AccountCreate) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("fee", o.Fee),
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("new_account_name", codec.String(o.NewAccountName)),
		codec.Req("owner", o.Owner),
		codec.Req("active", o.Active),
		codec.Req("posting", o.Posting),
		codec.Req("memo_key", o.MemoKey),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
	}
}

// AccountUpdate changes account authorities. Nil authorities are left unchanged.
type AccountUpdate struct {
	Account      string     `json:"account"`
	Owner        *Authority `json:"owner,omitempty"`
	Active       *Authority `json:"active,omitempty"`
	Posting      *Authority `json:"posting,omitempty"`
	MemoKey      PublicKey  `json:"memo_key"`
	JSONMetadata string     `json:"json_metadata"`
}

// Type implements Operation.
func (AccountUpdate) Type() OpType { return OpAccountUpdate }

// Fields lists the wire fields in catalog order.
func (o AccountUpdate) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Opt("owner", codec.Ptr(o.Owner)),
		codec.Opt("active", codec.Ptr(o.Active)),
		codec.Opt("posting", codec.Ptr(o.Posting)),
		codec.Req("memo_key", o.MemoKey),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
	}
}

// WitnessUpdate registers or updates a witness.
type WitnessUpdate struct {
	Owner           string          `json:"owner"`
	URL             string          `json:"url"`
	BlockSigningKey PublicKey       `json:"block_signing_key"`
	Props           ChainProperties `json:"props"`
	Fee             Asset           `json:"fee"`
}

// Type implements Operation.
func (WitnessUpdate) Type() OpType { return OpWitnessUpdate }

// Fields lists the wire fields in catalog order.
func (o WitnessUpdate) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("url", codec.String(o.URL)),
		codec.Req("block_signing_key", o.BlockSigningKey),
		codec.Req("props", o.Props),
		codec.Req("fee", o.Fee),
	}
}

// AccountWitnessVote approves or unapproves a witness.
type AccountWitnessVote struct {
	Account string `json:"account"`
	Witness string `json:"witness"`
	Approve bool   `json:"approve"`
}

// Type implements Operation.
func (AccountWitnessVote) Type() OpType { return OpAccountWitnessVote }

// Fields lists the wire fields in catalog order.
func (o AccountWitnessVote) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("witness", codec.String(o.Witness)),
		codec.Req("approve", codec.Bool(o.Approve)),
	}
}

// AccountWitnessProxy delegates witness voting to another account.
type AccountWitnessProxy struct {
	Account string `json:"account"`
	Proxy   string `json:"proxy"`
}

// Type implements Operation.
func (AccountWitnessProxy) Type() OpType { return OpAccountWitnessProxy }

// Fields lists the wire fields in catalog order.
func (o AccountWitnessProxy) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("proxy", codec.String(o.Proxy)),
	}
}

// Custom carries opaque binary data under a numeric id.
type Custom struct {
	RequiredAuths []string `json:"required_auths"`
	ID            uint16   `json:"id"`
	Data          HexBytes `json:"data"`
}

// Type implements Operation.
func (Custom) Type() OpType { return OpCustom }

// Fields lists the wire fields in catalog order.
func (o Custom) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("required_auths", codec.Strings(o.RequiredAuths)),
		codec.Req("id", codec.Uint16(o.ID)),
		codec.Req("data", o.Data),
	}
}

// MarshalJSON writes a nil authority list as [].
func (o Custom) MarshalJSON() ([]byte, error) {
	type custom Custom
	out := custom(o)
	out.RequiredAuths = orEmpty(out.RequiredAuths)
	return json.Marshal(out)
}

// DeleteComment removes a post or reply that has no votes or replies.
type DeleteComment struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
}

// Type implements Operation.
func (DeleteComment) Type() OpType { return OpDeleteComment }

// Fields lists the wire fields in catalog order.
func (o DeleteComment) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("author", codec.String(o.Author)),
		codec.Req("permlink", codec.String(o.Permlink)),
	}
}

// CustomJSON is the generic custom action. JSON is an opaque payload that is
// never inspected; the account sits in RequiredAuths for active-level
// actions or RequiredPostingAuths for posting-level ones.
type CustomJSON struct {
	RequiredAuths        []string `json:"required_auths"`
	RequiredPostingAuths []string `json:"required_posting_auths"`
	ID                   string   `json:"id"`
	JSON                 string   `json:"json"`
}

// Type implements Operation.
func (CustomJSON) Type() OpType { return OpCustomJSON }

// Fields lists the wire fields in catalog order.
func (o CustomJSON) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("required_auths", codec.Strings(o.RequiredAuths)),
		codec.Req("required_posting_auths", codec.Strings(o.RequiredPostingAuths)),
		codec.Req("id", codec.String(o.ID)),
		codec.Req("json", codec.String(o.JSON)),
	}
}

// MarshalJSON writes nil authority lists as [].
func (o CustomJSON) MarshalJSON() ([]byte, error) {
	type customJSON CustomJSON
	out := customJSON(o)
	out.RequiredAuths = orEmpty(out.RequiredAuths)
	out.RequiredPostingAuths = orEmpty(out.RequiredPostingAuths)
	return json.Marshal(out)
}

// CommentOptions sets payout options of a post.
type CommentOptions struct {
	Author               string     `json:"author"`
	Permlink             string     `json:"permlink"`
	MaxAcceptedPayout    Asset      `json:"max_accepted_payout"`
	PercentHBD           uint16     `json:"percent_hbd"`
	AllowVotes           bool       `json:"allow_votes"`
	AllowCurationRewards bool       `json:"allow_curation_rewards"`
	Extensions           Extensions `json:"extensions"`
}

// Type implements Operation.
func (CommentOptions) Type() OpType { return OpCommentOptions }

// Fields lists the wire fields in catalog order.
func (o CommentOptions) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("author", codec.String(o.Author)),
		codec.Req("permlink", codec.String(o.Permlink)),
		codec.Req("max_accepted_payout", o.MaxAcceptedPayout),
		codec.Req("percent_hbd", codec.Uint16(o.PercentHBD)),
		codec.Req("allow_votes", codec.Bool(o.AllowVotes)),
		codec.Req("allow_curation_rewards", codec.Bool(o.AllowCurationRewards)),
		codec.Req("extensions", o.Extensions),
	}
}

// SetWithdrawVestingRoute routes part of a power down to another account.
type SetWithdrawVestingRoute struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Percent     uint16 `json:"percent"`
	AutoVest    bool   `json:"auto_vest"`
}

// Type implements Operation.
func (SetWithdrawVestingRoute) Type() OpType { return OpSetWithdrawVestingRoute }

// Fields lists the wire fields in catalog order.
func (o SetWithdrawVestingRoute) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from_account", codec.String(o.FromAccount)),
		codec.Req("to_account", codec.String(o.ToAccount)),
		codec.Req("percent", codec.Uint16(o.Percent)),
		codec.Req("auto_vest", codec.Bool(o.AutoVest)),
	}
}

// LimitOrderCreate2 places a market order priced by an exchange rate.
type LimitOrderCreate2 struct {
	Owner        string `json:"owner"`
	OrderID      uint32 `json:"orderid"`
	AmountToSell Asset  `json:"amount_to_sell"`
	ExchangeRate Price  `json:"exchange_rate"`
	FillOrKill   bool   `json:"fill_or_kill"`
	Expiration   Time   `json:"expiration"`
}

// Type implements Operation.
func (LimitOrderCreate2) Type() OpType { return OpLimitOrderCreate2 }

// Fields lists the wire fields in catalog order.
func (o LimitOrderCreate2) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("orderid", codec.Uint32(o.OrderID)),
		codec.Req("amount_to_sell", o.AmountToSell),
		codec.Req("exchange_rate", o.ExchangeRate),
		codec.Req("fill_or_kill", codec.Bool(o.FillOrKill)),
		codec.Req("expiration", o.Expiration),
	}
}

// ClaimAccount claims an account creation ticket.
type ClaimAccount struct {
	Creator    string     `json:"creator"`
	Fee        Asset      `json:"fee"`
	Extensions Extensions `json:"extensions"`
}

// Type implements Operation.
func (ClaimAccount) Type() OpType { return OpClaimAccount }

// Fields lists the wire fields in catalog order.
func (o ClaimAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("fee", o.Fee),
		codec.Req("extensions", o.Extensions),
	}
}

// CreateClaimedAccount creates an account from a claimed ticket.
type CreateClaimedAccount struct {
	Creator        string     `json:"creator"`
	NewAccountName string     `json:"new_account_name"`
	Owner          Authority  `json:"owner"`
	Active         Authority  `json:"active"`
	Posting        Authority  `json:"posting"`
	MemoKey        PublicKey  `json:"memo_key"`
	JSONMetadata   string     `json:"json_metadata"`
	Extensions     Extensions `json:"extensions"`
}

// Type implements Operation.
func (CreateClaimedAccount) Type() OpType { return OpCreateClaimedAccount }

// Fields lists the wire fields in catalog order.
func (o CreateClaimedAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("new_account_name", codec.String(o.NewAccountName)),
		codec.Req("owner", o.Owner),
		codec.Req("active", o.Active),
		codec.Req("posting", o.Posting),
		codec.Req("memo_key", o.MemoKey),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
		codec.Req("extensions", o.Extensions),
	}
}

// RequestAccountRecovery is sent by a recovery account to start recovery.
type RequestAccountRecovery struct {
	RecoveryAccount   string     `json:"recovery_account"`
	AccountToRecover  string     `json:"account_to_recover"`
	NewOwnerAuthority Authority  `json:"new_owner_authority"`
	Extensions        Extensions `json:"extensions"`
}

// Type implements Operation.
func (RequestAccountRecovery) Type() OpType { return OpRequestAccountRecovery }

// Fields lists the wire fields in catalog order.
func (o RequestAccountRecovery) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("recovery_account", codec.String(o.RecoveryAccount)),
		codec.Req("account_to_recover", codec.String(o.AccountToRecover)),
		codec.Req("new_owner_authority", o.NewOwnerAuthority),
		codec.Req("extensions", o.Extensions),
	}
}

// RecoverAccount proves ownership of a recent owner key to regain an account.
type RecoverAccount struct {
	AccountToRecover     string     `json:"account_to_recover"`
	NewOwnerAuthority    Authority  `json:"new_owner_authority"`
	RecentOwnerAuthority Authority  `json:"recent_owner_authority"`
	Extensions           Extensions `json:"extensions"`
}

// Type implements Operation.
func (RecoverAccount) Type() OpType { return OpRecoverAccount }

// Fields lists the wire fields in catalog order.
func (o RecoverAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account_to_recover", codec.String(o.AccountToRecover)),
		codec.Req("new_owner_authority", o.NewOwnerAuthority),
		codec.Req("recent_owner_authority", o.RecentOwnerAuthority),
		codec.Req("extensions", o.Extensions),
	}
}

// ChangeRecoveryAccount names a new recovery account.
type ChangeRecoveryAccount struct {
	AccountToRecover   string     `json:"account_to_recover"`
	NewRecoveryAccount string     `json:"new_recovery_account"`
	Extensions         Extensions `json:"extensions"`
}

// Type implements Operation.
func (ChangeRecoveryAccount) Type() OpType { return OpChangeRecoveryAccount }

// Fields lists the wire fields in catalog order.
func (o ChangeRecoveryAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account_to_recover", codec.String(o.AccountToRecover)),
		codec.Req("new_recovery_account", codec.String(o.NewRecoveryAccount)),
		codec.Req("extensions", o.Extensions),
	}
}

// EscrowTransfer moves funds into escrow under an agent.
type EscrowTransfer struct {
	From                 string `json:"from"`
	To                   string `json:"to"`
	HBDAmount            Asset  `json:"hbd_amount"`
	HiveAmount           Asset  `json:"hive_amount"`
	EscrowID             uint32 `json:"escrow_id"`
	Agent                string `json:"agent"`
	Fee                  Asset  `json:"fee"`
	JSONMeta             string `json:"json_meta"`
	RatificationDeadline Time   `json:"ratification_deadline"`
	EscrowExpiration     Time   `json:"escrow_expiration"`
}

// Type implements Operation.
func (EscrowTransfer) Type() OpType { return OpEscrowTransfer }

// Fields lists the wire fields in catalog order.
func (o EscrowTransfer) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("hbd_amount", o.HBDAmount),
		codec.Req("hive_amount", o.HiveAmount),
		codec.Req("escrow_id", codec.Uint32(o.EscrowID)),
		codec.Req("agent", codec.String(o.Agent)),
		codec.Req("fee", o.Fee),
		codec.Req("json_meta", codec.String(o.JSONMeta)),
		codec.Req("ratification_deadline", o.RatificationDeadline),
		codec.Req("escrow_expiration", o.EscrowExpiration),
	}
}

// EscrowDispute raises a dispute on an escrow.
type EscrowDispute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
}

// Type implements Operation.
func (EscrowDispute) Type() OpType { return OpEscrowDispute }

// Fields lists the wire fields in catalog order.
func (o EscrowDispute) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("agent", codec.String(o.Agent)),
		codec.Req("who", codec.String(o.Who)),
		codec.Req("escrow_id", codec.Uint32(o.EscrowID)),
	}
}

// EscrowRelease releases escrowed funds.
type EscrowRelease struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Agent      string `json:"agent"`
	Who        string `json:"who"`
	Receiver   string `json:"receiver"`
	EscrowID   uint32 `json:"escrow_id"`
	HBDAmount  Asset  `json:"hbd_amount"`
	HiveAmount Asset  `json:"hive_amount"`
}

// Type implements Operation.
func (EscrowRelease) Type() OpType { return OpEscrowRelease }

// Fields lists the wire fields in catalog order.
func (o EscrowRelease) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("agent", codec.String(o.Agent)),
		codec.Req("who", codec.String(o.Who)),
		codec.Req("receiver", codec.String(o.Receiver)),
		codec.Req("escrow_id", codec.Uint32(o.EscrowID)),
		codec.Req("hbd_amount", o.HBDAmount),
		codec.Req("hive_amount", o.HiveAmount),
	}
}

// EscrowApprove approves or rejects an escrow as agent or receiver.
type EscrowApprove struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Agent    string `json:"agent"`
	Who      string `json:"who"`
	EscrowID uint32 `json:"escrow_id"`
	Approve  bool   `json:"approve"`
}

// Type implements Operation.
func (EscrowApprove) Type() OpType { return OpEscrowApprove }

// Fields lists the wire fields in catalog order.
func (o EscrowApprove) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("agent", codec.String(o.Agent)),
		codec.Req("who", codec.String(o.Who)),
		codec.Req("escrow_id", codec.Uint32(o.EscrowID)),
		codec.Req("approve", codec.Bool(o.Approve)),
	}
}

// TransferToSavings moves funds into savings.
type TransferToSavings struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Asset  `json:"amount"`
	Memo   string `json:"memo"`
}

// Type implements Operation.
func (TransferToSavings) Type() OpType { return OpTransferToSavings }

// Fields lists the wire fields in catalog order.
func (o TransferToSavings) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("amount", o.Amount),
		codec.Req("memo", codec.String(o.Memo)),
	}
}

// TransferFromSavings starts a delayed withdrawal from savings.
type TransferFromSavings struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
	To        string `json:"to"`
	Amount    Asset  `json:"amount"`
	Memo      string `json:"memo"`
}

// Type implements Operation.
func (TransferFromSavings) Type() OpType { return OpTransferFromSavings }

// Fields lists the wire fields in catalog order.
func (o TransferFromSavings) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("request_id", codec.Uint32(o.RequestID)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("amount", o.Amount),
		codec.Req("memo", codec.String(o.Memo)),
	}
}

// CancelTransferFromSavings cancels a pending savings withdrawal.
type CancelTransferFromSavings struct {
	From      string `json:"from"`
	RequestID uint32 `json:"request_id"`
}

// Type implements Operation.
func (CancelTransferFromSavings) Type() OpType { return OpCancelTransferFromSavings }

// Fields lists the wire fields in catalog order.
func (o CancelTransferFromSavings) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("request_id", codec.Uint32(o.RequestID)),
	}
}

// CustomBinary carries opaque binary data with full authorities.
type CustomBinary struct {
	RequiredOwnerAuths   []string    `json:"required_owner_auths"`
	RequiredActiveAuths  []string    `json:"required_active_auths"`
	RequiredPostingAuths []string    `json:"required_posting_auths"`
	RequiredAuths        []Authority `json:"required_auths"`
	ID                   string      `json:"id"`
	Data                 HexBytes    `json:"data"`
}

// Type implements Operation.
func (CustomBinary) Type() OpType { return OpCustomBinary }

// Fields lists the wire fields in catalog order.
func (o CustomBinary) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("required_owner_auths", codec.Strings(o.RequiredOwnerAuths)),
		codec.Req("required_active_auths", codec.Strings(o.RequiredActiveAuths)),
		codec.Req("required_posting_auths", codec.Strings(o.RequiredPostingAuths)),
		codec.Req("required_auths", codec.List[Authority](o.RequiredAuths)),
		codec.Req("id", codec.String(o.ID)),
		codec.Req("data", o.Data),
	}
}

// MarshalJSON writes nil authority lists as [].
func (o CustomBinary) MarshalJSON() ([]byte, error) {
	type customBinary CustomBinary
	out := customBinary(o)
	out.RequiredOwnerAuths = orEmpty(out.RequiredOwnerAuths)
	out.RequiredActiveAuths = orEmpty(out.RequiredActiveAuths)
	out.RequiredPostingAuths = orEmpty(out.RequiredPostingAuths)
	if out.RequiredAuths == nil {
		out.RequiredAuths = []Authority{}
	}
	return json.Marshal(out)
}

// DeclineVotingRights gives up governance voting for good.
type DeclineVotingRights struct {
	Account string `json:"account"`
	Decline bool   `json:"decline"`
}

// Type implements Operation.
func (DeclineVotingRights) Type() OpType { return OpDeclineVotingRights }

// Fields lists the wire fields in catalog order.
func (o DeclineVotingRights) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("decline", codec.Bool(o.Decline)),
	}
}

// ResetAccount resets the owner key of an inactive account.
type ResetAccount struct {
	ResetAccount      string    `json:"reset_account"`
	AccountToReset    string    `json:"account_to_reset"`
	NewOwnerAuthority Authority `json:"new_owner_authority"`
}

// Type implements Operation.
func (ResetAccount) Type() OpType { return OpResetAccount }

// Fields lists the wire fields in catalog order.
func (o ResetAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("reset_account", codec.String(o.ResetAccount)),
		codec.Req("account_to_reset", codec.String(o.AccountToReset)),
		codec.Req("new_owner_authority", o.NewOwnerAuthority),
	}
}

// SetResetAccount names the account allowed to reset this one.
type SetResetAccount struct {
	Account             string `json:"account"`
	CurrentResetAccount string `json:"current_reset_account"`
	ResetAccount        string `json:"reset_account"`
}

// Type implements Operation.
func (SetResetAccount) Type() OpType { return OpSetResetAccount }

// Fields lists the wire fields in catalog order.
func (o SetResetAccount) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("current_reset_account", codec.String(o.CurrentResetAccount)),
		codec.Req("reset_account", codec.String(o.ResetAccount)),
	}
}

// ClaimRewardBalance moves pending rewards to the liquid balances.
type ClaimRewardBalance struct {
	Account     string `json:"account"`
	RewardHive  Asset  `json:"reward_hive"`
	RewardHBD   Asset  `json:"reward_hbd"`
	RewardVests Asset  `json:"reward_vests"`
}

// Type implements Operation.
func (ClaimRewardBalance) Type() OpType { return OpClaimRewardBalance }

// Fields lists the wire fields in catalog order.
func (o ClaimRewardBalance) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Req("reward_hive", o.RewardHive),
		codec.Req("reward_hbd", o.RewardHBD),
		codec.Req("reward_vests", o.RewardVests),
	}
}

// DelegateVestingShares lends vesting shares to another account.
type DelegateVestingShares struct {
	Delegator     string `json:"delegator"`
	Delegatee     string `json:"delegatee"`
	VestingShares Asset  `json:"vesting_shares"`
}

// Type implements Operation.
func (DelegateVestingShares) Type() OpType { return OpDelegateVestingShares }

// Fields lists the wire fields in catalog order.
func (o DelegateVestingShares) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("delegator", codec.String(o.Delegator)),
		codec.Req("delegatee", codec.String(o.Delegatee)),
		codec.Req("vesting_shares", o.VestingShares),
	}
}

// AccountCreateWithDelegation creates an account partly paid by delegation.
type AccountCreateWithDelegation struct {
	Fee            Asset      `json:"fee"`
	Delegation     Asset      `json:"delegation"`
	Creator        string     `json:"creator"`
	NewAccountName string     `json:"new_account_name"`
	Owner          Authority  `json:"owner"`
	Active         Authority  `json:"active"`
	Posting        Authority  `json:"posting"`
	MemoKey        PublicKey  `json:"memo_key"`
	JSONMetadata   string     `json:"json_metadata"`
	Extensions     Extensions `json:"extensions"`
}

// Type implements Operation.
func (AccountCreateWithDelegation) Type() OpType { return OpAccountCreateWithDelegation }

// Fields lists the wire fields in catalog order.
func (o AccountCreateWithDelegation) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("fee", o.Fee),
		codec.Req("delegation", o.Delegation),
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("new_account_name", codec.String(o.NewAccountName)),
		codec.Req("owner", o.Owner),
		codec.Req("active", o.Active),
		codec.Req("posting", o.Posting),
		codec.Req("memo_key", o.MemoKey),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
		codec.Req("extensions", o.Extensions),
	}
}

// WitnessSetProperties updates witness properties from a signed property map.
type WitnessSetProperties struct {
	Owner      string       `json:"owner"`
	Props      WitnessProps `json:"props"`
	Extensions Extensions   `json:"extensions"`
}

// Type implements Operation.
func (WitnessSetProperties) Type() OpType { return OpWitnessSetProperties }

// Fields lists the wire fields in catalog order.
func (o WitnessSetProperties) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("props", o.Props),
		codec.Req("extensions", o.Extensions),
	}
}

// AccountUpdate2 changes account authorities and metadata. Nil fields are left unchanged.
type AccountUpdate2 struct {
	Account             string     `json:"account"`
	Owner               *Authority `json:"owner,omitempty"`
	Active              *Authority `json:"active,omitempty"`
	Posting             *Authority `json:"posting,omitempty"`
	MemoKey             *PublicKey `json:"memo_key,omitempty"`
	JSONMetadata        string     `json:"json_metadata"`
	PostingJSONMetadata string     `json:"posting_json_metadata"`
	Extensions          Extensions `json:"extensions"`
}

// Type implements Operation.
func (AccountUpdate2) Type() OpType { return OpAccountUpdate2 }

// Fields lists the wire fields in catalog order.
func (o AccountUpdate2) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("account", codec.String(o.Account)),
		codec.Opt("owner", codec.Ptr(o.Owner)),
		codec.Opt("active", codec.Ptr(o.Active)),
		codec.Opt("posting", codec.Ptr(o.Posting)),
		codec.Opt("memo_key", codec.Ptr(o.MemoKey)),
		codec.Req("json_metadata", codec.String(o.JSONMetadata)),
		codec.Req("posting_json_metadata", codec.String(o.PostingJSONMetadata)),
		codec.Req("extensions", o.Extensions),
	}
}

// CreateProposal creates a DHF funding proposal.
type CreateProposal struct {
	Creator    string     `json:"creator"`
	Receiver   string     `json:"receiver"`
	StartDate  Time       `json:"start_date"`
	EndDate    Time       `json:"end_date"`
	DailyPay   Asset      `json:"daily_pay"`
	Subject    string     `json:"subject"`
	Permlink   string     `json:"permlink"`
	Extensions Extensions `json:"extensions"`
}

// Type implements Operation.
func (CreateProposal) Type() OpType { return OpCreateProposal }

// Fields lists the wire fields in catalog order.
func (o CreateProposal) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("receiver", codec.String(o.Receiver)),
		codec.Req("start_date", o.StartDate),
		codec.Req("end_date", o.EndDate),
		codec.Req("daily_pay", o.DailyPay),
		codec.Req("subject", codec.String(o.Subject)),
		codec.Req("permlink", codec.String(o.Permlink)),
		codec.Req("extensions", o.Extensions),
	}
}

// UpdateProposalVotes approves or unapproves proposals.
type UpdateProposalVotes struct {
	Voter       string     `json:"voter"`
	ProposalIDs []int64    `json:"proposal_ids"`
	Approve     bool       `json:"approve"`
	Extensions  Extensions `json:"extensions"`
}

// Type implements Operation.
func (UpdateProposalVotes) Type() OpType { return OpUpdateProposalVotes }

// Fields lists the wire fields in catalog order.
func (o UpdateProposalVotes) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("voter", codec.String(o.Voter)),
		codec.Req("proposal_ids", codec.Int64s(o.ProposalIDs)),
		codec.Req("approve", codec.Bool(o.Approve)),
		codec.Req("extensions", o.Extensions),
	}
}

// RemoveProposal removes proposals owned by the caller.
type RemoveProposal struct {
	ProposalOwner string     `json:"proposal_owner"`
	ProposalIDs   []int64    `json:"proposal_ids"`
	Extensions    Extensions `json:"extensions"`
}

// Type implements Operation.
func (RemoveProposal) Type() OpType { return OpRemoveProposal }

// Fields lists the wire fields in catalog order.
func (o RemoveProposal) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("proposal_owner", codec.String(o.ProposalOwner)),
		codec.Req("proposal_ids", codec.Int64s(o.ProposalIDs)),
		codec.Req("extensions", o.Extensions),
	}
}

// UpdateProposal edits an existing proposal.
type UpdateProposal struct {
	ProposalID int64      `json:"proposal_id"`
	Creator    string     `json:"creator"`
	DailyPay   Asset      `json:"daily_pay"`
	Subject    string     `json:"subject"`
	Permlink   string     `json:"permlink"`
	Extensions Extensions `json:"extensions"`
}

// Type implements Operation.
func (UpdateProposal) Type() OpType { return OpUpdateProposal }

// Fields lists the wire fields in catalog order.
func (o UpdateProposal) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("proposal_id", codec.Int64(o.ProposalID)),
		codec.Req("creator", codec.String(o.Creator)),
		codec.Req("daily_pay", o.DailyPay),
		codec.Req("subject", codec.String(o.Subject)),
		codec.Req("permlink", codec.String(o.Permlink)),
		codec.Req("extensions", o.Extensions),
	}
}

// CollateralizedConvert converts HIVE to HBD against collateral.
type CollateralizedConvert struct {
	Owner     string `json:"owner"`
	RequestID uint32 `json:"requestid"`
	Amount    Asset  `json:"amount"`
}

// Type implements Operation.
func (CollateralizedConvert) Type() OpType { return OpCollateralizedConvert }

// Fields lists the wire fields in catalog order.
func (o CollateralizedConvert) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("owner", codec.String(o.Owner)),
		codec.Req("requestid", codec.Uint32(o.RequestID)),
		codec.Req("amount", o.Amount),
	}
}

// RecurrentTransfer schedules a transfer repeated every Recurrence hours.
type RecurrentTransfer struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Amount     Asset      `json:"amount"`
	Memo       string     `json:"memo"`
	Recurrence uint16     `json:"recurrence"`
	Executions uint16     `json:"executions"`
	Extensions Extensions `json:"extensions"`
}

// Type implements Operation.
func (RecurrentTransfer) Type() OpType { return OpRecurrentTransfer }

// Fields lists the wire fields in catalog order.
func (o RecurrentTransfer) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("from", codec.String(o.From)),
		codec.Req("to", codec.String(o.To)),
		codec.Req("amount", o.Amount),
		codec.Req("memo", codec.String(o.Memo)),
		codec.Req("recurrence", codec.Uint16(o.Recurrence)),
		codec.Req("executions", codec.Uint16(o.Executions)),
		codec.Req("extensions", o.Extensions),
	}
}
