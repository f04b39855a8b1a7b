package tx

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/terracoremate/hivekit/codec"
	"github.com/terracoremate/hivekit/protocol"
)

// HeadState is the slice of chain state a transaction is anchored to.
type HeadState struct {
	HeadBlockNumber uint32
	HeadBlockID     string
	Time            time.Time
}

// Body is an unsigned or signed transaction body. Its canonical encoding
// omits Signatures: that is the form that gets hashed and signed.
type Body struct {
	RefBlockNum    uint16              `json:"ref_block_num"`
	RefBlockPrefix uint32              `json:"ref_block_prefix"`
	Expiration     protocol.Time       `json:"expiration"`
	Operations     protocol.Operations `json:"operations"`
	Extensions     protocol.Extensions `json:"extensions"`
	Signatures     []string            `json:"signatures"`
}

// NewBody anchors ops to head:
// ref_block_num is the low 16 bits of the head block number,
// ref_block_prefix is the little-endian uint32 at byte 4 of the head block id,
// and the body expires window after head time.
func NewBody(head *HeadState, ops []protocol.Operation, window time.Duration) (*Body, error) {
	if head == nil {
		return nil, fmt.Errorf("%w: head state", ErrNilParam)
	}
	id, err := hex.DecodeString(head.HeadBlockID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeadBlockID, err)
	}
	if len(id) < 8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidHeadBlockID, len(id))
	}

	return &Body{
		RefBlockNum:    uint16(head.HeadBlockNumber & 0xFFFF),
		RefBlockPrefix: binary.LittleEndian.Uint32(id[4:8]),
		Expiration:     protocol.NewTime(head.Time.Add(window)),
		Operations:     append(protocol.Operations(nil), ops...),
		Signatures:     []string{},
	}, nil
}

func (b *Body) Fields() []codec.Field {
	return []codec.Field{
		codec.Req("ref_block_num", codec.Uint16(b.RefBlockNum)),
		codec.Req("ref_block_prefix", codec.Uint32(b.RefBlockPrefix)),
		codec.Req("expiration", b.Expiration),
		codec.Req("operations", b.Operations),
		codec.Req("extensions", b.Extensions),
	}
}

// MarshalHive writes the signing form of the body.
func (b *Body) MarshalHive(e *codec.Encoder) error { return e.WriteRecord(b) }

// SignedBytes returns the full binary transaction: the signing form
// followed by the signature list, each signature as 65 raw bytes.
func (b *Body) SignedBytes() ([]byte, error) {
	e := codec.NewEncoder()
	if err := b.MarshalHive(e); err != nil {
		return nil, err
	}
	e.WriteVarint(uint64(len(b.Signatures)))
	for i, s := range b.Signatures {
		sig, err := hex.DecodeString(s)
		if err != nil || len(sig) != compactSigLen {
			return nil, fmt.Errorf("%w: signature %d", ErrInvalidSignature, i)
		}
		e.WriteRaw(sig)
	}
	return append([]byte(nil), e.Bytes()...), nil
}

// MarshalJSON renders the RPC form; a nil signature list is written as [].
func (b Body) MarshalJSON() ([]byte, error) {
	type body Body
	out := body(b)
	if out.Signatures == nil {
		out.Signatures = []string{}
	}
	if out.Operations == nil {
		out.Operations = protocol.Operations{}
	}
	return json.Marshal(out)
}

// SignedTransaction is a signed body with its transaction id.
type SignedTransaction struct {
	Tx *Body  `json:"tx"`
	ID string `json:"txid"`
}
