package tx

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/terracoremate/hivekit/codec"
)

const (
	compactSigLen = 65

	// compactHeaderBase is 27 plus 4 for a compressed public key.
	compactHeaderBase = 27 + 4

	// maxNonceIterations bounds the search for a canonical signature.
	// Each RFC6979 candidate is canonical with probability about 1/4.
	maxNonceIterations = 1024
)

// Digest returns SHA256(chainID || body), the value that gets signed.
func Digest(chainID ChainID, body []byte) [32]byte {
	h := sha256.New()
	h.Write(chainID[:])
	h.Write(body)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// TransactionID returns the first 20 bytes of SHA256(body), hex encoded.
func TransactionID(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:20])
}

// Sign serializes body, signs the digest with each key in order and
// returns the signed transaction. body is not modified; on error nothing
// is returned.
func Sign(body *Body, chainID ChainID, keys [][]byte) (*SignedTransaction, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: body", ErrNilParam)
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	// 1. Serialize the signing form.
	payload, err := codec.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: serialize: %w", ErrSigningFailed, err)
	}

	// 2. Digest with the chain id prefix.
	digest := Digest(chainID, payload)

	// 3. One signature per key, caller order.
	sigs := make([]string, 0, len(body.Signatures)+len(keys))
	sigs = append(sigs, body.Signatures...)
	for i, key := range keys {
		sig, err := SignDigest(digest[:], key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		sigs = append(sigs, hex.EncodeToString(sig))
	}

	signed := *body
	signed.Signatures = sigs
	return &SignedTransaction{Tx: &signed, ID: TransactionID(payload)}, nil
}

// SignDigest produces a 65-byte compact recoverable signature over digest:
// a header byte 31+recid, then r and s. RFC6979 nonces are iterated until
// both r and s pass the canonical form check nodes enforce.
func SignDigest(digest, key []byte) ([]byte, error) {
	if len(digest) != sha256.Size {
		return nil, fmt.Errorf("%w: digest is %d bytes", ErrSigningFailed, len(digest))
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: private key is %d bytes", ErrSigningFailed, len(key))
	}

	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(key); overflow || d.IsZero() {
		return nil, fmt.Errorf("%w: private key out of range", ErrSigningFailed)
	}
	defer d.Zero()

	for iter := uint32(0); iter < maxNonceIterations; iter++ {
		k := secp256k1.NonceRFC6979(key, digest, nil, nil, iter)
		sig, ok := signWithNonce(&d, k, digest)
		k.Zero()
		if ok && IsCanonical(sig) {
			return sig, nil
		}
	}
	return nil, fmt.Errorf("%w: no canonical signature after %d nonces", ErrSigningFailed, maxNonceIterations)
}

// signWithNonce is ECDSA with a caller-chosen nonce, low-S normalized,
// returned in compact form.
func signWithNonce(d, k *secp256k1.ModNScalar, hash []byte) ([]byte, bool) {
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &kG)
	kG.ToAffine()

	var xb [32]byte
	kG.X.PutBytes(&xb)
	var r secp256k1.ModNScalar
	overflow := r.SetBytes(&xb)
	if r.IsZero() {
		return nil, false
	}
	recid := byte(overflow<<1) | byte(kG.Y.IsOddBit())

	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	kinv := new(secp256k1.ModNScalar).InverseValNonConst(k)
	s := new(secp256k1.ModNScalar).Mul2(d, &r).Add(&e).Mul(kinv)
	if s.IsZero() {
		return nil, false
	}
	if s.IsOverHalfOrder() {
		s.Negate()
		recid ^= 0x01
	}

	sig := make([]byte, compactSigLen)
	sig[0] = compactHeaderBase + recid
	r.PutBytesUnchecked(sig[1:33])
	s.PutBytesUnchecked(sig[33:65])
	return sig, true
}

// IsCanonical reports whether a compact signature has r and s in the
// canonical form: no high bit set, and no redundant leading zero byte.
func IsCanonical(sig []byte) bool {
	if len(sig) != compactSigLen {
		return false
	}
	return sig[1]&0x80 == 0 &&
		!(sig[1] == 0 && sig[2]&0x80 == 0) &&
		sig[33]&0x80 == 0 &&
		!(sig[33] == 0 && sig[34]&0x80 == 0)
}

// RecoverSigner returns the compressed public key that produced sig over digest.
func RecoverSigner(digest []byte, sigHex string) ([]byte, error) {
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if len(sig) != compactSigLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSignature, len(sig))
	}
	pub, _, err := ecdsa.RecoverCompact(sig, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return pub.SerializeCompressed(), nil
}
