package tx

import (
	"encoding/hex"
	"fmt"
	"time"
)

// ChainID identifies the network; it prefixes every signing digest.
type ChainID [32]byte

var (
	// MainnetChainID is the Hive mainnet chain id.
	MainnetChainID = mustChainID("beeab0de00000000000000000000000000000000000000000000000000000000")

	// TestnetChainID is the Hive public testnet chain id.
	TestnetChainID = mustChainID("18dcf0a285365fc58b71f18b3d3fec954aa0c141c44e4e5cb4cf777b9eab274e")
)

const (
	// DefaultExpiration is how long after head-block time a transaction stays valid.
	DefaultExpiration = 5 * time.Minute

	// DefaultMaxAttempts bounds head-state attempts per build, first try included.
	DefaultMaxAttempts = 5

	// DefaultRetryDelay is the fixed pause between attempts.
	DefaultRetryDelay = 10 * time.Second
)

// ParseChainID decodes a 64-character hex chain id.
func ParseChainID(s string) (ChainID, error) {
	var id ChainID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidChainID, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: %d bytes", ErrInvalidChainID, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ChainIDForNetwork returns the chain id of a named network.
func ChainIDForNetwork(network string) (ChainID, error) {
	switch network {
	case "mainnet", "":
		return MainnetChainID, nil
	case "testnet":
		return TestnetChainID, nil
	}
	return ChainID{}, fmt.Errorf("%w: unknown network %q", ErrInvalidChainID, network)
}

func (c ChainID) String() string { return hex.EncodeToString(c[:]) }

func mustChainID(s string) ChainID {
	id, err := ParseChainID(s)
	if err != nil {
		panic(err)
	}
	return id
}
