package config

import "errors"

var (
	// ErrInvalidNetwork indicates the network name is not recognized.
	ErrInvalidNetwork = errors.New("config: invalid network (must be \"mainnet\" or \"testnet\")")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")

	// ErrInvalidRetry indicates retry attempts or delay are out of range.
	ErrInvalidRetry = errors.New("config: invalid retry policy")

	// ErrInvalidExpiration indicates an expiration window the chain would refuse.
	ErrInvalidExpiration = errors.New("config: invalid expiration window")

	// ErrInvalidChainID indicates a chain id override that is not 32 bytes of hex.
	ErrInvalidChainID = errors.New("config: invalid chain id")

	// ErrInvalidRPCURL indicates an RPC URL that is not http or https.
	ErrInvalidRPCURL = errors.New("config: invalid RPC URL")
)
