package network

import "fmt"

// RPCConfig holds the connection parameters for a Hive API node.
type RPCConfig struct {
	URL     string `json:"url"`
	Network string `json:"network"`
}

// NetworkPresets contains default RPC configurations for known networks.
// Mainnet has no preset and needs an explicit URL.
var NetworkPresets = map[string]RPCConfig{
	"testnet": {URL: "https://testnet.openhive.network"},
}

// ResolveConfig merges RPC configuration from three sources with decreasing priority:
//  1. CLI flags (highest priority)
//  2. Environment variables (HIVE_RPC_URL)
//  3. Network presets (lowest priority, testnet only)
//
// For mainnet, explicit configuration is required -- there is no preset.
func ResolveConfig(flags *RPCConfig, env map[string]string, network string) (*RPCConfig, error) {
	result := RPCConfig{Network: network}

	if preset, ok := NetworkPresets[network]; ok {
		result = preset
		result.Network = network
	}

	if v, ok := env["HIVE_RPC_URL"]; ok && v != "" {
		result.URL = v
	}

	if flags != nil && flags.URL != "" {
		result.URL = flags.URL
	}

	if result.URL == "" {
		return nil, fmt.Errorf("network: %s requires explicit RPC configuration (set --rpc-url, HIVE_RPC_URL, or config file)", network)
	}

	return &result, nil
}
