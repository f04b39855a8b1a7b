package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not connect to the node.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrBroadcastRejected indicates the node rejected the broadcast transaction.
	ErrBroadcastRejected = errors.New("network: broadcast rejected")

	// ErrInvalidResponse indicates the node returned a malformed or unexpected response.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("network: required parameter is nil")

	// ErrDNSLookupFailed indicates a DNS query failed.
	ErrDNSLookupFailed = errors.New("network: DNS lookup failed")

	// ErrNoEndpoints indicates SRV discovery returned no records.
	ErrNoEndpoints = errors.New("network: no endpoints found")

	// ErrDNSSECValidationFailed indicates the resolver did not authenticate the answer.
	ErrDNSSECValidationFailed = errors.New("network: DNSSEC validation failed")
)
