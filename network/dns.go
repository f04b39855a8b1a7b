package network

import (
	"fmt"
	"net"
	"sort"
	"strings"
)

// DNSResolver defines the interface for DNS lookups.
// This allows tests to mock DNS resolution.
type DNSResolver interface {
	// LookupSRV looks up SRV records for the given service, proto, and name.
	LookupSRV(service, proto, name string) (string, []*net.SRV, error)
}

// defaultDNSResolver wraps the standard net package DNS functions.
type defaultDNSResolver struct{}

func (d *defaultDNSResolver) LookupSRV(service, proto, name string) (string, []*net.SRV, error) {
	return net.LookupSRV(service, proto, name)
}

// DefaultDNSResolver is the production DNS resolver using the net package.
var DefaultDNSResolver DNSResolver = &defaultDNSResolver{}

// SRVHiveAPI is the service label published for API nodes: _hive-api._tcp.{domain}.
const SRVHiveAPI = "hive-api"

// ResolveEndpoints discovers API node URLs for a domain through SRV records.
// Returns https URLs sorted by priority then weight.
func ResolveEndpoints(domain string) ([]string, error) {
	return ResolveEndpointsWithResolver(domain, DefaultDNSResolver)
}

// ResolveEndpointsWithResolver resolves SRV records using the provided DNS resolver.
func ResolveEndpointsWithResolver(domain string, resolver DNSResolver) ([]string, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: empty domain", ErrDNSLookupFailed)
	}
	if resolver == nil {
		return nil, ErrNilParam
	}

	_, addrs, err := resolver.LookupSRV(SRVHiveAPI, "tcp", domain)
	if err != nil {
		return nil, fmt.Errorf("%w: SRV lookup for _%s._tcp.%s: %w", ErrDNSLookupFailed, SRVHiveAPI, domain, err)
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: no SRV records for _%s._tcp.%s", ErrNoEndpoints, SRVHiveAPI, domain)
	}

	// Sort by priority (ascending), then by weight (descending)
	sort.SliceStable(addrs, func(i, j int) bool {
		if addrs[i].Priority != addrs[j].Priority {
			return addrs[i].Priority < addrs[j].Priority
		}
		return addrs[i].Weight > addrs[j].Weight
	})

	endpoints := make([]string, len(addrs))
	for i, srv := range addrs {
		host := strings.TrimSuffix(srv.Target, ".")
		if srv.Port == 443 {
			endpoints[i] = "https://" + host
			continue
		}
		endpoints[i] = fmt.Sprintf("https://%s:%d", host, srv.Port)
	}

	return endpoints, nil
}
