package network

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDNSResolver returns canned SRV answers.
type mockDNSResolver struct {
	srvs  []*net.SRV
	err   error
	query string
}

func (m *mockDNSResolver) LookupSRV(service, proto, name string) (string, []*net.SRV, error) {
	m.query = "_" + service + "._" + proto + "." + name
	return "", m.srvs, m.err
}

func TestResolveEndpoints_SortedByPriorityThenWeight(t *testing.T) {
	r := &mockDNSResolver{srvs: []*net.SRV{
		{Target: "backup.example.com.", Port: 8091, Priority: 20, Weight: 5},
		{Target: "light.example.com.", Port: 443, Priority: 10, Weight: 10},
		{Target: "heavy.example.com.", Port: 443, Priority: 10, Weight: 60},
	}}

	endpoints, err := ResolveEndpointsWithResolver("example.com", r)
	require.NoError(t, err)
	assert.Equal(t, "_hive-api._tcp.example.com", r.query)
	assert.Equal(t, []string{
		"https://heavy.example.com",
		"https://light.example.com",
		"https://backup.example.com:8091",
	}, endpoints)
}

func TestResolveEndpoints_Errors(t *testing.T) {
	_, err := ResolveEndpointsWithResolver("", &mockDNSResolver{})
	assert.ErrorIs(t, err, ErrDNSLookupFailed)

	_, err = ResolveEndpointsWithResolver("example.com", nil)
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = ResolveEndpointsWithResolver("example.com", &mockDNSResolver{err: errors.New("timeout")})
	assert.ErrorIs(t, err, ErrDNSLookupFailed)
	assert.Contains(t, err.Error(), "timeout")

	_, err = ResolveEndpointsWithResolver("example.com", &mockDNSResolver{})
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

func TestDefaultDNSResolver_ImplementsDNSResolver(t *testing.T) {
	require.NotNil(t, DefaultDNSResolver)
	var _ DNSResolver = (*DNSSECResolver)(nil)
}
