package network

import (
	"errors"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDNSServer serves handler on a loopback UDP port and returns its address.
func startDNSServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	server := &dns.Server{PacketConn: pc, Handler: handler, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = server.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = server.Shutdown() })
	return pc.LocalAddr().String()
}

func srvAnswer(authenticated bool) dns.HandlerFunc {
	return func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)
		m.AuthenticatedData = authenticated
		m.Answer = append(m.Answer, &dns.SRV{
			Hdr:      dns.RR_Header{Name: req.Question[0].Name, Rrtype: dns.TypeSRV, Class: dns.ClassINET, Ttl: 60},
			Priority: 10,
			Weight:   5,
			Port:     443,
			Target:   "api.example.com.",
		})
		_ = w.WriteMsg(m)
	}
}

func TestNewDNSSECResolver_Defaults(t *testing.T) {
	r := NewDNSSECResolver("")
	assert.Equal(t, "8.8.8.8:53", r.Upstream)
}

func TestNewDNSSECResolver_Custom(t *testing.T) {
	r := NewDNSSECResolver("1.1.1.1:53")
	assert.Equal(t, "1.1.1.1:53", r.Upstream)
}

func TestDNSSECResolver_LookupSRV(t *testing.T) {
	queries := make(chan *dns.Msg, 4)
	addr := startDNSServer(t, func(w dns.ResponseWriter, req *dns.Msg) {
		queries <- req.Copy()
		srvAnswer(true)(w, req)
	})

	r := NewDNSSECResolver(addr)
	_, srvs, err := r.LookupSRV(SRVHiveAPI, "tcp", "example.com")
	require.NoError(t, err)
	q := <-queries
	assert.Equal(t, "_hive-api._tcp.example.com.", q.Question[0].Name)
	require.NotNil(t, q.IsEdns0())
	assert.True(t, q.IsEdns0().Do())
	require.Len(t, srvs, 1)
	assert.Equal(t, "api.example.com", srvs[0].Target)
	assert.Equal(t, uint16(443), srvs[0].Port)

	endpoints, err := ResolveEndpointsWithResolver("example.com", r)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://api.example.com"}, endpoints)
}

func TestDNSSECResolver_RequiresADFlag(t *testing.T) {
	addr := startDNSServer(t, srvAnswer(false))

	_, _, err := NewDNSSECResolver(addr).LookupSRV(SRVHiveAPI, "tcp", "example.com")
	assert.ErrorIs(t, err, ErrDNSSECValidationFailed)
}

func TestDNSSECResolver_ServerFailure(t *testing.T) {
	addr := startDNSServer(t, func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(req, dns.RcodeServerFailure)
		_ = w.WriteMsg(m)
	})

	_, _, err := NewDNSSECResolver(addr).LookupSRV(SRVHiveAPI, "tcp", "example.com")
	assert.ErrorIs(t, err, ErrDNSLookupFailed)
	assert.Contains(t, err.Error(), "SERVFAIL")
}

func TestDNSSECResolver_NoRecords(t *testing.T) {
	addr := startDNSServer(t, func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(req, dns.RcodeNameError)
		m.AuthenticatedData = true
		_ = w.WriteMsg(m)
	})

	_, _, err := NewDNSSECResolver(addr).LookupSRV(SRVHiveAPI, "tcp", "example.com")
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

// --- Integration tests (skip in short mode) ---

func TestDNSSECResolver_LookupSRV_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := NewDNSSECResolver("")
	_, srvs, err := r.LookupSRV("imaps", "tcp", "gmail.com")
	if err != nil {
		if errors.Is(err, ErrDNSSECValidationFailed) {
			t.Skipf("skipping: upstream resolver did not set AD flag: %v", err)
		}
		t.Skipf("skipping: SRV lookup failed (may be network-dependent): %v", err)
	}
	require.NotEmpty(t, srvs)
}
