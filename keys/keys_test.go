package keys

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known Graphene test pair.
const (
	testWIF    = "5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3"
	testRawHex = "d2653ff7cbb2d8ff129ac27ef5781ce68b2558c41a74af1f2ddca635cbeef07d"
	testPubKey = "STM6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodePrivateKey(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"wif", testWIF, mustHex(t, testRawHex)},
		{"hex", testRawHex, mustHex(t, testRawHex)},
		{"upper hex", strings.ToUpper(testRawHex), mustHex(t, testRawHex)},
		{"wif of one", "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf", one},
		{"compressed wif drops flag", "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn", one},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePrivateKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePrivateKey_Unsupported(t *testing.T) {
	for _, in := range []string{"", "xyz", "STM6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV", "9abcxyz"} {
		_, err := DecodePrivateKey(in)
		assert.ErrorIs(t, err, ErrUnsupportedKeyFormat, "input %q", in)
	}
}

func TestDecodePrivateKey_ChecksumMismatch(t *testing.T) {
	// Last character altered.
	bad := testWIF[:len(testWIF)-1] + "4"
	_, err := DecodePrivateKey(bad)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestEncodePrivateKey_RoundTrip(t *testing.T) {
	raw := mustHex(t, testRawHex)
	assert.Equal(t, testWIF, EncodePrivateKey(raw))

	for i := 0; i < 16; i++ {
		k := make([]byte, 32)
		for j := range k {
			k[j] = byte(i*31 + j*7)
		}
		got, err := DecodePrivateKey(EncodePrivateKey(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestValidatePrivateKey(t *testing.T) {
	assert.True(t, ValidatePrivateKey(testWIF))
	assert.True(t, ValidatePrivateKey(testRawHex))
	assert.False(t, ValidatePrivateKey("abcd"))
	assert.False(t, ValidatePrivateKey("not a key"))
}

func TestBase58Check(t *testing.T) {
	s := Base58CheckEncode(0x00, []byte("hive"))
	got, err := Base58CheckDecode(s)
	require.NoError(t, err)
	assert.Equal(t, []byte("hive"), got)

	_, err = Base58CheckDecode("0OIl")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = Base58CheckDecode("11")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestPublicKeyFromPrivate(t *testing.T) {
	pub, err := PublicKeyFromPrivate(mustHex(t, testRawHex), AddressPrefix)
	require.NoError(t, err)
	assert.Equal(t, testPubKey, pub)

	_, err = PublicKeyFromPrivate([]byte{1, 2, 3}, AddressPrefix)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDecodePublicKey(t *testing.T) {
	b, err := DecodePublicKey(testPubKey, AddressPrefix)
	require.NoError(t, err)
	assert.Len(t, b, PublicKeyLen)
	assert.Equal(t, testPubKey, EncodePublicKey(b, AddressPrefix))

	pub, err := ParsePublicKey(testPubKey, AddressPrefix)
	require.NoError(t, err)
	assert.Equal(t, b, pub.Compressed())
}

func TestDecodePublicKey_Errors(t *testing.T) {
	_, err := DecodePublicKey("TST"+testPubKey[3:], AddressPrefix)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	bad := testPubKey[:len(testPubKey)-1] + "B"
	_, err = DecodePublicKey(bad, AddressPrefix)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	_, err = DecodePublicKey("STM0", AddressPrefix)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDeriveSubKey(t *testing.T) {
	got := DeriveSubKey("alice", "correct  horse battery", "posting")
	assert.Equal(t, "5J4VCP766ZGwuqURksFLEd5xZAqLCZJQ5XR1ty3AJCPM2EM3SU3", got)

	// Whitespace runs collapse, so these are the same seed.
	assert.Equal(t, got, DeriveSubKey("alice", "correct \t horse battery", "posting"))
	assert.NotEqual(t, got, DeriveSubKey("alice", "correct  horse battery", "active"))

	raw, err := DecodePrivateKey(got)
	require.NoError(t, err)
	pub, err := PublicKeyFromPrivate(raw, AddressPrefix)
	require.NoError(t, err)
	assert.Equal(t, "STM5mx4oA6s682VzTq3j1uTrPKbCUMhGrURarJyPWMCffESphKdsQ", pub)
}
