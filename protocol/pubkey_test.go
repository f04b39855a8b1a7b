package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terracoremate/hivekit/codec"
	"github.com/terracoremate/hivekit/keys"
)

const testPubKey PublicKey = "STM6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"

func TestPublicKey_Null(t *testing.T) {
	zero := make([]byte, 33)
	for _, k := range []PublicKey{NullPublicKey, "", "TST1111111111111111111111111111111114T1Anm"} {
		assert.True(t, k.IsNull(), "%q", k)
		b, err := codec.Marshal(k)
		require.NoError(t, err)
		assert.Equal(t, zero, b)
	}
	assert.False(t, testPubKey.IsNull())
}

func TestPublicKey_MarshalHive(t *testing.T) {
	want, err := keys.DecodePublicKey(string(testPubKey), keys.AddressPrefix)
	require.NoError(t, err)

	b, err := codec.Marshal(testPubKey)
	require.NoError(t, err)
	assert.Equal(t, want, b)
	assert.Len(t, b, 33)
	assert.NoError(t, testPubKey.Validate())
}

func TestPublicKey_Invalid(t *testing.T) {
	bad := testPubKey[:len(testPubKey)-1] + "B"
	_, err := codec.Marshal(bad)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPublicKey)
}

func TestPublicKey_MapKey(t *testing.T) {
	m := map[PublicKey]int{testPubKey: 1}
	assert.Equal(t, 1, m[PublicKey(string(testPubKey))])
}
