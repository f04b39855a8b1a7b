package protocol

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terracoremate/hivekit/codec"
)

func TestParseAsset(t *testing.T) {
	tests := []struct {
		in     string
		symbol Symbol
		str    string
	}{
		{"1.000 HIVE", HIVE, "1.000 HIVE"},
		{"12.345 HBD", HBD, "12.345 HBD"},
		{"0.001 TESTS", TESTS, "0.001 TESTS"},
		{"5 TBD", TBD, "5.000 TBD"},
		{"123.456789 VESTS", VESTS, "123.456789 VESTS"},
		{"  7.5\tHIVE ", HIVE, "7.500 HIVE"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseAsset(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, a.Symbol())
			assert.Equal(t, tt.str, a.String())
		})
	}
}

func TestParseAsset_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1.000",
		"HIVE",
		"1.000 HIVE extra",
		"abc HIVE",
		"1.000 BTC",
		"1.000 hive",
	} {
		_, err := ParseAsset(in)
		assert.ErrorIs(t, err, ErrInvalidAsset, "input %q", in)
	}
}

func TestAsset_RoundTrip(t *testing.T) {
	amounts := []string{"0", "0.001", "1", "12.345", "999999.999"}
	for _, sym := range []Symbol{HIVE, HBD, TESTS, TBD, VESTS} {
		for _, amt := range amounts {
			a, err := NewAsset(decimal.RequireFromString(amt), sym)
			require.NoError(t, err)
			back, err := ParseAsset(a.String())
			require.NoError(t, err)
			assert.True(t, a.Equal(back), "%s round trip gave %s", a, back)
		}
	}
}

func TestSymbolPrecision(t *testing.T) {
	assert.EqualValues(t, 3, HIVE.Precision())
	assert.EqualValues(t, 3, HBD.Precision())
	assert.EqualValues(t, 3, TESTS.Precision())
	assert.EqualValues(t, 3, TBD.Precision())
	assert.EqualValues(t, 6, VESTS.Precision())
}

func TestAsset_MarshalHive(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"12.345 HIVE", []byte{0x39, 0x30, 0, 0, 0, 0, 0, 0, 3, 'S', 'T', 'E', 'E', 'M', 0, 0}},
		{"1.000 HBD", []byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0, 3, 'S', 'B', 'D', 0, 0, 0, 0}},
		{"0.001 TESTS", []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 3, 'T', 'E', 'S', 'T', 'S', 0, 0}},
		{"1.000000 VESTS", []byte{0x40, 0x42, 0x0f, 0, 0, 0, 0, 0, 6, 'V', 'E', 'S', 'T', 'S', 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := codec.Marshal(MustAsset(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestAsset_UnitsRoundHalfEven(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"12.345 HIVE", 12345},
		{"0.0005 HIVE", 0},
		{"0.0015 HIVE", 2},
		{"0.0025 HIVE", 2},
		{"0.0000005 VESTS", 0},
	}
	for _, tt := range tests {
		u, err := MustAsset(tt.in).Units()
		require.NoError(t, err)
		assert.Equal(t, tt.want, u, tt.in)
	}
}

// The JSON text a node re-parses must encode to the bytes that were signed.
func TestAsset_TextMatchesWire(t *testing.T) {
	tests := []struct {
		in  string
		str string
	}{
		{"0.0025 HBD", "0.002 HBD"},
		{"0.0015 HBD", "0.002 HBD"},
		{"2.0000005 VESTS", "2.000000 VESTS"},
		{"2.0000015 VESTS", "2.000002 VESTS"},
		{"1.2346 HIVE", "1.235 HIVE"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a := MustAsset(tt.in)
			assert.Equal(t, tt.str, a.String())

			want, err := codec.Marshal(a)
			require.NoError(t, err)
			got, err := codec.Marshal(MustAsset(a.String()))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestAsset_MarshalHive_Invalid(t *testing.T) {
	_, err := codec.Marshal(MustAsset("-1.000 HIVE"))
	assert.ErrorIs(t, err, ErrInvalidAsset)

	_, err = codec.Marshal(Asset{})
	assert.ErrorIs(t, err, ErrInvalidAsset)
}

func TestAsset_JSON(t *testing.T) {
	b, err := json.Marshal(MustAsset("3.1 HBD"))
	require.NoError(t, err)
	assert.JSONEq(t, `"3.100 HBD"`, string(b))

	var a Asset
	require.NoError(t, json.Unmarshal([]byte(`"0.500 HIVE"`), &a))
	assert.True(t, a.Equal(MustAsset("0.5 HIVE")))

	assert.ErrorIs(t, json.Unmarshal([]byte(`"0.5 DOGE"`), &a), ErrInvalidAsset)
}
