package chill

import (
	"encoding/json"
	"testing"

	"github.com/chill-token/chill/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr := NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Address()
	b32, err := addr.Bech32()
	require.NoError(t, err)

	cases := map[string]struct {
		raw     string
		want    Address
		wantErr *errors.Error
	}{
		"plain hex": {
			raw:  addr.String(),
			want: addr,
		},
		"lower case hex with prefix": {
			raw:  "hex:" + "0102030405060708090a0b0c0d0e0f1011121314",
			want: Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		},
		"surrounding whitespace is ignored": {
			raw:  "  " + addr.String() + "\n",
			want: addr,
		},
		"bech32": {
			raw:  "bech32:" + b32,
			want: addr,
		},
		"condition": {
			raw:  "cond:sigs/ed25519/010203",
			want: addr,
		},
		"too short": {
			raw:     "0102",
			wantErr: errors.ErrInput,
		},
		"not hex": {
			raw:     "zz",
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			raw:     "base58:abc",
			wantErr: errors.ErrType,
		},
		"broken condition": {
			raw:     "cond:sigs",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewAddress([]byte("some data"))
	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)
}

func TestConditionParse(t *testing.T) {
	c := NewCondition("currency", "mint", []byte{0, 0, 1})
	ext, typ, data, err := c.Parse()
	require.NoError(t, err)
	assert.Equal(t, "currency", ext)
	assert.Equal(t, "mint", typ)
	assert.Equal(t, []byte{0, 0, 1}, data)
	assert.Equal(t, "currency/mint/000001", c.String())

	_, _, _, err = Condition("no").Parse()
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAddressClone(t *testing.T) {
	addr := NewAddress([]byte("x"))
	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
	assert.Nil(t, Address(nil).Clone())
}
