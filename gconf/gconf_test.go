package gconf

import (
	"testing"

	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/store"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConf struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Limit uint32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *testConf) Reset()         { *m = testConf{} }
func (m *testConf) String() string { return proto.CompactTextString(m) }
func (*testConf) ProtoMessage()    {}

func (m *testConf) Validate() error {
	if m.Limit == 0 {
		return errors.Wrap(errors.ErrInput, "limit")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConf
		WantSaveErr *errors.Error
		WantLoadErr *errors.Error
	}{
		"valid configuration": {
			Conf: &testConf{Name: "foobar", Limit: 3},
		},
		"invalid configuration cannot be saved": {
			Conf:        &testConf{Name: "foobar"},
			WantSaveErr: errors.ErrInput,
			WantLoadErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "test", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			var got testConf
			if err := Load(db, "test", &got); !tc.WantLoadErr.Is(err) {
				t.Fatalf("unexpected load error: %s", err)
			}
			if tc.WantLoadErr == nil {
				assert.Equal(t, tc.Conf, &got)
			}
		})
	}
}

func TestHas(t *testing.T) {
	db := store.MemStore()

	ok, err := Has(db, "test")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Save(db, "test", &testConf{Limit: 1}))
	ok, err = Has(db, "test")
	require.NoError(t, err)
	assert.True(t, ok)

	// Configurations of different packages are independent.
	ok, err = Has(db, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}
