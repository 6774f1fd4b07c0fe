package currency

import (
	chill "github.com/chill-token/chill"
	"github.com/gogo/protobuf/proto"
)

// Mint is a class of tokens together with its supply counter.
type Mint struct {
	// Authority is the only address allowed to issue new supply.
	Authority chill.Address `protobuf:"bytes,1,opt,name=authority,proto3,casttype=github.com/chill-token/chill.Address" json:"authority,omitempty"`
	// Supply is the total amount of tokens ever issued, in the smallest
	// unit.
	Supply   uint64 `protobuf:"varint,2,opt,name=supply,proto3" json:"supply,omitempty"`
	Decimals uint32 `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// FixedSupply is set for mints that can be issued only once.
	FixedSupply bool `protobuf:"varint,4,opt,name=fixed_supply,json=fixedSupply,proto3" json:"fixed_supply,omitempty"`
}

func (m *Mint) Reset()         { *m = Mint{} }
func (m *Mint) String() string { return proto.CompactTextString(m) }
func (*Mint) ProtoMessage()    {}
