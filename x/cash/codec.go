package cash

import (
	chill "github.com/chill-token/chill"
	"github.com/gogo/protobuf/proto"
)

// Account is the balance of an owner for a single mint.
type Account struct {
	Owner   chill.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/chill-token/chill.Address" json:"owner,omitempty"`
	Mint    chill.Address `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/chill-token/chill.Address" json:"mint,omitempty"`
	Balance uint64        `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}
