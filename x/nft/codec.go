package nft

import (
	chill "github.com/chill-token/chill"
	"github.com/gogo/protobuf/proto"
)

// Asset describes the token of a fixed supply mint.
type Asset struct {
	Mint     chill.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/chill-token/chill.Address" json:"mint,omitempty"`
	Category string        `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Name     string        `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	URI      string        `protobuf:"bytes,4,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (m *Asset) Reset()         { *m = Asset{} }
func (m *Asset) String() string { return proto.CompactTextString(m) }
func (*Asset) ProtoMessage()    {}
