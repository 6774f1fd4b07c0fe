package registry

import (
	chill "github.com/chill-token/chill"
	"github.com/gogo/protobuf/proto"
)

// Registry is the revenue share configuration of a mint.
type Registry struct {
	// Mint is the address of the mint that this registry distributes.
	Mint chill.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/chill-token/chill.Address" json:"mint,omitempty"`
	// Recipients is an ordered list of share holders. Order matters,
	// because the last recipient receives all rounding leftovers.
	Recipients []*RecipientShare `protobuf:"bytes,2,rep,name=recipients,proto3" json:"recipients,omitempty"`
	Weights    *CategoryWeights  `protobuf:"bytes,3,opt,name=weights,proto3" json:"weights,omitempty"`
	// TransactionFee is the part of every transfer, in basis points, that
	// is redirected to the recipients.
	TransactionFee uint32 `protobuf:"varint,4,opt,name=transaction_fee,json=transactionFee,proto3" json:"transaction_fee,omitempty"`
}

func (m *Registry) Reset()         { *m = Registry{} }
func (m *Registry) String() string { return proto.CompactTextString(m) }
func (*Registry) ProtoMessage()    {}

// RecipientShare declares what percentage of minted and transferred tokens
// an address receives.
type RecipientShare struct {
	Address          chill.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/chill-token/chill.Address" json:"address,omitempty"`
	MintShare        uint32        `protobuf:"varint,2,opt,name=mint_share,json=mintShare,proto3" json:"mint_share,omitempty"`
	TransactionShare uint32        `protobuf:"varint,3,opt,name=transaction_share,json=transactionShare,proto3" json:"transaction_share,omitempty"`
}

func (m *RecipientShare) Reset()         { *m = RecipientShare{} }
func (m *RecipientShare) String() string { return proto.CompactTextString(m) }
func (*RecipientShare) ProtoMessage()    {}

// CategoryWeights is metadata used to categorize non fungible tokens. It
// does not influence any arithmetic.
type CategoryWeights struct {
	Character float64 `protobuf:"fixed64,1,opt,name=character,proto3" json:"character,omitempty"`
	Pet       float64 `protobuf:"fixed64,2,opt,name=pet,proto3" json:"pet,omitempty"`
	Emote     float64 `protobuf:"fixed64,3,opt,name=emote,proto3" json:"emote,omitempty"`
	Tileset   float64 `protobuf:"fixed64,4,opt,name=tileset,proto3" json:"tileset,omitempty"`
	Item      float64 `protobuf:"fixed64,5,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *CategoryWeights) Reset()         { *m = CategoryWeights{} }
func (m *CategoryWeights) String() string { return proto.CompactTextString(m) }
func (*CategoryWeights) ProtoMessage()    {}
