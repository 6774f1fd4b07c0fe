package chill

import "github.com/gogo/protobuf/proto"

// Model is implemented by every object persisted by an extension. It is
// serialized with the protobuf codec and must be able to tell if its state
// is valid before being written.
type Model interface {
	proto.Message
	Validate() error
}

