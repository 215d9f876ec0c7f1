package operation

import (
	"errors"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Decoder converts a terminal operation response payload into a typed
// message. It is injected per call site because creation, update and delete
// operations need different post-processing.
type Decoder func(resp *anypb.Any) (proto.Message, error)

type options struct {
	decoder Decoder
}

type Option func(*options) error

// WithDecoder sets the decoder applied to the response payload of the
// terminal complete event.
func WithDecoder(decoder Decoder) Option {
	return func(o *options) error {
		if decoder == nil {
			return errors.New("decoder must be specified")
		}
		o.decoder = decoder
		return nil
	}
}
