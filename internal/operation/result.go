package operation

import (
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/proto"
)

// Result carries the terminal payload of a completed operation.
type Result struct {
	// Operation is the full final operation payload as returned by the
	// server.
	Operation *longrunningpb.Operation

	// Response is the decoded response payload. nil when the handle has no
	// decoder or the payload is absent.
	Response proto.Message
}
