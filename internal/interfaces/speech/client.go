package speech

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/grpc"
)

// Client is an interface of the generated Speech v2 gRPC stub, narrowed to
// the methods the manager uses.
// define the interface to create a mock for testing.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	Recognize(ctx context.Context, in *speechpb.RecognizeRequest, opts ...grpc.CallOption) (*speechpb.RecognizeResponse, error)
	BatchRecognize(ctx context.Context, in *speechpb.BatchRecognizeRequest, opts ...grpc.CallOption) (*longrunningpb.Operation, error)
}

var _ Client = (speechpb.SpeechClient)(nil)
