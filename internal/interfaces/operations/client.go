package operations

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Client is an interface of the generated google.longrunning.Operations gRPC
// stub, narrowed to the methods the operation handle uses.
// define the interface to create a mock for testing.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	GetOperation(ctx context.Context, in *longrunningpb.GetOperationRequest, opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	CancelOperation(ctx context.Context, in *longrunningpb.CancelOperationRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteOperation(ctx context.Context, in *longrunningpb.DeleteOperationRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

var _ Client = (longrunningpb.OperationsClient)(nil)
