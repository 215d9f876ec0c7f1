package functions

import (
	"context"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"
)

// Client is an interface of the generated CloudFunctionsService gRPC stub,
// narrowed to the methods the manager uses. the raw stub is used instead of
// the apiv1 wrapper because the wrapper hides the operation name behind typed
// operation structs.
//
//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	CreateFunction(ctx context.Context, in *functionspb.CreateFunctionRequest, opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	UpdateFunction(ctx context.Context, in *functionspb.UpdateFunctionRequest, opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	DeleteFunction(ctx context.Context, in *functionspb.DeleteFunctionRequest, opts ...grpc.CallOption) (*longrunningpb.Operation, error)
	GetFunction(ctx context.Context, in *functionspb.GetFunctionRequest, opts ...grpc.CallOption) (*functionspb.CloudFunction, error)
	ListFunctions(ctx context.Context, in *functionspb.ListFunctionsRequest, opts ...grpc.CallOption) (*functionspb.ListFunctionsResponse, error)
	CallFunction(ctx context.Context, in *functionspb.CallFunctionRequest, opts ...grpc.CallOption) (*functionspb.CallFunctionResponse, error)
}

var _ Client = (functionspb.CloudFunctionsServiceClient)(nil)
