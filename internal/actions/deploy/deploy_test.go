package deploy

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/grpc"

	myfunctions "github.com/jmuk/gcloud-go/internal/interfaces/functions"
	myoperations "github.com/jmuk/gcloud-go/internal/interfaces/operations"
	"github.com/jmuk/gcloud-go/internal/resource"
	"github.com/jmuk/gcloud-go/internal/testutil"
)

func testOptions() *options {
	return &options{
		runtime:          "go121",
		entryPoint:       "HelloWorld",
		sourceArchiveURL: "gs://test-bucket/source.zip",
		timeout:          time.Minute,
	}
}

func Test_run(t *testing.T) {
	deployed := &functionspb.CloudFunction{
		Name: "projects/test-project/locations/us-central1/functions/test-function",
		Trigger: &functionspb.CloudFunction_HttpsTrigger{
			HttpsTrigger: &functionspb.HttpsTrigger{
				Url: "https://us-central1-test-project.cloudfunctions.net/test-function",
			},
		},
	}
	client := &myfunctions.ClientMock{
		CreateFunctionFunc: func(
			_ context.Context,
			in *functionspb.CreateFunctionRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			if got := in.GetFunction().GetRuntime(); got != "go121" {
				t.Errorf("runtime = %q, want %q", got, "go121")
			}
			return &longrunningpb.Operation{Name: "operations/deploy-op"}, nil
		},
	}
	opsClient := &myoperations.ClientMock{
		GetOperationFunc: func(
			_ context.Context,
			in *longrunningpb.GetOperationRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			if in.GetName() != "operations/deploy-op" {
				t.Errorf("operation name = %q, want %q", in.GetName(), "operations/deploy-op")
			}
			return &longrunningpb.Operation{
				Name: "operations/deploy-op",
				Done: true,
				Result: &longrunningpb.Operation_Response{
					Response: testutil.AnyResponse(t, deployed),
				},
			}, nil
		},
	}
	manager := resource.NewFunctionManager(client, opsClient)

	args := Args{
		ProjectID:    "test-project",
		Location:     "us-central1",
		FunctionName: "test-function",
	}
	if err := run(context.Background(), manager, args, testOptions()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := len(client.CreateFunctionCalls()); got != 1 {
		t.Errorf("create calls = %d, want 1", got)
	}
}

func Test_run_createError(t *testing.T) {
	wantErr := errors.New("permission denied")
	client := &myfunctions.ClientMock{
		CreateFunctionFunc: func(
			_ context.Context,
			_ *functionspb.CreateFunctionRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return nil, wantErr
		},
	}
	manager := resource.NewFunctionManager(client, &myoperations.ClientMock{})

	err := run(context.Background(), manager, Args{
		ProjectID:    "test-project",
		Location:     "us-central1",
		FunctionName: "test-function",
	}, testOptions())
	if !errors.Is(err, wantErr) {
		t.Errorf("run() error = %v, want %v", err, wantErr)
	}
}

func Test_run_operationError(t *testing.T) {
	client := &myfunctions.ClientMock{
		CreateFunctionFunc: func(
			_ context.Context,
			_ *functionspb.CreateFunctionRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return &longrunningpb.Operation{Name: "operations/deploy-op"}, nil
		},
	}
	wantErr := errors.New("unavailable")
	opsClient := &myoperations.ClientMock{
		GetOperationFunc: func(
			_ context.Context,
			_ *longrunningpb.GetOperationRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return nil, wantErr
		},
	}
	manager := resource.NewFunctionManager(client, opsClient)

	err := run(context.Background(), manager, Args{
		ProjectID:    "test-project",
		Location:     "us-central1",
		FunctionName: "test-function",
	}, testOptions())
	if !errors.Is(err, wantErr) {
		t.Errorf("run() error = %v, want %v", err, wantErr)
	}
}
