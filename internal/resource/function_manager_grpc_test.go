package resource_test

import (
	"context"
	"testing"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/jmuk/gcloud-go/internal/resource"
	"github.com/jmuk/gcloud-go/internal/testutil"
)

type fakeFunctionsServer struct {
	functionspb.UnimplementedCloudFunctionsServiceServer

	createdFunction *functionspb.CloudFunction
}

func (s *fakeFunctionsServer) CreateFunction(_ context.Context, in *functionspb.CreateFunctionRequest) (*longrunningpb.Operation, error) {
	s.createdFunction = in.GetFunction()
	return &longrunningpb.Operation{Name: "operations/create-op"}, nil
}

type fakeOperationsServer struct {
	longrunningpb.UnimplementedOperationsServer

	response *longrunningpb.Operation
}

func (s *fakeOperationsServer) GetOperation(context.Context, *longrunningpb.GetOperationRequest) (*longrunningpb.Operation, error) {
	return s.response, nil
}

func TestFunctionManager_Create_overGRPC(t *testing.T) {
	deployed := &functionspb.CloudFunction{
		Name:    "projects/test-project/locations/us-central1/functions/test-function",
		Runtime: "go121",
	}
	functionsServer := &fakeFunctionsServer{}
	operationsServer := &fakeOperationsServer{
		response: &longrunningpb.Operation{
			Name: "operations/create-op",
			Done: true,
			Result: &longrunningpb.Operation_Response{
				Response: testutil.AnyResponse(t, deployed),
			},
		},
	}
	manager := resource.NewFunctionManager(
		testutil.MockFunctionsClient(t, functionsServer),
		testutil.MockOperationsClient(t, operationsServer),
	)

	handle, err := manager.Create(context.Background(), resource.CreateFunctionArgs{
		ProjectID:        "test-project",
		Location:         "us-central1",
		FunctionName:     "test-function",
		Runtime:          "go121",
		EntryPoint:       "HelloWorld",
		SourceArchiveURL: "gs://test-bucket/source.zip",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	result, err := handle.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if diff := cmp.Diff(deployed, result.Response, protocmp.Transform()); diff != "" {
		t.Errorf("decoded function mismatch (-want +got):\n%s", diff)
	}
	if got := functionsServer.createdFunction.GetRuntime(); got != "go121" {
		t.Errorf("created runtime = %q, want %q", got, "go121")
	}
}
