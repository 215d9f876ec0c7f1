package resource

import (
	"context"
	"fmt"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/jmuk/gcloud-go/internal/interfaces/functions"
	"github.com/jmuk/gcloud-go/internal/interfaces/operations"
	"github.com/jmuk/gcloud-go/internal/operation"
)

type FunctionManager interface {
	Create(ctx context.Context, args CreateFunctionArgs) (*operation.Operation, error)
	Update(ctx context.Context, args UpdateFunctionArgs) (*operation.Operation, error)
	Delete(ctx context.Context, args DeleteFunctionArgs) (*operation.Operation, error)
	Get(ctx context.Context, args GetFunctionArgs) (*Function, error)
	List(ctx context.Context, args ListFunctionArgs) ([]*Function, error)
	Call(ctx context.Context, args CallFunctionArgs) (*CallFunctionResult, error)
}

type CreateFunctionArgs struct {
	ProjectID    string
	Location     string
	FunctionName string
	Runtime      string
	EntryPoint   string
	// SourceArchiveURL points at an already-uploaded source archive.
	// archiving and uploading are not this client's concern.
	SourceArchiveURL string
	// TriggerTopic is a Pub/Sub topic name. empty means an HTTPS trigger.
	TriggerTopic string
}

type UpdateFunctionArgs struct {
	ProjectID        string
	Location         string
	FunctionName     string
	Runtime          string
	EntryPoint       string
	SourceArchiveURL string
}

type DeleteFunctionArgs struct {
	ProjectID    string
	Location     string
	FunctionName string
}

type GetFunctionArgs struct {
	ProjectID    string
	Location     string
	FunctionName string
}

type ListFunctionArgs struct {
	ProjectID string
	Location  string
}

type CallFunctionArgs struct {
	ProjectID    string
	Location     string
	FunctionName string
	Data         string
}

type CallFunctionResult struct {
	ExecutionID string
	Result      string
	Error       string
}

// listFunctionsPageSize is the page size requested from ListFunctions.
const listFunctionsPageSize = 100

type functionManager struct {
	client    functions.Client
	opsClient operations.Client
}

var _ FunctionManager = (*functionManager)(nil)

func NewFunctionManager(client functions.Client, opsClient operations.Client) *functionManager {
	return &functionManager{
		client:    client,
		opsClient: opsClient,
	}
}

// Create starts a function deployment and returns a handle for the resulting
// long-running operation. The handle stays inert until somebody subscribes to
// its completion.
func (m *functionManager) Create(ctx context.Context, args CreateFunctionArgs) (*operation.Operation, error) {
	fn := &functionspb.CloudFunction{
		Name:       FunctionFullname(args.ProjectID, args.Location, args.FunctionName),
		Runtime:    args.Runtime,
		EntryPoint: args.EntryPoint,
	}
	if args.SourceArchiveURL != "" {
		fn.SourceCode = &functionspb.CloudFunction_SourceArchiveUrl{
			SourceArchiveUrl: args.SourceArchiveURL,
		}
	}
	if args.TriggerTopic != "" {
		fn.Trigger = &functionspb.CloudFunction_EventTrigger{
			EventTrigger: &functionspb.EventTrigger{
				EventType: "google.pubsub.topic.publish",
				Resource:  fmt.Sprintf("projects/%s/topics/%s", args.ProjectID, args.TriggerTopic),
			},
		}
	} else {
		fn.Trigger = &functionspb.CloudFunction_HttpsTrigger{
			HttpsTrigger: &functionspb.HttpsTrigger{},
		}
	}

	op, err := m.client.CreateFunction(ctx, &functionspb.CreateFunctionRequest{
		Location: LocationName(args.ProjectID, args.Location),
		Function: fn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create function: %w", err)
	}

	handle, err := operation.New(ctx, m.opsClient, op.GetName(), operation.WithDecoder(decodeCloudFunction))
	if err != nil {
		return nil, fmt.Errorf("failed to create operation handle: %w", err)
	}

	return handle, nil
}

func (m *functionManager) Update(ctx context.Context, args UpdateFunctionArgs) (*operation.Operation, error) {
	fn := &functionspb.CloudFunction{
		Name: FunctionFullname(args.ProjectID, args.Location, args.FunctionName),
	}
	paths := make([]string, 0, 3)
	if args.Runtime != "" {
		fn.Runtime = args.Runtime
		paths = append(paths, "runtime")
	}
	if args.EntryPoint != "" {
		fn.EntryPoint = args.EntryPoint
		paths = append(paths, "entry_point")
	}
	if args.SourceArchiveURL != "" {
		fn.SourceCode = &functionspb.CloudFunction_SourceArchiveUrl{
			SourceArchiveUrl: args.SourceArchiveURL,
		}
		paths = append(paths, "source_archive_url")
	}

	op, err := m.client.UpdateFunction(ctx, &functionspb.UpdateFunctionRequest{
		Function:   fn,
		UpdateMask: &fieldmaskpb.FieldMask{Paths: paths},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update function: %w", err)
	}

	handle, err := operation.New(ctx, m.opsClient, op.GetName(), operation.WithDecoder(decodeCloudFunction))
	if err != nil {
		return nil, fmt.Errorf("failed to create operation handle: %w", err)
	}

	return handle, nil
}

// Delete starts a function deletion. The returned handle carries no decoder
// since the terminal response is empty.
func (m *functionManager) Delete(ctx context.Context, args DeleteFunctionArgs) (*operation.Operation, error) {
	op, err := m.client.DeleteFunction(ctx, &functionspb.DeleteFunctionRequest{
		Name: FunctionFullname(args.ProjectID, args.Location, args.FunctionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete function: %w", err)
	}

	handle, err := operation.New(ctx, m.opsClient, op.GetName())
	if err != nil {
		return nil, fmt.Errorf("failed to create operation handle: %w", err)
	}

	return handle, nil
}

func (m *functionManager) Get(ctx context.Context, args GetFunctionArgs) (*Function, error) {
	resp, err := m.client.GetFunction(ctx, &functionspb.GetFunctionRequest{
		Name: FunctionFullname(args.ProjectID, args.Location, args.FunctionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get function: %w", err)
	}

	return RestoreFunctionFromProto(resp), nil
}

func (m *functionManager) List(ctx context.Context, args ListFunctionArgs) ([]*Function, error) {
	result := make([]*Function, 0)
	pageToken := ""
	for {
		resp, err := m.client.ListFunctions(ctx, &functionspb.ListFunctionsRequest{
			Parent:    LocationName(args.ProjectID, args.Location),
			PageSize:  listFunctionsPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list functions: %w", err)
		}

		for _, fn := range resp.GetFunctions() {
			result = append(result, RestoreFunctionFromProto(fn))
		}

		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			break
		}
	}

	return result, nil
}

func (m *functionManager) Call(ctx context.Context, args CallFunctionArgs) (*CallFunctionResult, error) {
	resp, err := m.client.CallFunction(ctx, &functionspb.CallFunctionRequest{
		Name: FunctionFullname(args.ProjectID, args.Location, args.FunctionName),
		Data: args.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call function: %w", err)
	}

	return &CallFunctionResult{
		ExecutionID: resp.GetExecutionId(),
		Result:      resp.GetResult(),
		Error:       resp.GetError(),
	}, nil
}

func decodeCloudFunction(raw *anypb.Any) (proto.Message, error) {
	fn := &functionspb.CloudFunction{}
	if err := raw.UnmarshalTo(fn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cloud function: %w", err)
	}
	return fn, nil
}
