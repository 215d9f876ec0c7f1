package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"

	"github.com/jmuk/gcloud-go/internal/resource"
)

const (
	functionsEndpoint  = "cloudfunctions.googleapis.com:443"
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	// progressInterval is how often the deployment progress is logged while
	// the operation is still running.
	progressInterval = 5 * time.Second
)

type Args struct {
	ProjectID    string
	Location     string
	FunctionName string
}

// Run deploys a function and blocks until the deployment operation reaches a
// terminal state.
func Run(ctx context.Context, args Args, opts ...Option) error {
	options := &options{
		runtime: "go121",
		timeout: 10 * time.Minute,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if options.sourceArchiveURL == "" {
		return errors.New("source archive URL must be specified")
	}

	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(functionsEndpoint),
		option.WithScopes(cloudPlatformScope),
	)
	if err != nil {
		return fmt.Errorf("failed to dial functions service: %w", err)
	}
	defer conn.Close()

	manager := resource.NewFunctionManager(
		functionspb.NewCloudFunctionsServiceClient(conn),
		longrunningpb.NewOperationsClient(conn),
	)

	return run(ctx, manager, args, options)
}

func run(ctx context.Context, manager resource.FunctionManager, args Args, options *options) error {
	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	handle, err := manager.Create(ctx, resource.CreateFunctionArgs{
		ProjectID:        args.ProjectID,
		Location:         args.Location,
		FunctionName:     args.FunctionName,
		Runtime:          options.runtime,
		EntryPoint:       options.entryPoint,
		SourceArchiveURL: options.sourceArchiveURL,
		TriggerTopic:     options.triggerTopic,
	})
	if err != nil {
		return fmt.Errorf("failed to start deployment: %w", err)
	}

	slog.Info("deployment started", slog.String("operation", handle.Name()))

	// obtaining the future subscribes to the operation, which starts the
	// status polling.
	future := handle.Future()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		result, err := future.Wait(ctx)
		if err != nil {
			return fmt.Errorf("deployment failed: %w", err)
		}
		if fn, ok := result.Response.(*functionspb.CloudFunction); ok {
			slog.Info("function deployed",
				slog.String("name", fn.GetName()),
				slog.String("url", fn.GetHttpsTrigger().GetUrl()),
			)
		}
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-future.Done():
				return nil
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				slog.Info("still deploying", slog.String("operation", handle.Name()))
			}
		}
	})

	return eg.Wait()
}
