package app

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"
	"google.golang.org/grpc"

	"github.com/jmuk/gcloud-go/internal/actions/deploy"
	"github.com/jmuk/gcloud-go/internal/actions/recognize"
	ioperations "github.com/jmuk/gcloud-go/internal/interfaces/operations"
	"github.com/jmuk/gcloud-go/internal/logger"
	"github.com/jmuk/gcloud-go/internal/operation"
	"github.com/jmuk/gcloud-go/internal/resource"
)

const (
	functionsEndpoint  = "cloudfunctions.googleapis.com:443"
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

func NewFunctionDeployCommand() *cli.Command {
	return &cli.Command{
		Name:  "function-deploy",
		Usage: "deploy a function and wait for the operation to finish",
		Flags: []cli.Flag{
			requiredProjectFlag,
			locationFlag,
			requiredFunctionFlag,
			requiredSourceFlag,
			runtimeFlag,
			entryPointFlag,
			triggerTopicFlag,
			timeoutFlag,
			debugFlag,
			logfileFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if err := setLogger(logLevel(cCtx), cCtx.String(logfileFlag.Name)); err != nil {
				return fmt.Errorf("failed to set logger: %w", err)
			}

			options := make([]deploy.Option, 0, 5)
			options = append(options, deploy.WithSourceArchiveURL(cCtx.String(sourceFlag.Name)))
			if cCtx.IsSet(runtimeFlag.Name) {
				options = append(options, deploy.WithRuntime(cCtx.String(runtimeFlag.Name)))
			}
			if cCtx.IsSet(entryPointFlag.Name) {
				options = append(options, deploy.WithEntryPoint(cCtx.String(entryPointFlag.Name)))
			}
			if cCtx.IsSet(triggerTopicFlag.Name) {
				options = append(options, deploy.WithTriggerTopic(cCtx.String(triggerTopicFlag.Name)))
			}
			if cCtx.IsSet(timeoutFlag.Name) {
				options = append(options, deploy.WithTimeout(cCtx.Duration(timeoutFlag.Name)))
			}

			return deploy.Run(
				cCtx.Context,
				deploy.Args{
					ProjectID:    cCtx.String(projectFlag.Name),
					Location:     cCtx.String(locationFlag.Name),
					FunctionName: cCtx.String(functionFlag.Name),
				},
				options...,
			)
		},
	}
}

func NewFunctionDeleteCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "function-delete",
		Usage:    "delete a function and wait for the operation to finish",
		Flags: []cli.Flag{
			requiredProjectFlag,
			locationFlag,
			requiredFunctionFlag,
		},
		Action: func(cCtx *cli.Context) error {
			manager, conn, err := buildFunctionManager(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to build function manager: %w", err)
			}
			defer conn.Close()

			handle, err := manager.Delete(cCtx.Context, resource.DeleteFunctionArgs{
				ProjectID:    cCtx.String(projectFlag.Name),
				Location:     cCtx.String(locationFlag.Name),
				FunctionName: cCtx.String(functionFlag.Name),
			})
			if err != nil {
				return fmt.Errorf("failed to delete function: %w", err)
			}

			if _, err := handle.Wait(cCtx.Context); err != nil {
				return fmt.Errorf("failed to wait for delete operation: %w", err)
			}

			fmt.Println("Function deleted")

			return nil
		},
	}
}

func NewFunctionGetCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "function-get",
		Usage:    "show a function",
		Flags: []cli.Flag{
			requiredProjectFlag,
			locationFlag,
			requiredFunctionFlag,
		},
		Action: func(cCtx *cli.Context) error {
			manager, conn, err := buildFunctionManager(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to build function manager: %w", err)
			}
			defer conn.Close()

			function, err := manager.Get(cCtx.Context, resource.GetFunctionArgs{
				ProjectID:    cCtx.String(projectFlag.Name),
				Location:     cCtx.String(locationFlag.Name),
				FunctionName: cCtx.String(functionFlag.Name),
			})
			if err != nil {
				return fmt.Errorf("failed to get function: %w", err)
			}

			fmt.Println(function.Value)

			return nil
		},
	}
}

func NewFunctionListCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "function-list",
		Usage:    "list functions",
		Flags: []cli.Flag{
			requiredProjectFlag,
			locationFlag,
		},
		Action: func(cCtx *cli.Context) error {
			manager, conn, err := buildFunctionManager(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to build function manager: %w", err)
			}
			defer conn.Close()

			functions, err := manager.List(cCtx.Context, resource.ListFunctionArgs{
				ProjectID: cCtx.String(projectFlag.Name),
				Location:  cCtx.String(locationFlag.Name),
			})
			if err != nil {
				return fmt.Errorf("failed to list functions: %w", err)
			}

			for _, function := range functions {
				fmt.Println(function.Value)
			}

			return nil
		},
	}
}

func NewFunctionCallCommand() *cli.Command {
	return &cli.Command{
		Name:  "function-call",
		Usage: "invoke a function directly",
		Flags: []cli.Flag{
			requiredProjectFlag,
			locationFlag,
			requiredFunctionFlag,
			dataFlag,
		},
		Action: func(cCtx *cli.Context) error {
			manager, conn, err := buildFunctionManager(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to build function manager: %w", err)
			}
			defer conn.Close()

			result, err := manager.Call(cCtx.Context, resource.CallFunctionArgs{
				ProjectID:    cCtx.String(projectFlag.Name),
				Location:     cCtx.String(locationFlag.Name),
				FunctionName: cCtx.String(functionFlag.Name),
				Data:         cCtx.String(dataFlag.Name),
			})
			if err != nil {
				return fmt.Errorf("failed to call function: %w", err)
			}

			if result.Error != "" {
				return fmt.Errorf("function execution %s failed: %s", result.ExecutionID, result.Error)
			}

			fmt.Println(result.Result)

			return nil
		},
	}
}

func NewRecognizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "recognize",
		Usage: "recognize an audio file synchronously",
		Flags: []cli.Flag{
			requiredProjectFlag,
			requiredRecognizerFlag,
			uriFlag,
			debugFlag,
			logfileFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if err := setLogger(logLevel(cCtx), cCtx.String(logfileFlag.Name)); err != nil {
				return fmt.Errorf("failed to set logger: %w", err)
			}

			return recognize.Run(
				cCtx.Context,
				recognize.Args{
					ProjectID:      cCtx.String(projectFlag.Name),
					RecognizerName: cCtx.String(recognizerFlag.Name),
					AudioURIs:      cCtx.StringSlice(uriFlag.Name),
				},
			)
		},
	}
}

func NewBatchRecognizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch-recognize",
		Usage: "recognize audio files as a long-running batch",
		Flags: []cli.Flag{
			requiredProjectFlag,
			requiredRecognizerFlag,
			uriFlag,
			outputFlag,
			debugFlag,
			logfileFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if err := setLogger(logLevel(cCtx), cCtx.String(logfileFlag.Name)); err != nil {
				return fmt.Errorf("failed to set logger: %w", err)
			}

			options := make([]recognize.Option, 0, 1)
			if cCtx.IsSet(outputFlag.Name) {
				options = append(options, recognize.WithOutputFilePath(cCtx.String(outputFlag.Name)))
			}

			return recognize.RunBatch(
				cCtx.Context,
				recognize.Args{
					ProjectID:      cCtx.String(projectFlag.Name),
					RecognizerName: cCtx.String(recognizerFlag.Name),
					AudioURIs:      cCtx.StringSlice(uriFlag.Name),
				},
				options...,
			)
		},
	}
}

func NewOperationGetCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "operation-get",
		Usage:    "show the current status of an operation",
		Flags: []cli.Flag{
			operationFlag,
			endpointFlag,
		},
		Action: func(cCtx *cli.Context) error {
			handle, conn, err := buildOperationHandle(cCtx)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := handle.Get(cCtx.Context)
			if err != nil {
				return fmt.Errorf("failed to get operation: %w", err)
			}

			fmt.Println(resp)

			return nil
		},
	}
}

func NewOperationCancelCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "operation-cancel",
		Usage:    "request cancellation of an operation",
		Flags: []cli.Flag{
			operationFlag,
			endpointFlag,
		},
		Action: func(cCtx *cli.Context) error {
			handle, conn, err := buildOperationHandle(cCtx)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := handle.Cancel(cCtx.Context); err != nil {
				return fmt.Errorf("failed to cancel operation: %w", err)
			}

			fmt.Println("Operation cancellation requested")

			return nil
		},
	}
}

func NewOperationDeleteCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "operation-delete",
		Usage:    "delete the record of an operation",
		Flags: []cli.Flag{
			operationFlag,
			endpointFlag,
		},
		Action: func(cCtx *cli.Context) error {
			handle, conn, err := buildOperationHandle(cCtx)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := handle.Delete(cCtx.Context); err != nil {
				return fmt.Errorf("failed to delete operation: %w", err)
			}

			fmt.Println("Operation deleted")

			return nil
		},
	}
}

func setLogger(level slog.Level, logFilePath string) error {
	if logFilePath == "" {
		slog.SetDefault(logger.NewStderrLogger(level))
		return nil
	}

	fileLogger, err := logger.NewFileLogger(logFilePath, level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(fileLogger)

	return nil
}

func logLevel(cCtx *cli.Context) slog.Level {
	if cCtx.Bool(debugFlag.Name) {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// buildFunctionManager returns the manager together with the dialed
// connection; the caller owns closing it.
func buildFunctionManager(ctx context.Context) (resource.FunctionManager, *grpc.ClientConn, error) {
	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(functionsEndpoint),
		option.WithScopes(cloudPlatformScope),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial functions service: %w", err)
	}

	manager := resource.NewFunctionManager(
		functionspb.NewCloudFunctionsServiceClient(conn),
		longrunningpb.NewOperationsClient(conn),
	)

	return manager, conn, nil
}

func buildOperationsClient(ctx context.Context, endpoint string) (ioperations.Client, *grpc.ClientConn, error) {
	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(endpoint),
		option.WithScopes(cloudPlatformScope),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial operations service: %w", err)
	}

	return longrunningpb.NewOperationsClient(conn), conn, nil
}

func buildOperationHandle(cCtx *cli.Context) (*operation.Operation, *grpc.ClientConn, error) {
	client, conn, err := buildOperationsClient(cCtx.Context, cCtx.String(endpointFlag.Name))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build operations client: %w", err)
	}

	handle, err := operation.New(cCtx.Context, client, cCtx.String(operationFlag.Name))
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to create operation handle: %w", err)
	}

	return handle, conn, nil
}
