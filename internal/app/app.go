package app

import (
	"github.com/urfave/cli/v2"
)

func New() *cli.App {
	return &cli.App{
		Name:  "gcloud-go",
		Usage: "client for Google Cloud services",
		Commands: []*cli.Command{
			NewFunctionDeployCommand(),
			NewFunctionDeleteCommand(),
			NewFunctionGetCommand(),
			NewFunctionListCommand(),
			NewFunctionCallCommand(),
			NewRecognizeCommand(),
			NewBatchRecognizeCommand(),
			NewOperationGetCommand(),
			NewOperationCancelCommand(),
			NewOperationDeleteCommand(),
		},
	}
}
