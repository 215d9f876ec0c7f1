package app

import "github.com/urfave/cli/v2"

var projectFlag = &cli.StringFlag{
	Name:    "project",
	Usage:   "Google Cloud Project ID",
	EnvVars: []string{"GOOGLE_CLOUD_PROJECT"},
}

var requiredProjectFlag = &cli.StringFlag{
	Name:     projectFlag.Name,
	Usage:    projectFlag.Usage,
	EnvVars:  projectFlag.EnvVars,
	Required: true,
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var logfileFlag = &cli.StringFlag{
	Name:  "logfile",
	Usage: "Log file path; logs go to stderr when omitted",
}

//
// Function flags
//

var locationFlag = &cli.StringFlag{
	Name:  "location",
	Usage: "Cloud Functions location",
	Value: "us-central1",
}

var functionFlag = &cli.StringFlag{
	Name:  "function",
	Usage: "Function name",
}

var requiredFunctionFlag = &cli.StringFlag{
	Name:     functionFlag.Name,
	Usage:    functionFlag.Usage,
	Required: true,
}

var runtimeFlag = &cli.StringFlag{
	Name:  "runtime",
	Usage: "Function runtime",
}

var entryPointFlag = &cli.StringFlag{
	Name:  "entry-point",
	Usage: "Name of the function entry point",
}

var sourceFlag = &cli.StringFlag{
	Name:  "source",
	Usage: "URL of the uploaded source archive",
}

var requiredSourceFlag = &cli.StringFlag{
	Name:     sourceFlag.Name,
	Usage:    sourceFlag.Usage,
	Required: true,
}

var triggerTopicFlag = &cli.StringFlag{
	Name:  "trigger-topic",
	Usage: "Pub/Sub topic triggering the function; HTTPS trigger when omitted",
}

var timeoutFlag = &cli.DurationFlag{
	Name:  "timeout",
	Usage: "Deployment timeout duration",
}

var dataFlag = &cli.StringFlag{
	Name:  "data",
	Usage: "Data passed to the function invocation",
}

//
// Speech flags
//

var recognizerFlag = &cli.StringFlag{
	Name:  "recognizer",
	Usage: "Recognizer name",
}

var requiredRecognizerFlag = &cli.StringFlag{
	Name:     recognizerFlag.Name,
	Usage:    recognizerFlag.Usage,
	Required: true,
}

var uriFlag = &cli.StringSliceFlag{
	Name:    "uri",
	Aliases: []string{"u"},
	Usage:   "Cloud Storage URI of the audio file possibly multiple",
}

var outputFlag = &cli.StringFlag{
	Name:  "output",
	Usage: "Output file path",
}

//
// Operation flags
//

var operationFlag = &cli.StringFlag{
	Name:     "operation",
	Usage:    "Operation name",
	Required: true,
}

var endpointFlag = &cli.StringFlag{
	Name:  "endpoint",
	Usage: "Service endpoint owning the operation",
	Value: "cloudfunctions.googleapis.com:443",
}
