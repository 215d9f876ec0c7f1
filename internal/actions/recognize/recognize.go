package recognize

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/jmuk/gcloud-go/internal/file"
	ioperations "github.com/jmuk/gcloud-go/internal/interfaces/operations"
	ispeech "github.com/jmuk/gcloud-go/internal/interfaces/speech"
	"github.com/jmuk/gcloud-go/internal/operation"
	"github.com/jmuk/gcloud-go/internal/resource"
)

const speechEndpoint = "speech.googleapis.com:443"

type Args struct {
	ProjectID      string
	RecognizerName string
	AudioURIs      []string
}

// Run recognizes a single audio file synchronously and prints the
// transcripts to stdout.
func Run(ctx context.Context, args Args) error {
	if len(args.AudioURIs) != 1 {
		return fmt.Errorf("exactly one audio URI must be specified, got %d", len(args.AudioURIs))
	}

	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(speechEndpoint),
		option.WithScopes("https://www.googleapis.com/auth/cloud-platform"),
	)
	if err != nil {
		return fmt.Errorf("failed to dial speech service: %w", err)
	}
	defer conn.Close()

	client := speechpb.NewSpeechClient(conn)

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Recognizer: resource.RecognizerFullname(args.ProjectID, args.RecognizerName),
		AudioSource: &speechpb.RecognizeRequest_Uri{
			Uri: args.AudioURIs[0],
		},
	})
	if err != nil {
		return fmt.Errorf("failed to recognize: %w", err)
	}

	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		fmt.Println(alts[0].GetTranscript())
	}

	return nil
}

// RunBatch starts a batch recognition over the given audio files, waits for
// the resulting long-running operation through its future, and appends the
// transcripts to the output file.
func RunBatch(ctx context.Context, args Args, opts ...Option) error {
	if len(args.AudioURIs) == 0 {
		return fmt.Errorf("at least one audio URI must be specified")
	}

	options, err := buildOptions(opts)
	if err != nil {
		return err
	}

	// create the output file early so it can be tailed while the operation
	// runs.
	if err := file.Touch(options.outputFilePath, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(speechEndpoint),
		option.WithScopes("https://www.googleapis.com/auth/cloud-platform"),
	)
	if err != nil {
		return fmt.Errorf("failed to dial speech service: %w", err)
	}
	defer conn.Close()

	speechClient := speechpb.NewSpeechClient(conn)
	opsClient := longrunningpb.NewOperationsClient(conn)

	writer := file.NewOpenCloseFileWriter(
		options.outputFilePath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		os.FileMode(0o644),
	)

	return runBatch(ctx, speechClient, opsClient, writer, args)
}

func runBatch(
	ctx context.Context,
	speechClient ispeech.Client,
	opsClient ioperations.Client,
	writer io.Writer,
	args Args,
) error {
	files := make([]*speechpb.BatchRecognizeFileMetadata, 0, len(args.AudioURIs))
	for _, uri := range args.AudioURIs {
		files = append(files, &speechpb.BatchRecognizeFileMetadata{
			AudioSource: &speechpb.BatchRecognizeFileMetadata_Uri{
				Uri: uri,
			},
		})
	}

	op, err := speechClient.BatchRecognize(ctx, &speechpb.BatchRecognizeRequest{
		Recognizer: resource.RecognizerFullname(args.ProjectID, args.RecognizerName),
		Files:      files,
		RecognitionOutputConfig: &speechpb.RecognitionOutputConfig{
			Output: &speechpb.RecognitionOutputConfig_InlineResponseConfig{
				InlineResponseConfig: &speechpb.InlineOutputConfig{},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start batch recognition: %w", err)
	}

	handle, err := operation.New(ctx, opsClient, op.GetName(), operation.WithDecoder(decodeBatchResponse))
	if err != nil {
		return fmt.Errorf("failed to create operation handle: %w", err)
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		return fmt.Errorf("batch recognition failed: %w", err)
	}

	resp, ok := result.Response.(*speechpb.BatchRecognizeResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", result.Response)
	}

	// map iteration order is random; sort by file URI for stable output.
	uris := make([]string, 0, len(resp.GetResults()))
	for uri := range resp.GetResults() {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	for _, uri := range uris {
		fileResult := resp.GetResults()[uri]
		for _, r := range fileResult.GetInlineResult().GetTranscript().GetResults() {
			alts := r.GetAlternatives()
			if len(alts) == 0 {
				continue
			}
			if _, err := fmt.Fprintln(writer, alts[0].GetTranscript()); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
		}
	}

	return nil
}

func decodeBatchResponse(raw *anypb.Any) (proto.Message, error) {
	resp := &speechpb.BatchRecognizeResponse{}
	if err := raw.UnmarshalTo(resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch recognize response: %w", err)
	}
	return resp, nil
}

func buildOptions(opts []Option) (*options, error) {
	options := &options{
		outputFilePath: fmt.Sprintf("output/%d.txt", time.Now().Unix()),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return options, nil
}
