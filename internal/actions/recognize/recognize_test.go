package recognize

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"

	myoperations "github.com/jmuk/gcloud-go/internal/interfaces/operations"
	myspeech "github.com/jmuk/gcloud-go/internal/interfaces/speech"
	"github.com/jmuk/gcloud-go/internal/testutil"
)

func batchResult(transcripts ...string) *speechpb.BatchRecognizeFileResult {
	results := make([]*speechpb.SpeechRecognitionResult, 0, len(transcripts))
	for _, tr := range transcripts {
		results = append(results, &speechpb.SpeechRecognitionResult{
			Alternatives: []*speechpb.SpeechRecognitionAlternative{
				{Transcript: tr},
			},
		})
	}
	return &speechpb.BatchRecognizeFileResult{
		Result: &speechpb.BatchRecognizeFileResult_InlineResult{
			InlineResult: &speechpb.InlineResult{
				Transcript: &speechpb.BatchRecognizeResults{
					Results: results,
				},
			},
		},
	}
}

func Test_runBatch(t *testing.T) {
	args := Args{
		ProjectID:      "test-project",
		RecognizerName: "test-recognizer",
		AudioURIs:      []string{"gs://bucket/b.wav", "gs://bucket/a.wav"},
	}

	speechClient := &myspeech.ClientMock{
		BatchRecognizeFunc: func(
			_ context.Context,
			in *speechpb.BatchRecognizeRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			wantRecognizer := "projects/test-project/locations/global/recognizers/test-recognizer"
			if in.GetRecognizer() != wantRecognizer {
				t.Errorf("recognizer = %q, want %q", in.GetRecognizer(), wantRecognizer)
			}
			if got := len(in.GetFiles()); got != 2 {
				t.Errorf("file count = %d, want 2", got)
			}
			return &longrunningpb.Operation{Name: "operations/batch-op"}, nil
		},
	}

	resp := &speechpb.BatchRecognizeResponse{
		Results: map[string]*speechpb.BatchRecognizeFileResult{
			"gs://bucket/b.wav": batchResult("second file"),
			"gs://bucket/a.wav": batchResult("first file"),
		},
	}
	opsClient := &myoperations.ClientMock{
		GetOperationFunc: func(
			_ context.Context,
			in *longrunningpb.GetOperationRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			if in.GetName() != "operations/batch-op" {
				t.Errorf("operation name = %q, want %q", in.GetName(), "operations/batch-op")
			}
			return &longrunningpb.Operation{
				Name: "operations/batch-op",
				Done: true,
				Result: &longrunningpb.Operation_Response{
					Response: testutil.AnyResponse(t, resp),
				},
			}, nil
		},
	}

	var buf bytes.Buffer
	if err := runBatch(context.Background(), speechClient, opsClient, &buf, args); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	// transcripts come out sorted by file URI.
	want := "first file\nsecond file\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func Test_runBatch_startError(t *testing.T) {
	wantErr := errors.New("permission denied")
	speechClient := &myspeech.ClientMock{
		BatchRecognizeFunc: func(
			_ context.Context,
			_ *speechpb.BatchRecognizeRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return nil, wantErr
		},
	}

	var buf bytes.Buffer
	err := runBatch(context.Background(), speechClient, &myoperations.ClientMock{}, &buf, Args{
		ProjectID:      "test-project",
		RecognizerName: "test-recognizer",
		AudioURIs:      []string{"gs://bucket/a.wav"},
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("runBatch() error = %v, want %v", err, wantErr)
	}
}

func Test_runBatch_writeError(t *testing.T) {
	speechClient := &myspeech.ClientMock{
		BatchRecognizeFunc: func(
			_ context.Context,
			_ *speechpb.BatchRecognizeRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return &longrunningpb.Operation{Name: "operations/batch-op"}, nil
		},
	}
	resp := &speechpb.BatchRecognizeResponse{
		Results: map[string]*speechpb.BatchRecognizeFileResult{
			"gs://bucket/a.wav": batchResult("transcript"),
		},
	}
	opsClient := &myoperations.ClientMock{
		GetOperationFunc: func(
			_ context.Context,
			_ *longrunningpb.GetOperationRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return &longrunningpb.Operation{
				Name: "operations/batch-op",
				Done: true,
				Result: &longrunningpb.Operation_Response{
					Response: testutil.AnyResponse(t, resp),
				},
			}, nil
		},
	}

	wantErr := errors.New("disk full")
	writer := &testutil.IOWriterMock{
		WriteFunc: func(p []byte) (int, error) {
			return 0, wantErr
		},
	}
	err := runBatch(context.Background(), speechClient, opsClient, writer, Args{
		ProjectID:      "test-project",
		RecognizerName: "test-recognizer",
		AudioURIs:      []string{"gs://bucket/a.wav"},
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("runBatch() error = %v, want %v", err, wantErr)
	}
}

func Test_runBatch_operationError(t *testing.T) {
	wantErr := errors.New("unavailable")
	speechClient := &myspeech.ClientMock{
		BatchRecognizeFunc: func(
			_ context.Context,
			_ *speechpb.BatchRecognizeRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return &longrunningpb.Operation{Name: "operations/batch-op"}, nil
		},
	}
	opsClient := &myoperations.ClientMock{
		GetOperationFunc: func(
			_ context.Context,
			_ *longrunningpb.GetOperationRequest,
			_ ...grpc.CallOption,
		) (*longrunningpb.Operation, error) {
			return nil, wantErr
		},
	}

	var buf bytes.Buffer
	err := runBatch(context.Background(), speechClient, opsClient, &buf, Args{
		ProjectID:      "test-project",
		RecognizerName: "test-recognizer",
		AudioURIs:      []string{"gs://bucket/a.wav"},
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("runBatch() error = %v, want %v", err, wantErr)
	}
	if buf.Len() != 0 {
		t.Errorf("output written on failure: %q", buf.String())
	}
}
