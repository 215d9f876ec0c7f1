package testutil

import (
	"context"
	"net"
	"testing"

	"cloud.google.com/go/functions/apiv1/functionspb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// MockOperationsClient serves the given Operations server over an in-process
// connection and returns a stub client for it.
func MockOperationsClient(t *testing.T, mockServer longrunningpb.OperationsServer) longrunningpb.OperationsClient {
	t.Helper()
	conn := dialMockServer(t, func(s *grpc.Server) {
		longrunningpb.RegisterOperationsServer(s, mockServer)
	})
	return longrunningpb.NewOperationsClient(conn)
}

// MockFunctionsClient serves the given CloudFunctionsService server over an
// in-process connection and returns a stub client for it.
func MockFunctionsClient(t *testing.T, mockServer functionspb.CloudFunctionsServiceServer) functionspb.CloudFunctionsServiceClient {
	t.Helper()
	conn := dialMockServer(t, func(s *grpc.Server) {
		functionspb.RegisterCloudFunctionsServiceServer(s, mockServer)
	})
	return functionspb.NewCloudFunctionsServiceClient(conn)
}

// MockSpeechClient serves the given Speech server over an in-process
// connection and returns a stub client for it.
func MockSpeechClient(t *testing.T, mockServer speechpb.SpeechServer) speechpb.SpeechClient {
	t.Helper()
	conn := dialMockServer(t, func(s *grpc.Server) {
		speechpb.RegisterSpeechServer(s, mockServer)
	})
	return speechpb.NewSpeechClient(conn)
}

func dialMockServer(t *testing.T, register func(*grpc.Server)) *grpc.ClientConn {
	t.Helper()

	l := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { l.Close() })

	s := grpc.NewServer()
	register(s)

	go s.Serve(l)
	t.Cleanup(func() { s.Stop() })

	conn, err := grpc.NewClient(
		// use passthrough resolver explicitly to avoid using default dns resolver
		// ref. https://stackoverflow.com/questions/78485578/how-to-use-the-bufconn-package-with-grpc-newclient
		"passthrough://bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return l.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func AnyResponse(t *testing.T, resp proto.Message) *anypb.Any {
	t.Helper()

	anyResp, err := anypb.New(resp)
	if err != nil {
		t.Fatalf("failed to create anypb: %v", err)
	}

	return anyResp
}
