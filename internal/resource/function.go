package resource

import (
	"cloud.google.com/go/functions/apiv1/functionspb"
	"google.golang.org/protobuf/encoding/prototext"
)

type Function struct {
	Value string

	Name       string
	Status     string
	Runtime    string
	EntryPoint string
	TriggerURL string
}

func RestoreFunctionFromProto(pb *functionspb.CloudFunction) *Function {
	f := &Function{
		Name:       pb.GetName(),
		Value:      prototext.Format(pb),
		Status:     pb.GetStatus().String(),
		Runtime:    pb.GetRuntime(),
		EntryPoint: pb.GetEntryPoint(),
	}

	if trigger := pb.GetHttpsTrigger(); trigger != nil {
		f.TriggerURL = trigger.GetUrl()
	}

	return f
}
