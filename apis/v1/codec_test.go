package v1

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

type componentServer struct {
	UnimplementedComponentServiceServer
}

func (componentServer) GetComponentType(_ context.Context, in *GetComponentTypeRequest) (*GetComponentTypeResponse, error) {
	return &GetComponentTypeResponse{ComponentType: &ComponentType{TypeId: in.TypeId}}, nil
}

func methodDesc(t *testing.T, desc grpc.ServiceDesc, name string) grpc.MethodDesc {
	t.Helper()
	for _, m := range desc.Methods {
		if m.MethodName == name {
			return m
		}
	}
	t.Fatalf("no method %s in %s", name, desc.ServiceName)
	return grpc.MethodDesc{}
}

func TestCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)

	data, err := codec.Marshal(&GetComponentTypeRequest{TypeId: "heroBanner"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"typeId":"heroBanner"}`, string(data))
}

func TestUnary_Handler(t *testing.T) {
	m := methodDesc(t, ComponentService_ServiceDesc, "GetComponentType")
	dec := func(v any) error {
		return json.Unmarshal([]byte(`{"typeId":"feeTable"}`), v)
	}

	out, err := m.Handler(componentServer{}, context.TODO(), dec, nil)
	require.NoError(t, err)
	assert.Equal(t, "feeTable", out.(*GetComponentTypeResponse).ComponentType.TypeId)

	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	out, err = m.Handler(componentServer{}, context.TODO(), dec, interceptor)
	require.NoError(t, err)
	assert.Equal(t, ComponentService_GetComponentType_FullMethodName, seen)
	assert.Equal(t, "feeTable", out.(*GetComponentTypeResponse).ComponentType.TypeId)
}

func TestServiceDesc_Metadata(t *testing.T) {
	for _, desc := range []grpc.ServiceDesc{PageService_ServiceDesc, ComponentService_ServiceDesc, SiteService_ServiceDesc} {
		assert.Regexp(t, `^apis/v1/\w+\.go$`, desc.Metadata)
	}
}
