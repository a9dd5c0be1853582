package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ListComponentTypesRequest struct {
	// Category filters the types, empty lists all of them.
	Category string `json:"category,omitempty"`
}

type ListComponentTypesResponse struct {
	ComponentTypes []*ComponentType `json:"componentTypes"`
}

type GetComponentTypeRequest struct {
	TypeId string `json:"typeId"`
}

type GetComponentTypeResponse struct {
	ComponentType *ComponentType `json:"componentType"`
}

const (
	ComponentService_ListComponentTypes_FullMethodName = "/pagebuilder.v1.ComponentService/ListComponentTypes"
	ComponentService_GetComponentType_FullMethodName   = "/pagebuilder.v1.ComponentService/GetComponentType"
)

// ComponentServiceServer is the server API for ComponentService.
type ComponentServiceServer interface {
	ListComponentTypes(context.Context, *ListComponentTypesRequest) (*ListComponentTypesResponse, error)
	GetComponentType(context.Context, *GetComponentTypeRequest) (*GetComponentTypeResponse, error)
}

// UnimplementedComponentServiceServer can be embedded to have forward compatible implementations.
type UnimplementedComponentServiceServer struct{}

func (UnimplementedComponentServiceServer) ListComponentTypes(context.Context, *ListComponentTypesRequest) (*ListComponentTypesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListComponentTypes not implemented")
}
func (UnimplementedComponentServiceServer) GetComponentType(context.Context, *GetComponentTypeRequest) (*GetComponentTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComponentType not implemented")
}

func RegisterComponentServiceServer(s grpc.ServiceRegistrar, srv ComponentServiceServer) {
	s.RegisterService(&ComponentService_ServiceDesc, srv)
}

// ComponentService_ServiceDesc is the grpc.ServiceDesc for ComponentService.
var ComponentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pagebuilder.v1.ComponentService",
	HandlerType: (*ComponentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListComponentTypes", Handler: unary(ComponentService_ListComponentTypes_FullMethodName, ComponentServiceServer.ListComponentTypes)},
		{MethodName: "GetComponentType", Handler: unary(ComponentService_GetComponentType_FullMethodName, ComponentServiceServer.GetComponentType)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apis/v1/component_service.go",
}

// ComponentServiceClient is the client API for ComponentService.
type ComponentServiceClient interface {
	ListComponentTypes(ctx context.Context, in *ListComponentTypesRequest, opts ...grpc.CallOption) (*ListComponentTypesResponse, error)
	GetComponentType(ctx context.Context, in *GetComponentTypeRequest, opts ...grpc.CallOption) (*GetComponentTypeResponse, error)
}

type componentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewComponentServiceClient(cc grpc.ClientConnInterface) ComponentServiceClient {
	return &componentServiceClient{cc}
}

func (c *componentServiceClient) ListComponentTypes(ctx context.Context, in *ListComponentTypesRequest, opts ...grpc.CallOption) (*ListComponentTypesResponse, error) {
	return invoke[ListComponentTypesResponse](ctx, c.cc, ComponentService_ListComponentTypes_FullMethodName, in, opts)
}

func (c *componentServiceClient) GetComponentType(ctx context.Context, in *GetComponentTypeRequest, opts ...grpc.CallOption) (*GetComponentTypeResponse, error) {
	return invoke[GetComponentTypeResponse](ctx, c.cc, ComponentService_GetComponentType_FullMethodName, in, opts)
}
