package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GetSiteThemeRequest struct {
}

type UpdateSiteThemeRequest struct {
	Theme *SiteTheme `json:"theme"`
}

type SiteThemeResponse struct {
	Theme *SiteTheme `json:"theme"`
}

const (
	SiteService_GetSiteTheme_FullMethodName    = "/pagebuilder.v1.SiteService/GetSiteTheme"
	SiteService_UpdateSiteTheme_FullMethodName = "/pagebuilder.v1.SiteService/UpdateSiteTheme"
)

// SiteServiceServer is the server API for SiteService.
type SiteServiceServer interface {
	GetSiteTheme(context.Context, *GetSiteThemeRequest) (*SiteThemeResponse, error)
	UpdateSiteTheme(context.Context, *UpdateSiteThemeRequest) (*SiteThemeResponse, error)
}

// UnimplementedSiteServiceServer can be embedded to have forward compatible implementations.
type UnimplementedSiteServiceServer struct{}

func (UnimplementedSiteServiceServer) GetSiteTheme(context.Context, *GetSiteThemeRequest) (*SiteThemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSiteTheme not implemented")
}
func (UnimplementedSiteServiceServer) UpdateSiteTheme(context.Context, *UpdateSiteThemeRequest) (*SiteThemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSiteTheme not implemented")
}

func RegisterSiteServiceServer(s grpc.ServiceRegistrar, srv SiteServiceServer) {
	s.RegisterService(&SiteService_ServiceDesc, srv)
}

// SiteService_ServiceDesc is the grpc.ServiceDesc for SiteService.
var SiteService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pagebuilder.v1.SiteService",
	HandlerType: (*SiteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSiteTheme", Handler: unary(SiteService_GetSiteTheme_FullMethodName, SiteServiceServer.GetSiteTheme)},
		{MethodName: "UpdateSiteTheme", Handler: unary(SiteService_UpdateSiteTheme_FullMethodName, SiteServiceServer.UpdateSiteTheme)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apis/v1/site_service.go",
}

// SiteServiceClient is the client API for SiteService.
type SiteServiceClient interface {
	GetSiteTheme(ctx context.Context, in *GetSiteThemeRequest, opts ...grpc.CallOption) (*SiteThemeResponse, error)
	UpdateSiteTheme(ctx context.Context, in *UpdateSiteThemeRequest, opts ...grpc.CallOption) (*SiteThemeResponse, error)
}

type siteServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSiteServiceClient(cc grpc.ClientConnInterface) SiteServiceClient {
	return &siteServiceClient{cc}
}

func (c *siteServiceClient) GetSiteTheme(ctx context.Context, in *GetSiteThemeRequest, opts ...grpc.CallOption) (*SiteThemeResponse, error) {
	return invoke[SiteThemeResponse](ctx, c.cc, SiteService_GetSiteTheme_FullMethodName, in, opts)
}

func (c *siteServiceClient) UpdateSiteTheme(ctx context.Context, in *UpdateSiteThemeRequest, opts ...grpc.CallOption) (*SiteThemeResponse, error) {
	return invoke[SiteThemeResponse](ctx, c.cc, SiteService_UpdateSiteTheme_FullMethodName, in, opts)
}
