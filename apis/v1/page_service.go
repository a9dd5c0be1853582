package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OverwriteVersion skips the version check of an authoring request.
const OverwriteVersion int64 = -1

type CreatePageRequest struct {
	Title       string               `json:"title"`
	Slug        string               `json:"slug,omitempty"`
	Description string               `json:"description,omitempty"`
	ParentId    string               `json:"parentId,omitempty"`
	Components  []*ComponentInstance `json:"components,omitempty"`
	SeoData     *SeoData             `json:"seoData,omitempty"`
}

type CreatePageResponse struct {
	Page *Page `json:"page"`
}

type GetPageRequest struct {
	Id             string `json:"id"`
	IncludeDeleted bool   `json:"includeDeleted,omitempty"`
}

type GetPageResponse struct {
	Page *Page `json:"page"`
}

type GetPageBySlugRequest struct {
	Slug string `json:"slug"`
}

type ListPagesRequest struct {
	ParentId       string `json:"parentId,omitempty"`
	RootsOnly      bool   `json:"rootsOnly,omitempty"`
	IncludeDeleted bool   `json:"includeDeleted,omitempty"`
}

type ListPagesResponse struct {
	Pages []*Page `json:"pages"`
	Total int32   `json:"total"`
}

type ListPageTreeRequest struct {
	IncludeDeleted bool `json:"includeDeleted,omitempty"`
}

type ListPageTreeResponse struct {
	Entries []*PageTreeEntry `json:"entries"`
}

// UpdatePageRequest replaces the whole document of a page.
type UpdatePageRequest struct {
	Id          string               `json:"id"`
	Version     *int64               `json:"version"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	ParentId    string               `json:"parentId,omitempty"`
	Components  []*ComponentInstance `json:"components"`
	SeoData     *SeoData             `json:"seoData"`
}

type UpdatePageResponse struct {
	Page *Page `json:"page"`
}

type DeletePageRequest struct {
	Id      string `json:"id"`
	Version *int64 `json:"version,omitempty"`
}

type DeletePageResponse struct {
}

type AddComponentRequest struct {
	PageId  string `json:"pageId"`
	TypeId  string `json:"typeId"`
	Version *int64 `json:"version,omitempty"`
}

type AddComponentResponse struct {
	Page     *Page              `json:"page"`
	Instance *ComponentInstance `json:"instance"`
}

type RemoveComponentRequest struct {
	PageId     string `json:"pageId"`
	InstanceId string `json:"instanceId"`
	Version    *int64 `json:"version,omitempty"`
}

type ReorderComponentsRequest struct {
	PageId      string   `json:"pageId"`
	InstanceIds []string `json:"instanceIds"`
	Version     *int64   `json:"version,omitempty"`
}

type SetComponentPropertiesRequest struct {
	PageId     string         `json:"pageId"`
	InstanceId string         `json:"instanceId"`
	Properties map[string]any `json:"properties"`
	// Replace drops the properties that are not in the request.
	Replace bool   `json:"replace,omitempty"`
	Version *int64 `json:"version,omitempty"`
}

type SetSlugRequest struct {
	PageId  string `json:"pageId"`
	Slug    string `json:"slug"`
	Version *int64 `json:"version,omitempty"`
}

type SetParentRequest struct {
	PageId   string `json:"pageId"`
	ParentId string `json:"parentId"`
	Version  *int64 `json:"version,omitempty"`
}

// PageResponse is returned by the operations that edit a page in place.
type PageResponse struct {
	Page *Page `json:"page"`
}

type CheckSlugRequest struct {
	Slug      string `json:"slug"`
	ExcludeId string `json:"excludeId,omitempty"`
}

type CheckSlugResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// RenderPageRequest resolves a page by slug. An empty slug renders the home
// page.
type RenderPageRequest struct {
	Slug string `json:"slug"`
}

type RenderPageResponse struct {
	Page         *Page                `json:"page"`
	Instructions []*RenderInstruction `json:"instructions"`
	Diagnostics  []*Diagnostic        `json:"diagnostics,omitempty"`
	Seo          *SeoMeta             `json:"seo"`
}

type ListPageRevisionsRequest struct {
	PageId string `json:"pageId"`
}

type ListPageRevisionsResponse struct {
	Revisions []*PageRevision `json:"revisions"`
}

const (
	PageService_CreatePage_FullMethodName             = "/pagebuilder.v1.PageService/CreatePage"
	PageService_GetPage_FullMethodName                = "/pagebuilder.v1.PageService/GetPage"
	PageService_GetPageBySlug_FullMethodName          = "/pagebuilder.v1.PageService/GetPageBySlug"
	PageService_ListPages_FullMethodName              = "/pagebuilder.v1.PageService/ListPages"
	PageService_ListPageTree_FullMethodName           = "/pagebuilder.v1.PageService/ListPageTree"
	PageService_UpdatePage_FullMethodName             = "/pagebuilder.v1.PageService/UpdatePage"
	PageService_DeletePage_FullMethodName             = "/pagebuilder.v1.PageService/DeletePage"
	PageService_AddComponent_FullMethodName           = "/pagebuilder.v1.PageService/AddComponent"
	PageService_RemoveComponent_FullMethodName        = "/pagebuilder.v1.PageService/RemoveComponent"
	PageService_ReorderComponents_FullMethodName      = "/pagebuilder.v1.PageService/ReorderComponents"
	PageService_SetComponentProperties_FullMethodName = "/pagebuilder.v1.PageService/SetComponentProperties"
	PageService_SetSlug_FullMethodName                = "/pagebuilder.v1.PageService/SetSlug"
	PageService_CheckSlug_FullMethodName              = "/pagebuilder.v1.PageService/CheckSlug"
	PageService_SetParent_FullMethodName              = "/pagebuilder.v1.PageService/SetParent"
	PageService_RenderPage_FullMethodName             = "/pagebuilder.v1.PageService/RenderPage"
	PageService_ListPageRevisions_FullMethodName      = "/pagebuilder.v1.PageService/ListPageRevisions"
)

// PageServiceServer is the server API for PageService.
type PageServiceServer interface {
	CreatePage(context.Context, *CreatePageRequest) (*CreatePageResponse, error)
	GetPage(context.Context, *GetPageRequest) (*GetPageResponse, error)
	GetPageBySlug(context.Context, *GetPageBySlugRequest) (*GetPageResponse, error)
	ListPages(context.Context, *ListPagesRequest) (*ListPagesResponse, error)
	ListPageTree(context.Context, *ListPageTreeRequest) (*ListPageTreeResponse, error)
	UpdatePage(context.Context, *UpdatePageRequest) (*UpdatePageResponse, error)
	DeletePage(context.Context, *DeletePageRequest) (*DeletePageResponse, error)
	AddComponent(context.Context, *AddComponentRequest) (*AddComponentResponse, error)
	RemoveComponent(context.Context, *RemoveComponentRequest) (*PageResponse, error)
	ReorderComponents(context.Context, *ReorderComponentsRequest) (*PageResponse, error)
	SetComponentProperties(context.Context, *SetComponentPropertiesRequest) (*PageResponse, error)
	SetSlug(context.Context, *SetSlugRequest) (*PageResponse, error)
	CheckSlug(context.Context, *CheckSlugRequest) (*CheckSlugResponse, error)
	SetParent(context.Context, *SetParentRequest) (*PageResponse, error)
	RenderPage(context.Context, *RenderPageRequest) (*RenderPageResponse, error)
	ListPageRevisions(context.Context, *ListPageRevisionsRequest) (*ListPageRevisionsResponse, error)
}

// UnimplementedPageServiceServer can be embedded to have forward compatible implementations.
type UnimplementedPageServiceServer struct{}

func (UnimplementedPageServiceServer) CreatePage(context.Context, *CreatePageRequest) (*CreatePageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePage not implemented")
}
func (UnimplementedPageServiceServer) GetPage(context.Context, *GetPageRequest) (*GetPageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPage not implemented")
}
func (UnimplementedPageServiceServer) GetPageBySlug(context.Context, *GetPageBySlugRequest) (*GetPageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPageBySlug not implemented")
}
func (UnimplementedPageServiceServer) ListPages(context.Context, *ListPagesRequest) (*ListPagesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPages not implemented")
}
func (UnimplementedPageServiceServer) ListPageTree(context.Context, *ListPageTreeRequest) (*ListPageTreeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPageTree not implemented")
}
func (UnimplementedPageServiceServer) UpdatePage(context.Context, *UpdatePageRequest) (*UpdatePageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePage not implemented")
}
func (UnimplementedPageServiceServer) DeletePage(context.Context, *DeletePageRequest) (*DeletePageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePage not implemented")
}
func (UnimplementedPageServiceServer) AddComponent(context.Context, *AddComponentRequest) (*AddComponentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddComponent not implemented")
}
func (UnimplementedPageServiceServer) RemoveComponent(context.Context, *RemoveComponentRequest) (*PageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveComponent not implemented")
}
func (UnimplementedPageServiceServer) ReorderComponents(context.Context, *ReorderComponentsRequest) (*PageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReorderComponents not implemented")
}
func (UnimplementedPageServiceServer) SetComponentProperties(context.Context, *SetComponentPropertiesRequest) (*PageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetComponentProperties not implemented")
}
func (UnimplementedPageServiceServer) SetSlug(context.Context, *SetSlugRequest) (*PageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSlug not implemented")
}
func (UnimplementedPageServiceServer) CheckSlug(context.Context, *CheckSlugRequest) (*CheckSlugResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckSlug not implemented")
}
func (UnimplementedPageServiceServer) SetParent(context.Context, *SetParentRequest) (*PageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetParent not implemented")
}
func (UnimplementedPageServiceServer) RenderPage(context.Context, *RenderPageRequest) (*RenderPageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenderPage not implemented")
}
func (UnimplementedPageServiceServer) ListPageRevisions(context.Context, *ListPageRevisionsRequest) (*ListPageRevisionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPageRevisions not implemented")
}

func RegisterPageServiceServer(s grpc.ServiceRegistrar, srv PageServiceServer) {
	s.RegisterService(&PageService_ServiceDesc, srv)
}

// PageService_ServiceDesc is the grpc.ServiceDesc for PageService.
var PageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pagebuilder.v1.PageService",
	HandlerType: (*PageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreatePage", Handler: unary(PageService_CreatePage_FullMethodName, PageServiceServer.CreatePage)},
		{MethodName: "GetPage", Handler: unary(PageService_GetPage_FullMethodName, PageServiceServer.GetPage)},
		{MethodName: "GetPageBySlug", Handler: unary(PageService_GetPageBySlug_FullMethodName, PageServiceServer.GetPageBySlug)},
		{MethodName: "ListPages", Handler: unary(PageService_ListPages_FullMethodName, PageServiceServer.ListPages)},
		{MethodName: "ListPageTree", Handler: unary(PageService_ListPageTree_FullMethodName, PageServiceServer.ListPageTree)},
		{MethodName: "UpdatePage", Handler: unary(PageService_UpdatePage_FullMethodName, PageServiceServer.UpdatePage)},
		{MethodName: "DeletePage", Handler: unary(PageService_DeletePage_FullMethodName, PageServiceServer.DeletePage)},
		{MethodName: "AddComponent", Handler: unary(PageService_AddComponent_FullMethodName, PageServiceServer.AddComponent)},
		{MethodName: "RemoveComponent", Handler: unary(PageService_RemoveComponent_FullMethodName, PageServiceServer.RemoveComponent)},
		{MethodName: "ReorderComponents", Handler: unary(PageService_ReorderComponents_FullMethodName, PageServiceServer.ReorderComponents)},
		{MethodName: "SetComponentProperties", Handler: unary(PageService_SetComponentProperties_FullMethodName, PageServiceServer.SetComponentProperties)},
		{MethodName: "SetSlug", Handler: unary(PageService_SetSlug_FullMethodName, PageServiceServer.SetSlug)},
		{MethodName: "CheckSlug", Handler: unary(PageService_CheckSlug_FullMethodName, PageServiceServer.CheckSlug)},
		{MethodName: "SetParent", Handler: unary(PageService_SetParent_FullMethodName, PageServiceServer.SetParent)},
		{MethodName: "RenderPage", Handler: unary(PageService_RenderPage_FullMethodName, PageServiceServer.RenderPage)},
		{MethodName: "ListPageRevisions", Handler: unary(PageService_ListPageRevisions_FullMethodName, PageServiceServer.ListPageRevisions)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "apis/v1/page_service.go",
}

// PageServiceClient is the client API for PageService.
type PageServiceClient interface {
	CreatePage(ctx context.Context, in *CreatePageRequest, opts ...grpc.CallOption) (*CreatePageResponse, error)
	GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*GetPageResponse, error)
	GetPageBySlug(ctx context.Context, in *GetPageBySlugRequest, opts ...grpc.CallOption) (*GetPageResponse, error)
	ListPages(ctx context.Context, in *ListPagesRequest, opts ...grpc.CallOption) (*ListPagesResponse, error)
	ListPageTree(ctx context.Context, in *ListPageTreeRequest, opts ...grpc.CallOption) (*ListPageTreeResponse, error)
	UpdatePage(ctx context.Context, in *UpdatePageRequest, opts ...grpc.CallOption) (*UpdatePageResponse, error)
	DeletePage(ctx context.Context, in *DeletePageRequest, opts ...grpc.CallOption) (*DeletePageResponse, error)
	AddComponent(ctx context.Context, in *AddComponentRequest, opts ...grpc.CallOption) (*AddComponentResponse, error)
	RemoveComponent(ctx context.Context, in *RemoveComponentRequest, opts ...grpc.CallOption) (*PageResponse, error)
	ReorderComponents(ctx context.Context, in *ReorderComponentsRequest, opts ...grpc.CallOption) (*PageResponse, error)
	SetComponentProperties(ctx context.Context, in *SetComponentPropertiesRequest, opts ...grpc.CallOption) (*PageResponse, error)
	SetSlug(ctx context.Context, in *SetSlugRequest, opts ...grpc.CallOption) (*PageResponse, error)
	CheckSlug(ctx context.Context, in *CheckSlugRequest, opts ...grpc.CallOption) (*CheckSlugResponse, error)
	SetParent(ctx context.Context, in *SetParentRequest, opts ...grpc.CallOption) (*PageResponse, error)
	RenderPage(ctx context.Context, in *RenderPageRequest, opts ...grpc.CallOption) (*RenderPageResponse, error)
	ListPageRevisions(ctx context.Context, in *ListPageRevisionsRequest, opts ...grpc.CallOption) (*ListPageRevisionsResponse, error)
}

type pageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPageServiceClient(cc grpc.ClientConnInterface) PageServiceClient {
	return &pageServiceClient{cc}
}

func (c *pageServiceClient) CreatePage(ctx context.Context, in *CreatePageRequest, opts ...grpc.CallOption) (*CreatePageResponse, error) {
	return invoke[CreatePageResponse](ctx, c.cc, PageService_CreatePage_FullMethodName, in, opts)
}

func (c *pageServiceClient) GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*GetPageResponse, error) {
	return invoke[GetPageResponse](ctx, c.cc, PageService_GetPage_FullMethodName, in, opts)
}

func (c *pageServiceClient) GetPageBySlug(ctx context.Context, in *GetPageBySlugRequest, opts ...grpc.CallOption) (*GetPageResponse, error) {
	return invoke[GetPageResponse](ctx, c.cc, PageService_GetPageBySlug_FullMethodName, in, opts)
}

func (c *pageServiceClient) ListPages(ctx context.Context, in *ListPagesRequest, opts ...grpc.CallOption) (*ListPagesResponse, error) {
	return invoke[ListPagesResponse](ctx, c.cc, PageService_ListPages_FullMethodName, in, opts)
}

func (c *pageServiceClient) ListPageTree(ctx context.Context, in *ListPageTreeRequest, opts ...grpc.CallOption) (*ListPageTreeResponse, error) {
	return invoke[ListPageTreeResponse](ctx, c.cc, PageService_ListPageTree_FullMethodName, in, opts)
}

func (c *pageServiceClient) UpdatePage(ctx context.Context, in *UpdatePageRequest, opts ...grpc.CallOption) (*UpdatePageResponse, error) {
	return invoke[UpdatePageResponse](ctx, c.cc, PageService_UpdatePage_FullMethodName, in, opts)
}

func (c *pageServiceClient) DeletePage(ctx context.Context, in *DeletePageRequest, opts ...grpc.CallOption) (*DeletePageResponse, error) {
	return invoke[DeletePageResponse](ctx, c.cc, PageService_DeletePage_FullMethodName, in, opts)
}

func (c *pageServiceClient) AddComponent(ctx context.Context, in *AddComponentRequest, opts ...grpc.CallOption) (*AddComponentResponse, error) {
	return invoke[AddComponentResponse](ctx, c.cc, PageService_AddComponent_FullMethodName, in, opts)
}

func (c *pageServiceClient) RemoveComponent(ctx context.Context, in *RemoveComponentRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, PageService_RemoveComponent_FullMethodName, in, opts)
}

func (c *pageServiceClient) ReorderComponents(ctx context.Context, in *ReorderComponentsRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, PageService_ReorderComponents_FullMethodName, in, opts)
}

func (c *pageServiceClient) SetComponentProperties(ctx context.Context, in *SetComponentPropertiesRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, PageService_SetComponentProperties_FullMethodName, in, opts)
}

func (c *pageServiceClient) SetSlug(ctx context.Context, in *SetSlugRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, PageService_SetSlug_FullMethodName, in, opts)
}

func (c *pageServiceClient) CheckSlug(ctx context.Context, in *CheckSlugRequest, opts ...grpc.CallOption) (*CheckSlugResponse, error) {
	return invoke[CheckSlugResponse](ctx, c.cc, PageService_CheckSlug_FullMethodName, in, opts)
}

func (c *pageServiceClient) SetParent(ctx context.Context, in *SetParentRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, PageService_SetParent_FullMethodName, in, opts)
}

func (c *pageServiceClient) RenderPage(ctx context.Context, in *RenderPageRequest, opts ...grpc.CallOption) (*RenderPageResponse, error) {
	return invoke[RenderPageResponse](ctx, c.cc, PageService_RenderPage_FullMethodName, in, opts)
}

func (c *pageServiceClient) ListPageRevisions(ctx context.Context, in *ListPageRevisionsRequest, opts ...grpc.CallOption) (*ListPageRevisionsResponse, error) {
	return invoke[ListPageRevisionsResponse](ctx, c.cc, PageService_ListPageRevisions_FullMethodName, in, opts)
}
