package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// NewGatewayMux creates the rest mux. Bodies and error envelopes go through
// the JSONPb marshaler.
func NewGatewayMux() *runtime.ServeMux {
	return runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.HTTPBodyMarshaler{
			Marshaler: &runtime.JSONPb{
				MarshalOptions: protojson.MarshalOptions{
					EmitUnpopulated: true,
				},
				UnmarshalOptions: protojson.UnmarshalOptions{
					DiscardUnknown: true,
				},
			},
		}),
	)
}

// request is an incoming rest call with its path parameters.
type request struct {
	*http.Request
	params  map[string]string
	decoder runtime.Marshaler
}

// body decodes the request body into v. An empty body leaves v untouched.
func (r request) body(v any) error {
	if r.Body == nil {
		return nil
	}
	err := r.decoder.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (r request) queryBool(name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func (r request) version() (*int64, error) {
	value := r.URL.Query().Get("version")
	if value == "" {
		return nil, nil
	}
	version, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// decodeFunc fills a request message from the rest call.
type decodeFunc[Req any] func(r request, req *Req) error

type callFunc[Req any, Resp any] func(ctx context.Context, in *Req, opts ...grpc.CallOption) (*Resp, error)

// route adapts one client call to a gateway handler.
func route[Req any, Resp any](mux *runtime.ServeMux, decode decodeFunc[Req], call callFunc[Req, Resp]) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		ctx := runtime.NewServerMetadataContext(r.Context(), runtime.ServerMetadata{})
		inbound, outbound := runtime.MarshalerForRequest(mux, r)

		req := new(Req)
		if decode != nil {
			if err := decode(request{Request: r, params: params, decoder: inbound}, req); err != nil {
				runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.InvalidArgument, err.Error()))
				return
			}
		}

		resp, err := call(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		buf, err := outbound.Marshal(resp)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.Internal, err.Error()))
			return
		}
		w.Header().Set("Content-Type", outbound.ContentType(resp))
		if _, err := w.Write(buf); err != nil {
			logrus.Errorf("error writing response: %v", err)
		}
	}
}

// RegisterGateway adds the REST routes of the v1 api to mux. Every route
// calls the grpc server through conn.
func RegisterGateway(mux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	pages := v1.NewPageServiceClient(conn)
	components := v1.NewComponentServiceClient(conn)
	site := v1.NewSiteServiceClient(conn)

	// later routes are matched first, fixed segments go after the
	// parameterized routes they overlap
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{"POST", "/v1/pages", route(mux, func(r request, req *v1.CreatePageRequest) error {
			return r.body(req)
		}, pages.CreatePage)},
		{"GET", "/v1/pages", route(mux, func(r request, req *v1.ListPagesRequest) error {
			var err error
			req.ParentId = r.URL.Query().Get("parentId")
			if req.RootsOnly, err = r.queryBool("rootsOnly"); err != nil {
				return err
			}
			req.IncludeDeleted, err = r.queryBool("includeDeleted")
			return err
		}, pages.ListPages)},
		{"GET", "/v1/pages/{id}", route(mux, func(r request, req *v1.GetPageRequest) error {
			var err error
			req.Id = r.params["id"]
			req.IncludeDeleted, err = r.queryBool("includeDeleted")
			return err
		}, pages.GetPage)},
		{"GET", "/v1/pages/tree", route(mux, func(r request, req *v1.ListPageTreeRequest) error {
			var err error
			req.IncludeDeleted, err = r.queryBool("includeDeleted")
			return err
		}, pages.ListPageTree)},
		{"GET", "/v1/pages/slug/{slug}", route(mux, func(r request, req *v1.GetPageBySlugRequest) error {
			req.Slug = r.params["slug"]
			return nil
		}, pages.GetPageBySlug)},
		{"PUT", "/v1/pages/{id}", route(mux, func(r request, req *v1.UpdatePageRequest) error {
			err := r.body(req)
			req.Id = r.params["id"]
			return err
		}, pages.UpdatePage)},
		{"DELETE", "/v1/pages/{id}", route(mux, func(r request, req *v1.DeletePageRequest) error {
			var err error
			req.Id = r.params["id"]
			req.Version, err = r.version()
			return err
		}, pages.DeletePage)},
		{"POST", "/v1/pages/{id}/components", route(mux, func(r request, req *v1.AddComponentRequest) error {
			err := r.body(req)
			req.PageId = r.params["id"]
			return err
		}, pages.AddComponent)},
		{"DELETE", "/v1/pages/{id}/components/{instance_id}", route(mux, func(r request, req *v1.RemoveComponentRequest) error {
			var err error
			req.PageId = r.params["id"]
			req.InstanceId = r.params["instance_id"]
			req.Version, err = r.version()
			return err
		}, pages.RemoveComponent)},
		{"PUT", "/v1/pages/{id}/components/{instance_id}", route(mux, func(r request, req *v1.SetComponentPropertiesRequest) error {
			err := r.body(req)
			req.PageId = r.params["id"]
			req.InstanceId = r.params["instance_id"]
			return err
		}, pages.SetComponentProperties)},
		{"POST", "/v1/pages/{id}/components/reorder", route(mux, func(r request, req *v1.ReorderComponentsRequest) error {
			err := r.body(req)
			req.PageId = r.params["id"]
			return err
		}, pages.ReorderComponents)},
		{"PUT", "/v1/pages/{id}/slug", route(mux, func(r request, req *v1.SetSlugRequest) error {
			err := r.body(req)
			req.PageId = r.params["id"]
			return err
		}, pages.SetSlug)},
		{"PUT", "/v1/pages/{id}/parent", route(mux, func(r request, req *v1.SetParentRequest) error {
			err := r.body(req)
			req.PageId = r.params["id"]
			return err
		}, pages.SetParent)},
		{"GET", "/v1/pages/{id}/revisions", route(mux, func(r request, req *v1.ListPageRevisionsRequest) error {
			req.PageId = r.params["id"]
			return nil
		}, pages.ListPageRevisions)},
		{"GET", "/v1/slugs/{slug}", route(mux, func(r request, req *v1.CheckSlugRequest) error {
			req.Slug = r.params["slug"]
			req.ExcludeId = r.URL.Query().Get("excludeId")
			return nil
		}, pages.CheckSlug)},
		{"GET", "/v1/render", route(mux, nil, pages.RenderPage)},
		{"GET", "/v1/render/{slug}", route(mux, func(r request, req *v1.RenderPageRequest) error {
			req.Slug = r.params["slug"]
			return nil
		}, pages.RenderPage)},
		{"GET", "/v1/components", route(mux, func(r request, req *v1.ListComponentTypesRequest) error {
			req.Category = r.URL.Query().Get("category")
			return nil
		}, components.ListComponentTypes)},
		{"GET", "/v1/components/{type_id}", route(mux, func(r request, req *v1.GetComponentTypeRequest) error {
			req.TypeId = r.params["type_id"]
			return nil
		}, components.GetComponentType)},
		{"GET", "/v1/site", route(mux, nil, site.GetSiteTheme)},
		{"PUT", "/v1/site", route(mux, func(r request, req *v1.UpdateSiteThemeRequest) error {
			return r.body(req)
		}, site.UpdateSiteTheme)},
	}

	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return err
		}
	}

	return nil
}
