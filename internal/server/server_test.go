package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/config"
	"github.com/emrgen/pagebuilder/internal/tester"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logrus.SetLevel(logrus.ErrorLevel)
	tester.Setup()

	cfg := &config.Config{Revision: config.RevisionConfig{Keep: 5, PruneSchedule: "@every 1h"}}
	services, err := NewServices(cfg, tester.TestDB())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	grpcServer := NewGrpcServer()
	services.Register(grpcServer)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	handler, err := NewHttpHandler(services, conn)
	require.NoError(t, err)
	server := httptest.NewServer(handler)

	t.Cleanup(func() {
		server.Close()
		_ = conn.Close()
		grpcServer.Stop()
		services.Close()
	})

	return server
}

func call(t *testing.T, server *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}

	return res.StatusCode
}

func TestGateway_PageLifecycle(t *testing.T) {
	server := newTestServer(t)

	var created v1.CreatePageResponse
	code := call(t, server, "POST", "/v1/pages", v1.CreatePageRequest{Title: "Home"}, &created)
	require.Equal(t, http.StatusOK, code)
	id := created.Page.Id

	var added v1.AddComponentResponse
	code = call(t, server, "POST", "/v1/pages/"+id+"/components", v1.AddComponentRequest{TypeId: "heroBanner"}, &added)
	require.Equal(t, http.StatusOK, code)

	code = call(t, server, "PUT", "/v1/pages/"+id+"/components/"+added.Instance.InstanceId, v1.SetComponentPropertiesRequest{
		Properties: map[string]any{"title": "Book a ride"},
		Version:    &added.Page.Version,
	}, nil)
	require.Equal(t, http.StatusOK, code)

	code = call(t, server, "PUT", "/v1/pages/"+id+"/components/"+added.Instance.InstanceId, v1.SetComponentPropertiesRequest{
		Properties: map[string]any{"title": "Stale"},
		Version:    &added.Page.Version,
	}, nil)
	assert.Equal(t, http.StatusConflict, code)

	code = call(t, server, "PUT", "/v1/site", v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{
		SelectedHomePage: id,
		SiteName:         "City Cabs",
	}}, nil)
	require.Equal(t, http.StatusOK, code)

	var rendered v1.RenderPageResponse
	code = call(t, server, "GET", "/v1/render", nil, &rendered)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rendered.Instructions, 1)
	assert.Equal(t, "Book a ride", rendered.Instructions[0].MergedProperties["title"])
	assert.Equal(t, "Welcome", added.Instance.Properties["title"])

	var tree v1.ListPageTreeResponse
	code = call(t, server, "GET", "/v1/pages/tree", nil, &tree)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, tree.Entries, 1)
	assert.True(t, tree.Entries[0].Page.IsHomePage)

	var got v1.GetPageResponse
	code = call(t, server, "GET", "/v1/pages/slug/home", nil, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, got.Page.Id)

	code = call(t, server, "DELETE", "/v1/pages/"+id, nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var slug v1.CheckSlugResponse
	code = call(t, server, "GET", "/v1/slugs/Home", nil, &slug)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, slug.Available)
}

// statusBody is the error envelope written by the gateway.
type statusBody struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
	Details []any  `json:"details"`
}

func TestGateway_ContentType(t *testing.T) {
	server := newTestServer(t)

	res, err := server.Client().Get(server.URL + "/v1/components")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var list v1.ListComponentTypesResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	assert.NotEmpty(t, list.ComponentTypes)
}

func TestGateway_Errors(t *testing.T) {
	server := newTestServer(t)

	var body statusBody
	code := call(t, server, "POST", "/v1/pages", v1.CreatePageRequest{}, &body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int32(codes.InvalidArgument), body.Code)
	assert.Contains(t, body.Message, "title")
	assert.NotNil(t, body.Details)

	body = statusBody{}
	code = call(t, server, "GET", "/v1/pages/missing", nil, &body)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, int32(codes.NotFound), body.Code)

	body = statusBody{}
	code = call(t, server, "GET", "/v1/pages?rootsOnly=maybe", nil, &body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, int32(codes.InvalidArgument), body.Code)
	assert.Contains(t, body.Message, "maybe")

	code = call(t, server, "POST", "/v1/pages", v1.CreatePageRequest{Title: "Fares"}, nil)
	require.Equal(t, http.StatusOK, code)
	code = call(t, server, "POST", "/v1/pages", v1.CreatePageRequest{Title: "fares"}, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestGateway_Components(t *testing.T) {
	server := newTestServer(t)

	var list v1.ListComponentTypesResponse
	code := call(t, server, "GET", "/v1/components?category=page-specific", nil, &list)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, list.ComponentTypes)

	var ct v1.GetComponentTypeResponse
	code = call(t, server, "GET", "/v1/components/feeTable", nil, &ct)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "page-specific", ct.ComponentType.Category)

	code = call(t, server, "GET", "/v1/components/retiredSlider", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSiteHandler(t *testing.T) {
	server := newTestServer(t)

	res, err := server.Client().Get(server.URL + "/")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var created v1.CreatePageResponse
	require.Equal(t, http.StatusOK, call(t, server, "POST", "/v1/pages", v1.CreatePageRequest{
		Title: "Contact",
		Components: []*v1.ComponentInstance{
			{TypeId: "textBlock", Properties: map[string]any{"heading": "Call us"}},
		},
	}, &created))

	res, err = server.Client().Get(server.URL + "/p/contact")
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(data), "<h2>Call us</h2>")
	assert.Contains(t, string(data), "<title>Contact</title>")

	res, err = server.Client().Get(server.URL + "/p/missing")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
