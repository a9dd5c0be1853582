package pagebuilder

import (
	"io"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client interface {
	io.Closer
	v1.PageServiceClient
	v1.ComponentServiceClient
	v1.SiteServiceClient
}

type client struct {
	conn *grpc.ClientConn
	v1.PageServiceClient
	v1.ComponentServiceClient
	v1.SiteServiceClient
}

// NewClient connects to the grpc server at addr, e.g. "localhost:4020".
func NewClient(addr string) (Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &client{
		conn:                   conn,
		PageServiceClient:      v1.NewPageServiceClient(conn),
		ComponentServiceClient: v1.NewComponentServiceClient(conn),
		SiteServiceClient:      v1.NewSiteServiceClient(conn),
	}, nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
