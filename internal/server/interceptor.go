package server

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryGrpcRequestTimeInterceptor logs method, status code and duration of
// every rpc. Internal errors are logged at error level.
func UnaryGrpcRequestTimeInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		entry := logrus.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     code.String(),
			"duration": time.Since(start),
		})
		switch code {
		case codes.Internal, codes.Unknown:
			entry.Errorf("rpc failed: %v", err)
		default:
			entry.Info("rpc")
		}

		return resp, err
	}
}

// UnaryRequestTimeInterceptor times the calls the REST gateway makes on the
// local grpc endpoint.
func UnaryRequestTimeInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		logrus.WithField("method", method).Debugf("gateway call took %v", time.Since(start))
		return err
	}
}
