// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// Full method names of quotesync.RemoteStore.
const (
	ServiceName = "quotesync.RemoteStore"

	AuthenticateMethod = "/" + ServiceName + "/Authenticate"
	FetchMethod        = "/" + ServiceName + "/Fetch"
	PushMethod         = "/" + ServiceName + "/Push"
)

// RemoteStoreServer is implemented by the gRPC handler.
type RemoteStoreServer interface {
	Authenticate(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
	Fetch(ctx context.Context, req *models.FetchRequest) (*models.Snapshot, error)
	Push(ctx context.Context, req *models.PushRequest) (*models.Snapshot, error)
}

// RegisterRemoteStoreServer registers srv on s.
func RegisterRemoteStoreServer(s grpc.ServiceRegistrar, srv RemoteStoreServer) {
	s.RegisterService(&RemoteStoreServiceDesc, srv)
}

// RemoteStoreServiceDesc describes quotesync.RemoteStore for grpc.Server.
var RemoteStoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemoteStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Authenticate", Handler: authenticateHandler},
		{MethodName: "Fetch", Handler: fetchHandler},
		{MethodName: "Push", Handler: pushHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quotesync/remote_store",
}

func authenticateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.AuthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteStoreServer).Authenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AuthenticateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteStoreServer).Authenticate(ctx, req.(*models.AuthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func fetchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FetchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteStoreServer).Fetch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FetchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteStoreServer).Fetch(ctx, req.(*models.FetchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func pushHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.PushRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RemoteStoreServer).Push(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PushMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RemoteStoreServer).Push(ctx, req.(*models.PushRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RemoteStoreClient calls quotesync.RemoteStore over a client connection.
type RemoteStoreClient struct {
	cc grpc.ClientConnInterface
}

// NewRemoteStoreClient returns a client for cc. Every call uses the JSON
// codec.
func NewRemoteStoreClient(cc grpc.ClientConnInterface) *RemoteStoreClient {
	return &RemoteStoreClient{cc: cc}
}

func (c *RemoteStoreClient) Authenticate(ctx context.Context, in *models.AuthRequest, opts ...grpc.CallOption) (*models.AuthResponse, error) {
	out := new(models.AuthResponse)
	if err := c.cc.Invoke(ctx, AuthenticateMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RemoteStoreClient) Fetch(ctx context.Context, in *models.FetchRequest, opts ...grpc.CallOption) (*models.Snapshot, error) {
	out := new(models.Snapshot)
	if err := c.cc.Invoke(ctx, FetchMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RemoteStoreClient) Push(ctx context.Context, in *models.PushRequest, opts ...grpc.CallOption) (*models.Snapshot, error) {
	out := new(models.Snapshot)
	if err := c.cc.Invoke(ctx, PushMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSON(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
