// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: stableledger/query/v1/query.proto

package queryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueryService_GetPosition_FullMethodName            = "/stableledger.query.v1.QueryService/GetPosition"
	QueryService_ListPositions_FullMethodName          = "/stableledger.query.v1.QueryService/ListPositions"
	QueryService_ListCollaterals_FullMethodName        = "/stableledger.query.v1.QueryService/ListCollaterals"
	QueryService_GetSystemAccounts_FullMethodName      = "/stableledger.query.v1.QueryService/GetSystemAccounts"
	QueryService_GetRedemptionQuote_FullMethodName     = "/stableledger.query.v1.QueryService/GetRedemptionQuote"
	QueryService_ListLiquidationHistory_FullMethodName = "/stableledger.query.v1.QueryService/ListLiquidationHistory"
	QueryService_ListRedemptionHistory_FullMethodName  = "/stableledger.query.v1.QueryService/ListRedemptionHistory"
	QueryService_ListJournals_FullMethodName           = "/stableledger.query.v1.QueryService/ListJournals"
	QueryService_GetMarkedDeadline_FullMethodName      = "/stableledger.query.v1.QueryService/GetMarkedDeadline"
	QueryService_ListRatioBuckets_FullMethodName       = "/stableledger.query.v1.QueryService/ListRatioBuckets"
	QueryService_GetSystemStatus_FullMethodName        = "/stableledger.query.v1.QueryService/GetSystemStatus"
)

// QueryServiceClient is the client API for QueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryService serves reads from the projection tables. Every response
// carries as_of_sequence so callers can reason about freshness.
type QueryServiceClient interface {
	GetPosition(ctx context.Context, in *GetPositionRequest, opts ...grpc.CallOption) (*GetPositionResponse, error)
	ListPositions(ctx context.Context, in *ListPositionsRequest, opts ...grpc.CallOption) (*ListPositionsResponse, error)
	ListCollaterals(ctx context.Context, in *ListCollateralsRequest, opts ...grpc.CallOption) (*ListCollateralsResponse, error)
	GetSystemAccounts(ctx context.Context, in *GetSystemAccountsRequest, opts ...grpc.CallOption) (*GetSystemAccountsResponse, error)
	GetRedemptionQuote(ctx context.Context, in *GetRedemptionQuoteRequest, opts ...grpc.CallOption) (*GetRedemptionQuoteResponse, error)
	ListLiquidationHistory(ctx context.Context, in *ListLiquidationHistoryRequest, opts ...grpc.CallOption) (*ListLiquidationHistoryResponse, error)
	ListRedemptionHistory(ctx context.Context, in *ListRedemptionHistoryRequest, opts ...grpc.CallOption) (*ListRedemptionHistoryResponse, error)
	ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error)
	GetMarkedDeadline(ctx context.Context, in *GetMarkedDeadlineRequest, opts ...grpc.CallOption) (*GetMarkedDeadlineResponse, error)
	ListRatioBuckets(ctx context.Context, in *ListRatioBucketsRequest, opts ...grpc.CallOption) (*ListRatioBucketsResponse, error)
	GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{cc}
}

func (c *queryServiceClient) GetPosition(ctx context.Context, in *GetPositionRequest, opts ...grpc.CallOption) (*GetPositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPositionResponse)
	err := c.cc.Invoke(ctx, QueryService_GetPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListPositions(ctx context.Context, in *ListPositionsRequest, opts ...grpc.CallOption) (*ListPositionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPositionsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListPositions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListCollaterals(ctx context.Context, in *ListCollateralsRequest, opts ...grpc.CallOption) (*ListCollateralsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCollateralsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListCollaterals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetSystemAccounts(ctx context.Context, in *GetSystemAccountsRequest, opts ...grpc.CallOption) (*GetSystemAccountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSystemAccountsResponse)
	err := c.cc.Invoke(ctx, QueryService_GetSystemAccounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetRedemptionQuote(ctx context.Context, in *GetRedemptionQuoteRequest, opts ...grpc.CallOption) (*GetRedemptionQuoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRedemptionQuoteResponse)
	err := c.cc.Invoke(ctx, QueryService_GetRedemptionQuote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListLiquidationHistory(ctx context.Context, in *ListLiquidationHistoryRequest, opts ...grpc.CallOption) (*ListLiquidationHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLiquidationHistoryResponse)
	err := c.cc.Invoke(ctx, QueryService_ListLiquidationHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListRedemptionHistory(ctx context.Context, in *ListRedemptionHistoryRequest, opts ...grpc.CallOption) (*ListRedemptionHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRedemptionHistoryResponse)
	err := c.cc.Invoke(ctx, QueryService_ListRedemptionHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJournalsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListJournals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetMarkedDeadline(ctx context.Context, in *GetMarkedDeadlineRequest, opts ...grpc.CallOption) (*GetMarkedDeadlineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMarkedDeadlineResponse)
	err := c.cc.Invoke(ctx, QueryService_GetMarkedDeadline_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListRatioBuckets(ctx context.Context, in *ListRatioBucketsRequest, opts ...grpc.CallOption) (*ListRatioBucketsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRatioBucketsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListRatioBuckets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSystemStatusResponse)
	err := c.cc.Invoke(ctx, QueryService_GetSystemStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServiceServer is the server API for QueryService service.
// All implementations must embed UnimplementedQueryServiceServer
// for forward compatibility.
//
// QueryService serves reads from the projection tables. Every response
// carries as_of_sequence so callers can reason about freshness.
type QueryServiceServer interface {
	GetPosition(context.Context, *GetPositionRequest) (*GetPositionResponse, error)
	ListPositions(context.Context, *ListPositionsRequest) (*ListPositionsResponse, error)
	ListCollaterals(context.Context, *ListCollateralsRequest) (*ListCollateralsResponse, error)
	GetSystemAccounts(context.Context, *GetSystemAccountsRequest) (*GetSystemAccountsResponse, error)
	GetRedemptionQuote(context.Context, *GetRedemptionQuoteRequest) (*GetRedemptionQuoteResponse, error)
	ListLiquidationHistory(context.Context, *ListLiquidationHistoryRequest) (*ListLiquidationHistoryResponse, error)
	ListRedemptionHistory(context.Context, *ListRedemptionHistoryRequest) (*ListRedemptionHistoryResponse, error)
	ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error)
	GetMarkedDeadline(context.Context, *GetMarkedDeadlineRequest) (*GetMarkedDeadlineResponse, error)
	ListRatioBuckets(context.Context, *ListRatioBucketsRequest) (*ListRatioBucketsResponse, error)
	GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error)
	mustEmbedUnimplementedQueryServiceServer()
}

// UnimplementedQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) GetPosition(context.Context, *GetPositionRequest) (*GetPositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPosition not implemented")
}
func (UnimplementedQueryServiceServer) ListPositions(context.Context, *ListPositionsRequest) (*ListPositionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPositions not implemented")
}
func (UnimplementedQueryServiceServer) ListCollaterals(context.Context, *ListCollateralsRequest) (*ListCollateralsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCollaterals not implemented")
}
func (UnimplementedQueryServiceServer) GetSystemAccounts(context.Context, *GetSystemAccountsRequest) (*GetSystemAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemAccounts not implemented")
}
func (UnimplementedQueryServiceServer) GetRedemptionQuote(context.Context, *GetRedemptionQuoteRequest) (*GetRedemptionQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRedemptionQuote not implemented")
}
func (UnimplementedQueryServiceServer) ListLiquidationHistory(context.Context, *ListLiquidationHistoryRequest) (*ListLiquidationHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLiquidationHistory not implemented")
}
func (UnimplementedQueryServiceServer) ListRedemptionHistory(context.Context, *ListRedemptionHistoryRequest) (*ListRedemptionHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRedemptionHistory not implemented")
}
func (UnimplementedQueryServiceServer) ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJournals not implemented")
}
func (UnimplementedQueryServiceServer) GetMarkedDeadline(context.Context, *GetMarkedDeadlineRequest) (*GetMarkedDeadlineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMarkedDeadline not implemented")
}
func (UnimplementedQueryServiceServer) ListRatioBuckets(context.Context, *ListRatioBucketsRequest) (*ListRatioBucketsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRatioBuckets not implemented")
}
func (UnimplementedQueryServiceServer) GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemStatus not implemented")
}
func (UnimplementedQueryServiceServer) mustEmbedUnimplementedQueryServiceServer() {}
func (UnimplementedQueryServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryServiceServer will
// result in compilation errors.
type UnsafeQueryServiceServer interface {
	mustEmbedUnimplementedQueryServiceServer()
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	// If the following call pancis, it indicates UnimplementedQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

func _QueryService_GetPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetPosition(ctx, req.(*GetPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListPositions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPositionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListPositions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListPositions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListPositions(ctx, req.(*ListPositionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListCollaterals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCollateralsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListCollaterals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListCollaterals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListCollaterals(ctx, req.(*ListCollateralsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetSystemAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSystemAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetSystemAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetSystemAccounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetSystemAccounts(ctx, req.(*GetSystemAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetRedemptionQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRedemptionQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetRedemptionQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetRedemptionQuote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetRedemptionQuote(ctx, req.(*GetRedemptionQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListLiquidationHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLiquidationHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListLiquidationHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListLiquidationHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListLiquidationHistory(ctx, req.(*ListLiquidationHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListRedemptionHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRedemptionHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListRedemptionHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListRedemptionHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListRedemptionHistory(ctx, req.(*ListRedemptionHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListJournals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJournalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListJournals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListJournals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListJournals(ctx, req.(*ListJournalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetMarkedDeadline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMarkedDeadlineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetMarkedDeadline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetMarkedDeadline_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetMarkedDeadline(ctx, req.(*GetMarkedDeadlineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListRatioBuckets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRatioBucketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListRatioBuckets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListRatioBuckets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListRatioBuckets(ctx, req.(*ListRatioBucketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetSystemStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSystemStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetSystemStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetSystemStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetSystemStatus(ctx, req.(*GetSystemStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryService_ServiceDesc is the grpc.ServiceDesc for QueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stableledger.query.v1.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPosition",
			Handler:    _QueryService_GetPosition_Handler,
		},
		{
			MethodName: "ListPositions",
			Handler:    _QueryService_ListPositions_Handler,
		},
		{
			MethodName: "ListCollaterals",
			Handler:    _QueryService_ListCollaterals_Handler,
		},
		{
			MethodName: "GetSystemAccounts",
			Handler:    _QueryService_GetSystemAccounts_Handler,
		},
		{
			MethodName: "GetRedemptionQuote",
			Handler:    _QueryService_GetRedemptionQuote_Handler,
		},
		{
			MethodName: "ListLiquidationHistory",
			Handler:    _QueryService_ListLiquidationHistory_Handler,
		},
		{
			MethodName: "ListRedemptionHistory",
			Handler:    _QueryService_ListRedemptionHistory_Handler,
		},
		{
			MethodName: "ListJournals",
			Handler:    _QueryService_ListJournals_Handler,
		},
		{
			MethodName: "GetMarkedDeadline",
			Handler:    _QueryService_GetMarkedDeadline_Handler,
		},
		{
			MethodName: "ListRatioBuckets",
			Handler:    _QueryService_ListRatioBuckets_Handler,
		},
		{
			MethodName: "GetSystemStatus",
			Handler:    _QueryService_GetSystemStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stableledger/query/v1/query.proto",
}
