// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: stableledger/ops/v1/ops.proto

package opsv1

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
	OpsService_OpenPosition_FullMethodName               = "/stableledger.ops.v1.OpsService/OpenPosition"
	OpsService_ClosePosition_FullMethodName              = "/stableledger.ops.v1.OpsService/ClosePosition"
	OpsService_TopUpCollateral_FullMethodName            = "/stableledger.ops.v1.OpsService/TopUpCollateral"
	OpsService_RemoveCollateral_FullMethodName           = "/stableledger.ops.v1.OpsService/RemoveCollateral"
	OpsService_BorrowMore_FullMethodName                 = "/stableledger.ops.v1.OpsService/BorrowMore"
	OpsService_RepayDebt_FullMethodName                  = "/stableledger.ops.v1.OpsService/RepayDebt"
	OpsService_ChangeRate_FullMethodName                 = "/stableledger.ops.v1.OpsService/ChangeRate"
	OpsService_TagIrredeemable_FullMethodName            = "/stableledger.ops.v1.OpsService/TagIrredeemable"
	OpsService_RetrieveLeftoverCollateral_FullMethodName = "/stableledger.ops.v1.OpsService/RetrieveLeftoverCollateral"
	OpsService_BurnClosedPosition_FullMethodName         = "/stableledger.ops.v1.OpsService/BurnClosedPosition"
	OpsService_Liquidate_FullMethodName                  = "/stableledger.ops.v1.OpsService/Liquidate"
	OpsService_CheckLiquidate_FullMethodName             = "/stableledger.ops.v1.OpsService/CheckLiquidate"
	OpsService_NextLiquidations_FullMethodName           = "/stableledger.ops.v1.OpsService/NextLiquidations"
	OpsService_Redeem_FullMethodName                     = "/stableledger.ops.v1.OpsService/Redeem"
	OpsService_OptimalRedeem_FullMethodName              = "/stableledger.ops.v1.OpsService/OptimalRedeem"
	OpsService_ChargeInterest_FullMethodName             = "/stableledger.ops.v1.OpsService/ChargeInterest"
)

// OpsServiceClient is the client API for OpsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// OpsService carries borrower, liquidator, and keeper commands into the
// engine. Every request carries a caller-supplied ref that doubles as
// the idempotency key; retrying with the same ref is safe.
// Decimal amounts are strings to avoid float rounding on the wire.
type OpsServiceClient interface {
	OpenPosition(ctx context.Context, in *OpenPositionRequest, opts ...grpc.CallOption) (*OpenPositionResponse, error)
	ClosePosition(ctx context.Context, in *ClosePositionRequest, opts ...grpc.CallOption) (*ClosePositionResponse, error)
	TopUpCollateral(ctx context.Context, in *TopUpCollateralRequest, opts ...grpc.CallOption) (*MutateResponse, error)
	RemoveCollateral(ctx context.Context, in *RemoveCollateralRequest, opts ...grpc.CallOption) (*MutateResponse, error)
	BorrowMore(ctx context.Context, in *BorrowMoreRequest, opts ...grpc.CallOption) (*MutateResponse, error)
	RepayDebt(ctx context.Context, in *RepayDebtRequest, opts ...grpc.CallOption) (*RepayDebtResponse, error)
	ChangeRate(ctx context.Context, in *ChangeRateRequest, opts ...grpc.CallOption) (*MutateResponse, error)
	TagIrredeemable(ctx context.Context, in *TagIrredeemableRequest, opts ...grpc.CallOption) (*TagIrredeemableResponse, error)
	RetrieveLeftoverCollateral(ctx context.Context, in *RetrieveLeftoverRequest, opts ...grpc.CallOption) (*RetrieveLeftoverResponse, error)
	BurnClosedPosition(ctx context.Context, in *BurnClosedPositionRequest, opts ...grpc.CallOption) (*MutateResponse, error)
	Liquidate(ctx context.Context, in *LiquidateRequest, opts ...grpc.CallOption) (*LiquidateResponse, error)
	CheckLiquidate(ctx context.Context, in *CheckLiquidateRequest, opts ...grpc.CallOption) (*CheckLiquidateResponse, error)
	NextLiquidations(ctx context.Context, in *NextLiquidationsRequest, opts ...grpc.CallOption) (*NextLiquidationsResponse, error)
	Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error)
	OptimalRedeem(ctx context.Context, in *OptimalRedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error)
	ChargeInterest(ctx context.Context, in *ChargeInterestRequest, opts ...grpc.CallOption) (*ChargeInterestResponse, error)
}

type opsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOpsServiceClient(cc grpc.ClientConnInterface) OpsServiceClient {
	return &opsServiceClient{cc}
}

func (c *opsServiceClient) OpenPosition(ctx context.Context, in *OpenPositionRequest, opts ...grpc.CallOption) (*OpenPositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpenPositionResponse)
	err := c.cc.Invoke(ctx, OpsService_OpenPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) ClosePosition(ctx context.Context, in *ClosePositionRequest, opts ...grpc.CallOption) (*ClosePositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClosePositionResponse)
	err := c.cc.Invoke(ctx, OpsService_ClosePosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) TopUpCollateral(ctx context.Context, in *TopUpCollateralRequest, opts ...grpc.CallOption) (*MutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutateResponse)
	err := c.cc.Invoke(ctx, OpsService_TopUpCollateral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) RemoveCollateral(ctx context.Context, in *RemoveCollateralRequest, opts ...grpc.CallOption) (*MutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutateResponse)
	err := c.cc.Invoke(ctx, OpsService_RemoveCollateral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) BorrowMore(ctx context.Context, in *BorrowMoreRequest, opts ...grpc.CallOption) (*MutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutateResponse)
	err := c.cc.Invoke(ctx, OpsService_BorrowMore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) RepayDebt(ctx context.Context, in *RepayDebtRequest, opts ...grpc.CallOption) (*RepayDebtResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RepayDebtResponse)
	err := c.cc.Invoke(ctx, OpsService_RepayDebt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) ChangeRate(ctx context.Context, in *ChangeRateRequest, opts ...grpc.CallOption) (*MutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutateResponse)
	err := c.cc.Invoke(ctx, OpsService_ChangeRate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) TagIrredeemable(ctx context.Context, in *TagIrredeemableRequest, opts ...grpc.CallOption) (*TagIrredeemableResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TagIrredeemableResponse)
	err := c.cc.Invoke(ctx, OpsService_TagIrredeemable_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) RetrieveLeftoverCollateral(ctx context.Context, in *RetrieveLeftoverRequest, opts ...grpc.CallOption) (*RetrieveLeftoverResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetrieveLeftoverResponse)
	err := c.cc.Invoke(ctx, OpsService_RetrieveLeftoverCollateral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) BurnClosedPosition(ctx context.Context, in *BurnClosedPositionRequest, opts ...grpc.CallOption) (*MutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MutateResponse)
	err := c.cc.Invoke(ctx, OpsService_BurnClosedPosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) Liquidate(ctx context.Context, in *LiquidateRequest, opts ...grpc.CallOption) (*LiquidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LiquidateResponse)
	err := c.cc.Invoke(ctx, OpsService_Liquidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) CheckLiquidate(ctx context.Context, in *CheckLiquidateRequest, opts ...grpc.CallOption) (*CheckLiquidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckLiquidateResponse)
	err := c.cc.Invoke(ctx, OpsService_CheckLiquidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) NextLiquidations(ctx context.Context, in *NextLiquidationsRequest, opts ...grpc.CallOption) (*NextLiquidationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NextLiquidationsResponse)
	err := c.cc.Invoke(ctx, OpsService_NextLiquidations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RedeemResponse)
	err := c.cc.Invoke(ctx, OpsService_Redeem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) OptimalRedeem(ctx context.Context, in *OptimalRedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RedeemResponse)
	err := c.cc.Invoke(ctx, OpsService_OptimalRedeem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *opsServiceClient) ChargeInterest(ctx context.Context, in *ChargeInterestRequest, opts ...grpc.CallOption) (*ChargeInterestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ChargeInterestResponse)
	err := c.cc.Invoke(ctx, OpsService_ChargeInterest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OpsServiceServer is the server API for OpsService service.
// All implementations must embed UnimplementedOpsServiceServer
// for forward compatibility.
//
// OpsService carries borrower, liquidator, and keeper commands into the
// engine. Every request carries a caller-supplied ref that doubles as
// the idempotency key; retrying with the same ref is safe.
// Decimal amounts are strings to avoid float rounding on the wire.
type OpsServiceServer interface {
	OpenPosition(context.Context, *OpenPositionRequest) (*OpenPositionResponse, error)
	ClosePosition(context.Context, *ClosePositionRequest) (*ClosePositionResponse, error)
	TopUpCollateral(context.Context, *TopUpCollateralRequest) (*MutateResponse, error)
	RemoveCollateral(context.Context, *RemoveCollateralRequest) (*MutateResponse, error)
	BorrowMore(context.Context, *BorrowMoreRequest) (*MutateResponse, error)
	RepayDebt(context.Context, *RepayDebtRequest) (*RepayDebtResponse, error)
	ChangeRate(context.Context, *ChangeRateRequest) (*MutateResponse, error)
	TagIrredeemable(context.Context, *TagIrredeemableRequest) (*TagIrredeemableResponse, error)
	RetrieveLeftoverCollateral(context.Context, *RetrieveLeftoverRequest) (*RetrieveLeftoverResponse, error)
	BurnClosedPosition(context.Context, *BurnClosedPositionRequest) (*MutateResponse, error)
	Liquidate(context.Context, *LiquidateRequest) (*LiquidateResponse, error)
	CheckLiquidate(context.Context, *CheckLiquidateRequest) (*CheckLiquidateResponse, error)
	NextLiquidations(context.Context, *NextLiquidationsRequest) (*NextLiquidationsResponse, error)
	Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error)
	OptimalRedeem(context.Context, *OptimalRedeemRequest) (*RedeemResponse, error)
	ChargeInterest(context.Context, *ChargeInterestRequest) (*ChargeInterestResponse, error)
	mustEmbedUnimplementedOpsServiceServer()
}

// UnimplementedOpsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOpsServiceServer struct{}

func (UnimplementedOpsServiceServer) OpenPosition(context.Context, *OpenPositionRequest) (*OpenPositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenPosition not implemented")
}
func (UnimplementedOpsServiceServer) ClosePosition(context.Context, *ClosePositionRequest) (*ClosePositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClosePosition not implemented")
}
func (UnimplementedOpsServiceServer) TopUpCollateral(context.Context, *TopUpCollateralRequest) (*MutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TopUpCollateral not implemented")
}
func (UnimplementedOpsServiceServer) RemoveCollateral(context.Context, *RemoveCollateralRequest) (*MutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveCollateral not implemented")
}
func (UnimplementedOpsServiceServer) BorrowMore(context.Context, *BorrowMoreRequest) (*MutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BorrowMore not implemented")
}
func (UnimplementedOpsServiceServer) RepayDebt(context.Context, *RepayDebtRequest) (*RepayDebtResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RepayDebt not implemented")
}
func (UnimplementedOpsServiceServer) ChangeRate(context.Context, *ChangeRateRequest) (*MutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeRate not implemented")
}
func (UnimplementedOpsServiceServer) TagIrredeemable(context.Context, *TagIrredeemableRequest) (*TagIrredeemableResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TagIrredeemable not implemented")
}
func (UnimplementedOpsServiceServer) RetrieveLeftoverCollateral(context.Context, *RetrieveLeftoverRequest) (*RetrieveLeftoverResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RetrieveLeftoverCollateral not implemented")
}
func (UnimplementedOpsServiceServer) BurnClosedPosition(context.Context, *BurnClosedPositionRequest) (*MutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BurnClosedPosition not implemented")
}
func (UnimplementedOpsServiceServer) Liquidate(context.Context, *LiquidateRequest) (*LiquidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Liquidate not implemented")
}
func (UnimplementedOpsServiceServer) CheckLiquidate(context.Context, *CheckLiquidateRequest) (*CheckLiquidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckLiquidate not implemented")
}
func (UnimplementedOpsServiceServer) NextLiquidations(context.Context, *NextLiquidationsRequest) (*NextLiquidationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NextLiquidations not implemented")
}
func (UnimplementedOpsServiceServer) Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Redeem not implemented")
}
func (UnimplementedOpsServiceServer) OptimalRedeem(context.Context, *OptimalRedeemRequest) (*RedeemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OptimalRedeem not implemented")
}
func (UnimplementedOpsServiceServer) ChargeInterest(context.Context, *ChargeInterestRequest) (*ChargeInterestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChargeInterest not implemented")
}
func (UnimplementedOpsServiceServer) mustEmbedUnimplementedOpsServiceServer() {}
func (UnimplementedOpsServiceServer) testEmbeddedByValue()                    {}

// UnsafeOpsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OpsServiceServer will
// result in compilation errors.
type UnsafeOpsServiceServer interface {
	mustEmbedUnimplementedOpsServiceServer()
}

func RegisterOpsServiceServer(s grpc.ServiceRegistrar, srv OpsServiceServer) {
	// If the following call pancis, it indicates UnimplementedOpsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OpsService_ServiceDesc, srv)
}

func _OpsService_OpenPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).OpenPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_OpenPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).OpenPosition(ctx, req.(*OpenPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_ClosePosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClosePositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).ClosePosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_ClosePosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).ClosePosition(ctx, req.(*ClosePositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_TopUpCollateral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TopUpCollateralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).TopUpCollateral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_TopUpCollateral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).TopUpCollateral(ctx, req.(*TopUpCollateralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_RemoveCollateral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveCollateralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).RemoveCollateral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_RemoveCollateral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).RemoveCollateral(ctx, req.(*RemoveCollateralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_BorrowMore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BorrowMoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).BorrowMore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_BorrowMore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).BorrowMore(ctx, req.(*BorrowMoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_RepayDebt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RepayDebtRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).RepayDebt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_RepayDebt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).RepayDebt(ctx, req.(*RepayDebtRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_ChangeRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).ChangeRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_ChangeRate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).ChangeRate(ctx, req.(*ChangeRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_TagIrredeemable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TagIrredeemableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).TagIrredeemable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_TagIrredeemable_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).TagIrredeemable(ctx, req.(*TagIrredeemableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_RetrieveLeftoverCollateral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetrieveLeftoverRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).RetrieveLeftoverCollateral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_RetrieveLeftoverCollateral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).RetrieveLeftoverCollateral(ctx, req.(*RetrieveLeftoverRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_BurnClosedPosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BurnClosedPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).BurnClosedPosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_BurnClosedPosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).BurnClosedPosition(ctx, req.(*BurnClosedPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_Liquidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LiquidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).Liquidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_Liquidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).Liquidate(ctx, req.(*LiquidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_CheckLiquidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckLiquidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).CheckLiquidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_CheckLiquidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).CheckLiquidate(ctx, req.(*CheckLiquidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_NextLiquidations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NextLiquidationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).NextLiquidations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_NextLiquidations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).NextLiquidations(ctx, req.(*NextLiquidationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_Redeem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RedeemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).Redeem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_Redeem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).Redeem(ctx, req.(*RedeemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_OptimalRedeem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OptimalRedeemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).OptimalRedeem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_OptimalRedeem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).OptimalRedeem(ctx, req.(*OptimalRedeemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OpsService_ChargeInterest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChargeInterestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OpsServiceServer).ChargeInterest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OpsService_ChargeInterest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OpsServiceServer).ChargeInterest(ctx, req.(*ChargeInterestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OpsService_ServiceDesc is the grpc.ServiceDesc for OpsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OpsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stableledger.ops.v1.OpsService",
	HandlerType: (*OpsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "OpenPosition",
			Handler:    _OpsService_OpenPosition_Handler,
		},
		{
			MethodName: "ClosePosition",
			Handler:    _OpsService_ClosePosition_Handler,
		},
		{
			MethodName: "TopUpCollateral",
			Handler:    _OpsService_TopUpCollateral_Handler,
		},
		{
			MethodName: "RemoveCollateral",
			Handler:    _OpsService_RemoveCollateral_Handler,
		},
		{
			MethodName: "BorrowMore",
			Handler:    _OpsService_BorrowMore_Handler,
		},
		{
			MethodName: "RepayDebt",
			Handler:    _OpsService_RepayDebt_Handler,
		},
		{
			MethodName: "ChangeRate",
			Handler:    _OpsService_ChangeRate_Handler,
		},
		{
			MethodName: "TagIrredeemable",
			Handler:    _OpsService_TagIrredeemable_Handler,
		},
		{
			MethodName: "RetrieveLeftoverCollateral",
			Handler:    _OpsService_RetrieveLeftoverCollateral_Handler,
		},
		{
			MethodName: "BurnClosedPosition",
			Handler:    _OpsService_BurnClosedPosition_Handler,
		},
		{
			MethodName: "Liquidate",
			Handler:    _OpsService_Liquidate_Handler,
		},
		{
			MethodName: "CheckLiquidate",
			Handler:    _OpsService_CheckLiquidate_Handler,
		},
		{
			MethodName: "NextLiquidations",
			Handler:    _OpsService_NextLiquidations_Handler,
		},
		{
			MethodName: "Redeem",
			Handler:    _OpsService_Redeem_Handler,
		},
		{
			MethodName: "OptimalRedeem",
			Handler:    _OpsService_OptimalRedeem_Handler,
		},
		{
			MethodName: "ChargeInterest",
			Handler:    _OpsService_ChargeInterest_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stableledger/ops/v1/ops.proto",
}
