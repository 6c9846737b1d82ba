// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: stableledger/admin/v1/admin.proto

package adminv1

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
	AdminService_CreateCollateral_FullMethodName   = "/stableledger.admin.v1.AdminService/CreateCollateral"
	AdminService_EditCollateral_FullMethodName     = "/stableledger.admin.v1.AdminService/EditCollateral"
	AdminService_SetPrice_FullMethodName           = "/stableledger.admin.v1.AdminService/SetPrice"
	AdminService_SetParameters_FullMethodName      = "/stableledger.admin.v1.AdminService/SetParameters"
	AdminService_SetStops_FullMethodName           = "/stableledger.admin.v1.AdminService/SetStops"
	AdminService_CreateBorrower_FullMethodName     = "/stableledger.admin.v1.AdminService/CreateBorrower"
	AdminService_EditBorrower_FullMethodName       = "/stableledger.admin.v1.AdminService/EditBorrower"
	AdminService_LinkBorrower_FullMethodName       = "/stableledger.admin.v1.AdminService/LinkBorrower"
	AdminService_UnlinkBorrower_FullMethodName     = "/stableledger.admin.v1.AdminService/UnlinkBorrower"
	AdminService_FreeMint_FullMethodName           = "/stableledger.admin.v1.AdminService/FreeMint"
	AdminService_BurnSupply_FullMethodName         = "/stableledger.admin.v1.AdminService/BurnSupply"
	AdminService_TakeSnapshot_FullMethodName       = "/stableledger.admin.v1.AdminService/TakeSnapshot"
	AdminService_RebuildProjections_FullMethodName = "/stableledger.admin.v1.AdminService/RebuildProjections"
	AdminService_VerifyIntegrity_FullMethodName    = "/stableledger.admin.v1.AdminService/VerifyIntegrity"
	AdminService_GetEventLogInfo_FullMethodName    = "/stableledger.admin.v1.AdminService/GetEventLogInfo"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService carries governance and operational commands. All decimal
// fields are strings.
type AdminServiceClient interface {
	CreateCollateral(ctx context.Context, in *CreateCollateralRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	EditCollateral(ctx context.Context, in *EditCollateralRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	SetPrice(ctx context.Context, in *SetPriceRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	SetParameters(ctx context.Context, in *SetParametersRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	SetStops(ctx context.Context, in *SetStopsRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	CreateBorrower(ctx context.Context, in *BorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	EditBorrower(ctx context.Context, in *BorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	LinkBorrower(ctx context.Context, in *LinkBorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	UnlinkBorrower(ctx context.Context, in *LinkBorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	FreeMint(ctx context.Context, in *SupplyRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	BurnSupply(ctx context.Context, in *SupplyRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error)
	TakeSnapshot(ctx context.Context, in *TakeSnapshotRequest, opts ...grpc.CallOption) (*TakeSnapshotResponse, error)
	RebuildProjections(ctx context.Context, in *RebuildProjectionsRequest, opts ...grpc.CallOption) (*RebuildProjectionsResponse, error)
	VerifyIntegrity(ctx context.Context, in *VerifyIntegrityRequest, opts ...grpc.CallOption) (*VerifyIntegrityResponse, error)
	GetEventLogInfo(ctx context.Context, in *GetEventLogInfoRequest, opts ...grpc.CallOption) (*GetEventLogInfoResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) CreateCollateral(ctx context.Context, in *CreateCollateralRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_CreateCollateral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) EditCollateral(ctx context.Context, in *EditCollateralRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_EditCollateral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetPrice(ctx context.Context, in *SetPriceRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_SetPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetParameters(ctx context.Context, in *SetParametersRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_SetParameters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetStops(ctx context.Context, in *SetStopsRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_SetStops_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) CreateBorrower(ctx context.Context, in *BorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_CreateBorrower_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) EditBorrower(ctx context.Context, in *BorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_EditBorrower_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) LinkBorrower(ctx context.Context, in *LinkBorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_LinkBorrower_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) UnlinkBorrower(ctx context.Context, in *LinkBorrowerRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_UnlinkBorrower_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) FreeMint(ctx context.Context, in *SupplyRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_FreeMint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) BurnSupply(ctx context.Context, in *SupplyRequest, opts ...grpc.CallOption) (*AdminMutateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminMutateResponse)
	err := c.cc.Invoke(ctx, AdminService_BurnSupply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) TakeSnapshot(ctx context.Context, in *TakeSnapshotRequest, opts ...grpc.CallOption) (*TakeSnapshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TakeSnapshotResponse)
	err := c.cc.Invoke(ctx, AdminService_TakeSnapshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) RebuildProjections(ctx context.Context, in *RebuildProjectionsRequest, opts ...grpc.CallOption) (*RebuildProjectionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RebuildProjectionsResponse)
	err := c.cc.Invoke(ctx, AdminService_RebuildProjections_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) VerifyIntegrity(ctx context.Context, in *VerifyIntegrityRequest, opts ...grpc.CallOption) (*VerifyIntegrityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyIntegrityResponse)
	err := c.cc.Invoke(ctx, AdminService_VerifyIntegrity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) GetEventLogInfo(ctx context.Context, in *GetEventLogInfoRequest, opts ...grpc.CallOption) (*GetEventLogInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEventLogInfoResponse)
	err := c.cc.Invoke(ctx, AdminService_GetEventLogInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService carries governance and operational commands. All decimal
// fields are strings.
type AdminServiceServer interface {
	CreateCollateral(context.Context, *CreateCollateralRequest) (*AdminMutateResponse, error)
	EditCollateral(context.Context, *EditCollateralRequest) (*AdminMutateResponse, error)
	SetPrice(context.Context, *SetPriceRequest) (*AdminMutateResponse, error)
	SetParameters(context.Context, *SetParametersRequest) (*AdminMutateResponse, error)
	SetStops(context.Context, *SetStopsRequest) (*AdminMutateResponse, error)
	CreateBorrower(context.Context, *BorrowerRequest) (*AdminMutateResponse, error)
	EditBorrower(context.Context, *BorrowerRequest) (*AdminMutateResponse, error)
	LinkBorrower(context.Context, *LinkBorrowerRequest) (*AdminMutateResponse, error)
	UnlinkBorrower(context.Context, *LinkBorrowerRequest) (*AdminMutateResponse, error)
	FreeMint(context.Context, *SupplyRequest) (*AdminMutateResponse, error)
	BurnSupply(context.Context, *SupplyRequest) (*AdminMutateResponse, error)
	TakeSnapshot(context.Context, *TakeSnapshotRequest) (*TakeSnapshotResponse, error)
	RebuildProjections(context.Context, *RebuildProjectionsRequest) (*RebuildProjectionsResponse, error)
	VerifyIntegrity(context.Context, *VerifyIntegrityRequest) (*VerifyIntegrityResponse, error)
	GetEventLogInfo(context.Context, *GetEventLogInfoRequest) (*GetEventLogInfoResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) CreateCollateral(context.Context, *CreateCollateralRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCollateral not implemented")
}
func (UnimplementedAdminServiceServer) EditCollateral(context.Context, *EditCollateralRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditCollateral not implemented")
}
func (UnimplementedAdminServiceServer) SetPrice(context.Context, *SetPriceRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetPrice not implemented")
}
func (UnimplementedAdminServiceServer) SetParameters(context.Context, *SetParametersRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetParameters not implemented")
}
func (UnimplementedAdminServiceServer) SetStops(context.Context, *SetStopsRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetStops not implemented")
}
func (UnimplementedAdminServiceServer) CreateBorrower(context.Context, *BorrowerRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBorrower not implemented")
}
func (UnimplementedAdminServiceServer) EditBorrower(context.Context, *BorrowerRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditBorrower not implemented")
}
func (UnimplementedAdminServiceServer) LinkBorrower(context.Context, *LinkBorrowerRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LinkBorrower not implemented")
}
func (UnimplementedAdminServiceServer) UnlinkBorrower(context.Context, *LinkBorrowerRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnlinkBorrower not implemented")
}
func (UnimplementedAdminServiceServer) FreeMint(context.Context, *SupplyRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FreeMint not implemented")
}
func (UnimplementedAdminServiceServer) BurnSupply(context.Context, *SupplyRequest) (*AdminMutateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BurnSupply not implemented")
}
func (UnimplementedAdminServiceServer) TakeSnapshot(context.Context, *TakeSnapshotRequest) (*TakeSnapshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TakeSnapshot not implemented")
}
func (UnimplementedAdminServiceServer) RebuildProjections(context.Context, *RebuildProjectionsRequest) (*RebuildProjectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RebuildProjections not implemented")
}
func (UnimplementedAdminServiceServer) VerifyIntegrity(context.Context, *VerifyIntegrityRequest) (*VerifyIntegrityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyIntegrity not implemented")
}
func (UnimplementedAdminServiceServer) GetEventLogInfo(context.Context, *GetEventLogInfoRequest) (*GetEventLogInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEventLogInfo not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call pancis, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_CreateCollateral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCollateralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CreateCollateral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CreateCollateral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CreateCollateral(ctx, req.(*CreateCollateralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_EditCollateral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EditCollateralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).EditCollateral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_EditCollateral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).EditCollateral(ctx, req.(*EditCollateralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetPrice(ctx, req.(*SetPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetParameters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetParametersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetParameters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetParameters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetParameters(ctx, req.(*SetParametersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetStops_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetStopsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetStops(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetStops_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetStops(ctx, req.(*SetStopsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_CreateBorrower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BorrowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).CreateBorrower(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_CreateBorrower_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).CreateBorrower(ctx, req.(*BorrowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_EditBorrower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BorrowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).EditBorrower(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_EditBorrower_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).EditBorrower(ctx, req.(*BorrowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_LinkBorrower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LinkBorrowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).LinkBorrower(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_LinkBorrower_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).LinkBorrower(ctx, req.(*LinkBorrowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_UnlinkBorrower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LinkBorrowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).UnlinkBorrower(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_UnlinkBorrower_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).UnlinkBorrower(ctx, req.(*LinkBorrowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_FreeMint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SupplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).FreeMint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_FreeMint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).FreeMint(ctx, req.(*SupplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_BurnSupply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SupplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).BurnSupply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_BurnSupply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).BurnSupply(ctx, req.(*SupplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_TakeSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TakeSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).TakeSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_TakeSnapshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).TakeSnapshot(ctx, req.(*TakeSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_RebuildProjections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RebuildProjectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).RebuildProjections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_RebuildProjections_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).RebuildProjections(ctx, req.(*RebuildProjectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_VerifyIntegrity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyIntegrityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).VerifyIntegrity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_VerifyIntegrity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).VerifyIntegrity(ctx, req.(*VerifyIntegrityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_GetEventLogInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEventLogInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).GetEventLogInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_GetEventLogInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).GetEventLogInfo(ctx, req.(*GetEventLogInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stableledger.admin.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCollateral",
			Handler:    _AdminService_CreateCollateral_Handler,
		},
		{
			MethodName: "EditCollateral",
			Handler:    _AdminService_EditCollateral_Handler,
		},
		{
			MethodName: "SetPrice",
			Handler:    _AdminService_SetPrice_Handler,
		},
		{
			MethodName: "SetParameters",
			Handler:    _AdminService_SetParameters_Handler,
		},
		{
			MethodName: "SetStops",
			Handler:    _AdminService_SetStops_Handler,
		},
		{
			MethodName: "CreateBorrower",
			Handler:    _AdminService_CreateBorrower_Handler,
		},
		{
			MethodName: "EditBorrower",
			Handler:    _AdminService_EditBorrower_Handler,
		},
		{
			MethodName: "LinkBorrower",
			Handler:    _AdminService_LinkBorrower_Handler,
		},
		{
			MethodName: "UnlinkBorrower",
			Handler:    _AdminService_UnlinkBorrower_Handler,
		},
		{
			MethodName: "FreeMint",
			Handler:    _AdminService_FreeMint_Handler,
		},
		{
			MethodName: "BurnSupply",
			Handler:    _AdminService_BurnSupply_Handler,
		},
		{
			MethodName: "TakeSnapshot",
			Handler:    _AdminService_TakeSnapshot_Handler,
		},
		{
			MethodName: "RebuildProjections",
			Handler:    _AdminService_RebuildProjections_Handler,
		},
		{
			MethodName: "VerifyIntegrity",
			Handler:    _AdminService_VerifyIntegrity_Handler,
		},
		{
			MethodName: "GetEventLogInfo",
			Handler:    _AdminService_GetEventLogInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stableledger/admin/v1/admin.proto",
}
