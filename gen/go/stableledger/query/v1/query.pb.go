// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stableledger/query/v1/query.proto

package queryv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Position struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PositionId         string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Collateral         string                 `protobuf:"bytes,2,opt,name=collateral,proto3" json:"collateral,omitempty"`
	CollateralAmount   string                 `protobuf:"bytes,3,opt,name=collateral_amount,json=collateralAmount,proto3" json:"collateral_amount,omitempty"`
	PoolDebt           string                 `protobuf:"bytes,4,opt,name=pool_debt,json=poolDebt,proto3" json:"pool_debt,omitempty"`
	Ratio              string                 `protobuf:"bytes,5,opt,name=ratio,proto3" json:"ratio,omitempty"`
	Rate               string                 `protobuf:"bytes,6,opt,name=rate,proto3" json:"rate,omitempty"`
	LastRateChangeUnix int64                  `protobuf:"varint,7,opt,name=last_rate_change_unix,json=lastRateChangeUnix,proto3" json:"last_rate_change_unix,omitempty"`
	Status             string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	BorrowerId         string                 `protobuf:"bytes,9,opt,name=borrower_id,json=borrowerId,proto3" json:"borrower_id,omitempty"`
	Version            int64                  `protobuf:"varint,10,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *Position) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *Position) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *Position) GetCollateralAmount() string {
	if x != nil {
		return x.CollateralAmount
	}
	return ""
}

func (x *Position) GetPoolDebt() string {
	if x != nil {
		return x.PoolDebt
	}
	return ""
}

func (x *Position) GetRatio() string {
	if x != nil {
		return x.Ratio
	}
	return ""
}

func (x *Position) GetRate() string {
	if x != nil {
		return x.Rate
	}
	return ""
}

func (x *Position) GetLastRateChangeUnix() int64 {
	if x != nil {
		return x.LastRateChangeUnix
	}
	return 0
}

func (x *Position) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Position) GetBorrowerId() string {
	if x != nil {
		return x.BorrowerId
	}
	return ""
}

func (x *Position) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

type GetPositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionRequest) Reset() {
	*x = GetPositionRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionRequest) ProtoMessage() {}

func (x *GetPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionRequest.ProtoReflect.Descriptor instead.
func (*GetPositionRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{1}
}

func (x *GetPositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type GetPositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Position      *Position              `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPositionResponse) Reset() {
	*x = GetPositionResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPositionResponse) ProtoMessage() {}

func (x *GetPositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPositionResponse.ProtoReflect.Descriptor instead.
func (*GetPositionResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *GetPositionResponse) GetPosition() *Position {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *GetPositionResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type ListPositionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPositionsRequest) Reset() {
	*x = ListPositionsRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPositionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPositionsRequest) ProtoMessage() {}

func (x *ListPositionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPositionsRequest.ProtoReflect.Descriptor instead.
func (*ListPositionsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *ListPositionsRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *ListPositionsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListPositionsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListPositionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Positions     []*Position            `protobuf:"bytes,1,rep,name=positions,proto3" json:"positions,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPositionsResponse) Reset() {
	*x = ListPositionsResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPositionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPositionsResponse) ProtoMessage() {}

func (x *ListPositionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPositionsResponse.ProtoReflect.Descriptor instead.
func (*ListPositionsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *ListPositionsResponse) GetPositions() []*Position {
	if x != nil {
		return x.Positions
	}
	return nil
}

func (x *ListPositionsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type Collateral struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Asset           string                 `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Mcr             string                 `protobuf:"bytes,2,opt,name=mcr,proto3" json:"mcr,omitempty"`
	UsdPrice        string                 `protobuf:"bytes,3,opt,name=usd_price,json=usdPrice,proto3" json:"usd_price,omitempty"`
	Accepted        bool                   `protobuf:"varint,4,opt,name=accepted,proto3" json:"accepted,omitempty"`
	TotalDebt       string                 `protobuf:"bytes,5,opt,name=total_debt,json=totalDebt,proto3" json:"total_debt,omitempty"`
	TotalCollateral string                 `protobuf:"bytes,6,opt,name=total_collateral,json=totalCollateral,proto3" json:"total_collateral,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Collateral) Reset() {
	*x = Collateral{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Collateral) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Collateral) ProtoMessage() {}

func (x *Collateral) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Collateral.ProtoReflect.Descriptor instead.
func (*Collateral) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{5}
}

func (x *Collateral) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *Collateral) GetMcr() string {
	if x != nil {
		return x.Mcr
	}
	return ""
}

func (x *Collateral) GetUsdPrice() string {
	if x != nil {
		return x.UsdPrice
	}
	return ""
}

func (x *Collateral) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *Collateral) GetTotalDebt() string {
	if x != nil {
		return x.TotalDebt
	}
	return ""
}

func (x *Collateral) GetTotalCollateral() string {
	if x != nil {
		return x.TotalCollateral
	}
	return ""
}

type ListCollateralsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCollateralsRequest) Reset() {
	*x = ListCollateralsRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCollateralsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCollateralsRequest) ProtoMessage() {}

func (x *ListCollateralsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCollateralsRequest.ProtoReflect.Descriptor instead.
func (*ListCollateralsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{6}
}

type ListCollateralsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collaterals   []*Collateral          `protobuf:"bytes,1,rep,name=collaterals,proto3" json:"collaterals,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,2,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCollateralsResponse) Reset() {
	*x = ListCollateralsResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCollateralsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCollateralsResponse) ProtoMessage() {}

func (x *ListCollateralsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCollateralsResponse.ProtoReflect.Descriptor instead.
func (*ListCollateralsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *ListCollateralsResponse) GetCollaterals() []*Collateral {
	if x != nil {
		return x.Collaterals
	}
	return nil
}

func (x *ListCollateralsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetSystemAccountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSystemAccountsRequest) Reset() {
	*x = GetSystemAccountsRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSystemAccountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSystemAccountsRequest) ProtoMessage() {}

func (x *GetSystemAccountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSystemAccountsRequest.ProtoReflect.Descriptor instead.
func (*GetSystemAccountsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *GetSystemAccountsRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

type GetSystemAccountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Vault         string                 `protobuf:"bytes,2,opt,name=vault,proto3" json:"vault,omitempty"`
	Leftovers     string                 `protobuf:"bytes,3,opt,name=leftovers,proto3" json:"leftovers,omitempty"`
	FeeEscrow     string                 `protobuf:"bytes,4,opt,name=fee_escrow,json=feeEscrow,proto3" json:"fee_escrow,omitempty"`
	AsOfSequence  int64                  `protobuf:"varint,5,opt,name=as_of_sequence,json=asOfSequence,proto3" json:"as_of_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSystemAccountsResponse) Reset() {
	*x = GetSystemAccountsResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSystemAccountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSystemAccountsResponse) ProtoMessage() {}

func (x *GetSystemAccountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSystemAccountsResponse.ProtoReflect.Descriptor instead.
func (*GetSystemAccountsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{9}
}

func (x *GetSystemAccountsResponse) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *GetSystemAccountsResponse) GetVault() string {
	if x != nil {
		return x.Vault
	}
	return ""
}

func (x *GetSystemAccountsResponse) GetLeftovers() string {
	if x != nil {
		return x.Leftovers
	}
	return ""
}

func (x *GetSystemAccountsResponse) GetFeeEscrow() string {
	if x != nil {
		return x.FeeEscrow
	}
	return ""
}

func (x *GetSystemAccountsResponse) GetAsOfSequence() int64 {
	if x != nil {
		return x.AsOfSequence
	}
	return 0
}

type GetRedemptionQuoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payment       string                 `protobuf:"bytes,1,opt,name=payment,proto3" json:"payment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRedemptionQuoteRequest) Reset() {
	*x = GetRedemptionQuoteRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRedemptionQuoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRedemptionQuoteRequest) ProtoMessage() {}

func (x *GetRedemptionQuoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRedemptionQuoteRequest.ProtoReflect.Descriptor instead.
func (*GetRedemptionQuoteRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{10}
}

func (x *GetRedemptionQuoteRequest) GetPayment() string {
	if x != nil {
		return x.Payment
	}
	return ""
}

type GetRedemptionQuoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FeeFraction   string                 `protobuf:"bytes,1,opt,name=fee_fraction,json=feeFraction,proto3" json:"fee_fraction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRedemptionQuoteResponse) Reset() {
	*x = GetRedemptionQuoteResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRedemptionQuoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRedemptionQuoteResponse) ProtoMessage() {}

func (x *GetRedemptionQuoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRedemptionQuoteResponse.ProtoReflect.Descriptor instead.
func (*GetRedemptionQuoteResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{11}
}

func (x *GetRedemptionQuoteResponse) GetFeeFraction() string {
	if x != nil {
		return x.FeeFraction
	}
	return ""
}

type LiquidationRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Sequence       int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	PositionId     string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Collateral     string                 `protobuf:"bytes,3,opt,name=collateral,proto3" json:"collateral,omitempty"`
	DebtCovered    string                 `protobuf:"bytes,4,opt,name=debt_covered,json=debtCovered,proto3" json:"debt_covered,omitempty"`
	Payout         string                 `protobuf:"bytes,5,opt,name=payout,proto3" json:"payout,omitempty"`
	Leftover       string                 `protobuf:"bytes,6,opt,name=leftover,proto3" json:"leftover,omitempty"`
	OccurredAtUnix int64                  `protobuf:"varint,7,opt,name=occurred_at_unix,json=occurredAtUnix,proto3" json:"occurred_at_unix,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *LiquidationRecord) Reset() {
	*x = LiquidationRecord{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LiquidationRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LiquidationRecord) ProtoMessage() {}

func (x *LiquidationRecord) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LiquidationRecord.ProtoReflect.Descriptor instead.
func (*LiquidationRecord) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{12}
}

func (x *LiquidationRecord) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *LiquidationRecord) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *LiquidationRecord) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *LiquidationRecord) GetDebtCovered() string {
	if x != nil {
		return x.DebtCovered
	}
	return ""
}

func (x *LiquidationRecord) GetPayout() string {
	if x != nil {
		return x.Payout
	}
	return ""
}

func (x *LiquidationRecord) GetLeftover() string {
	if x != nil {
		return x.Leftover
	}
	return ""
}

func (x *LiquidationRecord) GetOccurredAtUnix() int64 {
	if x != nil {
		return x.OccurredAtUnix
	}
	return 0
}

type ListLiquidationHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	FromSequence  int64                  `protobuf:"varint,3,opt,name=from_sequence,json=fromSequence,proto3" json:"from_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLiquidationHistoryRequest) Reset() {
	*x = ListLiquidationHistoryRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidationHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidationHistoryRequest) ProtoMessage() {}

func (x *ListLiquidationHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidationHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListLiquidationHistoryRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{13}
}

func (x *ListLiquidationHistoryRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *ListLiquidationHistoryRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListLiquidationHistoryRequest) GetFromSequence() int64 {
	if x != nil {
		return x.FromSequence
	}
	return 0
}

type ListLiquidationHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*LiquidationRecord   `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLiquidationHistoryResponse) Reset() {
	*x = ListLiquidationHistoryResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLiquidationHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLiquidationHistoryResponse) ProtoMessage() {}

func (x *ListLiquidationHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLiquidationHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListLiquidationHistoryResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{14}
}

func (x *ListLiquidationHistoryResponse) GetRecords() []*LiquidationRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type RedemptionRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Sequence       int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	PositionId     string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Collateral     string                 `protobuf:"bytes,3,opt,name=collateral,proto3" json:"collateral,omitempty"`
	PaymentUsed    string                 `protobuf:"bytes,4,opt,name=payment_used,json=paymentUsed,proto3" json:"payment_used,omitempty"`
	CollateralPaid string                 `protobuf:"bytes,5,opt,name=collateral_paid,json=collateralPaid,proto3" json:"collateral_paid,omitempty"`
	FeeUsed        string                 `protobuf:"bytes,6,opt,name=fee_used,json=feeUsed,proto3" json:"fee_used,omitempty"`
	Full           bool                   `protobuf:"varint,7,opt,name=full,proto3" json:"full,omitempty"`
	OccurredAtUnix int64                  `protobuf:"varint,8,opt,name=occurred_at_unix,json=occurredAtUnix,proto3" json:"occurred_at_unix,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RedemptionRecord) Reset() {
	*x = RedemptionRecord{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedemptionRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedemptionRecord) ProtoMessage() {}

func (x *RedemptionRecord) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedemptionRecord.ProtoReflect.Descriptor instead.
func (*RedemptionRecord) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{15}
}

func (x *RedemptionRecord) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *RedemptionRecord) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *RedemptionRecord) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *RedemptionRecord) GetPaymentUsed() string {
	if x != nil {
		return x.PaymentUsed
	}
	return ""
}

func (x *RedemptionRecord) GetCollateralPaid() string {
	if x != nil {
		return x.CollateralPaid
	}
	return ""
}

func (x *RedemptionRecord) GetFeeUsed() string {
	if x != nil {
		return x.FeeUsed
	}
	return ""
}

func (x *RedemptionRecord) GetFull() bool {
	if x != nil {
		return x.Full
	}
	return false
}

func (x *RedemptionRecord) GetOccurredAtUnix() int64 {
	if x != nil {
		return x.OccurredAtUnix
	}
	return 0
}

type ListRedemptionHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	FromSequence  int64                  `protobuf:"varint,3,opt,name=from_sequence,json=fromSequence,proto3" json:"from_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRedemptionHistoryRequest) Reset() {
	*x = ListRedemptionHistoryRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRedemptionHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRedemptionHistoryRequest) ProtoMessage() {}

func (x *ListRedemptionHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRedemptionHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListRedemptionHistoryRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{16}
}

func (x *ListRedemptionHistoryRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *ListRedemptionHistoryRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListRedemptionHistoryRequest) GetFromSequence() int64 {
	if x != nil {
		return x.FromSequence
	}
	return 0
}

type ListRedemptionHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*RedemptionRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRedemptionHistoryResponse) Reset() {
	*x = ListRedemptionHistoryResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRedemptionHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRedemptionHistoryResponse) ProtoMessage() {}

func (x *ListRedemptionHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRedemptionHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListRedemptionHistoryResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{17}
}

func (x *ListRedemptionHistoryResponse) GetRecords() []*RedemptionRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type JournalRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JournalId     string                 `protobuf:"bytes,1,opt,name=journal_id,json=journalId,proto3" json:"journal_id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	EventRef      string                 `protobuf:"bytes,3,opt,name=event_ref,json=eventRef,proto3" json:"event_ref,omitempty"`
	Sequence      int64                  `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty"`
	DebitAccount  string                 `protobuf:"bytes,5,opt,name=debit_account,json=debitAccount,proto3" json:"debit_account,omitempty"`
	CreditAccount string                 `protobuf:"bytes,6,opt,name=credit_account,json=creditAccount,proto3" json:"credit_account,omitempty"`
	Asset         string                 `protobuf:"bytes,7,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount        string                 `protobuf:"bytes,8,opt,name=amount,proto3" json:"amount,omitempty"`
	JournalType   string                 `protobuf:"bytes,9,opt,name=journal_type,json=journalType,proto3" json:"journal_type,omitempty"`
	TimestampUs   int64                  `protobuf:"varint,10,opt,name=timestamp_us,json=timestampUs,proto3" json:"timestamp_us,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JournalRecord) Reset() {
	*x = JournalRecord{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JournalRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JournalRecord) ProtoMessage() {}

func (x *JournalRecord) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JournalRecord.ProtoReflect.Descriptor instead.
func (*JournalRecord) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{18}
}

func (x *JournalRecord) GetJournalId() string {
	if x != nil {
		return x.JournalId
	}
	return ""
}

func (x *JournalRecord) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *JournalRecord) GetEventRef() string {
	if x != nil {
		return x.EventRef
	}
	return ""
}

func (x *JournalRecord) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *JournalRecord) GetDebitAccount() string {
	if x != nil {
		return x.DebitAccount
	}
	return ""
}

func (x *JournalRecord) GetCreditAccount() string {
	if x != nil {
		return x.CreditAccount
	}
	return ""
}

func (x *JournalRecord) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *JournalRecord) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *JournalRecord) GetJournalType() string {
	if x != nil {
		return x.JournalType
	}
	return ""
}

func (x *JournalRecord) GetTimestampUs() int64 {
	if x != nil {
		return x.TimestampUs
	}
	return 0
}

type ListJournalsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountPrefix string                 `protobuf:"bytes,1,opt,name=account_prefix,json=accountPrefix,proto3" json:"account_prefix,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	FromSequence  int64                  `protobuf:"varint,3,opt,name=from_sequence,json=fromSequence,proto3" json:"from_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJournalsRequest) Reset() {
	*x = ListJournalsRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJournalsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJournalsRequest) ProtoMessage() {}

func (x *ListJournalsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJournalsRequest.ProtoReflect.Descriptor instead.
func (*ListJournalsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{19}
}

func (x *ListJournalsRequest) GetAccountPrefix() string {
	if x != nil {
		return x.AccountPrefix
	}
	return ""
}

func (x *ListJournalsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListJournalsRequest) GetFromSequence() int64 {
	if x != nil {
		return x.FromSequence
	}
	return 0
}

type ListJournalsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Journals      []*JournalRecord       `protobuf:"bytes,1,rep,name=journals,proto3" json:"journals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJournalsResponse) Reset() {
	*x = ListJournalsResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJournalsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJournalsResponse) ProtoMessage() {}

func (x *ListJournalsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJournalsResponse.ProtoReflect.Descriptor instead.
func (*ListJournalsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{20}
}

func (x *ListJournalsResponse) GetJournals() []*JournalRecord {
	if x != nil {
		return x.Journals
	}
	return nil
}

type GetMarkedDeadlineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMarkedDeadlineRequest) Reset() {
	*x = GetMarkedDeadlineRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMarkedDeadlineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMarkedDeadlineRequest) ProtoMessage() {}

func (x *GetMarkedDeadlineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMarkedDeadlineRequest.ProtoReflect.Descriptor instead.
func (*GetMarkedDeadlineRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{21}
}

func (x *GetMarkedDeadlineRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type GetMarkedDeadlineResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marked        bool                   `protobuf:"varint,1,opt,name=marked,proto3" json:"marked,omitempty"`
	DeadlineUnix  int64                  `protobuf:"varint,2,opt,name=deadline_unix,json=deadlineUnix,proto3" json:"deadline_unix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMarkedDeadlineResponse) Reset() {
	*x = GetMarkedDeadlineResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMarkedDeadlineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMarkedDeadlineResponse) ProtoMessage() {}

func (x *GetMarkedDeadlineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMarkedDeadlineResponse.ProtoReflect.Descriptor instead.
func (*GetMarkedDeadlineResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{22}
}

func (x *GetMarkedDeadlineResponse) GetMarked() bool {
	if x != nil {
		return x.Marked
	}
	return false
}

func (x *GetMarkedDeadlineResponse) GetDeadlineUnix() int64 {
	if x != nil {
		return x.DeadlineUnix
	}
	return 0
}

type ListRatioBucketsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Rate          string                 `protobuf:"bytes,2,opt,name=rate,proto3" json:"rate,omitempty"` // wire rate of the tier to scan
	RatioFrom     string                 `protobuf:"bytes,3,opt,name=ratio_from,json=ratioFrom,proto3" json:"ratio_from,omitempty"`
	RatioTo       string                 `protobuf:"bytes,4,opt,name=ratio_to,json=ratioTo,proto3" json:"ratio_to,omitempty"` // exclusive; empty for unbounded
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRatioBucketsRequest) Reset() {
	*x = ListRatioBucketsRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRatioBucketsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRatioBucketsRequest) ProtoMessage() {}

func (x *ListRatioBucketsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRatioBucketsRequest.ProtoReflect.Descriptor instead.
func (*ListRatioBucketsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{23}
}

func (x *ListRatioBucketsRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *ListRatioBucketsRequest) GetRate() string {
	if x != nil {
		return x.Rate
	}
	return ""
}

func (x *ListRatioBucketsRequest) GetRatioFrom() string {
	if x != nil {
		return x.RatioFrom
	}
	return ""
}

func (x *ListRatioBucketsRequest) GetRatioTo() string {
	if x != nil {
		return x.RatioTo
	}
	return ""
}

type RatioBucket struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ratio         string                 `protobuf:"bytes,1,opt,name=ratio,proto3" json:"ratio,omitempty"`
	PositionIds   []string               `protobuf:"bytes,2,rep,name=position_ids,json=positionIds,proto3" json:"position_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RatioBucket) Reset() {
	*x = RatioBucket{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RatioBucket) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RatioBucket) ProtoMessage() {}

func (x *RatioBucket) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RatioBucket.ProtoReflect.Descriptor instead.
func (*RatioBucket) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{24}
}

func (x *RatioBucket) GetRatio() string {
	if x != nil {
		return x.Ratio
	}
	return ""
}

func (x *RatioBucket) GetPositionIds() []string {
	if x != nil {
		return x.PositionIds
	}
	return nil
}

type ListRatioBucketsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Buckets       []*RatioBucket         `protobuf:"bytes,1,rep,name=buckets,proto3" json:"buckets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRatioBucketsResponse) Reset() {
	*x = ListRatioBucketsResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRatioBucketsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRatioBucketsResponse) ProtoMessage() {}

func (x *ListRatioBucketsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRatioBucketsResponse.ProtoReflect.Descriptor instead.
func (*ListRatioBucketsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{25}
}

func (x *ListRatioBucketsResponse) GetBuckets() []*RatioBucket {
	if x != nil {
		return x.Buckets
	}
	return nil
}

type GetSystemStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSystemStatusRequest) Reset() {
	*x = GetSystemStatusRequest{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSystemStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSystemStatusRequest) ProtoMessage() {}

func (x *GetSystemStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSystemStatusRequest.ProtoReflect.Descriptor instead.
func (*GetSystemStatusRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{26}
}

type GetSystemStatusResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Sequence          int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	CirculatingSupply string                 `protobuf:"bytes,2,opt,name=circulating_supply,json=circulatingSupply,proto3" json:"circulating_supply,omitempty"`
	State             string                 `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetSystemStatusResponse) Reset() {
	*x = GetSystemStatusResponse{}
	mi := &file_stableledger_query_v1_query_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSystemStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSystemStatusResponse) ProtoMessage() {}

func (x *GetSystemStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_query_v1_query_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSystemStatusResponse.ProtoReflect.Descriptor instead.
func (*GetSystemStatusResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_query_v1_query_proto_rawDescGZIP(), []int{27}
}

func (x *GetSystemStatusResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *GetSystemStatusResponse) GetCirculatingSupply() string {
	if x != nil {
		return x.CirculatingSupply
	}
	return ""
}

func (x *GetSystemStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

var File_stableledger_query_v1_query_proto protoreflect.FileDescriptor

const file_stableledger_query_v1_query_proto_rawDesc = "" +
	"\n" +
	"!stableledger/query/v1/query.proto\x12\x15stableledger.query.v1\x1a\x1cgoogle/api/annotations.proto\"\xc5\x02\n" +
	"\bPosition\x12\x1f\n" +
	"\vposition_id\x18\x01 \x01(\tR\n" +
	"positionId\x12\x1e\n" +
	"\n" +
	"collateral\x18\x02 \x01(\tR\n" +
	"collateral\x12+\n" +
	"\x11collateral_amount\x18\x03 \x01(\tR\x10collateralAmount\x12\x1b\n" +
	"\tpool_debt\x18\x04 \x01(\tR\bpoolDebt\x12\x14\n" +
	"\x05ratio\x18\x05 \x01(\tR\x05ratio\x12\x12\n" +
	"\x04rate\x18\x06 \x01(\tR\x04rate\x121\n" +
	"\x15last_rate_change_unix\x18\a \x01(\x03R\x12lastRateChangeUnix\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1f\n" +
	"\vborrower_id\x18\t \x01(\tR\n" +
	"borrowerId\x12\x18\n" +
	"\aversion\x18\n" +
	" \x01(\x03R\aversion\"5\n" +
	"\x12GetPositionRequest\x12\x1f\n" +
	"\vposition_id\x18\x01 \x01(\tR\n" +
	"positionId\"x\n" +
	"\x13GetPositionResponse\x12;\n" +
	"\bposition\x18\x01 \x01(\v2\x1f.stableledger.query.v1.PositionR\bposition\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\"k\n" +
	"\x14ListPositionsRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"|\n" +
	"\x15ListPositionsResponse\x12=\n" +
	"\tpositions\x18\x01 \x03(\v2\x1f.stableledger.query.v1.PositionR\tpositions\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\"\xb7\x01\n" +
	"\n" +
	"Collateral\x12\x14\n" +
	"\x05asset\x18\x01 \x01(\tR\x05asset\x12\x10\n" +
	"\x03mcr\x18\x02 \x01(\tR\x03mcr\x12\x1b\n" +
	"\tusd_price\x18\x03 \x01(\tR\busdPrice\x12\x1a\n" +
	"\baccepted\x18\x04 \x01(\bR\baccepted\x12\x1d\n" +
	"\n" +
	"total_debt\x18\x05 \x01(\tR\ttotalDebt\x12)\n" +
	"\x10total_collateral\x18\x06 \x01(\tR\x0ftotalCollateral\"\x18\n" +
	"\x16ListCollateralsRequest\"\x84\x01\n" +
	"\x17ListCollateralsResponse\x12C\n" +
	"\vcollaterals\x18\x01 \x03(\v2!.stableledger.query.v1.CollateralR\vcollaterals\x12$\n" +
	"\x0eas_of_sequence\x18\x02 \x01(\x03R\fasOfSequence\":\n" +
	"\x18GetSystemAccountsRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\"\xb4\x01\n" +
	"\x19GetSystemAccountsResponse\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x14\n" +
	"\x05vault\x18\x02 \x01(\tR\x05vault\x12\x1c\n" +
	"\tleftovers\x18\x03 \x01(\tR\tleftovers\x12\x1d\n" +
	"\n" +
	"fee_escrow\x18\x04 \x01(\tR\tfeeEscrow\x12$\n" +
	"\x0eas_of_sequence\x18\x05 \x01(\x03R\fasOfSequence\"5\n" +
	"\x19GetRedemptionQuoteRequest\x12\x18\n" +
	"\apayment\x18\x01 \x01(\tR\apayment\"?\n" +
	"\x1aGetRedemptionQuoteResponse\x12!\n" +
	"\ffee_fraction\x18\x01 \x01(\tR\vfeeFraction\"\xf1\x01\n" +
	"\x11LiquidationRecord\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x1e\n" +
	"\n" +
	"collateral\x18\x03 \x01(\tR\n" +
	"collateral\x12!\n" +
	"\fdebt_covered\x18\x04 \x01(\tR\vdebtCovered\x12\x16\n" +
	"\x06payout\x18\x05 \x01(\tR\x06payout\x12\x1a\n" +
	"\bleftover\x18\x06 \x01(\tR\bleftover\x12(\n" +
	"\x10occurred_at_unix\x18\a \x01(\x03R\x0eoccurredAtUnix\"\x81\x01\n" +
	"\x1dListLiquidationHistoryRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12#\n" +
	"\rfrom_sequence\x18\x03 \x01(\x03R\ffromSequence\"d\n" +
	"\x1eListLiquidationHistoryResponse\x12B\n" +
	"\arecords\x18\x01 \x03(\v2(.stableledger.query.v1.LiquidationRecordR\arecords\"\x94\x02\n" +
	"\x10RedemptionRecord\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x1e\n" +
	"\n" +
	"collateral\x18\x03 \x01(\tR\n" +
	"collateral\x12!\n" +
	"\fpayment_used\x18\x04 \x01(\tR\vpaymentUsed\x12'\n" +
	"\x0fcollateral_paid\x18\x05 \x01(\tR\x0ecollateralPaid\x12\x19\n" +
	"\bfee_used\x18\x06 \x01(\tR\afeeUsed\x12\x12\n" +
	"\x04full\x18\a \x01(\bR\x04full\x12(\n" +
	"\x10occurred_at_unix\x18\b \x01(\x03R\x0eoccurredAtUnix\"\x80\x01\n" +
	"\x1cListRedemptionHistoryRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12#\n" +
	"\rfrom_sequence\x18\x03 \x01(\x03R\ffromSequence\"b\n" +
	"\x1dListRedemptionHistoryResponse\x12A\n" +
	"\arecords\x18\x01 \x03(\v2'.stableledger.query.v1.RedemptionRecordR\arecords\"\xc2\x02\n" +
	"\rJournalRecord\x12\x1d\n" +
	"\n" +
	"journal_id\x18\x01 \x01(\tR\tjournalId\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12\x1b\n" +
	"\tevent_ref\x18\x03 \x01(\tR\beventRef\x12\x1a\n" +
	"\bsequence\x18\x04 \x01(\x03R\bsequence\x12#\n" +
	"\rdebit_account\x18\x05 \x01(\tR\fdebitAccount\x12%\n" +
	"\x0ecredit_account\x18\x06 \x01(\tR\rcreditAccount\x12\x14\n" +
	"\x05asset\x18\a \x01(\tR\x05asset\x12\x16\n" +
	"\x06amount\x18\b \x01(\tR\x06amount\x12!\n" +
	"\fjournal_type\x18\t \x01(\tR\vjournalType\x12!\n" +
	"\ftimestamp_us\x18\n" +
	" \x01(\x03R\vtimestampUs\"~\n" +
	"\x13ListJournalsRequest\x12%\n" +
	"\x0eaccount_prefix\x18\x01 \x01(\tR\raccountPrefix\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12#\n" +
	"\rfrom_sequence\x18\x03 \x01(\x03R\ffromSequence\"X\n" +
	"\x14ListJournalsResponse\x12@\n" +
	"\bjournals\x18\x01 \x03(\v2$.stableledger.query.v1.JournalRecordR\bjournals\";\n" +
	"\x18GetMarkedDeadlineRequest\x12\x1f\n" +
	"\vposition_id\x18\x01 \x01(\tR\n" +
	"positionId\"X\n" +
	"\x19GetMarkedDeadlineResponse\x12\x16\n" +
	"\x06marked\x18\x01 \x01(\bR\x06marked\x12#\n" +
	"\rdeadline_unix\x18\x02 \x01(\x03R\fdeadlineUnix\"\x87\x01\n" +
	"\x17ListRatioBucketsRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x12\n" +
	"\x04rate\x18\x02 \x01(\tR\x04rate\x12\x1d\n" +
	"\n" +
	"ratio_from\x18\x03 \x01(\tR\tratioFrom\x12\x19\n" +
	"\bratio_to\x18\x04 \x01(\tR\aratioTo\"F\n" +
	"\vRatioBucket\x12\x14\n" +
	"\x05ratio\x18\x01 \x01(\tR\x05ratio\x12!\n" +
	"\fposition_ids\x18\x02 \x03(\tR\vpositionIds\"X\n" +
	"\x18ListRatioBucketsResponse\x12<\n" +
	"\abuckets\x18\x01 \x03(\v2\".stableledger.query.v1.RatioBucketR\abuckets\"\x18\n" +
	"\x16GetSystemStatusRequest\"z\n" +
	"\x17GetSystemStatusResponse\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\x12-\n" +
	"\x12circulating_supply\x18\x02 \x01(\tR\x11circulatingSupply\x12\x14\n" +
	"\x05state\x18\x03 \x01(\tR\x05state2\x9b\r\n" +
	"\fQueryService\x12\x89\x01\n" +
	"\vGetPosition\x12).stableledger.query.v1.GetPositionRequest\x1a*.stableledger.query.v1.GetPositionResponse\"#\x82\xd3\xe4\x93\x02\x1d\x12\x1b/v1/positions/{position_id}\x12\x81\x01\n" +
	"\rListPositions\x12+.stableledger.query.v1.ListPositionsRequest\x1a,.stableledger.query.v1.ListPositionsResponse\"\x15\x82\xd3\xe4\x93\x02\x0f\x12\r/v1/positions\x12\x89\x01\n" +
	"\x0fListCollaterals\x12-.stableledger.query.v1.ListCollateralsRequest\x1a..stableledger.query.v1.ListCollateralsResponse\"\x17\x82\xd3\xe4\x93\x02\x11\x12\x0f/v1/collaterals\x12\xa5\x01\n" +
	"\x11GetSystemAccounts\x12/.stableledger.query.v1.GetSystemAccountsRequest\x1a0.stableledger.query.v1.GetSystemAccountsResponse\"-\x82\xd3\xe4\x93\x02'\x12%/v1/collaterals/{collateral}/accounts\x12\x98\x01\n" +
	"\x12GetRedemptionQuote\x120.stableledger.query.v1.GetRedemptionQuoteRequest\x1a1.stableledger.query.v1.GetRedemptionQuoteResponse\"\x1d\x82\xd3\xe4\x93\x02\x17\x12\x15/v1/redemptions/quote\x12\xa7\x01\n" +
	"\x16ListLiquidationHistory\x124.stableledger.query.v1.ListLiquidationHistoryRequest\x1a5.stableledger.query.v1.ListLiquidationHistoryResponse\" \x82\xd3\xe4\x93\x02\x1a\x12\x18/v1/liquidations/history\x12\xa3\x01\n" +
	"\x15ListRedemptionHistory\x123.stableledger.query.v1.ListRedemptionHistoryRequest\x1a4.stableledger.query.v1.ListRedemptionHistoryResponse\"\x1f\x82\xd3\xe4\x93\x02\x19\x12\x17/v1/redemptions/history\x12}\n" +
	"\fListJournals\x12*.stableledger.query.v1.ListJournalsRequest\x1a+.stableledger.query.v1.ListJournalsResponse\"\x14\x82\xd3\xe4\x93\x02\x0e\x12\f/v1/journals\x12\xab\x01\n" +
	"\x11GetMarkedDeadline\x12/.stableledger.query.v1.GetMarkedDeadlineRequest\x1a0.stableledger.query.v1.GetMarkedDeadlineResponse\"3\x82\xd3\xe4\x93\x02-\x12+/v1/positions/{position_id}/marked-deadline\x12\xa7\x01\n" +
	"\x10ListRatioBuckets\x12..stableledger.query.v1.ListRatioBucketsRequest\x1a/.stableledger.query.v1.ListRatioBucketsResponse\"2\x82\xd3\xe4\x93\x02,\x12*/v1/collaterals/{collateral}/ratio-buckets\x12\x84\x01\n" +
	"\x0fGetSystemStatus\x12-.stableledger.query.v1.GetSystemStatusRequest\x1a..stableledger.query.v1.GetSystemStatusResponse\"\x12\x82\xd3\xe4\x93\x02\f\x12\n" +
	"/v1/statusB3Z1StableLedger/gen/go/stableledger/query/v1;queryv1b\x06proto3"

var (
	file_stableledger_query_v1_query_proto_rawDescOnce sync.Once
	file_stableledger_query_v1_query_proto_rawDescData []byte
)

func file_stableledger_query_v1_query_proto_rawDescGZIP() []byte {
	file_stableledger_query_v1_query_proto_rawDescOnce.Do(func() {
		file_stableledger_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stableledger_query_v1_query_proto_rawDesc), len(file_stableledger_query_v1_query_proto_rawDesc)))
	})
	return file_stableledger_query_v1_query_proto_rawDescData
}

var file_stableledger_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_stableledger_query_v1_query_proto_goTypes = []any{
	(*Position)(nil),                       // 0: stableledger.query.v1.Position
	(*GetPositionRequest)(nil),             // 1: stableledger.query.v1.GetPositionRequest
	(*GetPositionResponse)(nil),            // 2: stableledger.query.v1.GetPositionResponse
	(*ListPositionsRequest)(nil),           // 3: stableledger.query.v1.ListPositionsRequest
	(*ListPositionsResponse)(nil),          // 4: stableledger.query.v1.ListPositionsResponse
	(*Collateral)(nil),                     // 5: stableledger.query.v1.Collateral
	(*ListCollateralsRequest)(nil),         // 6: stableledger.query.v1.ListCollateralsRequest
	(*ListCollateralsResponse)(nil),        // 7: stableledger.query.v1.ListCollateralsResponse
	(*GetSystemAccountsRequest)(nil),       // 8: stableledger.query.v1.GetSystemAccountsRequest
	(*GetSystemAccountsResponse)(nil),      // 9: stableledger.query.v1.GetSystemAccountsResponse
	(*GetRedemptionQuoteRequest)(nil),      // 10: stableledger.query.v1.GetRedemptionQuoteRequest
	(*GetRedemptionQuoteResponse)(nil),     // 11: stableledger.query.v1.GetRedemptionQuoteResponse
	(*LiquidationRecord)(nil),              // 12: stableledger.query.v1.LiquidationRecord
	(*ListLiquidationHistoryRequest)(nil),  // 13: stableledger.query.v1.ListLiquidationHistoryRequest
	(*ListLiquidationHistoryResponse)(nil), // 14: stableledger.query.v1.ListLiquidationHistoryResponse
	(*RedemptionRecord)(nil),               // 15: stableledger.query.v1.RedemptionRecord
	(*ListRedemptionHistoryRequest)(nil),   // 16: stableledger.query.v1.ListRedemptionHistoryRequest
	(*ListRedemptionHistoryResponse)(nil),  // 17: stableledger.query.v1.ListRedemptionHistoryResponse
	(*JournalRecord)(nil),                  // 18: stableledger.query.v1.JournalRecord
	(*ListJournalsRequest)(nil),            // 19: stableledger.query.v1.ListJournalsRequest
	(*ListJournalsResponse)(nil),           // 20: stableledger.query.v1.ListJournalsResponse
	(*GetMarkedDeadlineRequest)(nil),       // 21: stableledger.query.v1.GetMarkedDeadlineRequest
	(*GetMarkedDeadlineResponse)(nil),      // 22: stableledger.query.v1.GetMarkedDeadlineResponse
	(*ListRatioBucketsRequest)(nil),        // 23: stableledger.query.v1.ListRatioBucketsRequest
	(*RatioBucket)(nil),                    // 24: stableledger.query.v1.RatioBucket
	(*ListRatioBucketsResponse)(nil),       // 25: stableledger.query.v1.ListRatioBucketsResponse
	(*GetSystemStatusRequest)(nil),         // 26: stableledger.query.v1.GetSystemStatusRequest
	(*GetSystemStatusResponse)(nil),        // 27: stableledger.query.v1.GetSystemStatusResponse
}
var file_stableledger_query_v1_query_proto_depIdxs = []int32{
	0,  // 0: stableledger.query.v1.GetPositionResponse.position:type_name -> stableledger.query.v1.Position
	0,  // 1: stableledger.query.v1.ListPositionsResponse.positions:type_name -> stableledger.query.v1.Position
	5,  // 2: stableledger.query.v1.ListCollateralsResponse.collaterals:type_name -> stableledger.query.v1.Collateral
	12, // 3: stableledger.query.v1.ListLiquidationHistoryResponse.records:type_name -> stableledger.query.v1.LiquidationRecord
	15, // 4: stableledger.query.v1.ListRedemptionHistoryResponse.records:type_name -> stableledger.query.v1.RedemptionRecord
	18, // 5: stableledger.query.v1.ListJournalsResponse.journals:type_name -> stableledger.query.v1.JournalRecord
	24, // 6: stableledger.query.v1.ListRatioBucketsResponse.buckets:type_name -> stableledger.query.v1.RatioBucket
	1,  // 7: stableledger.query.v1.QueryService.GetPosition:input_type -> stableledger.query.v1.GetPositionRequest
	3,  // 8: stableledger.query.v1.QueryService.ListPositions:input_type -> stableledger.query.v1.ListPositionsRequest
	6,  // 9: stableledger.query.v1.QueryService.ListCollaterals:input_type -> stableledger.query.v1.ListCollateralsRequest
	8,  // 10: stableledger.query.v1.QueryService.GetSystemAccounts:input_type -> stableledger.query.v1.GetSystemAccountsRequest
	10, // 11: stableledger.query.v1.QueryService.GetRedemptionQuote:input_type -> stableledger.query.v1.GetRedemptionQuoteRequest
	13, // 12: stableledger.query.v1.QueryService.ListLiquidationHistory:input_type -> stableledger.query.v1.ListLiquidationHistoryRequest
	16, // 13: stableledger.query.v1.QueryService.ListRedemptionHistory:input_type -> stableledger.query.v1.ListRedemptionHistoryRequest
	19, // 14: stableledger.query.v1.QueryService.ListJournals:input_type -> stableledger.query.v1.ListJournalsRequest
	21, // 15: stableledger.query.v1.QueryService.GetMarkedDeadline:input_type -> stableledger.query.v1.GetMarkedDeadlineRequest
	23, // 16: stableledger.query.v1.QueryService.ListRatioBuckets:input_type -> stableledger.query.v1.ListRatioBucketsRequest
	26, // 17: stableledger.query.v1.QueryService.GetSystemStatus:input_type -> stableledger.query.v1.GetSystemStatusRequest
	2,  // 18: stableledger.query.v1.QueryService.GetPosition:output_type -> stableledger.query.v1.GetPositionResponse
	4,  // 19: stableledger.query.v1.QueryService.ListPositions:output_type -> stableledger.query.v1.ListPositionsResponse
	7,  // 20: stableledger.query.v1.QueryService.ListCollaterals:output_type -> stableledger.query.v1.ListCollateralsResponse
	9,  // 21: stableledger.query.v1.QueryService.GetSystemAccounts:output_type -> stableledger.query.v1.GetSystemAccountsResponse
	11, // 22: stableledger.query.v1.QueryService.GetRedemptionQuote:output_type -> stableledger.query.v1.GetRedemptionQuoteResponse
	14, // 23: stableledger.query.v1.QueryService.ListLiquidationHistory:output_type -> stableledger.query.v1.ListLiquidationHistoryResponse
	17, // 24: stableledger.query.v1.QueryService.ListRedemptionHistory:output_type -> stableledger.query.v1.ListRedemptionHistoryResponse
	20, // 25: stableledger.query.v1.QueryService.ListJournals:output_type -> stableledger.query.v1.ListJournalsResponse
	22, // 26: stableledger.query.v1.QueryService.GetMarkedDeadline:output_type -> stableledger.query.v1.GetMarkedDeadlineResponse
	25, // 27: stableledger.query.v1.QueryService.ListRatioBuckets:output_type -> stableledger.query.v1.ListRatioBucketsResponse
	27, // 28: stableledger.query.v1.QueryService.GetSystemStatus:output_type -> stableledger.query.v1.GetSystemStatusResponse
	18, // [18:29] is the sub-list for method output_type
	7,  // [7:18] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_stableledger_query_v1_query_proto_init() }
func file_stableledger_query_v1_query_proto_init() {
	if File_stableledger_query_v1_query_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stableledger_query_v1_query_proto_rawDesc), len(file_stableledger_query_v1_query_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stableledger_query_v1_query_proto_goTypes,
		DependencyIndexes: file_stableledger_query_v1_query_proto_depIdxs,
		MessageInfos:      file_stableledger_query_v1_query_proto_msgTypes,
	}.Build()
	File_stableledger_query_v1_query_proto = out.File
	file_stableledger_query_v1_query_proto_goTypes = nil
	file_stableledger_query_v1_query_proto_depIdxs = nil
}
