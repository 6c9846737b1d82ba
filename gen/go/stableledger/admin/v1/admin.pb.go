// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stableledger/admin/v1/admin.proto

package adminv1

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

type CreateCollateralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Mcr           string                 `protobuf:"bytes,3,opt,name=mcr,proto3" json:"mcr,omitempty"`
	UsdPrice      string                 `protobuf:"bytes,4,opt,name=usd_price,json=usdPrice,proto3" json:"usd_price,omitempty"`
	Accepted      bool                   `protobuf:"varint,5,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCollateralRequest) Reset() {
	*x = CreateCollateralRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCollateralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCollateralRequest) ProtoMessage() {}

func (x *CreateCollateralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCollateralRequest.ProtoReflect.Descriptor instead.
func (*CreateCollateralRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{0}
}

func (x *CreateCollateralRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *CreateCollateralRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *CreateCollateralRequest) GetMcr() string {
	if x != nil {
		return x.Mcr
	}
	return ""
}

func (x *CreateCollateralRequest) GetUsdPrice() string {
	if x != nil {
		return x.UsdPrice
	}
	return ""
}

func (x *CreateCollateralRequest) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type EditCollateralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Mcr           string                 `protobuf:"bytes,3,opt,name=mcr,proto3" json:"mcr,omitempty"`
	Accepted      bool                   `protobuf:"varint,4,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditCollateralRequest) Reset() {
	*x = EditCollateralRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditCollateralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditCollateralRequest) ProtoMessage() {}

func (x *EditCollateralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditCollateralRequest.ProtoReflect.Descriptor instead.
func (*EditCollateralRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *EditCollateralRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *EditCollateralRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *EditCollateralRequest) GetMcr() string {
	if x != nil {
		return x.Mcr
	}
	return ""
}

func (x *EditCollateralRequest) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type SetPriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	UsdPrice      string                 `protobuf:"bytes,3,opt,name=usd_price,json=usdPrice,proto3" json:"usd_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPriceRequest) Reset() {
	*x = SetPriceRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPriceRequest) ProtoMessage() {}

func (x *SetPriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPriceRequest.ProtoReflect.Descriptor instead.
func (*SetPriceRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{2}
}

func (x *SetPriceRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *SetPriceRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *SetPriceRequest) GetUsdPrice() string {
	if x != nil {
		return x.UsdPrice
	}
	return ""
}

type ProtocolParams struct {
	state                         protoimpl.MessageState `protogen:"open.v1"`
	MinimumMint                   string                 `protobuf:"bytes,1,opt,name=minimum_mint,json=minimumMint,proto3" json:"minimum_mint,omitempty"`
	LiquidationFine               string                 `protobuf:"bytes,2,opt,name=liquidation_fine,json=liquidationFine,proto3" json:"liquidation_fine,omitempty"`
	MaxInterest                   string                 `protobuf:"bytes,3,opt,name=max_interest,json=maxInterest,proto3" json:"max_interest,omitempty"`
	InterestInterval              string                 `protobuf:"bytes,4,opt,name=interest_interval,json=interestInterval,proto3" json:"interest_interval,omitempty"`
	MaxBucketLength               int64                  `protobuf:"varint,5,opt,name=max_bucket_length,json=maxBucketLength,proto3" json:"max_bucket_length,omitempty"`
	DaysOfExtraInterestFee        int64                  `protobuf:"varint,6,opt,name=days_of_extra_interest_fee,json=daysOfExtraInterestFee,proto3" json:"days_of_extra_interest_fee,omitempty"`
	FeelessRateChangeCooldownDays int64                  `protobuf:"varint,7,opt,name=feeless_rate_change_cooldown_days,json=feelessRateChangeCooldownDays,proto3" json:"feeless_rate_change_cooldown_days,omitempty"`
	RedemptionHalflifeK           string                 `protobuf:"bytes,8,opt,name=redemption_halflife_k,json=redemptionHalflifeK,proto3" json:"redemption_halflife_k,omitempty"`
	RedemptionSpikeK              string                 `protobuf:"bytes,9,opt,name=redemption_spike_k,json=redemptionSpikeK,proto3" json:"redemption_spike_k,omitempty"`
	MinimumRedemptionFee          string                 `protobuf:"bytes,10,opt,name=minimum_redemption_fee,json=minimumRedemptionFee,proto3" json:"minimum_redemption_fee,omitempty"`
	MaximumRedemptionFee          string                 `protobuf:"bytes,11,opt,name=maximum_redemption_fee,json=maximumRedemptionFee,proto3" json:"maximum_redemption_fee,omitempty"`
	IrredeemableTagFee            string                 `protobuf:"bytes,12,opt,name=irredeemable_tag_fee,json=irredeemableTagFee,proto3" json:"irredeemable_tag_fee,omitempty"`
	LiquidationNoticeFee          string                 `protobuf:"bytes,13,opt,name=liquidation_notice_fee,json=liquidationNoticeFee,proto3" json:"liquidation_notice_fee,omitempty"`
	unknownFields                 protoimpl.UnknownFields
	sizeCache                     protoimpl.SizeCache
}

func (x *ProtocolParams) Reset() {
	*x = ProtocolParams{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProtocolParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProtocolParams) ProtoMessage() {}

func (x *ProtocolParams) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProtocolParams.ProtoReflect.Descriptor instead.
func (*ProtocolParams) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *ProtocolParams) GetMinimumMint() string {
	if x != nil {
		return x.MinimumMint
	}
	return ""
}

func (x *ProtocolParams) GetLiquidationFine() string {
	if x != nil {
		return x.LiquidationFine
	}
	return ""
}

func (x *ProtocolParams) GetMaxInterest() string {
	if x != nil {
		return x.MaxInterest
	}
	return ""
}

func (x *ProtocolParams) GetInterestInterval() string {
	if x != nil {
		return x.InterestInterval
	}
	return ""
}

func (x *ProtocolParams) GetMaxBucketLength() int64 {
	if x != nil {
		return x.MaxBucketLength
	}
	return 0
}

func (x *ProtocolParams) GetDaysOfExtraInterestFee() int64 {
	if x != nil {
		return x.DaysOfExtraInterestFee
	}
	return 0
}

func (x *ProtocolParams) GetFeelessRateChangeCooldownDays() int64 {
	if x != nil {
		return x.FeelessRateChangeCooldownDays
	}
	return 0
}

func (x *ProtocolParams) GetRedemptionHalflifeK() string {
	if x != nil {
		return x.RedemptionHalflifeK
	}
	return ""
}

func (x *ProtocolParams) GetRedemptionSpikeK() string {
	if x != nil {
		return x.RedemptionSpikeK
	}
	return ""
}

func (x *ProtocolParams) GetMinimumRedemptionFee() string {
	if x != nil {
		return x.MinimumRedemptionFee
	}
	return ""
}

func (x *ProtocolParams) GetMaximumRedemptionFee() string {
	if x != nil {
		return x.MaximumRedemptionFee
	}
	return ""
}

func (x *ProtocolParams) GetIrredeemableTagFee() string {
	if x != nil {
		return x.IrredeemableTagFee
	}
	return ""
}

func (x *ProtocolParams) GetLiquidationNoticeFee() string {
	if x != nil {
		return x.LiquidationNoticeFee
	}
	return ""
}

type SetParametersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Params        *ProtocolParams        `protobuf:"bytes,2,opt,name=params,proto3" json:"params,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetParametersRequest) Reset() {
	*x = SetParametersRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetParametersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetParametersRequest) ProtoMessage() {}

func (x *SetParametersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetParametersRequest.ProtoReflect.Descriptor instead.
func (*SetParametersRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{4}
}

func (x *SetParametersRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *SetParametersRequest) GetParams() *ProtocolParams {
	if x != nil {
		return x.Params
	}
	return nil
}

type SetStopsRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ref              string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	StopLiquidations bool                   `protobuf:"varint,2,opt,name=stop_liquidations,json=stopLiquidations,proto3" json:"stop_liquidations,omitempty"`
	StopOpenings     bool                   `protobuf:"varint,3,opt,name=stop_openings,json=stopOpenings,proto3" json:"stop_openings,omitempty"`
	StopClosings     bool                   `protobuf:"varint,4,opt,name=stop_closings,json=stopClosings,proto3" json:"stop_closings,omitempty"`
	StopRedemption   bool                   `protobuf:"varint,5,opt,name=stop_redemption,json=stopRedemption,proto3" json:"stop_redemption,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SetStopsRequest) Reset() {
	*x = SetStopsRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetStopsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetStopsRequest) ProtoMessage() {}

func (x *SetStopsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetStopsRequest.ProtoReflect.Descriptor instead.
func (*SetStopsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *SetStopsRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *SetStopsRequest) GetStopLiquidations() bool {
	if x != nil {
		return x.StopLiquidations
	}
	return false
}

func (x *SetStopsRequest) GetStopOpenings() bool {
	if x != nil {
		return x.StopOpenings
	}
	return false
}

func (x *SetStopsRequest) GetStopClosings() bool {
	if x != nil {
		return x.StopClosings
	}
	return false
}

func (x *SetStopsRequest) GetStopRedemption() bool {
	if x != nil {
		return x.StopRedemption
	}
	return false
}

type BorrowerRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ref              string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	BorrowerId       string                 `protobuf:"bytes,2,opt,name=borrower_id,json=borrowerId,proto3" json:"borrower_id,omitempty"`
	RedemptionOptOut bool                   `protobuf:"varint,3,opt,name=redemption_opt_out,json=redemptionOptOut,proto3" json:"redemption_opt_out,omitempty"`
	NoticeMinutes    int64                  `protobuf:"varint,4,opt,name=notice_minutes,json=noticeMinutes,proto3" json:"notice_minutes,omitempty"` // 0 means no notice period
	MaxCoupled       int64                  `protobuf:"varint,5,opt,name=max_coupled,json=maxCoupled,proto3" json:"max_coupled,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *BorrowerRequest) Reset() {
	*x = BorrowerRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BorrowerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BorrowerRequest) ProtoMessage() {}

func (x *BorrowerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BorrowerRequest.ProtoReflect.Descriptor instead.
func (*BorrowerRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{6}
}

func (x *BorrowerRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *BorrowerRequest) GetBorrowerId() string {
	if x != nil {
		return x.BorrowerId
	}
	return ""
}

func (x *BorrowerRequest) GetRedemptionOptOut() bool {
	if x != nil {
		return x.RedemptionOptOut
	}
	return false
}

func (x *BorrowerRequest) GetNoticeMinutes() int64 {
	if x != nil {
		return x.NoticeMinutes
	}
	return 0
}

func (x *BorrowerRequest) GetMaxCoupled() int64 {
	if x != nil {
		return x.MaxCoupled
	}
	return 0
}

type LinkBorrowerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	BorrowerId    string                 `protobuf:"bytes,2,opt,name=borrower_id,json=borrowerId,proto3" json:"borrower_id,omitempty"`
	PositionId    string                 `protobuf:"bytes,3,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LinkBorrowerRequest) Reset() {
	*x = LinkBorrowerRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LinkBorrowerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LinkBorrowerRequest) ProtoMessage() {}

func (x *LinkBorrowerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LinkBorrowerRequest.ProtoReflect.Descriptor instead.
func (*LinkBorrowerRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *LinkBorrowerRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *LinkBorrowerRequest) GetBorrowerId() string {
	if x != nil {
		return x.BorrowerId
	}
	return ""
}

func (x *LinkBorrowerRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type SupplyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SupplyRequest) Reset() {
	*x = SupplyRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SupplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SupplyRequest) ProtoMessage() {}

func (x *SupplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SupplyRequest.ProtoReflect.Descriptor instead.
func (*SupplyRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{8}
}

func (x *SupplyRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *SupplyRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type AdminMutateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applied       bool                   `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminMutateResponse) Reset() {
	*x = AdminMutateResponse{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminMutateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminMutateResponse) ProtoMessage() {}

func (x *AdminMutateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminMutateResponse.ProtoReflect.Descriptor instead.
func (*AdminMutateResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{9}
}

func (x *AdminMutateResponse) GetApplied() bool {
	if x != nil {
		return x.Applied
	}
	return false
}

type TakeSnapshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeSnapshotRequest) Reset() {
	*x = TakeSnapshotRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeSnapshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotRequest) ProtoMessage() {}

func (x *TakeSnapshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotRequest.ProtoReflect.Descriptor instead.
func (*TakeSnapshotRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{10}
}

type TakeSnapshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeSnapshotResponse) Reset() {
	*x = TakeSnapshotResponse{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeSnapshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotResponse) ProtoMessage() {}

func (x *TakeSnapshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotResponse.ProtoReflect.Descriptor instead.
func (*TakeSnapshotResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{11}
}

func (x *TakeSnapshotResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type RebuildProjectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsRequest) Reset() {
	*x = RebuildProjectionsRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsRequest) ProtoMessage() {}

func (x *RebuildProjectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsRequest.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{12}
}

type RebuildProjectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Started       bool                   `protobuf:"varint,1,opt,name=started,proto3" json:"started,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsResponse) Reset() {
	*x = RebuildProjectionsResponse{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsResponse) ProtoMessage() {}

func (x *RebuildProjectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsResponse.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{13}
}

func (x *RebuildProjectionsResponse) GetStarted() bool {
	if x != nil {
		return x.Started
	}
	return false
}

type VerifyIntegrityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyIntegrityRequest) Reset() {
	*x = VerifyIntegrityRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityRequest) ProtoMessage() {}

func (x *VerifyIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{14}
}

type VerifyIntegrityResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Passed                bool                   `protobuf:"varint,1,opt,name=passed,proto3" json:"passed,omitempty"`
	FirstMismatchSequence int64                  `protobuf:"varint,2,opt,name=first_mismatch_sequence,json=firstMismatchSequence,proto3" json:"first_mismatch_sequence,omitempty"`
	ErrorDetail           string                 `protobuf:"bytes,3,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *VerifyIntegrityResponse) Reset() {
	*x = VerifyIntegrityResponse{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityResponse) ProtoMessage() {}

func (x *VerifyIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{15}
}

func (x *VerifyIntegrityResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *VerifyIntegrityResponse) GetFirstMismatchSequence() int64 {
	if x != nil {
		return x.FirstMismatchSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

type GetEventLogInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventLogInfoRequest) Reset() {
	*x = GetEventLogInfoRequest{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventLogInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventLogInfoRequest) ProtoMessage() {}

func (x *GetEventLogInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventLogInfoRequest.ProtoReflect.Descriptor instead.
func (*GetEventLogInfoRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{16}
}

type GetEventLogInfoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LastSequence  int64                  `protobuf:"varint,1,opt,name=last_sequence,json=lastSequence,proto3" json:"last_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventLogInfoResponse) Reset() {
	*x = GetEventLogInfoResponse{}
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventLogInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventLogInfoResponse) ProtoMessage() {}

func (x *GetEventLogInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_admin_v1_admin_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventLogInfoResponse.ProtoReflect.Descriptor instead.
func (*GetEventLogInfoResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_admin_v1_admin_proto_rawDescGZIP(), []int{17}
}

func (x *GetEventLogInfoResponse) GetLastSequence() int64 {
	if x != nil {
		return x.LastSequence
	}
	return 0
}

var File_stableledger_admin_v1_admin_proto protoreflect.FileDescriptor

const file_stableledger_admin_v1_admin_proto_rawDesc = "" +
	"\n" +
	"!stableledger/admin/v1/admin.proto\x12\x15stableledger.admin.v1\x1a\x1cgoogle/api/annotations.proto\"\x8c\x01\n" +
	"\x17CreateCollateralRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x14\n" +
	"\x05asset\x18\x02 \x01(\tR\x05asset\x12\x10\n" +
	"\x03mcr\x18\x03 \x01(\tR\x03mcr\x12\x1b\n" +
	"\tusd_price\x18\x04 \x01(\tR\busdPrice\x12\x1a\n" +
	"\baccepted\x18\x05 \x01(\bR\baccepted\"m\n" +
	"\x15EditCollateralRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x14\n" +
	"\x05asset\x18\x02 \x01(\tR\x05asset\x12\x10\n" +
	"\x03mcr\x18\x03 \x01(\tR\x03mcr\x12\x1a\n" +
	"\baccepted\x18\x04 \x01(\bR\baccepted\"V\n" +
	"\x0fSetPriceRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x14\n" +
	"\x05asset\x18\x02 \x01(\tR\x05asset\x12\x1b\n" +
	"\tusd_price\x18\x03 \x01(\tR\busdPrice\"\x96\x05\n" +
	"\x0eProtocolParams\x12!\n" +
	"\fminimum_mint\x18\x01 \x01(\tR\vminimumMint\x12)\n" +
	"\x10liquidation_fine\x18\x02 \x01(\tR\x0fliquidationFine\x12!\n" +
	"\fmax_interest\x18\x03 \x01(\tR\vmaxInterest\x12+\n" +
	"\x11interest_interval\x18\x04 \x01(\tR\x10interestInterval\x12*\n" +
	"\x11max_bucket_length\x18\x05 \x01(\x03R\x0fmaxBucketLength\x12:\n" +
	"\x1adays_of_extra_interest_fee\x18\x06 \x01(\x03R\x16daysOfExtraInterestFee\x12H\n" +
	"!feeless_rate_change_cooldown_days\x18\a \x01(\x03R\x1dfeelessRateChangeCooldownDays\x122\n" +
	"\x15redemption_halflife_k\x18\b \x01(\tR\x13redemptionHalflifeK\x12,\n" +
	"\x12redemption_spike_k\x18\t \x01(\tR\x10redemptionSpikeK\x124\n" +
	"\x16minimum_redemption_fee\x18\n" +
	" \x01(\tR\x14minimumRedemptionFee\x124\n" +
	"\x16maximum_redemption_fee\x18\v \x01(\tR\x14maximumRedemptionFee\x120\n" +
	"\x14irredeemable_tag_fee\x18\f \x01(\tR\x12irredeemableTagFee\x124\n" +
	"\x16liquidation_notice_fee\x18\r \x01(\tR\x14liquidationNoticeFee\"g\n" +
	"\x14SetParametersRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12=\n" +
	"\x06params\x18\x02 \x01(\v2%.stableledger.admin.v1.ProtocolParamsR\x06params\"\xc3\x01\n" +
	"\x0fSetStopsRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12+\n" +
	"\x11stop_liquidations\x18\x02 \x01(\bR\x10stopLiquidations\x12#\n" +
	"\rstop_openings\x18\x03 \x01(\bR\fstopOpenings\x12#\n" +
	"\rstop_closings\x18\x04 \x01(\bR\fstopClosings\x12'\n" +
	"\x0fstop_redemption\x18\x05 \x01(\bR\x0estopRedemption\"\xba\x01\n" +
	"\x0fBorrowerRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vborrower_id\x18\x02 \x01(\tR\n" +
	"borrowerId\x12,\n" +
	"\x12redemption_opt_out\x18\x03 \x01(\bR\x10redemptionOptOut\x12%\n" +
	"\x0enotice_minutes\x18\x04 \x01(\x03R\rnoticeMinutes\x12\x1f\n" +
	"\vmax_coupled\x18\x05 \x01(\x03R\n" +
	"maxCoupled\"i\n" +
	"\x13LinkBorrowerRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vborrower_id\x18\x02 \x01(\tR\n" +
	"borrowerId\x12\x1f\n" +
	"\vposition_id\x18\x03 \x01(\tR\n" +
	"positionId\"9\n" +
	"\rSupplyRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\"/\n" +
	"\x13AdminMutateResponse\x12\x18\n" +
	"\aapplied\x18\x01 \x01(\bR\aapplied\"\x15\n" +
	"\x13TakeSnapshotRequest\"2\n" +
	"\x14TakeSnapshotResponse\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x03R\bsequence\"\x1b\n" +
	"\x19RebuildProjectionsRequest\"6\n" +
	"\x1aRebuildProjectionsResponse\x12\x18\n" +
	"\astarted\x18\x01 \x01(\bR\astarted\"\x18\n" +
	"\x16VerifyIntegrityRequest\"\x8c\x01\n" +
	"\x17VerifyIntegrityResponse\x12\x16\n" +
	"\x06passed\x18\x01 \x01(\bR\x06passed\x126\n" +
	"\x17first_mismatch_sequence\x18\x02 \x01(\x03R\x15firstMismatchSequence\x12!\n" +
	"\ferror_detail\x18\x03 \x01(\tR\verrorDetail\"\x18\n" +
	"\x16GetEventLogInfoRequest\">\n" +
	"\x17GetEventLogInfoResponse\x12#\n" +
	"\rlast_sequence\x18\x01 \x01(\x03R\flastSequence2\xf9\x10\n" +
	"\fAdminService\x12\x90\x01\n" +
	"\x10CreateCollateral\x12..stableledger.admin.v1.CreateCollateralRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\" \x82\xd3\xe4\x93\x02\x1a:\x01*\"\x15/v1/admin/collaterals\x12\x94\x01\n" +
	"\x0eEditCollateral\x12,.stableledger.admin.v1.EditCollateralRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"(\x82\xd3\xe4\x93\x02\":\x01*\"\x1d/v1/admin/collaterals/{asset}\x12\x8e\x01\n" +
	"\bSetPrice\x12&.stableledger.admin.v1.SetPriceRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\".\x82\xd3\xe4\x93\x02(:\x01*\"#/v1/admin/collaterals/{asset}/price\x12\x89\x01\n" +
	"\rSetParameters\x12+.stableledger.admin.v1.SetParametersRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"\x1f\x82\xd3\xe4\x93\x02\x19:\x01*\"\x14/v1/admin/parameters\x12z\n" +
	"\bSetStops\x12&.stableledger.admin.v1.SetStopsRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"\x1a\x82\xd3\xe4\x93\x02\x14:\x01*\"\x0f/v1/admin/stops\x12\x84\x01\n" +
	"\x0eCreateBorrower\x12&.stableledger.admin.v1.BorrowerRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"\x1e\x82\xd3\xe4\x93\x02\x18:\x01*\"\x13/v1/admin/borrowers\x12\x90\x01\n" +
	"\fEditBorrower\x12&.stableledger.admin.v1.BorrowerRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\",\x82\xd3\xe4\x93\x02&:\x01*\"!/v1/admin/borrowers/{borrower_id}\x12\x99\x01\n" +
	"\fLinkBorrower\x12*.stableledger.admin.v1.LinkBorrowerRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"1\x82\xd3\xe4\x93\x02+:\x01*\"&/v1/admin/borrowers/{borrower_id}/link\x12\x9d\x01\n" +
	"\x0eUnlinkBorrower\x12*.stableledger.admin.v1.LinkBorrowerRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\"3\x82\xd3\xe4\x93\x02-:\x01*\"(/v1/admin/borrowers/{borrower_id}/unlink\x12~\n" +
	"\bFreeMint\x12$.stableledger.admin.v1.SupplyRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\" \x82\xd3\xe4\x93\x02\x1a:\x01*\"\x15/v1/admin/supply/mint\x12\x80\x01\n" +
	"\n" +
	"BurnSupply\x12$.stableledger.admin.v1.SupplyRequest\x1a*.stableledger.admin.v1.AdminMutateResponse\" \x82\xd3\xe4\x93\x02\x1a:\x01*\"\x15/v1/admin/supply/burn\x12\x86\x01\n" +
	"\fTakeSnapshot\x12*.stableledger.admin.v1.TakeSnapshotRequest\x1a+.stableledger.admin.v1.TakeSnapshotResponse\"\x1d\x82\xd3\xe4\x93\x02\x17:\x01*\"\x12/v1/admin/snapshot\x12\xa3\x01\n" +
	"\x12RebuildProjections\x120.stableledger.admin.v1.RebuildProjectionsRequest\x1a1.stableledger.admin.v1.RebuildProjectionsResponse\"(\x82\xd3\xe4\x93\x02\":\x01*\"\x1d/v1/admin/projections/rebuild\x12\x8d\x01\n" +
	"\x0fVerifyIntegrity\x12-.stableledger.admin.v1.VerifyIntegrityRequest\x1a..stableledger.admin.v1.VerifyIntegrityResponse\"\x1b\x82\xd3\xe4\x93\x02\x15\x12\x13/v1/admin/integrity\x12\x8d\x01\n" +
	"\x0fGetEventLogInfo\x12-.stableledger.admin.v1.GetEventLogInfoRequest\x1a..stableledger.admin.v1.GetEventLogInfoResponse\"\x1b\x82\xd3\xe4\x93\x02\x15\x12\x13/v1/admin/event-logB3Z1StableLedger/gen/go/stableledger/admin/v1;adminv1b\x06proto3"

var (
	file_stableledger_admin_v1_admin_proto_rawDescOnce sync.Once
	file_stableledger_admin_v1_admin_proto_rawDescData []byte
)

func file_stableledger_admin_v1_admin_proto_rawDescGZIP() []byte {
	file_stableledger_admin_v1_admin_proto_rawDescOnce.Do(func() {
		file_stableledger_admin_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stableledger_admin_v1_admin_proto_rawDesc), len(file_stableledger_admin_v1_admin_proto_rawDesc)))
	})
	return file_stableledger_admin_v1_admin_proto_rawDescData
}

var file_stableledger_admin_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_stableledger_admin_v1_admin_proto_goTypes = []any{
	(*CreateCollateralRequest)(nil),    // 0: stableledger.admin.v1.CreateCollateralRequest
	(*EditCollateralRequest)(nil),      // 1: stableledger.admin.v1.EditCollateralRequest
	(*SetPriceRequest)(nil),            // 2: stableledger.admin.v1.SetPriceRequest
	(*ProtocolParams)(nil),             // 3: stableledger.admin.v1.ProtocolParams
	(*SetParametersRequest)(nil),       // 4: stableledger.admin.v1.SetParametersRequest
	(*SetStopsRequest)(nil),            // 5: stableledger.admin.v1.SetStopsRequest
	(*BorrowerRequest)(nil),            // 6: stableledger.admin.v1.BorrowerRequest
	(*LinkBorrowerRequest)(nil),        // 7: stableledger.admin.v1.LinkBorrowerRequest
	(*SupplyRequest)(nil),              // 8: stableledger.admin.v1.SupplyRequest
	(*AdminMutateResponse)(nil),        // 9: stableledger.admin.v1.AdminMutateResponse
	(*TakeSnapshotRequest)(nil),        // 10: stableledger.admin.v1.TakeSnapshotRequest
	(*TakeSnapshotResponse)(nil),       // 11: stableledger.admin.v1.TakeSnapshotResponse
	(*RebuildProjectionsRequest)(nil),  // 12: stableledger.admin.v1.RebuildProjectionsRequest
	(*RebuildProjectionsResponse)(nil), // 13: stableledger.admin.v1.RebuildProjectionsResponse
	(*VerifyIntegrityRequest)(nil),     // 14: stableledger.admin.v1.VerifyIntegrityRequest
	(*VerifyIntegrityResponse)(nil),    // 15: stableledger.admin.v1.VerifyIntegrityResponse
	(*GetEventLogInfoRequest)(nil),     // 16: stableledger.admin.v1.GetEventLogInfoRequest
	(*GetEventLogInfoResponse)(nil),    // 17: stableledger.admin.v1.GetEventLogInfoResponse
}
var file_stableledger_admin_v1_admin_proto_depIdxs = []int32{
	3,  // 0: stableledger.admin.v1.SetParametersRequest.params:type_name -> stableledger.admin.v1.ProtocolParams
	0,  // 1: stableledger.admin.v1.AdminService.CreateCollateral:input_type -> stableledger.admin.v1.CreateCollateralRequest
	1,  // 2: stableledger.admin.v1.AdminService.EditCollateral:input_type -> stableledger.admin.v1.EditCollateralRequest
	2,  // 3: stableledger.admin.v1.AdminService.SetPrice:input_type -> stableledger.admin.v1.SetPriceRequest
	4,  // 4: stableledger.admin.v1.AdminService.SetParameters:input_type -> stableledger.admin.v1.SetParametersRequest
	5,  // 5: stableledger.admin.v1.AdminService.SetStops:input_type -> stableledger.admin.v1.SetStopsRequest
	6,  // 6: stableledger.admin.v1.AdminService.CreateBorrower:input_type -> stableledger.admin.v1.BorrowerRequest
	6,  // 7: stableledger.admin.v1.AdminService.EditBorrower:input_type -> stableledger.admin.v1.BorrowerRequest
	7,  // 8: stableledger.admin.v1.AdminService.LinkBorrower:input_type -> stableledger.admin.v1.LinkBorrowerRequest
	7,  // 9: stableledger.admin.v1.AdminService.UnlinkBorrower:input_type -> stableledger.admin.v1.LinkBorrowerRequest
	8,  // 10: stableledger.admin.v1.AdminService.FreeMint:input_type -> stableledger.admin.v1.SupplyRequest
	8,  // 11: stableledger.admin.v1.AdminService.BurnSupply:input_type -> stableledger.admin.v1.SupplyRequest
	10, // 12: stableledger.admin.v1.AdminService.TakeSnapshot:input_type -> stableledger.admin.v1.TakeSnapshotRequest
	12, // 13: stableledger.admin.v1.AdminService.RebuildProjections:input_type -> stableledger.admin.v1.RebuildProjectionsRequest
	14, // 14: stableledger.admin.v1.AdminService.VerifyIntegrity:input_type -> stableledger.admin.v1.VerifyIntegrityRequest
	16, // 15: stableledger.admin.v1.AdminService.GetEventLogInfo:input_type -> stableledger.admin.v1.GetEventLogInfoRequest
	9,  // 16: stableledger.admin.v1.AdminService.CreateCollateral:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 17: stableledger.admin.v1.AdminService.EditCollateral:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 18: stableledger.admin.v1.AdminService.SetPrice:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 19: stableledger.admin.v1.AdminService.SetParameters:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 20: stableledger.admin.v1.AdminService.SetStops:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 21: stableledger.admin.v1.AdminService.CreateBorrower:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 22: stableledger.admin.v1.AdminService.EditBorrower:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 23: stableledger.admin.v1.AdminService.LinkBorrower:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 24: stableledger.admin.v1.AdminService.UnlinkBorrower:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 25: stableledger.admin.v1.AdminService.FreeMint:output_type -> stableledger.admin.v1.AdminMutateResponse
	9,  // 26: stableledger.admin.v1.AdminService.BurnSupply:output_type -> stableledger.admin.v1.AdminMutateResponse
	11, // 27: stableledger.admin.v1.AdminService.TakeSnapshot:output_type -> stableledger.admin.v1.TakeSnapshotResponse
	13, // 28: stableledger.admin.v1.AdminService.RebuildProjections:output_type -> stableledger.admin.v1.RebuildProjectionsResponse
	15, // 29: stableledger.admin.v1.AdminService.VerifyIntegrity:output_type -> stableledger.admin.v1.VerifyIntegrityResponse
	17, // 30: stableledger.admin.v1.AdminService.GetEventLogInfo:output_type -> stableledger.admin.v1.GetEventLogInfoResponse
	16, // [16:31] is the sub-list for method output_type
	1,  // [1:16] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_stableledger_admin_v1_admin_proto_init() }
func file_stableledger_admin_v1_admin_proto_init() {
	if File_stableledger_admin_v1_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stableledger_admin_v1_admin_proto_rawDesc), len(file_stableledger_admin_v1_admin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stableledger_admin_v1_admin_proto_goTypes,
		DependencyIndexes: file_stableledger_admin_v1_admin_proto_depIdxs,
		MessageInfos:      file_stableledger_admin_v1_admin_proto_msgTypes,
	}.Build()
	File_stableledger_admin_v1_admin_proto = out.File
	file_stableledger_admin_v1_admin_proto_goTypes = nil
	file_stableledger_admin_v1_admin_proto_depIdxs = nil
}
