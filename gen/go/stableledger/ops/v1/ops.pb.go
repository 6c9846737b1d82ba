// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: stableledger/ops/v1/ops.proto

package opsv1

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

type OpenPositionRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Ref              string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId       string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Collateral       string                 `protobuf:"bytes,3,opt,name=collateral,proto3" json:"collateral,omitempty"`
	CollateralAmount string                 `protobuf:"bytes,4,opt,name=collateral_amount,json=collateralAmount,proto3" json:"collateral_amount,omitempty"`
	MintAmount       string                 `protobuf:"bytes,5,opt,name=mint_amount,json=mintAmount,proto3" json:"mint_amount,omitempty"`
	Rate             string                 `protobuf:"bytes,6,opt,name=rate,proto3" json:"rate,omitempty"`
	BorrowerId       string                 `protobuf:"bytes,7,opt,name=borrower_id,json=borrowerId,proto3" json:"borrower_id,omitempty"` // required for the privileged rate
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *OpenPositionRequest) Reset() {
	*x = OpenPositionRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenPositionRequest) ProtoMessage() {}

func (x *OpenPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenPositionRequest.ProtoReflect.Descriptor instead.
func (*OpenPositionRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{0}
}

func (x *OpenPositionRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *OpenPositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *OpenPositionRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *OpenPositionRequest) GetCollateralAmount() string {
	if x != nil {
		return x.CollateralAmount
	}
	return ""
}

func (x *OpenPositionRequest) GetMintAmount() string {
	if x != nil {
		return x.MintAmount
	}
	return ""
}

func (x *OpenPositionRequest) GetRate() string {
	if x != nil {
		return x.Rate
	}
	return ""
}

func (x *OpenPositionRequest) GetBorrowerId() string {
	if x != nil {
		return x.BorrowerId
	}
	return ""
}

type OpenPositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionId    string                 `protobuf:"bytes,1,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	MintedAmount  string                 `protobuf:"bytes,2,opt,name=minted_amount,json=mintedAmount,proto3" json:"minted_amount,omitempty"`
	Ratio         string                 `protobuf:"bytes,3,opt,name=ratio,proto3" json:"ratio,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OpenPositionResponse) Reset() {
	*x = OpenPositionResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenPositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenPositionResponse) ProtoMessage() {}

func (x *OpenPositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenPositionResponse.ProtoReflect.Descriptor instead.
func (*OpenPositionResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{1}
}

func (x *OpenPositionResponse) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *OpenPositionResponse) GetMintedAmount() string {
	if x != nil {
		return x.MintedAmount
	}
	return ""
}

func (x *OpenPositionResponse) GetRatio() string {
	if x != nil {
		return x.Ratio
	}
	return ""
}

type ClosePositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Payment       string                 `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClosePositionRequest) Reset() {
	*x = ClosePositionRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClosePositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClosePositionRequest) ProtoMessage() {}

func (x *ClosePositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClosePositionRequest.ProtoReflect.Descriptor instead.
func (*ClosePositionRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{2}
}

func (x *ClosePositionRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *ClosePositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *ClosePositionRequest) GetPayment() string {
	if x != nil {
		return x.Payment
	}
	return ""
}

type ClosePositionResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Change             string                 `protobuf:"bytes,1,opt,name=change,proto3" json:"change,omitempty"`
	ReleasedCollateral string                 `protobuf:"bytes,2,opt,name=released_collateral,json=releasedCollateral,proto3" json:"released_collateral,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ClosePositionResponse) Reset() {
	*x = ClosePositionResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClosePositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClosePositionResponse) ProtoMessage() {}

func (x *ClosePositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClosePositionResponse.ProtoReflect.Descriptor instead.
func (*ClosePositionResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{3}
}

func (x *ClosePositionResponse) GetChange() string {
	if x != nil {
		return x.Change
	}
	return ""
}

func (x *ClosePositionResponse) GetReleasedCollateral() string {
	if x != nil {
		return x.ReleasedCollateral
	}
	return ""
}

type TopUpCollateralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Amount        string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TopUpCollateralRequest) Reset() {
	*x = TopUpCollateralRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TopUpCollateralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TopUpCollateralRequest) ProtoMessage() {}

func (x *TopUpCollateralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TopUpCollateralRequest.ProtoReflect.Descriptor instead.
func (*TopUpCollateralRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{4}
}

func (x *TopUpCollateralRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *TopUpCollateralRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *TopUpCollateralRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type RemoveCollateralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Amount        string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveCollateralRequest) Reset() {
	*x = RemoveCollateralRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveCollateralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveCollateralRequest) ProtoMessage() {}

func (x *RemoveCollateralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveCollateralRequest.ProtoReflect.Descriptor instead.
func (*RemoveCollateralRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{5}
}

func (x *RemoveCollateralRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *RemoveCollateralRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *RemoveCollateralRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type BorrowMoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Amount        string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BorrowMoreRequest) Reset() {
	*x = BorrowMoreRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BorrowMoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BorrowMoreRequest) ProtoMessage() {}

func (x *BorrowMoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BorrowMoreRequest.ProtoReflect.Descriptor instead.
func (*BorrowMoreRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{6}
}

func (x *BorrowMoreRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *BorrowMoreRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *BorrowMoreRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type RepayDebtRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Payment       string                 `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RepayDebtRequest) Reset() {
	*x = RepayDebtRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RepayDebtRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RepayDebtRequest) ProtoMessage() {}

func (x *RepayDebtRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RepayDebtRequest.ProtoReflect.Descriptor instead.
func (*RepayDebtRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{7}
}

func (x *RepayDebtRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *RepayDebtRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *RepayDebtRequest) GetPayment() string {
	if x != nil {
		return x.Payment
	}
	return ""
}

type RepayDebtResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Change        string                 `protobuf:"bytes,1,opt,name=change,proto3" json:"change,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RepayDebtResponse) Reset() {
	*x = RepayDebtResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RepayDebtResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RepayDebtResponse) ProtoMessage() {}

func (x *RepayDebtResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RepayDebtResponse.ProtoReflect.Descriptor instead.
func (*RepayDebtResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{8}
}

func (x *RepayDebtResponse) GetChange() string {
	if x != nil {
		return x.Change
	}
	return ""
}

type ChangeRateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	NewRate       string                 `protobuf:"bytes,3,opt,name=new_rate,json=newRate,proto3" json:"new_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChangeRateRequest) Reset() {
	*x = ChangeRateRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChangeRateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChangeRateRequest) ProtoMessage() {}

func (x *ChangeRateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChangeRateRequest.ProtoReflect.Descriptor instead.
func (*ChangeRateRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{9}
}

func (x *ChangeRateRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *ChangeRateRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *ChangeRateRequest) GetNewRate() string {
	if x != nil {
		return x.NewRate
	}
	return ""
}

type TagIrredeemableRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TagIrredeemableRequest) Reset() {
	*x = TagIrredeemableRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TagIrredeemableRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TagIrredeemableRequest) ProtoMessage() {}

func (x *TagIrredeemableRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TagIrredeemableRequest.ProtoReflect.Descriptor instead.
func (*TagIrredeemableRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{10}
}

func (x *TagIrredeemableRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *TagIrredeemableRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type TagIrredeemableResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FeeMinted     string                 `protobuf:"bytes,1,opt,name=fee_minted,json=feeMinted,proto3" json:"fee_minted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TagIrredeemableResponse) Reset() {
	*x = TagIrredeemableResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TagIrredeemableResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TagIrredeemableResponse) ProtoMessage() {}

func (x *TagIrredeemableResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TagIrredeemableResponse.ProtoReflect.Descriptor instead.
func (*TagIrredeemableResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{11}
}

func (x *TagIrredeemableResponse) GetFeeMinted() string {
	if x != nil {
		return x.FeeMinted
	}
	return ""
}

type RetrieveLeftoverRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetrieveLeftoverRequest) Reset() {
	*x = RetrieveLeftoverRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetrieveLeftoverRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetrieveLeftoverRequest) ProtoMessage() {}

func (x *RetrieveLeftoverRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetrieveLeftoverRequest.ProtoReflect.Descriptor instead.
func (*RetrieveLeftoverRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{12}
}

func (x *RetrieveLeftoverRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *RetrieveLeftoverRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type RetrieveLeftoverResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        string                 `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetrieveLeftoverResponse) Reset() {
	*x = RetrieveLeftoverResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetrieveLeftoverResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetrieveLeftoverResponse) ProtoMessage() {}

func (x *RetrieveLeftoverResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetrieveLeftoverResponse.ProtoReflect.Descriptor instead.
func (*RetrieveLeftoverResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{13}
}

func (x *RetrieveLeftoverResponse) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type BurnClosedPositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BurnClosedPositionRequest) Reset() {
	*x = BurnClosedPositionRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BurnClosedPositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BurnClosedPositionRequest) ProtoMessage() {}

func (x *BurnClosedPositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BurnClosedPositionRequest.ProtoReflect.Descriptor instead.
func (*BurnClosedPositionRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{14}
}

func (x *BurnClosedPositionRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *BurnClosedPositionRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type MutateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applied       bool                   `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MutateResponse) Reset() {
	*x = MutateResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MutateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MutateResponse) ProtoMessage() {}

func (x *MutateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MutateResponse.ProtoReflect.Descriptor instead.
func (*MutateResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{15}
}

func (x *MutateResponse) GetApplied() bool {
	if x != nil {
		return x.Applied
	}
	return false
}

type LiquidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	Payment       string                 `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	PriceOverride string                 `protobuf:"bytes,4,opt,name=price_override,json=priceOverride,proto3" json:"price_override,omitempty"` // empty to value at the stored oracle price
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LiquidateRequest) Reset() {
	*x = LiquidateRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LiquidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LiquidateRequest) ProtoMessage() {}

func (x *LiquidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LiquidateRequest.ProtoReflect.Descriptor instead.
func (*LiquidateRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{16}
}

func (x *LiquidateRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *LiquidateRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

func (x *LiquidateRequest) GetPayment() string {
	if x != nil {
		return x.Payment
	}
	return ""
}

func (x *LiquidateRequest) GetPriceOverride() string {
	if x != nil {
		return x.PriceOverride
	}
	return ""
}

type LiquidateResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Marked means a notice period started instead of an immediate
	// liquidation; deadline_unix is when it becomes actionable.
	Marked        bool   `protobuf:"varint,1,opt,name=marked,proto3" json:"marked,omitempty"`
	DeadlineUnix  int64  `protobuf:"varint,2,opt,name=deadline_unix,json=deadlineUnix,proto3" json:"deadline_unix,omitempty"`
	Payout        string `protobuf:"bytes,3,opt,name=payout,proto3" json:"payout,omitempty"`
	Change        string `protobuf:"bytes,4,opt,name=change,proto3" json:"change,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LiquidateResponse) Reset() {
	*x = LiquidateResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LiquidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LiquidateResponse) ProtoMessage() {}

func (x *LiquidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LiquidateResponse.ProtoReflect.Descriptor instead.
func (*LiquidateResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{17}
}

func (x *LiquidateResponse) GetMarked() bool {
	if x != nil {
		return x.Marked
	}
	return false
}

func (x *LiquidateResponse) GetDeadlineUnix() int64 {
	if x != nil {
		return x.DeadlineUnix
	}
	return 0
}

func (x *LiquidateResponse) GetPayout() string {
	if x != nil {
		return x.Payout
	}
	return ""
}

func (x *LiquidateResponse) GetChange() string {
	if x != nil {
		return x.Change
	}
	return ""
}

type CheckLiquidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	PositionId    string                 `protobuf:"bytes,2,opt,name=position_id,json=positionId,proto3" json:"position_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckLiquidateRequest) Reset() {
	*x = CheckLiquidateRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckLiquidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckLiquidateRequest) ProtoMessage() {}

func (x *CheckLiquidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckLiquidateRequest.ProtoReflect.Descriptor instead.
func (*CheckLiquidateRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{18}
}

func (x *CheckLiquidateRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *CheckLiquidateRequest) GetPositionId() string {
	if x != nil {
		return x.PositionId
	}
	return ""
}

type CheckLiquidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Liquidatable  bool                   `protobuf:"varint,1,opt,name=liquidatable,proto3" json:"liquidatable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckLiquidateResponse) Reset() {
	*x = CheckLiquidateResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckLiquidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckLiquidateResponse) ProtoMessage() {}

func (x *CheckLiquidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckLiquidateResponse.ProtoReflect.Descriptor instead.
func (*CheckLiquidateResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{19}
}

func (x *CheckLiquidateResponse) GetLiquidatable() bool {
	if x != nil {
		return x.Liquidatable
	}
	return false
}

type NextLiquidationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Collateral    string                 `protobuf:"bytes,1,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextLiquidationsRequest) Reset() {
	*x = NextLiquidationsRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextLiquidationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextLiquidationsRequest) ProtoMessage() {}

func (x *NextLiquidationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextLiquidationsRequest.ProtoReflect.Descriptor instead.
func (*NextLiquidationsRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{20}
}

func (x *NextLiquidationsRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *NextLiquidationsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type NextLiquidationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionIds   []string               `protobuf:"bytes,1,rep,name=position_ids,json=positionIds,proto3" json:"position_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextLiquidationsResponse) Reset() {
	*x = NextLiquidationsResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextLiquidationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextLiquidationsResponse) ProtoMessage() {}

func (x *NextLiquidationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextLiquidationsResponse.ProtoReflect.Descriptor instead.
func (*NextLiquidationsResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{21}
}

func (x *NextLiquidationsResponse) GetPositionIds() []string {
	if x != nil {
		return x.PositionIds
	}
	return nil
}

type RedeemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ref           string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Collateral    string                 `protobuf:"bytes,2,opt,name=collateral,proto3" json:"collateral,omitempty"`
	Payment       string                 `protobuf:"bytes,3,opt,name=payment,proto3" json:"payment,omitempty"`
	MaxPositions  int32                  `protobuf:"varint,4,opt,name=max_positions,json=maxPositions,proto3" json:"max_positions,omitempty"`
	FeeOverride   string                 `protobuf:"bytes,5,opt,name=fee_override,json=feeOverride,proto3" json:"fee_override,omitempty"`       // admin only, empty for the dynamic fee
	PriceOverride string                 `protobuf:"bytes,6,opt,name=price_override,json=priceOverride,proto3" json:"price_override,omitempty"` // empty to value at the stored oracle price
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemRequest) Reset() {
	*x = RedeemRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemRequest) ProtoMessage() {}

func (x *RedeemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemRequest.ProtoReflect.Descriptor instead.
func (*RedeemRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{22}
}

func (x *RedeemRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *RedeemRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *RedeemRequest) GetPayment() string {
	if x != nil {
		return x.Payment
	}
	return ""
}

func (x *RedeemRequest) GetMaxPositions() int32 {
	if x != nil {
		return x.MaxPositions
	}
	return 0
}

func (x *RedeemRequest) GetFeeOverride() string {
	if x != nil {
		return x.FeeOverride
	}
	return ""
}

func (x *RedeemRequest) GetPriceOverride() string {
	if x != nil {
		return x.PriceOverride
	}
	return ""
}

type RedeemResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PaymentUsed        string                 `protobuf:"bytes,1,opt,name=payment_used,json=paymentUsed,proto3" json:"payment_used,omitempty"`
	CollateralReceived string                 `protobuf:"bytes,2,opt,name=collateral_received,json=collateralReceived,proto3" json:"collateral_received,omitempty"`
	FeeUsed            string                 `protobuf:"bytes,3,opt,name=fee_used,json=feeUsed,proto3" json:"fee_used,omitempty"`
	PositionIds        []string               `protobuf:"bytes,4,rep,name=position_ids,json=positionIds,proto3" json:"position_ids,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *RedeemResponse) Reset() {
	*x = RedeemResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemResponse) ProtoMessage() {}

func (x *RedeemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemResponse.ProtoReflect.Descriptor instead.
func (*RedeemResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{23}
}

func (x *RedeemResponse) GetPaymentUsed() string {
	if x != nil {
		return x.PaymentUsed
	}
	return ""
}

func (x *RedeemResponse) GetCollateralReceived() string {
	if x != nil {
		return x.CollateralReceived
	}
	return ""
}

func (x *RedeemResponse) GetFeeUsed() string {
	if x != nil {
		return x.FeeUsed
	}
	return ""
}

func (x *RedeemResponse) GetPositionIds() []string {
	if x != nil {
		return x.PositionIds
	}
	return nil
}

type OptimalRedeemRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Ref   string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	// Per-collateral stablecoin amounts the caller wants redeemed. The
	// engine scales every leg to the worst fraction it can reach, keeping
	// the split proportional to the targets.
	Targets       map[string]string `protobuf:"bytes,2,rep,name=targets,proto3" json:"targets,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	StepBudget    int32             `protobuf:"varint,3,opt,name=step_budget,json=stepBudget,proto3" json:"step_budget,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OptimalRedeemRequest) Reset() {
	*x = OptimalRedeemRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OptimalRedeemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OptimalRedeemRequest) ProtoMessage() {}

func (x *OptimalRedeemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OptimalRedeemRequest.ProtoReflect.Descriptor instead.
func (*OptimalRedeemRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{24}
}

func (x *OptimalRedeemRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *OptimalRedeemRequest) GetTargets() map[string]string {
	if x != nil {
		return x.Targets
	}
	return nil
}

func (x *OptimalRedeemRequest) GetStepBudget() int32 {
	if x != nil {
		return x.StepBudget
	}
	return 0
}

type ChargeInterestRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Ref        string                 `protobuf:"bytes,1,opt,name=ref,proto3" json:"ref,omitempty"`
	Collateral string                 `protobuf:"bytes,2,opt,name=collateral,proto3" json:"collateral,omitempty"`
	// Empty bounds default to the full range, privileged tier included.
	RateStart      string `protobuf:"bytes,3,opt,name=rate_start,json=rateStart,proto3" json:"rate_start,omitempty"`
	RateEnd        string `protobuf:"bytes,4,opt,name=rate_end,json=rateEnd,proto3" json:"rate_end,omitempty"`
	SubstituteRate string `protobuf:"bytes,5,opt,name=substitute_rate,json=substituteRate,proto3" json:"substitute_rate,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ChargeInterestRequest) Reset() {
	*x = ChargeInterestRequest{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChargeInterestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChargeInterestRequest) ProtoMessage() {}

func (x *ChargeInterestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChargeInterestRequest.ProtoReflect.Descriptor instead.
func (*ChargeInterestRequest) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{25}
}

func (x *ChargeInterestRequest) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *ChargeInterestRequest) GetCollateral() string {
	if x != nil {
		return x.Collateral
	}
	return ""
}

func (x *ChargeInterestRequest) GetRateStart() string {
	if x != nil {
		return x.RateStart
	}
	return ""
}

func (x *ChargeInterestRequest) GetRateEnd() string {
	if x != nil {
		return x.RateEnd
	}
	return ""
}

func (x *ChargeInterestRequest) GetSubstituteRate() string {
	if x != nil {
		return x.SubstituteRate
	}
	return ""
}

type ChargeInterestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Minted        string                 `protobuf:"bytes,1,opt,name=minted,proto3" json:"minted,omitempty"`
	LowestRate    string                 `protobuf:"bytes,2,opt,name=lowest_rate,json=lowestRate,proto3" json:"lowest_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChargeInterestResponse) Reset() {
	*x = ChargeInterestResponse{}
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChargeInterestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChargeInterestResponse) ProtoMessage() {}

func (x *ChargeInterestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stableledger_ops_v1_ops_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChargeInterestResponse.ProtoReflect.Descriptor instead.
func (*ChargeInterestResponse) Descriptor() ([]byte, []int) {
	return file_stableledger_ops_v1_ops_proto_rawDescGZIP(), []int{26}
}

func (x *ChargeInterestResponse) GetMinted() string {
	if x != nil {
		return x.Minted
	}
	return ""
}

func (x *ChargeInterestResponse) GetLowestRate() string {
	if x != nil {
		return x.LowestRate
	}
	return ""
}

var File_stableledger_ops_v1_ops_proto protoreflect.FileDescriptor

const file_stableledger_ops_v1_ops_proto_rawDesc = "" +
	"\n" +
	"\x1dstableledger/ops/v1/ops.proto\x12\x13stableledger.ops.v1\x1a\x1cgoogle/api/annotations.proto\"\xeb\x01\n" +
	"\x13OpenPositionRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x1e\n" +
	"\n" +
	"collateral\x18\x03 \x01(\tR\n" +
	"collateral\x12+\n" +
	"\x11collateral_amount\x18\x04 \x01(\tR\x10collateralAmount\x12\x1f\n" +
	"\vmint_amount\x18\x05 \x01(\tR\n" +
	"mintAmount\x12\x12\n" +
	"\x04rate\x18\x06 \x01(\tR\x04rate\x12\x1f\n" +
	"\vborrower_id\x18\a \x01(\tR\n" +
	"borrowerId\"r\n" +
	"\x14OpenPositionResponse\x12\x1f\n" +
	"\vposition_id\x18\x01 \x01(\tR\n" +
	"positionId\x12#\n" +
	"\rminted_amount\x18\x02 \x01(\tR\fmintedAmount\x12\x14\n" +
	"\x05ratio\x18\x03 \x01(\tR\x05ratio\"c\n" +
	"\x14ClosePositionRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x18\n" +
	"\apayment\x18\x03 \x01(\tR\apayment\"`\n" +
	"\x15ClosePositionResponse\x12\x16\n" +
	"\x06change\x18\x01 \x01(\tR\x06change\x12/\n" +
	"\x13released_collateral\x18\x02 \x01(\tR\x12releasedCollateral\"c\n" +
	"\x16TopUpCollateralRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\"d\n" +
	"\x17RemoveCollateralRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\"^\n" +
	"\x11BorrowMoreRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\"_\n" +
	"\x10RepayDebtRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x18\n" +
	"\apayment\x18\x03 \x01(\tR\apayment\"+\n" +
	"\x11RepayDebtResponse\x12\x16\n" +
	"\x06change\x18\x01 \x01(\tR\x06change\"a\n" +
	"\x11ChangeRateRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x19\n" +
	"\bnew_rate\x18\x03 \x01(\tR\anewRate\"K\n" +
	"\x16TagIrredeemableRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\"8\n" +
	"\x17TagIrredeemableResponse\x12\x1d\n" +
	"\n" +
	"fee_minted\x18\x01 \x01(\tR\tfeeMinted\"L\n" +
	"\x17RetrieveLeftoverRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\"2\n" +
	"\x18RetrieveLeftoverResponse\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\tR\x06amount\"N\n" +
	"\x19BurnClosedPositionRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\"*\n" +
	"\x0eMutateResponse\x12\x18\n" +
	"\aapplied\x18\x01 \x01(\bR\aapplied\"\x86\x01\n" +
	"\x10LiquidateRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\x12\x18\n" +
	"\apayment\x18\x03 \x01(\tR\apayment\x12%\n" +
	"\x0eprice_override\x18\x04 \x01(\tR\rpriceOverride\"\x80\x01\n" +
	"\x11LiquidateResponse\x12\x16\n" +
	"\x06marked\x18\x01 \x01(\bR\x06marked\x12#\n" +
	"\rdeadline_unix\x18\x02 \x01(\x03R\fdeadlineUnix\x12\x16\n" +
	"\x06payout\x18\x03 \x01(\tR\x06payout\x12\x16\n" +
	"\x06change\x18\x04 \x01(\tR\x06change\"J\n" +
	"\x15CheckLiquidateRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1f\n" +
	"\vposition_id\x18\x02 \x01(\tR\n" +
	"positionId\"<\n" +
	"\x16CheckLiquidateResponse\x12\"\n" +
	"\fliquidatable\x18\x01 \x01(\bR\fliquidatable\"O\n" +
	"\x17NextLiquidationsRequest\x12\x1e\n" +
	"\n" +
	"collateral\x18\x01 \x01(\tR\n" +
	"collateral\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"=\n" +
	"\x18NextLiquidationsResponse\x12!\n" +
	"\fposition_ids\x18\x01 \x03(\tR\vpositionIds\"\xca\x01\n" +
	"\rRedeemRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1e\n" +
	"\n" +
	"collateral\x18\x02 \x01(\tR\n" +
	"collateral\x12\x18\n" +
	"\apayment\x18\x03 \x01(\tR\apayment\x12#\n" +
	"\rmax_positions\x18\x04 \x01(\x05R\fmaxPositions\x12!\n" +
	"\ffee_override\x18\x05 \x01(\tR\vfeeOverride\x12%\n" +
	"\x0eprice_override\x18\x06 \x01(\tR\rpriceOverride\"\xa2\x01\n" +
	"\x0eRedeemResponse\x12!\n" +
	"\fpayment_used\x18\x01 \x01(\tR\vpaymentUsed\x12/\n" +
	"\x13collateral_received\x18\x02 \x01(\tR\x12collateralReceived\x12\x19\n" +
	"\bfee_used\x18\x03 \x01(\tR\afeeUsed\x12!\n" +
	"\fposition_ids\x18\x04 \x03(\tR\vpositionIds\"\xd7\x01\n" +
	"\x14OptimalRedeemRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12P\n" +
	"\atargets\x18\x02 \x03(\v26.stableledger.ops.v1.OptimalRedeemRequest.TargetsEntryR\atargets\x12\x1f\n" +
	"\vstep_budget\x18\x03 \x01(\x05R\n" +
	"stepBudget\x1a:\n" +
	"\fTargetsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xac\x01\n" +
	"\x15ChargeInterestRequest\x12\x10\n" +
	"\x03ref\x18\x01 \x01(\tR\x03ref\x12\x1e\n" +
	"\n" +
	"collateral\x18\x02 \x01(\tR\n" +
	"collateral\x12\x1d\n" +
	"\n" +
	"rate_start\x18\x03 \x01(\tR\trateStart\x12\x19\n" +
	"\brate_end\x18\x04 \x01(\tR\arateEnd\x12'\n" +
	"\x0fsubstitute_rate\x18\x05 \x01(\tR\x0esubstituteRate\"Q\n" +
	"\x16ChargeInterestResponse\x12\x16\n" +
	"\x06minted\x18\x01 \x01(\tR\x06minted\x12\x1f\n" +
	"\vlowest_rate\x18\x02 \x01(\tR\n" +
	"lowestRate2\x93\x12\n" +
	"\n" +
	"OpsService\x12}\n" +
	"\fOpenPosition\x12(.stableledger.ops.v1.OpenPositionRequest\x1a).stableledger.ops.v1.OpenPositionResponse\"\x18\x82\xd3\xe4\x93\x02\x12:\x01*\"\r/v1/positions\x12\x94\x01\n" +
	"\rClosePosition\x12).stableledger.ops.v1.ClosePositionRequest\x1a*.stableledger.ops.v1.ClosePositionResponse\",\x82\xd3\xe4\x93\x02&:\x01*\"!/v1/positions/{position_id}/close\x12\x91\x01\n" +
	"\x0fTopUpCollateral\x12+.stableledger.ops.v1.TopUpCollateralRequest\x1a#.stableledger.ops.v1.MutateResponse\",\x82\xd3\xe4\x93\x02&:\x01*\"!/v1/positions/{position_id}/topup\x12\x9f\x01\n" +
	"\x10RemoveCollateral\x12,.stableledger.ops.v1.RemoveCollateralRequest\x1a#.stableledger.ops.v1.MutateResponse\"8\x82\xd3\xe4\x93\x022:\x01*\"-/v1/positions/{position_id}/remove-collateral\x12\x88\x01\n" +
	"\n" +
	"BorrowMore\x12&.stableledger.ops.v1.BorrowMoreRequest\x1a#.stableledger.ops.v1.MutateResponse\"-\x82\xd3\xe4\x93\x02':\x01*\"\"/v1/positions/{position_id}/borrow\x12\x88\x01\n" +
	"\tRepayDebt\x12%.stableledger.ops.v1.RepayDebtRequest\x1a&.stableledger.ops.v1.RepayDebtResponse\",\x82\xd3\xe4\x93\x02&:\x01*\"!/v1/positions/{position_id}/repay\x12\x86\x01\n" +
	"\n" +
	"ChangeRate\x12&.stableledger.ops.v1.ChangeRateRequest\x1a#.stableledger.ops.v1.MutateResponse\"+\x82\xd3\xe4\x93\x02%:\x01*\" /v1/positions/{position_id}/rate\x12\xa5\x01\n" +
	"\x0fTagIrredeemable\x12+.stableledger.ops.v1.TagIrredeemableRequest\x1a,.stableledger.ops.v1.TagIrredeemableResponse\"7\x82\xd3\xe4\x93\x021:\x01*\",/v1/positions/{position_id}/tag-irredeemable\x12\xb3\x01\n" +
	"\x1aRetrieveLeftoverCollateral\x12,.stableledger.ops.v1.RetrieveLeftoverRequest\x1a-.stableledger.ops.v1.RetrieveLeftoverResponse\"8\x82\xd3\xe4\x93\x022:\x01*\"-/v1/positions/{position_id}/retrieve-leftover\x12\x96\x01\n" +
	"\x12BurnClosedPosition\x12..stableledger.ops.v1.BurnClosedPositionRequest\x1a#.stableledger.ops.v1.MutateResponse\"+\x82\xd3\xe4\x93\x02%:\x01*\" /v1/positions/{position_id}/burn\x12w\n" +
	"\tLiquidate\x12%.stableledger.ops.v1.LiquidateRequest\x1a&.stableledger.ops.v1.LiquidateResponse\"\x1b\x82\xd3\xe4\x93\x02\x15:\x01*\"\x10/v1/liquidations\x12\x97\x01\n" +
	"\x0eCheckLiquidate\x12*.stableledger.ops.v1.CheckLiquidateRequest\x1a+.stableledger.ops.v1.CheckLiquidateResponse\",\x82\xd3\xe4\x93\x02&\x12$/v1/liquidations/{position_id}/check\x12\x8e\x01\n" +
	"\x10NextLiquidations\x12,.stableledger.ops.v1.NextLiquidationsRequest\x1a-.stableledger.ops.v1.NextLiquidationsResponse\"\x1d\x82\xd3\xe4\x93\x02\x17\x12\x15/v1/liquidations/next\x12m\n" +
	"\x06Redeem\x12\".stableledger.ops.v1.RedeemRequest\x1a#.stableledger.ops.v1.RedeemResponse\"\x1a\x82\xd3\xe4\x93\x02\x14:\x01*\"\x0f/v1/redemptions\x12\x83\x01\n" +
	"\rOptimalRedeem\x12).stableledger.ops.v1.OptimalRedeemRequest\x1a#.stableledger.ops.v1.RedeemResponse\"\"\x82\xd3\xe4\x93\x02\x1c:\x01*\"\x17/v1/redemptions/optimal\x12\x89\x01\n" +
	"\x0eChargeInterest\x12*.stableledger.ops.v1.ChargeInterestRequest\x1a+.stableledger.ops.v1.ChargeInterestResponse\"\x1e\x82\xd3\xe4\x93\x02\x18:\x01*\"\x13/v1/interest/chargeB/Z-StableLedger/gen/go/stableledger/ops/v1;opsv1b\x06proto3"

var (
	file_stableledger_ops_v1_ops_proto_rawDescOnce sync.Once
	file_stableledger_ops_v1_ops_proto_rawDescData []byte
)

func file_stableledger_ops_v1_ops_proto_rawDescGZIP() []byte {
	file_stableledger_ops_v1_ops_proto_rawDescOnce.Do(func() {
		file_stableledger_ops_v1_ops_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stableledger_ops_v1_ops_proto_rawDesc), len(file_stableledger_ops_v1_ops_proto_rawDesc)))
	})
	return file_stableledger_ops_v1_ops_proto_rawDescData
}

var file_stableledger_ops_v1_ops_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_stableledger_ops_v1_ops_proto_goTypes = []any{
	(*OpenPositionRequest)(nil),       // 0: stableledger.ops.v1.OpenPositionRequest
	(*OpenPositionResponse)(nil),      // 1: stableledger.ops.v1.OpenPositionResponse
	(*ClosePositionRequest)(nil),      // 2: stableledger.ops.v1.ClosePositionRequest
	(*ClosePositionResponse)(nil),     // 3: stableledger.ops.v1.ClosePositionResponse
	(*TopUpCollateralRequest)(nil),    // 4: stableledger.ops.v1.TopUpCollateralRequest
	(*RemoveCollateralRequest)(nil),   // 5: stableledger.ops.v1.RemoveCollateralRequest
	(*BorrowMoreRequest)(nil),         // 6: stableledger.ops.v1.BorrowMoreRequest
	(*RepayDebtRequest)(nil),          // 7: stableledger.ops.v1.RepayDebtRequest
	(*RepayDebtResponse)(nil),         // 8: stableledger.ops.v1.RepayDebtResponse
	(*ChangeRateRequest)(nil),         // 9: stableledger.ops.v1.ChangeRateRequest
	(*TagIrredeemableRequest)(nil),    // 10: stableledger.ops.v1.TagIrredeemableRequest
	(*TagIrredeemableResponse)(nil),   // 11: stableledger.ops.v1.TagIrredeemableResponse
	(*RetrieveLeftoverRequest)(nil),   // 12: stableledger.ops.v1.RetrieveLeftoverRequest
	(*RetrieveLeftoverResponse)(nil),  // 13: stableledger.ops.v1.RetrieveLeftoverResponse
	(*BurnClosedPositionRequest)(nil), // 14: stableledger.ops.v1.BurnClosedPositionRequest
	(*MutateResponse)(nil),            // 15: stableledger.ops.v1.MutateResponse
	(*LiquidateRequest)(nil),          // 16: stableledger.ops.v1.LiquidateRequest
	(*LiquidateResponse)(nil),         // 17: stableledger.ops.v1.LiquidateResponse
	(*CheckLiquidateRequest)(nil),     // 18: stableledger.ops.v1.CheckLiquidateRequest
	(*CheckLiquidateResponse)(nil),    // 19: stableledger.ops.v1.CheckLiquidateResponse
	(*NextLiquidationsRequest)(nil),   // 20: stableledger.ops.v1.NextLiquidationsRequest
	(*NextLiquidationsResponse)(nil),  // 21: stableledger.ops.v1.NextLiquidationsResponse
	(*RedeemRequest)(nil),             // 22: stableledger.ops.v1.RedeemRequest
	(*RedeemResponse)(nil),            // 23: stableledger.ops.v1.RedeemResponse
	(*OptimalRedeemRequest)(nil),      // 24: stableledger.ops.v1.OptimalRedeemRequest
	(*ChargeInterestRequest)(nil),     // 25: stableledger.ops.v1.ChargeInterestRequest
	(*ChargeInterestResponse)(nil),    // 26: stableledger.ops.v1.ChargeInterestResponse
	nil,                               // 27: stableledger.ops.v1.OptimalRedeemRequest.TargetsEntry
}
var file_stableledger_ops_v1_ops_proto_depIdxs = []int32{
	27, // 0: stableledger.ops.v1.OptimalRedeemRequest.targets:type_name -> stableledger.ops.v1.OptimalRedeemRequest.TargetsEntry
	0,  // 1: stableledger.ops.v1.OpsService.OpenPosition:input_type -> stableledger.ops.v1.OpenPositionRequest
	2,  // 2: stableledger.ops.v1.OpsService.ClosePosition:input_type -> stableledger.ops.v1.ClosePositionRequest
	4,  // 3: stableledger.ops.v1.OpsService.TopUpCollateral:input_type -> stableledger.ops.v1.TopUpCollateralRequest
	5,  // 4: stableledger.ops.v1.OpsService.RemoveCollateral:input_type -> stableledger.ops.v1.RemoveCollateralRequest
	6,  // 5: stableledger.ops.v1.OpsService.BorrowMore:input_type -> stableledger.ops.v1.BorrowMoreRequest
	7,  // 6: stableledger.ops.v1.OpsService.RepayDebt:input_type -> stableledger.ops.v1.RepayDebtRequest
	9,  // 7: stableledger.ops.v1.OpsService.ChangeRate:input_type -> stableledger.ops.v1.ChangeRateRequest
	10, // 8: stableledger.ops.v1.OpsService.TagIrredeemable:input_type -> stableledger.ops.v1.TagIrredeemableRequest
	12, // 9: stableledger.ops.v1.OpsService.RetrieveLeftoverCollateral:input_type -> stableledger.ops.v1.RetrieveLeftoverRequest
	14, // 10: stableledger.ops.v1.OpsService.BurnClosedPosition:input_type -> stableledger.ops.v1.BurnClosedPositionRequest
	16, // 11: stableledger.ops.v1.OpsService.Liquidate:input_type -> stableledger.ops.v1.LiquidateRequest
	18, // 12: stableledger.ops.v1.OpsService.CheckLiquidate:input_type -> stableledger.ops.v1.CheckLiquidateRequest
	20, // 13: stableledger.ops.v1.OpsService.NextLiquidations:input_type -> stableledger.ops.v1.NextLiquidationsRequest
	22, // 14: stableledger.ops.v1.OpsService.Redeem:input_type -> stableledger.ops.v1.RedeemRequest
	24, // 15: stableledger.ops.v1.OpsService.OptimalRedeem:input_type -> stableledger.ops.v1.OptimalRedeemRequest
	25, // 16: stableledger.ops.v1.OpsService.ChargeInterest:input_type -> stableledger.ops.v1.ChargeInterestRequest
	1,  // 17: stableledger.ops.v1.OpsService.OpenPosition:output_type -> stableledger.ops.v1.OpenPositionResponse
	3,  // 18: stableledger.ops.v1.OpsService.ClosePosition:output_type -> stableledger.ops.v1.ClosePositionResponse
	15, // 19: stableledger.ops.v1.OpsService.TopUpCollateral:output_type -> stableledger.ops.v1.MutateResponse
	15, // 20: stableledger.ops.v1.OpsService.RemoveCollateral:output_type -> stableledger.ops.v1.MutateResponse
	15, // 21: stableledger.ops.v1.OpsService.BorrowMore:output_type -> stableledger.ops.v1.MutateResponse
	8,  // 22: stableledger.ops.v1.OpsService.RepayDebt:output_type -> stableledger.ops.v1.RepayDebtResponse
	15, // 23: stableledger.ops.v1.OpsService.ChangeRate:output_type -> stableledger.ops.v1.MutateResponse
	11, // 24: stableledger.ops.v1.OpsService.TagIrredeemable:output_type -> stableledger.ops.v1.TagIrredeemableResponse
	13, // 25: stableledger.ops.v1.OpsService.RetrieveLeftoverCollateral:output_type -> stableledger.ops.v1.RetrieveLeftoverResponse
	15, // 26: stableledger.ops.v1.OpsService.BurnClosedPosition:output_type -> stableledger.ops.v1.MutateResponse
	17, // 27: stableledger.ops.v1.OpsService.Liquidate:output_type -> stableledger.ops.v1.LiquidateResponse
	19, // 28: stableledger.ops.v1.OpsService.CheckLiquidate:output_type -> stableledger.ops.v1.CheckLiquidateResponse
	21, // 29: stableledger.ops.v1.OpsService.NextLiquidations:output_type -> stableledger.ops.v1.NextLiquidationsResponse
	23, // 30: stableledger.ops.v1.OpsService.Redeem:output_type -> stableledger.ops.v1.RedeemResponse
	23, // 31: stableledger.ops.v1.OpsService.OptimalRedeem:output_type -> stableledger.ops.v1.RedeemResponse
	26, // 32: stableledger.ops.v1.OpsService.ChargeInterest:output_type -> stableledger.ops.v1.ChargeInterestResponse
	17, // [17:33] is the sub-list for method output_type
	1,  // [1:17] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_stableledger_ops_v1_ops_proto_init() }
func file_stableledger_ops_v1_ops_proto_init() {
	if File_stableledger_ops_v1_ops_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stableledger_ops_v1_ops_proto_rawDesc), len(file_stableledger_ops_v1_ops_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stableledger_ops_v1_ops_proto_goTypes,
		DependencyIndexes: file_stableledger_ops_v1_ops_proto_depIdxs,
		MessageInfos:      file_stableledger_ops_v1_ops_proto_msgTypes,
	}.Build()
	File_stableledger_ops_v1_ops_proto = out.File
	file_stableledger_ops_v1_ops_proto_goTypes = nil
	file_stableledger_ops_v1_ops_proto_depIdxs = nil
}
