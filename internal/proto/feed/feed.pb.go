// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: feed/feed.proto

package feed

import (
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

type GetFeedRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RequesterUserId string                 `protobuf:"bytes,1,opt,name=requester_user_id,json=requesterUserId,proto3" json:"requester_user_id,omitempty"`
	Limit           uint32                 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Location        string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	ExperienceMin   *int32                 `protobuf:"varint,4,opt,name=experience_min,json=experienceMin,proto3,oneof" json:"experience_min,omitempty"`
	ExperienceMax   *int32                 `protobuf:"varint,5,opt,name=experience_max,json=experienceMax,proto3,oneof" json:"experience_max,omitempty"`
	LookingForWork  *bool                  `protobuf:"varint,6,opt,name=looking_for_work,json=lookingForWork,proto3,oneof" json:"looking_for_work,omitempty"`
	Skills          []string               `protobuf:"bytes,7,rep,name=skills,proto3" json:"skills,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetFeedRequest) Reset() {
	*x = GetFeedRequest{}
	mi := &file_feed_feed_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFeedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFeedRequest) ProtoMessage() {}

func (x *GetFeedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFeedRequest.ProtoReflect.Descriptor instead.
func (*GetFeedRequest) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{0}
}

func (x *GetFeedRequest) GetRequesterUserId() string {
	if x != nil {
		return x.RequesterUserId
	}
	return ""
}

func (x *GetFeedRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *GetFeedRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *GetFeedRequest) GetExperienceMin() int32 {
	if x != nil && x.ExperienceMin != nil {
		return *x.ExperienceMin
	}
	return 0
}

func (x *GetFeedRequest) GetExperienceMax() int32 {
	if x != nil && x.ExperienceMax != nil {
		return *x.ExperienceMax
	}
	return 0
}

func (x *GetFeedRequest) GetLookingForWork() bool {
	if x != nil && x.LookingForWork != nil {
		return *x.LookingForWork
	}
	return false
}

func (x *GetFeedRequest) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

type Skill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Level         string                 `protobuf:"bytes,2,opt,name=level,proto3" json:"level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Skill) Reset() {
	*x = Skill{}
	mi := &file_feed_feed_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Skill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Skill) ProtoMessage() {}

func (x *Skill) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Skill.ProtoReflect.Descriptor instead.
func (*Skill) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{1}
}

func (x *Skill) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Skill) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

type Developer struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Bio             string                 `protobuf:"bytes,3,opt,name=bio,proto3" json:"bio,omitempty"`
	Role            string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	Skills          []*Skill               `protobuf:"bytes,5,rep,name=skills,proto3" json:"skills,omitempty"`
	AvatarUrl       string                 `protobuf:"bytes,6,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Location        string                 `protobuf:"bytes,7,opt,name=location,proto3" json:"location,omitempty"`
	ExperienceYears *int32                 `protobuf:"varint,8,opt,name=experience_years,json=experienceYears,proto3,oneof" json:"experience_years,omitempty"`
	Company         string                 `protobuf:"bytes,9,opt,name=company,proto3" json:"company,omitempty"`
	Position        string                 `protobuf:"bytes,10,opt,name=position,proto3" json:"position,omitempty"`
	Education       string                 `protobuf:"bytes,11,opt,name=education,proto3" json:"education,omitempty"`
	GithubUrl       string                 `protobuf:"bytes,12,opt,name=github_url,json=githubUrl,proto3" json:"github_url,omitempty"`
	LinkedinUrl     string                 `protobuf:"bytes,13,opt,name=linkedin_url,json=linkedinUrl,proto3" json:"linkedin_url,omitempty"`
	WebsiteUrl      string                 `protobuf:"bytes,14,opt,name=website_url,json=websiteUrl,proto3" json:"website_url,omitempty"`
	Looking         bool                   `protobuf:"varint,15,opt,name=looking,proto3" json:"looking,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Developer) Reset() {
	*x = Developer{}
	mi := &file_feed_feed_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Developer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Developer) ProtoMessage() {}

func (x *Developer) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Developer.ProtoReflect.Descriptor instead.
func (*Developer) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{2}
}

func (x *Developer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Developer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Developer) GetBio() string {
	if x != nil {
		return x.Bio
	}
	return ""
}

func (x *Developer) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Developer) GetSkills() []*Skill {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Developer) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *Developer) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Developer) GetExperienceYears() int32 {
	if x != nil && x.ExperienceYears != nil {
		return *x.ExperienceYears
	}
	return 0
}

func (x *Developer) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Developer) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *Developer) GetEducation() string {
	if x != nil {
		return x.Education
	}
	return ""
}

func (x *Developer) GetGithubUrl() string {
	if x != nil {
		return x.GithubUrl
	}
	return ""
}

func (x *Developer) GetLinkedinUrl() string {
	if x != nil {
		return x.LinkedinUrl
	}
	return ""
}

func (x *Developer) GetWebsiteUrl() string {
	if x != nil {
		return x.WebsiteUrl
	}
	return ""
}

func (x *Developer) GetLooking() bool {
	if x != nil {
		return x.Looking
	}
	return false
}

type GetFeedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Developer           `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	TotalCount    uint32                 `protobuf:"varint,3,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFeedResponse) Reset() {
	*x = GetFeedResponse{}
	mi := &file_feed_feed_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFeedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFeedResponse) ProtoMessage() {}

func (x *GetFeedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFeedResponse.ProtoReflect.Descriptor instead.
func (*GetFeedResponse) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{3}
}

func (x *GetFeedResponse) GetProfiles() []*Developer {
	if x != nil {
		return x.Profiles
	}
	return nil
}

func (x *GetFeedResponse) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

func (x *GetFeedResponse) GetTotalCount() uint32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type RecordSwipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorUserId   string                 `protobuf:"bytes,1,opt,name=actor_user_id,json=actorUserId,proto3" json:"actor_user_id,omitempty"`
	TargetUserId  string                 `protobuf:"bytes,2,opt,name=target_user_id,json=targetUserId,proto3" json:"target_user_id,omitempty"`
	Liked         bool                   `protobuf:"varint,3,opt,name=liked,proto3" json:"liked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordSwipeRequest) Reset() {
	*x = RecordSwipeRequest{}
	mi := &file_feed_feed_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordSwipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordSwipeRequest) ProtoMessage() {}

func (x *RecordSwipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordSwipeRequest.ProtoReflect.Descriptor instead.
func (*RecordSwipeRequest) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{4}
}

func (x *RecordSwipeRequest) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *RecordSwipeRequest) GetTargetUserId() string {
	if x != nil {
		return x.TargetUserId
	}
	return ""
}

func (x *RecordSwipeRequest) GetLiked() bool {
	if x != nil {
		return x.Liked
	}
	return false
}

type RecordSwipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matched       bool                   `protobuf:"varint,1,opt,name=matched,proto3" json:"matched,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordSwipeResponse) Reset() {
	*x = RecordSwipeResponse{}
	mi := &file_feed_feed_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordSwipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordSwipeResponse) ProtoMessage() {}

func (x *RecordSwipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordSwipeResponse.ProtoReflect.Descriptor instead.
func (*RecordSwipeResponse) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{5}
}

func (x *RecordSwipeResponse) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

type ListMatchesRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	UserId          string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PaginationToken *string                `protobuf:"bytes,2,opt,name=pagination_token,json=paginationToken,proto3,oneof" json:"pagination_token,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListMatchesRequest) Reset() {
	*x = ListMatchesRequest{}
	mi := &file_feed_feed_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesRequest) ProtoMessage() {}

func (x *ListMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesRequest.ProtoReflect.Descriptor instead.
func (*ListMatchesRequest) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{6}
}

func (x *ListMatchesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListMatchesRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

type ListMatchesResponse struct {
	state               protoimpl.MessageState       `protogen:"open.v1"`
	Matches             []*ListMatchesResponse_Entry `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	NextPaginationToken *string                      `protobuf:"bytes,2,opt,name=next_pagination_token,json=nextPaginationToken,proto3,oneof" json:"next_pagination_token,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ListMatchesResponse) Reset() {
	*x = ListMatchesResponse{}
	mi := &file_feed_feed_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse) ProtoMessage() {}

func (x *ListMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{7}
}

func (x *ListMatchesResponse) GetMatches() []*ListMatchesResponse_Entry {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *ListMatchesResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type CountMatchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CountMatchesRequest) Reset() {
	*x = CountMatchesRequest{}
	mi := &file_feed_feed_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CountMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountMatchesRequest) ProtoMessage() {}

func (x *CountMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountMatchesRequest.ProtoReflect.Descriptor instead.
func (*CountMatchesRequest) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{8}
}

func (x *CountMatchesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type CountMatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         uint64                 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CountMatchesResponse) Reset() {
	*x = CountMatchesResponse{}
	mi := &file_feed_feed_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CountMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountMatchesResponse) ProtoMessage() {}

func (x *CountMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountMatchesResponse.ProtoReflect.Descriptor instead.
func (*CountMatchesResponse) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{9}
}

func (x *CountMatchesResponse) GetCount() uint64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type ListMatchesResponse_Entry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MatchedUserId string                 `protobuf:"bytes,1,opt,name=matched_user_id,json=matchedUserId,proto3" json:"matched_user_id,omitempty"`
	UnixTimestamp uint64                 `protobuf:"varint,2,opt,name=unix_timestamp,json=unixTimestamp,proto3" json:"unix_timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchesResponse_Entry) Reset() {
	*x = ListMatchesResponse_Entry{}
	mi := &file_feed_feed_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchesResponse_Entry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse_Entry) ProtoMessage() {}

func (x *ListMatchesResponse_Entry) ProtoReflect() protoreflect.Message {
	mi := &file_feed_feed_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse_Entry.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse_Entry) Descriptor() ([]byte, []int) {
	return file_feed_feed_proto_rawDescGZIP(), []int{7, 0}
}

func (x *ListMatchesResponse_Entry) GetMatchedUserId() string {
	if x != nil {
		return x.MatchedUserId
	}
	return ""
}

func (x *ListMatchesResponse_Entry) GetUnixTimestamp() uint64 {
	if x != nil {
		return x.UnixTimestamp
	}
	return 0
}

var File_feed_feed_proto protoreflect.FileDescriptor

const file_feed_feed_proto_rawDesc = "" +
	"\n" +
	"\x0ffeed/feed.proto\x12\x04feed\"\xc8\x02\n" +
	"\x0eGetFeedRequest\x12*\n" +
	"\x11requester_user_id\x18\x01 \x01(\tR\x0frequesterUserId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\rR\x05limit\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12*\n" +
	"\x0eexperience_min\x18\x04 \x01(\x05H\x00R\rexperienceMin\x88\x01\x01\x12*\n" +
	"\x0eexperience_max\x18\x05 \x01(\x05H\x01R\rexperienceMax\x88\x01\x01\x12-\n" +
	"\x10looking_for_work\x18\x06 \x01(\bH\x02R\x0elookingForWork\x88\x01\x01\x12\x16\n" +
	"\x06skills\x18\a \x03(\tR\x06skillsB\x11\n" +
	"\x0f_experience_minB\x11\n" +
	"\x0f_experience_maxB\x13\n" +
	"\x11_looking_for_work\"1\n" +
	"\x05Skill\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05level\x18\x02 \x01(\tR\x05level\"\xcb\x03\n" +
	"\tDeveloper\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x10\n" +
	"\x03bio\x18\x03 \x01(\tR\x03bio\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12#\n" +
	"\x06skills\x18\x05 \x03(\v2\v.feed.SkillR\x06skills\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x06 \x01(\tR\tavatarUrl\x12\x1a\n" +
	"\blocation\x18\a \x01(\tR\blocation\x12.\n" +
	"\x10experience_years\x18\b \x01(\x05H\x00R\x0fexperienceYears\x88\x01\x01\x12\x18\n" +
	"\acompany\x18\t \x01(\tR\acompany\x12\x1a\n" +
	"\bposition\x18\n" +
	" \x01(\tR\bposition\x12\x1c\n" +
	"\teducation\x18\v \x01(\tR\teducation\x12\x1d\n" +
	"\n" +
	"github_url\x18\f \x01(\tR\tgithubUrl\x12!\n" +
	"\flinkedin_url\x18\r \x01(\tR\vlinkedinUrl\x12\x1f\n" +
	"\vwebsite_url\x18\x0e \x01(\tR\n" +
	"websiteUrl\x12\x18\n" +
	"\alooking\x18\x0f \x01(\bR\alookingB\x13\n" +
	"\x11_experience_years\"z\n" +
	"\x0fGetFeedResponse\x12+\n" +
	"\bprofiles\x18\x01 \x03(\v2\x0f.feed.DeveloperR\bprofiles\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\x12\x1f\n" +
	"\vtotal_count\x18\x03 \x01(\rR\n" +
	"totalCount\"t\n" +
	"\x12RecordSwipeRequest\x12\"\n" +
	"\ractor_user_id\x18\x01 \x01(\tR\vactorUserId\x12$\n" +
	"\x0etarget_user_id\x18\x02 \x01(\tR\ftargetUserId\x12\x14\n" +
	"\x05liked\x18\x03 \x01(\bR\x05liked\"/\n" +
	"\x13RecordSwipeResponse\x12\x18\n" +
	"\amatched\x18\x01 \x01(\bR\amatched\"r\n" +
	"\x12ListMatchesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12.\n" +
	"\x10pagination_token\x18\x02 \x01(\tH\x00R\x0fpaginationToken\x88\x01\x01B\x13\n" +
	"\x11_pagination_token\"\xfb\x01\n" +
	"\x13ListMatchesResponse\x129\n" +
	"\amatches\x18\x01 \x03(\v2\x1f.feed.ListMatchesResponse.EntryR\amatches\x127\n" +
	"\x15next_pagination_token\x18\x02 \x01(\tH\x00R\x13nextPaginationToken\x88\x01\x01\x1aV\n" +
	"\x05Entry\x12&\n" +
	"\x0fmatched_user_id\x18\x01 \x01(\tR\rmatchedUserId\x12%\n" +
	"\x0eunix_timestamp\x18\x02 \x01(\x04R\runixTimestampB\x18\n" +
	"\x16_next_pagination_token\".\n" +
	"\x13CountMatchesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\",\n" +
	"\x14CountMatchesResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x04R\x05count2\x94\x02\n" +
	"\vFeedService\x126\n" +
	"\aGetFeed\x12\x14.feed.GetFeedRequest\x1a\x15.feed.GetFeedResponse\x12B\n" +
	"\vRecordSwipe\x12\x18.feed.RecordSwipeRequest\x1a\x19.feed.RecordSwipeResponse\x12B\n" +
	"\vListMatches\x12\x18.feed.ListMatchesRequest\x1a\x19.feed.ListMatchesResponse\x12E\n" +
	"\fCountMatches\x12\x19.feed.CountMatchesRequest\x1a\x1a.feed.CountMatchesResponseB:Z8github.com/devmatch/devmatch-backend/internal/proto/feedb\x06proto3"

var (
	file_feed_feed_proto_rawDescOnce sync.Once
	file_feed_feed_proto_rawDescData []byte
)

func file_feed_feed_proto_rawDescGZIP() []byte {
	file_feed_feed_proto_rawDescOnce.Do(func() {
		file_feed_feed_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_feed_feed_proto_rawDesc), len(file_feed_feed_proto_rawDesc)))
	})
	return file_feed_feed_proto_rawDescData
}

var file_feed_feed_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_feed_feed_proto_goTypes = []any{
	(*GetFeedRequest)(nil),            // 0: feed.GetFeedRequest
	(*Skill)(nil),                     // 1: feed.Skill
	(*Developer)(nil),                 // 2: feed.Developer
	(*GetFeedResponse)(nil),           // 3: feed.GetFeedResponse
	(*RecordSwipeRequest)(nil),        // 4: feed.RecordSwipeRequest
	(*RecordSwipeResponse)(nil),       // 5: feed.RecordSwipeResponse
	(*ListMatchesRequest)(nil),        // 6: feed.ListMatchesRequest
	(*ListMatchesResponse)(nil),       // 7: feed.ListMatchesResponse
	(*CountMatchesRequest)(nil),       // 8: feed.CountMatchesRequest
	(*CountMatchesResponse)(nil),      // 9: feed.CountMatchesResponse
	(*ListMatchesResponse_Entry)(nil), // 10: feed.ListMatchesResponse.Entry
}
var file_feed_feed_proto_depIdxs = []int32{
	1,  // 0: feed.Developer.skills:type_name -> feed.Skill
	2,  // 1: feed.GetFeedResponse.profiles:type_name -> feed.Developer
	10, // 2: feed.ListMatchesResponse.matches:type_name -> feed.ListMatchesResponse.Entry
	0,  // 3: feed.FeedService.GetFeed:input_type -> feed.GetFeedRequest
	4,  // 4: feed.FeedService.RecordSwipe:input_type -> feed.RecordSwipeRequest
	6,  // 5: feed.FeedService.ListMatches:input_type -> feed.ListMatchesRequest
	8,  // 6: feed.FeedService.CountMatches:input_type -> feed.CountMatchesRequest
	3,  // 7: feed.FeedService.GetFeed:output_type -> feed.GetFeedResponse
	5,  // 8: feed.FeedService.RecordSwipe:output_type -> feed.RecordSwipeResponse
	7,  // 9: feed.FeedService.ListMatches:output_type -> feed.ListMatchesResponse
	9,  // 10: feed.FeedService.CountMatches:output_type -> feed.CountMatchesResponse
	7,  // [7:11] is the sub-list for method output_type
	3,  // [3:7] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_feed_feed_proto_init() }
func file_feed_feed_proto_init() {
	if File_feed_feed_proto != nil {
		return
	}
	file_feed_feed_proto_msgTypes[0].OneofWrappers = []any{}
	file_feed_feed_proto_msgTypes[2].OneofWrappers = []any{}
	file_feed_feed_proto_msgTypes[6].OneofWrappers = []any{}
	file_feed_feed_proto_msgTypes[7].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_feed_feed_proto_rawDesc), len(file_feed_feed_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_feed_feed_proto_goTypes,
		DependencyIndexes: file_feed_feed_proto_depIdxs,
		MessageInfos:      file_feed_feed_proto_msgTypes,
	}.Build()
	File_feed_feed_proto = out.File
	file_feed_feed_proto_goTypes = nil
	file_feed_feed_proto_depIdxs = nil
}
