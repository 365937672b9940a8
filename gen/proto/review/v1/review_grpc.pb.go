// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/veridoc/ocr-review \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/veridoc/ocr-review \
//          proto/review/v1/review.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/review/v1/review.proto

package reviewpb

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
	ReviewService_IngestDocument_FullMethodName     = "/review.v1.ReviewService/IngestDocument"
	ReviewService_GetDocument_FullMethodName        = "/review.v1.ReviewService/GetDocument"
	ReviewService_GetCorrectedWords_FullMethodName  = "/review.v1.ReviewService/GetCorrectedWords"
	ReviewService_RecordCorrection_FullMethodName   = "/review.v1.ReviewService/RecordCorrection"
	ReviewService_GetLexicon_FullMethodName         = "/review.v1.ReviewService/GetLexicon"
	ReviewService_GetCorrectionStats_FullMethodName = "/review.v1.ReviewService/GetCorrectionStats"
)

// ReviewServiceClient is the client API for ReviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReviewServiceClient interface {
	// IngestDocument accepts an OCR engine JSON export, persists its pages and
	// words, classifies the document, and scores its quality.
	IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestDocumentResponse, error)
	// GetDocument returns one document and its pages.
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	// GetCorrectedWords returns one page's words with the document's
	// correction history and the learned lexicon applied. Read-only.
	GetCorrectedWords(ctx context.Context, in *GetCorrectedWordsRequest, opts ...grpc.CallOption) (*GetCorrectedWordsResponse, error)
	// RecordCorrection appends one reviewer edit to the correction log and
	// applies its side effects (word update, lexicon learning, training
	// sample collection).
	RecordCorrection(ctx context.Context, in *RecordCorrectionRequest, opts ...grpc.CallOption) (*RecordCorrectionResponse, error)
	// GetLexicon returns the learned rules for one scope ("global" or a
	// document type), keyed by misspelling.
	GetLexicon(ctx context.Context, in *GetLexiconRequest, opts ...grpc.CallOption) (*GetLexiconResponse, error)
	// GetCorrectionStats aggregates the correction log, optionally for one
	// document.
	GetCorrectionStats(ctx context.Context, in *GetCorrectionStatsRequest, opts ...grpc.CallOption) (*GetCorrectionStatsResponse, error)
}

type reviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) ReviewServiceClient {
	return &reviewServiceClient{cc}
}

func (c *reviewServiceClient) IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDocumentResponse)
	err := c.cc.Invoke(ctx, ReviewService_IngestDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetCorrectedWords(ctx context.Context, in *GetCorrectedWordsRequest, opts ...grpc.CallOption) (*GetCorrectedWordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCorrectedWordsResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetCorrectedWords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) RecordCorrection(ctx context.Context, in *RecordCorrectionRequest, opts ...grpc.CallOption) (*RecordCorrectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordCorrectionResponse)
	err := c.cc.Invoke(ctx, ReviewService_RecordCorrection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetLexicon(ctx context.Context, in *GetLexiconRequest, opts ...grpc.CallOption) (*GetLexiconResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLexiconResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetLexicon_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetCorrectionStats(ctx context.Context, in *GetCorrectionStatsRequest, opts ...grpc.CallOption) (*GetCorrectionStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCorrectionStatsResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetCorrectionStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewServiceServer is the server API for ReviewService service.
// All implementations must embed UnimplementedReviewServiceServer
// for forward compatibility.
type ReviewServiceServer interface {
	// IngestDocument accepts an OCR engine JSON export, persists its pages and
	// words, classifies the document, and scores its quality.
	IngestDocument(context.Context, *IngestDocumentRequest) (*IngestDocumentResponse, error)
	// GetDocument returns one document and its pages.
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	// GetCorrectedWords returns one page's words with the document's
	// correction history and the learned lexicon applied. Read-only.
	GetCorrectedWords(context.Context, *GetCorrectedWordsRequest) (*GetCorrectedWordsResponse, error)
	// RecordCorrection appends one reviewer edit to the correction log and
	// applies its side effects (word update, lexicon learning, training
	// sample collection).
	RecordCorrection(context.Context, *RecordCorrectionRequest) (*RecordCorrectionResponse, error)
	// GetLexicon returns the learned rules for one scope ("global" or a
	// document type), keyed by misspelling.
	GetLexicon(context.Context, *GetLexiconRequest) (*GetLexiconResponse, error)
	// GetCorrectionStats aggregates the correction log, optionally for one
	// document.
	GetCorrectionStats(context.Context, *GetCorrectionStatsRequest) (*GetCorrectionStatsResponse, error)
	mustEmbedUnimplementedReviewServiceServer()
}

// UnimplementedReviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewServiceServer struct{}

func (UnimplementedReviewServiceServer) IngestDocument(context.Context, *IngestDocumentRequest) (*IngestDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDocument not implemented")
}
func (UnimplementedReviewServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedReviewServiceServer) GetCorrectedWords(context.Context, *GetCorrectedWordsRequest) (*GetCorrectedWordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCorrectedWords not implemented")
}
func (UnimplementedReviewServiceServer) RecordCorrection(context.Context, *RecordCorrectionRequest) (*RecordCorrectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordCorrection not implemented")
}
func (UnimplementedReviewServiceServer) GetLexicon(context.Context, *GetLexiconRequest) (*GetLexiconResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLexicon not implemented")
}
func (UnimplementedReviewServiceServer) GetCorrectionStats(context.Context, *GetCorrectionStatsRequest) (*GetCorrectionStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCorrectionStats not implemented")
}
func (UnimplementedReviewServiceServer) mustEmbedUnimplementedReviewServiceServer() {}
func (UnimplementedReviewServiceServer) testEmbeddedByValue()                       {}

// UnsafeReviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewServiceServer will
// result in compilation errors.
type UnsafeReviewServiceServer interface {
	mustEmbedUnimplementedReviewServiceServer()
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedReviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

func _ReviewService_IngestDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).IngestDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_IngestDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).IngestDocument(ctx, req.(*IngestDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetCorrectedWords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCorrectedWordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetCorrectedWords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetCorrectedWords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetCorrectedWords(ctx, req.(*GetCorrectedWordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_RecordCorrection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordCorrectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).RecordCorrection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_RecordCorrection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).RecordCorrection(ctx, req.(*RecordCorrectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetLexicon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLexiconRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetLexicon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetLexicon_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetLexicon(ctx, req.(*GetLexiconRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetCorrectionStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCorrectionStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetCorrectionStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetCorrectionStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetCorrectionStats(ctx, req.(*GetCorrectionStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewService_ServiceDesc is the grpc.ServiceDesc for ReviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "review.v1.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestDocument",
			Handler:    _ReviewService_IngestDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _ReviewService_GetDocument_Handler,
		},
		{
			MethodName: "GetCorrectedWords",
			Handler:    _ReviewService_GetCorrectedWords_Handler,
		},
		{
			MethodName: "RecordCorrection",
			Handler:    _ReviewService_RecordCorrection_Handler,
		},
		{
			MethodName: "GetLexicon",
			Handler:    _ReviewService_GetLexicon_Handler,
		},
		{
			MethodName: "GetCorrectionStats",
			Handler:    _ReviewService_GetCorrectionStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/review/v1/review.proto",
}

const (
	ExportService_ExportDocument_FullMethodName = "/review.v1.ExportService/ExportDocument"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	// ExportDocument returns an XLSX workbook with one row per resolved word,
	// corrections and lexicon applied.
	ExportDocument(ctx context.Context, in *ExportDocumentRequest, opts ...grpc.CallOption) (*ExportDocumentResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportDocument(ctx context.Context, in *ExportDocumentRequest, opts ...grpc.CallOption) (*ExportDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	// ExportDocument returns an XLSX workbook with one row per resolved word,
	// corrections and lexicon applied.
	ExportDocument(context.Context, *ExportDocumentRequest) (*ExportDocumentResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportDocument(context.Context, *ExportDocumentRequest) (*ExportDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDocument not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportDocument(ctx, req.(*ExportDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "review.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportDocument",
			Handler:    _ExportService_ExportDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/review/v1/review.proto",
}
