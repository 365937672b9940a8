// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/veridoc/ocr-review \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/veridoc/ocr-review \
//          proto/review/v1/review.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/review/v1/review.proto

package reviewpb

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

type Document struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename        string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType     string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	StoragePath     string                 `protobuf:"bytes,4,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	DocumentType    string                 `protobuf:"bytes,6,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	QualityScore    *float64               `protobuf:"fixed64,7,opt,name=quality_score,json=qualityScore,proto3,oneof" json:"quality_score,omitempty"`
	PageCount       int32                  `protobuf:"varint,8,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt     string                 `protobuf:"bytes,10,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	ProcessingError string                 `protobuf:"bytes,11,opt,name=processing_error,json=processingError,proto3" json:"processing_error,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_proto_review_v1_review_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetQualityScore() float64 {
	if x != nil && x.QualityScore != nil {
		return *x.QualityScore
	}
	return 0
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Document) GetProcessingError() string {
	if x != nil {
		return x.ProcessingError
	}
	return ""
}

type Page struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PageIndex     int32                  `protobuf:"varint,3,opt,name=page_index,json=pageIndex,proto3" json:"page_index,omitempty"`
	ImagePath     string                 `protobuf:"bytes,4,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	Width         int32                  `protobuf:"varint,5,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Page) Reset() {
	*x = Page{}
	mi := &file_proto_review_v1_review_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Page) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Page) ProtoMessage() {}

func (x *Page) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Page.ProtoReflect.Descriptor instead.
func (*Page) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{1}
}

func (x *Page) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Page) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Page) GetPageIndex() int32 {
	if x != nil {
		return x.PageIndex
	}
	return 0
}

func (x *Page) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *Page) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Page) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type Word struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	WordRef      string                 `protobuf:"bytes,1,opt,name=word_ref,json=wordRef,proto3" json:"word_ref,omitempty"`
	PageIndex    int32                  `protobuf:"varint,2,opt,name=page_index,json=pageIndex,proto3" json:"page_index,omitempty"`
	Text         string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	OriginalText string                 `protobuf:"bytes,4,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	Confidence   *float64               `protobuf:"fixed64,5,opt,name=confidence,proto3,oneof" json:"confidence,omitempty"`
	// bbox is [x1, y1, x2, y2] in normalized page coordinates; empty when the
	// word has no usable geometry.
	Bbox                     []float64 `protobuf:"fixed64,6,rep,packed,name=bbox,proto3" json:"bbox,omitempty"`
	AutoCorrected            bool      `protobuf:"varint,7,opt,name=auto_corrected,json=autoCorrected,proto3" json:"auto_corrected,omitempty"`
	ManuallyCorrected        bool      `protobuf:"varint,8,opt,name=manually_corrected,json=manuallyCorrected,proto3" json:"manually_corrected,omitempty"`
	AutoCorrectionOverridden bool      `protobuf:"varint,9,opt,name=auto_correction_overridden,json=autoCorrectionOverridden,proto3" json:"auto_correction_overridden,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Word) Reset() {
	*x = Word{}
	mi := &file_proto_review_v1_review_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Word) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Word) ProtoMessage() {}

func (x *Word) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Word.ProtoReflect.Descriptor instead.
func (*Word) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{2}
}

func (x *Word) GetWordRef() string {
	if x != nil {
		return x.WordRef
	}
	return ""
}

func (x *Word) GetPageIndex() int32 {
	if x != nil {
		return x.PageIndex
	}
	return 0
}

func (x *Word) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Word) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *Word) GetConfidence() float64 {
	if x != nil && x.Confidence != nil {
		return *x.Confidence
	}
	return 0
}

func (x *Word) GetBbox() []float64 {
	if x != nil {
		return x.Bbox
	}
	return nil
}

func (x *Word) GetAutoCorrected() bool {
	if x != nil {
		return x.AutoCorrected
	}
	return false
}

func (x *Word) GetManuallyCorrected() bool {
	if x != nil {
		return x.ManuallyCorrected
	}
	return false
}

func (x *Word) GetAutoCorrectionOverridden() bool {
	if x != nil {
		return x.AutoCorrectionOverridden
	}
	return false
}

type QualityReport struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Confidence       float64                `protobuf:"fixed64,1,opt,name=confidence,proto3" json:"confidence,omitempty"`
	GeometryCoverage float64                `protobuf:"fixed64,2,opt,name=geometry_coverage,json=geometryCoverage,proto3" json:"geometry_coverage,omitempty"`
	CorrectionScore  float64                `protobuf:"fixed64,3,opt,name=correction_score,json=correctionScore,proto3" json:"correction_score,omitempty"`
	Overall          float64                `protobuf:"fixed64,4,opt,name=overall,proto3" json:"overall,omitempty"`
	Level            string                 `protobuf:"bytes,5,opt,name=level,proto3" json:"level,omitempty"`
	Queue            string                 `protobuf:"bytes,6,opt,name=queue,proto3" json:"queue,omitempty"`
	Priority         int32                  `protobuf:"varint,7,opt,name=priority,proto3" json:"priority,omitempty"`
	ReviewMinutes    int32                  `protobuf:"varint,8,opt,name=review_minutes,json=reviewMinutes,proto3" json:"review_minutes,omitempty"`
	Recommendations  []string               `protobuf:"bytes,9,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QualityReport) Reset() {
	*x = QualityReport{}
	mi := &file_proto_review_v1_review_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityReport) ProtoMessage() {}

func (x *QualityReport) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityReport.ProtoReflect.Descriptor instead.
func (*QualityReport) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{3}
}

func (x *QualityReport) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *QualityReport) GetGeometryCoverage() float64 {
	if x != nil {
		return x.GeometryCoverage
	}
	return 0
}

func (x *QualityReport) GetCorrectionScore() float64 {
	if x != nil {
		return x.CorrectionScore
	}
	return 0
}

func (x *QualityReport) GetOverall() float64 {
	if x != nil {
		return x.Overall
	}
	return 0
}

func (x *QualityReport) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *QualityReport) GetQueue() string {
	if x != nil {
		return x.Queue
	}
	return ""
}

func (x *QualityReport) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *QualityReport) GetReviewMinutes() int32 {
	if x != nil {
		return x.ReviewMinutes
	}
	return 0
}

func (x *QualityReport) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

type IngestDocumentRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Filename    string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	StoragePath string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	// payload is the OCR engine's JSON export (pages > blocks > lines > words).
	Payload []byte `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	// page_image_paths aligns by page index with the payload's pages.
	PageImagePaths []string `protobuf:"bytes,5,rep,name=page_image_paths,json=pageImagePaths,proto3" json:"page_image_paths,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{4}
}

func (x *IngestDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *IngestDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *IngestDocumentRequest) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *IngestDocumentRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *IngestDocumentRequest) GetPageImagePaths() []string {
	if x != nil {
		return x.PageImagePaths
	}
	return nil
}

type IngestDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Pages         int32                  `protobuf:"varint,2,opt,name=pages,proto3" json:"pages,omitempty"`
	Words         int32                  `protobuf:"varint,3,opt,name=words,proto3" json:"words,omitempty"`
	Quality       *QualityReport         `protobuf:"bytes,4,opt,name=quality,proto3" json:"quality,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentResponse) Reset() {
	*x = IngestDocumentResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentResponse) ProtoMessage() {}

func (x *IngestDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentResponse.ProtoReflect.Descriptor instead.
func (*IngestDocumentResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{5}
}

func (x *IngestDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *IngestDocumentResponse) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *IngestDocumentResponse) GetWords() int32 {
	if x != nil {
		return x.Words
	}
	return 0
}

func (x *IngestDocumentResponse) GetQuality() *QualityReport {
	if x != nil {
		return x.Quality
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Pages         []*Page                `protobuf:"bytes,2,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetPages() []*Page {
	if x != nil {
		return x.Pages
	}
	return nil
}

type GetCorrectedWordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PageIndex     int32                  `protobuf:"varint,2,opt,name=page_index,json=pageIndex,proto3" json:"page_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCorrectedWordsRequest) Reset() {
	*x = GetCorrectedWordsRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCorrectedWordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCorrectedWordsRequest) ProtoMessage() {}

func (x *GetCorrectedWordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCorrectedWordsRequest.ProtoReflect.Descriptor instead.
func (*GetCorrectedWordsRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{8}
}

func (x *GetCorrectedWordsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetCorrectedWordsRequest) GetPageIndex() int32 {
	if x != nil {
		return x.PageIndex
	}
	return 0
}

type Rewrite struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WordRef       string                 `protobuf:"bytes,1,opt,name=word_ref,json=wordRef,proto3" json:"word_ref,omitempty"`
	From          string                 `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            string                 `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Strategy      string                 `protobuf:"bytes,4,opt,name=strategy,proto3" json:"strategy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Rewrite) Reset() {
	*x = Rewrite{}
	mi := &file_proto_review_v1_review_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Rewrite) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Rewrite) ProtoMessage() {}

func (x *Rewrite) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Rewrite.ProtoReflect.Descriptor instead.
func (*Rewrite) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{9}
}

func (x *Rewrite) GetWordRef() string {
	if x != nil {
		return x.WordRef
	}
	return ""
}

func (x *Rewrite) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *Rewrite) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *Rewrite) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

type GetCorrectedWordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Words         []*Word                `protobuf:"bytes,1,rep,name=words,proto3" json:"words,omitempty"`
	Rewrites      []*Rewrite             `protobuf:"bytes,2,rep,name=rewrites,proto3" json:"rewrites,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCorrectedWordsResponse) Reset() {
	*x = GetCorrectedWordsResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCorrectedWordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCorrectedWordsResponse) ProtoMessage() {}

func (x *GetCorrectedWordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCorrectedWordsResponse.ProtoReflect.Descriptor instead.
func (*GetCorrectedWordsResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{10}
}

func (x *GetCorrectedWordsResponse) GetWords() []*Word {
	if x != nil {
		return x.Words
	}
	return nil
}

func (x *GetCorrectedWordsResponse) GetRewrites() []*Rewrite {
	if x != nil {
		return x.Rewrites
	}
	return nil
}

type Correction struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PageIndex      int32                  `protobuf:"varint,3,opt,name=page_index,json=pageIndex,proto3" json:"page_index,omitempty"`
	WordRef        string                 `protobuf:"bytes,4,opt,name=word_ref,json=wordRef,proto3" json:"word_ref,omitempty"`
	OriginalText   string                 `protobuf:"bytes,5,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	CorrectedText  string                 `protobuf:"bytes,6,opt,name=corrected_text,json=correctedText,proto3" json:"corrected_text,omitempty"`
	Author         string                 `protobuf:"bytes,7,opt,name=author,proto3" json:"author,omitempty"`
	CorrectionType string                 `protobuf:"bytes,8,opt,name=correction_type,json=correctionType,proto3" json:"correction_type,omitempty"`
	Bbox           []float64              `protobuf:"fixed64,9,rep,packed,name=bbox,proto3" json:"bbox,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Correction) Reset() {
	*x = Correction{}
	mi := &file_proto_review_v1_review_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Correction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Correction) ProtoMessage() {}

func (x *Correction) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Correction.ProtoReflect.Descriptor instead.
func (*Correction) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{11}
}

func (x *Correction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Correction) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Correction) GetPageIndex() int32 {
	if x != nil {
		return x.PageIndex
	}
	return 0
}

func (x *Correction) GetWordRef() string {
	if x != nil {
		return x.WordRef
	}
	return ""
}

func (x *Correction) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *Correction) GetCorrectedText() string {
	if x != nil {
		return x.CorrectedText
	}
	return ""
}

func (x *Correction) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Correction) GetCorrectionType() string {
	if x != nil {
		return x.CorrectionType
	}
	return ""
}

func (x *Correction) GetBbox() []float64 {
	if x != nil {
		return x.Bbox
	}
	return nil
}

func (x *Correction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type LexiconEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Misspelled    string                 `protobuf:"bytes,1,opt,name=misspelled,proto3" json:"misspelled,omitempty"`
	Corrected     string                 `protobuf:"bytes,2,opt,name=corrected,proto3" json:"corrected,omitempty"`
	Scope         string                 `protobuf:"bytes,3,opt,name=scope,proto3" json:"scope,omitempty"`
	Frequency     int32                  `protobuf:"varint,4,opt,name=frequency,proto3" json:"frequency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LexiconEntry) Reset() {
	*x = LexiconEntry{}
	mi := &file_proto_review_v1_review_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LexiconEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LexiconEntry) ProtoMessage() {}

func (x *LexiconEntry) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LexiconEntry.ProtoReflect.Descriptor instead.
func (*LexiconEntry) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{12}
}

func (x *LexiconEntry) GetMisspelled() string {
	if x != nil {
		return x.Misspelled
	}
	return ""
}

func (x *LexiconEntry) GetCorrected() string {
	if x != nil {
		return x.Corrected
	}
	return ""
}

func (x *LexiconEntry) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *LexiconEntry) GetFrequency() int32 {
	if x != nil {
		return x.Frequency
	}
	return 0
}

type RecordCorrectionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PageIndex      int32                  `protobuf:"varint,2,opt,name=page_index,json=pageIndex,proto3" json:"page_index,omitempty"`
	WordRef        string                 `protobuf:"bytes,3,opt,name=word_ref,json=wordRef,proto3" json:"word_ref,omitempty"`
	OriginalText   string                 `protobuf:"bytes,4,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	CorrectedText  string                 `protobuf:"bytes,5,opt,name=corrected_text,json=correctedText,proto3" json:"corrected_text,omitempty"`
	Author         string                 `protobuf:"bytes,6,opt,name=author,proto3" json:"author,omitempty"`
	CorrectionType string                 `protobuf:"bytes,7,opt,name=correction_type,json=correctionType,proto3" json:"correction_type,omitempty"`
	// bbox optionally snapshots the word geometry at review time as
	// [x1, y1, x2, y2]; two-corner [[x1,y1],[x2,y2]] input flattens to the
	// same four numbers.
	Bbox          []float64 `protobuf:"fixed64,8,rep,packed,name=bbox,proto3" json:"bbox,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordCorrectionRequest) Reset() {
	*x = RecordCorrectionRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordCorrectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordCorrectionRequest) ProtoMessage() {}

func (x *RecordCorrectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordCorrectionRequest.ProtoReflect.Descriptor instead.
func (*RecordCorrectionRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{13}
}

func (x *RecordCorrectionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RecordCorrectionRequest) GetPageIndex() int32 {
	if x != nil {
		return x.PageIndex
	}
	return 0
}

func (x *RecordCorrectionRequest) GetWordRef() string {
	if x != nil {
		return x.WordRef
	}
	return ""
}

func (x *RecordCorrectionRequest) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *RecordCorrectionRequest) GetCorrectedText() string {
	if x != nil {
		return x.CorrectedText
	}
	return ""
}

func (x *RecordCorrectionRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *RecordCorrectionRequest) GetCorrectionType() string {
	if x != nil {
		return x.CorrectionType
	}
	return ""
}

func (x *RecordCorrectionRequest) GetBbox() []float64 {
	if x != nil {
		return x.Bbox
	}
	return nil
}

type RecordCorrectionResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Correction      *Correction            `protobuf:"bytes,1,opt,name=correction,proto3" json:"correction,omitempty"`
	Orphaned        bool                   `protobuf:"varint,2,opt,name=orphaned,proto3" json:"orphaned,omitempty"`
	WordUpdated     bool                   `protobuf:"varint,3,opt,name=word_updated,json=wordUpdated,proto3" json:"word_updated,omitempty"`
	SampleCollected bool                   `protobuf:"varint,4,opt,name=sample_collected,json=sampleCollected,proto3" json:"sample_collected,omitempty"`
	// promoted is set when this correction crossed the learning threshold.
	Promoted      *LexiconEntry `protobuf:"bytes,5,opt,name=promoted,proto3" json:"promoted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordCorrectionResponse) Reset() {
	*x = RecordCorrectionResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordCorrectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordCorrectionResponse) ProtoMessage() {}

func (x *RecordCorrectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordCorrectionResponse.ProtoReflect.Descriptor instead.
func (*RecordCorrectionResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{14}
}

func (x *RecordCorrectionResponse) GetCorrection() *Correction {
	if x != nil {
		return x.Correction
	}
	return nil
}

func (x *RecordCorrectionResponse) GetOrphaned() bool {
	if x != nil {
		return x.Orphaned
	}
	return false
}

func (x *RecordCorrectionResponse) GetWordUpdated() bool {
	if x != nil {
		return x.WordUpdated
	}
	return false
}

func (x *RecordCorrectionResponse) GetSampleCollected() bool {
	if x != nil {
		return x.SampleCollected
	}
	return false
}

func (x *RecordCorrectionResponse) GetPromoted() *LexiconEntry {
	if x != nil {
		return x.Promoted
	}
	return nil
}

type GetLexiconRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// scope is "global" (also the default for an empty string) or a document
	// type.
	Scope         string `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLexiconRequest) Reset() {
	*x = GetLexiconRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLexiconRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLexiconRequest) ProtoMessage() {}

func (x *GetLexiconRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLexiconRequest.ProtoReflect.Descriptor instead.
func (*GetLexiconRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{15}
}

func (x *GetLexiconRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

type LexiconRule struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Corrected     string                 `protobuf:"bytes,1,opt,name=corrected,proto3" json:"corrected,omitempty"`
	Frequency     int32                  `protobuf:"varint,2,opt,name=frequency,proto3" json:"frequency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LexiconRule) Reset() {
	*x = LexiconRule{}
	mi := &file_proto_review_v1_review_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LexiconRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LexiconRule) ProtoMessage() {}

func (x *LexiconRule) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LexiconRule.ProtoReflect.Descriptor instead.
func (*LexiconRule) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{16}
}

func (x *LexiconRule) GetCorrected() string {
	if x != nil {
		return x.Corrected
	}
	return ""
}

func (x *LexiconRule) GetFrequency() int32 {
	if x != nil {
		return x.Frequency
	}
	return 0
}

type GetLexiconResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Scope         string                  `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"`
	Rules         map[string]*LexiconRule `protobuf:"bytes,2,rep,name=rules,proto3" json:"rules,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLexiconResponse) Reset() {
	*x = GetLexiconResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLexiconResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLexiconResponse) ProtoMessage() {}

func (x *GetLexiconResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLexiconResponse.ProtoReflect.Descriptor instead.
func (*GetLexiconResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{17}
}

func (x *GetLexiconResponse) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *GetLexiconResponse) GetRules() map[string]*LexiconRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type GetCorrectionStatsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// document_id empty means the whole log.
	DocumentId    string `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCorrectionStatsRequest) Reset() {
	*x = GetCorrectionStatsRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCorrectionStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCorrectionStatsRequest) ProtoMessage() {}

func (x *GetCorrectionStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCorrectionStatsRequest.ProtoReflect.Descriptor instead.
func (*GetCorrectionStatsRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{18}
}

func (x *GetCorrectionStatsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetCorrectionStatsResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TotalCorrections int32                  `protobuf:"varint,1,opt,name=total_corrections,json=totalCorrections,proto3" json:"total_corrections,omitempty"`
	UniqueOriginals  int32                  `protobuf:"varint,2,opt,name=unique_originals,json=uniqueOriginals,proto3" json:"unique_originals,omitempty"`
	ByAuthor         map[string]int32       `protobuf:"bytes,3,rep,name=by_author,json=byAuthor,proto3" json:"by_author,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByPattern        map[string]int32       `protobuf:"bytes,4,rep,name=by_pattern,json=byPattern,proto3" json:"by_pattern,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	FirstAt          string                 `protobuf:"bytes,5,opt,name=first_at,json=firstAt,proto3" json:"first_at,omitempty"`
	LastAt           string                 `protobuf:"bytes,6,opt,name=last_at,json=lastAt,proto3" json:"last_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetCorrectionStatsResponse) Reset() {
	*x = GetCorrectionStatsResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCorrectionStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCorrectionStatsResponse) ProtoMessage() {}

func (x *GetCorrectionStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCorrectionStatsResponse.ProtoReflect.Descriptor instead.
func (*GetCorrectionStatsResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{19}
}

func (x *GetCorrectionStatsResponse) GetTotalCorrections() int32 {
	if x != nil {
		return x.TotalCorrections
	}
	return 0
}

func (x *GetCorrectionStatsResponse) GetUniqueOriginals() int32 {
	if x != nil {
		return x.UniqueOriginals
	}
	return 0
}

func (x *GetCorrectionStatsResponse) GetByAuthor() map[string]int32 {
	if x != nil {
		return x.ByAuthor
	}
	return nil
}

func (x *GetCorrectionStatsResponse) GetByPattern() map[string]int32 {
	if x != nil {
		return x.ByPattern
	}
	return nil
}

func (x *GetCorrectionStatsResponse) GetFirstAt() string {
	if x != nil {
		return x.FirstAt
	}
	return ""
}

func (x *GetCorrectionStatsResponse) GetLastAt() string {
	if x != nil {
		return x.LastAt
	}
	return ""
}

type ExportDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentRequest) Reset() {
	*x = ExportDocumentRequest{}
	mi := &file_proto_review_v1_review_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentRequest) ProtoMessage() {}

func (x *ExportDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentRequest) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{20}
}

func (x *ExportDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentResponse) Reset() {
	*x = ExportDocumentResponse{}
	mi := &file_proto_review_v1_review_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentResponse) ProtoMessage() {}

func (x *ExportDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_review_v1_review_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentResponse) Descriptor() ([]byte, []int) {
	return file_proto_review_v1_review_proto_rawDescGZIP(), []int{21}
}

func (x *ExportDocumentResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_proto_review_v1_review_proto protoreflect.FileDescriptor

const file_proto_review_v1_review_proto_rawDesc = "" +
	"\n" +
	"\x1cproto/review/v1/review.proto\x12\treview.v1\"\x83\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12!\n" +
	"\fstorage_path\x18\x04 \x01(\tR\vstoragePath\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rdocument_type\x18\x06 \x01(\tR\fdocumentType\x12(\n" +
	"\rquality_score\x18\a \x01(\x01H\x00R\fqualityScore\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"page_count\x18\b \x01(\x05R\tpageCount\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\n" +
	" \x01(\tR\vprocessedAt\x12)\n" +
	"\x10processing_error\x18\v \x01(\tR\x0fprocessingErrorB\x10\n" +
	"\x0e_quality_score\"\xa3\x01\n" +
	"\x04Page\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"page_index\x18\x03 \x01(\x05R\tpageIndex\x12\x1d\n" +
	"\n" +
	"image_path\x18\x04 \x01(\tR\timagePath\x12\x14\n" +
	"\x05width\x18\x05 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x06 \x01(\x05R\x06height\"\xd5\x02\n" +
	"\x04Word\x12\x19\n" +
	"\bword_ref\x18\x01 \x01(\tR\awordRef\x12\x1d\n" +
	"\n" +
	"page_index\x18\x02 \x01(\x05R\tpageIndex\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12#\n" +
	"\roriginal_text\x18\x04 \x01(\tR\foriginalText\x12#\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01H\x00R\n" +
	"confidence\x88\x01\x01\x12\x12\n" +
	"\x04bbox\x18\x06 \x03(\x01R\x04bbox\x12%\n" +
	"\x0eauto_corrected\x18\a \x01(\bR\rautoCorrected\x12-\n" +
	"\x12manually_corrected\x18\b \x01(\bR\x11manuallyCorrected\x12<\n" +
	"\x1aauto_correction_overridden\x18\t \x01(\bR\x18autoCorrectionOverriddenB\r\n" +
	"\v_confidence\"\xba\x02\n" +
	"\rQualityReport\x12\x1e\n" +
	"\n" +
	"confidence\x18\x01 \x01(\x01R\n" +
	"confidence\x12+\n" +
	"\x11geometry_coverage\x18\x02 \x01(\x01R\x10geometryCoverage\x12)\n" +
	"\x10correction_score\x18\x03 \x01(\x01R\x0fcorrectionScore\x12\x18\n" +
	"\aoverall\x18\x04 \x01(\x01R\aoverall\x12\x14\n" +
	"\x05level\x18\x05 \x01(\tR\x05level\x12\x14\n" +
	"\x05queue\x18\x06 \x01(\tR\x05queue\x12\x1a\n" +
	"\bpriority\x18\a \x01(\x05R\bpriority\x12%\n" +
	"\x0ereview_minutes\x18\b \x01(\x05R\rreviewMinutes\x12(\n" +
	"\x0frecommendations\x18\t \x03(\tR\x0frecommendations\"\xbd\x01\n" +
	"\x15IngestDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\x12\x18\n" +
	"\apayload\x18\x04 \x01(\fR\apayload\x12(\n" +
	"\x10page_image_paths\x18\x05 \x03(\tR\x0epageImagePaths\"\xa9\x01\n" +
	"\x16IngestDocumentResponse\x12/\n" +
	"\bdocument\x18\x01 \x01(\v2\x13.review.v1.DocumentR\bdocument\x12\x14\n" +
	"\x05pages\x18\x02 \x01(\x05R\x05pages\x12\x14\n" +
	"\x05words\x18\x03 \x01(\x05R\x05words\x122\n" +
	"\aquality\x18\x04 \x01(\v2\x18.review.v1.QualityReportR\aquality\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"m\n" +
	"\x13GetDocumentResponse\x12/\n" +
	"\bdocument\x18\x01 \x01(\v2\x13.review.v1.DocumentR\bdocument\x12%\n" +
	"\x05pages\x18\x02 \x03(\v2\x0f.review.v1.PageR\x05pages\"Z\n" +
	"\x18GetCorrectedWordsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"page_index\x18\x02 \x01(\x05R\tpageIndex\"d\n" +
	"\aRewrite\x12\x19\n" +
	"\bword_ref\x18\x01 \x01(\tR\awordRef\x12\x12\n" +
	"\x04from\x18\x02 \x01(\tR\x04from\x12\x0e\n" +
	"\x02to\x18\x03 \x01(\tR\x02to\x12\x1a\n" +
	"\bstrategy\x18\x04 \x01(\tR\bstrategy\"r\n" +
	"\x19GetCorrectedWordsResponse\x12%\n" +
	"\x05words\x18\x01 \x03(\v2\x0f.review.v1.WordR\x05words\x12.\n" +
	"\brewrites\x18\x02 \x03(\v2\x12.review.v1.RewriteR\brewrites\"\xb7\x02\n" +
	"\n" +
	"Correction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"page_index\x18\x03 \x01(\x05R\tpageIndex\x12\x19\n" +
	"\bword_ref\x18\x04 \x01(\tR\awordRef\x12#\n" +
	"\roriginal_text\x18\x05 \x01(\tR\foriginalText\x12%\n" +
	"\x0ecorrected_text\x18\x06 \x01(\tR\rcorrectedText\x12\x16\n" +
	"\x06author\x18\a \x01(\tR\x06author\x12'\n" +
	"\x0fcorrection_type\x18\b \x01(\tR\x0ecorrectionType\x12\x12\n" +
	"\x04bbox\x18\t \x03(\x01R\x04bbox\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\"\x80\x01\n" +
	"\fLexiconEntry\x12\x1e\n" +
	"\n" +
	"misspelled\x18\x01 \x01(\tR\n" +
	"misspelled\x12\x1c\n" +
	"\tcorrected\x18\x02 \x01(\tR\tcorrected\x12\x14\n" +
	"\x05scope\x18\x03 \x01(\tR\x05scope\x12\x1c\n" +
	"\tfrequency\x18\x04 \x01(\x05R\tfrequency\"\x95\x02\n" +
	"\x17RecordCorrectionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"page_index\x18\x02 \x01(\x05R\tpageIndex\x12\x19\n" +
	"\bword_ref\x18\x03 \x01(\tR\awordRef\x12#\n" +
	"\roriginal_text\x18\x04 \x01(\tR\foriginalText\x12%\n" +
	"\x0ecorrected_text\x18\x05 \x01(\tR\rcorrectedText\x12\x16\n" +
	"\x06author\x18\x06 \x01(\tR\x06author\x12'\n" +
	"\x0fcorrection_type\x18\a \x01(\tR\x0ecorrectionType\x12\x12\n" +
	"\x04bbox\x18\b \x03(\x01R\x04bbox\"\xf0\x01\n" +
	"\x18RecordCorrectionResponse\x125\n" +
	"\n" +
	"correction\x18\x01 \x01(\v2\x15.review.v1.CorrectionR\n" +
	"correction\x12\x1a\n" +
	"\borphaned\x18\x02 \x01(\bR\borphaned\x12!\n" +
	"\fword_updated\x18\x03 \x01(\bR\vwordUpdated\x12)\n" +
	"\x10sample_collected\x18\x04 \x01(\bR\x0fsampleCollected\x123\n" +
	"\bpromoted\x18\x05 \x01(\v2\x17.review.v1.LexiconEntryR\bpromoted\")\n" +
	"\x11GetLexiconRequest\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\"I\n" +
	"\vLexiconRule\x12\x1c\n" +
	"\tcorrected\x18\x01 \x01(\tR\tcorrected\x12\x1c\n" +
	"\tfrequency\x18\x02 \x01(\x05R\tfrequency\"\xbc\x01\n" +
	"\x12GetLexiconResponse\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\x12>\n" +
	"\x05rules\x18\x02 \x03(\v2(.review.v1.GetLexiconResponse.RulesEntryR\x05rules\x1aP\n" +
	"\n" +
	"RulesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12,\n" +
	"\x05value\x18\x02 \x01(\v2\x16.review.v1.LexiconRuleR\x05value:\x028\x01\"<\n" +
	"\x19GetCorrectionStatsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xca\x03\n" +
	"\x1aGetCorrectionStatsResponse\x12+\n" +
	"\x11total_corrections\x18\x01 \x01(\x05R\x10totalCorrections\x12)\n" +
	"\x10unique_originals\x18\x02 \x01(\x05R\x0funiqueOriginals\x12P\n" +
	"\tby_author\x18\x03 \x03(\v23.review.v1.GetCorrectionStatsResponse.ByAuthorEntryR\bbyAuthor\x12S\n" +
	"\n" +
	"by_pattern\x18\x04 \x03(\v24.review.v1.GetCorrectionStatsResponse.ByPatternEntryR\tbyPattern\x12\x19\n" +
	"\bfirst_at\x18\x05 \x01(\tR\afirstAt\x12\x17\n" +
	"\alast_at\x18\x06 \x01(\tR\x06lastAt\x1a;\n" +
	"\rByAuthorEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a<\n" +
	"\x0eByPatternEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"8\n" +
	"\x15ExportDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x16ExportDocumentResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x9f\x04\n" +
	"\rReviewService\x12U\n" +
	"\x0eIngestDocument\x12 .review.v1.IngestDocumentRequest\x1a!.review.v1.IngestDocumentResponse\x12L\n" +
	"\vGetDocument\x12\x1d.review.v1.GetDocumentRequest\x1a\x1e.review.v1.GetDocumentResponse\x12^\n" +
	"\x11GetCorrectedWords\x12#.review.v1.GetCorrectedWordsRequest\x1a$.review.v1.GetCorrectedWordsResponse\x12[\n" +
	"\x10RecordCorrection\x12\".review.v1.RecordCorrectionRequest\x1a#.review.v1.RecordCorrectionResponse\x12I\n" +
	"\n" +
	"GetLexicon\x12\x1c.review.v1.GetLexiconRequest\x1a\x1d.review.v1.GetLexiconResponse\x12a\n" +
	"\x12GetCorrectionStats\x12$.review.v1.GetCorrectionStatsRequest\x1a%.review.v1.GetCorrectionStatsResponse2f\n" +
	"\rExportService\x12U\n" +
	"\x0eExportDocument\x12 .review.v1.ExportDocumentRequest\x1a!.review.v1.ExportDocumentResponseB<Z:github.com/veridoc/ocr-review/gen/proto/review/v1;reviewpbb\x06proto3"

var (
	file_proto_review_v1_review_proto_rawDescOnce sync.Once
	file_proto_review_v1_review_proto_rawDescData []byte
)

func file_proto_review_v1_review_proto_rawDescGZIP() []byte {
	file_proto_review_v1_review_proto_rawDescOnce.Do(func() {
		file_proto_review_v1_review_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_review_v1_review_proto_rawDesc), len(file_proto_review_v1_review_proto_rawDesc)))
	})
	return file_proto_review_v1_review_proto_rawDescData
}

var file_proto_review_v1_review_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_proto_review_v1_review_proto_goTypes = []any{
	(*Document)(nil),                   // 0: review.v1.Document
	(*Page)(nil),                       // 1: review.v1.Page
	(*Word)(nil),                       // 2: review.v1.Word
	(*QualityReport)(nil),              // 3: review.v1.QualityReport
	(*IngestDocumentRequest)(nil),      // 4: review.v1.IngestDocumentRequest
	(*IngestDocumentResponse)(nil),     // 5: review.v1.IngestDocumentResponse
	(*GetDocumentRequest)(nil),         // 6: review.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 7: review.v1.GetDocumentResponse
	(*GetCorrectedWordsRequest)(nil),   // 8: review.v1.GetCorrectedWordsRequest
	(*Rewrite)(nil),                    // 9: review.v1.Rewrite
	(*GetCorrectedWordsResponse)(nil),  // 10: review.v1.GetCorrectedWordsResponse
	(*Correction)(nil),                 // 11: review.v1.Correction
	(*LexiconEntry)(nil),               // 12: review.v1.LexiconEntry
	(*RecordCorrectionRequest)(nil),    // 13: review.v1.RecordCorrectionRequest
	(*RecordCorrectionResponse)(nil),   // 14: review.v1.RecordCorrectionResponse
	(*GetLexiconRequest)(nil),          // 15: review.v1.GetLexiconRequest
	(*LexiconRule)(nil),                // 16: review.v1.LexiconRule
	(*GetLexiconResponse)(nil),         // 17: review.v1.GetLexiconResponse
	(*GetCorrectionStatsRequest)(nil),  // 18: review.v1.GetCorrectionStatsRequest
	(*GetCorrectionStatsResponse)(nil), // 19: review.v1.GetCorrectionStatsResponse
	(*ExportDocumentRequest)(nil),      // 20: review.v1.ExportDocumentRequest
	(*ExportDocumentResponse)(nil),     // 21: review.v1.ExportDocumentResponse
	nil,                                // 22: review.v1.GetLexiconResponse.RulesEntry
	nil,                                // 23: review.v1.GetCorrectionStatsResponse.ByAuthorEntry
	nil,                                // 24: review.v1.GetCorrectionStatsResponse.ByPatternEntry
}
var file_proto_review_v1_review_proto_depIdxs = []int32{
	0,  // 0: review.v1.IngestDocumentResponse.document:type_name -> review.v1.Document
	3,  // 1: review.v1.IngestDocumentResponse.quality:type_name -> review.v1.QualityReport
	0,  // 2: review.v1.GetDocumentResponse.document:type_name -> review.v1.Document
	1,  // 3: review.v1.GetDocumentResponse.pages:type_name -> review.v1.Page
	2,  // 4: review.v1.GetCorrectedWordsResponse.words:type_name -> review.v1.Word
	9,  // 5: review.v1.GetCorrectedWordsResponse.rewrites:type_name -> review.v1.Rewrite
	11, // 6: review.v1.RecordCorrectionResponse.correction:type_name -> review.v1.Correction
	12, // 7: review.v1.RecordCorrectionResponse.promoted:type_name -> review.v1.LexiconEntry
	22, // 8: review.v1.GetLexiconResponse.rules:type_name -> review.v1.GetLexiconResponse.RulesEntry
	23, // 9: review.v1.GetCorrectionStatsResponse.by_author:type_name -> review.v1.GetCorrectionStatsResponse.ByAuthorEntry
	24, // 10: review.v1.GetCorrectionStatsResponse.by_pattern:type_name -> review.v1.GetCorrectionStatsResponse.ByPatternEntry
	16, // 11: review.v1.GetLexiconResponse.RulesEntry.value:type_name -> review.v1.LexiconRule
	4,  // 12: review.v1.ReviewService.IngestDocument:input_type -> review.v1.IngestDocumentRequest
	6,  // 13: review.v1.ReviewService.GetDocument:input_type -> review.v1.GetDocumentRequest
	8,  // 14: review.v1.ReviewService.GetCorrectedWords:input_type -> review.v1.GetCorrectedWordsRequest
	13, // 15: review.v1.ReviewService.RecordCorrection:input_type -> review.v1.RecordCorrectionRequest
	15, // 16: review.v1.ReviewService.GetLexicon:input_type -> review.v1.GetLexiconRequest
	18, // 17: review.v1.ReviewService.GetCorrectionStats:input_type -> review.v1.GetCorrectionStatsRequest
	20, // 18: review.v1.ExportService.ExportDocument:input_type -> review.v1.ExportDocumentRequest
	5,  // 19: review.v1.ReviewService.IngestDocument:output_type -> review.v1.IngestDocumentResponse
	7,  // 20: review.v1.ReviewService.GetDocument:output_type -> review.v1.GetDocumentResponse
	10, // 21: review.v1.ReviewService.GetCorrectedWords:output_type -> review.v1.GetCorrectedWordsResponse
	14, // 22: review.v1.ReviewService.RecordCorrection:output_type -> review.v1.RecordCorrectionResponse
	17, // 23: review.v1.ReviewService.GetLexicon:output_type -> review.v1.GetLexiconResponse
	19, // 24: review.v1.ReviewService.GetCorrectionStats:output_type -> review.v1.GetCorrectionStatsResponse
	21, // 25: review.v1.ExportService.ExportDocument:output_type -> review.v1.ExportDocumentResponse
	19, // [19:26] is the sub-list for method output_type
	12, // [12:19] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_proto_review_v1_review_proto_init() }
func file_proto_review_v1_review_proto_init() {
	if File_proto_review_v1_review_proto != nil {
		return
	}
	file_proto_review_v1_review_proto_msgTypes[0].OneofWrappers = []any{}
	file_proto_review_v1_review_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_review_v1_review_proto_rawDesc), len(file_proto_review_v1_review_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_proto_review_v1_review_proto_goTypes,
		DependencyIndexes: file_proto_review_v1_review_proto_depIdxs,
		MessageInfos:      file_proto_review_v1_review_proto_msgTypes,
	}.Build()
	File_proto_review_v1_review_proto = out.File
	file_proto_review_v1_review_proto_goTypes = nil
	file_proto_review_v1_review_proto_depIdxs = nil
}
