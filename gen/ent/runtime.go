// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/db/ent/schema"
	"github.com/veridoc/ocr-review/gen/ent/correction"
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/trainingsample"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	correctionFields := schema.Correction{}.Fields()
	_ = correctionFields
	// correctionDescPageIndex is the schema descriptor for page_index field.
	correctionDescPageIndex := correctionFields[2].Descriptor()
	// correction.DefaultPageIndex holds the default value on creation for the page_index field.
	correction.DefaultPageIndex = correctionDescPageIndex.Default.(int)
	// correction.PageIndexValidator is a validator for the "page_index" field. It is called by the builders before save.
	correction.PageIndexValidator = correctionDescPageIndex.Validators[0].(func(int) error)
	// correctionDescWordRef is the schema descriptor for word_ref field.
	correctionDescWordRef := correctionFields[3].Descriptor()
	// correction.DefaultWordRef holds the default value on creation for the word_ref field.
	correction.DefaultWordRef = correctionDescWordRef.Default.(string)
	// correctionDescOriginalText is the schema descriptor for original_text field.
	correctionDescOriginalText := correctionFields[4].Descriptor()
	// correction.OriginalTextValidator is a validator for the "original_text" field. It is called by the builders before save.
	correction.OriginalTextValidator = correctionDescOriginalText.Validators[0].(func(string) error)
	// correctionDescCorrectedText is the schema descriptor for corrected_text field.
	correctionDescCorrectedText := correctionFields[5].Descriptor()
	// correction.CorrectedTextValidator is a validator for the "corrected_text" field. It is called by the builders before save.
	correction.CorrectedTextValidator = correctionDescCorrectedText.Validators[0].(func(string) error)
	// correctionDescAuthor is the schema descriptor for author field.
	correctionDescAuthor := correctionFields[6].Descriptor()
	// correction.DefaultAuthor holds the default value on creation for the author field.
	correction.DefaultAuthor = correctionDescAuthor.Default.(string)
	// correctionDescCorrectionType is the schema descriptor for correction_type field.
	correctionDescCorrectionType := correctionFields[7].Descriptor()
	// correction.DefaultCorrectionType holds the default value on creation for the correction_type field.
	correction.DefaultCorrectionType = correctionDescCorrectionType.Default.(string)
	// correction.CorrectionTypeValidator is a validator for the "correction_type" field. It is called by the builders before save.
	correction.CorrectionTypeValidator = correctionDescCorrectionType.Validators[0].(func(string) error)
	// correctionDescCreatedAt is the schema descriptor for created_at field.
	correctionDescCreatedAt := correctionFields[9].Descriptor()
	// correction.DefaultCreatedAt holds the default value on creation for the created_at field.
	correction.DefaultCreatedAt = correctionDescCreatedAt.Default.(func() time.Time)
	// correctionDescID is the schema descriptor for id field.
	correctionDescID := correctionFields[0].Descriptor()
	// correction.DefaultID holds the default value on creation for the id field.
	correction.DefaultID = correctionDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[2].Descriptor()
	// document.DefaultContentType holds the default value on creation for the content_type field.
	document.DefaultContentType = documentDescContentType.Default.(string)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[3].Descriptor()
	// document.DefaultStoragePath holds the default value on creation for the storage_path field.
	document.DefaultStoragePath = documentDescStoragePath.Default.(string)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[5].Descriptor()
	// document.DefaultDocumentType holds the default value on creation for the document_type field.
	document.DefaultDocumentType = documentDescDocumentType.Default.(string)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[7].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	lexiconentryFields := schema.LexiconEntry{}.Fields()
	_ = lexiconentryFields
	// lexiconentryDescMisspelled is the schema descriptor for misspelled field.
	lexiconentryDescMisspelled := lexiconentryFields[1].Descriptor()
	// lexiconentry.MisspelledValidator is a validator for the "misspelled" field. It is called by the builders before save.
	lexiconentry.MisspelledValidator = lexiconentryDescMisspelled.Validators[0].(func(string) error)
	// lexiconentryDescCorrected is the schema descriptor for corrected field.
	lexiconentryDescCorrected := lexiconentryFields[2].Descriptor()
	// lexiconentry.CorrectedValidator is a validator for the "corrected" field. It is called by the builders before save.
	lexiconentry.CorrectedValidator = lexiconentryDescCorrected.Validators[0].(func(string) error)
	// lexiconentryDescScope is the schema descriptor for scope field.
	lexiconentryDescScope := lexiconentryFields[3].Descriptor()
	// lexiconentry.DefaultScope holds the default value on creation for the scope field.
	lexiconentry.DefaultScope = lexiconentryDescScope.Default.(string)
	// lexiconentryDescFrequency is the schema descriptor for frequency field.
	lexiconentryDescFrequency := lexiconentryFields[4].Descriptor()
	// lexiconentry.DefaultFrequency holds the default value on creation for the frequency field.
	lexiconentry.DefaultFrequency = lexiconentryDescFrequency.Default.(int)
	// lexiconentry.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	lexiconentry.FrequencyValidator = lexiconentryDescFrequency.Validators[0].(func(int) error)
	// lexiconentryDescCreatedAt is the schema descriptor for created_at field.
	lexiconentryDescCreatedAt := lexiconentryFields[5].Descriptor()
	// lexiconentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	lexiconentry.DefaultCreatedAt = lexiconentryDescCreatedAt.Default.(func() time.Time)
	// lexiconentryDescUpdatedAt is the schema descriptor for updated_at field.
	lexiconentryDescUpdatedAt := lexiconentryFields[6].Descriptor()
	// lexiconentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lexiconentry.DefaultUpdatedAt = lexiconentryDescUpdatedAt.Default.(func() time.Time)
	// lexiconentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lexiconentry.UpdateDefaultUpdatedAt = lexiconentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lexiconentryDescID is the schema descriptor for id field.
	lexiconentryDescID := lexiconentryFields[0].Descriptor()
	// lexiconentry.DefaultID holds the default value on creation for the id field.
	lexiconentry.DefaultID = lexiconentryDescID.Default.(func() uuid.UUID)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescPageIndex is the schema descriptor for page_index field.
	pageDescPageIndex := pageFields[2].Descriptor()
	// page.PageIndexValidator is a validator for the "page_index" field. It is called by the builders before save.
	page.PageIndexValidator = pageDescPageIndex.Validators[0].(func(int) error)
	// pageDescImagePath is the schema descriptor for image_path field.
	pageDescImagePath := pageFields[3].Descriptor()
	// page.DefaultImagePath holds the default value on creation for the image_path field.
	page.DefaultImagePath = pageDescImagePath.Default.(string)
	// pageDescWidth is the schema descriptor for width field.
	pageDescWidth := pageFields[4].Descriptor()
	// page.DefaultWidth holds the default value on creation for the width field.
	page.DefaultWidth = pageDescWidth.Default.(int)
	// page.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	page.WidthValidator = pageDescWidth.Validators[0].(func(int) error)
	// pageDescHeight is the schema descriptor for height field.
	pageDescHeight := pageFields[5].Descriptor()
	// page.DefaultHeight holds the default value on creation for the height field.
	page.DefaultHeight = pageDescHeight.Default.(int)
	// page.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	page.HeightValidator = pageDescHeight.Validators[0].(func(int) error)
	// pageDescID is the schema descriptor for id field.
	pageDescID := pageFields[0].Descriptor()
	// page.DefaultID holds the default value on creation for the id field.
	page.DefaultID = pageDescID.Default.(func() uuid.UUID)
	trainingsampleFields := schema.TrainingSample{}.Fields()
	_ = trainingsampleFields
	// trainingsampleDescWordRef is the schema descriptor for word_ref field.
	trainingsampleDescWordRef := trainingsampleFields[2].Descriptor()
	// trainingsample.DefaultWordRef holds the default value on creation for the word_ref field.
	trainingsample.DefaultWordRef = trainingsampleDescWordRef.Default.(string)
	// trainingsampleDescImagePath is the schema descriptor for image_path field.
	trainingsampleDescImagePath := trainingsampleFields[3].Descriptor()
	// trainingsample.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	trainingsample.ImagePathValidator = trainingsampleDescImagePath.Validators[0].(func(string) error)
	// trainingsampleDescOriginalText is the schema descriptor for original_text field.
	trainingsampleDescOriginalText := trainingsampleFields[4].Descriptor()
	// trainingsample.OriginalTextValidator is a validator for the "original_text" field. It is called by the builders before save.
	trainingsample.OriginalTextValidator = trainingsampleDescOriginalText.Validators[0].(func(string) error)
	// trainingsampleDescCorrectedText is the schema descriptor for corrected_text field.
	trainingsampleDescCorrectedText := trainingsampleFields[5].Descriptor()
	// trainingsample.CorrectedTextValidator is a validator for the "corrected_text" field. It is called by the builders before save.
	trainingsample.CorrectedTextValidator = trainingsampleDescCorrectedText.Validators[0].(func(string) error)
	// trainingsampleDescCreatedAt is the schema descriptor for created_at field.
	trainingsampleDescCreatedAt := trainingsampleFields[6].Descriptor()
	// trainingsample.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingsample.DefaultCreatedAt = trainingsampleDescCreatedAt.Default.(func() time.Time)
	// trainingsampleDescID is the schema descriptor for id field.
	trainingsampleDescID := trainingsampleFields[0].Descriptor()
	// trainingsample.DefaultID holds the default value on creation for the id field.
	trainingsample.DefaultID = trainingsampleDescID.Default.(func() uuid.UUID)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescBlockIndex is the schema descriptor for block_index field.
	wordDescBlockIndex := wordFields[2].Descriptor()
	// word.DefaultBlockIndex holds the default value on creation for the block_index field.
	word.DefaultBlockIndex = wordDescBlockIndex.Default.(int)
	// word.BlockIndexValidator is a validator for the "block_index" field. It is called by the builders before save.
	word.BlockIndexValidator = wordDescBlockIndex.Validators[0].(func(int) error)
	// wordDescLineIndex is the schema descriptor for line_index field.
	wordDescLineIndex := wordFields[3].Descriptor()
	// word.DefaultLineIndex holds the default value on creation for the line_index field.
	word.DefaultLineIndex = wordDescLineIndex.Default.(int)
	// word.LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	word.LineIndexValidator = wordDescLineIndex.Validators[0].(func(int) error)
	// wordDescWordIndex is the schema descriptor for word_index field.
	wordDescWordIndex := wordFields[4].Descriptor()
	// word.DefaultWordIndex holds the default value on creation for the word_index field.
	word.DefaultWordIndex = wordDescWordIndex.Default.(int)
	// word.WordIndexValidator is a validator for the "word_index" field. It is called by the builders before save.
	word.WordIndexValidator = wordDescWordIndex.Validators[0].(func(int) error)
	// wordDescAutoCorrected is the schema descriptor for auto_corrected field.
	wordDescAutoCorrected := wordFields[9].Descriptor()
	// word.DefaultAutoCorrected holds the default value on creation for the auto_corrected field.
	word.DefaultAutoCorrected = wordDescAutoCorrected.Default.(bool)
	// wordDescManuallyCorrected is the schema descriptor for manually_corrected field.
	wordDescManuallyCorrected := wordFields[10].Descriptor()
	// word.DefaultManuallyCorrected holds the default value on creation for the manually_corrected field.
	word.DefaultManuallyCorrected = wordDescManuallyCorrected.Default.(bool)
	// wordDescAutoCorrectionOverridden is the schema descriptor for auto_correction_overridden field.
	wordDescAutoCorrectionOverridden := wordFields[11].Descriptor()
	// word.DefaultAutoCorrectionOverridden holds the default value on creation for the auto_correction_overridden field.
	word.DefaultAutoCorrectionOverridden = wordDescAutoCorrectionOverridden.Default.(bool)
	// wordDescID is the schema descriptor for id field.
	wordDescID := wordFields[0].Descriptor()
	// word.DefaultID holds the default value on creation for the id field.
	word.DefaultID = wordDescID.Default.(func() uuid.UUID)
}
