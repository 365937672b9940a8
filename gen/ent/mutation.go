// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc/ocr-review/gen/ent/correction"
	"github.com/veridoc/ocr-review/gen/ent/document"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
	"github.com/veridoc/ocr-review/gen/ent/page"
	"github.com/veridoc/ocr-review/gen/ent/predicate"
	"github.com/veridoc/ocr-review/gen/ent/trainingsample"
	"github.com/veridoc/ocr-review/gen/ent/word"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCorrection     = "Correction"
	TypeDocument       = "Document"
	TypeLexiconEntry   = "LexiconEntry"
	TypePage           = "Page"
	TypeTrainingSample = "TrainingSample"
	TypeWord           = "Word"
)

// CorrectionMutation represents an operation that mutates the Correction nodes in the graph.
type CorrectionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	document_id         *uuid.UUID
	page_index          *int
	addpage_index       *int
	word_ref            *string
	original_text       *string
	corrected_text      *string
	author              *string
	correction_type     *string
	bbox_snapshot       *[][]float64
	appendbbox_snapshot [][]float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Correction, error)
	predicates          []predicate.Correction
}

var _ ent.Mutation = (*CorrectionMutation)(nil)

// correctionOption allows management of the mutation configuration using functional options.
type correctionOption func(*CorrectionMutation)

// newCorrectionMutation creates new mutation for the Correction entity.
func newCorrectionMutation(c config, op Op, opts ...correctionOption) *CorrectionMutation {
	m := &CorrectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrectionID sets the ID field of the mutation.
func withCorrectionID(id uuid.UUID) correctionOption {
	return func(m *CorrectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Correction
		)
		m.oldValue = func(ctx context.Context) (*Correction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Correction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrection sets the old Correction of the mutation.
func withCorrection(node *Correction) correctionOption {
	return func(m *CorrectionMutation) {
		m.oldValue = func(context.Context) (*Correction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Correction entities.
func (m *CorrectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Correction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *CorrectionMutation) SetDocumentID(u uuid.UUID) {
	m.document_id = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *CorrectionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *CorrectionMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetPageIndex sets the "page_index" field.
func (m *CorrectionMutation) SetPageIndex(i int) {
	m.page_index = &i
	m.addpage_index = nil
}

// PageIndex returns the value of the "page_index" field in the mutation.
func (m *CorrectionMutation) PageIndex() (r int, exists bool) {
	v := m.page_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPageIndex returns the old "page_index" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldPageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageIndex: %w", err)
	}
	return oldValue.PageIndex, nil
}

// AddPageIndex adds i to the "page_index" field.
func (m *CorrectionMutation) AddPageIndex(i int) {
	if m.addpage_index != nil {
		*m.addpage_index += i
	} else {
		m.addpage_index = &i
	}
}

// AddedPageIndex returns the value that was added to the "page_index" field in this mutation.
func (m *CorrectionMutation) AddedPageIndex() (r int, exists bool) {
	v := m.addpage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageIndex resets all changes to the "page_index" field.
func (m *CorrectionMutation) ResetPageIndex() {
	m.page_index = nil
	m.addpage_index = nil
}

// SetWordRef sets the "word_ref" field.
func (m *CorrectionMutation) SetWordRef(s string) {
	m.word_ref = &s
}

// WordRef returns the value of the "word_ref" field in the mutation.
func (m *CorrectionMutation) WordRef() (r string, exists bool) {
	v := m.word_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldWordRef returns the old "word_ref" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldWordRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordRef: %w", err)
	}
	return oldValue.WordRef, nil
}

// ResetWordRef resets all changes to the "word_ref" field.
func (m *CorrectionMutation) ResetWordRef() {
	m.word_ref = nil
}

// SetOriginalText sets the "original_text" field.
func (m *CorrectionMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *CorrectionMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *CorrectionMutation) ResetOriginalText() {
	m.original_text = nil
}

// SetCorrectedText sets the "corrected_text" field.
func (m *CorrectionMutation) SetCorrectedText(s string) {
	m.corrected_text = &s
}

// CorrectedText returns the value of the "corrected_text" field in the mutation.
func (m *CorrectionMutation) CorrectedText() (r string, exists bool) {
	v := m.corrected_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedText returns the old "corrected_text" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedText: %w", err)
	}
	return oldValue.CorrectedText, nil
}

// ResetCorrectedText resets all changes to the "corrected_text" field.
func (m *CorrectionMutation) ResetCorrectedText() {
	m.corrected_text = nil
}

// SetAuthor sets the "author" field.
func (m *CorrectionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *CorrectionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *CorrectionMutation) ResetAuthor() {
	m.author = nil
}

// SetCorrectionType sets the "correction_type" field.
func (m *CorrectionMutation) SetCorrectionType(s string) {
	m.correction_type = &s
}

// CorrectionType returns the value of the "correction_type" field in the mutation.
func (m *CorrectionMutation) CorrectionType() (r string, exists bool) {
	v := m.correction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectionType returns the old "correction_type" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectionType: %w", err)
	}
	return oldValue.CorrectionType, nil
}

// ResetCorrectionType resets all changes to the "correction_type" field.
func (m *CorrectionMutation) ResetCorrectionType() {
	m.correction_type = nil
}

// SetBboxSnapshot sets the "bbox_snapshot" field.
func (m *CorrectionMutation) SetBboxSnapshot(f [][]float64) {
	m.bbox_snapshot = &f
	m.appendbbox_snapshot = nil
}

// BboxSnapshot returns the value of the "bbox_snapshot" field in the mutation.
func (m *CorrectionMutation) BboxSnapshot() (r [][]float64, exists bool) {
	v := m.bbox_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldBboxSnapshot returns the old "bbox_snapshot" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldBboxSnapshot(ctx context.Context) (v [][]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBboxSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBboxSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBboxSnapshot: %w", err)
	}
	return oldValue.BboxSnapshot, nil
}

// AppendBboxSnapshot adds f to the "bbox_snapshot" field.
func (m *CorrectionMutation) AppendBboxSnapshot(f [][]float64) {
	m.appendbbox_snapshot = append(m.appendbbox_snapshot, f...)
}

// AppendedBboxSnapshot returns the list of values that were appended to the "bbox_snapshot" field in this mutation.
func (m *CorrectionMutation) AppendedBboxSnapshot() ([][]float64, bool) {
	if len(m.appendbbox_snapshot) == 0 {
		return nil, false
	}
	return m.appendbbox_snapshot, true
}

// ClearBboxSnapshot clears the value of the "bbox_snapshot" field.
func (m *CorrectionMutation) ClearBboxSnapshot() {
	m.bbox_snapshot = nil
	m.appendbbox_snapshot = nil
	m.clearedFields[correction.FieldBboxSnapshot] = struct{}{}
}

// BboxSnapshotCleared returns if the "bbox_snapshot" field was cleared in this mutation.
func (m *CorrectionMutation) BboxSnapshotCleared() bool {
	_, ok := m.clearedFields[correction.FieldBboxSnapshot]
	return ok
}

// ResetBboxSnapshot resets all changes to the "bbox_snapshot" field.
func (m *CorrectionMutation) ResetBboxSnapshot() {
	m.bbox_snapshot = nil
	m.appendbbox_snapshot = nil
	delete(m.clearedFields, correction.FieldBboxSnapshot)
}

// SetCreatedAt sets the "created_at" field.
func (m *CorrectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CorrectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CorrectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CorrectionMutation builder.
func (m *CorrectionMutation) Where(ps ...predicate.Correction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Correction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Correction).
func (m *CorrectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrectionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document_id != nil {
		fields = append(fields, correction.FieldDocumentID)
	}
	if m.page_index != nil {
		fields = append(fields, correction.FieldPageIndex)
	}
	if m.word_ref != nil {
		fields = append(fields, correction.FieldWordRef)
	}
	if m.original_text != nil {
		fields = append(fields, correction.FieldOriginalText)
	}
	if m.corrected_text != nil {
		fields = append(fields, correction.FieldCorrectedText)
	}
	if m.author != nil {
		fields = append(fields, correction.FieldAuthor)
	}
	if m.correction_type != nil {
		fields = append(fields, correction.FieldCorrectionType)
	}
	if m.bbox_snapshot != nil {
		fields = append(fields, correction.FieldBboxSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, correction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correction.FieldDocumentID:
		return m.DocumentID()
	case correction.FieldPageIndex:
		return m.PageIndex()
	case correction.FieldWordRef:
		return m.WordRef()
	case correction.FieldOriginalText:
		return m.OriginalText()
	case correction.FieldCorrectedText:
		return m.CorrectedText()
	case correction.FieldAuthor:
		return m.Author()
	case correction.FieldCorrectionType:
		return m.CorrectionType()
	case correction.FieldBboxSnapshot:
		return m.BboxSnapshot()
	case correction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correction.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case correction.FieldPageIndex:
		return m.OldPageIndex(ctx)
	case correction.FieldWordRef:
		return m.OldWordRef(ctx)
	case correction.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case correction.FieldCorrectedText:
		return m.OldCorrectedText(ctx)
	case correction.FieldAuthor:
		return m.OldAuthor(ctx)
	case correction.FieldCorrectionType:
		return m.OldCorrectionType(ctx)
	case correction.FieldBboxSnapshot:
		return m.OldBboxSnapshot(ctx)
	case correction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Correction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correction.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case correction.FieldPageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageIndex(v)
		return nil
	case correction.FieldWordRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordRef(v)
		return nil
	case correction.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case correction.FieldCorrectedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedText(v)
		return nil
	case correction.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case correction.FieldCorrectionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectionType(v)
		return nil
	case correction.FieldBboxSnapshot:
		v, ok := value.([][]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBboxSnapshot(v)
		return nil
	case correction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrectionMutation) AddedFields() []string {
	var fields []string
	if m.addpage_index != nil {
		fields = append(fields, correction.FieldPageIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case correction.FieldPageIndex:
		return m.AddedPageIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case correction.FieldPageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Correction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(correction.FieldBboxSnapshot) {
		fields = append(fields, correction.FieldBboxSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrectionMutation) ClearField(name string) error {
	switch name {
	case correction.FieldBboxSnapshot:
		m.ClearBboxSnapshot()
		return nil
	}
	return fmt.Errorf("unknown Correction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrectionMutation) ResetField(name string) error {
	switch name {
	case correction.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case correction.FieldPageIndex:
		m.ResetPageIndex()
		return nil
	case correction.FieldWordRef:
		m.ResetWordRef()
		return nil
	case correction.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case correction.FieldCorrectedText:
		m.ResetCorrectedText()
		return nil
	case correction.FieldAuthor:
		m.ResetAuthor()
		return nil
	case correction.FieldCorrectionType:
		m.ResetCorrectionType()
		return nil
	case correction.FieldBboxSnapshot:
		m.ResetBboxSnapshot()
		return nil
	case correction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Correction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Correction edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	filename         *string
	content_type     *string
	storage_path     *string
	status           *string
	document_type    *string
	quality_score    *float64
	addquality_score *float64
	uploaded_at      *time.Time
	processed_at     *time.Time
	processing_error *string
	clearedFields    map[string]struct{}
	pages            map[uuid.UUID]struct{}
	removedpages     map[uuid.UUID]struct{}
	clearedpages     bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *DocumentMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *DocumentMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *DocumentMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *DocumentMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *DocumentMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[document.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *DocumentMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[document.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *DocumentMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, document.FieldQualityScore)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetProcessingError sets the "processing_error" field.
func (m *DocumentMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *DocumentMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *DocumentMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[document.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *DocumentMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, document.FieldProcessingError)
}

// AddPageIDs adds the "pages" edge to the Page entity by ids.
func (m *DocumentMutation) AddPageIDs(ids ...uuid.UUID) {
	if m.pages == nil {
		m.pages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the Page entity.
func (m *DocumentMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the Page entity was cleared.
func (m *DocumentMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the Page entity by IDs.
func (m *DocumentMutation) RemovePageIDs(ids ...uuid.UUID) {
	if m.removedpages == nil {
		m.removedpages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the Page entity.
func (m *DocumentMutation) RemovedPagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *DocumentMutation) PagesIDs() (ids []uuid.UUID) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *DocumentMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.quality_score != nil {
		fields = append(fields, document.FieldQualityScore)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.processing_error != nil {
		fields = append(fields, document.FieldProcessingError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldStatus:
		return m.Status()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldQualityScore:
		return m.QualityScore()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldProcessingError:
		return m.ProcessingError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldProcessingError:
		return m.OldProcessingError(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, document.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldQualityScore) {
		fields = append(fields, document.FieldQualityScore)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.FieldCleared(document.FieldProcessingError) {
		fields = append(fields, document.FieldProcessingError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case document.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pages != nil {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpages != nil {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpages {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePages:
		return m.clearedpages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePages:
		m.ResetPages()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// LexiconEntryMutation represents an operation that mutates the LexiconEntry nodes in the graph.
type LexiconEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	misspelled    *string
	corrected     *string
	scope         *string
	frequency     *int
	addfrequency  *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LexiconEntry, error)
	predicates    []predicate.LexiconEntry
}

var _ ent.Mutation = (*LexiconEntryMutation)(nil)

// lexiconentryOption allows management of the mutation configuration using functional options.
type lexiconentryOption func(*LexiconEntryMutation)

// newLexiconEntryMutation creates new mutation for the LexiconEntry entity.
func newLexiconEntryMutation(c config, op Op, opts ...lexiconentryOption) *LexiconEntryMutation {
	m := &LexiconEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLexiconEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLexiconEntryID sets the ID field of the mutation.
func withLexiconEntryID(id uuid.UUID) lexiconentryOption {
	return func(m *LexiconEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LexiconEntry
		)
		m.oldValue = func(ctx context.Context) (*LexiconEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LexiconEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLexiconEntry sets the old LexiconEntry of the mutation.
func withLexiconEntry(node *LexiconEntry) lexiconentryOption {
	return func(m *LexiconEntryMutation) {
		m.oldValue = func(context.Context) (*LexiconEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LexiconEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LexiconEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LexiconEntry entities.
func (m *LexiconEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LexiconEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LexiconEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LexiconEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMisspelled sets the "misspelled" field.
func (m *LexiconEntryMutation) SetMisspelled(s string) {
	m.misspelled = &s
}

// Misspelled returns the value of the "misspelled" field in the mutation.
func (m *LexiconEntryMutation) Misspelled() (r string, exists bool) {
	v := m.misspelled
	if v == nil {
		return
	}
	return *v, true
}

// OldMisspelled returns the old "misspelled" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldMisspelled(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMisspelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMisspelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMisspelled: %w", err)
	}
	return oldValue.Misspelled, nil
}

// ResetMisspelled resets all changes to the "misspelled" field.
func (m *LexiconEntryMutation) ResetMisspelled() {
	m.misspelled = nil
}

// SetCorrected sets the "corrected" field.
func (m *LexiconEntryMutation) SetCorrected(s string) {
	m.corrected = &s
}

// Corrected returns the value of the "corrected" field in the mutation.
func (m *LexiconEntryMutation) Corrected() (r string, exists bool) {
	v := m.corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrected returns the old "corrected" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldCorrected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrected: %w", err)
	}
	return oldValue.Corrected, nil
}

// ResetCorrected resets all changes to the "corrected" field.
func (m *LexiconEntryMutation) ResetCorrected() {
	m.corrected = nil
}

// SetScope sets the "scope" field.
func (m *LexiconEntryMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *LexiconEntryMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *LexiconEntryMutation) ResetScope() {
	m.scope = nil
}

// SetFrequency sets the "frequency" field.
func (m *LexiconEntryMutation) SetFrequency(i int) {
	m.frequency = &i
	m.addfrequency = nil
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *LexiconEntryMutation) Frequency() (r int, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldFrequency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// AddFrequency adds i to the "frequency" field.
func (m *LexiconEntryMutation) AddFrequency(i int) {
	if m.addfrequency != nil {
		*m.addfrequency += i
	} else {
		m.addfrequency = &i
	}
}

// AddedFrequency returns the value that was added to the "frequency" field in this mutation.
func (m *LexiconEntryMutation) AddedFrequency() (r int, exists bool) {
	v := m.addfrequency
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *LexiconEntryMutation) ResetFrequency() {
	m.frequency = nil
	m.addfrequency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LexiconEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LexiconEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LexiconEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LexiconEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LexiconEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LexiconEntry entity.
// If the LexiconEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LexiconEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LexiconEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LexiconEntryMutation builder.
func (m *LexiconEntryMutation) Where(ps ...predicate.LexiconEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LexiconEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LexiconEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LexiconEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LexiconEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LexiconEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LexiconEntry).
func (m *LexiconEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LexiconEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.misspelled != nil {
		fields = append(fields, lexiconentry.FieldMisspelled)
	}
	if m.corrected != nil {
		fields = append(fields, lexiconentry.FieldCorrected)
	}
	if m.scope != nil {
		fields = append(fields, lexiconentry.FieldScope)
	}
	if m.frequency != nil {
		fields = append(fields, lexiconentry.FieldFrequency)
	}
	if m.created_at != nil {
		fields = append(fields, lexiconentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lexiconentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LexiconEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lexiconentry.FieldMisspelled:
		return m.Misspelled()
	case lexiconentry.FieldCorrected:
		return m.Corrected()
	case lexiconentry.FieldScope:
		return m.Scope()
	case lexiconentry.FieldFrequency:
		return m.Frequency()
	case lexiconentry.FieldCreatedAt:
		return m.CreatedAt()
	case lexiconentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LexiconEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lexiconentry.FieldMisspelled:
		return m.OldMisspelled(ctx)
	case lexiconentry.FieldCorrected:
		return m.OldCorrected(ctx)
	case lexiconentry.FieldScope:
		return m.OldScope(ctx)
	case lexiconentry.FieldFrequency:
		return m.OldFrequency(ctx)
	case lexiconentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lexiconentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LexiconEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LexiconEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lexiconentry.FieldMisspelled:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMisspelled(v)
		return nil
	case lexiconentry.FieldCorrected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrected(v)
		return nil
	case lexiconentry.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case lexiconentry.FieldFrequency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case lexiconentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lexiconentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LexiconEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LexiconEntryMutation) AddedFields() []string {
	var fields []string
	if m.addfrequency != nil {
		fields = append(fields, lexiconentry.FieldFrequency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LexiconEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lexiconentry.FieldFrequency:
		return m.AddedFrequency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LexiconEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lexiconentry.FieldFrequency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrequency(v)
		return nil
	}
	return fmt.Errorf("unknown LexiconEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LexiconEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LexiconEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LexiconEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LexiconEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LexiconEntryMutation) ResetField(name string) error {
	switch name {
	case lexiconentry.FieldMisspelled:
		m.ResetMisspelled()
		return nil
	case lexiconentry.FieldCorrected:
		m.ResetCorrected()
		return nil
	case lexiconentry.FieldScope:
		m.ResetScope()
		return nil
	case lexiconentry.FieldFrequency:
		m.ResetFrequency()
		return nil
	case lexiconentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lexiconentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LexiconEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LexiconEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LexiconEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LexiconEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LexiconEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LexiconEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LexiconEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LexiconEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LexiconEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LexiconEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LexiconEntry edge %s", name)
}

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	page_index      *int
	addpage_index   *int
	image_path      *string
	width           *int
	addwidth        *int
	height          *int
	addheight       *int
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	words           map[uuid.UUID]struct{}
	removedwords    map[uuid.UUID]struct{}
	clearedwords    bool
	done            bool
	oldValue        func(context.Context) (*Page, error)
	predicates      []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id uuid.UUID) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Page entities.
func (m *PageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PageMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PageMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PageMutation) ResetDocumentID() {
	m.document = nil
}

// SetPageIndex sets the "page_index" field.
func (m *PageMutation) SetPageIndex(i int) {
	m.page_index = &i
	m.addpage_index = nil
}

// PageIndex returns the value of the "page_index" field in the mutation.
func (m *PageMutation) PageIndex() (r int, exists bool) {
	v := m.page_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPageIndex returns the old "page_index" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldPageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageIndex: %w", err)
	}
	return oldValue.PageIndex, nil
}

// AddPageIndex adds i to the "page_index" field.
func (m *PageMutation) AddPageIndex(i int) {
	if m.addpage_index != nil {
		*m.addpage_index += i
	} else {
		m.addpage_index = &i
	}
}

// AddedPageIndex returns the value that was added to the "page_index" field in this mutation.
func (m *PageMutation) AddedPageIndex() (r int, exists bool) {
	v := m.addpage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageIndex resets all changes to the "page_index" field.
func (m *PageMutation) ResetPageIndex() {
	m.page_index = nil
	m.addpage_index = nil
}

// SetImagePath sets the "image_path" field.
func (m *PageMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *PageMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *PageMutation) ResetImagePath() {
	m.image_path = nil
}

// SetWidth sets the "width" field.
func (m *PageMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *PageMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *PageMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *PageMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *PageMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *PageMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *PageMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *PageMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *PageMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *PageMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PageMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[page.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PageMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PageMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PageMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddWordIDs adds the "words" edge to the Word entity by ids.
func (m *PageMutation) AddWordIDs(ids ...uuid.UUID) {
	if m.words == nil {
		m.words = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.words[ids[i]] = struct{}{}
	}
}

// ClearWords clears the "words" edge to the Word entity.
func (m *PageMutation) ClearWords() {
	m.clearedwords = true
}

// WordsCleared reports if the "words" edge to the Word entity was cleared.
func (m *PageMutation) WordsCleared() bool {
	return m.clearedwords
}

// RemoveWordIDs removes the "words" edge to the Word entity by IDs.
func (m *PageMutation) RemoveWordIDs(ids ...uuid.UUID) {
	if m.removedwords == nil {
		m.removedwords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.words, ids[i])
		m.removedwords[ids[i]] = struct{}{}
	}
}

// RemovedWords returns the removed IDs of the "words" edge to the Word entity.
func (m *PageMutation) RemovedWordsIDs() (ids []uuid.UUID) {
	for id := range m.removedwords {
		ids = append(ids, id)
	}
	return
}

// WordsIDs returns the "words" edge IDs in the mutation.
func (m *PageMutation) WordsIDs() (ids []uuid.UUID) {
	for id := range m.words {
		ids = append(ids, id)
	}
	return
}

// ResetWords resets all changes to the "words" edge.
func (m *PageMutation) ResetWords() {
	m.words = nil
	m.clearedwords = false
	m.removedwords = nil
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, page.FieldDocumentID)
	}
	if m.page_index != nil {
		fields = append(fields, page.FieldPageIndex)
	}
	if m.image_path != nil {
		fields = append(fields, page.FieldImagePath)
	}
	if m.width != nil {
		fields = append(fields, page.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, page.FieldHeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldDocumentID:
		return m.DocumentID()
	case page.FieldPageIndex:
		return m.PageIndex()
	case page.FieldImagePath:
		return m.ImagePath()
	case page.FieldWidth:
		return m.Width()
	case page.FieldHeight:
		return m.Height()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case page.FieldPageIndex:
		return m.OldPageIndex(ctx)
	case page.FieldImagePath:
		return m.OldImagePath(ctx)
	case page.FieldWidth:
		return m.OldWidth(ctx)
	case page.FieldHeight:
		return m.OldHeight(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case page.FieldPageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageIndex(v)
		return nil
	case page.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case page.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case page.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	var fields []string
	if m.addpage_index != nil {
		fields = append(fields, page.FieldPageIndex)
	}
	if m.addwidth != nil {
		fields = append(fields, page.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, page.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case page.FieldPageIndex:
		return m.AddedPageIndex()
	case page.FieldWidth:
		return m.AddedWidth()
	case page.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case page.FieldPageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageIndex(v)
		return nil
	case page.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case page.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case page.FieldPageIndex:
		m.ResetPageIndex()
		return nil
	case page.FieldImagePath:
		m.ResetImagePath()
		return nil
	case page.FieldWidth:
		m.ResetWidth()
		return nil
	case page.FieldHeight:
		m.ResetHeight()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, page.EdgeDocument)
	}
	if m.words != nil {
		edges = append(edges, page.EdgeWords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case page.EdgeWords:
		ids := make([]ent.Value, 0, len(m.words))
		for id := range m.words {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedwords != nil {
		edges = append(edges, page.EdgeWords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeWords:
		ids := make([]ent.Value, 0, len(m.removedwords))
		for id := range m.removedwords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, page.EdgeDocument)
	}
	if m.clearedwords {
		edges = append(edges, page.EdgeWords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	switch name {
	case page.EdgeDocument:
		return m.cleareddocument
	case page.EdgeWords:
		return m.clearedwords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	switch name {
	case page.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	switch name {
	case page.EdgeDocument:
		m.ResetDocument()
		return nil
	case page.EdgeWords:
		m.ResetWords()
		return nil
	}
	return fmt.Errorf("unknown Page edge %s", name)
}

// TrainingSampleMutation represents an operation that mutates the TrainingSample nodes in the graph.
type TrainingSampleMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	document_id    *uuid.UUID
	word_ref       *string
	image_path     *string
	original_text  *string
	corrected_text *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TrainingSample, error)
	predicates     []predicate.TrainingSample
}

var _ ent.Mutation = (*TrainingSampleMutation)(nil)

// trainingsampleOption allows management of the mutation configuration using functional options.
type trainingsampleOption func(*TrainingSampleMutation)

// newTrainingSampleMutation creates new mutation for the TrainingSample entity.
func newTrainingSampleMutation(c config, op Op, opts ...trainingsampleOption) *TrainingSampleMutation {
	m := &TrainingSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingSampleID sets the ID field of the mutation.
func withTrainingSampleID(id uuid.UUID) trainingsampleOption {
	return func(m *TrainingSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingSample
		)
		m.oldValue = func(ctx context.Context) (*TrainingSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingSample sets the old TrainingSample of the mutation.
func withTrainingSample(node *TrainingSample) trainingsampleOption {
	return func(m *TrainingSampleMutation) {
		m.oldValue = func(context.Context) (*TrainingSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrainingSample entities.
func (m *TrainingSampleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingSampleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingSampleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *TrainingSampleMutation) SetDocumentID(u uuid.UUID) {
	m.document_id = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *TrainingSampleMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *TrainingSampleMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetWordRef sets the "word_ref" field.
func (m *TrainingSampleMutation) SetWordRef(s string) {
	m.word_ref = &s
}

// WordRef returns the value of the "word_ref" field in the mutation.
func (m *TrainingSampleMutation) WordRef() (r string, exists bool) {
	v := m.word_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldWordRef returns the old "word_ref" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldWordRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordRef: %w", err)
	}
	return oldValue.WordRef, nil
}

// ResetWordRef resets all changes to the "word_ref" field.
func (m *TrainingSampleMutation) ResetWordRef() {
	m.word_ref = nil
}

// SetImagePath sets the "image_path" field.
func (m *TrainingSampleMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *TrainingSampleMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *TrainingSampleMutation) ResetImagePath() {
	m.image_path = nil
}

// SetOriginalText sets the "original_text" field.
func (m *TrainingSampleMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *TrainingSampleMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *TrainingSampleMutation) ResetOriginalText() {
	m.original_text = nil
}

// SetCorrectedText sets the "corrected_text" field.
func (m *TrainingSampleMutation) SetCorrectedText(s string) {
	m.corrected_text = &s
}

// CorrectedText returns the value of the "corrected_text" field in the mutation.
func (m *TrainingSampleMutation) CorrectedText() (r string, exists bool) {
	v := m.corrected_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedText returns the old "corrected_text" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldCorrectedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedText: %w", err)
	}
	return oldValue.CorrectedText, nil
}

// ResetCorrectedText resets all changes to the "corrected_text" field.
func (m *TrainingSampleMutation) ResetCorrectedText() {
	m.corrected_text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingSample entity.
// If the TrainingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrainingSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TrainingSampleMutation builder.
func (m *TrainingSampleMutation) Where(ps ...predicate.TrainingSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingSample).
func (m *TrainingSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingSampleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document_id != nil {
		fields = append(fields, trainingsample.FieldDocumentID)
	}
	if m.word_ref != nil {
		fields = append(fields, trainingsample.FieldWordRef)
	}
	if m.image_path != nil {
		fields = append(fields, trainingsample.FieldImagePath)
	}
	if m.original_text != nil {
		fields = append(fields, trainingsample.FieldOriginalText)
	}
	if m.corrected_text != nil {
		fields = append(fields, trainingsample.FieldCorrectedText)
	}
	if m.created_at != nil {
		fields = append(fields, trainingsample.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingsample.FieldDocumentID:
		return m.DocumentID()
	case trainingsample.FieldWordRef:
		return m.WordRef()
	case trainingsample.FieldImagePath:
		return m.ImagePath()
	case trainingsample.FieldOriginalText:
		return m.OriginalText()
	case trainingsample.FieldCorrectedText:
		return m.CorrectedText()
	case trainingsample.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingsample.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case trainingsample.FieldWordRef:
		return m.OldWordRef(ctx)
	case trainingsample.FieldImagePath:
		return m.OldImagePath(ctx)
	case trainingsample.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case trainingsample.FieldCorrectedText:
		return m.OldCorrectedText(ctx)
	case trainingsample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingsample.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case trainingsample.FieldWordRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordRef(v)
		return nil
	case trainingsample.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case trainingsample.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case trainingsample.FieldCorrectedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedText(v)
		return nil
	case trainingsample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingSampleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingSampleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TrainingSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingSampleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingSampleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrainingSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingSampleMutation) ResetField(name string) error {
	switch name {
	case trainingsample.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case trainingsample.FieldWordRef:
		m.ResetWordRef()
		return nil
	case trainingsample.FieldImagePath:
		m.ResetImagePath()
		return nil
	case trainingsample.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case trainingsample.FieldCorrectedText:
		m.ResetCorrectedText()
		return nil
	case trainingsample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingSampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingSampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingSampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrainingSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingSampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrainingSample edge %s", name)
}

// WordMutation represents an operation that mutates the Word nodes in the graph.
type WordMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	block_index                *int
	addblock_index             *int
	line_index                 *int
	addline_index              *int
	word_index                 *int
	addword_index              *int
	text                       *string
	confidence                 *float64
	addconfidence              *float64
	geometry                   *[][]float64
	appendgeometry             [][]float64
	original_text              *string
	auto_corrected             *bool
	manually_corrected         *bool
	auto_correction_overridden *bool
	clearedFields              map[string]struct{}
	page                       *uuid.UUID
	clearedpage                bool
	done                       bool
	oldValue                   func(context.Context) (*Word, error)
	predicates                 []predicate.Word
}

var _ ent.Mutation = (*WordMutation)(nil)

// wordOption allows management of the mutation configuration using functional options.
type wordOption func(*WordMutation)

// newWordMutation creates new mutation for the Word entity.
func newWordMutation(c config, op Op, opts ...wordOption) *WordMutation {
	m := &WordMutation{
		config:        c,
		op:            op,
		typ:           TypeWord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWordID sets the ID field of the mutation.
func withWordID(id uuid.UUID) wordOption {
	return func(m *WordMutation) {
		var (
			err   error
			once  sync.Once
			value *Word
		)
		m.oldValue = func(ctx context.Context) (*Word, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Word.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWord sets the old Word of the mutation.
func withWord(node *Word) wordOption {
	return func(m *WordMutation) {
		m.oldValue = func(context.Context) (*Word, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Word entities.
func (m *WordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Word.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *WordMutation) SetPageID(u uuid.UUID) {
	m.page = &u
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *WordMutation) PageID() (r uuid.UUID, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *WordMutation) ResetPageID() {
	m.page = nil
}

// SetBlockIndex sets the "block_index" field.
func (m *WordMutation) SetBlockIndex(i int) {
	m.block_index = &i
	m.addblock_index = nil
}

// BlockIndex returns the value of the "block_index" field in the mutation.
func (m *WordMutation) BlockIndex() (r int, exists bool) {
	v := m.block_index
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockIndex returns the old "block_index" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldBlockIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockIndex: %w", err)
	}
	return oldValue.BlockIndex, nil
}

// AddBlockIndex adds i to the "block_index" field.
func (m *WordMutation) AddBlockIndex(i int) {
	if m.addblock_index != nil {
		*m.addblock_index += i
	} else {
		m.addblock_index = &i
	}
}

// AddedBlockIndex returns the value that was added to the "block_index" field in this mutation.
func (m *WordMutation) AddedBlockIndex() (r int, exists bool) {
	v := m.addblock_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockIndex resets all changes to the "block_index" field.
func (m *WordMutation) ResetBlockIndex() {
	m.block_index = nil
	m.addblock_index = nil
}

// SetLineIndex sets the "line_index" field.
func (m *WordMutation) SetLineIndex(i int) {
	m.line_index = &i
	m.addline_index = nil
}

// LineIndex returns the value of the "line_index" field in the mutation.
func (m *WordMutation) LineIndex() (r int, exists bool) {
	v := m.line_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLineIndex returns the old "line_index" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldLineIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineIndex: %w", err)
	}
	return oldValue.LineIndex, nil
}

// AddLineIndex adds i to the "line_index" field.
func (m *WordMutation) AddLineIndex(i int) {
	if m.addline_index != nil {
		*m.addline_index += i
	} else {
		m.addline_index = &i
	}
}

// AddedLineIndex returns the value that was added to the "line_index" field in this mutation.
func (m *WordMutation) AddedLineIndex() (r int, exists bool) {
	v := m.addline_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineIndex resets all changes to the "line_index" field.
func (m *WordMutation) ResetLineIndex() {
	m.line_index = nil
	m.addline_index = nil
}

// SetWordIndex sets the "word_index" field.
func (m *WordMutation) SetWordIndex(i int) {
	m.word_index = &i
	m.addword_index = nil
}

// WordIndex returns the value of the "word_index" field in the mutation.
func (m *WordMutation) WordIndex() (r int, exists bool) {
	v := m.word_index
	if v == nil {
		return
	}
	return *v, true
}

// OldWordIndex returns the old "word_index" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldWordIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordIndex: %w", err)
	}
	return oldValue.WordIndex, nil
}

// AddWordIndex adds i to the "word_index" field.
func (m *WordMutation) AddWordIndex(i int) {
	if m.addword_index != nil {
		*m.addword_index += i
	} else {
		m.addword_index = &i
	}
}

// AddedWordIndex returns the value that was added to the "word_index" field in this mutation.
func (m *WordMutation) AddedWordIndex() (r int, exists bool) {
	v := m.addword_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordIndex resets all changes to the "word_index" field.
func (m *WordMutation) ResetWordIndex() {
	m.word_index = nil
	m.addword_index = nil
}

// SetText sets the "text" field.
func (m *WordMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *WordMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *WordMutation) ResetText() {
	m.text = nil
}

// SetConfidence sets the "confidence" field.
func (m *WordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *WordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *WordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *WordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *WordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[word.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *WordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[word.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *WordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, word.FieldConfidence)
}

// SetGeometry sets the "geometry" field.
func (m *WordMutation) SetGeometry(f [][]float64) {
	m.geometry = &f
	m.appendgeometry = nil
}

// Geometry returns the value of the "geometry" field in the mutation.
func (m *WordMutation) Geometry() (r [][]float64, exists bool) {
	v := m.geometry
	if v == nil {
		return
	}
	return *v, true
}

// OldGeometry returns the old "geometry" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldGeometry(ctx context.Context) (v [][]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeometry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeometry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeometry: %w", err)
	}
	return oldValue.Geometry, nil
}

// AppendGeometry adds f to the "geometry" field.
func (m *WordMutation) AppendGeometry(f [][]float64) {
	m.appendgeometry = append(m.appendgeometry, f...)
}

// AppendedGeometry returns the list of values that were appended to the "geometry" field in this mutation.
func (m *WordMutation) AppendedGeometry() ([][]float64, bool) {
	if len(m.appendgeometry) == 0 {
		return nil, false
	}
	return m.appendgeometry, true
}

// ClearGeometry clears the value of the "geometry" field.
func (m *WordMutation) ClearGeometry() {
	m.geometry = nil
	m.appendgeometry = nil
	m.clearedFields[word.FieldGeometry] = struct{}{}
}

// GeometryCleared returns if the "geometry" field was cleared in this mutation.
func (m *WordMutation) GeometryCleared() bool {
	_, ok := m.clearedFields[word.FieldGeometry]
	return ok
}

// ResetGeometry resets all changes to the "geometry" field.
func (m *WordMutation) ResetGeometry() {
	m.geometry = nil
	m.appendgeometry = nil
	delete(m.clearedFields, word.FieldGeometry)
}

// SetOriginalText sets the "original_text" field.
func (m *WordMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *WordMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldOriginalText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ClearOriginalText clears the value of the "original_text" field.
func (m *WordMutation) ClearOriginalText() {
	m.original_text = nil
	m.clearedFields[word.FieldOriginalText] = struct{}{}
}

// OriginalTextCleared returns if the "original_text" field was cleared in this mutation.
func (m *WordMutation) OriginalTextCleared() bool {
	_, ok := m.clearedFields[word.FieldOriginalText]
	return ok
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *WordMutation) ResetOriginalText() {
	m.original_text = nil
	delete(m.clearedFields, word.FieldOriginalText)
}

// SetAutoCorrected sets the "auto_corrected" field.
func (m *WordMutation) SetAutoCorrected(b bool) {
	m.auto_corrected = &b
}

// AutoCorrected returns the value of the "auto_corrected" field in the mutation.
func (m *WordMutation) AutoCorrected() (r bool, exists bool) {
	v := m.auto_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCorrected returns the old "auto_corrected" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldAutoCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCorrected: %w", err)
	}
	return oldValue.AutoCorrected, nil
}

// ResetAutoCorrected resets all changes to the "auto_corrected" field.
func (m *WordMutation) ResetAutoCorrected() {
	m.auto_corrected = nil
}

// SetManuallyCorrected sets the "manually_corrected" field.
func (m *WordMutation) SetManuallyCorrected(b bool) {
	m.manually_corrected = &b
}

// ManuallyCorrected returns the value of the "manually_corrected" field in the mutation.
func (m *WordMutation) ManuallyCorrected() (r bool, exists bool) {
	v := m.manually_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldManuallyCorrected returns the old "manually_corrected" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldManuallyCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManuallyCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManuallyCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManuallyCorrected: %w", err)
	}
	return oldValue.ManuallyCorrected, nil
}

// ResetManuallyCorrected resets all changes to the "manually_corrected" field.
func (m *WordMutation) ResetManuallyCorrected() {
	m.manually_corrected = nil
}

// SetAutoCorrectionOverridden sets the "auto_correction_overridden" field.
func (m *WordMutation) SetAutoCorrectionOverridden(b bool) {
	m.auto_correction_overridden = &b
}

// AutoCorrectionOverridden returns the value of the "auto_correction_overridden" field in the mutation.
func (m *WordMutation) AutoCorrectionOverridden() (r bool, exists bool) {
	v := m.auto_correction_overridden
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCorrectionOverridden returns the old "auto_correction_overridden" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldAutoCorrectionOverridden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCorrectionOverridden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCorrectionOverridden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCorrectionOverridden: %w", err)
	}
	return oldValue.AutoCorrectionOverridden, nil
}

// ResetAutoCorrectionOverridden resets all changes to the "auto_correction_overridden" field.
func (m *WordMutation) ResetAutoCorrectionOverridden() {
	m.auto_correction_overridden = nil
}

// ClearPage clears the "page" edge to the Page entity.
func (m *WordMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[word.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the Page entity was cleared.
func (m *WordMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *WordMutation) PageIDs() (ids []uuid.UUID) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *WordMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// Where appends a list predicates to the WordMutation builder.
func (m *WordMutation) Where(ps ...predicate.Word) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Word, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Word).
func (m *WordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.page != nil {
		fields = append(fields, word.FieldPageID)
	}
	if m.block_index != nil {
		fields = append(fields, word.FieldBlockIndex)
	}
	if m.line_index != nil {
		fields = append(fields, word.FieldLineIndex)
	}
	if m.word_index != nil {
		fields = append(fields, word.FieldWordIndex)
	}
	if m.text != nil {
		fields = append(fields, word.FieldText)
	}
	if m.confidence != nil {
		fields = append(fields, word.FieldConfidence)
	}
	if m.geometry != nil {
		fields = append(fields, word.FieldGeometry)
	}
	if m.original_text != nil {
		fields = append(fields, word.FieldOriginalText)
	}
	if m.auto_corrected != nil {
		fields = append(fields, word.FieldAutoCorrected)
	}
	if m.manually_corrected != nil {
		fields = append(fields, word.FieldManuallyCorrected)
	}
	if m.auto_correction_overridden != nil {
		fields = append(fields, word.FieldAutoCorrectionOverridden)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case word.FieldPageID:
		return m.PageID()
	case word.FieldBlockIndex:
		return m.BlockIndex()
	case word.FieldLineIndex:
		return m.LineIndex()
	case word.FieldWordIndex:
		return m.WordIndex()
	case word.FieldText:
		return m.Text()
	case word.FieldConfidence:
		return m.Confidence()
	case word.FieldGeometry:
		return m.Geometry()
	case word.FieldOriginalText:
		return m.OriginalText()
	case word.FieldAutoCorrected:
		return m.AutoCorrected()
	case word.FieldManuallyCorrected:
		return m.ManuallyCorrected()
	case word.FieldAutoCorrectionOverridden:
		return m.AutoCorrectionOverridden()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case word.FieldPageID:
		return m.OldPageID(ctx)
	case word.FieldBlockIndex:
		return m.OldBlockIndex(ctx)
	case word.FieldLineIndex:
		return m.OldLineIndex(ctx)
	case word.FieldWordIndex:
		return m.OldWordIndex(ctx)
	case word.FieldText:
		return m.OldText(ctx)
	case word.FieldConfidence:
		return m.OldConfidence(ctx)
	case word.FieldGeometry:
		return m.OldGeometry(ctx)
	case word.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case word.FieldAutoCorrected:
		return m.OldAutoCorrected(ctx)
	case word.FieldManuallyCorrected:
		return m.OldManuallyCorrected(ctx)
	case word.FieldAutoCorrectionOverridden:
		return m.OldAutoCorrectionOverridden(ctx)
	}
	return nil, fmt.Errorf("unknown Word field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case word.FieldPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case word.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockIndex(v)
		return nil
	case word.FieldLineIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineIndex(v)
		return nil
	case word.FieldWordIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordIndex(v)
		return nil
	case word.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case word.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case word.FieldGeometry:
		v, ok := value.([][]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeometry(v)
		return nil
	case word.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case word.FieldAutoCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCorrected(v)
		return nil
	case word.FieldManuallyCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManuallyCorrected(v)
		return nil
	case word.FieldAutoCorrectionOverridden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCorrectionOverridden(v)
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WordMutation) AddedFields() []string {
	var fields []string
	if m.addblock_index != nil {
		fields = append(fields, word.FieldBlockIndex)
	}
	if m.addline_index != nil {
		fields = append(fields, word.FieldLineIndex)
	}
	if m.addword_index != nil {
		fields = append(fields, word.FieldWordIndex)
	}
	if m.addconfidence != nil {
		fields = append(fields, word.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case word.FieldBlockIndex:
		return m.AddedBlockIndex()
	case word.FieldLineIndex:
		return m.AddedLineIndex()
	case word.FieldWordIndex:
		return m.AddedWordIndex()
	case word.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case word.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockIndex(v)
		return nil
	case word.FieldLineIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineIndex(v)
		return nil
	case word.FieldWordIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordIndex(v)
		return nil
	case word.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Word numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(word.FieldConfidence) {
		fields = append(fields, word.FieldConfidence)
	}
	if m.FieldCleared(word.FieldGeometry) {
		fields = append(fields, word.FieldGeometry)
	}
	if m.FieldCleared(word.FieldOriginalText) {
		fields = append(fields, word.FieldOriginalText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WordMutation) ClearField(name string) error {
	switch name {
	case word.FieldConfidence:
		m.ClearConfidence()
		return nil
	case word.FieldGeometry:
		m.ClearGeometry()
		return nil
	case word.FieldOriginalText:
		m.ClearOriginalText()
		return nil
	}
	return fmt.Errorf("unknown Word nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WordMutation) ResetField(name string) error {
	switch name {
	case word.FieldPageID:
		m.ResetPageID()
		return nil
	case word.FieldBlockIndex:
		m.ResetBlockIndex()
		return nil
	case word.FieldLineIndex:
		m.ResetLineIndex()
		return nil
	case word.FieldWordIndex:
		m.ResetWordIndex()
		return nil
	case word.FieldText:
		m.ResetText()
		return nil
	case word.FieldConfidence:
		m.ResetConfidence()
		return nil
	case word.FieldGeometry:
		m.ResetGeometry()
		return nil
	case word.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case word.FieldAutoCorrected:
		m.ResetAutoCorrected()
		return nil
	case word.FieldManuallyCorrected:
		m.ResetManuallyCorrected()
		return nil
	case word.FieldAutoCorrectionOverridden:
		m.ResetAutoCorrectionOverridden()
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.page != nil {
		edges = append(edges, word.EdgePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case word.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpage {
		edges = append(edges, word.EdgePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WordMutation) EdgeCleared(name string) bool {
	switch name {
	case word.EdgePage:
		return m.clearedpage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WordMutation) ClearEdge(name string) error {
	switch name {
	case word.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown Word unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WordMutation) ResetEdge(name string) error {
	switch name {
	case word.EdgePage:
		m.ResetPage()
		return nil
	}
	return fmt.Errorf("unknown Word edge %s", name)
}
