package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/db/ent/schema/utils"
)

// Correction rows are append-only: created once, never updated or deleted.
// document_id is deliberately NOT a foreign key so that corrections referencing
// missing documents can still be stored for audit.
type Correction struct{ ent.Schema }

func (Correction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "corrections"},
	}
}

func (Correction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}).Immutable(),
		field.Int("page_index").NonNegative().Default(0).Immutable(),
		field.String("word_ref").Default("").Immutable(),
		field.String("original_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("author").Default("system").Immutable(),
		field.String("correction_type").
			Default(string(constants.CorrectionTextEdit)).
			Immutable().
			Validate(utils.EnumValidator(
				string(constants.CorrectionTextEdit),
				string(constants.CorrectionBBoxAdjust),
			)),
		field.JSON("bbox_snapshot", [][]float64{}).Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Correction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("original_text", "corrected_text"),
	}
}
