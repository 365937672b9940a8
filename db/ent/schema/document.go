package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/veridoc/ocr-review/constants"
	"github.com/veridoc/ocr-review/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("content_type").Default("application/octet-stream"),
		field.String("storage_path").Default(""),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(
				string(constants.StatusUploaded),
				string(constants.StatusProcessed),
				string(constants.StatusFailed),
			)),
		field.String("document_type").
			Default(string(constants.TypeUnknown)),
		field.Float("quality_score").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
		field.String("processing_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY pages
		edge.To("pages", Page.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_type"),
	}
}
