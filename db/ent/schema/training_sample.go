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
)

type TrainingSample struct{ ent.Schema }

func (TrainingSample) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "training_samples"},
	}
}

func (TrainingSample) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}).Immutable(),
		field.String("word_ref").Default("").Immutable(),
		field.String("image_path").NotEmpty().Immutable(),
		field.String("original_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (TrainingSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
