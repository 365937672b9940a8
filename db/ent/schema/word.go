package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Word struct{ ent.Schema }

func (Word) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "words"},
	}
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("page_id", uuid.UUID{}),
		// reading order: block -> line -> word
		field.Int("block_index").NonNegative().Default(0),
		field.Int("line_index").NonNegative().Default(0),
		field.Int("word_index").NonNegative().Default(0),
		field.String("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence").Optional().Nillable(),
		// normalized box, flattened [[x1,y1,x2,y2]]; absent when the OCR
		// payload carried a malformed shape
		field.JSON("geometry", [][]float64{}).Optional(),
		// set once, on the first rewrite; ground truth for lexicon learning
		field.String("original_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("auto_corrected").Default(false),
		field.Bool("manually_corrected").Default(false),
		field.Bool("auto_correction_overridden").Default(false),
	}
}

func (Word) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY words -> ONE page (FK: words.page_id)
		edge.From("page", Page.Type).
			Ref("words").
			Field("page_id").
			Required().
			Unique(),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id", "block_index", "line_index", "word_index"),
	}
}
