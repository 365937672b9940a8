package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Page struct{ ent.Schema }

func (Page) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pages"},
	}
}

func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("page_index").NonNegative(),
		field.String("image_path").Default(""),
		// page image pixel dimensions, the basis for denormalizing word boxes
		field.Int("width").NonNegative().Default(0),
		field.Int("height").NonNegative().Default(0),
	}
}

func (Page) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY pages -> ONE document (FK: pages.document_id)
		edge.From("document", Document.Type).
			Ref("pages").
			Field("document_id").
			Required().
			Unique(),
		// ONE page -> MANY words
		edge.To("words", Word.Type),
	}
}

func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "page_index").Unique(),
	}
}
