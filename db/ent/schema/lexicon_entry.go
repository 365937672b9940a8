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
)

type LexiconEntry struct{ ent.Schema }

func (LexiconEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lexicons"},
	}
}

func (LexiconEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("misspelled").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("scope").Default(constants.ScopeGlobal),
		field.Int("frequency").Positive().Default(1),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (LexiconEntry) Indexes() []ent.Index {
	return []ent.Index{
		// upsert target: one entry per misspelling per scope
		index.Fields("misspelled", "scope").Unique(),
		index.Fields("scope"),
	}
}
