// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CorrectionsColumns holds the columns for the "corrections" table.
	CorrectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "page_index", Type: field.TypeInt, Default: 0},
		{Name: "word_ref", Type: field.TypeString, Default: ""},
		{Name: "original_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "author", Type: field.TypeString, Default: "system"},
		{Name: "correction_type", Type: field.TypeString, Default: "text_edit"},
		{Name: "bbox_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CorrectionsTable holds the schema information for the "corrections" table.
	CorrectionsTable = &schema.Table{
		Name:       "corrections",
		Columns:    CorrectionsColumns,
		PrimaryKey: []*schema.Column{CorrectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "correction_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CorrectionsColumns[1], CorrectionsColumns[9]},
			},
			{
				Name:    "correction_original_text_corrected_text",
				Unique:  false,
				Columns: []*schema.Column{CorrectionsColumns[4], CorrectionsColumns[5]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "storage_path", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "document_type", Type: field.TypeString, Default: "unknown"},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// LexiconsColumns holds the columns for the "lexicons" table.
	LexiconsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "misspelled", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "scope", Type: field.TypeString, Default: "global"},
		{Name: "frequency", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LexiconsTable holds the schema information for the "lexicons" table.
	LexiconsTable = &schema.Table{
		Name:       "lexicons",
		Columns:    LexiconsColumns,
		PrimaryKey: []*schema.Column{LexiconsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lexiconentry_misspelled_scope",
				Unique:  true,
				Columns: []*schema.Column{LexiconsColumns[1], LexiconsColumns[3]},
			},
			{
				Name:    "lexiconentry_scope",
				Unique:  false,
				Columns: []*schema.Column{LexiconsColumns[3]},
			},
		},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "page_index", Type: field.TypeInt},
		{Name: "image_path", Type: field.TypeString, Default: ""},
		{Name: "width", Type: field.TypeInt, Default: 0},
		{Name: "height", Type: field.TypeInt, Default: 0},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_documents_pages",
				Columns:    []*schema.Column{PagesColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_document_id_page_index",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[5], PagesColumns[1]},
			},
		},
	}
	// TrainingSamplesColumns holds the columns for the "training_samples" table.
	TrainingSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "word_ref", Type: field.TypeString, Default: ""},
		{Name: "image_path", Type: field.TypeString},
		{Name: "original_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrainingSamplesTable holds the schema information for the "training_samples" table.
	TrainingSamplesTable = &schema.Table{
		Name:       "training_samples",
		Columns:    TrainingSamplesColumns,
		PrimaryKey: []*schema.Column{TrainingSamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingsample_document_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingSamplesColumns[1]},
			},
		},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "block_index", Type: field.TypeInt, Default: 0},
		{Name: "line_index", Type: field.TypeInt, Default: 0},
		{Name: "word_index", Type: field.TypeInt, Default: 0},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "geometry", Type: field.TypeJSON, Nullable: true},
		{Name: "original_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "auto_corrected", Type: field.TypeBool, Default: false},
		{Name: "manually_corrected", Type: field.TypeBool, Default: false},
		{Name: "auto_correction_overridden", Type: field.TypeBool, Default: false},
		{Name: "page_id", Type: field.TypeUUID},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "words_pages_words",
				Columns:    []*schema.Column{WordsColumns[11]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "word_page_id_block_index_line_index_word_index",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[11], WordsColumns[1], WordsColumns[2], WordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CorrectionsTable,
		DocumentsTable,
		LexiconsTable,
		PagesTable,
		TrainingSamplesTable,
		WordsTable,
	}
)

func init() {
	CorrectionsTable.Annotation = &entsql.Annotation{
		Table: "corrections",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	LexiconsTable.Annotation = &entsql.Annotation{
		Table: "lexicons",
	}
	PagesTable.ForeignKeys[0].RefTable = DocumentsTable
	PagesTable.Annotation = &entsql.Annotation{
		Table: "pages",
	}
	TrainingSamplesTable.Annotation = &entsql.Annotation{
		Table: "training_samples",
	}
	WordsTable.ForeignKeys[0].RefTable = PagesTable
	WordsTable.Annotation = &entsql.Annotation{
		Table: "words",
	}
}
