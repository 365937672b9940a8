// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Correction is the predicate function for correction builders.
type Correction func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// LexiconEntry is the predicate function for lexiconentry builders.
type LexiconEntry func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// TrainingSample is the predicate function for trainingsample builders.
type TrainingSample func(*sql.Selector)

// Word is the predicate function for word builders.
type Word func(*sql.Selector)
