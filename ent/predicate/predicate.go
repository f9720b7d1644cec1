// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Relationship is the predicate function for relationship builders.
type Relationship func(*sql.Selector)

// SqlColumn is the predicate function for sqlcolumn builders.
type SqlColumn func(*sql.Selector)

// SqlDb is the predicate function for sqldb builders.
type SqlDb func(*sql.Selector)

// SqlTable is the predicate function for sqltable builders.
type SqlTable func(*sql.Selector)

// ThothLog is the predicate function for thothlog builders.
type ThothLog func(*sql.Selector)

// VectorDb is the predicate function for vectordb builders.
type VectorDb func(*sql.Selector)

// VectorDocument is the predicate function for vectordocument builders.
type VectorDocument func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
