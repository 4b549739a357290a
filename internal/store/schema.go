package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const kvTable = "kv"

var (
	// KVColumns holds the columns for the "kv" table.
	KVColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KVTable holds the schema information for the "kv" table.
	KVTable = &schema.Table{
		Name:       kvTable,
		Columns:    KVColumns,
		PrimaryKey: []*schema.Column{KVColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KVTable,
	}
)
