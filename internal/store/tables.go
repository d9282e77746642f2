package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const completedLevelsTable = "completed_levels"

var (
	// CompletedLevelsColumns holds the columns for the "completed_levels" table.
	CompletedLevelsColumns = []*schema.Column{
		{Name: "level_id", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// CompletedLevelsTable holds one row per completed level (1-based id).
	CompletedLevelsTable = &schema.Table{
		Name:       completedLevelsTable,
		Columns:    CompletedLevelsColumns,
		PrimaryKey: []*schema.Column{CompletedLevelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completedlevel_completed_at",
				Unique:  false,
				Columns: []*schema.Column{CompletedLevelsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletedLevelsTable,
	}
)
