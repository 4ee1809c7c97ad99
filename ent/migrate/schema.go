// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "company", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeFloat64, Default: 0},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "proposal", "won", "lost"}, Default: "new"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "cold", "closed"}, Default: "active"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_owner_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1]},
			},
			{
				Name:    "lead_owner_id_stage",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[7]},
			},
			{
				Name:    "lead_owner_id_last_activity",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[12]},
			},
			{
				Name:    "lead_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[11]},
			},
		},
	}
	// ListsColumns holds the columns for the "lists" table.
	ListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ListsTable holds the schema information for the "lists" table.
	ListsTable = &schema.Table{
		Name:       "lists",
		Columns:    ListsColumns,
		PrimaryKey: []*schema.Column{ListsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "list_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ListsColumns[1]},
			},
		},
	}
	// ListMembershipsColumns holds the columns for the "list_memberships" table.
	ListMembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "list_id", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ListMembershipsTable holds the schema information for the "list_memberships" table.
	ListMembershipsTable = &schema.Table{
		Name:       "list_memberships",
		Columns:    ListMembershipsColumns,
		PrimaryKey: []*schema.Column{ListMembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "listmembership_list_id_lead_id",
				Unique:  true,
				Columns: []*schema.Column{ListMembershipsColumns[1], ListMembershipsColumns[2]},
			},
			{
				Name:    "listmembership_lead_id",
				Unique:  false,
				Columns: []*schema.Column{ListMembershipsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "completed", "archived"}, Default: "open"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "lead_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[5]},
			},
			{
				Name:    "task_owner_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LeadsTable,
		ListsTable,
		ListMembershipsTable,
		TasksTable,
	}
)

func init() {
}
