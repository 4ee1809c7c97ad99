package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			NotEmpty().
			Immutable(),
		field.String("owner_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),
		field.Enum("status").
			Values("open", "in_progress", "completed", "archived").
			Default("open"),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.JSON("lead_ids", []string{}).
			Optional().
			Comment("Linked leads; dangling ids are tolerated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "status"),
		index.Fields("owner_id", "due_date"),
	}
}
