package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ListMembership holds the schema definition for the many-to-many
// list/lead membership rows. The (list_id, lead_id) pair is unique so
// repeated adds stay idempotent.
type ListMembership struct {
	ent.Schema
}

// Fields of the ListMembership.
func (ListMembership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			NotEmpty().
			Immutable(),
		field.String("list_id").
			NotEmpty(),
		field.String("lead_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ListMembership.
func (ListMembership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("list_id", "lead_id").Unique(),
		index.Fields("lead_id"),
	}
}
