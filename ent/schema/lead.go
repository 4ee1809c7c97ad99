package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			NotEmpty().
			Immutable(),
		field.String("owner_id").
			NotEmpty().
			Immutable().
			Comment("Owning user; every query is scoped to it"),
		field.String("name").
			NotEmpty().
			Comment("Contact name"),
		field.String("company").
			NotEmpty().
			Comment("Company name"),
		field.String("email").
			Optional(),
		field.String("phone").
			Optional().
			Comment("Normalized to E.164 when parseable"),
		field.Float("value").
			Default(0).
			Min(0).
			Comment("Deal value in dollars"),
		field.Enum("stage").
			Values("new", "contacted", "qualified", "proposal", "won", "lost").
			Default("new").
			Comment("Pipeline stage; won and lost are terminal"),
		field.Enum("status").
			Values("active", "cold", "closed").
			Default("active").
			Comment("Derived from stage for won/lost; cold is a manual override"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Display-ordered tag set"),
		field.String("avatar_url").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now).
			Comment("Stamped on every mutation"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "stage"),
		index.Fields("owner_id", "last_activity"),
		index.Fields("owner_id", "created_at"),
	}
}
