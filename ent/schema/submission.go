package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is one learner attempt at answering a session's problem.
// Rows are append-only: there is no update or delete path.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned by the store"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("May be caller-supplied; the latest submission is derived by sorting on this field, not by insertion order"),
		field.Text("answer_text").
			NotEmpty().
			Comment("Raw learner answer as typed"),
		field.Float("parsed_value").
			Optional().
			Nillable().
			Comment("Numeric form of the answer when one was extracted"),
		field.Bool("correct").
			Optional().
			Nillable().
			Comment("Nil means not yet evaluated"),
		field.Text("feedback").
			Default("").
			Comment("Feedback text persisted with the attempt"),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("submissions").
			Unique().
			Required(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
