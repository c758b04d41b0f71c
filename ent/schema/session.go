package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one generated word problem with its canonical answer and
// worked solution. The problem fields are write-once at creation; only
// the hint may be updated afterward.
type Session struct {
	ent.Schema
}

// WorkingStep is the serialized form of one step of the worked solution.
type WorkingStep struct {
	Step        int    `json:"step"`
	Explanation string `json:"explanation"`
	Formula     string `json:"formula"`
}

// Choice is the serialized form of one multiple-choice option.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned by the store"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("level").
			Default("").
			Comment("Primary level, e.g. P5"),
		field.String("topic").
			Default("").
			Comment("Topic, e.g. Fractions"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium or hard"),
		field.String("question_type").
			Default("").
			Comment("subjective or multiple_choice"),
		field.Text("statement").
			NotEmpty().
			Comment("Problem statement shown to the learner"),
		field.String("answer").
			NotEmpty().
			Comment("Canonical answer, always parseable to a number"),
		field.JSON("working", []WorkingStep{}).
			Comment("Ordered worked solution"),
		field.JSON("choices", []Choice{}).
			Optional().
			Comment("Multiple-choice options, empty for subjective problems"),
		field.Text("hint").
			Default("").
			Comment("Latest hint shown to the learner; the only mutable field"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("submissions", Submission.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("difficulty"),
	}
}
