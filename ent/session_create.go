// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/schema"
	"github.com/abhisek/mathcoach/ent/session"
	"github.com/abhisek/mathcoach/ent/submission"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *SessionCreate) SetLevel(v string) *SessionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLevel(v *string) *SessionCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SessionCreate) SetTopic(v string) *SessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTopic(v *string) *SessionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SessionCreate) SetDifficulty(v string) *SessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDifficulty(v *string) *SessionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *SessionCreate) SetQuestionType(v string) *SessionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuestionType(v *string) *SessionCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetStatement sets the "statement" field.
func (_c *SessionCreate) SetStatement(v string) *SessionCreate {
	_c.mutation.SetStatement(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *SessionCreate) SetAnswer(v string) *SessionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetWorking sets the "working" field.
func (_c *SessionCreate) SetWorking(v []schema.WorkingStep) *SessionCreate {
	_c.mutation.SetWorking(v)
	return _c
}

// SetChoices sets the "choices" field.
func (_c *SessionCreate) SetChoices(v []schema.Choice) *SessionCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetHint sets the "hint" field.
func (_c *SessionCreate) SetHint(v string) *SessionCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *SessionCreate) SetNillableHint(v *string) *SessionCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *SessionCreate) AddSubmissionIDs(ids ...string) *SessionCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *SessionCreate) AddSubmissions(v ...*Submission) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := session.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := session.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := session.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := session.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.Hint(); !ok {
		v := session.DefaultHint
		_c.mutation.SetHint(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Session.level"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Session.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Session.difficulty"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Session.question_type"`)}
	}
	if _, ok := _c.mutation.Statement(); !ok {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required field "Session.statement"`)}
	}
	if v, ok := _c.mutation.Statement(); ok {
		if err := session.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "Session.statement": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Session.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := session.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Session.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Working(); !ok {
		return &ValidationError{Name: "working", err: errors.New(`ent: missing required field "Session.working"`)}
	}
	if _, ok := _c.mutation.Hint(); !ok {
		return &ValidationError{Name: "hint", err: errors.New(`ent: missing required field "Session.hint"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := session.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Session.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(session.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(session.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(session.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(session.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Statement(); ok {
		_spec.SetField(session.FieldStatement, field.TypeString, value)
		_node.Statement = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(session.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Working(); ok {
		_spec.SetField(session.FieldWorking, field.TypeJSON, value)
		_node.Working = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(session.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(session.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SubmissionsTable,
			Columns: []string{session.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
