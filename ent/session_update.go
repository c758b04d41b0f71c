// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/predicate"
	"github.com/abhisek/mathcoach/ent/schema"
	"github.com/abhisek/mathcoach/ent/session"
	"github.com/abhisek/mathcoach/ent/submission"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionUpdate) SetLevel(v string) *SessionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLevel(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionUpdate) SetTopic(v string) *SessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTopic(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionUpdate) SetDifficulty(v string) *SessionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDifficulty(v *string) *SessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *SessionUpdate) SetQuestionType(v string) *SessionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableQuestionType(v *string) *SessionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *SessionUpdate) SetStatement(v string) *SessionUpdate {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatement(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SessionUpdate) SetAnswer(v string) *SessionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAnswer(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetWorking sets the "working" field.
func (_u *SessionUpdate) SetWorking(v []schema.WorkingStep) *SessionUpdate {
	_u.mutation.SetWorking(v)
	return _u
}

// AppendWorking appends value to the "working" field.
func (_u *SessionUpdate) AppendWorking(v []schema.WorkingStep) *SessionUpdate {
	_u.mutation.AppendWorking(v)
	return _u
}

// SetChoices sets the "choices" field.
func (_u *SessionUpdate) SetChoices(v []schema.Choice) *SessionUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *SessionUpdate) AppendChoices(v []schema.Choice) *SessionUpdate {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *SessionUpdate) ClearChoices() *SessionUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// SetHint sets the "hint" field.
func (_u *SessionUpdate) SetHint(v string) *SessionUpdate {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableHint(v *string) *SessionUpdate {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *SessionUpdate) AddSubmissionIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *SessionUpdate) AddSubmissions(v ...*Submission) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *SessionUpdate) ClearSubmissions() *SessionUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *SessionUpdate) RemoveSubmissionIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *SessionUpdate) RemoveSubmissions(v ...*Submission) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Statement(); ok {
		if err := session.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "Session.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := session.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Session.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(session.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(session.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(session.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(session.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(session.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(session.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Working(); ok {
		_spec.SetField(session.FieldWorking, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorking(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldWorking, value)
		})
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(session.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(session.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(session.FieldHint, field.TypeString, value)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetLevel sets the "level" field.
func (_u *SessionUpdateOne) SetLevel(v string) *SessionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLevel(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionUpdateOne) SetTopic(v string) *SessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTopic(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionUpdateOne) SetDifficulty(v string) *SessionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDifficulty(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *SessionUpdateOne) SetQuestionType(v string) *SessionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableQuestionType(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *SessionUpdateOne) SetStatement(v string) *SessionUpdateOne {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatement(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SessionUpdateOne) SetAnswer(v string) *SessionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAnswer(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetWorking sets the "working" field.
func (_u *SessionUpdateOne) SetWorking(v []schema.WorkingStep) *SessionUpdateOne {
	_u.mutation.SetWorking(v)
	return _u
}

// AppendWorking appends value to the "working" field.
func (_u *SessionUpdateOne) AppendWorking(v []schema.WorkingStep) *SessionUpdateOne {
	_u.mutation.AppendWorking(v)
	return _u
}

// SetChoices sets the "choices" field.
func (_u *SessionUpdateOne) SetChoices(v []schema.Choice) *SessionUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *SessionUpdateOne) AppendChoices(v []schema.Choice) *SessionUpdateOne {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *SessionUpdateOne) ClearChoices() *SessionUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// SetHint sets the "hint" field.
func (_u *SessionUpdateOne) SetHint(v string) *SessionUpdateOne {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableHint(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *SessionUpdateOne) AddSubmissionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *SessionUpdateOne) AddSubmissions(v ...*Submission) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *SessionUpdateOne) ClearSubmissions() *SessionUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *SessionUpdateOne) RemoveSubmissionIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *SessionUpdateOne) RemoveSubmissions(v ...*Submission) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Statement(); ok {
		if err := session.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "Session.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := session.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Session.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(session.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(session.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(session.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(session.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(session.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(session.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Working(); ok {
		_spec.SetField(session.FieldWorking, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorking(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldWorking, value)
		})
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(session.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(session.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(session.FieldHint, field.TypeString, value)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
