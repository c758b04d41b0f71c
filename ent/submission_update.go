// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/predicate"
	"github.com/abhisek/mathcoach/ent/session"
	"github.com/abhisek/mathcoach/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *SubmissionUpdate) SetAnswerText(v string) *SubmissionUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAnswerText(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetParsedValue sets the "parsed_value" field.
func (_u *SubmissionUpdate) SetParsedValue(v float64) *SubmissionUpdate {
	_u.mutation.ResetParsedValue()
	_u.mutation.SetParsedValue(v)
	return _u
}

// SetNillableParsedValue sets the "parsed_value" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableParsedValue(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetParsedValue(*v)
	}
	return _u
}

// AddParsedValue adds value to the "parsed_value" field.
func (_u *SubmissionUpdate) AddParsedValue(v float64) *SubmissionUpdate {
	_u.mutation.AddParsedValue(v)
	return _u
}

// ClearParsedValue clears the value of the "parsed_value" field.
func (_u *SubmissionUpdate) ClearParsedValue() *SubmissionUpdate {
	_u.mutation.ClearParsedValue()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionUpdate) SetCorrect(v bool) *SubmissionUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCorrect(v *bool) *SubmissionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// ClearCorrect clears the value of the "correct" field.
func (_u *SubmissionUpdate) ClearCorrect() *SubmissionUpdate {
	_u.mutation.ClearCorrect()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionUpdate) SetFeedback(v string) *SubmissionUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFeedback(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *SubmissionUpdate) SetSessionID(id string) *SubmissionUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SubmissionUpdate) SetSession(v *Session) *SubmissionUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SubmissionUpdate) ClearSession() *SubmissionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.AnswerText(); ok {
		if err := submission.AnswerTextValidator(v); err != nil {
			return &ValidationError{Name: "answer_text", err: fmt.Errorf(`ent: validator failed for field "Submission.answer_text": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.session"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(submission.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedValue(); ok {
		_spec.SetField(submission.FieldParsedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParsedValue(); ok {
		_spec.AddField(submission.FieldParsedValue, field.TypeFloat64, value)
	}
	if _u.mutation.ParsedValueCleared() {
		_spec.ClearField(submission.FieldParsedValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submission.FieldCorrect, field.TypeBool, value)
	}
	if _u.mutation.CorrectCleared() {
		_spec.ClearField(submission.FieldCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submission.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SessionTable,
			Columns: []string{submission.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SessionTable,
			Columns: []string{submission.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetAnswerText sets the "answer_text" field.
func (_u *SubmissionUpdateOne) SetAnswerText(v string) *SubmissionUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAnswerText(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetParsedValue sets the "parsed_value" field.
func (_u *SubmissionUpdateOne) SetParsedValue(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetParsedValue()
	_u.mutation.SetParsedValue(v)
	return _u
}

// SetNillableParsedValue sets the "parsed_value" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableParsedValue(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetParsedValue(*v)
	}
	return _u
}

// AddParsedValue adds value to the "parsed_value" field.
func (_u *SubmissionUpdateOne) AddParsedValue(v float64) *SubmissionUpdateOne {
	_u.mutation.AddParsedValue(v)
	return _u
}

// ClearParsedValue clears the value of the "parsed_value" field.
func (_u *SubmissionUpdateOne) ClearParsedValue() *SubmissionUpdateOne {
	_u.mutation.ClearParsedValue()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionUpdateOne) SetCorrect(v bool) *SubmissionUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCorrect(v *bool) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// ClearCorrect clears the value of the "correct" field.
func (_u *SubmissionUpdateOne) ClearCorrect() *SubmissionUpdateOne {
	_u.mutation.ClearCorrect()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionUpdateOne) SetFeedback(v string) *SubmissionUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFeedback(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *SubmissionUpdateOne) SetSessionID(id string) *SubmissionUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SubmissionUpdateOne) SetSession(v *Session) *SubmissionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SubmissionUpdateOne) ClearSession() *SubmissionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.AnswerText(); ok {
		if err := submission.AnswerTextValidator(v); err != nil {
			return &ValidationError{Name: "answer_text", err: fmt.Errorf(`ent: validator failed for field "Submission.answer_text": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.session"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(submission.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedValue(); ok {
		_spec.SetField(submission.FieldParsedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParsedValue(); ok {
		_spec.AddField(submission.FieldParsedValue, field.TypeFloat64, value)
	}
	if _u.mutation.ParsedValueCleared() {
		_spec.ClearField(submission.FieldParsedValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submission.FieldCorrect, field.TypeBool, value)
	}
	if _u.mutation.CorrectCleared() {
		_spec.ClearField(submission.FieldCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submission.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SessionTable,
			Columns: []string{submission.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.SessionTable,
			Columns: []string{submission.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
