// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// CRMSyncLogUpdate is the builder for updating CRMSyncLog entities.
type CRMSyncLogUpdate struct {
	config
	hooks     []Hook
	mutation  *CRMSyncLogMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CRMSyncLogUpdate builder.
func (_u *CRMSyncLogUpdate) Where(ps ...predicate.CRMSyncLog) *CRMSyncLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CRMSyncLogUpdate) SetStatus(v crmsynclog.Status) *CRMSyncLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableStatus(v *crmsynclog.Status) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *CRMSyncLogUpdate) SetProcessed(v int) *CRMSyncLogUpdate {
	_u.mutation.ResetProcessed()
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableProcessed(v *int) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// AddProcessed adds value to the "processed" field.
func (_u *CRMSyncLogUpdate) AddProcessed(v int) *CRMSyncLogUpdate {
	_u.mutation.AddProcessed(v)
	return _u
}

// SetCreated sets the "created" field.
func (_u *CRMSyncLogUpdate) SetCreated(v int) *CRMSyncLogUpdate {
	_u.mutation.ResetCreated()
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableCreated(v *int) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// AddCreated adds value to the "created" field.
func (_u *CRMSyncLogUpdate) AddCreated(v int) *CRMSyncLogUpdate {
	_u.mutation.AddCreated(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *CRMSyncLogUpdate) SetUpdated(v int) *CRMSyncLogUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableUpdated(v *int) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *CRMSyncLogUpdate) AddUpdated(v int) *CRMSyncLogUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *CRMSyncLogUpdate) SetFailed(v int) *CRMSyncLogUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableFailed(v *int) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *CRMSyncLogUpdate) AddFailed(v int) *CRMSyncLogUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *CRMSyncLogUpdate) SetErrors(v []string) *CRMSyncLogUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *CRMSyncLogUpdate) AppendErrors(v []string) *CRMSyncLogUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *CRMSyncLogUpdate) ClearErrors() *CRMSyncLogUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CRMSyncLogUpdate) SetCompletedAt(v time.Time) *CRMSyncLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CRMSyncLogUpdate) SetNillableCompletedAt(v *time.Time) *CRMSyncLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CRMSyncLogUpdate) ClearCompletedAt() *CRMSyncLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CRMSyncLogMutation object of the builder.
func (_u *CRMSyncLogUpdate) Mutation() *CRMSyncLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRMSyncLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMSyncLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRMSyncLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMSyncLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMSyncLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crmsynclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRMSyncLog.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMSyncLogUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMSyncLogUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMSyncLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmsynclog.Table, crmsynclog.Columns, sqlgraph.NewFieldSpec(crmsynclog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crmsynclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(crmsynclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessed(); ok {
		_spec.AddField(crmsynclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(crmsynclog.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreated(); ok {
		_spec.AddField(crmsynclog.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(crmsynclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(crmsynclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(crmsynclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(crmsynclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(crmsynclog.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crmsynclog.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(crmsynclog.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(crmsynclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(crmsynclog.FieldCompletedAt, field.TypeTime)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmsynclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRMSyncLogUpdateOne is the builder for updating a single CRMSyncLog entity.
type CRMSyncLogUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CRMSyncLogMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetStatus sets the "status" field.
func (_u *CRMSyncLogUpdateOne) SetStatus(v crmsynclog.Status) *CRMSyncLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableStatus(v *crmsynclog.Status) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *CRMSyncLogUpdateOne) SetProcessed(v int) *CRMSyncLogUpdateOne {
	_u.mutation.ResetProcessed()
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableProcessed(v *int) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// AddProcessed adds value to the "processed" field.
func (_u *CRMSyncLogUpdateOne) AddProcessed(v int) *CRMSyncLogUpdateOne {
	_u.mutation.AddProcessed(v)
	return _u
}

// SetCreated sets the "created" field.
func (_u *CRMSyncLogUpdateOne) SetCreated(v int) *CRMSyncLogUpdateOne {
	_u.mutation.ResetCreated()
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableCreated(v *int) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// AddCreated adds value to the "created" field.
func (_u *CRMSyncLogUpdateOne) AddCreated(v int) *CRMSyncLogUpdateOne {
	_u.mutation.AddCreated(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *CRMSyncLogUpdateOne) SetUpdated(v int) *CRMSyncLogUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableUpdated(v *int) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *CRMSyncLogUpdateOne) AddUpdated(v int) *CRMSyncLogUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *CRMSyncLogUpdateOne) SetFailed(v int) *CRMSyncLogUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableFailed(v *int) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *CRMSyncLogUpdateOne) AddFailed(v int) *CRMSyncLogUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *CRMSyncLogUpdateOne) SetErrors(v []string) *CRMSyncLogUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *CRMSyncLogUpdateOne) AppendErrors(v []string) *CRMSyncLogUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *CRMSyncLogUpdateOne) ClearErrors() *CRMSyncLogUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CRMSyncLogUpdateOne) SetCompletedAt(v time.Time) *CRMSyncLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CRMSyncLogUpdateOne) SetNillableCompletedAt(v *time.Time) *CRMSyncLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CRMSyncLogUpdateOne) ClearCompletedAt() *CRMSyncLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CRMSyncLogMutation object of the builder.
func (_u *CRMSyncLogUpdateOne) Mutation() *CRMSyncLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the CRMSyncLogUpdate builder.
func (_u *CRMSyncLogUpdateOne) Where(ps ...predicate.CRMSyncLog) *CRMSyncLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRMSyncLogUpdateOne) Select(field string, fields ...string) *CRMSyncLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRMSyncLog entity.
func (_u *CRMSyncLogUpdateOne) Save(ctx context.Context) (*CRMSyncLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMSyncLogUpdateOne) SaveX(ctx context.Context) *CRMSyncLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRMSyncLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMSyncLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRMSyncLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crmsynclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRMSyncLog.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMSyncLogUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMSyncLogUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMSyncLogUpdateOne) sqlSave(ctx context.Context) (_node *CRMSyncLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmsynclog.Table, crmsynclog.Columns, sqlgraph.NewFieldSpec(crmsynclog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMSyncLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmsynclog.FieldID)
		for _, f := range fields {
			if !crmsynclog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmsynclog.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crmsynclog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(crmsynclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessed(); ok {
		_spec.AddField(crmsynclog.FieldProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(crmsynclog.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreated(); ok {
		_spec.AddField(crmsynclog.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(crmsynclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(crmsynclog.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(crmsynclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(crmsynclog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(crmsynclog.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, crmsynclog.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(crmsynclog.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(crmsynclog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(crmsynclog.FieldCompletedAt, field.TypeTime)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &CRMSyncLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmsynclog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
