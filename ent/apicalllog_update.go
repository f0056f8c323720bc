// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// ApiCallLogUpdate is the builder for updating ApiCallLog entities.
type ApiCallLogUpdate struct {
	config
	hooks     []Hook
	mutation  *ApiCallLogMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ApiCallLogUpdate builder.
func (_u *ApiCallLogUpdate) Where(ps ...predicate.ApiCallLog) *ApiCallLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ApiCallLogMutation object of the builder.
func (_u *ApiCallLogUpdate) Mutation() *ApiCallLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiCallLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiCallLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiCallLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiCallLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ApiCallLogUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ApiCallLogUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ApiCallLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(apicalllog.Table, apicalllog.Columns, sqlgraph.NewFieldSpec(apicalllog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(apicalllog.FieldUserID, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(apicalllog.FieldErrorMessage, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apicalllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiCallLogUpdateOne is the builder for updating a single ApiCallLog entity.
type ApiCallLogUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ApiCallLogMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Mutation returns the ApiCallLogMutation object of the builder.
func (_u *ApiCallLogUpdateOne) Mutation() *ApiCallLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiCallLogUpdate builder.
func (_u *ApiCallLogUpdateOne) Where(ps ...predicate.ApiCallLog) *ApiCallLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiCallLogUpdateOne) Select(field string, fields ...string) *ApiCallLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiCallLog entity.
func (_u *ApiCallLogUpdateOne) Save(ctx context.Context) (*ApiCallLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiCallLogUpdateOne) SaveX(ctx context.Context) *ApiCallLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiCallLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiCallLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ApiCallLogUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ApiCallLogUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ApiCallLogUpdateOne) sqlSave(ctx context.Context) (_node *ApiCallLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(apicalllog.Table, apicalllog.Columns, sqlgraph.NewFieldSpec(apicalllog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiCallLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apicalllog.FieldID)
		for _, f := range fields {
			if !apicalllog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apicalllog.FieldID {
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
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(apicalllog.FieldUserID, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(apicalllog.FieldErrorMessage, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &ApiCallLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apicalllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
