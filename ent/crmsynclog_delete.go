// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// CRMSyncLogDelete is the builder for deleting a CRMSyncLog entity.
type CRMSyncLogDelete struct {
	config
	hooks    []Hook
	mutation *CRMSyncLogMutation
}

// Where appends a list predicates to the CRMSyncLogDelete builder.
func (_d *CRMSyncLogDelete) Where(ps ...predicate.CRMSyncLog) *CRMSyncLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CRMSyncLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CRMSyncLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CRMSyncLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(crmsynclog.Table, sqlgraph.NewFieldSpec(crmsynclog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CRMSyncLogDeleteOne is the builder for deleting a single CRMSyncLog entity.
type CRMSyncLogDeleteOne struct {
	_d *CRMSyncLogDelete
}

// Where appends a list predicates to the CRMSyncLogDelete builder.
func (_d *CRMSyncLogDeleteOne) Where(ps ...predicate.CRMSyncLog) *CRMSyncLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CRMSyncLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{crmsynclog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CRMSyncLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
