// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
)

// CRMSyncLogCreate is the builder for creating a CRMSyncLog entity.
type CRMSyncLogCreate struct {
	config
	mutation *CRMSyncLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *CRMSyncLogCreate) SetPlatform(v string) *CRMSyncLogCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CRMSyncLogCreate) SetDirection(v crmsynclog.Direction) *CRMSyncLogCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CRMSyncLogCreate) SetStatus(v crmsynclog.Status) *CRMSyncLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableStatus(v *crmsynclog.Status) *CRMSyncLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *CRMSyncLogCreate) SetProcessed(v int) *CRMSyncLogCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableProcessed(v *int) *CRMSyncLogCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetCreated sets the "created" field.
func (_c *CRMSyncLogCreate) SetCreated(v int) *CRMSyncLogCreate {
	_c.mutation.SetCreated(v)
	return _c
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableCreated(v *int) *CRMSyncLogCreate {
	if v != nil {
		_c.SetCreated(*v)
	}
	return _c
}

// SetUpdated sets the "updated" field.
func (_c *CRMSyncLogCreate) SetUpdated(v int) *CRMSyncLogCreate {
	_c.mutation.SetUpdated(v)
	return _c
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableUpdated(v *int) *CRMSyncLogCreate {
	if v != nil {
		_c.SetUpdated(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *CRMSyncLogCreate) SetFailed(v int) *CRMSyncLogCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableFailed(v *int) *CRMSyncLogCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *CRMSyncLogCreate) SetErrors(v []string) *CRMSyncLogCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CRMSyncLogCreate) SetStartedAt(v time.Time) *CRMSyncLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableStartedAt(v *time.Time) *CRMSyncLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CRMSyncLogCreate) SetCompletedAt(v time.Time) *CRMSyncLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CRMSyncLogCreate) SetNillableCompletedAt(v *time.Time) *CRMSyncLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CRMSyncLogCreate) SetID(v string) *CRMSyncLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CRMSyncLogMutation object of the builder.
func (_c *CRMSyncLogCreate) Mutation() *CRMSyncLogMutation {
	return _c.mutation
}

// Save creates the CRMSyncLog in the database.
func (_c *CRMSyncLogCreate) Save(ctx context.Context) (*CRMSyncLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRMSyncLogCreate) SaveX(ctx context.Context) *CRMSyncLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMSyncLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMSyncLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRMSyncLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := crmsynclog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := crmsynclog.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.Created(); !ok {
		v := crmsynclog.DefaultCreated
		_c.mutation.SetCreated(v)
	}
	if _, ok := _c.mutation.Updated(); !ok {
		v := crmsynclog.DefaultUpdated
		_c.mutation.SetUpdated(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := crmsynclog.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := crmsynclog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRMSyncLogCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "CRMSyncLog.platform"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CRMSyncLog.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := crmsynclog.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CRMSyncLog.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CRMSyncLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := crmsynclog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRMSyncLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "CRMSyncLog.processed"`)}
	}
	if _, ok := _c.mutation.Created(); !ok {
		return &ValidationError{Name: "created", err: errors.New(`ent: missing required field "CRMSyncLog.created"`)}
	}
	if _, ok := _c.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "CRMSyncLog.updated"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "CRMSyncLog.failed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CRMSyncLog.started_at"`)}
	}
	return nil
}

func (_c *CRMSyncLogCreate) sqlSave(ctx context.Context) (*CRMSyncLog, error) {
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
			return nil, fmt.Errorf("unexpected CRMSyncLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CRMSyncLogCreate) createSpec() (*CRMSyncLog, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMSyncLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crmsynclog.Table, sqlgraph.NewFieldSpec(crmsynclog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(crmsynclog.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(crmsynclog.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(crmsynclog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(crmsynclog.FieldProcessed, field.TypeInt, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.Created(); ok {
		_spec.SetField(crmsynclog.FieldCreated, field.TypeInt, value)
		_node.Created = value
	}
	if value, ok := _c.mutation.Updated(); ok {
		_spec.SetField(crmsynclog.FieldUpdated, field.TypeInt, value)
		_node.Updated = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(crmsynclog.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(crmsynclog.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(crmsynclog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(crmsynclog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMSyncLog.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMSyncLogUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMSyncLogCreate) OnConflict(opts ...sql.ConflictOption) *CRMSyncLogUpsertOne {
	_c.conflict = opts
	return &CRMSyncLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMSyncLogCreate) OnConflictColumns(columns ...string) *CRMSyncLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMSyncLogUpsertOne{
		create: _c,
	}
}

type (
	// CRMSyncLogUpsertOne is the builder for "upsert"-ing
	//  one CRMSyncLog node.
	CRMSyncLogUpsertOne struct {
		create *CRMSyncLogCreate
	}

	// CRMSyncLogUpsert is the "OnConflict" setter.
	CRMSyncLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CRMSyncLogUpsert) SetStatus(v crmsynclog.Status) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateStatus() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldStatus)
	return u
}

// SetProcessed sets the "processed" field.
func (u *CRMSyncLogUpsert) SetProcessed(v int) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldProcessed, v)
	return u
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateProcessed() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldProcessed)
	return u
}

// AddProcessed adds v to the "processed" field.
func (u *CRMSyncLogUpsert) AddProcessed(v int) *CRMSyncLogUpsert {
	u.Add(crmsynclog.FieldProcessed, v)
	return u
}

// SetCreated sets the "created" field.
func (u *CRMSyncLogUpsert) SetCreated(v int) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldCreated, v)
	return u
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateCreated() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldCreated)
	return u
}

// AddCreated adds v to the "created" field.
func (u *CRMSyncLogUpsert) AddCreated(v int) *CRMSyncLogUpsert {
	u.Add(crmsynclog.FieldCreated, v)
	return u
}

// SetUpdated sets the "updated" field.
func (u *CRMSyncLogUpsert) SetUpdated(v int) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldUpdated, v)
	return u
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateUpdated() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldUpdated)
	return u
}

// AddUpdated adds v to the "updated" field.
func (u *CRMSyncLogUpsert) AddUpdated(v int) *CRMSyncLogUpsert {
	u.Add(crmsynclog.FieldUpdated, v)
	return u
}

// SetFailed sets the "failed" field.
func (u *CRMSyncLogUpsert) SetFailed(v int) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldFailed, v)
	return u
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateFailed() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldFailed)
	return u
}

// AddFailed adds v to the "failed" field.
func (u *CRMSyncLogUpsert) AddFailed(v int) *CRMSyncLogUpsert {
	u.Add(crmsynclog.FieldFailed, v)
	return u
}

// SetErrors sets the "errors" field.
func (u *CRMSyncLogUpsert) SetErrors(v []string) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldErrors, v)
	return u
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateErrors() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldErrors)
	return u
}

// ClearErrors clears the value of the "errors" field.
func (u *CRMSyncLogUpsert) ClearErrors() *CRMSyncLogUpsert {
	u.SetNull(crmsynclog.FieldErrors)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CRMSyncLogUpsert) SetCompletedAt(v time.Time) *CRMSyncLogUpsert {
	u.Set(crmsynclog.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CRMSyncLogUpsert) UpdateCompletedAt() *CRMSyncLogUpsert {
	u.SetExcluded(crmsynclog.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CRMSyncLogUpsert) ClearCompletedAt() *CRMSyncLogUpsert {
	u.SetNull(crmsynclog.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmsynclog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMSyncLogUpsertOne) UpdateNewValues() *CRMSyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(crmsynclog.FieldID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(crmsynclog.FieldPlatform)
		}
		if _, exists := u.create.mutation.Direction(); exists {
			s.SetIgnore(crmsynclog.FieldDirection)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(crmsynclog.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CRMSyncLogUpsertOne) Ignore() *CRMSyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMSyncLogUpsertOne) DoNothing() *CRMSyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMSyncLogCreate.OnConflict
// documentation for more info.
func (u *CRMSyncLogUpsertOne) Update(set func(*CRMSyncLogUpsert)) *CRMSyncLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMSyncLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CRMSyncLogUpsertOne) SetStatus(v crmsynclog.Status) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateStatus() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateStatus()
	})
}

// SetProcessed sets the "processed" field.
func (u *CRMSyncLogUpsertOne) SetProcessed(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetProcessed(v)
	})
}

// AddProcessed adds v to the "processed" field.
func (u *CRMSyncLogUpsertOne) AddProcessed(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateProcessed() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateProcessed()
	})
}

// SetCreated sets the "created" field.
func (u *CRMSyncLogUpsertOne) SetCreated(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetCreated(v)
	})
}

// AddCreated adds v to the "created" field.
func (u *CRMSyncLogUpsertOne) AddCreated(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateCreated() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateCreated()
	})
}

// SetUpdated sets the "updated" field.
func (u *CRMSyncLogUpsertOne) SetUpdated(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetUpdated(v)
	})
}

// AddUpdated adds v to the "updated" field.
func (u *CRMSyncLogUpsertOne) AddUpdated(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateUpdated() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateUpdated()
	})
}

// SetFailed sets the "failed" field.
func (u *CRMSyncLogUpsertOne) SetFailed(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetFailed(v)
	})
}

// AddFailed adds v to the "failed" field.
func (u *CRMSyncLogUpsertOne) AddFailed(v int) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateFailed() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateFailed()
	})
}

// SetErrors sets the "errors" field.
func (u *CRMSyncLogUpsertOne) SetErrors(v []string) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateErrors() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *CRMSyncLogUpsertOne) ClearErrors() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.ClearErrors()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CRMSyncLogUpsertOne) SetCompletedAt(v time.Time) *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CRMSyncLogUpsertOne) UpdateCompletedAt() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CRMSyncLogUpsertOne) ClearCompletedAt() *CRMSyncLogUpsertOne {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CRMSyncLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMSyncLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMSyncLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CRMSyncLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CRMSyncLogUpsertOne.ID is not supported by MySQL driver. Use CRMSyncLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CRMSyncLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CRMSyncLogCreateBulk is the builder for creating many CRMSyncLog entities in bulk.
type CRMSyncLogCreateBulk struct {
	config
	err      error
	builders []*CRMSyncLogCreate
	conflict []sql.ConflictOption
}

// Save creates the CRMSyncLog entities in the database.
func (_c *CRMSyncLogCreateBulk) Save(ctx context.Context) ([]*CRMSyncLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRMSyncLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMSyncLogMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *CRMSyncLogCreateBulk) SaveX(ctx context.Context) []*CRMSyncLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMSyncLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMSyncLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMSyncLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMSyncLogUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMSyncLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *CRMSyncLogUpsertBulk {
	_c.conflict = opts
	return &CRMSyncLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMSyncLogCreateBulk) OnConflictColumns(columns ...string) *CRMSyncLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMSyncLogUpsertBulk{
		create: _c,
	}
}

// CRMSyncLogUpsertBulk is the builder for "upsert"-ing
// a bulk of CRMSyncLog nodes.
type CRMSyncLogUpsertBulk struct {
	create *CRMSyncLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmsynclog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMSyncLogUpsertBulk) UpdateNewValues() *CRMSyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(crmsynclog.FieldID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(crmsynclog.FieldPlatform)
			}
			if _, exists := b.mutation.Direction(); exists {
				s.SetIgnore(crmsynclog.FieldDirection)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(crmsynclog.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMSyncLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CRMSyncLogUpsertBulk) Ignore() *CRMSyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMSyncLogUpsertBulk) DoNothing() *CRMSyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMSyncLogCreateBulk.OnConflict
// documentation for more info.
func (u *CRMSyncLogUpsertBulk) Update(set func(*CRMSyncLogUpsert)) *CRMSyncLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMSyncLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CRMSyncLogUpsertBulk) SetStatus(v crmsynclog.Status) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateStatus() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateStatus()
	})
}

// SetProcessed sets the "processed" field.
func (u *CRMSyncLogUpsertBulk) SetProcessed(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetProcessed(v)
	})
}

// AddProcessed adds v to the "processed" field.
func (u *CRMSyncLogUpsertBulk) AddProcessed(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateProcessed() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateProcessed()
	})
}

// SetCreated sets the "created" field.
func (u *CRMSyncLogUpsertBulk) SetCreated(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetCreated(v)
	})
}

// AddCreated adds v to the "created" field.
func (u *CRMSyncLogUpsertBulk) AddCreated(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateCreated() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateCreated()
	})
}

// SetUpdated sets the "updated" field.
func (u *CRMSyncLogUpsertBulk) SetUpdated(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetUpdated(v)
	})
}

// AddUpdated adds v to the "updated" field.
func (u *CRMSyncLogUpsertBulk) AddUpdated(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateUpdated() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateUpdated()
	})
}

// SetFailed sets the "failed" field.
func (u *CRMSyncLogUpsertBulk) SetFailed(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetFailed(v)
	})
}

// AddFailed adds v to the "failed" field.
func (u *CRMSyncLogUpsertBulk) AddFailed(v int) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.AddFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateFailed() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateFailed()
	})
}

// SetErrors sets the "errors" field.
func (u *CRMSyncLogUpsertBulk) SetErrors(v []string) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateErrors() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *CRMSyncLogUpsertBulk) ClearErrors() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.ClearErrors()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CRMSyncLogUpsertBulk) SetCompletedAt(v time.Time) *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CRMSyncLogUpsertBulk) UpdateCompletedAt() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CRMSyncLogUpsertBulk) ClearCompletedAt() *CRMSyncLogUpsertBulk {
	return u.Update(func(s *CRMSyncLogUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CRMSyncLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CRMSyncLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMSyncLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMSyncLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
