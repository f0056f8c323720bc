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
	"github.com/ScientiaCapital/sales-agent/ent/agentexecution"
	"github.com/ScientiaCapital/sales-agent/ent/checkpoint"
)

// AgentExecutionCreate is the builder for creating a AgentExecution entity.
type AgentExecutionCreate struct {
	config
	mutation *AgentExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentExecutionCreate) SetAgentName(v string) *AgentExecutionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *AgentExecutionCreate) SetLeadID(v string) *AgentExecutionCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableLeadID(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetLeadID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentExecutionCreate) SetStatus(v agentexecution.Status) *AgentExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentExecutionCreate) SetStartedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableStartedAt(v *time.Time) *AgentExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentExecutionCreate) SetCompletedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCompletedAt(v *time.Time) *AgentExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AgentExecutionCreate) SetLatencyMs(v int) *AgentExecutionCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableLatencyMs(v *int) *AgentExecutionCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *AgentExecutionCreate) SetCostUsd(v float64) *AgentExecutionCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCostUsd(v *float64) *AgentExecutionCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentExecutionCreate) SetErrorMessage(v string) *AgentExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableErrorMessage(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentExecutionCreate) SetCreatedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCreatedAt(v *time.Time) *AgentExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentExecutionCreate) SetID(v string) *AgentExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *AgentExecutionCreate) AddCheckpointIDs(ids ...string) *AgentExecutionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *AgentExecutionCreate) AddCheckpoints(v ...*Checkpoint) *AgentExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_c *AgentExecutionCreate) Mutation() *AgentExecutionMutation {
	return _c.mutation
}

// Save creates the AgentExecution in the database.
func (_c *AgentExecutionCreate) Save(ctx context.Context) (*AgentExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentExecutionCreate) SaveX(ctx context.Context) *AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := agentexecution.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentExecutionCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentExecution.agent_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "AgentExecution.cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentExecution.created_at"`)}
	}
	return nil
}

func (_c *AgentExecutionCreate) sqlSave(ctx context.Context) (*AgentExecution, error) {
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
			return nil, fmt.Errorf("unexpected AgentExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentExecutionCreate) createSpec() (*AgentExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentexecution.Table, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentexecution.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(agentexecution.FieldLeadID, field.TypeString, value)
		_node.LeadID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(agentexecution.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(agentexecution.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.CheckpointsTable,
			Columns: []string{agentexecution.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentExecution.Create().
//		SetAgentName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentExecutionUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentExecutionCreate) OnConflict(opts ...sql.ConflictOption) *AgentExecutionUpsertOne {
	_c.conflict = opts
	return &AgentExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentExecutionCreate) OnConflictColumns(columns ...string) *AgentExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentExecutionUpsertOne{
		create: _c,
	}
}

type (
	// AgentExecutionUpsertOne is the builder for "upsert"-ing
	//  one AgentExecution node.
	AgentExecutionUpsertOne struct {
		create *AgentExecutionCreate
	}

	// AgentExecutionUpsert is the "OnConflict" setter.
	AgentExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *AgentExecutionUpsert) SetStatus(v agentexecution.Status) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateStatus() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AgentExecutionUpsert) SetStartedAt(v time.Time) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateStartedAt() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentExecutionUpsert) ClearStartedAt() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentExecutionUpsert) SetCompletedAt(v time.Time) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateCompletedAt() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentExecutionUpsert) ClearCompletedAt() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldCompletedAt)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AgentExecutionUpsert) SetLatencyMs(v int) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateLatencyMs() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AgentExecutionUpsert) AddLatencyMs(v int) *AgentExecutionUpsert {
	u.Add(agentexecution.FieldLatencyMs, v)
	return u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *AgentExecutionUpsert) ClearLatencyMs() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldLatencyMs)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentExecutionUpsert) SetCostUsd(v float64) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateCostUsd() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentExecutionUpsert) AddCostUsd(v float64) *AgentExecutionUpsert {
	u.Add(agentexecution.FieldCostUsd, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentExecutionUpsert) SetErrorMessage(v string) *AgentExecutionUpsert {
	u.Set(agentexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentExecutionUpsert) UpdateErrorMessage() *AgentExecutionUpsert {
	u.SetExcluded(agentexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentExecutionUpsert) ClearErrorMessage() *AgentExecutionUpsert {
	u.SetNull(agentexecution.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentExecutionUpsertOne) UpdateNewValues() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentexecution.FieldID)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(agentexecution.FieldAgentName)
		}
		if _, exists := u.create.mutation.LeadID(); exists {
			s.SetIgnore(agentexecution.FieldLeadID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentExecutionUpsertOne) Ignore() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentExecutionUpsertOne) DoNothing() *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentExecutionCreate.OnConflict
// documentation for more info.
func (u *AgentExecutionUpsertOne) Update(set func(*AgentExecutionUpsert)) *AgentExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentExecutionUpsertOne) SetStatus(v agentexecution.Status) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateStatus() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AgentExecutionUpsertOne) SetStartedAt(v time.Time) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateStartedAt() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentExecutionUpsertOne) ClearStartedAt() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentExecutionUpsertOne) SetCompletedAt(v time.Time) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateCompletedAt() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentExecutionUpsertOne) ClearCompletedAt() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AgentExecutionUpsertOne) SetLatencyMs(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AgentExecutionUpsertOne) AddLatencyMs(v int) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateLatencyMs() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateLatencyMs()
	})
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *AgentExecutionUpsertOne) ClearLatencyMs() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearLatencyMs()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentExecutionUpsertOne) SetCostUsd(v float64) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentExecutionUpsertOne) AddCostUsd(v float64) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateCostUsd() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCostUsd()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentExecutionUpsertOne) SetErrorMessage(v string) *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentExecutionUpsertOne) UpdateErrorMessage() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentExecutionUpsertOne) ClearErrorMessage() *AgentExecutionUpsertOne {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *AgentExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentExecutionUpsertOne.ID is not supported by MySQL driver. Use AgentExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentExecutionCreateBulk is the builder for creating many AgentExecution entities in bulk.
type AgentExecutionCreateBulk struct {
	config
	err      error
	builders []*AgentExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentExecution entities in the database.
func (_c *AgentExecutionCreateBulk) Save(ctx context.Context) ([]*AgentExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentExecutionMutation)
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
func (_c *AgentExecutionCreateBulk) SaveX(ctx context.Context) []*AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentExecutionUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentExecutionUpsertBulk {
	_c.conflict = opts
	return &AgentExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentExecutionCreateBulk) OnConflictColumns(columns ...string) *AgentExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentExecutionUpsertBulk{
		create: _c,
	}
}

// AgentExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentExecution nodes.
type AgentExecutionUpsertBulk struct {
	create *AgentExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentExecutionUpsertBulk) UpdateNewValues() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentexecution.FieldID)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(agentexecution.FieldAgentName)
			}
			if _, exists := b.mutation.LeadID(); exists {
				s.SetIgnore(agentexecution.FieldLeadID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentExecutionUpsertBulk) Ignore() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentExecutionUpsertBulk) DoNothing() *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentExecutionUpsertBulk) Update(set func(*AgentExecutionUpsert)) *AgentExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentExecutionUpsertBulk) SetStatus(v agentexecution.Status) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateStatus() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AgentExecutionUpsertBulk) SetStartedAt(v time.Time) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateStartedAt() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentExecutionUpsertBulk) ClearStartedAt() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentExecutionUpsertBulk) SetCompletedAt(v time.Time) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateCompletedAt() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentExecutionUpsertBulk) ClearCompletedAt() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *AgentExecutionUpsertBulk) SetLatencyMs(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *AgentExecutionUpsertBulk) AddLatencyMs(v int) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateLatencyMs() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateLatencyMs()
	})
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *AgentExecutionUpsertBulk) ClearLatencyMs() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearLatencyMs()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *AgentExecutionUpsertBulk) SetCostUsd(v float64) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *AgentExecutionUpsertBulk) AddCostUsd(v float64) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateCostUsd() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateCostUsd()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentExecutionUpsertBulk) SetErrorMessage(v string) *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentExecutionUpsertBulk) UpdateErrorMessage() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentExecutionUpsertBulk) ClearErrorMessage() *AgentExecutionUpsertBulk {
	return u.Update(func(s *AgentExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *AgentExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
