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
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
)

// ApiCallLogCreate is the builder for creating a ApiCallLog entity.
type ApiCallLogCreate struct {
	config
	mutation *ApiCallLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProvider sets the "provider" field.
func (_c *ApiCallLogCreate) SetProvider(v string) *ApiCallLogCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ApiCallLogCreate) SetModel(v string) *ApiCallLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *ApiCallLogCreate) SetEndpoint(v string) *ApiCallLogCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ApiCallLogCreate) SetOperation(v apicalllog.Operation) *ApiCallLogCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *ApiCallLogCreate) SetPromptTokens(v int) *ApiCallLogCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillablePromptTokens(v *int) *ApiCallLogCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *ApiCallLogCreate) SetCompletionTokens(v int) *ApiCallLogCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableCompletionTokens(v *int) *ApiCallLogCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ApiCallLogCreate) SetTotalTokens(v int) *ApiCallLogCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableTotalTokens(v *int) *ApiCallLogCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ApiCallLogCreate) SetLatencyMs(v int) *ApiCallLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableLatencyMs(v *int) *ApiCallLogCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ApiCallLogCreate) SetCostUsd(v float64) *ApiCallLogCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableCostUsd(v *float64) *ApiCallLogCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ApiCallLogCreate) SetUserID(v string) *ApiCallLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableUserID(v *string) *ApiCallLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ApiCallLogCreate) SetSuccess(v bool) *ApiCallLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ApiCallLogCreate) SetErrorMessage(v string) *ApiCallLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableErrorMessage(v *string) *ApiCallLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *ApiCallLogCreate) SetCacheHit(v bool) *ApiCallLogCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableCacheHit(v *bool) *ApiCallLogCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApiCallLogCreate) SetCreatedAt(v time.Time) *ApiCallLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableCreatedAt(v *time.Time) *ApiCallLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApiCallLogCreate) SetID(v string) *ApiCallLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApiCallLogMutation object of the builder.
func (_c *ApiCallLogCreate) Mutation() *ApiCallLogMutation {
	return _c.mutation
}

// Save creates the ApiCallLog in the database.
func (_c *ApiCallLogCreate) Save(ctx context.Context) (*ApiCallLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiCallLogCreate) SaveX(ctx context.Context) *ApiCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiCallLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiCallLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApiCallLogCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := apicalllog.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := apicalllog.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := apicalllog.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := apicalllog.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := apicalllog.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := apicalllog.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apicalllog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiCallLogCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ApiCallLog.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ApiCallLog.model"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "ApiCallLog.endpoint"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "ApiCallLog.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := apicalllog.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "ApiCallLog.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "ApiCallLog.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "ApiCallLog.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ApiCallLog.total_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ApiCallLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "ApiCallLog.cost_usd"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ApiCallLog.success"`)}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "ApiCallLog.cache_hit"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApiCallLog.created_at"`)}
	}
	return nil
}

func (_c *ApiCallLogCreate) sqlSave(ctx context.Context) (*ApiCallLog, error) {
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
			return nil, fmt.Errorf("unexpected ApiCallLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApiCallLogCreate) createSpec() (*ApiCallLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiCallLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apicalllog.Table, sqlgraph.NewFieldSpec(apicalllog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(apicalllog.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(apicalllog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(apicalllog.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(apicalllog.FieldOperation, field.TypeEnum, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(apicalllog.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(apicalllog.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(apicalllog.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(apicalllog.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(apicalllog.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(apicalllog.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(apicalllog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(apicalllog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(apicalllog.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apicalllog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApiCallLog.Create().
//		SetProvider(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApiCallLogUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ApiCallLogCreate) OnConflict(opts ...sql.ConflictOption) *ApiCallLogUpsertOne {
	_c.conflict = opts
	return &ApiCallLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApiCallLogCreate) OnConflictColumns(columns ...string) *ApiCallLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApiCallLogUpsertOne{
		create: _c,
	}
}

type (
	// ApiCallLogUpsertOne is the builder for "upsert"-ing
	//  one ApiCallLog node.
	ApiCallLogUpsertOne struct {
		create *ApiCallLogCreate
	}

	// ApiCallLogUpsert is the "OnConflict" setter.
	ApiCallLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apicalllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApiCallLogUpsertOne) UpdateNewValues() *ApiCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(apicalllog.FieldID)
		}
		if _, exists := u.create.mutation.Provider(); exists {
			s.SetIgnore(apicalllog.FieldProvider)
		}
		if _, exists := u.create.mutation.Model(); exists {
			s.SetIgnore(apicalllog.FieldModel)
		}
		if _, exists := u.create.mutation.Endpoint(); exists {
			s.SetIgnore(apicalllog.FieldEndpoint)
		}
		if _, exists := u.create.mutation.Operation(); exists {
			s.SetIgnore(apicalllog.FieldOperation)
		}
		if _, exists := u.create.mutation.PromptTokens(); exists {
			s.SetIgnore(apicalllog.FieldPromptTokens)
		}
		if _, exists := u.create.mutation.CompletionTokens(); exists {
			s.SetIgnore(apicalllog.FieldCompletionTokens)
		}
		if _, exists := u.create.mutation.TotalTokens(); exists {
			s.SetIgnore(apicalllog.FieldTotalTokens)
		}
		if _, exists := u.create.mutation.LatencyMs(); exists {
			s.SetIgnore(apicalllog.FieldLatencyMs)
		}
		if _, exists := u.create.mutation.CostUsd(); exists {
			s.SetIgnore(apicalllog.FieldCostUsd)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(apicalllog.FieldUserID)
		}
		if _, exists := u.create.mutation.Success(); exists {
			s.SetIgnore(apicalllog.FieldSuccess)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(apicalllog.FieldErrorMessage)
		}
		if _, exists := u.create.mutation.CacheHit(); exists {
			s.SetIgnore(apicalllog.FieldCacheHit)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(apicalllog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApiCallLogUpsertOne) Ignore() *ApiCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApiCallLogUpsertOne) DoNothing() *ApiCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApiCallLogCreate.OnConflict
// documentation for more info.
func (u *ApiCallLogUpsertOne) Update(set func(*ApiCallLogUpsert)) *ApiCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApiCallLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApiCallLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApiCallLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApiCallLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApiCallLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApiCallLogUpsertOne.ID is not supported by MySQL driver. Use ApiCallLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApiCallLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApiCallLogCreateBulk is the builder for creating many ApiCallLog entities in bulk.
type ApiCallLogCreateBulk struct {
	config
	err      error
	builders []*ApiCallLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ApiCallLog entities in the database.
func (_c *ApiCallLogCreateBulk) Save(ctx context.Context) ([]*ApiCallLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiCallLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiCallLogMutation)
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
func (_c *ApiCallLogCreateBulk) SaveX(ctx context.Context) []*ApiCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiCallLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiCallLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApiCallLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApiCallLogUpsert) {
//			SetProvider(v+v).
//		}).
//		Exec(ctx)
func (_c *ApiCallLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApiCallLogUpsertBulk {
	_c.conflict = opts
	return &ApiCallLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApiCallLogCreateBulk) OnConflictColumns(columns ...string) *ApiCallLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApiCallLogUpsertBulk{
		create: _c,
	}
}

// ApiCallLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ApiCallLog nodes.
type ApiCallLogUpsertBulk struct {
	create *ApiCallLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(apicalllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApiCallLogUpsertBulk) UpdateNewValues() *ApiCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(apicalllog.FieldID)
			}
			if _, exists := b.mutation.Provider(); exists {
				s.SetIgnore(apicalllog.FieldProvider)
			}
			if _, exists := b.mutation.Model(); exists {
				s.SetIgnore(apicalllog.FieldModel)
			}
			if _, exists := b.mutation.Endpoint(); exists {
				s.SetIgnore(apicalllog.FieldEndpoint)
			}
			if _, exists := b.mutation.Operation(); exists {
				s.SetIgnore(apicalllog.FieldOperation)
			}
			if _, exists := b.mutation.PromptTokens(); exists {
				s.SetIgnore(apicalllog.FieldPromptTokens)
			}
			if _, exists := b.mutation.CompletionTokens(); exists {
				s.SetIgnore(apicalllog.FieldCompletionTokens)
			}
			if _, exists := b.mutation.TotalTokens(); exists {
				s.SetIgnore(apicalllog.FieldTotalTokens)
			}
			if _, exists := b.mutation.LatencyMs(); exists {
				s.SetIgnore(apicalllog.FieldLatencyMs)
			}
			if _, exists := b.mutation.CostUsd(); exists {
				s.SetIgnore(apicalllog.FieldCostUsd)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(apicalllog.FieldUserID)
			}
			if _, exists := b.mutation.Success(); exists {
				s.SetIgnore(apicalllog.FieldSuccess)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(apicalllog.FieldErrorMessage)
			}
			if _, exists := b.mutation.CacheHit(); exists {
				s.SetIgnore(apicalllog.FieldCacheHit)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(apicalllog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApiCallLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApiCallLogUpsertBulk) Ignore() *ApiCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApiCallLogUpsertBulk) DoNothing() *ApiCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApiCallLogCreateBulk.OnConflict
// documentation for more info.
func (u *ApiCallLogUpsertBulk) Update(set func(*ApiCallLogUpsert)) *ApiCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApiCallLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApiCallLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApiCallLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApiCallLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApiCallLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
