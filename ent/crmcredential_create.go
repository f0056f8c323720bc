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
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
)

// CRMCredentialCreate is the builder for creating a CRMCredential entity.
type CRMCredentialCreate struct {
	config
	mutation *CRMCredentialMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *CRMCredentialCreate) SetTenantID(v string) *CRMCredentialCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *CRMCredentialCreate) SetPlatform(v string) *CRMCredentialCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_c *CRMCredentialCreate) SetAccessTokenEncrypted(v []byte) *CRMCredentialCreate {
	_c.mutation.SetAccessTokenEncrypted(v)
	return _c
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_c *CRMCredentialCreate) SetRefreshTokenEncrypted(v []byte) *CRMCredentialCreate {
	_c.mutation.SetRefreshTokenEncrypted(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CRMCredentialCreate) SetExpiresAt(v time.Time) *CRMCredentialCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *CRMCredentialCreate) SetNillableExpiresAt(v *time.Time) *CRMCredentialCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CRMCredentialCreate) SetCreatedAt(v time.Time) *CRMCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CRMCredentialCreate) SetNillableCreatedAt(v *time.Time) *CRMCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CRMCredentialCreate) SetUpdatedAt(v time.Time) *CRMCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CRMCredentialCreate) SetNillableUpdatedAt(v *time.Time) *CRMCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CRMCredentialCreate) SetID(v string) *CRMCredentialCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CRMCredentialMutation object of the builder.
func (_c *CRMCredentialCreate) Mutation() *CRMCredentialMutation {
	return _c.mutation
}

// Save creates the CRMCredential in the database.
func (_c *CRMCredentialCreate) Save(ctx context.Context) (*CRMCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRMCredentialCreate) SaveX(ctx context.Context) *CRMCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRMCredentialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crmcredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crmcredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRMCredentialCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CRMCredential.tenant_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "CRMCredential.platform"`)}
	}
	if _, ok := _c.mutation.AccessTokenEncrypted(); !ok {
		return &ValidationError{Name: "access_token_encrypted", err: errors.New(`ent: missing required field "CRMCredential.access_token_encrypted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRMCredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRMCredential.updated_at"`)}
	}
	return nil
}

func (_c *CRMCredentialCreate) sqlSave(ctx context.Context) (*CRMCredential, error) {
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
			return nil, fmt.Errorf("unexpected CRMCredential.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CRMCredentialCreate) createSpec() (*CRMCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crmcredential.Table, sqlgraph.NewFieldSpec(crmcredential.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(crmcredential.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(crmcredential.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldAccessTokenEncrypted, field.TypeBytes, value)
		_node.AccessTokenEncrypted = value
	}
	if value, ok := _c.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldRefreshTokenEncrypted, field.TypeBytes, value)
		_node.RefreshTokenEncrypted = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(crmcredential.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crmcredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMCredential.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMCredentialUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMCredentialCreate) OnConflict(opts ...sql.ConflictOption) *CRMCredentialUpsertOne {
	_c.conflict = opts
	return &CRMCredentialUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMCredentialCreate) OnConflictColumns(columns ...string) *CRMCredentialUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMCredentialUpsertOne{
		create: _c,
	}
}

type (
	// CRMCredentialUpsertOne is the builder for "upsert"-ing
	//  one CRMCredential node.
	CRMCredentialUpsertOne struct {
		create *CRMCredentialCreate
	}

	// CRMCredentialUpsert is the "OnConflict" setter.
	CRMCredentialUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *CRMCredentialUpsert) SetAccessTokenEncrypted(v []byte) *CRMCredentialUpsert {
	u.Set(crmcredential.FieldAccessTokenEncrypted, v)
	return u
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsert) UpdateAccessTokenEncrypted() *CRMCredentialUpsert {
	u.SetExcluded(crmcredential.FieldAccessTokenEncrypted)
	return u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsert) SetRefreshTokenEncrypted(v []byte) *CRMCredentialUpsert {
	u.Set(crmcredential.FieldRefreshTokenEncrypted, v)
	return u
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsert) UpdateRefreshTokenEncrypted() *CRMCredentialUpsert {
	u.SetExcluded(crmcredential.FieldRefreshTokenEncrypted)
	return u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsert) ClearRefreshTokenEncrypted() *CRMCredentialUpsert {
	u.SetNull(crmcredential.FieldRefreshTokenEncrypted)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *CRMCredentialUpsert) SetExpiresAt(v time.Time) *CRMCredentialUpsert {
	u.Set(crmcredential.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CRMCredentialUpsert) UpdateExpiresAt() *CRMCredentialUpsert {
	u.SetExcluded(crmcredential.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CRMCredentialUpsert) ClearExpiresAt() *CRMCredentialUpsert {
	u.SetNull(crmcredential.FieldExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMCredentialUpsert) SetUpdatedAt(v time.Time) *CRMCredentialUpsert {
	u.Set(crmcredential.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMCredentialUpsert) UpdateUpdatedAt() *CRMCredentialUpsert {
	u.SetExcluded(crmcredential.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmcredential.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMCredentialUpsertOne) UpdateNewValues() *CRMCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(crmcredential.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(crmcredential.FieldTenantID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(crmcredential.FieldPlatform)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(crmcredential.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CRMCredentialUpsertOne) Ignore() *CRMCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMCredentialUpsertOne) DoNothing() *CRMCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMCredentialCreate.OnConflict
// documentation for more info.
func (u *CRMCredentialUpsertOne) Update(set func(*CRMCredentialUpsert)) *CRMCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *CRMCredentialUpsertOne) SetAccessTokenEncrypted(v []byte) *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetAccessTokenEncrypted(v)
	})
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsertOne) UpdateAccessTokenEncrypted() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateAccessTokenEncrypted()
	})
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsertOne) SetRefreshTokenEncrypted(v []byte) *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetRefreshTokenEncrypted(v)
	})
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsertOne) UpdateRefreshTokenEncrypted() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateRefreshTokenEncrypted()
	})
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsertOne) ClearRefreshTokenEncrypted() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.ClearRefreshTokenEncrypted()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CRMCredentialUpsertOne) SetExpiresAt(v time.Time) *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CRMCredentialUpsertOne) UpdateExpiresAt() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CRMCredentialUpsertOne) ClearExpiresAt() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.ClearExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMCredentialUpsertOne) SetUpdatedAt(v time.Time) *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMCredentialUpsertOne) UpdateUpdatedAt() *CRMCredentialUpsertOne {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMCredentialUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMCredentialCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMCredentialUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CRMCredentialUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CRMCredentialUpsertOne.ID is not supported by MySQL driver. Use CRMCredentialUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CRMCredentialUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CRMCredentialCreateBulk is the builder for creating many CRMCredential entities in bulk.
type CRMCredentialCreateBulk struct {
	config
	err      error
	builders []*CRMCredentialCreate
	conflict []sql.ConflictOption
}

// Save creates the CRMCredential entities in the database.
func (_c *CRMCredentialCreateBulk) Save(ctx context.Context) ([]*CRMCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRMCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMCredentialMutation)
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
func (_c *CRMCredentialCreateBulk) SaveX(ctx context.Context) []*CRMCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMCredential.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMCredentialUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMCredentialCreateBulk) OnConflict(opts ...sql.ConflictOption) *CRMCredentialUpsertBulk {
	_c.conflict = opts
	return &CRMCredentialUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMCredentialCreateBulk) OnConflictColumns(columns ...string) *CRMCredentialUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMCredentialUpsertBulk{
		create: _c,
	}
}

// CRMCredentialUpsertBulk is the builder for "upsert"-ing
// a bulk of CRMCredential nodes.
type CRMCredentialUpsertBulk struct {
	create *CRMCredentialCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmcredential.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMCredentialUpsertBulk) UpdateNewValues() *CRMCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(crmcredential.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(crmcredential.FieldTenantID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(crmcredential.FieldPlatform)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(crmcredential.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMCredential.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CRMCredentialUpsertBulk) Ignore() *CRMCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMCredentialUpsertBulk) DoNothing() *CRMCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMCredentialCreateBulk.OnConflict
// documentation for more info.
func (u *CRMCredentialUpsertBulk) Update(set func(*CRMCredentialUpsert)) *CRMCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *CRMCredentialUpsertBulk) SetAccessTokenEncrypted(v []byte) *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetAccessTokenEncrypted(v)
	})
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsertBulk) UpdateAccessTokenEncrypted() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateAccessTokenEncrypted()
	})
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsertBulk) SetRefreshTokenEncrypted(v []byte) *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetRefreshTokenEncrypted(v)
	})
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *CRMCredentialUpsertBulk) UpdateRefreshTokenEncrypted() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateRefreshTokenEncrypted()
	})
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *CRMCredentialUpsertBulk) ClearRefreshTokenEncrypted() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.ClearRefreshTokenEncrypted()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CRMCredentialUpsertBulk) SetExpiresAt(v time.Time) *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CRMCredentialUpsertBulk) UpdateExpiresAt() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *CRMCredentialUpsertBulk) ClearExpiresAt() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.ClearExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMCredentialUpsertBulk) SetUpdatedAt(v time.Time) *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMCredentialUpsertBulk) UpdateUpdatedAt() *CRMCredentialUpsertBulk {
	return u.Update(func(s *CRMCredentialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMCredentialUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CRMCredentialCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMCredentialCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMCredentialUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
