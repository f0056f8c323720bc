// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// CRMCredentialUpdate is the builder for updating CRMCredential entities.
type CRMCredentialUpdate struct {
	config
	hooks     []Hook
	mutation  *CRMCredentialMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CRMCredentialUpdate builder.
func (_u *CRMCredentialUpdate) Where(ps ...predicate.CRMCredential) *CRMCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_u *CRMCredentialUpdate) SetAccessTokenEncrypted(v []byte) *CRMCredentialUpdate {
	_u.mutation.SetAccessTokenEncrypted(v)
	return _u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_u *CRMCredentialUpdate) SetRefreshTokenEncrypted(v []byte) *CRMCredentialUpdate {
	_u.mutation.SetRefreshTokenEncrypted(v)
	return _u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (_u *CRMCredentialUpdate) ClearRefreshTokenEncrypted() *CRMCredentialUpdate {
	_u.mutation.ClearRefreshTokenEncrypted()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CRMCredentialUpdate) SetExpiresAt(v time.Time) *CRMCredentialUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CRMCredentialUpdate) SetNillableExpiresAt(v *time.Time) *CRMCredentialUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CRMCredentialUpdate) ClearExpiresAt() *CRMCredentialUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMCredentialUpdate) SetUpdatedAt(v time.Time) *CRMCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CRMCredentialMutation object of the builder.
func (_u *CRMCredentialUpdate) Mutation() *CRMCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRMCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRMCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMCredentialUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMCredentialUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(crmcredential.Table, crmcredential.Columns, sqlgraph.NewFieldSpec(crmcredential.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldAccessTokenEncrypted, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldRefreshTokenEncrypted, field.TypeBytes, value)
	}
	if _u.mutation.RefreshTokenEncryptedCleared() {
		_spec.ClearField(crmcredential.FieldRefreshTokenEncrypted, field.TypeBytes)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(crmcredential.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(crmcredential.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRMCredentialUpdateOne is the builder for updating a single CRMCredential entity.
type CRMCredentialUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CRMCredentialMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_u *CRMCredentialUpdateOne) SetAccessTokenEncrypted(v []byte) *CRMCredentialUpdateOne {
	_u.mutation.SetAccessTokenEncrypted(v)
	return _u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_u *CRMCredentialUpdateOne) SetRefreshTokenEncrypted(v []byte) *CRMCredentialUpdateOne {
	_u.mutation.SetRefreshTokenEncrypted(v)
	return _u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (_u *CRMCredentialUpdateOne) ClearRefreshTokenEncrypted() *CRMCredentialUpdateOne {
	_u.mutation.ClearRefreshTokenEncrypted()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CRMCredentialUpdateOne) SetExpiresAt(v time.Time) *CRMCredentialUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CRMCredentialUpdateOne) SetNillableExpiresAt(v *time.Time) *CRMCredentialUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CRMCredentialUpdateOne) ClearExpiresAt() *CRMCredentialUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMCredentialUpdateOne) SetUpdatedAt(v time.Time) *CRMCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CRMCredentialMutation object of the builder.
func (_u *CRMCredentialUpdateOne) Mutation() *CRMCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the CRMCredentialUpdate builder.
func (_u *CRMCredentialUpdateOne) Where(ps ...predicate.CRMCredential) *CRMCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRMCredentialUpdateOne) Select(field string, fields ...string) *CRMCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRMCredential entity.
func (_u *CRMCredentialUpdateOne) Save(ctx context.Context) (*CRMCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMCredentialUpdateOne) SaveX(ctx context.Context) *CRMCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRMCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMCredentialUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMCredentialUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMCredentialUpdateOne) sqlSave(ctx context.Context) (_node *CRMCredential, err error) {
	_spec := sqlgraph.NewUpdateSpec(crmcredential.Table, crmcredential.Columns, sqlgraph.NewFieldSpec(crmcredential.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmcredential.FieldID)
		for _, f := range fields {
			if !crmcredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmcredential.FieldID {
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
	if value, ok := _u.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldAccessTokenEncrypted, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(crmcredential.FieldRefreshTokenEncrypted, field.TypeBytes, value)
	}
	if _u.mutation.RefreshTokenEncryptedCleared() {
		_spec.ClearField(crmcredential.FieldRefreshTokenEncrypted, field.TypeBytes)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(crmcredential.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(crmcredential.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &CRMCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
