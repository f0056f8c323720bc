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
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
)

// CRMContactCreate is the builder for creating a CRMContact entity.
type CRMContactCreate struct {
	config
	mutation *CRMContactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *CRMContactCreate) SetPlatform(v string) *CRMContactCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *CRMContactCreate) SetExternalID(v string) *CRMContactCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CRMContactCreate) SetEmail(v string) *CRMContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableEmail(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *CRMContactCreate) SetFirstName(v string) *CRMContactCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableFirstName(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *CRMContactCreate) SetLastName(v string) *CRMContactCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableLastName(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *CRMContactCreate) SetCompany(v string) *CRMContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableCompany(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CRMContactCreate) SetTitle(v string) *CRMContactCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableTitle(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CRMContactCreate) SetPhone(v string) *CRMContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillablePhone(v *string) *CRMContactCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetProperties sets the "properties" field.
func (_c *CRMContactCreate) SetProperties(v map[string]interface{}) *CRMContactCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (_c *CRMContactCreate) SetEnrichmentEncrypted(v []byte) *CRMContactCreate {
	_c.mutation.SetEnrichmentEncrypted(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *CRMContactCreate) SetNeedsReview(v bool) *CRMContactCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableNeedsReview(v *bool) *CRMContactCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *CRMContactCreate) SetLastSyncedAt(v time.Time) *CRMContactCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableLastSyncedAt(v *time.Time) *CRMContactCreate {
	if v != nil {
		_c.SetLastSyncedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CRMContactCreate) SetCreatedAt(v time.Time) *CRMContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableCreatedAt(v *time.Time) *CRMContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CRMContactCreate) SetUpdatedAt(v time.Time) *CRMContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CRMContactCreate) SetNillableUpdatedAt(v *time.Time) *CRMContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CRMContactCreate) SetID(v string) *CRMContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CRMContactMutation object of the builder.
func (_c *CRMContactCreate) Mutation() *CRMContactMutation {
	return _c.mutation
}

// Save creates the CRMContact in the database.
func (_c *CRMContactCreate) Save(ctx context.Context) (*CRMContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRMContactCreate) SaveX(ctx context.Context) *CRMContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRMContactCreate) defaults() {
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := crmcontact.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crmcontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crmcontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRMContactCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "CRMContact.platform"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "CRMContact.external_id"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "CRMContact.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRMContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRMContact.updated_at"`)}
	}
	return nil
}

func (_c *CRMContactCreate) sqlSave(ctx context.Context) (*CRMContact, error) {
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
			return nil, fmt.Errorf("unexpected CRMContact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CRMContactCreate) createSpec() (*CRMContact, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crmcontact.Table, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(crmcontact.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(crmcontact.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(crmcontact.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(crmcontact.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.EnrichmentEncrypted(); ok {
		_spec.SetField(crmcontact.FieldEnrichmentEncrypted, field.TypeBytes, value)
		_node.EnrichmentEncrypted = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(crmcontact.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(crmcontact.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crmcontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMContact.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMContactUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMContactCreate) OnConflict(opts ...sql.ConflictOption) *CRMContactUpsertOne {
	_c.conflict = opts
	return &CRMContactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMContactCreate) OnConflictColumns(columns ...string) *CRMContactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMContactUpsertOne{
		create: _c,
	}
}

type (
	// CRMContactUpsertOne is the builder for "upsert"-ing
	//  one CRMContact node.
	CRMContactUpsertOne struct {
		create *CRMContactCreate
	}

	// CRMContactUpsert is the "OnConflict" setter.
	CRMContactUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmail sets the "email" field.
func (u *CRMContactUpsert) SetEmail(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateEmail() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *CRMContactUpsert) ClearEmail() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldEmail)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *CRMContactUpsert) SetFirstName(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateFirstName() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldFirstName)
	return u
}

// ClearFirstName clears the value of the "first_name" field.
func (u *CRMContactUpsert) ClearFirstName() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *CRMContactUpsert) SetLastName(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateLastName() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *CRMContactUpsert) ClearLastName() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldLastName)
	return u
}

// SetCompany sets the "company" field.
func (u *CRMContactUpsert) SetCompany(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldCompany, v)
	return u
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateCompany() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldCompany)
	return u
}

// ClearCompany clears the value of the "company" field.
func (u *CRMContactUpsert) ClearCompany() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldCompany)
	return u
}

// SetTitle sets the "title" field.
func (u *CRMContactUpsert) SetTitle(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateTitle() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *CRMContactUpsert) ClearTitle() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldTitle)
	return u
}

// SetPhone sets the "phone" field.
func (u *CRMContactUpsert) SetPhone(v string) *CRMContactUpsert {
	u.Set(crmcontact.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdatePhone() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *CRMContactUpsert) ClearPhone() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldPhone)
	return u
}

// SetProperties sets the "properties" field.
func (u *CRMContactUpsert) SetProperties(v map[string]interface{}) *CRMContactUpsert {
	u.Set(crmcontact.FieldProperties, v)
	return u
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateProperties() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldProperties)
	return u
}

// ClearProperties clears the value of the "properties" field.
func (u *CRMContactUpsert) ClearProperties() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldProperties)
	return u
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (u *CRMContactUpsert) SetEnrichmentEncrypted(v []byte) *CRMContactUpsert {
	u.Set(crmcontact.FieldEnrichmentEncrypted, v)
	return u
}

// UpdateEnrichmentEncrypted sets the "enrichment_encrypted" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateEnrichmentEncrypted() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldEnrichmentEncrypted)
	return u
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (u *CRMContactUpsert) ClearEnrichmentEncrypted() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldEnrichmentEncrypted)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *CRMContactUpsert) SetNeedsReview(v bool) *CRMContactUpsert {
	u.Set(crmcontact.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateNeedsReview() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldNeedsReview)
	return u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *CRMContactUpsert) SetLastSyncedAt(v time.Time) *CRMContactUpsert {
	u.Set(crmcontact.FieldLastSyncedAt, v)
	return u
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateLastSyncedAt() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldLastSyncedAt)
	return u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *CRMContactUpsert) ClearLastSyncedAt() *CRMContactUpsert {
	u.SetNull(crmcontact.FieldLastSyncedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMContactUpsert) SetUpdatedAt(v time.Time) *CRMContactUpsert {
	u.Set(crmcontact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMContactUpsert) UpdateUpdatedAt() *CRMContactUpsert {
	u.SetExcluded(crmcontact.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmcontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMContactUpsertOne) UpdateNewValues() *CRMContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(crmcontact.FieldID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(crmcontact.FieldPlatform)
		}
		if _, exists := u.create.mutation.ExternalID(); exists {
			s.SetIgnore(crmcontact.FieldExternalID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(crmcontact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CRMContactUpsertOne) Ignore() *CRMContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMContactUpsertOne) DoNothing() *CRMContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMContactCreate.OnConflict
// documentation for more info.
func (u *CRMContactUpsertOne) Update(set func(*CRMContactUpsert)) *CRMContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *CRMContactUpsertOne) SetEmail(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateEmail() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CRMContactUpsertOne) ClearEmail() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearEmail()
	})
}

// SetFirstName sets the "first_name" field.
func (u *CRMContactUpsertOne) SetFirstName(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateFirstName() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *CRMContactUpsertOne) ClearFirstName() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *CRMContactUpsertOne) SetLastName(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateLastName() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *CRMContactUpsertOne) ClearLastName() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearLastName()
	})
}

// SetCompany sets the "company" field.
func (u *CRMContactUpsertOne) SetCompany(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateCompany() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *CRMContactUpsertOne) ClearCompany() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearCompany()
	})
}

// SetTitle sets the "title" field.
func (u *CRMContactUpsertOne) SetTitle(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateTitle() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *CRMContactUpsertOne) ClearTitle() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *CRMContactUpsertOne) SetPhone(v string) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdatePhone() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CRMContactUpsertOne) ClearPhone() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearPhone()
	})
}

// SetProperties sets the "properties" field.
func (u *CRMContactUpsertOne) SetProperties(v map[string]interface{}) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetProperties(v)
	})
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateProperties() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateProperties()
	})
}

// ClearProperties clears the value of the "properties" field.
func (u *CRMContactUpsertOne) ClearProperties() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearProperties()
	})
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (u *CRMContactUpsertOne) SetEnrichmentEncrypted(v []byte) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetEnrichmentEncrypted(v)
	})
}

// UpdateEnrichmentEncrypted sets the "enrichment_encrypted" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateEnrichmentEncrypted() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateEnrichmentEncrypted()
	})
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (u *CRMContactUpsertOne) ClearEnrichmentEncrypted() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearEnrichmentEncrypted()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CRMContactUpsertOne) SetNeedsReview(v bool) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateNeedsReview() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *CRMContactUpsertOne) SetLastSyncedAt(v time.Time) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateLastSyncedAt() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *CRMContactUpsertOne) ClearLastSyncedAt() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMContactUpsertOne) SetUpdatedAt(v time.Time) *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMContactUpsertOne) UpdateUpdatedAt() *CRMContactUpsertOne {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMContactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMContactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMContactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CRMContactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CRMContactUpsertOne.ID is not supported by MySQL driver. Use CRMContactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CRMContactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CRMContactCreateBulk is the builder for creating many CRMContact entities in bulk.
type CRMContactCreateBulk struct {
	config
	err      error
	builders []*CRMContactCreate
	conflict []sql.ConflictOption
}

// Save creates the CRMContact entities in the database.
func (_c *CRMContactCreateBulk) Save(ctx context.Context) ([]*CRMContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRMContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMContactMutation)
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
func (_c *CRMContactCreateBulk) SaveX(ctx context.Context) []*CRMContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRMContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRMContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMContact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMContactUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *CRMContactCreateBulk) OnConflict(opts ...sql.ConflictOption) *CRMContactUpsertBulk {
	_c.conflict = opts
	return &CRMContactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRMContactCreateBulk) OnConflictColumns(columns ...string) *CRMContactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRMContactUpsertBulk{
		create: _c,
	}
}

// CRMContactUpsertBulk is the builder for "upsert"-ing
// a bulk of CRMContact nodes.
type CRMContactUpsertBulk struct {
	create *CRMContactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crmcontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRMContactUpsertBulk) UpdateNewValues() *CRMContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(crmcontact.FieldID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(crmcontact.FieldPlatform)
			}
			if _, exists := b.mutation.ExternalID(); exists {
				s.SetIgnore(crmcontact.FieldExternalID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(crmcontact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMContact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CRMContactUpsertBulk) Ignore() *CRMContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMContactUpsertBulk) DoNothing() *CRMContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMContactCreateBulk.OnConflict
// documentation for more info.
func (u *CRMContactUpsertBulk) Update(set func(*CRMContactUpsert)) *CRMContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *CRMContactUpsertBulk) SetEmail(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateEmail() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *CRMContactUpsertBulk) ClearEmail() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearEmail()
	})
}

// SetFirstName sets the "first_name" field.
func (u *CRMContactUpsertBulk) SetFirstName(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateFirstName() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *CRMContactUpsertBulk) ClearFirstName() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *CRMContactUpsertBulk) SetLastName(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateLastName() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *CRMContactUpsertBulk) ClearLastName() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearLastName()
	})
}

// SetCompany sets the "company" field.
func (u *CRMContactUpsertBulk) SetCompany(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateCompany() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *CRMContactUpsertBulk) ClearCompany() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearCompany()
	})
}

// SetTitle sets the "title" field.
func (u *CRMContactUpsertBulk) SetTitle(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateTitle() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *CRMContactUpsertBulk) ClearTitle() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *CRMContactUpsertBulk) SetPhone(v string) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdatePhone() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CRMContactUpsertBulk) ClearPhone() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearPhone()
	})
}

// SetProperties sets the "properties" field.
func (u *CRMContactUpsertBulk) SetProperties(v map[string]interface{}) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetProperties(v)
	})
}

// UpdateProperties sets the "properties" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateProperties() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateProperties()
	})
}

// ClearProperties clears the value of the "properties" field.
func (u *CRMContactUpsertBulk) ClearProperties() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearProperties()
	})
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (u *CRMContactUpsertBulk) SetEnrichmentEncrypted(v []byte) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetEnrichmentEncrypted(v)
	})
}

// UpdateEnrichmentEncrypted sets the "enrichment_encrypted" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateEnrichmentEncrypted() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateEnrichmentEncrypted()
	})
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (u *CRMContactUpsertBulk) ClearEnrichmentEncrypted() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearEnrichmentEncrypted()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *CRMContactUpsertBulk) SetNeedsReview(v bool) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateNeedsReview() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *CRMContactUpsertBulk) SetLastSyncedAt(v time.Time) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateLastSyncedAt() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *CRMContactUpsertBulk) ClearLastSyncedAt() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMContactUpsertBulk) SetUpdatedAt(v time.Time) *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMContactUpsertBulk) UpdateUpdatedAt() *CRMContactUpsertBulk {
	return u.Update(func(s *CRMContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMContactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CRMContactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMContactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMContactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
