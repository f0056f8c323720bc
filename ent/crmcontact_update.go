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
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// CRMContactUpdate is the builder for updating CRMContact entities.
type CRMContactUpdate struct {
	config
	hooks     []Hook
	mutation  *CRMContactMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CRMContactUpdate builder.
func (_u *CRMContactUpdate) Where(ps ...predicate.CRMContact) *CRMContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *CRMContactUpdate) SetEmail(v string) *CRMContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableEmail(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CRMContactUpdate) ClearEmail() *CRMContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CRMContactUpdate) SetFirstName(v string) *CRMContactUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableFirstName(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CRMContactUpdate) ClearFirstName() *CRMContactUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CRMContactUpdate) SetLastName(v string) *CRMContactUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableLastName(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CRMContactUpdate) ClearLastName() *CRMContactUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CRMContactUpdate) SetCompany(v string) *CRMContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableCompany(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CRMContactUpdate) ClearCompany() *CRMContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CRMContactUpdate) SetTitle(v string) *CRMContactUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableTitle(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CRMContactUpdate) ClearTitle() *CRMContactUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CRMContactUpdate) SetPhone(v string) *CRMContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillablePhone(v *string) *CRMContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CRMContactUpdate) ClearPhone() *CRMContactUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *CRMContactUpdate) SetProperties(v map[string]interface{}) *CRMContactUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *CRMContactUpdate) ClearProperties() *CRMContactUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (_u *CRMContactUpdate) SetEnrichmentEncrypted(v []byte) *CRMContactUpdate {
	_u.mutation.SetEnrichmentEncrypted(v)
	return _u
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (_u *CRMContactUpdate) ClearEnrichmentEncrypted() *CRMContactUpdate {
	_u.mutation.ClearEnrichmentEncrypted()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CRMContactUpdate) SetNeedsReview(v bool) *CRMContactUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableNeedsReview(v *bool) *CRMContactUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *CRMContactUpdate) SetLastSyncedAt(v time.Time) *CRMContactUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *CRMContactUpdate) SetNillableLastSyncedAt(v *time.Time) *CRMContactUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *CRMContactUpdate) ClearLastSyncedAt() *CRMContactUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMContactUpdate) SetUpdatedAt(v time.Time) *CRMContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CRMContactMutation object of the builder.
func (_u *CRMContactUpdate) Mutation() *CRMContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRMContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRMContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMContactUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMContactUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(crmcontact.Table, crmcontact.Columns, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(crmcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(crmcontact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(crmcontact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(crmcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(crmcontact.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(crmcontact.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(crmcontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(crmcontact.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(crmcontact.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentEncrypted(); ok {
		_spec.SetField(crmcontact.FieldEnrichmentEncrypted, field.TypeBytes, value)
	}
	if _u.mutation.EnrichmentEncryptedCleared() {
		_spec.ClearField(crmcontact.FieldEnrichmentEncrypted, field.TypeBytes)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(crmcontact.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(crmcontact.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(crmcontact.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRMContactUpdateOne is the builder for updating a single CRMContact entity.
type CRMContactUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CRMContactMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetEmail sets the "email" field.
func (_u *CRMContactUpdateOne) SetEmail(v string) *CRMContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableEmail(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CRMContactUpdateOne) ClearEmail() *CRMContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CRMContactUpdateOne) SetFirstName(v string) *CRMContactUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableFirstName(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CRMContactUpdateOne) ClearFirstName() *CRMContactUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CRMContactUpdateOne) SetLastName(v string) *CRMContactUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableLastName(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CRMContactUpdateOne) ClearLastName() *CRMContactUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *CRMContactUpdateOne) SetCompany(v string) *CRMContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableCompany(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *CRMContactUpdateOne) ClearCompany() *CRMContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CRMContactUpdateOne) SetTitle(v string) *CRMContactUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableTitle(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CRMContactUpdateOne) ClearTitle() *CRMContactUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CRMContactUpdateOne) SetPhone(v string) *CRMContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillablePhone(v *string) *CRMContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CRMContactUpdateOne) ClearPhone() *CRMContactUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *CRMContactUpdateOne) SetProperties(v map[string]interface{}) *CRMContactUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *CRMContactUpdateOne) ClearProperties() *CRMContactUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (_u *CRMContactUpdateOne) SetEnrichmentEncrypted(v []byte) *CRMContactUpdateOne {
	_u.mutation.SetEnrichmentEncrypted(v)
	return _u
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (_u *CRMContactUpdateOne) ClearEnrichmentEncrypted() *CRMContactUpdateOne {
	_u.mutation.ClearEnrichmentEncrypted()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *CRMContactUpdateOne) SetNeedsReview(v bool) *CRMContactUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableNeedsReview(v *bool) *CRMContactUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *CRMContactUpdateOne) SetLastSyncedAt(v time.Time) *CRMContactUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *CRMContactUpdateOne) SetNillableLastSyncedAt(v *time.Time) *CRMContactUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *CRMContactUpdateOne) ClearLastSyncedAt() *CRMContactUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRMContactUpdateOne) SetUpdatedAt(v time.Time) *CRMContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CRMContactMutation object of the builder.
func (_u *CRMContactUpdateOne) Mutation() *CRMContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the CRMContactUpdate builder.
func (_u *CRMContactUpdateOne) Where(ps ...predicate.CRMContact) *CRMContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRMContactUpdateOne) Select(field string, fields ...string) *CRMContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRMContact entity.
func (_u *CRMContactUpdateOne) Save(ctx context.Context) (*CRMContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRMContactUpdateOne) SaveX(ctx context.Context) *CRMContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRMContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRMContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRMContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crmcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *CRMContactUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CRMContactUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *CRMContactUpdateOne) sqlSave(ctx context.Context) (_node *CRMContact, err error) {
	_spec := sqlgraph.NewUpdateSpec(crmcontact.Table, crmcontact.Columns, sqlgraph.NewFieldSpec(crmcontact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmcontact.FieldID)
		for _, f := range fields {
			if !crmcontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmcontact.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(crmcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(crmcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(crmcontact.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(crmcontact.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(crmcontact.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(crmcontact.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(crmcontact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(crmcontact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(crmcontact.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(crmcontact.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(crmcontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(crmcontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(crmcontact.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(crmcontact.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnrichmentEncrypted(); ok {
		_spec.SetField(crmcontact.FieldEnrichmentEncrypted, field.TypeBytes, value)
	}
	if _u.mutation.EnrichmentEncryptedCleared() {
		_spec.ClearField(crmcontact.FieldEnrichmentEncrypted, field.TypeBytes)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(crmcontact.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(crmcontact.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(crmcontact.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crmcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &CRMContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
