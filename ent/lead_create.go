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
	"github.com/ScientiaCapital/sales-agent/ent/lead"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompanyName sets the "company_name" field.
func (_c *LeadCreate) SetCompanyName(v string) *LeadCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *LeadCreate) SetWebsite(v string) *LeadCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWebsite(v *string) *LeadCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetCompanySize sets the "company_size" field.
func (_c *LeadCreate) SetCompanySize(v string) *LeadCreate {
	_c.mutation.SetCompanySize(v)
	return _c
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompanySize(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompanySize(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *LeadCreate) SetIndustry(v string) *LeadCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *LeadCreate) SetNillableIndustry(v *string) *LeadCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *LeadCreate) SetContactName(v string) *LeadCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableContactName(v *string) *LeadCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *LeadCreate) SetTitle(v string) *LeadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *LeadCreate) SetNillableTitle(v *string) *LeadCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetProfileURL sets the "profile_url" field.
func (_c *LeadCreate) SetProfileURL(v string) *LeadCreate {
	_c.mutation.SetProfileURL(v)
	return _c
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_c *LeadCreate) SetNillableProfileURL(v *string) *LeadCreate {
	if v != nil {
		_c.SetProfileURL(*v)
	}
	return _c
}

// SetQualificationScore sets the "qualification_score" field.
func (_c *LeadCreate) SetQualificationScore(v int) *LeadCreate {
	_c.mutation.SetQualificationScore(v)
	return _c
}

// SetNillableQualificationScore sets the "qualification_score" field if the given value is not nil.
func (_c *LeadCreate) SetNillableQualificationScore(v *int) *LeadCreate {
	if v != nil {
		_c.SetQualificationScore(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *LeadCreate) SetTier(v lead.Tier) *LeadCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *LeadCreate) SetNillableTier(v *lead.Tier) *LeadCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (_c *LeadCreate) SetQualificationRationale(v string) *LeadCreate {
	_c.mutation.SetQualificationRationale(v)
	return _c
}

// SetNillableQualificationRationale sets the "qualification_rationale" field if the given value is not nil.
func (_c *LeadCreate) SetNillableQualificationRationale(v *string) *LeadCreate {
	if v != nil {
		_c.SetQualificationRationale(*v)
	}
	return _c
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (_c *LeadCreate) SetQualificationLatencyMs(v int) *LeadCreate {
	_c.mutation.SetQualificationLatencyMs(v)
	return _c
}

// SetNillableQualificationLatencyMs sets the "qualification_latency_ms" field if the given value is not nil.
func (_c *LeadCreate) SetNillableQualificationLatencyMs(v *int) *LeadCreate {
	if v != nil {
		_c.SetQualificationLatencyMs(*v)
	}
	return _c
}

// SetQualifiedAt sets the "qualified_at" field.
func (_c *LeadCreate) SetQualifiedAt(v time.Time) *LeadCreate {
	_c.mutation.SetQualifiedAt(v)
	return _c
}

// SetNillableQualifiedAt sets the "qualified_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableQualifiedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetQualifiedAt(*v)
	}
	return _c
}

// SetAdditionalData sets the "additional_data" field.
func (_c *LeadCreate) SetAdditionalData(v map[string]interface{}) *LeadCreate {
	_c.mutation.SetAdditionalData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeadCreate) SetID(v string) *LeadCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Lead.company_name"`)}
	}
	if v, ok := _c.mutation.QualificationScore(); ok {
		if err := lead.QualificationScoreValidator(v); err != nil {
			return &ValidationError{Name: "qualification_score", err: fmt.Errorf(`ent: validator failed for field "Lead.qualification_score": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := lead.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Lead.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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
			return nil, fmt.Errorf("unexpected Lead.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
		_node.CompanySize = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(lead.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ProfileURL(); ok {
		_spec.SetField(lead.FieldProfileURL, field.TypeString, value)
		_node.ProfileURL = value
	}
	if value, ok := _c.mutation.QualificationScore(); ok {
		_spec.SetField(lead.FieldQualificationScore, field.TypeInt, value)
		_node.QualificationScore = &value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(lead.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.QualificationRationale(); ok {
		_spec.SetField(lead.FieldQualificationRationale, field.TypeString, value)
		_node.QualificationRationale = value
	}
	if value, ok := _c.mutation.QualificationLatencyMs(); ok {
		_spec.SetField(lead.FieldQualificationLatencyMs, field.TypeInt, value)
		_node.QualificationLatencyMs = &value
	}
	if value, ok := _c.mutation.QualifiedAt(); ok {
		_spec.SetField(lead.FieldQualifiedAt, field.TypeTime, value)
		_node.QualifiedAt = &value
	}
	if value, ok := _c.mutation.AdditionalData(); ok {
		_spec.SetField(lead.FieldAdditionalData, field.TypeJSON, value)
		_node.AdditionalData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.Create().
//		SetCompanyName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreate) OnConflict(opts ...sql.ConflictOption) *LeadUpsertOne {
	_c.conflict = opts
	return &LeadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreate) OnConflictColumns(columns ...string) *LeadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertOne{
		create: _c,
	}
}

type (
	// LeadUpsertOne is the builder for "upsert"-ing
	//  one Lead node.
	LeadUpsertOne struct {
		create *LeadCreate
	}

	// LeadUpsert is the "OnConflict" setter.
	LeadUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsert) SetCompanyName(v string) *LeadUpsert {
	u.Set(lead.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompanyName() *LeadUpsert {
	u.SetExcluded(lead.FieldCompanyName)
	return u
}

// SetWebsite sets the "website" field.
func (u *LeadUpsert) SetWebsite(v string) *LeadUpsert {
	u.Set(lead.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsert) UpdateWebsite() *LeadUpsert {
	u.SetExcluded(lead.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsert) ClearWebsite() *LeadUpsert {
	u.SetNull(lead.FieldWebsite)
	return u
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsert) SetCompanySize(v string) *LeadUpsert {
	u.Set(lead.FieldCompanySize, v)
	return u
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompanySize() *LeadUpsert {
	u.SetExcluded(lead.FieldCompanySize)
	return u
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsert) ClearCompanySize() *LeadUpsert {
	u.SetNull(lead.FieldCompanySize)
	return u
}

// SetIndustry sets the "industry" field.
func (u *LeadUpsert) SetIndustry(v string) *LeadUpsert {
	u.Set(lead.FieldIndustry, v)
	return u
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *LeadUpsert) UpdateIndustry() *LeadUpsert {
	u.SetExcluded(lead.FieldIndustry)
	return u
}

// ClearIndustry clears the value of the "industry" field.
func (u *LeadUpsert) ClearIndustry() *LeadUpsert {
	u.SetNull(lead.FieldIndustry)
	return u
}

// SetContactName sets the "contact_name" field.
func (u *LeadUpsert) SetContactName(v string) *LeadUpsert {
	u.Set(lead.FieldContactName, v)
	return u
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateContactName() *LeadUpsert {
	u.SetExcluded(lead.FieldContactName)
	return u
}

// ClearContactName clears the value of the "contact_name" field.
func (u *LeadUpsert) ClearContactName() *LeadUpsert {
	u.SetNull(lead.FieldContactName)
	return u
}

// SetEmail sets the "email" field.
func (u *LeadUpsert) SetEmail(v string) *LeadUpsert {
	u.Set(lead.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsert) UpdateEmail() *LeadUpsert {
	u.SetExcluded(lead.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsert) ClearEmail() *LeadUpsert {
	u.SetNull(lead.FieldEmail)
	return u
}

// SetTitle sets the "title" field.
func (u *LeadUpsert) SetTitle(v string) *LeadUpsert {
	u.Set(lead.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LeadUpsert) UpdateTitle() *LeadUpsert {
	u.SetExcluded(lead.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *LeadUpsert) ClearTitle() *LeadUpsert {
	u.SetNull(lead.FieldTitle)
	return u
}

// SetPhone sets the "phone" field.
func (u *LeadUpsert) SetPhone(v string) *LeadUpsert {
	u.Set(lead.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsert) UpdatePhone() *LeadUpsert {
	u.SetExcluded(lead.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsert) ClearPhone() *LeadUpsert {
	u.SetNull(lead.FieldPhone)
	return u
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsert) SetProfileURL(v string) *LeadUpsert {
	u.Set(lead.FieldProfileURL, v)
	return u
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsert) UpdateProfileURL() *LeadUpsert {
	u.SetExcluded(lead.FieldProfileURL)
	return u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *LeadUpsert) ClearProfileURL() *LeadUpsert {
	u.SetNull(lead.FieldProfileURL)
	return u
}

// SetQualificationScore sets the "qualification_score" field.
func (u *LeadUpsert) SetQualificationScore(v int) *LeadUpsert {
	u.Set(lead.FieldQualificationScore, v)
	return u
}

// UpdateQualificationScore sets the "qualification_score" field to the value that was provided on create.
func (u *LeadUpsert) UpdateQualificationScore() *LeadUpsert {
	u.SetExcluded(lead.FieldQualificationScore)
	return u
}

// AddQualificationScore adds v to the "qualification_score" field.
func (u *LeadUpsert) AddQualificationScore(v int) *LeadUpsert {
	u.Add(lead.FieldQualificationScore, v)
	return u
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (u *LeadUpsert) ClearQualificationScore() *LeadUpsert {
	u.SetNull(lead.FieldQualificationScore)
	return u
}

// SetTier sets the "tier" field.
func (u *LeadUpsert) SetTier(v lead.Tier) *LeadUpsert {
	u.Set(lead.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *LeadUpsert) UpdateTier() *LeadUpsert {
	u.SetExcluded(lead.FieldTier)
	return u
}

// ClearTier clears the value of the "tier" field.
func (u *LeadUpsert) ClearTier() *LeadUpsert {
	u.SetNull(lead.FieldTier)
	return u
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (u *LeadUpsert) SetQualificationRationale(v string) *LeadUpsert {
	u.Set(lead.FieldQualificationRationale, v)
	return u
}

// UpdateQualificationRationale sets the "qualification_rationale" field to the value that was provided on create.
func (u *LeadUpsert) UpdateQualificationRationale() *LeadUpsert {
	u.SetExcluded(lead.FieldQualificationRationale)
	return u
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (u *LeadUpsert) ClearQualificationRationale() *LeadUpsert {
	u.SetNull(lead.FieldQualificationRationale)
	return u
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (u *LeadUpsert) SetQualificationLatencyMs(v int) *LeadUpsert {
	u.Set(lead.FieldQualificationLatencyMs, v)
	return u
}

// UpdateQualificationLatencyMs sets the "qualification_latency_ms" field to the value that was provided on create.
func (u *LeadUpsert) UpdateQualificationLatencyMs() *LeadUpsert {
	u.SetExcluded(lead.FieldQualificationLatencyMs)
	return u
}

// AddQualificationLatencyMs adds v to the "qualification_latency_ms" field.
func (u *LeadUpsert) AddQualificationLatencyMs(v int) *LeadUpsert {
	u.Add(lead.FieldQualificationLatencyMs, v)
	return u
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (u *LeadUpsert) ClearQualificationLatencyMs() *LeadUpsert {
	u.SetNull(lead.FieldQualificationLatencyMs)
	return u
}

// SetQualifiedAt sets the "qualified_at" field.
func (u *LeadUpsert) SetQualifiedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldQualifiedAt, v)
	return u
}

// UpdateQualifiedAt sets the "qualified_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateQualifiedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldQualifiedAt)
	return u
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (u *LeadUpsert) ClearQualifiedAt() *LeadUpsert {
	u.SetNull(lead.FieldQualifiedAt)
	return u
}

// SetAdditionalData sets the "additional_data" field.
func (u *LeadUpsert) SetAdditionalData(v map[string]interface{}) *LeadUpsert {
	u.Set(lead.FieldAdditionalData, v)
	return u
}

// UpdateAdditionalData sets the "additional_data" field to the value that was provided on create.
func (u *LeadUpsert) UpdateAdditionalData() *LeadUpsert {
	u.SetExcluded(lead.FieldAdditionalData)
	return u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (u *LeadUpsert) ClearAdditionalData() *LeadUpsert {
	u.SetNull(lead.FieldAdditionalData)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsert) SetUpdatedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateUpdatedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadUpsertOne) UpdateNewValues() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lead.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lead.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadUpsertOne) Ignore() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertOne) DoNothing() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreate.OnConflict
// documentation for more info.
func (u *LeadUpsertOne) Update(set func(*LeadUpsert)) *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsertOne) SetCompanyName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompanyName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanyName()
	})
}

// SetWebsite sets the "website" field.
func (u *LeadUpsertOne) SetWebsite(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateWebsite() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsertOne) ClearWebsite() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWebsite()
	})
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsertOne) SetCompanySize(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanySize(v)
	})
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompanySize() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanySize()
	})
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsertOne) ClearCompanySize() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanySize()
	})
}

// SetIndustry sets the "industry" field.
func (u *LeadUpsertOne) SetIndustry(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateIndustry() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *LeadUpsertOne) ClearIndustry() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearIndustry()
	})
}

// SetContactName sets the "contact_name" field.
func (u *LeadUpsertOne) SetContactName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateContactName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *LeadUpsertOne) ClearContactName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearContactName()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertOne) SetEmail(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertOne) ClearEmail() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetTitle sets the "title" field.
func (u *LeadUpsertOne) SetTitle(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateTitle() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *LeadUpsertOne) ClearTitle() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertOne) SetPhone(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdatePhone() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsertOne) ClearPhone() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPhone()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsertOne) SetProfileURL(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateProfileURL() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProfileURL()
	})
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *LeadUpsertOne) ClearProfileURL() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearProfileURL()
	})
}

// SetQualificationScore sets the "qualification_score" field.
func (u *LeadUpsertOne) SetQualificationScore(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationScore(v)
	})
}

// AddQualificationScore adds v to the "qualification_score" field.
func (u *LeadUpsertOne) AddQualificationScore(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddQualificationScore(v)
	})
}

// UpdateQualificationScore sets the "qualification_score" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateQualificationScore() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationScore()
	})
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (u *LeadUpsertOne) ClearQualificationScore() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationScore()
	})
}

// SetTier sets the "tier" field.
func (u *LeadUpsertOne) SetTier(v lead.Tier) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateTier() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateTier()
	})
}

// ClearTier clears the value of the "tier" field.
func (u *LeadUpsertOne) ClearTier() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearTier()
	})
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (u *LeadUpsertOne) SetQualificationRationale(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationRationale(v)
	})
}

// UpdateQualificationRationale sets the "qualification_rationale" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateQualificationRationale() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationRationale()
	})
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (u *LeadUpsertOne) ClearQualificationRationale() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationRationale()
	})
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (u *LeadUpsertOne) SetQualificationLatencyMs(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationLatencyMs(v)
	})
}

// AddQualificationLatencyMs adds v to the "qualification_latency_ms" field.
func (u *LeadUpsertOne) AddQualificationLatencyMs(v int) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.AddQualificationLatencyMs(v)
	})
}

// UpdateQualificationLatencyMs sets the "qualification_latency_ms" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateQualificationLatencyMs() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationLatencyMs()
	})
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (u *LeadUpsertOne) ClearQualificationLatencyMs() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationLatencyMs()
	})
}

// SetQualifiedAt sets the "qualified_at" field.
func (u *LeadUpsertOne) SetQualifiedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualifiedAt(v)
	})
}

// UpdateQualifiedAt sets the "qualified_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateQualifiedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualifiedAt()
	})
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (u *LeadUpsertOne) ClearQualifiedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualifiedAt()
	})
}

// SetAdditionalData sets the "additional_data" field.
func (u *LeadUpsertOne) SetAdditionalData(v map[string]interface{}) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetAdditionalData(v)
	})
}

// UpdateAdditionalData sets the "additional_data" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateAdditionalData() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAdditionalData()
	})
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (u *LeadUpsertOne) ClearAdditionalData() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearAdditionalData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertOne) SetUpdatedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateUpdatedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeadUpsertOne.ID is not supported by MySQL driver. Use LeadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
	conflict []sql.ConflictOption
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetCompanyName(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadUpsertBulk {
	_c.conflict = opts
	return &LeadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflictColumns(columns ...string) *LeadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertBulk{
		create: _c,
	}
}

// LeadUpsertBulk is the builder for "upsert"-ing
// a bulk of Lead nodes.
type LeadUpsertBulk struct {
	create *LeadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadUpsertBulk) UpdateNewValues() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lead.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lead.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadUpsertBulk) Ignore() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertBulk) DoNothing() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreateBulk.OnConflict
// documentation for more info.
func (u *LeadUpsertBulk) Update(set func(*LeadUpsert)) *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *LeadUpsertBulk) SetCompanyName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompanyName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanyName()
	})
}

// SetWebsite sets the "website" field.
func (u *LeadUpsertBulk) SetWebsite(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateWebsite() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *LeadUpsertBulk) ClearWebsite() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearWebsite()
	})
}

// SetCompanySize sets the "company_size" field.
func (u *LeadUpsertBulk) SetCompanySize(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompanySize(v)
	})
}

// UpdateCompanySize sets the "company_size" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompanySize() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompanySize()
	})
}

// ClearCompanySize clears the value of the "company_size" field.
func (u *LeadUpsertBulk) ClearCompanySize() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompanySize()
	})
}

// SetIndustry sets the "industry" field.
func (u *LeadUpsertBulk) SetIndustry(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateIndustry() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *LeadUpsertBulk) ClearIndustry() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearIndustry()
	})
}

// SetContactName sets the "contact_name" field.
func (u *LeadUpsertBulk) SetContactName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateContactName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateContactName()
	})
}

// ClearContactName clears the value of the "contact_name" field.
func (u *LeadUpsertBulk) ClearContactName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearContactName()
	})
}

// SetEmail sets the "email" field.
func (u *LeadUpsertBulk) SetEmail(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *LeadUpsertBulk) ClearEmail() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearEmail()
	})
}

// SetTitle sets the "title" field.
func (u *LeadUpsertBulk) SetTitle(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateTitle() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *LeadUpsertBulk) ClearTitle() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *LeadUpsertBulk) SetPhone(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdatePhone() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *LeadUpsertBulk) ClearPhone() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearPhone()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsertBulk) SetProfileURL(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateProfileURL() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProfileURL()
	})
}

// ClearProfileURL clears the value of the "profile_url" field.
func (u *LeadUpsertBulk) ClearProfileURL() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearProfileURL()
	})
}

// SetQualificationScore sets the "qualification_score" field.
func (u *LeadUpsertBulk) SetQualificationScore(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationScore(v)
	})
}

// AddQualificationScore adds v to the "qualification_score" field.
func (u *LeadUpsertBulk) AddQualificationScore(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddQualificationScore(v)
	})
}

// UpdateQualificationScore sets the "qualification_score" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateQualificationScore() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationScore()
	})
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (u *LeadUpsertBulk) ClearQualificationScore() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationScore()
	})
}

// SetTier sets the "tier" field.
func (u *LeadUpsertBulk) SetTier(v lead.Tier) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateTier() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateTier()
	})
}

// ClearTier clears the value of the "tier" field.
func (u *LeadUpsertBulk) ClearTier() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearTier()
	})
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (u *LeadUpsertBulk) SetQualificationRationale(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationRationale(v)
	})
}

// UpdateQualificationRationale sets the "qualification_rationale" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateQualificationRationale() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationRationale()
	})
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (u *LeadUpsertBulk) ClearQualificationRationale() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationRationale()
	})
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (u *LeadUpsertBulk) SetQualificationLatencyMs(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualificationLatencyMs(v)
	})
}

// AddQualificationLatencyMs adds v to the "qualification_latency_ms" field.
func (u *LeadUpsertBulk) AddQualificationLatencyMs(v int) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.AddQualificationLatencyMs(v)
	})
}

// UpdateQualificationLatencyMs sets the "qualification_latency_ms" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateQualificationLatencyMs() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualificationLatencyMs()
	})
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (u *LeadUpsertBulk) ClearQualificationLatencyMs() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualificationLatencyMs()
	})
}

// SetQualifiedAt sets the "qualified_at" field.
func (u *LeadUpsertBulk) SetQualifiedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetQualifiedAt(v)
	})
}

// UpdateQualifiedAt sets the "qualified_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateQualifiedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateQualifiedAt()
	})
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (u *LeadUpsertBulk) ClearQualifiedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearQualifiedAt()
	})
}

// SetAdditionalData sets the "additional_data" field.
func (u *LeadUpsertBulk) SetAdditionalData(v map[string]interface{}) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetAdditionalData(v)
	})
}

// UpdateAdditionalData sets the "additional_data" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateAdditionalData() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateAdditionalData()
	})
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (u *LeadUpsertBulk) ClearAdditionalData() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearAdditionalData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeadUpsertBulk) SetUpdatedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateUpdatedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
