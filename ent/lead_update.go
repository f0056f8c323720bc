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
	"github.com/ScientiaCapital/sales-agent/ent/lead"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks     []Hook
	mutation  *LeadMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdate) SetCompanyName(v string) *LeadUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanyName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *LeadUpdate) SetWebsite(v string) *LeadUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWebsite(v *string) *LeadUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *LeadUpdate) ClearWebsite() *LeadUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdate) SetCompanySize(v string) *LeadUpdate {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanySize(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// ClearCompanySize clears the value of the "company_size" field.
func (_u *LeadUpdate) ClearCompanySize() *LeadUpdate {
	_u.mutation.ClearCompanySize()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *LeadUpdate) SetIndustry(v string) *LeadUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableIndustry(v *string) *LeadUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *LeadUpdate) ClearIndustry() *LeadUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *LeadUpdate) SetContactName(v string) *LeadUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableContactName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *LeadUpdate) ClearContactName() *LeadUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdate) SetTitle(v string) *LeadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTitle(v *string) *LeadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdate) ClearTitle() *LeadUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *LeadUpdate) SetProfileURL(v string) *LeadUpdate {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableProfileURL(v *string) *LeadUpdate {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *LeadUpdate) ClearProfileURL() *LeadUpdate {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetQualificationScore sets the "qualification_score" field.
func (_u *LeadUpdate) SetQualificationScore(v int) *LeadUpdate {
	_u.mutation.ResetQualificationScore()
	_u.mutation.SetQualificationScore(v)
	return _u
}

// SetNillableQualificationScore sets the "qualification_score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableQualificationScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetQualificationScore(*v)
	}
	return _u
}

// AddQualificationScore adds value to the "qualification_score" field.
func (_u *LeadUpdate) AddQualificationScore(v int) *LeadUpdate {
	_u.mutation.AddQualificationScore(v)
	return _u
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (_u *LeadUpdate) ClearQualificationScore() *LeadUpdate {
	_u.mutation.ClearQualificationScore()
	return _u
}

// SetTier sets the "tier" field.
func (_u *LeadUpdate) SetTier(v lead.Tier) *LeadUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTier(v *lead.Tier) *LeadUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *LeadUpdate) ClearTier() *LeadUpdate {
	_u.mutation.ClearTier()
	return _u
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (_u *LeadUpdate) SetQualificationRationale(v string) *LeadUpdate {
	_u.mutation.SetQualificationRationale(v)
	return _u
}

// SetNillableQualificationRationale sets the "qualification_rationale" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableQualificationRationale(v *string) *LeadUpdate {
	if v != nil {
		_u.SetQualificationRationale(*v)
	}
	return _u
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (_u *LeadUpdate) ClearQualificationRationale() *LeadUpdate {
	_u.mutation.ClearQualificationRationale()
	return _u
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (_u *LeadUpdate) SetQualificationLatencyMs(v int) *LeadUpdate {
	_u.mutation.ResetQualificationLatencyMs()
	_u.mutation.SetQualificationLatencyMs(v)
	return _u
}

// SetNillableQualificationLatencyMs sets the "qualification_latency_ms" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableQualificationLatencyMs(v *int) *LeadUpdate {
	if v != nil {
		_u.SetQualificationLatencyMs(*v)
	}
	return _u
}

// AddQualificationLatencyMs adds value to the "qualification_latency_ms" field.
func (_u *LeadUpdate) AddQualificationLatencyMs(v int) *LeadUpdate {
	_u.mutation.AddQualificationLatencyMs(v)
	return _u
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (_u *LeadUpdate) ClearQualificationLatencyMs() *LeadUpdate {
	_u.mutation.ClearQualificationLatencyMs()
	return _u
}

// SetQualifiedAt sets the "qualified_at" field.
func (_u *LeadUpdate) SetQualifiedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetQualifiedAt(v)
	return _u
}

// SetNillableQualifiedAt sets the "qualified_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableQualifiedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetQualifiedAt(*v)
	}
	return _u
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (_u *LeadUpdate) ClearQualifiedAt() *LeadUpdate {
	_u.mutation.ClearQualifiedAt()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *LeadUpdate) SetAdditionalData(v map[string]interface{}) *LeadUpdate {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *LeadUpdate) ClearAdditionalData() *LeadUpdate {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.QualificationScore(); ok {
		if err := lead.QualificationScoreValidator(v); err != nil {
			return &ValidationError{Name: "qualification_score", err: fmt.Errorf(`ent: validator failed for field "Lead.qualification_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := lead.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Lead.tier": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *LeadUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *LeadUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(lead.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
	}
	if _u.mutation.CompanySizeCleared() {
		_spec.ClearField(lead.FieldCompanySize, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(lead.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(lead.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(lead.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(lead.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(lead.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationScore(); ok {
		_spec.SetField(lead.FieldQualificationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualificationScore(); ok {
		_spec.AddField(lead.FieldQualificationScore, field.TypeInt, value)
	}
	if _u.mutation.QualificationScoreCleared() {
		_spec.ClearField(lead.FieldQualificationScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(lead.FieldTier, field.TypeEnum, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(lead.FieldTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.QualificationRationale(); ok {
		_spec.SetField(lead.FieldQualificationRationale, field.TypeString, value)
	}
	if _u.mutation.QualificationRationaleCleared() {
		_spec.ClearField(lead.FieldQualificationRationale, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationLatencyMs(); ok {
		_spec.SetField(lead.FieldQualificationLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualificationLatencyMs(); ok {
		_spec.AddField(lead.FieldQualificationLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.QualificationLatencyMsCleared() {
		_spec.ClearField(lead.FieldQualificationLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.QualifiedAt(); ok {
		_spec.SetField(lead.FieldQualifiedAt, field.TypeTime, value)
	}
	if _u.mutation.QualifiedAtCleared() {
		_spec.ClearField(lead.FieldQualifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(lead.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(lead.FieldAdditionalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *LeadMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCompanyName sets the "company_name" field.
func (_u *LeadUpdateOne) SetCompanyName(v string) *LeadUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanyName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *LeadUpdateOne) SetWebsite(v string) *LeadUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWebsite(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *LeadUpdateOne) ClearWebsite() *LeadUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdateOne) SetCompanySize(v string) *LeadUpdateOne {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanySize(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// ClearCompanySize clears the value of the "company_size" field.
func (_u *LeadUpdateOne) ClearCompanySize() *LeadUpdateOne {
	_u.mutation.ClearCompanySize()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *LeadUpdateOne) SetIndustry(v string) *LeadUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableIndustry(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *LeadUpdateOne) ClearIndustry() *LeadUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *LeadUpdateOne) SetContactName(v string) *LeadUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableContactName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *LeadUpdateOne) ClearContactName() *LeadUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdateOne) SetTitle(v string) *LeadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTitle(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdateOne) ClearTitle() *LeadUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *LeadUpdateOne) SetProfileURL(v string) *LeadUpdateOne {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableProfileURL(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *LeadUpdateOne) ClearProfileURL() *LeadUpdateOne {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetQualificationScore sets the "qualification_score" field.
func (_u *LeadUpdateOne) SetQualificationScore(v int) *LeadUpdateOne {
	_u.mutation.ResetQualificationScore()
	_u.mutation.SetQualificationScore(v)
	return _u
}

// SetNillableQualificationScore sets the "qualification_score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableQualificationScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetQualificationScore(*v)
	}
	return _u
}

// AddQualificationScore adds value to the "qualification_score" field.
func (_u *LeadUpdateOne) AddQualificationScore(v int) *LeadUpdateOne {
	_u.mutation.AddQualificationScore(v)
	return _u
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (_u *LeadUpdateOne) ClearQualificationScore() *LeadUpdateOne {
	_u.mutation.ClearQualificationScore()
	return _u
}

// SetTier sets the "tier" field.
func (_u *LeadUpdateOne) SetTier(v lead.Tier) *LeadUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTier(v *lead.Tier) *LeadUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *LeadUpdateOne) ClearTier() *LeadUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (_u *LeadUpdateOne) SetQualificationRationale(v string) *LeadUpdateOne {
	_u.mutation.SetQualificationRationale(v)
	return _u
}

// SetNillableQualificationRationale sets the "qualification_rationale" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableQualificationRationale(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetQualificationRationale(*v)
	}
	return _u
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (_u *LeadUpdateOne) ClearQualificationRationale() *LeadUpdateOne {
	_u.mutation.ClearQualificationRationale()
	return _u
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (_u *LeadUpdateOne) SetQualificationLatencyMs(v int) *LeadUpdateOne {
	_u.mutation.ResetQualificationLatencyMs()
	_u.mutation.SetQualificationLatencyMs(v)
	return _u
}

// SetNillableQualificationLatencyMs sets the "qualification_latency_ms" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableQualificationLatencyMs(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetQualificationLatencyMs(*v)
	}
	return _u
}

// AddQualificationLatencyMs adds value to the "qualification_latency_ms" field.
func (_u *LeadUpdateOne) AddQualificationLatencyMs(v int) *LeadUpdateOne {
	_u.mutation.AddQualificationLatencyMs(v)
	return _u
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (_u *LeadUpdateOne) ClearQualificationLatencyMs() *LeadUpdateOne {
	_u.mutation.ClearQualificationLatencyMs()
	return _u
}

// SetQualifiedAt sets the "qualified_at" field.
func (_u *LeadUpdateOne) SetQualifiedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetQualifiedAt(v)
	return _u
}

// SetNillableQualifiedAt sets the "qualified_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableQualifiedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetQualifiedAt(*v)
	}
	return _u
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (_u *LeadUpdateOne) ClearQualifiedAt() *LeadUpdateOne {
	_u.mutation.ClearQualifiedAt()
	return _u
}

// SetAdditionalData sets the "additional_data" field.
func (_u *LeadUpdateOne) SetAdditionalData(v map[string]interface{}) *LeadUpdateOne {
	_u.mutation.SetAdditionalData(v)
	return _u
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (_u *LeadUpdateOne) ClearAdditionalData() *LeadUpdateOne {
	_u.mutation.ClearAdditionalData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.QualificationScore(); ok {
		if err := lead.QualificationScoreValidator(v); err != nil {
			return &ValidationError{Name: "qualification_score", err: fmt.Errorf(`ent: validator failed for field "Lead.qualification_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := lead.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Lead.tier": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *LeadUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *LeadUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(lead.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(lead.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
	}
	if _u.mutation.CompanySizeCleared() {
		_spec.ClearField(lead.FieldCompanySize, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(lead.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(lead.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(lead.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(lead.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(lead.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationScore(); ok {
		_spec.SetField(lead.FieldQualificationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualificationScore(); ok {
		_spec.AddField(lead.FieldQualificationScore, field.TypeInt, value)
	}
	if _u.mutation.QualificationScoreCleared() {
		_spec.ClearField(lead.FieldQualificationScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(lead.FieldTier, field.TypeEnum, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(lead.FieldTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.QualificationRationale(); ok {
		_spec.SetField(lead.FieldQualificationRationale, field.TypeString, value)
	}
	if _u.mutation.QualificationRationaleCleared() {
		_spec.ClearField(lead.FieldQualificationRationale, field.TypeString)
	}
	if value, ok := _u.mutation.QualificationLatencyMs(); ok {
		_spec.SetField(lead.FieldQualificationLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualificationLatencyMs(); ok {
		_spec.AddField(lead.FieldQualificationLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.QualificationLatencyMsCleared() {
		_spec.ClearField(lead.FieldQualificationLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.QualifiedAt(); ok {
		_spec.SetField(lead.FieldQualifiedAt, field.TypeTime, value)
	}
	if _u.mutation.QualifiedAtCleared() {
		_spec.ClearField(lead.FieldQualifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AdditionalData(); ok {
		_spec.SetField(lead.FieldAdditionalData, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalDataCleared() {
		_spec.ClearField(lead.FieldAdditionalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
