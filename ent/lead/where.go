// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanyName, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWebsite, v))
}

// CompanySize applies equality check predicate on the "company_size" field. It's identical to CompanySizeEQ.
func CompanySize(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanySize, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldIndustry, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldContactName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTitle, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// ProfileURL applies equality check predicate on the "profile_url" field. It's identical to ProfileURLEQ.
func ProfileURL(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldProfileURL, v))
}

// QualificationScore applies equality check predicate on the "qualification_score" field. It's identical to QualificationScoreEQ.
func QualificationScore(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationScore, v))
}

// QualificationRationale applies equality check predicate on the "qualification_rationale" field. It's identical to QualificationRationaleEQ.
func QualificationRationale(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationRationale, v))
}

// QualificationLatencyMs applies equality check predicate on the "qualification_latency_ms" field. It's identical to QualificationLatencyMsEQ.
func QualificationLatencyMs(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationLatencyMs, v))
}

// QualifiedAt applies equality check predicate on the "qualified_at" field. It's identical to QualifiedAtEQ.
func QualifiedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualifiedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompanyName, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldWebsite, v))
}

// CompanySizeEQ applies the EQ predicate on the "company_size" field.
func CompanySizeEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanySize, v))
}

// CompanySizeNEQ applies the NEQ predicate on the "company_size" field.
func CompanySizeNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompanySize, v))
}

// CompanySizeIn applies the In predicate on the "company_size" field.
func CompanySizeIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompanySize, vs...))
}

// CompanySizeNotIn applies the NotIn predicate on the "company_size" field.
func CompanySizeNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompanySize, vs...))
}

// CompanySizeGT applies the GT predicate on the "company_size" field.
func CompanySizeGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompanySize, v))
}

// CompanySizeGTE applies the GTE predicate on the "company_size" field.
func CompanySizeGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompanySize, v))
}

// CompanySizeLT applies the LT predicate on the "company_size" field.
func CompanySizeLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompanySize, v))
}

// CompanySizeLTE applies the LTE predicate on the "company_size" field.
func CompanySizeLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompanySize, v))
}

// CompanySizeContains applies the Contains predicate on the "company_size" field.
func CompanySizeContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompanySize, v))
}

// CompanySizeHasPrefix applies the HasPrefix predicate on the "company_size" field.
func CompanySizeHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompanySize, v))
}

// CompanySizeHasSuffix applies the HasSuffix predicate on the "company_size" field.
func CompanySizeHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompanySize, v))
}

// CompanySizeIsNil applies the IsNil predicate on the "company_size" field.
func CompanySizeIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompanySize))
}

// CompanySizeNotNil applies the NotNil predicate on the "company_size" field.
func CompanySizeNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompanySize))
}

// CompanySizeEqualFold applies the EqualFold predicate on the "company_size" field.
func CompanySizeEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompanySize, v))
}

// CompanySizeContainsFold applies the ContainsFold predicate on the "company_size" field.
func CompanySizeContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompanySize, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldIndustry, v))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameIsNil applies the IsNil predicate on the "contact_name" field.
func ContactNameIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldContactName))
}

// ContactNameNotNil applies the NotNil predicate on the "contact_name" field.
func ContactNameNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldContactName))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldContactName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldTitle, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// ProfileURLEQ applies the EQ predicate on the "profile_url" field.
func ProfileURLEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldProfileURL, v))
}

// ProfileURLNEQ applies the NEQ predicate on the "profile_url" field.
func ProfileURLNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldProfileURL, v))
}

// ProfileURLIn applies the In predicate on the "profile_url" field.
func ProfileURLIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldProfileURL, vs...))
}

// ProfileURLNotIn applies the NotIn predicate on the "profile_url" field.
func ProfileURLNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldProfileURL, vs...))
}

// ProfileURLGT applies the GT predicate on the "profile_url" field.
func ProfileURLGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldProfileURL, v))
}

// ProfileURLGTE applies the GTE predicate on the "profile_url" field.
func ProfileURLGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldProfileURL, v))
}

// ProfileURLLT applies the LT predicate on the "profile_url" field.
func ProfileURLLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldProfileURL, v))
}

// ProfileURLLTE applies the LTE predicate on the "profile_url" field.
func ProfileURLLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldProfileURL, v))
}

// ProfileURLContains applies the Contains predicate on the "profile_url" field.
func ProfileURLContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldProfileURL, v))
}

// ProfileURLHasPrefix applies the HasPrefix predicate on the "profile_url" field.
func ProfileURLHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldProfileURL, v))
}

// ProfileURLHasSuffix applies the HasSuffix predicate on the "profile_url" field.
func ProfileURLHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldProfileURL, v))
}

// ProfileURLIsNil applies the IsNil predicate on the "profile_url" field.
func ProfileURLIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldProfileURL))
}

// ProfileURLNotNil applies the NotNil predicate on the "profile_url" field.
func ProfileURLNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldProfileURL))
}

// ProfileURLEqualFold applies the EqualFold predicate on the "profile_url" field.
func ProfileURLEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldProfileURL, v))
}

// ProfileURLContainsFold applies the ContainsFold predicate on the "profile_url" field.
func ProfileURLContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldProfileURL, v))
}

// QualificationScoreEQ applies the EQ predicate on the "qualification_score" field.
func QualificationScoreEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationScore, v))
}

// QualificationScoreNEQ applies the NEQ predicate on the "qualification_score" field.
func QualificationScoreNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldQualificationScore, v))
}

// QualificationScoreIn applies the In predicate on the "qualification_score" field.
func QualificationScoreIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldQualificationScore, vs...))
}

// QualificationScoreNotIn applies the NotIn predicate on the "qualification_score" field.
func QualificationScoreNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldQualificationScore, vs...))
}

// QualificationScoreGT applies the GT predicate on the "qualification_score" field.
func QualificationScoreGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldQualificationScore, v))
}

// QualificationScoreGTE applies the GTE predicate on the "qualification_score" field.
func QualificationScoreGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldQualificationScore, v))
}

// QualificationScoreLT applies the LT predicate on the "qualification_score" field.
func QualificationScoreLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldQualificationScore, v))
}

// QualificationScoreLTE applies the LTE predicate on the "qualification_score" field.
func QualificationScoreLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldQualificationScore, v))
}

// QualificationScoreIsNil applies the IsNil predicate on the "qualification_score" field.
func QualificationScoreIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldQualificationScore))
}

// QualificationScoreNotNil applies the NotNil predicate on the "qualification_score" field.
func QualificationScoreNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldQualificationScore))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldTier, vs...))
}

// TierIsNil applies the IsNil predicate on the "tier" field.
func TierIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldTier))
}

// TierNotNil applies the NotNil predicate on the "tier" field.
func TierNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldTier))
}

// QualificationRationaleEQ applies the EQ predicate on the "qualification_rationale" field.
func QualificationRationaleEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationRationale, v))
}

// QualificationRationaleNEQ applies the NEQ predicate on the "qualification_rationale" field.
func QualificationRationaleNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldQualificationRationale, v))
}

// QualificationRationaleIn applies the In predicate on the "qualification_rationale" field.
func QualificationRationaleIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldQualificationRationale, vs...))
}

// QualificationRationaleNotIn applies the NotIn predicate on the "qualification_rationale" field.
func QualificationRationaleNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldQualificationRationale, vs...))
}

// QualificationRationaleGT applies the GT predicate on the "qualification_rationale" field.
func QualificationRationaleGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldQualificationRationale, v))
}

// QualificationRationaleGTE applies the GTE predicate on the "qualification_rationale" field.
func QualificationRationaleGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldQualificationRationale, v))
}

// QualificationRationaleLT applies the LT predicate on the "qualification_rationale" field.
func QualificationRationaleLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldQualificationRationale, v))
}

// QualificationRationaleLTE applies the LTE predicate on the "qualification_rationale" field.
func QualificationRationaleLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldQualificationRationale, v))
}

// QualificationRationaleContains applies the Contains predicate on the "qualification_rationale" field.
func QualificationRationaleContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldQualificationRationale, v))
}

// QualificationRationaleHasPrefix applies the HasPrefix predicate on the "qualification_rationale" field.
func QualificationRationaleHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldQualificationRationale, v))
}

// QualificationRationaleHasSuffix applies the HasSuffix predicate on the "qualification_rationale" field.
func QualificationRationaleHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldQualificationRationale, v))
}

// QualificationRationaleIsNil applies the IsNil predicate on the "qualification_rationale" field.
func QualificationRationaleIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldQualificationRationale))
}

// QualificationRationaleNotNil applies the NotNil predicate on the "qualification_rationale" field.
func QualificationRationaleNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldQualificationRationale))
}

// QualificationRationaleEqualFold applies the EqualFold predicate on the "qualification_rationale" field.
func QualificationRationaleEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldQualificationRationale, v))
}

// QualificationRationaleContainsFold applies the ContainsFold predicate on the "qualification_rationale" field.
func QualificationRationaleContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldQualificationRationale, v))
}

// QualificationLatencyMsEQ applies the EQ predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsNEQ applies the NEQ predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsIn applies the In predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldQualificationLatencyMs, vs...))
}

// QualificationLatencyMsNotIn applies the NotIn predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldQualificationLatencyMs, vs...))
}

// QualificationLatencyMsGT applies the GT predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsGTE applies the GTE predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsLT applies the LT predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsLTE applies the LTE predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldQualificationLatencyMs, v))
}

// QualificationLatencyMsIsNil applies the IsNil predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldQualificationLatencyMs))
}

// QualificationLatencyMsNotNil applies the NotNil predicate on the "qualification_latency_ms" field.
func QualificationLatencyMsNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldQualificationLatencyMs))
}

// QualifiedAtEQ applies the EQ predicate on the "qualified_at" field.
func QualifiedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldQualifiedAt, v))
}

// QualifiedAtNEQ applies the NEQ predicate on the "qualified_at" field.
func QualifiedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldQualifiedAt, v))
}

// QualifiedAtIn applies the In predicate on the "qualified_at" field.
func QualifiedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldQualifiedAt, vs...))
}

// QualifiedAtNotIn applies the NotIn predicate on the "qualified_at" field.
func QualifiedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldQualifiedAt, vs...))
}

// QualifiedAtGT applies the GT predicate on the "qualified_at" field.
func QualifiedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldQualifiedAt, v))
}

// QualifiedAtGTE applies the GTE predicate on the "qualified_at" field.
func QualifiedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldQualifiedAt, v))
}

// QualifiedAtLT applies the LT predicate on the "qualified_at" field.
func QualifiedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldQualifiedAt, v))
}

// QualifiedAtLTE applies the LTE predicate on the "qualified_at" field.
func QualifiedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldQualifiedAt, v))
}

// QualifiedAtIsNil applies the IsNil predicate on the "qualified_at" field.
func QualifiedAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldQualifiedAt))
}

// QualifiedAtNotNil applies the NotNil predicate on the "qualified_at" field.
func QualifiedAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldQualifiedAt))
}

// AdditionalDataIsNil applies the IsNil predicate on the "additional_data" field.
func AdditionalDataIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAdditionalData))
}

// AdditionalDataNotNil applies the NotNil predicate on the "additional_data" field.
func AdditionalDataNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAdditionalData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
