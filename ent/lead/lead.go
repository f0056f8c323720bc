// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lead_id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldCompanySize holds the string denoting the company_size field in the database.
	FieldCompanySize = "company_size"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldContactName holds the string denoting the contact_name field in the database.
	FieldContactName = "contact_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldProfileURL holds the string denoting the profile_url field in the database.
	FieldProfileURL = "profile_url"
	// FieldQualificationScore holds the string denoting the qualification_score field in the database.
	FieldQualificationScore = "qualification_score"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldQualificationRationale holds the string denoting the qualification_rationale field in the database.
	FieldQualificationRationale = "qualification_rationale"
	// FieldQualificationLatencyMs holds the string denoting the qualification_latency_ms field in the database.
	FieldQualificationLatencyMs = "qualification_latency_ms"
	// FieldQualifiedAt holds the string denoting the qualified_at field in the database.
	FieldQualifiedAt = "qualified_at"
	// FieldAdditionalData holds the string denoting the additional_data field in the database.
	FieldAdditionalData = "additional_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lead in the database.
	Table = "leads"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldWebsite,
	FieldCompanySize,
	FieldIndustry,
	FieldContactName,
	FieldEmail,
	FieldTitle,
	FieldPhone,
	FieldProfileURL,
	FieldQualificationScore,
	FieldTier,
	FieldQualificationRationale,
	FieldQualificationLatencyMs,
	FieldQualifiedAt,
	FieldAdditionalData,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QualificationScoreValidator is a validator for the "qualification_score" field. It is called by the builders before save.
	QualificationScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierHot         Tier = "hot"
	TierWarm        Tier = "warm"
	TierCold        Tier = "cold"
	TierUnqualified Tier = "unqualified"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierHot, TierWarm, TierCold, TierUnqualified:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByCompanySize orders the results by the company_size field.
func ByCompanySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanySize, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByContactName orders the results by the contact_name field.
func ByContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByProfileURL orders the results by the profile_url field.
func ByProfileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileURL, opts...).ToFunc()
}

// ByQualificationScore orders the results by the qualification_score field.
func ByQualificationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualificationScore, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByQualificationRationale orders the results by the qualification_rationale field.
func ByQualificationRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualificationRationale, opts...).ToFunc()
}

// ByQualificationLatencyMs orders the results by the qualification_latency_ms field.
func ByQualificationLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualificationLatencyMs, opts...).ToFunc()
}

// ByQualifiedAt orders the results by the qualified_at field.
func ByQualifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualifiedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
