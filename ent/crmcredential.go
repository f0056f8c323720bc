// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
)

// CRMCredential is the model entity for the CRMCredential schema.
type CRMCredential struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// AccessTokenEncrypted holds the value of the "access_token_encrypted" field.
	AccessTokenEncrypted []byte `json:"access_token_encrypted,omitempty"`
	// RefreshTokenEncrypted holds the value of the "refresh_token_encrypted" field.
	RefreshTokenEncrypted []byte `json:"refresh_token_encrypted,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CRMCredential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crmcredential.FieldAccessTokenEncrypted, crmcredential.FieldRefreshTokenEncrypted:
			values[i] = new([]byte)
		case crmcredential.FieldID, crmcredential.FieldTenantID, crmcredential.FieldPlatform:
			values[i] = new(sql.NullString)
		case crmcredential.FieldExpiresAt, crmcredential.FieldCreatedAt, crmcredential.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CRMCredential fields.
func (_m *CRMCredential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crmcredential.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case crmcredential.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case crmcredential.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case crmcredential.FieldAccessTokenEncrypted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field access_token_encrypted", values[i])
			} else if value != nil {
				_m.AccessTokenEncrypted = *value
			}
		case crmcredential.FieldRefreshTokenEncrypted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token_encrypted", values[i])
			} else if value != nil {
				_m.RefreshTokenEncrypted = *value
			}
		case crmcredential.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case crmcredential.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case crmcredential.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CRMCredential.
// This includes values selected through modifiers, order, etc.
func (_m *CRMCredential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CRMCredential.
// Note that you need to call CRMCredential.Unwrap() before calling this method if this CRMCredential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CRMCredential) Update() *CRMCredentialUpdateOne {
	return NewCRMCredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CRMCredential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CRMCredential) Unwrap() *CRMCredential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CRMCredential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CRMCredential) String() string {
	var builder strings.Builder
	builder.WriteString("CRMCredential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("access_token_encrypted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessTokenEncrypted))
	builder.WriteString(", ")
	builder.WriteString("refresh_token_encrypted=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefreshTokenEncrypted))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CRMCredentials is a parsable slice of CRMCredential.
type CRMCredentials []*CRMCredential
