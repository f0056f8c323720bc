package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on lead qualification
// rationales and company names.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for company_name full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_leads_company_name_gin
		ON leads USING gin(to_tsvector('english', company_name))`)
	if err != nil {
		return fmt.Errorf("failed to create company_name GIN index: %w", err)
	}

	// GIN index for qualification_rationale full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_leads_qualification_rationale_gin
		ON leads USING gin(to_tsvector('english', COALESCE(qualification_rationale, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create qualification_rationale GIN index: %w", err)
	}

	return nil
}
