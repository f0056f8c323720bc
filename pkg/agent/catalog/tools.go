package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

var leadLookupSchema = []byte(`{
	"type": "object",
	"required": ["lead_id"],
	"properties": {
		"lead_id": {"type": "string", "minLength": 1}
	}
}`)

var leadNoteSchema = []byte(`{
	"type": "object",
	"required": ["lead_id", "note"],
	"properties": {
		"lead_id": {"type": "string", "minLength": 1},
		"note": {"type": "string", "minLength": 1}
	}
}`)

var contactLookupSchema = []byte(`{
	"type": "object",
	"required": ["platform", "external_id"],
	"properties": {
		"platform": {"type": "string", "enum": ["hubspot", "apollo", "salesloft"]},
		"external_id": {"type": "string", "minLength": 1}
	}
}`)

// newToolRegistry wires the repository-backed tools the graph agents use.
func newToolRegistry(deps Deps) *agent.ToolRegistry {
	return agent.NewToolRegistry(
		&agent.Tool{
			Name:        "lead_lookup",
			Description: "Fetch a lead record by ID, including qualification outcome and additional data.",
			InputSchema: leadLookupSchema,
			Run: func(ctx context.Context, _ *agent.RunContext, input map[string]interface{}) agent.ToolResult {
				leadID, _ := input["lead_id"].(string)
				lead, err := deps.Leads.GetLeadByID(ctx, leadID)
				if err != nil {
					if errors.Is(err, services.ErrNotFound) {
						return agent.ToolError(fmt.Sprintf("lead %s not found", leadID))
					}
					return agent.ToolError(err.Error())
				}
				payload := map[string]interface{}{
					"company_name":    lead.CompanyName,
					"industry":        lead.Industry,
					"company_size":    lead.CompanySize,
					"contact_name":    lead.ContactName,
					"contact_email":   lead.Email,
					"additional_data": lead.AdditionalData,
				}
				if lead.QualificationScore != nil {
					payload["qualification_score"] = *lead.QualificationScore
					payload["tier"] = string(lead.Tier)
				}
				return agent.ToolSuccess(payload)
			},
		},
		&agent.Tool{
			Name:        "lead_note",
			Description: "Append a note to a lead's additional data.",
			InputSchema: leadNoteSchema,
			Run: func(ctx context.Context, _ *agent.RunContext, input map[string]interface{}) agent.ToolResult {
				leadID, _ := input["lead_id"].(string)
				note, _ := input["note"].(string)
				if err := deps.Leads.MergeAdditionalData(ctx, leadID, map[string]interface{}{
					"last_agent_note": note,
				}); err != nil {
					return agent.ToolError(err.Error())
				}
				return agent.ToolSuccess(map[string]interface{}{"lead_id": leadID})
			},
		},
		&agent.Tool{
			Name:        "crm_contact_lookup",
			Description: "Fetch the local mirror of a CRM contact by platform and external ID.",
			InputSchema: contactLookupSchema,
			Run: func(ctx context.Context, _ *agent.RunContext, input map[string]interface{}) agent.ToolResult {
				platform, _ := input["platform"].(string)
				externalID, _ := input["external_id"].(string)
				contact, err := deps.Contacts.GetByExternalID(ctx, platform, externalID)
				if err != nil {
					if errors.Is(err, services.ErrNotFound) {
						return agent.ToolError(fmt.Sprintf("contact %s/%s not found", platform, externalID))
					}
					return agent.ToolError(err.Error())
				}
				return agent.ToolSuccess(map[string]interface{}{
					"email":          contact.Email,
					"first_name":     contact.FirstName,
					"last_name":      contact.LastName,
					"company":        contact.Company,
					"title":          contact.Title,
					"last_synced_at": contact.LastSyncedAt,
				})
			},
		},
	)
}
