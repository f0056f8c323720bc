// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failed"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_agent_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1], AgentExecutionsColumns[9]},
			},
			{
				Name:    "agentexecution_status",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[3]},
			},
			{
				Name:    "agentexecution_lead_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[2]},
			},
		},
	}
	// APICallLogsColumns holds the columns for the "api_call_logs" table.
	APICallLogsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "operation", Type: field.TypeEnum, Enums: []string{"qualification", "enrichment", "growth", "marketing", "bdr", "conversation", "embedding", "other"}},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APICallLogsTable holds the schema information for the "api_call_logs" table.
	APICallLogsTable = &schema.Table{
		Name:       "api_call_logs",
		Columns:    APICallLogsColumns,
		PrimaryKey: []*schema.Column{APICallLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apicalllog_provider_created_at",
				Unique:  false,
				Columns: []*schema.Column{APICallLogsColumns[1], APICallLogsColumns[14]},
			},
			{
				Name:    "apicalllog_created_at",
				Unique:  false,
				Columns: []*schema.Column{APICallLogsColumns[14]},
			},
			{
				Name:    "apicalllog_operation_created_at",
				Unique:  false,
				Columns: []*schema.Column{APICallLogsColumns[4], APICallLogsColumns[14]},
			},
		},
	}
	// CrmContactsColumns holds the columns for the "crm_contacts" table.
	CrmContactsColumns = []*schema.Column{
		{Name: "contact_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "enrichment_encrypted", Type: field.TypeBytes, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CrmContactsTable holds the schema information for the "crm_contacts" table.
	CrmContactsTable = &schema.Table{
		Name:       "crm_contacts",
		Columns:    CrmContactsColumns,
		PrimaryKey: []*schema.Column{CrmContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crmcontact_platform_external_id",
				Unique:  true,
				Columns: []*schema.Column{CrmContactsColumns[1], CrmContactsColumns[2]},
			},
			{
				Name:    "crmcontact_email",
				Unique:  false,
				Columns: []*schema.Column{CrmContactsColumns[3]},
			},
			{
				Name:    "crmcontact_last_synced_at",
				Unique:  false,
				Columns: []*schema.Column{CrmContactsColumns[12]},
			},
		},
	}
	// CrmCredentialsColumns holds the columns for the "crm_credentials" table.
	CrmCredentialsColumns = []*schema.Column{
		{Name: "credential_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "access_token_encrypted", Type: field.TypeBytes},
		{Name: "refresh_token_encrypted", Type: field.TypeBytes, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CrmCredentialsTable holds the schema information for the "crm_credentials" table.
	CrmCredentialsTable = &schema.Table{
		Name:       "crm_credentials",
		Columns:    CrmCredentialsColumns,
		PrimaryKey: []*schema.Column{CrmCredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crmcredential_tenant_id_platform",
				Unique:  true,
				Columns: []*schema.Column{CrmCredentialsColumns[1], CrmCredentialsColumns[2]},
			},
		},
	}
	// CrmSyncLogsColumns holds the columns for the "crm_sync_logs" table.
	CrmSyncLogsColumns = []*schema.Column{
		{Name: "sync_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"import", "export", "bidirectional"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "rate_limited"}, Default: "running"},
		{Name: "processed", Type: field.TypeInt, Default: 0},
		{Name: "created", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// CrmSyncLogsTable holds the schema information for the "crm_sync_logs" table.
	CrmSyncLogsTable = &schema.Table{
		Name:       "crm_sync_logs",
		Columns:    CrmSyncLogsColumns,
		PrimaryKey: []*schema.Column{CrmSyncLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crmsynclog_platform_started_at",
				Unique:  false,
				Columns: []*schema.Column{CrmSyncLogsColumns[1], CrmSyncLogsColumns[9]},
			},
			{
				Name:    "crmsynclog_status",
				Unique:  false,
				Columns: []*schema.Column{CrmSyncLogsColumns[3]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "step", Type: field.TypeInt},
		{Name: "node", Type: field.TypeString},
		{Name: "state", Type: field.TypeBytes},
		{Name: "suspended", Type: field.TypeBool, Default: false},
		{Name: "suspend_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_agent_executions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[7]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_execution_id_step",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[7], CheckpointsColumns[1]},
			},
			{
				Name:    "checkpoint_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[6]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "lead_id", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "company_size", Type: field.TypeString, Nullable: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "profile_url", Type: field.TypeString, Nullable: true},
		{Name: "qualification_score", Type: field.TypeInt, Nullable: true},
		{Name: "tier", Type: field.TypeEnum, Nullable: true, Enums: []string{"hot", "warm", "cold", "unqualified"}},
		{Name: "qualification_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "qualification_latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "qualified_at", Type: field.TypeTime, Nullable: true},
		{Name: "additional_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_tier",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11]},
			},
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		APICallLogsTable,
		CrmContactsTable,
		CrmCredentialsTable,
		CrmSyncLogsTable,
		CheckpointsTable,
		LeadsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
}
