// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ScientiaCapital/sales-agent/ent/agentexecution"
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
	"github.com/ScientiaCapital/sales-agent/ent/checkpoint"
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/ent/lead"
	"github.com/ScientiaCapital/sales-agent/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescCostUsd is the schema descriptor for cost_usd field.
	agentexecutionDescCostUsd := agentexecutionFields[7].Descriptor()
	// agentexecution.DefaultCostUsd holds the default value on creation for the cost_usd field.
	agentexecution.DefaultCostUsd = agentexecutionDescCostUsd.Default.(float64)
	// agentexecutionDescCreatedAt is the schema descriptor for created_at field.
	agentexecutionDescCreatedAt := agentexecutionFields[9].Descriptor()
	// agentexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentexecution.DefaultCreatedAt = agentexecutionDescCreatedAt.Default.(func() time.Time)
	apicalllogFields := schema.ApiCallLog{}.Fields()
	_ = apicalllogFields
	// apicalllogDescPromptTokens is the schema descriptor for prompt_tokens field.
	apicalllogDescPromptTokens := apicalllogFields[5].Descriptor()
	// apicalllog.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	apicalllog.DefaultPromptTokens = apicalllogDescPromptTokens.Default.(int)
	// apicalllogDescCompletionTokens is the schema descriptor for completion_tokens field.
	apicalllogDescCompletionTokens := apicalllogFields[6].Descriptor()
	// apicalllog.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	apicalllog.DefaultCompletionTokens = apicalllogDescCompletionTokens.Default.(int)
	// apicalllogDescTotalTokens is the schema descriptor for total_tokens field.
	apicalllogDescTotalTokens := apicalllogFields[7].Descriptor()
	// apicalllog.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	apicalllog.DefaultTotalTokens = apicalllogDescTotalTokens.Default.(int)
	// apicalllogDescLatencyMs is the schema descriptor for latency_ms field.
	apicalllogDescLatencyMs := apicalllogFields[8].Descriptor()
	// apicalllog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apicalllog.DefaultLatencyMs = apicalllogDescLatencyMs.Default.(int)
	// apicalllogDescCostUsd is the schema descriptor for cost_usd field.
	apicalllogDescCostUsd := apicalllogFields[9].Descriptor()
	// apicalllog.DefaultCostUsd holds the default value on creation for the cost_usd field.
	apicalllog.DefaultCostUsd = apicalllogDescCostUsd.Default.(float64)
	// apicalllogDescCacheHit is the schema descriptor for cache_hit field.
	apicalllogDescCacheHit := apicalllogFields[13].Descriptor()
	// apicalllog.DefaultCacheHit holds the default value on creation for the cache_hit field.
	apicalllog.DefaultCacheHit = apicalllogDescCacheHit.Default.(bool)
	// apicalllogDescCreatedAt is the schema descriptor for created_at field.
	apicalllogDescCreatedAt := apicalllogFields[14].Descriptor()
	// apicalllog.DefaultCreatedAt holds the default value on creation for the created_at field.
	apicalllog.DefaultCreatedAt = apicalllogDescCreatedAt.Default.(func() time.Time)
	crmcontactFields := schema.CRMContact{}.Fields()
	_ = crmcontactFields
	// crmcontactDescNeedsReview is the schema descriptor for needs_review field.
	crmcontactDescNeedsReview := crmcontactFields[11].Descriptor()
	// crmcontact.DefaultNeedsReview holds the default value on creation for the needs_review field.
	crmcontact.DefaultNeedsReview = crmcontactDescNeedsReview.Default.(bool)
	// crmcontactDescCreatedAt is the schema descriptor for created_at field.
	crmcontactDescCreatedAt := crmcontactFields[13].Descriptor()
	// crmcontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	crmcontact.DefaultCreatedAt = crmcontactDescCreatedAt.Default.(func() time.Time)
	// crmcontactDescUpdatedAt is the schema descriptor for updated_at field.
	crmcontactDescUpdatedAt := crmcontactFields[14].Descriptor()
	// crmcontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crmcontact.DefaultUpdatedAt = crmcontactDescUpdatedAt.Default.(func() time.Time)
	// crmcontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crmcontact.UpdateDefaultUpdatedAt = crmcontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	crmcredentialFields := schema.CRMCredential{}.Fields()
	_ = crmcredentialFields
	// crmcredentialDescCreatedAt is the schema descriptor for created_at field.
	crmcredentialDescCreatedAt := crmcredentialFields[6].Descriptor()
	// crmcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	crmcredential.DefaultCreatedAt = crmcredentialDescCreatedAt.Default.(func() time.Time)
	// crmcredentialDescUpdatedAt is the schema descriptor for updated_at field.
	crmcredentialDescUpdatedAt := crmcredentialFields[7].Descriptor()
	// crmcredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crmcredential.DefaultUpdatedAt = crmcredentialDescUpdatedAt.Default.(func() time.Time)
	// crmcredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crmcredential.UpdateDefaultUpdatedAt = crmcredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	crmsynclogFields := schema.CRMSyncLog{}.Fields()
	_ = crmsynclogFields
	// crmsynclogDescProcessed is the schema descriptor for processed field.
	crmsynclogDescProcessed := crmsynclogFields[4].Descriptor()
	// crmsynclog.DefaultProcessed holds the default value on creation for the processed field.
	crmsynclog.DefaultProcessed = crmsynclogDescProcessed.Default.(int)
	// crmsynclogDescCreated is the schema descriptor for created field.
	crmsynclogDescCreated := crmsynclogFields[5].Descriptor()
	// crmsynclog.DefaultCreated holds the default value on creation for the created field.
	crmsynclog.DefaultCreated = crmsynclogDescCreated.Default.(int)
	// crmsynclogDescUpdated is the schema descriptor for updated field.
	crmsynclogDescUpdated := crmsynclogFields[6].Descriptor()
	// crmsynclog.DefaultUpdated holds the default value on creation for the updated field.
	crmsynclog.DefaultUpdated = crmsynclogDescUpdated.Default.(int)
	// crmsynclogDescFailed is the schema descriptor for failed field.
	crmsynclogDescFailed := crmsynclogFields[7].Descriptor()
	// crmsynclog.DefaultFailed holds the default value on creation for the failed field.
	crmsynclog.DefaultFailed = crmsynclogDescFailed.Default.(int)
	// crmsynclogDescStartedAt is the schema descriptor for started_at field.
	crmsynclogDescStartedAt := crmsynclogFields[9].Descriptor()
	// crmsynclog.DefaultStartedAt holds the default value on creation for the started_at field.
	crmsynclog.DefaultStartedAt = crmsynclogDescStartedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescSuspended is the schema descriptor for suspended field.
	checkpointDescSuspended := checkpointFields[5].Descriptor()
	// checkpoint.DefaultSuspended holds the default value on creation for the suspended field.
	checkpoint.DefaultSuspended = checkpointDescSuspended.Default.(bool)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[7].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescQualificationScore is the schema descriptor for qualification_score field.
	leadDescQualificationScore := leadFields[10].Descriptor()
	// lead.QualificationScoreValidator is a validator for the "qualification_score" field. It is called by the builders before save.
	lead.QualificationScoreValidator = leadDescQualificationScore.Validators[0].(func(int) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[16].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[17].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
}
