package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/sales-agent/pkg/models"
	testdb "github.com/ScientiaCapital/sales-agent/test/database"
)

func TestLeadService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	created, err := service.CreateLead(ctx, models.CreateLeadRequest{
		CompanyName: "Acme Industrial Robotics",
		Website:     "https://acme.example.com",
		Industry:    "manufacturing",
		ContactName: "Dana Smith",
		Email:       "dana@acme.example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme Industrial Robotics", created.CompanyName)

	got, err := service.GetLeadByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "dana@acme.example.com", got.Email)
}

func TestLeadService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)

	_, err := service.CreateLead(context.Background(), models.CreateLeadRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestLeadService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)

	_, err := service.GetLeadByID(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadService_RecordQualification(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	created, err := service.CreateLead(ctx, models.CreateLeadRequest{
		CompanyName: "Globex Logistics",
	})
	require.NoError(t, err)

	err = service.RecordQualification(ctx, created.ID, models.QualificationResult{
		Score:     87,
		Tier:      "hot",
		Rationale: "Strong fit: large fleet, active expansion",
		LatencyMS: 1200,
	})
	require.NoError(t, err)

	got, err := service.GetLeadByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.QualificationScore)
	assert.Equal(t, 87, *got.QualificationScore)
	assert.Equal(t, "hot", string(got.Tier))
	require.NotNil(t, got.QualifiedAt)

	t.Run("score out of range", func(t *testing.T) {
		err := service.RecordQualification(ctx, created.ID, models.QualificationResult{
			Score: 150,
			Tier:  "hot",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("invalid tier", func(t *testing.T) {
		err := service.RecordQualification(ctx, created.ID, models.QualificationResult{
			Score: 50,
			Tier:  "lukewarm",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestLeadService_ListLeadsWithTierFilter(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	for _, spec := range []struct {
		name string
		tier string
	}{
		{"Hot Co", "hot"},
		{"Warm Co", "warm"},
		{"Also Hot Co", "hot"},
	} {
		l, err := service.CreateLead(ctx, models.CreateLeadRequest{CompanyName: spec.name})
		require.NoError(t, err)
		err = service.RecordQualification(ctx, l.ID, models.QualificationResult{
			Score: 70, Tier: spec.tier,
		})
		require.NoError(t, err)
	}

	hot, err := service.ListLeads(ctx, models.LeadFilter{Tier: "hot"})
	require.NoError(t, err)
	assert.Len(t, hot, 2)

	all, err := service.ListLeads(ctx, models.LeadFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLeadService_MergeAdditionalData(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	created, err := service.CreateLead(ctx, models.CreateLeadRequest{
		CompanyName: "Initech",
	})
	require.NoError(t, err)

	err = service.MergeAdditionalData(ctx, created.ID, map[string]interface{}{
		"atl_contacts": []interface{}{"VP Eng"},
	})
	require.NoError(t, err)

	// Second merge keeps earlier keys.
	err = service.MergeAdditionalData(ctx, created.ID, map[string]interface{}{
		"funding_stage": "series-b",
	})
	require.NoError(t, err)

	got, err := service.GetLeadByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, got.AdditionalData, "atl_contacts")
	assert.Equal(t, "series-b", got.AdditionalData["funding_stage"])
}
