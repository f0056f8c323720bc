package crm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthStates_IssueAndRedeem(t *testing.T) {
	b, _ := newTestBus(t)
	states := NewOAuthStates(b)
	ctx := context.Background()

	nonce, err := states.Issue(ctx, "hubspot", "tenant-1")
	require.NoError(t, err)
	require.NotEmpty(t, nonce)

	platform, tenant, err := states.Redeem(ctx, nonce)
	require.NoError(t, err)
	assert.Equal(t, "hubspot", platform)
	assert.Equal(t, "tenant-1", tenant)

	// Single use.
	_, _, err = states.Redeem(ctx, nonce)
	require.ErrorIs(t, err, ErrStateInvalid)
}

func TestOAuthStates_Expiry(t *testing.T) {
	b, mr := newTestBus(t)
	states := NewOAuthStates(b)
	ctx := context.Background()

	nonce, err := states.Issue(ctx, "hubspot", "tenant-1")
	require.NoError(t, err)

	mr.FastForward(11 * time.Minute)
	_, _, err = states.Redeem(ctx, nonce)
	require.ErrorIs(t, err, ErrStateInvalid)
}

func TestOAuthStates_UnknownNonce(t *testing.T) {
	b, _ := newTestBus(t)
	states := NewOAuthStates(b)

	_, _, err := states.Redeem(context.Background(), "never-issued")
	require.ErrorIs(t, err, ErrStateInvalid)
}
