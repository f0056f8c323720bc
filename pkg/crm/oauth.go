package crm

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/bus"
)

// oauthStateTTL bounds how long a connect-flow nonce stays redeemable.
const oauthStateTTL = 10 * time.Minute

// ErrStateInvalid is returned when an OAuth callback carries an unknown or
// expired state nonce.
var ErrStateInvalid = errors.New("oauth state is unknown or expired")

// OAuthStates issues and redeems the single-use state nonces of CRM
// connect flows.
type OAuthStates struct {
	bus *bus.Bus
}

// NewOAuthStates creates the nonce store on the bus.
func NewOAuthStates(b *bus.Bus) *OAuthStates {
	return &OAuthStates{bus: b}
}

func oauthKey(nonce string) string { return "oauth:state:" + nonce }

// Issue creates a nonce bound to a platform and tenant, valid for ten minutes.
func (o *OAuthStates) Issue(ctx context.Context, platform, tenantID string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state nonce: %w", err)
	}
	nonce := hex.EncodeToString(buf)

	value := []byte(platform + "|" + tenantID)
	if err := o.bus.Set(ctx, oauthKey(nonce), value, oauthStateTTL); err != nil {
		return "", fmt.Errorf("failed to store state nonce: %w", err)
	}
	return nonce, nil
}

// Redeem consumes a nonce, returning the platform and tenant it was issued
// for. A nonce redeems at most once.
func (o *OAuthStates) Redeem(ctx context.Context, nonce string) (platform, tenantID string, err error) {
	data, err := o.bus.Get(ctx, oauthKey(nonce))
	if err != nil {
		if errors.Is(err, bus.ErrNotFound) {
			return "", "", ErrStateInvalid
		}
		return "", "", err
	}
	if err := o.bus.Delete(ctx, oauthKey(nonce)); err != nil {
		return "", "", fmt.Errorf("failed to consume state nonce: %w", err)
	}

	for i := 0; i < len(data); i++ {
		if data[i] == '|' {
			return string(data[:i]), string(data[i+1:]), nil
		}
	}
	return "", "", ErrStateInvalid
}
