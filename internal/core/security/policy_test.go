package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
)

func TestStrictPolicy_ScopesToOwner(t *testing.T) {
	scope := NewStrictPolicy().RecordScope(5)
	require.NotNil(t, scope)
	assert.EqualValues(t, 5, *scope)
}

func TestLegacyPolicy_MatchesByIDOnly(t *testing.T) {
	assert.Nil(t, NewLegacyPolicy().RecordScope(5))
}

func TestPolicyForMode(t *testing.T) {
	p, err := PolicyForMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, p.Mode())

	p, err = PolicyForMode(ModeLegacy)
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, p.Mode())

	_, err = PolicyForMode("open")
	assert.Error(t, err)
}

func TestRequireOwner(t *testing.T) {
	_, err := RequireOwner(context.Background())
	assert.True(t, apperror.IsUnauthorized(err))

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{UserID: 3})
	ownerID, err := RequireOwner(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, ownerID)
}
