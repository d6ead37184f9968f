package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

func TestClientCreateGetRoundtrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{
		ClientName:  "Acme Corp",
		Status:      "active",
		Email:       "billing@acme.example",
		PhoneNumber: "+1-555-0101",
	}
	require.NoError(t, env.clients.Create(ctx, client))
	require.NotZero(t, client.ID)

	got, err := env.clients.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client, got)
}

func TestClientGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Get(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestClientDeleteThenGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, client))

	require.NoError(t, env.clients.Delete(ctx, client.ID))

	_, err := env.clients.Get(ctx, client.ID)
	assert.ErrorIs(t, err, store.ErrClientNotFound)

	assert.ErrorIs(t, env.clients.Delete(ctx, client.ID), store.ErrClientNotFound)
}

func TestClientSearchIsCaseInsensitiveSubstring(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.clients.Create(ctx, &domain.Client{ClientName: "Acme Corp"}))
	require.NoError(t, env.clients.Create(ctx, &domain.Client{ClientName: "Other"}))

	for _, q := range []string{"acme", "CORP", "cme C"} {
		results, err := env.clients.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", q)
		assert.Equal(t, "Acme Corp", results[0].ClientName)
	}

	results, err := env.clients.List(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = env.clients.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestClientUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme", Status: "new"}
	require.NoError(t, env.clients.Create(ctx, client))

	client.ClientName = "Acme Renamed"
	client.Status = "active"
	require.NoError(t, env.clients.Update(ctx, client))

	got, err := env.clients.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", got.ClientName)
	assert.Equal(t, "active", got.Status)

	missing := &domain.Client{ID: 99, ClientName: "Ghost"}
	assert.ErrorIs(t, env.clients.Update(ctx, missing), store.ErrClientNotFound)
}

func TestClientGetDetails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, client))

	project, err := env.projects.Create(ctx, ProjectParams{
		ClientID:    client.ID,
		ProjectName: "Site",
		Status:      "open",
	})
	require.NoError(t, err)

	_, err = env.comments.Create(ctx, CommentParams{
		ClientID:    client.ID,
		ProjectID:   project.ID,
		CommentText: "hi",
	})
	require.NoError(t, err)

	_, err = env.transactions.Create(ctx, TransactionParams{
		ClientID:  client.ID,
		ProjectID: project.ID,
		Amount:    decimal.NewFromInt(100),
		Currency:  "USD",
	})
	require.NoError(t, err)

	details, err := env.clients.GetDetails(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, details.Client.ID)
	assert.Len(t, details.Projects, 1)
	assert.Len(t, details.Comments, 1)
	assert.Len(t, details.Transactions, 1)

	_, err = env.clients.GetDetails(ctx, 999)
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}
