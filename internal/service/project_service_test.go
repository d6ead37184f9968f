package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackbird-crm/crm-api/internal/domain"
	"github.com/blackbird-crm/crm-api/internal/store"
)

func TestProjectCreateSetsStartDate(t *testing.T) {
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
	assert.NotZero(t, project.ID)
	assert.False(t, project.StartDate.IsZero())
	assert.Equal(t, "Acme", project.ClientName)
}

func TestProjectCreateRejectsUnknownClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.projects.Create(ctx, ProjectParams{ClientID: 99, ProjectName: "Site"})
	assert.ErrorIs(t, err, ErrInvalidClientID)

	// No row was created.
	projects, err := env.projects.List(ctx, nil, "")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectUpdateKeepsStartDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, client))

	created, err := env.projects.Create(ctx, ProjectParams{
		ClientID:    client.ID,
		ProjectName: "Site",
		Status:      "open",
	})
	require.NoError(t, err)

	updated, err := env.projects.Update(ctx, created.ID, ProjectParams{
		ClientID:    client.ID,
		ProjectName: "Site v2",
		Status:      "closed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Site v2", updated.ProjectName)
	assert.Equal(t, "closed", updated.Status)
	assert.Equal(t, created.StartDate, updated.StartDate)
}

func TestProjectUpdateErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, client))

	created, err := env.projects.Create(ctx, ProjectParams{ClientID: client.ID, ProjectName: "Site"})
	require.NoError(t, err)

	// A missing project wins over a bad client reference.
	_, err = env.projects.Update(ctx, 999, ProjectParams{ClientID: 888, ProjectName: "x"})
	assert.ErrorIs(t, err, store.ErrProjectNotFound)

	_, err = env.projects.Update(ctx, created.ID, ProjectParams{ClientID: 888, ProjectName: "x"})
	assert.ErrorIs(t, err, ErrInvalidClientID)
}

func TestProjectListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acme := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, acme))
	globex := &domain.Client{ClientName: "Globex"}
	require.NoError(t, env.clients.Create(ctx, globex))

	_, err := env.projects.Create(ctx, ProjectParams{ClientID: acme.ID, ProjectName: "Website"})
	require.NoError(t, err)
	_, err = env.projects.Create(ctx, ProjectParams{ClientID: globex.ID, ProjectName: "Migration"})
	require.NoError(t, err)

	// Search matches the client name as well as the project name.
	results, err := env.projects.List(ctx, nil, "glob")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Migration", results[0].ProjectName)

	// Client filter and search combine.
	results, err = env.projects.List(ctx, &acme.ID, "migration")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = env.projects.List(ctx, &acme.ID, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Website", results[0].ProjectName)
}

func TestProjectDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := &domain.Client{ClientName: "Acme"}
	require.NoError(t, env.clients.Create(ctx, client))

	created, err := env.projects.Create(ctx, ProjectParams{ClientID: client.ID, ProjectName: "Site"})
	require.NoError(t, err)

	require.NoError(t, env.projects.Delete(ctx, created.ID))

	_, err = env.projects.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)

	assert.ErrorIs(t, env.projects.Delete(ctx, created.ID), store.ErrProjectNotFound)
}
