package repository

import (
	"context"
	"testing"

	"synthlab/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListOwned_OrderedByNameDescending(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	user := createTestUser(t, db, "a@x.com")
	createTestTag(t, db, user.ID, "Saturn")
	createTestTag(t, db, user.ID, "Venus")

	tags, err := NewTagRepository(db).ListOwned(context.Background(), user.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Venus", tags[0].Name)
	assert.Equal(t, "Saturn", tags[1].Name)
}

func TestTagListOwned_LimitedToOwner(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@x.com")
	other := createTestUser(t, db, "other@x.com")
	createTestTag(t, db, other.ID, "Mars")
	mine := createTestTag(t, db, owner.ID, "Earth")

	tags, err := NewTagRepository(db).ListOwned(context.Background(), owner.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, mine.Name, tags[0].Name)
}

func TestTagListOwned_NoTagsYieldsEmptySequence(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	user := createTestUser(t, db, "empty@x.com")

	tags, err := NewTagRepository(db).ListOwned(context.Background(), user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagListOwned_AssignedOnly(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	user := createTestUser(t, db, "assigned@x.com")
	assigned := createTestTag(t, db, user.ID, "Catalyst")
	createTestTag(t, db, user.ID, "Unused")

	rec := &models.Synthesize{Title: "Polymer", UserID: user.ID, TimeYears: 3, Tags: []models.Tag{*assigned}}
	require.NoError(t, NewSynthesizeRepository(db).Create(context.Background(), rec))

	tags, err := NewTagRepository(db).ListOwned(context.Background(), user.ID, true)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Catalyst", tags[0].Name)
}

func TestTagListOwned_AssignedOnlyDeduplicates(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	user := createTestUser(t, db, "dedupe@x.com")
	tag := createTestTag(t, db, user.ID, "Shared")

	repo := NewSynthesizeRepository(db)
	ctx := context.Background()
	first := &models.Synthesize{Title: "First", UserID: user.ID, TimeYears: 1, Tags: []models.Tag{*tag}}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Synthesize{Title: "Second", UserID: user.ID, TimeYears: 2, Tags: []models.Tag{*tag}}
	require.NoError(t, repo.Create(ctx, second))

	tags, err := NewTagRepository(db).ListOwned(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, tags, 1, "a tag referenced by two records must appear exactly once")
	assert.Equal(t, tag.ID, tags[0].ID)
}

func TestChemCompListOwned_OrderedAndScoped(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	owner := createTestUser(t, db, "chem@x.com")
	other := createTestUser(t, db, "chem-other@x.com")
	createTestChemComp(t, db, owner.ID, "Argon")
	createTestChemComp(t, db, owner.ID, "Xenon")
	createTestChemComp(t, db, other.ID, "Neon")

	comps, err := NewChemComponentRepository(db).ListOwned(context.Background(), owner.ID, false)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, "Xenon", comps[0].Name)
	assert.Equal(t, "Argon", comps[1].Name)
}

func TestChemCompListOwned_AssignedOnly(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	user := createTestUser(t, db, "chem-assigned@x.com")
	assigned := createTestChemComp(t, db, user.ID, "Sulfur")
	createTestChemComp(t, db, user.ID, "Idle")

	rec := &models.Synthesize{
		Title:          "Acid",
		UserID:         user.ID,
		TimeYears:      2,
		ChemComponents: []models.ChemComponent{*assigned},
	}
	require.NoError(t, NewSynthesizeRepository(db).Create(context.Background(), rec))

	comps, err := NewChemComponentRepository(db).ListOwned(context.Background(), user.ID, true)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, "Sulfur", comps[0].Name)
}
