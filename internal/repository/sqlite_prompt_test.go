package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/repository"
	"github.com/alexanderramin/promptsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromptRepo(t *testing.T) *repository.SQLitePromptRepo {
	t.Helper()
	return repository.NewSQLitePromptRepo(testutil.NewTestDB(t))
}

func samplePrompt(name string) *domain.PromptRecord {
	p := domain.NewPromptRecord(name, "You are a helpful assistant.")
	p.Description = "general purpose"
	p.Category = "assistant"
	p.Tags = []string{"general", "starter"}
	return p
}

func TestPromptRepo_CreateAndGet(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	p := samplePrompt("helper")
	require.NoError(t, repo.Create(ctx, p))

	byID, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "helper", byID.Name)
	assert.Equal(t, "You are a helpful assistant.", byID.Content)
	assert.Equal(t, "assistant", byID.Category)
	assert.Equal(t, []string{"general", "starter"}, byID.Tags)
	assert.False(t, byID.CreatedAt.IsZero())

	byName, err := repo.GetByName(ctx, "helper")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)
}

func TestPromptRepo_GetNotFound(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPromptRepo_DuplicateNameRejected(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, samplePrompt("dup")))
	err := repo.Create(ctx, samplePrompt("dup"))
	assert.Error(t, err)
}

func TestPromptRepo_ListFiltersByCategory(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	a := samplePrompt("alpha")
	b := samplePrompt("beta")
	b.Category = "coding"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name, "listed in name order")

	coding, err := repo.List(ctx, "coding")
	require.NoError(t, err)
	require.Len(t, coding, 1)
	assert.Equal(t, "beta", coding[0].Name)
}

func TestPromptRepo_SearchOrdersByUseCount(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	rare := samplePrompt("rare-recursion")
	popular := samplePrompt("popular-recursion")
	popular.UseCount = 9
	require.NoError(t, repo.Create(ctx, rare))
	require.NoError(t, repo.Create(ctx, popular))

	found, err := repo.Search(ctx, "recursion")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "popular-recursion", found[0].Name)

	none, err := repo.Search(ctx, "nothing-matches-this")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPromptRepo_SearchMatchesContent(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	p := domain.NewPromptRecord("opaque-name", "explain quantum entanglement")
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.Search(ctx, "entanglement")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "opaque-name", found[0].Name)
}

func TestPromptRepo_ListByTag(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	tagged := samplePrompt("tagged")
	plain := domain.NewPromptRecord("plain", "content")
	require.NoError(t, repo.Create(ctx, tagged))
	require.NoError(t, repo.Create(ctx, plain))

	found, err := repo.ListByTag(ctx, "starter")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "tagged", found[0].Name)
	assert.Equal(t, []string{"general", "starter"}, found[0].Tags)
}

func TestPromptRepo_UpdateReplacesTags(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	p := samplePrompt("mutable")
	require.NoError(t, repo.Create(ctx, p))

	p.Content = "updated content"
	p.Tags = []string{"fresh"}
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated content", got.Content)
	assert.Equal(t, []string{"fresh"}, got.Tags, "old tags are cleared")
}

func TestPromptRepo_UpdateNotFound(t *testing.T) {
	repo := newPromptRepo(t)
	p := samplePrompt("ghost")
	err := repo.Update(context.Background(), p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPromptRepo_IncrementUseCount(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	p := samplePrompt("counted")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.IncrementUseCount(ctx, p.ID))
	require.NoError(t, repo.IncrementUseCount(ctx, p.ID))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UseCount)

	err = repo.IncrementUseCount(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPromptRepo_DeleteCascadesTags(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	p := samplePrompt("doomed")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byTag, err := repo.ListByTag(ctx, "starter")
	require.NoError(t, err)
	assert.Empty(t, byTag)

	err = repo.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPromptRepo_Count(t *testing.T) {
	repo := newPromptRepo(t)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, samplePrompt("one")))
	require.NoError(t, repo.Create(ctx, samplePrompt("two")))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
