package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"utmbot/internal/domain"
	"utmbot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "utm_data.json")
	store, err := New(path)
	require.NoError(t, err)
	return store
}

func TestNew_CreatesSkeletonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "utm_data.json")

	_, err := New(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNew_ReloadsPersistedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utm_data.json")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Add("source", domain.CatalogEntry{Name: "ВКонтакте", Slug: "vk"}))

	reloaded, err := New(path)
	require.NoError(t, err)

	entries, err := reloaded.List("source")
	assert.NoError(t, err)
	assert.Equal(t, []domain.CatalogEntry{{Name: "ВКонтакте", Slug: "vk"}}, entries)
}

func TestStore_AddAndList(t *testing.T) {
	tests := []struct {
		name        string
		categoryKey string
	}{
		{name: "flat source category", categoryKey: "source"},
		{name: "grouped medium category", categoryKey: "medium_stories"},
		{name: "grouped campaign category", categoryKey: "campaign_msk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			err := store.Add(tt.categoryKey, domain.CatalogEntry{Name: "Тест", Slug: "test_tag"})
			assert.NoError(t, err)

			entries, err := store.List(tt.categoryKey)
			assert.NoError(t, err)
			assert.Equal(t, []domain.CatalogEntry{{Name: "Тест", Slug: "test_tag"}}, entries)
		})
	}
}

func TestStore_AddDuplicateSlug(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add("source", domain.CatalogEntry{Name: "ВКонтакте", Slug: "vk"}))

	err := store.Add("source", domain.CatalogEntry{Name: "Другое имя", Slug: "vk"})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)

	entries, err := store.List("source")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_AddUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	err := store.Add("medium_nonexistent", domain.CatalogEntry{Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, repository.ErrUnknownCategory)

	err = store.Add("bogus", domain.CatalogEntry{Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, repository.ErrUnknownCategory)
}

func TestStore_ListUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List("medium_nonexistent")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add("campaign_spb", domain.CatalogEntry{Name: "Один", Slug: "one"}))
	require.NoError(t, store.Add("campaign_spb", domain.CatalogEntry{Name: "Два", Slug: "two"}))

	err := store.Delete("campaign_spb", "one")
	assert.NoError(t, err)

	entries, err := store.List("campaign_spb")
	assert.NoError(t, err)
	assert.Equal(t, []domain.CatalogEntry{{Name: "Два", Slug: "two"}}, entries)
}

func TestStore_DeleteAbsentSlug(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete("source", "nothing_here")
	assert.NoError(t, err)
}

func TestStore_CategoriesAreIsolated(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add("medium_stories", domain.CatalogEntry{Name: "Сторис", Slug: "stories_ig"}))
	require.NoError(t, store.Add("medium_channels", domain.CatalogEntry{Name: "Канал", Slug: "stories_ig"}))

	stories, err := store.List("medium_stories")
	assert.NoError(t, err)
	assert.Len(t, stories, 1)

	require.NoError(t, store.Delete("medium_stories", "stories_ig"))

	channels, err := store.List("medium_channels")
	assert.NoError(t, err)
	assert.Len(t, channels, 1)
}
