package controllers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faith-walk/internal/logger"
	"faith-walk/internal/models"
	"faith-walk/internal/storage"
)

type fakeView struct {
	rows      []models.Entry
	form      models.Entry
	editingID int64
	tab       Tab
	status    string
	errors    []error

	// onSelect mimics AppTabs firing OnSelected when the tab changes.
	onSelect func(Tab) bool
}

func (v *fakeView) ShowEntries(entries []models.Entry) {
	v.rows = append([]models.Entry(nil), entries...)
}

func (v *fakeView) AppendEntry(entry models.Entry) { v.rows = append(v.rows, entry) }

func (v *fakeView) ReplaceEntry(entry models.Entry) {
	for i := range v.rows {
		if v.rows[i].ID == entry.ID {
			v.rows[i] = entry
		}
	}
}

func (v *fakeView) RemoveEntry(id int64) {
	kept := v.rows[:0]
	for _, r := range v.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	v.rows = kept
}

func (v *fakeView) FillForm(entry models.Entry) { v.form = entry }
func (v *fakeView) ClearForm()                  { v.form = models.Entry{} }
func (v *fakeView) SetEditing(id int64)         { v.editingID = id }
func (v *fakeView) UpdateStatus(status string)  { v.status = status }

func (v *fakeView) SelectTab(tab Tab) {
	if v.tab == tab {
		return
	}
	v.tab = tab
	if v.onSelect != nil {
		v.onSelect(tab)
	}
}

func (v *fakeView) ShowError(_ string, err error) { v.errors = append(v.errors, err) }

type failingStore struct {
	EntryStore
	err error
}

func (f failingStore) Insert(context.Context, models.Entry) (int64, error) { return 0, f.err }
func (f failingStore) Update(context.Context, models.Entry) error         { return f.err }
func (f failingStore) Delete(context.Context, int64) error                { return f.err }
func (f failingStore) List(context.Context) ([]models.Entry, error)       { return nil, f.err }

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newHarness(t *testing.T, store EntryStore) (*JournalController, *fakeView) {
	t.Helper()
	c := NewJournalController(context.Background(), store, logger.NewNop())
	v := &fakeView{}
	v.onSelect = c.TabSelected
	c.SetView(v)
	require.NoError(t, c.Start())
	return c, v
}

func entryNamed(name string) models.Entry {
	return models.Entry{Name: name, Date: "November 12", Book: "Genesis", TimeSpent: "22"}
}

func TestStartRequiresView(t *testing.T) {
	c := NewJournalController(context.Background(), newTestStore(t), nil)
	assert.Error(t, c.Start())
}

func TestStartShowsExistingEntries(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Insert(context.Background(), entryNamed("Ray"))
	require.NoError(t, err)

	_, v := newHarness(t, store)
	require.Len(t, v.rows, 1)
	assert.Equal(t, "Ray", v.rows[0].Name)
}

func TestSubmitWithoutEditCreates(t *testing.T) {
	store := newTestStore(t)
	c, v := newHarness(t, store)
	v.tab = TabUpdate

	in := entryNamed("Ray")
	in.ID = 77
	c.Submit(in)

	require.Len(t, v.rows, 1)
	assert.Equal(t, int64(1), v.rows[0].ID)
	assert.Equal(t, "Ray", v.rows[0].Name)
	assert.Equal(t, models.Entry{}, v.form)
	assert.Equal(t, TabView, v.tab)

	stored, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, v.rows, stored)
}

func TestEditThenSubmitUpdatesInPlace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	rayID, err := store.Insert(ctx, entryNamed("Ray"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, entryNamed("Mackenzie"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Edit(rayID)

	assert.True(t, c.IsEditing())
	assert.Equal(t, rayID, c.EditingID())
	assert.Equal(t, rayID, v.editingID)
	assert.Equal(t, "Ray", v.form.Name)
	assert.Equal(t, TabUpdate, v.tab)

	edited := v.form
	edited.ID = models.UnsetID
	edited.Verse = "Genesis 1:1"
	c.Submit(edited)

	assert.False(t, c.IsEditing())
	assert.Equal(t, models.UnsetID, v.editingID)
	assert.Equal(t, TabView, v.tab)
	require.Len(t, v.rows, 2)
	assert.Equal(t, rayID, v.rows[0].ID)
	assert.Equal(t, "Genesis 1:1", v.rows[0].Verse)
	assert.Equal(t, "Mackenzie", v.rows[1].Name)

	got, err := store.Get(ctx, rayID)
	require.NoError(t, err)
	assert.Equal(t, "Genesis 1:1", got.Verse)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTabSwitchBlockedDuringEdit(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Insert(context.Background(), entryNamed("Ray"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Edit(id)

	v.tab = TabView
	assert.False(t, c.TabSelected(TabView))
	assert.Equal(t, TabUpdate, v.tab)
	assert.True(t, c.IsEditing())

	assert.True(t, c.TabSelected(TabUpdate))
}

func TestTabSwitchFreeWithoutEdit(t *testing.T) {
	c, v := newHarness(t, newTestStore(t))
	v.tab = TabUpdate

	assert.True(t, c.TabSelected(TabView))
	assert.Equal(t, TabUpdate, v.tab)
}

func TestCancelDropsEditWithoutWriting(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Insert(context.Background(), entryNamed("Ray"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Edit(id)
	v.form.Name = "Changed"

	c.Cancel()

	assert.False(t, c.IsEditing())
	assert.Equal(t, models.Entry{}, v.form)
	assert.Equal(t, TabView, v.tab)

	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ray", got.Name)
	assert.Equal(t, "Ray", v.rows[0].Name)
}

func TestSubmitAfterCancelCreates(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Insert(context.Background(), entryNamed("Ray"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Edit(id)
	c.Cancel()
	c.Submit(entryNamed("Mackenzie"))

	require.Len(t, v.rows, 2)
	assert.NotEqual(t, id, v.rows[1].ID)
}

func TestDeleteRemovesRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	first, err := store.Insert(ctx, entryNamed("Ray"))
	require.NoError(t, err)
	second, err := store.Insert(ctx, entryNamed("Mackenzie"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Delete(first)

	require.Len(t, v.rows, 1)
	assert.Equal(t, second, v.rows[0].ID)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteOfEditedEntryEndsEdit(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Insert(context.Background(), entryNamed("Ray"))
	require.NoError(t, err)

	c, v := newHarness(t, store)
	c.Edit(id)
	c.Delete(id)

	assert.False(t, c.IsEditing())
	assert.Equal(t, models.UnsetID, v.editingID)
	assert.Empty(t, v.rows)
}

func TestDeleteMissingStillDropsRow(t *testing.T) {
	c, v := newHarness(t, newTestStore(t))
	v.rows = []models.Entry{{ID: 4, Name: "ghost"}}

	c.Delete(4)
	assert.Empty(t, v.rows)
	assert.Empty(t, v.errors)
}

func TestEditMissingEntryShowsError(t *testing.T) {
	c, v := newHarness(t, newTestStore(t))

	c.Edit(12)
	assert.False(t, c.IsEditing())
	require.Len(t, v.errors, 1)
	assert.ErrorIs(t, v.errors[0], storage.ErrNotFound)
}

func TestStoreFailuresKeepState(t *testing.T) {
	boom := errors.New("disk gone")
	c := NewJournalController(context.Background(), failingStore{err: boom}, nil)
	v := &fakeView{rows: []models.Entry{{ID: 1, Name: "Ray"}}}
	c.SetView(v)

	assert.ErrorIs(t, c.Start(), boom)

	c.editingID = 1
	c.Submit(entryNamed("Ray"))
	assert.True(t, c.IsEditing())

	c.Delete(1)
	assert.Len(t, v.rows, 1)

	c.editingID = models.UnsetID
	c.Submit(entryNamed("Mackenzie"))
	assert.Len(t, v.rows, 1)

	assert.Len(t, v.errors, 4)
}

func TestClosedStoreReportsNotConnected(t *testing.T) {
	store := newTestStore(t)
	c, v := newHarness(t, store)
	require.NoError(t, store.Close())
	t.Cleanup(func() { _ = store.Reconnect() })

	c.Submit(entryNamed("Ray"))
	require.Len(t, v.errors, 1)
	assert.ErrorIs(t, v.errors[0], storage.ErrNotConnected)
}
