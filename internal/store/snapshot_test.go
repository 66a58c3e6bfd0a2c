package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSnapshot(t *testing.T) (*SnapshotStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snap", "inventory.db")
	s, err := OpenSnapshot(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func records(n int) []RawRecord {
	out := make([]RawRecord, n)
	for i := range out {
		kind := "VPC"
		if i%2 == 1 {
			kind = "Subnet"
		}
		out[i] = RawRecord{
			"id":           map[string]any{"S": fmt.Sprintf("r-%02d", i)},
			"resourceType": map[string]any{"S": kind},
		}
	}
	return out
}

func TestSnapshotStore_SaveAndPaginate(t *testing.T) {
	s, _ := openTestSnapshot(t)
	require.NoError(t, s.Save(records(5)))
	assert.Equal(t, 5, s.Len())

	var ids []string
	var cursor Cursor
	pages := 0
	for {
		page, err := s.List(context.Background(), Query{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		pages++
		for _, item := range page.Items {
			ids = append(ids, item["id"].(map[string]any)["S"].(string))
		}
		if page.Done() {
			break
		}
		cursor = page.Next
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"r-00", "r-01", "r-02", "r-03", "r-04"}, ids)
}

func TestSnapshotStore_FiltersClientSide(t *testing.T) {
	s, _ := openTestSnapshot(t)
	require.NoError(t, s.Save(records(6)))

	page, err := s.List(context.Background(), Query{Filters: []Condition{Equals("resourceType", "Subnet")}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.True(t, page.Done())
}

func TestSnapshotStore_SaveReplaces(t *testing.T) {
	s, _ := openTestSnapshot(t)
	require.NoError(t, s.Save([]RawRecord{{"id": "a", "name": "old"}}))
	require.NoError(t, s.Save([]RawRecord{{"id": "a", "name": "new"}}))

	page, err := s.List(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "new", page.Items[0]["name"])
}

func TestSnapshotStore_SaveRequiresID(t *testing.T) {
	s, _ := openTestSnapshot(t)
	err := s.Save([]RawRecord{{"id": "a"}, {"name": "orphan"}})
	assert.ErrorIs(t, err, ErrMissingID)
	// the transaction is rolled back as a whole
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotStore_ReopenRebuildsIndex(t *testing.T) {
	s, path := openTestSnapshot(t)
	require.NoError(t, s.Save(records(3)))
	savedAt, err := s.SavedAt()
	require.NoError(t, err)
	assert.False(t, savedAt.IsZero())
	require.NoError(t, s.Close())

	reopened, err := OpenSnapshot(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 3, reopened.Len())
	page, err := reopened.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestSnapshotStore_CancelledContext(t *testing.T) {
	s, _ := openTestSnapshot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, Query{})
	assert.ErrorIs(t, err, context.Canceled)
}
