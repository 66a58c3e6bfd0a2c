package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/btree"
	"go.etcd.io/bbolt"

	"github.com/yairfalse/onevision/pkg/wire"
)

// Bucket names in bbolt
var (
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")
)

var keySavedAt = []byte("saved_at")

const defaultSnapshotPageSize = 100

// SnapshotStore keeps a local copy of a table in bbolt. Records are listed
// in id order; the cursor is the last id returned.
type SnapshotStore struct {
	mu sync.RWMutex

	// In-memory ordered index of record ids
	index *btree.BTreeG[string]

	db *bbolt.DB
}

// OpenSnapshot opens or creates a snapshot file at path.
func OpenSnapshot(path string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketRecords, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot buckets: %w", err)
	}

	s := &SnapshotStore{
		index: btree.NewG[string](32, func(a, b string) bool { return a < b }),
		db:    db,
	}
	if err := s.rebuildIndex(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

func (s *SnapshotStore) rebuildIndex() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, _ []byte) error {
			s.index.ReplaceOrInsert(string(k))
			return nil
		})
	})
}

// Save writes records keyed by id, replacing existing ones, in a single
// transaction.
func (s *SnapshotStore) Save(records []RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(records))
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		for _, raw := range records {
			id, ok := wire.String(raw["id"])
			if !ok || id == "" {
				return ErrMissingID
			}
			value, err := json.Marshal(raw)
			if err != nil {
				return fmt.Errorf("marshal record %s: %w", id, err)
			}
			if err := bucket.Put([]byte(id), value); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		stamp, err := time.Now().UTC().MarshalText()
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySavedAt, stamp)
	})
	if err != nil {
		return err
	}

	for _, id := range ids {
		s.index.ReplaceOrInsert(id)
	}
	return nil
}

// SavedAt returns when the snapshot was last written, zero if never.
func (s *SnapshotStore) SavedAt() (time.Time, error) {
	var t time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySavedAt)
		if data == nil {
			return nil
		}
		return t.UnmarshalText(data)
	})
	return t, err
}

// Len returns the number of stored records.
func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// List walks the id index from just after the cursor. Limit counts records
// examined, not records matched, the way a DynamoDB scan does.
func (s *SnapshotStore) List(ctx context.Context, q Query) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	limit := int(q.Limit)
	if limit <= 0 {
		limit = defaultSnapshotPageSize
	}

	s.mu.RLock()
	var ids []string
	more := false
	s.index.AscendGreaterOrEqual(string(q.Cursor), func(id string) bool {
		if q.Cursor != "" && id == string(q.Cursor) {
			return true
		}
		if len(ids) == limit {
			more = true
			return false
		}
		ids = append(ids, id)
		return true
	})
	s.mu.RUnlock()

	page := Page{Items: make([]RawRecord, 0, len(ids))}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}
			var raw RawRecord
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("decode record %s: %w", id, err)
			}
			if MatchAll(raw, q.Filters) {
				page.Items = append(page.Items, raw)
			}
		}
		return nil
	})
	if err != nil {
		return Page{}, err
	}

	if more && len(ids) > 0 {
		page.Next = Cursor(ids[len(ids)-1])
	}
	return page, nil
}
