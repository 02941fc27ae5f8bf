package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/quantmind-br/dashlaunch/internal/utils"
)

const gcInterval = 5 * time.Minute

// Store is a launch history backed by BadgerDB
type Store struct {
	db   *badger.DB
	ttl  time.Duration
	now  func() time.Time
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// Open opens or creates a history store
func Open(opts Options) (*Store, error) {
	var badgerOpts badger.Options

	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Directory == "" {
			return nil, fmt.Errorf("history directory is required")
		}
		dir := utils.ExpandPath(opts.Directory)
		if err := utils.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		badgerOpts = badger.DefaultOptions(dir)
	}

	if !opts.Logger {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	s := &Store{
		db:   db,
		ttl:  opts.TTL,
		now:  time.Now,
		stop: make(chan struct{}),
	}

	if !opts.InMemory {
		s.wg.Add(1)
		go s.runGC()
	}

	return s, nil
}

func (s *Store) runGC() {
	defer s.wg.Done()
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = s.db.RunValueLogGC(0.5)
		case <-s.stop:
			return
		}
	}
}

// Record increments the run count of an app and stamps its last run
func (s *Store) Record(ctx context.Context, name, module string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	var rec Record
	err := s.db.Update(func(txn *badger.Txn) error {
		existing, err := getRecord(txn, name)
		switch {
		case errors.Is(err, ErrNotFound):
			existing = Record{Name: name}
		case err != nil:
			return err
		}

		existing.Module = module
		existing.Runs++
		existing.LastRun = s.now()
		rec = existing

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		e := badger.NewEntry(recordKey(name), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return Record{}, fmt.Errorf("failed to record %q: %w", name, err)
	}
	return rec, nil
}

// Get returns the history of a single app
func (s *Store) Get(ctx context.Context, name string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, name)
		return err
	})
	return rec, err
}

// List returns all records, most recently launched first
func (s *Store) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].LastRun.Equal(records[j].LastRun) {
			return records[i].Name < records[j].Name
		}
		return records[i].LastRun.After(records[j].LastRun)
	})
	return records, nil
}

// Last returns the most recently launched app
func (s *Store) Last(ctx context.Context) (Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, ErrNotFound
	}
	return records[0], nil
}

// Len returns the number of apps with history
func (s *Store) Len() int {
	var count int
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count
}

// Clear removes all history
func (s *Store) Clear() error {
	return s.db.DropAll()
}

// Close stops background GC and releases the store
func (s *Store) Close() error {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
	return s.db.Close()
}

func getRecord(txn *badger.Txn, name string) (Record, error) {
	item, err := txn.Get(recordKey(name))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var rec Record
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}
