package filestore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/pollbase/pollbase/server/store"
)

// Record is implemented by every entity kept in a collection.
type Record[T any] interface {
	RecordID() string
	Copy() T
}

// collection is a durable mapping from record id to record for one entity
// kind. The whole collection is materialized into memory on first use and
// rewritten to its backing file after every successful mutation. The backing
// file is the source of truth across restarts.
//
// One RW mutex serializes all mutations of the kind, which also totally
// orders mutations per record id and allows only one file rewrite at a time.
// Reads share the read lock and only ever hand out deep copies.
type collection[T Record[T]] struct {
	kind   string
	path   string
	logger *slog.Logger

	loadOnce sync.Once
	loadErr  error

	mu      sync.RWMutex
	order   []string
	records map[string]T
}

func newCollection[T Record[T]](dir, kind string, logger *slog.Logger) *collection[T] {
	return &collection[T]{
		kind:   kind,
		path:   filepath.Join(dir, kind+".json"),
		logger: logger,
	}
}

// load lazily initializes the collection. A missing or unparsable backing
// file is not fatal: the collection starts empty and immediately re-persists
// itself, so a corrupt file is self-healing.
func (c *collection[T]) load() error {
	c.loadOnce.Do(func() { c.loadErr = c.doLoad() })
	return c.loadErr
}

func (c *collection[T]) doLoad() error {
	c.records = map[string]T{}
	c.order = nil

	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return &store.PersistenceError{Kind: c.kind, Op: "initialize", Err: err}
	}

	b, err := os.ReadFile(c.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		c.logger.Info("no data file found, starting empty", "kind", c.kind, "path", c.path)
		return c.persist()
	case err != nil:
		return &store.PersistenceError{Kind: c.kind, Op: "load", Err: err}
	}

	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		c.logger.Warn("data file is malformed, resetting to empty", "kind", c.kind, "path", c.path, "error", err)
		return c.persist()
	}
	for _, rec := range records {
		id := rec.RecordID()
		if _, ok := c.records[id]; !ok {
			c.order = append(c.order, id)
		}
		c.records[id] = rec
	}
	return nil
}

// persist rewrites the whole collection to the backing file. The write goes
// through a temp file and a rename, so a successful call never leaves a
// partially written file behind. Callers must hold the write lock.
func (c *collection[T]) persist() error {
	records := make([]T, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, c.records[id])
	}
	b, err := json.Marshal(records)
	if err != nil {
		return &store.PersistenceError{Kind: c.kind, Op: "encode", Err: err}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o640); err != nil {
		return &store.PersistenceError{Kind: c.kind, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return &store.PersistenceError{Kind: c.kind, Op: "write", Err: err}
	}
	return nil
}

// Insert adds a new record. The in-memory state only commits once the
// rewrite of the backing file succeeded.
func (c *collection[T]) Insert(rec T) error {
	if err := c.load(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	id := rec.RecordID()
	if _, ok := c.records[id]; ok {
		return errors.Wrapf(store.ErrDuplicateKey, "%s %q", c.kind, id)
	}
	c.records[id] = rec.Copy()
	c.order = append(c.order, id)
	if err := c.persist(); err != nil {
		delete(c.records, id)
		c.order = c.order[:len(c.order)-1]
		return err
	}
	return nil
}

// Get returns a copy of the record with the given id.
func (c *collection[T]) Get(id string) (T, error) {
	var zero T
	if err := c.load(); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	if !ok {
		return zero, errors.Wrapf(store.ErrNotFound, "%s %q", c.kind, id)
	}
	return rec.Copy(), nil
}

// Update replaces the whole record body, keeping its id.
func (c *collection[T]) Update(rec T) error {
	if err := c.load(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	id := rec.RecordID()
	prev, ok := c.records[id]
	if !ok {
		return errors.Wrapf(store.ErrNotFound, "%s %q", c.kind, id)
	}
	c.records[id] = rec.Copy()
	if err := c.persist(); err != nil {
		c.records[id] = prev
		return err
	}
	return nil
}

// Modify applies mutate to a copy of the record and commits it as one atomic
// read-modify-write. When mutate fails, the record is left untouched and the
// error is passed through unchanged.
func (c *collection[T]) Modify(id string, mutate func(T) error) (T, error) {
	var zero T
	if err := c.load(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.records[id]
	if !ok {
		return zero, errors.Wrapf(store.ErrNotFound, "%s %q", c.kind, id)
	}
	rec := prev.Copy()
	if err := mutate(rec); err != nil {
		return zero, err
	}
	c.records[id] = rec
	if err := c.persist(); err != nil {
		c.records[id] = prev
		return zero, err
	}
	return rec.Copy(), nil
}

// Delete removes a record. Deleting an absent id is not an error and
// reported as false.
func (c *collection[T]) Delete(id string) (bool, error) {
	if err := c.load(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.records[id]
	if !ok {
		return false, nil
	}
	pos := 0
	for i, oid := range c.order {
		if oid == id {
			pos = i
			break
		}
	}
	delete(c.records, id)
	c.order = append(c.order[:pos], c.order[pos+1:]...)
	if err := c.persist(); err != nil {
		c.records[id] = prev
		c.order = append(c.order[:pos], append([]string{id}, c.order[pos:]...)...)
		return false, err
	}
	return true, nil
}

// GetAll returns copies of every record in insertion order.
func (c *collection[T]) GetAll() ([]T, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]T, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, c.records[id].Copy())
	}
	return records, nil
}

// Filter returns copies of every record the predicate accepts. A predicate
// fault aborts the scan and is surfaced as a *store.FilterError.
func (c *collection[T]) Filter(pred func(T) (bool, error)) ([]T, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := []T{}
	for _, id := range c.order {
		rec := c.records[id].Copy()
		ok, err := pred(rec)
		if err != nil {
			return nil, &store.FilterError{Err: err}
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
