package filestore

import (
	"github.com/pkg/errors"

	"github.com/pollbase/pollbase/server/store"
)

const versionKey = "version"

// systemRecord is a small key/value pair kept in the system data file.
type systemRecord struct {
	Key   string `json:"id"`
	Value string `json:"value"`
}

func (r *systemRecord) RecordID() string { return r.Key }

func (r *systemRecord) Copy() *systemRecord {
	r2 := new(systemRecord)
	*r2 = *r
	return r2
}

// SystemStore allows to access system information in the data directory.
type SystemStore struct {
	system *collection[*systemRecord]
}

// GetVersion returns the stored schema version, or an empty string when no
// version has been stamped yet.
func (s *SystemStore) GetVersion() (string, error) {
	rec, err := s.system.Get(versionKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

// SaveVersion sets the stored schema version.
func (s *SystemStore) SaveVersion(version string) error {
	rec := &systemRecord{Key: versionKey, Value: version}
	err := s.system.Update(rec)
	if errors.Is(err, store.ErrNotFound) {
		return s.system.Insert(rec)
	}
	return err
}
