// Package storage persists run metadata in a bbolt database.
package storage

import (
	"time"

	"go.etcd.io/bbolt"
)

const bucketRuns = "runs"

// Store wraps a bbolt database for run metadata persistence
type Store struct {
	db *bbolt.DB
}

// NewStore opens a bbolt database at the given path and initializes the
// required bucket
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRuns))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the bbolt database
func (s *Store) Close() error {
	return s.db.Close()
}
