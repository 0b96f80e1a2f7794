package storage

import (
	"encoding/json"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/hakim/domainscout/internal/models"
)

// SaveRun persists a run metadata record
func (s *Store) SaveRun(meta *models.RunMeta) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketRuns)).Put([]byte(meta.ID), data)
	})
}

// GetRun retrieves a run metadata record by ID. Returns nil when not found.
func (s *Store) GetRun(id string) (*models.RunMeta, error) {
	var meta *models.RunMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketRuns)).Get([]byte(id))
		if data == nil {
			return nil
		}
		meta = &models.RunMeta{}
		return json.Unmarshal(data, meta)
	})

	return meta, err
}

// ListRuns retrieves all run records, sorted by StartedAt descending
func (s *Store) ListRuns() ([]*models.RunMeta, error) {
	var runs []*models.RunMeta

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRuns)).ForEach(func(_, v []byte) error {
			var meta models.RunMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			runs = append(runs, &meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	return runs, nil
}

// CompleteRun marks a run finished, recording its final status, summary,
// and completion time.
func (s *Store) CompleteRun(id string, status models.RunStatus, summary map[models.Status]int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		runs := tx.Bucket([]byte(bucketRuns))

		data := runs.Get([]byte(id))
		if data == nil {
			return nil
		}

		var meta models.RunMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}

		meta.Status = status
		meta.Summary = summary
		if meta.CompletedAt == nil {
			now := time.Now()
			meta.CompletedAt = &now
		}

		updated, err := json.Marshal(&meta)
		if err != nil {
			return err
		}
		return runs.Put([]byte(id), updated)
	})
}
