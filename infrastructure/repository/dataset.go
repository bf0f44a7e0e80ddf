// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/stayview/booking-insights-api/infrastructure/datasource"
	"github.com/stayview/booking-insights-api/internal/domain"
	"github.com/stayview/booking-insights-api/pkg/log"
	"github.com/stayview/booking-insights-api/pkg/utils"
)

type DatasetRepository interface {
	// Table returns the cached booking table, loading it from the source
	// when the cache is empty or the source fingerprint changed.
	Table(ctx context.Context) (domain.BookingTable, *domain.DatasetSnapshot, error)
	// Snapshot describes the currently cached dataset without loading it.
	Snapshot(ctx context.Context) (*domain.DatasetSnapshot, error)
	// Refresh drops the cache and reloads from the source unconditionally.
	Refresh(ctx context.Context) (*domain.DatasetSnapshot, error)
	// Invalidate drops the cache so the next Table call reloads.
	Invalidate()
}

type datasetRepository struct {
	source datasource.Source

	mu       sync.RWMutex
	table    domain.BookingTable
	snapshot *domain.DatasetSnapshot
}

func NewDatasetRepository(source datasource.Source) DatasetRepository {
	return &datasetRepository{source: source}
}

func (r *datasetRepository) Table(ctx context.Context) (domain.BookingTable, *domain.DatasetSnapshot, error) {
	fingerprint, err := r.source.Fingerprint(ctx)
	if err != nil {
		return nil, nil, err
	}

	r.mu.RLock()
	if r.snapshot != nil && r.snapshot.Fingerprint == fingerprint {
		table, snapshot := r.table, r.snapshot
		r.mu.RUnlock()
		return table, snapshot, nil
	}
	r.mu.RUnlock()

	return r.load(ctx, fingerprint)
}

func (r *datasetRepository) Snapshot(ctx context.Context) (*domain.DatasetSnapshot, error) {
	r.mu.RLock()
	snapshot := r.snapshot
	r.mu.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}

	_, snapshot, err := r.Table(ctx)
	return snapshot, err
}

func (r *datasetRepository) Refresh(ctx context.Context) (*domain.DatasetSnapshot, error) {
	fingerprint, err := r.source.Fingerprint(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.table = nil
	r.snapshot = nil
	r.mu.Unlock()

	_, snapshot, err := r.load(ctx, fingerprint)
	return snapshot, err
}

func (r *datasetRepository) Invalidate() {
	r.mu.Lock()
	r.table = nil
	r.snapshot = nil
	r.mu.Unlock()
}

// load fetches the table under the write lock. The fingerprint is re-checked
// after acquiring the lock so concurrent callers trigger a single fetch.
func (r *datasetRepository) load(ctx context.Context, fingerprint string) (domain.BookingTable, *domain.DatasetSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snapshot != nil && r.snapshot.Fingerprint == fingerprint {
		return r.table, r.snapshot, nil
	}

	started := time.Now()

	table, err := r.source.Fetch(ctx)
	if err != nil {
		log.ForContext(ctx).
			WithField("source", r.source.Identity()).
			WithError(err).
			Error("❌ Failed loading dataset")
		return nil, nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, nil, err
	}

	r.table = table
	r.snapshot = &domain.DatasetSnapshot{
		ID:          id,
		Source:      r.source.Identity(),
		Fingerprint: fingerprint,
		Rows:        len(table),
		LoadedAt:    time.Now(),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":      r.source.Identity(),
		"snapshot_id": id,
		"rows":        len(table),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Dataset loaded")

	return r.table, r.snapshot, nil
}
