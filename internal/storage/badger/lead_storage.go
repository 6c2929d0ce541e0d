package badger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/models"
)

// LeadStorage implements the LeadStorage interface for Badger
type LeadStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewLeadStorage creates a new LeadStorage instance
func NewLeadStorage(db *BadgerDB, logger arbor.ILogger) interfaces.LeadStorage {
	return &LeadStorage{
		db:     db,
		logger: logger,
	}
}

func (s *LeadStorage) Save(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		return fmt.Errorf("lead ID is required")
	}
	if lead.Email == "" {
		return fmt.Errorf("lead email is required")
	}

	// Emails are compared case-insensitively; store them normalized
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))

	now := time.Now()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	if err := s.db.Store().Upsert(lead.ID, lead); err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

func (s *LeadStorage) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.Store().Get(id, &lead); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

// ExistsByEmailAndSource reports whether a lead with the given email was
// already recorded for the given source. Used for duplicate newsletter
// detection.
func (s *LeadStorage) ExistsByEmailAndSource(ctx context.Context, email string, source models.LeadSource) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	count, err := s.db.Store().Count(&models.Lead{},
		badgerhold.Where("Email").Eq(normalized).And("Source").Eq(source))
	if err != nil {
		return false, fmt.Errorf("failed to check for existing lead: %w", err)
	}
	return count > 0, nil
}

func (s *LeadStorage) listQuery(opts interfaces.LeadListOptions) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")
	if opts.Source != "" {
		query = query.And("Source").Eq(opts.Source)
	}
	if opts.Status != "" {
		query = query.And("Status").Eq(opts.Status)
	}
	return query
}

// List returns a page of leads plus the total match count, newest first
func (s *LeadStorage) List(ctx context.Context, opts interfaces.LeadListOptions) ([]*models.Lead, int, error) {
	count, err := s.db.Store().Count(&models.Lead{}, s.listQuery(opts))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	query := s.listQuery(opts).SortBy("CreatedAt").Reverse()
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Page > 1 {
			query = query.Skip((opts.Page - 1) * opts.Limit)
		}
	}

	var leads []models.Lead
	if err := s.db.Store().Find(&leads, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	result := make([]*models.Lead, len(leads))
	for i := range leads {
		result[i] = &leads[i]
	}
	return result, int(count), nil
}

func (s *LeadStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Lead{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}
