package badger

import (
	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db       *BadgerDB
	product  interfaces.ProductStorage
	project  interfaces.ProjectStorage
	event    interfaces.EventStorage
	post     interfaces.PostStorage
	resource interfaces.ResourceStorage
	lead     interfaces.LeadStorage
	logger   arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:       db,
		product:  NewProductStorage(db, logger),
		project:  NewProjectStorage(db, logger),
		event:    NewEventStorage(db, logger),
		post:     NewPostStorage(db, logger),
		resource: NewResourceStorage(db, logger),
		lead:     NewLeadStorage(db, logger),
		logger:   logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// ProductStorage returns the Product storage interface
func (m *Manager) ProductStorage() interfaces.ProductStorage {
	return m.product
}

// ProjectStorage returns the Project storage interface
func (m *Manager) ProjectStorage() interfaces.ProjectStorage {
	return m.project
}

// EventStorage returns the Event storage interface
func (m *Manager) EventStorage() interfaces.EventStorage {
	return m.event
}

// PostStorage returns the Post storage interface
func (m *Manager) PostStorage() interfaces.PostStorage {
	return m.post
}

// ResourceStorage returns the Resource storage interface
func (m *Manager) ResourceStorage() interfaces.ResourceStorage {
	return m.resource
}

// LeadStorage returns the Lead storage interface
func (m *Manager) LeadStorage() interfaces.LeadStorage {
	return m.lead
}

// DB returns the underlying database wrapper (used by seed loading)
func (m *Manager) DB() *BadgerDB {
	return m.db
}

// Close closes the storage manager and its database
func (m *Manager) Close() error {
	return m.db.Close()
}
