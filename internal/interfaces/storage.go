package interfaces

import (
	"context"
	"regexp"

	"github.com/hospitek/vitrine/internal/models"
)

// ProductListOptions filters and paginates product queries. Absent optional
// filters are omitted from the predicate entirely.
type ProductListOptions struct {
	Category string
	Featured *bool
	Status   models.ContentStatus // empty = any status
	Limit    int
	Page     int // 1-based
}

// ProjectListOptions filters and paginates project queries
type ProjectListOptions struct {
	HospitalType string
	Year         int // 0 = any year
	Featured     *bool
	Status       models.ContentStatus
	Limit        int
	Page         int
}

// EventListOptions filters and paginates event queries
type EventListOptions struct {
	EventType   string
	EventStatus models.EventStatus
	Featured    *bool
	Status      models.ContentStatus
	Limit       int
	Page        int
}

// PostListOptions filters and paginates post queries
type PostListOptions struct {
	Category string
	Status   models.ContentStatus
	Limit    int
	Page     int
}

// ResourceListOptions filters and paginates resource queries
type ResourceListOptions struct {
	Category string
	Featured *bool
	Status   models.ContentStatus
	Limit    int
	Page     int
}

// LeadListOptions paginates lead queries
type LeadListOptions struct {
	Source models.LeadSource
	Status models.LeadStatus
	Limit  int
	Page   int
}

// ProductStorage defines product persistence operations
type ProductStorage interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context, opts ProductListOptions) ([]*models.Product, int, error)
	Categories(ctx context.Context, cap int) ([]string, error)
	Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ProjectStorage defines project persistence operations
type ProjectStorage interface {
	Save(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	List(ctx context.Context, opts ProjectListOptions) ([]*models.Project, int, error)
	HospitalTypes(ctx context.Context, cap int) ([]string, error)
	Years(ctx context.Context, cap int) ([]int, error)
	Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// EventStorage defines event persistence operations
type EventStorage interface {
	Save(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	List(ctx context.Context, opts EventListOptions) ([]*models.Event, int, error)
	EventTypes(ctx context.Context, cap int) ([]string, error)
	MarkElapsedUpcoming(ctx context.Context) (int, error)
	Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// PostStorage defines blog post persistence operations
type PostStorage interface {
	Save(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, opts PostListOptions) ([]*models.Post, int, error)
	Categories(ctx context.Context, cap int) ([]string, error)
	Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Post, error)
	Delete(ctx context.Context, id string) error
}

// ResourceStorage defines resource persistence operations
type ResourceStorage interface {
	Save(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context, opts ResourceListOptions) ([]*models.Resource, int, error)
	Categories(ctx context.Context, cap int) ([]string, error)
	Search(ctx context.Context, pattern *regexp.Regexp, limit int) ([]*models.Resource, error)
	Delete(ctx context.Context, id string) error
}

// LeadStorage defines lead persistence operations
type LeadStorage interface {
	Save(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	ExistsByEmailAndSource(ctx context.Context, email string, source models.LeadSource) (bool, error)
	List(ctx context.Context, opts LeadListOptions) ([]*models.Lead, int, error)
	Delete(ctx context.Context, id string) error
}

// StorageManager provides access to all storage interfaces
type StorageManager interface {
	ProductStorage() ProductStorage
	ProjectStorage() ProjectStorage
	EventStorage() EventStorage
	PostStorage() PostStorage
	ResourceStorage() ResourceStorage
	LeadStorage() LeadStorage
	Close() error
}
