package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/transform"
)

// Content type filters accepted by the q endpoint. Empty means all.
const (
	TypeProducts  = "products"
	TypeProjects  = "projects"
	TypeEvents    = "events"
	TypePosts     = "posts"
	TypeResources = "resources"
)

// Results groups search hits by content type. Sections outside the
// requested type filter stay empty.
type Results struct {
	Query     string                   `json:"query"`
	Products  []transform.ProductView  `json:"products"`
	Projects  []transform.ProjectView  `json:"projects"`
	Events    []transform.EventView    `json:"events"`
	Posts     []transform.PostView     `json:"posts"`
	Resources []transform.ResourceView `json:"resources"`
	Total     int                      `json:"total"`
}

// Service runs case-insensitive substring search across published content
type Service struct {
	storage     interfaces.StorageManager
	transformer *transform.Transformer
	limit       int
	logger      arbor.ILogger
}

// NewService creates a new search service
func NewService(storage interfaces.StorageManager, transformer *transform.Transformer, cfg *common.ContentConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:     storage,
		transformer: transformer,
		limit:       cfg.DefaultLimit,
		logger:      logger,
	}
}

// Search matches the query against published content of the requested
// type, or all types when typeFilter is empty. The query is treated as a
// literal substring, never as a pattern.
func (s *Service) Search(ctx context.Context, query, typeFilter string) (*Results, error) {
	query = strings.TrimSpace(query)
	results := &Results{
		Query:     query,
		Products:  []transform.ProductView{},
		Projects:  []transform.ProjectView{},
		Events:    []transform.EventView{},
		Posts:     []transform.PostView{},
		Resources: []transform.ResourceView{},
	}
	if query == "" {
		return results, nil
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return nil, fmt.Errorf("failed to compile search pattern: %w", err)
	}

	all := typeFilter == ""

	if all || typeFilter == TypeProducts {
		products, err := s.storage.ProductStorage().Search(ctx, pattern, s.limit)
		if err != nil {
			return nil, fmt.Errorf("product search failed: %w", err)
		}
		for _, p := range products {
			results.Products = append(results.Products, s.transformer.Product(p))
		}
	}

	if all || typeFilter == TypeProjects {
		projects, err := s.storage.ProjectStorage().Search(ctx, pattern, s.limit)
		if err != nil {
			return nil, fmt.Errorf("project search failed: %w", err)
		}
		for _, p := range projects {
			results.Projects = append(results.Projects, s.transformer.Project(p))
		}
	}

	if all || typeFilter == TypeEvents {
		events, err := s.storage.EventStorage().Search(ctx, pattern, s.limit)
		if err != nil {
			return nil, fmt.Errorf("event search failed: %w", err)
		}
		for _, e := range events {
			results.Events = append(results.Events, s.transformer.Event(e))
		}
	}

	if all || typeFilter == TypePosts {
		posts, err := s.storage.PostStorage().Search(ctx, pattern, s.limit)
		if err != nil {
			return nil, fmt.Errorf("post search failed: %w", err)
		}
		for _, p := range posts {
			results.Posts = append(results.Posts, s.transformer.Post(p))
		}
	}

	if all || typeFilter == TypeResources {
		resources, err := s.storage.ResourceStorage().Search(ctx, pattern, s.limit)
		if err != nil {
			return nil, fmt.Errorf("resource search failed: %w", err)
		}
		for _, r := range resources {
			results.Resources = append(results.Resources, s.transformer.Resource(r))
		}
	}

	results.Total = len(results.Products) + len(results.Projects) + len(results.Events) +
		len(results.Posts) + len(results.Resources)

	s.logger.Debug().Str("query", query).Str("type", typeFilter).Int("total", results.Total).Msg("Search completed")
	return results, nil
}

// ValidType reports whether the type filter names a searchable content type
func ValidType(typeFilter string) bool {
	switch typeFilter {
	case "", TypeProducts, TypeProjects, TypeEvents, TypePosts, TypeResources:
		return true
	}
	return false
}
