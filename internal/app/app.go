package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
	"github.com/hospitek/vitrine/internal/handlers"
	"github.com/hospitek/vitrine/internal/interfaces"
	"github.com/hospitek/vitrine/internal/services/events"
	"github.com/hospitek/vitrine/internal/services/leads"
	"github.com/hospitek/vitrine/internal/services/mailer"
	"github.com/hospitek/vitrine/internal/services/posts"
	"github.com/hospitek/vitrine/internal/services/products"
	"github.com/hospitek/vitrine/internal/services/projects"
	"github.com/hospitek/vitrine/internal/services/resources"
	"github.com/hospitek/vitrine/internal/services/scheduler"
	"github.com/hospitek/vitrine/internal/services/search"
	"github.com/hospitek/vitrine/internal/storage/badger"
	"github.com/hospitek/vitrine/internal/transform"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager
	Transformer    *transform.Transformer

	// Content services
	ProductService  *products.Service
	ProjectService  *projects.Service
	EventService    *events.Service
	PostService     *posts.Service
	ResourceService *resources.Service
	SearchService   *search.Service

	// Form and outbound services
	MailerService *mailer.Service
	LeadService   *leads.Service

	// Background maintenance
	SchedulerService *scheduler.Service

	// HTTP handlers
	APIHandler       *handlers.APIHandler
	ProductsHandler  *handlers.ProductsHandler
	ProjectsHandler  *handlers.ProjectsHandler
	EventsHandler    *handlers.EventsHandler
	PostsHandler     *handlers.PostsHandler
	ResourcesHandler *handlers.ResourcesHandler
	SearchHandler    *handlers.SearchHandler
	LeadsHandler     *handlers.LeadsHandler
}

// New creates the application, opening storage, seeding content, and
// wiring services and handlers
func New(ctx context.Context, config *common.Config) (*App, error) {
	logger := common.GetLogger()

	app := &App{
		Config: config,
		Logger: logger,
	}

	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.StorageManager = storageManager

	if config.Content.SeedDir != "" {
		if err := badger.LoadContentFromFiles(ctx, storageManager, config.Content.SeedDir, logger); err != nil {
			storageManager.Close()
			return nil, fmt.Errorf("failed to load seed content: %w", err)
		}
	}

	app.Transformer = transform.New(&config.Media)

	app.initServices()
	app.initHandlers()

	if err := app.SchedulerService.Start(ctx); err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	logger.Info().Str("environment", config.Environment).Msg("Application initialized")
	return app, nil
}

func (a *App) initServices() {
	a.ProductService = products.NewService(a.StorageManager.ProductStorage(), a.Transformer, &a.Config.Content, a.Logger)
	a.ProjectService = projects.NewService(a.StorageManager.ProjectStorage(), a.Transformer, &a.Config.Content, a.Logger)
	a.EventService = events.NewService(a.StorageManager.EventStorage(), a.Transformer, &a.Config.Content, a.Logger)
	a.PostService = posts.NewService(a.StorageManager.PostStorage(), a.Transformer, &a.Config.Content, a.Logger)
	a.ResourceService = resources.NewService(a.StorageManager.ResourceStorage(), a.Transformer, &a.Config.Content, a.Logger)
	a.SearchService = search.NewService(a.StorageManager, a.Transformer, &a.Config.Content, a.Logger)

	a.MailerService = mailer.NewService(&a.Config.Mailer, a.Logger)
	a.LeadService = leads.NewService(a.StorageManager.LeadStorage(), a.MailerService, &a.Config.Forms, a.Logger)

	a.SchedulerService = scheduler.NewService(&a.Config.Scheduler, a.EventService, a.Logger)
}

func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.ProductsHandler = handlers.NewProductsHandler(a.ProductService, a.Logger)
	a.ProjectsHandler = handlers.NewProjectsHandler(a.ProjectService, a.Logger)
	a.EventsHandler = handlers.NewEventsHandler(a.EventService, a.Logger)
	a.PostsHandler = handlers.NewPostsHandler(a.PostService, a.Logger)
	a.ResourcesHandler = handlers.NewResourcesHandler(a.ResourceService, a.Logger)
	a.SearchHandler = handlers.NewSearchHandler(a.SearchService, a.Logger)
	a.LeadsHandler = handlers.NewLeadsHandler(a.LeadService, a.Logger)
}

// Close stops background jobs and releases storage
func (a *App) Close() error {
	if a.SchedulerService != nil {
		a.SchedulerService.Stop()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
