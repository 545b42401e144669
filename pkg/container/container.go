package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/cache"

	"library-catalog/internal/domains/author"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	"library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	"library-catalog/internal/domains/bookinstance"
	instanceHandler "library-catalog/internal/domains/bookinstance/handler"
	instanceRepo "library-catalog/internal/domains/bookinstance/repository"
	instanceService "library-catalog/internal/domains/bookinstance/service"

	"library-catalog/internal/domains/genre"
	genreHandler "library-catalog/internal/domains/genre/handler"
	genreRepo "library-catalog/internal/domains/genre/repository"
	genreService "library-catalog/internal/domains/genre/service"

	"library-catalog/internal/domains/catalog"
	catalogHandler "library-catalog/internal/domains/catalog/handler"
	catalogService "library-catalog/internal/domains/catalog/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo       author.Repository
	BookRepo         book.Repository
	BookInstanceRepo bookinstance.Repository
	GenreRepo        genre.Repository

	AuthorService       author.Service
	BookService         book.Service
	BookInstanceService bookinstance.Service
	GenreService        genre.Service
	CatalogService      catalog.Service

	AuthorHandler       *authorHandler.AuthorHandler
	BookHandler         *bookHandler.BookHandler
	BookInstanceHandler *instanceHandler.BookInstanceHandler
	GenreHandler        *genreHandler.GenreHandler
	CatalogHandler      *catalogHandler.CatalogHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The cache is an accelerator, not a dependency. Reads fall
		// through to Postgres when Redis is away.
		log.Warn().Err(err).Msg("redis unavailable, continuing without warm cache")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.BookInstanceRepo = instanceRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.BookInstanceService = instanceService.NewBookInstanceService(c.BookInstanceRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.CatalogService = catalogService.NewCatalogService(
		c.BookRepo,
		c.BookInstanceRepo,
		c.AuthorRepo,
		c.GenreRepo,
	)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.BookInstanceHandler = instanceHandler.NewBookInstanceHandler(c.BookInstanceService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
}

// Cleanup releases infrastructure resources. Called from the server's
// graceful shutdown path.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	log.Info().Msg("container resources released")
}
