package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

// SetupRouter wires the catalog routes. The URL layout mirrors the pages it
// serves: list routes are plural, record routes are singular with the id in
// the path, and every form has a GET to render it and a POST to submit it.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupAuthorRoutes(catalog, c)
		setupBookRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
	}

	return router
}

func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/authors", c.AuthorHandler.List)

	author := catalog.Group("/author")
	{
		author.GET("/create", c.AuthorHandler.CreateForm)
		author.POST("/create", c.AuthorHandler.Create)
		author.GET("/:id", c.AuthorHandler.Detail)
		author.GET("/:id/update", c.AuthorHandler.UpdateForm)
		author.POST("/:id/update", c.AuthorHandler.Update)
		author.GET("/:id/delete", c.AuthorHandler.DeleteForm)
		author.POST("/:id/delete", c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/books", c.BookHandler.List)

	book := catalog.Group("/book")
	{
		book.GET("/create", c.BookHandler.CreateForm)
		book.POST("/create", c.BookHandler.Create)
		book.GET("/:id", c.BookHandler.Detail)
		book.GET("/:id/update", c.BookHandler.UpdateForm)
		book.POST("/:id/update", c.BookHandler.Update)
		book.GET("/:id/delete", c.BookHandler.DeleteForm)
		book.POST("/:id/delete", c.BookHandler.Delete)
	}
}

func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/bookinstances", c.BookInstanceHandler.List)

	instance := catalog.Group("/bookinstance")
	{
		instance.GET("/create", c.BookInstanceHandler.CreateForm)
		instance.POST("/create", c.BookInstanceHandler.Create)
		instance.GET("/:id", c.BookInstanceHandler.Detail)
		instance.GET("/:id/update", c.BookInstanceHandler.UpdateForm)
		instance.POST("/:id/update", c.BookInstanceHandler.Update)
		instance.GET("/:id/delete", c.BookInstanceHandler.DeleteForm)
		instance.POST("/:id/delete", c.BookInstanceHandler.Delete)
	}
}

func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/genres", c.GenreHandler.List)

	genre := catalog.Group("/genre")
	{
		genre.GET("/create", c.GenreHandler.CreateForm)
		genre.POST("/create", c.GenreHandler.Create)
		genre.GET("/:id", c.GenreHandler.Detail)
		genre.GET("/:id/update", c.GenreHandler.UpdateForm)
		genre.POST("/:id/update", c.GenreHandler.Update)
		genre.GET("/:id/delete", c.GenreHandler.DeleteForm)
		genre.POST("/:id/delete", c.GenreHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
