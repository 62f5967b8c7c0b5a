package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Londondannyboy/thechief-quest/internal/llms"
)

// SetupRoutes registers the page routes. metricsHandler may be nil.
func SetupRoutes(router *gin.Engine, handler *Handler, metricsHandler http.Handler) {
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	router.GET("/llms.txt", llms.Handler(time.Now))
	router.GET("/sitemap.xml", handler.Sitemap)

	router.GET("/", handler.Home)
	router.GET("/locations", handler.LocationsIndex)
	router.GET("/locations/:slug", handler.Location)
	router.GET("/industries", handler.IndustriesIndex)
	router.GET("/industries/:slug", handler.Industry)
	router.GET("/agencies", handler.Agencies)
	router.GET("/agencies/:slug", handler.Agency)
	router.GET("/faq", handler.FAQ)
	router.GET("/faq/:slug", handler.FAQEntry)
	router.GET("/jobs", handler.Jobs)
	router.GET("/jobs/:slug", handler.Job)
	router.GET("/salary-guide", handler.SalaryGuide)

	// Articles live at the top level; static routes above take precedence.
	router.GET("/:slug", handler.Article)
	router.NoRoute(handler.NotFound)
}
