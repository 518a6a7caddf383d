package httpapi

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(opts Options) *gin.Engine {
	h := NewHandler(opts)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.log))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(CORS(opts.AllowedOrigins))
	}

	r.GET("/healthcheck", h.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/moods", h.ListMoods)
		api.POST("/moods", h.LogMood)
		api.GET("/moods/:id", h.GetMood)
		api.DELETE("/moods/:id", h.DeleteMood)

		api.GET("/insights", h.ListInsights)
		api.POST("/insights", h.CreateInsight)
		api.DELETE("/insights/:id", h.DeleteInsight)

		api.GET("/entries", h.ListEntries)
		api.POST("/entries", h.CreateEntry)
		api.GET("/entries/:id", h.GetEntry)
		api.PUT("/entries/:id", h.UpdateEntry)
		api.DELETE("/entries/:id", h.DeleteEntry)

		api.GET("/breathing", h.ListBreathingSessions)
		api.POST("/breathing", h.LogBreathingSession)
		api.DELETE("/breathing/:id", h.DeleteBreathingSession)

		api.GET("/quotes/mood", h.GetMoodQuote)

		api.GET("/views", h.GetViews)
		api.GET("/views/latest", h.GetLatestViews)
	}

	return r
}
