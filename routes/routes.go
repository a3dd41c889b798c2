package routes

import (
	"net/http"

	"miyako/auth"
	"miyako/catalog"
	"miyako/journey"
	"miyako/middleware"
	"miyako/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/attractionpic/*filepath", http.Dir("static/attractionpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/catalog/attractions", ratelim.RateLimit(catalog.GetAttractions))
	router.GET("/api/catalog/attractions/:attractionid", ratelim.RateLimit(catalog.GetAttraction))
	router.GET("/api/catalog/categories", ratelim.RateLimit(catalog.GetCategories))

	router.POST("/api/catalog/attractions", middleware.Authenticate(catalog.CreateAttraction))
	router.PUT("/api/catalog/attractions/:attractionid", middleware.Authenticate(catalog.EditAttraction))
	router.DELETE("/api/catalog/attractions/:attractionid", middleware.Authenticate(catalog.DeleteAttraction))
	router.PUT("/api/catalog/attractions/:attractionid/banner", middleware.Authenticate(catalog.EditAttractionBanner))
}

func AddJourneyRoutes(router *httprouter.Router, h *journey.Handlers) {
	router.POST("/api/journey/sessions", ratelim.RateLimit(h.CreateSession))
	router.GET("/api/journey/sessions/:sessionid", h.GetSession)
	router.PUT("/api/journey/sessions/:sessionid/trip", h.SetTripDetails)
	router.POST("/api/journey/sessions/:sessionid/visits", h.AddVisit)
	router.DELETE("/api/journey/sessions/:sessionid/visits/:attractionid/:date", h.RemoveVisit)

	router.POST("/api/journey/sessions/:sessionid/checklist", h.AddChecklistItem)
	router.PUT("/api/journey/sessions/:sessionid/checklist/:itemid/toggle", h.ToggleChecklistItem)
	router.DELETE("/api/journey/sessions/:sessionid/checklist/:itemid", h.RemoveChecklistItem)
	router.POST("/api/journey/sessions/:sessionid/checklist/reset", h.ResetChecklist)

	router.GET("/api/journey/sessions/:sessionid/export", ratelim.RateLimit(h.ExportPDF))
	router.GET("/ws/journey/:sessionid", h.HandleWS)
}
