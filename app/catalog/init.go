package catalog

import (
	"github.com/gin-gonic/gin"
)

// Dependencies represent the dependencies needed for the catalog module
type Dependencies struct {
	Store       *Store
	PhoneRegion string
}

// Init mounts the public browse routes.
func Init(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Store, deps.PhoneRegion)

	r.GET("/categories", handler.GetCategories)
	r.GET("/categories/:id/services", handler.GetServicesByCategory)

	services := r.Group("/services")
	services.GET("/:id", handler.GetService)
	services.GET("/:id/reviews", handler.GetServiceReviews)

	providers := r.Group("/providers")
	providers.GET("/:id", handler.GetProvider)
	providers.GET("/:id/aggregate", handler.GetProviderAggregate)
}

// InitWithAuth mounts the routes that act on behalf of the caller. r must
// already carry the auth middleware.
func InitWithAuth(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Store, deps.PhoneRegion)

	services := r.Group("/services")
	services.GET("/:id/eligibility", handler.GetEligibility)
	services.POST("/:id/reviews", handler.CreateReview)
}
