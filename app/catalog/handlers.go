package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/bosko/app/api"
	"github.com/joefazee/bosko/app/auth"
)

// Handler serves the catalog store over HTTP.
type Handler struct {
	store       *Store
	phoneRegion string
}

func NewHandler(store *Store, phoneRegion string) *Handler {
	return &Handler{store: store, phoneRegion: phoneRegion}
}

func wantRefresh(c *gin.Context) bool {
	return c.Query("refresh") == "true"
}

func meta[T any](r Resource[T], count int) api.ResourceMeta {
	return api.ResourceMeta{Status: string(r.Status), Error: r.Error, Count: count}
}

// GetCategories handles GET /categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} api.Response
// @Router /api/v1/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	if wantRefresh(c) || h.store.GetCategories().Status != StatusSuccess {
		h.store.FetchCategories(c.Request.Context())
	}
	r := h.store.GetCategories()
	api.ResourceResponse(c, "Categories retrieved", r.Data, meta(r, len(r.Data)))
}

// GetServicesByCategory handles GET /categories/:id/services
// @Summary List a category's services
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} api.Response
// @Router /api/v1/categories/{id}/services [get]
func (h *Handler) GetServicesByCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if wantRefresh(c) || h.store.GetServicesStatus(categoryID) != StatusSuccess {
		h.store.FetchServicesByCategory(c.Request.Context(), categoryID)
	}
	r := h.store.GetServicesResource(categoryID)
	services := h.store.GetServicesForCategory(categoryID)
	api.ResourceResponse(c, "Services retrieved", ToServiceResponseList(services), meta(r, len(services)))
}

// GetService handles GET /services/:id
// @Summary Get a cached service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/v1/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	svc, ok := h.store.GetServiceByID(c.Param("id"))
	if !ok {
		api.NotFoundResponse(c, "Service")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Service retrieved", ToServiceResponse(svc))
}

// GetServiceReviews handles GET /services/:id/reviews
// @Summary List a service's reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Service ID"
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} api.Response
// @Router /api/v1/services/{id}/reviews [get]
func (h *Handler) GetServiceReviews(c *gin.Context) {
	serviceID := c.Param("id")
	if wantRefresh(c) || h.store.GetReviewStatus(serviceID) != StatusSuccess {
		h.store.FetchServiceReviews(c.Request.Context(), serviceID)
	}
	r := h.store.GetReviewsResource(serviceID)
	api.ResourceResponse(c, "Reviews retrieved", r.Data, meta(r, len(r.Data)))
}

// GetProvider handles GET /providers/:id
// @Summary Get a provider profile
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} api.Response
// @Failure 502 {object} api.Response
// @Router /api/v1/providers/{id} [get]
func (h *Handler) GetProvider(c *gin.Context) {
	providerID := c.Param("id")
	provider := h.store.FetchProviderProfile(c.Request.Context(), providerID)
	r := h.store.GetProviderResource(providerID)
	if provider == nil {
		if r.Status == StatusError {
			api.BadGatewayResponse(c, r.Error)
			return
		}
		api.NotFoundResponse(c, "Provider")
		return
	}
	api.ResourceResponse(c, "Provider retrieved", ToProviderResponse(provider, h.phoneRegion), meta(r, 0))
}

// GetProviderAggregate handles GET /providers/:id/aggregate
// @Summary Get a provider's rating summary
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Param hydrate query bool false "Fetch reviews of every cached service first"
// @Success 200 {object} api.Response
// @Router /api/v1/providers/{id}/aggregate [get]
func (h *Handler) GetProviderAggregate(c *gin.Context) {
	providerID := c.Param("id")
	if c.Query("hydrate") == "true" {
		h.store.FetchProviderReviews(c.Request.Context(), providerID)
	}
	api.SuccessResponse(c, http.StatusOK, "Aggregate computed", h.store.GetProviderAggregate(providerID))
}

// GetEligibility handles GET /services/:id/eligibility
// @Summary Check whether the caller may review a service
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} api.Response
// @Failure 401 {object} api.Response
// @Router /api/v1/services/{id}/eligibility [get]
func (h *Handler) GetEligibility(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}
	serviceID := c.Param("id")
	eligible := h.store.IsUserEligibleForReview(c.Request.Context(), serviceID, user.ID)
	api.SuccessResponse(c, http.StatusOK, "Eligibility resolved", EligibilityResponse{
		ServiceID: serviceID,
		UserID:    user.ID,
		Eligible:  eligible,
	})
}

// CreateReview handles POST /services/:id/reviews
// @Summary Review a purchased service
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param review body CreateReviewRequest true "Review"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 403 {object} api.Response
// @Failure 502 {object} api.Response
// @Router /api/v1/services/{id}/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	review, err := h.store.AddReviewWithRating(c.Request.Context(), ReviewInput{
		ServiceID: c.Param("id"),
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		api.WriteError(c, err)
		return
	}
	api.CreatedResponse(c, "Review created", review)
}
