package managed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/bosko/app/api"
	"github.com/joefazee/bosko/app/auth"
	"github.com/joefazee/bosko/models"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) workflow(c *gin.Context) (*Workflow, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return nil, false
	}
	return h.registry.For(user, auth.AccessToken(c)), true
}

// ListMyServices handles GET /me/services
// @Summary List the caller's services
// @Tags managed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/v1/me/services [get]
func (h *Handler) ListMyServices(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	services, err := w.LoadMyServices(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	api.SuccessResponseWithMeta(c, http.StatusOK, "Services retrieved", ToManagedServiceResponseList(services), PlanUsage{
		Tier:  user.Plan.Tier,
		Used:  len(services),
		Limit: user.Plan.ServiceLimit(),
	})
}

// CreateMyService handles POST /me/services
// @Summary Publish a service
// @Tags managed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param service body models.ManagedServiceInput true "Service"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 403 {object} api.Response
// @Router /api/v1/me/services [post]
func (h *Handler) CreateMyService(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	var input models.ManagedServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if !w.Loaded() {
		if _, err := w.LoadMyServices(c.Request.Context()); err != nil {
			api.WriteError(c, err)
			return
		}
	}
	created, err := w.AddService(c.Request.Context(), &input)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	api.CreatedResponse(c, "Service created", ToManagedServiceResponse(*created))
}

// UpdateMyService handles PATCH /me/services/:id
// @Summary Edit one of the caller's services
// @Tags managed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body models.ManagedServiceInput true "Fields to change"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/v1/me/services/{id} [patch]
func (h *Handler) UpdateMyService(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	var input models.ManagedServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	updated, err := w.EditService(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	api.UpdatedResponse(c, "Service updated", ToManagedServiceResponse(*updated))
}

// DeleteMyService handles DELETE /me/services/:id
// @Summary Remove one of the caller's services
// @Tags managed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/v1/me/services/{id} [delete]
func (h *Handler) DeleteMyService(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	if err := w.RemoveService(c.Request.Context(), c.Param("id")); err != nil {
		api.WriteError(c, err)
		return
	}
	api.DeletedResponse(c, "Service deleted")
}
