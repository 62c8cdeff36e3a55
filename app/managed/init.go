package managed

import (
	"github.com/gin-gonic/gin"
)

// Dependencies represent the dependencies needed for the managed module
type Dependencies struct {
	Registry *Registry
}

// InitWithAuth mounts /me/services. r must already carry the auth middleware.
func InitWithAuth(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Registry)

	me := r.Group("/me/services")
	me.GET("", handler.ListMyServices)
	me.POST("", handler.CreateMyService)
	me.PATCH("/:id", handler.UpdateMyService)
	me.DELETE("/:id", handler.DeleteMyService)
}
