package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		// Role assignment is gated twice: the route middleware gives the
		// fast 403, the service check holds the invariant.
		users.PUT("/:id/role", middleware.RequireAdmin(), h.setUserRole)
	}
}

// listUsers godoc
// @Summary List users
// @Description Retrieves the team directory, paginated.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.UserResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid query parameters"))
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}

// setUserRole godoc
// @Summary Assign a user's role
// @Description Sets the role of an existing user. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *userHandler) setUserRole(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.userService.SetUserRole(c.Request.Context(), principal, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}
