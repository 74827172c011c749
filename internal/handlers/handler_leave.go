package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

// leaveHandler handles HTTP requests for the leave request workflow.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

// newLeaveHandler creates a new leaveHandler.
func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

// registerLeaveRoutes registers all leave-related routes. The approval
// transitions carry a second role gate in the service, so the route
// middleware is the fast path, not the only one.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leaves")
	{
		leaves.GET("", h.listLeaves)
		leaves.POST("", h.submitLeave)
		leaves.PUT("/:id/approve", middleware.RequireManager(), h.approveLeave)
		leaves.PUT("/:id/reject", middleware.RequireManager(), h.rejectLeave)
	}
}

// listLeaves godoc
// @Summary List leave requests
// @Description Retrieves leave requests, newest first, with employee and approver display names.
// @Tags leaves
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.LeaveResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /leaves [get]
func (h *leaveHandler) listLeaves(c *gin.Context) {
	var params dto.ListLeavesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid query parameters"))
		return
	}

	leaves, err := h.leaveService.ListLeaves(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list leave requests")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListLeaveResponse(leaves))
}

// submitLeave godoc
// @Summary Submit a leave request
// @Description Creates a leave request in the pending state for the authenticated user.
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave request details"
// @Success 201 {object} dto.Envelope{data=dto.LeaveResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /leaves [post]
func (h *leaveHandler) submitLeave(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request body: "+err.Error()))
		return
	}

	leave, err := h.leaveService.SubmitLeave(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to submit leave request")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToLeaveResponse(leave))
}

// approveLeave godoc
// @Summary Approve a leave request
// @Description Sets the leave request to approved and notifies the employee. Manager role required.
// @Tags leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.Envelope{data=dto.LeaveResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /leaves/{id}/approve [put]
func (h *leaveHandler) approveLeave(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	leave, err := h.leaveService.ApproveLeave(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err, "Leave request not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToLeaveResponse(leave))
}

// rejectLeave godoc
// @Summary Reject a leave request
// @Description Sets the leave request to rejected and notifies the employee. Manager role required.
// @Tags leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.Envelope{data=dto.LeaveResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /leaves/{id}/reject [put]
func (h *leaveHandler) rejectLeave(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	leave, err := h.leaveService.RejectLeave(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err, "Leave request not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToLeaveResponse(leave))
}
