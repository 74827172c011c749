package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

// expenseHandler handles HTTP requests for the expense claim workflow.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers all expense-related routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.submitExpense)
		expenses.PUT("/:id/approve", middleware.RequireManager(), h.approveExpense)
		expenses.PUT("/:id/reject", middleware.RequireManager(), h.rejectExpense)
	}
}

// listExpenses godoc
// @Summary List expense claims
// @Description Retrieves expense claims, newest first, with employee and approver display names.
// @Tags expenses
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.ExpenseResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid query parameters"))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list expense claims")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// submitExpense godoc
// @Summary Submit an expense claim
// @Description Creates an expense claim in the pending state for the authenticated user.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense claim details"
// @Success 201 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) submitExpense(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request body: "+err.Error()))
		return
	}

	expense, err := h.expenseService.SubmitExpense(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to submit expense claim")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToExpenseResponse(expense))
}

// approveExpense godoc
// @Summary Approve an expense claim
// @Description Sets the expense claim to approved and notifies the employee. Manager role required.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /expenses/{id}/approve [put]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.ApproveExpense(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err, "Expense claim not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToExpenseResponse(expense))
}

// rejectExpense godoc
// @Summary Reject an expense claim
// @Description Sets the expense claim to rejected and notifies the employee. Manager role required.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /expenses/{id}/reject [put]
func (h *expenseHandler) rejectExpense(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.RejectExpense(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err, "Expense claim not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToExpenseResponse(expense))
}
