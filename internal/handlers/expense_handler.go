package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "gastos/internal/errors"
	"gastos/internal/i18n"
	"gastos/internal/models"
	"gastos/internal/pagination"
	"gastos/internal/services"
	"gastos/internal/validator"
)

const dateOnlyLayout = "2006-01-02"

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the request payload for creating or updating an
// expense. Omitted fields keep their default (create) or stored value (update).
type ExpenseRequest struct {
	Merchant    *string         `json:"merchant" example:"Supermercado"`
	Date        *string         `json:"date" example:"2024-03-15"`
	Currency    *string         `json:"currency" example:"COP"`
	Amount      json.RawMessage `json:"amount" swaggertype:"number" example:"15000.50"`
	Description *string         `json:"description"`
}

// ExpenseListQuery holds the optional filters and pagination of an expense listing.
type ExpenseListQuery struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Currency string `form:"currency" binding:"omitempty,currency"`
	pagination.PageRequest
}

// RuleMessages maps failing query rules to message keys.
func (ExpenseListQuery) RuleMessages() map[string]string {
	return map[string]string{
		"Currency.currency": "currency must be COP or USD",
		"Page.min":          "page must be at least 1",
		"PageSize.min":      "page size must be between 1 and 100",
		"PageSize.max":      "page size must be between 1 and 100",
	}
}

func (r ExpenseRequest) toInput() (services.ExpenseInput, error) {
	in := services.ExpenseInput{
		Merchant:    r.Merchant,
		Description: r.Description,
	}
	if r.Currency != nil {
		currency := models.Currency(*r.Currency)
		in.Currency = &currency
	}
	if r.Date != nil {
		date, _, err := parseDate(*r.Date)
		if err != nil {
			return in, err
		}
		in.Date = &date
	}
	if len(r.Amount) > 0 && !bytes.Equal(r.Amount, []byte("null")) {
		var amount decimal.Decimal
		if err := amount.UnmarshalJSON(r.Amount); err != nil {
			return in, apperrors.WithMessage(apperrors.ErrValidation, "amount must be a number")
		}
		in.Amount = &amount
	}
	return in, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates. Plain dates are
// interpreted as midnight UTC and reported with dateOnly set.
func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(dateOnlyLayout, s); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, apperrors.WithMessage(apperrors.ErrValidation, "invalid date")
}

func (q ExpenseListQuery) filter() (services.ExpenseFilter, error) {
	var f services.ExpenseFilter
	if q.From != "" {
		from, _, err := parseDate(q.From)
		if err != nil {
			return f, err
		}
		f.FromDate = &from
	}
	if q.To != "" {
		to, dateOnly, err := parseDate(q.To)
		if err != nil {
			return f, err
		}
		if dateOnly {
			to = validator.EndOfDay(to)
		}
		f.ToDate = &to
	}
	if q.Currency != "" {
		currency := models.Currency(q.Currency)
		f.Currency = &currency
	}
	return f, nil
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Create an expense in a category. Date defaults to today, currency to COP and amount to 0.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace or category not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId}/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, c.Param("namespaceId"), c.Param("categoryId"), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionCreateExpense, models.ResourceExpense, expense.ID, c.ClientIP(),
		map[string]interface{}{
			"merchant": expense.Merchant,
			"amount":   expense.Amount.String(),
			"currency": expense.Currency,
		})

	c.JSON(http.StatusCreated, gin.H{
		"expense": expense,
		"message": localize(c, "expense created successfully"),
	})
}

// ListExpenses handles the retrieval of a category's expenses
// @Summary     List expenses
// @Description Get the expenses of a category, newest first. Pagination is applied only when page or page_size is given.
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       from query string false "Earliest date (YYYY-MM-DD or RFC 3339)"
// @Param       to query string false "Latest date (YYYY-MM-DD or RFC 3339)"
// @Param       currency query string false "Currency (COP or USD)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} map[string]interface{} "Expenses and a count message"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace or category not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ExpenseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, validator.Translate(err, query.RuleMessages()))
		return
	}
	filter, err := query.filter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(userID, c.Param("namespaceId"), c.Param("categoryId"), filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	body := gin.H{
		"expenses": result.Data,
		"message":  localize(c, i18n.FoundExpenses, int(result.TotalItems)),
	}
	if query.Enabled() {
		body["page"] = result.Page
		body["page_size"] = result.PageSize
		body["total_items"] = result.TotalItems
		body["total_pages"] = result.TotalPages
	}
	c.JSON(http.StatusOK, body)
}

// GetExpense handles the retrieval of a single expense
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       expenseId path string true "Expense ID"
// @Success     200 {object} map[string]interface{} "Expense"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense not reachable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId}/expenses/{expenseId} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(userID, c.Param("namespaceId"), c.Param("categoryId"), c.Param("expenseId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expense": expense,
		"message": localize(c, i18n.FoundExpenses, 1),
	})
}

// UpdateExpense handles partial updates of an expense
// @Summary     Update an expense
// @Description Merge the given fields into the stored expense and validate the result
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       expenseId path string true "Expense ID"
// @Param       request body ExpenseRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense not reachable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId}/expenses/{expenseId} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, c.Param("namespaceId"), c.Param("categoryId"), c.Param("expenseId"), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionUpdateExpense, models.ResourceExpense, expense.ID, c.ClientIP(),
		map[string]interface{}{
			"merchant": expense.Merchant,
			"amount":   expense.Amount.String(),
			"currency": expense.Currency,
		})

	c.JSON(http.StatusOK, gin.H{
		"expense": expense,
		"message": localize(c, "expense updated successfully"),
	})
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       expenseId path string true "Expense ID"
// @Success     200 {object} map[string]interface{} "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Expense not reachable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.DeleteExpense(userID, c.Param("namespaceId"), c.Param("categoryId"), c.Param("expenseId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionDeleteExpense, models.ResourceExpense, expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"expense": expense,
		"message": localize(c, "expense deleted successfully"),
	})
}
