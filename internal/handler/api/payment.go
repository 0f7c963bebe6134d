package api

import (
	"log/slog"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/page"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingTransactionID = errs.New("transactionId query parameter is required")

type PaymentHandler struct {
	settlement commands.SettlementCommands
	q          queries.PaymentQueries
}

func NewPaymentHandler(settlement commands.SettlementCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{settlement: settlement, q: q}
}

// @Summary Payment success callback
// @Description Gateway redirect after a successful payment; the outcome is re-verified before it is applied
// @Tags payments
// @Produce html
// @Param transactionId query string true "Transaction ID"
// @Success 200 {string} string "HTML page"
// @Router /api/payments/success [post]
func (h *PaymentHandler) Success(c *gin.Context) {
	h.settle(c, commands.OutcomeSuccess, page.VariantFailed)
}

// @Summary Payment failure callback
// @Tags payments
// @Produce html
// @Param transactionId query string true "Transaction ID"
// @Success 200 {string} string "HTML page"
// @Router /api/payments/fail [post]
func (h *PaymentHandler) Fail(c *gin.Context) {
	h.settle(c, commands.OutcomeFailure, page.VariantFailed)
}

// @Summary Payment cancel callback
// @Tags payments
// @Produce html
// @Param transactionId query string true "Transaction ID"
// @Success 200 {string} string "HTML page"
// @Router /api/payments/cancel [get]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.settle(c, commands.OutcomeCancelled, page.VariantCancelled)
}

// settle always answers with an outcome page; onError is the variant shown
// when the callback could not be applied.
func (h *PaymentHandler) settle(c *gin.Context, claimed commands.Outcome, onError page.Variant) {
	txnID := c.Query("transactionId")
	if txnID == "" {
		_ = c.Error(errMissingTransactionID)
		h.render(c, http.StatusBadRequest, page.Outcome{Variant: onError})
		return
	}

	if _, err := h.settlement.Reconcile(c.Request.Context(), txnID, claimed); err != nil {
		status, _ := statusFor(err)
		slog.Error("payment callback failed",
			"transaction_id", txnID,
			"outcome", string(claimed),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10))
		_ = c.Error(err)
		h.render(c, status, page.Outcome{Variant: onError, TransactionID: txnID})
		return
	}

	h.render(c, http.StatusOK, page.Outcome{Variant: variantFor(claimed), TransactionID: txnID})
}

func (h *PaymentHandler) render(c *gin.Context, status int, o page.Outcome) {
	html, err := page.Render(o)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Data(status, "text/html; charset=utf-8", html)
}

func variantFor(o commands.Outcome) page.Variant {
	switch o {
	case commands.OutcomeSuccess:
		return page.VariantSuccess
	case commands.OutcomeCancelled:
		return page.VariantCancelled
	default:
		return page.VariantFailed
	}
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Payment status, or all"
// @Param searchTerm query string false "Transaction id, guest name or email"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.PaymentResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var query reqdto.ListPaymentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, meta, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Paged(http.StatusOK, "", meta, resdto.FromPaymentViews(views)))
}

// @Summary List my payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.PaymentResponse}
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/payments [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(http.StatusOK, "", resdto.FromPaymentViews(views)))
}
