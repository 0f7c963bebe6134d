//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSettlement *commandsmock.MockSettlementCommands
	mockQueries    *queriesmock.MockPaymentQueries
	handler        *api.PaymentHandler
	guestID        uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockSettlement, s.mockQueries)
	s.guestID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "statusCode": 401, "message": "Unauthorized"})
			return
		}
		c.Set("user_id", s.guestID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/payments/success", s.handler.Success)
	s.router.POST("/payments/fail", s.handler.Fail)
	s.router.GET("/payments/cancel", s.handler.Cancel)
	s.router.GET("/payments", authMiddleware, s.handler.List)
	s.router.GET("/users/me/payments", authMiddleware, s.handler.ListMine)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestCallbacks
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCallbacks() {
	const txnID = "TXN1893456000000123"

	tests := []struct {
		name         string
		method       string
		path         string
		txnID        string
		outcome      commands.Outcome
		settleErr    error
		expectCode   int
		expectInBody []string
		notInBody    []string
	}{
		{
			name:         "success page",
			method:       http.MethodPost,
			path:         "/payments/success?transactionId=" + txnID,
			outcome:      commands.OutcomeSuccess,
			expectCode:   http.StatusOK,
			expectInBody: []string{"Payment Successful", txnID},
		},
		{
			name:         "failure page",
			method:       http.MethodPost,
			path:         "/payments/fail?transactionId=" + txnID,
			outcome:      commands.OutcomeFailure,
			expectCode:   http.StatusOK,
			expectInBody: []string{"Payment Failed"},
			notInBody:    []string{txnID},
		},
		{
			name:         "cancel page",
			method:       http.MethodGet,
			path:         "/payments/cancel?transactionId=" + txnID,
			outcome:      commands.OutcomeCancelled,
			expectCode:   http.StatusOK,
			expectInBody: []string{"Payment Cancelled"},
		},
		{
			name:         "forged success shows the failure page",
			method:       http.MethodPost,
			path:         "/payments/success?transactionId=" + txnID,
			outcome:      commands.OutcomeSuccess,
			settleErr:    commands.ErrVerificationMismatch,
			expectCode:   http.StatusConflict,
			expectInBody: []string{"Payment Failed"},
			notInBody:    []string{"Payment Successful"},
		},
		{
			name:         "unknown transaction",
			method:       http.MethodPost,
			path:         "/payments/fail?transactionId=TXN-NOPE",
			txnID:        "TXN-NOPE",
			outcome:      commands.OutcomeFailure,
			settleErr:    commands.ErrPaymentNotFound,
			expectCode:   http.StatusNotFound,
			expectInBody: []string{"Payment Failed"},
		},
		{
			name:         "gateway unreachable",
			method:       http.MethodPost,
			path:         "/payments/success?transactionId=" + txnID,
			outcome:      commands.OutcomeSuccess,
			settleErr:    commands.ErrVerificationUnavailable,
			expectCode:   http.StatusServiceUnavailable,
			expectInBody: []string{"Payment Failed"},
		},
		{
			name:         "late success after failure",
			method:       http.MethodPost,
			path:         "/payments/success?transactionId=" + txnID,
			outcome:      commands.OutcomeSuccess,
			settleErr:    &payment.TransitionError{From: payment.StatusFailed, To: payment.StatusCompleted},
			expectCode:   http.StatusBadRequest,
			expectInBody: []string{"Payment Failed"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			expectedTxn := txnID
			if tt.txnID != "" {
				expectedTxn = tt.txnID
			}
			if tt.settleErr != nil {
				s.mockSettlement.EXPECT().Reconcile(gomock.Any(), expectedTxn, tt.outcome).Return(nil, tt.settleErr).Times(1)
			} else {
				s.mockSettlement.EXPECT().Reconcile(gomock.Any(), expectedTxn, tt.outcome).Return(&commands.ReconcileResult{Applied: true}, nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, tt.method, tt.path, nil, "")

			s.Equal(tt.expectCode, rec.Code)
			s.Contains(rec.Header().Get("Content-Type"), "text/html")
			for _, want := range tt.expectInBody {
				s.Contains(rec.Body.String(), want)
			}
			for _, unwanted := range tt.notInBody {
				s.NotContains(rec.Body.String(), unwanted)
			}
		})
	}

	s.Run("missing transaction id never reaches settlement", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/success", nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Payment Failed")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *PaymentHandlerTestSuite) TestList() {
	views := []*queries.PaymentView{builder.NewBookingBuilder().BuildPaymentView(payment.StatusCompleted)}

	s.Run("success", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(views, queries.PageMeta{Page: 1, Limit: 10, Total: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "token")

		var body struct {
			Meta queries.PageMeta          `json:"meta"`
			Data []resdto.PaymentResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.Meta.Total)
		s.Require().Len(body.Data, 1)
		s.Equal("200.00", body.Data[0].Amount)
		s.Equal("completed", body.Data[0].Status)
	})

	s.Run("success: passes status and search filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.PaymentFilter) ([]*queries.PaymentView, queries.PageMeta, error) {
				s.Require().NotNil(f.Status)
				s.Equal("failed", *f.Status)
				s.Require().NotNil(f.Search)
				s.Equal("karim@example.com", *f.Search)
				s.Equal(3, *f.Page)
				s.Nil(f.Limit)
				return views, queries.PageMeta{Page: 3, Limit: 10, Total: 21}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments?status=failed&searchTerm=karim%40example.com&page=3", nil, "token")

		var body struct {
			Meta queries.PageMeta          `json:"meta"`
			Data []resdto.PaymentResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(21), body.Meta.Total)
	})

	s.Run("error: bad page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments?page=0", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *PaymentHandlerTestSuite) TestListMine() {
	views := []*queries.PaymentView{builder.NewBookingBuilder().WithUserID(s.guestID).BuildPaymentView(payment.StatusPending)}
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.guestID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/payments", nil, "token")

	var body []resdto.PaymentResponse
	httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(s.guestID.String(), body[0].UserID)
}
