//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/gateway"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.AamarPayClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Gateway
	cfg.BaseURL = srv.URL + "/"
	cfg.CallbackBaseURL = "https://hotel.example/"
	cfg.Timeout = time.Second
	return gateway.NewAamarPayClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func initiateRequest() commands.InitiateRequest {
	return commands.InitiateRequest{
		Amount:        booking.NewMoney(35000),
		TransactionID: "TXN1893456000000123",
		Customer: commands.Customer{
			Name:    "Rahim Uddin",
			Email:   "rahim@example.com",
			Phone:   "+8801700000000",
			Address: "House 12, Road 3",
			City:    "Dhaka",
		},
		Description: "Hotel booking TXN1893456000000123",
	}
}

func TestAamarPayClient_Initiate(t *testing.T) {
	t.Run("posts the checkout payload", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/jsonpost.php", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "aamarpaytest", body["store_id"])
			assert.Equal(t, "TXN1893456000000123", body["tran_id"])
			assert.Equal(t, "350.00", body["amount"])
			assert.Equal(t, "BDT", body["currency"])
			assert.Equal(t, "rahim@example.com", body["cus_email"])
			assert.Equal(t, "Bangladesh", body["cus_country"])
			assert.Equal(t, "json", body["type"])
			assert.Equal(t, "https://hotel.example/api/payments/success?transactionId=TXN1893456000000123", body["success_url"])
			assert.Equal(t, "https://hotel.example/api/payments/fail?transactionId=TXN1893456000000123", body["fail_url"])
			assert.Equal(t, "https://hotel.example/api/payments/cancel?transactionId=TXN1893456000000123", body["cancel_url"])

			_, _ = w.Write([]byte(`{"result":"true","payment_url":"https://sandbox.aamarpay.com/paynow.php?track=abc"}`))
		})

		res, err := client.Initiate(context.Background(), initiateRequest())

		require.NoError(t, err)
		assert.Equal(t, "https://sandbox.aamarpay.com/paynow.php?track=abc", res.PaymentURL)
	})

	tests := []struct {
		name  string
		reply func(w http.ResponseWriter)
		errIs error
	}{
		{
			name:  "no payment url",
			reply: func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"result":"false"}`)) },
			errIs: gateway.ErrGatewayRejected,
		},
		{
			name:  "client error status",
			reply: func(w http.ResponseWriter) { w.WriteHeader(http.StatusUnauthorized) },
			errIs: gateway.ErrGatewayRejected,
		},
		{
			name:  "server error status",
			reply: func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadGateway) },
			errIs: gateway.ErrGatewayTransport,
		},
		{
			name:  "garbage body",
			reply: func(w http.ResponseWriter) { _, _ = w.Write([]byte(`<html>maintenance</html>`)) },
			errIs: gateway.ErrGatewayResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) { tt.reply(w) })

			_, err := client.Initiate(context.Background(), initiateRequest())

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.errIs), "expected %v, got %v", tt.errIs, err)
		})
	}

	t.Run("context deadline", func(t *testing.T) {
		release := make(chan struct{})
		client := newClient(t, func(_ http.ResponseWriter, _ *http.Request) { <-release })
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := client.Initiate(ctx, initiateRequest())

		require.Error(t, err)
		assert.True(t, errs.Is(err, gateway.ErrGatewayTransport), "got %v", err)
	})
}

func TestAamarPayClient_Verify(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus commands.GatewayStatus
		wantAmount booking.Money
	}{
		{
			name:       "successful with string amount",
			body:       `{"pay_status":"Successful","amount":"350.00","payment_type":"bKash-bKash","status_title":"Successful Transaction"}`,
			wantStatus: commands.GatewayPaid,
			wantAmount: booking.NewMoney(35000),
		},
		{
			name:       "successful with numeric amount",
			body:       `{"pay_status":"Successful","amount":350,"payment_type":"VISA"}`,
			wantStatus: commands.GatewayPaid,
			wantAmount: booking.NewMoney(35000),
		},
		{
			name:       "failed",
			body:       `{"pay_status":"Failed","amount":null}`,
			wantStatus: commands.GatewayNotPaid,
		},
		{
			name:       "expired",
			body:       `{"pay_status":"Expired"}`,
			wantStatus: commands.GatewayNotPaid,
		},
		{
			name:       "still processing",
			body:       `{"pay_status":"Pending"}`,
			wantStatus: commands.GatewayPending,
		},
		{
			name:       "unknown transaction",
			body:       `{"pay_status":"","status_title":"Invalid Request ID"}`,
			wantStatus: commands.GatewayPending,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/v1/trxcheck/request.php", r.URL.Path)
				q, err := url.ParseQuery(r.URL.RawQuery)
				require.NoError(t, err)
				assert.Equal(t, "TXN1", q.Get("request_id"))
				assert.Equal(t, "aamarpaytest", q.Get("store_id"))
				assert.Equal(t, "json", q.Get("type"))
				_, _ = w.Write([]byte(tt.body))
			})

			res, err := client.Verify(context.Background(), "TXN1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantAmount, res.Amount)
		})
	}

	t.Run("paid with unreadable amount", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"pay_status":"Successful","amount":"three hundred"}`))
		})

		_, err := client.Verify(context.Background(), "TXN1")

		require.Error(t, err)
		assert.True(t, errs.Is(err, gateway.ErrGatewayResponse))
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		cfg := config.NewTestConfig().Gateway
		cfg.BaseURL = srv.URL
		client := gateway.NewAamarPayClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := client.Verify(context.Background(), "TXN1")

		require.Error(t, err)
		assert.True(t, errs.Is(err, gateway.ErrGatewayTransport))
	})
}
