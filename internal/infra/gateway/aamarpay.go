package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
)

var (
	ErrGatewayRejected  = errs.New("gateway rejected the request")
	ErrGatewayTransport = errs.New("gateway request failed")
	ErrGatewayResponse  = errs.New("gateway returned an unreadable response")
)

const maxResponseBytes = 1 << 20

// AamarPayClient talks to the aamarPay hosted checkout API
type AamarPayClient struct {
	baseURL         string
	storeID         string
	signatureKey    string
	currency        string
	country         string
	callbackBaseURL string
	httpClient      *http.Client
	logger          *slog.Logger
}

type initiatePayload struct {
	StoreID      string `json:"store_id"`
	SignatureKey string `json:"signature_key"`
	TranID       string `json:"tran_id"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Desc         string `json:"desc"`
	CusName      string `json:"cus_name"`
	CusEmail     string `json:"cus_email"`
	CusPhone     string `json:"cus_phone"`
	CusAdd1      string `json:"cus_add1"`
	CusCity      string `json:"cus_city"`
	CusCountry   string `json:"cus_country"`
	SuccessURL   string `json:"success_url"`
	FailURL      string `json:"fail_url"`
	CancelURL    string `json:"cancel_url"`
	Type         string `json:"type"`
}

type initiateResponse struct {
	Result     string `json:"result"`
	PaymentURL string `json:"payment_url"`
}

type verifyResponse struct {
	PayStatus   string     `json:"pay_status"`
	Amount      flexAmount `json:"amount"`
	PaymentType string     `json:"payment_type"`
	StatusTitle string     `json:"status_title"`
}

// flexAmount accepts both "350.00" and 350.
type flexAmount string

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" {
		s = ""
	}
	*a = flexAmount(s)
	return nil
}

func NewAamarPayClient(cfg config.GatewayConfig, logger *slog.Logger) *AamarPayClient {
	return &AamarPayClient{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		storeID:         cfg.StoreID,
		signatureKey:    cfg.SignatureKey,
		currency:        cfg.Currency,
		country:         cfg.Country,
		callbackBaseURL: strings.TrimRight(cfg.CallbackBaseURL, "/"),
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		logger:          logger,
	}
}

func (c *AamarPayClient) Initiate(ctx context.Context, req commands.InitiateRequest) (commands.InitiateResult, error) {
	payload := initiatePayload{
		StoreID:      c.storeID,
		SignatureKey: c.signatureKey,
		TranID:       req.TransactionID,
		Amount:       req.Amount.String(),
		Currency:     c.currency,
		Desc:         req.Description,
		CusName:      req.Customer.Name,
		CusEmail:     req.Customer.Email,
		CusPhone:     req.Customer.Phone,
		CusAdd1:      req.Customer.Address,
		CusCity:      req.Customer.City,
		CusCountry:   c.country,
		SuccessURL:   c.callbackURL("success", req.TransactionID),
		FailURL:      c.callbackURL("fail", req.TransactionID),
		CancelURL:    c.callbackURL("cancel", req.TransactionID),
		Type:         "json",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return commands.InitiateResult{}, errs.Wrap(err, "failed to marshal initiate payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jsonpost.php", bytes.NewReader(body))
	if err != nil {
		return commands.InitiateResult{}, errs.Wrap(err, "failed to create initiate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp initiateResponse
	if err := c.do(httpReq, &resp); err != nil {
		return commands.InitiateResult{}, err
	}

	if resp.PaymentURL == "" {
		return commands.InitiateResult{}, errs.Wrapf(ErrGatewayRejected, "initiate result=%q", resp.Result)
	}
	if resp.Result != "" && resp.Result != "true" {
		c.logger.Warn("unexpected initiate result", "transaction_id", req.TransactionID, "result", resp.Result)
	}

	return commands.InitiateResult{PaymentURL: resp.PaymentURL}, nil
}

func (c *AamarPayClient) Verify(ctx context.Context, transactionID string) (commands.VerifyResult, error) {
	q := url.Values{}
	q.Set("request_id", transactionID)
	q.Set("store_id", c.storeID)
	q.Set("signature_key", c.signatureKey)
	q.Set("type", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/trxcheck/request.php?"+q.Encode(), nil)
	if err != nil {
		return commands.VerifyResult{}, errs.Wrap(err, "failed to create verify request")
	}

	var resp verifyResponse
	if err := c.do(httpReq, &resp); err != nil {
		return commands.VerifyResult{}, err
	}

	result := commands.VerifyResult{
		Status:      mapPayStatus(resp.PayStatus),
		PaymentType: resp.PaymentType,
		Title:       resp.StatusTitle,
	}
	if result.Status == commands.GatewayPaid {
		amount, err := booking.ParseMoney(string(resp.Amount))
		if err != nil {
			return commands.VerifyResult{}, errs.Mark(errs.Wrapf(err, "amount %q", resp.Amount), ErrGatewayResponse)
		}
		result.Amount = amount
	}
	return result, nil
}

func (c *AamarPayClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrGatewayTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Mark(err, ErrGatewayTransport)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return errs.Mark(errs.Newf("status %d", resp.StatusCode), ErrGatewayTransport)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errs.Wrapf(ErrGatewayRejected, "status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(err, ErrGatewayResponse)
	}
	return nil
}

func (c *AamarPayClient) callbackURL(outcome, transactionID string) string {
	return fmt.Sprintf("%s/api/payments/%s?transactionId=%s", c.callbackBaseURL, outcome, url.QueryEscape(transactionID))
}

func mapPayStatus(status string) commands.GatewayStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "successful":
		return commands.GatewayPaid
	case "failed", "cancelled", "expired":
		return commands.GatewayNotPaid
	default:
		return commands.GatewayPending
	}
}
