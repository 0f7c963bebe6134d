//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// GatewayStub imitates the aamarPay checkout and transaction check endpoints.
type GatewayStub struct {
	server *httptest.Server

	mu       sync.Mutex
	amounts  map[string]string
	statuses map[string]string
	failNext bool
}

func newGatewayStub(t *testing.T) *GatewayStub {
	t.Helper()
	g := &GatewayStub{
		amounts:  make(map[string]string),
		statuses: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /jsonpost.php", g.initiate)
	mux.HandleFunc("GET /api/v1/trxcheck/request.php", g.verify)
	g.server = httptest.NewServer(mux)
	t.Cleanup(g.server.Close)
	return g
}

func (g *GatewayStub) URL() string { return g.server.URL }

// Settle sets what the transaction check reports for txID ("Successful", "Failed", ...).
func (g *GatewayStub) Settle(txID, payStatus string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses[txID] = payStatus
}

// FailNextInitiate makes the next checkout request answer 502.
func (g *GatewayStub) FailNextInitiate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failNext = true
}

func (g *GatewayStub) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amounts = make(map[string]string)
	g.statuses = make(map[string]string)
	g.failNext = false
}

func (g *GatewayStub) initiate(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	g.mu.Lock()
	fail := g.failNext
	g.failNext = false
	if !fail {
		g.amounts[body["tran_id"]] = body["amount"]
		g.statuses[body["tran_id"]] = "Pending"
	}
	g.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"result":      "true",
		"payment_url": g.server.URL + "/paynow.php?track=" + body["tran_id"],
	})
}

func (g *GatewayStub) verify(w http.ResponseWriter, r *http.Request) {
	txID := r.URL.Query().Get("request_id")

	g.mu.Lock()
	status, ok := g.statuses[txID]
	amount := g.amounts[txID]
	g.mu.Unlock()

	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]string{"pay_status": "", "status_title": "Invalid Request ID"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"pay_status":   status,
		"amount":       amount,
		"payment_type": "bKash-bKash",
		"status_title": strings.TrimSpace(status + " Transaction"),
	})
}
