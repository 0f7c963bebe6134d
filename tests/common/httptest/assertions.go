//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertEnvelopeData decodes {success, statusCode, data} and unmarshals data into target.
func AssertEnvelopeData(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	var envelope struct {
		Success    bool            `json:"success"`
		StatusCode int             `json:"statusCode"`
		Data       json.RawMessage `json:"data"`
	}
	AssertSuccessResponse(t, w, expectedStatus, &envelope)
	assert.True(t, envelope.Success, "envelope success flag should be true")
	assert.Equal(t, expectedStatus, envelope.StatusCode)

	if target != nil {
		err := json.Unmarshal(envelope.Data, target)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode envelope data: %s", string(envelope.Data)))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"statusCode"`
		Error      string `json:"error"`
		Message    string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	assert.False(t, errorResponse.Success, "error response must not report success")
	assert.Equal(t, expectedStatus, errorResponse.StatusCode, "statusCode field mismatch")

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
