//go:build unit

package page_test

import (
	"testing"

	"hotel-booking/internal/handler/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		outcome     page.Outcome
		contains    []string
		notContains []string
	}{
		{
			name:     "success shows transaction id",
			outcome:  page.Outcome{Variant: page.VariantSuccess, TransactionID: "TXN1700000000000123"},
			contains: []string{"Payment Successful", "TXN1700000000000123"},
		},
		{
			name:        "failed hides transaction id",
			outcome:     page.Outcome{Variant: page.VariantFailed, TransactionID: "TXN1700000000000123"},
			contains:    []string{"Payment Failed"},
			notContains: []string{"TXN1700000000000123"},
		},
		{
			name:     "cancelled",
			outcome:  page.Outcome{Variant: page.VariantCancelled},
			contains: []string{"Payment Cancelled"},
		},
		{
			name:     "unknown variant falls back to failed",
			outcome:  page.Outcome{Variant: "bogus"},
			contains: []string{"Payment Failed"},
		},
		{
			name:        "transaction id is escaped",
			outcome:     page.Outcome{Variant: page.VariantSuccess, TransactionID: "<script>x</script>"},
			contains:    []string{"&lt;script&gt;"},
			notContains: []string{"<script>x</script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := page.Render(tt.outcome)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, string(html), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, string(html), s)
			}
		})
	}
}
