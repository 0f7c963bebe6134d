// Package page renders the static pages the payment gateway redirects guests to.
package page

import (
	"bytes"
	"html/template"
)

type Variant string

const (
	VariantSuccess   Variant = "success"
	VariantFailed    Variant = "failed"
	VariantCancelled Variant = "cancelled"
)

type Outcome struct {
	Variant       Variant
	TransactionID string
}

type outcomeCopy struct {
	Title   string
	Heading string
	Body    string
	Accent  template.CSS
}

var copies = map[Variant]outcomeCopy{
	VariantSuccess: {
		Title:   "Payment successful",
		Heading: "Payment Successful",
		Body:    "Your booking is confirmed. A confirmation has been sent to your email.",
		Accent:  "#16a34a",
	},
	VariantFailed: {
		Title:   "Payment failed",
		Heading: "Payment Failed",
		Body:    "We could not complete your payment. No booking was made; please try again.",
		Accent:  "#dc2626",
	},
	VariantCancelled: {
		Title:   "Payment cancelled",
		Heading: "Payment Cancelled",
		Body:    "You cancelled the payment. The selected rooms have been released.",
		Accent:  "#d97706",
	},
}

var outcomeTemplate = template.Must(template.New("outcome").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,sans-serif;background:#f8fafc;display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0}
.card{background:#fff;border-radius:12px;box-shadow:0 4px 16px rgba(0,0,0,.08);padding:40px;max-width:420px;text-align:center}
h1{color:{{.Accent}};margin-top:0}
.txn{font-family:monospace;background:#f1f5f9;padding:6px 10px;border-radius:6px}
</style>
</head>
<body>
<div class="card">
<h1>{{.Heading}}</h1>
<p>{{.Body}}</p>
{{if .TransactionID}}<p>Transaction ID: <span class="txn">{{.TransactionID}}</span></p>{{end}}
</div>
</body>
</html>
`))

// Render returns the HTML for o. The transaction id is only shown on success.
func Render(o Outcome) ([]byte, error) {
	c, ok := copies[o.Variant]
	if !ok {
		c = copies[VariantFailed]
	}

	data := struct {
		outcomeCopy
		TransactionID string
	}{outcomeCopy: c}
	if o.Variant == VariantSuccess {
		data.TransactionID = o.TransactionID
	}

	var buf bytes.Buffer
	if err := outcomeTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
