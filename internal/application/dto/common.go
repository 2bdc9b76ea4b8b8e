package dto

import "github.com/shopspring/decimal"

func init() {
	// Os campos monetários saem como número JSON (25.5), não como string ("25.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse corpo do health check.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
