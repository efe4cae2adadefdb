// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"encoding/json"
	"net/http"

	"github.com/remitix/relayer/quote"
)

type createQuoteRequest struct {
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
	FromAmount   float64 `json:"fromAmount"`
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return
	}

	q, err := h.quotes.GenerateQuote(r.Context(), req.FromCurrency, req.ToCurrency, req.FromAmount)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Quote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

type validateQuoteResponse struct {
	Valid bool         `json:"valid"`
	Quote *quote.Quote `json:"quote"`
}

func (h *Handler) validateQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.ValidateQuote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateQuoteResponse{Valid: true, Quote: q})
}
