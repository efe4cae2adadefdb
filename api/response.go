// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/chains/evm/executor"
	"github.com/remitix/relayer/quote"
	"github.com/remitix/relayer/relay"
	"github.com/remitix/relayer/store"
	"github.com/remitix/relayer/transfer"
)

// Codes for failures that originate in the HTTP layer itself.
const (
	codeMalformedRequest = "MALFORMED_REQUEST"
	codeQuoteNotFound    = "QUOTE_NOT_FOUND"
	codeTransferNotFound = "TRANSFER_NOT_FOUND"
	codeUnsupportedPair  = "UNSUPPORTED_PAIR"
	codeAmountOutOfRange = "AMOUNT_OUT_OF_RANGE"
	codeQuoteExpired     = "QUOTE_EXPIRED"
	codeQuoteConsumed    = "QUOTE_CONSUMED"
	codeUpstreamUnavail  = "UPSTREAM_UNAVAILABLE"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// writeMappedError translates typed engine errors into the stable envelope.
// Anything unrecognized is reported as upstream unavailability so raw RPC
// internals never reach callers.
func writeMappedError(w http.ResponseWriter, err error) {
	var terr *transfer.Error
	if errors.As(err, &terr) {
		switch terr.Code {
		case transfer.CodeUpstreamUnavailable, transfer.CodeIndeterminate:
			writeError(w, http.StatusServiceUnavailable, terr.Code, terr.Error())
		default:
			writeError(w, http.StatusBadRequest, terr.Code, terr.Error())
		}
		return
	}

	switch {
	case errors.Is(err, quote.ErrQuoteNotFound):
		writeError(w, http.StatusNotFound, codeQuoteNotFound, err.Error())
	case errors.Is(err, store.ErrTransferNotFound):
		writeError(w, http.StatusNotFound, codeTransferNotFound, err.Error())
	case errors.Is(err, quote.ErrUnsupportedPair):
		writeError(w, http.StatusBadRequest, codeUnsupportedPair, err.Error())
	case errors.Is(err, quote.ErrAmountOutOfRange):
		writeError(w, http.StatusBadRequest, codeAmountOutOfRange, err.Error())
	case errors.Is(err, quote.ErrQuoteExpired):
		writeError(w, http.StatusBadRequest, codeQuoteExpired, err.Error())
	case errors.Is(err, quote.ErrQuoteConsumed):
		writeError(w, http.StatusBadRequest, codeQuoteConsumed, err.Error())
	case errors.Is(err, auth.ErrExpired),
		errors.Is(err, auth.ErrMalformedSignature),
		errors.Is(err, auth.ErrSignatureMismatch):
		writeError(w, http.StatusBadRequest, transfer.CodeAuthorizationInvalid, err.Error())
	case errors.Is(err, relay.ErrNonceAlreadyUsed):
		writeError(w, http.StatusBadRequest, transfer.CodeNonceAlreadyUsed, err.Error())
	case errors.Is(err, executor.ErrTimeout):
		writeError(w, http.StatusServiceUnavailable, transfer.CodeIndeterminate, err.Error())
	default:
		var reverted *executor.ExecutionRevertedError
		if errors.As(err, &reverted) {
			writeError(w, http.StatusBadRequest, transfer.CodeExecutionReverted, reverted.Reason)
			return
		}
		var rejected *executor.SubmissionRejectedError
		if errors.As(err, &rejected) {
			writeError(w, http.StatusBadRequest, transfer.CodeSubmissionRejected, rejected.Error())
			return
		}
		log.Error().Err(err).Msg("unclassified upstream failure")
		writeError(w, http.StatusServiceUnavailable, codeUpstreamUnavail, "upstream service unavailable")
	}
}
