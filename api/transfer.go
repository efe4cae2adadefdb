// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/remitix/relayer/transfer"
)

const defaultUserTransferLimit = 20

type createTransferRequest struct {
	QuoteID   string `json:"quoteId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Nonce     uint64 `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

func (h *Handler) createTransfer(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return
	}
	if !common.IsHexAddress(req.From) || !common.IsHexAddress(req.To) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "from and to must be hex addresses")
		return
	}
	sig, err := hexutil.Decode(req.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "signature must be a 0x-prefixed hex string")
		return
	}

	t, err := h.transfers.Create(r.Context(), transfer.CreateRequest{
		QuoteID:   req.QuoteID,
		From:      common.HexToAddress(req.From),
		To:        common.HexToAddress(req.To),
		Signature: sig,
		Nonce:     req.Nonce,
		Deadline:  req.Deadline,
	})
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) getTransfer(w http.ResponseWriter, r *http.Request) {
	t, err := h.transfers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) transfersByUser(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "address must be a hex address")
		return
	}

	limit := defaultUserTransferLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
		if limit <= 0 {
			writeError(w, http.StatusBadRequest, codeMalformedRequest, "limit must be a positive integer")
			return
		}
	}

	transfers, err := h.transfers.ByUser(common.HexToAddress(address), limit)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transfers)
}

type cancelTransferRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) cancelTransfer(w http.ResponseWriter, r *http.Request) {
	var req cancelTransferRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return
	}

	t, err := h.transfers.Cancel(r.PathValue("id"), req.Reason)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
