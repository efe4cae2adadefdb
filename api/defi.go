// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/chains/evm/executor"
)

// authorizedRequest is the shared body of every relayed DeFi operation: an
// owner, an optional integer amount in token base units and the signed
// authorization over them.
type authorizedRequest struct {
	Owner     string `json:"owner"`
	Amount    string `json:"amount,omitempty"`
	Nonce     uint64 `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

type parsedAuthorization struct {
	Owner     common.Address
	Amount    *big.Int
	Nonce     uint64
	Deadline  int64
	Signature []byte
}

// decodeAuthorized parses and validates the shared body. It writes the error
// response itself and reports ok=false when the request is unusable.
func decodeAuthorized(w http.ResponseWriter, r *http.Request, needAmount bool) (parsedAuthorization, bool) {
	var req authorizedRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return parsedAuthorization{}, false
	}
	if !common.IsHexAddress(req.Owner) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "owner must be a hex address")
		return parsedAuthorization{}, false
	}
	sig, err := hexutil.Decode(req.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "signature must be a 0x-prefixed hex string")
		return parsedAuthorization{}, false
	}

	parsed := parsedAuthorization{
		Owner:     common.HexToAddress(req.Owner),
		Nonce:     req.Nonce,
		Deadline:  req.Deadline,
		Signature: sig,
	}
	if needAmount {
		amount, ok := new(big.Int).SetString(req.Amount, 10)
		if !ok || amount.Sign() <= 0 {
			writeError(w, http.StatusBadRequest, codeMalformedRequest, "amount must be a positive base-unit integer")
			return parsedAuthorization{}, false
		}
		parsed.Amount = amount
	}
	return parsed, true
}

func (h *Handler) relayAuthorized(w http.ResponseWriter, r *http.Request, a *auth.Authorization, call *executor.Call, buildErr error) {
	if buildErr != nil {
		writeMappedError(w, buildErr)
		return
	}
	outcome, err := h.relay.Relay(r.Context(), a, call)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, outcome)
}

type faucetClaimRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Nonce     uint64 `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

func (h *Handler) faucetClaim(w http.ResponseWriter, r *http.Request) {
	var req faucetClaimRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return
	}
	if !common.IsHexAddress(req.Recipient) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "recipient must be a hex address")
		return
	}
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok || amount.Sign() <= 0 {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "amount must be a positive base-unit integer")
		return
	}
	sig, err := hexutil.Decode(req.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "signature must be a 0x-prefixed hex string")
		return
	}

	recipient := common.HexToAddress(req.Recipient)
	a := &auth.Authorization{
		Kind:      auth.FaucetClaim,
		Domain:    h.domains.stablecoin(),
		Message:   auth.ClaimMessage(recipient, amount, req.Nonce, req.Deadline),
		Signature: sig,
		Signer:    recipient,
		Nonce:     req.Nonce,
		Deadline:  req.Deadline,
	}
	call, err := h.faucet.ClaimWithAuthorization(recipient, amount, req.Nonce, req.Deadline, sig)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) vaultDeposit(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.VaultDeposit,
		Domain:    h.domains.vault(),
		Message:   auth.AmountMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.vault.DepositWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) vaultWithdraw(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.VaultWithdraw,
		Domain:    h.domains.vault(),
		Message:   auth.SharesMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.vault.WithdrawWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) vaultBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "address must be a hex address")
		return
	}
	shares, err := h.vault.BalanceOf(r.Context(), common.HexToAddress(address))
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"address": common.HexToAddress(address).Hex(),
		"shares":  shares.String(),
	})
}

func (h *Handler) vaultAPY(w http.ResponseWriter, r *http.Request) {
	apy, err := h.vault.CurrentAPY(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"apyBps": apy.String()})
}

func (h *Handler) yieldSplit(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.YieldSplit,
		Domain:    h.domains.yield(),
		Message:   auth.AmountMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.yield.SplitWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) yieldRecombine(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.YieldRecombine,
		Domain:    h.domains.yield(),
		Message:   auth.AmountMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.yield.RecombineWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) yieldClaim(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, false)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.YieldClaim,
		Domain:    h.domains.yield(),
		Message:   auth.OwnerMessage(p.Owner, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.yield.ClaimYieldWithAuthorization(p.Owner, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

type yieldDistributeRequest struct {
	Owner     string `json:"owner"`
	Epoch     uint64 `json:"epoch"`
	Nonce     uint64 `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

func (h *Handler) yieldDistribute(w http.ResponseWriter, r *http.Request) {
	var req yieldDistributeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "invalid request body")
		return
	}
	if !common.IsHexAddress(req.Owner) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "owner must be a hex address")
		return
	}
	sig, err := hexutil.Decode(req.Signature)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "signature must be a 0x-prefixed hex string")
		return
	}

	owner := common.HexToAddress(req.Owner)
	a := &auth.Authorization{
		Kind:      auth.YieldDistribution,
		Domain:    h.domains.yield(),
		Message:   auth.EpochMessage(owner, req.Epoch, req.Nonce, req.Deadline),
		Signature: sig,
		Signer:    owner,
		Nonce:     req.Nonce,
		Deadline:  req.Deadline,
	}
	call, err := h.yield.DistributeYieldWithAuthorization(owner, req.Epoch, req.Nonce, req.Deadline, sig)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) yieldDistribution(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "address must be a hex address")
		return
	}
	principal, yield, err := h.yield.DistributionOf(r.Context(), common.HexToAddress(address))
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"address":   common.HexToAddress(address).Hex(),
		"principal": principal.String(),
		"yield":     yield.String(),
	})
}

func (h *Handler) portfolioCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.PortfolioCreate,
		Domain:    h.domains.portfolio(),
		Message:   auth.AmountMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.portfolio.CreateWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) portfolioRedeem(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, true)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.PortfolioRedeem,
		Domain:    h.domains.portfolio(),
		Message:   auth.SharesMessage(p.Owner, p.Amount, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.portfolio.RedeemWithAuthorization(p.Owner, p.Amount, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) portfolioRebalance(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeAuthorized(w, r, false)
	if !ok {
		return
	}
	a := &auth.Authorization{
		Kind:      auth.PortfolioRebalance,
		Domain:    h.domains.portfolio(),
		Message:   auth.OwnerMessage(p.Owner, p.Nonce, p.Deadline),
		Signature: p.Signature,
		Signer:    p.Owner,
		Nonce:     p.Nonce,
		Deadline:  p.Deadline,
	}
	call, err := h.portfolio.RebalanceWithAuthorization(p.Owner, p.Nonce, p.Deadline, p.Signature)
	h.relayAuthorized(w, r, a, call, err)
}

func (h *Handler) portfolioComposition(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		writeError(w, http.StatusBadRequest, codeMalformedRequest, "address must be a hex address")
		return
	}
	assets, weights, err := h.portfolio.CompositionOf(r.Context(), common.HexToAddress(address))
	if err != nil {
		writeMappedError(w, err)
		return
	}

	holdings := make([]map[string]string, 0, len(assets))
	for i, asset := range assets {
		holdings = append(holdings, map[string]string{
			"asset":     asset.Hex(),
			"weightBps": weights[i].String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"address":  common.HexToAddress(address).Hex(),
		"holdings": holdings,
	})
}

func (h *Handler) relayerStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.feePayer.HealthStatus(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
