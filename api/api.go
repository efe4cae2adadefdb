// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"context"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/chains/evm/executor"
	"github.com/remitix/relayer/quote"
	"github.com/remitix/relayer/transfer"
)

type QuoteService interface {
	GenerateQuote(ctx context.Context, fromCurrency, toCurrency string, fromAmount float64) (*quote.Quote, error)
	Quote(ctx context.Context, id string) (*quote.Quote, error)
	ValidateQuote(ctx context.Context, id string) (*quote.Quote, error)
}

type TransferService interface {
	Create(ctx context.Context, req transfer.CreateRequest) (*transfer.Transfer, error)
	Get(ctx context.Context, id string) (*transfer.Transfer, error)
	ByUser(sender common.Address, limit int) ([]*transfer.Transfer, error)
	Cancel(id, reason string) (*transfer.Transfer, error)
}

type RelayService interface {
	Relay(ctx context.Context, a *auth.Authorization, call *executor.Call) (*executor.RelayOutcome, error)
}

type FaucetContract interface {
	ClaimWithAuthorization(recipient common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
}

type VaultContract interface {
	DepositWithAuthorization(owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	WithdrawWithAuthorization(owner common.Address, shares *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	CurrentAPY(ctx context.Context) (*big.Int, error)
}

type YieldContract interface {
	SplitWithAuthorization(owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	RecombineWithAuthorization(owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	ClaimYieldWithAuthorization(owner common.Address, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	DistributeYieldWithAuthorization(owner common.Address, epoch uint64, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	DistributionOf(ctx context.Context, owner common.Address) (principal *big.Int, yield *big.Int, err error)
}

type PortfolioContract interface {
	CreateWithAuthorization(owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	RedeemWithAuthorization(owner common.Address, shares *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	RebalanceWithAuthorization(owner common.Address, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	CompositionOf(ctx context.Context, owner common.Address) ([]common.Address, []*big.Int, error)
}

type FeePayerStatus interface {
	HealthStatus(ctx context.Context) (*executor.Status, error)
}

// Domains locates the EIP-712 verifying contract for each operation family.
type Domains struct {
	ChainID    int64
	Stablecoin common.Address
	Vault      common.Address
	Yield      common.Address
	Portfolio  common.Address
}

func (d Domains) stablecoin() auth.Domain {
	return auth.Domain{ChainID: d.ChainID, VerifyingContract: d.Stablecoin}
}

func (d Domains) vault() auth.Domain {
	return auth.Domain{ChainID: d.ChainID, VerifyingContract: d.Vault}
}

func (d Domains) yield() auth.Domain {
	return auth.Domain{ChainID: d.ChainID, VerifyingContract: d.Yield}
}

func (d Domains) portfolio() auth.Domain {
	return auth.Domain{ChainID: d.ChainID, VerifyingContract: d.Portfolio}
}

// Handler is the HTTP/JSON surface of the relayer.
type Handler struct {
	quotes    QuoteService
	transfers TransferService
	relay     RelayService
	faucet    FaucetContract
	vault     VaultContract
	yield     YieldContract
	portfolio PortfolioContract
	feePayer  FeePayerStatus
	domains   Domains
}

func NewHandler(
	quotes QuoteService,
	transfers TransferService,
	relayService RelayService,
	faucet FaucetContract,
	vault VaultContract,
	yield YieldContract,
	portfolio PortfolioContract,
	feePayer FeePayerStatus,
	domains Domains,
) *Handler {
	return &Handler{
		quotes:    quotes,
		transfers: transfers,
		relay:     relayService,
		faucet:    faucet,
		vault:     vault,
		yield:     yield,
		portfolio: portfolio,
		feePayer:  feePayer,
		domains:   domains,
	}
}

// Router mounts every endpoint on a fresh mux.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /quote", h.createQuote)
	mux.HandleFunc("GET /quote/{id}", h.getQuote)
	mux.HandleFunc("GET /quote/{id}/validate", h.validateQuote)

	mux.HandleFunc("POST /transfer", h.createTransfer)
	mux.HandleFunc("GET /transfer/{id}", h.getTransfer)
	mux.HandleFunc("GET /transfer/user/{address}", h.transfersByUser)
	mux.HandleFunc("POST /transfer/{id}/cancel", h.cancelTransfer)

	mux.HandleFunc("POST /faucet/claim", h.faucetClaim)

	mux.HandleFunc("POST /vault/deposit", h.vaultDeposit)
	mux.HandleFunc("POST /vault/withdraw", h.vaultWithdraw)
	mux.HandleFunc("GET /vault/balance/{address}", h.vaultBalance)
	mux.HandleFunc("GET /vault/apy", h.vaultAPY)

	mux.HandleFunc("POST /yield/split", h.yieldSplit)
	mux.HandleFunc("POST /yield/recombine", h.yieldRecombine)
	mux.HandleFunc("POST /yield/claim", h.yieldClaim)
	mux.HandleFunc("POST /yield/distribute", h.yieldDistribute)
	mux.HandleFunc("GET /yield/distribution/{address}", h.yieldDistribution)

	mux.HandleFunc("POST /portfolio/create", h.portfolioCreate)
	mux.HandleFunc("POST /portfolio/redeem", h.portfolioRedeem)
	mux.HandleFunc("POST /portfolio/rebalance", h.portfolioRebalance)
	mux.HandleFunc("GET /portfolio/composition/{address}", h.portfolioComposition)

	mux.HandleFunc("GET /relayer/status", h.relayerStatus)

	return mux
}
