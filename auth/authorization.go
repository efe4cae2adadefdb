// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package auth

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DomainName    = "Remitix"
	DomainVersion = "1"
)

// Kind enumerates every operation a user can authorize with a typed-data
// signature. The set is closed: each kind owns one immutable field layout,
// and schemas are never changed once published since that would invalidate
// every outstanding authorization.
type Kind uint8

const (
	FundTransfer Kind = iota
	FaucetClaim
	VaultDeposit
	VaultWithdraw
	YieldSplit
	YieldRecombine
	YieldClaim
	YieldDistribution
	PortfolioCreate
	PortfolioRedeem
	PortfolioRebalance
)

func (k Kind) String() string {
	switch k {
	case FundTransfer:
		return "fundTransfer"
	case FaucetClaim:
		return "faucetClaim"
	case VaultDeposit:
		return "vaultDeposit"
	case VaultWithdraw:
		return "vaultWithdraw"
	case YieldSplit:
		return "yieldSplit"
	case YieldRecombine:
		return "yieldRecombine"
	case YieldClaim:
		return "yieldClaim"
	case YieldDistribution:
		return "yieldDistribution"
	case PortfolioCreate:
		return "portfolioCreate"
	case PortfolioRedeem:
		return "portfolioRedeem"
	case PortfolioRebalance:
		return "portfolioRebalance"
	default:
		return "unknown"
	}
}

func (k Kind) primaryType() string {
	switch k {
	case FundTransfer:
		return "Transfer"
	case FaucetClaim:
		return "FaucetClaim"
	case VaultDeposit:
		return "VaultDeposit"
	case VaultWithdraw:
		return "VaultWithdraw"
	case YieldSplit:
		return "YieldSplit"
	case YieldRecombine:
		return "YieldRecombine"
	case YieldClaim:
		return "YieldClaim"
	case YieldDistribution:
		return "YieldDistribution"
	case PortfolioCreate:
		return "PortfolioCreate"
	case PortfolioRedeem:
		return "PortfolioRedeem"
	case PortfolioRebalance:
		return "PortfolioRebalance"
	default:
		return ""
	}
}

// fieldTypes returns the ordered field layout for the kind. Order is part of
// the published schema.
func (k Kind) fieldTypes() []apitypes.Type {
	switch k {
	case FundTransfer:
		return []apitypes.Type{
			{Name: "quoteId", Type: "string"},
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	case FaucetClaim:
		return []apitypes.Type{
			{Name: "recipient", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	case VaultDeposit, YieldSplit, YieldRecombine, PortfolioCreate:
		return []apitypes.Type{
			{Name: "owner", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	case VaultWithdraw, PortfolioRedeem:
		return []apitypes.Type{
			{Name: "owner", Type: "address"},
			{Name: "shares", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	case YieldClaim, PortfolioRebalance:
		return []apitypes.Type{
			{Name: "owner", Type: "address"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	case YieldDistribution:
		return []apitypes.Type{
			{Name: "owner", Type: "address"},
			{Name: "epoch", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "deadline", Type: "uint256"},
		}
	default:
		return nil
	}
}

// Domain pins an authorization to one chain and one verifying contract,
// preventing replay against a different target.
type Domain struct {
	ChainID           int64
	VerifyingContract common.Address
}

// Authorization is a user-signed typed-data message plus its claimed signer.
type Authorization struct {
	Kind      Kind
	Domain    Domain
	Message   apitypes.TypedDataMessage
	Signature []byte
	Signer    common.Address
	Nonce     uint64
	Deadline  int64
}

// TransferMessage builds the fund-transfer typed message. Constructors keep
// the message map and the Authorization nonce/deadline from diverging.
func TransferMessage(quoteID string, from, to common.Address, amount *big.Int, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"quoteId":  quoteID,
		"from":     from.Hex(),
		"to":       to.Hex(),
		"amount":   (*math.HexOrDecimal256)(amount),
		"nonce":    math.NewHexOrDecimal256(int64(nonce)),
		"deadline": math.NewHexOrDecimal256(deadline),
	}
}

// ClaimMessage builds the faucet-claim typed message.
func ClaimMessage(recipient common.Address, amount *big.Int, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"recipient": recipient.Hex(),
		"amount":    (*math.HexOrDecimal256)(amount),
		"nonce":     math.NewHexOrDecimal256(int64(nonce)),
		"deadline":  math.NewHexOrDecimal256(deadline),
	}
}

// AmountMessage builds the typed message for kinds authorizing an amount
// against the owner's position (vault deposit, yield split/recombine,
// portfolio create).
func AmountMessage(owner common.Address, amount *big.Int, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"owner":    owner.Hex(),
		"amount":   (*math.HexOrDecimal256)(amount),
		"nonce":    math.NewHexOrDecimal256(int64(nonce)),
		"deadline": math.NewHexOrDecimal256(deadline),
	}
}

// SharesMessage builds the typed message for share-denominated kinds
// (vault withdraw, portfolio redeem).
func SharesMessage(owner common.Address, shares *big.Int, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"owner":    owner.Hex(),
		"shares":   (*math.HexOrDecimal256)(shares),
		"nonce":    math.NewHexOrDecimal256(int64(nonce)),
		"deadline": math.NewHexOrDecimal256(deadline),
	}
}

// OwnerMessage builds the typed message for kinds carrying no amount
// (yield claim, portfolio rebalance).
func OwnerMessage(owner common.Address, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"owner":    owner.Hex(),
		"nonce":    math.NewHexOrDecimal256(int64(nonce)),
		"deadline": math.NewHexOrDecimal256(deadline),
	}
}

// EpochMessage builds the yield-distribution typed message.
func EpochMessage(owner common.Address, epoch uint64, nonce uint64, deadline int64) apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"owner":    owner.Hex(),
		"epoch":    math.NewHexOrDecimal256(int64(epoch)),
		"nonce":    math.NewHexOrDecimal256(int64(nonce)),
		"deadline": math.NewHexOrDecimal256(deadline),
	}
}
