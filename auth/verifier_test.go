// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package auth_test

import (
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/auth"
)

type VerifierTestSuite struct {
	suite.Suite
	verifier *auth.Verifier
	key      *ecdsa.PrivateKey
	signer   common.Address
	domain   auth.Domain
}

func TestRunVerifierTestSuite(t *testing.T) {
	suite.Run(t, new(VerifierTestSuite))
}

func (s *VerifierTestSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	s.Nil(err)

	s.key = key
	s.signer = crypto.PubkeyToAddress(key.PublicKey)
	s.verifier = auth.NewVerifier()
	s.domain = auth.Domain{
		ChainID:           1337,
		VerifyingContract: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	}
}

func (s *VerifierTestSuite) sign(a *auth.Authorization) {
	digest, err := auth.Hash(a.Kind, a.Domain, a.Message)
	s.Nil(err)

	sig, err := crypto.Sign(digest, s.key)
	s.Nil(err)
	a.Signature = sig
}

func (s *VerifierTestSuite) transferAuthorization(deadline int64) *auth.Authorization {
	to := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	a := &auth.Authorization{
		Kind:     auth.FundTransfer,
		Domain:   s.domain,
		Message:  auth.TransferMessage("q-123", s.signer, to, big.NewInt(100), 1, deadline),
		Signer:   s.signer,
		Nonce:    1,
		Deadline: deadline,
	}
	s.sign(a)
	return a
}

func (s *VerifierTestSuite) Test_Verify_ValidSignature() {
	a := s.transferAuthorization(time.Now().Unix() + 300)

	recovered, err := s.verifier.Verify(a)

	s.Nil(err)
	s.Equal(s.signer, recovered)
}

func (s *VerifierTestSuite) Test_Verify_AllKindsRoundTrip() {
	deadline := time.Now().Unix() + 300
	owner := s.signer
	messages := map[auth.Kind]map[string]interface{}{
		auth.FaucetClaim:        auth.ClaimMessage(owner, big.NewInt(50), 2, deadline),
		auth.VaultDeposit:       auth.AmountMessage(owner, big.NewInt(100), 3, deadline),
		auth.VaultWithdraw:      auth.SharesMessage(owner, big.NewInt(40), 4, deadline),
		auth.YieldSplit:         auth.AmountMessage(owner, big.NewInt(10), 5, deadline),
		auth.YieldRecombine:     auth.AmountMessage(owner, big.NewInt(10), 6, deadline),
		auth.YieldClaim:         auth.OwnerMessage(owner, 7, deadline),
		auth.YieldDistribution:  auth.EpochMessage(owner, 12, 8, deadline),
		auth.PortfolioCreate:    auth.AmountMessage(owner, big.NewInt(500), 9, deadline),
		auth.PortfolioRedeem:    auth.SharesMessage(owner, big.NewInt(250), 10, deadline),
		auth.PortfolioRebalance: auth.OwnerMessage(owner, 11, deadline),
	}

	for kind, message := range messages {
		a := &auth.Authorization{
			Kind:     kind,
			Domain:   s.domain,
			Message:  message,
			Signer:   s.signer,
			Deadline: deadline,
		}
		s.sign(a)

		recovered, err := s.verifier.Verify(a)

		s.Nil(err, kind.String())
		s.Equal(s.signer, recovered, kind.String())
	}
}

func (s *VerifierTestSuite) Test_Verify_MutatedFieldFails() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Message["quoteId"] = "q-124"

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrSignatureMismatch)
}

func (s *VerifierTestSuite) Test_Verify_WrongClaimedSigner() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Signer = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrSignatureMismatch)
}

func (s *VerifierTestSuite) Test_Verify_Expired() {
	a := s.transferAuthorization(time.Now().Unix() - 1)

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrExpired)
}

func (s *VerifierTestSuite) Test_Verify_DeadlineAtNowStillValid() {
	a := s.transferAuthorization(time.Now().Unix() + 1)

	_, err := s.verifier.Verify(a)

	s.Nil(err)
}

func (s *VerifierTestSuite) Test_Verify_MalformedSignature() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Signature = a.Signature[:64]

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrMalformedSignature)
}

func (s *VerifierTestSuite) Test_Verify_InvalidRecoveryByte() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Signature[64] = 5

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrMalformedSignature)
}

func (s *VerifierTestSuite) Test_Verify_LegacyRecoveryByte() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Signature[64] += 27 // Transform V from 0/1 to 27/28

	recovered, err := s.verifier.Verify(a)

	s.Nil(err)
	s.Equal(s.signer, recovered)
}

func (s *VerifierTestSuite) Test_Verify_DifferentDomainFails() {
	a := s.transferAuthorization(time.Now().Unix() + 300)
	a.Domain.VerifyingContract = common.HexToAddress("0x0000000000000000000000000000000000000001")

	_, err := s.verifier.Verify(a)

	s.ErrorIs(err, auth.ErrSignatureMismatch)
}
