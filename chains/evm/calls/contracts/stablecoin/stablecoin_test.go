// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package stablecoin_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/calls/contracts/stablecoin"
)

type StablecoinTestSuite struct {
	suite.Suite
	contract *stablecoin.StablecoinContract
}

func TestRunStablecoinTestSuite(t *testing.T) {
	suite.Run(t, new(StablecoinTestSuite))
}

func (s *StablecoinTestSuite) SetupTest() {
	contract, err := stablecoin.NewStablecoinContract(
		common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), nil)
	s.Nil(err)
	s.contract = contract
}

func (s *StablecoinTestSuite) signature() []byte {
	sig := make([]byte, 65)
	for i := range sig {
		sig[i] = byte(i)
	}
	sig[64] = 1
	return sig
}

func (s *StablecoinTestSuite) Test_TransferWithAuthorization_EncodesMethod() {
	from := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	to := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	call, err := s.contract.TransferWithAuthorization(from, to, big.NewInt(100), 7, 1700000300, s.signature())

	s.Nil(err)
	s.Equal(s.contract.Address, call.To)

	method := s.contract.ABI.Methods["transferWithAuthorization"]
	s.True(bytes.Equal(method.ID, call.Data[:4]))

	args, err := method.Inputs.Unpack(call.Data[4:])
	s.Nil(err)
	s.Equal(from, args[0].(common.Address))
	s.Equal(to, args[1].(common.Address))
	s.Equal(big.NewInt(100), args[2].(*big.Int))
	s.Equal(big.NewInt(7), args[3].(*big.Int))
	s.Equal(big.NewInt(1700000300), args[4].(*big.Int))
	s.Equal(uint8(28), args[5].(uint8)) // v normalized to 27/28
}

func (s *StablecoinTestSuite) Test_TransferWithAuthorization_RejectsShortSignature() {
	from := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	_, err := s.contract.TransferWithAuthorization(from, from, big.NewInt(100), 7, 1700000300, []byte{0x01})

	s.ErrorIs(err, contracts.ErrMalformedSignature)
}

func (s *StablecoinTestSuite) Test_ClaimWithAuthorization_EncodesMethod() {
	recipient := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	call, err := s.contract.ClaimWithAuthorization(recipient, big.NewInt(500), 1, 1700000300, s.signature())

	s.Nil(err)
	method := s.contract.ABI.Methods["claimWithAuthorization"]
	s.True(bytes.Equal(method.ID, call.Data[:4]))
}
