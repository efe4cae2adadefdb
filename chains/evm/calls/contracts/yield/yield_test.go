// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package yield_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/calls/contracts/yield"
)

type YieldTestSuite struct {
	suite.Suite
	contract *yield.YieldContract
}

func TestRunYieldTestSuite(t *testing.T) {
	suite.Run(t, new(YieldTestSuite))
}

func (s *YieldTestSuite) SetupTest() {
	contract, err := yield.NewYieldContract(
		common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"), nil)
	s.Nil(err)
	s.contract = contract
}

func (s *YieldTestSuite) signature() []byte {
	sig := make([]byte, 65)
	for i := range sig {
		sig[i] = byte(i)
	}
	sig[64] = 1
	return sig
}

func (s *YieldTestSuite) Test_SplitWithAuthorization_EncodesMethod() {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	call, err := s.contract.SplitWithAuthorization(owner, big.NewInt(250), 3, 1700000300, s.signature())

	s.Nil(err)
	s.Equal(s.contract.Address, call.To)

	method := s.contract.ABI.Methods["splitWithAuthorization"]
	s.True(bytes.Equal(method.ID, call.Data[:4]))

	args, err := method.Inputs.Unpack(call.Data[4:])
	s.Nil(err)
	s.Equal(owner, args[0].(common.Address))
	s.Equal(big.NewInt(250), args[1].(*big.Int))
	s.Equal(big.NewInt(3), args[2].(*big.Int))
}

func (s *YieldTestSuite) Test_ClaimYieldWithAuthorization_EncodesMethod() {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	call, err := s.contract.ClaimYieldWithAuthorization(owner, 9, 1700000300, s.signature())

	s.Nil(err)
	method := s.contract.ABI.Methods["claimYieldWithAuthorization"]
	s.True(bytes.Equal(method.ID, call.Data[:4]))

	args, err := method.Inputs.Unpack(call.Data[4:])
	s.Nil(err)
	s.Equal(owner, args[0].(common.Address))
	s.Equal(big.NewInt(9), args[1].(*big.Int))
}

func (s *YieldTestSuite) Test_DistributeYieldWithAuthorization_EncodesMethod() {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	call, err := s.contract.DistributeYieldWithAuthorization(owner, 12, 4, 1700000300, s.signature())

	s.Nil(err)
	method := s.contract.ABI.Methods["distributeYieldWithAuthorization"]
	s.True(bytes.Equal(method.ID, call.Data[:4]))

	args, err := method.Inputs.Unpack(call.Data[4:])
	s.Nil(err)
	s.Equal(owner, args[0].(common.Address))
	s.Equal(big.NewInt(12), args[1].(*big.Int))
	s.Equal(big.NewInt(4), args[2].(*big.Int))
	s.Equal(big.NewInt(1700000300), args[3].(*big.Int))
}

func (s *YieldTestSuite) Test_DistributeYieldWithAuthorization_RejectsShortSignature() {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	_, err := s.contract.DistributeYieldWithAuthorization(owner, 12, 4, 1700000300, []byte{0x01})

	s.ErrorIs(err, contracts.ErrMalformedSignature)
}
