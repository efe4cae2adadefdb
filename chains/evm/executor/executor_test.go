// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package executor_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/remitix/relayer/chains/evm/executor"
	mock_executor "github.com/remitix/relayer/chains/evm/executor/mock"
)

// revertError mimics the rpc DataError a node returns for reverted eth_call.
type revertError struct {
	data string
}

func (e *revertError) Error() string {
	return "execution reverted"
}

func (e *revertError) ErrorData() interface{} {
	return e.data
}

func encodedRevertReason(reason string) string {
	stringTy, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: stringTy}}.Pack(reason)
	return hexutil.Encode(append(hexutil.MustDecode("0x08c379a0"), packed...))
}

type ExecutorTestSuite struct {
	suite.Suite
	client   *mock_executor.MockChainClient
	executor *executor.Executor
	cancel   context.CancelFunc
}

func TestRunExecutorTestSuite(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}

func (s *ExecutorTestSuite) SetupTest() {
	executor.SetReceiptTiming(time.Millisecond, 500*time.Millisecond)

	gomockController := gomock.NewController(s.T())
	s.client = mock_executor.NewMockChainClient(gomockController)

	key, err := crypto.GenerateKey()
	s.Nil(err)
	s.executor = executor.NewExecutor(s.client, key, big.NewInt(1337), 1)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() { _ = s.executor.Start(ctx) }()
}

func (s *ExecutorTestSuite) TearDownTest() {
	s.cancel()
}

func (s *ExecutorTestSuite) expectBroadcast(nonce uint64) {
	s.client.EXPECT().BalanceAt(gomock.Any(), s.executor.Address(), nil).Return(big.NewInt(2e18), nil).AnyTimes()
	s.client.EXPECT().PendingNonceAt(gomock.Any(), s.executor.Address()).Return(nonce, nil)
	s.client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(9), BaseFee: big.NewInt(1000000000)}, nil)
	s.client.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1500000000), nil)
	s.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(65000), nil)
}

func (s *ExecutorTestSuite) Test_Execute_SuccessfulExecution() {
	s.expectBroadcast(5)
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	s.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
		GasUsed:     60000,
	}, nil)
	s.client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()

	outcome, err := s.executor.Execute(context.Background(), &executor.Call{
		To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Data: []byte{0x01},
	})

	s.Nil(err)
	s.True(outcome.Successful)
	s.Equal(uint64(60000), outcome.GasUsed)
	s.Equal(big.NewInt(10), outcome.BlockNumber)
}

func (s *ExecutorTestSuite) Test_Execute_SubmissionRejected() {
	s.expectBroadcast(5)
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("insufficient funds for gas * price + value"))

	_, err := s.executor.Execute(context.Background(), &executor.Call{
		To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Data: []byte{0x01},
	})

	var rejected *executor.SubmissionRejectedError
	s.ErrorAs(err, &rejected)
}

func (s *ExecutorTestSuite) Test_Execute_RevertedWithDecodedReason() {
	s.expectBroadcast(5)
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	s.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
		GasUsed:     30000,
	}, nil)
	s.client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()
	s.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), big.NewInt(10)).Return(nil, &revertError{data: encodedRevertReason("vault: insufficient shares")})

	outcome, err := s.executor.Execute(context.Background(), &executor.Call{
		To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Data: []byte{0x01},
	})

	var reverted *executor.ExecutionRevertedError
	s.ErrorAs(err, &reverted)
	s.Equal("vault: insufficient shares", reverted.Reason)
	s.False(outcome.Successful)
}

func (s *ExecutorTestSuite) Test_Execute_RevertedWithoutReason() {
	s.expectBroadcast(5)
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	s.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
	}, nil)
	s.client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()
	s.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), big.NewInt(10)).Return([]byte{}, nil)

	_, err := s.executor.Execute(context.Background(), &executor.Call{
		To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Data: []byte{0x01},
	})

	var reverted *executor.ExecutionRevertedError
	s.ErrorAs(err, &reverted)
	s.Equal("execution reverted on-chain", reverted.Reason)
}

func (s *ExecutorTestSuite) Test_Execute_TimeoutIsIndeterminate() {
	s.expectBroadcast(5)
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	s.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, errors.New("not found")).AnyTimes()

	_, err := s.executor.Execute(context.Background(), &executor.Call{
		To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Data: []byte{0x01},
	})

	s.ErrorIs(err, executor.ErrTimeout)
	var timedOut *executor.TimeoutError
	s.ErrorAs(err, &timedOut)
	s.NotEqual(common.Hash{}, timedOut.TxHash)
}

func (s *ExecutorTestSuite) Test_Execute_ConcurrentSubmissionsGetDistinctNonces() {
	s.client.EXPECT().BalanceAt(gomock.Any(), s.executor.Address(), nil).Return(big.NewInt(2e18), nil).AnyTimes()
	nodeNonce := uint64(5)
	s.client.EXPECT().PendingNonceAt(gomock.Any(), s.executor.Address()).DoAndReturn(
		func(_ context.Context, _ common.Address) (uint64, error) {
			return nodeNonce, nil
		}).Times(2)
	s.client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(9), BaseFee: big.NewInt(1000000000)}, nil).Times(2)
	s.client.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1500000000), nil).Times(2)
	s.client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(65000), nil).Times(2)

	var mu sync.Mutex
	nonces := map[uint64]bool{}
	s.client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *types.Transaction) error {
			mu.Lock()
			defer mu.Unlock()
			nonces[tx.Nonce()] = true
			nodeNonce++ // node sees the broadcast before the next submission
			return nil
		}).Times(2)
	s.client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
	}, nil).AnyTimes()
	s.client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.executor.Execute(context.Background(), &executor.Call{
				To:   common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
				Data: []byte{0x01},
			})
			s.Nil(err)
		}()
	}
	wg.Wait()

	s.Equal(2, len(nonces))
}

func (s *ExecutorTestSuite) Test_Reconcile_SuccessfulExecution() {
	hash := common.HexToHash("0xabc1")
	s.client.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(42),
		GasUsed:     21000,
	}, nil)

	outcome, err := s.executor.Reconcile(context.Background(), hash)

	s.Nil(err)
	s.True(outcome.Successful)
	s.Equal(hash, outcome.TxHash)
}

func (s *ExecutorTestSuite) Test_Reconcile_StillMissing() {
	hash := common.HexToHash("0xabc1")
	s.client.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(nil, errors.New("not found"))

	_, err := s.executor.Reconcile(context.Background(), hash)

	s.ErrorIs(err, executor.ErrTimeout)
}

func (s *ExecutorTestSuite) Test_HealthStatus_LowBalance() {
	s.client.EXPECT().BalanceAt(gomock.Any(), s.executor.Address(), nil).Return(big.NewInt(1e17), nil)

	status, err := s.executor.HealthStatus(context.Background())

	s.Nil(err)
	s.True(status.LowBalance)
}

func (s *ExecutorTestSuite) Test_HealthStatus_SufficientBalance() {
	s.client.EXPECT().BalanceAt(gomock.Any(), s.executor.Address(), nil).Return(big.NewInt(2e18), nil)

	status, err := s.executor.HealthStatus(context.Background())

	s.Nil(err)
	s.False(status.LowBalance)
}
