// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package store_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/mock/gomock"

	"github.com/remitix/relayer/store"
	mock_store "github.com/remitix/relayer/store/mock"
	"github.com/remitix/relayer/transfer"
)

type TransferStoreTestSuite struct {
	suite.Suite
	transferStore        *store.TransferStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter
}

func TestRunTransferStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TransferStoreTestSuite))
}

func (s *TransferStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.transferStore = store.NewTransferStore(s.keyValueReaderWriter)
}

func (s *TransferStoreTestSuite) exampleTransfer() *transfer.Transfer {
	return &transfer.Transfer{
		ID:           "t-1",
		QuoteID:      "q-1",
		Sender:       common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Recipient:    common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		FromCurrency: "USD",
		ToCurrency:   "PHP",
		FromAmount:   100,
		ToAmount:     5572,
		Rate:         56,
		Fee:          0.5,
		Status:       transfer.StatusPending,
		CreatedAt:    time.Unix(1700000000, 0).UTC(),
	}
}

func (s *TransferStoreTestSuite) Test_StoreTransfer_FailedStore() {
	t := s.exampleTransfer()
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte("transfer:id:t-1"), gomock.Any()).Return(errors.New("error"))

	err := s.transferStore.StoreTransfer(t)

	s.NotNil(err)
}

func (s *TransferStoreTestSuite) Test_StoreTransfer_StoresRecordAndIndex() {
	t := s.exampleTransfer()
	indexKey := fmt.Sprintf("transfer:user:%s:%020d:%s", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", t.CreatedAt.UnixNano(), t.ID)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte("transfer:id:t-1"), gomock.Any()).Return(nil)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(indexKey), []byte("t-1")).Return(nil)

	err := s.transferStore.StoreTransfer(t)

	s.Nil(err)
}

func (s *TransferStoreTestSuite) Test_Transfer_NotFound() {
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte("transfer:id:missing")).Return(nil, leveldb.ErrNotFound)

	_, err := s.transferStore.Transfer("missing")

	s.ErrorIs(err, store.ErrTransferNotFound)
}

func (s *TransferStoreTestSuite) Test_Transfer_SuccessfulFetch() {
	t := s.exampleTransfer()
	value, _ := json.Marshal(t)
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte("transfer:id:t-1")).Return(value, nil)

	fetched, err := s.transferStore.Transfer("t-1")

	s.Nil(err)
	s.Equal(t, fetched)
}

func (s *TransferStoreTestSuite) Test_TransfersBySender_MostRecentFirstWithLimit() {
	sender := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	first := s.exampleTransfer()
	second := s.exampleTransfer()
	second.ID = "t-2"
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	firstValue, _ := json.Marshal(first)
	secondValue, _ := json.Marshal(second)

	s.keyValueReaderWriter.EXPECT().GetByPrefix([]byte("transfer:user:0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266:")).Return([][]byte{[]byte("t-1"), []byte("t-2")}, nil)
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte("transfer:id:t-2")).Return(secondValue, nil)
	_ = firstValue

	transfers, err := s.transferStore.TransfersBySender(sender, 1)

	s.Nil(err)
	s.Equal(1, len(transfers))
	s.Equal("t-2", transfers[0].ID)
}
