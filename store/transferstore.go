// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/remitix/relayer/transfer"
)

var (
	transferKey     = "transfer:id:%s"
	transferUserKey = "transfer:user:%s:%020d:%s"

	ErrTransferNotFound = errors.New("transfer not found")
)

type TransferStore struct {
	db KeyValueReaderWriter
}

func NewTransferStore(db KeyValueReaderWriter) *TransferStore {
	return &TransferStore{
		db: db,
	}
}

// StoreTransfer persists the transfer under its id and indexes it per
// sender. Saving an updated transfer overwrites the previous record.
func (ts *TransferStore) StoreTransfer(t *transfer.Transfer) error {
	value, err := json.Marshal(t)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(transferKey, t.ID)
	err = ts.db.SetByKey([]byte(key), value)
	if err != nil {
		return err
	}

	indexKey := fmt.Sprintf(transferUserKey, strings.ToLower(t.Sender.Hex()), t.CreatedAt.UnixNano(), t.ID)
	return ts.db.SetByKey([]byte(indexKey), []byte(t.ID))
}

// Transfer fetches one transfer by id.
func (ts *TransferStore) Transfer(id string) (*transfer.Transfer, error) {
	key := fmt.Sprintf(transferKey, id)
	value, err := ts.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, err
	}

	t := &transfer.Transfer{}
	err = json.Unmarshal(value, t)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// TransfersBySender returns the sender's transfers, most recent first,
// capped at limit when limit is positive.
func (ts *TransferStore) TransfersBySender(sender common.Address, limit int) ([]*transfer.Transfer, error) {
	prefix := fmt.Sprintf("transfer:user:%s:", strings.ToLower(sender.Hex()))
	ids, err := ts.db.GetByPrefix([]byte(prefix))
	if err != nil {
		return nil, err
	}

	transfers := make([]*transfer.Transfer, 0)
	// index keys sort oldest first
	for i := len(ids) - 1; i >= 0; i-- {
		if limit > 0 && len(transfers) == limit {
			break
		}

		t, err := ts.Transfer(string(ids[i]))
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}
