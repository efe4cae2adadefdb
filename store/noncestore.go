// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/remitix/relayer/auth"
)

var nonceKey = "nonce:%s:%s:%d"

// NonceStore persists consumed authorization nonces per (signer, kind) so a
// signed authorization can never be replayed through the engine. MarkUsed is
// an atomic check-and-burn; concurrent attempts on one nonce see exactly one
// success.
type NonceStore struct {
	mu sync.Mutex
	db KeyValueReaderWriter
}

func NewNonceStore(db KeyValueReaderWriter) *NonceStore {
	return &NonceStore{
		db: db,
	}
}

// IsUsed reports whether the nonce was already consumed for the signer and
// kind.
func (ns *NonceStore) IsUsed(kind auth.Kind, signer common.Address, nonce uint64) (bool, error) {
	return ns.lookup(kind, signer, nonce)
}

// MarkUsed burns the nonce. Returns auth.ErrNonceUsed when it was already
// consumed.
func (ns *NonceStore) MarkUsed(kind auth.Kind, signer common.Address, nonce uint64) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	used, err := ns.lookup(kind, signer, nonce)
	if err != nil {
		return err
	}
	if used {
		return auth.ErrNonceUsed
	}

	key := fmt.Sprintf(nonceKey, kind.String(), strings.ToLower(signer.Hex()), nonce)
	return ns.db.SetByKey([]byte(key), []byte{1})
}

func (ns *NonceStore) lookup(kind auth.Kind, signer common.Address, nonce uint64) (bool, error) {
	key := fmt.Sprintf(nonceKey, kind.String(), strings.ToLower(signer.Hex()), nonce)
	_, err := ns.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
