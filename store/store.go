// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package store

// KeyValueReaderWriter is the persistence surface the stores require. It is
// satisfied by lvldb.LVLDB.
type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
	GetByPrefix(prefix []byte) ([][]byte, error)
}
