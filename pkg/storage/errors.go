package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate row")
	// ErrStockRowMissing is returned when no stock row exists for the
	// requested (product, option) pair.
	ErrStockRowMissing = errors.New("stock row missing")
	// ErrOutOfStock is returned when a reservation asks for more units than
	// are available.
	ErrOutOfStock = errors.New("out of stock")
)
