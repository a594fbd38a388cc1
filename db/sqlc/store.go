package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines all functions to execute db queries and transactions
type Store interface {
	Querier
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// User registration transaction
	CreateUserTx(ctx context.Context, arg CreateUserTxParams) (CreateUserTxResult, error)
	// Match confirmation transaction
	ConfirmMatchTx(ctx context.Context, arg ConfirmMatchTxParams) (ConfirmMatchTxResult, error)
	// Delivery transactions
	ClaimDeliveryTx(ctx context.Context, arg ClaimDeliveryTxParams) (ClaimDeliveryTxResult, error)
	CompleteDeliveryTx(ctx context.Context, arg CompleteDeliveryTxParams) (CompleteDeliveryTxResult, error)
	// Offer expiry sweep transaction
	ExpireOffersTx(ctx context.Context, arg ExpireOffersTxParams) (ExpireOffersTxResult, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	connPool *pgxpool.Pool
	*Queries
}

// NewStore creates a new store
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Ping checks the database connection
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

// execTx executes a function within a database transaction
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
