package order

import (
	"context"
	"time"
)

// Repository is the persistence contract for orders.
type Repository interface {
	ListAll(context context.Context) ([]*Order, error)
	ListByClient(context context.Context, clientID string) ([]*Order, error)
	GetByID(context context.Context, id string) (*Order, error)
	Create(context context.Context, order *Order) error
	UpdateStatus(context context.Context, id, status string) (*Order, error)
}

// IdempotencyStore reserves submission keys for the duration of the retry
// window.
type IdempotencyStore interface {
	/*
		Reserve atomically claims key for orderID.

		Parameters:
		  - context: context.Context
		  - key: string (Client-supplied Idempotency-Key)
		  - orderID: string (The order being created)
		  - ttl: time.Duration

		Returns:
		  - string: The order ID already holding the key, "" if the claim is fresh
		  - error: Store connectivity failures
	*/
	Reserve(context context.Context, key, orderID string, ttl time.Duration) (string, error)

	/*
		Release frees a reserved key after a failed order creation.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - error: Store connectivity failures
	*/
	Release(context context.Context, key string) error
}
