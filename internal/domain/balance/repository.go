package balance

import "context"

type Repository interface {
	// Init inserts the zero balance row for a freshly created customer.
	Init(ctx context.Context, businessID, customerID string) (*CustomerBalance, error)
	Get(ctx context.Context, businessID, customerID string) (*CustomerBalance, error)

	// Adjust adds amount (signed) to the balance inside the store and returns
	// the new row. No credit limit check.
	Adjust(ctx context.Context, businessID, customerID string, amount float64) (*CustomerBalance, error)

	// Charge adds amount only if the result stays within limit; otherwise it
	// returns ErrCreditLimitExceeded and leaves the row untouched.
	Charge(ctx context.Context, businessID, customerID string, amount, limit float64) (*CustomerBalance, error)
}
