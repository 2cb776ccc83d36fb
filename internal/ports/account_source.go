package ports

import (
	"context"

	"github.com/bnema/bank-accounts-cli/internal/domain"
)

// AccountSource supplies the accounts a session starts with.
type AccountSource interface {
	Load(ctx context.Context) ([]domain.Account, error)
}
