package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/bank-accounts-cli/internal/config"
	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/bnema/bank-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Repository reads the accounts a session starts with from a TOML file. It
// never writes: the ledger itself lives in memory only.
type Repository struct {
	seedPath string
	schedule *domain.Schedule
}

var _ ports.AccountSource = (*Repository)(nil)

// NewRepository reads the seed path from ledger.seed_path. An empty path gives
// a repository that loads no accounts.
func NewRepository(cfg *viper.Viper, schedule *domain.Schedule) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	seedPath := cfg.GetString(config.SeedPathKey)
	if seedPath != "" {
		absPath, err := filepath.Abs(seedPath)
		if err != nil {
			return nil, fmt.Errorf("resolve seed path: %w", err)
		}
		seedPath = filepath.Clean(absPath)
	}

	return &Repository{seedPath: seedPath, schedule: schedule}, nil
}

func (r *Repository) Path() string {
	return r.seedPath
}

func (r *Repository) Load(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.seedPath == "" {
		return nil, nil
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for i, entry := range file.Accounts {
		account, err := fromSchema(entry, r.schedule)
		if err != nil {
			return nil, fmt.Errorf("decode seed account %d: %w", i+1, err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.seedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read seed file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode seed file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func fromSchema(entry accountSchema, schedule *domain.Schedule) (domain.Account, error) {
	kind, err := domain.ParseKind(entry.Kind)
	if err != nil {
		return nil, err
	}

	dob, err := domain.ParseDate(entry.DOB)
	if err != nil {
		return nil, err
	}

	opts := []domain.Option{
		domain.WithLoyal(entry.Loyal),
		domain.WithWithdrawals(entry.Withdrawals),
	}
	if kind == domain.KindCollegeChecking {
		campus, err := domain.ParseCampus(entry.Campus)
		if err != nil {
			return nil, err
		}
		opts = append(opts, domain.WithCampus(campus))
	}

	holder := domain.Profile{FirstName: entry.FirstName, LastName: entry.LastName, DOB: dob}
	return domain.NewAccount(kind, holder, entry.Balance, schedule, opts...)
}
