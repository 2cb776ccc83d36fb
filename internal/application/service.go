package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/bnema/bank-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	minimumAge        = 16
	collegeAgeCeiling = 24
)

var ErrUnsupportedCommand = errors.New("unsupported command")

// ErrQuit is returned by Execute for a QuitCommand.
var ErrQuit = errors.New("quit")

type Service struct {
	accounts *domain.Collection
	schedule domain.Schedule
	clock    ports.Clock
	logger   *zap.Logger
}

func NewService(schedule domain.Schedule, clock ports.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		accounts: domain.NewCollection(),
		schedule: schedule,
		clock:    clock,
		logger:   logger,
	}
}

// Seed opens every account the source yields. Accounts whose identity is
// already held are skipped.
func (s *Service) Seed(ctx context.Context, source ports.AccountSource) (int, error) {
	accounts, err := source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load seed accounts: %w", err)
	}

	opened := 0
	for _, account := range accounts {
		if !s.accounts.Open(account) {
			s.logger.Warn("skipping duplicate seed account",
				zap.String("kind", account.Kind().Code()),
				zap.Stringer("holder", account.Holder()),
			)
			continue
		}
		opened++
	}

	s.logger.Debug("seeded accounts", zap.Int("opened", opened), zap.Int("loaded", len(accounts)))
	return opened, nil
}

func (s *Service) Execute(cmd Command) (string, error) {
	switch c := cmd.(type) {
	case OpenCommand:
		return s.Open(c)
	case CloseCommand:
		return s.Close(c)
	case DepositCommand:
		return s.Deposit(c)
	case WithdrawCommand:
		return s.Withdraw(c)
	case PrintCommand:
		return s.ReportText(c.Report)
	case QuitCommand:
		return "", ErrQuit
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd)
	}
}

func (s *Service) Open(cmd OpenCommand) (string, error) {
	label := accountLabel(cmd.Kind, cmd.Holder)
	if err := s.validateHolder(cmd.Kind, cmd.Holder); err != nil {
		return "", s.rejected(err)
	}
	if !validAmount(cmd.Amount) {
		return "", s.rejected(reject(domain.ErrInvalidAmount, "Initial deposit cannot be 0 or negative."))
	}
	if cmd.Kind == domain.KindMoneyMarket && cmd.Amount < s.schedule.MoneyMarket.MinimumOpenBalance {
		return "", s.rejected(reject(domain.ErrInvalidAmount, "Minimum of %s to open a Money Market account.",
			domain.FormatCurrency(s.schedule.MoneyMarket.MinimumOpenBalance)))
	}

	account, err := domain.NewAccount(cmd.Kind, cmd.Holder, cmd.Amount, &s.schedule,
		domain.WithCampus(cmd.Campus),
		domain.WithLoyal(cmd.Loyal),
	)
	if err != nil {
		return "", fmt.Errorf("build account: %w", err)
	}

	if !s.accounts.Open(account) {
		return "", s.rejected(reject(domain.ErrDuplicateAccount, "%s is already in the database.", label))
	}

	s.logger.Debug("account opened", zap.String("account", label), zap.Float64("balance", cmd.Amount))
	return label + " opened.", nil
}

func (s *Service) Close(cmd CloseCommand) (string, error) {
	label := accountLabel(cmd.Kind, cmd.Holder)
	key, err := s.lookupKey(cmd.Kind, cmd.Holder, 0)
	if err != nil {
		return "", err
	}

	if !s.accounts.Close(key) {
		return "", s.rejected(reject(domain.ErrAccountNotFound, "%s is not in the database.", label))
	}

	s.logger.Debug("account closed", zap.String("account", label))
	return label + " has been closed.", nil
}

func (s *Service) Deposit(cmd DepositCommand) (string, error) {
	label := accountLabel(cmd.Kind, cmd.Holder)
	if !validAmount(cmd.Amount) {
		return "", s.rejected(reject(domain.ErrInvalidAmount, "Deposit - amount cannot be 0 or negative."))
	}

	request, err := s.lookupKey(cmd.Kind, cmd.Holder, cmd.Amount)
	if err != nil {
		return "", err
	}

	if !s.accounts.Deposit(request) {
		return "", s.rejected(reject(domain.ErrAccountNotFound, "%s is not in the database.", label))
	}

	s.logger.Debug("deposit applied", zap.String("account", label), zap.Float64("amount", cmd.Amount))
	return label + " Deposit - balance updated.", nil
}

func (s *Service) Withdraw(cmd WithdrawCommand) (string, error) {
	label := accountLabel(cmd.Kind, cmd.Holder)
	if !validAmount(cmd.Amount) {
		return "", s.rejected(reject(domain.ErrInvalidAmount, "Withdraw - amount cannot be 0 or negative."))
	}

	request, err := s.lookupKey(cmd.Kind, cmd.Holder, cmd.Amount)
	if err != nil {
		return "", err
	}

	if !s.accounts.Contains(request) {
		return "", s.rejected(reject(domain.ErrAccountNotFound, "%s is not in the database.", label))
	}
	if !s.accounts.Withdraw(request) {
		return "", s.rejected(reject(domain.ErrInsufficientFund, "%s Withdraw - insufficient fund.", label))
	}

	s.logger.Debug("withdrawal applied", zap.String("account", label), zap.Float64("amount", cmd.Amount))
	return label + " Withdraw - balance updated.", nil
}

// Balance looks up the stored balance of one account.
func (s *Service) Balance(kind domain.Kind, holder domain.Profile) (float64, bool) {
	key, err := s.lookupKey(kind, holder, 0)
	if err != nil {
		return 0, false
	}
	return s.accounts.Balance(key)
}

func (s *Service) Len() int {
	return s.accounts.Len()
}

// ReportText renders a report in the ledger's plain text format. The updated
// report commits one monthly cycle.
func (s *Service) ReportText(kind ReportKind) (string, error) {
	switch kind {
	case ReportSorted:
		return s.accounts.PrintSorted(), nil
	case ReportFees:
		return s.accounts.PrintFeesAndInterests(), nil
	case ReportUpdated:
		out := s.accounts.PrintUpdatedBalances()
		s.logger.Info("applied monthly fees and interest", zap.Int("accounts", s.accounts.Len()))
		return out, nil
	default:
		return "", fmt.Errorf("%w: report %q", ErrUnsupportedCommand, kind)
	}
}

// Report returns the same data as ReportText in structured form.
func (s *Service) Report(kind ReportKind) (Report, error) {
	report := Report{Kind: kind, Title: reportTitle(kind)}
	switch kind {
	case ReportSorted:
		report.Entries = s.accounts.Sorted()
	case ReportFees:
		report.Entries = s.accounts.FeesAndInterests()
	case ReportUpdated:
		report.Entries = s.accounts.ApplyFeesAndInterests()
		s.logger.Info("applied monthly fees and interest", zap.Int("accounts", s.accounts.Len()))
	default:
		return Report{}, fmt.Errorf("%w: report %q", ErrUnsupportedCommand, kind)
	}
	return report, nil
}

// lookupKey builds an account that only carries identity and an amount, the
// shape the collection expects for lookups.
func (s *Service) lookupKey(kind domain.Kind, holder domain.Profile, amount float64) (domain.Account, error) {
	key, err := domain.NewAccount(kind, holder, amount, &s.schedule)
	if err != nil {
		return nil, fmt.Errorf("build account key: %w", err)
	}
	return key, nil
}

func (s *Service) validateHolder(kind domain.Kind, holder domain.Profile) error {
	dob := domain.FormatDate(holder.DOB)
	if holder.DOB.IsZero() {
		return reject(domain.ErrInvalidDate, "DOB invalid: %s not a valid calendar date!", dob)
	}

	now := s.clock.Now()
	if !holder.DOB.Before(startOfDay(now)) {
		return reject(domain.ErrInvalidProfile, "DOB invalid: %s cannot be today or a future day.", dob)
	}

	age := ageOn(holder.DOB, now)
	if age < minimumAge {
		return reject(domain.ErrInvalidProfile, "DOB invalid: %s under %d.", dob, minimumAge)
	}
	if kind == domain.KindCollegeChecking && age >= collegeAgeCeiling {
		return reject(domain.ErrInvalidProfile, "DOB invalid: %s over %d.", dob, collegeAgeCeiling)
	}

	return nil
}

func (s *Service) rejected(err error) error {
	s.logger.Info("transaction rejected", zap.Error(err))
	return err
}

// validAmount reports whether amount is positive and finite.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

func accountLabel(kind domain.Kind, holder domain.Profile) string {
	return fmt.Sprintf("%s(%s)", holder, kind.Code())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ageOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
