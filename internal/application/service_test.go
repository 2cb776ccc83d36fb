package application

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/bnema/bank-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()
	return NewService(domain.DefaultSchedule(), clock, nil)
}

func holder(t *testing.T, first, last, dob string) domain.Profile {
	t.Helper()

	parsed, err := domain.ParseDate(dob)
	require.NoError(t, err)
	return domain.Profile{FirstName: first, LastName: last, DOB: parsed}
}

func requireRejected(t *testing.T, err error, reason error, message string) {
	t.Helper()

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected), "want RejectedError, got %v", err)
	assert.ErrorIs(t, err, reason)
	assert.Equal(t, message, rejected.Message)
}

func TestServiceOpenAndDuplicate(t *testing.T) {
	service := newTestService(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")

	out, err := service.Open(OpenCommand{Kind: domain.KindChecking, Holder: jane, Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 2/19/2000(C) opened.", out)

	_, err = service.Open(OpenCommand{Kind: domain.KindChecking, Holder: jane, Amount: 900})
	requireRejected(t, err, domain.ErrDuplicateAccount, "Jane Doe 2/19/2000(C) is already in the database.")

	balance, ok := service.Balance(domain.KindChecking, jane)
	require.True(t, ok)
	assert.Equal(t, 500.0, balance)
}

func TestServiceOpenValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     OpenCommand
		reason  error
		message string
	}{
		{
			name:    "non-positive deposit",
			cmd:     OpenCommand{Kind: domain.KindChecking, Holder: holder(t, "Jane", "Doe", "2/19/2000"), Amount: 0},
			reason:  domain.ErrInvalidAmount,
			message: "Initial deposit cannot be 0 or negative.",
		},
		{
			name:    "NaN deposit",
			cmd:     OpenCommand{Kind: domain.KindChecking, Holder: holder(t, "Jane", "Doe", "2/19/2000"), Amount: math.NaN()},
			reason:  domain.ErrInvalidAmount,
			message: "Initial deposit cannot be 0 or negative.",
		},
		{
			name:    "infinite deposit",
			cmd:     OpenCommand{Kind: domain.KindSavings, Holder: holder(t, "Jane", "Doe", "2/19/2000"), Amount: math.Inf(1)},
			reason:  domain.ErrInvalidAmount,
			message: "Initial deposit cannot be 0 or negative.",
		},
		{
			name:    "money market minimum",
			cmd:     OpenCommand{Kind: domain.KindMoneyMarket, Holder: holder(t, "Jane", "Doe", "2/19/2000"), Amount: 1999.99},
			reason:  domain.ErrInvalidAmount,
			message: "Minimum of $2,000.00 to open a Money Market account.",
		},
		{
			name:    "future date of birth",
			cmd:     OpenCommand{Kind: domain.KindChecking, Holder: holder(t, "Jane", "Doe", "2/14/2026"), Amount: 10},
			reason:  domain.ErrInvalidProfile,
			message: "DOB invalid: 2/14/2026 cannot be today or a future day.",
		},
		{
			name:    "under sixteen",
			cmd:     OpenCommand{Kind: domain.KindSavings, Holder: holder(t, "Kid", "Doe", "2/15/2010"), Amount: 10},
			reason:  domain.ErrInvalidProfile,
			message: "DOB invalid: 2/15/2010 under 16.",
		},
		{
			name:    "college checking over twenty four",
			cmd:     OpenCommand{Kind: domain.KindCollegeChecking, Holder: holder(t, "Old", "Doe", "1/1/1990"), Amount: 10},
			reason:  domain.ErrInvalidProfile,
			message: "DOB invalid: 1/1/1990 over 24.",
		},
		{
			name:    "missing date of birth",
			cmd:     OpenCommand{Kind: domain.KindChecking, Holder: domain.Profile{FirstName: "Jane", LastName: "Doe"}, Amount: 10},
			reason:  domain.ErrInvalidDate,
			message: "DOB invalid:  not a valid calendar date!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)
			_, err := service.Open(tt.cmd)
			requireRejected(t, err, tt.reason, tt.message)
			assert.Equal(t, 0, service.Len())
		})
	}
}

func TestServiceSixteenthBirthdayIsAccepted(t *testing.T) {
	service := newTestService(t)

	_, err := service.Open(OpenCommand{Kind: domain.KindSavings, Holder: holder(t, "Kid", "Doe", "2/14/2010"), Amount: 10})
	require.NoError(t, err)
}

func TestServiceWithdrawScenario(t *testing.T) {
	service := newTestService(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")

	_, err := service.Open(OpenCommand{Kind: domain.KindChecking, Holder: jane, Amount: 500})
	require.NoError(t, err)

	_, err = service.Withdraw(WithdrawCommand{Kind: domain.KindChecking, Holder: jane, Amount: 600})
	requireRejected(t, err, domain.ErrInsufficientFund, "Jane Doe 2/19/2000(C) Withdraw - insufficient fund.")

	out, err := service.Withdraw(WithdrawCommand{Kind: domain.KindChecking, Holder: jane, Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 2/19/2000(C) Withdraw - balance updated.", out)

	balance, ok := service.Balance(domain.KindChecking, jane)
	require.True(t, ok)
	assert.Equal(t, 300.0, balance)

	_, err = service.Withdraw(WithdrawCommand{Kind: domain.KindSavings, Holder: jane, Amount: 1})
	requireRejected(t, err, domain.ErrAccountNotFound, "Jane Doe 2/19/2000(S) is not in the database.")

	_, err = service.Withdraw(WithdrawCommand{Kind: domain.KindChecking, Holder: jane, Amount: -1})
	requireRejected(t, err, domain.ErrInvalidAmount, "Withdraw - amount cannot be 0 or negative.")
}

func TestServiceRejectsNonFiniteAmounts(t *testing.T) {
	service := newTestService(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")

	_, err := service.Open(OpenCommand{Kind: domain.KindChecking, Holder: jane, Amount: 500})
	require.NoError(t, err)

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = service.Withdraw(WithdrawCommand{Kind: domain.KindChecking, Holder: jane, Amount: amount})
		requireRejected(t, err, domain.ErrInvalidAmount, "Withdraw - amount cannot be 0 or negative.")

		_, err = service.Deposit(DepositCommand{Kind: domain.KindChecking, Holder: jane, Amount: amount})
		requireRejected(t, err, domain.ErrInvalidAmount, "Deposit - amount cannot be 0 or negative.")
	}

	balance, ok := service.Balance(domain.KindChecking, jane)
	require.True(t, ok)
	assert.Equal(t, 500.0, balance)
}

func TestServiceDepositAndClose(t *testing.T) {
	service := newTestService(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")

	_, err := service.Deposit(DepositCommand{Kind: domain.KindSavings, Holder: jane, Amount: 10})
	requireRejected(t, err, domain.ErrAccountNotFound, "Jane Doe 2/19/2000(S) is not in the database.")

	_, err = service.Open(OpenCommand{Kind: domain.KindSavings, Holder: jane, Amount: 100, Loyal: true})
	require.NoError(t, err)

	out, err := service.Deposit(DepositCommand{Kind: domain.KindSavings, Holder: jane, Amount: 50.25})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 2/19/2000(S) Deposit - balance updated.", out)

	balance, _ := service.Balance(domain.KindSavings, jane)
	assert.Equal(t, 150.25, balance)

	out, err = service.Close(CloseCommand{Kind: domain.KindSavings, Holder: jane})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe 2/19/2000(S) has been closed.", out)
	assert.Equal(t, 0, service.Len())

	_, err = service.Close(CloseCommand{Kind: domain.KindSavings, Holder: jane})
	requireRejected(t, err, domain.ErrAccountNotFound, "Jane Doe 2/19/2000(S) is not in the database.")
}

func TestServiceExecuteDispatch(t *testing.T) {
	service := newTestService(t)

	out, err := service.Execute(PrintCommand{Report: ReportSorted})
	require.NoError(t, err)
	assert.Equal(t, "Account Database is empty!\n", out)

	_, err = service.Execute(QuitCommand{})
	assert.ErrorIs(t, err, ErrQuit)

	_, err = service.Execute(PrintCommand{Report: "weekly"})
	assert.ErrorIs(t, err, ErrUnsupportedCommand)
}

func TestServiceReportUpdatedCommitsCycle(t *testing.T) {
	service := newTestService(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")

	_, err := service.Open(OpenCommand{Kind: domain.KindChecking, Holder: jane, Amount: 600})
	require.NoError(t, err)

	fees, err := service.Report(ReportFees)
	require.NoError(t, err)
	require.Len(t, fees.Entries, 1)
	assert.Equal(t, 12.0, fees.Entries[0].Fee)
	assert.InDelta(t, 0.5, fees.Entries[0].Interest, 1e-9)

	updated, err := service.Report(ReportUpdated)
	require.NoError(t, err)
	assert.Equal(t, "Accounts with fees and interests applied", updated.Title)

	balance, _ := service.Balance(domain.KindChecking, jane)
	assert.InDelta(t, 588.5, balance, 1e-9)
}

func TestServiceSeedSkipsDuplicates(t *testing.T) {
	source := mocks.NewMockAccountSource(t)
	jane := holder(t, "Jane", "Doe", "2/19/2000")
	source.EXPECT().Load(mockAnyContext()).Return([]domain.Account{
		domain.NewChecking(jane, 100, nil),
		domain.NewChecking(jane, 200, nil),
		domain.NewSavings(jane, 300, false, nil),
	}, nil)

	service := newTestService(t)
	opened, err := service.Seed(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, 2, opened)
	assert.Equal(t, 2, service.Len())

	balance, _ := service.Balance(domain.KindChecking, jane)
	assert.Equal(t, 100.0, balance)
}

func TestServiceSeedPropagatesLoadError(t *testing.T) {
	source := mocks.NewMockAccountSource(t)
	source.EXPECT().Load(mockAnyContext()).Return(nil, errors.New("boom"))

	_, err := newTestService(t).Seed(context.Background(), source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed accounts: boom")
}

func mockAnyContext() interface{} {
	return mock.Anything
}
