package script

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/bnema/bank-accounts-cli/internal/logging"
	"github.com/bnema/bank-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterpreter(t *testing.T, renderer ReportRenderer) *Interpreter {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)).Maybe()
	logger := logging.NewNop()
	return NewInterpreter(application.NewService(domain.DefaultSchedule(), clock, logger), renderer, logger)
}

func TestInterpreterRejectsNonFiniteAmounts(t *testing.T) {
	in := strings.Join([]string{
		"O C Jane Doe 2/19/2000 500",
		"W C Jane Doe 2/19/2000 NaN",
		"D C Jane Doe 2/19/2000 Inf",
		"O S Ann Smith 7/4/1985 NaN 0",
		"P",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, newInterpreter(t, nil).Run(context.Background(), strings.NewReader(in), &out))

	assert.Equal(t, 3, strings.Count(out.String(), "Not a valid amount.\n"))
	assert.Contains(t, out.String(), "Checking::Jane Doe 2/19/2000::Balance $500.00\n")
	assert.NotContains(t, out.String(), "NaN")
	assert.NotContains(t, out.String(), "Ann Smith")
}

func TestInterpreterRunsSession(t *testing.T) {
	in := strings.Join([]string{
		"O C Jane Doe 2/19/2000 500",
		"O C Jane Doe 2/19/2000 500",
		"",
		"W C Jane Doe 2/19/2000 600",
		"W C Jane Doe 2/19/2000 200",
		"D C John Doe 3/1/1999 10",
		"Z",
		"P",
		"Q",
		"P",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, newInterpreter(t, nil).Run(context.Background(), strings.NewReader(in), &out))

	want := strings.Join([]string{
		"Transaction Manager is running.",
		"Jane Doe 2/19/2000(C) opened.",
		"Jane Doe 2/19/2000(C) is already in the database.",
		"Jane Doe 2/19/2000(C) Withdraw - insufficient fund.",
		"Jane Doe 2/19/2000(C) Withdraw - balance updated.",
		"John Doe 3/1/1999(C) is not in the database.",
		"Invalid command!",
		"",
		"*Accounts sorted by account type and profile.",
		"Checking::Jane Doe 2/19/2000::Balance $300.00",
		"*end of list.",
		"Transaction Manager is terminated.",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestInterpreterStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newInterpreter(t, nil).Run(context.Background(), strings.NewReader("P\n"), &out))
	assert.Equal(t, "Transaction Manager is running.\nAccount Database is empty!\n", out.String())
}

func TestInterpreterUsesRenderer(t *testing.T) {
	var seen []application.ReportKind
	renderer := func(r application.Report) (string, error) {
		seen = append(seen, r.Kind)
		return "rendered " + string(r.Kind), nil
	}

	var out bytes.Buffer
	err := newInterpreter(t, renderer).Run(context.Background(), strings.NewReader("PI\nUB\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []application.ReportKind{application.ReportFees, application.ReportUpdated}, seen)
	assert.Contains(t, out.String(), "rendered fees\nrendered updated\n")
}

func TestInterpreterRendererFailureStopsRun(t *testing.T) {
	renderer := func(application.Report) (string, error) {
		return "", errors.New("no tty")
	}

	var out bytes.Buffer
	err := newInterpreter(t, renderer).Run(context.Background(), strings.NewReader("P\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1: render report: no tty")
}

func TestInterpreterHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newInterpreter(t, nil).Run(ctx, strings.NewReader("P\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
}
