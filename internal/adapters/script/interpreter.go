package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/bank-accounts-cli/internal/application"
	"go.uber.org/zap"
)

const (
	runningMessage    = "Transaction Manager is running."
	terminatedMessage = "Transaction Manager is terminated."
)

// ReportRenderer turns a structured report into terminal output. When it is
// nil the interpreter prints the ledger's plain text reports.
type ReportRenderer func(application.Report) (string, error)

type Interpreter struct {
	service  *application.Service
	renderer ReportRenderer
	logger   *zap.Logger
}

func NewInterpreter(service *application.Service, renderer ReportRenderer, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{service: service, renderer: renderer, logger: logger}
}

// Run executes transactions from in until Q or end of input. Rejected
// transactions are reported on out and do not stop the run.
func (i *Interpreter) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, runningMessage); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		cmd, err := Parse(scanner.Text())
		if errors.Is(err, ErrBlankLine) {
			continue
		}
		if err != nil {
			if err := i.report(out, lineNo, err); err != nil {
				return err
			}
			continue
		}

		text, err := i.execute(cmd)
		if errors.Is(err, application.ErrQuit) {
			_, err := fmt.Fprintln(out, terminatedMessage)
			return err
		}
		if err != nil {
			if err := i.report(out, lineNo, err); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(out, strings.TrimRight(text, "\n")); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transactions: %w", err)
	}

	return nil
}

func (i *Interpreter) execute(cmd application.Command) (string, error) {
	printCmd, ok := cmd.(application.PrintCommand)
	if !ok || i.renderer == nil {
		return i.service.Execute(cmd)
	}

	report, err := i.service.Report(printCmd.Report)
	if err != nil {
		return "", err
	}
	rendered, err := i.renderer(report)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return rendered, nil
}

func (i *Interpreter) report(out io.Writer, lineNo int, err error) error {
	var rejected *application.RejectedError
	if !errors.As(err, &rejected) {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	i.logger.Debug("line rejected", zap.Int("line", lineNo), zap.Error(err))
	_, werr := fmt.Fprintln(out, rejected.Message)
	return werr
}
