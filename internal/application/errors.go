package application

import "fmt"

// RejectedError is a transaction the ledger refused. Message is meant for the
// person who typed the transaction; Reason is a domain sentinel.
type RejectedError struct {
	Reason  error
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.Reason
}

func reject(reason error, format string, args ...any) error {
	return &RejectedError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
