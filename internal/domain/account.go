package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind is ordered so that comparing two kinds gives the first key of the
// canonical account ordering.
type Kind int

const (
	KindChecking Kind = iota
	KindCollegeChecking
	KindMoneyMarket
	KindSavings
)

func (k Kind) Code() string {
	switch k {
	case KindChecking:
		return "C"
	case KindCollegeChecking:
		return "CC"
	case KindMoneyMarket:
		return "MM"
	case KindSavings:
		return "S"
	default:
		return "?"
	}
}

func (k Kind) String() string {
	switch k {
	case KindChecking:
		return "Checking"
	case KindCollegeChecking:
		return "College Checking"
	case KindMoneyMarket:
		return "Money Market"
	case KindSavings:
		return "Savings"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(code string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "C", "CHECKING":
		return KindChecking, nil
	case "CC", "COLLEGE_CHECKING":
		return KindCollegeChecking, nil
	case "MM", "MONEY_MARKET":
		return KindMoneyMarket, nil
	case "S", "SAVINGS":
		return KindSavings, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, code)
	}
}

const dateLayout = "1/2/2006"

type Profile struct {
	FirstName string
	LastName  string
	DOB       time.Time
}

func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.FirstName, other.FirstName) &&
		strings.EqualFold(p.LastName, other.LastName) &&
		sameDate(p.DOB, other.DOB)
}

// Compare orders by last name, first name, then date of birth.
func (p Profile) Compare(other Profile) int {
	if c := strings.Compare(strings.ToLower(p.LastName), strings.ToLower(other.LastName)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(p.FirstName), strings.ToLower(other.FirstName)); c != 0 {
		return c
	}
	return compareDate(p.DOB, other.DOB)
}

func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, FormatDate(p.DOB))
}

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func compareDate(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return cmpInt(ay, by)
	case am != bm:
		return cmpInt(int(am), int(bm))
	default:
		return cmpInt(ad, bd)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Account is implemented by every account kind. Balance doubles as the
// requested amount when an Account is passed to Deposit or Withdraw.
type Account interface {
	Kind() Kind
	Holder() Profile
	Balance() float64
	SetBalance(balance float64)
	MonthlyInterest() float64
	MonthlyFee() float64
	String() string
}

type MoneyMarketAccount interface {
	Account
	Withdrawals() int
	SetWithdrawals(n int)
	Loyal() bool
	SetLoyal(loyal bool)
}

// SameIdentity reports whether a and b name the same account: same kind and
// same holder, whatever the balances.
func SameIdentity(a, b Account) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.Holder().Equal(b.Holder())
}

// Compare is the canonical account ordering: kind, then holder profile.
func Compare(a, b Account) int {
	if c := cmpInt(int(a.Kind()), int(b.Kind())); c != 0 {
		return c
	}
	return a.Holder().Compare(b.Holder())
}
