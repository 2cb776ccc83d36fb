package domain

import (
	"fmt"
	"strings"
)

type Campus int

const (
	CampusNewBrunswick Campus = iota
	CampusNewark
	CampusCamden
)

func (c Campus) String() string {
	switch c {
	case CampusNewBrunswick:
		return "NEW_BRUNSWICK"
	case CampusNewark:
		return "NEWARK"
	case CampusCamden:
		return "CAMDEN"
	default:
		return fmt.Sprintf("Campus(%d)", int(c))
	}
}

func ParseCampus(raw string) (Campus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "0", "NEW_BRUNSWICK":
		return CampusNewBrunswick, nil
	case "1", "NEWARK":
		return CampusNewark, nil
	case "2", "CAMDEN":
		return CampusCamden, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCampus, raw)
	}
}

type base struct {
	holder   Profile
	balance  float64
	schedule *Schedule
}

func (b *base) Holder() Profile            { return b.holder }
func (b *base) Balance() float64           { return b.balance }
func (b *base) SetBalance(balance float64) { b.balance = balance }

func (b *base) rules() Schedule {
	if b.schedule == nil {
		return DefaultSchedule()
	}
	return *b.schedule
}

func (b *base) describe(kind Kind) string {
	return fmt.Sprintf("%s::%s::Balance %s", kind, b.holder, FormatCurrency(b.balance))
}

type Checking struct {
	base
}

var _ Account = (*Checking)(nil)

func NewChecking(holder Profile, balance float64, schedule *Schedule) *Checking {
	return &Checking{base{holder: holder, balance: balance, schedule: schedule}}
}

func (a *Checking) Kind() Kind { return KindChecking }

func (a *Checking) MonthlyInterest() float64 {
	return monthly(a.balance, a.rules().Checking.AnnualRate)
}

func (a *Checking) MonthlyFee() float64 {
	r := a.rules().Checking
	if a.balance >= r.FeeWaiver {
		return 0
	}
	return r.Fee
}

func (a *Checking) String() string { return a.describe(KindChecking) }

type CollegeChecking struct {
	base
	Campus Campus
}

var _ Account = (*CollegeChecking)(nil)

func NewCollegeChecking(holder Profile, balance float64, campus Campus, schedule *Schedule) *CollegeChecking {
	return &CollegeChecking{base: base{holder: holder, balance: balance, schedule: schedule}, Campus: campus}
}

func (a *CollegeChecking) Kind() Kind { return KindCollegeChecking }

func (a *CollegeChecking) MonthlyInterest() float64 {
	return monthly(a.balance, a.rules().CollegeChecking.AnnualRate)
}

func (a *CollegeChecking) MonthlyFee() float64 { return 0 }

func (a *CollegeChecking) String() string {
	return a.describe(KindCollegeChecking) + "::" + a.Campus.String()
}

type Savings struct {
	base
	loyal bool
}

var _ Account = (*Savings)(nil)

func NewSavings(holder Profile, balance float64, loyal bool, schedule *Schedule) *Savings {
	return &Savings{base: base{holder: holder, balance: balance, schedule: schedule}, loyal: loyal}
}

func (a *Savings) Kind() Kind          { return KindSavings }
func (a *Savings) Loyal() bool         { return a.loyal }
func (a *Savings) SetLoyal(loyal bool) { a.loyal = loyal }

func (a *Savings) MonthlyInterest() float64 {
	r := a.rules().Savings
	rate := r.AnnualRate
	if a.loyal {
		rate += r.LoyalBonus
	}
	return monthly(a.balance, rate)
}

func (a *Savings) MonthlyFee() float64 {
	r := a.rules().Savings
	if a.balance >= r.FeeWaiver {
		return 0
	}
	return r.Fee
}

func (a *Savings) String() string {
	s := a.describe(KindSavings)
	if a.loyal {
		s += "::is loyal"
	}
	return s
}

// MoneyMarket is a savings account that counts withdrawals per cycle and
// tracks loyalty against LoyaltyThreshold.
type MoneyMarket struct {
	base
	loyal       bool
	withdrawals int
}

var _ MoneyMarketAccount = (*MoneyMarket)(nil)

// NewMoneyMarket starts loyal when the opening balance reaches the threshold.
func NewMoneyMarket(holder Profile, balance float64, schedule *Schedule) *MoneyMarket {
	return &MoneyMarket{
		base:  base{holder: holder, balance: balance, schedule: schedule},
		loyal: balance >= LoyaltyThreshold,
	}
}

func (a *MoneyMarket) Kind() Kind           { return KindMoneyMarket }
func (a *MoneyMarket) Loyal() bool          { return a.loyal }
func (a *MoneyMarket) SetLoyal(loyal bool)  { a.loyal = loyal }
func (a *MoneyMarket) Withdrawals() int     { return a.withdrawals }
func (a *MoneyMarket) SetWithdrawals(n int) { a.withdrawals = n }

func (a *MoneyMarket) MonthlyInterest() float64 {
	r := a.rules().MoneyMarket
	rate := r.AnnualRate
	if a.loyal {
		rate += r.LoyalBonus
	}
	return monthly(a.balance, rate)
}

func (a *MoneyMarket) MonthlyFee() float64 {
	r := a.rules().MoneyMarket
	fee := 0.0
	if a.balance < r.FeeWaiver {
		fee += r.Fee
	}
	if a.withdrawals > r.FreeWithdrawals {
		fee += r.ExcessWithdrawalFee
	}
	return fee
}

func (a *MoneyMarket) String() string {
	s := fmt.Sprintf("%s::Savings::%s::Balance %s", KindMoneyMarket, a.holder, FormatCurrency(a.balance))
	if a.loyal {
		s += "::is loyal"
	}
	return s + fmt.Sprintf("::withdrawal: %d", a.withdrawals)
}

// NewAccount builds an account of the given kind. Extra attributes that only
// one kind carries (campus, savings loyalty) come from opts.
func NewAccount(kind Kind, holder Profile, balance float64, schedule *Schedule, opts ...Option) (Account, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindChecking:
		return NewChecking(holder, balance, schedule), nil
	case KindCollegeChecking:
		return NewCollegeChecking(holder, balance, o.campus, schedule), nil
	case KindSavings:
		return NewSavings(holder, balance, o.loyal, schedule), nil
	case KindMoneyMarket:
		mm := NewMoneyMarket(holder, balance, schedule)
		mm.withdrawals = o.withdrawals
		return mm, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

type options struct {
	campus      Campus
	loyal       bool
	withdrawals int
}

type Option func(*options)

func WithCampus(c Campus) Option {
	return func(o *options) { o.campus = c }
}

func WithLoyal(loyal bool) Option {
	return func(o *options) { o.loyal = loyal }
}

func WithWithdrawals(n int) Option {
	return func(o *options) { o.withdrawals = n }
}
