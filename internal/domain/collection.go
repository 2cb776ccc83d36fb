package domain

import (
	"slices"
	"strings"
)

const (
	initialCapacity = 4
	growthIncrement = 4
)

// NotFound is returned by GetBalance for an absent account. It cannot be told
// apart from a real balance of -1; use Balance for an unambiguous answer.
const NotFound = -1.0

const (
	emptyMessage  = "Account Database is empty!"
	sortedHeader  = "*Accounts sorted by account type and profile."
	feesHeader    = "*list of accounts with fee and monthly interest"
	updatedHeader = "*list of accounts with fees and interests applied."
	listFooter    = "*end of list."
)

// Entry is one row of a report. Fee and Interest are zero for plain listings.
type Entry struct {
	Account  Account
	Fee      float64
	Interest float64
}

// Collection holds open accounts, at most one per identity. Entries beyond
// Len are always nil. It is not safe for concurrent use.
type Collection struct {
	accounts []Account
	numAcct  int
}

func NewCollection() *Collection {
	return &Collection{accounts: make([]Account, initialCapacity)}
}

func (c *Collection) Len() int { return c.numAcct }

func (c *Collection) Cap() int { return len(c.accounts) }

func (c *Collection) grow() {
	grown := make([]Account, len(c.accounts)+growthIncrement)
	copy(grown, c.accounts[:c.numAcct])
	c.accounts = grown
}

func (c *Collection) find(account Account) int {
	for i := 0; i < c.numAcct; i++ {
		if SameIdentity(account, c.accounts[i]) {
			return i
		}
	}
	return -1
}

func (c *Collection) Contains(account Account) bool {
	return c.find(account) >= 0
}

// Open adds account unless one with the same identity is already held.
func (c *Collection) Open(account Account) bool {
	if account == nil || c.Contains(account) {
		return false
	}
	c.accounts[c.numAcct] = account
	c.numAcct++
	if c.numAcct == len(c.accounts) {
		c.grow()
	}
	return true
}

// Close removes the matching account by moving the last entry into its slot,
// so the order of the remaining entries changes.
func (c *Collection) Close(account Account) bool {
	i := c.find(account)
	if i < 0 {
		return false
	}
	last := c.numAcct - 1
	c.accounts[i] = c.accounts[last]
	c.accounts[last] = nil
	c.numAcct--
	return true
}

// Withdraw takes request.Balance() out of the stored account. It fails
// without side effects when the account is absent or the funds are short.
func (c *Collection) Withdraw(request Account) bool {
	i := c.find(request)
	if i < 0 {
		return false
	}
	stored := c.accounts[i]
	amount := request.Balance()
	if stored.Balance() < amount {
		return false
	}
	if mm, ok := stored.(MoneyMarketAccount); ok {
		mm.SetWithdrawals(mm.Withdrawals() + 1)
		if mm.Balance()-amount < LoyaltyThreshold {
			mm.SetLoyal(false)
		}
	}
	stored.SetBalance(stored.Balance() - amount)
	return true
}

// Deposit adds request.Balance() to the stored account. An absent account is
// reported with false and nothing changes.
func (c *Collection) Deposit(request Account) bool {
	i := c.find(request)
	if i < 0 {
		return false
	}
	stored := c.accounts[i]
	stored.SetBalance(stored.Balance() + request.Balance())
	if mm, ok := stored.(MoneyMarketAccount); ok && mm.Balance() >= LoyaltyThreshold {
		mm.SetLoyal(true)
	}
	return true
}

// GetBalance returns the stored balance or NotFound.
func (c *Collection) GetBalance(account Account) float64 {
	balance, ok := c.Balance(account)
	if !ok {
		return NotFound
	}
	return balance
}

func (c *Collection) Balance(account Account) (float64, bool) {
	i := c.find(account)
	if i < 0 {
		return 0, false
	}
	return c.accounts[i].Balance(), true
}

func (c *Collection) sort() {
	slices.SortStableFunc(c.accounts[:c.numAcct], Compare)
}

// Sorted reorders the collection canonically and returns its entries.
func (c *Collection) Sorted() []Entry {
	c.sort()
	entries := make([]Entry, 0, c.numAcct)
	for _, account := range c.accounts[:c.numAcct] {
		entries = append(entries, Entry{Account: account})
	}
	return entries
}

// FeesAndInterests is Sorted with each account's monthly fee and interest.
// Balances are left alone.
func (c *Collection) FeesAndInterests() []Entry {
	entries := c.Sorted()
	for i := range entries {
		entries[i].Fee = entries[i].Account.MonthlyFee()
		entries[i].Interest = entries[i].Account.MonthlyInterest()
	}
	return entries
}

// ApplyFeesAndInterests commits one monthly cycle to every account and resets
// money market withdrawal counters.
func (c *Collection) ApplyFeesAndInterests() []Entry {
	entries := c.FeesAndInterests()
	for _, e := range entries {
		e.Account.SetBalance(e.Account.Balance() + e.Interest - e.Fee)
		if mm, ok := e.Account.(MoneyMarketAccount); ok {
			mm.SetWithdrawals(0)
		}
	}
	return entries
}

func (c *Collection) PrintSorted() string {
	if c.numAcct == 0 {
		return emptyMessage + "\n"
	}
	return renderList(sortedHeader, c.Sorted(), func(e Entry) string {
		return e.Account.String()
	})
}

func (c *Collection) PrintFeesAndInterests() string {
	if c.numAcct == 0 {
		return emptyMessage + "\n"
	}
	return renderList(feesHeader, c.FeesAndInterests(), func(e Entry) string {
		return e.Account.String() + "::fee " + FormatCurrency(e.Fee) + "::monthly interest " + FormatCurrency(e.Interest)
	})
}

func (c *Collection) PrintUpdatedBalances() string {
	if c.numAcct == 0 {
		return emptyMessage + "\n"
	}
	return renderList(updatedHeader, c.ApplyFeesAndInterests(), func(e Entry) string {
		return e.Account.String()
	})
}

func renderList(header string, entries []Entry, line func(Entry) string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(line(e))
		b.WriteString("\n")
	}
	b.WriteString(listFooter)
	b.WriteString("\n")
	return b.String()
}
