package domain

// LoyaltyThreshold is the money market balance at or above which the holder
// counts as loyal.
const LoyaltyThreshold = 2000.0

const monthsPerYear = 12

type Schedule struct {
	Checking        CheckingRules
	CollegeChecking CollegeCheckingRules
	Savings         SavingsRules
	MoneyMarket     MoneyMarketRules
}

type CheckingRules struct {
	AnnualRate float64
	Fee        float64
	FeeWaiver  float64
}

type CollegeCheckingRules struct {
	AnnualRate float64
}

type SavingsRules struct {
	AnnualRate float64
	LoyalBonus float64
	Fee        float64
	FeeWaiver  float64
}

type MoneyMarketRules struct {
	AnnualRate          float64
	LoyalBonus          float64
	Fee                 float64
	FeeWaiver           float64
	FreeWithdrawals     int
	ExcessWithdrawalFee float64
	MinimumOpenBalance  float64
}

func DefaultSchedule() Schedule {
	return Schedule{
		Checking: CheckingRules{
			AnnualRate: 0.01,
			Fee:        12,
			FeeWaiver:  1000,
		},
		CollegeChecking: CollegeCheckingRules{
			AnnualRate: 0.025,
		},
		Savings: SavingsRules{
			AnnualRate: 0.04,
			LoyalBonus: 0.0025,
			Fee:        25,
			FeeWaiver:  500,
		},
		MoneyMarket: MoneyMarketRules{
			AnnualRate:          0.045,
			LoyalBonus:          0.0025,
			Fee:                 25,
			FeeWaiver:           LoyaltyThreshold,
			FreeWithdrawals:     3,
			ExcessWithdrawalFee: 10,
			MinimumOpenBalance:  LoyaltyThreshold,
		},
	}
}

func monthly(balance, annualRate float64) float64 {
	return balance * annualRate / monthsPerYear
}
