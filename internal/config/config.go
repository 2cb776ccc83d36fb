package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/bnema/bank-accounts-cli/internal/logging"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".bank"
	envPrefix  = "BA"

	SeedPathKey  = "ledger.seed_path"
	LogLevelKey  = "log.level"
	LogFormatKey = "log.format"
)

type Config struct {
	Log      logging.Config
	Schedule domain.Schedule
}

// Load reads ~/.bank/config.toml when it exists and lets BA_* environment
// variables override any key, e.g. BA_LEDGER_SEED_PATH or BA_LOG_LEVEL.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Log: logging.Config{
			Level:       v.GetString(LogLevelKey),
			Format:      v.GetString(LogFormatKey),
			OutputPaths: []string{"stderr"},
		},
		Schedule: scheduleFrom(v),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultSchedule()
	logDefaults := logging.DefaultConfig()

	v.SetDefault(SeedPathKey, "")
	v.SetDefault(LogLevelKey, logDefaults.Level)
	v.SetDefault(LogFormatKey, logDefaults.Format)

	v.SetDefault("rates.checking.annual_rate", defaults.Checking.AnnualRate)
	v.SetDefault("rates.checking.fee", defaults.Checking.Fee)
	v.SetDefault("rates.checking.fee_waiver", defaults.Checking.FeeWaiver)

	v.SetDefault("rates.college_checking.annual_rate", defaults.CollegeChecking.AnnualRate)

	v.SetDefault("rates.savings.annual_rate", defaults.Savings.AnnualRate)
	v.SetDefault("rates.savings.loyal_bonus", defaults.Savings.LoyalBonus)
	v.SetDefault("rates.savings.fee", defaults.Savings.Fee)
	v.SetDefault("rates.savings.fee_waiver", defaults.Savings.FeeWaiver)

	v.SetDefault("rates.money_market.annual_rate", defaults.MoneyMarket.AnnualRate)
	v.SetDefault("rates.money_market.loyal_bonus", defaults.MoneyMarket.LoyalBonus)
	v.SetDefault("rates.money_market.fee", defaults.MoneyMarket.Fee)
	v.SetDefault("rates.money_market.fee_waiver", defaults.MoneyMarket.FeeWaiver)
	v.SetDefault("rates.money_market.free_withdrawals", defaults.MoneyMarket.FreeWithdrawals)
	v.SetDefault("rates.money_market.excess_withdrawal_fee", defaults.MoneyMarket.ExcessWithdrawalFee)
	v.SetDefault("rates.money_market.minimum_open_balance", defaults.MoneyMarket.MinimumOpenBalance)
}

func scheduleFrom(v *viper.Viper) domain.Schedule {
	return domain.Schedule{
		Checking: domain.CheckingRules{
			AnnualRate: v.GetFloat64("rates.checking.annual_rate"),
			Fee:        v.GetFloat64("rates.checking.fee"),
			FeeWaiver:  v.GetFloat64("rates.checking.fee_waiver"),
		},
		CollegeChecking: domain.CollegeCheckingRules{
			AnnualRate: v.GetFloat64("rates.college_checking.annual_rate"),
		},
		Savings: domain.SavingsRules{
			AnnualRate: v.GetFloat64("rates.savings.annual_rate"),
			LoyalBonus: v.GetFloat64("rates.savings.loyal_bonus"),
			Fee:        v.GetFloat64("rates.savings.fee"),
			FeeWaiver:  v.GetFloat64("rates.savings.fee_waiver"),
		},
		MoneyMarket: domain.MoneyMarketRules{
			AnnualRate:          v.GetFloat64("rates.money_market.annual_rate"),
			LoyalBonus:          v.GetFloat64("rates.money_market.loyal_bonus"),
			Fee:                 v.GetFloat64("rates.money_market.fee"),
			FeeWaiver:           v.GetFloat64("rates.money_market.fee_waiver"),
			FreeWithdrawals:     v.GetInt("rates.money_market.free_withdrawals"),
			ExcessWithdrawalFee: v.GetFloat64("rates.money_market.excess_withdrawal_fee"),
			MinimumOpenBalance:  v.GetFloat64("rates.money_market.minimum_open_balance"),
		},
	}
}
