// Package config loads application settings from the environment,
// optionally seeded from a .env file.
package config

// Log configures the structured logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[mcash]"`
}

// Savings carries the defaults applied to newly opened savings accounts.
type Savings struct {
	MinimumBalance float64 `envconfig:"MINIMUM_BALANCE" default:"100"`
	LowBalanceFee  float64 `envconfig:"LOW_BALANCE_FEE" default:"5"`
}

// Notifications selects the channel transaction notifications go out on.
type Notifications struct {
	Channel string `envconfig:"CHANNEL" default:"IN_APP_SENT"`
}

// App is the root configuration.
type App struct {
	Env           string         `envconfig:"APP_ENV" default:"development"`
	Log           *Log           `envconfig:"LOG"`
	Savings       *Savings       `envconfig:"SAVINGS"`
	Notifications *Notifications `envconfig:"NOTIFICATIONS"`
}
