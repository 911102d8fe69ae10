package config

import "time"

// File represents the structure of the crmadmin.yaml configuration file.
type File struct {
	Version string       `yaml:"version"`
	API     APISection   `yaml:"api"`
	List    ListSection  `yaml:"list"`
	Cache   CacheSection `yaml:"cache"`
	Log     LogSection   `yaml:"log"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

// APISection configures the remote API client.
type APISection struct {
	BaseURL   string        `yaml:"baseURL"`
	Token     string        `yaml:"token"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rateLimit"`
}

// ListSection configures list views.
type ListSection struct {
	PageSize int `yaml:"pageSize"`
}

// CacheSection configures the query cache.
type CacheSection struct {
	StaleAfter          time.Duration `yaml:"staleAfter"`
	RefetchOnInvalidate *bool         `yaml:"refetchOnInvalidate"`
}

// LogSection configures logging.
type LogSection struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// envOverrides holds CRMADMIN_* variables. Unset variables stay nil.
type envOverrides struct {
	BaseURL             *string        `env:"BASE_URL"`
	Token               *string        `env:"TOKEN"`
	Timeout             *time.Duration `env:"TIMEOUT"`
	PageSize            *int           `env:"PAGE_SIZE"`
	RateLimit           *float64       `env:"RATE_LIMIT"`
	StaleAfter          *time.Duration `env:"STALE_AFTER"`
	RefetchOnInvalidate *bool          `env:"REFETCH_ON_INVALIDATE"`
	LogLevel            *string        `env:"LOG_LEVEL"`
	LogJSON             *bool          `env:"LOG_JSON"`
	MetricsAddr         *string        `env:"METRICS_ADDR"`
}

// rules are checked against the merged settings.
type rules struct {
	BaseURL     string        `validate:"required,url"`
	Timeout     time.Duration `validate:"gt=0"`
	PageSize    int           `validate:"min=1,max=100"`
	RateLimit   float64       `validate:"gte=0"`
	StaleAfter  time.Duration `validate:"gte=0"`
	LogLevel    string        `validate:"oneof=debug info warn error"`
	MetricsAddr string        `validate:"omitempty,hostname_port"`
}
