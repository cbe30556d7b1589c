package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Tables  TablesConfig  `mapstructure:"tables"`
	Redis   RedisConfig   `mapstructure:"redis"`
	SLA     SLAConfig     `mapstructure:"sla"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Driver         string `mapstructure:"driver"`
	OutboxCapacity int    `mapstructure:"outbox_capacity"`
}

// AWSConfig targets DynamoDB. Endpoint is set for DynamoDB Local.
type AWSConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TablesConfig struct {
	WarrantyRequests string `mapstructure:"warranty_requests"`
	Notifications    string `mapstructure:"notifications"`
	AuditLogs        string `mapstructure:"audit_logs"`
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type SLAConfig struct {
	SweepInterval         time.Duration `mapstructure:"sweep_interval"`
	WarningThresholdHours int           `mapstructure:"warning_threshold_hours"`
	AlertTTL              time.Duration `mapstructure:"alert_ttl"`
	AdminRecipientID      string        `mapstructure:"admin_recipient_id"`
}

// Load reads ./configs/config.yaml or ./config.yaml when present, then environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.outbox_capacity", 256)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.warranty_requests", "warranty_requests")
	v.SetDefault("tables.notifications", "notifications")
	v.SetDefault("tables.audit_logs", "audit_logs")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.key_prefix", "warranty:sla-alert:")

	v.SetDefault("sla.sweep_interval", time.Hour)
	v.SetDefault("sla.warning_threshold_hours", 8)
	v.SetDefault("sla.alert_ttl", 30*24*time.Hour)
	v.SetDefault("sla.admin_recipient_id", "admin")
}

// bindEnvVariables keeps the env names already used by the deployment manifests.
func bindEnvVariables(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("aws.region", "AWS_REGION")
	_ = v.BindEnv("aws.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("tables.warranty_requests", "WARRANTY_REQUESTS_TABLE")
	_ = v.BindEnv("tables.notifications", "NOTIFICATIONS_TABLE")
	_ = v.BindEnv("tables.audit_logs", "AUDIT_LOGS_TABLE")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("invalid storage driver %q", c.Storage.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.SLA.SweepInterval <= 0 {
		return fmt.Errorf("invalid sla sweep interval %s", c.SLA.SweepInterval)
	}
	if c.SLA.WarningThresholdHours < 0 {
		return fmt.Errorf("invalid sla warning threshold %d", c.SLA.WarningThresholdHours)
	}
	return nil
}
