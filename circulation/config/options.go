package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.Server.WriteTimeout = d
	}
}

func WithPort(port string) Option {
	return func(cfg *Config) {
		cfg.Server.Port = port
	}
}

func WithLoanPeriod(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.LoanPeriod = d
	}
}

func WithKafka(addrs ...string) Option {
	return func(cfg *Config) {
		cfg.Kafka.Enabled = true
		cfg.Kafka.Addrs = addrs
	}
}
