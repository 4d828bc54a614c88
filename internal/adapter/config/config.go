package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	App       *App
	Business  *Business
	Scheduler *Scheduler
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Business struct {
	CommissionRate string `env:"COMMISSION_RATE"`
	DeliveryFee    string `env:"DELIVERY_FEE"`
}

type Scheduler struct {
	PollInterval time.Duration `env:"TIMEOUT_POLL_INTERVAL"`
	Workers      int           `env:"TIMEOUT_WORKERS"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var business Business
	var scheduler Scheduler

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&business.CommissionRate, "c", "0.10", "Shop commission rate")
	flag.StringVar(&business.DeliveryFee, "f", "15", "Delivery fee")
	flag.DurationVar(&scheduler.PollInterval, "p", time.Minute, "Pending order poll interval")
	flag.IntVar(&scheduler.Workers, "w", 2, "Pending order cancel workers")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&business)
	if err != nil {
		return nil, fmt.Errorf("error parsing business config: %w", err)
	}
	err = env.Parse(&scheduler)
	if err != nil {
		return nil, fmt.Errorf("error parsing scheduler config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		App:       &app,
		Business:  &business,
		Scheduler: &scheduler,
	}

	return &config, nil
}
