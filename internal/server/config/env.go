package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables the server understands.
type EnvConfig struct {
	EndpointAddrGRPC  string        `env:"ADDRKEEPER_GRPC_ADDR"`
	EndpointAddrHTTP  string        `env:"ADDRKEEPER_HTTP_ADDR"`
	DatabaseDriver    string        `env:"ADDRKEEPER_DB_DRIVER"`
	DatabaseDSN       string        `env:"ADDRKEEPER_DATABASE_DSN"`
	RequestTimeout    time.Duration `env:"ADDRKEEPER_REQUEST_TIMEOUT"`
	TopAddressesLimit int           `env:"ADDRKEEPER_TOP_LIMIT"`
	TopAddressesOrder string        `env:"ADDRKEEPER_TOP_ORDER"`
	LogLevel          string        `env:"ADDRKEEPER_LOG_LEVEL"`
}

// parseEnv overlays variables that are set. A malformed value panics.
func parseEnv(config *Config) {
	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, e.DatabaseDriver)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.TopAddressesOrder, e.TopAddressesOrder)
	setString(&config.LogLevel, e.LogLevel)
	setNonZero(&config.RequestTimeout, e.RequestTimeout)
	setNonZero(&config.TopAddressesLimit, e.TopAddressesLimit)
}
