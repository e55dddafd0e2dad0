package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/addrkeeper/internal/flagx"
	"github.com/dmitrijs2005/addrkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// both "5s" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	DatabaseDriver    string         `json:"database_driver"`
	DatabaseDSN       string         `json:"database_dsn"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	ShutdownTimeout   timex.Duration `json:"shutdown_timeout"`
	TopAddressesLimit int            `json:"top_addresses_limit"`
	TopAddressesOrder string         `json:"top_addresses_order"`
	HashTime          uint32         `json:"hash_time"`
	HashMemoryKiB     uint32         `json:"hash_memory_kib"`
	HashThreads       uint8          `json:"hash_threads"`
	LogLevel          string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. Keys that are
// absent from the file keep their current value. An unreadable file or
// invalid JSON panics: the server must not start half-configured.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.TopAddressesOrder, c.TopAddressesOrder)
	setString(&config.LogLevel, c.LogLevel)
	setNonZero(&config.RequestTimeout, c.RequestTimeout.Duration)
	setNonZero(&config.ShutdownTimeout, c.ShutdownTimeout.Duration)
	setNonZero(&config.TopAddressesLimit, c.TopAddressesLimit)
	setNonZero(&config.HashTime, c.HashTime)
	setNonZero(&config.HashMemoryKiB, c.HashMemoryKiB)
	setNonZero(&config.HashThreads, c.HashThreads)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
