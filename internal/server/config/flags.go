package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/addrkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-w string   HTTP bind address (e.g. ":8080")
//	-x string   database driver: pgx or sqlite
//	-d string   database DSN
//	-t int      request timeout, seconds
//	-l int      default number of top addresses
//	-o string   top addresses order: asc or desc
//	-v string   log level
//
// Only the flags above are picked out of os.Args, so -c/-config and flags of
// other components do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-x", "-d", "-t", "-l", "-o", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDriver, "x", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&config.TopAddressesLimit, "l", config.TopAddressesLimit, "default top addresses limit")
	fs.StringVar(&config.TopAddressesOrder, "o", config.TopAddressesOrder, "top addresses order (asc|desc)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// sub-second timeouts from JSON survive unless -t is given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
