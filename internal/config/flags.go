package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
)

// NetAddress holds structured network address data for host and port.
// It implements the kingpin.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags shared by both binaries.
//
// Flags:
//
//	-a, --address          HTTP server address in format host:port
//	--grpc-address         gRPC health server address in format host:port
//	-c, --config           JSON file path with configs
//	--env-file             dotenv file loaded before env parsing
//	-d, --database-dsn     database DSN
//	--seed-file            YAML file with users to seed
//	--assets-dir           directory served under /assets/
//	--rate-limit-rps       token-bucket rate for /users
//	--rate-limit-burst     token-bucket burst for /users
//	--request-timeout      request timeout (e.g. "30s")
//	--config-source        runtime config location (URL or path)
//	--idle-label           initial text of the load control
//	--busy-label           text shown while loading
//	--failure-policy       "restore" or "keep-busy"
//	--log-file             client log file
//	--log-level            zerolog level
//	--app-version          version reported by /api/version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress
		requestTimeout                   time.Duration
		cfg                              StructuredConfig
	)

	app := kingpin.New("user-list", "User list client and server.")
	app.Terminate(nil)
	app.UsageWriter(io.Discard)
	app.ErrorWriter(io.Discard)

	app.Flag("address", "Net address host:port").Short('a').SetValue(&serverAddress)
	app.Flag("grpc-address", "Net grpc server address host:port").SetValue(&grpcServerAddress)
	app.Flag("config", "JSON config file path").Short('c').StringVar(&cfg.JSONFilePath)
	app.Flag("env-file", "dotenv file path").StringVar(&cfg.EnvFile)
	app.Flag("database-dsn", "Database DSN").Short('d').StringVar(&cfg.Storage.DB.DSN)
	app.Flag("seed-file", "YAML file with users to seed").StringVar(&cfg.Storage.SeedFile)
	app.Flag("assets-dir", "Directory served under /assets/").StringVar(&cfg.Server.AssetsDir)
	app.Flag("rate-limit-rps", "Requests per second allowed on /users").Float64Var(&cfg.Server.RateLimitRPS)
	app.Flag("rate-limit-burst", "Burst allowed on /users").IntVar(&cfg.Server.RateLimitBurst)
	app.Flag("request-timeout", "Request timeout (e.g. 30s, 1m)").DurationVar(&requestTimeout)
	app.Flag("config-source", "Runtime config location (URL or file path)").StringVar(&cfg.Client.ConfigSource)
	app.Flag("idle-label", "Initial label of the load control").StringVar(&cfg.Client.IdleLabel)
	app.Flag("busy-label", "Label shown while users are loading").StringVar(&cfg.Client.BusyLabel)
	app.Flag("failure-policy", "Label policy after a failed load").
		EnumVar(&cfg.Client.FailurePolicy, FailurePolicyRestore, FailurePolicyKeepBusy)
	app.Flag("log-file", "Client log file").StringVar(&cfg.Client.LogFile)
	app.Flag("log-level", "Log level").StringVar(&cfg.App.LogLevel)
	app.Flag("app-version", "Application version").StringVar(&cfg.App.Version)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Client.RequestTimeout = requestTimeout

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
