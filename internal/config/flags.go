package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags in args
// (without the program name).
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-remote remote catalog base URL
//	-remote-timeout remote request timeout (e.g. "30s")
//	-d SQLite database file path
//	-c/-config json file path with configs
//	-cache-ttl read cache time-to-live (e.g. "5m")
//	-request-timeout local API request timeout (e.g. "15s")
//	-stale-after replica staleness threshold (e.g. "45m")
//	-sync-interval engine re-sync interval (e.g. "30m")
//	-page-size remote page size
//	-max-images max new/updated records per sync run
//	-checksum fingerprint function ("rolling32" or "xxhash64")
//	-sync-schedule cron spec for the background sync job
//	-log-level log level
//	-log-file rotating log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var serverAddress NetAddress

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Local API net address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote catalog base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 30s)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "Read cache TTL (e.g., 5m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&cfg.Sync.StaleAfter, "stale-after", 0, "Replica staleness threshold (e.g., 45m)")
	fs.DurationVar(&cfg.Sync.Interval, "sync-interval", 0, "Engine re-sync interval (e.g., 30m)")
	fs.IntVar(&cfg.Sync.PageSize, "page-size", 0, "Remote page size")
	fs.IntVar(&cfg.Sync.MaxImages, "max-images", 0, "Max new/updated records per sync run")
	fs.StringVar(&cfg.Sync.Checksum, "checksum", "", "Checksum function: rolling32 or xxhash64")
	fs.StringVar(&cfg.Workers.SyncSchedule, "sync-schedule", "", "Cron spec of the background sync job")
	fs.StringVar(&cfg.Logging.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Logging.FilePath, "log-file", "", "Rotating log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
