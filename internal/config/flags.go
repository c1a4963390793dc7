package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers the configuration flags on fs and returns the config
// they write into. The returned value is meaningful once fs has been parsed;
// flags left unset keep their zero values so lower-priority sources survive
// the merge.
//
// Flags:
//
//	--base-url          backend origin
//	--request-timeout   outbound request timeout (e.g. "15s")
//	--store             storage backend (memory, file, sqlite, postgres, redis)
//	--store-path        file or sqlite path
//	--store-dsn         postgres DSN
//	--redis-address     redis host:port
//	--check-interval    session watch interval (e.g. "5m")
//	--log-file          log file path
//	--log-level         log level
//	-a/--address        mock backend listen address host:port
//	-c/--config         JSON config file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.BaseURL, "base-url", "", "Backend base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Storage.Backend, "store", "", "Session store backend: memory, file, sqlite, postgres, redis")
	fs.StringVar(&cfg.Storage.Path, "store-path", "", "Session store file path (file, sqlite)")
	fs.StringVar(&cfg.Storage.DSN, "store-dsn", "", "Session store DSN (postgres)")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address host:port")
	fs.DurationVar(&cfg.Workers.SessionCheckInterval, "check-interval", 0, "Session check interval (e.g., 5m)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.VarP(&addressFlag{target: &cfg.MockAPI.Address}, "address", "a", "Mock backend net address host:port")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

// addressFlag validates a host:port flag value through [NetAddress] and
// stores its canonical form in target.
type addressFlag struct {
	addr   NetAddress
	target *string
}

func (f *addressFlag) String() string {
	return f.addr.String()
}

func (f *addressFlag) Type() string {
	return f.addr.Type()
}

func (f *addressFlag) Set(s string) error {
	if err := f.addr.Set(s); err != nil {
		return err
	}
	*f.target = f.addr.String()
	return nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
