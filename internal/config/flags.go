package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// githubIDList is a comma-separated list of GitHub account IDs.
// It implements the flag.Value interface.
type githubIDList []int64

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token verification key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis-address rate limiter redis address in format [host]:[port]
//	-rate-limit max requests per user per window
//	-rate-limit-window sliding window length (e.g., "2m")
//	-exempt-github-ids comma-separated github IDs exempt from rate limiting
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var redisAddress NetAddress
	var rateLimit int
	var rateLimitWindow time.Duration
	var exemptGithubIDs githubIDList

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Var(&redisAddress, "redis-address", "Rate limiter redis address host:port")
	flag.IntVar(&rateLimit, "rate-limit", 0, "Max requests per user per window")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Sliding window length (e.g., 2m)")
	flag.Var(&exemptGithubIDs, "exempt-github-ids", "Comma-separated github IDs exempt from rate limiting")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		RateLimit: RateLimit{
			RedisAddress:    redisAddress.String(),
			Window:          rateLimitWindow,
			Limit:           rateLimit,
			ExemptGithubIDs: exemptGithubIDs,
		},
		JSONFilePath: jsonConfigPath,
	}
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String returns the comma-separated representation of the list.
func (l *githubIDList) String() string {
	parts := make([]string, 0, len(*l))
	for _, id := range *l {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	return strings.Join(parts, ",")
}

// Set parses a comma-separated list of integer GitHub IDs.
// Empty elements are rejected, so "1,,2" is an error.
func (l *githubIDList) Set(s string) error {
	if s == "" {
		return nil
	}

	ids := make([]int64, 0, 4)
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	*l = ids
	return nil
}
