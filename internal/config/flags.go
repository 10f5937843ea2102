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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-t/-token bot token issued by @BotFather
//	-endpoint Bot API base URL override
//	-timeout per-request HTTP timeout (e.g., "30s", "1m")
//	-flood-retries retries after hitting the rate limiter
//	-poll-timeout long-polling wait (e.g., "30s")
//	-poll-limit updates per getUpdates call
//	-drop-pending discard updates accumulated while down
//	-webhook-url externally reachable HTTPS base
//	-a webhook listen address in format [host]:[port]
//	-workers handler worker count
//	-queue-size buffered update queue length
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var webhookAddress NetAddress
	var token string
	var endpoint string
	var timeout time.Duration
	var floodRetries int
	var pollTimeout time.Duration
	var pollLimit int
	var dropPending bool
	var webhookURL string
	var workerCount int
	var queueSize int
	var jsonConfigPath string

	flag.StringVar(&token, "t", "", "Bot token")
	flag.StringVar(&token, "token", "", "Bot token (alias)")
	flag.StringVar(&endpoint, "endpoint", "", "Bot API base URL")
	flag.DurationVar(&timeout, "timeout", 0, "HTTP request timeout (e.g., 30s, 1m)")
	flag.IntVar(&floodRetries, "flood-retries", 0, "Retries after hitting the rate limiter")
	flag.DurationVar(&pollTimeout, "poll-timeout", 0, "Long-polling wait (e.g., 30s)")
	flag.IntVar(&pollLimit, "poll-limit", 0, "Updates per getUpdates call")
	flag.BoolVar(&dropPending, "drop-pending", false, "Discard pending updates on start")
	flag.StringVar(&webhookURL, "webhook-url", "", "Public webhook HTTPS base URL")
	flag.Var(&webhookAddress, "a", "Webhook listen address host:port")
	flag.IntVar(&workerCount, "workers", 0, "Handler worker count")
	flag.IntVar(&queueSize, "queue-size", 0, "Buffered update queue length")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Bot: Bot{
			Token:        token,
			Endpoint:     endpoint,
			Timeout:      timeout,
			FloodRetries: floodRetries,
		},
		Polling: Polling{
			Timeout:     pollTimeout,
			Limit:       pollLimit,
			DropPending: dropPending,
		},
		Webhook: Webhook{
			PublicURL: webhookURL,
			Address:   webhookAddress.String(),
		},
		Workers: Workers{
			Count:     workerCount,
			QueueSize: queueSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or the
// empty string when neither part is set.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
