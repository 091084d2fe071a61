package utils

import (
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type HTTPClientConfig struct {
	Timeout   time.Duration // dial, TLS handshake and response header timeout
	KATimeout time.Duration
	UserAgent string
	// LargeBuffers raises the socket send and receive buffers to 1MB
	LargeBuffers bool
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type WgetHTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

func NewWgetHTTPClient(cfg HTTPClientConfig) *WgetHTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 60 * time.Second
	}
	// No client-wide timeout: it would bound the whole body transfer.
	// Proxy stays nil, environment proxies are not honoured.
	transport := &http.Transport{
		IdleConnTimeout:       cfg.KATimeout,
		TLSHandshakeTimeout:   cfg.Timeout,
		ResponseHeaderTimeout: cfg.Timeout,
		MaxIdleConns:          10,
		DisableCompression:    true, // keeps Content-Length intact
	}
	dialer := &net.Dialer{
		Timeout:   cfg.Timeout,
		KeepAlive: 30 * time.Second,
	}
	if cfg.LargeBuffers {
		dialer.Control = func(network, address string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				if err := setSocketOptions(fd); err != nil {
					log.Debug().Str("op", "utils/http-client").Err(err).Msgf("Keeping default socket buffers for %s", address)
				}
			})
		}
	}
	transport.DialContext = dialer.DialContext
	return &WgetHTTPClient{
		client: &http.Client{Transport: transport},
		config: cfg,
	}
}

func (c *WgetHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	} else {
		req.Header.Set("User-Agent", ToolUserAgent)
	}
	return c.client.Do(req)
}
