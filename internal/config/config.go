package config

import (
	"fmt"
	"os"
	"time"

	"modelgate/internal/core"
	"modelgate/internal/util"
)

// ServerConfig server configuration
type ServerConfig struct {
	Port               string
	GinMode            string
	Token              string
	Endpoint           string
	ModelsConfigPath   string
	HTTPClientSettings HTTPClientSettings
	Storage            core.StorageInterface
	Logger             core.Logger
}

// HTTPClientSettings HTTP client configuration
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
}

// DefaultHTTPClientSettings default HTTP client settings
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        core.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: core.HTTPMaxIdleConnsPerHost,
		MaxConnsPerHost:     core.HTTPMaxConnsPerHost,
		IdleConnTimeout:     core.HTTPIdleConnTimeout,
		TLSHandshakeTimeout: core.HTTPTLSHandshakeTimeout,
		RequestTimeout:      core.DefaultUpstreamTimeout,
	}
}

// LoadServerConfigFromEnv loads server config from environment variables.
// The upstream bearer token is mandatory: shipping a fallback credential in
// source is a defect, so startup fails instead.
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return ServerConfig{}, fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}

	port := util.GetEnvWithDefault("PORT", core.DefaultPort)
	ginMode := util.GetEnvWithDefault("GIN_MODE", core.DefaultGinMode)
	endpoint := util.GetEnvWithDefault("MODELS_ENDPOINT", core.DefaultModelsEndpoint)
	modelsPath := os.Getenv("MODELS_CONFIG_PATH")

	settings := DefaultHTTPClientSettings()
	if rawTimeout := os.Getenv("UPSTREAM_TIMEOUT"); rawTimeout != "" {
		seconds := util.ParseIntOrDefault(rawTimeout, -1)
		if seconds < 0 {
			logger.Warn("Invalid UPSTREAM_TIMEOUT value '%s', leaving timeout disabled", rawTimeout)
		} else {
			settings.RequestTimeout = time.Duration(seconds) * time.Second
			logger.Info("Upstream request timeout set to %s", settings.RequestTimeout)
		}
	}

	config := ServerConfig{
		Port:               port,
		GinMode:            ginMode,
		Token:              token,
		Endpoint:           endpoint,
		ModelsConfigPath:   modelsPath,
		HTTPClientSettings: settings,
	}

	return config, nil
}
