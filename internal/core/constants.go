package core

import "time"

// HTTP client config constants
const (
	HTTPMaxIdleConns          = 500
	HTTPMaxIdleConnsPerHost   = 100
	HTTPMaxConnsPerHost       = 200
	HTTPIdleConnTimeout       = 600 * time.Second
	HTTPTLSHandshakeTimeout   = 30 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
	HTTPExpectContinueTimeout = 5 * time.Second
)

// Stats and monitoring constants
const (
	StatsFilePath        = "stats.json"
	MinSaveInterval      = 5 * time.Second
	HistoryBufferSize    = 1000
	HistoryBatchSize     = 100
	HistoryFlushInterval = 100 * time.Millisecond
)

// Response body size limits
const (
	MaxResponseBodySize = 10 * 1024 * 1024
)

// Logging config constants
const (
	MaxLogFilePathLength = 260
)

// File permission constants
const (
	FilePermissionReadWrite = 0644
)

// Time format constants
const (
	TimeFormatDateTime = "2006-01-02 15:04:05"
)

// Default config constants
const (
	DefaultPort            = "8080"
	DefaultGinMode         = "release"
	DefaultModelsEndpoint  = "https://models.inference.ai.azure.com/chat/completions"
	DefaultTemperature     = 0.7
	DefaultMaxTokens       = 1000
	DefaultUpstreamTimeout = 0 // no enforced timeout unless configured
	CORSMaxAge             = "86400"
	MaxRequestBodySize     = 1 << 20
)

// Chat request constants
const (
	RoleUser = "user"
)

// HTTP protocol constants
const (
	ContentTypeJSON     = "application/json"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderRequestID     = "X-Request-ID"
	AuthBearerPrefix    = "Bearer "
)

// Publisher labels derived from model ID prefixes
const (
	PublisherOpenAI    = "OpenAI"
	PublisherMeta      = "Meta"
	PublisherMistral   = "Mistral AI"
	PublisherMicrosoft = "Microsoft"
	PublisherCohere    = "Cohere"
	PublisherAI21      = "AI21 Labs"
	PublisherQwen      = "Qwen"
	PublisherUnknown   = "Unknown"
)
