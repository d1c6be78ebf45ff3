package core

import "time"

// ChatQuery is a single validated chat request bound for one upstream model.
type ChatQuery struct {
	Model       string
	Query       string
	Temperature float64
	MaxTokens   int
}

// ChatResult is the per-model outcome of one upstream call. Exactly one of
// Response or Error is populated; ResponseTime is always set.
type ChatResult struct {
	Model        string         `json:"model"`
	Response     string         `json:"response,omitempty"`
	Usage        map[string]any `json:"usage,omitempty"`
	Error        string         `json:"error,omitempty"`
	ResponseTime int64          `json:"responseTime"`
}

// OK reports whether the upstream call succeeded.
func (r ChatResult) OK() bool {
	return r.Error == ""
}

// UpstreamMessage is a single message in the upstream chat completion request.
type UpstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UpstreamChatRequest is the payload sent to the remote chat completion endpoint.
type UpstreamChatRequest struct {
	Model       string            `json:"model"`
	Messages    []UpstreamMessage `json:"messages"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

// UpstreamChoice is a single completion choice in the upstream response.
type UpstreamChoice struct {
	Message UpstreamMessage `json:"message"`
}

// UpstreamChatResponse is the remote chat completion response. Usage is passed
// through to clients without shape validation.
type UpstreamChatResponse struct {
	Choices []UpstreamChoice `json:"choices"`
	Usage   map[string]any   `json:"usage"`
}

// ModelEntry is a single decorated registry entry in the models list response.
type ModelEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Endpoint  string `json:"endpoint"`
	Publisher string `json:"publisher"`
	Available bool   `json:"available"`
}

// ModelList is the models list response envelope.
type ModelList struct {
	Data       []ModelEntry `json:"data"`
	TotalCount int          `json:"total_count"`
	HasMore    bool         `json:"has_more"`
}

// RequestStats holds aggregated request statistics for monitoring.
type RequestStats struct {
	TotalRequests      int64           `json:"total_requests"`
	SuccessfulRequests int64           `json:"successful_requests"`
	FailedRequests     int64           `json:"failed_requests"`
	TotalResponseTime  int64           `json:"total_response_time"`
	LastRequestTime    time.Time       `json:"last_request_time"`
	RequestHistory     []RequestRecord `json:"request_history"`
}

// RequestRecord represents a single request's metadata for history tracking.
type RequestRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	ResponseTime int64     `json:"response_time"`
	Model        string    `json:"model"`
}

// PeriodStats holds computed statistics for a time period.
type PeriodStats struct {
	Requests        int64   `json:"requests"`
	SuccessRate     float64 `json:"successRate"`
	AvgResponseTime int64   `json:"avgResponseTime"`
	QPS             float64 `json:"qps"`
}
