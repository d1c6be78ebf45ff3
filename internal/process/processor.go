package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"modelgate/internal/core"
	"modelgate/internal/util"
)

// RequestProcessor issues outbound chat completion calls to the upstream
// inference endpoint.
type RequestProcessor struct {
	endpoint   string
	token      string
	httpClient *http.Client
	metrics    core.MetricsCollector
	logger     core.Logger
}

// NewRequestProcessor creates a new request processor
func NewRequestProcessor(endpoint, token string, httpClient *http.Client, metrics core.MetricsCollector, logger core.Logger) *RequestProcessor {
	return &RequestProcessor{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		metrics:    metrics,
		logger:     logger,
	}
}

// BuildPayload builds the upstream chat completion payload for one query.
func (p *RequestProcessor) BuildPayload(query core.ChatQuery) ([]byte, error) {
	payload := core.UpstreamChatRequest{
		Model: query.Model,
		Messages: []core.UpstreamMessage{
			{Role: core.RoleUser, Content: query.Query},
		},
		Temperature: query.Temperature,
		MaxTokens:   query.MaxTokens,
	}

	payloadBytes, err := util.MarshalJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	p.logger.Debug("Upstream payload: model=%s, query_len=%d, size=%d",
		query.Model, len(query.Query), len(payloadBytes))

	return payloadBytes, nil
}

// CallModel performs one outbound call and packages the outcome as data.
// Upstream non-success statuses and transport failures both become failure
// results carrying the elapsed time; nothing is retried.
func (p *RequestProcessor) CallModel(ctx context.Context, query core.ChatQuery) core.ChatResult {
	startTime := time.Now()

	result := core.ChatResult{Model: query.Model}
	finish := func() core.ChatResult {
		result.ResponseTime = time.Since(startTime).Milliseconds()
		p.metrics.RecordRequest(result.OK(), result.ResponseTime, query.Model)
		return result
	}

	payloadBytes, err := p.BuildPayload(query)
	if err != nil {
		result.Error = err.Error()
		return finish()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return finish()
	}

	req.Header.Set(core.HeaderContentType, core.ContentTypeJSON)
	req.Header.Set(core.HeaderAccept, core.ContentTypeJSON)
	req.Header.Set(core.HeaderAuthorization, core.AuthBearerPrefix+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		result.Error = err.Error()
		return finish()
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, core.MaxResponseBodySize))
	if err != nil {
		result.Error = fmt.Sprintf("failed to read upstream response: %v", err)
		return finish()
	}

	p.logger.Debug("Upstream response: model=%s, status=%d, size=%d", query.Model, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Error("Upstream error: model=%s, status=%d, body=%s", query.Model, resp.StatusCode, string(body))
		result.Error = fmt.Sprintf("API Error %d: %s", resp.StatusCode, string(body))
		return finish()
	}

	var upstream core.UpstreamChatResponse
	if err := util.UnmarshalJSON(body, &upstream); err != nil {
		result.Error = fmt.Sprintf("failed to parse upstream response: %v", err)
		return finish()
	}

	content := ""
	if len(upstream.Choices) > 0 {
		content = upstream.Choices[0].Message.Content
	}

	result.Response = content
	result.Usage = upstream.Usage
	return finish()
}

// CompareModels issues the same query to every listed model concurrently and
// waits for all of them. Results are returned in input order; one model's
// failure never cancels the others.
func (p *RequestProcessor) CompareModels(ctx context.Context, models []string, query string, temperature float64, maxTokens int) []core.ChatResult {
	results := make([]core.ChatResult, len(models))

	var wg sync.WaitGroup
	for i, model := range models {
		wg.Add(1)
		go func(idx int, modelID string) {
			defer wg.Done()
			results[idx] = p.CallModel(ctx, core.ChatQuery{
				Model:       modelID,
				Query:       query,
				Temperature: temperature,
				MaxTokens:   maxTokens,
			})
		}(i, model)
	}
	wg.Wait()

	return results
}
