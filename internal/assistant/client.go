// Package assistant is a thin proxy to an external LLM-backed legal
// assistant. It carries no orchestration of its own: one question in, one
// answer out.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"imodocs/internal/auth"

	"go.uber.org/zap"
)

// MaxQuestionLen bounds the question size accepted by the upstream service
const MaxQuestionLen = 2000

// defaultFunctions are the candidate upstream function names tried in order.
// The deployment has renamed the function twice; a single fallback pass
// across the list tolerates either name being live.
var defaultFunctions = []string{"assistente-imobiliario", "assistant-chat"}

// Client calls the assistant endpoint
type Client struct {
	baseURL   string
	token     string
	functions []string
	http      *http.Client
	log       *zap.Logger
}

func NewClient(baseURL, token string, log *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		functions: defaultFunctions,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer   string `json:"answer"`
	Response string `json:"response"`
	Message  string `json:"message"`
}

// Ask sends the question upstream and returns the answer text. Each candidate
// function name is tried once; there is no retry beyond that single fallback
// pass.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}
	if len(question) > MaxQuestionLen {
		return "", fmt.Errorf("question exceeds %d characters", MaxQuestionLen)
	}
	if c.baseURL == "" {
		return "", fmt.Errorf("assistant URL not configured")
	}

	var lastErr error
	for _, fn := range c.functions {
		answer, err := c.call(ctx, fn, question)
		if err == nil {
			return answer, nil
		}
		lastErr = err
		c.log.Warn("Assistant function failed, trying next candidate",
			zap.String("function", fn), zap.Error(err))
	}
	return "", fmt.Errorf("assistant unavailable: %w", lastErr)
}

func (c *Client) call(ctx context.Context, function, question string) (string, error) {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/functions/v1/"+function, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	// Auth is best-effort: attach a bearer only when the configured token
	// structurally resembles a signed JWT
	if auth.LooksLikeJWT(c.token) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var out askResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}

	for _, answer := range []string{out.Answer, out.Response, out.Message} {
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
	}
	return "", fmt.Errorf("assistant response had no answer field")
}
