package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmgen/minutes-console/internal/core/domain"
)

const requestIDHeader = "X-Request-Id"

func (c *Client) getJSON(ctx context.Context, path string, out any, operation string) error {
	return c.execute(ctx, operation, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("create %s request: %w", operation, err)
		}
		return c.send(req, out, operation, c.httpClient)
	})
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	return c.execute(ctx, operation, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create %s request: %w", operation, err)
		}
		req.Header.Set("Content-Type", "application/json")
		return c.send(req, out, operation, c.httpClient)
	})
}

func (c *Client) postMultipart(ctx context.Context, path string, file *domain.TranscriptFile, out any, operation string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return fmt.Errorf("build %s form: %w", operation, err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("write %s form: %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close %s form: %w", operation, err)
	}

	payload := body.Bytes()
	contentType := writer.FormDataContentType()

	return c.execute(ctx, operation, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create %s request: %w", operation, err)
		}
		req.Header.Set("Content-Type", contentType)
		return c.send(req, out, operation, c.uploadClient)
	})
}

func (c *Client) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	started := time.Now()
	err := c.executor.Execute(ctx, operation, fn, classifyBackendError)
	c.metrics.ObserveRequest(serviceName, operation, time.Since(started), err)
	return wrapTemporaryIfNeeded(operation, err)
}

func (c *Client) send(req *http.Request, out any, operation string, httpClient *http.Client) error {
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Debug("backend_request_failed", "operation", operation, "request_id", requestID, "error", err)
		return fmt.Errorf("backend %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		statusErr := newStatusError(operation, resp)
		c.logger.Debug("backend_request_rejected",
			"operation", operation,
			"request_id", requestID,
			"status_code", resp.StatusCode,
			"detail", statusErr.Detail,
		)
		return statusErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// newStatusError reads a bounded slice of the error body and pulls the
// backend's structured "detail" field if the body parses as JSON.
func newStatusError(operation string, resp *http.Response) *domain.StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var detailBody struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &detailBody); err == nil {
		detail = strings.TrimSpace(detailBody.Detail)
	}

	return &domain.StatusError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Detail:     detail,
	}
}
