package backend

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmgen/minutes-console/internal/core/domain"
	"github.com/mmgen/minutes-console/internal/infrastructure/resilience"
	"github.com/mmgen/minutes-console/internal/observability/metrics"
)

const serviceName = "minutes-console"

// Client talks to the Meeting Minutes Generator backend under <baseURL>/api.
// Uploads get their own HTTP client because generation runs far longer than a
// status probe or a question.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	executor     *resilience.Executor
	metrics      *metrics.ClientMetrics
	logger       *slog.Logger
}

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
}

func New(cfg Config, executor *resilience.Executor, clientMetrics *metrics.ClientMetrics, logger *slog.Logger) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = 5 * time.Minute
	}
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
		executor:     executor,
		metrics:      clientMetrics,
		logger:       logger,
	}
}

type statusResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	VectorStoreLoaded bool   `json:"vector_store_loaded"`
	LLMLoaded         bool   `json:"llm_loaded"`
}

// Status probes /api/status. Any non-ready report maps to the loading state;
// transport failures are the caller's signal for offline.
func (c *Client) Status(ctx context.Context) (domain.ServerStatus, error) {
	var resp statusResponse
	if err := c.getJSON(ctx, "/api/status", &resp, "status"); err != nil {
		c.metrics.SetBackendReady(false)
		return domain.ServerStatus{}, err
	}

	state := domain.ServerLoading
	if resp.Status == "ready" {
		state = domain.ServerReady
	}
	c.metrics.SetBackendReady(state == domain.ServerReady)

	message := resp.Message
	if message == "" {
		message = string(state)
	}
	return domain.ServerStatus{State: state, Message: message}, nil
}

type minutesResponse struct {
	Status                string  `json:"status"`
	Filename              string  `json:"filename"`
	Minutes               string  `json:"minutes"`
	ChunksCreated         int     `json:"chunks_created"`
	SectionsRetrieved     int     `json:"sections_retrieved"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

// GenerateMinutes posts the transcript bytes as multipart field "file" and
// returns the atomically delivered minutes.
func (c *Client) GenerateMinutes(ctx context.Context, file *domain.TranscriptFile) (*domain.Minutes, error) {
	var resp minutesResponse
	if err := c.postMultipart(ctx, "/api/upload-transcript", file, &resp, "upload transcript"); err != nil {
		return nil, err
	}

	c.logger.Debug("transcript_processed",
		"filename", resp.Filename,
		"chunks_created", resp.ChunksCreated,
		"processing_seconds", resp.ProcessingTimeSeconds,
	)

	return &domain.Minutes{
		Text:              resp.Minutes,
		Filename:          resp.Filename,
		ChunksCreated:     resp.ChunksCreated,
		SectionsRetrieved: resp.SectionsRetrieved,
		ProcessingSeconds: resp.ProcessingTimeSeconds,
	}, nil
}

type queryResponse struct {
	Status string `json:"status"`
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

// Ask posts {question} to /api/query.
func (c *Client) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	request := map[string]any{
		"question": question,
	}

	var resp queryResponse
	if err := c.postJSON(ctx, "/api/query", request, &resp, "query"); err != nil {
		return nil, err
	}
	return &domain.Answer{Question: question, Text: resp.Answer}, nil
}
