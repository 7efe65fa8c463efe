package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/utils"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/register"
	downloadPath = "/download"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and a User-Agent carrying appCfg.Version.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: "go-mail-notes/" + appCfg.Version,
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs req to POST /register, adding
// ?rotate=true when rotate is set, and decodes the JSON body. Returns an error
// wrapping [ErrTransport] on connectivity failure, a status error on non-2xx
// and [ErrDecode] when the body is not valid JSON.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest, rotate bool) (models.RegisterResponse, error) {
	r := h.jsonRequest(ctx).SetBody(req)
	if rotate {
		r.SetQueryParam("rotate", "true")
	}

	resp, err := r.Post(registerPath)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: register request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var out models.RegisterResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: register response: %w", ErrDecode, err)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.Register").
		Bool("rotate", rotate).
		Msg("registration response received")

	return out, nil
}

// Download implements [ServerAdapter]. It POSTs req to POST /download and
// decodes the note list and quota fields. A null notes array decodes to an
// empty slice.
func (h *httpServerAdapter) Download(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error) {
	req.Since = req.Since.UTC()

	resp, err := h.jsonRequest(ctx).SetBody(req).Post(downloadPath)
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("%w: download request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	var out models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("%w: download response: %w", ErrDecode, err)
	}
	if out.Notes == nil {
		out.Notes = []models.NoteRecord{}
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.Download").
		Int("notes", len(out.Notes)).
		Bool("over_quota", out.OverQuota).
		Msg("download response received")

	return out, nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}
