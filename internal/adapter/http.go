// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
	"github.com/go-resty/resty/v2"
)

const apiPrefix = "/api/v1"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher signs request bodies with X-Content-Digest. Nil disables it.
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// The address may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, strings.TrimSpace(adapterCfg.Token)),
		logger: logger,
	}

	if appCfg.HashKey != "" {
		if a.hasher, err = utils.NewHasher(appCfg.HashKey); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

func (h *httpServerAdapter) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.ProjectRef, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.ProjectRef{}, err
	}
	return decode[models.ProjectRef](r.Post(apiPrefix + "/projects"))
}

func (h *httpServerAdapter) GetProject(ctx context.Context, id string) (models.ProjectRef, error) {
	return decode[models.ProjectRef](h.request(ctx).
		SetPathParam("id", id).
		Get(apiPrefix + "/projects/{id}"))
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(apiPrefix + "/projects/{id}")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) UploadHUGR(ctx context.Context, upload models.HUGRUpload) (models.HUGRRef, error) {
	r, err := h.jsonRequest(ctx, upload)
	if err != nil {
		return models.HUGRRef{}, err
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.UploadHUGR").
		Str("name", upload.Name).
		Int("size", len(upload.Content)).
		Msg("uploading program")

	return decode[models.HUGRRef](r.Post(apiPrefix + "/hugr"))
}

func (h *httpServerAdapter) GetHUGR(ctx context.Context, id string) (models.HUGRRef, error) {
	return decode[models.HUGRRef](h.request(ctx).
		SetPathParam("id", id).
		Get(apiPrefix + "/hugr/{id}"))
}

func (h *httpServerAdapter) Cost(ctx context.Context, req models.CostRequest) (models.CostResponse, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.CostResponse{}, err
	}
	return decode[models.CostResponse](r.Post(apiPrefix + "/hugr/cost"))
}

func (h *httpServerAdapter) CostConfidence(ctx context.Context, req models.CostRequest) (models.CostConfidenceResponse, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.CostConfidenceResponse{}, err
	}
	return decode[models.CostConfidenceResponse](r.Post(apiPrefix + "/hugr/cost-confidence"))
}

func (h *httpServerAdapter) ExecuteJob(ctx context.Context, req models.ExecuteJobRequest) (models.JobRef, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.JobRef{}, err
	}
	return decode[models.JobRef](r.Post(apiPrefix + "/jobs/execute"))
}

func (h *httpServerAdapter) JobStatus(ctx context.Context, jobID string) (models.JobStatusInfo, error) {
	return decode[models.JobStatusInfo](h.request(ctx).
		SetPathParam("id", jobID).
		Get(apiPrefix + "/jobs/{id}/status"))
}

func (h *httpServerAdapter) JobResults(ctx context.Context, jobID string) ([]models.ExecutionResultRef, error) {
	return decode[[]models.ExecutionResultRef](h.request(ctx).
		SetPathParam("id", jobID).
		Get(apiPrefix + "/jobs/{id}/results"))
}

func (h *httpServerAdapter) BackendInfo(ctx context.Context, resultID string) (models.BackendInfo, error) {
	return decode[models.BackendInfo](h.request(ctx).
		SetPathParam("id", resultID).
		Get(apiPrefix + "/results/{id}/backend-info"))
}

func (h *httpServerAdapter) ResultInput(ctx context.Context, resultID string) (models.HUGRRef, error) {
	return decode[models.HUGRRef](h.request(ctx).
		SetPathParam("id", resultID).
		Get(apiPrefix + "/results/{id}/input"))
}

// DownloadResult rejects unsupported versions before any request is sent.
func (h *httpServerAdapter) DownloadResult(ctx context.Context, resultID string, version models.ResultVersion) (models.ExecutionPayload, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("%w: %d", models.ErrDecodeVersionUnsupported, int(version))
	}

	resp, err := h.request(ctx).
		SetPathParam("id", resultID).
		SetQueryParam("version", strconv.Itoa(int(version))).
		Get(apiPrefix + "/results/{id}")

	if version == models.ResultVersionRaw {
		raw, err := decode[*models.RawQsysResult](resp, err)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}

	collated, err := decode[*models.QsysResult](resp, err)
	if err != nil {
		return nil, err
	}
	return collated, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// jsonRequest marshals body up front so that the digest covers exactly the
// bytes that are sent.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	r := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hasher != nil {
		r.SetHeader(utils.DigestHeader, h.hasher.HashString(payload))
	}
	return r, nil
}

// decode maps transport and response errors and unmarshals a 2xx body into
// T.
func decode[T any](resp *resty.Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, resp.Request.Method, resp.Request.URL, err)
	}
	return out, nil
}
