// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/models"
)

// ResultHandle gives lazy access to the result of one program of a
// completed execute job. Every accessor fetches at most once per handle
// after its first success. A ResultHandle is safe for concurrent use.
type ResultHandle struct {
	Ref models.ExecutionResultRef

	adapter adapter.ServerAdapter

	mu       sync.Mutex
	backend  *models.BackendInfo
	input    *models.HUGRRef
	payloads map[models.ResultVersion]models.ExecutionPayload
}

func NewResultHandle(ref models.ExecutionResultRef, serverAdapter adapter.ServerAdapter) *ResultHandle {
	return &ResultHandle{
		Ref:      ref,
		adapter:  serverAdapter,
		payloads: make(map[models.ResultVersion]models.ExecutionPayload),
	}
}

func (h *ResultHandle) BackendInfo(ctx context.Context) (models.BackendInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.backend != nil {
		return *h.backend, nil
	}

	info, err := h.adapter.BackendInfo(ctx, h.Ref.ID)
	if err != nil {
		return models.BackendInfo{}, fmt.Errorf("result %s backend info: %w", h.Ref.ID, err)
	}
	h.backend = &info
	return info, nil
}

// Input returns the program the result was produced from.
func (h *ResultHandle) Input(ctx context.Context) (models.HUGRRef, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.input != nil {
		return *h.input, nil
	}

	ref, err := h.adapter.ResultInput(ctx, h.Ref.ID)
	if err != nil {
		return models.HUGRRef{}, fmt.Errorf("result %s input: %w", h.Ref.ID, err)
	}
	h.input = &ref
	return ref, nil
}

// Download returns the payload in the requested encoding. Unsupported
// versions fail with models.ErrDecodeVersionUnsupported without a request.
func (h *ResultHandle) Download(ctx context.Context, version models.ResultVersion) (models.ExecutionPayload, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("%w: %d", models.ErrDecodeVersionUnsupported, int(version))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if p, ok := h.payloads[version]; ok {
		return p, nil
	}

	p, err := h.adapter.DownloadResult(ctx, h.Ref.ID, version)
	if err != nil {
		return nil, fmt.Errorf("result %s download %s: %w", h.Ref.ID, version, err)
	}
	h.payloads[version] = p
	return p, nil
}

// Collated downloads the default encoding.
func (h *ResultHandle) Collated(ctx context.Context) (*models.QsysResult, error) {
	p, err := h.Download(ctx, models.ResultVersionDefault)
	if err != nil {
		return nil, err
	}

	r, ok := p.(*models.QsysResult)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected payload %T", adapter.ErrDecodeResponse, p)
	}
	return r, nil
}

// Raw downloads the raw encoding.
func (h *ResultHandle) Raw(ctx context.Context) (*models.RawQsysResult, error) {
	p, err := h.Download(ctx, models.ResultVersionRaw)
	if err != nil {
		return nil, err
	}

	r, ok := p.(*models.RawQsysResult)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected payload %T", adapter.ErrDecodeResponse, p)
	}
	return r, nil
}
