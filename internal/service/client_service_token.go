// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/utils"
)

type clientTokenService struct {
	app config.ClientApp
}

func NewClientTokenService(app config.ClientApp) ClientTokenService {
	return &clientTokenService{app: app}
}

func (s *clientTokenService) MintToken(client string) (string, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return "", fmt.Errorf("%w: client name is empty", ErrInvalidDataProvided)
	}
	if s.app.TokenSignKey == "" {
		return "", fmt.Errorf("%w: token sign key is not configured", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, client, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token.String(), nil
}
