// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/adapter"
)

type clientAppInfoService struct {
	version string
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(version string, serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{version: version, adapter: serverAdapter}
}

func (s *clientAppInfoService) ClientVersion() string {
	return s.version
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return v, nil
}
