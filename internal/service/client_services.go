// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	NoteService    ClientNoteService
	AppInfoService ClientAppInfoService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, version string, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		NoteService:    NewClientNoteService(localStore.SessionRepository, serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(version, serverAdapter),
	}
}
