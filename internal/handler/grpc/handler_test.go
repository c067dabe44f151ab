// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
)

type stubAppInfo struct {
	err error
}

func (s *stubAppInfo) GetAppVersion(context.Context) string { return "test" }

func (s *stubAppInfo) Status(context.Context) models.StatusResponse {
	return models.StatusResponse{Status: service.StatusOK}
}

func (s *stubAppInfo) Health(context.Context) (models.StatusResponse, error) {
	if s.err != nil {
		return models.StatusResponse{Status: service.StatusUnhealthy}, s.err
	}
	return models.StatusResponse{Status: service.StatusHealthy}, nil
}

// dialHealth serves the handler over an in-memory listener and returns a
// health client connected to it.
func dialHealth(t *testing.T, appInfo service.AppInfoService) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop()).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestCheck_Serving(t *testing.T) {
	client := dialHealth(t, &stubAppInfo{})

	for _, name := range []string{"", ServiceName} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	client := dialHealth(t, &stubAppInfo{err: errors.New("connection refused")})

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestCheck_UnknownService(t *testing.T) {
	client := dialHealth(t, &stubAppInfo{})

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "other"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
