package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/funsnaps/contact-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func baseConfig() *config.Config {
	return &config.Config{
		Env:                   "production",
		ContactPath:           "/api/contact",
		FromEmail:             config.DefaultFromEmail,
		ToEmails:              []string{config.DefaultToEmail},
		StrictEmailValidation: true,
		MaxBodyBytes:          1 << 10,
	}
}

func submit(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Jo","email":"jo@x.com","phone":"555-1234"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew_MissingAPIKeyStillServes(t *testing.T) {
	cfg := baseConfig()
	cfg.EmailProvider = "resend"

	server, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	rec := submit(t, server.Router())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Email service not configured"}`, rec.Body.String())
}

func TestNew_MissingAPIKeyDetailsInDevelopment(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "development"
	cfg.EmailProvider = "resend"

	server, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	rec := submit(t, server.Router())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "resend: api key is empty")
}

func TestNew_LogProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.EmailProvider = "log"

	server, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	rec := submit(t, server.Router())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"log"`)
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.EmailProvider = "fax"

	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
