package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MailCheck/config"
	"MailCheck/models"
	"MailCheck/repositories"
	"MailCheck/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTypoManager struct {
	table  map[string]string
	setErr error
	delErr error
}

func (s *stubTypoManager) Table() map[string]string { return s.table }

func (s *stubTypoManager) Set(typo, correction string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.table[typo] = correction
	return nil
}

func (s *stubTypoManager) Remove(typo string) error {
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.table, typo)
	return nil
}

type stubRecordRepo struct {
	stats    *models.ValidationStats
	statsErr error
}

func (s *stubRecordRepo) Create(*models.ValidationRecord) error { return nil }

func (s *stubRecordRepo) Recent(int) ([]models.ValidationRecord, error) { return nil, nil }

func (s *stubRecordRepo) Stats() (*models.ValidationStats, error) {
	return s.stats, s.statsErr
}

func (s *stubRecordRepo) DeleteOlderThan(time.Time) (int64, error) { return 0, nil }

func newTestAdminController(t *testing.T) (*AdminController, *stubTypoManager, *stubRecordRepo) {
	auth, err := services.NewAdminService(&config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		AdminAPIKey: "test-api-key",
	})
	require.NoError(t, err)

	typos := &stubTypoManager{table: map[string]string{"gmial.com": "gmail.com"}}
	records := &stubRecordRepo{stats: &models.ValidationStats{Total: 4, Valid: 3, Invalid: 1, Suggested: 2}}
	return NewAdminController(auth, typos, records), typos, records
}

func TestAdminLogin(t *testing.T) {
	ac, _, _ := newTestAdminController(t)

	w := postJSON(t, ac.Login, "/api/mailcheck/admin/login", LoginRequest{APIKey: "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestAdminLoginWrongKey(t *testing.T) {
	ac, _, _ := newTestAdminController(t)

	w := postJSON(t, ac.Login, "/api/mailcheck/admin/login", LoginRequest{APIKey: "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListTypos(t *testing.T) {
	ac, _, _ := newTestAdminController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/mailcheck/admin/typos", nil)
	w := httptest.NewRecorder()
	ac.ListTypos(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var table map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Equal(t, "gmail.com", table["gmial.com"])
}

func TestAdminUpsertTypo(t *testing.T) {
	ac, typos, _ := newTestAdminController(t)

	w := postJSON(t, ac.UpsertTypo, "/api/mailcheck/admin/typos", TypoRequest{
		Typo:       "gogle.com",
		Correction: "google.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "google.com", typos.table["gogle.com"])
}

func TestAdminUpsertTypoRejectsBadEntry(t *testing.T) {
	ac, typos, _ := newTestAdminController(t)
	typos.setErr = models.ErrTypoEmpty

	w := postJSON(t, ac.UpsertTypo, "/api/mailcheck/admin/typos", TypoRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteTypo(t *testing.T) {
	ac, typos, _ := newTestAdminController(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/mailcheck/admin/typos/gmial.com", nil)
	req = mux.SetURLVars(req, map[string]string{"typo": "gmial.com"})
	w := httptest.NewRecorder()
	ac.DeleteTypo(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := typos.table["gmial.com"]
	assert.False(t, ok)
}

func TestAdminDeleteTypoMissing(t *testing.T) {
	ac, typos, _ := newTestAdminController(t)
	typos.delErr = repositories.ErrNotFound

	req := httptest.NewRequest(http.MethodDelete, "/api/mailcheck/admin/typos/nope.com", nil)
	req = mux.SetURLVars(req, map[string]string{"typo": "nope.com"})
	w := httptest.NewRecorder()
	ac.DeleteTypo(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminStats(t *testing.T) {
	ac, _, _ := newTestAdminController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/mailcheck/admin/stats", nil)
	w := httptest.NewRecorder()
	ac.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.ValidationStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Suggested)
}

func TestAdminStatsFailure(t *testing.T) {
	ac, _, records := newTestAdminController(t)
	records.statsErr = assert.AnError
	records.stats = nil

	req := httptest.NewRequest(http.MethodGet, "/api/mailcheck/admin/stats", nil)
	w := httptest.NewRecorder()
	ac.Stats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
