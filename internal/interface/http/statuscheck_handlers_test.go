package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domsc "example.com/dropship-manager/internal/domain/statuscheck"
	statusuc "example.com/dropship-manager/internal/usecase/statuscheck"
)

// --- Mocks for Status Check Tests ---

type mockStatusCheckRepo struct {
	checks []*domsc.StatusCheck
}

func (m *mockStatusCheckRepo) Create(ctx context.Context, sc *domsc.StatusCheck) error {
	if sc.ID == "" {
		sc.ID = fmt.Sprintf("check-%d", len(m.checks)+1)
	}
	cloned := *sc
	m.checks = append(m.checks, &cloned)
	return nil
}

func (m *mockStatusCheckRepo) List(ctx context.Context, limit int) ([]*domsc.StatusCheck, error) {
	result := make([]*domsc.StatusCheck, 0, len(m.checks))
	for i := len(m.checks) - 1; i >= 0 && len(result) < limit; i-- {
		cloned := *m.checks[i]
		result = append(result, &cloned)
	}
	return result, nil
}

// --- Helpers ---

func setupStatusCheckAPI(t *testing.T) (*API, *mockStatusCheckRepo) {
	t.Helper()

	repo := &mockStatusCheckRepo{}
	api := NewAPI(Dependencies{
		StatusCheckService: statusuc.NewService(repo),
	})
	return api, repo
}

// --- Test Cases ---

func TestCreateStatusCheck_EchoesIDAndTimestamp(t *testing.T) {
	api, repo := setupStatusCheckAPI(t)
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newAdminRequest(http.MethodPost, "/api/v1/status", "", map[string]any{
		"client_name": "storefront",
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "storefront", resp["client_name"])
	require.NotEmpty(t, resp["id"])

	ts, err := time.Parse(time.RFC3339Nano, resp["timestamp"].(string))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), ts, time.Minute)

	require.Len(t, repo.checks, 1)
	require.Equal(t, "storefront", repo.checks[0].ClientName)
}

func TestCreateStatusCheck_MissingClientNameReturns400(t *testing.T) {
	api, repo := setupStatusCheckAPI(t)
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newAdminRequest(http.MethodPost, "/api/v1/status", "", map[string]any{}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, repo.checks)
}

func TestListStatusChecks_NewestFirst(t *testing.T) {
	api, repo := setupStatusCheckAPI(t)
	router := api.Router()

	for _, name := range []string{"storefront", "dashboard"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newAdminRequest(http.MethodPost, "/api/v1/status", "", map[string]any{
			"client_name": name,
		}))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].([]any)
	require.Len(t, data, 2)
	require.Equal(t, "dashboard", data[0].(map[string]any)["client_name"])
	require.Equal(t, "storefront", data[1].(map[string]any)["client_name"])
	require.Len(t, repo.checks, 2)
}

func TestListStatusChecks_EmptyReturnsEmptyData(t *testing.T) {
	api, _ := setupStatusCheckAPI(t)
	router := api.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp["data"])
}
