package statuscheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dom "example.com/dropship-manager/internal/domain/statuscheck"
)

type mockStatusCheckRepository struct {
	checks    []*dom.StatusCheck
	createErr error
	lastLimit int
}

func (m *mockStatusCheckRepository) Create(ctx context.Context, sc *dom.StatusCheck) error {
	if m.createErr != nil {
		return m.createErr
	}
	if sc.ID == "" {
		sc.ID = "check-1"
	}
	cloned := *sc
	m.checks = append(m.checks, &cloned)
	return nil
}

func (m *mockStatusCheckRepository) List(ctx context.Context, limit int) ([]*dom.StatusCheck, error) {
	m.lastLimit = limit
	result := make([]*dom.StatusCheck, 0, len(m.checks))
	for _, sc := range m.checks {
		cloned := *sc
		result = append(result, &cloned)
	}
	return result, nil
}

func TestRecord_StampsUTCTimestamp(t *testing.T) {
	repo := &mockStatusCheckRepository{}
	svc := NewService(repo)

	before := time.Now().UTC()
	sc, err := svc.Record(context.Background(), "storefront")
	after := time.Now().UTC()

	require.NoError(t, err)
	require.Equal(t, "storefront", sc.ClientName)
	require.NotEmpty(t, sc.ID)
	require.Equal(t, time.UTC, sc.Timestamp.Location())
	require.False(t, sc.Timestamp.Before(before))
	require.False(t, sc.Timestamp.After(after))

	require.Len(t, repo.checks, 1)
}

func TestRecord_PropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("pg gone")
	repo := &mockStatusCheckRepository{createErr: repoErr}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), "storefront")

	require.ErrorIs(t, err, repoErr)
}

func TestList_CapsAtOneHundred(t *testing.T) {
	repo := &mockStatusCheckRepository{
		checks: []*dom.StatusCheck{
			{ID: "a", ClientName: "storefront"},
			{ID: "b", ClientName: "dashboard"},
		},
	}
	svc := NewService(repo)

	checks, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, 100, repo.lastLimit)
}
