package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	apperrors "asset-system/pkg/errors"
)

func newTestSelectionService(cache *fakeCache) SelectionServiceInterface {
	return NewSelectionService(cache, time.Hour, zap.NewNop())
}

func TestSelectionSessionLifecycle(t *testing.T) {
	cache := newFakeCache()
	svc := newTestSelectionService(cache)
	ctx := context.Background()

	sessionID, err := svc.OpenSession(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(sessionID)
	require.NoError(t, err)

	state, err := svc.RestoreState(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Step)

	saved := dto.WizardStateDTO{
		Step: 2,
		Selection: dto.CreateAssociationDTO{
			ClientID: testClientID,
			Assets:   []dto.SelectedAssetDTO{{ID: 1, Type: "EQUIPMENT"}},
		},
	}
	require.NoError(t, svc.SaveState(ctx, sessionID, saved))

	restored, err := svc.RestoreState(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Step)
	assert.Equal(t, testClientID, restored.Selection.ClientID)
	require.Len(t, restored.Selection.Assets, 1)

	require.NoError(t, svc.DiscardSession(ctx, sessionID))
	_, err = svc.RestoreState(ctx, sessionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestoreStateUnknownSession(t *testing.T) {
	svc := newTestSelectionService(newFakeCache())

	_, err := svc.RestoreState(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestoreStateCorruptedCheckpoint(t *testing.T) {
	cache := newFakeCache()
	svc := newTestSelectionService(cache)

	sessionID := uuid.NewString()
	cache.data[selectionKeyPrefix+sessionID] = "{não é json"

	_, err := svc.RestoreState(context.Background(), sessionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// O checkpoint corrompido deve ser removido.
	_, ok := cache.data[selectionKeyPrefix+sessionID]
	assert.False(t, ok)
}
