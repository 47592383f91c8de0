package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/rules"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

type fakeAssociationRepo struct {
	detailed []entities.Association
	existing map[uint64]*entities.Association
	created  []entities.Association
	nextID   uint64
	ended    []uint64
}

func (f *fakeAssociationRepo) GetAssociations(ctx context.Context, filter types.Filter) ([]entities.Association, uint64, error) {
	return f.detailed, uint64(len(f.detailed)), nil
}

func (f *fakeAssociationRepo) GetAssociationsDetailed(ctx context.Context) ([]entities.Association, error) {
	return f.detailed, nil
}

func (f *fakeAssociationRepo) FindAssociation(ctx context.Context, id uint64) (*entities.Association, error) {
	if a, ok := f.existing[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAssociationRepo) CreateAssociationTx(ctx context.Context, tx pgx.Tx, a entities.Association) (uint64, error) {
	f.nextID++
	a.ID = f.nextID
	f.created = append(f.created, a)
	return a.ID, nil
}

func (f *fakeAssociationRepo) EndAssociation(ctx context.Context, id uint64, exitDate time.Time, notes *string) error {
	f.ended = append(f.ended, id)
	return nil
}

type fakeAssetRepo struct {
	assets map[uint64]entities.Asset
}

func (f *fakeAssetRepo) GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return nil, 0, nil
}

func (f *fakeAssetRepo) GetAvailableAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return nil, 0, nil
}

func (f *fakeAssetRepo) FindAsset(ctx context.Context, id uint64) (*entities.Asset, error) {
	if a, ok := f.assets[id]; ok {
		return &a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAssetRepo) FindAssetsByIDs(ctx context.Context, ids []uint64) ([]entities.Asset, error) {
	var out []entities.Asset
	for _, id := range ids {
		if a, ok := f.assets[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	return 0, nil
}

func (f *fakeAssetRepo) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	return nil
}

func (f *fakeAssetRepo) DeleteAsset(ctx context.Context, id uint64) error { return nil }

type fakeClientRepo struct {
	clients map[string]entities.Client
}

func (f *fakeClientRepo) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	return nil, 0, nil
}

func (f *fakeClientRepo) FindClient(ctx context.Context, clientUUID string) (*entities.Client, error) {
	if c, ok := f.clients[clientUUID]; ok {
		return &c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeClientRepo) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) UpdateClient(ctx context.Context, clientUUID string, payload dto.UpdateClientDTO) error {
	return nil
}

func (f *fakeClientRepo) DeleteClient(ctx context.Context, clientUUID string) error { return nil }

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

const testClientID = "0d4f7b9e-1c2a-4e4f-9a51-3f6f6d2b8a10"

func ptrU64(v uint64) *uint64 { return &v }
func ptrStr(v string) *string { return &v }

func testAssets() map[uint64]entities.Asset {
	return map[uint64]entities.Asset{
		1: {ID: 1, Type: entities.AssetTypeEquipment, SolutionID: ptrU64(rules.SolutionM2MPlus), Radio: ptrStr("RUT-0001")},
		2: {ID: 2, Type: entities.AssetTypeChip, SolutionID: ptrU64(rules.SolutionChip), ICCID: ptrStr("895511000000000001")},
		3: {ID: 3, Type: entities.AssetTypeChip, SolutionID: ptrU64(rules.SolutionChip), ICCID: ptrStr("895511000000000002")},
	}
}

func newTestService(assocRepo *fakeAssociationRepo, assetRepo *fakeAssetRepo, cache *fakeCache) *AssociationService {
	return &AssociationService{
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
		associationRepo: assocRepo,
		assetRepo:       assetRepo,
		clientRepo:      &fakeClientRepo{clients: map[string]entities.Client{testClientID: {UUID: testClientID, Name: "Fazenda"}}},
		cacheRepo:       cache,
		summaryTTL:      time.Second * 30,
		logger:          zap.NewNop(),
	}
}

func basePayload() dto.CreateAssociationDTO {
	entry := "2026-03-01"
	return dto.CreateAssociationDTO{
		ClientID:          testClientID,
		EntryDate:         &entry,
		AssociationTypeID: ptrU64(1),
		Assets: []dto.SelectedAssetDTO{
			{ID: 1, Type: entities.AssetTypeEquipment},
			{ID: 2, Type: entities.AssetTypeChip},
		},
	}
}

func TestCreateAssociationsPairsEquipmentAndChip(t *testing.T) {
	assocRepo := &fakeAssociationRepo{}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	ids, err := svc.CreateAssociations(context.Background(), basePayload())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	require.Len(t, assocRepo.created, 1)

	row := assocRepo.created[0]
	require.NotNil(t, row.EquipmentID)
	require.NotNil(t, row.ChipID)
	assert.Equal(t, uint64(1), *row.EquipmentID)
	assert.Equal(t, uint64(2), *row.ChipID)
	assert.Equal(t, testClientID, row.ClientID)
	assert.True(t, row.Status)
}

func TestCreateAssociationsBackupChipGetsOwnRow(t *testing.T) {
	assocRepo := &fakeAssociationRepo{}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	payload := basePayload()
	payload.Assets = append(payload.Assets, dto.SelectedAssetDTO{ID: 3, Type: entities.AssetTypeChip})

	ids, err := svc.CreateAssociations(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	backup := assocRepo.created[1]
	assert.Nil(t, backup.EquipmentID)
	require.NotNil(t, backup.ChipID)
	assert.Equal(t, uint64(3), *backup.ChipID)
}

func TestCreateAssociationsRejectsInvalidSelection(t *testing.T) {
	assocRepo := &fakeAssociationRepo{}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	payload := basePayload()
	payload.Assets = payload.Assets[:1] // equipamento sem chip

	_, err := svc.CreateAssociations(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)

	result, ok := httpErr.Details.(rules.ValidationResult)
	require.True(t, ok)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, assocRepo.created)
}

func TestCreateAssociationsUnknownAsset(t *testing.T) {
	svc := newTestService(&fakeAssociationRepo{}, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	payload := basePayload()
	payload.Assets[0].ID = 99

	_, err := svc.CreateAssociations(context.Background(), payload)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateAssociationsInvalidatesSummaryCache(t *testing.T) {
	cache := newFakeCache()
	cache.data[summaryCacheKey] = `{"total_clients":99}`
	svc := newTestService(&fakeAssociationRepo{}, &fakeAssetRepo{assets: testAssets()}, cache)

	_, err := svc.CreateAssociations(context.Background(), basePayload())
	require.NoError(t, err)

	_, ok := cache.data[summaryCacheKey]
	assert.False(t, ok)
}

func TestValidateSelectionUsesStoredSolutionID(t *testing.T) {
	svc := newTestService(&fakeAssociationRepo{}, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	payload := basePayload()
	// O payload mente sobre a solução; o valor do banco deve prevalecer.
	payload.Assets[0].SolutionID = ptrU64(11)

	resp, err := svc.ValidateSelection(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, resp.Result.IsValid)
	assert.Equal(t, uint64(2), resp.Pairs[1])
}

func TestGetSummaryCachesResult(t *testing.T) {
	eq := uint64(1)
	chip := uint64(2)
	assocRepo := &fakeAssociationRepo{
		detailed: []entities.Association{
			{ID: 1, ClientID: testClientID, EquipmentID: &eq, ChipID: &chip, Status: true},
		},
	}
	cache := newFakeCache()
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, cache)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalClients)
	assert.Equal(t, 1, summary.PrincipalChips)

	cached, ok := cache.data[summaryCacheKey]
	require.True(t, ok)
	var fromCache dto.SummaryDTO
	require.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.Equal(t, summary.Summary, fromCache.Summary)

	// Segunda chamada deve vir do cache, mesmo com o repositório mudando.
	assocRepo.detailed = nil
	again, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary.Summary, again.Summary)
}

func TestEndAssociationRejectsExitBeforeEntry(t *testing.T) {
	entry := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assocRepo := &fakeAssociationRepo{
		existing: map[uint64]*entities.Association{
			7: {ID: 7, ClientID: testClientID, EntryDate: entry, Status: true},
		},
	}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	err := svc.EndAssociation(context.Background(), 7, dto.EndAssociationDTO{ExitDate: "2026-03-01"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, assocRepo.ended)
}

func TestAppendAssetsRejectsEndedAssociation(t *testing.T) {
	entry := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assocRepo := &fakeAssociationRepo{
		existing: map[uint64]*entities.Association{
			7: {ID: 7, ClientID: testClientID, EntryDate: entry, AssociationTypeID: 1, Status: false},
		},
	}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	_, err := svc.AppendAssets(context.Background(), 7, dto.AppendAssetsDTO{
		Assets: []dto.SelectedAssetDTO{{ID: 3, Type: entities.AssetTypeChip}},
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAppendAssetsInheritsAssociationContext(t *testing.T) {
	entry := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assocRepo := &fakeAssociationRepo{
		existing: map[uint64]*entities.Association{
			7: {ID: 7, ClientID: testClientID, EntryDate: entry, AssociationTypeID: 2, Status: true},
		},
	}
	svc := newTestService(assocRepo, &fakeAssetRepo{assets: testAssets()}, newFakeCache())

	ids, err := svc.AppendAssets(context.Background(), 7, dto.AppendAssetsDTO{
		Assets: []dto.SelectedAssetDTO{{ID: 3, Type: entities.AssetTypeChip}},
	})
	require.NoError(t, err)
	require.Len(t, ids, 1)

	row := assocRepo.created[0]
	assert.Equal(t, testClientID, row.ClientID)
	assert.Equal(t, uint64(2), row.AssociationTypeID)
	assert.Equal(t, entry, row.EntryDate)
}
