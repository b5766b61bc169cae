// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/metrics"
	"github.com/MKhiriev/macro-marketplace/internal/mock"
	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/models"
)

const testBaseURL = "http://localhost:5000"

type catalogMocks struct {
	adapter   *mock.MockServerAdapter
	snapshots *mock.MockSnapshotRepository
	fallback  *mock.MockFallbackLoader
	saver     *mock.MockDownloadSaver
}

// newTestCatalogSvc builds a clientCatalogService over an empty cache and mocks.
func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (*clientCatalogService, catalogMocks) {
	t.Helper()
	m := catalogMocks{
		adapter:   mock.NewMockServerAdapter(ctrl),
		snapshots: mock.NewMockSnapshotRepository(ctrl),
		fallback:  mock.NewMockFallbackLoader(ctrl),
		saver:     mock.NewMockDownloadSaver(ctrl),
	}
	m.adapter.EXPECT().BaseURL().Return(testBaseURL).AnyTimes()

	storages := &store.ClientStorages{
		Catalog:   store.NewCatalogCache(),
		Snapshots: m.snapshots,
	}
	cfg := config.ClientCatalog{PerPage: 20, DetailCacheSize: 8, DetailCacheTTL: time.Minute}

	svc := NewClientCatalogService(m.adapter, storages, m.fallback, m.saver, cfg, logger.Nop()).(*clientCatalogService)
	return svc, m
}

func makro(id int64, name string) models.MakroDTO {
	desc := name + " description"
	usecase := "Excel"
	return models.MakroDTO{
		ID:         models.MacroID(strconv.FormatInt(id, 10)),
		Name:       name,
		Desc:       &desc,
		Usecase:    &usecase,
		AuthorID:   1,
		AuthorName: "anna",
		CreatedAt:  "2025-01-02T03:04:05",
	}
}

func envelope(items ...models.MakroDTO) models.CatalogEnvelope {
	return models.CatalogEnvelope{Makros: items, Total: len(items), Pages: 1, CurrentPage: 1, PerPage: 20}
}

func recordIDs(records []models.MacroRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func transportErr() error {
	return fmt.Errorf("%w: list request: %w", adapter.ErrTransport, errors.New("connection refused"))
}

func zipFile() models.LocalFile {
	return models.LocalFile{Name: "macro.zip", Data: []byte("PK\x03\x04 package")}
}

// ── FetchPage / Search / MyMacros ────────────────────────────────────────────

func TestClientCatalogService_FetchPage_ReplacesCacheAndSavesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "old"}})

	preview := "/static/previews/2.png"
	second := makro(2, "Second")
	second.PreviewURL = &preview

	m.adapter.EXPECT().ListMakros(ctx, models.PageRequest{Page: 2, PerPage: 20}).Return(envelope(makro(1, "First"), second), nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Len(2)).Return(nil)

	page, err := svc.FetchPage(ctx, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, recordIDs(page.Records))
	assert.Equal(t, []string{"1", "2"}, recordIDs(svc.cache.Snapshot()))

	got := svc.cache.Snapshot()[1]
	assert.Equal(t, "Second description", got.Description)
	assert.Equal(t, models.CategoryExcel, got.Category)
	require.NotNil(t, got.PreviewURL)
	assert.Equal(t, "http://localhost:5000/static/previews/2.png", *got.PreviewURL)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), got.CreatedAt)
	assert.Equal(t, "Second.zip", got.Filename)
}

func TestClientCatalogService_FetchPage_ClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, models.PageRequest{Page: 1, PerPage: 100}).Return(envelope(), nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(nil)

	_, err := svc.FetchPage(ctx, -3, 1000)
	require.NoError(t, err)
}

func TestClientCatalogService_FetchPage_FailureLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "kept"}})
	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(models.CatalogEnvelope{}, transportErr())

	_, err := svc.FetchPage(ctx, 1, 0)
	require.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, unreachableMessage, UserMessage(err))
	assert.Equal(t, []string{"kept"}, recordIDs(svc.cache.Snapshot()))
}

func TestClientCatalogService_FetchPage_SnapshotFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(envelope(makro(1, "A")), nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.FetchPage(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.cache.Len())
}

func TestClientCatalogService_Search_NormalizesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	want := models.SearchQuery{
		Query:       "report",
		Category:    models.CategoryNetwork,
		Author:      "anna",
		PageRequest: models.PageRequest{Page: 1, PerPage: 20},
	}
	m.adapter.EXPECT().SearchMakros(ctx, want).Return(envelope(makro(4, "Report")), nil)

	page, err := svc.Search(ctx, models.SearchQuery{Query: "  report ", Category: "netzwerk", Author: " anna"})
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, recordIDs(page.Records))
	assert.Equal(t, []string{"4"}, recordIDs(svc.cache.Snapshot()))
}

func TestClientCatalogService_Search_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.Search(context.Background(), models.SearchQuery{Category: "Games"})
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestClientCatalogService_MyMacros_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().MyMakros(ctx, models.PageRequest{Page: 1, PerPage: 5}).
		Return(models.CatalogEnvelope{}, adapter.NewHTTPError(http.StatusUnauthorized, "Missing Authorization Header"))

	_, err := svc.MyMacros(ctx, 1, 5)
	require.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, "Missing Authorization Header", UserMessage(err))
}

func TestClientCatalogService_StaleResponseIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	m.adapter.EXPECT().ListMakros(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.PageRequest) (models.CatalogEnvelope, error) {
			close(started)
			<-release
			return envelope(makro(1, "Slow")), nil
		},
	)
	m.adapter.EXPECT().SearchMakros(gomock.Any(), gomock.Any()).Return(envelope(makro(2, "Fast")), nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.FetchPage(ctx, 1, 0)
		errCh <- err
	}()

	<-started
	_, err := svc.Search(ctx, models.SearchQuery{Query: "fast"})
	require.NoError(t, err)

	close(release)
	require.ErrorIs(t, <-errCh, ErrStaleResult)
	assert.Equal(t, []string{"2"}, recordIDs(svc.cache.Snapshot()))
}

// ── Random / Refresh ─────────────────────────────────────────────────────────

func TestClientCatalogService_Random_ClampsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().RandomMakros(ctx, maxRandomCount).Return(models.RandomEnvelope{Makros: []models.MakroDTO{makro(3, "R")}, Count: 1}, nil)
	m.adapter.EXPECT().RandomMakros(ctx, defaultRandomCount).Return(models.RandomEnvelope{}, nil)

	got, err := svc.Random(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, recordIDs(got))
	assert.Equal(t, []string{"3"}, recordIDs(svc.cache.Snapshot()))

	got, err = svc.Random(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, svc.cache.Len())
}

func TestClientCatalogService_Refresh_RepeatsLastRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	query := models.SearchQuery{Query: "pdf", PageRequest: models.PageRequest{Page: 2, PerPage: 10}}
	m.adapter.EXPECT().SearchMakros(ctx, query).Return(envelope(makro(1, "A")), nil).Times(2)

	_, err := svc.Search(ctx, query)
	require.NoError(t, err)
	require.NoError(t, svc.Refresh(ctx))
}

func TestClientCatalogService_Refresh_DefaultsToFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, models.PageRequest{Page: 1, PerPage: 20}).Return(envelope(), nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.Refresh(ctx))
}

// ── FetchByID ────────────────────────────────────────────────────────────────

func TestClientCatalogService_FetchByID_UsesDetailCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	hits := testutil.ToFloat64(metrics.DetailCacheHits)
	m.adapter.EXPECT().GetMakro(ctx, "7").Return(makro(7, "Seven"), nil).Times(1)

	first, err := svc.FetchByID(ctx, "7")
	require.NoError(t, err)
	second, err := svc.FetchByID(ctx, " 7 ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Seven", first.Name)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.DetailCacheHits))
	assert.Equal(t, 0, svc.cache.Len(), "lookups must not touch the catalog cache")
}

func TestClientCatalogService_FetchByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().GetMakro(ctx, "404").Return(models.MakroDTO{}, adapter.NewHTTPError(http.StatusNotFound, "Makro not found"))

	_, err := svc.FetchByID(ctx, "404")
	require.ErrorIs(t, err, ErrMacroNotFound)
	assert.Equal(t, "Makro not found", UserMessage(err))
}

func TestClientCatalogService_FetchByID_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.FetchByID(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyMacroID)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientCatalogService_Create_PrependsConfirmedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}, {ID: "2"}})

	m.adapter.EXPECT().CreateMakro(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, macro models.NewMacro) (models.MakroDTO, error) {
			assert.Equal(t, "New macro", macro.Name)
			assert.Equal(t, models.CategoryNetwork, macro.Category)
			return makro(9, "New macro"), nil
		},
	)

	rec, err := svc.Create(ctx, models.NewMacro{File: zipFile(), Name: " New macro ", Category: "Netzwerk"})
	require.NoError(t, err)

	snapshot := svc.cache.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "9", snapshot[0].ID)
	assert.Equal(t, rec, snapshot[0])
	assert.Equal(t, "macro.zip", rec.Filename)
	assert.False(t, rec.IsPlaceholder())
}

func TestClientCatalogService_Create_FailureLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}})
	m.adapter.EXPECT().CreateMakro(ctx, gomock.Any()).
		Return(models.MakroDTO{}, adapter.NewHTTPError(http.StatusBadRequest, "Name is required"))

	_, err := svc.Create(ctx, models.NewMacro{File: zipFile(), Name: "x"})
	require.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, "Name is required", UserMessage(err))
	assert.Equal(t, []string{"1"}, recordIDs(svc.cache.Snapshot()))
}

func TestClientCatalogService_Create_ValidationBeforeNetwork(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name  string
		macro models.NewMacro
		want  error
	}{
		{"empty name", models.NewMacro{File: zipFile(), Name: "  "}, ErrEmptyMacroName},
		{"no file", models.NewMacro{Name: "x"}, ErrNoPackageFile},
		{"not an archive", models.NewMacro{Name: "x", File: models.LocalFile{Name: "run.py", Data: []byte("print(1)")}}, ErrNotArchive},
		{"unknown category", models.NewMacro{Name: "x", File: zipFile(), Category: "Games"}, ErrInvalidCategory},
		{"text preview", models.NewMacro{Name: "x", File: zipFile(), Preview: &models.LocalFile{Name: "a.txt", Data: []byte("hello")}}, ErrInvalidPreview},
		{"empty preview", models.NewMacro{Name: "x", File: zipFile(), Preview: &models.LocalFile{Name: "a.png"}}, ErrInvalidPreview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestCatalogSvc(t, ctrl)
			svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}})

			_, err := svc.Create(context.Background(), tt.macro)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, svc.cache.Len())
		})
	}

	t.Run("image preview passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestCatalogSvc(t, ctrl)
		m.adapter.EXPECT().CreateMakro(gomock.Any(), gomock.Any()).Return(makro(5, "x"), nil)

		_, err := svc.Create(context.Background(), models.NewMacro{Name: "x", File: zipFile(), Preview: &models.LocalFile{Name: "p.png", Data: png}})
		require.NoError(t, err)
	})
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestClientCatalogService_Update_ReplacesEntryAndInvalidatesDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}, {ID: "7", Name: "Old"}, {ID: "9"}})

	name := "  Renamed "
	updated := makro(7, "Renamed")

	gomock.InOrder(
		m.adapter.EXPECT().GetMakro(ctx, "7").Return(makro(7, "Old"), nil),
		m.adapter.EXPECT().UpdateMakro(ctx, "7", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch models.MacroPatch) (models.MakroDTO, error) {
				require.NotNil(t, patch.Name)
				assert.Equal(t, "Renamed", *patch.Name)
				assert.Nil(t, patch.Description)
				return updated, nil
			},
		),
		m.adapter.EXPECT().GetMakro(ctx, "7").Return(updated, nil),
	)

	_, err := svc.FetchByID(ctx, "7")
	require.NoError(t, err)

	rec, err := svc.Update(ctx, "7", models.MacroPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", rec.Name)
	assert.Equal(t, []string{"1", "7", "9"}, recordIDs(svc.cache.Snapshot()))
	assert.Equal(t, "Renamed", svc.cache.Snapshot()[1].Name)

	again, err := svc.FetchByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Name)
}

func TestClientCatalogService_Update_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	blank := " "
	bad := models.Category("Games")

	_, err := svc.Update(ctx, "1", models.MacroPatch{})
	assert.ErrorIs(t, err, ErrEmptyPatch)
	_, err = svc.Update(ctx, "1", models.MacroPatch{Name: &blank})
	assert.ErrorIs(t, err, ErrEmptyMacroName)
	_, err = svc.Update(ctx, "1", models.MacroPatch{Category: &bad})
	assert.ErrorIs(t, err, ErrInvalidCategory)
	_, err = svc.Update(ctx, "", models.MacroPatch{Name: &blank})
	assert.ErrorIs(t, err, ErrEmptyMacroID)
}

func TestClientCatalogService_Update_ForbiddenLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "7", Name: "Old"}})
	desc := "new"
	m.adapter.EXPECT().UpdateMakro(ctx, "7", gomock.Any()).
		Return(models.MakroDTO{}, adapter.NewHTTPError(http.StatusForbidden, "Not authorized to update this makro"))

	_, err := svc.Update(ctx, "7", models.MacroPatch{Description: &desc})
	require.ErrorIs(t, err, ErrNotAuthor)
	assert.Equal(t, "Old", svc.cache.Snapshot()[0].Name)
}

func TestClientCatalogService_Update_MissingCacheEntryIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}})
	desc := "new"
	m.adapter.EXPECT().UpdateMakro(ctx, "7", gomock.Any()).Return(makro(7, "Seven"), nil)

	_, err := svc.Update(ctx, "7", models.MacroPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, recordIDs(svc.cache.Snapshot()))
}

func TestClientCatalogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.cache.ReplaceAll([]models.MacroRecord{{ID: "1"}, {ID: "2"}})

	failures := testutil.ToFloat64(metrics.RemoteRequests.WithLabelValues(opDelete, metrics.OutcomeError))

	m.adapter.EXPECT().DeleteMakro(ctx, "2").Return(nil)
	m.adapter.EXPECT().DeleteMakro(ctx, "3").Return(adapter.NewHTTPError(http.StatusNotFound, "Makro not found"))

	require.NoError(t, svc.Delete(ctx, "2"))
	assert.Equal(t, []string{"1"}, recordIDs(svc.cache.Snapshot()))

	err := svc.Delete(ctx, "3")
	require.ErrorIs(t, err, ErrMacroNotFound)
	assert.Equal(t, []string{"1"}, recordIDs(svc.cache.Snapshot()))
	assert.Equal(t, failures+1, testutil.ToFloat64(metrics.RemoteRequests.WithLabelValues(opDelete, metrics.OutcomeError)))
}

// ── Download / DirectLink ────────────────────────────────────────────────────

func TestClientCatalogService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	data := []byte("PK zip bytes")
	m.adapter.EXPECT().DownloadMakro(ctx, "12").Return(data, nil)
	m.saver.EXPECT().Save("makro_12.zip", data).Return("downloads/makro_12.zip", nil)

	path, err := svc.Download(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "downloads/makro_12.zip", path)
	assert.Equal(t, 0, svc.cache.Len())
}

func TestClientCatalogService_Download_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().DownloadMakro(ctx, "12").Return([]byte("x"), nil)
	m.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	_, err := svc.Download(ctx, "12")
	require.ErrorIs(t, err, assert.AnError)
}

func TestClientCatalogService_DirectLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCatalogSvc(t, ctrl)

	assert.Equal(t, "http://localhost:5000/api/makros/42", svc.DirectLink("42"))
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestClientCatalogService_Bootstrap_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, models.PageRequest{Page: 1, PerPage: 20}).Return(envelope(makro(1, "A")), nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(nil)

	src, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BootstrapRemote, src)
	assert.Equal(t, 1, svc.cache.Len())
}

func TestClientCatalogService_Bootstrap_FromSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(models.CatalogEnvelope{}, transportErr())
	m.snapshots.EXPECT().LoadSnapshot(ctx).Return([]models.MacroRecord{{ID: "s1"}, {ID: "s2"}}, time.Now(), nil)

	src, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BootstrapSnapshot, src)
	assert.Equal(t, []string{"s1", "s2"}, recordIDs(svc.cache.Snapshot()))
}

func TestClientCatalogService_Bootstrap_UnreachableUsesBundledDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.fallback = NewBundledFallback(testBaseURL)
	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(models.CatalogEnvelope{}, transportErr())
	m.snapshots.EXPECT().LoadSnapshot(ctx).Return(nil, time.Time{}, store.ErrSnapshotNotFound)

	src, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BootstrapBundled, src)
	assert.NotEmpty(t, svc.cache.Snapshot())
}

func TestClientCatalogService_Bootstrap_AllSourcesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(models.CatalogEnvelope{}, transportErr())
	m.snapshots.EXPECT().LoadSnapshot(ctx).Return(nil, time.Time{}, store.ErrScanningRows)
	m.fallback.EXPECT().Load(ctx).Return(nil, assert.AnError)

	_, err := svc.Bootstrap(ctx)
	require.ErrorIs(t, err, ErrNoFallbackData)
	require.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, 0, svc.cache.Len())
}

func TestClientCatalogService_Bootstrap_NoSnapshotRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	svc.snapshots = nil
	m.adapter.EXPECT().ListMakros(ctx, gomock.Any()).Return(models.CatalogEnvelope{}, adapter.NewHTTPError(http.StatusInternalServerError, "db down"))
	m.fallback.EXPECT().Load(ctx).Return([]models.MacroRecord{{ID: "b1"}}, nil)

	src, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BootstrapBundled, src)
	assert.Equal(t, []string{"b1"}, recordIDs(svc.cache.Snapshot()))
}
