// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
	"github.com/MKhiriev/macro-marketplace/internal/archive"
	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/metrics"
	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/models"
)

const (
	defaultPerPage     = 20
	maxPerPage         = 100
	defaultRandomCount = 10
	maxRandomCount     = 50

	defaultDetailCacheSize = 128
	defaultDetailCacheTTL  = time.Minute
)

// Operation labels of the remote request metric.
const (
	opList     = "list"
	opSearch   = "search"
	opMyMakros = "my_makros"
	opRandom   = "random"
	opGet      = "get"
	opCreate   = "create"
	opUpdate   = "update"
	opDelete   = "delete"
	opDownload = "download"
)

type clientCatalogService struct {
	adapter   adapter.ServerAdapter
	cache     *store.CatalogCache
	snapshots store.SnapshotRepository
	fallback  FallbackLoader
	saver     DownloadSaver
	details   *expirable.LRU[string, models.MacroRecord]
	norm      normalizer
	perPage   int
	logger    *logger.Logger

	// seq numbers list requests at issue; only the latest may publish.
	seq       atomic.Uint64
	publishMu sync.Mutex

	lastMu sync.Mutex
	last   func(ctx context.Context) error
}

// NewClientCatalogService wires the catalog service to the backend adapter
// and to the catalog cache and snapshot repository of storages.
func NewClientCatalogService(
	serverAdapter adapter.ServerAdapter,
	storages *store.ClientStorages,
	fallback FallbackLoader,
	saver DownloadSaver,
	cfg config.ClientCatalog,
	logger *logger.Logger,
) ClientCatalogService {
	size := cfg.DetailCacheSize
	if size <= 0 {
		size = defaultDetailCacheSize
	}
	ttl := cfg.DetailCacheTTL
	if ttl <= 0 {
		ttl = defaultDetailCacheTTL
	}

	return &clientCatalogService{
		adapter:   serverAdapter,
		cache:     storages.Catalog,
		snapshots: storages.Snapshots,
		fallback:  fallback,
		saver:     saver,
		details:   expirable.NewLRU[string, models.MacroRecord](size, nil, ttl),
		norm:      newNormalizer(serverAdapter.BaseURL()),
		perPage:   clampPerPage(cfg.PerPage, defaultPerPage),
		logger:    logger,
	}
}

func (s *clientCatalogService) Bootstrap(ctx context.Context) (models.BootstrapSource, error) {
	_, err := s.FetchPage(ctx, 1, 0)
	if err == nil || errors.Is(err, ErrStaleResult) {
		return models.BootstrapRemote, nil
	}

	s.logger.Warn().Err(err).Str("func", "clientCatalogService.Bootstrap").Msg("backend unavailable, loading fallback catalog")
	ticket := s.seq.Load()

	if s.snapshots != nil {
		records, savedAt, snapErr := s.snapshots.LoadSnapshot(ctx)
		if snapErr == nil {
			s.publishIfCurrent(ticket, records)
			s.logger.Info().
				Str("func", "clientCatalogService.Bootstrap").
				Time("saved_at", savedAt).
				Int("records", len(records)).
				Msg("catalog restored from local snapshot")
			return models.BootstrapSnapshot, nil
		}
		if !errors.Is(snapErr, store.ErrSnapshotNotFound) {
			s.logger.Err(snapErr).Str("func", "clientCatalogService.Bootstrap").Msg("failed to load local snapshot")
		}
	}

	records, fbErr := s.fallback.Load(ctx)
	if fbErr != nil {
		s.logger.Err(fbErr).Str("func", "clientCatalogService.Bootstrap").Msg("failed to load bundled catalog")
		return "", fmt.Errorf("%w: %w", ErrNoFallbackData, errors.Join(err, fbErr))
	}
	s.publishIfCurrent(ticket, records)
	s.logger.Info().Str("func", "clientCatalogService.Bootstrap").Int("records", len(records)).Msg("catalog loaded from bundled dataset")
	return models.BootstrapBundled, nil
}

func (s *clientCatalogService) FetchPage(ctx context.Context, page, perPage int) (models.CatalogPage, error) {
	req := models.PageRequest{Page: max(page, 1), PerPage: clampPerPage(perPage, s.perPage)}
	s.remember(func(ctx context.Context) error {
		_, err := s.FetchPage(ctx, req.Page, req.PerPage)
		return err
	})

	result, err := s.fetchList(ctx, opList, func(ctx context.Context) (models.CatalogEnvelope, error) {
		return s.adapter.ListMakros(ctx, req)
	})
	if err != nil {
		return models.CatalogPage{}, err
	}

	if s.snapshots != nil {
		if err = s.snapshots.SaveSnapshot(ctx, result.Records); err != nil {
			s.logger.Warn().Err(err).Str("func", "clientCatalogService.FetchPage").Msg("failed to save catalog snapshot")
		}
	}
	return result, nil
}

func (s *clientCatalogService) Search(ctx context.Context, query models.SearchQuery) (models.CatalogPage, error) {
	query.Query = strings.TrimSpace(query.Query)
	query.Author = strings.TrimSpace(query.Author)
	if query.Category != models.CategoryNone {
		category, ok := models.ParseCategory(string(query.Category))
		if !ok {
			return models.CatalogPage{}, ErrInvalidCategory
		}
		query.Category = category
	}
	query.Page = max(query.Page, 1)
	query.PerPage = clampPerPage(query.PerPage, s.perPage)

	s.remember(func(ctx context.Context) error {
		_, err := s.Search(ctx, query)
		return err
	})

	return s.fetchList(ctx, opSearch, func(ctx context.Context) (models.CatalogEnvelope, error) {
		return s.adapter.SearchMakros(ctx, query)
	})
}

func (s *clientCatalogService) MyMacros(ctx context.Context, page, perPage int) (models.CatalogPage, error) {
	req := models.PageRequest{Page: max(page, 1), PerPage: clampPerPage(perPage, s.perPage)}
	s.remember(func(ctx context.Context) error {
		_, err := s.MyMacros(ctx, req.Page, req.PerPage)
		return err
	})

	return s.fetchList(ctx, opMyMakros, func(ctx context.Context) (models.CatalogEnvelope, error) {
		return s.adapter.MyMakros(ctx, req)
	})
}

func (s *clientCatalogService) Random(ctx context.Context, count int) ([]models.MacroRecord, error) {
	if count <= 0 {
		count = defaultRandomCount
	}
	count = min(count, maxRandomCount)

	ticket := s.seq.Add(1)
	env, err := s.adapter.RandomMakros(ctx, count)
	if err != nil {
		metrics.ObserveRemote(opRandom, err, false)
		s.logger.Err(err).Str("func", "clientCatalogService.Random").Int("count", count).Msg("failed to fetch random macros")
		return nil, mapAdapterError(err)
	}

	records := s.norm.records(env.Makros)
	if !s.publishIfCurrent(ticket, records) {
		metrics.ObserveRemote(opRandom, nil, true)
		return nil, ErrStaleResult
	}
	metrics.ObserveRemote(opRandom, nil, false)
	return records, nil
}

func (s *clientCatalogService) Refresh(ctx context.Context) error {
	s.lastMu.Lock()
	last := s.last
	s.lastMu.Unlock()

	var err error
	if last == nil {
		_, err = s.FetchPage(ctx, 1, 0)
	} else {
		err = last(ctx)
	}
	if errors.Is(err, ErrStaleResult) {
		return nil
	}
	return err
}

func (s *clientCatalogService) FetchByID(ctx context.Context, id string) (models.MacroRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.MacroRecord{}, ErrEmptyMacroID
	}

	if rec, ok := s.details.Get(id); ok {
		metrics.DetailCacheHits.Inc()
		return rec, nil
	}
	metrics.DetailCacheMisses.Inc()

	dto, err := s.adapter.GetMakro(ctx, id)
	metrics.ObserveRemote(opGet, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.FetchByID").Str("id", id).Msg("failed to fetch macro")
		return models.MacroRecord{}, mapAdapterError(err)
	}

	rec := s.norm.record(dto)
	s.details.Add(id, rec)
	return rec, nil
}

func (s *clientCatalogService) Create(ctx context.Context, macro models.NewMacro) (models.MacroRecord, error) {
	macro, err := validateNewMacro(macro)
	if err != nil {
		return models.MacroRecord{}, err
	}

	dto, err := s.adapter.CreateMakro(ctx, macro)
	metrics.ObserveRemote(opCreate, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Create").Str("name", macro.Name).Msg("failed to create macro")
		return models.MacroRecord{}, mapAdapterError(err)
	}

	rec := s.norm.record(dto)
	if dto.Filename == "" {
		rec.Filename = macro.File.Name
	}
	s.cache.Prepend(rec)
	s.details.Add(rec.ID, rec)

	s.logger.Debug().Str("func", "clientCatalogService.Create").Str("id", rec.ID).Msg("macro created")
	return rec, nil
}

func (s *clientCatalogService) Update(ctx context.Context, id string, patch models.MacroPatch) (models.MacroRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.MacroRecord{}, ErrEmptyMacroID
	}
	patch, err := validatePatch(patch)
	if err != nil {
		return models.MacroRecord{}, err
	}

	dto, err := s.adapter.UpdateMakro(ctx, id, patch)
	metrics.ObserveRemote(opUpdate, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Update").Str("id", id).Msg("failed to update macro")
		return models.MacroRecord{}, mapAdapterError(err)
	}

	rec := s.norm.record(dto)
	s.details.Remove(id)
	s.cache.Replace(id, rec)
	return rec, nil
}

func (s *clientCatalogService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyMacroID
	}

	err := s.adapter.DeleteMakro(ctx, id)
	metrics.ObserveRemote(opDelete, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Delete").Str("id", id).Msg("failed to delete macro")
		return mapAdapterError(err)
	}

	s.details.Remove(id)
	s.cache.Remove(id)
	return nil
}

func (s *clientCatalogService) Download(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyMacroID
	}

	data, err := s.adapter.DownloadMakro(ctx, id)
	metrics.ObserveRemote(opDownload, err, false)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Download").Str("id", id).Msg("failed to download macro")
		return "", mapAdapterError(err)
	}

	path, err := s.saver.Save(downloadFilename(id), data)
	if err != nil {
		s.logger.Err(err).Str("func", "clientCatalogService.Download").Str("id", id).Msg("failed to save package")
		return "", fmt.Errorf("save package: %w", err)
	}
	return path, nil
}

func (s *clientCatalogService) DirectLink(id string) string {
	return s.adapter.BaseURL() + "/api/makros/" + url.PathEscape(id)
}

// fetchList issues a list request and publishes its records unless a newer
// list request was issued meanwhile.
func (s *clientCatalogService) fetchList(
	ctx context.Context,
	op string,
	call func(context.Context) (models.CatalogEnvelope, error),
) (models.CatalogPage, error) {
	ticket := s.seq.Add(1)

	env, err := call(ctx)
	if err != nil {
		metrics.ObserveRemote(op, err, false)
		s.logger.Err(err).Str("func", "clientCatalogService.fetchList").Str("op", op).Msg("catalog request failed")
		return models.CatalogPage{}, mapAdapterError(err)
	}

	result := s.norm.page(env)
	if !s.publishIfCurrent(ticket, result.Records) {
		metrics.ObserveRemote(op, nil, true)
		s.logger.Debug().Str("func", "clientCatalogService.fetchList").Str("op", op).Uint64("ticket", ticket).Msg("stale catalog response dropped")
		return models.CatalogPage{}, ErrStaleResult
	}
	metrics.ObserveRemote(op, nil, false)
	return result, nil
}

func (s *clientCatalogService) publishIfCurrent(ticket uint64, records []models.MacroRecord) bool {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	if s.seq.Load() != ticket {
		return false
	}
	s.cache.ReplaceAll(records)
	return true
}

func (s *clientCatalogService) remember(fn func(context.Context) error) {
	s.lastMu.Lock()
	s.last = fn
	s.lastMu.Unlock()
}

func validateNewMacro(macro models.NewMacro) (models.NewMacro, error) {
	macro.Name = strings.TrimSpace(macro.Name)
	if macro.Name == "" {
		return macro, ErrEmptyMacroName
	}
	if len(macro.File.Data) == 0 {
		return macro, ErrNoPackageFile
	}
	if !archive.IsArchive(macro.File.Name, macro.File.Data) {
		return macro, ErrNotArchive
	}

	category, ok := models.ParseCategory(string(macro.Category))
	if !ok {
		return macro, ErrInvalidCategory
	}
	macro.Category = category

	if macro.Preview != nil && !isMedia(macro.Preview.Name, macro.Preview.Data) {
		return macro, ErrInvalidPreview
	}
	return macro, nil
}

func validatePatch(patch models.MacroPatch) (models.MacroPatch, error) {
	if patch.IsEmpty() {
		return patch, ErrEmptyPatch
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return patch, ErrEmptyMacroName
		}
		patch.Name = &name
	}
	if patch.Category != nil {
		category, ok := models.ParseCategory(string(*patch.Category))
		if !ok {
			return patch, ErrInvalidCategory
		}
		patch.Category = &category
	}
	return patch, nil
}

func isMedia(name string, data []byte) bool {
	if len(data) == 0 {
		return false
	}
	mime := archive.DetectMIME(name, data)
	return strings.HasPrefix(mime, "image/") || strings.HasPrefix(mime, "video/")
}

func clampPerPage(perPage, fallback int) int {
	if perPage <= 0 {
		perPage = fallback
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return min(perPage, maxPerPage)
}

func downloadFilename(id string) string {
	return "makro_" + id + ".zip"
}
