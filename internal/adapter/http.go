// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/utils"
	"github.com/MKhiriev/macro-marketplace/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalizes adapterCfg.HTTPAddress (a missing scheme defaults to http) and
// applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(buildInfo.UserAgent())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]: POST /api/accounts/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AccountDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/api/accounts/register")
	if err != nil {
		return models.AccountDTO{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountDTO{}, err
	}

	var env models.AccountEnvelope
	if err = decode(resp, &env); err != nil {
		return models.AccountDTO{}, err
	}
	return env.Account, nil
}

// Login implements [ServerAdapter]: POST /api/accounts/login. The access token
// from the body is stored for subsequent requests.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AccountEnvelope, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/api/accounts/login")
	if err != nil {
		return models.AccountEnvelope{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountEnvelope{}, err
	}

	var env models.AccountEnvelope
	if err = decode(resp, &env); err != nil {
		return models.AccountEnvelope{}, err
	}
	if env.AccessToken == "" {
		return models.AccountEnvelope{}, fmt.Errorf("%w: login response without access_token", ErrDecodeResponse)
	}

	h.SetToken(env.AccessToken)
	return env, nil
}

// Logout implements [ServerAdapter]: POST /api/accounts/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/accounts/logout")
	if err != nil {
		return transportError("logout", err)
	}
	return mapHTTPError(resp)
}

// GetAccount implements [ServerAdapter]: GET /api/accounts/data.
func (h *httpServerAdapter) GetAccount(ctx context.Context) (models.AccountDTO, error) {
	resp, err := h.authedRequest(ctx).Get("/api/accounts/data")
	if err != nil {
		return models.AccountDTO{}, transportError("get account", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountDTO{}, err
	}

	var env models.AccountEnvelope
	if err = decode(resp, &env); err != nil {
		return models.AccountDTO{}, err
	}
	return env.Account, nil
}

// UpdateAccount implements [ServerAdapter]: PUT /api/accounts/data.
func (h *httpServerAdapter) UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.AccountDTO, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(update).
		Put("/api/accounts/data")
	if err != nil {
		return models.AccountDTO{}, transportError("update account", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountDTO{}, err
	}

	var env models.AccountEnvelope
	if err = decode(resp, &env); err != nil {
		return models.AccountDTO{}, err
	}
	return env.Account, nil
}

// ListMakros implements [ServerAdapter]: GET /api/marketplace.
func (h *httpServerAdapter) ListMakros(ctx context.Context, page models.PageRequest) (models.CatalogEnvelope, error) {
	return h.getCatalog(ctx, "list", "/api/marketplace", pageParams(page))
}

// SearchMakros implements [ServerAdapter]: GET /api/marketplace/search.
func (h *httpServerAdapter) SearchMakros(ctx context.Context, query models.SearchQuery) (models.CatalogEnvelope, error) {
	params := pageParams(query.PageRequest)
	if q := strings.TrimSpace(query.Query); q != "" {
		params["q"] = q
	}
	if query.Category != models.CategoryNone {
		params["usecase"] = string(query.Category)
	}
	if a := strings.TrimSpace(query.Author); a != "" {
		params["author"] = a
	}
	return h.getCatalog(ctx, "search", "/api/marketplace/search", params)
}

// MyMakros implements [ServerAdapter]: GET /api/my-makros.
func (h *httpServerAdapter) MyMakros(ctx context.Context, page models.PageRequest) (models.CatalogEnvelope, error) {
	return h.getCatalog(ctx, "my makros", "/api/my-makros", pageParams(page))
}

// RandomMakros implements [ServerAdapter]: GET /api/marketplace/random.
func (h *httpServerAdapter) RandomMakros(ctx context.Context, count int) (models.RandomEnvelope, error) {
	req := h.authedRequest(ctx)
	if count > 0 {
		req.SetQueryParam("count", strconv.Itoa(count))
	}

	resp, err := req.Get("/api/marketplace/random")
	if err != nil {
		return models.RandomEnvelope{}, transportError("random", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RandomEnvelope{}, err
	}

	var env models.RandomEnvelope
	if err = decode(resp, &env); err != nil {
		return models.RandomEnvelope{}, err
	}
	return env, nil
}

// GetMakro implements [ServerAdapter]: GET /api/makros/{id}.
func (h *httpServerAdapter) GetMakro(ctx context.Context, id string) (models.MakroDTO, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/makros/{id}")
	if err != nil {
		return models.MakroDTO{}, transportError("get makro", err)
	}
	return decodeMakro(resp)
}

// CreateMakro implements [ServerAdapter]: multipart POST /api/makros with the
// fields file, name, desc, usecase and an optional preview.
func (h *httpServerAdapter) CreateMakro(ctx context.Context, macro models.NewMacro) (models.MakroDTO, error) {
	req := h.authedRequest(ctx).
		SetFileReader("file", macro.File.Name, bytes.NewReader(macro.File.Data)).
		SetFormData(map[string]string{
			"name":    macro.Name,
			"desc":    macro.Description,
			"usecase": string(macro.Category),
		})
	if macro.Preview != nil {
		req.SetFileReader("preview", macro.Preview.Name, bytes.NewReader(macro.Preview.Data))
	}

	resp, err := req.Post("/api/makros")
	if err != nil {
		return models.MakroDTO{}, transportError("create makro", err)
	}
	return decodeMakro(resp)
}

// UpdateMakro implements [ServerAdapter]: PUT /api/makros/{id}.
func (h *httpServerAdapter) UpdateMakro(ctx context.Context, id string, patch models.MacroPatch) (models.MakroDTO, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(patch).
		Put("/api/makros/{id}")
	if err != nil {
		return models.MakroDTO{}, transportError("update makro", err)
	}
	return decodeMakro(resp)
}

// DeleteMakro implements [ServerAdapter]: DELETE /api/makros/{id}.
func (h *httpServerAdapter) DeleteMakro(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/makros/{id}")
	if err != nil {
		return transportError("delete makro", err)
	}
	return mapHTTPError(resp)
}

// DownloadMakro implements [ServerAdapter]: GET /api/makros/{id}/download.
func (h *httpServerAdapter) DownloadMakro(ctx context.Context, id string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/makros/{id}/download")
	if err != nil {
		return nil, transportError("download makro", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.DownloadMakro").Str("id", id).Int("size", len(resp.Body())).Msg("package downloaded")
	return resp.Body(), nil
}

func (h *httpServerAdapter) getCatalog(ctx context.Context, op, path string, params map[string]string) (models.CatalogEnvelope, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return models.CatalogEnvelope{}, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogEnvelope{}, err
	}

	var env models.CatalogEnvelope
	if err = decode(resp, &env); err != nil {
		return models.CatalogEnvelope{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.getCatalog").
		Str("op", op).
		Int("page", env.CurrentPage).
		Int("items", len(env.Makros)).
		Msg("catalog page received")
	return env, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func pageParams(page models.PageRequest) map[string]string {
	params := make(map[string]string, 2)
	if page.Page > 0 {
		params["page"] = strconv.Itoa(page.Page)
	}
	if page.PerPage > 0 {
		params["per_page"] = strconv.Itoa(page.PerPage)
	}
	return params
}

func decodeMakro(resp *resty.Response) (models.MakroDTO, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.MakroDTO{}, err
	}

	var env models.MakroEnvelope
	if err := decode(resp, &env); err != nil {
		return models.MakroDTO{}, err
	}
	return env.Makro, nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
