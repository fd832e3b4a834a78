// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const (
	apiPrefix       = "/api/v1"
	clientKeyHeader = "X-Client-Key"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient

	mu        sync.RWMutex
	clientKey *crypto.Secret

	logger *logger.Logger
}

// NewHTTPLedgerAdapter builds a resty based [LedgerAdapter]. The bearer
// token of cfg is attached to every request.
func NewHTTPLedgerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (LedgerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearerToken(cfg.Token)

	return &httpLedgerAdapter{client: client, logger: logger}, nil
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

func (h *httpLedgerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get(apiPrefix + "/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpLedgerAdapter) Salt(ctx context.Context) (models.SaltResponse, error) {
	var salt models.SaltResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&salt).
		Get(apiPrefix + "/encryption/salt")
	if err != nil {
		return models.SaltResponse{}, fmt.Errorf("salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaltResponse{}, err
	}

	return salt, nil
}

// Unlock implements [LedgerAdapter]. A previous client key is replaced only
// when the new one is accepted.
func (h *httpLedgerAdapter) Unlock(ctx context.Context, pin string) error {
	salt, err := h.Salt(ctx)
	if err != nil {
		return err
	}

	saltBytes, err := hex.DecodeString(salt.Salt)
	if err != nil {
		return fmt.Errorf("server returned malformed salt: %w", err)
	}

	clientKey := crypto.DeriveClientKey(pin, saltBytes, salt.KDFIterations, crypto.ClientKeyLength)
	if err = h.validateKey(ctx, clientKey); err != nil {
		clear(clientKey)
		return err
	}

	h.setClientKey(crypto.NewSecret(clientKey))
	h.logger.Debug().Msg("ledger unlocked")
	return nil
}

func (h *httpLedgerAdapter) validateKey(ctx context.Context, clientKey []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateKeyRequest{ClientKey: hex.EncodeToString(clientKey)}).
		Post(apiPrefix + "/encryption/validate-key")
	if err != nil {
		return fmt.Errorf("validate key request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpLedgerAdapter) Lock() {
	h.setClientKey(nil)
}

func (h *httpLedgerAdapter) IsUnlocked() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clientKey.IsAlive()
}

// ChangePin implements [LedgerAdapter]. The new salt is generated locally and
// the server's current iteration count is kept.
func (h *httpLedgerAdapter) ChangePin(ctx context.Context, newPin string) error {
	oldKey, err := h.clientKeyHex()
	if err != nil {
		return err
	}

	current, err := h.Salt(ctx)
	if err != nil {
		return err
	}

	newSalt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	newKey := crypto.DeriveClientKey(newPin, newSalt, current.KDFIterations, crypto.ClientKeyLength)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChangePinRequest{
			OldClientKey:  oldKey,
			NewClientKey:  hex.EncodeToString(newKey),
			NewSalt:       hex.EncodeToString(newSalt),
			KDFIterations: current.KDFIterations,
		}).
		Post(apiPrefix + "/encryption/change-pin")
	if err != nil {
		clear(newKey)
		return fmt.Errorf("change pin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		clear(newKey)
		return err
	}

	h.setClientKey(crypto.NewSecret(newKey))
	return nil
}

func (h *httpLedgerAdapter) CurrentPeriod(ctx context.Context, date time.Time) (models.PeriodResponse, error) {
	var period models.PeriodResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&period)
	if !date.IsZero() {
		req.SetQueryParam("date", date.Format(time.DateOnly))
	}

	resp, err := req.Get(apiPrefix + "/periods/current")
	if err != nil {
		return models.PeriodResponse{}, fmt.Errorf("current period request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PeriodResponse{}, err
	}

	return period, nil
}

func (h *httpLedgerAdapter) Consumption(ctx context.Context, budgetID string, includeIncome bool) (models.ConsumptionResponse, error) {
	clientKey, err := h.clientKeyHex()
	if err != nil {
		return models.ConsumptionResponse{}, err
	}

	var consumption models.ConsumptionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(clientKeyHeader, clientKey).
		SetPathParam("budgetID", budgetID).
		SetQueryParam("includeIncome", strconv.FormatBool(includeIncome)).
		SetResult(&consumption).
		Get(apiPrefix + "/budgets/{budgetID}/consumption")
	if err != nil {
		return models.ConsumptionResponse{}, fmt.Errorf("consumption request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConsumptionResponse{}, err
	}

	return consumption, nil
}

func (h *httpLedgerAdapter) Summary(ctx context.Context, budgetID string) (models.SummaryResponse, error) {
	clientKey, err := h.clientKeyHex()
	if err != nil {
		return models.SummaryResponse{}, err
	}

	var summary models.SummaryResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(clientKeyHeader, clientKey).
		SetPathParam("budgetID", budgetID).
		SetResult(&summary).
		Get(apiPrefix + "/budgets/{budgetID}/summary")
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SummaryResponse{}, err
	}

	return summary, nil
}

func (h *httpLedgerAdapter) CreateTransaction(ctx context.Context, budgetID string, req models.CreateTransactionRequest) (models.Transaction, error) {
	clientKey, err := h.clientKeyHex()
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(clientKeyHeader, clientKey).
		SetHeader("Content-Type", "application/json").
		SetPathParam("budgetID", budgetID).
		SetBody(req).
		SetResult(&transaction).
		Post(apiPrefix + "/budgets/{budgetID}/transactions")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

func (h *httpLedgerAdapter) setClientKey(secret *crypto.Secret) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clientKey.Destroy()
	h.clientKey = secret
}

func (h *httpLedgerAdapter) clientKeyHex() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.clientKey.IsAlive() {
		return "", ErrLocked
	}
	return hex.EncodeToString(h.clientKey.Bytes()), nil
}
