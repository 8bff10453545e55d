package stationapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-ChargingService/internal/domain"
)

// BaseClient общий HTTP клиент REST бэкенда станций
type BaseClient struct {
	baseURL string
	client  HTTPDoer
	loc     *time.Location
	log     Logger
}

// NewBaseClient создает клиент с базовым URL
// loc - часовой пояс для временных меток без смещения
func NewBaseClient(baseURL string, client HTTPDoer, loc *time.Location, log Logger) *BaseClient {
	if loc == nil {
		loc = time.UTC
	}
	return &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		loc:     loc,
		log:     log,
	}
}

// NewDefaultHTTPClient возвращает *http.Client с таймаутом
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getList выполняет GET запрос и декодирует список записей
// Поддерживает как голый массив, так и постраничный ответ {"results": [...]}
func (c *BaseClient) getList(ctx context.Context, path string, stationID int64, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return fmt.Errorf("%w: id=%d", domain.ErrStationNotFound, stationID)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	payload := strings.TrimSpace(string(body))
	if strings.HasPrefix(payload, "{") {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("%w: failed to decode page: %v", ErrInvalidResponse, err)
		}
		if page.Results == nil {
			return fmt.Errorf("%w: object response without results", ErrInvalidResponse)
		}
		body = page.Results
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
