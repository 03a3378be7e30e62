package warehouseclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/iurnickita/orderbridge/internal/model"
)

const submitPath = "/api/orders"

// SubmitError - отказ склада: код ответа и тело.
// Повторная отправка здесь не делается, решение за вызывающим
type SubmitError struct {
	StatusCode int
	Body       string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("warehouse submit status %d: %s", e.StatusCode, e.Body)
}

type WarehouseClient interface {
	Submit(ctx context.Context, order model.WarehouseOrder) (string, error)
}

type warehouseClient struct {
	client *resty.Client
}

func NewWarehouseClient(baseURL string, username string, password string, timeout time.Duration) WarehouseClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(username, password).
		SetTimeout(timeout)

	return warehouseClient{client: client}
}

func (c warehouseClient) Submit(ctx context.Context, order model.WarehouseOrder) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		Post(submitPath)
	if err != nil {
		// сюда попадает и таймаут - наружу, не глотаем
		return "", fmt.Errorf("warehouse submit: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return "", &SubmitError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	return string(resp.Body()), nil
}
