package shopclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/iurnickita/orderbridge/internal/model"
)

const (
	orderPathFmt = "/admin/api/orders/%d.json"

	accessTokenHeader = "X-Access-Token"
)

// ShopClient дочитывает полный заказ у витрины,
// когда событие несёт только идентификатор
type ShopClient interface {
	GetOrder(ctx context.Context, orderID int64) (model.ShopOrder, error)
}

type shopClient struct {
	client *resty.Client
}

func NewShopClient(baseURL string, accessToken string, timeout time.Duration) ShopClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader(accessTokenHeader, accessToken).
		SetTimeout(timeout)

	return shopClient{client: client}
}

// JSON ответ витрины: заказ в конверте
type orderEnvelope struct {
	Order model.ShopOrder `json:"order"`
}

func (c shopClient) GetOrder(ctx context.Context, orderID int64) (model.ShopOrder, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf(orderPathFmt, orderID))
	if err != nil {
		return model.ShopOrder{}, fmt.Errorf("shop order request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var envelope orderEnvelope
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return model.ShopOrder{}, fmt.Errorf("shop order decode: %w", err)
		}
		return envelope.Order, nil
	default:
		return model.ShopOrder{}, fmt.Errorf("shop order request status: %d", resp.StatusCode())
	}
}
