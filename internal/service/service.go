package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iurnickita/orderbridge/internal/model"
	"github.com/iurnickita/orderbridge/internal/registry"
	"github.com/iurnickita/orderbridge/internal/service/config"
	"github.com/iurnickita/orderbridge/internal/service/shopclient"
	"github.com/iurnickita/orderbridge/internal/service/warehouseclient"
	"github.com/iurnickita/orderbridge/internal/transform"
)

// Результат обработки события. Все три исхода штатные
type Result string

const (
	ResultNotQualifying Result = "no action"
	ResultAlreadySent   Result = "already sent"
	ResultSent          Result = "sent"
)

var ErrUpstreamFetch = errors.New("upstream order fetch failed")

type Service interface {
	HandleOrder(ctx context.Context, order model.ShopOrder) (Result, error)
	HandleFulfillment(ctx context.Context, event model.FulfillmentEvent) (Result, error)
}

type service struct {
	cfg         config.Config
	registry    registry.Registry
	transformer *transform.Transformer
	warehouse   warehouseclient.WarehouseClient
	shop        shopclient.ShopClient
	zaplog      *zap.Logger
}

func NewService(cfg config.Config, registry registry.Registry, transformer *transform.Transformer,
	warehouse warehouseclient.WarehouseClient, shop shopclient.ShopClient, zaplog *zap.Logger) Service {
	return &service{
		cfg:         cfg,
		registry:    registry,
		transformer: transformer,
		warehouse:   warehouse,
		shop:        shop,
		zaplog:      zaplog,
	}
}

func (s *service) HandleOrder(ctx context.Context, order model.ShopOrder) (Result, error) {
	if !s.qualifies(order) {
		return ResultNotQualifying, nil
	}
	return s.push(ctx, order)
}

func (s *service) HandleFulfillment(ctx context.Context, event model.FulfillmentEvent) (Result, error) {
	if !s.qualifyingStatus(event.Status) {
		return ResultNotQualifying, nil
	}

	// событие не несёт полного заказа - дочитываем его у витрины.
	// До успешного дочитывания заказ в реестре не помечается
	order, err := s.shop.GetOrder(ctx, event.OrderID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	return s.push(ctx, order)
}

// push отправляет заказ на склад не более одного раза.
// Момент пометки в реестре зависит от MarkBeforeSubmit
func (s *service) push(ctx context.Context, order model.ShopOrder) (Result, error) {
	orderID := strconv.FormatInt(order.ID, 10)

	if s.cfg.MarkBeforeSubmit {
		added, err := s.registry.Add(ctx, orderID)
		if err != nil {
			return "", err
		}
		if !added {
			return ResultAlreadySent, nil
		}
	} else {
		sent, err := s.registry.Has(ctx, orderID)
		if err != nil {
			return "", err
		}
		if sent {
			return ResultAlreadySent, nil
		}
	}

	doc := s.transformer.Transform(order)

	body, err := s.warehouse.Submit(ctx, doc)
	if err != nil {
		s.zaplog.Error("warehouse submit failed",
			zap.String("order", orderID),
			zap.Error(err))
		return "", err
	}

	if !s.cfg.MarkBeforeSubmit {
		// склад заказ уже принял - отказ реестра только логируем,
		// иначе витрина повторит доставленное событие
		if _, err := s.registry.Add(ctx, orderID); err != nil {
			s.zaplog.Warn("sent order registry add failed",
				zap.String("order", orderID),
				zap.Error(err))
		}
	}

	s.zaplog.Info("order pushed to warehouse",
		zap.String("order", orderID),
		zap.String("order_number", doc.OrderNumber),
		zap.String("response", body))

	return ResultSent, nil
}

func (s *service) qualifies(order model.ShopOrder) bool {
	switch s.cfg.GateMode {
	case config.GateModeFulfillments:
		for _, fulfillment := range order.Fulfillments {
			if s.qualifyingStatus(fulfillment.Status) {
				return true
			}
		}
		return false
	default:
		return s.qualifyingStatus(order.FulfillmentStatus)
	}
}

// Сверка статуса со списком значений из конфигурации
func (s *service) qualifyingStatus(status string) bool {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return false
	}

	for _, qualifying := range s.cfg.QualifyingStatuses {
		if status == strings.ToLower(strings.TrimSpace(qualifying)) {
			return true
		}
	}
	return false
}
