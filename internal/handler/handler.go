package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/iurnickita/orderbridge/internal/handler/config"
	"github.com/iurnickita/orderbridge/internal/logger"
	"github.com/iurnickita/orderbridge/internal/model"
	"github.com/iurnickita/orderbridge/internal/service"
	"github.com/iurnickita/orderbridge/internal/signature"
)

func Serve(cfg config.Config, service service.Service, zaplog *zap.Logger) error {
	h := newHandler(cfg, service, zaplog)
	router := h.newRouter()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	return srv.ListenAndServe()
}

type handler struct {
	cfg     config.Config
	service service.Service
	zaplog  *zap.Logger
}

func newHandler(cfg config.Config, service service.Service, zaplog *zap.Logger) *handler {
	return &handler{
		cfg:     cfg,
		service: service,
		zaplog:  zaplog,
	}
}

func (h *handler) newRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/webhook/order", logger.RequestLogMdlw(h.PostOrderWebhook, h.zaplog))
	mux.HandleFunc("POST /api/webhook/order/created", logger.RequestLogMdlw(h.PostOrderCreatedWebhook, h.zaplog))
	mux.HandleFunc("POST /api/webhook/fulfillment", logger.RequestLogMdlw(h.PostFulfillmentWebhook, h.zaplog))
	mux.HandleFunc("GET /api/health", logger.RequestLogMdlw(h.GetHealth, h.zaplog))

	return mux
}

// readSignedBody читает сырое тело и сверяет подпись до разбора JSON.
// Порядок обязателен: подпись считается по исходным байтам
func (h *handler) readSignedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	provided := r.Header.Get(h.cfg.SignatureHeader)
	if !signature.Verify(h.cfg.WebhookSecret, body, provided) {
		h.zaplog.Warn("webhook signature rejected",
			zap.String("path", r.URL.Path))
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *handler) PostOrderWebhook(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readSignedBody(w, r)
	if !ok {
		return
	}

	var order model.ShopOrder
	if err := json.Unmarshal(body, &order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.HandleOrder(r.Context(), order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeResult(w, string(result))
}

func (h *handler) PostFulfillmentWebhook(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readSignedBody(w, r)
	if !ok {
		return
	}

	var event model.FulfillmentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.HandleFulfillment(r.Context(), event)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeResult(w, string(result))
}

// Создание заказа только подтверждаем - отправку запускает изменение статуса
func (h *handler) PostOrderCreatedWebhook(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.readSignedBody(w, r); !ok {
		return
	}

	h.writeResult(w, "ignored")
}

func (h *handler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type webhookJSONResponse struct {
	Result string `json:"result"`
}

func (h *handler) writeResult(w http.ResponseWriter, result string) {
	responseJSON, err := json.Marshal(webhookJSONResponse{Result: result})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(responseJSON)
}
