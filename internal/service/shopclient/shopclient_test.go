package shopclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetOrder(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/admin/api/orders/4520286175301.json", r.URL.Path)
		require.Equal(t, "shop-token", r.Header.Get(accessTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order":{"id":4520286175301,"name":"#1042","order_number":1042,"fulfillment_status":"fulfilled"}}`))
	}))
	defer backend.Close()

	client := NewShopClient(backend.URL, "shop-token", 5*time.Second)

	order, err := client.GetOrder(context.Background(), 4520286175301)
	require.NoError(t, err)
	require.Equal(t, int64(4520286175301), order.ID)
	require.Equal(t, "#1042", order.Name)
	require.Equal(t, "fulfilled", order.FulfillmentStatus)
}

func TestGetOrderNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	client := NewShopClient(backend.URL, "shop-token", 5*time.Second)

	_, err := client.GetOrder(context.Background(), 1)
	require.Error(t, err)
}

func TestGetOrderBadBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer backend.Close()

	client := NewShopClient(backend.URL, "shop-token", 5*time.Second)

	_, err := client.GetOrder(context.Background(), 1)
	require.Error(t, err)
}
