package warehouseclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iurnickita/orderbridge/internal/model"
)

func TestSubmit(t *testing.T) {
	var received model.WarehouseOrder

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, submitPath, r.URL.Path)

		// basic auth
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "wms-user", username)
		require.Equal(t, "wms-pass", password)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"W-1"}`))
	}))
	defer backend.Close()

	client := NewWarehouseClient(backend.URL, "wms-user", "wms-pass", 5*time.Second)

	body, err := client.Submit(context.Background(), model.WarehouseOrder{
		Reference:   "4520286175301",
		OrderNumber: "WEB1042",
	})
	require.NoError(t, err)
	require.Equal(t, `{"id":"W-1"}`, body)
	require.Equal(t, "WEB1042", received.OrderNumber)
}

func TestSubmitRejected(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("unknown warehouse"))
	}))
	defer backend.Close()

	client := NewWarehouseClient(backend.URL, "wms-user", "wms-pass", 5*time.Second)

	_, err := client.Submit(context.Background(), model.WarehouseOrder{})
	require.Error(t, err)

	var submitErr *SubmitError
	require.True(t, errors.As(err, &submitErr))
	require.Equal(t, http.StatusUnprocessableEntity, submitErr.StatusCode)
	require.Equal(t, "unknown warehouse", submitErr.Body)
}

func TestSubmitTimeout(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	client := NewWarehouseClient(backend.URL, "wms-user", "wms-pass", 20*time.Millisecond)

	// таймаут всплывает ошибкой, а не тихим успехом
	_, err := client.Submit(context.Background(), model.WarehouseOrder{})
	require.Error(t, err)
}
