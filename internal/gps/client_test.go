package gps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fuel-dispatch-monitor/internal/config"
	"fuel-dispatch-monitor/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestClient(serverURL string) *Client {
	return NewClient(&config.GPSConfig{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Command: "USER_GET_OBJECTS",
	})
}

func TestFetchVehicles(t *testing.T) {
	body := `[
		{"imei":"356670000000001","name":"3-11111 ET","status":"Moving","lat":"9.0123","lng":"38.7654","speed":"42","dt_tracker":"2026-08-28 11:55:00"},
		{"imei":"356670000000002","name":"3-22222 ET","status":"Stopped","lat":"","lng":"","speed":"0"}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "user", r.URL.Query().Get("api"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "USER_GET_OBJECTS", r.URL.Query().Get("cmd"))
		w.Write([]byte(body))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).FetchVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Vehicles, 2)
	require.Empty(t, result.Skipped)

	lat, lng, ok := result.Vehicles[0].Position()
	require.True(t, ok)
	require.InDelta(t, 9.0123, lat, 1e-9)
	require.InDelta(t, 38.7654, lng, 1e-9)
}

func TestFetchVehiclesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicles(context.Background())
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusForbidden, reqErr.StatusCode)
}

func TestFetchVehiclesShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicles(context.Background())
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestFetchVehiclesSkipsInvalidRecords(t *testing.T) {
	body := `[
		{"imei":"356670000000001","name":"3-11111 ET","lat":"9.0","lng":"38.7"},
		{"imei":"","name":"no imei"},
		{"imei":"356670000000003","name":"bad position","lat":"95.0","lng":"38.7"}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).FetchVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Vehicles, 1)
	require.Len(t, result.Skipped, 2)

	require.Equal(t, 1, result.Skipped[0].Index)
	require.Equal(t, 2, result.Skipped[1].Index)
	require.Equal(t, "356670000000003", result.Skipped[1].IMEI)
	require.Contains(t, result.Skipped[1].Error, "latitude")
}
