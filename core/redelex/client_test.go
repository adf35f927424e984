package redelex_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redelex-panel/core/redelex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *redelex.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return redelex.NewClient(redelex.Config{BaseURL: srv.URL + "/", APIKey: "secret", TimeoutSeconds: 2})
}

func TestGetProceso(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/procesos/42", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"procesoId":        42,
			"numeroRadicacion": "11001400300120230012300",
			"demandado":        "Juan Pérez",
			"actuaciones": []map[string]string{
				{"fecha": "2024-01-10", "actuacion": "Auto admisorio"},
			},
		})
	})

	p, err := client.GetProceso(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, "Juan Pérez", p.Demandado)
	require.Len(t, p.Actuaciones, 1)
	assert.Equal(t, "Auto admisorio", p.Actuaciones[0].Descripcion)
}

func TestGetProceso_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"Not found", http.StatusNotFound, redelex.ErrNotFound},
		{"Unauthorized", http.StatusUnauthorized, redelex.ErrUnauthorized},
		{"Forbidden", http.StatusForbidden, redelex.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			p, err := client.GetProceso(context.Background(), 1)
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, p)
		})
	}

	t.Run("Server error", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := client.GetProceso(context.Background(), 1)
		assert.EqualError(t, err, "redelex returned status 502")
	})

	t.Run("Bad body", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})
		_, err := client.GetProceso(context.Background(), 1)
		assert.ErrorContains(t, err, "failed to decode")
	})
}

func TestProcesosPorIdentificacion(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/procesos", r.URL.Path)
		assert.Equal(t, "900123456", r.URL.Query().Get("identificacion"))
		w.Write([]byte(`[{"procesoId":1},{"procesoId":2}]`))
	})

	list, err := client.ProcesosPorIdentificacion(context.Background(), "900123456")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProcesosPorIdentificacion_NullBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	list, err := client.ProcesosPorIdentificacion(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClient_Timeout(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(3 * time.Second):
		case <-r.Context().Done():
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.GetProceso(ctx, 1)
	assert.ErrorContains(t, err, "redelex request failed")
}
