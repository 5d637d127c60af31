package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCNPJLookupFillsCompanyInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/12345678000195", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nome":"Acme Instalacoes LTDA","email":"contato@acme.com.br","municipio":"Sao Paulo","uf":"SP"}`))
	}))
	defer srv.Close()

	client := NewCNPJClient(srv.URL, srv.Client(), zap.NewNop())
	info := client.Lookup(context.Background(), "12.345.678/0001-95")

	require.Equal(t, "Acme Instalacoes LTDA", info.Name)
	require.Equal(t, "Sao Paulo", info.City)
	require.Equal(t, "SP", info.State)
}

func TestCNPJLookupRejectsShortDocumentWithoutCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewCNPJClient(srv.URL, srv.Client(), zap.NewNop())
	info := client.Lookup(context.Background(), "1234")

	require.False(t, called)
	require.Zero(t, info)
}

func TestCNPJLookupSwallowsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewCNPJClient(srv.URL, srv.Client(), zap.NewNop())
	info := client.Lookup(context.Background(), "12345678000195")

	require.Zero(t, info)
}

func TestCEPLookupFillsAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/01310100/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"logradouro":"Avenida Paulista","localidade":"Sao Paulo","uf":"SP","cep":"01310-100"}`))
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL, srv.Client(), zap.NewNop())
	addr := client.Lookup(context.Background(), "01310-100")

	require.Equal(t, "Avenida Paulista", addr.Street)
	require.Equal(t, "Sao Paulo", addr.City)
}

func TestCEPLookupSwallowsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewCEPClient(srv.URL, srv.Client(), zap.NewNop())
	addr := client.Lookup(context.Background(), "01310100")

	require.Zero(t, addr)
}

func TestOnlyDigits(t *testing.T) {
	require.Equal(t, "12345678000195", OnlyDigits("12.345.678/0001-95"))
	require.Equal(t, "", OnlyDigits("abc"))
}
