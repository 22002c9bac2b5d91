package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
)

const reportPayload = `{
	"success": true,
	"data": {
		"metadata": {"date": "01/04/2025", "unit": "Filial Centro", "city": "Fortaleza", "period": "01/03/2025 a 31/03/2025", "preparedBy": "Sistema"},
		"sales": [
			{"client": "Mercearia Central", "city": "Fortaleza", "product": "P13", "date": "2025-03-02", "quantity": 2, "unitPrice": 110.10, "total": 220.20, "paymentMethod": "Pix", "paymentStatus": "Pago", "expenses": 10.00},
			{"client": "Padaria do Zé", "city": "Caucaia", "product": "P45", "date": "2025-03-05", "quantity": 1, "unitPrice": 390, "total": 390}
		],
		"productSummary": [{"product": "P13", "quantity": 2, "averagePrice": 110.10, "total": 220.20}],
		"paymentBreakdown": [
			{"method": "Pix", "quantity": 1, "amount": 220.20, "percentage": 36.1},
			{"method": "", "quantity": 1, "amount": 390, "percentage": 63.9}
		],
		"receivements": [
			{"code": "R-001", "client": "Mercearia Central", "method": "Pix", "document": "NF 1201", "amount": 220.20, "received": 100},
			{"code": "R-002", "client": "Padaria do Zé", "method": "Boleto", "document": "NF 1188", "amount": 150.55}
		],
		"receivementSummary": [{"method": "Pix", "quantity": 1, "amount": 220.20}],
		"expenses": [{"provider": "Energia CE", "dueDate": "2025-03-20", "document": "FAT 309", "amount": 450.99}],
		"generalDetail": [{"method": "Pix", "quantity": 1, "amount": 220.20, "percentage": 100}],
		"liquidStock": [{"product": "P13", "location": "Depósito 1", "quantity": 40}],
		"containerStock": [{"product": "P13", "location": "Depósito 1", "empty": 12, "maintenance": 3, "total": 15}]
	}
}`

func TestFetchReportMapsAggregate(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reportPayload))
	}))
	defer server.Close()

	repo := NewReportRepository(server.URL, "segredo")
	agg, err := repo.FetchReport(context.Background(), repository.ReportRequest{
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
		LocationID: "42",
	})
	require.NoError(t, err)

	assert.Equal(t, "/reports/detailed", gotPath)
	assert.Contains(t, gotQuery, "startDate=2025-03-01")
	assert.Contains(t, gotQuery, "endDate=2025-03-31")
	assert.Contains(t, gotQuery, "locationId=42")
	assert.Equal(t, "Bearer segredo", gotAuth)

	assert.Equal(t, "Filial Centro", agg.Metadata.Unit)

	require.Len(t, agg.Sales, 2)
	// Os dígitos do fio são preservados na conversão para decimal.
	assert.Equal(t, "110.1", agg.Sales[0].UnitPrice.String())
	assert.Equal(t, "220.2", agg.Sales[0].Total.String())
	assert.Equal(t, "10", agg.Sales[0].Expenses.String())
	assert.Equal(t, "Pix", agg.Sales[0].PaymentMethod)

	// Venda sem método nem despesas: campos ficam com os zeros naturais.
	assert.Equal(t, "", agg.Sales[1].PaymentMethod)
	assert.True(t, agg.Sales[1].Expenses.IsZero())

	// Método vazio no detalhamento vira "Outros" na borda.
	require.Len(t, agg.PaymentBreakdown, 2)
	assert.Equal(t, "Outros", agg.PaymentBreakdown[1].Method)

	require.Len(t, agg.Receivements, 2)
	assert.Equal(t, "100", agg.Receivements[0].Received.String())
	// Recebido ausente assume o valor integral.
	assert.Equal(t, "150.55", agg.Receivements[1].Received.String())

	require.Len(t, agg.Expenses, 1)
	assert.Equal(t, "450.99", agg.Expenses[0].Amount.String())

	require.Len(t, agg.LiquidStock, 1)
	require.Len(t, agg.ContainerStock, 1)
	assert.Equal(t, 15, agg.ContainerStock[0].Total)
}

func TestFetchReportBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "timeout"}`))
	}))
	defer server.Close()

	repo := NewReportRepository(server.URL, "")
	_, err := repo.FetchReport(context.Background(), repository.ReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestFetchReportHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewReportRepository(server.URL, "")
	_, err := repo.FetchReport(context.Background(), repository.ReportRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestListClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": [{"id": "1", "name": "Mercearia Central"}, {"id": "2", "name": "Padaria do Zé"}]}`))
	}))
	defer server.Close()

	repo := NewReportRepository(server.URL, "")
	clients, err := repo.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Mercearia Central", clients[0].Name)
	assert.Equal(t, "2", clients[1].ID)
}

func TestConfigureOverridesOnlyNonEmpty(t *testing.T) {
	repo := NewReportRepository("http://original", "token-original")

	repo.Configure("", "")
	assert.Equal(t, "http://original", repo.baseURL)
	assert.Equal(t, "token-original", repo.token)

	repo.Configure("http://novo", "token-novo")
	assert.Equal(t, "http://novo", repo.baseURL)
	assert.Equal(t, "token-novo", repo.token)
}
