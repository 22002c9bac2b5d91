// Package api implementa o ReportRepository contra a API REST do backend do
// distribuidor. Os DTOs de transporte são frouxos (campos opcionais, números
// como json.Number) e mapeados exaustivamente para as entidades na borda.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
)

const defaultTimeout = 30 * time.Second

// ReportRepositoryImpl implementa o ReportRepository.
type ReportRepositoryImpl struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewReportRepository cria uma nova implementação do ReportRepository.
func NewReportRepository(baseURL, token string) *ReportRepositoryImpl {
	return &ReportRepositoryImpl{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Configure redefine o endpoint e o token, tipicamente a partir do arquivo
// de configuração carregado depois da construção.
func (r *ReportRepositoryImpl) Configure(baseURL, token string) {
	if baseURL != "" {
		r.baseURL = baseURL
	}
	if token != "" {
		r.token = token
	}
}

// envelope é o envelope padrão das respostas do backend.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type reportAggregateDTO struct {
	Metadata           metadataDTO             `json:"metadata"`
	Sales              []saleDTO               `json:"sales"`
	ProductSummary     []productSummaryDTO     `json:"productSummary"`
	PaymentBreakdown   []paymentBreakdownDTO   `json:"paymentBreakdown"`
	Receivements       []receivementDTO        `json:"receivements"`
	ReceivementSummary []receivementSummaryDTO `json:"receivementSummary"`
	Expenses           []expenseDTO            `json:"expenses"`
	GeneralDetail      []paymentBreakdownDTO   `json:"generalDetail"`
	LiquidStock        []liquidStockDTO        `json:"liquidStock"`
	ContainerStock     []containerStockDTO     `json:"containerStock"`
}

type metadataDTO struct {
	Date       string `json:"date"`
	Unit       string `json:"unit"`
	City       string `json:"city"`
	Period     string `json:"period"`
	PreparedBy string `json:"preparedBy"`
}

type saleDTO struct {
	Client        string       `json:"client"`
	City          string       `json:"city"`
	Product       string       `json:"product"`
	Date          string       `json:"date"`
	Quantity      int          `json:"quantity"`
	UnitPrice     json.Number  `json:"unitPrice"`
	Total         json.Number  `json:"total"`
	PaymentMethod string       `json:"paymentMethod"`
	PaymentStatus string       `json:"paymentStatus"`
	Expenses      *json.Number `json:"expenses"`
}

type productSummaryDTO struct {
	Product      string      `json:"product"`
	Quantity     int         `json:"quantity"`
	AveragePrice json.Number `json:"averagePrice"`
	Total        json.Number `json:"total"`
}

type paymentBreakdownDTO struct {
	Method     string      `json:"method"`
	Quantity   int         `json:"quantity"`
	Amount     json.Number `json:"amount"`
	Percentage float64     `json:"percentage"`
}

type receivementDTO struct {
	Code     string       `json:"code"`
	Client   string       `json:"client"`
	Method   string       `json:"method"`
	Document string       `json:"document"`
	Amount   json.Number  `json:"amount"`
	Received *json.Number `json:"received"`
}

type receivementSummaryDTO struct {
	Method   string      `json:"method"`
	Quantity int         `json:"quantity"`
	Amount   json.Number `json:"amount"`
}

type expenseDTO struct {
	Provider string      `json:"provider"`
	DueDate  string      `json:"dueDate"`
	Document string      `json:"document"`
	Amount   json.Number `json:"amount"`
}

type liquidStockDTO struct {
	Product  string `json:"product"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

type containerStockDTO struct {
	Product     string `json:"product"`
	Location    string `json:"location"`
	Empty       int    `json:"empty"`
	Maintenance int    `json:"maintenance"`
	Total       int    `json:"total"`
}

type clientDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchReport busca o agregado do relatório detalhado para o período.
func (r *ReportRepositoryImpl) FetchReport(ctx context.Context, req repository.ReportRequest) (*entity.ReportAggregate, error) {
	query := url.Values{}
	query.Set("startDate", req.StartDate)
	query.Set("endDate", req.EndDate)
	if req.LocationID != "" {
		query.Set("locationId", req.LocationID)
	}

	var dto reportAggregateDTO
	if err := r.get(ctx, "/reports/detailed", query, &dto); err != nil {
		return nil, err
	}

	return mapAggregate(dto), nil
}

// ListClients busca o diretório de clientes para o filtro.
func (r *ReportRepositoryImpl) ListClients(ctx context.Context) ([]entity.Client, error) {
	var dtos []clientDTO
	if err := r.get(ctx, "/clients", nil, &dtos); err != nil {
		return nil, err
	}

	clients := make([]entity.Client, len(dtos))
	for i, c := range dtos {
		clients[i] = entity.Client{ID: c.ID, Name: c.Name}
	}
	return clients, nil
}

// get executa um GET, valida o envelope e decodifica data no destino.
func (r *ReportRepositoryImpl) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := r.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error calling report API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("report API returned status %d", resp.StatusCode)
	}

	var env envelope
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return fmt.Errorf("error decoding report API response: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "unsuccessful response"
		}
		return fmt.Errorf("report API error: %s", msg)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("error decoding report payload: %w", err)
	}
	return nil
}

func mapAggregate(dto reportAggregateDTO) *entity.ReportAggregate {
	agg := &entity.ReportAggregate{
		Metadata: entity.ReportMetadata{
			Date:       dto.Metadata.Date,
			Unit:       dto.Metadata.Unit,
			City:       dto.Metadata.City,
			Period:     dto.Metadata.Period,
			PreparedBy: dto.Metadata.PreparedBy,
		},
	}

	for _, s := range dto.Sales {
		agg.Sales = append(agg.Sales, entity.SaleRecord{
			Client:        s.Client,
			City:          s.City,
			Product:       s.Product,
			Date:          s.Date,
			Quantity:      s.Quantity,
			UnitPrice:     toDecimal(s.UnitPrice),
			Total:         toDecimal(s.Total),
			PaymentMethod: s.PaymentMethod,
			PaymentStatus: s.PaymentStatus,
			Expenses:      toDecimalOrZero(s.Expenses),
		})
	}

	for _, p := range dto.ProductSummary {
		agg.ProductSummary = append(agg.ProductSummary, entity.ProductSummaryRow{
			Product:      p.Product,
			Quantity:     p.Quantity,
			AveragePrice: toDecimal(p.AveragePrice),
			Total:        toDecimal(p.Total),
		})
	}

	agg.PaymentBreakdown = mapBreakdown(dto.PaymentBreakdown)
	agg.GeneralDetail = mapBreakdown(dto.GeneralDetail)

	for _, rec := range dto.Receivements {
		amount := toDecimal(rec.Amount)
		// Recebido assume o valor integral quando o backend não o informa.
		received := amount
		if rec.Received != nil {
			received = toDecimal(*rec.Received)
		}
		agg.Receivements = append(agg.Receivements, entity.ReceivementRecord{
			Code:     rec.Code,
			Client:   rec.Client,
			Method:   rec.Method,
			Document: rec.Document,
			Amount:   amount,
			Received: received,
		})
	}

	for _, rs := range dto.ReceivementSummary {
		agg.ReceivementSummary = append(agg.ReceivementSummary, entity.ReceivementSummaryRow{
			Method:   rs.Method,
			Quantity: rs.Quantity,
			Amount:   toDecimal(rs.Amount),
		})
	}

	for _, e := range dto.Expenses {
		agg.Expenses = append(agg.Expenses, entity.ExpenseRecord{
			Provider: e.Provider,
			DueDate:  e.DueDate,
			Document: e.Document,
			Amount:   toDecimal(e.Amount),
		})
	}

	for _, l := range dto.LiquidStock {
		agg.LiquidStock = append(agg.LiquidStock, entity.LiquidStockRow{
			Product:  l.Product,
			Location: l.Location,
			Quantity: l.Quantity,
		})
	}

	for _, c := range dto.ContainerStock {
		agg.ContainerStock = append(agg.ContainerStock, entity.ContainerStockRow{
			Product:     c.Product,
			Location:    c.Location,
			Empty:       c.Empty,
			Maintenance: c.Maintenance,
			Total:       c.Total,
		})
	}

	return agg
}

func mapBreakdown(dtos []paymentBreakdownDTO) []entity.PaymentBreakdownRow {
	rows := make([]entity.PaymentBreakdownRow, 0, len(dtos))
	for _, b := range dtos {
		method := b.Method
		if method == "" {
			method = entity.DefaultPaymentMethod
		}
		rows = append(rows, entity.PaymentBreakdownRow{
			Method:     method,
			Quantity:   b.Quantity,
			Amount:     toDecimal(b.Amount),
			Percentage: b.Percentage,
		})
	}
	return rows
}

// toDecimal converte um json.Number preservando os dígitos do fio; valores
// vazios ou inválidos viram zero, nunca erro de parsing no meio do agregado.
func toDecimal(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toDecimalOrZero(n *json.Number) decimal.Decimal {
	if n == nil {
		return decimal.Zero
	}
	return toDecimal(*n)
}
