package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/refdata"
	"github.com/rezonia/invoice-issuer/internal/server"
)

func newTestServer() *server.Server {
	return server.NewServer(&server.Config{Address: ":0"}, nil)
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testConsolidateRequest() server.ConsolidateRequest {
	line := func(desc string, amount string) model.RawBillingLine {
		return model.RawBillingLine{
			PBLKey:       "PRJ1/B1/L01",
			CompanyCode:  1,
			ProjectCode:  "ALP",
			ClientCode:   "C001",
			ClientName:   "Acme Trading Corp.",
			BillMonth:    202511,
			PeriodFrom:   20251124,
			PeriodTo:     20251223,
			DueDate:      20251230,
			BillType:     model.BillTypeRental,
			Description:  desc,
			DocumentType: "SERVICE INVOICE",
			Amount:       mustDecimal(amount),
			SalesType:    model.SalesVATable,
			VATRate:      mustDecimal("12"),
		}
	}
	return server.ConsolidateRequest{
		InvoiceDate: 20251201,
		Lines: []model.RawBillingLine{
			line("RENTAL", "5600.00"),
			line("RENTAL", "5600.00"),
		},
		Companies: []refdata.Company{{Code: 1, Name: "Alpha Land Corp.", TIN: "000-111-222-000"}},
		Projects:  []refdata.Project{{Code: "ALP", Name: "Alpha Tower", CompanyCode: 1}},
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestConsolidateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv.Handler(), "/api/v1/consolidate", testConsolidateRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ConsolidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Records, 1)
	rec := resp.Records[0]
	assert.Equal(t, "Alpha Land Corp.", rec.CompanyName)
	assert.Equal(t, "Alpha Tower", rec.ProjectName)
	assert.Equal(t, model.StatusPrinted, rec.Status)
	assert.Equal(t, 1, rec.PrintCount)
	assert.NotZero(t, rec.RunDate)

	// Two same-key rental lines merge into one item: 11200 gross,
	// 10000 net plus 1200 VAT at 12%.
	require.Len(t, rec.Items, 1)
	assert.True(t, rec.Totals.VATSales.Equal(mustDecimal("10000")), rec.Totals.VATSales.String())
	assert.True(t, rec.Totals.VAT.Equal(mustDecimal("1200")), rec.Totals.VAT.String())
	assert.True(t, rec.Totals.AmountDue.Equal(mustDecimal("11200")), rec.Totals.AmountDue.String())
	assert.Empty(t, resp.Warnings)
}

func TestConsolidateEndpoint_Reprint(t *testing.T) {
	srv := newTestServer()
	req := testConsolidateRequest()
	req.Reprint = true

	w := postJSON(t, srv.Handler(), "/api/v1/consolidate", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ConsolidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, model.StatusReprinted, resp.Records[0].Status)
}

func TestConsolidateEndpoint_BadRequests(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consolidate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, srv.Handler(), "/api/v1/consolidate", server.ConsolidateRequest{InvoiceDate: 20251201})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no billing lines")
}

func TestRenderInvoiceEndpoint(t *testing.T) {
	srv := newTestServer()

	rec := model.InvoiceRecord{
		PBLKey:       "PRJ1/B1/L01",
		ClientName:   "Acme Trading Corp.",
		DocumentType: "SERVICE INVOICE",
		CompanyName:  "Alpha Land Corp.",
		InvoiceDate:  20251201,
		Status:       model.StatusPrinted,
		PrintCount:   1,
		Items: []model.ItemBreakdown{{
			ItemNo:      1,
			BillType:    model.BillTypeRental,
			Description: "RENTAL",
			DueDate:     20251230,
			VATSales:    mustDecimal("10000"),
			AmountDue:   mustDecimal("10000"),
		}},
	}

	w := postJSON(t, srv.Handler(), "/api/v1/invoices/render", rec)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestRenderBatchEndpoint_Empty(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv.Handler(), "/api/v1/invoices/render-batch", server.RenderBatchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no records")
}

func TestRenderSummaryEndpoint(t *testing.T) {
	srv := newTestServer()
	req := server.RenderBatchRequest{Records: []model.InvoiceRecord{{
		PBLKey:      "PRJ1/B1/L01",
		ClientName:  "Acme Trading Corp.",
		CompanyCode: 1,
		ProjectCode: "ALP",
		InvoiceDate: 20251201,
	}}}

	w := postJSON(t, srv.Handler(), "/api/v1/summary/render", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = postJSON(t, srv.Handler(), "/api/v1/summary/render?format=xlsx", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	// XLSX containers are zip archives.
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
