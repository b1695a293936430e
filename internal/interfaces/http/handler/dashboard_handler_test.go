package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "ecomdash/internal/application/dashboard"
	"ecomdash/internal/domain/order"
	"ecomdash/pkg/logger"
)

type stubSource struct {
	orders []*order.Order
	err    error
}

func (s *stubSource) Get(context.Context, string) ([]*order.Order, error) {
	return s.orders, s.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}
func (nopLogger) Sync() error                   { return nil }

func (n nopLogger) WithFields(...logger.Field) logger.Logger { return n }

func newTestRouter(source app.DataSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	opts := app.Options{TopCategories: 10, TopCities: 10, ShippingBins: 30}
	clock := func() time.Time { return time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC) }
	svc := app.NewService(source, "test.csv", opts, clock, nopLogger{})
	h := NewDashboardHandler(svc)

	r := gin.New()
	r.GET("/api/health", h.Health)
	r.GET("/api/states", h.GetStates)
	r.GET("/api/dashboard", h.GetDashboard)
	return r
}

func testSource() *stubSource {
	purchase := time.Date(2018, 1, 1, 8, 0, 0, 0, time.UTC)
	return &stubSource{orders: []*order.Order{
		{OrderID: "o1", CustomerID: "c1", CustomerState: "SP", Price: 100, PurchaseTimestamp: &purchase},
		{OrderID: "o2", CustomerID: "c2", CustomerState: "RJ", Price: 30, PurchaseTimestamp: &purchase},
	}}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(testSource())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetStates(t *testing.T) {
	router := newTestRouter(testSource())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/states", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"states":["RJ","SP"]}`, w.Body.String())
}

func TestGetDashboard_AllStatesByDefault(t *testing.T) {
	router := newTestRouter(testSource())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ReportID string   `json:"report_id"`
		States   []string `json:"states"`
		Summary  struct {
			TotalOrders         int    `json:"total_orders"`
			TotalRevenueDisplay string `json:"total_revenue_display"`
		} `json:"summary"`
		Charts []json.RawMessage `json:"charts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.NotEmpty(t, body.ReportID)
	assert.Equal(t, []string{"RJ", "SP"}, body.States)
	assert.Equal(t, 2, body.Summary.TotalOrders)
	assert.Equal(t, "$130.00", body.Summary.TotalRevenueDisplay)
	assert.Len(t, body.Charts, 16)
}

func TestGetDashboard_StatesParamFormats(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStates []string
		wantOrders int
	}{
		{name: "comma separated", query: "?states=SP,RJ", wantStates: []string{"SP", "RJ"}, wantOrders: 2},
		{name: "repeated param", query: "?states=SP&states=RJ", wantStates: []string{"SP", "RJ"}, wantOrders: 2},
		{name: "single state", query: "?states=RJ", wantStates: []string{"RJ"}, wantOrders: 1},
		{name: "deselected everything", query: "?states=", wantStates: []string{}, wantOrders: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testSource())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard"+tt.query, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				States  []string `json:"states"`
				Summary struct {
					TotalOrders int `json:"total_orders"`
				} `json:"summary"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStates, body.States)
			assert.Equal(t, tt.wantOrders, body.Summary.TotalOrders)
		})
	}
}

func TestGetDashboard_LoadFailure(t *testing.T) {
	router := newTestRouter(&stubSource{err: errors.New("dataset unreachable")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "dataset unreachable")
}
