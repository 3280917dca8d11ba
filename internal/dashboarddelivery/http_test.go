package dashboarddelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/corebank/corebank/internal/dashboardservice"
	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/randompkg"
	"github.com/corebank/corebank/pkg/tokenpkg"
)

func testSetup(t *testing.T) (*gin.Engine, *MockService, tokenpkg.Maker) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.New()

	auth := server.Group("/", middleware.AuthMiddleware(tokenMaker))
	auth.GET("/dashboard/customer/summary", handler.CustomerSummary)
	auth.GET("/dashboard/customer/recent-transactions", handler.CustomerRecent)

	admin := auth.Group("/", middleware.AdminMiddleware())
	admin.GET("/dashboard/admin/summary", handler.AdminSummary)
	admin.GET("/dashboard/admin/recent-transactions", handler.AdminRecent)

	return server, service, tokenMaker
}

func TestCustomerSummary(t *testing.T) {
	userID := randompkg.Int64Between(1, 100)

	server, service, tokenMaker := testSetup(t)

	summary := dashboardservice.CustomerSummary{
		AccountCount: 2,
		TotalBalance: 42_000,
		KYCStatus:    domain.KYCApproved,
	}
	service.EXPECT().CustomerSummaryFor(gomock.Any(), userID).Times(1).Return(summary, nil)

	req, err := http.NewRequest(http.MethodGet, "/dashboard/customer/summary", nil)
	require.NoError(t, err)
	middleware.AddAuthorization(t, req, tokenMaker,
		middleware.AuthorizationTypeBearer, userID, randompkg.Email(), domain.RoleCustomer, time.Minute)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got dashboardservice.CustomerSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, summary, got)
}

func TestCustomerRecent(t *testing.T) {
	userID := randompkg.Int64Between(1, 100)

	server, service, tokenMaker := testSetup(t)

	transactions := []domain.Transaction{
		{ID: 3, ReferenceID: "TXN912837465", Amount: 900, Status: domain.StatusSuccess},
	}
	service.EXPECT().RecentMine(gomock.Any(), userID).Times(1).Return(transactions, nil)

	req, err := http.NewRequest(http.MethodGet, "/dashboard/customer/recent-transactions", nil)
	require.NoError(t, err)
	middleware.AddAuthorization(t, req, tokenMaker,
		middleware.AuthorizationTypeBearer, userID, randompkg.Email(), domain.RoleCustomer, time.Minute)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got recentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, transactions, got.Transactions)
}

func TestAdminSummary(t *testing.T) {
	adminID := randompkg.Int64Between(1, 100)

	t.Run("CustomerForbidden", func(t *testing.T) {
		server, service, tokenMaker := testSetup(t)
		service.EXPECT().AdminSummaryAll(gomock.Any()).Times(0)

		req, err := http.NewRequest(http.MethodGet, "/dashboard/admin/summary", nil)
		require.NoError(t, err)
		middleware.AddAuthorization(t, req, tokenMaker,
			middleware.AuthorizationTypeBearer, adminID, randompkg.Email(), domain.RoleCustomer, time.Minute)

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("OK", func(t *testing.T) {
		server, service, tokenMaker := testSetup(t)

		summary := dashboardservice.AdminSummary{
			TotalUsers:    12,
			TotalAccounts: 9,
			TotalBalance:  1_000_000,
			PendingKYC:    3,
		}
		service.EXPECT().AdminSummaryAll(gomock.Any()).Times(1).Return(summary, nil)

		req, err := http.NewRequest(http.MethodGet, "/dashboard/admin/summary", nil)
		require.NoError(t, err)
		middleware.AddAuthorization(t, req, tokenMaker,
			middleware.AuthorizationTypeBearer, adminID, randompkg.Email(), domain.RoleAdmin, time.Minute)

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got dashboardservice.AdminSummary
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		require.Equal(t, summary, got)
	})
}

func TestAdminRecent(t *testing.T) {
	adminID := randompkg.Int64Between(1, 100)

	server, service, tokenMaker := testSetup(t)

	transactions := []domain.Transaction{
		{ID: 8, ReferenceID: "TXN564738291", Amount: 5_000, Status: domain.StatusSuccess},
	}
	service.EXPECT().RecentAll(gomock.Any()).Times(1).Return(transactions, nil)

	req, err := http.NewRequest(http.MethodGet, "/dashboard/admin/recent-transactions", nil)
	require.NoError(t, err)
	middleware.AddAuthorization(t, req, tokenMaker,
		middleware.AuthorizationTypeBearer, adminID, randompkg.Email(), domain.RoleAdmin, time.Minute)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got recentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, transactions, got.Transactions)
}
