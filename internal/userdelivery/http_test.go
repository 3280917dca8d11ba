package userdelivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/randompkg"
	"github.com/corebank/corebank/pkg/tokenpkg"
)

const testAccessTokenDuration = time.Minute

func randomUser(role domain.Role) domain.User {
	return domain.User{
		ID:       randompkg.Int64Between(1, 100),
		Email:    randompkg.Email(),
		FullName: randompkg.Owner(),
		Role:     role,
	}
}

func testSetup(t *testing.T) (*gin.Engine, *MockService, *Handler, tokenpkg.Maker) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := NewHandler(service, tokenMaker, testAccessTokenDuration)

	server := gin.New()

	return server, service, handler, tokenMaker
}

func TestRegister(t *testing.T) {
	user := randomUser(domain.RoleCustomer)
	password := randompkg.String(10)

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidEmail",
			requestBody: gin.H{
				"email":     "not-an-email",
				"password":  password,
				"full_name": user.FullName,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ShortPassword",
			requestBody: gin.H{
				"email":     user.Email,
				"password":  "12345",
				"full_name": user.FullName,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "EmailTaken",
			requestBody: gin.H{
				"email":     user.Email,
				"password":  password,
				"full_name": user.FullName,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), user.Email, password, user.FullName, domain.RoleCustomer).
					Times(1).
					Return(domain.User{}, domain.ErrUserAlreadyExists)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"email":     user.Email,
				"password":  password,
				"full_name": user.FullName,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), user.Email, password, user.FullName, domain.RoleCustomer).
					Times(1).
					Return(domain.User{}, errors.New("repo error"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"email":     user.Email,
				"password":  password,
				"full_name": user.FullName,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), user.Email, password, user.FullName, domain.RoleCustomer).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var got registerResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, "User registered successfully", got.Message)
				require.Equal(t, user.ID, got.UserID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, handler, _ := testSetup(t)
			server.POST("/auth/register", handler.Register)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	admin := randomUser(domain.RoleAdmin)
	password := randompkg.String(10)

	server, service, handler, _ := testSetup(t)
	server.POST("/auth/create-admin", handler.CreateAdmin)

	service.EXPECT().
		Create(gomock.Any(), admin.Email, password, admin.FullName, domain.RoleAdmin).
		Times(1).
		Return(admin, nil)

	body, err := json.Marshal(gin.H{
		"email":     admin.Email,
		"password":  password,
		"full_name": admin.FullName,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/auth/create-admin", bytes.NewReader(body))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	data, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)

	var got registerResponse
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, "Admin created successfully", got.Message)
	require.Equal(t, admin.ID, got.UserID)
}

func TestLogin(t *testing.T) {
	user := randomUser(domain.RoleCustomer)
	password := randompkg.String(10)

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, tokenMaker tokenpkg.Maker, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingPassword",
			requestBody: gin.H{
				"email": user.Email,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().CheckPassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, tokenMaker tokenpkg.Maker, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WrongPassword",
			requestBody: gin.H{
				"email":    user.Email,
				"password": password,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					CheckPassword(gomock.Any(), user.Email, password).
					Times(1).
					Return(domain.User{}, domain.ErrWrongPassword)
			},
			checkResponse: func(t *testing.T, tokenMaker tokenpkg.Maker, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"email":    user.Email,
				"password": password,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					CheckPassword(gomock.Any(), user.Email, password).
					Times(1).
					Return(domain.User{}, errors.New("repo error"))
			},
			checkResponse: func(t *testing.T, tokenMaker tokenpkg.Maker, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"email":    user.Email,
				"password": password,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					CheckPassword(gomock.Any(), user.Email, password).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, tokenMaker tokenpkg.Maker, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var got loginResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, "bearer", got.TokenType)

				payload, err := tokenMaker.VerifyToken(got.AccessToken)
				require.NoError(t, err)
				require.Equal(t, user.ID, payload.UserID)
				require.Equal(t, user.Email, payload.Email)
				require.Equal(t, user.Role, payload.Role)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, handler, tokenMaker := testSetup(t)
			server.POST("/auth/login", handler.Login)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			tc.checkResponse(t, tokenMaker, recorder)
		})
	}
}

func TestProfile(t *testing.T) {
	user := randomUser(domain.RoleCustomer)

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, req *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "NoAuthorization",
			setupAuth: func(t *testing.T, req *http.Request, tokenMaker tokenpkg.Maker) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "UserNotFound",
			setupAuth: func(t *testing.T, req *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, req, tokenMaker,
					middleware.AuthorizationTypeBearer, user.ID, user.Email, user.Role, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), user.ID).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "OK",
			setupAuth: func(t *testing.T, req *http.Request, tokenMaker tokenpkg.Maker) {
				middleware.AddAuthorization(t, req, tokenMaker,
					middleware.AuthorizationTypeBearer, user.ID, user.Email, user.Role, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), user.ID).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var got profileResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, user.ID, got.ID)
				require.Equal(t, user.Email, got.Email)
				require.Equal(t, user.FullName, got.FullName)
				require.Equal(t, user.Role, got.Role)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, handler, tokenMaker := testSetup(t)
			server.GET("/auth/me", middleware.AuthMiddleware(tokenMaker), handler.Profile)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/auth/me", nil)
			require.NoError(t, err)

			tc.setupAuth(t, req, tokenMaker)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			tc.checkResponse(t, recorder)
		})
	}
}
