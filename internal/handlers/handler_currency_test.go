package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/quantleap/refdata/internal/core/domain"
	portssvc "github.com/quantleap/refdata/internal/core/ports/services"
	"github.com/quantleap/refdata/internal/dto"
	"github.com/quantleap/refdata/internal/handlers"
	"github.com/quantleap/refdata/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (domain.Currency, error) {
	args := m.Called(ctx, req, creatorID)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) SeedBuiltinCurrencies(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCurrencyService
}

func (suite *CurrencyHandlerTestSuite) SetupSuite() {
	suite.Require().NoError(dto.RegisterCustomValidators())
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActorAttribution())

	suite.mockService = new(MockCurrencyService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, suite.mockService)
}

func (suite *CurrencyHandlerTestSuite) performRequest(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Success() {
	reqBody := dto.CreateCurrencyRequest{
		CurrencyCode: "AUD",
		Precision:    8,
		ISO4217:      36,
		Name:         "Australian dollar",
		CurrencyType: "FIAT",
	}
	created := domain.NewCurrency("AUD", 8, 36, "Australian dollar", domain.Fiat)

	suite.mockService.On("CreateCurrency", mock.Anything, reqBody, "admin-7").Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.performRequest(http.MethodPost, "/api/v1/currencies", body, map[string]string{"X-Actor-ID": "admin-7"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("AUD", resp.CurrencyCode)
	suite.Equal(uint8(8), resp.Precision)
	suite.Equal(uint16(36), resp.ISO4217)
	suite.Equal("Australian dollar", resp.Name)
	suite.Equal("FIAT", resp.CurrencyType)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_DefaultActor() {
	reqBody := dto.CreateCurrencyRequest{
		CurrencyCode: "BTC",
		Precision:    8,
		Name:         "Bitcoin",
		CurrencyType: "CRYPTO",
	}
	created := domain.NewCurrency("BTC", 8, 0, "Bitcoin", domain.Crypto)

	suite.mockService.On("CreateCurrency", mock.Anything, reqBody, "system").Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.performRequest(http.MethodPost, "/api/v1/currencies", body, nil)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_InvalidCode() {
	// Lowercase code fails the currencycode binding validator before the
	// service is ever consulted.
	body := []byte(`{"currencyCode":"aud","precision":2,"name":"Australian dollar","currencyType":"FIAT"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/currencies", body, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_PrecisionOutOfRange() {
	body := []byte(`{"currencyCode":"XAU","precision":19,"name":"Gold gram","currencyType":"FIAT"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/currencies", body, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Duplicate() {
	reqBody := dto.CreateCurrencyRequest{
		CurrencyCode: "USD",
		Precision:    2,
		ISO4217:      840,
		Name:         "United States dollar",
		CurrencyType: "FIAT",
	}

	suite.mockService.On("CreateCurrency", mock.Anything, reqBody, "system").Return(domain.Currency{}, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.performRequest(http.MethodPost, "/api/v1/currencies", body, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_Success() {
	suite.mockService.On("GetCurrencyByCode", mock.Anything, "EUR").Return(domain.EUR, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currencies/EUR", nil, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal(uint16(978), resp.ISO4217)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.mockService.On("GetCurrencyByCode", mock.Anything, "ZZZ").Return(domain.Currency{}, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currencies/ZZZ", nil, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_BadLength() {
	w := suite.performRequest(http.MethodGet, "/api/v1/currencies/US", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	suite.mockService.On("ListCurrencies", mock.Anything).Return([]domain.Currency{domain.AUD, domain.BTC}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currencies", nil, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("AUD", resp[0].CurrencyCode)
	suite.Equal("BTC", resp[1].CurrencyCode)

	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
