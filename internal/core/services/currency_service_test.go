package services_test

import (
	"context"
	"testing"

	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/quantleap/refdata/internal/core/domain"
	portssvc "github.com/quantleap/refdata/internal/core/ports/services"
	"github.com/quantleap/refdata/internal/core/services"
	"github.com/quantleap/refdata/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency, audit domain.AuditFields) error {
	args := m.Called(ctx, currency, audit)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorID := "admin-1"
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "ZWL",
		Precision:    2,
		ISO4217:      932,
		Name:         "Zimbabwean dollar",
		CurrencyType: "FIAT",
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "ZWL").Return(domain.Currency{}, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code() == "ZWL" && c.Precision() == 2 && c.ISO4217() == 932 &&
			c.Name() == "Zimbabwean dollar" && c.Type() == domain.Fiat
	}), mock.MatchedBy(func(a domain.AuditFields) bool {
		return a.CreatedBy == creatorID && a.LastUpdatedBy == creatorID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Equal("ZWL", currency.Code())
	suite.Equal(uint8(2), currency.Precision())
	suite.Equal(uint16(932), currency.ISO4217())
	suite.Equal("Zimbabwean dollar", currency.Name())
	suite.Equal(domain.Fiat, currency.Type())

	// The new currency is also resolvable through the in-process registry.
	registered, ok := domain.CurrencyFromCode("ZWL")
	suite.True(ok)
	suite.Equal(currency, registered)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "USD",
		Precision:    2,
		ISO4217:      840,
		Name:         "United States dollar",
		CurrencyType: "FIAT",
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(domain.USD, nil).Once()

	_, err := suite.service.CreateCurrency(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_BadCurrencyType() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "XYZ",
		Precision:    2,
		Name:         "Mystery unit",
		CurrencyType: "COMMODITY",
	}

	_, err := suite.service.CreateCurrency(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "VES",
		Precision:    2,
		ISO4217:      928,
		Name:         "Venezuelan bolivar",
		CurrencyType: "FIAT",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCurrencyByCode", ctx, "VES").Return(domain.Currency{}, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency"), mock.AnythingOfType("domain.AuditFields")).Return(expectedErr).Once()

	_, err := suite.service.CreateCurrency(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "AUD").Return(domain.AUD, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "AUD")

	suite.Require().NoError(err)
	suite.Equal(domain.AUD, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(domain.Currency{}, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "NTF")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.True(currency.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{domain.AUD, domain.BTC}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var expected []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, expectedErr).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSeedBuiltinCurrencies() {
	ctx := context.Background()

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency"), mock.AnythingOfType("domain.AuditFields")).Return(nil)

	err := suite.service.SeedBuiltinCurrencies(ctx, "system")

	suite.Require().NoError(err)
	suite.mockRepo.AssertCalled(suite.T(), "SaveCurrency", ctx, domain.USD, mock.AnythingOfType("domain.AuditFields"))
	suite.mockRepo.AssertCalled(suite.T(), "SaveCurrency", ctx, domain.BTC, mock.AnythingOfType("domain.AuditFields"))
}

func (suite *CurrencyServiceTestSuite) TestSeedBuiltinCurrencies_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency"), mock.AnythingOfType("domain.AuditFields")).Return(expectedErr)

	err := suite.service.SeedBuiltinCurrencies(ctx, "system")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
