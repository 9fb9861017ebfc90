package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "erp-ledger-test"
	testUserID    = "user-1"
)

// handlerSuite wires the real routes and auth middleware against mocked services.
type handlerSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockLedgerService    *MockLedgerService
	mockReportingService *MockReportingService
}

func (suite *handlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *handlerSuite) SetupTest() {
	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockReportingService = new(MockReportingService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testIssuer))
	services := &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Ledger:    suite.mockLedgerService,
		Reporting: suite.mockReportingService,
	}
	handlers.RegisterAccountRoutes(v1, services.Account, services.Ledger)
	handlers.RegisterTransactionRoutes(v1, services.Ledger)
	handlers.RegisterReportingRoutes(v1, services.Reporting)
}

func (suite *handlerSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockLedgerService.AssertExpectations(suite.T())
	suite.mockReportingService.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for the test user.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves an authenticated request and returns the recorder.
func (suite *handlerSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *handlerSuite) doUnauthenticated(method, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(method, url, nil))
	return w
}

func (suite *handlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), "Failed to unmarshal response body: %s", w.Body.String())
}

func (suite *handlerSuite) assertStatus(w *httptest.ResponseRecorder, want int) {
	suite.Require().Equal(want, w.Code, "unexpected status, body: %s", w.Body.String())
}
