package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"
	"fire-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FireHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	fireService *service_mocks.MockFireServiceInterface
	handler     *FireHandler
	e           *echo.Echo
	userID      uuid.UUID
}

func TestFireHandlerSuite(t *testing.T) {
	suite.Run(t, new(FireHandlerTestSuite))
}

func (s *FireHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fireService = service_mocks.NewMockFireServiceInterface(s.ctrl)
	s.handler = NewFireHandler(s.fireService)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *FireHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FireHandlerTestSuite) TestGetProgress() {
	progress := &models.FireProgress{
		FireTarget:        decimal.NewFromInt(705000),
		CoastFireTarget:   decimal.NewFromInt(705000),
		BaristaFireTarget: decimal.NewFromInt(405000),
		CurrentNetWorth:   decimal.NewFromInt(70500),
		FireProgress:      decimal.NewFromInt(10),
	}
	s.fireService.EXPECT().GetProgress(gomock.Any(), s.userID, nil).Return(progress, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/fire/progress", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetProgress(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("705000", resp["fire_target"])
	s.Equal("10", resp["fire_progress"])
}

func (s *FireHandlerTestSuite) TestGetProgress_PartTimeIncomeOverride() {
	s.fireService.EXPECT().
		GetProgress(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, income *decimal.Decimal) (*models.FireProgress, error) {
			s.Require().NotNil(income)
			s.Equal("15000.5", income.String())
			return &models.FireProgress{}, nil
		}).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/fire/progress?partTimeIncome=15000.50", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetProgress(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *FireHandlerTestSuite) TestGetProgress_Errors() {
	testCases := []struct {
		name       string
		query      string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"non numeric override", "?partTimeIncome=abc", nil, http.StatusBadRequest, "VALIDATION_003"},
		{"zero withdrawal rate", "", fmt.Errorf("%w: swr rate is zero", finance.ErrUndefinedTarget), http.StatusUnprocessableEntity, "FIRE_001"},
		{"negative override", "?partTimeIncome=-1", errors.Join(services.ErrInvalidFireParameters, models.ErrNegativeIncome), http.StatusBadRequest, "PROFILE_002"},
		{"storage failure", "", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.serviceErr != nil {
				s.fireService.EXPECT().GetProgress(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.serviceErr).Times(1)
			}

			c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/fire/progress"+tc.query, nil)
			withUser(c, s.userID)

			s.Require().NoError(s.handler.GetProgress(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, decodeErrorCode(rec))
		})
	}
}
