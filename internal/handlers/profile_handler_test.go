package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"
	"fire-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	profileService *service_mocks.MockProfileServiceInterface
	auditService   *service_mocks.MockAuditServiceInterface
	handler        *ProfileHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.profileService = service_mocks.NewMockProfileServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewProfileHandler(s.profileService, s.auditService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProfileHandlerTestSuite) profile() *models.Profile {
	return &models.Profile{
		ID:              uuid.New(),
		UserID:          s.userID,
		SwrRate:         decimal.NewFromInt(4),
		CurrentAge:      30,
		RetirementAge:   65,
		ExpectedReturn:  decimal.NewFromInt(7),
		MonthlyExpenses: decimal.NewFromInt(2000),
		AnnualExpenses:  decimal.NewFromInt(24000),
	}
}

func (s *ProfileHandlerTestSuite) TestGetProfile() {
	profile := s.profile()
	s.profileService.EXPECT().GetProfile(gomock.Any(), s.userID).Return(profile, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/profile", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("4", resp["swr_rate"])
	s.EqualValues(65, resp["retirement_age"])
}

func (s *ProfileHandlerTestSuite) TestGetProfile_StorageFailure() {
	s.profileService.EXPECT().GetProfile(gomock.Any(), s.userID).Return(nil, errors.New("db down")).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/profile", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestUpdateProfile_AuditsChanges() {
	profile := s.profile()
	changes := map[string]interface{}{"monthly_expenses": "2500.00", "annual_expenses": "30000.00"}

	s.profileService.EXPECT().
		UpdateProfile(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, map[string]interface{}, error) {
			s.Require().NotNil(req.MonthlyExpenses)
			s.Equal("2500", *req.MonthlyExpenses)
			s.Nil(req.AnnualExpenses)
			return profile, changes, nil
		}).
		Times(1)
	s.auditService.EXPECT().LogProfileUpdate(s.userID, gomock.Any(), gomock.Any(), changes).Return(nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/profile", map[string]string{"monthly_expenses": "2500"})
	withUser(c, s.userID)

	s.Require().NoError(s.handler.UpdateProfile(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestUpdateProfile_NoChangesSkipsAudit() {
	s.profileService.EXPECT().
		UpdateProfile(gomock.Any(), s.userID, gomock.Any()).
		Return(s.profile(), map[string]interface{}{}, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/profile", map[string]string{})
	withUser(c, s.userID)

	s.Require().NoError(s.handler.UpdateProfile(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ProfileHandlerTestSuite) TestUpdateProfile_InvalidParameter() {
	s.profileService.EXPECT().
		UpdateProfile(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, nil, fmt.Errorf("%w: %w", services.ErrValidation, errors.New("retirement age must not be below current age"))).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/profile", map[string]int{"retirement_age": 20})
	withUser(c, s.userID)

	s.Require().NoError(s.handler.UpdateProfile(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PROFILE_002", decodeErrorCode(rec))
}

func (s *ProfileHandlerTestSuite) TestUpdateProfile_AgeOutOfRange() {
	c, _ := newJSONContext(s.e, http.MethodPut, "/api/v1/profile", map[string]int{"current_age": 200})
	withUser(c, s.userID)

	s.Error(s.handler.UpdateProfile(c))
}
