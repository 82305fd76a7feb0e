package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/repositories/repository_mocks"
	"fire-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	userRepo           *repository_mocks.MockUserRepositoryInterface
	auditService       *service_mocks.MockAuditServiceInterface
	maintenanceService *service_mocks.MockMaintenanceServiceInterface
	handler            *AdminHandler
	e                  *echo.Echo
	adminID            uuid.UUID
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.maintenanceService = service_mocks.NewMockMaintenanceServiceInterface(s.ctrl)
	s.handler = NewAdminHandler(s.userRepo, s.auditService, s.maintenanceService)
	s.e = echo.New()
	s.adminID = uuid.New()
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdminHandlerTestSuite) unlockContext(userID string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(s.e, http.MethodPost, "/", nil)
	withUser(c, s.adminID)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	return c, rec
}

func (s *AdminHandlerTestSuite) TestUnlockUser_Success() {
	lockedAt := time.Now().Add(-time.Hour)
	user := &models.User{
		ID:                  uuid.New(),
		Email:               gofakeit.Email(),
		FirstName:           gofakeit.FirstName(),
		LastName:            gofakeit.LastName(),
		Role:                models.RoleMember,
		FailedLoginAttempts: 5,
		LockedAt:            &lockedAt,
	}

	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	s.userRepo.EXPECT().ResetFailedLoginAttempts(user.ID).Return(nil).Times(1)
	s.auditService.EXPECT().
		CreateAuditLog(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionUnlocked, log.Action)
			s.Equal(user.ID.String(), log.ResourceID)
			s.Require().NotNil(log.UserID)
			s.Equal(s.adminID, *log.UserID)
			return nil
		}).
		Times(1)

	c, rec := s.unlockContext(user.ID.String())

	s.Require().NoError(s.handler.UnlockUser(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data    dto.UserResponse `json:"data"`
		Message string           `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(user.Email, resp.Data.Email)
	s.Equal(0, resp.Data.FailedLoginAttempts)
	s.Nil(resp.Data.LockedAt)
}

func (s *AdminHandlerTestSuite) TestUnlockUser_Errors() {
	s.Run("invalid id", func() {
		c, rec := s.unlockContext("abc")

		s.Require().NoError(s.handler.UnlockUser(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_006", decodeErrorCode(rec))
	})

	s.Run("unknown user", func() {
		id := uuid.New()
		s.userRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrUserNotFound).Times(1)

		c, rec := s.unlockContext(id.String())

		s.Require().NoError(s.handler.UnlockUser(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("SYSTEM_007", decodeErrorCode(rec))
	})

	s.Run("reset fails", func() {
		user := &models.User{ID: uuid.New(), Email: gofakeit.Email()}
		s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
		s.userRepo.EXPECT().ResetFailedLoginAttempts(user.ID).Return(errors.New("db down")).Times(1)

		c, rec := s.unlockContext(user.ID.String())

		s.Require().NoError(s.handler.UnlockUser(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestRunMaintenance() {
	report := &dto.MaintenanceReport{
		ExpiredRefreshTokens:    3,
		RevokedRefreshTokens:    2,
		ExpiredBlacklistEntries: 4,
		AuditLogsPurged:         10,
		RanAt:                   time.Now().UTC(),
	}
	s.maintenanceService.EXPECT().RunOnce(gomock.Any()).Return(report, nil).Times(1)
	s.auditService.EXPECT().
		CreateAuditLog(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionMaintenanceRun, log.Action)
			s.Equal(models.AuditResourceSystem, log.Resource)
			s.EqualValues(5, log.Metadata["refresh_tokens"])
			return nil
		}).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/admin/maintenance/run", nil)
	withUser(c, s.adminID)

	s.Require().NoError(s.handler.RunMaintenance(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.MaintenanceReport
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(10), resp.AuditLogsPurged)
}

func (s *AdminHandlerTestSuite) TestRunMaintenance_Failure() {
	s.maintenanceService.EXPECT().RunOnce(gomock.Any()).Return(nil, errors.New("cleanup failed")).Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/admin/maintenance/run", nil)
	withUser(c, s.adminID)

	s.Require().NoError(s.handler.RunMaintenance(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
