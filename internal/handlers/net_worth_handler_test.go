package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NetWorthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	netWorthService *service_mocks.MockNetWorthServiceInterface
	auditService    *service_mocks.MockAuditServiceInterface
	handler         *NetWorthHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func TestNetWorthHandlerSuite(t *testing.T) {
	suite.Run(t, new(NetWorthHandlerTestSuite))
}

func (s *NetWorthHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.netWorthService = service_mocks.NewMockNetWorthServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewNetWorthHandler(s.netWorthService, s.auditService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *NetWorthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NetWorthHandlerTestSuite) snapshot(assets, liabilities int64) models.NetWorthSnapshot {
	return models.NetWorthSnapshot{
		ID:          uuid.New(),
		UserID:      s.userID,
		Date:        time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		Assets:      decimal.NewFromInt(assets),
		Liabilities: decimal.NewFromInt(liabilities),
		NetWorth:    decimal.NewFromInt(assets - liabilities),
	}
}

func (s *NetWorthHandlerTestSuite) TestRecordSnapshot_NegativeNetWorthAllowed() {
	snapshot := s.snapshot(10000, 25000)

	s.netWorthService.EXPECT().RecordSnapshot(gomock.Any(), s.userID, gomock.Any()).Return(&snapshot, nil).Times(1)
	s.auditService.EXPECT().
		LogResourceChange(s.userID, models.AuditActionCreate, models.AuditResourceNetWorth, snapshot.ID.String(), gomock.Any(), gomock.Any(),
			map[string]interface{}{"net_worth": "-15000.00"}).
		Return(nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/net-worth", map[string]string{
		"date":        "2024-04-30",
		"assets":      "10000",
		"liabilities": "25000",
	})
	withUser(c, s.userID)

	s.Require().NoError(s.handler.RecordSnapshot(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("-15000", resp["net_worth"])
}

func (s *NetWorthHandlerTestSuite) TestRecordSnapshot_MissingAssets() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/net-worth", map[string]string{
		"date":        "2024-04-30",
		"liabilities": "25000",
	})
	withUser(c, s.userID)

	s.Error(s.handler.RecordSnapshot(c))
}

func (s *NetWorthHandlerTestSuite) TestListSnapshots() {
	snapshots := []models.NetWorthSnapshot{s.snapshot(100, 0), s.snapshot(200, 50)}

	s.netWorthService.EXPECT().
		ListSnapshots(gomock.Any(), s.userID, gomock.Not(gomock.Nil()), nil).
		Return(snapshots, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/net-worth?startDate=2024-01-01", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.ListSnapshots(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.NetWorthHistoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Count)
}

func (s *NetWorthHandlerTestSuite) TestListSnapshots_BadDate() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/net-worth?endDate=yesterday", nil)
	withUser(c, s.userID)

	s.Require().NoError(s.handler.ListSnapshots(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_007", decodeErrorCode(rec))
}

func (s *NetWorthHandlerTestSuite) TestGetLatestSnapshot() {
	s.Run("found", func() {
		snapshot := s.snapshot(500, 100)
		s.netWorthService.EXPECT().GetLatestSnapshot(gomock.Any(), s.userID).Return(&snapshot, nil).Times(1)

		c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/net-worth/latest", nil)
		withUser(c, s.userID)

		s.Require().NoError(s.handler.GetLatestSnapshot(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("none recorded", func() {
		s.netWorthService.EXPECT().
			GetLatestSnapshot(gomock.Any(), s.userID).
			Return(nil, repositories.ErrNetWorthSnapshotNotFound).
			Times(1)

		c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/net-worth/latest", nil)
		withUser(c, s.userID)

		s.Require().NoError(s.handler.GetLatestSnapshot(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("NETWORTH_001", decodeErrorCode(rec))
	})
}

func (s *NetWorthHandlerTestSuite) TestDeleteSnapshot_NotFound() {
	id := uuid.New()
	s.netWorthService.EXPECT().DeleteSnapshot(gomock.Any(), s.userID, id).Return(repositories.ErrNetWorthSnapshotNotFound).Times(1)

	c, rec := newJSONContext(s.e, http.MethodDelete, "/", nil)
	withUser(c, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.DeleteSnapshot(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
