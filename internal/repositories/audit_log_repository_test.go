package repositories

import (
	"testing"
	"time"

	"fire-tracker/internal/database"
	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) newLog(userID *uuid.UUID, action, resource, resourceID string) *models.AuditLog {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  "198.51.100.20",
		UserAgent:  "fire-tracker-ios/3.2",
	}
	s.Require().NoError(s.repo.Create(log))
	return log
}

func (s *AuditLogRepositorySuite) TestCreate() {
	userID := uuid.New()

	log := s.newLog(&userID, models.AuditActionLogin, models.AuditResourceAuth, userID.String())

	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestCreateWithoutUserID() {
	log := s.newLog(nil, models.AuditActionFailedLogin, models.AuditResourceAuth, "")

	s.NotEqual(uuid.Nil, log.ID)
	s.Nil(log.UserID)
}

func (s *AuditLogRepositorySuite) TestCreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *AuditLogRepositorySuite) TestGetByID() {
	userID := uuid.New()
	log := s.newLog(&userID, models.AuditActionCreate, models.AuditResourceBudget, uuid.New().String())
	log.Annotate("category", "Groceries")
	s.Require().NoError(s.db.Save(log).Error)

	found, err := s.repo.GetByID(log.ID)
	s.NoError(err)
	s.Equal(models.AuditActionCreate, found.Action)
	category, ok := found.Lookup("category")
	s.True(ok)
	s.Equal("Groceries", category)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAuditLogNotFound)
}

func (s *AuditLogRepositorySuite) TestGetUserActivity() {
	userID := uuid.New()
	otherUserID := uuid.New()

	for _, action := range []string{models.AuditActionLogin, models.AuditActionCreate, models.AuditActionLogout} {
		s.newLog(&userID, action, models.AuditResourceTransaction, uuid.New().String())
		time.Sleep(5 * time.Millisecond)
	}
	s.newLog(&otherUserID, models.AuditActionLogin, models.AuditResourceAuth, otherUserID.String())

	logs, total, err := s.repo.GetUserActivity(userID, nil, nil, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(logs, 3)
	s.Equal(models.AuditActionLogout, logs[0].Action)
	for _, log := range logs {
		s.Equal(userID, *log.UserID)
	}
}

func (s *AuditLogRepositorySuite) TestGetUserActivity_Pagination() {
	userID := uuid.New()
	for i := 0; i < 5; i++ {
		s.newLog(&userID, models.AuditActionUpdate, models.AuditResourceBudget, uuid.New().String())
	}

	logs, total, err := s.repo.GetUserActivity(userID, nil, nil, 4, 2)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(5), total)

	for _, limit := range []int{0, -3, maxActivityPage + 1} {
		logs, _, err = s.repo.GetUserActivity(userID, nil, nil, -1, limit)
		s.NoError(err)
		s.Len(logs, 5, "limit %d falls back to the default page", limit)
	}
}

func (s *AuditLogRepositorySuite) TestGetUserActivity_DateBounds() {
	userID := uuid.New()
	old := s.newLog(&userID, models.AuditActionLogin, models.AuditResourceAuth, "")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.Require().NoError(s.db.Save(old).Error)
	s.newLog(&userID, models.AuditActionLogin, models.AuditResourceAuth, "")

	since := time.Now().Add(-24 * time.Hour)
	logs, total, err := s.repo.GetUserActivity(userID, &since, nil, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(logs, 1)

	_, _, err = s.repo.GetUserActivity(uuid.Nil, nil, nil, 0, 10)
	s.Error(err)
}

func (s *AuditLogRepositorySuite) TestDeleteOlderThan() {
	userID := uuid.New()
	old := s.newLog(&userID, models.AuditActionLogin, models.AuditResourceAuth, "")
	old.CreatedAt = time.Now().Add(-100 * 24 * time.Hour)
	s.Require().NoError(s.db.Save(old).Error)
	s.newLog(&userID, models.AuditActionLogin, models.AuditResourceAuth, "")

	deleted, err := s.repo.DeleteOlderThan(90 * 24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.GetUserActivity(userID, nil, nil, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}
