package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin          = "login"
	AuditActionLogout         = "logout"
	AuditActionRegister       = "register"
	AuditActionFailedLogin    = "failed_login"
	AuditActionAccountLocked  = "account_locked"
	AuditActionTokenRefresh   = "token_refresh"
	AuditActionCreate         = "create"
	AuditActionUpdate         = "update"
	AuditActionDelete         = "delete"
	AuditActionProfileUpdated = "profile_updated"
	AuditActionPasswordUpdate = "password_updated"
	AuditActionDemoSeeded     = "demo_data_seeded"
	AuditActionUnlocked       = "account_unlocked"
	AuditActionMaintenanceRun = "maintenance_run"
	AuditActionTokenReuse     = "refresh_token_reuse"
)

// IsAuditAction reports whether action is one of the AuditAction constants
func IsAuditAction(action string) bool {
	switch action {
	case AuditActionLogin, AuditActionLogout, AuditActionRegister,
		AuditActionFailedLogin, AuditActionAccountLocked, AuditActionTokenRefresh,
		AuditActionTokenReuse, AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionProfileUpdated, AuditActionPasswordUpdate, AuditActionDemoSeeded,
		AuditActionUnlocked, AuditActionMaintenanceRun:
		return true
	}
	return false
}

const (
	AuditResourceAuth        = "auth"
	AuditResourceTransaction = "transaction"
	AuditResourceBudget      = "budget"
	AuditResourceProfile     = "profile"
	AuditResourceNetWorth    = "net_worth_snapshot"
	AuditResourceSystem      = "system"
)

type AuditLog struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string        `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string        `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string        `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string        `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

// Annotate records one metadata entry on the row
func (al *AuditLog) Annotate(key string, value interface{}) *AuditLog {
	if al.Metadata == nil {
		al.Metadata = AuditMetadata{}
	}
	al.Metadata[key] = value
	return al
}

// Lookup returns the metadata entry stored under key
func (al *AuditLog) Lookup(key string) (interface{}, bool) {
	value, ok := al.Metadata[key]
	return value, ok
}

// Anonymous reports whether the row was written for a caller without an account
func (al *AuditLog) Anonymous() bool {
	return al.UserID == nil
}

func (al *AuditLog) String() string {
	actor := "-"
	if !al.Anonymous() {
		actor = al.UserID.String()
	}
	return fmt.Sprintf("%s %s %s %s:%s", al.CreatedAt.UTC().Format(time.RFC3339), actor, al.Action, al.Resource, al.ResourceID)
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AuditMetadata is stored as a JSON document. The column is TEXT so the
// same value round trips through postgres and sqlite.
//
// swaggertype: object
type AuditMetadata map[string]interface{}

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, fmt.Errorf("encode audit metadata: %w", err)
	}
	return string(raw), nil
}

func (m *AuditMetadata) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	decoded := map[string]interface{}{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decode audit metadata: %w", err)
	}
	*m = decoded
	return nil
}
