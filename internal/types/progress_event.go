package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProgressEvent records one adaptation recommended for a learner, for the
// progress-tracking collaborator to act on.
type ProgressEvent struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`

	Adaptation string         `gorm:"column:adaptation;not null;index" json:"adaptation"`
	ModuleIDs  datatypes.JSON `gorm:"column:module_ids;type:jsonb" json:"module_ids,omitempty"`
	Reasoning  string         `gorm:"column:reasoning;type:text" json:"reasoning"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (ProgressEvent) TableName() string { return "progress_event" }
