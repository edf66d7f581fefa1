package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CurriculumPlan is the stored form of a finalized curriculum
// recommendation. The recommendation itself is kept as a JSON payload; the
// duration columns are denormalized for querying.
type CurriculumPlan struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AssessmentID *uuid.UUID `gorm:"type:uuid;index" json:"assessment_id,omitempty"`

	Persona  string `gorm:"column:persona;not null;index" json:"persona"`
	Industry string `gorm:"column:industry;index" json:"industry,omitempty"`

	TotalHours         float64 `gorm:"column:total_hours;not null" json:"total_hours"`
	WeeklyCommitment   float64 `gorm:"column:weekly_commitment;not null" json:"weekly_commitment"`
	CompletionTimeline string  `gorm:"column:completion_timeline;not null" json:"completion_timeline"`

	Recommendation datatypes.JSON `gorm:"column:recommendation;type:jsonb;not null" json:"recommendation"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CurriculumPlan) TableName() string { return "curriculum_plan" }
