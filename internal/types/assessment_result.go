package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentResult is the stored outcome of one readiness assessment.
// Dimension scores are persisted on the 0-100 scale; the engine consumes the
// normalized [0,1] form.
type AssessmentResult struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RespondentID uuid.UUID `gorm:"type:uuid;not null;index" json:"respondent_id"`

	StrategicAuthority      float64 `gorm:"column:strategic_authority;not null" json:"strategic_authority"`
	OrganizationalInfluence float64 `gorm:"column:organizational_influence;not null" json:"organizational_influence"`
	ResourceAvailability    float64 `gorm:"column:resource_availability;not null" json:"resource_availability"`
	ImplementationReadiness float64 `gorm:"column:implementation_readiness;not null" json:"implementation_readiness"`
	CulturalAlignment       float64 `gorm:"column:cultural_alignment;not null" json:"cultural_alignment"`

	Persona         string         `gorm:"column:persona;not null;index" json:"persona"`
	ConfidenceScore float64        `gorm:"column:confidence_score;not null" json:"confidence_score"`
	Characteristics datatypes.JSON `gorm:"column:characteristics;type:jsonb" json:"characteristics,omitempty"`

	Industry         string         `gorm:"column:industry;index" json:"industry,omitempty"`
	CulturalContexts datatypes.JSON `gorm:"column:cultural_contexts;type:jsonb" json:"cultural_contexts,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentResult) TableName() string { return "assessment_result" }
