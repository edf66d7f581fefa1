package curriculum

// Pace labels for the three pacing variants.
const (
	PaceIntensive = "intensive"
	PaceStandard  = "standard"
	PaceExtended  = "extended"
)

// Milestone is a week-indexed checkpoint bundling the modules and objectives
// due that week.
type Milestone struct {
	Week                 int      `json:"week"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ModuleIDs            []string `json:"module_ids"`
	Objectives           []string `json:"objectives,omitempty"`
	AssessmentCheckpoint bool     `json:"assessment_checkpoint"`
}

// TimeCommitmentEstimation is the pacing output consumed for progress and
// milestone display.
type TimeCommitmentEstimation struct {
	TotalHours      float64     `json:"total_hours"`
	WeeklyHours     float64     `json:"weekly_hours"`
	IntensiveWeeks  int         `json:"intensive_weeks"`
	StandardWeeks   int         `json:"standard_weeks"`
	ExtendedWeeks   int         `json:"extended_weeks"`
	RecommendedPace string      `json:"recommended_pace"`
	Milestones      []Milestone `json:"milestones"`
}
