// Package schema has configs, models and global variables for all parts of talentview.
package schema

import "time"

// CollaboratorMetric is the per-collaborator metrics record returned by the
// evaluation API. Score averages are in the [0,5] range when present; a nil
// FinalScore means the upstream scoring engine did not have enough inputs to
// compute one.
type CollaboratorMetric struct {
	ID                       string   `json:"id" validate:"required"`
	Name                     string   `json:"name" validate:"required"`
	JobTitle                 string   `json:"jobTitle"`
	Seniority                string   `json:"seniority"`
	BusinessUnit             string   `json:"businessUnit"`
	SelfAssessmentAverage    *float64 `json:"selfAssessmentAverage" validate:"omitempty,gte=0,lte=5"`
	Assessment360Average     *float64 `json:"assessment360Average" validate:"omitempty,gte=0,lte=5"`
	ManagerAssessmentAverage *float64 `json:"managerAssessmentAverage" validate:"omitempty,gte=0,lte=5"`
	FinalScore               *float64 `json:"finalScore" validate:"omitempty,gte=0,lte=5"`
}

// ProcessedCollaborator is the display-ready record derived from a
// CollaboratorMetric: the raw DTO plus initials and the color/status buckets
// used for presentation and filtering.
type ProcessedCollaborator struct {
	CollaboratorMetric
	Initials        string             `json:"initials"`
	FinalScoreColor ScoreBucketColor   `json:"finalScoreColor"`
	Status          CollaboratorStatus `json:"status"`
}

// EvaluationDetails carries the per-source scores behind a matrix position,
// when the API includes them.
type EvaluationDetails struct {
	SelfScore          *float64 `json:"selfScore" validate:"omitempty,gte=0,lte=5"`
	ManagerScore       *float64 `json:"managerScore" validate:"omitempty,gte=0,lte=5"`
	Assessment360Score *float64 `json:"assessment360Score" validate:"omitempty,gte=0,lte=5"`
}

// TalentMatrixPosition places one collaborator on the 9-box talent matrix.
// MatrixPosition is the cell id (1-9) computed upstream from the performance
// and potential bands.
type TalentMatrixPosition struct {
	ID                string             `json:"id" validate:"required"`
	Name              string             `json:"name" validate:"required"`
	JobTitle          string             `json:"jobTitle"`
	BusinessUnit      string             `json:"businessUnit"`
	Seniority         string             `json:"seniority"`
	PerformanceScore  float64            `json:"performanceScore" validate:"gte=0,lte=5"`
	PotentialScore    float64            `json:"potentialScore" validate:"gte=0,lte=5"`
	MatrixPosition    int                `json:"matrixPosition" validate:"required,gte=1,lte=9"`
	MatrixLabel       string             `json:"matrixLabel"`
	MatrixColor       string             `json:"matrixColor"`
	Initials          string             `json:"initials"`
	EvaluationDetails *EvaluationDetails `json:"evaluationDetails,omitempty"`
}

// MatrixStats summarizes a talent matrix dataset.
type MatrixStats struct {
	TotalCollaborators int     `json:"totalCollaborators"`
	AveragePerformance float64 `json:"averagePerformance"`
	AveragePotential   float64 `json:"averagePotential"`
}

// TalentMatrixData is the full matrix dataset for one cycle. When
// HasInsufficientData is set, Positions and Stats are not meaningful and
// consumers must surface Message instead of the grid.
type TalentMatrixData struct {
	Cycle               string                 `json:"cycle"`
	Positions           []TalentMatrixPosition `json:"positions" validate:"omitempty,dive"`
	Stats               MatrixStats            `json:"stats"`
	GeneratedAt         time.Time              `json:"generatedAt"`
	HasInsufficientData bool                   `json:"hasInsufficientData,omitempty"`
	Message             string                 `json:"message,omitempty"`
}

// BrutalFactsMetrics is the team-level aggregate snapshot for one cycle.
// Consumed read-only; all aggregation happens server-side.
type BrutalFactsMetrics struct {
	Cycle                    string   `json:"cycle" validate:"required"`
	TeamAverageScore         *float64 `json:"teamAverageScore" validate:"omitempty,gte=0,lte=5"`
	SelfAssessmentAverage    *float64 `json:"selfAssessmentAverage" validate:"omitempty,gte=0,lte=5"`
	ManagerAssessmentAverage *float64 `json:"managerAssessmentAverage" validate:"omitempty,gte=0,lte=5"`
	Assessment360Average     *float64 `json:"assessment360Average" validate:"omitempty,gte=0,lte=5"`
	TotalCollaborators       int      `json:"totalCollaborators"`
	FinalizedAssessments     int      `json:"finalizedAssessments"`
	PendingAssessments       int      `json:"pendingAssessments"`
	DraftAssessments         int      `json:"draftAssessments"`
	CompletionRate           float64  `json:"completionRate"`
}

// CollaboratorAnalysis is one collaborator's entry in the team analysis.
type CollaboratorAnalysis struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	FinalScore *float64 `json:"finalScore"`
	Insight    string   `json:"insight"`
}

// TeamAnalysis is the free-text analysis snapshot for one cycle.
type TeamAnalysis struct {
	Cycle            string                 `json:"cycle" validate:"required"`
	Summary          string                 `json:"summary"`
	Strengths        []string               `json:"strengths"`
	ImprovementAreas []string               `json:"improvementAreas"`
	Collaborators    []CollaboratorAnalysis `json:"collaborators"`
}

// CyclePerformance is one point of the team historical trend.
type CyclePerformance struct {
	Cycle             string   `json:"cycle"`
	AverageScore      *float64 `json:"averageScore"`
	CollaboratorCount int      `json:"collaboratorCount"`
	FinalizedPercent  float64  `json:"finalizedPercent"`
}

// TeamHistoricalPerformance is the trend of team averages across cycles.
type TeamHistoricalPerformance struct {
	Cycles []CyclePerformance `json:"cycles"`
}

// CycleScore holds one subordinate's per-source scores for a cycle.
type CycleScore struct {
	Cycle              string   `json:"cycle"`
	SelfScore          *float64 `json:"selfScore"`
	ManagerScore       *float64 `json:"managerScore"`
	Assessment360Score *float64 `json:"assessment360Score"`
	FinalScore         *float64 `json:"finalScore"`
}

// PerformanceHistory is the score history of one subordinate across cycles.
type PerformanceHistory struct {
	SubordinateID string       `json:"subordinateId" validate:"required"`
	Name          string       `json:"name"`
	Cycles        []CycleScore `json:"cycles"`
}

// Project is one project assignment of a user.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ScoreContribution is one weighted term of the final score composition:
// Score x Weight = Contribution.
type ScoreContribution struct {
	Source       string  `json:"source"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// CacheStatus reports the state of the in-memory TTL cache.
type CacheStatus struct {
	Entries int           `json:"entries"`
	TTL     time.Duration `json:"ttl"`
}

// SnapshotRunRecord is one recorded team-overview fetch in the snapshot store.
type SnapshotRunRecord struct {
	RunID              int64
	StartTime          time.Time
	EndTime            *time.Time
	RunDurationMs      *int32
	TotalCollaborators int
	ConfigParams       *string
}

// SnapshotScoreRecord is one collaborator's scores inside a snapshot run.
type SnapshotScoreRecord struct {
	RunID                int64
	Cycle                string
	CollaboratorID       string
	Name                 string
	SelfAverage          *float64
	Assessment360Average *float64
	ManagerAverage       *float64
	FinalScore           *float64
	ScoreLabel           string
	Status               string
	RecordedAt           time.Time
}

// SnapshotStatus reports the state of the snapshot store.
type SnapshotStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TotalScores   int64
	TableSizes    map[string]int64
}
