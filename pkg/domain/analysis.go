package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades a finding or failure path.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "informational"
)

// Finding is a single security issue reported by a provider.
type Finding struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Suggestion is a single gas optimization opportunity.
type Suggestion struct {
	Area             string `json:"area"`
	Suggestion       string `json:"suggestion"`
	PotentialSavings string `json:"potentialSavings,omitempty"`
}

// AnalysisType classifies a stored analysis result.
type AnalysisType string

const (
	// AnalysisTypeSecurity is a vulnerability analysis.
	AnalysisTypeSecurity AnalysisType = "security"
	// AnalysisTypeOptimization is a gas optimization report.
	AnalysisTypeOptimization AnalysisType = "optimization"
	// AnalysisTypeDeployment is a deployment validation report.
	AnalysisTypeDeployment AnalysisType = "deployment"
)

// AnalysisResultID uniquely identifies an analysis result row.
type AnalysisResultID uuid.UUID

// AnalysisResult is the persisted outcome of an analyze, optimize or deploy
// request. Findings and suggestions are provider output normalized into
// structured form; RawResponse keeps the full provider payload for audit.
type AnalysisResult struct {
	ID         AnalysisResultID `json:"id"`
	RequestID  RequestID        `json:"requestId"`
	ContractID *ContractID      `json:"contractId,omitempty"`

	Type AnalysisType `json:"analysisType"`
	// RiskScore is 0-100 for security analyses, nil otherwise.
	RiskScore   *int         `json:"riskScore,omitempty"`
	Findings    []Finding    `json:"findings"`
	Suggestions []Suggestion `json:"suggestions"`
	RawResponse string       `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
