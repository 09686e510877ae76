package intent

import (
	"encoding/json"
	"fmt"
	"strings"

	"auditor/pkg/domain"
)

func verificationPrompt(sourceCode, documentedIntent string) string {
	if documentedIntent == "" {
		documentedIntent = "No documentation provided"
	}

	return fmt.Sprintf(`Analyze this smart contract for intent verification:

CONTRACT CODE:
%s

DOCUMENTED INTENT/README:
%s

ANALYSIS REQUIRED:

1. INTENT vs BEHAVIOR ANALYSIS:
   - Compare the documented intent/README/comments with actual code behavior
   - Identify any mismatches between what's claimed and what's implemented
   - Rate match score 0-100

2. HIDDEN LOGIC DETECTION:
   - Identify dead code (unreachable code paths)
   - Find delayed execution logic (time-locks, later activation)
   - Detect conditionally activated logic (admin-only features not in docs)
   - Rate severity for each finding

3. MALICIOUS PATTERN FINGERPRINTING:
   - Look for rug-pull indicators (liquidity locks, ownership transfers, token burns)
   - Detect honeypot patterns (buy taxes vs sell taxes, unfair buy limits)
   - Identify common exploit patterns
   - Rate overall malicious risk 0-100

Provide structured analysis with specific line references and severity levels.

Format as JSON with keys: actual_behavior, intent_match_score, mismatches,
dead_code, delayed_execution, conditional_activation, rug_pull_indicators,
honeypot_indicators, malicious_risk_score, overall_trust_score, recommendation`,
		sourceCode, documentedIntent)
}

// verificationReport is the expected provider response. Parsing is lenient;
// on failure the raw text is kept as the recommendation.
type verificationReport struct {
	ActualBehavior        string                      `json:"actual_behavior"`
	IntentMatchScore      int                         `json:"intent_match_score"`
	Mismatches            []string                    `json:"mismatches"`
	DeadCode              []domain.HiddenLogicFinding `json:"dead_code"`
	DelayedExecution      []domain.HiddenLogicFinding `json:"delayed_execution"`
	ConditionalActivation []domain.HiddenLogicFinding `json:"conditional_activation"`
	RugPullIndicators     []domain.PatternIndicator   `json:"rug_pull_indicators"`
	HoneypotIndicators    []domain.PatternIndicator   `json:"honeypot_indicators"`
	MaliciousRiskScore    int                         `json:"malicious_risk_score"`
	OverallTrustScore     int                         `json:"overall_trust_score"`
	Recommendation        string                      `json:"recommendation"`
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

func parseVerificationReport(content string) (verificationReport, bool) {
	var report verificationReport
	if err := json.Unmarshal([]byte(stripFences(content)), &report); err != nil {
		return verificationReport{}, false
	}

	return report, true
}
