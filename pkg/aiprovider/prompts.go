package aiprovider

import (
	"encoding/json"
	"fmt"
	"strings"

	"auditor/pkg/domain"
)

const (
	analysisSystem     = "You are a smart contract security auditor. Analyze contracts and provide detailed security findings."
	optimizationSystem = "You are a Solidity gas optimization expert. Provide actionable optimization suggestions."
)

func analysisPrompt(sourceCode string) string {
	return fmt.Sprintf(`Analyze the following Solidity smart contract for security vulnerabilities and risks.

Contract Code:
%s

Provide a JSON response with:
1. security_findings: List of findings with severity, title, description
2. risk_score: Overall risk score 0-100
3. explanation: Brief explanation of the analysis

Return ONLY valid JSON.`, sourceCode)
}

func optimizationPrompt(sourceCode string) string {
	return fmt.Sprintf(`Analyze the following Solidity contract for gas optimization opportunities.

Contract Code:
%s

Provide a JSON response with:
1. suggestions: List of optimization suggestions with area, suggestion, potential_savings
2. summary: Brief summary

Return ONLY valid JSON.`, sourceCode)
}

func deploymentSystem(network string) string {
	return fmt.Sprintf("You are a blockchain deployment validator for %s network.", network)
}

func deploymentPrompt(sourceCode, network string) string {
	return fmt.Sprintf(`Validate this Solidity contract for deployment on %s network.

Contract Code:
%s

Provide a JSON response with:
1. is_valid: boolean
2. warnings: list of warnings
3. estimated_gas: rough gas estimate for deployment
4. notes: deployment notes

Return ONLY valid JSON.`, network, sourceCode)
}

// AnalysisReport is the parsed output of a security analysis.
type AnalysisReport struct {
	Findings    []domain.Finding `json:"security_findings"`
	RiskScore   int              `json:"risk_score"`
	Explanation string           `json:"explanation"`
}

// OptimizationReport is the parsed output of a gas optimization.
type OptimizationReport struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	Summary     string              `json:"summary"`
}

// DeploymentReport is the parsed output of a deployment validation.
type DeploymentReport struct {
	IsValid      bool     `json:"is_valid"`
	Warnings     []string `json:"warnings"`
	EstimatedGas *int64   `json:"estimated_gas"`
	Notes        string   `json:"notes"`
}

// stripFences removes a surrounding markdown code fence that models sometimes
// wrap JSON responses in, despite being asked not to.
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

func parseReport(content string, out any) error {
	if err := json.Unmarshal([]byte(stripFences(content)), out); err != nil {
		return fmt.Errorf("could not parse provider response as JSON: %w", err)
	}

	return nil
}
