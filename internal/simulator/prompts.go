package simulator

import (
	"encoding/json"
	"fmt"
	"strings"

	"auditor/pkg/domain"
)

func transactionPrompt(sourceCode string, params TransactionParams) string {
	from := params.FromAddress
	if from == "" {
		from = "0x..."
	}

	var state strings.Builder
	for _, s := range params.StateAssumptions {
		fmt.Fprintf(&state, "Address %s: balance=%s, nonce=%d\n", s.Address, s.Balance, s.Nonce)
	}
	stateText := strings.TrimSpace(state.String())
	if stateText == "" {
		stateText = "Default state"
	}

	return fmt.Sprintf(`Analyze this smart contract transaction simulation:

Contract Code:
%s

Transaction Details:
- From: %s
- Value: %s
- Calldata: %s

State Assumptions:
%s

Please provide:
1. Will this transaction succeed or revert? Why?
2. How much gas will it consume (estimate)?
3. What state changes will occur?
4. Are there any security concerns or warnings?
5. Execution trace if successful

Format response as JSON with keys: status, gas_estimate, state_changes, findings, trace`,
		sourceCode, from, params.Value, params.Calldata, stateText)
}

func whatIfPrompt(sourceCode string, params WhatIfParams) string {
	return fmt.Sprintf(`Analyze this smart contract What-If scenario:

Contract Code:
%s

Scenario: %s
Function to test: %s

Initial State:
%s

Modified State:
%s

Analyze:
1. What is the expected behavior in the initial state?
2. What is the actual behavior with the modified state?
3. Are there any unexpected outcomes or edge cases?
4. What security implications does this scenario reveal?
5. Provide recommendations

Format as JSON with keys: expected_behavior, actual_behavior, outcomes, security_impact, recommendations`,
		sourceCode,
		params.ScenarioDescription,
		params.FunctionToTest,
		marshalState(params.InitialState),
		marshalState(params.ModifiedState))
}

func failurePathPrompt(sourceCode string) string {
	return fmt.Sprintf(`Analyze potential failure paths and worst-case scenarios in this smart contract:

Contract Code:
%s

For each potential failure path, identify:
1. Path description (how could this fail?)
2. Severity (critical/high/medium/low)
3. Trigger conditions (what causes this failure?)
4. Consequences (what are the impacts?)
5. Mitigation steps (how to prevent/fix?)

Focus on:
- Reentrancy attacks
- Integer overflow/underflow
- Access control violations
- State inconsistencies
- Resource exhaustion
- External call failures

Format as JSON with array of paths, each containing: description, severity, triggers, consequences, mitigations, reasoning`,
		sourceCode)
}

func marshalState(state map[string]any) string {
	if len(state) == 0 {
		return "{}"
	}
	b, err := json.Marshal(state)
	if err != nil {
		return "{}"
	}

	return string(b)
}

// transactionReport is the expected provider response for a transaction
// simulation. Providers do not always comply; parsing is lenient and falls
// back to the raw text.
type transactionReport struct {
	Status       string                     `json:"status"`
	GasEstimate  *int64                     `json:"gas_estimate"`
	StateChanges json.RawMessage            `json:"state_changes"`
	Findings     []domain.SimulationFinding `json:"findings"`
	Trace        map[string]any             `json:"trace"`
}

// whatIfReport is the expected provider response for a what-if scenario.
type whatIfReport struct {
	ExpectedBehavior string   `json:"expected_behavior"`
	ActualBehavior   string   `json:"actual_behavior"`
	Outcomes         []string `json:"outcomes"`
	SecurityImpact   string   `json:"security_impact"`
	Recommendations  []string `json:"recommendations"`
}

// failureReport is the expected provider response for a failure path
// exploration. Providers sometimes return the array bare and sometimes under
// a "paths" key.
type failureReport struct {
	Paths []failurePathEntry `json:"paths"`
}

type failurePathEntry struct {
	Description  string   `json:"description"`
	Severity     string   `json:"severity"`
	Triggers     []string `json:"triggers"`
	Consequences []string `json:"consequences"`
	Mitigations  []string `json:"mitigations"`
	Reasoning    string   `json:"reasoning"`
}

// stripFences removes a surrounding markdown code fence that models sometimes
// wrap JSON responses in.
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

func parseTransactionReport(content string) (transactionReport, bool) {
	var report transactionReport
	if err := json.Unmarshal([]byte(stripFences(content)), &report); err != nil {
		return transactionReport{}, false
	}

	return report, true
}

func parseWhatIfReport(content string) (whatIfReport, bool) {
	var report whatIfReport
	if err := json.Unmarshal([]byte(stripFences(content)), &report); err != nil {
		return whatIfReport{}, false
	}

	return report, true
}

func parseFailureReport(content string) ([]failurePathEntry, bool) {
	content = stripFences(content)

	var bare []failurePathEntry
	if err := json.Unmarshal([]byte(content), &bare); err == nil {
		return bare, true
	}

	var wrapped failureReport
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil && len(wrapped.Paths) > 0 {
		return wrapped.Paths, true
	}

	return nil, false
}

// simulationStatus maps a provider-reported status onto the known set.
func simulationStatus(s string) domain.SimulationStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success", "succeed", "succeeds":
		return domain.SimulationStatusSuccess
	case "revert", "reverted", "reverts", "fail", "failed":
		return domain.SimulationStatusReverted
	case "warning":
		return domain.SimulationStatusWarning
	case "error":
		return domain.SimulationStatusError
	}

	return domain.SimulationStatusSuccess
}

// findingSeverity maps a provider-reported severity onto the known set.
func findingSeverity(s string) domain.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return domain.SeverityCritical
	case "high":
		return domain.SeverityHigh
	case "medium":
		return domain.SeverityMedium
	case "low":
		return domain.SeverityLow
	case "info", "informational":
		return domain.SeverityInfo
	}

	return domain.SeverityMedium
}
