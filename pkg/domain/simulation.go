package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationID uniquely identifies a simulation result.
type SimulationID uuid.UUID

// SimulationType classifies a simulation run.
type SimulationType string

const (
	// SimulationTypeTransaction simulates a single transaction with calldata.
	SimulationTypeTransaction SimulationType = "transaction"
	// SimulationTypeScenario analyzes a what-if scenario.
	SimulationTypeScenario SimulationType = "scenario"
	// SimulationTypeFailurePath explores worst-case execution paths.
	SimulationTypeFailurePath SimulationType = "failure_path"
)

// SimulationStatus is the outcome state of a simulation.
type SimulationStatus string

const (
	SimulationStatusSuccess  SimulationStatus = "success"
	SimulationStatusReverted SimulationStatus = "reverted"
	SimulationStatusError    SimulationStatus = "error"
	SimulationStatusWarning  SimulationStatus = "warning"
)

// StateAssumption fixes the pre-state of an address for a simulation.
type StateAssumption struct {
	Address string `json:"address"`
	Balance string `json:"balance,omitempty"`
	Nonce   uint64 `json:"nonce,omitempty"`
}

// SimulationFinding is a single observation produced during simulation.
type SimulationFinding struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// SimulationResult is the persisted outcome of a simulation request.
type SimulationResult struct {
	ID         SimulationID `json:"id"`
	ContractID *ContractID  `json:"contractId,omitempty"`
	UserID     UserID       `json:"userId"`
	RequestID  RequestID    `json:"requestId"`

	Type             SimulationType    `json:"simulationType"`
	Calldata         string            `json:"calldata,omitempty"`
	StateAssumptions []StateAssumption `json:"stateAssumptions,omitempty"`
	Status           SimulationStatus  `json:"status"`
	// GasUsed is the estimated gas consumption, nil when the provider gave none.
	GasUsed        *int64              `json:"gasUsed,omitempty"`
	ExecutionTrace map[string]any      `json:"executionTrace,omitempty"`
	Findings       []SimulationFinding `json:"findings"`
	AIInsights     string              `json:"aiInsights,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ScenarioID uniquely identifies a what-if scenario row.
type ScenarioID uuid.UUID

// ScenarioOutcome describes how a what-if scenario resolved.
type ScenarioOutcome string

const (
	ScenarioOutcomeSuccess    ScenarioOutcome = "success"
	ScenarioOutcomeReverted   ScenarioOutcome = "reverted"
	ScenarioOutcomeUnexpected ScenarioOutcome = "unexpected"
)

// Scenario is one analyzed what-if case linked to a simulation.
type Scenario struct {
	ID           ScenarioID   `json:"id"`
	SimulationID SimulationID `json:"simulationId"`

	Name             string          `json:"scenarioName"`
	Description      string          `json:"description"`
	InitialState     map[string]any  `json:"initialState,omitempty"`
	ModifiedState    map[string]any  `json:"modifiedState,omitempty"`
	ExpectedBehavior string          `json:"expectedBehavior"`
	ActualBehavior   string          `json:"actualBehavior,omitempty"`
	Outcome          ScenarioOutcome `json:"outcome"`
	AIAnalysis       string          `json:"aiAnalysis,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FailurePathID uniquely identifies a failure path row.
type FailurePathID uuid.UUID

// FailurePath is one worst-case execution path identified for a contract.
type FailurePath struct {
	ID           FailurePathID `json:"id"`
	SimulationID *SimulationID `json:"simulationId,omitempty"`
	ContractID   *ContractID   `json:"contractId,omitempty"`

	Description       string   `json:"pathDescription"`
	Severity          Severity `json:"severity"`
	TriggerConditions []string `json:"triggerConditions"`
	Consequences      []string `json:"consequences"`
	MitigationSteps   []string `json:"mitigationSteps"`
	AIReasoning       string   `json:"aiReasoning,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
