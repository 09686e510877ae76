package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"auditor/pkg/domain"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func marshalJSON(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal json column: %w", err)
	}

	return b, nil
}

func unmarshalJSON(b json.RawMessage, out any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not unmarshal json column: %w", err)
	}

	return nil
}

type PgContract struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Name       string         `db:"name"`
	Address    sql.NullString `db:"address"`
	SourceCode string         `db:"source_code"`
	Network    string         `db:"network"`
	Language   string         `db:"language"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgContract) ToDomain() (*domain.Contract, error) {
	return &domain.Contract{
		ID:         domain.ContractID(p.ID),
		UserID:     domain.UserID(p.UserID),
		Name:       p.Name,
		Address:    p.Address.String,
		SourceCode: p.SourceCode,
		Network:    p.Network,
		Language:   p.Language,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}, nil
}

func (p *PgContract) FromDomain(contract domain.Contract) error {
	*p = PgContract{
		ID:         uuid.UUID(contract.ID),
		UserID:     uuid.UUID(contract.UserID),
		Name:       contract.Name,
		Address:    nullString(contract.Address),
		SourceCode: contract.SourceCode,
		Network:    contract.Network,
		Language:   contract.Language,
		CreatedAt:  contract.CreatedAt,
		UpdatedAt:  nullTime(contract.UpdatedAt),
		DeletedAt:  nullTime(contract.DeletedAt),
	}

	return nil
}

type PgMonitoring struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	ContractID uuid.UUID `db:"contract_id"`

	LastChecked sql.NullTime    `db:"last_checked"`
	Status      string          `db:"status"`
	EventsCount int             `db:"events_count"`
	Metadata    json.RawMessage `db:"metadata"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgMonitoring) ToDomain() (*domain.Monitoring, error) {
	var metadata map[string]any
	if err := unmarshalJSON(p.Metadata, &metadata); err != nil {
		return nil, err
	}

	return &domain.Monitoring{
		ID:          domain.MonitoringID(p.ID),
		ContractID:  domain.ContractID(p.ContractID),
		LastChecked: p.LastChecked.Time,
		Status:      domain.MonitoringStatus(p.Status),
		EventsCount: p.EventsCount,
		Metadata:    metadata,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgMonitoring) FromDomain(monitoring domain.Monitoring) error {
	metadata, err := marshalJSON(monitoring.Metadata)
	if err != nil {
		return err
	}

	*p = PgMonitoring{
		ID:          uuid.UUID(monitoring.ID),
		ContractID:  uuid.UUID(monitoring.ContractID),
		LastChecked: nullTime(monitoring.LastChecked),
		Status:      string(monitoring.Status),
		EventsCount: monitoring.EventsCount,
		Metadata:    metadata,
		CreatedAt:   monitoring.CreatedAt,
	}

	return nil
}

type PgRequest struct {
	ID         uuid.UUID     `db:"id" goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	ContractID uuid.NullUUID `db:"contract_id"`

	Provider        string        `db:"provider_used"`
	RequestType     string        `db:"request_type"`
	ExecutionTimeMS float64       `db:"execution_time_ms"`
	TokensUsed      sql.NullInt64 `db:"tokens_used"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgRequest) ToDomain() (*domain.Request, error) {
	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	return &domain.Request{
		ID:              domain.RequestID(p.ID),
		UserID:          domain.UserID(p.UserID),
		ContractID:      contractID,
		Provider:        domain.Provider(p.Provider),
		Type:            domain.RequestType(p.RequestType),
		ExecutionTimeMS: p.ExecutionTimeMS,
		TokensUsed:      int(p.TokensUsed.Int64),
		CreatedAt:       p.CreatedAt,
	}, nil
}

func (p *PgRequest) FromDomain(request domain.Request) error {
	*p = PgRequest{
		ID:              uuid.UUID(request.ID),
		UserID:          uuid.UUID(request.UserID),
		ContractID:      nullUUID((*uuid.UUID)(request.ContractID)),
		Provider:        string(request.Provider),
		RequestType:     string(request.Type),
		ExecutionTimeMS: request.ExecutionTimeMS,
		TokensUsed:      sql.NullInt64{Int64: int64(request.TokensUsed), Valid: request.TokensUsed > 0},
		CreatedAt:       request.CreatedAt,
	}

	return nil
}

type PgAnalysisResult struct {
	ID         uuid.UUID     `db:"id" goqu:"skipinsert"`
	RequestID  uuid.UUID     `db:"request_id"`
	ContractID uuid.NullUUID `db:"contract_id"`

	AnalysisType string          `db:"analysis_type"`
	RiskScore    sql.NullInt64   `db:"risk_score"`
	Findings     json.RawMessage `db:"findings"`
	Suggestions  json.RawMessage `db:"suggestions"`
	RawResponse  string          `db:"raw_response"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAnalysisResult) ToDomain() (*domain.AnalysisResult, error) {
	var findings []domain.Finding
	if err := unmarshalJSON(p.Findings, &findings); err != nil {
		return nil, err
	}

	var suggestions []domain.Suggestion
	if err := unmarshalJSON(p.Suggestions, &suggestions); err != nil {
		return nil, err
	}

	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	var riskScore *int
	if p.RiskScore.Valid {
		score := int(p.RiskScore.Int64)
		riskScore = &score
	}

	return &domain.AnalysisResult{
		ID:          domain.AnalysisResultID(p.ID),
		RequestID:   domain.RequestID(p.RequestID),
		ContractID:  contractID,
		Type:        domain.AnalysisType(p.AnalysisType),
		RiskScore:   riskScore,
		Findings:    findings,
		Suggestions: suggestions,
		RawResponse: p.RawResponse,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgAnalysisResult) FromDomain(result domain.AnalysisResult) error {
	findings, err := marshalJSON(result.Findings)
	if err != nil {
		return err
	}

	suggestions, err := marshalJSON(result.Suggestions)
	if err != nil {
		return err
	}

	var riskScore sql.NullInt64
	if result.RiskScore != nil {
		riskScore = sql.NullInt64{Int64: int64(*result.RiskScore), Valid: true}
	}

	*p = PgAnalysisResult{
		ID:           uuid.UUID(result.ID),
		RequestID:    uuid.UUID(result.RequestID),
		ContractID:   nullUUID((*uuid.UUID)(result.ContractID)),
		AnalysisType: string(result.Type),
		RiskScore:    riskScore,
		Findings:     findings,
		Suggestions:  suggestions,
		RawResponse:  result.RawResponse,
		CreatedAt:    result.CreatedAt,
	}

	return nil
}

type PgSimulationResult struct {
	ID         uuid.UUID     `db:"id" goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	ContractID uuid.NullUUID `db:"contract_id"`
	RequestID  uuid.UUID     `db:"request_id"`

	SimulationType   string          `db:"simulation_type"`
	Calldata         sql.NullString  `db:"calldata"`
	StateAssumptions json.RawMessage `db:"state_assumptions"`
	ResultStatus     string          `db:"result_status"`
	GasUsed          sql.NullInt64   `db:"gas_used"`
	ExecutionTrace   json.RawMessage `db:"execution_trace"`
	Findings         json.RawMessage `db:"findings"`
	AIInsights       string          `db:"ai_insights"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSimulationResult) ToDomain() (*domain.SimulationResult, error) {
	var assumptions []domain.StateAssumption
	if err := unmarshalJSON(p.StateAssumptions, &assumptions); err != nil {
		return nil, err
	}

	var trace map[string]any
	if err := unmarshalJSON(p.ExecutionTrace, &trace); err != nil {
		return nil, err
	}

	var findings []domain.SimulationFinding
	if err := unmarshalJSON(p.Findings, &findings); err != nil {
		return nil, err
	}

	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	var gasUsed *int64
	if p.GasUsed.Valid {
		gas := p.GasUsed.Int64
		gasUsed = &gas
	}

	return &domain.SimulationResult{
		ID:               domain.SimulationID(p.ID),
		UserID:           domain.UserID(p.UserID),
		ContractID:       contractID,
		RequestID:        domain.RequestID(p.RequestID),
		Type:             domain.SimulationType(p.SimulationType),
		Calldata:         p.Calldata.String,
		StateAssumptions: assumptions,
		Status:           domain.SimulationStatus(p.ResultStatus),
		GasUsed:          gasUsed,
		ExecutionTrace:   trace,
		Findings:         findings,
		AIInsights:       p.AIInsights,
		CreatedAt:        p.CreatedAt,
	}, nil
}

func (p *PgSimulationResult) FromDomain(result domain.SimulationResult) error {
	assumptions, err := marshalJSON(result.StateAssumptions)
	if err != nil {
		return err
	}

	trace, err := marshalJSON(result.ExecutionTrace)
	if err != nil {
		return err
	}

	findings, err := marshalJSON(result.Findings)
	if err != nil {
		return err
	}

	var gasUsed sql.NullInt64
	if result.GasUsed != nil {
		gasUsed = sql.NullInt64{Int64: *result.GasUsed, Valid: true}
	}

	*p = PgSimulationResult{
		ID:               uuid.UUID(result.ID),
		UserID:           uuid.UUID(result.UserID),
		ContractID:       nullUUID((*uuid.UUID)(result.ContractID)),
		RequestID:        uuid.UUID(result.RequestID),
		SimulationType:   string(result.Type),
		Calldata:         nullString(result.Calldata),
		StateAssumptions: assumptions,
		ResultStatus:     string(result.Status),
		GasUsed:          gasUsed,
		ExecutionTrace:   trace,
		Findings:         findings,
		AIInsights:       result.AIInsights,
		CreatedAt:        result.CreatedAt,
	}

	return nil
}

type PgScenario struct {
	ID           uuid.UUID `db:"id" goqu:"skipinsert"`
	SimulationID uuid.UUID `db:"simulation_id"`

	ScenarioName     string          `db:"scenario_name"`
	Description      string          `db:"description"`
	InitialState     json.RawMessage `db:"initial_state"`
	ModifiedState    json.RawMessage `db:"modified_state"`
	ExpectedBehavior string          `db:"expected_behavior"`
	ActualBehavior   string          `db:"actual_behavior"`
	Outcome          string          `db:"outcome"`
	AIAnalysis       string          `db:"ai_analysis"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScenario) ToDomain() (*domain.Scenario, error) {
	var initial, modified map[string]any
	if err := unmarshalJSON(p.InitialState, &initial); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.ModifiedState, &modified); err != nil {
		return nil, err
	}

	return &domain.Scenario{
		ID:               domain.ScenarioID(p.ID),
		SimulationID:     domain.SimulationID(p.SimulationID),
		Name:             p.ScenarioName,
		Description:      p.Description,
		InitialState:     initial,
		ModifiedState:    modified,
		ExpectedBehavior: p.ExpectedBehavior,
		ActualBehavior:   p.ActualBehavior,
		Outcome:          domain.ScenarioOutcome(p.Outcome),
		AIAnalysis:       p.AIAnalysis,
		CreatedAt:        p.CreatedAt,
	}, nil
}

func (p *PgScenario) FromDomain(scenario domain.Scenario) error {
	initial, err := marshalJSON(scenario.InitialState)
	if err != nil {
		return err
	}

	modified, err := marshalJSON(scenario.ModifiedState)
	if err != nil {
		return err
	}

	*p = PgScenario{
		ID:               uuid.UUID(scenario.ID),
		SimulationID:     uuid.UUID(scenario.SimulationID),
		ScenarioName:     scenario.Name,
		Description:      scenario.Description,
		InitialState:     initial,
		ModifiedState:    modified,
		ExpectedBehavior: scenario.ExpectedBehavior,
		ActualBehavior:   scenario.ActualBehavior,
		Outcome:          string(scenario.Outcome),
		AIAnalysis:       scenario.AIAnalysis,
		CreatedAt:        scenario.CreatedAt,
	}

	return nil
}

type PgFailurePath struct {
	ID           uuid.UUID     `db:"id" goqu:"skipinsert"`
	SimulationID uuid.NullUUID `db:"simulation_id"`
	ContractID   uuid.NullUUID `db:"contract_id"`

	PathDescription   string          `db:"path_description"`
	Severity          string          `db:"severity"`
	TriggerConditions json.RawMessage `db:"trigger_conditions"`
	Consequences      json.RawMessage `db:"consequences"`
	MitigationSteps   json.RawMessage `db:"mitigation_steps"`
	AIReasoning       string          `db:"ai_reasoning"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFailurePath) ToDomain() (*domain.FailurePath, error) {
	var triggers, consequences, mitigations []string
	if err := unmarshalJSON(p.TriggerConditions, &triggers); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.Consequences, &consequences); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.MitigationSteps, &mitigations); err != nil {
		return nil, err
	}

	var simulationID *domain.SimulationID
	if p.SimulationID.Valid {
		id := domain.SimulationID(p.SimulationID.UUID)
		simulationID = &id
	}

	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	return &domain.FailurePath{
		ID:                domain.FailurePathID(p.ID),
		SimulationID:      simulationID,
		ContractID:        contractID,
		Description:       p.PathDescription,
		Severity:          domain.Severity(p.Severity),
		TriggerConditions: triggers,
		Consequences:      consequences,
		MitigationSteps:   mitigations,
		AIReasoning:       p.AIReasoning,
		CreatedAt:         p.CreatedAt,
	}, nil
}

func (p *PgFailurePath) FromDomain(path domain.FailurePath) error {
	triggers, err := marshalJSON(path.TriggerConditions)
	if err != nil {
		return err
	}

	consequences, err := marshalJSON(path.Consequences)
	if err != nil {
		return err
	}

	mitigations, err := marshalJSON(path.MitigationSteps)
	if err != nil {
		return err
	}

	*p = PgFailurePath{
		ID:                uuid.UUID(path.ID),
		SimulationID:      nullUUID((*uuid.UUID)(path.SimulationID)),
		ContractID:        nullUUID((*uuid.UUID)(path.ContractID)),
		PathDescription:   path.Description,
		Severity:          string(path.Severity),
		TriggerConditions: triggers,
		Consequences:      consequences,
		MitigationSteps:   mitigations,
		AIReasoning:       path.AIReasoning,
		CreatedAt:         path.CreatedAt,
	}

	return nil
}

type PgIntentVerification struct {
	ID         uuid.UUID     `db:"id" goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	ContractID uuid.NullUUID `db:"contract_id"`
	RequestID  uuid.UUID     `db:"request_id"`

	DocumentedIntent string          `db:"documented_intent"`
	ActualBehavior   string          `db:"actual_behavior"`
	IntentMatchScore int             `db:"intent_match_score"`
	IntentFindings   json.RawMessage `db:"intent_findings"`

	HiddenLogicDetected    bool            `db:"hidden_logic_detected"`
	DeadCodeAreas          json.RawMessage `db:"dead_code_areas"`
	DelayedExecutionLogic  json.RawMessage `db:"delayed_execution_logic"`
	ConditionalActivation  json.RawMessage `db:"conditional_activation"`
	MaliciousPatternsFound bool            `db:"malicious_patterns_found"`
	RugPullIndicators      json.RawMessage `db:"rug_pull_indicators"`
	HoneypotIndicators     json.RawMessage `db:"honeypot_indicators"`
	MaliciousRiskScore     int             `db:"malicious_risk_score"`
	OverallTrustScore      int             `db:"overall_trust_score"`
	AIRecommendation       string          `db:"ai_recommendation"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgIntentVerification) ToDomain() (*domain.IntentVerification, error) {
	var intentFindings []string
	if err := unmarshalJSON(p.IntentFindings, &intentFindings); err != nil {
		return nil, err
	}

	var deadCode, delayed, conditional []domain.HiddenLogicFinding
	if err := unmarshalJSON(p.DeadCodeAreas, &deadCode); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.DelayedExecutionLogic, &delayed); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.ConditionalActivation, &conditional); err != nil {
		return nil, err
	}

	var rugPull, honeypot []domain.PatternIndicator
	if err := unmarshalJSON(p.RugPullIndicators, &rugPull); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.HoneypotIndicators, &honeypot); err != nil {
		return nil, err
	}

	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	return &domain.IntentVerification{
		ID:                    domain.VerificationID(p.ID),
		UserID:                domain.UserID(p.UserID),
		ContractID:            contractID,
		RequestID:             domain.RequestID(p.RequestID),
		DocumentedIntent:      p.DocumentedIntent,
		ActualBehavior:        p.ActualBehavior,
		IntentMatchScore:      p.IntentMatchScore,
		IntentFindings:        intentFindings,
		HiddenLogicDetected:   p.HiddenLogicDetected,
		DeadCodeAreas:         deadCode,
		DelayedExecutionLogic: delayed,
		ConditionalActivation: conditional,
		MaliciousPatternsFound: p.MaliciousPatternsFound,
		RugPullIndicators:      rugPull,
		HoneypotIndicators:     honeypot,
		MaliciousRiskScore:     p.MaliciousRiskScore,
		OverallTrustScore:      p.OverallTrustScore,
		AIRecommendation:       p.AIRecommendation,
		CreatedAt:              p.CreatedAt,
	}, nil
}

func (p *PgIntentVerification) FromDomain(v domain.IntentVerification) error {
	intentFindings, err := marshalJSON(v.IntentFindings)
	if err != nil {
		return err
	}

	deadCode, err := marshalJSON(v.DeadCodeAreas)
	if err != nil {
		return err
	}

	delayed, err := marshalJSON(v.DelayedExecutionLogic)
	if err != nil {
		return err
	}

	conditional, err := marshalJSON(v.ConditionalActivation)
	if err != nil {
		return err
	}

	rugPull, err := marshalJSON(v.RugPullIndicators)
	if err != nil {
		return err
	}

	honeypot, err := marshalJSON(v.HoneypotIndicators)
	if err != nil {
		return err
	}

	*p = PgIntentVerification{
		ID:                     uuid.UUID(v.ID),
		UserID:                 uuid.UUID(v.UserID),
		ContractID:             nullUUID((*uuid.UUID)(v.ContractID)),
		RequestID:              uuid.UUID(v.RequestID),
		DocumentedIntent:       v.DocumentedIntent,
		ActualBehavior:         v.ActualBehavior,
		IntentMatchScore:       v.IntentMatchScore,
		IntentFindings:         intentFindings,
		HiddenLogicDetected:    v.HiddenLogicDetected,
		DeadCodeAreas:          deadCode,
		DelayedExecutionLogic:  delayed,
		ConditionalActivation:  conditional,
		MaliciousPatternsFound: v.MaliciousPatternsFound,
		RugPullIndicators:      rugPull,
		HoneypotIndicators:     honeypot,
		MaliciousRiskScore:     v.MaliciousRiskScore,
		OverallTrustScore:      v.OverallTrustScore,
		AIRecommendation:       v.AIRecommendation,
		CreatedAt:              v.CreatedAt,
	}

	return nil
}

type PgPayment struct {
	ID         uuid.UUID     `db:"id" goqu:"skipinsert"`
	UserID     uuid.UUID     `db:"user_id"`
	ContractID uuid.NullUUID `db:"contract_id"`

	TransactionHash sql.NullString  `db:"transaction_hash"`
	Network         string          `db:"network"`
	AmountLamports  int64           `db:"amount_lamports"`
	AmountUSD       sql.NullFloat64 `db:"amount_usd"`
	PayerAddress    sql.NullString  `db:"payer_address"`
	ReceiverAddress string          `db:"receiver_address"`

	PaymentStatus    string          `db:"payment_status"`
	Tier             string          `db:"tier"`
	AccessLevel      int             `db:"access_level"`
	FeaturesUnlocked json.RawMessage `db:"features_unlocked"`

	CreatedAt   time.Time    `db:"created_at" goqu:"skipinsert"`
	ConfirmedAt sql.NullTime `db:"confirmed_at"`
	ExpiresAt   sql.NullTime `db:"expires_at"`
}

func (p *PgPayment) ToDomain() (*domain.Payment, error) {
	var features []domain.Feature
	if err := unmarshalJSON(p.FeaturesUnlocked, &features); err != nil {
		return nil, err
	}

	var contractID *domain.ContractID
	if p.ContractID.Valid {
		id := domain.ContractID(p.ContractID.UUID)
		contractID = &id
	}

	return &domain.Payment{
		ID:               domain.PaymentID(p.ID),
		UserID:           domain.UserID(p.UserID),
		ContractID:       contractID,
		TransactionHash:  p.TransactionHash.String,
		Network:          p.Network,
		AmountLamports:   p.AmountLamports,
		AmountUSD:        p.AmountUSD.Float64,
		PayerAddress:     p.PayerAddress.String,
		ReceiverAddress:  p.ReceiverAddress,
		Status:           domain.PaymentStatus(p.PaymentStatus),
		Tier:             domain.Tier(p.Tier),
		AccessLevel:      p.AccessLevel,
		FeaturesUnlocked: features,
		CreatedAt:        p.CreatedAt,
		ConfirmedAt:      p.ConfirmedAt.Time,
		ExpiresAt:        p.ExpiresAt.Time,
	}, nil
}

func (p *PgPayment) FromDomain(payment domain.Payment) error {
	features, err := marshalJSON(payment.FeaturesUnlocked)
	if err != nil {
		return err
	}

	*p = PgPayment{
		ID:               uuid.UUID(payment.ID),
		UserID:           uuid.UUID(payment.UserID),
		ContractID:       nullUUID((*uuid.UUID)(payment.ContractID)),
		TransactionHash:  nullString(payment.TransactionHash),
		Network:          payment.Network,
		AmountLamports:   payment.AmountLamports,
		AmountUSD:        sql.NullFloat64{Float64: payment.AmountUSD, Valid: payment.AmountUSD > 0},
		PayerAddress:     nullString(payment.PayerAddress),
		ReceiverAddress:  payment.ReceiverAddress,
		PaymentStatus:    string(payment.Status),
		Tier:             string(payment.Tier),
		AccessLevel:      payment.AccessLevel,
		FeaturesUnlocked: features,
		CreatedAt:        payment.CreatedAt,
		ConfirmedAt:      nullTime(payment.ConfirmedAt),
		ExpiresAt:        nullTime(payment.ExpiresAt),
	}

	return nil
}

type PgSubscription struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Tier                 string          `db:"tier"`
	RecurringPaymentHash sql.NullString  `db:"recurring_payment_hash"`
	Network              string          `db:"network"`
	MonthlyPriceLamports int64           `db:"monthly_price_lamports"`
	MonthlyPriceUSD      sql.NullFloat64 `db:"monthly_price_usd"`

	Status          string       `db:"status"`
	NextBillingDate sql.NullTime `db:"next_billing_date"`
	AutoRenew       bool         `db:"auto_renew"`

	Features         json.RawMessage `db:"features"`
	APICallsLimit    int             `db:"api_calls_limit"`
	MonthlyCallsUsed int             `db:"monthly_calls_used"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSubscription) ToDomain() (*domain.Subscription, error) {
	var features []domain.Feature
	if err := unmarshalJSON(p.Features, &features); err != nil {
		return nil, err
	}

	return &domain.Subscription{
		ID:                   domain.SubscriptionID(p.ID),
		UserID:               domain.UserID(p.UserID),
		Tier:                 domain.Tier(p.Tier),
		RecurringPaymentHash: p.RecurringPaymentHash.String,
		Network:              p.Network,
		MonthlyPriceLamports: p.MonthlyPriceLamports,
		MonthlyPriceUSD:      p.MonthlyPriceUSD.Float64,
		Status:               domain.SubscriptionStatus(p.Status),
		NextBillingDate:      p.NextBillingDate.Time,
		AutoRenew:            p.AutoRenew,
		Features:             features,
		APICallsLimit:        p.APICallsLimit,
		MonthlyCallsUsed:     p.MonthlyCallsUsed,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}, nil
}

func (p *PgSubscription) FromDomain(subscription domain.Subscription) error {
	features, err := marshalJSON(subscription.Features)
	if err != nil {
		return err
	}

	*p = PgSubscription{
		ID:                   uuid.UUID(subscription.ID),
		UserID:               uuid.UUID(subscription.UserID),
		Tier:                 string(subscription.Tier),
		RecurringPaymentHash: nullString(subscription.RecurringPaymentHash),
		Network:              subscription.Network,
		MonthlyPriceLamports: subscription.MonthlyPriceLamports,
		MonthlyPriceUSD: sql.NullFloat64{
			Float64: subscription.MonthlyPriceUSD,
			Valid:   subscription.MonthlyPriceUSD > 0,
		},
		Status:           string(subscription.Status),
		NextBillingDate:  nullTime(subscription.NextBillingDate),
		AutoRenew:        subscription.AutoRenew,
		Features:         features,
		APICallsLimit:    subscription.APICallsLimit,
		MonthlyCallsUsed: subscription.MonthlyCallsUsed,
		CreatedAt:        subscription.CreatedAt,
		UpdatedAt:        nullTime(subscription.UpdatedAt),
	}

	return nil
}

type PgAccessLog struct {
	ID        uuid.UUID     `db:"id" goqu:"skipinsert"`
	PaymentID uuid.NullUUID `db:"payment_id"`
	UserID    uuid.UUID     `db:"user_id"`

	Endpoint        string         `db:"endpoint"`
	FeatureAccessed string         `db:"feature_accessed"`
	RequestType     string         `db:"request_type"`
	TokensUsed      sql.NullInt64  `db:"tokens_used"`
	ExecutionTimeMS float64        `db:"execution_time_ms"`
	Success         bool           `db:"success"`
	ErrorMessage    sql.NullString `db:"error_message"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAccessLog) ToDomain() (*domain.AccessLog, error) {
	var paymentID *domain.PaymentID
	if p.PaymentID.Valid {
		id := domain.PaymentID(p.PaymentID.UUID)
		paymentID = &id
	}

	return &domain.AccessLog{
		ID:              domain.AccessLogID(p.ID),
		PaymentID:       paymentID,
		UserID:          domain.UserID(p.UserID),
		Endpoint:        p.Endpoint,
		FeatureAccessed: domain.Feature(p.FeatureAccessed),
		RequestType:     domain.RequestType(p.RequestType),
		TokensUsed:      int(p.TokensUsed.Int64),
		ExecutionTimeMS: p.ExecutionTimeMS,
		Success:         p.Success,
		ErrorMessage:    p.ErrorMessage.String,
		CreatedAt:       p.CreatedAt,
	}, nil
}

func (p *PgAccessLog) FromDomain(log domain.AccessLog) error {
	*p = PgAccessLog{
		ID:              uuid.UUID(log.ID),
		PaymentID:       nullUUID((*uuid.UUID)(log.PaymentID)),
		UserID:          uuid.UUID(log.UserID),
		Endpoint:        log.Endpoint,
		FeatureAccessed: string(log.FeatureAccessed),
		RequestType:     string(log.RequestType),
		TokensUsed:      sql.NullInt64{Int64: int64(log.TokensUsed), Valid: log.TokensUsed > 0},
		ExecutionTimeMS: log.ExecutionTimeMS,
		Success:         log.Success,
		ErrorMessage:    nullString(log.ErrorMessage),
		CreatedAt:       log.CreatedAt,
	}

	return nil
}
