package features

import "encoding/json"

// Feature identifies one of the six AI-assisted operations
type Feature string

const (
	PaymentAnalysis    Feature = "payment_analysis"
	FiscalAnalysis     Feature = "fiscal_analysis"
	Communication      Feature = "communication"
	ContractGeneration Feature = "contract_generation"
	ProblemDiagnosis   Feature = "problem_diagnosis"
	MonthlySummary     Feature = "monthly_summary"
)

// All returns the features in registry order
func All() []Feature {
	return []Feature{
		PaymentAnalysis,
		FiscalAnalysis,
		Communication,
		ContractGeneration,
		ProblemDiagnosis,
		MonthlySummary,
	}
}

// Request is a validated inbound feature request. Payload holds the decoded
// body with unknown fields preserved; Raw is the original JSON for lossless
// rendering into the prompt.
type Request struct {
	Feature Feature
	UserID  string
	Payload map[string]any

	raw json.RawMessage
}

// Raw returns the original request body
func (r *Request) Raw() json.RawMessage {
	return r.raw
}

// Decode unmarshals the request body into a typed payload struct
func (r *Request) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// Typed request payloads, one per feature. The gateway validates shape
// against the registry rather than relying on struct zero values, but these
// are the documented contracts and what prompt templates decode into when
// they need individual fields.

// PaymentAnalysisRequest asks for payment-risk scoring across a portfolio
type PaymentAnalysisRequest struct {
	UserID   string           `json:"userId"`
	Payments []map[string]any `json:"payments"`
	Tenants  []map[string]any `json:"tenants"`
}

// FiscalAnalysisRequest asks for a tax-year analysis of rental activity
type FiscalAnalysisRequest struct {
	UserID     string           `json:"userId"`
	Year       int              `json:"year"`
	Properties []map[string]any `json:"properties"`
	Payments   []map[string]any `json:"payments"`
	Expenses   []map[string]any `json:"expenses,omitempty"`
}

// CommunicationRequest asks for a drafted tenant message
type CommunicationRequest struct {
	UserID  string         `json:"userId"`
	Tenant  map[string]any `json:"tenant"`
	Topic   string         `json:"topic"`
	Tone    string         `json:"tone"`
	Context string         `json:"context,omitempty"`
}

// ContractGenerationRequest asks for a rental contract draft
type ContractGenerationRequest struct {
	UserID   string         `json:"userId"`
	Landlord map[string]any `json:"landlord"`
	Tenant   map[string]any `json:"tenant"`
	Property map[string]any `json:"property"`
	Terms    map[string]any `json:"terms"`
}

// ProblemDiagnosisRequest asks for a maintenance-issue diagnosis
type ProblemDiagnosisRequest struct {
	UserID       string `json:"userId"`
	Description  string `json:"description"`
	PropertyType string `json:"propertyType,omitempty"`
	Location     string `json:"location,omitempty"`
	ReportedBy   string `json:"reportedBy,omitempty"`
}

// MonthlySummaryRequest asks for a month-in-review of portfolio activity
type MonthlySummaryRequest struct {
	UserID     string           `json:"userId"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Payments   []map[string]any `json:"payments"`
	Properties []map[string]any `json:"properties"`
	Incidents  []map[string]any `json:"incidents,omitempty"`
}

// Typed response shapes, one per feature, mirroring what the provider is
// instructed to return. The gateway passes validated provider output through
// as raw JSON; these types are for consumers that want a typed decode.

// TenantRisk is one entry of a payment-analysis risk breakdown
type TenantRisk struct {
	TenantID   string   `json:"tenantId"`
	TenantName string   `json:"tenantName"`
	RiskScore  float64  `json:"riskScore"`
	RiskLevel  string   `json:"riskLevel"`
	Factors    []string `json:"factors"`
	Prediction string   `json:"prediction"`
}

// TenantMessage is a drafted per-tenant payment reminder
type TenantMessage struct {
	TenantID string `json:"tenantId"`
	Message  string `json:"message"`
	Tone     string `json:"tone"`
}

// PaymentAnalysisResponse is the payment_analysis result
type PaymentAnalysisResponse struct {
	RiskAnalysis         []TenantRisk    `json:"riskAnalysis"`
	Recommendations      []string        `json:"recommendations"`
	PersonalizedMessages []TenantMessage `json:"personalizedMessages"`
	Insights             map[string]any  `json:"insights"`
}

// FiscalDeduction is one deductible concept in a fiscal analysis
type FiscalDeduction struct {
	Concept    string  `json:"concept"`
	Amount     float64 `json:"amount"`
	LegalBasis string  `json:"legalBasis"`
}

// FiscalAnalysisResponse is the fiscal_analysis result
type FiscalAnalysisResponse struct {
	Summary         map[string]any    `json:"summary"`
	Deductions      []FiscalDeduction `json:"deductions"`
	Recommendations []string          `json:"recommendations"`
	Projections     map[string]any    `json:"projections"`
}

// MessageVariant is an alternative drafting of a communication
type MessageVariant struct {
	Tone    string `json:"tone"`
	Message string `json:"message"`
}

// CommunicationResponse is the communication result
type CommunicationResponse struct {
	Subject  string           `json:"subject"`
	Message  string           `json:"message"`
	Variants []MessageVariant `json:"variants,omitempty"`
}

// ContractClause is one titled clause of a generated contract
type ContractClause struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ContractGenerationResponse is the contract_generation result
type ContractGenerationResponse struct {
	ContractText string           `json:"contractText"`
	Clauses      []ContractClause `json:"clauses"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// CostEstimate is a repair cost range
type CostEstimate struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// ProblemDiagnosisResponse is the problem_diagnosis result
type ProblemDiagnosisResponse struct {
	Diagnosis            string        `json:"diagnosis"`
	Urgency              string        `json:"urgency"`
	RecommendedActions   []string      `json:"recommendedActions"`
	EstimatedCost        *CostEstimate `json:"estimatedCost,omitempty"`
	ProfessionalRequired bool          `json:"professionalRequired,omitempty"`
}

// MonthlySummaryResponse is the monthly_summary result
type MonthlySummaryResponse struct {
	Summary         string   `json:"summary"`
	OccupancyRate   float64  `json:"occupancyRate"`
	TotalIncome     float64  `json:"totalIncome"`
	PendingPayments float64  `json:"pendingPayments,omitempty"`
	Highlights      []string `json:"highlights"`
	Insights        []string `json:"insights,omitempty"`
}
