package features

import (
	"fmt"

	"github.com/propwise/propwise/pkg/billing"
)

// Kind is the JSON kind a field must carry
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Field describes one top-level field of a request or response shape
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
}

// Shape is the set of top-level fields a JSON object must satisfy
type Shape []Field

// Spec is the registry entry for one feature: where it is served, the tier
// it requires, and the shapes of its request and response. Specs are built
// once at process start and never mutated.
type Spec struct {
	Feature     Feature
	Path        string
	MinimumTier billing.Tier
	Request     Shape
	Response    Shape
}

var registry = map[Feature]Spec{
	PaymentAnalysis: {
		Feature:     PaymentAnalysis,
		Path:        "/v1/ai/payment-analysis",
		MinimumTier: billing.TierPremium,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "payments", Kind: KindArray},
			{Name: "tenants", Kind: KindArray},
		},
		Response: Shape{
			{Name: "riskAnalysis", Kind: KindArray},
			{Name: "recommendations", Kind: KindArray},
			{Name: "personalizedMessages", Kind: KindArray},
			{Name: "insights", Kind: KindObject},
		},
	},
	FiscalAnalysis: {
		Feature:     FiscalAnalysis,
		Path:        "/v1/ai/fiscal-analysis",
		MinimumTier: billing.TierPremium,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "year", Kind: KindNumber},
			{Name: "properties", Kind: KindArray},
			{Name: "payments", Kind: KindArray},
			{Name: "expenses", Kind: KindArray, Optional: true},
		},
		Response: Shape{
			{Name: "summary", Kind: KindObject},
			{Name: "deductions", Kind: KindArray},
			{Name: "recommendations", Kind: KindArray},
			{Name: "projections", Kind: KindObject},
		},
	},
	Communication: {
		Feature:     Communication,
		Path:        "/v1/ai/communication",
		MinimumTier: billing.TierPremium,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "tenant", Kind: KindObject},
			{Name: "topic", Kind: KindString},
			{Name: "tone", Kind: KindString},
			{Name: "context", Kind: KindString, Optional: true},
		},
		Response: Shape{
			{Name: "subject", Kind: KindString},
			{Name: "message", Kind: KindString},
			{Name: "variants", Kind: KindArray, Optional: true},
		},
	},
	ContractGeneration: {
		Feature:     ContractGeneration,
		Path:        "/v1/ai/contract-generation",
		MinimumTier: billing.TierBusiness,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "landlord", Kind: KindObject},
			{Name: "tenant", Kind: KindObject},
			{Name: "property", Kind: KindObject},
			{Name: "terms", Kind: KindObject},
		},
		Response: Shape{
			{Name: "contractText", Kind: KindString},
			{Name: "clauses", Kind: KindArray},
			{Name: "warnings", Kind: KindArray, Optional: true},
		},
	},
	ProblemDiagnosis: {
		Feature:     ProblemDiagnosis,
		Path:        "/v1/ai/problem-diagnosis",
		MinimumTier: billing.TierPremium,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "description", Kind: KindString},
			{Name: "propertyType", Kind: KindString, Optional: true},
			{Name: "location", Kind: KindString, Optional: true},
			{Name: "reportedBy", Kind: KindString, Optional: true},
		},
		Response: Shape{
			{Name: "diagnosis", Kind: KindString},
			{Name: "urgency", Kind: KindString},
			{Name: "recommendedActions", Kind: KindArray},
			{Name: "estimatedCost", Kind: KindObject, Optional: true},
			{Name: "professionalRequired", Kind: KindBool, Optional: true},
		},
	},
	MonthlySummary: {
		Feature:     MonthlySummary,
		Path:        "/v1/ai/monthly-summary",
		MinimumTier: billing.TierPremium,
		Request: Shape{
			{Name: "userId", Kind: KindString},
			{Name: "month", Kind: KindNumber},
			{Name: "year", Kind: KindNumber},
			{Name: "payments", Kind: KindArray},
			{Name: "properties", Kind: KindArray},
			{Name: "incidents", Kind: KindArray, Optional: true},
		},
		Response: Shape{
			{Name: "summary", Kind: KindString},
			{Name: "occupancyRate", Kind: KindNumber},
			{Name: "totalIncome", Kind: KindNumber},
			{Name: "pendingPayments", Kind: KindNumber, Optional: true},
			{Name: "highlights", Kind: KindArray},
			{Name: "insights", Kind: KindArray, Optional: true},
		},
	},
}

// Lookup returns the registry entry for a feature
func Lookup(feature Feature) (Spec, error) {
	spec, ok := registry[feature]
	if !ok {
		return Spec{}, fmt.Errorf("unknown feature %q", feature)
	}
	return spec, nil
}

// MustLookup returns the registry entry for a feature and panics on unknown
// features; only for use with the compile-time Feature constants.
func MustLookup(feature Feature) Spec {
	spec, err := Lookup(feature)
	if err != nil {
		panic(err)
	}
	return spec
}
