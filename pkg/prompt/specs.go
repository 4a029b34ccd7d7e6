package prompt

import (
	"fmt"

	"github.com/propwise/propwise/pkg/features"
)

// Spec is a feature's immutable prompt definition. Generation parameters are
// fixed per feature: legally binding contract text runs near-deterministic,
// analytical and drafting tasks run low-moderate.
type Spec struct {
	System          string
	Temperature     float32
	MaxOutputTokens int

	build func(req *features.Request) Prompt
}

// Rendered is a fully compiled prompt ready for the provider client
type Rendered struct {
	System          string
	User            string
	Temperature     float32
	MaxOutputTokens int
}

var specs = map[features.Feature]Spec{
	features.PaymentAnalysis: {
		System:          systemPaymentAnalysis,
		Temperature:     0.3,
		MaxOutputTokens: 2048,
		build:           buildPaymentAnalysis,
	},
	features.FiscalAnalysis: {
		System:          systemFiscalAnalysis,
		Temperature:     0.3,
		MaxOutputTokens: 2048,
		build:           buildFiscalAnalysis,
	},
	features.Communication: {
		System:          systemCommunication,
		Temperature:     0.4,
		MaxOutputTokens: 1024,
		build:           buildCommunication,
	},
	features.ContractGeneration: {
		System:          systemContractGeneration,
		Temperature:     0.1,
		MaxOutputTokens: 4096,
		build:           buildContractGeneration,
	},
	features.ProblemDiagnosis: {
		System:          systemProblemDiagnosis,
		Temperature:     0.3,
		MaxOutputTokens: 2048,
		build:           buildProblemDiagnosis,
	},
	features.MonthlySummary: {
		System:          systemMonthlySummary,
		Temperature:     0.3,
		MaxOutputTokens: 2048,
		build:           buildMonthlySummary,
	},
}

// Build compiles a validated request into its provider prompt. Templates are
// pure functions of the request; identical payloads render identical prompts.
func Build(req *features.Request) (Rendered, error) {
	spec, ok := specs[req.Feature]
	if !ok {
		return Rendered{}, fmt.Errorf("no prompt spec for feature %q", req.Feature)
	}

	p := spec.build(req)
	return Rendered{
		System:          spec.System,
		User:            p.Render(),
		Temperature:     spec.Temperature,
		MaxOutputTokens: spec.MaxOutputTokens,
	}, nil
}

// LookupSpec returns a feature's prompt spec for inspection
func LookupSpec(feature features.Feature) (Spec, error) {
	spec, ok := specs[feature]
	if !ok {
		return Spec{}, fmt.Errorf("no prompt spec for feature %q", feature)
	}
	return spec, nil
}
