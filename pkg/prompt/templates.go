package prompt

import (
	"fmt"

	"github.com/propwise/propwise/pkg/features"
)

const (
	systemPaymentAnalysis = "You are a financial analyst specialized in residential rental portfolios. " +
		"You assess tenant payment behavior, score late-payment risk, and draft payment reminders " +
		"that stay professional and preserve the landlord-tenant relationship."

	systemFiscalAnalysis = "You are a tax advisor specialized in rental-property income. " +
		"You analyze a landlord's yearly income and expenses, identify deductible concepts under " +
		"the applicable residential-rental tax rules, and always cite the legal basis for each deduction."

	systemCommunication = "You are an assistant that drafts landlord-to-tenant communications. " +
		"You write clear, courteous messages that respect tenant rights and avoid any wording " +
		"that could be read as a threat or a legal notice unless explicitly asked for one."

	systemContractGeneration = "You are a legal drafting assistant specialized in residential lease agreements. " +
		"You produce complete, formally structured contracts that follow the applicable urban-tenancy " +
		"legislation, include all mandatory clauses, and flag any requested term that may be unenforceable. " +
		"Precision matters more than style; never paraphrase party or property details."

	systemProblemDiagnosis = "You are a building-maintenance expert. Given a problem report from a rental " +
		"property you identify the most likely cause, how urgent it is, and what should be done, " +
		"including whether a licensed professional is required."

	systemMonthlySummary = "You are an assistant that prepares a landlord's monthly portfolio report. " +
		"You summarize payment activity, occupancy and incidents into a short narrative with " +
		"concrete figures drawn only from the data provided."
)

func buildPaymentAnalysis(req *features.Request) Prompt {
	return Prompt{
		Task: "Analyze the payment history and tenant roster below. Score each tenant's late-payment risk, " +
			"recommend portfolio-level actions, and draft one personalized payment reminder per at-risk tenant.",
		Data: indentJSON(req.Raw()),
		Schema: `{
  "riskAnalysis": [{"tenantId": string, "tenantName": string, "riskScore": number (0-100), "riskLevel": "low"|"medium"|"high", "factors": [string], "prediction": string}],
  "recommendations": [string],
  "personalizedMessages": [{"tenantId": string, "message": string, "tone": "friendly"|"neutral"|"firm"}],
  "insights": {"paymentTrend": string, "bestPayerProfile": string, "riskFactors": [string]}
}`,
		Constraints: append([]string{
			"Include every tenant from the input in riskAnalysis exactly once",
			"Base risk scores only on the payment records provided",
		}, baseConstraints...),
	}
}

func buildFiscalAnalysis(req *features.Request) Prompt {
	var typed features.FiscalAnalysisRequest
	_ = req.Decode(&typed)

	return Prompt{
		Task: fmt.Sprintf("Prepare the fiscal analysis of this rental portfolio for tax year %d: "+
			"aggregate income and expenses, list every applicable deduction with its legal basis, "+
			"and project the next year's liability.", typed.Year),
		Data: indentJSON(req.Raw()),
		Schema: `{
  "summary": {"totalIncome": number, "totalExpenses": number, "netResult": number, "effectiveTaxRate": number},
  "deductions": [{"concept": string, "amount": number, "legalBasis": string}],
  "recommendations": [string],
  "projections": {"nextYearEstimate": number, "quarterlyPayments": [number]}
}`,
		Constraints: append([]string{
			"Use only the income and expense records provided; do not estimate missing amounts",
			"Every deduction must cite its legal basis",
		}, baseConstraints...),
	}
}

func buildCommunication(req *features.Request) Prompt {
	var typed features.CommunicationRequest
	_ = req.Decode(&typed)

	return Prompt{
		Task: fmt.Sprintf("Draft a message from the landlord to the tenant about: %s. "+
			"The requested tone is %q. Provide the main draft plus alternative drafts in other tones.",
			typed.Topic, typed.Tone),
		Data:    indentJSON(req.Raw()),
		Context: typed.Context,
		Schema: `{
  "subject": string,
  "message": string,
  "variants": [{"tone": string, "message": string}]
}`,
		Constraints: append([]string{
			"Address the tenant by the name given in the data",
			"Keep the main message under 250 words",
		}, baseConstraints...),
	}
}

func buildContractGeneration(req *features.Request) Prompt {
	return Prompt{
		Task: "Generate a complete residential lease agreement between the landlord and tenant below, " +
			"covering the property and terms exactly as provided. Break the contract into titled clauses " +
			"and list a warning for every requested term that conflicts with mandatory tenancy law.",
		Data: indentJSON(req.Raw()),
		Schema: `{
  "contractText": string,
  "clauses": [{"title": string, "text": string}],
  "warnings": [string]
}`,
		Constraints: append([]string{
			"Reproduce party names, identifiers and the property address verbatim",
			"contractText must contain the full agreement; clauses break the same text into sections",
			"Do not omit mandatory clauses even if the terms are silent on them",
		}, baseConstraints...),
	}
}

func buildProblemDiagnosis(req *features.Request) Prompt {
	return Prompt{
		Task: "Diagnose the property problem reported below: identify the most likely cause, rate its " +
			"urgency, list the recommended actions in order, estimate the repair cost range, and state " +
			"whether a licensed professional is required.",
		Data: indentJSON(req.Raw()),
		Schema: `{
  "diagnosis": string,
  "urgency": "low"|"medium"|"high"|"emergency",
  "recommendedActions": [string],
  "estimatedCost": {"min": number, "max": number, "currency": string},
  "professionalRequired": boolean
}`,
		Constraints: append([]string{
			"If the report suggests a safety risk, urgency must be high or emergency",
		}, baseConstraints...),
	}
}

func buildMonthlySummary(req *features.Request) Prompt {
	var typed features.MonthlySummaryRequest
	_ = req.Decode(&typed)

	return Prompt{
		Task: fmt.Sprintf("Write the landlord's portfolio report for %d-%02d from the payments, "+
			"incidents and properties below: a short narrative summary, the occupancy rate, income "+
			"totals, and the month's highlights.", typed.Year, typed.Month),
		Data: indentJSON(req.Raw()),
		Schema: `{
  "summary": string,
  "occupancyRate": number (percentage),
  "totalIncome": number,
  "pendingPayments": number,
  "highlights": [string],
  "insights": [string]
}`,
		Constraints: append([]string{
			"All figures must be computed from the records provided",
			"Keep the summary under 150 words",
		}, baseConstraints...),
	}
}
