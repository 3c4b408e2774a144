package models

// Generation outcome constants, used as metric labels.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeSERPError    = "serp_error"
	OutcomeSuggestError = "suggest_error"
)
