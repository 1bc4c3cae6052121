package domain

import (
	"encoding/json"
	"fmt"
)

// DecodeState decodes a persisted or exported state over base. A top-level key
// present in data replaces the matching field of base as a whole; absent keys
// keep base's value. Every key in required must be present and non-null,
// otherwise ErrInvalidImport is returned. base is not modified.
func DecodeState(data []byte, base *State, required ...string) (*State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidImport)
	}

	for _, key := range required {
		value, ok := raw[key]
		if !ok || string(value) == "null" {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidImport, key)
		}
	}

	var decoded State
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	present := func(key string) bool {
		value, ok := raw[key]
		return ok && string(value) != "null"
	}

	out := base.Clone()
	if present("transactions") {
		out.Transactions = decoded.Transactions
	}
	if present("budgetMonthly") {
		out.BudgetMonthly = decoded.BudgetMonthly
	}
	if present("accounts") {
		out.Accounts = decoded.Accounts
	}
	if present("accountTypes") {
		out.AccountTypes = decoded.AccountTypes
	}
	if present("accountInitialBalances") {
		out.AccountInitialBalances = decoded.AccountInitialBalances
	}
	if present("accountDueDays") {
		out.AccountDueDays = decoded.AccountDueDays
	}
	if present("monthStartDate") {
		out.MonthStartDate = decoded.MonthStartDate
	}
	if present("categories") {
		out.Categories = decoded.Categories
	}
	if present("reminderPayments") {
		out.ReminderPayments = decoded.ReminderPayments
	}

	out.Normalize()
	return out, nil
}
