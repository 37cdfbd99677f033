package translate

import (
	"github.com/rpattn/crmql/internal/domain"
)

// conditionOperators maps every supported filter condition to its API
// operator symbol. The map is total over domain.Condition; anything
// outside it fails translation.
var conditionOperators = map[domain.Condition]string{
	domain.ConditionEquals:              "$eq",
	domain.ConditionNotEquals:           "$not_eq",
	domain.ConditionContains:            "$contains",
	domain.ConditionNotContains:         "$not_contains",
	domain.ConditionStartsWith:          "$starts_with",
	domain.ConditionEndsWith:            "$ends_with",
	domain.ConditionGreaterThan:         "$gt",
	domain.ConditionLessThan:            "$lt",
	domain.ConditionGreaterThanOrEquals: "$gte",
	domain.ConditionLessThanOrEquals:    "$lte",
	domain.ConditionIsEmpty:             "$is_empty",
	domain.ConditionIsNotEmpty:          "$not_empty",
	domain.ConditionIsSet:               "$is_set",
	domain.ConditionIsNotSet:            "$is_not_set",
}

// OperatorFor returns the API operator symbol for a condition.
func OperatorFor(condition domain.Condition) (string, error) {
	op, ok := conditionOperators[condition]
	if !ok {
		return "", domain.NewValidationError(domain.ValidationInvalidCondition,
			"unknown filter condition %q", condition)
	}
	return op, nil
}
