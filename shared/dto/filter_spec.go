package dto

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ValueParser converts a raw query value. The second result reports whether the value is usable;
// unusable values are dropped from the filter instead of failing the request.
type ValueParser func(raw string) (any, bool)

// FilterSpec declares how one query parameter maps onto a predicate.
//
// Field is either a column of Table or, with an empty Table, a full SQL expression.
// Fields, when set, are matched with OR (e.g. a name parameter over first and last name).
// Allowed restricts the accepted values; anything outside the set is ignored.
type FilterSpec struct {
	Param    string
	Field    string
	Table    string
	Fields   []string
	Operator string
	Parser   ValueParser
	Allowed  []string
}

// BuildFilterGroup turns query values into an AND group following the given specs.
func BuildFilterGroup(values url.Values, specs []FilterSpec) FilterGroup {
	group := FilterGroup{
		Operator: FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, spec := range specs {
		raw := strings.TrimSpace(values.Get(spec.Param))
		if raw == "" {
			continue
		}

		if len(spec.Allowed) > 0 && !slices.Contains(spec.Allowed, raw) {
			log.Warn().Str("param", spec.Param).Str("value", raw).Strs("allowed", spec.Allowed).Msg("ignoring filter value outside allowed set")

			continue
		}

		parser := spec.Parser
		if parser == nil {
			parser = ParseString
		}

		value, ok := parser(raw)
		if !ok {
			log.Debug().Str("param", spec.Param).Str("value", raw).Msg("ignoring malformed filter value")

			continue
		}

		operator := spec.Operator
		if operator == "" {
			operator = FilterOperatorEq
		}

		if len(spec.Fields) == 0 {
			group.Filters = append(group.Filters, Filter{
				ArgName:  spec.Param,
				Field:    spec.Field,
				Table:    spec.Table,
				Operator: operator,
				Value:    value,
			})

			continue
		}

		anyOf := FilterGroup{Operator: FilterGroupOperatorOr}
		for idx, field := range spec.Fields {
			anyOf.Filters = append(anyOf.Filters, Filter{
				ArgName:  fmt.Sprintf("%s_%d", spec.Param, idx),
				Field:    field,
				Table:    spec.Table,
				Operator: operator,
				Value:    value,
			})
		}

		group.Filters = append(group.Filters, anyOf)
	}

	return group
}

func ParseString(raw string) (any, bool) {
	return raw, raw != ""
}

func ParseInt(raw string) (any, bool) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}

	return value, true
}

func ParseFloat(raw string) (any, bool) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}

	return value, true
}

func ParseBool(raw string) (any, bool) {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}

	return value, true
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and normalizes to YYYY-MM-DD.
func ParseDate(raw string) (any, bool) {
	if parsed, err := time.Parse(time.DateOnly, raw); err == nil {
		return parsed.Format(time.DateOnly), true
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.Format(time.DateOnly), true
	}

	return nil, false
}
