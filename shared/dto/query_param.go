package dto

import (
	"fmt"
	"hotel/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is one ORDER BY term. Column must come from code, never from the request.
type Sort struct {
	Column string `json:"column"`
	Dir    string `json:"dir"`
}

func (s Sort) String() string {
	dir := s.Dir
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("%s %s", s.Column, dir)
}

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Orders  []Sort `json:"orders"   swaggerignore:"true"`
}

// FromRequest populates QueryParams from the HTTP request.
// It's recommended to call this method with `defaultRequest` set to true if data is large
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// This will set default values for Page and Limit if they are not provided in the request.
// If `defaultRequest` is false, it will only populate the fields that are present in the request.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// ApplySort resolves the requested sort_by against a whitelist of sortable columns.
// The defaults are always appended so the ordering stays deterministic.
func (q *QueryParams) ApplySort(sortable map[string]string, defaults ...Sort) {
	orders := make([]Sort, 0, len(defaults)+1)

	if column, ok := sortable[q.SortBy]; ok && q.SortBy != "" {
		orders = append(orders, Sort{Column: column, Dir: q.SortDir})
	}

	for _, def := range defaults {
		if len(orders) > 0 && orders[0].Column == def.Column {
			continue
		}

		orders = append(orders, def)
	}

	q.Orders = orders
}

// OrderClause renders the resolved ordering, or an empty string when nothing is set.
func (q *QueryParams) OrderClause() string {
	if len(q.Orders) == 0 {
		return ""
	}

	terms := make([]string, len(q.Orders))
	for i, order := range q.Orders {
		terms[i] = order.String()
	}

	return "ORDER BY " + strings.Join(terms, ", ")
}
