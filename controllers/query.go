package controllers

import (
	"fmt"
	"net/url"
	"strconv"

	"restaurantapi/models"

	"github.com/gofrs/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// productOrderBy maps the public sort tokens to ORDER BY clauses. Anything
// else falls back to the menu ordering: sort order first, newest first within
// equal sort order.
var productOrderBy = map[string]string{
	"price_asc":  "p.price ASC",
	"price_desc": "p.price DESC",
	"name_asc":   "p.name ASC",
	"name_desc":  "p.name DESC",
	"newest":     "p.created_at DESC",
	"popular":    "p.is_popular DESC, p.created_at DESC",
}

const defaultProductOrder = "p.sort_order ASC, p.created_at DESC"

// CompileProductQuery normalizes the raw listing parameters into a query
// plan. It never fails: malformed values are coerced to defaults or dropped,
// they are not reported back to the caller.
func CompileProductQuery(params url.Values) models.ProductQuery {
	q := models.ProductQuery{
		Page:  defaultPage,
		Limit: defaultLimit,
	}

	if page, err := strconv.Atoi(params.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(params.Get("limit")); err == nil && limit >= 1 {
		q.Limit = limit
	}

	q.Category = params.Get("category")

	// only the literal "true" opts in, anything else is ignored
	q.Popular = params.Get("popular") == "true"

	q.Search = params.Get("search")

	if raw := params.Get("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &min
		}
	}

	if raw := params.Get("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &max
		}
	}

	if _, ok := productOrderBy[params.Get("sort")]; ok {
		q.Sort = params.Get("sort")
	}

	return q
}

// getFilterProduct turns a plan into the WHERE fragment shared by the select
// and count queries. The active-only predicate lives in the base query; this
// appends the optional conjuncts.
func getFilterProduct(q models.ProductQuery) (filterQ string, stms []interface{}) {
	if _, err := uuid.FromString(q.Category); err == nil {
		filterQ = fmt.Sprintf(" AND p.category_id = $%d", len(stms)+1)
		stms = append(stms, q.Category)
	}

	if q.Popular {
		filterQ += " AND p.is_popular"
	}

	if q.Search != "" {
		filterQ += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(stms)+1, len(stms)+1)
		stms = append(stms, "%"+q.Search+"%")
	}

	if q.MinPrice != nil {
		filterQ += fmt.Sprintf(" AND p.price >= $%d", len(stms)+1)
		stms = append(stms, *q.MinPrice)
	}

	if q.MaxPrice != nil {
		filterQ += fmt.Sprintf(" AND p.price <= $%d", len(stms)+1)
		stms = append(stms, *q.MaxPrice)
	}

	return
}

func orderProduct(sort string) string {
	if clause, ok := productOrderBy[sort]; ok {
		return " ORDER BY " + clause
	}
	return " ORDER BY " + defaultProductOrder
}

func paginateProduct(q models.ProductQuery) string {
	offset := (q.Page - 1) * q.Limit
	return fmt.Sprintf(" LIMIT %d OFFSET %d", q.Limit, offset)
}

func totalPages(total int32, limit int) int {
	return (int(total) + limit - 1) / limit
}
