package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/pagination"
)

// listQuery parses the uniform list query parameters. Unparseable numbers
// are left at zero and normalized downstream.
func listQuery(c echo.Context) pagination.Query {
	q := pagination.Query{
		Year:    c.QueryParam("year"),
		Search:  c.QueryParam("search"),
		Symbol:  c.QueryParam("symbol"),
		OrderBy: c.QueryParam("orderBy"),
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if m, err := strconv.Atoi(c.QueryParam("month")); err == nil && m >= 1 && m <= 12 {
		q.Month = m
	}
	q.Ascending, _ = strconv.ParseBool(c.QueryParam("ascending"))
	return q
}

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the acknowledgement envelope for mutations that return
// no resource body.
type messageResponse struct {
	Message string `json:"message"`
}
