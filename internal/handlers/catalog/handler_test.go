package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestProgramFilters(t *testing.T) {
	t.Run("staff with no query parameters produce no predicates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)

		filterGroup := programFilters(req, constant.RoleStaff)
		clause, args := filterGroup.GetWhereClause()

		assert.Empty(t, filterGroup.Filters)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("public callers only see active programs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)

		filterGroup := programFilters(req, constant.RolePublic)
		clause, args := filterGroup.GetWhereClause()

		assert.Len(t, filterGroup.Filters, 1)
		assert.Contains(t, clause, "programs.is_active = :is_active")
		assert.Equal(t, true, args["is_active"])
		assert.NotContains(t, args, "category_id")
		assert.NotContains(t, args, "level")
	})

	t.Run("level and category are matched exactly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/programs?level=Undergraduate&category_id=9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d", nil)

		filterGroup := programFilters(req, constant.RoleSuperuser)
		clause, args := filterGroup.GetWhereClause()

		assert.Contains(t, clause, "programs.level = :level")
		assert.Contains(t, clause, "programs.category_id = :category_id")
		assert.Equal(t, "Undergraduate", args["level"])
		assert.Equal(t, "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d", args["category_id"])
		assert.NotContains(t, args, "is_active")
	})

	t.Run("title is matched as a substring", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/programs?title=computer", nil)

		filterGroup := programFilters(req, constant.RoleStudent)
		clause, args := filterGroup.GetWhereClause()

		assert.Contains(t, clause, "LOWER(programs.title) LIKE LOWER(:title)")
		assert.Equal(t, "%computer%", args["title"])
		assert.Equal(t, true, args["is_active"])
	})
}
