package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// PagesByWikiProject builds a query selecting pages and their
// assessments for one or more WikiProjects, joining the page,
// page_assessments, and page_assessments_projects tables.
//
// Each filter accepts a single value, a slice of candidate values, or
// nil for no restriction on that dimension. Use the project's local
// titles and grade names; on the Chinese Wikipedia, for example,
// "电子游戏" for WikiProject Video games and "乙" for B-Class.
//
// Selected fields, in order: page_id, page_namespace, page_title,
// pap_project_title, pa_class, pa_importance.
func PagesByWikiProject(name, quality, priority interface{}) sq.SelectBuilder {
	page := MustTable("page")
	pa := MustTable("page_assessments")
	pap := MustTable("page_assessments_projects")

	fields := []ColumnRef{
		page.Col("page_id"),
		page.Col("page_namespace"),
		page.Col("page_title"),
		pap.Col("pap_project_title"),
		pa.Col("pa_class"),
		pa.Col("pa_importance"),
	}
	selected := make([]string, len(fields))
	for i, field := range fields {
		selected[i] = field.String()
	}

	conditions := []Condition{
		{Column: pap.Col("pap_project_title"), Value: name},
		{Column: pa.Col("pa_class"), Value: quality},
		{Column: pa.Col("pa_importance"), Value: priority},
	}

	builder := sq.Select(selected...).
		From(pap.Name).
		Join(fmt.Sprintf("%s ON %s = %s", pa.Name, pap.Col("pap_project_id"), pa.Col("pa_project_id"))).
		Join(fmt.Sprintf("%s ON %s = %s", page.Name, pa.Col("pa_page_id"), page.Col("page_id")))
	for _, predicate := range BuildPredicates(conditions) {
		builder = builder.Where(predicate)
	}
	return builder
}
