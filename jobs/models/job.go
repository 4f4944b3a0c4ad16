package models

import "github.com/qolzam/jobly/internal/database/clause"

// Job is a row of the jobs table. Equity is read back as float8.
type Job struct {
	ID            int      `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Salary        *int     `json:"salary" db:"salary"`
	Equity        *float64 `json:"equity" db:"equity"`
	CompanyHandle string   `json:"companyHandle" db:"company_handle"`
}

// CompanySummary is the company embedded in a job detail.
type CompanySummary struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// JobDetail is a job together with its company.
type JobDetail struct {
	ID      int            `json:"id"`
	Title   string         `json:"title"`
	Salary  *int           `json:"salary"`
	Equity  *float64       `json:"equity"`
	Company CompanySummary `json:"company"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// UpdateJobRequest is the body of PATCH /jobs/:id. The id and company are fixed.
type UpdateJobRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

// Changes lists the supplied fields in a fixed order.
func (r *UpdateJobRequest) Changes() clause.Changes {
	var changes clause.Changes
	changes = clause.Set(changes, "title", r.Title)
	changes = clause.Set(changes, "salary", r.Salary)
	changes = clause.Set(changes, "equity", r.Equity)
	return changes
}

// JobFilter holds the optional query parameters of GET /jobs.
type JobFilter struct {
	Title     *string `schema:"title"`
	MinSalary *int    `schema:"minSalary"`
	HasEquity *bool   `schema:"hasEquity"`
}

// Compile turns the filter into a WHERE clause, or nil when nothing is set.
// hasEquity=false adds no constraint.
func (f JobFilter) Compile() (*clause.Clause, error) {
	if err := clause.CheckInt32("minSalary", f.MinSalary); err != nil {
		return nil, err
	}
	return clause.CompileFilter([]clause.Input{
		clause.Prefix("title", "title", f.Title),
		clause.GreaterThan("minSalary", "salary", f.MinSalary),
		clause.Presence("hasEquity", "equity", f.HasEquity),
	})
}
