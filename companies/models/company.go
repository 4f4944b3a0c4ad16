package models

import "github.com/qolzam/jobly/internal/database/clause"

// Company is a row of the companies table.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// JobSummary is a job as listed under its company.
type JobSummary struct {
	ID     int      `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *int     `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}

// CompanyDetail is a company together with its jobs.
type CompanyDetail struct {
	Company
	Jobs []JobSummary `json:"jobs"`
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// UpdateCompanyRequest is the body of PATCH /companies/:handle.
// The handle itself cannot be changed.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// UpdateColumns maps request field names to columns where they differ.
var UpdateColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// Changes lists the supplied fields in a fixed order.
func (r *UpdateCompanyRequest) Changes() clause.Changes {
	var changes clause.Changes
	changes = clause.Set(changes, "name", r.Name)
	changes = clause.Set(changes, "description", r.Description)
	changes = clause.Set(changes, "numEmployees", r.NumEmployees)
	changes = clause.Set(changes, "logoUrl", r.LogoURL)
	return changes
}

// CompanyFilter holds the optional query parameters of GET /companies.
type CompanyFilter struct {
	NameLike     *string `schema:"nameLike"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}

// Compile turns the filter into a WHERE clause, or nil when nothing is set.
func (f CompanyFilter) Compile() (*clause.Clause, error) {
	if err := clause.CheckInt32("minEmployees", f.MinEmployees); err != nil {
		return nil, err
	}
	if err := clause.CheckInt32("maxEmployees", f.MaxEmployees); err != nil {
		return nil, err
	}
	return clause.CompileFilter(
		[]clause.Input{
			clause.Prefix("nameLike", "name", f.NameLike),
			clause.GreaterThan("minEmployees", "num_employees", f.MinEmployees),
			clause.LessThan("maxEmployees", "num_employees", f.MaxEmployees),
		},
		clause.Bound{Min: "minEmployees", Max: "maxEmployees"},
	)
}
