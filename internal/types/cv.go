package types

// CV represents a parsed, structured résumé as produced by the upstream
// résumé-parsing service. Parsing itself happens outside this module.
type CV struct {
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Achievements   []string          `json:"achievements,omitempty"`
	DesiredSalary  float64           `json:"desired_salary,omitempty"`
	Location       string            `json:"location,omitempty"`
}

// ExperienceEntry is a single position on the résumé.
// Dates use the "YYYY-MM" format; an empty EndDate or "present" means ongoing.
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Industry     string   `json:"industry,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// EducationEntry is a single degree or program on the résumé.
type EducationEntry struct {
	Degree string `json:"degree"`
	Field  string `json:"field,omitempty"`
	School string `json:"school,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// ProjectEntry is a portfolio project listed on the résumé.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}
