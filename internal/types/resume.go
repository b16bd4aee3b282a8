// Package types defines the shared data model for the resume checker.
package types

// PersonalInfo holds the contact section of a resume. All fields are plain
// strings; optional fields are empty rather than absent.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Experience is a single work history entry. When Current is true, EndDate is
// conventionally empty and ignored.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is a single education entry. GPA is optional and kept as a string
// because upstream parsers emit it verbatim ("3.8", "3.8/4.0").
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// ResumeRecord is the structured resume consumed by the checker. It is
// produced by an external parsing subsystem; every field defaults to empty
// rather than absent, and the checker tolerates any combination of empty
// fields.
type ResumeRecord struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
}
