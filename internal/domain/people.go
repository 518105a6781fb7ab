package domain

// Employee is a person in the organisation.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	JobID      string `json:"job_id"`
	JobTitle   string `json:"job_title"`
	ManagerID  string `json:"manager_id,omitempty"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "name":
		return e.Name, true
	case "email":
		return e.Email, true
	case "department":
		return e.Department, true
	case "job_id":
		return e.JobID, true
	case "job_title":
		return e.JobTitle, true
	case "manager_id":
		return e.ManagerID, true
	}
	return nil, false
}

// Job is a role with a competency profile.
type Job struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Department   string           `json:"department"`
	Requirements []JobRequirement `json:"requirements"`
}

// JobRequirement is the level a job expects for one competency.
type JobRequirement struct {
	CompetencyID   string `json:"competency_id"`
	CompetencyName string `json:"competency_name"`
	Level          Level  `json:"level"`
}

func (j Job) EntityID() string { return j.ID }

func (j Job) Field(name string) (any, bool) {
	switch name {
	case "id":
		return j.ID, true
	case "title":
		return j.Title, true
	case "department":
		return j.Department, true
	case "requirements":
		return len(j.Requirements), true
	}
	return nil, false
}
