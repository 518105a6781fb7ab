package domain

import "strings"

// Competency is a skill in a job's competency profile.
type Competency struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Levels      []CompetencyLevel `json:"levels,omitempty"`
}

// CompetencyLevel describes what a level means for one competency.
type CompetencyLevel struct {
	Level       Level  `json:"level"`
	Description string `json:"description"`
}

func (c Competency) EntityID() string { return c.ID }

func (c Competency) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	case "description":
		return c.Description, true
	case "category":
		return c.Category, true
	case "levels":
		names := make([]string, len(c.Levels))
		for i, l := range c.Levels {
			names[i] = string(l.Level)
		}
		return strings.Join(names, ","), true
	}
	return nil, false
}
