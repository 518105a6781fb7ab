// Package domain holds the API's entity types. Every entity implements
// view.Entity with its JSON field names, so derived views, filters and
// sorting address fields the way the API names them.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/hrcore/competency/internal/schedule"
)

// Level is a competency proficiency level.
type Level string

const (
	LevelBasic        Level = "BASIC"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelExpert       Level = "EXPERT"
)

// Levels lists every level from lowest to highest.
var Levels = []Level{LevelBasic, LevelIntermediate, LevelAdvanced, LevelExpert}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if l.Valid() {
		return l, nil
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Valid reports whether l is one of Levels.
func (l Level) Valid() bool {
	return l.Rank() > 0
}

// Rank is 1 for BASIC up to 4 for EXPERT, 0 for anything else.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i + 1
		}
	}
	return 0
}

func dayValue(d schedule.Day) any {
	if d.IsZero() {
		return nil
	}
	return d.Date
}

func timeValue(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func optTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func optInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func optFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
