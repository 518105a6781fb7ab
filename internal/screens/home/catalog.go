package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/router"
	"github.com/hrcore/competency/internal/screen"
	"github.com/hrcore/competency/internal/screens/list"
	"github.com/hrcore/competency/internal/screens/pathdetail"
)

type entry struct {
	Label  string
	Detail string
	Open   func() screen.Screen
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// entries lists the browsable collections in menu order.
func entries(svc *competency.Service) []entry {
	cache := svc.Cache()
	return []entry{
		{Label: "Competencies", Detail: "enter opens questions", Open: func() screen.Screen {
			return list.New(list.Options[domain.Competency]{
				Source: svc.CompetenciesSource(),
				Cache:  cache,
				OnSelect: func(c domain.Competency) tea.Cmd {
					return push(list.New(list.Options[domain.Question]{
						Title:  "Questions · " + c.Name,
						Source: svc.QuestionsSource(c.ID),
						Cache:  cache,
					}))
				},
			})
		}},
		{Label: "Questions", Open: func() screen.Screen {
			return list.New(list.Options[domain.Question]{Source: svc.QuestionsSource(""), Cache: cache})
		}},
		{Label: "Assessments", Open: func() screen.Screen {
			return list.New(list.Options[domain.Assessment]{Source: svc.AssessmentsSource(), Cache: cache})
		}},
		{Label: "Assessors", Open: func() screen.Screen {
			return list.New(list.Options[domain.Assessor]{Source: svc.AssessorsSource(), Cache: cache})
		}},
		{Label: "Employees", Open: func() screen.Screen {
			return list.New(list.Options[domain.Employee]{Source: svc.EmployeesSource(), Cache: cache})
		}},
		{Label: "Jobs", Open: func() screen.Screen {
			return list.New(list.Options[domain.Job]{Source: svc.JobsSource(), Cache: cache})
		}},
		{Label: "Reviews", Open: func() screen.Screen {
			return list.New(list.Options[domain.Review]{Source: svc.ReviewsSource(), Cache: cache})
		}},
		{Label: "Development Paths", Detail: "enter opens the path", Open: func() screen.Screen {
			return list.New(list.Options[domain.DevelopmentPath]{
				Title:  "Development Paths",
				Source: svc.PathsSource(),
				Cache:  cache,
				OnSelect: func(p domain.DevelopmentPath) tea.Cmd {
					return push(pathdetail.New(svc, p.ID))
				},
			})
		}},
	}
}
