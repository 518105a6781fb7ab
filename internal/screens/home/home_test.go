package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/config"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/router"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/screens/list"
)

type reviewsAPI struct {
	competency.API
	reviews []domain.Review
}

func (a *reviewsAPI) Reviews(context.Context) ([]domain.Review, error) {
	return a.reviews, nil
}

func testHome(t *testing.T, reviews []domain.Review) *HomeScreen {
	t.Helper()
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)
	svc := competency.NewService(&reviewsAPI{reviews: reviews}, cache, config.User{ID: "m1", Role: config.RoleManager}, time.UTC, nil)
	return New(svc)
}

func TestHomeDashboard(t *testing.T) {
	h := testHome(t, []domain.Review{{ID: "r1", Status: domain.ReviewRequested, DueDate: schedule.NewDay(civil.Date{Year: 2000, Month: time.January, Day: 1})}})

	assert.Contains(t, h.View(100, 40), "Checking reviews...")

	msg := h.Init()()
	h.Update(msg)
	assert.Contains(t, h.View(100, 40), "1 overdue review(s)")
	assert.Contains(t, h.View(100, 40), "m1 · manager")
}

func TestHomeMenuPushesList(t *testing.T) {
	h := testHome(t, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	s, ok := push.Screen.(*list.Screen[domain.Competency])
	require.True(t, ok)
	assert.Equal(t, "Competencies", s.Title())
}

func TestHomeMenuCoversEveryCollection(t *testing.T) {
	h := testHome(t, nil)

	var labels []string
	for _, it := range h.menu.Items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{
		"Competencies", "Questions", "Assessments", "Assessors", "Employees",
		"Jobs", "Reviews", "Development Paths", "Quit",
	}, labels)
}
