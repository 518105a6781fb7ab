// Package competency binds API calls to collection cache keys. Reads go
// through the shared collection client; every mutation names the keys it
// invalidates.
package competency

import (
	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/view"
)

// Cache keys. Per-parent keys live below these so invalidating a root
// invalidates them too.
var (
	KeyCompetencies  = collection.KeyOf("competencies")
	KeyQuestions     = collection.KeyOf("questions")
	KeyAssessments   = collection.KeyOf("assessments")
	KeyAssessors     = collection.KeyOf("assessors")
	KeyEmployees     = collection.KeyOf("employees")
	KeyJobs          = collection.KeyOf("jobs")
	KeyReviews       = collection.KeyOf("reviews")
	KeyPaths         = collection.KeyOf("paths")
	KeyInterventions = collection.KeyOf("interventions")
)

// QuestionsKey is the key for one competency's questions, or all questions
// when competencyID is empty.
func QuestionsKey(competencyID string) collection.Key {
	if competencyID == "" {
		return KeyQuestions
	}
	return collection.KeyOf("questions", competencyID)
}

// PathKey is the key of a single development path.
func PathKey(id string) collection.Key { return collection.KeyOf("paths", id) }

// InterventionsKey is the key for the interventions of one path.
func InterventionsKey(pathID string) collection.Key {
	return collection.KeyOf("interventions", pathID)
}

// Source is everything needed to show one collection: where it is cached,
// how to fetch it, how lists of it are searched and sorted by default, and
// how it is tabulated.
type Source[T view.Entity] struct {
	Name   string
	Key    collection.Key
	Fetch  collection.Fetcher[T]
	View   view.Config
	Layout view.Layout
}

// Subscribe subscribes to the source on c.
func (src Source[T]) Subscribe(c *collection.Client, notify func(collection.Snapshot[T])) (collection.Snapshot[T], *collection.Subscription) {
	return collection.Subscribe(c, src.Key, src.Fetch, notify)
}
