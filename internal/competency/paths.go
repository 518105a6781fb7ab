package competency

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/view"
)

// ConflictError reports an intervention that a path update would leave
// outside the path's dates.
type ConflictError struct {
	Intervention domain.Intervention
	Err          error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("intervention %q: %v", e.Intervention.Title, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// PathSource caches a single path as a one-item collection.
func (s *Service) PathSource(id string) Source[domain.DevelopmentPath] {
	return Source[domain.DevelopmentPath]{
		Name: "path",
		Key:  PathKey(id),
		Fetch: func(ctx context.Context) ([]domain.DevelopmentPath, error) {
			p, err := s.api.Path(ctx, id)
			if err != nil {
				return nil, err
			}
			return []domain.DevelopmentPath{p}, nil
		},
		View: view.Config{},
	}
}

// Path returns one path. Any fetch failure is an error, even when an older
// copy is cached; callers validate against what it returns.
func (s *Service) Path(ctx context.Context, id string) (domain.DevelopmentPath, error) {
	snap, err := load(ctx, s, s.PathSource(id))
	if err != nil {
		return domain.DevelopmentPath{}, fmt.Errorf("load path %s: %w", id, err)
	}
	if len(snap.Items) != 1 {
		return domain.DevelopmentPath{}, fmt.Errorf("load path %s: not found", id)
	}
	return snap.Items[0], nil
}

// freshPath reloads a path from the server before returning it.
func (s *Service) freshPath(ctx context.Context, id string) (domain.DevelopmentPath, error) {
	s.cache.Invalidate(PathKey(id))
	return s.Path(ctx, id)
}

// PathDetails loads a path and its interventions concurrently.
func (s *Service) PathDetails(ctx context.Context, id string) (domain.PathDetails, error) {
	var details domain.PathDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.Path(gctx, id)
		details.Path = p
		return err
	})
	g.Go(func() error {
		snap, err := s.Interventions(gctx, id)
		if err != nil {
			return fmt.Errorf("load interventions of %s: %w", id, err)
		}
		details.Interventions = snap.Items
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PathDetails{}, err
	}
	return details, nil
}

func (s *Service) canEditPath(p domain.DevelopmentPath) error {
	if s.user.CanManage() || (s.user.ID != "" && s.user.ID == p.EmployeeID) {
		return nil
	}
	return ErrForbidden
}

// CreatePath creates a development path for an employee.
func (s *Service) CreatePath(ctx context.Context, employeeID string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	if err := s.canEditPath(domain.DevelopmentPath{EmployeeID: employeeID}); err != nil {
		return domain.DevelopmentPath{}, err
	}
	if u.Status == "" {
		u.Status = domain.PathDraft
	}
	if err := u.Validate(); err != nil {
		return domain.DevelopmentPath{}, fmt.Errorf("invalid path: %w", err)
	}
	return mutate(ctx, s, "create path", func(ctx context.Context) (domain.DevelopmentPath, error) {
		return s.api.CreatePath(ctx, employeeID, u)
	}, KeyPaths)
}

// UpdatePath changes a path after checking its own range and that every
// existing intervention still fits. It refuses to update when the
// interventions cannot be loaded.
func (s *Service) UpdatePath(ctx context.Context, id string, u domain.PathUpdate) (domain.DevelopmentPath, error) {
	s.cache.Invalidate(PathKey(id))
	s.cache.Invalidate(InterventionsKey(id))
	details, err := s.PathDetails(ctx, id)
	if err != nil {
		return domain.DevelopmentPath{}, err
	}
	if err := s.canEditPath(details.Path); err != nil {
		return domain.DevelopmentPath{}, err
	}
	if err := u.Validate(); err != nil {
		return domain.DevelopmentPath{}, fmt.Errorf("invalid path: %w", err)
	}

	children := make([]schedule.Interval, len(details.Interventions))
	for i, iv := range details.Interventions {
		children[i] = iv.Interval()
	}
	if v := schedule.ValidateChildren(u.Interval(), children); v != nil {
		if v.Index < 0 {
			return domain.DevelopmentPath{}, fmt.Errorf("invalid path: %w", v.Err)
		}
		return domain.DevelopmentPath{}, &ConflictError{Intervention: details.Interventions[v.Index], Err: v.Err}
	}

	return mutate(ctx, s, "update path", func(ctx context.Context) (domain.DevelopmentPath, error) {
		return s.api.UpdatePath(ctx, id, u)
	}, KeyPaths)
}

// checkIntervention validates d against its parent path. The path is loaded
// fresh; a failure to load it rejects the draft.
func (s *Service) checkIntervention(ctx context.Context, d domain.InterventionDraft) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid intervention: %w", err)
	}
	path, err := s.freshPath(ctx, d.PathID)
	if err != nil {
		return err
	}
	if err := s.canEditPath(path); err != nil {
		return err
	}
	if err := schedule.Validate(path.Interval(), d.Interval()); err != nil {
		return fmt.Errorf("invalid intervention: %w", err)
	}
	return nil
}

// CreateIntervention adds an intervention to a path. A missing end date is
// seeded to the day after the start before validation.
func (s *Service) CreateIntervention(ctx context.Context, d domain.InterventionDraft) (domain.Intervention, error) {
	d = d.Seeded()
	if d.Status == "" {
		d.Status = domain.InterventionPlanned
	}
	if err := s.checkIntervention(ctx, d); err != nil {
		return domain.Intervention{}, err
	}
	return mutate(ctx, s, "create intervention", func(ctx context.Context) (domain.Intervention, error) {
		return s.api.CreateIntervention(ctx, d)
	}, InterventionsKey(d.PathID))
}

// UpdateIntervention replaces an intervention after validating it against
// its path.
func (s *Service) UpdateIntervention(ctx context.Context, id string, d domain.InterventionDraft) (domain.Intervention, error) {
	if id == "" {
		return domain.Intervention{}, errors.New("intervention id is required")
	}
	if err := s.checkIntervention(ctx, d); err != nil {
		return domain.Intervention{}, err
	}
	return mutate(ctx, s, "update intervention", func(ctx context.Context) (domain.Intervention, error) {
		return s.api.UpdateIntervention(ctx, id, d)
	}, InterventionsKey(d.PathID))
}

func (s *Service) DeleteIntervention(ctx context.Context, pathID, id string) error {
	path, err := s.Path(ctx, pathID)
	if err != nil {
		return err
	}
	if err := s.canEditPath(path); err != nil {
		return err
	}
	_, err = mutate(ctx, s, "delete intervention", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteIntervention(ctx, id)
	}, InterventionsKey(pathID))
	return err
}

// Intervention finds one intervention of a path in the cached collection.
func (s *Service) Intervention(ctx context.Context, pathID, id string) (domain.Intervention, error) {
	snap, err := s.Interventions(ctx, pathID)
	if err != nil && !snap.HasData() {
		return domain.Intervention{}, err
	}
	for _, iv := range snap.Items {
		if iv.ID == id {
			return iv, nil
		}
	}
	return domain.Intervention{}, fmt.Errorf("intervention %s not found in path %s", id, pathID)
}
