package store

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/statemachine"
)

// The remote API can list and add feedback but not change it. In remote
// mode an admin's status and response live in a review overlay kept under
// feedbackReviews and merged onto every fetched list.

func feedbackID(f models.CustomerFeedback) string { return f.ID }

func overlayReviews(feedbacks []models.CustomerFeedback, reviews map[string]models.FeedbackReview) []models.CustomerFeedback {
	out := make([]models.CustomerFeedback, len(feedbacks))
	for i, f := range feedbacks {
		if r, ok := reviews[f.ID]; ok {
			f.Status = r.Status
			f.AdminResponse = r.AdminResponse
			f.UpdatedAt = r.UpdatedAt
		}
		out[i] = f
	}
	return out
}

func (s *Store) reloadFeedback(ctx context.Context) {
	reload(ctx, s, "feedback", s.gw.ListFeedback, func(items []models.CustomerFeedback) {
		s.feedbacks = overlayReviews(items, s.reviews)
	})
}

func (s *Store) AddFeedback(ctx context.Context, f models.CustomerFeedback) (models.CustomerFeedback, error) {
	const title = "Add Failed"
	if err := s.validate.Struct(title, f); err != nil {
		return models.CustomerFeedback{}, err
	}
	now := s.stamp()
	f.ID = s.newID()
	f.Status = models.FeedbackNew
	f.AdminResponse = ""
	f.CreatedAt, f.UpdatedAt = now, now

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.remote() {
		if err := s.gw.AddFeedback(ctx, f); err != nil {
			return models.CustomerFeedback{}, apperr.Network(title, "Failed to add the feedback. Please try again.", err)
		}
		s.reloadFeedback(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyFeedbacks, title, &s.feedbacks, appended(s.Feedbacks(), f)); err != nil {
		return models.CustomerFeedback{}, err
	}
	s.log.Info("FEEDBACK", fmt.Sprintf("recorded %d-star %s feedback from %s", f.Rating, f.Category, f.CustomerName))
	return f, nil
}

func (s *Store) localOnly(title, what string) error {
	if s.remote() {
		return apperr.Domain(title, what+" is only available in local mode.", apperr.ErrNotSupported)
	}
	return nil
}

// UpdateFeedback replaces a feedback record; local mode only
func (s *Store) UpdateFeedback(ctx context.Context, f models.CustomerFeedback) (models.CustomerFeedback, error) {
	const title = "Update Failed"
	if err := s.localOnly(title, "Editing feedback"); err != nil {
		return models.CustomerFeedback{}, err
	}
	if err := s.validate.Struct(title, f); err != nil {
		return models.CustomerFeedback{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Feedbacks()
	i, ok := find(current, f.ID, feedbackID)
	if !ok {
		return models.CustomerFeedback{}, apperr.NotFound("Feedback", f.ID)
	}
	if f.Status == "" {
		f.Status = current[i].Status
	}
	if f.Status != current[i].Status {
		if err := statemachine.FeedbackProgression.Check(current[i].Status, f.Status); err != nil {
			return models.CustomerFeedback{}, apperr.Domain(title, err.Error(), err)
		}
	}
	f.CreatedAt = current[i].CreatedAt
	f.UpdatedAt = s.stamp()
	if err := commitLocal(ctx, s, persist.KeyFeedbacks, title, &s.feedbacks, replaced(current, i, f)); err != nil {
		return models.CustomerFeedback{}, err
	}
	return f, nil
}

func (s *Store) UpdateFeedbackStatus(ctx context.Context, id string, to models.FeedbackStatus) (models.CustomerFeedback, error) {
	const title = "Update Failed"

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Feedbacks()
	i, ok := find(current, id, feedbackID)
	if !ok {
		return models.CustomerFeedback{}, apperr.NotFound("Feedback", id)
	}
	if err := statemachine.FeedbackProgression.Check(current[i].Status, to); err != nil {
		return models.CustomerFeedback{}, apperr.Domain(title, err.Error(), err)
	}
	next := current[i]
	next.Status = to
	next.UpdatedAt = s.stamp()
	if err := s.saveFeedback(ctx, title, current, i, next); err != nil {
		return models.CustomerFeedback{}, err
	}
	s.log.Info("FEEDBACK", fmt.Sprintf("%s is now %s", id, to))
	return next, nil
}

// RespondToFeedback stores the admin's reply and marks the feedback as
// responded unless it has already moved past that.
func (s *Store) RespondToFeedback(ctx context.Context, id, response string) (models.CustomerFeedback, error) {
	const title = "Response Failed"
	response = strings.TrimSpace(response)
	if response == "" {
		return models.CustomerFeedback{}, apperr.Validation(title, map[string]string{"adminResponse": "Response is required"})
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Feedbacks()
	i, ok := find(current, id, feedbackID)
	if !ok {
		return models.CustomerFeedback{}, apperr.NotFound("Feedback", id)
	}
	next := current[i]
	next.AdminResponse = response
	if statemachine.FeedbackProgression.Check(next.Status, models.FeedbackResponded) == nil {
		next.Status = models.FeedbackResponded
	}
	next.UpdatedAt = s.stamp()
	if err := s.saveFeedback(ctx, title, current, i, next); err != nil {
		return models.CustomerFeedback{}, err
	}
	return next, nil
}

// saveFeedback writes the admin-owned fields of current[i]; callers hold writeMu
func (s *Store) saveFeedback(ctx context.Context, title string, current []models.CustomerFeedback, i int, f models.CustomerFeedback) error {
	if !s.remote() {
		return commitLocal(ctx, s, persist.KeyFeedbacks, title, &s.feedbacks, replaced(current, i, f))
	}

	s.mu.Lock()
	prevReviews, prevFeedbacks := s.reviews, s.feedbacks
	reviews := maps.Clone(s.reviews)
	if reviews == nil {
		reviews = map[string]models.FeedbackReview{}
	}
	reviews[f.ID] = models.FeedbackReview{Status: f.Status, AdminResponse: f.AdminResponse, UpdatedAt: f.UpdatedAt}
	s.reviews = reviews
	s.feedbacks = overlayReviews(s.feedbacks, reviews)
	s.recomputeLocked()
	s.mu.Unlock()

	if err := s.kv.Save(ctx, persist.KeyFeedbackReviews, reviews); err != nil {
		s.mu.Lock()
		s.reviews, s.feedbacks = prevReviews, prevFeedbacks
		s.recomputeLocked()
		s.mu.Unlock()
		return apperr.Storage(title, err)
	}
	return nil
}

// DeleteFeedback removes a feedback record; local mode only
func (s *Store) DeleteFeedback(ctx context.Context, id string) error {
	const title = "Delete Failed"
	if err := s.localOnly(title, "Deleting feedback"); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Feedbacks()
	i, ok := find(current, id, feedbackID)
	if !ok {
		return apperr.NotFound("Feedback", id)
	}
	return commitLocal(ctx, s, persist.KeyFeedbacks, title, &s.feedbacks, removed(current, i))
}
