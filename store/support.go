package store

import (
	"context"
	"fmt"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/statemachine"
)

func ticketID(t models.SupportTicket) string { return t.ID }

func (s *Store) reloadTickets(ctx context.Context) {
	reload(ctx, s, "support tickets", s.gw.ListTickets, func(items []models.SupportTicket) { s.tickets = items })
}

func (s *Store) AddTicket(ctx context.Context, t models.SupportTicket) (models.SupportTicket, error) {
	const title = "Add Failed"
	if err := s.validate.Struct(title, t); err != nil {
		return models.SupportTicket{}, err
	}
	now := s.stamp()
	t.ID = s.newID()
	t.Status = models.TicketOpen
	t.CreatedAt, t.UpdatedAt = now, now

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.remote() {
		if err := s.gw.AddTicket(ctx, t); err != nil {
			return models.SupportTicket{}, apperr.Network(title, "Failed to add the support ticket. Please try again.", err)
		}
		s.reloadTickets(ctx)
	} else if err := commitLocal(ctx, s, persist.KeySupportTickets, title, &s.tickets, appended(s.Tickets(), t)); err != nil {
		return models.SupportTicket{}, err
	}
	s.log.Info("SUPPORT", fmt.Sprintf("opened %s (%s, %s)", t.ID, t.ProblemType, t.Priority))
	return t, nil
}

// UpdateTicket edits a ticket. A changed status must move forward.
func (s *Store) UpdateTicket(ctx context.Context, t models.SupportTicket) (models.SupportTicket, error) {
	const title = "Update Failed"
	if err := s.validate.Struct(title, t); err != nil {
		return models.SupportTicket{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Tickets()
	i, ok := find(current, t.ID, ticketID)
	if !ok {
		return models.SupportTicket{}, apperr.NotFound("Support Ticket", t.ID)
	}
	if t.Status == "" {
		t.Status = current[i].Status
	}
	if t.Status != current[i].Status {
		if err := statemachine.TicketProgression.Check(current[i].Status, t.Status); err != nil {
			return models.SupportTicket{}, apperr.Domain(title, err.Error(), err)
		}
	}
	t.CreatedAt = current[i].CreatedAt
	t.UpdatedAt = s.stamp()
	if err := s.saveTicket(ctx, title, current, i, t); err != nil {
		return models.SupportTicket{}, err
	}
	return t, nil
}

func (s *Store) UpdateTicketStatus(ctx context.Context, id string, to models.TicketStatus) (models.SupportTicket, error) {
	const title = "Update Failed"

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Tickets()
	i, ok := find(current, id, ticketID)
	if !ok {
		return models.SupportTicket{}, apperr.NotFound("Support Ticket", id)
	}
	if err := statemachine.TicketProgression.Check(current[i].Status, to); err != nil {
		return models.SupportTicket{}, apperr.Domain(title, err.Error(), err)
	}
	next := current[i]
	next.Status = to
	next.UpdatedAt = s.stamp()
	if err := s.saveTicket(ctx, title, current, i, next); err != nil {
		return models.SupportTicket{}, err
	}
	s.log.Info("SUPPORT", fmt.Sprintf("%s is now %s", id, to))
	return next, nil
}

// saveTicket writes current[i] = t; callers hold writeMu
func (s *Store) saveTicket(ctx context.Context, title string, current []models.SupportTicket, i int, t models.SupportTicket) error {
	if s.remote() {
		if err := s.gw.UpdateTicket(ctx, t); err != nil {
			return apperr.Network(title, "Failed to update the support ticket. Please try again.", err)
		}
		s.reloadTickets(ctx)
		return nil
	}
	return commitLocal(ctx, s, persist.KeySupportTickets, title, &s.tickets, replaced(current, i, t))
}

func (s *Store) DeleteTicket(ctx context.Context, id string) error {
	const title = "Delete Failed"

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Tickets()
	i, ok := find(current, id, ticketID)
	if !ok {
		return apperr.NotFound("Support Ticket", id)
	}
	if s.remote() {
		if err := s.gw.DeleteTicket(ctx, id); err != nil {
			return apperr.Network(title, "Failed to delete the support ticket. Please try again.", err)
		}
		s.reloadTickets(ctx)
		return nil
	}
	return commitLocal(ctx, s, persist.KeySupportTickets, title, &s.tickets, removed(current, i))
}
