package store

import (
	"context"
	"fmt"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
)

// Reservations have no remote endpoint and always live in the KV store.

func reservationID(r models.Reservation) string { return r.ID }

func (s *Store) AddReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	const title = "Add Failed"
	if err := s.validate.Struct(title, r); err != nil {
		return models.Reservation{}, err
	}
	now := s.stamp()
	r.ID = s.newID()
	if r.Status == "" {
		r.Status = models.ReservationPending
	}
	r.CreatedAt, r.UpdatedAt = now, now

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := commitLocal(ctx, s, persist.KeyReservations, title, &s.reservations, appended(s.Reservations(), r)); err != nil {
		return models.Reservation{}, err
	}
	s.log.Info("RESERVATION", fmt.Sprintf("booked %s for %s %s (party of %d)", r.CustomerName, r.Date, r.Time, r.PartySize))
	return r, nil
}

func (s *Store) UpdateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	const title = "Update Failed"
	if err := s.validate.Struct(title, r); err != nil {
		return models.Reservation{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Reservations()
	i, ok := find(current, r.ID, reservationID)
	if !ok {
		return models.Reservation{}, apperr.NotFound("Reservation", r.ID)
	}
	r.CreatedAt = current[i].CreatedAt
	r.UpdatedAt = s.stamp()
	if r.Status == "" {
		r.Status = current[i].Status
	}
	if err := commitLocal(ctx, s, persist.KeyReservations, title, &s.reservations, replaced(current, i, r)); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

// SetReservationStatus confirms or cancels a booking
func (s *Store) SetReservationStatus(ctx context.Context, id string, status models.ReservationStatus) (models.Reservation, error) {
	const title = "Update Failed"
	if err := s.validate.Var(title, "status", string(status), "required,reservationstatus"); err != nil {
		return models.Reservation{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Reservations()
	i, ok := find(current, id, reservationID)
	if !ok {
		return models.Reservation{}, apperr.NotFound("Reservation", id)
	}
	next := current[i]
	next.Status = status
	next.UpdatedAt = s.stamp()
	if err := commitLocal(ctx, s, persist.KeyReservations, title, &s.reservations, replaced(current, i, next)); err != nil {
		return models.Reservation{}, err
	}
	s.log.Info("RESERVATION", fmt.Sprintf("%s is now %s", id, status))
	return next, nil
}

func (s *Store) DeleteReservation(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Reservations()
	i, ok := find(current, id, reservationID)
	if !ok {
		return apperr.NotFound("Reservation", id)
	}
	return commitLocal(ctx, s, persist.KeyReservations, "Delete Failed", &s.reservations, removed(current, i))
}
