package handlers_test

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rental-project/rental-server/internal/models"
	"github.com/rental-project/rental-server/internal/services"
)

// In-memory store fakes implementing the handler-level store interfaces.

type memUserStore struct {
	users         []models.User
	usernameCalls int
}

func (s *memUserStore) ListUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *memUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.users = append(s.users, *user)
	return nil
}

func (s *memUserStore) UpdateUser(_ context.Context, user *models.User) error {
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memUserStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memUserStore) GetUsernamesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	s.usernameCalls++
	usernames := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		for i := range s.users {
			if s.users[i].ID == id {
				usernames[id] = s.users[i].Username
			}
		}
	}
	return usernames, nil
}

type memNoteStore struct {
	assigned map[uuid.UUID]bool
}

func (s *memNoteStore) UserHasNotes(_ context.Context, userID uuid.UUID) (bool, error) {
	return s.assigned[userID], nil
}

type memCarStore struct {
	cars    []models.Car
	counter int64
}

func (s *memCarStore) ListCars(_ context.Context) ([]models.Car, error) {
	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out, nil
}

func (s *memCarStore) GetCarByID(_ context.Context, id uuid.UUID) (*models.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == id {
			car := s.cars[i]
			return &car, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memCarStore) CreateCar(_ context.Context, car *models.Car) error {
	s.counter++
	car.Ticket = s.counter
	s.cars = append(s.cars, *car)
	return nil
}

func (s *memCarStore) UpdateCar(_ context.Context, car *models.Car) error {
	for i := range s.cars {
		if s.cars[i].ID == car.ID {
			s.cars[i] = *car
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memCarStore) DeleteCar(_ context.Context, id uuid.UUID) error {
	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type memReservationStore struct {
	reservations []models.Reservation
}

func (s *memReservationStore) ListReservations(_ context.Context) ([]models.Reservation, error) {
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

func (s *memReservationStore) GetReservationByID(_ context.Context, id uuid.UUID) (*models.Reservation, error) {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			r := s.reservations[i]
			return &r, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memReservationStore) CreateReservation(_ context.Context, r *models.Reservation) error {
	s.reservations = append(s.reservations, *r)
	return nil
}

func (s *memReservationStore) UpdateReservation(_ context.Context, r *models.Reservation) error {
	for i := range s.reservations {
		if s.reservations[i].ID == r.ID {
			s.reservations[i] = *r
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memReservationStore) DeleteReservation(_ context.Context, id uuid.UUID) error {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeCheckout struct {
	calls []services.CheckoutItem
	url   string
	err   error
}

func (f *fakeCheckout) CreateSession(_ context.Context, item services.CheckoutItem) (string, error) {
	f.calls = append(f.calls, item)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
