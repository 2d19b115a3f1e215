package store

import (
	"voltstore/entities"
	"voltstore/models"
)

func (s *Store) Users() []entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.User{}, s.users...)
}

func (s *Store) UserByEmail(email string) (entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return entities.User{}, false
}

func (s *Store) UserById(id int) (entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Id == id {
			return u, true
		}
	}
	return entities.User{}, false
}

// AddUser assigns the next id and enforces email uniqueness. The caller is
// responsible for hashing the password beforehand; the store never sees
// plaintext credentials.
func (s *Store) AddUser(u entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxId := 0
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return entities.User{}, models.ErrEmailTaken
		}
		if existing.Id > maxId {
			maxId = existing.Id
		}
	}
	u.Id = maxId + 1
	s.users = append(s.users, u)
	return u, nil
}
