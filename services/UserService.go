package services

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type UserService struct {
	st *store.Store
	sr repository.SnapshotRepository
	ss repository.SessionRepository
}

func NewUserService(st *store.Store, snapshotRepo repository.SnapshotRepository, sessionRepo repository.SessionRepository) UserService {
	return UserService{
		st: st,
		sr: snapshotRepo,
		ss: sessionRepo,
	}
}

// Register creates the account and logs it straight in, returning a session
// token alongside the user.
func (us *UserService) Register(reg models.Registration) (user entities.User, sessionId string, err error) {
	if reg.Email == "" || reg.Password == "" {
		logrus.Info("Register: email and password are required")
		err = models.ErrBadRequest
		return
	}
	hash, err := us.EncryptPassword(reg.Password)
	if err != nil {
		return
	}
	user, err = us.st.AddUser(entities.User{
		Email:        reg.Email,
		PasswordHash: hash,
		Name:         reg.Name,
		Phone:        reg.Phone,
	})
	if err != nil {
		return
	}
	persist(us.st, us.sr, "Register")
	sessionId, err = us.ss.CreateSession(user.Id, user.IsAdmin)
	return
}

// Login resolves email+password to a fresh session. Unknown emails and
// wrong passwords report the same reason code.
func (us *UserService) Login(email, password string) (user entities.User, sessionId string, err error) {
	user, ok := us.st.UserByEmail(email)
	if !ok || !us.VerifyPassword(user.PasswordHash, password) {
		logrus.WithField("email", email).Info("Login failed")
		err = models.ErrInvalidCredentials
		return
	}
	sessionId, err = us.ss.CreateSession(user.Id, user.IsAdmin)
	return
}

func (us *UserService) Logout(sessionId string) (err error) {
	err = us.ss.DeleteSession(sessionId)
	return
}

func (us *UserService) CurrentUser(sessionId string) (user entities.User, exists bool) {
	userId, _, ok, err := us.ss.GetSessionInfo(sessionId)
	if err != nil || !ok {
		return
	}
	return us.st.UserById(userId)
}

func (us *UserService) CheckAuth(sessionId string) (bool, error) {
	return us.ss.CheckSession(sessionId)
}

func (us *UserService) CheckAdmin(sessionId string) (access bool, err error) {
	_, isAdmin, exists, e := us.ss.GetSessionInfo(sessionId)
	if e != nil {
		err = e
		return
	}
	access = exists && isAdmin
	return
}

func (us *UserService) EncryptPassword(userPass string) (hashedPassword string, err error) {
	password, err := bcrypt.GenerateFromPassword([]byte(userPass), 8)
	if err != nil {
		logrus.WithError(err).Error("EncryptPassword failed")
		err = models.ErrServerError
		return
	}
	hashedPassword = string(password)
	return
}

func (us *UserService) VerifyPassword(hashedPassword string, sentPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(sentPassword)) == nil
}

// EnsureDemoUsers seeds the two demo accounts on a fresh store. Passwords
// are hashed here at startup; the store never holds plaintext.
func (us *UserService) EnsureDemoUsers() (err error) {
	if len(us.st.Users()) > 0 {
		return
	}
	demo := []struct {
		email, password, name, phone string
		admin                        bool
	}{
		{"demo@volt.com", "demo123", "Juan Pérez", "+54 11 1234-5678", true},
		{"admin@volt.com", "admin123", "Admin VOLT", "+54 11 9999-9999", true},
	}
	for _, d := range demo {
		hash, e := us.EncryptPassword(d.password)
		if e != nil {
			err = e
			return
		}
		if _, e := us.st.AddUser(entities.User{
			Email:        d.email,
			PasswordHash: hash,
			Name:         d.name,
			Phone:        d.phone,
			IsAdmin:      d.admin,
		}); e != nil {
			err = e
			return
		}
	}
	persist(us.st, us.sr, "EnsureDemoUsers")
	return
}
