package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"voltstore/models"
	"voltstore/services"
)

type Handler struct {
	us  services.UserService
	ps  services.ProductService
	cs  services.CartService
	cls services.CollectionService
	ors services.OrderService
	ses services.SettingsService
	ws  services.WishlistService
}

type HandlerParams struct {
	UsrService services.UserService
	PrdService services.ProductService
	CrtService services.CartService
	ColService services.CollectionService
	OrdService services.OrderService
	SetService services.SettingsService
	WshService services.WishlistService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		us:  params.UsrService,
		ps:  params.PrdService,
		cs:  params.CrtService,
		cls: params.ColService,
		ors: params.OrdService,
		ses: params.SetService,
		ws:  params.WshService,
	}
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	name := "guest"
	if c, err := r.Cookie("sessionId"); err == nil {
		if user, exists := h.us.CurrentUser(c.Value); exists {
			name = user.Name
		}
	}
	w.Write([]byte("Welcome to " + h.ses.GetSettings().StoreName + ", " + name + "!"))
}

// auth

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	reg := models.Registration{}
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		logrus.WithError(err).Info("Register: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	user, sessionId, err := h.us.Register(reg)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	setSessionCookie(w, sessionId)
	writeJSON(w, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	creds := models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logrus.WithError(err).Info("Login: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	user, sessionId, err := h.us.Login(creds.Email, creds.Password)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	setSessionCookie(w, sessionId)
	writeJSON(w, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("sessionId")
	if err == nil {
		if e := h.us.Logout(c.Value); e != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("sessionId")
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	user, exists := h.us.CurrentUser(c.Value)
	if !exists {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, user)
}

// middleware

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := r.Cookie("sessionId")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ok, e := h.us.CheckAuth(sessionId.Value)
		if !ok {
			if e != nil {
				http.Error(w, "server error", http.StatusInternalServerError)
			} else {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := r.Cookie("sessionId")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ok, err := h.us.CheckAdmin(sessionId.Value)
		if !ok {
			if err != nil {
				logrus.WithError(err).Error("CheckAdmin failed")
				http.Error(w, "server error", http.StatusInternalServerError)
			} else {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.Errorf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrServerError):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrBadRequest), errors.Is(err, models.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrCouponNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusNotAcceptable)
	case errors.Is(err, models.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrMinimumNotMet):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func setSessionCookie(w http.ResponseWriter, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   sessionId,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("Marshal failed")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}
