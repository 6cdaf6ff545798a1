package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"SHAREMYTRIP_WEB/internal/layout"
	"SHAREMYTRIP_WEB/internal/middleware"
	"SHAREMYTRIP_WEB/internal/models"
	"SHAREMYTRIP_WEB/internal/profile"
	"SHAREMYTRIP_WEB/internal/toast"
	"SHAREMYTRIP_WEB/internal/views"
)

// ProfilePath is where the passenger profile page lives.
const ProfilePath = "/passenger/profile"

// form input name -> controller field
var editableInputs = []struct {
	input string
	field string
}{
	{"first_name", profile.FieldFirstName},
	{"last_name", profile.FieldLastName},
	{"mobile", profile.FieldMobile},
	{"mini_bio", profile.FieldMiniBio},
}

// PassengerPageHandler serves the passenger profile editor
type PassengerPageHandler struct {
	api    profile.PassengerAPI
	toasts toast.Store
	logger *zap.Logger
}

// NewPassengerPageHandler creates a new PassengerPageHandler instance
func NewPassengerPageHandler(api profile.PassengerAPI, toasts toast.Store, logger *zap.Logger) *PassengerPageHandler {
	return &PassengerPageHandler{api: api, toasts: toasts, logger: logger}
}

func (h *PassengerPageHandler) controller(r *http.Request, session string) (*profile.Controller, *toast.Notifier) {
	notifier := toast.NewNotifier(r.Context(), h.toasts, session, h.logger)
	c := profile.NewController(h.api, notifier, h.logger)
	c.SwitchUser(r.Context(), middleware.CurrentUser(r.Context()))
	return c, notifier
}

// Show renders the form, loading the profile when a user is signed in
func (h *PassengerPageHandler) Show(w http.ResponseWriter, r *http.Request) {
	session := toast.Session(w, r)
	c, _ := h.controller(r, session)
	h.render(w, r, session, c.User(), views.ProfilePage(views.ProfileFormFrom(c, ProfilePath)), http.StatusOK)
}

// Submit applies the posted edits and writes them back. Invalid input is
// re-rendered inline; every other outcome redirects back with a toast.
func (h *PassengerPageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := toast.Session(w, r)
	user := middleware.CurrentUser(r.Context())
	if !user.SignedIn() {
		h.render(w, r, session, user, views.MessagePage(views.Message{
			Heading:  "Sign in required",
			Text:     "Please sign in to update your profile.",
			Link:     "/login",
			LinkText: "Login",
		}), http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, r, session, user, views.MessagePage(views.Message{
			Heading:  "Invalid request",
			Text:     "The form could not be read.",
			Link:     ProfilePath,
			LinkText: "Back to profile",
		}), http.StatusBadRequest)
		return
	}

	c, notifier := h.controller(r, session)
	// read-only fields come from the fetch; without it the PUT would blank them
	if !c.Loaded() {
		notifier.NotifyError(profile.MsgUpdateError)
		http.Redirect(w, r, ProfilePath, http.StatusSeeOther)
		return
	}

	for _, in := range editableInputs {
		if err := c.SetField(in.field, r.PostForm.Get(in.input)); err != nil {
			h.logger.Error("apply form field", zap.String("field", in.field), zap.Error(err))
		}
	}

	switch c.Submit(r.Context()) {
	case profile.SubmitInvalid:
		h.render(w, r, session, user, views.ProfilePage(views.ProfileFormFrom(c, ProfilePath)), http.StatusUnprocessableEntity)
	default:
		http.Redirect(w, r, ProfilePath, http.StatusSeeOther)
	}
}

func (h *PassengerPageHandler) render(w http.ResponseWriter, r *http.Request, session string, user models.CurrentUser, content templ.Component, status int) {
	toasts, err := h.toasts.Drain(r.Context(), session)
	if err != nil {
		h.logger.Warn("drain toasts", zap.Error(err))
	}

	page := layout.Shell(layout.Page{
		Title:   "Passenger Profile",
		User:    user,
		Toasts:  toasts,
		Content: content,
	})
	templ.Handler(page, templ.WithStatus(status), templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		h.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
