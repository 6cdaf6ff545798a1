// Package profile holds the passenger profile form: its editable state, field
// validation, and the load/submit round trips against the passenger API.
package profile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"SHAREMYTRIP_WEB/internal/dto"
	"SHAREMYTRIP_WEB/internal/models"
)

// Field names, shared by the error map and SetField.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldMobile      = "mobile"
	FieldDateOfBirth = "dateOfBirth"
	FieldAadharCard  = "aadharCard"
	FieldMiniBio     = "miniBio"
)

// Toast messages for the submit outcome.
const (
	MsgUpdated      = "Profile updated successfully"
	MsgUpdateFailed = "Profile update failed"
	MsgUpdateError  = "Error updating profile"
)

var (
	ErrNoUser        = errors.New("profile: no signed-in user")
	ErrReadOnlyField = errors.New("profile: field is read-only")
	ErrUnknownField  = errors.New("profile: unknown field")
)

// PassengerAPI is the remote system of record.
type PassengerAPI interface {
	GetPassenger(ctx context.Context, id string) (*dto.PassengerProfile, error)
	UpdatePassenger(ctx context.Context, id string, profile dto.PassengerProfile) (int, error)
}

// Notifier is the toast surface.
type Notifier interface {
	NotifySuccess(msg string)
	NotifyError(msg string)
}

// Fields is the local copy of a passenger profile.
type Fields struct {
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	DateOfBirth string
	AadharCard  string
	MiniBio     string
}

func fieldsFromDTO(p *dto.PassengerProfile) Fields {
	return Fields{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Mobile:      p.Mobile,
		DateOfBirth: p.DateOfBirth,
		AadharCard:  p.AadharCard,
		MiniBio:     p.MiniBio,
	}
}

func (f Fields) toDTO() dto.PassengerProfile {
	return dto.PassengerProfile{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Mobile:      f.Mobile,
		DateOfBirth: f.DateOfBirth,
		AadharCard:  f.AadharCard,
		MiniBio:     f.MiniBio,
	}
}

// FieldState tracks a field between keystrokes and submit attempts.
type FieldState int

const (
	Untouched FieldState = iota
	Edited
	Valid
	Invalid
)

func (s FieldState) String() string {
	switch s {
	case Edited:
		return "edited"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// SubmitResult is the outcome of Submit.
type SubmitResult int

const (
	SubmitInvalid SubmitResult = iota
	SubmitSucceeded
	SubmitFailed
)

// Controller owns the form state for one signed-in user.
type Controller struct {
	api      PassengerAPI
	notifier Notifier
	logger   *zap.Logger

	mu     sync.Mutex
	user   models.CurrentUser
	fields Fields
	errors Errors
	states map[string]FieldState
	loaded bool
}

func NewController(api PassengerAPI, notifier Notifier, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		api:      api,
		notifier: notifier,
		logger:   logger,
		errors:   Errors{},
		states:   map[string]FieldState{},
	}
}

// SwitchUser makes u the current user. A different id discards the local
// profile and, when the new id is set, loads it once. It reports whether a
// fetch was issued.
func (c *Controller) SwitchUser(ctx context.Context, u models.CurrentUser) bool {
	c.mu.Lock()
	if c.user.ID == u.ID {
		c.user = u
		c.mu.Unlock()
		return false
	}
	c.user = u
	c.fields = Fields{}
	c.errors = Errors{}
	c.states = map[string]FieldState{}
	c.loaded = false
	c.mu.Unlock()

	if !u.SignedIn() {
		return false
	}
	_ = c.Load(ctx) // failures are logged by Load
	return true
}

// Load fetches the current user's profile into local state. On failure the
// state is left as it was.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	id := c.user.ID
	c.mu.Unlock()
	if id == "" {
		return ErrNoUser
	}

	p, err := c.api.GetPassenger(ctx, id)
	if err != nil {
		c.logger.Error("Error fetching profile data",
			zap.String("passenger_id", id),
			zap.Error(err))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// the user may have changed while the request was in flight
	if c.user.ID != id {
		return nil
	}
	c.fields = fieldsFromDTO(p)
	c.states = map[string]FieldState{}
	c.loaded = true
	return nil
}

// Loaded reports whether the current user's profile has been fetched since
// the last user switch. Until then the read-only fields are blank.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// SetField applies a user edit. Email, date of birth and ID card are display only.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case FieldFirstName:
		c.fields.FirstName = value
	case FieldLastName:
		c.fields.LastName = value
	case FieldMobile:
		c.fields.Mobile = value
	case FieldMiniBio:
		c.fields.MiniBio = value
	case FieldEmail, FieldDateOfBirth, FieldAadharCard:
		return ErrReadOnlyField
	default:
		return ErrUnknownField
	}
	c.states[name] = Edited
	return nil
}

// Validate recomputes the error map and reports whether it is empty.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() bool {
	c.errors = ValidateFields(c.fields)
	for _, name := range []string{FieldFirstName, FieldLastName, FieldMobile} {
		if c.errors.Has(name) {
			c.states[name] = Invalid
		} else {
			c.states[name] = Valid
		}
	}
	return len(c.errors) == 0
}

// Submit validates and, when valid, writes the whole profile back. Exactly
// one toast is raised for every attempt that reaches the network.
func (c *Controller) Submit(ctx context.Context) SubmitResult {
	c.mu.Lock()
	if !c.validateLocked() {
		c.mu.Unlock()
		return SubmitInvalid
	}
	id := c.user.ID
	payload := c.fields.toDTO()
	c.mu.Unlock()

	if id == "" {
		c.logger.Error("Error updating profile", zap.Error(ErrNoUser))
		c.notifier.NotifyError(MsgUpdateError)
		return SubmitFailed
	}

	status, err := c.api.UpdatePassenger(ctx, id, payload)
	if err != nil {
		c.logger.Error("Error updating profile",
			zap.String("passenger_id", id),
			zap.Int("status", status),
			zap.Error(err))
		c.notifier.NotifyError(MsgUpdateError)
		return SubmitFailed
	}

	c.logger.Info("Profile update answered",
		zap.String("passenger_id", id),
		zap.Int("status", status))
	if status != 200 {
		c.notifier.NotifyError(MsgUpdateFailed)
		return SubmitFailed
	}
	c.notifier.NotifySuccess(MsgUpdated)
	return SubmitSucceeded
}

func (c *Controller) User() models.CurrentUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Greeting is the page heading for the current user.
func (c *Controller) Greeting() string {
	u := c.User()
	return strings.TrimSpace("Welcome " + strings.TrimSpace(u.FirstName+" "+u.LastName))
}

func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Errors returns a copy of the last validation result.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Errors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *Controller) FieldState(name string) FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[name]
}
