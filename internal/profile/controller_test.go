package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SHAREMYTRIP_WEB/internal/dto"
	"SHAREMYTRIP_WEB/internal/models"
)

type fakeAPI struct {
	mu        sync.Mutex
	profiles  map[string]*dto.PassengerProfile
	getErr    error
	putStatus int
	putErr    error

	gets []string
	puts []dto.PassengerProfile
}

func (f *fakeAPI) GetPassenger(_ context.Context, id string) (*dto.PassengerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return &dto.PassengerProfile{}, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeAPI) UpdatePassenger(_ context.Context, _ string, p dto.PassengerProfile) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, p)
	return f.putStatus, f.putErr
}

type recorder struct {
	successes []string
	failures  []string
}

func (r *recorder) NotifySuccess(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) NotifyError(msg string)   { r.failures = append(r.failures, msg) }

var jane = models.CurrentUser{ID: "p-1", FirstName: "Jane", LastName: "Roe"}

func newController(api *fakeAPI) (*Controller, *recorder) {
	rec := &recorder{}
	return NewController(api, rec, zap.NewNop()), rec
}

func fill(t *testing.T, c *Controller, first, last, mobile string) {
	t.Helper()
	require.NoError(t, c.SetField(FieldFirstName, first))
	require.NoError(t, c.SetField(FieldLastName, last))
	require.NoError(t, c.SetField(FieldMobile, mobile))
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	api := &fakeAPI{profiles: map[string]*dto.PassengerProfile{
		"p-1": {FirstName: "Jane", Mobile: "8123456789"},
	}}
	c, _ := newController(api)

	require.True(t, c.SwitchUser(context.Background(), jane))

	assert.Equal(t, Fields{FirstName: "Jane", Mobile: "8123456789"}, c.Fields())
	assert.Equal(t, []string{"p-1"}, api.gets)
}

func TestLoadWithoutUser(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newController(api)

	assert.ErrorIs(t, c.Load(context.Background()), ErrNoUser)
	assert.False(t, c.SwitchUser(context.Background(), models.CurrentUser{}))
	assert.Empty(t, api.gets)
}

func TestLoadFailureLeavesState(t *testing.T) {
	api := &fakeAPI{profiles: map[string]*dto.PassengerProfile{
		"p-1": {FirstName: "Jane", LastName: "Roe", Mobile: "8123456789"},
	}}
	c, rec := newController(api)
	c.SwitchUser(context.Background(), jane)
	require.NoError(t, c.SetField(FieldMiniBio, "hello"))

	api.getErr = errors.New("connection refused")
	err := c.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "hello", c.Fields().MiniBio)
	assert.Equal(t, "Jane", c.Fields().FirstName)
	assert.Empty(t, rec.successes)
	assert.Empty(t, rec.failures)
}

func TestSwitchUserRefetchesOncePerChange(t *testing.T) {
	api := &fakeAPI{profiles: map[string]*dto.PassengerProfile{
		"p-1": {FirstName: "Jane"},
		"p-2": {FirstName: "John"},
	}}
	c, _ := newController(api)
	ctx := context.Background()

	assert.True(t, c.SwitchUser(ctx, jane))
	assert.False(t, c.SwitchUser(ctx, jane))
	assert.True(t, c.SwitchUser(ctx, models.CurrentUser{ID: "p-2", FirstName: "John"}))
	assert.False(t, c.SwitchUser(ctx, models.CurrentUser{ID: "p-2", FirstName: "Johnny"}))

	assert.Equal(t, []string{"p-1", "p-2"}, api.gets)
	assert.Equal(t, "John", c.Fields().FirstName)
	assert.Equal(t, "Welcome Johnny", c.Greeting())
}

func TestLoadedTracksSuccessfulFetch(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("connection reset")}
	c, _ := newController(api)
	ctx := context.Background()

	assert.False(t, c.Loaded())
	c.SwitchUser(ctx, jane)
	assert.False(t, c.Loaded())

	api.getErr = nil
	require.NoError(t, c.Load(ctx))
	assert.True(t, c.Loaded())

	api.getErr = errors.New("connection reset")
	c.SwitchUser(ctx, models.CurrentUser{ID: "p-2"})
	assert.False(t, c.Loaded())
}

// gatedAPI holds GetPassenger for one id until release is closed.
type gatedAPI struct {
	*fakeAPI
	gated   string
	started chan struct{}
	release chan struct{}
}

func (g *gatedAPI) GetPassenger(ctx context.Context, id string) (*dto.PassengerProfile, error) {
	if id == g.gated {
		close(g.started)
		<-g.release
	}
	return g.fakeAPI.GetPassenger(ctx, id)
}

func TestLoadDiscardedAfterUserSwitch(t *testing.T) {
	api := &gatedAPI{
		fakeAPI: &fakeAPI{profiles: map[string]*dto.PassengerProfile{
			"p-1": {FirstName: "Jane", Email: "jane@example.com"},
			"p-2": {FirstName: "John", Email: "john@example.com"},
		}},
		gated:   "p-1",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewController(api, &recorder{}, zap.NewNop())
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.SwitchUser(ctx, jane)
	}()
	<-api.started

	john := models.CurrentUser{ID: "p-2", FirstName: "John"}
	require.True(t, c.SwitchUser(ctx, john))
	close(api.release)
	<-done

	assert.Equal(t, john, c.User())
	assert.Equal(t, Fields{FirstName: "John", Email: "john@example.com"}, c.Fields())
	assert.True(t, c.Loaded())
}

func TestSwitchUserToAnonymousClearsState(t *testing.T) {
	api := &fakeAPI{profiles: map[string]*dto.PassengerProfile{"p-1": {FirstName: "Jane"}}}
	c, _ := newController(api)
	c.SwitchUser(context.Background(), jane)

	assert.False(t, c.SwitchUser(context.Background(), models.CurrentUser{}))
	assert.Equal(t, Fields{}, c.Fields())
	assert.Len(t, api.gets, 1)
}

func TestSetFieldReadOnly(t *testing.T) {
	api := &fakeAPI{profiles: map[string]*dto.PassengerProfile{
		"p-1": {Email: "jane@example.com", DateOfBirth: "1990-01-01", AadharCard: "1234"},
	}}
	c, _ := newController(api)
	c.SwitchUser(context.Background(), jane)

	for _, name := range []string{FieldEmail, FieldDateOfBirth, FieldAadharCard} {
		assert.ErrorIs(t, c.SetField(name, "x"), ErrReadOnlyField)
	}
	assert.ErrorIs(t, c.SetField("password", "x"), ErrUnknownField)

	f := c.Fields()
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, "1990-01-01", f.DateOfBirth)
	assert.Equal(t, "1234", f.AadharCard)
}

func TestValidateValidInput(t *testing.T) {
	c, _ := newController(&fakeAPI{})
	fill(t, c, "John", "Doe", "9876543210")

	assert.True(t, c.Validate())
	assert.Empty(t, c.Errors())
	assert.Equal(t, Valid, c.FieldState(FieldMobile))
}

func TestFieldStateTransitions(t *testing.T) {
	c, _ := newController(&fakeAPI{})

	assert.Equal(t, Untouched, c.FieldState(FieldFirstName))
	require.NoError(t, c.SetField(FieldFirstName, "J0hn"))
	assert.Equal(t, Edited, c.FieldState(FieldFirstName))

	c.Validate()
	assert.Equal(t, Invalid, c.FieldState(FieldFirstName))

	// errors stay until the next validation
	require.NoError(t, c.SetField(FieldFirstName, "John"))
	assert.Equal(t, Edited, c.FieldState(FieldFirstName))
	assert.Equal(t, MsgFirstNameLetters, c.Errors()[FieldFirstName])

	c.Validate()
	assert.Equal(t, Valid, c.FieldState(FieldFirstName))
	assert.False(t, c.Errors().Has(FieldFirstName))
}

func TestSubmitInvalidMakesNoRequest(t *testing.T) {
	api := &fakeAPI{putStatus: 200}
	c, rec := newController(api)
	c.SwitchUser(context.Background(), jane)
	fill(t, c, "", "Doe", "9876543210")

	assert.Equal(t, SubmitInvalid, c.Submit(context.Background()))
	assert.Equal(t, MsgFirstNameRequired, c.Errors()[FieldFirstName])
	assert.Empty(t, api.puts)
	assert.Empty(t, rec.successes)
	assert.Empty(t, rec.failures)
}

func TestSubmitInvalidNamesNeverReachNetwork(t *testing.T) {
	for _, name := range []string{"J0hn", "Jo hn", "Jo-hn", "Jöhn"} {
		t.Run(name, func(t *testing.T) {
			api := &fakeAPI{putStatus: 200}
			c, _ := newController(api)
			c.SwitchUser(context.Background(), jane)
			fill(t, c, "John", name, "9876543210")

			assert.Equal(t, SubmitInvalid, c.Submit(context.Background()))
			assert.True(t, c.Errors().Has(FieldLastName))
			assert.Empty(t, api.puts)
		})
	}
}

func TestSubmitSendsRoundTrippedFields(t *testing.T) {
	api := &fakeAPI{
		putStatus: 200,
		profiles: map[string]*dto.PassengerProfile{"p-1": {
			FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Mobile: "8123456789",
			DateOfBirth: "1990-01-01", AadharCard: "1234 5678 9012", MiniBio: "hi",
		}},
	}
	c, rec := newController(api)
	c.SwitchUser(context.Background(), jane)
	require.NoError(t, c.SetField(FieldMiniBio, "frequent flyer"))

	assert.Equal(t, SubmitSucceeded, c.Submit(context.Background()))

	require.Len(t, api.puts, 1)
	assert.Equal(t, dto.PassengerProfile{
		FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Mobile: "8123456789",
		DateOfBirth: "1990-01-01", AadharCard: "1234 5678 9012", MiniBio: "frequent flyer",
	}, api.puts[0])
	assert.Equal(t, []string{MsgUpdated}, rec.successes)
	assert.Empty(t, rec.failures)
}

func TestSubmitOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		err          error
		want         SubmitResult
		wantSuccess  []string
		wantFailures []string
	}{
		{name: "ok", status: 200, want: SubmitSucceeded, wantSuccess: []string{MsgUpdated}},
		{name: "no content", status: 204, want: SubmitFailed, wantFailures: []string{MsgUpdateFailed}},
		{name: "created", status: 201, want: SubmitFailed, wantFailures: []string{MsgUpdateFailed}},
		{name: "server error", status: 500, err: errors.New("unexpected status 500"), want: SubmitFailed, wantFailures: []string{MsgUpdateError}},
		{name: "network", err: errors.New("dial tcp: connection refused"), want: SubmitFailed, wantFailures: []string{MsgUpdateError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{putStatus: tt.status, putErr: tt.err}
			c, rec := newController(api)
			c.SwitchUser(context.Background(), jane)
			fill(t, c, "John", "Doe", "9876543210")

			assert.Equal(t, tt.want, c.Submit(context.Background()))
			assert.Equal(t, tt.wantSuccess, rec.successes)
			assert.Equal(t, tt.wantFailures, rec.failures)
			assert.Len(t, api.puts, 1)
		})
	}
}

func TestSubmitWithoutUser(t *testing.T) {
	api := &fakeAPI{putStatus: 200}
	c, rec := newController(api)
	fill(t, c, "John", "Doe", "9876543210")

	assert.Equal(t, SubmitFailed, c.Submit(context.Background()))
	assert.Empty(t, api.puts)
	assert.Equal(t, []string{MsgUpdateError}, rec.failures)
}

func TestGreeting(t *testing.T) {
	c, _ := newController(&fakeAPI{})
	assert.Equal(t, "Welcome", c.Greeting())

	c.SwitchUser(context.Background(), jane)
	assert.Equal(t, "Welcome Jane Roe", c.Greeting())
}
