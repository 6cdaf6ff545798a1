package views

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SHAREMYTRIP_WEB/internal/profile"
)

func renderString(t *testing.T, v ProfileForm) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, ProfilePage(v).Render(context.Background(), &b))
	return b.String()
}

func TestProfilePageFields(t *testing.T) {
	got := renderString(t, ProfileForm{
		Greeting: "Welcome Jane Roe",
		Action:   "/passenger/profile",
		Fields: profile.Fields{
			FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Mobile: "8123456789",
			DateOfBirth: "1990-01-01", AadharCard: "1234", MiniBio: "likes <trains>",
		},
	})

	assert.Contains(t, got, "Welcome Jane Roe")
	assert.Contains(t, got, `action="/passenger/profile"`)
	assert.Contains(t, got, `name="first_name" class="w-full p-2 border border-gray-300 rounded-md" value="Jane" required`)
	assert.Contains(t, got, `value="jane@example.com" readonly`)
	assert.Contains(t, got, `value="1990-01-01" readonly`)
	assert.Contains(t, got, `value="1234" readonly`)
	assert.Contains(t, got, "likes &lt;trains&gt;</textarea>")
	assert.NotContains(t, got, "text-red-500")
}

func TestProfilePageErrors(t *testing.T) {
	got := renderString(t, ProfileForm{
		Errors: profile.Errors{
			profile.FieldFirstName: profile.MsgFirstNameRequired,
			profile.FieldMobile:    profile.MsgMobileFormat,
		},
	})

	assert.Contains(t, got, profile.MsgFirstNameRequired)
	assert.Contains(t, got, profile.MsgMobileFormat)
	assert.NotContains(t, got, profile.MsgLastNameRequired)
	assert.Equal(t, 2, strings.Count(got, "text-red-500"))
}

func TestMessagePage(t *testing.T) {
	var b strings.Builder
	require.NoError(t, MessagePage(Message{Heading: "Sign in required", Text: "Please sign in.", Link: "/login", LinkText: "Login"}).
		Render(context.Background(), &b))

	assert.Contains(t, b.String(), "Sign in required")
	assert.Contains(t, b.String(), `href="/login"`)
}
