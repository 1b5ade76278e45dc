package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

func newBundle(t *testing.T) *Bundle {
	t.Helper()

	b, err := New([]string{"cs", "de", "en"}, "en")
	require.NoError(t, err)
	return b
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := New(nil, "en")
	require.ErrorIs(t, err, ErrNoLocales)

	_, err = New([]string{"cs"}, "en")
	require.Error(t, err)

	_, err = New([]string{"en", "not a tag!"}, "en")
	assert.Error(t, err)
}

func TestBundle_LocalesDefaultFirst(t *testing.T) {
	t.Parallel()

	b := newBundle(t)
	assert.Equal(t, []string{"en", "cs", "de"}, b.Locales())
	assert.Equal(t, "en", b.Default())
}

func TestBundle_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		preferred string
		accept    string
		want      string
	}{
		{name: "explicit preference wins", preferred: "de", accept: "cs", want: "de"},
		{name: "unsupported preference ignored", preferred: "fr", accept: "cs-CZ,cs;q=0.9", want: "cs"},
		{name: "regional variant", accept: "de-AT", want: "de"},
		{name: "quality order", accept: "fr;q=1.0, de;q=0.8, cs;q=0.5", want: "de"},
		{name: "nothing matches", accept: "ja", want: "en"},
		{name: "malformed header", accept: ";;;", want: "en"},
		{name: "empty", want: "en"},
	}

	b := newBundle(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, b.Match(tt.preferred, tt.accept))
		})
	}
}

func TestBundle_T(t *testing.T) {
	t.Parallel()

	b := newBundle(t)

	assert.Equal(t, "Sign up", b.T("en", KeyNavSignup))
	assert.Equal(t, "Registrace", b.T("cs", KeyNavSignup))
	assert.Equal(t, "Registrieren", b.T("de", KeyNavSignup))
	assert.Equal(t, "Signed in as alice", b.T("en", KeyProfileGreeting, "alice"))
	assert.Equal(t, "Wrong username or password.", b.T("en", domain.FailureCredentials))
}

func TestBundle_T_Plural(t *testing.T) {
	t.Parallel()

	b := newBundle(t)

	assert.Equal(t, "all done", b.T("en", KeyTodosRemaining, 0))
	assert.Equal(t, "1 item left", b.T("en", KeyTodosRemaining, 1))
	assert.Equal(t, "3 items left", b.T("en", KeyTodosRemaining, 3))
	assert.Equal(t, "zbývají 3 úkoly", b.T("cs", KeyTodosRemaining, 3))
}

func TestBundle_T_Fallbacks(t *testing.T) {
	t.Parallel()

	b := newBundle(t)

	assert.Equal(t, "Sign up", b.T("fr", KeyNavSignup), "unconfigured locale uses the default")
	assert.Equal(t, "no.such.key", b.T("en", "no.such.key"))
}

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, LocaleFrom(context.Background()))
	assert.Equal(t, "cs", LocaleFrom(WithLocale(context.Background(), "cs")))
}
