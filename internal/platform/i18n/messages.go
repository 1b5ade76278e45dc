package i18n

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

// Message keys used by the page templates.
const (
	KeyAppTitle        = "app.title"
	KeyAppDescription  = "app.description"
	KeyNavSignup       = "nav.signup"
	KeyNavLogin        = "nav.login"
	KeyNavProfile      = "nav.profile"
	KeyNavTodos        = "nav.todos"
	KeyNavLogout       = "nav.logout"
	KeyUserUsername    = "user.username"
	KeyUserEmail       = "user.email"
	KeyUserPassword    = "user.password"
	KeyFormSubmit      = "form.submit"
	KeySignupTitle     = "signup.title"
	KeyLoginTitle      = "login.title"
	KeyProfileTitle    = "profile.title"
	KeyProfileGreeting = "profile.greeting"
	KeyTodosTitle      = "todos.title"
	KeyTodosAdd        = "todos.add"
	KeyTodosToggle     = "todos.toggle"
	KeyTodosDelete     = "todos.delete"
	KeyTodosEmpty      = "todos.empty"
	KeyTodosRemaining  = "todos.remaining"
	KeyNotFoundTitle   = "notfound.title"
	KeyNotFoundBody    = "notfound.body"
	KeyLoading         = "app.loading"
)

// entry is one message in one language. Either msg or cases is set.
type entry struct {
	key   string
	msg   string
	cases []any
}

var messages = map[language.Tag][]entry{
	language.English: {
		{key: KeyAppTitle, msg: "%s"},
		{key: KeyAppDescription, msg: "A small todo app rendered on the server."},
		{key: KeyNavSignup, msg: "Sign up"},
		{key: KeyNavLogin, msg: "Log in"},
		{key: KeyNavProfile, msg: "Profile"},
		{key: KeyNavTodos, msg: "Todos"},
		{key: KeyNavLogout, msg: "Log out"},
		{key: KeyUserUsername, msg: "Username"},
		{key: KeyUserEmail, msg: "Email"},
		{key: KeyUserPassword, msg: "Password"},
		{key: KeyFormSubmit, msg: "Submit"},
		{key: KeySignupTitle, msg: "Create an account"},
		{key: KeyLoginTitle, msg: "Welcome back"},
		{key: KeyProfileTitle, msg: "Your profile"},
		{key: KeyProfileGreeting, msg: "Signed in as %s"},
		{key: KeyTodosTitle, msg: "Your todos"},
		{key: KeyTodosAdd, msg: "Add"},
		{key: KeyTodosToggle, msg: "Toggle"},
		{key: KeyTodosDelete, msg: "Delete"},
		{key: KeyTodosEmpty, msg: "Nothing to do."},
		{key: KeyTodosRemaining, cases: []any{"=0", "all done", "one", "%d item left", "other", "%d items left"}},
		{key: KeyNotFoundTitle, msg: "Page not found"},
		{key: KeyNotFoundBody, msg: "There is nothing at %s."},
		{key: KeyLoading, msg: "Loading..."},
		{key: domain.FailureValidation, msg: "Please fix the highlighted fields."},
		{key: domain.FailureCredentials, msg: "Wrong username or password."},
		{key: domain.FailureNotFound, msg: "That item no longer exists."},
		{key: domain.FailureConflict, msg: "That username or email is already taken."},
		{key: domain.FailureUnavailable, msg: "The service is unavailable. Try again later."},
		{key: domain.FailureCanceled, msg: "The request was canceled."},
		{key: domain.MsgRequired, msg: "required"},
		{key: domain.MsgTooLong, msg: "too long"},
		{key: domain.MsgTooShort, msg: "too short"},
		{key: domain.MsgInvalid, msg: "invalid"},
	},
	language.Czech: {
		{key: KeyAppTitle, msg: "%s"},
		{key: KeyAppDescription, msg: "Malá aplikace na úkoly vykreslená na serveru."},
		{key: KeyNavSignup, msg: "Registrace"},
		{key: KeyNavLogin, msg: "Přihlášení"},
		{key: KeyNavProfile, msg: "Profil"},
		{key: KeyNavTodos, msg: "Úkoly"},
		{key: KeyNavLogout, msg: "Odhlásit"},
		{key: KeyUserUsername, msg: "Uživatelské jméno"},
		{key: KeyUserEmail, msg: "E-mail"},
		{key: KeyUserPassword, msg: "Heslo"},
		{key: KeyFormSubmit, msg: "Odeslat"},
		{key: KeySignupTitle, msg: "Vytvořit účet"},
		{key: KeyLoginTitle, msg: "Vítejte zpět"},
		{key: KeyProfileTitle, msg: "Váš profil"},
		{key: KeyProfileGreeting, msg: "Přihlášen jako %s"},
		{key: KeyTodosTitle, msg: "Vaše úkoly"},
		{key: KeyTodosAdd, msg: "Přidat"},
		{key: KeyTodosToggle, msg: "Přepnout"},
		{key: KeyTodosDelete, msg: "Smazat"},
		{key: KeyTodosEmpty, msg: "Nic na práci."},
		{key: KeyTodosRemaining, cases: []any{"=0", "vše hotovo", "one", "zbývá %d úkol", "few", "zbývají %d úkoly", "other", "zbývá %d úkolů"}},
		{key: KeyNotFoundTitle, msg: "Stránka nenalezena"},
		{key: KeyNotFoundBody, msg: "Na adrese %s nic není."},
		{key: KeyLoading, msg: "Načítání..."},
		{key: domain.FailureValidation, msg: "Opravte prosím zvýrazněná pole."},
		{key: domain.FailureCredentials, msg: "Špatné jméno nebo heslo."},
		{key: domain.FailureNotFound, msg: "Tato položka už neexistuje."},
		{key: domain.FailureConflict, msg: "Jméno nebo e-mail už je obsazený."},
		{key: domain.FailureUnavailable, msg: "Služba není dostupná. Zkuste to později."},
		{key: domain.FailureCanceled, msg: "Požadavek byl zrušen."},
		{key: domain.MsgRequired, msg: "povinné"},
		{key: domain.MsgTooLong, msg: "příliš dlouhé"},
		{key: domain.MsgTooShort, msg: "příliš krátké"},
		{key: domain.MsgInvalid, msg: "neplatné"},
	},
	language.German: {
		{key: KeyAppTitle, msg: "%s"},
		{key: KeyAppDescription, msg: "Eine kleine, serverseitig gerenderte Aufgaben-App."},
		{key: KeyNavSignup, msg: "Registrieren"},
		{key: KeyNavLogin, msg: "Anmelden"},
		{key: KeyNavProfile, msg: "Profil"},
		{key: KeyNavTodos, msg: "Aufgaben"},
		{key: KeyNavLogout, msg: "Abmelden"},
		{key: KeyUserUsername, msg: "Benutzername"},
		{key: KeyUserEmail, msg: "E-Mail"},
		{key: KeyUserPassword, msg: "Passwort"},
		{key: KeyFormSubmit, msg: "Absenden"},
		{key: KeySignupTitle, msg: "Konto erstellen"},
		{key: KeyLoginTitle, msg: "Willkommen zurück"},
		{key: KeyProfileTitle, msg: "Dein Profil"},
		{key: KeyProfileGreeting, msg: "Angemeldet als %s"},
		{key: KeyTodosTitle, msg: "Deine Aufgaben"},
		{key: KeyTodosAdd, msg: "Hinzufügen"},
		{key: KeyTodosToggle, msg: "Umschalten"},
		{key: KeyTodosDelete, msg: "Löschen"},
		{key: KeyTodosEmpty, msg: "Nichts zu tun."},
		{key: KeyTodosRemaining, cases: []any{"=0", "alles erledigt", "one", "%d Aufgabe offen", "other", "%d Aufgaben offen"}},
		{key: KeyNotFoundTitle, msg: "Seite nicht gefunden"},
		{key: KeyNotFoundBody, msg: "Unter %s gibt es nichts."},
		{key: KeyLoading, msg: "Wird geladen..."},
		{key: domain.FailureValidation, msg: "Bitte korrigiere die markierten Felder."},
		{key: domain.FailureCredentials, msg: "Falscher Benutzername oder falsches Passwort."},
		{key: domain.FailureNotFound, msg: "Dieser Eintrag existiert nicht mehr."},
		{key: domain.FailureConflict, msg: "Benutzername oder E-Mail ist bereits vergeben."},
		{key: domain.FailureUnavailable, msg: "Der Dienst ist nicht erreichbar. Bitte später erneut versuchen."},
		{key: domain.FailureCanceled, msg: "Die Anfrage wurde abgebrochen."},
		{key: domain.MsgRequired, msg: "erforderlich"},
		{key: domain.MsgTooLong, msg: "zu lang"},
		{key: domain.MsgTooShort, msg: "zu kurz"},
		{key: domain.MsgInvalid, msg: "ungültig"},
	},
}

func buildCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for _, e := range entries {
			var err error
			if e.cases != nil {
				err = b.Set(tag, e.key, plural.Selectf(1, "%d", e.cases...))
			} else {
				err = b.SetString(tag, e.key, e.msg)
			}
			if err != nil {
				return nil, fmt.Errorf("i18n: adding %s/%s: %w", tag, e.key, err)
			}
		}
	}
	return b, nil
}
