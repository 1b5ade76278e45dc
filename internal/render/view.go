package render

import (
	"html/template"

	"golang.org/x/text/message"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/ui"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

// view is the template data. Its methods are the only way templates reach
// into the tree.
type view struct {
	Tree      *state.Tree
	Route     routes.Route
	URL       string
	Locale    string
	Assets    Assets
	StateJSON template.JS

	printer *message.Printer
}

func newView(p Page, bundle *i18n.Bundle, assets Assets, blob []byte) view {
	locale := bundle.Default()
	if p.State.Config != nil && bundle.Supports(p.State.Config.Locale) {
		locale = p.State.Config.Locale
	}

	return view{
		Tree:   p.State,
		Route:  p.Route,
		URL:    p.URL,
		Locale: locale,
		Assets: assets,
		// Serialize escapes <, > and &, so the blob cannot close the
		// script element it is embedded in.
		StateJSON: template.JS(blob),
		printer:   bundle.Printer(locale),
	}
}

// T formats a catalog message in the page locale.
func (v view) T(key string, args ...any) string {
	return v.printer.Sprintf(key, args...)
}

// Title is the document title: page title and app name.
func (v view) Title() string {
	page := v.T(v.Route.TitleKey)
	if name := v.AppName(); name != "" {
		return page + " | " + name
	}
	return page
}

func (v view) AppName() string {
	if v.Tree.Config == nil {
		return ""
	}
	return v.Tree.Config.AppName
}

func (v view) GoogleAnalyticsID() string {
	if v.Tree.Config == nil {
		return ""
	}
	return v.Tree.Config.GoogleAnalyticsID
}

func (v view) Locales() []string {
	if v.Tree.Config == nil {
		return nil
	}
	return v.Tree.Config.Locales
}

// User returns the signed-in user, or nil.
func (v view) User() *user.User {
	if v.Tree.User == nil {
		return nil
	}
	return v.Tree.User.User
}

func (v view) SidebarOpen() bool {
	return v.Tree.UI != nil && v.Tree.UI.SidebarOpen
}

func (v view) Submitting(form string) bool {
	return v.Tree.UI != nil && v.Tree.UI.IsSubmitting(form)
}

func (v view) Todos() []todo.Todo {
	if v.Tree.Todo == nil {
		return nil
	}
	return v.Tree.Todo.Todos.Slice()
}

// Remaining counts the todos not yet done.
func (v view) Remaining() int {
	n := 0
	for _, t := range v.Todos() {
		if !t.Done {
			n++
		}
	}
	return n
}

func (v view) TodosLoading() bool {
	return v.Tree.Todo != nil && v.Tree.Todo.Phase == domain.PhaseLoading
}

// UserFailure is the failure of the last user request, or nil.
func (v view) UserFailure() *domain.Failure {
	if v.Tree.User == nil || v.Tree.User.Phase != domain.PhaseError {
		return nil
	}
	return v.Tree.User.Error
}

// TodoFailure is the failure of the last todo request, or nil.
func (v view) TodoFailure() *domain.Failure {
	if v.Tree.Todo == nil || v.Tree.Todo.Phase != domain.PhaseError {
		return nil
	}
	return v.Tree.Todo.Error
}

// FieldError returns the localized message for field in f, or "".
func (v view) FieldError(f *domain.Failure, field string) string {
	if f == nil {
		return ""
	}
	msg, ok := f.Fields[field]
	if !ok {
		return ""
	}
	return v.T(msg)
}

// Form names the templates pass to Submitting.
func (view) FormLogin() string    { return ui.FormLogin }
func (view) FormRegister() string { return ui.FormRegister }
func (view) FormTodo() string     { return ui.FormTodo }

// FailureMessage returns the localized summary of f, or "".
func (v view) FailureMessage(f *domain.Failure) string {
	if f == nil {
		return ""
	}
	return v.T(f.Message)
}
