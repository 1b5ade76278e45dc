// Package replay folds recorded action logs through the root reducer.
//
// A log is a YAML document:
//
//	name: create todo
//	config:
//	  app_name: Reactizer
//	  locale: en
//	  locales: [en, cs]
//	actions:
//	  - type: todo/CREATE
//	    payload: {token: tok-1, text: buy milk}
//	  - type: todo/CREATE_SUCCESS
//	    payload: {todo: {id: 1, text: buy milk, done: false}}
//
// Payloads use the same field names as the JSON form of each action.
package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/settings"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// ErrInvalidLog is returned for logs that cannot be parsed or decoded.
var ErrInvalidLog = errors.New("replay: invalid action log")

// Log is a named sequence of actions.
type Log struct {
	Name    string  `yaml:"name"`
	Config  *Config `yaml:"config,omitempty"`
	Entries []Entry `yaml:"actions"`
}

// Config seeds the config slice of the initial tree. Without it the tree
// starts from settings.Initial().
type Config struct {
	AppName           string   `yaml:"app_name"`
	Locale            string   `yaml:"locale"`
	Locales           []string `yaml:"locales"`
	GoogleAnalyticsID string   `yaml:"google_analytics_id"`
}

// Entry is one recorded action.
type Entry struct {
	Type    string    `yaml:"type"`
	Payload yaml.Node `yaml:"payload"`
}

// Parse reads a log. Unknown keys are rejected.
func Parse(r io.Reader) (*Log, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Log
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLog, err)
	}
	if l.Config != nil && !settings.New("", l.Config.Locale, l.Config.Locales, "").Supports(l.Config.Locale) {
		return nil, fmt.Errorf("%w: config.locale %q is not in config.locales", ErrInvalidLog, l.Config.Locale)
	}
	return &l, nil
}

// Load reads the log stored at path.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Initial returns the tree the log starts from.
func (l *Log) Initial() *state.Tree {
	if l.Config == nil {
		return state.Initial(nil)
	}
	c := l.Config
	return state.Initial(settings.New(c.AppName, c.Locale, c.Locales, c.GoogleAnalyticsID))
}

// Actions decodes every entry with reg.
func (l *Log) Actions(reg *redux.Registry) ([]redux.Action, error) {
	actions := make([]redux.Action, 0, len(l.Entries))
	for i, e := range l.Entries {
		payload, err := e.json()
		if err != nil {
			return nil, fmt.Errorf("%w: action %d (%s): %w", ErrInvalidLog, i, e.Type, err)
		}
		a, err := reg.Decode(e.Type, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: action %d: %w", ErrInvalidLog, i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// json converts the YAML payload to the JSON the action codec reads. A
// missing payload yields nil.
func (e Entry) json() ([]byte, error) {
	if e.Payload.IsZero() {
		return nil, nil
	}
	var v any
	if err := e.Payload.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Fold applies actions to initial in order.
func Fold(initial *state.Tree, actions []redux.Action) *state.Tree {
	t := initial
	for _, a := range actions {
		t = state.Reduce(t, a)
	}
	return t
}

// Run decodes l against the full action catalog and folds it from its
// initial tree.
func Run(l *Log) (*state.Tree, error) {
	actions, err := l.Actions(state.Actions())
	if err != nil {
		return nil, err
	}
	return Fold(l.Initial(), actions), nil
}

// Encode serializes t as indented JSON followed by a newline.
func Encode(t *state.Tree) ([]byte, error) {
	data, err := state.Serialize(t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
