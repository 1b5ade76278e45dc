// Package bootstrap restores a store from a server-rendered page: it finds
// the embedded state blob, hydrates it and builds a store around it.
package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
	"github.com/jsamuelsen11/go-ssr-template/internal/render"
)

// ErrNoState is returned when a document carries no state script.
var ErrNoState = errors.New("bootstrap: document has no state script")

// Extract returns the contents of the state script in doc.
func Extract(doc io.Reader) ([]byte, error) {
	root, err := html.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: parsing document: %w", err)
	}

	script := findStateScript(root)
	if script == nil {
		return nil, ErrNoState
	}

	var buf bytes.Buffer
	for c := script.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
	}
	blob := bytes.TrimSpace(buf.Bytes())
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: state script is empty", state.ErrMalformedState)
	}
	return blob, nil
}

// Bootstrap hydrates the state embedded in doc and returns a store over it.
// A missing or malformed blob fails the boot; there is no fallback to an
// initial tree.
func Bootstrap(doc io.Reader, middlewares ...redux.Middleware) (*state.Store, error) {
	blob, err := Extract(doc)
	if err != nil {
		return nil, err
	}

	tree, err := state.Hydrate(blob)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return state.NewStore(tree, middlewares...), nil
}

func findStateScript(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Script && attr(n, "id") == render.StateScriptID {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findStateScript(c); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
