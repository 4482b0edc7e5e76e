package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Serialize renders n as HTML markup.
func Serialize(n *html.Node) (string, error) {
	var b strings.Builder
	if err := Write(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders n to w.
func Write(w io.Writer, n *html.Node) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}
