package dom

import "golang.org/x/net/html"

// AttrName returns the qualified name of a, prefixing foreign attributes with
// their namespace (xlink:href).
func AttrName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}

// Attr returns the value of the attribute with the given qualified name.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if AttrName(a) == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr updates the attribute with the given qualified name, appending a new
// attribute when none exists.
func SetAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if AttrName(a) == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr drops the attribute with the given qualified name.
func RemoveAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if AttrName(a) == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
