package dom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/dom"
)

func TestParseFragmentUsesContainer(t *testing.T) {
	root, err := dom.ParseFragment(`<li>a</li><li>b</li>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !dom.IsContainer(root) {
		t.Fatalf("expected container root")
	}
	out, err := dom.Serialize(root)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out != `<li>a</li><li>b</li>` {
		t.Fatalf("unexpected markup %q", out)
	}
}

func TestParseDocumentReturnsHTMLElement(t *testing.T) {
	root, err := dom.ParseDocument(`<!DOCTYPE html><title>x</title><p>y</p>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Type != html.ElementNode || root.Data != "html" || root.Parent != nil {
		t.Fatalf("expected detached html element, got %+v", root)
	}
}

func TestNodesSkipsRawTextChildrenAndComments(t *testing.T) {
	root, err := dom.ParseFragment(`<p>a<!-- c --><b>b</b></p><script>s</script>t`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got []string
	for _, n := range dom.Nodes(root) {
		got = append(got, n.Data)
	}
	want := []string{"p", "a", "b", "b", "script", "t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsDeepAndDetached(t *testing.T) {
	root, err := dom.ParseFragment(`<a href="/x">y</a>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	clone := dom.Clone(root)
	link := clone.FirstChild
	dom.SetAttr(link, "href", "/z")
	dom.SetText(link, "changed")

	original, _ := dom.Serialize(root)
	if original != `<a href="/x">y</a>` {
		t.Fatalf("original mutated: %q", original)
	}
	cloned, _ := dom.Serialize(clone)
	if cloned != `<a href="/z">changed</a>` {
		t.Fatalf("unexpected clone markup %q", cloned)
	}
}

func TestAttrHelpers(t *testing.T) {
	root, err := dom.ParseFragment(`<svg><use xlink:href="#a" class="i"></use></svg>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	use := root.FirstChild.FirstChild
	if v, ok := dom.Attr(use, "xlink:href"); !ok || v != "#a" {
		t.Fatalf("expected namespaced attribute, got %q %v", v, ok)
	}
	dom.RemoveAttr(use, "class")
	if _, ok := dom.Attr(use, "class"); ok {
		t.Fatalf("expected class to be removed")
	}
}

func TestReplaceWithAndDetach(t *testing.T) {
	root, _ := dom.ParseFragment(`<p>x</p>`)
	text := root.FirstChild.FirstChild

	inner, _ := dom.ParseFragment(`<b>1</b><i>2</i>`)
	nodes := append([]*html.Node{dom.NewText("a")}, dom.Detach(inner)...)
	if !dom.ReplaceWith(text, nodes...) {
		t.Fatalf("expected replacement to succeed")
	}
	out, _ := dom.Serialize(root)
	if out != `<p>a<b>1</b><i>2</i></p>` {
		t.Fatalf("unexpected markup %q", out)
	}
	if inner.FirstChild != nil {
		t.Fatalf("expected container to be emptied")
	}
	if dom.ReplaceWith(dom.NewText("orphan")) {
		t.Fatalf("expected detached node replacement to fail")
	}
}
