// Package sanitize provides the content policies the engine applies to
// template sources before parsing and to serialized markup before returning
// it. A nil policy, or None, passes content through unchanged.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Policy rewrites markup into a form considered safe.
type Policy interface {
	CreateHTML(markup string) string
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(markup string) string

// CreateHTML calls f.
func (f PolicyFunc) CreateHTML(markup string) string {
	return f(markup)
}

// None is the pass-through policy.
var None Policy = PolicyFunc(func(markup string) string { return markup })

// Apply runs policy over markup, treating nil as None.
func Apply(policy Policy, markup string) string {
	if policy == nil {
		return markup
	}
	return policy.CreateHTML(markup)
}

// Bluemonday adapts a bluemonday policy. bluemonday drops document-level
// elements (html, head, body, doctype), so it is best suited to engines that
// render fragments.
func Bluemonday(policy *bluemonday.Policy) Policy {
	if policy == nil {
		return None
	}
	return PolicyFunc(policy.Sanitize)
}

var (
	ugcOnce    sync.Once
	ugcPolicy  Policy
	strictOnce sync.Once
	strict     Policy
)

// UGC returns a shared policy allowing the user-generated-content subset of
// HTML (formatting, links, lists, tables, images) plus class attributes.
func UGC() Policy {
	ugcOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("lang").OnElements("html", "p", "span", "div")
		ugcPolicy = Bluemonday(policy)
	})
	return ugcPolicy
}

// Strict returns a shared policy that strips every element, leaving text.
func Strict() Policy {
	strictOnce.Do(func() {
		strict = Bluemonday(bluemonday.StrictPolicy())
	})
	return strict
}
