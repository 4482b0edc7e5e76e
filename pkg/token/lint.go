package token

import "regexp"

// candidatePattern matches brace groups that look like they were meant as
// markers: letters, digits, dots, dashes, underscores and spaces, up to 64 of them.
var candidatePattern = regexp.MustCompile(`\{\s*\??[A-Za-z0-9_.\-\s]{1,64}\}`)

// NearMisses returns brace groups in s that resemble markers but do not match
// Pattern, such as "{Title}", "{ name }" or "{user-name}". Those render as
// literal text.
func NearMisses(s string) []string {
	var out []string
	for _, candidate := range candidatePattern.FindAllString(s, -1) {
		if Pattern.FindString(candidate) == candidate {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
