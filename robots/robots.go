/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package robots extracts disallowed paths and sitemap URLs from a
// robots.txt body for a given user-agent, following the Robots Exclusion
// Standard subset an HTTP retrieval client needs: User-agent, Disallow,
// and Sitemap directives. Allow, Crawl-delay, Host, and Clean-param are
// recognized as reserved but ignored, matching the directive set a
// retrieval client does not act on.
package robots

import "strings"

// Path is one disallowed path entry.
type Path struct {
	Path string
	Len  int
}

// Robots holds the disallowed paths and sitemap URLs collected for the
// user-agent a robots.txt body was parsed against.
type Robots struct {
	Paths    []Path
	Sitemaps []string
}

// collectState tracks whether the parser is inside the block of
// directives that apply to the requested user-agent.
type collectState int

const (
	// stateSearching hasn't yet found a matching User-agent block.
	stateSearching collectState = iota
	// stateCollecting is inside the matching block; Disallow lines here
	// are recorded.
	stateCollecting
	// stateClosed has passed the matching block (a second User-agent
	// line, or an explicit "Disallow:" with no value, closed it).
	stateClosed
)

// Parse parses the raw robots.txt body data and returns the directives
// that apply to userAgent. It never returns nil; an empty or malformed
// body yields a Robots with no paths and no sitemaps.
//
// Parsing is line-oriented and ignores unknown directives and comments
// silently, per the Robots Exclusion Standard subset this client
// implements.
func Parse(data []byte, userAgent string) *Robots {
	r := &Robots{}
	state := stateSearching

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case state < stateClosed && hasDirective(line, "User-agent:"):
			value := directiveValue(line, "User-agent:")
			switch state {
			case stateSearching:
				if value == "*" || matchesAgent(value, userAgent) {
					state = stateCollecting
				}
			case stateCollecting:
				// A second User-agent line closes our block.
				state = stateClosed
			}

		case state == stateCollecting && hasDirective(line, "Disallow:"):
			value := directiveValue(line, "Disallow:")
			if value == "" {
				// Explicit allow-all overrides any paths collected so
				// far for this block.
				r.Paths = nil
				state = stateClosed
				continue
			}
			token := firstToken(value)
			r.Paths = append(r.Paths, Path{Path: token, Len: len(token)})

		case hasDirective(line, "Sitemap:"):
			token := firstToken(directiveValue(line, "Sitemap:"))
			if token != "" {
				r.Sitemaps = append(r.Sitemaps, token)
			}
		}
	}

	return r
}

// hasDirective reports whether line starts with directive, matched
// case-insensitively as robots.txt directive names are.
func hasDirective(line, directive string) bool {
	return len(line) >= len(directive) && strings.EqualFold(line[:len(directive)], directive)
}

// directiveValue strips the directive prefix and any leading spaces or
// tabs, returning whatever follows on the line.
func directiveValue(line, directive string) string {
	return strings.TrimLeft(line[len(directive):], " \t")
}

// firstToken returns the whitespace-delimited token at the start of s.
func firstToken(s string) string {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s
	}
	return s[:end]
}

// matchesAgent reports whether userAgent case-insensitively prefix-matches
// value, the robots.txt-declared agent name: a client passing the short
// product token "Wget" matches a declared "User-agent: Wget/2.1".
func matchesAgent(value, userAgent string) bool {
	if userAgent == "" {
		return false
	}
	if len(userAgent) > len(value) {
		return false
	}
	return strings.EqualFold(userAgent, value[:len(userAgent)])
}
