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

package iri

import "strings"

// ViewConfig configures the escaped-view builder. It replaces the
// process-global "default page" hook with an explicit, threadable value,
// per the package's preferred resolution of that design question.
type ViewConfig struct {
	// DefaultPage is appended whenever GetPath or GetFilename resolves to
	// a directory-like path (empty, or ending in "/"). Leave empty to
	// disable the behavior entirely.
	DefaultPage string
}

// DefaultViewConfig is the package's out-of-the-box ViewConfig, matching
// the historical default of appending "index.html" to directory-like
// paths.
var DefaultViewConfig = ViewConfig{DefaultPage: "index.html"}

// EscapedHost returns the IRI's host with every byte that is not
// IsUnreserved percent-encoded. For a bracketed IPv6 literal, the
// brackets are re-added around the escaped form.
func (i *IRI) EscapedHost() string {
	h := Escape(i.host)
	if i.hostIsIPLit {
		return "[" + h + "]"
	}
	return h
}

// EscapedResource returns the IRI's path, query, and fragment re-escaped
// under their own character classes and concatenated as they would
// appear on the wire: path, then "?query" if present, then "#fragment"
// if present.
func (i *IRI) EscapedResource() string {
	var b strings.Builder
	b.WriteString(EscapePath(i.path))
	if i.hasQuery {
		b.WriteByte('?')
		b.WriteString(EscapeQuery(i.query))
	}
	if i.hasFragment {
		b.WriteByte('#')
		b.WriteString(Escape(i.fragment))
	}
	return b.String()
}

// GetPath returns a "/"-prefixed local path for the IRI, optionally
// transcoded from UTF-8 to encoding (pass "" or "utf-8" to skip
// transcoding). If the result is empty or ends in "/", cfg.DefaultPage is
// appended.
func (i *IRI) GetPath(cfg ViewConfig, encoding string) string {
	var b strings.Builder
	b.WriteByte('/')

	if i.path != "" {
		p := i.path
		if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
			if transcoded, err := fromUTF8(p, encoding); err == nil {
				p = transcoded
			}
		}
		b.WriteString(p)
	}

	appendDefaultPageIfDirLike(&b, cfg)

	return b.String()
}

// GetFilename returns the last path segment of the IRI (transcoded as
// GetPath does), with cfg.DefaultPage appended if the path is
// directory-like, followed by "?" and the query with any interior "/"
// replaced by "%2F" so the whole thing is safe to use as a single
// filename component.
func (i *IRI) GetFilename(cfg ViewConfig, encoding string) string {
	var b strings.Builder

	if i.path != "" {
		name := i.path
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
		if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
			if transcoded, err := fromUTF8(name, encoding); err == nil {
				name = transcoded
			}
		}
		b.WriteString(name)
	}

	appendDefaultPageIfDirLike(&b, cfg)

	if i.hasQuery {
		b.WriteByte('?')
		query := i.query
		if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
			if transcoded, err := fromUTF8(query, encoding); err == nil {
				query = transcoded
			}
		}
		b.WriteString(strings.ReplaceAll(query, "/", "%2F"))
	}

	return b.String()
}

func appendDefaultPageIfDirLike(b *strings.Builder, cfg ViewConfig) {
	s := b.String()
	if cfg.DefaultPage == "" {
		return
	}
	if s == "" || strings.HasSuffix(s, "/") {
		b.WriteString(cfg.DefaultPage)
	}
}
