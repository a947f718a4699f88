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

// Parse decomposes rawURL into a normalized IRI. encoding, if given, names
// the source encoding of rawURL (default DefaultSourceEncoding); only the
// first variadic argument is consulted.
func Parse(rawURL string, encoding ...string) (*IRI, error) {
	enc := ""
	if len(encoding) > 0 {
		enc = encoding[0]
	}
	return parse(rawURL, enc)
}

// ParseWithBase resolves rawURL against base (if it is a relative
// reference) and then parses the result. If rawURL is already absolute,
// base is ignored for resolution purposes but still required for
// absolute-path references ("/a/b") and network-path references
// ("//host/a").
func ParseWithBase(base *IRI, rawURL string, encoding ...string) (*IRI, error) {
	resolved, err := Resolve(base, rawURL)
	if err != nil {
		return nil, err
	}
	enc := ""
	if len(encoding) > 0 {
		enc = encoding[0]
	}
	return parse(resolved, enc)
}

func parse(rawURL, encodingLabel string) (*IRI, error) {
	url := strings.TrimLeft(rawURL, " \t\r\n\f\v")
	if url == "" {
		return nil, newParseError(rawURL, "empty URL", ErrEmptyURL)
	}

	iri := &IRI{}

	// Preprocessing: unescape first, then transcode. Some %HH sequences
	// may themselves decode into multi-byte UTF-8, so unescaping must
	// happen before the charset check.
	if strings.ContainsRune(url, '%') {
		unescaped, _ := unescape(url)
		url = unescaped
	}
	if NeedsEncoding(url) {
		transcoded, err := ToUTF8(url, encodingLabel)
		if err != nil {
			iri.addWarning("charset", err)
		}
		url = transcoded
	}
	iri.uri = url

	rest := url

	// Scheme detection: scan until the first gen-delim. If it's ':'
	// immediately followed by '/', the preceding text is the scheme.
	var sc *scheme
	schemeEnd := -1
	for idx := 0; idx < len(rest); idx++ {
		if classTable[rest[idx]]&genDelim != 0 {
			schemeEnd = idx
			break
		}
	}
	if schemeEnd >= 0 && rest[schemeEnd] == ':' && schemeEnd+1 < len(rest) && rest[schemeEnd+1] == '/' {
		sc = lookupScheme(rest[:schemeEnd])
		rest = rest[schemeEnd+1:]
	} else {
		sc = schemeHTTP
		// no scheme found: resume parsing from the very start, no
		// consumption.
	}
	iri.scheme = sc

	if strings.HasPrefix(rest, "/") && strings.HasPrefix(rest[1:], "/") {
		rest = rest[2:]
	}

	// Authority/path/query/fragment split.
	authorityEnd := len(rest)
	for idx := 0; idx < len(rest); idx++ {
		c := rest[idx]
		if c == '/' || c == '?' || c == '#' {
			authorityEnd = idx
			break
		}
	}
	authority := rest[:authorityEnd]
	remainder := rest[authorityEnd:]

	var rawPath, rawQuery, rawFragment string
	hasQuery, hasFragment := false, false

	if strings.HasPrefix(remainder, "/") {
		end := strings.IndexAny(remainder, "?#")
		if end < 0 {
			end = len(remainder)
		}
		rawPath = remainder[1:end]
		remainder = remainder[end:]
	}
	if strings.HasPrefix(remainder, "?") {
		end := strings.IndexByte(remainder, '#')
		if end < 0 {
			end = len(remainder)
		}
		rawQuery = remainder[1:end]
		hasQuery = true
		remainder = remainder[end:]
	}
	if strings.HasPrefix(remainder, "#") {
		rawFragment = remainder[1:]
		hasFragment = true
	}

	iri.path = normalizePath(truncateAtNUL(rawPath))
	if hasQuery {
		iri.query = truncateAtNUL(rawQuery)
		iri.hasQuery = true
	}
	if hasFragment {
		iri.fragment = truncateAtNUL(rawFragment)
		iri.hasFragment = true
	}

	if authority != "" {
		if err := decomposeAuthority(iri, authority); err != nil {
			return nil, newParseError(rawURL, err.Error(), err)
		}
	}

	if iri.host != "" {
		canonicalizeHost(iri)
	} else if sc.requiresHost() {
		return nil, newParseError(rawURL, "missing host", ErrMissingHost)
	}

	if iri.hasPort {
		iri.resolvPort = iri.port
	} else {
		iri.resolvPort = sc.defaultPort
	}

	iri.connectionPart = buildConnectionPart(sc, iri.host, iri.hostIsIPLit, iri.port)

	return iri, nil
}
