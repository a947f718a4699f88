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

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// decomposeAuthority splits authority into userinfo, host, and port and
// stores them on iri. It implements the authority-decomposition rules of
// the IRI parser: userinfo up to the first '@', bracketed IPv6 literal
// handling, and a port stored only when it differs from the scheme's
// default by both string and integer comparison.
func decomposeAuthority(iri *IRI, authority string) error {
	s := authority

	if at := strings.IndexByte(s, '@'); at >= 0 {
		iri.userinfo = s[:at]
		iri.hasUserinfo = true
		s = s[at+1:]
	}

	var host, port string
	if strings.HasPrefix(s, "[") {
		end := strings.LastIndexByte(s, ']')
		if end < 0 {
			// Unterminated IP literal: treat the rest as host, no port.
			host = s[1:]
			s = ""
		} else {
			host = s[1:end]
			iri.hostIsIPLit = true
			s = s[end+1:]
			if strings.HasPrefix(s, ":") {
				port = s[1:]
			}
		}
	} else if colon := strings.IndexByte(s, ':'); colon >= 0 {
		host = s[:colon]
		port = s[colon+1:]
	} else {
		host = s
	}

	iri.host = host

	if port != "" && !isDefaultPort(port, iri.scheme.defaultPort) {
		iri.port = port
		iri.hasPort = true
	}

	return nil
}

// isDefaultPort reports whether port matches defaultPort by both string
// equality and integer equality. defaultPort being empty means the
// scheme has no default, so no port can match it.
func isDefaultPort(port, defaultPort string) bool {
	if defaultPort == "" {
		return false
	}
	if port == defaultPort {
		return true
	}
	pn, err1 := strconv.Atoi(port)
	dn, err2 := strconv.Atoi(defaultPort)
	return err1 == nil && err2 == nil && pn == dn
}

// canonicalizeHost lowercases iri.host in place (ASCII-only) and, if it
// contains any non-ASCII byte, converts it to its IDNA ASCII-compatible
// form. IDN failure is non-fatal: the original Unicode host is kept and a
// warning recorded.
func canonicalizeHost(iri *IRI) {
	iri.host = lowerASCIIInPlace(iri.host)

	if iri.hostIsIPLit || !NeedsEncoding(iri.host) {
		return
	}

	ascii, err := idna.Lookup.ToASCII(iri.host)
	if err != nil {
		iri.addWarning("idn", err)
		return
	}
	iri.host = ascii
	iri.hostIsIDN = true
}
