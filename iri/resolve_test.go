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

import "testing"

func mustParse(t *testing.T, url string) *IRI {
	t.Helper()
	got, err := Parse(url)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", url, err)
	}
	return got
}

func TestResolveConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{name: "dot-dot merge", base: "http://a/b/c/d", ref: "../g", want: "http://a/b/g"},
		{name: "network-path reference", base: "http://a/b/c/", ref: "//x/y", want: "http://x/y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := mustParse(t, tt.base)
			got, err := Resolve(base, tt.ref)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveAbsolutePathReference(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d")
	got, err := Resolve(base, "/g")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "http://a/g"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveAbsoluteURIReturnedVerbatim(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d")
	got, err := Resolve(base, "https://other.example/x")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "https://other.example/x"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveNoBaseWithSlashRef(t *testing.T) {
	_, err := Resolve(nil, "/a/b")
	if err == nil {
		t.Fatalf("Resolve(nil, \"/a/b\") error = nil, want ErrNoBase")
	}
}

func TestResolveNoBaseEmptyRef(t *testing.T) {
	got, err := Resolve(nil, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "" {
		t.Errorf("Resolve(nil, \"\") = %q, want empty", got)
	}
}

func TestResolveNoBaseRelativeRef(t *testing.T) {
	got, err := Resolve(nil, "a/b")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "a/b" {
		t.Errorf("Resolve(nil, \"a/b\") = %q, want \"a/b\"", got)
	}
}

func TestResolveThenParseRoundTrip(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d")
	resolved, err := Resolve(base, "../g?q=1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got, err := Parse(resolved)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", resolved, err)
	}
	if got.Path() != "b/g" {
		t.Errorf("Path() = %q, want b/g", got.Path())
	}
	if q, ok := got.Query(); !ok || q != "q=1" {
		t.Errorf("Query() = (%q, %v), want (\"q=1\", true)", q, ok)
	}
}
