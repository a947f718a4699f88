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

func TestEscapedHost(t *testing.T) {
	plain := mustParse(t, "http://example.com/")
	if got := plain.EscapedHost(); got != "example.com" {
		t.Errorf("EscapedHost() = %q, want example.com", got)
	}

	ipLit := mustParse(t, "http://[::1]:8080/")
	if got := ipLit.EscapedHost(); got != "[%3A%3A1]" {
		t.Errorf("EscapedHost() = %q, want [%%3A%%3A1]", got)
	}
}

func TestEscapedResource(t *testing.T) {
	got := mustParse(t, "http://example.com/foo[bar?q=a b#frag[x")
	if want := "foo%5Bbar?q=a+b#frag%5Bx"; got.EscapedResource() != want {
		t.Errorf("EscapedResource() = %q, want %q", got.EscapedResource(), want)
	}
}

func TestGetPathDirectoryLike(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "root gets default page", url: "http://example.com/", want: "/index.html"},
		{name: "trailing slash gets default page", url: "http://example.com/a/", want: "/a/index.html"},
		{name: "file path untouched", url: "http://example.com/a/b.html", want: "/a/b.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.url)
			if p := got.GetPath(DefaultViewConfig, ""); p != tt.want {
				t.Errorf("GetPath() = %q, want %q", p, tt.want)
			}
		})
	}
}

func TestGetPathNoDefaultPage(t *testing.T) {
	got := mustParse(t, "http://example.com/")
	if p := got.GetPath(ViewConfig{}, ""); p != "/" {
		t.Errorf("GetPath() = %q, want /", p)
	}
}

func TestGetFilename(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "simple file", url: "http://example.com/a/b.html", want: "b.html"},
		{name: "directory gets default page", url: "http://example.com/a/", want: "index.html"},
		{name: "root gets default page", url: "http://example.com/", want: "index.html"},
		{name: "query becomes suffix with slash escaped", url: "http://example.com/a/b.cgi?x=1/2", want: "b.cgi?x=1%2F2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.url)
			if f := got.GetFilename(DefaultViewConfig, ""); f != tt.want {
				t.Errorf("GetFilename() = %q, want %q", f, tt.want)
			}
		})
	}
}
