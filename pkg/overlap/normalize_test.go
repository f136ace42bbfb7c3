package overlap

import "testing"

func TestNormalizePath(t *testing.T) {
	testcases := []struct {
		Path     string
		Expected string
	}{
		{"/a/b/", "/a/b"},
		{"/a/b", "/a/b"},
		{"/", ""},
		{"", ""},
		{"/users/{id}/", "/users/{id}"},
		{"/a//b", "/a//b"},
	}

	for _, v := range testcases {
		if got := NormalizePath(v.Path); got != v.Expected {
			t.Errorf("NormalizePath(%q) = %q, expected %q", v.Path, got, v.Expected)
		}
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	paths := []string{"/a/b/", "/a/b", "/users/{id}/", "/", ""}
	for _, path := range paths {
		once := NormalizePath(path)
		if twice := NormalizePath(once); twice != once {
			t.Errorf("NormalizePath not idempotent for %q: %q != %q", path, twice, once)
		}
	}
}
