package linecol

import "testing"

func TestPathString(t *testing.T) {
	cases := []struct {
		name string
		p    *path
		want string
	}{
		{"root", rootPath, "/"},
		{"map under root", mapPath(rootPath, "foo"), "/foo"},
		{"nested map", mapPath(mapPath(rootPath, "foo"), "bar"), "/foo/bar"},
		{"seq under map", seqPath(mapPath(rootPath, "foo"), 0), "/foo/0"},
		{"map under seq", mapPath(seqPath(mapPath(rootPath, "foo"), 2), "boom"), "/foo/2/boom"},
		// Only the map rule special-cases a root parent, so a top-level
		// sequence renders with a doubled separator.
		{"seq under root", seqPath(rootPath, 0), "//0"},
		{"map under root seq", mapPath(seqPath(rootPath, 1), "k"), "//1/k"},
		// Reserved characters are emitted literally, not escaped.
		{"slash in key", mapPath(rootPath, "a/b"), "/a/b"},
		{"tilde in key", mapPath(rootPath, "a~b"), "/a~b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
