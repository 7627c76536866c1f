package classify

import "testing"

type fakeRef struct {
	root   string
	tokens map[string]bool
}

func (f *fakeRef) ProjectRoot() string { return f.root }

func (f *fakeRef) HasNameToken(name string) bool { return f.tokens[name] }

func TestIsExternalPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/proj/node_modules/react/index.js", true},
		{"/proj/NODE_MODULES/react/index.js", true},
		{"/proj/dist/bundle.js", true},
		{"/proj/.git/HEAD", true},
		{"/proj/.next/server/page.js", true},
		{"/proj/src/Card.tsx", false},
		{"src/distribution/Card.tsx", false}, // segment match, not substring
		{"", false},
	}
	for _, tc := range cases {
		if got := IsExternalPath(tc.path); got != tc.want {
			t.Errorf("IsExternalPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsProjectNodeWithOrigin(t *testing.T) {
	ref := &fakeRef{root: "/home/u/app"}

	if !IsProjectNode("/home/u/app/src/x.tsx", "", ref) {
		t.Fatal("path under project root must be internal")
	}
	if IsProjectNode("/home/u/app/node_modules/lib/x.js", "", ref) {
		t.Fatal("dependency-cache path must be external regardless of root")
	}
	if !IsProjectNode("src/components/Button.tsx", "", ref) {
		t.Fatal("relative non-dependency path must be treated as internal-looking")
	}
	if IsProjectNode("/opt/other/x.tsx", "", ref) {
		t.Fatal("absolute path outside root must be external")
	}
	if IsProjectNode(`D:\elsewhere\x.tsx`, "", ref) {
		t.Fatal("drive-letter path outside root must be external")
	}
}

func TestIsProjectNodeByName(t *testing.T) {
	ref := &fakeRef{root: "/proj", tokens: map[string]bool{"card": true}}

	if !IsProjectNode("", "Card", ref) {
		t.Fatal("known name token must be accepted")
	}
	if IsProjectNode("", "Tooltip", ref) {
		t.Fatal("unknown name token must be rejected")
	}
}

func TestIsProjectNodeDefaults(t *testing.T) {
	if !IsProjectNode("", "", &fakeRef{}) {
		t.Fatal("no origin, no name, no root: accept by default")
	}
	if IsProjectNode("", "", &fakeRef{root: "/proj"}) {
		t.Fatal("established root with nothing to check must reject")
	}
	if !IsProjectNode("", "", nil) {
		t.Fatal("nil reference behaves like unestablished state")
	}
}
