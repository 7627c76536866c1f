package markup

import "testing"

func TestIsTagIsExactCase(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"div", true},
		{"nav", true},
		{"clipPath", true},
		{"Nav", false},
		{"Text", false},
		{"Header", false},
	}
	for _, tc := range cases {
		if got := IsTag(tc.name); got != tc.want {
			t.Errorf("IsTag(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsKeywordIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"return", "Date", "JSON", "window"} {
		if !IsKeyword(name) {
			t.Errorf("IsKeyword(%q) = false, want true", name)
		}
	}
	if IsKeyword("Gauge") {
		t.Error("IsKeyword(Gauge) = true, want false")
	}
}
