package sourcemap

import "testing"

func TestResolveSingleAndMissing(t *testing.T) {
	m := Map{
		"Card": {{Path: "/proj/src/Card.tsx", Priority: TierComponent}},
	}
	candidate, ok := Resolve("Card", nil, m)
	if !ok || candidate.Path != "/proj/src/Card.tsx" {
		t.Fatalf("Resolve single = %v %v", candidate, ok)
	}
	if _, ok := Resolve("Ghost", nil, m); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestResolveContextMatchesHierarchyParent(t *testing.T) {
	m := Map{
		"Header": {
			{Path: "/a/Header.tsx", Context: []string{"nav"}, Priority: TierComponent},
			{Path: "/b/Header.tsx", Context: []string{"footer"}, Priority: TierComponent},
		},
	}
	candidate, ok := Resolve("Header", []string{"Page", "Nav", "Header"}, m)
	if !ok {
		t.Fatal("expected a resolution")
	}
	if candidate.Path != "/a/Header.tsx" {
		t.Fatalf("resolved %q, want /a/Header.tsx (case-insensitive context match on Nav)", candidate.Path)
	}
}

func TestResolveFallsBackToPriority(t *testing.T) {
	m := Map{
		"Card": {
			{Path: "/a/Card.js", Context: []string{"legacy"}, Priority: TierScript},
			{Path: "/b/Card.tsx", Context: []string{"modern"}, Priority: TierComponent},
		},
	}
	candidate, ok := Resolve("Card", []string{"Page", "Card"}, m)
	if !ok || candidate.Path != "/b/Card.tsx" {
		t.Fatalf("resolved %v %v, want the higher tier", candidate, ok)
	}
}

func TestResolveTiesBreakFirstEncountered(t *testing.T) {
	m := Map{
		"Card": {
			{Path: "/first/Card.tsx", Priority: TierComponent},
			{Path: "/second/Card.tsx", Priority: TierComponent},
		},
	}
	candidate, _ := Resolve("Card", nil, m)
	if candidate.Path != "/first/Card.tsx" {
		t.Fatalf("resolved %q, want first-encountered on tie", candidate.Path)
	}
}
