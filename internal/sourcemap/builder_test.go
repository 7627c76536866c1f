package sourcemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/uilens-dev/uilens/internal/pathutil"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanBuildsIndexAndReferenceMaps(t *testing.T) {
	root := t.TempDir()
	cardPath := writeFile(t, root, "src/components/Card.tsx", "export default function Card() {}\n")
	appPath := writeFile(t, root, "src/App.tsx",
		"import Card from './components/Card'\n"+
			"export default function App() { return <Card /> }\n")
	writeFile(t, root, "node_modules/lib/index.js", "export default function Hidden() {}\n")
	writeFile(t, root, "src/notes.txt", "not source\n")
	writeFile(t, root, "src/Card.test.tsx", "export default function Card() {}\n")

	result, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	candidates := result.Map["Card"]
	if len(candidates) != 1 {
		t.Fatalf("Card candidates = %v, want exactly one", candidates)
	}
	card := candidates[0]
	if card.Path != cardPath {
		t.Fatalf("Card path = %q, want %q", card.Path, cardPath)
	}
	if card.Priority != TierComponent {
		t.Fatalf("Card priority = %d, want %d", card.Priority, TierComponent)
	}
	if len(card.Context) != 1 || card.Context[0] != "components" {
		t.Fatalf("Card context = %v, want [components]", card.Context)
	}

	if _, ok := result.Map["Hidden"]; ok {
		t.Fatal("node_modules must be skipped")
	}

	// Test files are recognized project files but never extracted.
	if len(result.Files) != 3 {
		t.Fatalf("Files = %v, want the three recognized sources", result.Files)
	}

	appKey := pathutil.Normalize(appPath)
	usages := result.Usage[appKey]
	if len(usages) != 1 || usages[0] != "Card" {
		t.Fatalf("Usage[%s] = %v, want [Card]", appKey, usages)
	}
	imports := result.Imports[appKey]
	if len(imports) != 1 || imports[0] != "Card" {
		t.Fatalf("Imports[%s] = %v, want [Card]", appKey, imports)
	}
}

func TestScanHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "generated/\n")
	writeFile(t, root, "src/generated/Gen.tsx", "export default function Gen() {}\n")
	writeFile(t, root, "src/Real.tsx", "export default function Real() {}\n")

	result, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result.Map["Gen"]; ok {
		t.Fatal("gitignored directory must be skipped")
	}
	if _, ok := result.Map["Real"]; !ok {
		t.Fatal("non-ignored component missing from map")
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing source root")
	}
}

func TestContextFor(t *testing.T) {
	cases := []struct {
		rel  string
		want []string
	}{
		{"src/components/nav/Header.tsx", []string{"components", "nav"}},
		{"packages/ui/src/Button.tsx", []string{"ui", "src"}},
		{"src/Card.tsx", []string{"src"}},
		{"widgets/Card.tsx", []string{"widgets"}},
		{"Card.tsx", nil},
	}
	for _, tc := range cases {
		got := contextFor(tc.rel)
		if len(got) != len(tc.want) {
			t.Errorf("contextFor(%q) = %v, want %v", tc.rel, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("contextFor(%q) = %v, want %v", tc.rel, got, tc.want)
				break
			}
		}
	}
}

func TestCandidateFor(t *testing.T) {
	candidate := CandidateFor("/proj", "/proj/src/components/Card.tsx")
	if candidate.Priority != TierComponent {
		t.Fatalf("priority = %d, want %d", candidate.Priority, TierComponent)
	}
	if len(candidate.Context) != 1 || candidate.Context[0] != "components" {
		t.Fatalf("context = %v, want [components]", candidate.Context)
	}
}
