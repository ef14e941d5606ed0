package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"slimdev/internal/envfile"
)

func writeEnv(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	record, err := envfile.Parse(writeEnv(t, `# header

A=1

# trailing comment
B=2
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", record.Len())
	}
	if value, _ := record.Get("B"); value != "2" {
		t.Fatalf("unexpected B: %q", value)
	}
}

func TestParseUnquotesValues(t *testing.T) {
	record, err := envfile.Parse(writeEnv(t, `A="two words"
B="say \"hi\""
C="back\\slash"
D=""
E=plain=with=equals
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	cases := map[string]string{
		"A": "two words",
		"B": `say "hi"`,
		"C": `back\slash`,
		"D": "",
		"E": "plain=with=equals",
	}
	for key, want := range cases {
		got, ok := record.Get(key)
		if !ok {
			t.Fatalf("expected %s to parse", key)
		}
		if got != want {
			t.Fatalf("unexpected %s: got %q want %q", key, got, want)
		}
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	if _, err := envfile.Parse(writeEnv(t, "NOT A PAIR\n")); err == nil {
		t.Fatal("expected error for line without separator")
	}
	if _, err := envfile.Parse(writeEnv(t, "A=\"unterminated\n")); err == nil {
		t.Fatal("expected error for unterminated quote")
	}
	if _, err := envfile.Parse(writeEnv(t, "A=\"\n")); err == nil {
		t.Fatal("expected error for a lone quote")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := envfile.Parse(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
