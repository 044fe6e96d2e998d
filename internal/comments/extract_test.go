package comments

import (
	"testing"

	"doclint/internal/source"
)

func load(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.java", []byte(content))
	return fs.Get(id)
}

func TestExtract_SingleComment(t *testing.T) {
	f := load(t, "/** Hello. */\nclass A {}\n")

	got := Extract(f)
	if len(got) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(got))
	}
	if got[0].Text != " Hello. " {
		t.Errorf("Expected text %q, got %q", " Hello. ", got[0].Text)
	}
	if got[0].Line != 1 || got[0].Col != 0 {
		t.Errorf("Expected position 1:0, got %d:%d", got[0].Line, got[0].Col)
	}
}

func TestExtract_MultiLine(t *testing.T) {
	content := "class A {\n" +
		"    /**\n" +
		"     * Summary.\n" +
		"     */\n" +
		"}\n"
	f := load(t, content)

	got := Extract(f)
	if len(got) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(got))
	}
	if got[0].Line != 2 {
		t.Errorf("Expected line 2, got %d", got[0].Line)
	}
	if got[0].Col != 4 {
		t.Errorf("Expected column 4, got %d", got[0].Col)
	}
	want := "\n     * Summary.\n     "
	if got[0].Text != want {
		t.Errorf("Expected text %q, got %q", want, got[0].Text)
	}
}

func TestExtract_NonASCIIPrefixColumnInRunes(t *testing.T) {
	// "int α = 1; " is 12 bytes but 11 runes before the '/'.
	f := load(t, "int α = 1; /** Doc. */\n")

	got := Extract(f)
	if len(got) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(got))
	}
	if got[0].Col != 11 {
		t.Errorf("Expected rune column 11, got %d", got[0].Col)
	}
}

func TestExtract_SkipsNonDocComments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain block", "/* not doc */ /** doc */", 1},
		{"empty block", "/**/", 0},
		{"line comment", "// /** not a comment */\n/** real */", 1},
		{"in string", "String s = \"/** nope */\";\n/** yes */", 1},
		{"in char", "char c = '\"'; /** yes */", 1},
		{"escaped quote", "String s = \"\\\" /** no */\";", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(load(t, tt.content))
			if len(got) != tt.want {
				t.Errorf("Expected %d comments, got %d", tt.want, len(got))
			}
		})
	}
}

func TestExtract_Unterminated(t *testing.T) {
	f := load(t, "/** runs to the end\nof the file")

	got := Extract(f)
	if len(got) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(got))
	}
	want := " runs to the end\nof the file"
	if got[0].Text != want {
		t.Errorf("Expected text %q, got %q", want, got[0].Text)
	}
}

func TestExtract_MultipleInOrder(t *testing.T) {
	content := "/** first */\nint x;\n/** second */\nint y;\n"
	got := Extract(load(t, content))

	if len(got) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(got))
	}
	if got[0].Line != 1 || got[1].Line != 3 {
		t.Errorf("Expected lines 1 and 3, got %d and %d", got[0].Line, got[1].Line)
	}
}
