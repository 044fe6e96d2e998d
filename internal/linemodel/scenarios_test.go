package linemodel_test

import (
	"strings"
	"testing"

	"doclint/internal/comments"
	"doclint/internal/docparse"
	"doclint/internal/linemodel"
	"doclint/internal/source"
)

func checkSource(t *testing.T, src string, limit int) []linemodel.Violation {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.java", []byte(src)))

	builder := linemodel.NewBuilder()
	var out []linemodel.Violation
	for _, c := range comments.Extract(f) {
		lines := builder.Build(docparse.Parse(c))
		out = append(out, linemodel.Evaluate(lines, limit)...)
	}
	return out
}

func TestScenario_BareReturnThenShortLine(t *testing.T) {
	src := "/**\n" +
		" * @return\n" +
		" * This line is intentionally short\n" +
		" * and the remainder of the description keeps going here.\n" +
		" */\n" +
		"public int f() { return 0; }\n"

	got := checkSource(t, src, 80)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	if v.Kind != linemodel.TooShort || v.Line != 3 {
		t.Errorf("Expected too_short on line 3, got %+v", v)
	}
}

func TestScenario_LongInlineTagMidLine(t *testing.T) {
	// Right edge: column 2 + 20 characters of text + a 76-character reference.
	name := strings.Repeat("a", 68)
	src := "/**\n" +
		" * This has an inline {@link " + name + "}\n" +
		" */\n"

	got := checkSource(t, src, 80)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	if v.Kind != linemodel.TooLong || v.Line != 2 || v.Length != 98 {
		t.Errorf("Expected too_long(2, 80, 98), got %+v", v)
	}
}

func TestScenario_LongInlineTagAtStartAllowed(t *testing.T) {
	name := strings.Repeat("a", 90)
	src := "/**\n" +
		" * {@link " + name + "}\n" +
		" */\n"

	if got := checkSource(t, src, 80); len(got) != 0 {
		t.Errorf("Expected no violations for a leading reference, got %+v", got)
	}
}

func TestScenario_WrappedBeforeLongReference(t *testing.T) {
	// Wrapping before a reference that would never fit is the correct layout.
	name := strings.Repeat("a", 90)
	src := "/**\n" +
		" * This line is wrapped correctly\n" +
		" * {@link " + name + "}\n" +
		" */\n"

	if got := checkSource(t, src, 80); len(got) != 0 {
		t.Errorf("Expected no violations, got %+v", got)
	}
}

func TestScenario_LongURLAtStartAllowed(t *testing.T) {
	url := "http://example.com/" + strings.Repeat("a", 76)
	src := "/**\n" +
		" * " + url + "\n" +
		" */\n"

	if got := checkSource(t, src, 80); len(got) != 0 {
		t.Errorf("Expected no violations for a leading URL, got %+v", got)
	}
}

func TestScenario_LongURLMidLineViolation(t *testing.T) {
	url := "http://example.com/" + strings.Repeat("a", 76)
	src := "/**\n" +
		" * See the documentation at " + url + "\n" +
		" * for more details.\n" +
		" */\n"

	got := checkSource(t, src, 80)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	// " See the documentation at " spans 26 characters from column 2.
	if v.Kind != linemodel.TooLong || v.Line != 2 || v.Length != 2+26+95 {
		t.Errorf("Expected too_long(2, 80, 123), got %+v", v)
	}
}

func TestScenario_StructuralParagraphExcluded(t *testing.T) {
	src := "/**\n" +
		" * <p>\n" +
		" * This paragraph starts after an HTML tag on its own line.\n" +
		" * </p>\n" +
		" */\n"

	if got := checkSource(t, src, 80); len(got) != 0 {
		t.Errorf("Expected no violations, got %+v", got)
	}
}

func TestScenario_PreBlockIgnored(t *testing.T) {
	src := "/**\n" +
		" * <pre>\n" +
		" * This is inside a pre block and should be ignored even if the line is very very very long.\n" +
		" * </pre>\n" +
		" */\n"

	if got := checkSource(t, src, 40); len(got) != 0 {
		t.Errorf("Expected no violations inside the verbatim region, got %+v", got)
	}
}

func TestScenario_CheckingResumesAfterPre(t *testing.T) {
	src := "/**\n" +
		" * <pre>\n" +
		" * anything at all goes here without any checking whatsoever being applied\n" +
		" * </pre>\n" +
		" * outside again with a line that is clearly far beyond a forty character limit\n" +
		" */\n"

	got := checkSource(t, src, 40)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	if v.Kind != linemodel.TooLong || v.Line != 5 {
		t.Errorf("Expected too_long on line 5, got %+v", v)
	}
}

func TestScenario_ParamValueTooShort(t *testing.T) {
	src := "/**\n" +
		" * @param value\n" +
		" * a parameter description that is short\n" +
		" * but followed by another content line.\n" +
		" */\n"

	got := checkSource(t, src, 80)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	if v.Kind != linemodel.TooShort || v.Line != 3 {
		t.Errorf("Expected too_short on line 3, got %+v", v)
	}
}

func TestScenario_IndependentComments(t *testing.T) {
	// An unclosed <pre> in one comment must not bleed into the next.
	src := "/**\n" +
		" * <pre>\n" +
		" * unclosed verbatim region\n" +
		" */\n" +
		"int x;\n" +
		"/**\n" +
		" * a short line\n" +
		" * of wrapped text that keeps going for a while longer.\n" +
		" */\n"

	got := checkSource(t, src, 80)
	if len(got) != 1 {
		t.Fatalf("Expected 1 violation, got %+v", got)
	}
	v := got[0]
	if v.Kind != linemodel.TooShort || v.Line != 7 {
		t.Errorf("Expected too_short on line 7, got %+v", v)
	}
}
