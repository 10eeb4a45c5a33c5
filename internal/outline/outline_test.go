package outline

import (
	"slices"
	"strings"
	"testing"

	"github.com/dgallion1/notesgest/internal/materials"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb\r\rc", "a\nb\n\nc"},
		{"blank runs", "a\n\n\n\nb\n\n\nc\n\nd", "a\n\nb\n\nc\n\nd"},
		{"trim", "\n\n  a  \n\n\n", "a"},
		{"ideographic space trimmed", "　a　", "a"},
		{"whitespace only", " \r\n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"1. Greetings\r\n\r\n\r\n1.1 Formal\rBonjour",
		"\n\n\nline\n\n\n\n\nline2\n",
		"a\n \n\n \nb",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		in     string
		want   Line
		wantOK bool
	}{
		{"1. Greetings", Line{KindSection, "Greetings"}, true},
		{"1 Greetings", Line{KindSection, "Greetings"}, true},
		{"2、名词：", Line{KindSection, "名词"}, true},
		{"3.Verbes:", Line{KindSection, "Verbes"}, true},
		{"1.1 Formal", Line{KindSubsection, "Formal"}, true},
		{"1.2. Informal", Line{KindSubsection, "Informal"}, true},
		{"2.3、冠词:", Line{KindSubsection, "冠词"}, true},
		{"  4.10 Le passé composé  ", Line{KindSubsection, "Le passé composé"}, true},
		{"3. Next we discuss the subjunctive", Line{KindSection, "Next we discuss the subjunctive"}, true},
		{"Bonjour, comment allez-vous ?", Line{KindBody, "Bonjour, comment allez-vous ?"}, true},
		{"12", Line{}, false},
		{"abc", Line{}, false},
		{"   ", Line{}, false},
		{"", Line{}, false},
		{"你好吗", Line{}, false},
		{"你好吗？", Line{KindBody, "你好吗？"}, true},
		{"202", Line{}, false},
		{"2024", Line{KindBody, "2024"}, true},
		{"123456", Line{KindBody, "123456"}, true},
	}
	for _, tt := range tests {
		got, ok := ClassifyLine(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ClassifyLine(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if got != tt.want {
			t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestClassify_DropsNoiseKeepsOrder(t *testing.T) {
	text := "1. Salutations\n\nBonjour tout le monde\n12\nAu revoir mes amis\n1.1 Soir\nBonsoir madame"
	var kinds []Kind
	var texts []string
	for l := range Classify(text) {
		kinds = append(kinds, l.Kind)
		texts = append(texts, l.Text)
	}
	wantKinds := []Kind{KindSection, KindBody, KindBody, KindSubsection, KindBody}
	if !slices.Equal(kinds, wantKinds) {
		t.Fatalf("kinds = %v, want %v", kinds, wantKinds)
	}
	if slices.Contains(texts, "12") {
		t.Error("expected page number to be dropped")
	}
}

func TestClassify_StopsEarly(t *testing.T) {
	n := 0
	for range Classify("1. A title\nbody line one\nbody line two") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2 lines, got %d", n)
	}
}

func TestExtract_GreetingsExample(t *testing.T) {
	text := "1. Greetings\n1.1 Formal\nBonjour, comment allez-vous ?\n1.2 Informal\nSalut, ça va ?"
	got := Extract(text)
	want := []materials.Record{
		{Section: "Greetings", Subsection: "Formal", Content: "Bonjour, comment allez-vous ?"},
		{Section: "Greetings", Subsection: "Informal", Content: "Salut, ça va ?"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtract_NoiseLineNotInContent(t *testing.T) {
	text := "1. Lecture\nPremière phrase du texte.\n12\nDeuxième phrase du texte."
	got := Extract(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if strings.Contains(got[0].Content, "12") {
		t.Errorf("page number leaked into content: %q", got[0].Content)
	}
	want := "Première phrase du texte.\n\nDeuxième phrase du texte."
	if got[0].Content != want {
		t.Errorf("content = %q, want %q", got[0].Content, want)
	}
}

func TestExtract_SubsectionFallsBackToSection(t *testing.T) {
	got := Extract("1. Les couleurs\nrouge, bleu, vert\n2. Les chiffres\nun, deux, trois")
	want := []materials.Record{
		{Section: "Les couleurs", Subsection: "Les couleurs", Content: "rouge, bleu, vert"},
		{Section: "Les chiffres", Subsection: "Les chiffres", Content: "un, deux, trois"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtract_SectionResetsSubsection(t *testing.T) {
	got := Extract("1. Verbes\n1.1 Présent\nje parle\n2. Noms\nla maison est grande")
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[1].Subsection != "Noms" {
		t.Errorf("expected subsection reset to section, got %q", got[1].Subsection)
	}
}

func TestExtract_HeadingWithoutBodyEmitsNothing(t *testing.T) {
	got := Extract("1. Vide\n2. Plein\ndu contenu ici")
	want := []materials.Record{{Section: "Plein", Subsection: "Plein", Content: "du contenu ici"}}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtract_BodyBeforeFirstSectionDropped(t *testing.T) {
	got := Extract("Titre du document\nIntroduction générale\n1. Chapitre\ncontenu du chapitre")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(got), got)
	}
	if strings.Contains(got[0].Content, "Introduction") {
		t.Errorf("preamble leaked into content: %q", got[0].Content)
	}
}

func TestExtract_SubsectionBeforeSectionDropped(t *testing.T) {
	got := Extract("1.1 Orphelin\ntexte orphelin\n1. Section\ntexte de section")
	want := []materials.Record{{Section: "Section", Subsection: "Section", Content: "texte de section"}}
	if !slices.Equal(got, want) {
		t.Fatalf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtract_Fallback(t *testing.T) {
	text := "Pas de titres ici.\r\n\r\n\r\n\r\nJuste du texte."
	got := Extract(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Section != "内容" || got[0].Subsection != "全部内容" {
		t.Errorf("unexpected fallback titles: %+v", got[0])
	}
	if got[0].Content != "Pas de titres ici.\n\nJuste du texte." {
		t.Errorf("expected normalized text as content, got %q", got[0].Content)
	}
}

func TestExtract_FallbackWhenHeadingsHaveNoBody(t *testing.T) {
	got := Extract("1. Seul titre")
	if len(got) != 1 || got[0].Section != FallbackSection {
		t.Fatalf("expected fallback record, got %+v", got)
	}
	if got[0].Content != "1. Seul titre" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestExtract_Empty(t *testing.T) {
	for _, in := range []string{"", "\n\n\r\n  \t"} {
		if got := Extract(in); len(got) != 0 {
			t.Errorf("Extract(%q): expected no records, got %+v", in, got)
		}
	}
}

func TestBuilder_RecordsBoundedByHeadings(t *testing.T) {
	lines := []Line{
		{KindBody, "before any heading"},
		{KindSection, "A"},
		{KindBody, "a body"},
		{KindSubsection, "A1"},
		{KindSubsection, "A2"},
		{KindBody, "a2 body"},
		{KindBody, "a2 more"},
		{KindSection, "B"},
		{KindSection, "C"},
		{KindBody, "c body"},
	}
	var b Builder
	headings := 0
	for _, l := range lines {
		if l.Kind != KindBody {
			headings++
		}
		b.Feed(l)
	}
	recs := b.Finish()
	if len(recs) > headings {
		t.Errorf("records %d exceed headings %d", len(recs), headings)
	}
	for i, r := range recs {
		if r.Content == "" {
			t.Errorf("record %d has empty content", i)
		}
	}
	want := []materials.Record{
		{Section: "A", Subsection: "A", Content: "a body"},
		{Section: "A", Subsection: "A2", Content: "a2 body\n\na2 more"},
		{Section: "C", Subsection: "C", Content: "c body"},
	}
	if !slices.Equal(recs, want) {
		t.Fatalf("records = %+v, want %+v", recs, want)
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	text := "1. Un\nligne un\n1.1 Deux\nligne deux\n2. Trois\nligne trois"
	first := Extract(text)
	for range 5 {
		if got := Extract(text); !slices.Equal(got, first) {
			t.Fatalf("non-deterministic output: %+v vs %+v", got, first)
		}
	}
}
