package parser

import (
	"slices"
	"strings"
	"testing"
)

func TestHTMLParser_BlocksBecomeLines(t *testing.T) {
	input := `<html><head><title>Leçons</title><style>p{color:red}</style></head>
<body>
<nav>Accueil | Contact</nav>
<h1>1. Les verbes</h1>
<p>Le verbe <b>être</b> est irrégulier.</p>
<h2>1.1 Présent</h2>
<ul><li>je suis</li><li>tu es</li></ul>
<script>alert("x")</script>
<table><tr><th>fr</th><th>en</th></tr><tr><td>chat</td><td>cat</td></tr></table>
</body></html>`
	p := &HTMLParser{}
	ex, err := p.Parse(strings.NewReader(input), "lecons.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Title != "Leçons" {
		t.Errorf("expected title from <title>, got %q", ex.Title)
	}
	want := []string{
		"1. Les verbes",
		"Le verbe être est irrégulier.",
		"1.1 Présent",
		"je suis",
		"tu es",
		"fr | en",
		"chat | cat",
	}
	if got := strings.Split(ex.Text(), "\n"); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestHTMLParser_LineBreaks(t *testing.T) {
	p := &HTMLParser{}
	ex, err := p.Parse(strings.NewReader("<p>ligne une<br>ligne deux</p>"), "br.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Text() != "ligne une\nligne deux" {
		t.Errorf("unexpected text %q", ex.Text())
	}
	if ex.Title != "br" {
		t.Errorf("expected filename title, got %q", ex.Title)
	}
}
