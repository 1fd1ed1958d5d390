package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func f64(v float64) *float64 { return &v }

func testReport() *Report {
	return &Report{
		Code:  "1301",
		Name:  "Kyokuyo",
		On:    "2023-06-30",
		Price: 1100,
		Ratios: []Ratio{
			{Label: "PER", Value: f64(22), Unit: "x"},
			{Label: "ROE", Value: nil, Unit: "%"},
		},
		Figures: []Figure{
			{Label: "Market cap", Value: f64(2000000)},
			{Label: "Revenue", Value: nil},
		},
	}
}

// headings parses the markdown and returns its heading titles in order.
func headings(t *testing.T, md string) []string {
	t.Helper()
	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var titles []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			titles = append(titles, string(h.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	return titles
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testReport())

	got := headings(t, md)
	want := []string{"Kyokuyo (1301)", "Valuation", "Fundamentals"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headings[%d] = %q want %q", i, got[i], want[i])
		}
	}

	// Present values are formatted, absent ones display as "-".
	if !strings.Contains(md, "| PER | 22.00 x |") {
		t.Errorf("missing PER line in:\n%s", md)
	}
	if !strings.Contains(md, "| ROE | - |") {
		t.Errorf("missing absent ROE line in:\n%s", md)
	}
	if !strings.Contains(md, "| Revenue | - |") {
		t.Errorf("missing absent Revenue line in:\n%s", md)
	}
}

func TestJPY(t *testing.T) {
	if got, want := JPY(f64(2000000)), "¥2,000,000"; got != want {
		t.Errorf("JPY(2000000) = %q want %q", got, want)
	}
	if got, want := JPY(nil), "-"; got != want {
		t.Errorf("JPY(nil) = %q want %q", got, want)
	}
}

func TestNum(t *testing.T) {
	if got, want := Num(f64(33.3)), "33.30"; got != want {
		t.Errorf("Num(33.3) = %q want %q", got, want)
	}
	if got, want := Num(nil), "-"; got != want {
		t.Errorf("Num(nil) = %q want %q", got, want)
	}
}
