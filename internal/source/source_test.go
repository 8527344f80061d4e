package source

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, raw string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestPipeText_JoinsTextNodes(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div id="card"><h4>Senior Engineer</h4><span>Berlin</span><a>Acme Corp</a></div>`)
	require.Equal(t, "Senior Engineer|Berlin|Acme Corp", PipeText(doc.Find("#card")))
}

func TestPipeText_SkipsWhitespaceOnlyNodes(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, "<div id=\"card\">\n  <h4>Title Here</h4>\n  \n  <span>Acme</span>\n</div>")
	require.Equal(t, "Title Here|Acme", PipeText(doc.Find("#card")))
}

func TestScan_AcceptsLongTitles(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `
		<ul>
			<li><h3>Responsabile Logistica e Magazzino</h3><span>Acme SRL</span></li>
			<li><h3>Menu</h3></li>
			<li><h3>Social Media Manager per ONG</h3><span>HelpOrg</span></li>
		</ul>`)

	got := Scan(doc, DefaultScanConfig())
	titles := make([]string, 0, len(got))
	for _, c := range got {
		titles = append(titles, c.Title)
	}
	require.Equal(t, []string{"Responsabile Logistica e Magazzino", "Social Media Manager per ONG"}, titles)
}

func TestScan_DenylistIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div><h2>Candidati subito alle offerte</h2></div>`)
	cfg := DefaultScanConfig()
	cfg.Denylist = []string{"candidati"}
	require.Empty(t, Scan(doc, cfg))
}

func TestScan_StopsAtCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<div>")
	for i := 0; i < 10; i++ {
		b.WriteString(`<article><h2>A Sufficiently Long Job Title</h2></article>`)
	}
	b.WriteString("</div>")

	cfg := DefaultScanConfig()
	cfg.Cap = 3
	require.Len(t, Scan(mustDoc(t, b.String()), cfg), 3)
}

func TestScan_FullTextIncludesContainerChildren(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<article><h2>Backend Engineer Position</h2><p>Remote</p><p>Globex</p></article>`)
	got := Scan(doc, DefaultScanConfig())
	require.Len(t, got, 1)
	require.Equal(t, "Backend Engineer Position|Remote|Globex", got[0].FullText)
}
