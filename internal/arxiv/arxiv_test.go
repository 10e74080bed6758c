package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2406.01234v2</id>
    <title>A  New
      Transformer   Architecture</title>
    <summary>  We present a
      transformer   variant.  </summary>
    <published>%s</published>
    <author><name>Jane Smith</name></author>
    <author><name>John Doe</name></author>
    <category term="cs.LG"/>
    <category term="cs.CL"/>
    <link href="http://arxiv.org/abs/2406.01234v2" rel="alternate" type="text/html"/>
    <link href="http://arxiv.org/pdf/2406.01234v2" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.99999v1</id>
    <title>Old Paper</title>
    <summary>Stale.</summary>
    <published>2023-01-15T00:00:00Z</published>
    <author><name>Old Author</name></author>
    <category term="cs.LG"/>
  </entry>
</feed>`

func TestParseFeed(t *testing.T) {
	feed := []byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom">
	  <entry>
	    <id>http://arxiv.org/abs/2406.01234v2</id>
	    <title>A  New
	      Transformer Architecture</title>
	    <summary> We present a
	      transformer variant. </summary>
	    <published>2024-06-01T12:00:00Z</published>
	    <author><name>Jane Smith</name></author>
	    <author><name>John Doe</name></author>
	    <category term="cs.LG"/>
	    <category term="cs.CL"/>
	    <link href="http://arxiv.org/pdf/2406.01234v2" rel="related" type="application/pdf"/>
	  </entry>
	</feed>`)

	papers, err := parseFeed(feed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("papers = %d, want 1", len(papers))
	}

	p := papers[0]
	if p.PaperID != "2406.01234" {
		t.Errorf("paper_id = %q, want version suffix stripped", p.PaperID)
	}
	if p.Title != "A New Transformer Architecture" {
		t.Errorf("title = %q, want whitespace collapsed", p.Title)
	}
	if p.Abstract != "We present a transformer variant." {
		t.Errorf("abstract = %q", p.Abstract)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Jane Smith" {
		t.Errorf("authors = %v", p.Authors)
	}
	if len(p.Categories) != 2 || p.Categories[0] != "cs.LG" {
		t.Errorf("categories = %v", p.Categories)
	}
	if p.PDFLink != "http://arxiv.org/pdf/2406.01234v2" {
		t.Errorf("pdf_link = %q", p.PDFLink)
	}
	if !p.PublishedAt.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("published = %v", p.PublishedAt)
	}
}

func TestPaperID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://arxiv.org/abs/2406.01234v2", "2406.01234"},
		{"http://arxiv.org/abs/2406.01234", "2406.01234"},
		{"http://arxiv.org/abs/cs/9901002v1", "9901002"},
	}
	for _, tt := range tests {
		if got := paperID(tt.in); got != tt.want {
			t.Errorf("paperID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchFiltersByDate(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -2).Format(time.RFC3339)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "(cat:cs.LG OR cat:cs.CL)" {
			t.Errorf("search_query = %q", got)
		}
		w.Write([]byte(formatFeed(recent)))
	}))
	defer ts.Close()

	c := New()
	c.baseURL = ts.URL

	papers, err := c.Fetch(context.Background(), []string{"cs.LG", "cs.CL"}, 20, 7)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("papers = %d, want 1 (the 2023 entry falls outside the window)", len(papers))
	}
	if papers[0].PaperID != "2406.01234" {
		t.Errorf("paper_id = %q", papers[0].PaperID)
	}
}

func TestFetchNoCategories(t *testing.T) {
	c := New()
	papers, err := c.Fetch(context.Background(), nil, 20, 7)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if papers != nil {
		t.Errorf("papers = %v, want nil without categories", papers)
	}
}

func formatFeed(published string) string {
	return fmt.Sprintf(sampleFeed, published)
}
