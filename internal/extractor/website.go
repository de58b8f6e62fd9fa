package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizsheet/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent identifies page fetches as a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// MinFragmentWords is the smallest fragment kept by the noise filter.
const MinFragmentWords = 4

const (
	noiseSelector   = "script, style, nav, footer, aside, header, form, button, iframe, img, a"
	contentSelector = "p, h1, h2, h3, h4, h5, h6, li, td, th, caption, blockquote, q, pre"
)

// ExtractWebsite fetches rawURL and returns its readable text.
func (e *Extractor) ExtractWebsite(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", domain.NewExtractionError(domain.CodeWebsiteUnreachable, "invalid website URL", err)
	}
	req.Header.Set("User-Agent", e.opts.UserAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", domain.NewExtractionError(domain.CodeWebsiteUnreachable, "failed to fetch website", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.NewExtractionError(domain.CodeWebsiteUnreachable,
			fmt.Sprintf("website returned status %d", resp.StatusCode), nil).WithContext("url", rawURL)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", domain.NewExtractionError(domain.CodeWebsiteUnreachable, "unsupported page encoding", err)
	}

	text, err := ExtractHTMLText(body)
	if err != nil {
		return "", err
	}
	return text, nil
}

// ExtractHTMLText strips non-content elements and collects the readable fragments of an HTML document.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", domain.NewExtractionError(domain.CodeWebsiteNoContent, "failed to parse html", err)
	}

	doc.Find(noiseSelector).Remove()

	// the html parser always synthesizes <body>, so there is always a container
	container := firstOf(doc, "article", "main", "body")

	var parts []string
	container.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		words := fragmentWords(s)
		if len(words) >= MinFragmentWords {
			parts = append(parts, strings.Join(words, " "))
		}
	})
	text := strings.Join(parts, "\n\n")

	if strings.TrimSpace(text) == "" {
		return "", domain.NewExtractionError(domain.CodeWebsiteNoContent, "no meaningful content found", nil)
	}
	return text, nil
}

func firstOf(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return doc.Selection
}

// fragmentWords splits every text node under s separately, so words divided
// only by inline markup such as <br> or </b> stay apart.
func fragmentWords(s *goquery.Selection) []string {
	var words []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			words = append(words, strings.Fields(n.Data)...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return words
}
