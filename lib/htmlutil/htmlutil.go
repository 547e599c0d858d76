package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"kochindex-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText collects the text nodes below a node, without the whitespace
// cleanup goquery's Text() skips too.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name string
	Href string
}

func removeNonPrintable(s string) string {
	out := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// Anchors flattens a selection of <a> elements into name/href pairs in
// document order, cleaning up the display text. Anchors without an href
// are kept with Href == "" since list pages use them for removed entries.
func Anchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}
		name := textutil.NormalizeSpace(removeNonPrintable(GetText(n)))
		anchors = append(anchors, Anchor{Name: name, Href: href})
	}
	return anchors
}
