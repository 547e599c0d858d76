package chefkoch

import (
	"context"

	"kochindex-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// Guides scrapes a user's step-by-step-guide listing into titled links.
func (c *Client) Guides(ctx context.Context, userID string) ([]Guide, error) {
	ctx, span := tracer.Start(ctx, "client:Guides")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	doc, err := c.fetchDocument(ctx, span, "/community/profil/"+userID+"/anleitungen")
	if err != nil {
		return nil, err
	}
	return extractGuides(doc), nil
}

func extractGuides(doc *goquery.Document) []Guide {
	guides := []Guide{}
	doc.Find(".theme-community .without-footer").Each(func(_ int, row *goquery.Selection) {
		// each listing row carries two anchors, the second one is the
		// guide itself. Rows with fewer are skipped.
		anchors := htmlutil.Anchors(row.Find("a"))
		if len(anchors) < 2 {
			return
		}
		guides = append(guides, Guide{
			URL:   anchors[1].Href,
			Title: anchors[1].Name,
		})
	})
	return guides
}
