package chefkoch

import (
	"context"
	"strings"

	"kochindex-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// Friends scrapes the friends list page of a user, in page order and
// without filtering.
func (c *Client) Friends(ctx context.Context, userID string) ([]Friend, error) {
	ctx, span := tracer.Start(ctx, "client:Friends")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	doc, err := c.fetchDocument(ctx, span, "/user/freunde/"+userID+"/")
	if err != nil {
		return nil, err
	}
	return extractFriends(doc), nil
}

func extractFriends(doc *goquery.Document) []Friend {
	friends := []Friend{}
	doc.Find("li.user-buddies__buddy").Each(func(_ int, item *goquery.Selection) {
		friend := Friend{Username: strings.TrimSpace(item.Text())}
		// items without a link belong to removed accounts and keep only
		// the display name
		if link := item.Find("a").First(); link.Length() > 0 {
			friend.Link = link.AttrOr("href", "")
			friend.ID = textutil.ProfileId(friend.Link)
		}
		friends = append(friends, friend)
	})
	return friends
}
