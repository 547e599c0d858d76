package chefkoch

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"kochindex-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const invalidUserBanner = "Keine oder ungültige User-ID"

// Profile scrapes one user's profile page into a UserProfile, following
// up with the friends and guide listing pages when the profile links to
// them. The only hard failure on the profile page itself is the
// invalid-user-id banner; everything optional degrades to zero values.
func (c *Client) Profile(ctx context.Context, userID string) (UserProfile, error) {
	ctx, span := tracer.Start(ctx, "client:Profile")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	doc, err := c.fetchDocument(ctx, span, "/user/profil/"+userID)
	if err != nil {
		return UserProfile{}, err
	}

	profile, sections, err := extractProfile(userID, doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return UserProfile{}, err
	}

	// the friends list is only fetched when the profile declares a
	// nonzero friend count
	if n, convErr := strconv.Atoi(profile.FriendCount); sections.friends && convErr == nil && n > 0 {
		friends, err := c.Friends(ctx, userID)
		if err != nil {
			return UserProfile{}, err
		}
		profile.Friends = friends
	}
	if sections.guides {
		guides, err := c.Guides(ctx, userID)
		if err != nil {
			return UserProfile{}, err
		}
		profile.Guides = guides
	}

	return profile, nil
}

func (c *Client) fetchDocument(ctx context.Context, span trace.Span, path string) (*goquery.Document, error) {
	res, err := c.www.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}
	return doc, nil
}

// profileSections records which optional sub-pages the profile page
// advertised, so Profile knows what to fetch next.
type profileSections struct {
	friends bool
	guides  bool
}

func extractProfile(userID string, doc *goquery.Document) (UserProfile, profileSections, error) {
	var sections profileSections

	title := doc.Find(".page-title").First()
	if title.Length() > 0 && strings.Contains(strings.TrimSpace(title.Text()), invalidUserBanner) {
		return UserProfile{}, sections, UserNotFoundError{UserID: userID}
	}

	profile := UserProfile{
		ID:      userID,
		DocID:   userID,
		Details: map[string]string{},
		Friends: []Friend{},
		Guides:  []Guide{},
	}

	if username := doc.Find(".username").First(); username.Length() > 0 {
		profile.Username = strings.TrimSpace(username.Text())
	}

	doc.Find("#user-details tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		if label == "" {
			return
		}
		label = strings.TrimSuffix(label, ":")

		// icon values carry their meaning in the alt text
		value := cells.Eq(1)
		if img := value.Find("img").First(); img.Length() > 0 {
			profile.Details[label] = img.AttrOr("alt", "")
		} else {
			profile.Details[label] = strings.TrimSpace(value.Text())
		}
	})

	// the header rules are case-sensitive substring matches; when more
	// than one header hits the same rule the last one wins
	doc.Find(".slat__title").Each(func(_ int, header *goquery.Selection) {
		text := strings.TrimSpace(header.Text())

		if strings.Contains(text, "Über mich") {
			about := doc.Find("#user-about").First()
			profile.AboutMe = strings.TrimSpace(strings.ReplaceAll(about.Text(), "\r", ""))
		}
		if strings.Contains(text, "Freunde") {
			profile.FriendCount = textutil.FirstInt(text)
			sections.friends = true
		}
		if strings.Contains(text, "Rezepte") {
			profile.RecipeCount = textutil.FirstInt(text)
		}
		if strings.Contains(text, "Rezeptsammlungen") {
			profile.CollectionCount = textutil.FirstInt(text)
		}
		if strings.Contains(text, "Schritt-für-Schritt-Anleitungen") {
			profile.GuideCount = textutil.FirstInt(text)
			sections.guides = true
		}
		if strings.Contains(text, "Fotoalben") {
			profile.AlbumCount = textutil.FirstInt(text)
		}
		if strings.Contains(text, "Forenthemen") {
			profile.ThreadCount = textutil.FirstInt(text)
		}
		if strings.Contains(text, "Gruppen") {
			profile.GroupCount = textutil.FirstInt(text)
		}
	})

	// collections and groups come from their own tables no matter which
	// headers were present
	profile.Collections = extractCollections(doc)
	profile.Groups = extractGroups(doc)

	return profile, sections, nil
}

func extractCollections(doc *goquery.Document) []RecipeCollection {
	out := []RecipeCollection{}
	doc.Find("#table-recipe-collections tr").Each(func(_ int, row *goquery.Selection) {
		count := textutil.FirstInt(row.Text())
		row.Find("a").Each(func(_ int, link *goquery.Selection) {
			out = append(out, RecipeCollection{
				URL:         link.AttrOr("href", ""),
				RecipeCount: count,
			})
		})
	})
	return out
}

func extractGroups(doc *goquery.Document) []Group {
	out := []Group{}
	doc.Find("#user-groups li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a").First()
		if link.Length() == 0 {
			return
		}
		out = append(out, Group{
			URL:  link.AttrOr("href", ""),
			Name: strings.TrimSpace(item.Text()),
		})
	})
	return out
}
