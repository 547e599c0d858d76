package chefkoch

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"kochindex-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Ratings scrapes the rating table of a recipe into per-voter entries in
// page order. A page without a voting table yields an empty list; a row
// whose rating indicator is gone yields MalformedRatingError because
// that means the page structure drifted.
func (c *Client) Ratings(ctx context.Context, recipeID string) (RecipeRating, error) {
	ctx, span := tracer.Start(ctx, "client:Ratings")
	defer span.End()
	span.SetAttributes(attribute.String("recipe_id", recipeID))

	doc, err := c.fetchDocument(ctx, span, "/rezepte/wertungen/"+recipeID+"/")
	if err != nil {
		return RecipeRating{}, err
	}
	rating, err := extractRatings(ctx, recipeID, doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return RecipeRating{}, err
	}
	return rating, nil
}

func extractRatings(ctx context.Context, recipeID string, doc *goquery.Document) (RecipeRating, error) {
	rating := RecipeRating{RecipeID: recipeID, Entries: []RatingEntry{}}

	rows := doc.Find(".voting-table tr")
	if rows.Length() == 0 {
		return rating, nil
	}

	var structureErr error
	// first row is the table header
	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")

		// the rating value hides in the second class token of the
		// nested indicator, e.g. "rating__stars rating--4"
		indicator := cells.Eq(0).Find("span span").First()
		tokens := strings.Fields(indicator.AttrOr("class", ""))
		if len(tokens) < 2 {
			structureErr = MalformedRatingError{RecipeID: recipeID, Row: i + 1}
			return false
		}
		digits := textutil.FirstInt(tokens[1])
		if digits == "" {
			structureErr = MalformedRatingError{RecipeID: recipeID, Row: i + 1}
			return false
		}
		voting, _ := strconv.Atoi(digits)

		entry := RatingEntry{
			Voting: voting,
			Name:   strings.TrimSpace(cells.Eq(1).Text()),
			Date:   strings.TrimSpace(cells.Eq(2).Text()),
		}

		if link := cells.Eq(1).Find("a").First(); link.Length() > 0 {
			entry.Voter = ResolvedVoter(textutil.PathSegment(link.AttrOr("href", ""), 3))
		} else {
			// a voter without a profile link is a removed account, not
			// broken markup
			entry.Voter = UnresolvedVoter()
			slog.WarnContext(
				ctx, "rating voter did not resolve",
				"recipe_id", recipeID,
				"name", entry.Name,
				"row", i+1,
			)
		}

		rating.Entries = append(rating.Entries, entry)
		return true
	})
	if structureErr != nil {
		return RecipeRating{}, structureErr
	}
	return rating, nil
}
