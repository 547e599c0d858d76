package crawler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"kochindex-backend/lib/scrapers/chefkoch"
	"kochindex-backend/services/crawler/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/crawler")

// Service glues the extraction engine to the user store and the crawl
// queue. Extraction itself stays pure; everything side-effecting lives
// here.
type Service struct {
	db      *sql.DB
	qry     *db.Queries
	queue   Queue
	scraper *chefkoch.Client
}

func NewService(database *sql.DB, queue Queue, scraper *chefkoch.Client) Service {
	return Service{
		db:      database,
		qry:     db.New(database),
		queue:   queue,
		scraper: scraper,
	}
}

// EnsureUserKnown schedules a crawl for ids the store has never seen.
// One store read per call; enqueue failures are logged, never surfaced,
// so extraction can't be held up by scheduling. The guarantee is
// at-least-once: two calls racing an unchanged store may both enqueue,
// the queue dedups.
func (s Service) EnsureUserKnown(ctx context.Context, userID string) {
	ctx, span := tracer.Start(ctx, "EnsureUserKnown")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err := s.qry.GetUser(ctx, userID)
	if err == nil {
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to query user store")
		slog.ErrorContext(ctx, "failed to query user store", "user_id", userID, "err", err)
		return
	}

	if err := s.queue.EnqueueUser(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to enqueue crawl")
		slog.ErrorContext(ctx, "failed to enqueue user crawl", "user_id", userID, "err", err)
	}
}

// IngestRatings extracts one recipe's rating table and runs every
// resolved voter through the dedup gate. Unresolved voters only produce
// a diagnostic, enriched with the closest known username as a triage
// aid.
func (s Service) IngestRatings(ctx context.Context, recipeID string) (chefkoch.RecipeRating, error) {
	ctx, span := tracer.Start(ctx, "IngestRatings")
	defer span.End()
	span.SetAttributes(attribute.String("recipe_id", recipeID))

	rating, err := s.scraper.Ratings(ctx, recipeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape ratings")
		return chefkoch.RecipeRating{}, err
	}

	for _, entry := range rating.Entries {
		id, resolved := entry.Voter.ID()
		if !resolved {
			slog.WarnContext(
				ctx, "unresolved voter",
				"recipe_id", recipeID,
				"name", entry.Name,
				"closest_known_user", s.closestKnownUsername(ctx, entry.Name),
			)
			continue
		}
		s.EnsureUserKnown(ctx, id)
	}
	return rating, nil
}

// closestKnownUsername looks for the stored username most similar to a
// display name. Purely diagnostic, a low similarity yields "".
func (s Service) closestKnownUsername(ctx context.Context, name string) string {
	usernames, err := s.qry.ListUsernames(ctx)
	if err != nil {
		return ""
	}

	best := ""
	var bestScore float64
	for _, username := range usernames {
		if username == "" {
			continue
		}
		score := matchr.JaroWinkler(name, username, false)
		if score > bestScore {
			bestScore = score
			best = username
		}
	}
	if bestScore < 0.9 {
		return ""
	}
	return best
}

// IngestProfile scrapes one user profile, stores it, and runs every
// linked friend through the dedup gate.
func (s Service) IngestProfile(ctx context.Context, userID string) (chefkoch.UserProfile, error) {
	ctx, span := tracer.Start(ctx, "IngestProfile")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID))

	profile, err := s.scraper.Profile(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape profile")
		return chefkoch.UserProfile{}, err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize profile")
		return chefkoch.UserProfile{}, err
	}
	err = s.qry.UpsertUser(ctx, db.UpsertUserParams{
		ID:        userID,
		Username:  profile.Username,
		Profile:   string(payload),
		CrawledAt: time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store profile")
		return chefkoch.UserProfile{}, err
	}

	for _, friend := range profile.Friends {
		if friend.ID == "" {
			continue
		}
		s.EnsureUserKnown(ctx, friend.ID)
	}
	return profile, nil
}
