package chefkoch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// OrderBy enumerates the search orderings the API accepts. The numeric
// values are the API's own.
type OrderBy int

const (
	OrderByRelevance OrderBy = iota + 2
	OrderByRating
	OrderByDifficulty
	OrderByMaxTimeNeeded
	OrderByDate
	OrderByRandom
	OrderByDailyShuffle
)

// GetRecipe fetches the raw payload for one recipe id. Any non-success
// status is reported as RecipeNotFoundError.
func (c *Client) GetRecipe(ctx context.Context, recipeID string) (Recipe, error) {
	ctx, span := tracer.Start(ctx, "client:GetRecipe")
	defer span.End()
	span.SetAttributes(attribute.String("recipe_id", recipeID))

	res, err := c.api.R().
		SetContext(ctx).
		Get("/v2/recipes/" + recipeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		err := RecipeNotFoundError{RecipeID: recipeID}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if !json.Valid(res.Body()) {
		err := fmt.Errorf("recipe %s: response is not valid json", recipeID)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, err
	}

	payload := make(Recipe, len(res.Body()))
	copy(payload, res.Body())
	return payload, nil
}

type SearchRequest struct {
	Query  string
	Offset int
	// defaults to 50
	Limit         int
	MinimumRating int
	MaximumTime   int
	// defaults to OrderByRelevance
	OrderBy OrderBy
	// the API descends categories unless told otherwise, so the zero
	// value keeps the default
	FlatCategories bool
	Order          int
}

type searchResponse struct {
	Results []Recipe `json:"results"`
}

// SearchRecipes runs one search against the API and returns the raw
// result payloads. Any non-success status is reported as ErrConnection.
func (c *Client) SearchRecipes(ctx context.Context, req SearchRequest) ([]Recipe, error) {
	ctx, span := tracer.Start(ctx, "client:SearchRecipes")
	defer span.End()
	span.SetAttributes(attribute.String("query", req.Query))

	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	orderBy := req.OrderBy
	if orderBy == 0 {
		orderBy = OrderByRelevance
	}
	descendCategories := "1"
	if req.FlatCategories {
		descendCategories = "0"
	}

	res, err := c.api.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":             req.Query,
			"limit":             strconv.Itoa(limit),
			"offset":            strconv.Itoa(req.Offset),
			"minimumRating":     strconv.Itoa(req.MinimumRating),
			"maximumTime":       strconv.Itoa(req.MaximumTime),
			"orderBy":           strconv.Itoa(int(orderBy)),
			"descendCategories": descendCategories,
			"order":             strconv.Itoa(req.Order),
		}).
		Get("/v2/recipes")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		err := fmt.Errorf("%w: search returned status %d", ErrConnection, res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var decoded searchResponse
	if err := json.Unmarshal(res.Body(), &decoded); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, err
	}
	return decoded.Results, nil
}
