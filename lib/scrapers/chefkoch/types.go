package chefkoch

import "encoding/json"

// Recipe is the raw payload the JSON API returns for one recipe. The
// extraction engine passes it through opaque, normalization is the
// indexing layer's problem.
type Recipe = json.RawMessage

// UserProfile is everything harvested from one profile page plus the
// friends and step-by-step-guide sub-pages.
type UserProfile struct {
	ID string `json:"id"`
	// duplicated id kept for store compatibility
	DocID string `json:"_id"`

	// absent when the markup changed, the selector is a heuristic
	Username string `json:"username,omitempty"`
	// label -> value pairs from the details table, using the site's own
	// German labels as keys. Values rendered as icons contribute the
	// icon's alt text instead.
	Details map[string]string `json:"details,omitempty"`
	AboutMe string            `json:"aboutme,omitempty"`

	// counts are the digit strings extracted from section headers,
	// passed through unvalidated
	FriendCount     string `json:"friend_count,omitempty"`
	RecipeCount     string `json:"recipe_count,omitempty"`
	CollectionCount string `json:"collection_count,omitempty"`
	AlbumCount      string `json:"album_count,omitempty"`
	ThreadCount     string `json:"thread_count,omitempty"`
	GroupCount      string `json:"group_count,omitempty"`
	GuideCount      string `json:"guide_count,omitempty"`

	Friends     []Friend           `json:"friends"`
	Collections []RecipeCollection `json:"recipe_collections"`
	Groups      []Group            `json:"groups"`
	Guides      []Guide            `json:"guides"`
}

// Friend is one entry of the friends list. Link and ID are empty when the
// page shows a bare name, which happens for removed accounts.
type Friend struct {
	Username string `json:"username"`
	Link     string `json:"link,omitempty"`
	ID       string `json:"id,omitempty"`
}

type RecipeCollection struct {
	URL         string `json:"url"`
	RecipeCount string `json:"recipe_count"`
}

type Group struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Guide struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// UnknownVoter is the sentinel the site's data model used for voters
// whose account no longer resolves. It is only rendered at the boundary,
// see VoterIdentity.
const UnknownVoter = "unbekannt"

// VoterIdentity is a tagged optional: either the voter resolved to a user
// id or the account is gone and the identity is unknown.
type VoterIdentity struct {
	id       string
	resolved bool
}

func ResolvedVoter(id string) VoterIdentity {
	return VoterIdentity{id: id, resolved: true}
}

func UnresolvedVoter() VoterIdentity {
	return VoterIdentity{}
}

// ID returns the voter's user id and whether it resolved at all.
func (v VoterIdentity) ID() (string, bool) {
	return v.id, v.resolved
}

// String renders the identity the way the site's exports did, with the
// "unbekannt" sentinel standing in for unresolved voters.
func (v VoterIdentity) String() string {
	if !v.resolved {
		return UnknownVoter
	}
	return v.id
}

func (v VoterIdentity) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *VoterIdentity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == UnknownVoter {
		*v = UnresolvedVoter()
		return nil
	}
	*v = ResolvedVoter(s)
	return nil
}

type RatingEntry struct {
	// rating value in [1,6], extracted from the indicator's state class
	Voting int           `json:"voting"`
	Name   string        `json:"name"`
	Voter  VoterIdentity `json:"id"`
	// raw display text, the page's date format is not part of the
	// contract
	Date string `json:"date"`
}

type RecipeRating struct {
	RecipeID string        `json:"_id"`
	Entries  []RatingEntry `json:"rating"`
}
