package board

// Author sentinels. "Anonymous" marks content the current user owns
// and may delete; "Admin" marks announcement posts.
const (
	AuthorAnonymous = "Anonymous"
	AuthorAdmin     = "Admin"
)

// BatchNone is the facet value for posts on boards without a batch
// facet.
const BatchNone = "N/A"

type ReactionKey string

const (
	ThumbsUp   ReactionKey = "thumbsUp"
	ThumbsDown ReactionKey = "thumbsDown"
	Heart      ReactionKey = "heart"
)

// PostReactionKeys are the counters a post carries. Comments and
// replies use only the first two, see the thread package.
var PostReactionKeys = []ReactionKey{ThumbsUp, ThumbsDown, Heart}

type Reactions map[ReactionKey]int

// Clone returns an independent copy of the counter map.
func (r Reactions) Clone() Reactions {
	c := make(Reactions, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func zeroReactions(keys []ReactionKey) Reactions {
	r := make(Reactions, len(keys))
	for _, k := range keys {
		r[k] = 0
	}
	return r
}

type Post struct {
	ID           string      `json:"id"`
	Author       string      `json:"author"`
	Avatar       string      `json:"avatar"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Timestamp    string      `json:"timestamp"`
	Images       []string    `json:"images"`
	Reactions    Reactions   `json:"reactions"`
	Comments     int         `json:"comments"`
	Batch        string      `json:"batch"`
	IsBookmarked bool        `json:"is_bookmarked"`
	UserReaction ReactionKey `json:"user_reaction,omitempty"`
}

// Deletable reports whether the current user may delete the post.
// Ownership is tracked through the Anonymous author sentinel.
func (p Post) Deletable() bool {
	return p.Author == AuthorAnonymous
}

func (p Post) clone() Post {
	c := p
	c.Reactions = p.Reactions.Clone()
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

// Toggle applies the at-most-one-active-reaction rule to a counter
// map: toggling the active key clears it, toggling another key moves
// the reaction. Counters never go below zero. Returns the new counters
// and the new active key ("" when cleared). Unknown keys leave the
// state untouched.
func Toggle(reactions Reactions, active, key ReactionKey) (Reactions, ReactionKey) {
	if _, ok := reactions[key]; !ok {
		return reactions, active
	}
	next := reactions.Clone()
	if active != "" {
		if n, ok := next[active]; ok && n > 0 {
			next[active] = n - 1
		}
	}
	if active == key {
		return next, ""
	}
	next[key]++
	return next, key
}
