// Package catalog holds the seed data the app starts from: board
// definitions with their curated base posts, canned discussion
// threads, messaging contacts and auto-reply lines, marketplace
// products and matchings. The default catalog is embedded; a path can
// be given to load a different one.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"myple/internal/common"
)

//go:embed seeds.yaml
var defaultSeeds []byte

type Catalog struct {
	Boards    []BoardSpec              `yaml:"boards"`
	Threads   map[string][]CommentSpec `yaml:"threads"`
	Chat      ChatSpec                 `yaml:"chat"`
	Products  []ProductSpec            `yaml:"products"`
	Matchings []MatchingSpec           `yaml:"matchings"`
}

type BoardSpec struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Subboards []string   `yaml:"subboards,omitempty"`
	Faceted   bool       `yaml:"faceted,omitempty"`
	AdminOnly bool       `yaml:"admin_only,omitempty"`
	Posts     []PostSpec `yaml:"posts,omitempty"`
}

type PostSpec struct {
	Author  string   `yaml:"author"`
	Avatar  string   `yaml:"avatar"`
	Title   string   `yaml:"title"`
	Content string   `yaml:"content"`
	Images  []string `yaml:"images,omitempty"`
	Batch   string   `yaml:"batch"`
}

type CommentSpec struct {
	Author     string      `yaml:"author"`
	Avatar     string      `yaml:"avatar"`
	Content    string      `yaml:"content"`
	Timestamp  string      `yaml:"timestamp"`
	ThumbsUp   int         `yaml:"thumbs_up"`
	ThumbsDown int         `yaml:"thumbs_down"`
	Replies    []ReplySpec `yaml:"replies,omitempty"`
}

type ReplySpec struct {
	Author     string `yaml:"author"`
	Avatar     string `yaml:"avatar"`
	Content    string `yaml:"content"`
	Timestamp  string `yaml:"timestamp"`
	ThumbsUp   int    `yaml:"thumbs_up"`
	ThumbsDown int    `yaml:"thumbs_down"`
}

type ChatSpec struct {
	Replies  []string      `yaml:"replies"`
	Contacts []ContactSpec `yaml:"contacts"`
}

type ContactSpec struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	LastMessage string        `yaml:"last_message"`
	Timestamp   string        `yaml:"timestamp"`
	Online      bool          `yaml:"online"`
	Messages    []MessageSpec `yaml:"messages,omitempty"`
}

type MessageSpec struct {
	Sender    string `yaml:"sender"`
	Content   string `yaml:"content"`
	Timestamp string `yaml:"timestamp"`
	Own       bool   `yaml:"own"`
}

type ProductSpec struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Price     int    `yaml:"price"`
	Seller    string `yaml:"seller"`
	Condition string `yaml:"condition"`
	Category  string `yaml:"category"`
	InCart    bool   `yaml:"in_cart,omitempty"`
}

type MatchingSpec struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Location    string   `yaml:"location"`
	University  string   `yaml:"university"`
	MaxPeople   int      `yaml:"max_people"`
	Organizer   string   `yaml:"organizer"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Load reads a catalog from path, or the embedded default catalog when
// path is empty.
func Load(path string) (Catalog, error) {
	data := defaultSeeds
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Catalog{}, err
		}
		data = b
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, common.InvalidArgumentError(err, "cannot parse seed catalog")
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c *Catalog) normalize() {
	for i := range c.Boards {
		b := &c.Boards[i]
		b.ID = strings.TrimSpace(b.ID)
		for j := range b.Posts {
			if b.Posts[j].Batch == "" {
				b.Posts[j].Batch = "N/A"
			}
		}
	}
}

func (c *Catalog) Validate() error {
	if len(c.Boards) == 0 {
		return common.InvalidArgumentError(nil, "catalog has no boards")
	}
	seen := make(map[string]bool, len(c.Boards))
	for _, b := range c.Boards {
		if b.ID == "" {
			return common.InvalidArgumentError(nil, "board without id")
		}
		if seen[b.ID] {
			return common.InvalidArgumentError(nil, fmt.Sprintf("duplicate board id %q", b.ID))
		}
		seen[b.ID] = true
		if b.Title == "" {
			return common.InvalidArgumentError(nil, fmt.Sprintf("board %q has no title", b.ID))
		}
	}
	for _, p := range c.Products {
		if p.Price < 0 {
			return common.InvalidArgumentError(nil, fmt.Sprintf("product %q has negative price", p.Name))
		}
	}
	for _, m := range c.Matchings {
		if m.MaxPeople <= 0 {
			return common.InvalidArgumentError(nil, fmt.Sprintf("matching %q has no capacity", m.ID))
		}
	}
	return nil
}

// Board returns the spec for a board id, or false when unknown.
func (c *Catalog) Board(id string) (BoardSpec, bool) {
	for _, b := range c.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return BoardSpec{}, false
}

// BasePosts returns the curated posts for a board. Boards with no
// curated posts fall back to the batch board's list; that is the
// documented default, not an error.
func (c *Catalog) BasePosts(boardID string) []PostSpec {
	if b, ok := c.Board(boardID); ok && len(b.Posts) > 0 {
		return b.Posts
	}
	if b, ok := c.Board("batch"); ok {
		return b.Posts
	}
	return nil
}

// ThreadSeed returns the canned comments for a post id, falling back
// to the catalog's default thread.
func (c *Catalog) ThreadSeed(postID string) []CommentSpec {
	if t, ok := c.Threads[postID]; ok {
		return t
	}
	return c.Threads["default"]
}
