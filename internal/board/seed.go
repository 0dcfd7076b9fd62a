package board

import (
	"fmt"
	"math/rand"
	"time"

	"myple/internal/catalog"
)

// FormatTimestamp renders the display timestamp used across the app,
// DD.MM.YYYY HH:MM.
func FormatTimestamp(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// Generator turns curated catalog posts into full seed posts with
// randomized recent timestamps and engagement counters. The random
// source is injected so seeding can be reproduced in tests.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src), now: time.Now}
}

// Generate produces the seed post list for one board. Ids take the
// form {boardID}-{index}. Timestamps fall uniformly within the last
// 72 hours; thumbs up lands in [0,24], thumbs down in [0,7], hearts
// in [0,14] and the comment counter in [0,19].
func (g *Generator) Generate(cat *catalog.Catalog, boardID string) []Post {
	base := cat.BasePosts(boardID)
	posts := make([]Post, 0, len(base))
	for i, bp := range base {
		posts = append(posts, Post{
			ID:        fmt.Sprintf("%s-%d", boardID, i),
			Author:    bp.Author,
			Avatar:    bp.Avatar,
			Title:     bp.Title,
			Content:   bp.Content,
			Timestamp: FormatTimestamp(g.recent()),
			Images:    append([]string(nil), bp.Images...),
			Reactions: Reactions{
				ThumbsUp:   g.rng.Intn(25),
				ThumbsDown: g.rng.Intn(8),
				Heart:      g.rng.Intn(15),
			},
			Comments: g.rng.Intn(20),
			Batch:    bp.Batch,
		})
	}
	return posts
}

func (g *Generator) recent() time.Time {
	return g.now().Add(-time.Duration(g.rng.Intn(72)) * time.Hour)
}
