package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.NotEmpty(t, c.Boards)
	batch, ok := c.Board("batch")
	require.True(t, ok)
	assert.True(t, batch.Faceted)
	assert.NotEmpty(t, batch.Posts)
	assert.Contains(t, batch.Subboards, "B22")

	ann, ok := c.Board("announcements")
	require.True(t, ok)
	assert.True(t, ann.AdminOnly)

	assert.NotEmpty(t, c.Chat.Replies)
	assert.NotEmpty(t, c.Chat.Contacts)
	assert.NotEmpty(t, c.Products)
	assert.NotEmpty(t, c.Matchings)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	data := `
boards:
  - id: batch
    title: BATCH BOARD
    posts:
      - author: SENIOR
        avatar: "🦁"
        title: Hello
        content: World
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Boards, 1)
	assert.Equal(t, "N/A", c.Boards[0].Posts[0].Batch, "missing batch defaults to N/A")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boards: {nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Catalog {
		return Catalog{Boards: []BoardSpec{{ID: "batch", Title: "BATCH"}}}
	}

	assert.NoError(t, func() error { c := base(); return c.Validate() }())

	c := Catalog{}
	assert.Error(t, c.Validate(), "no boards")

	c = base()
	c.Boards = append(c.Boards, BoardSpec{ID: "batch", Title: "AGAIN"})
	assert.Error(t, c.Validate(), "duplicate id")

	c = base()
	c.Boards[0].Title = ""
	assert.Error(t, c.Validate(), "missing title")

	c = base()
	c.Products = []ProductSpec{{Name: "Cursed Lamp", Price: -1}}
	assert.Error(t, c.Validate(), "negative price")

	c = base()
	c.Matchings = []MatchingSpec{{ID: "m1", Title: "Jam", MaxPeople: 0}}
	assert.Error(t, c.Validate(), "zero capacity")
}

func TestBasePostsFallsBackToBatch(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	batch := c.BasePosts("batch")
	require.NotEmpty(t, batch)

	mens := c.BasePosts("mens")
	if b, _ := c.Board("mens"); len(b.Posts) == 0 {
		assert.Equal(t, batch, mens)
	} else {
		assert.Equal(t, b.Posts, mens)
	}
}

func TestThreadSeedFallback(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	def := c.ThreadSeed("no-such-post")
	assert.Equal(t, c.Threads["default"], def)

	seeded := c.ThreadSeed("batch-1")
	assert.Equal(t, c.Threads["batch-1"], seeded)
	assert.NotEmpty(t, seeded)
}
