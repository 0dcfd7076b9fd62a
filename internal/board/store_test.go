package board

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myple/internal/common"
)

func testStore(posts ...Post) *Store {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	s.SetBoard("batch", posts)
	return s
}

func seedPost(id, author string) Post {
	return Post{
		ID:        id,
		Author:    author,
		Avatar:    "🦊",
		Title:     "Title of " + id,
		Content:   "Content of " + id,
		Timestamp: "01.03.2025 12:00",
		Reactions: zeroReactions(PostReactionKeys),
		Batch:     "22",
	}
}

func TestCreatePost(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))

	p, err := s.CreatePost("batch", Draft{
		Author:  AuthorAnonymous,
		Avatar:  "🎮",
		Title:   "  Fresh post  ",
		Content: "Some content",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fresh post", p.Title)
	assert.Equal(t, BatchNone, p.Batch)
	assert.Equal(t, "14.03.2025 09:30", p.Timestamp)
	assert.Equal(t, Reactions{ThumbsUp: 0, ThumbsDown: 0, Heart: 0}, p.Reactions)

	posts := s.Posts("batch")
	require.Len(t, posts, 2)
	assert.Equal(t, p.ID, posts[0].ID, "new post goes on top")
	assert.Equal(t, "batch-0", posts[1].ID)
}

func TestCreatePostValidation(t *testing.T) {
	s := testStore()

	_, err := s.CreatePost("batch", Draft{Title: "  ", Content: "body"})
	assertCode(t, err, common.CodeInvalidArgument)

	_, err = s.CreatePost("batch", Draft{Title: "ok", Content: ""})
	assertCode(t, err, common.CodeInvalidArgument)

	assert.Empty(t, s.Posts("batch"))
}

func TestToggleReactionExclusive(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))

	s.ToggleReaction("batch", "batch-0", Heart)
	p, _ := s.Post("batch", "batch-0")
	assert.Equal(t, 1, p.Reactions[Heart])
	assert.Equal(t, Heart, p.UserReaction)

	// Moving to another key transfers the single active reaction.
	s.ToggleReaction("batch", "batch-0", ThumbsUp)
	p, _ = s.Post("batch", "batch-0")
	assert.Equal(t, 0, p.Reactions[Heart])
	assert.Equal(t, 1, p.Reactions[ThumbsUp])
	assert.Equal(t, ThumbsUp, p.UserReaction)

	// Toggling the active key clears it.
	s.ToggleReaction("batch", "batch-0", ThumbsUp)
	p, _ = s.Post("batch", "batch-0")
	assert.Equal(t, 0, p.Reactions[ThumbsUp])
	assert.Empty(t, p.UserReaction)
}

func TestToggleReactionFloorsAtZero(t *testing.T) {
	p := seedPost("batch-0", "SENIOR")
	p.UserReaction = ThumbsUp // counter already at zero
	s := testStore(p)

	s.ToggleReaction("batch", "batch-0", ThumbsUp)
	got, _ := s.Post("batch", "batch-0")
	assert.Equal(t, 0, got.Reactions[ThumbsUp])
	assert.Empty(t, got.UserReaction)
}

func TestToggleReactionUnknownKey(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))
	before := s.Posts("batch")

	s.ToggleReaction("batch", "batch-0", ReactionKey("sparkles"))
	assert.Empty(t, cmp.Diff(before, s.Posts("batch")))
}

func TestToggleReactionUnknownPost(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))
	before := s.Posts("batch")

	s.ToggleReaction("batch", "nope", Heart)
	s.ToggleReaction("nope", "batch-0", Heart)
	assert.Empty(t, cmp.Diff(before, s.Posts("batch")))
}

func TestBookmarkMirrorStaysInSync(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))

	s.ToggleBookmark("batch", "batch-0")
	require.Equal(t, 1, s.BookmarkCount())

	s.ToggleReaction("batch", "batch-0", Heart)
	s.UpdateCommentCount("batch", "batch-0", 7)

	onBoard, ok := s.Post("batch", "batch-0")
	require.True(t, ok)
	bookmarked := s.Bookmarks()[0]
	assert.Empty(t, cmp.Diff(onBoard, bookmarked), "board and bookmark copies diverged")
	assert.Equal(t, 7, bookmarked.Comments)
	assert.Equal(t, 1, bookmarked.Reactions[Heart])
	assert.True(t, onBoard.IsBookmarked)
}

func TestToggleBookmarkOff(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))

	s.ToggleBookmark("batch", "batch-0")
	s.ToggleBookmark("batch", "batch-0")

	assert.Zero(t, s.BookmarkCount())
	p, _ := s.Post("batch", "batch-0")
	assert.False(t, p.IsBookmarked)
}

func TestDeletePostAuthorGate(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"), seedPost("batch-1", AuthorAnonymous))

	s.DeletePost("batch", "batch-0")
	require.Len(t, s.Posts("batch"), 2, "foreign post must survive")

	s.DeletePost("batch", "batch-1")
	posts := s.Posts("batch")
	require.Len(t, posts, 1)
	assert.Equal(t, "batch-0", posts[0].ID)
}

func TestDeletePostRemovesBookmark(t *testing.T) {
	s := testStore(seedPost("batch-0", AuthorAnonymous))

	s.ToggleBookmark("batch", "batch-0")
	require.Equal(t, 1, s.BookmarkCount())

	s.DeletePost("batch", "batch-0")
	assert.Zero(t, s.BookmarkCount())
	assert.Empty(t, s.Posts("batch"))
}

func TestCreateReactTwiceScenario(t *testing.T) {
	s := testStore()

	p, err := s.CreatePost("batch", Draft{Author: AuthorAnonymous, Title: "t", Content: "c"})
	require.NoError(t, err)

	s.ToggleReaction("batch", p.ID, Heart)
	got, _ := s.Post("batch", p.ID)
	assert.Equal(t, 1, got.Reactions[Heart])
	assert.Equal(t, Heart, got.UserReaction)

	s.ToggleReaction("batch", p.ID, Heart)
	got, _ = s.Post("batch", p.ID)
	assert.Equal(t, 0, got.Reactions[Heart])
	assert.Empty(t, got.UserReaction)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := testStore(seedPost("batch-0", "SENIOR"))

	snap := s.Posts("batch")
	snap[0].Reactions[Heart] = 99
	snap[0].Title = "mutated"

	p, _ := s.Post("batch", "batch-0")
	assert.Equal(t, 0, p.Reactions[Heart])
	assert.Equal(t, "Title of batch-0", p.Title)
}

func assertCode(t *testing.T, err error, code common.ErrorCode) {
	t.Helper()
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr), "want AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}
