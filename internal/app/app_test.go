package app

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myple/internal/board"
	"myple/internal/common"
	"myple/internal/user"
)

func testApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Config{Seed: 1})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func registerMale(t *testing.T, a *App) {
	t.Helper()
	_, err := a.Register(user.User{
		Name:      "pikachu",
		Password:  "thunder-123",
		RepeatPWD: "thunder-123",
		Gender:    user.Male,
	})
	require.NoError(t, err)
}

func TestNewSeedsEveryBoard(t *testing.T) {
	a := testApp(t)

	for _, b := range a.Catalog().Boards {
		posts := a.Store().Posts(b.ID)
		assert.NotEmptyf(t, posts, "board %s is empty", b.ID)
	}
}

func TestSeedingIsReproducible(t *testing.T) {
	a := testApp(t)
	b := testApp(t)
	// Timestamps depend on the wall clock, everything else on the seed.
	diff := cmp.Diff(a.Store().Posts("batch"), b.Store().Posts("batch"),
		cmpopts.IgnoreFields(board.Post{}, "Timestamp"))
	assert.Empty(t, diff)
}

func TestOpenBoardGating(t *testing.T) {
	a := testApp(t)
	registerMale(t, a)

	_, err := a.OpenBoard("mens")
	assert.NoError(t, err)

	_, err = a.OpenBoard("womens")
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.CodePermission, appErr.Code)
}

func TestSubmitPostAuthors(t *testing.T) {
	a := testApp(t)
	registerMale(t, a)

	p, err := a.SubmitPost("batch", "Hello", "World", "B22", nil)
	require.NoError(t, err)
	assert.Equal(t, board.AuthorAnonymous, p.Author)
	assert.True(t, p.Deletable())

	ann, err := a.SubmitPost("announcements", "Maintenance", "Portal down tonight", "", nil)
	require.NoError(t, err)
	assert.Equal(t, board.AuthorAdmin, ann.Author)
	assert.False(t, ann.Deletable())
}

func TestThreadCountPropagates(t *testing.T) {
	a := testApp(t)
	registerMale(t, a)

	p, err := a.SubmitPost("batch", "Question", "Where is the gym?", "", nil)
	require.NoError(t, err)
	a.Store().ToggleBookmark("batch", p.ID)

	th := a.OpenThread("batch", p.ID)
	seeded := th.Count()
	_, err = th.AddComment("Second floor, next to the pool")
	require.NoError(t, err)

	onBoard, ok := a.Store().Post("batch", p.ID)
	require.True(t, ok)
	assert.Equal(t, seeded+1, onBoard.Comments)

	bookmarks := a.Store().Bookmarks()
	require.Len(t, bookmarks, 1)
	assert.Equal(t, seeded+1, bookmarks[0].Comments, "bookmark copy must follow")
}

func TestShare(t *testing.T) {
	a := testApp(t)
	registerMale(t, a)

	p, err := a.SubmitPost("batch", "Big news", "Read all about it", "", nil)
	require.NoError(t, err)

	text, err := a.Share("batch", p.ID)
	require.NoError(t, err)
	assert.Equal(t, `Check out this post: "Big news" on BATCH BOARD`, text)

	_, err = a.Share("batch", "nope")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	a := testApp(t)
	registerMale(t, a)

	require.NoError(t, a.Login("pikachu", "thunder-123"))
	assert.Equal(t, "PIKACHU", a.CurrentUser().Name)

	assert.Error(t, a.Login("pikachu", "wrong"))
}
