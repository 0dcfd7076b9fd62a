package board

import (
	"fmt"
	"strings"
	"time"

	"myple/internal/common"
)

// Store owns the per-board post lists and the derived bookmarks
// collection. All mutations replace whole slices (copy-on-write) so a
// reactive caller can detect changes by identity; there is exactly one
// logical writer, so the store itself takes no lock.
//
// Every mutation is a silent no-op on unknown board or post ids.
type Store struct {
	posts     map[string][]Post // freshest first
	bookmarks []Post
	seq       int64
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		posts: make(map[string][]Post),
		seq:   time.Now().UnixMilli(),
		now:   time.Now,
	}
}

// SetBoard installs the seeded post list for a board, replacing any
// previous content.
func (s *Store) SetBoard(boardID string, posts []Post) {
	s.posts[boardID] = append([]Post(nil), posts...)
}

// Boards returns the known board ids.
func (s *Store) Boards() []string {
	ids := make([]string, 0, len(s.posts))
	for id := range s.posts {
		ids = append(ids, id)
	}
	return ids
}

// Posts returns a snapshot of a board's list, freshest first.
func (s *Store) Posts(boardID string) []Post {
	src := s.posts[boardID]
	out := make([]Post, len(src))
	for i, p := range src {
		out[i] = p.clone()
	}
	return out
}

// Bookmarks returns a snapshot of the bookmarked posts.
func (s *Store) Bookmarks() []Post {
	out := make([]Post, len(s.bookmarks))
	for i, p := range s.bookmarks {
		out[i] = p.clone()
	}
	return out
}

func (s *Store) BookmarkCount() int {
	return len(s.bookmarks)
}

// Post looks a post up on its board.
func (s *Store) Post(boardID, postID string) (Post, bool) {
	for _, p := range s.posts[boardID] {
		if p.ID == postID {
			return p.clone(), true
		}
	}
	return Post{}, false
}

type Draft struct {
	Author  string
	Avatar  string
	Title   string
	Content string
	Images  []string
	Batch   string
}

// CreatePost prepends a fresh post to the board's list. The id is
// derived from the board and a monotonically increasing counter.
func (s *Store) CreatePost(boardID string, d Draft) (Post, error) {
	title := strings.TrimSpace(d.Title)
	content := strings.TrimSpace(d.Content)
	if title == "" {
		return Post{}, common.InvalidArgumentError(nil, "post title is empty")
	}
	if content == "" {
		return Post{}, common.InvalidArgumentError(nil, "post content is empty")
	}
	batch := d.Batch
	if batch == "" {
		batch = BatchNone
	}
	s.seq++
	p := Post{
		ID:        fmt.Sprintf("%s-%d", boardID, s.seq),
		Author:    d.Author,
		Avatar:    d.Avatar,
		Title:     title,
		Content:   content,
		Timestamp: FormatTimestamp(s.now()),
		Images:    append([]string(nil), d.Images...),
		Reactions: zeroReactions(PostReactionKeys),
		Batch:     batch,
	}
	s.posts[boardID] = append([]Post{p}, s.posts[boardID]...)
	return p.clone(), nil
}

// ToggleReaction toggles the user's reaction on a post, keeping at
// most one key active and flooring counters at zero. The bookmarked
// copy of the same post receives the identical transition so the two
// copies never diverge.
func (s *Store) ToggleReaction(boardID, postID string, key ReactionKey) {
	s.replacePost(boardID, postID, func(p Post) Post {
		p.Reactions, p.UserReaction = Toggle(p.Reactions, p.UserReaction, key)
		return p
	})
	s.replaceBookmark(postID, func(p Post) Post {
		p.Reactions, p.UserReaction = Toggle(p.Reactions, p.UserReaction, key)
		return p
	})
}

// ToggleBookmark flips the bookmark flag on the board copy and adds or
// removes the post snapshot in the bookmarks collection accordingly.
func (s *Store) ToggleBookmark(boardID, postID string) {
	p, ok := s.Post(boardID, postID)
	if !ok {
		return
	}
	nowBookmarked := !p.IsBookmarked
	s.replacePost(boardID, postID, func(p Post) Post {
		p.IsBookmarked = nowBookmarked
		return p
	})
	if nowBookmarked {
		snap := p.clone()
		snap.IsBookmarked = true
		s.bookmarks = append(append([]Post(nil), s.bookmarks...), snap)
		return
	}
	s.removeBookmark(postID)
}

// DeletePost removes a post from its board and from the bookmarks,
// but only when the Anonymous author sentinel marks it as the user's
// own. The caller's UI already hides the control for other posts; the
// store re-checks authorship anyway.
func (s *Store) DeletePost(boardID, postID string) {
	src := s.posts[boardID]
	for i, p := range src {
		if p.ID != postID {
			continue
		}
		if !p.Deletable() {
			common.WarningLogger.Printf("refused to delete post %s by %s", postID, p.Author)
			return
		}
		next := make([]Post, 0, len(src)-1)
		next = append(next, src[:i]...)
		next = append(next, src[i+1:]...)
		s.posts[boardID] = next
		s.removeBookmark(postID)
		return
	}
}

// UpdateCommentCount sets the denormalized comment counter on the
// board copy and the bookmarked copy.
func (s *Store) UpdateCommentCount(boardID, postID string, count int) {
	s.replacePost(boardID, postID, func(p Post) Post {
		p.Comments = count
		return p
	})
	s.replaceBookmark(postID, func(p Post) Post {
		p.Comments = count
		return p
	})
}

func (s *Store) replacePost(boardID, postID string, fn func(Post) Post) {
	src := s.posts[boardID]
	for i, p := range src {
		if p.ID != postID {
			continue
		}
		next := append([]Post(nil), src...)
		next[i] = fn(p.clone())
		s.posts[boardID] = next
		return
	}
}

func (s *Store) replaceBookmark(postID string, fn func(Post) Post) {
	for i, p := range s.bookmarks {
		if p.ID != postID {
			continue
		}
		next := append([]Post(nil), s.bookmarks...)
		next[i] = fn(p.clone())
		s.bookmarks = next
		return
	}
}

func (s *Store) removeBookmark(postID string) {
	next := make([]Post, 0, len(s.bookmarks))
	for _, p := range s.bookmarks {
		if p.ID != postID {
			next = append(next, p)
		}
	}
	s.bookmarks = next
}
