// Package thread manages the two-level discussion attached to one
// post: comments and their replies, each with thumbs up/down counters.
// Replies do not nest further. Only the aggregate count is synced back
// to the content store, through a callback wired by the caller.
package thread

import (
	"fmt"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	"myple/internal/board"
	"myple/internal/catalog"
	"myple/internal/common"
)

type Reply struct {
	ID           string            `json:"id"`
	Author       string            `json:"author"`
	Avatar       string            `json:"avatar"`
	Content      string            `json:"content"`
	Timestamp    string            `json:"timestamp"`
	Reactions    board.Reactions   `json:"reactions"`
	UserReaction board.ReactionKey `json:"user_reaction,omitempty"`
}

type Comment struct {
	ID           string            `json:"id"`
	Author       string            `json:"author"`
	Avatar       string            `json:"avatar"`
	Content      string            `json:"content"`
	Timestamp    string            `json:"timestamp"`
	Reactions    board.Reactions   `json:"reactions"`
	UserReaction board.ReactionKey `json:"user_reaction,omitempty"`
	Replies      []Reply           `json:"replies"`
}

// CommentReactionKeys are the only counters discussion items carry;
// there is no heart on comments or replies.
var CommentReactionKeys = []board.ReactionKey{board.ThumbsUp, board.ThumbsDown}

// Thread is the open discussion for a single post.
type Thread struct {
	postID   string
	comments []Comment
	aliases  *AliasTable
	onCount  func(postID string, count int)
	now      func() time.Time
}

// New builds a thread from its canned seed. onCount receives the new
// total whenever a comment or reply is added or deleted; it may be
// nil.
func New(postID string, seed []catalog.CommentSpec, onCount func(string, int)) *Thread {
	t := &Thread{
		postID:  postID,
		aliases: NewAliasTable(),
		onCount: onCount,
		now:     time.Now,
	}
	for i, cs := range seed {
		c := Comment{
			ID:        fmt.Sprintf("%d", i+1),
			Author:    cs.Author,
			Avatar:    cs.Avatar,
			Content:   cs.Content,
			Timestamp: cs.Timestamp,
			Reactions: board.Reactions{
				board.ThumbsUp:   cs.ThumbsUp,
				board.ThumbsDown: cs.ThumbsDown,
			},
		}
		t.aliases.Alias(c.Author)
		for j, rs := range cs.Replies {
			c.Replies = append(c.Replies, Reply{
				ID:        fmt.Sprintf("%d-%d", i+1, j+1),
				Author:    rs.Author,
				Avatar:    rs.Avatar,
				Content:   rs.Content,
				Timestamp: rs.Timestamp,
				Reactions: board.Reactions{
					board.ThumbsUp:   rs.ThumbsUp,
					board.ThumbsDown: rs.ThumbsDown,
				},
			})
			t.aliases.Alias(rs.Author)
		}
		t.comments = append(t.comments, c)
	}
	return t
}

func (t *Thread) PostID() string {
	return t.postID
}

// Comments returns a snapshot of the thread.
func (t *Thread) Comments() []Comment {
	out := make([]Comment, len(t.comments))
	for i, c := range t.comments {
		cc := c
		cc.Reactions = c.Reactions.Clone()
		cc.Replies = append([]Reply(nil), c.Replies...)
		for j, r := range cc.Replies {
			cc.Replies[j].Reactions = r.Reactions.Clone()
		}
		out[i] = cc
	}
	return out
}

// Count is one per comment plus one per reply.
func (t *Thread) Count() int {
	n := len(t.comments)
	for _, c := range t.comments {
		n += len(c.Replies)
	}
	return n
}

// Alias returns the display pseudonym for an author, assigning the
// next free "User N" on first sight.
func (t *Thread) Alias(author string) string {
	return t.aliases.Alias(author)
}

// AddComment appends a fresh comment and propagates the new total.
func (t *Thread) AddComment(content string) (Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, common.InvalidArgumentError(nil, "comment is empty")
	}
	c := Comment{
		ID:        uuid.NewV4().String(),
		Author:    board.AuthorAnonymous,
		Avatar:    "🎮",
		Content:   content,
		Timestamp: board.FormatTimestamp(t.now()),
		Reactions: zeroCommentReactions(),
	}
	t.comments = append(t.comments, c)
	t.notify()
	return c, nil
}

// AddReply appends a reply to the target comment. The thread is left
// untouched when the comment does not exist.
func (t *Thread) AddReply(commentID, content string) (Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Reply{}, common.InvalidArgumentError(nil, "reply is empty")
	}
	for i, c := range t.comments {
		if c.ID != commentID {
			continue
		}
		r := Reply{
			ID:        uuid.NewV4().String(),
			Author:    board.AuthorAnonymous,
			Avatar:    "🎮",
			Content:   content,
			Timestamp: board.FormatTimestamp(t.now()),
			Reactions: zeroCommentReactions(),
		}
		t.comments[i].Replies = append(append([]Reply(nil), c.Replies...), r)
		t.notify()
		return r, nil
	}
	return Reply{}, common.NotFoundError(nil, "comment does not exist")
}

// ToggleCommentReaction toggles thumbs up/down on a comment with the
// same exclusivity rule posts use. Heart is not a comment reaction, so
// passing it changes nothing.
func (t *Thread) ToggleCommentReaction(commentID string, key board.ReactionKey) {
	for i, c := range t.comments {
		if c.ID == commentID {
			t.comments[i].Reactions, t.comments[i].UserReaction = board.Toggle(c.Reactions, c.UserReaction, key)
			return
		}
	}
}

func (t *Thread) ToggleReplyReaction(commentID, replyID string, key board.ReactionKey) {
	for i, c := range t.comments {
		if c.ID != commentID {
			continue
		}
		for j, r := range c.Replies {
			if r.ID == replyID {
				t.comments[i].Replies[j].Reactions, t.comments[i].Replies[j].UserReaction = board.Toggle(r.Reactions, r.UserReaction, key)
				return
			}
		}
		return
	}
}

// DeleteComment removes a comment (and its replies) when the
// Anonymous sentinel marks it as the user's own, then propagates the
// new total.
func (t *Thread) DeleteComment(commentID string) {
	for i, c := range t.comments {
		if c.ID != commentID {
			continue
		}
		if c.Author != board.AuthorAnonymous {
			common.WarningLogger.Printf("refused to delete comment %s by %s", commentID, c.Author)
			return
		}
		t.comments = append(append([]Comment(nil), t.comments[:i]...), t.comments[i+1:]...)
		t.notify()
		return
	}
}

func (t *Thread) DeleteReply(commentID, replyID string) {
	for i, c := range t.comments {
		if c.ID != commentID {
			continue
		}
		for j, r := range c.Replies {
			if r.ID != replyID {
				continue
			}
			if r.Author != board.AuthorAnonymous {
				common.WarningLogger.Printf("refused to delete reply %s by %s", replyID, r.Author)
				return
			}
			t.comments[i].Replies = append(append([]Reply(nil), c.Replies[:j]...), c.Replies[j+1:]...)
			t.notify()
			return
		}
		return
	}
}

func (t *Thread) notify() {
	if t.onCount != nil {
		t.onCount(t.postID, t.Count())
	}
}

func zeroCommentReactions() board.Reactions {
	return board.Reactions{board.ThumbsUp: 0, board.ThumbsDown: 0}
}
