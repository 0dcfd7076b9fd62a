// Package app wires the services together and exposes the intents the
// presentation layer calls: open a board, post, react, open a thread,
// message, follow, apply, shop. Everything lives in this process; the
// store is built once here and handed to whoever needs it, there are
// no package-level globals.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"myple/internal/board"
	"myple/internal/cart"
	"myple/internal/catalog"
	"myple/internal/chat"
	"myple/internal/common"
	"myple/internal/matching"
	"myple/internal/social"
	"myple/internal/thread"
	"myple/internal/user"
)

type Config struct {
	CatalogPath string
	Seed        int64 // 0 picks a time-based seed
}

type App struct {
	catalog         catalog.Catalog
	store           *board.Store
	userService     *user.Service
	chatService     *chat.Service
	socialService   *social.Service
	matchingService *matching.Service
	cartService     *cart.Service

	current user.User
}

func New(cfg Config) (*App, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{catalog: cat}
	a.store = board.NewStore()
	gen := board.NewGenerator(rand.NewSource(seed))
	for _, b := range cat.Boards {
		a.store.SetBoard(b.ID, gen.Generate(&cat, b.ID))
	}
	common.InfoLogger.Printf("seeded %d boards", len(cat.Boards))

	a.userService = user.NewService()
	a.chatService = chat.NewService(cat.Chat, rand.NewSource(seed+1))
	a.socialService = social.NewService(rand.NewSource(seed+2))
	a.matchingService = matching.NewService(cat.Matchings)
	a.cartService = cart.NewService(cat.Products)
	return a, nil
}

func (a *App) Store() *board.Store          { return a.store }
func (a *App) Users() *user.Service         { return a.userService }
func (a *App) Chat() *chat.Service          { return a.chatService }
func (a *App) Social() *social.Service      { return a.socialService }
func (a *App) Matchings() *matching.Service { return a.matchingService }
func (a *App) Cart() *cart.Service          { return a.cartService }
func (a *App) Catalog() catalog.Catalog     { return a.catalog }

// Register creates the account and signs the new user in.
func (a *App) Register(u user.User) (user.User, error) {
	registered, err := a.userService.Register(u)
	if err != nil {
		return user.User{}, err
	}
	a.current = registered
	return registered, nil
}

// Login signs a registered user in.
func (a *App) Login(name, password string) error {
	token, err := a.userService.NewSession(name, password)
	if err != nil {
		return err
	}
	// token is "key|id", see user.Service.NewSession.
	for i := 0; i < len(token); i++ {
		if token[i] == '|' {
			u, err := a.userService.CheckSession(token[:i], token[i+1:])
			if err != nil {
				return err
			}
			a.current = u
			return nil
		}
	}
	return common.SystemError(fmt.Errorf("malformed session token"))
}

func (a *App) CurrentUser() user.User {
	return a.current
}

// BoardTitle resolves the display title for a board id.
func (a *App) BoardTitle(boardID string) string {
	if b, ok := a.catalog.Board(boardID); ok {
		return b.Title
	}
	return "COMMUNITY BOARD"
}

// OpenBoard returns a board's posts, applying the lounge gating for
// the signed-in user.
func (a *App) OpenBoard(boardID string) ([]board.Post, error) {
	if err := user.CanEnterBoard(a.current, boardID); err != nil {
		return nil, err
	}
	return a.store.Posts(boardID), nil
}

// SubmitPost creates a post on a board. Posts on the announcements
// board carry the Admin author, everything else is Anonymous.
func (a *App) SubmitPost(boardID, title, content, batch string, images []string) (board.Post, error) {
	if err := user.CanEnterBoard(a.current, boardID); err != nil {
		return board.Post{}, err
	}
	d := board.Draft{
		Author:  board.AuthorAnonymous,
		Avatar:  "🎮",
		Title:   title,
		Content: content,
		Images:  images,
		Batch:   batch,
	}
	if b, ok := a.catalog.Board(boardID); ok && b.AdminOnly {
		d.Author = board.AuthorAdmin
		d.Avatar = "👨‍💼"
	}
	p, err := a.store.CreatePost(boardID, d)
	if err != nil {
		return board.Post{}, err
	}
	common.InfoLogger.Printf("new post %s on board %s", p.ID, boardID)
	return p, nil
}

// OpenThread builds the discussion for a post, seeded from the
// catalog, with count changes wired back into the store so the board
// and bookmark copies stay in sync.
func (a *App) OpenThread(boardID, postID string) *thread.Thread {
	return thread.New(postID, a.catalog.ThreadSeed(postID), func(id string, count int) {
		a.store.UpdateCommentCount(boardID, id, count)
	})
}

// Share renders the share text for a post. Putting it on the
// clipboard, or into a share sheet, is the caller's business.
func (a *App) Share(boardID, postID string) (string, error) {
	p, ok := a.store.Post(boardID, postID)
	if !ok {
		return "", common.NotFoundError(nil, "cannot find post")
	}
	return fmt.Sprintf("Check out this post: %q on %s", p.Title, a.BoardTitle(boardID)), nil
}

// Report records a report. There is no moderation backend; the report
// is logged and acknowledged.
func (a *App) Report(postID, reason string) {
	common.InfoLogger.Printf("post %s reported: %s", postID, reason)
}

// Close cancels every pending simulated event.
func (a *App) Close() {
	a.chatService.Close()
	a.socialService.Close()
}
