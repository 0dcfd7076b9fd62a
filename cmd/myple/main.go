package main

import (
	"flag"
	"fmt"
	"os"

	"myple/internal/app"
	"myple/internal/board"
	"myple/internal/common"
	"myple/internal/user"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a seed catalog, empty for the built-in one")
	seed := flag.Int64("seed", 0, "random seed for generated content, 0 for time-based")
	flag.Parse()

	a, err := app.New(app.Config{CatalogPath: *catalogPath, Seed: *seed})
	if err != nil {
		common.ErrorLogger.Println(err)
		os.Exit(1)
	}
	defer a.Close()

	if err := run(a); err != nil {
		common.ErrorLogger.Println(err)
		os.Exit(1)
	}
}

// run walks through a short session so the whole stack gets exercised
// from the command line.
func run(a *app.App) error {
	if _, err := a.Register(user.User{
		Name:      "demo",
		Password:  "demo-pass",
		RepeatPWD: "demo-pass",
		Gender:    user.Male,
	}); err != nil {
		return err
	}
	common.InfoLogger.Printf("signed in as %s", a.CurrentUser().Name)

	posts, err := a.OpenBoard("batch")
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d posts\n", a.BoardTitle("batch"), len(posts))
	for _, p := range posts {
		fmt.Printf("  [%s] %s (%d comments)\n", p.Batch, p.Title, p.Comments)
	}

	created, err := a.SubmitPost("batch", "Hello from the CLI", "Anyone else browsing from a terminal?", "22", nil)
	if err != nil {
		return err
	}
	a.Store().ToggleReaction("batch", created.ID, board.Heart)
	a.Store().ToggleBookmark("batch", created.ID)

	t := a.OpenThread("batch", created.ID)
	if _, err := t.AddComment("First!"); err != nil {
		return err
	}
	fmt.Printf("thread %s now has %d comments\n", created.ID, t.Count())

	text, err := a.Share("batch", created.ID)
	if err != nil {
		return err
	}
	fmt.Println(text)

	for _, c := range a.Chat().Chats() {
		fmt.Printf("chat with %s: %s\n", c.Name, c.LastMessage)
	}
	return nil
}
