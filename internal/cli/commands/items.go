package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/cli/session"
	"ItemKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List your items, newest first" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess := newSession(cfg)
	return printItems(ctx, sess)
}

// printItems запрашивает актуальный список записей и печатает его в Out.
// После мутаций команды вызывают его же, чтобы показать свежее состояние.
func printItems(ctx context.Context, sess *session.Session) error {
	token, err := sess.Token()
	if err != nil {
		return err
	}
	items, err := sess.Client().ListItems(ctx, token)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items yet. Add one!")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(Out, "%s  %s\n", it.ID, it.Title)
		if it.Description != "" {
			fmt.Fprintf(Out, "    %s\n", it.Description)
		}
		fmt.Fprintf(Out, "    added %s\n", it.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
