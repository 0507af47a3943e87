package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Add a new item" }
func (itemAddCmd) Usage() string       { return "item-add <title> [description]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	title := args[0]
	var description string
	if len(args) == 2 {
		description = args[1]
	}

	sess := newSession(cfg)
	token, err := sess.Token()
	if err != nil {
		return err
	}
	if _, err := sess.Client().CreateItem(ctx, token, title, description); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Item added")
	return printItems(ctx, sess)
}

func init() { RegisterCmd(itemAddCmd{}) }
