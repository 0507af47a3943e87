package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/config"
)

type itemDelCmd struct{}

func (itemDelCmd) Name() string        { return "item-del" }
func (itemDelCmd) Description() string { return "Delete an item (asks for confirmation)" }
func (itemDelCmd) Usage() string       { return "item-del <id>" }

func (itemDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id := args[0]

	if !confirm("Are you sure you want to delete this item?") {
		fmt.Fprintln(Out, "Aborted")
		return nil
	}

	sess := newSession(cfg)
	token, err := sess.Token()
	if err != nil {
		return err
	}
	if err := sess.Client().DeleteItem(ctx, token, id); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Item removed")
	return printItems(ctx, sess)
}

func init() { RegisterCmd(itemDelCmd{}) }
