package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/config"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Replace an item's title and description" }
func (itemEditCmd) Usage() string       { return "item-edit <id> <title> [description]" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	id, title := args[0], args[1]
	var description string
	if len(args) == 3 {
		description = args[2]
	}

	sess := newSession(cfg)
	token, err := sess.Token()
	if err != nil {
		return err
	}
	if _, err := sess.Client().UpdateItem(ctx, token, id, title, description); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Item updated")
	return printItems(ctx, sess)
}

func init() { RegisterCmd(itemEditCmd{}) }
