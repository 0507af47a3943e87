package commands

import (
	"context"
	"errors"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and login" }
func (registerCmd) Usage() string       { return "register <username> <email> [password]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	username, email := args[0], args[1]
	var password string
	if len(args) == 3 {
		password = args[2]
	} else {
		p, err := promptPassword()
		if err != nil {
			return err
		}
		password = p
	}

	sess := newSession(cfg)
	if err := sess.Register(ctx, username, email, password); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return err
	}

	fmt.Fprintf(Out, "Registered and logged in as %s\n", sess.Current().Username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
