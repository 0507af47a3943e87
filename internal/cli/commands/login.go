package commands

import (
	"context"
	"errors"
	"fmt"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session" }
func (loginCmd) Usage() string       { return "login <email> [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	email := args[0]
	var password string
	if len(args) == 2 {
		password = args[1]
	} else {
		p, err := promptPassword()
		if err != nil {
			return err
		}
		password = p
	}

	sess := newSession(cfg)
	if err := sess.Login(ctx, email, password); err != nil {
		// показываем сообщение сервера; если его нет — общий текст
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return errors.New("Login failed")
	}

	fmt.Fprintf(Out, "Logged in as %s\n", sess.Current().Username)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
