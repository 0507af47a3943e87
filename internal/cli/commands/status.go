package commands

import (
	"context"
	"fmt"

	"ItemKeeper/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current session" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess := newSession(cfg)
	user := sess.Current()
	if _, err := sess.Token(); err != nil || user == nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", user.Username, user.Email)
	fmt.Fprintf(Out, "Server: %s\n", cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
