package commands

import (
	"context"
	"fmt"

	"SessionGuard/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored session token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	to, err := s.auth.Logout(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged out, redirect: %s\n", to)
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
