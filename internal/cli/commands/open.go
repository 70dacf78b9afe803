package commands

import (
	"context"
	"fmt"
	"strings"

	"SessionGuard/internal/config"
	"SessionGuard/internal/session"
)

type openCmd struct{}

func (openCmd) Name() string        { return "open" }
func (openCmd) Description() string { return "Check access to a page and show its menu" }
func (openCmd) Usage() string       { return "open <path>" }

func (openCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path := args[0]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	page := &session.Page{Store: s.store, Gate: s.gate, Client: s.client.HTTPClient(), Logger: logger}
	st := page.Load(ctx, path, session.DefaultMenu())
	if !st.Decision.Allowed {
		fmt.Fprintf(Out, "redirect: %s\n", st.Decision.RedirectTo)
		return nil
	}
	fmt.Fprintf(Out, "page: %s\n", st.Path)
	for _, it := range st.Menu.Items {
		fmt.Fprintf(Out, "  [%s] %s -> %s\n", it.ID, it.Label, it.Href)
	}
	return nil
}

func init() { RegisterCmd(openCmd{}) }
