package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"SessionGuard/internal/config"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "GET an API path with the stored session" }
func (getCmd) Usage() string       { return "get <api-path>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	resp, body, err := s.client.Do(ctx, http.MethodGet, args[0], nil, http.Header{"Accept": {"application/json"}})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, strings.TrimSpace(string(body)))
	return nil
}

func init() { RegisterCmd(getCmd{}) }
