package commands

import (
	"context"
	"fmt"
	"time"

	"SessionGuard/internal/config"
	"SessionGuard/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether a session token is stored" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	tok, err := s.auth.Current(ctx)
	if err != nil {
		return err
	}
	if !tok.Present() {
		fmt.Fprintln(Out, "Status: anonymous")
		return nil
	}
	fmt.Fprintf(Out, "Status: authenticated (token %s)\n", tok)
	for _, line := range describeClaims(tok) {
		fmt.Fprintln(Out, "  "+line)
	}
	return nil
}

// describeClaims показывает поля JWT без проверки подписи: только для
// информации, на решение о доступе не влияет.
func describeClaims(tok session.Token) []string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.Value(), claims); err != nil {
		return nil
	}
	var out []string
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		out = append(out, "subject: "+sub)
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		out = append(out, "role: "+role)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out = append(out, "expires: "+exp.UTC().Format(time.RFC3339))
	}
	return out
}

func init() { RegisterCmd(statusCmd{}) }
