package commands

import (
	"StuffKeeper/internal/config"
	"context"
	"fmt"
)

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Description() string { return "Store bearer token issued by the identity provider" }
func (tokenCmd) Usage() string       { return "token <bearer>" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Save(args[0]); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "Token saved")
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
