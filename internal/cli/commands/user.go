package commands

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/model/view"
	"context"
	"fmt"
)

var userResource = resource[view.User]{
	name: "user",
	path: "/api/user",
	line: func(u *view.User) string {
		return fmt.Sprintf("%s  %s <%s>", u.ID, u.Name, u.Email)
	},
	detail: func(u *view.User) []string {
		return []string{
			"ID:          " + u.ID,
			"Name:        " + u.Name,
			"Given name:  " + u.GivenName,
			"Family name: " + u.FamilyName,
			"Email:       " + u.Email,
		}
	},
}

func userFromArgs(args []string) *view.User {
	return &view.User{ID: args[0], GivenName: args[1], FamilyName: args[2], Email: args[3]}
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Create a user record" }
func (userAddCmd) Usage() string       { return "user-add <id> <given> <family> <email>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	return save(ctx, cfg, userResource, "", userFromArgs(args))
}

type userEditCmd struct{}

func (userEditCmd) Name() string        { return "user-edit" }
func (userEditCmd) Description() string { return "Update own user record" }
func (userEditCmd) Usage() string       { return "user-edit <id> <given> <family> <email>" }

func (userEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	return save(ctx, cfg, userResource, args[0], userFromArgs(args))
}

func init() {
	registerResource(userResource)
	RegisterCmd(userAddCmd{})
	RegisterCmd(userEditCmd{})
}
