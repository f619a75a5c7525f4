package commands

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/model/view"
	"context"
	"fmt"
)

var stuffResource = resource[view.Datum]{
	name: "stuff",
	path: "/api/stuff",
	line: func(d *view.Datum) string {
		owner := ""
		if d.User != nil {
			owner = d.User.Name
		}
		return fmt.Sprintf("%s  label=%s  owner=%s", d.ID, d.Label, owner)
	},
	detail: func(d *view.Datum) []string {
		lines := []string{
			"ID:          " + d.ID,
			"Label:       " + d.Label,
			"Description: " + d.Description,
			"Other info:  " + d.OtherInfo,
		}
		if d.User != nil {
			lines = append(lines, fmt.Sprintf("Owner:       %s (%s)", d.User.Name, d.User.ID))
		}
		if d.UpdatedAt != nil {
			lines = append(lines, "Updated:     "+d.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return lines
	},
}

type stuffAddCmd struct{}

func (stuffAddCmd) Name() string        { return "stuff-add" }
func (stuffAddCmd) Description() string { return "Create a datum owned by the token holder" }
func (stuffAddCmd) Usage() string       { return "stuff-add <label> [description] [other-info]" }

func (stuffAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	in := &view.Datum{Label: args[0], Description: argOr(args, 1), OtherInfo: argOr(args, 2)}
	return save(ctx, cfg, stuffResource, "", in)
}

type stuffEditCmd struct{}

func (stuffEditCmd) Name() string        { return "stuff-edit" }
func (stuffEditCmd) Description() string { return "Replace fields of own datum" }
func (stuffEditCmd) Usage() string       { return "stuff-edit <id> <label> [description] [other-info]" }

func (stuffEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return ErrUsage
	}
	in := &view.Datum{ID: args[0], Label: args[1], Description: argOr(args, 2), OtherInfo: argOr(args, 3)}
	return save(ctx, cfg, stuffResource, args[0], in)
}

func init() {
	registerResource(stuffResource)
	RegisterCmd(stuffAddCmd{})
	RegisterCmd(stuffEditCmd{})
}
