package commands

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/model/view"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// resource описывает коллекцию на сервере и то, как печатать её записи.
type resource[V any] struct {
	name   string // префикс команд: stuff, user
	path   string
	line   func(*V) string
	detail func(*V) []string
}

func registerResource[V any](res resource[V]) {
	RegisterCmd(listCmd[V]{res})
	RegisterCmd(searchCmd[V]{res})
	RegisterCmd(getCmd[V]{res})
	RegisterCmd(deleteCmd[V]{res})
}

func printPage[V any](res resource[V], p view.Page[V]) {
	if len(p.Items) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return
	}
	for i := range p.Items {
		fmt.Fprintf(Out, "- %s\n", res.line(&p.Items[i]))
	}
	fmt.Fprintf(Out, "Страница %d/%d, всего: %d\n", p.Page, p.TotalPages, p.Total)
}

type listCmd[V any] struct{ res resource[V] }

func (c listCmd[V]) Name() string        { return c.res.name + "-list" }
func (c listCmd[V]) Description() string { return "List " + c.res.name + " page by page" }
func (c listCmd[V]) Usage() string       { return c.Name() + " [page]" }

func (c listCmd[V]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	q := url.Values{}
	if len(args) == 1 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return ErrUsage
		}
		q.Set("page", args[0])
	}

	var p view.Page[V]
	if err := call(ctx, cfg, http.MethodGet, endpoint(cfg, c.res.path, "", q), nil, false, &p); err != nil {
		return err
	}
	printPage(c.res, p)
	return nil
}

type searchCmd[V any] struct{ res resource[V] }

func (c searchCmd[V]) Name() string        { return c.res.name + "-search" }
func (c searchCmd[V]) Description() string { return "Search " + c.res.name + " (at most one page of results)" }
func (c searchCmd[V]) Usage() string       { return c.Name() + " <term>" }

func (c searchCmd[V]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var p view.Page[V]
	q := url.Values{"search": {args[0]}}
	if err := call(ctx, cfg, http.MethodGet, endpoint(cfg, c.res.path, "", q), nil, false, &p); err != nil {
		return err
	}
	printPage(c.res, p)
	return nil
}

type getCmd[V any] struct{ res resource[V] }

func (c getCmd[V]) Name() string        { return c.res.name + "-get" }
func (c getCmd[V]) Description() string { return "Show one " + c.res.name + " by id" }
func (c getCmd[V]) Usage() string       { return c.Name() + " <id>" }

func (c getCmd[V]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var out *V
	if err := call(ctx, cfg, http.MethodGet, endpoint(cfg, c.res.path, args[0], nil), nil, false, &out); err != nil {
		return err
	}
	if out == nil {
		fmt.Fprintln(Out, "Не найдено")
		return nil
	}
	for _, l := range c.res.detail(out) {
		fmt.Fprintln(Out, l)
	}
	return nil
}

type deleteCmd[V any] struct{ res resource[V] }

func (c deleteCmd[V]) Name() string        { return c.res.name + "-delete" }
func (c deleteCmd[V]) Description() string { return "Delete own " + c.res.name }
func (c deleteCmd[V]) Usage() string       { return c.Name() + " <id>" }

func (c deleteCmd[V]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := call(ctx, cfg, http.MethodDelete, endpoint(cfg, c.res.path, args[0], nil), nil, true, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Удалено: %s\n", args[0])
	return nil
}

// save отправляет запись (POST без id, PUT с id) и печатает результат.
func save[V any](ctx context.Context, cfg *config.Config, res resource[V], id string, in *V) error {
	method := http.MethodPost
	if id != "" {
		method = http.MethodPut
	}
	var out V
	if err := call(ctx, cfg, method, endpoint(cfg, res.path, id, nil), in, true, &out); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Сохранено: %s\n", res.line(&out))
	return nil
}
