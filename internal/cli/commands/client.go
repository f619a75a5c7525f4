package commands

import (
	"StuffKeeper/internal/cli/api"
	fsrepo "StuffKeeper/internal/cli/repo/fs"
	"StuffKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

func tokenStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{Path: cfg.TokenFile}
}

func loadToken(cfg *config.Config) (string, error) {
	tok, err := tokenStore(cfg).Load()
	if err != nil {
		return "", fmt.Errorf("no stored token, run `token <bearer>` first: %w", err)
	}
	return tok, nil
}

// endpoint собирает URL ресурса: ServerURL + path [+ /id] [?query].
func endpoint(cfg *config.Config, path, id string, query url.Values) string {
	u := strings.TrimRight(cfg.ServerURL, "/") + path
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// call выполняет запрос и декодирует ответ в out (если out != nil и тело не пустое).
// Для изменяющих запросов auth = true: подставляется сохранённый токен.
func call(ctx context.Context, cfg *config.Config, method, u string, payload any, auth bool, out any) error {
	token := ""
	if auth {
		var err error
		if token, err = loadToken(cfg); err != nil {
			return err
		}
	}

	resp, body, err := api.DoJSON(ctx, method, u, payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return api.ErrorFromBody(resp.StatusCode, body)
	}
	if out == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
