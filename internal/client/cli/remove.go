package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/goldtrack/internal/client/services"
)

// removeAsset deletes a holding after an explicit confirmation. Anything
// but a clear "y"/"yes" cancels without touching the backend; there is no
// undo once confirmed.
func (a *App) removeAsset(ctx context.Context, repo *services.AssetService, args []string) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = GetSimpleText(a.reader, "Enter asset id to remove", a.out)
		if err != nil {
			return
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid asset id:", raw)
		return
	}

	answer, err := GetSimpleText(a.reader,
		fmt.Sprintf("Remove asset %d? This cannot be undone. (y/N)", id), a.out)
	if err != nil {
		return
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := repo.Remove(ctx, id); err != nil {
		if a.session.LoggedIn() {
			fmt.Fprintln(a.out, err.Error())
		}
		return
	}

	a.showToast("Gold asset removed!")
	a.renderSection(ctx, repo)
}
