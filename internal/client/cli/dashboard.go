package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
	"github.com/dmitrijs2005/goldtrack/internal/client/services"
)

// runDashboard mounts the dashboard: one asset repository per visit, the
// initial fetch pair, then a command loop. Returns false when the user
// quits; true hands control back to Run (logout or 401 teardown).
func (a *App) runDashboard(ctx context.Context) bool {
	repo := services.NewAssetService(a.client, a.session, a.log)
	defer repo.Close()

	a.section = SectionDashboard
	if err := repo.Refresh(ctx); err != nil {
		if !a.session.LoggedIn() {
			return true
		}
		fmt.Fprintf(a.out, "Could not load your data: %v\n", err)
	}
	a.renderSection(ctx, repo)

	for {
		if !a.session.LoggedIn() {
			fmt.Fprintln(a.out, "Session expired, please log in again.")
			return true
		}

		line, err := GetSimpleText(a.reader, a.prompt(), a.out)
		if err != nil {
			return false
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: dashboard, prices, profit, graph, add, remove <id>, sort <type|weight|price|date|karat>, refresh, logout, exit")

		case "dashboard", "dash":
			a.section = SectionDashboard
			a.renderSection(ctx, repo)

		case "prices":
			a.section = SectionPrices
			a.renderSection(ctx, repo)

		case "profit":
			a.section = SectionProfit
			a.renderSection(ctx, repo)

		case "graph":
			a.section = SectionGraph
			a.renderSection(ctx, repo)

		case "add":
			a.addAsset(ctx, repo)

		case "remove", "rm":
			a.removeAsset(ctx, repo, args)

		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort <type|weight|price|date|karat>")
				continue
			}
			col, ok := ParseSortColumn(args[0])
			if !ok {
				fmt.Fprintln(a.out, "Unknown column:", args[0])
				continue
			}
			a.sort.Click(col)
			a.renderAssets(repo.Snapshot())

		case "refresh":
			if err := repo.Refresh(ctx); err != nil && a.session.LoggedIn() {
				fmt.Fprintf(a.out, "Refresh failed: %v\n", err)
			}
			a.renderSection(ctx, repo)

		case "logout":
			a.session.Clear(ctx)
			return true

		case "exit", "quit":
			return false

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) prompt() string {
	if t := a.activeToast(); t != "" {
		return fmt.Sprintf("[%s] goldtrack %s", t, a.section)
	}
	return fmt.Sprintf("goldtrack %s", a.section)
}

// renderSection draws the active panel from the repository snapshot.
// Entering prices is the one switch with a network effect: the price
// history is fetched anew on every visit, never cached across visits.
func (a *App) renderSection(ctx context.Context, repo *services.AssetService) {
	snap := repo.Snapshot()

	switch a.section {
	case SectionPrices:
		history, err := repo.PriceHistory(ctx, a.cfg.HistoryDays)
		if err != nil {
			a.log.Warn(ctx, "price history unavailable", "error", err)
			history = nil
		}
		a.renderPrices(snap, history)
	case SectionProfit:
		a.renderProfit(snap)
	case SectionGraph:
		fmt.Fprintln(a.out, "Gold Price & Profit Graph")
		fmt.Fprintln(a.out, "(Interactive graph coming soon...)")
	default:
		a.renderSummary(snap)
		a.renderAssets(snap)
	}
}

func (a *App) renderSummary(snap services.Snapshot) {
	if snap.Dashboard == nil {
		fmt.Fprintln(a.out, "Summary not loaded yet.")
		return
	}
	d := snap.Dashboard
	fmt.Fprintf(a.out, "Invested: %s   Current: %s   Net: %s\n",
		formatINR(d.Invested), formatINR(d.Current), formatINR(d.Net))
}

func (a *App) renderAssets(snap services.Snapshot) {
	if !snap.AssetsLoaded {
		fmt.Fprintln(a.out, "Assets not loaded yet.")
		return
	}
	if len(snap.Assets) == 0 {
		fmt.Fprintln(a.out, "No gold assets added yet")
		return
	}

	sorted := SortAssets(snap.Assets, a.sort.Column, a.sort.Dir)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTYPE\tWEIGHT (g)\tPRICE\tDATE\tKARAT\n")
	for _, asset := range sorted {
		karat := string(asset.Karat)
		if karat == "" {
			karat = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			asset.ID, asset.Type, asset.Weight.String(),
			formatINR(asset.PurchasePrice), asset.PurchaseDay(), karat)
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "Sorted by %s (%s)\n", a.sort.Column, a.sort.Dir)
}

func (a *App) renderPrices(snap services.Snapshot, history []models.PriceHistoryEntry) {
	fmt.Fprintln(a.out, "Current Gold Prices (per gram)")
	if snap.Dashboard == nil {
		fmt.Fprintln(a.out, "Prices not loaded yet.")
	} else {
		d := snap.Dashboard
		fmt.Fprintf(a.out, "24K: %s   22K: %s   18K: %s\n",
			formatOptINR(d.Price24K), formatOptINR(d.Price22K), formatOptINR(d.Price18K))
	}

	fmt.Fprintf(a.out, "History (last %d days)\n", a.cfg.HistoryDays)
	if len(history) == 0 {
		fmt.Fprintln(a.out, "no data")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "DATE\t24K\t22K\t18K\n")
	for _, e := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date,
			formatINR(e.PricePerGram.K24), formatINR(e.PricePerGram.K22), formatINR(e.PricePerGram.K18))
	}
	_ = w.Flush()
}

func (a *App) renderProfit(snap services.Snapshot) {
	fmt.Fprintln(a.out, "Current Profit")
	if snap.Dashboard == nil {
		fmt.Fprintln(a.out, "Profit not loaded yet.")
		return
	}
	fmt.Fprintf(a.out, "Net Profit: %s\n", formatINR(snap.Dashboard.Net))
}
