// Package cli is the terminal UI of the gold tracker: an auth wizard while
// logged out and a sectioned dashboard while logged in. All remote state
// flows through the services layer; this package only renders snapshots
// and collects input.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/goldtrack/internal/client/api"
	"github.com/dmitrijs2005/goldtrack/internal/client/config"
	"github.com/dmitrijs2005/goldtrack/internal/client/models"
	"github.com/dmitrijs2005/goldtrack/internal/client/services"
	"github.com/dmitrijs2005/goldtrack/internal/client/session"
	"github.com/dmitrijs2005/goldtrack/internal/logging"
)

// nowFn is a test seam for the toast expiry clock.
var nowFn = time.Now

// Section is one of the four dashboard panels. Switching sections is
// client-only state; only entering the prices section has a network
// effect (a fresh history fetch on every visit).
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionPrices    Section = "prices"
	SectionProfit    Section = "profit"
	SectionGraph     Section = "graph"
)

// toast is a transient confirmation line. It is rendered only while its
// deadline has not passed; there is no background timer dismissing it.
type toast struct {
	text  string
	until time.Time
}

// App wires the session store, auth flow and asset repository into an
// interactive loop.
type App struct {
	cfg     *config.Config
	client  api.Client
	session *session.Store
	flow    *services.AuthFlow
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	section Section
	sort    SortState
	form    models.AddAssetInput
	toast   toast
}

func NewApp(cfg *config.Config, client api.Client, sess *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:     cfg,
		client:  client,
		session: sess,
		flow:    services.NewAuthFlow(client, sess, log),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		section: SectionDashboard,
		sort:    NewSortState(),
	}
}

// Run alternates between the auth wizard and the dashboard until the user
// quits or input ends. A 401 anywhere collapses the session and lands the
// user back in the wizard.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "GoldTrack — personal gold holdings tracker (type 'help' for commands)")

	for {
		var keepGoing bool
		if a.session.LoggedIn() {
			keepGoing = a.runDashboard(ctx)
		} else {
			keepGoing = a.runAuthWizard(ctx)
		}
		if !keepGoing {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}

func (a *App) showToast(text string) {
	if text == "" {
		return
	}
	a.toast = toast{text: text, until: nowFn().Add(a.cfg.ToastDuration)}
}

// activeToast returns the confirmation text while it is still fresh.
func (a *App) activeToast() string {
	if a.toast.text != "" && nowFn().Before(a.toast.until) {
		return a.toast.text
	}
	return ""
}
