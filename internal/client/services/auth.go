// Package services contains the application services of the tracker client:
// the authentication wizard logic and the asset repository that keeps the
// dashboard in sync with the backend.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/goldtrack/internal/client/api"
	"github.com/dmitrijs2005/goldtrack/internal/client/session"
	"github.com/dmitrijs2005/goldtrack/internal/logging"
)

// AuthState is the current view of the authentication wizard.
type AuthState string

const (
	StateLogin    AuthState = "login"
	StateRegister AuthState = "register"
	StateVerify   AuthState = "verify"
)

// ErrBusy is returned when a submission arrives while another one is still
// in flight. The in-flight request is never cancelled; the new one is
// simply refused, like a disabled submit button.
var ErrBusy = errors.New("another request is in flight")

// AuthFlow drives the login / register / verify-OTP state machine.
//
// Message always holds the server-supplied text (message falling back to
// error) from the last submission, success included: a success without a
// message displays nothing, because confirmation is communicated by the
// state transition itself. Successful login hands the token to the session
// store; the flow has no terminal state of its own.
type AuthFlow struct {
	client  api.Client
	session *session.Store
	log     logging.Logger

	mu      sync.Mutex
	state   AuthState
	pending string // userid awaiting OTP verification
	message string
	busy    bool
}

func NewAuthFlow(client api.Client, sess *session.Store, log logging.Logger) *AuthFlow {
	return &AuthFlow{client: client, session: sess, log: log, state: StateLogin}
}

func (f *AuthFlow) State() AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AuthFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *AuthFlow) PendingUserID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

func (f *AuthFlow) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// SwitchToRegister navigates login → register, clearing any prior message.
func (f *AuthFlow) SwitchToRegister() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateRegister
	f.message = ""
}

// SwitchToLogin navigates back to the login view, clearing the message.
func (f *AuthFlow) SwitchToLogin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateLogin
	f.message = ""
}

// Abandon models navigating away from OTP verification: the pending userid
// is consumed without verification and the flow returns to login.
func (f *AuthFlow) Abandon() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = ""
	f.state = StateLogin
	f.message = ""
}

// begin claims the busy flag and clears the previous message, mirroring
// the submit-handler prologue of the source UI.
func (f *AuthFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false
	}
	f.busy = true
	f.message = ""
	return true
}

// Register submits the registration form. On acceptance the flow moves to
// verify and records the submitted userid as the verification subject; on
// rejection it stays at register with the server's text.
func (f *AuthFlow) Register(ctx context.Context, req api.RegisterRequest) error {
	if !f.begin() {
		return ErrBusy
	}
	msg, err := f.client.Register(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.message = displayText(err)
		return err
	}
	f.state = StateVerify
	f.pending = req.UserID
	f.message = msg
	return nil
}

// Verify submits the OTP for the pending userid. Acceptance returns the
// flow to login; rejection stays at verify.
func (f *AuthFlow) Verify(ctx context.Context, otp string) error {
	if !f.begin() {
		return ErrBusy
	}
	f.mu.Lock()
	userID := f.pending
	f.mu.Unlock()

	msg, err := f.client.VerifyOTP(ctx, userID, otp)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.message = displayText(err)
		return err
	}
	f.state = StateLogin
	f.pending = ""
	f.message = msg
	return nil
}

// Login submits credentials. Only a 2xx response that actually carries a
// token authenticates; the token goes to the session store and the host
// flips to the dashboard via its session subscription. A 2xx without a
// token stays at login.
func (f *AuthFlow) Login(ctx context.Context, userID, password string) error {
	if !f.begin() {
		return ErrBusy
	}
	res, err := f.client.Login(ctx, userID, password)

	f.mu.Lock()
	f.busy = false
	if err != nil {
		f.message = displayText(err)
		f.mu.Unlock()
		return err
	}
	f.message = res.Message
	f.mu.Unlock()

	if res.Token != "" {
		f.session.Set(ctx, res.Token)
	}
	return nil
}

// displayText renders an operation failure for the message line: server
// rejections verbatim, transport failures as their error text.
func displayText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
