package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goldtrack/internal/client/api"
	"github.com/dmitrijs2005/goldtrack/internal/client/services"
)

// runAuthWizard walks the login / register / verify-OTP flow until the
// session becomes authenticated. Returns false when the user quits or
// input ends.
func (a *App) runAuthWizard(ctx context.Context) bool {
	for !a.session.LoggedIn() {
		if msg := a.flow.Message(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		var err error
		var quit bool
		switch a.flow.State() {
		case services.StateRegister:
			quit, err = a.registerStep(ctx)
		case services.StateVerify:
			quit, err = a.verifyStep(ctx)
		default:
			quit, err = a.loginStep(ctx)
		}
		if err != nil {
			// Input ended; nothing more to read.
			return false
		}
		if quit {
			return false
		}
	}
	return true
}

// loginStep collects credentials, or navigates to registration. The
// special commands mirror the links under the login form.
func (a *App) loginStep(ctx context.Context) (quit bool, readErr error) {
	userID, err := GetSimpleText(a.reader, "Login — enter User ID ('register' to create an account, 'exit' to quit)", a.out)
	if err != nil {
		return false, err
	}

	switch userID {
	case "":
		return false, nil
	case "exit", "quit":
		return true, nil
	case "register":
		a.flow.SwitchToRegister()
		return false, nil
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return false, err
	}

	if err := a.flow.Login(ctx, userID, password); err != nil {
		a.log.Debug(ctx, "login rejected", "error", err)
	}
	return false, nil
}

// registerStep collects the registration form. An empty User ID navigates
// back to login.
func (a *App) registerStep(ctx context.Context) (quit bool, readErr error) {
	userID, err := GetSimpleText(a.reader, "Register — enter User ID (empty to go back to login)", a.out)
	if err != nil {
		return false, err
	}
	if userID == "" || userID == "login" {
		a.flow.SwitchToLogin()
		return false, nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return false, err
	}
	region, err := GetSimpleText(a.reader, "Region (India/USA/UK/Other)", a.out)
	if err != nil {
		return false, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return false, err
	}

	req := api.RegisterRequest{UserID: userID, Password: password, Email: email, Region: region}
	if err := a.flow.Register(ctx, req); err != nil {
		a.log.Debug(ctx, "registration rejected", "error", err)
	}
	return false, nil
}

// verifyStep prompts for the one-time passcode sent on registration.
// An empty line abandons verification and returns to login.
func (a *App) verifyStep(ctx context.Context) (quit bool, readErr error) {
	prompt := fmt.Sprintf("Verify %s — enter OTP (empty to cancel)", a.flow.PendingUserID())
	otp, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return false, err
	}
	if otp == "" {
		a.flow.Abandon()
		return false, nil
	}

	if err := a.flow.Verify(ctx, otp); err != nil {
		a.log.Debug(ctx, "verification rejected", "error", err)
	}
	return false, nil
}
