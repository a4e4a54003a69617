package cli

import (
	"context"

	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
)

func (a *App) Register(ctx context.Context) error {
	req := &pb.RegisterRequest{}
	var err error

	if req.Username, err = a.ask("Username"); err != nil {
		return a.report(err)
	}
	if req.Email, err = a.ask("Email"); err != nil {
		return a.report(err)
	}
	if req.FirstName, err = a.ask("First name"); err != nil {
		return a.report(err)
	}
	if req.LastName, err = a.ask("Last name"); err != nil {
		return a.report(err)
	}
	if req.Password, err = GetPassword("Password", a.out); err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return a.report(err)
	}
	a.output("%s\n", resp.Message)
	return nil
}

// Verify confirms the emailed token; the server signs the account in.
func (a *App) Verify(ctx context.Context) error {
	token, err := a.ask("Verification token from the email")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.Verify(ctx, token); err != nil {
		return a.report(err)
	}
	a.loadUserName(ctx)
	a.output("Email verified, you are logged in\n")
	return nil
}

func (a *App) ResendVerification(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.ResendVerification(ctx, email); err != nil {
		return a.report(err)
	}
	a.output("Verification email sent\n")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.ForgotPassword(ctx, email); err != nil {
		return a.report(err)
	}
	a.output("Password reset email sent\n")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := a.ask("Reset token from the email")
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword("New password", a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.ResetPassword(ctx, token, password); err != nil {
		return a.report(err)
	}
	a.output("Password has been reset, please login\n")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := a.ask("Username")
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.Login(ctx, username, password); err != nil {
		return a.report(err)
	}
	a.userName = username
	a.output("Login successful\n")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	p, err := a.api.Profile(ctx)
	if err != nil {
		return a.report(err)
	}
	a.output("%s (%s %s) <%s>\n", p.Username, p.FirstName, p.LastName, p.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	a.userName = ""
	if err := a.api.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.output("Logged out\n")
	return nil
}

// loadUserName fills the prompt after a login that did not ask for it.
func (a *App) loadUserName(ctx context.Context) {
	if p, err := a.api.Profile(ctx); err == nil {
		a.userName = p.Username
	}
}
