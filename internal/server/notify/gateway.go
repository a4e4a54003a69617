// Package notify delivers account emails: verification links and password
// reset links. Mailer formats the messages; a Sender moves them.
package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/taskplanner/internal/common"
)

// Gateway is what account flows need from outbound mail.
type Gateway interface {
	SendVerificationEmail(ctx context.Context, address, token string) error
	SendPasswordResetEmail(ctx context.Context, address, token string) error
}

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer builds link emails pointing at baseURL and hands them to a Sender.
type Mailer struct {
	sender  Sender
	baseURL string
}

func NewMailer(sender Sender, baseURL string) *Mailer {
	return &Mailer{sender: sender, baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *Mailer) SendVerificationEmail(ctx context.Context, address, token string) error {
	link := m.link("/verify", token)
	return m.send(ctx, Message{
		To:      address,
		Subject: "Confirm your email address",
		Body: "Welcome to taskplanner!\n\n" +
			"Please confirm your email address by opening the link below:\n\n" + link + "\n\n" +
			"If you did not sign up, you can ignore this message.\n",
	})
}

func (m *Mailer) SendPasswordResetEmail(ctx context.Context, address, token string) error {
	link := m.link("/reset-password", token)
	return m.send(ctx, Message{
		To:      address,
		Subject: "Reset your password",
		Body: "Somebody asked to reset the password of your taskplanner account.\n\n" +
			"Open the link below to choose a new password. It is valid for a limited time:\n\n" + link + "\n\n" +
			"If it was not you, no action is needed.\n",
	})
}

func (m *Mailer) link(path, token string) string {
	return m.baseURL + path + "?token=" + url.QueryEscape(token)
}

func (m *Mailer) send(ctx context.Context, msg Message) error {
	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	return nil
}
