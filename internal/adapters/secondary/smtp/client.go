// Package smtp sends outgoing mail through a gomail dialer.
package smtp

import (
	"context"

	"gopkg.in/gomail.v2"
)

type Client struct {
	dialer *gomail.Dialer
	from   string
}

func NewClient(dialer *gomail.Dialer, from string) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
	}
}

func (c *Client) Send(_ context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return c.dialer.DialAndSend(m)
}
