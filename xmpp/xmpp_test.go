package xmpp

import (
	"errors"
	"testing"
)

func TestServerName(t *testing.T) {
	tests := map[string]string{
		"bot@example.org":          "example.org",
		"bot@example.org/resource": "example.org",
		"example.org":              "example.org",
	}
	for jid, want := range tests {
		if got := serverName(jid); got != want {
			t.Errorf("serverName(%s) = %s; want %s", jid, got, want)
		}
	}
}

func TestEnabled(t *testing.T) {
	x := Xmpp{Config: Config{Jid: "bot@example.org", Password: "secret"}}
	if x.Enabled() {
		t.Errorf("Enabled() = true without recipient; want false")
	}
	if err := x.Send("hello"); !errors.Is(err, ErrMissingConfig) {
		t.Errorf("Send() = %v; want ErrMissingConfig", err)
	}

	x.Config.To = "me@example.org"
	if !x.Enabled() {
		t.Errorf("Enabled() = false; want true")
	}
}

func TestOptions(t *testing.T) {
	x := Xmpp{Config: Config{Jid: "bot@example.org", Password: "secret", To: "me@example.org"}}
	o := x.options()
	if o.Host != "example.org:5222" || o.User != "bot@example.org" {
		t.Errorf("options() = (%s, %s); want (example.org:5222, bot@example.org)", o.Host, o.User)
	}

	x.Config.Host = "chat.example.org:5223"
	if o := x.options(); o.Host != "chat.example.org:5223" {
		t.Errorf("options().Host = %s; want chat.example.org:5223", o.Host)
	}
}
