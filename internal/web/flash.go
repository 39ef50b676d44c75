package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "showbill_session"

// Flash stores one-shot user-facing notices in a cookie session; a notice
// added during one request is shown on the next rendered response.
type Flash struct {
	store *sessions.CookieStore
}

func NewFlash(secret string) *Flash {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	return &Flash{store: store}
}

// Add queues a notice for the next rendered response.
func (f *Flash) Add(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := f.store.Get(r, sessionName)
	session.AddFlash(message)
	_ = session.Save(r, w)
}

// Pop drains the queued notices, clearing them from the session.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []string {
	session, _ := f.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
