package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/session"
	"github.com/dmitrijs2005/bookdesk/internal/client/storage"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noRedirect struct{}

func (noRedirect) RedirectToLogin(context.Context) {}

func TestLoginThenBorrow_OverHTTP(t *testing.T) {
	var borrowAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":200,"message":"ok","data":{"id":1,"username":"alice","role":"user","token":"jwt-1"}}`)
	})
	mux.HandleFunc("/api/borrows", func(w http.ResponseWriter, r *http.Request) {
		borrowAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"code":400,"message":"Book is not available"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db, logging.Discard())
	store.Load(ctx)
	n := &fakeNotifier{}
	client := api.NewClient(srv.URL, time.Second, store, n, noRedirect{}, logging.Discard())

	auth := NewAuthService(client, store, n, logging.Discard())
	_, err = auth.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, store.IsLoggedIn())

	err = NewBorrowService(client, logging.Discard()).Borrow(ctx, 1)
	require.ErrorIs(t, err, api.ErrRejected)
	assert.Equal(t, "Bearer jwt-1", borrowAuth)
	assert.Equal(t, []string{"success: Logged in", "error: Book is not available"}, n.Messages)
}
