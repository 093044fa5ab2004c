package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
)

// fakeDoer records requests and answers with canned envelopes.
type fakeDoer struct {
	Data map[string]string // "METHOD path" -> raw data JSON
	Err  error

	Requests []api.Request
}

func (f *fakeDoer) Do(ctx context.Context, r api.Request) (*api.Envelope, error) {
	if r.Method == "" {
		r.Method = "GET"
	}
	f.Requests = append(f.Requests, r)
	if f.Err != nil {
		return nil, f.Err
	}
	return &api.Envelope{Code: api.CodeOK, Data: []byte(f.Data[r.Method+" "+r.URL])}, nil
}

func (f *fakeDoer) last() api.Request {
	return f.Requests[len(f.Requests)-1]
}

type fakeSession struct {
	mu         sync.Mutex
	credential string
	profile    *models.Profile

	SetErr   error
	ClearErr error
	Cleared  int
}

func (f *fakeSession) Set(ctx context.Context, credential string, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.credential, f.profile = credential, profile
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cleared++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.credential, f.profile = "", nil
	return nil
}

func (f *fakeSession) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = profile
	return nil
}

type fakeNotifier struct {
	Messages []string
}

func (f *fakeNotifier) Notify(level notify.Level, msg string) {
	f.Messages = append(f.Messages, level.String()+": "+msg)
}
