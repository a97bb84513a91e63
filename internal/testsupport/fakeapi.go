package testsupport

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"takeout/internal/services/somtoday"
)

type cannedResponse struct {
	status int
	body   string
}

// FakeAPI is a scripted Somtoday server. Routes are registered by full URL,
// normally built with Endpoints(); anything unregistered answers 404.
type FakeAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []string
	tokens    []string
}

// NewFakeAPI starts a server that is closed when the test ends.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()
	api := &FakeAPI{responses: make(map[string]cannedResponse)}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)
	return api
}

// BaseURL is the REST root served by the fake.
func (a *FakeAPI) BaseURL() string {
	return a.server.URL + "/rest/v1"
}

// Endpoints builds URLs under BaseURL.
func (a *FakeAPI) Endpoints() somtoday.Endpoints {
	return somtoday.NewEndpoints(a.BaseURL())
}

// Client returns a somtoday client for the fake using token.
func (a *FakeAPI) Client(t testing.TB, token string, opts ...somtoday.Option) *somtoday.Client {
	t.Helper()
	opts = append([]somtoday.Option{somtoday.WithHTTPClient(a.server.Client())}, opts...)
	client, err := somtoday.New(a.BaseURL(), token, opts...)
	if err != nil {
		t.Fatalf("somtoday.New: %v", err)
	}
	return client
}

// Respond serves body with status 200 for url.
func (a *FakeAPI) Respond(url, body string) {
	a.RespondStatus(url, http.StatusOK, body)
}

// RespondStatus serves body with status for url.
func (a *FakeAPI) RespondStatus(url string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[url] = cannedResponse{status: status, body: body}
}

// Requests lists the URLs requested so far, in order.
func (a *FakeAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

// Tokens lists the Authorization headers received, in order.
func (a *FakeAPI) Tokens() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.tokens...)
}

func (a *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	url := a.server.URL + r.URL.RequestURI()

	a.mu.Lock()
	a.requests = append(a.requests, url)
	a.tokens = append(a.tokens, r.Header.Get("Authorization"))
	resp, ok := a.responses[url]
	a.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
