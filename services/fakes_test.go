package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/config"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/apiclient"

	"github.com/goccy/go-json"
)

type apiCall struct {
	Method string
	URL    string
	Body   interface{}
}

// fakeAPI answers from canned responses keyed by method and url
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]interface{}
	errs      map[string]error
	calls     []apiCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]interface{}{}, errs: map[string]error{}}
}

func (f *fakeAPI) on(method, url string, resp interface{}) *fakeAPI {
	f.responses[method+" "+url] = resp
	return f
}

func (f *fakeAPI) fail(method, url string, err error) *fakeAPI {
	f.errs[method+" "+url] = err
	return f
}

func (f *fakeAPI) called(method, url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.URL == url {
			n++
		}
	}
	return n
}

func (f *fakeAPI) methodCalls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeAPI) do(method, url string, body, out interface{}) error {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, URL: url, Body: body})
	err := f.errs[method+" "+url]
	resp, ok := f.responses[method+" "+url]
	f.mu.Unlock()

	if err != nil {
		return err
	}
	if !ok || out == nil {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (f *fakeAPI) Get(ctx context.Context, url string, out interface{}) error {
	return f.do(http.MethodGet, url, nil, out)
}

func (f *fakeAPI) Post(ctx context.Context, url string, body, out interface{}, headers ...apiclient.Header) error {
	return f.do(http.MethodPost, url, body, out)
}

func (f *fakeAPI) Patch(ctx context.Context, url string, body, out interface{}) error {
	return f.do(http.MethodPatch, url, body, out)
}

func (f *fakeAPI) Delete(ctx context.Context, url string, out interface{}) error {
	return f.do(http.MethodDelete, url, nil, out)
}

func testEndpoints() config.Endpoints {
	return config.SingleHost("http://backend")
}

func serverErr() error {
	return &errors.RemoteError{Status: http.StatusInternalServerError, Message: "boom"}
}
