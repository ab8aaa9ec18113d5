package demo

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

const todoText = "delectus aut autem"

const commentsJSON = `[
  {"postId": 1, "id": 1, "name": "first comment", "email": "a@example.com", "body": "laudantium enim"},
  {"postId": 1, "id": 2, "name": "second comment", "email": "b@example.com", "body": "est natus enim"}
]`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// apiServer serves the demo's upstream endpoints. todoGate delays the
// todo response until closed; pass a closed channel for no delay.
func apiServer(t *testing.T, todoGate <-chan struct{}, commentsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/todos/1", func(w http.ResponseWriter, r *http.Request) {
		<-todoGate
		io.WriteString(w, todoText)
	})
	mux.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		if commentsStatus != http.StatusOK {
			w.WriteHeader(commentsStatus)
			return
		}
		io.WriteString(w, commentsJSON)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type demoFixture struct {
	loop    *sched.Loop
	cache   *module.Cache
	nav     *router.Navigator
	updates chan string
}

func newDemoFixture(t *testing.T, apiURL string) *demoFixture {
	t.Helper()
	loop := sched.NewLoop()
	loop.Start()
	t.Cleanup(loop.Stop)

	cache := module.NewCache(loop, discardLogger())
	tree := router.NewTree()
	Register(tree, cache, Options{
		API: NewClient(apiURL, 2*time.Second, discardLogger()),
	})

	nav := router.NewNavigator(loop, tree, cache, discardLogger())
	nav.SetViewFallback(vdom.P("Loading module..."))

	updates := make(chan string, 32)
	nav.OnUpdate(func(html string) { updates <- html })

	return &demoFixture{loop: loop, cache: cache, nav: nav, updates: updates}
}

func (f *demoFixture) navigate(t *testing.T, path string) *router.Result {
	t.Helper()
	var res *router.Result
	var err error
	f.loop.Do(func() { res, err = f.nav.Navigate(path) })
	if err != nil {
		t.Fatalf("Navigate(%q) error = %v", path, err)
	}
	return res
}

func (f *demoFixture) waitHTML(t *testing.T, subs ...string) string {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case html := <-f.updates:
			ok := true
			for _, s := range subs {
				if !strings.Contains(html, s) {
					ok = false
					break
				}
			}
			if ok {
				return html
			}
		case <-deadline:
			t.Fatalf("timed out waiting for update containing %q", subs)
		}
	}
}

func closedGate() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func TestViewARendersEagerly(t *testing.T) {
	srv := apiServer(t, closedGate(), http.StatusOK)
	f := newDemoFixture(t, srv.URL)

	res := f.navigate(t, "/")
	for _, want := range []string{"View A", `href="/b"`, `href="/c"`} {
		if !strings.Contains(res.HTML, want) {
			t.Errorf("HTML missing %q:\n%s", want, res.HTML)
		}
	}
	if stats := f.cache.Stats(); stats.Loads != 0 {
		t.Errorf("Loads = %d, want 0 for the eager landing page", stats.Loads)
	}
}

func TestViewBShowsLoadingThenTodo(t *testing.T) {
	todoGate := make(chan struct{})
	srv := apiServer(t, todoGate, http.StatusOK)
	f := newDemoFixture(t, srv.URL)

	res := f.navigate(t, "/b")
	if !strings.Contains(res.HTML, "Loading module...") {
		t.Errorf("initial HTML should show the module fallback:\n%s", res.HTML)
	}

	// Modules load while the todo fetch is still blocked: View B and
	// the child's own "Loading..." fallback appear first.
	f.waitHTML(t, "View B", "Loading...")

	close(todoGate)
	html := f.waitHTML(t, todoText)
	if !strings.Contains(html, "View B") {
		t.Errorf("todo text should render inside View B:\n%s", html)
	}

	if stats := f.cache.Stats(); stats.Loads != 2 {
		t.Errorf("Loads = %d, want 2 (view_b, view_b_child)", stats.Loads)
	}
}

func TestViewCListsComments(t *testing.T) {
	srv := apiServer(t, closedGate(), http.StatusOK)
	f := newDemoFixture(t, srv.URL)

	f.navigate(t, "/c")
	html := f.waitHTML(t, "first comment", "second comment")
	for _, want := range []string{"Comments", "a@example.com", "laudantium enim"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}

	f.loop.Do(func() {
		if got := f.cache.Status(ModuleCommentsDec); got != module.Loaded {
			t.Errorf("deserializer status = %v, want Loaded", got)
		}
	})
}

func TestViewCFetchFailureIsScoped(t *testing.T) {
	srv := apiServer(t, closedGate(), http.StatusInternalServerError)
	f := newDemoFixture(t, srv.URL)

	f.navigate(t, "/c")
	html := f.waitHTML(t, "suspense-error")

	// The failure stays inside the comments region; the view and the
	// layout around it still render.
	for _, want := range []string{"Comments", `href="/b"`} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}
}

func TestReturningToLoadedViewSkipsReload(t *testing.T) {
	srv := apiServer(t, closedGate(), http.StatusOK)
	f := newDemoFixture(t, srv.URL)

	f.navigate(t, "/b")
	f.waitHTML(t, todoText)
	loadsAfterB := f.cache.Stats().Loads

	f.navigate(t, "/")
	res := f.navigate(t, "/b")

	// The modules are cached; only the todo fetch runs again.
	if stats := f.cache.Stats(); stats.Loads != loadsAfterB {
		t.Errorf("Loads = %d, want %d (modules cached)", stats.Loads, loadsAfterB)
	}
	if !strings.Contains(res.HTML, "View B") {
		t.Errorf("cached module should render synchronously:\n%s", res.HTML)
	}
	f.waitHTML(t, todoText)
}
