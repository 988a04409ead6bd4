package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithss/website/internal/config"
	"github.com/faithss/website/internal/db"
	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/fixtures"
	"github.com/faithss/website/internal/forms"
	"github.com/faithss/website/internal/results"
	svc "github.com/faithss/website/internal/services"
)

type recorder struct {
	mu   sync.Mutex
	sent []string
}

func (r *recorder) Notify(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, text)
	return nil
}

func newTestRouter(t *testing.T, delay time.Duration) (http.Handler, *recorder) {
	h, n, _ := newTestSite(t, delay)
	return h, n
}

func newTestSite(t *testing.T, delay time.Duration) (http.Handler, *recorder, *results.Desk) {
	t.Helper()
	set, err := fixtures.Load()
	require.NoError(t, err)
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db"), set))

	cfg := config.Default()
	cfg.LookupDelay = delay
	n := &recorder{}
	desk := results.NewDesk(svc.ResultSource, directory.DefaultPolicy(), delay)
	return Router(Deps{Config: cfg, Desk: desk, Notifier: n}), n, desk
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(h http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthz(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := get(r, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPages(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	for _, p := range []string{"/", "/about", "/AboutFaith", "/admission", "/staff", "/results", "/login", "/register", "/contact", "/ContactFaith"} {
		rec := get(r, p)
		assert.Equal(t, http.StatusOK, rec.Code, p)
		assert.Contains(t, rec.Body.String(), "Faith Secondary School", p)
	}
}

func TestStatic(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := get(r, "/static/reveal.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IntersectionObserver")
}

func TestStaffFilter(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	body := get(r, "/staff?dept=Arts").Body.String()
	assert.Contains(t, body, "Eze")
	assert.Contains(t, body, "Okafor")
	assert.NotContains(t, body, "Ogunleye")

	body = get(r, "/staff?q=zzz").Body.String()
	assert.Contains(t, body, "No staff match your search.")

	body = get(r, "/staff?sort=waec").Body.String()
	assert.Less(t, strings.Index(body, "Adeyemi"), strings.Index(body, "Ogunleye"))
	assert.Contains(t, body, `data-reveal="up"`)
}

func TestStaffBio(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	body := get(r, "/staff?dept=Commercial&bio=0").Body.String()
	assert.Contains(t, body, `role="dialog"`)
	assert.Contains(t, body, "Musa")

	body = get(r, "/staff?bio=99").Body.String()
	assert.NotContains(t, body, `role="dialog"`)
}

func TestAdmissionsAccordion(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	body := get(r, "/admission").Body.String()
	assert.Equal(t, 0, strings.Count(body, "faq-item open"))

	body = get(r, "/admission?faq=1").Body.String()
	assert.Equal(t, 1, strings.Count(body, "faq-item open"))
	assert.Contains(t, body, "?faq=-1#faq", "open item links to closing itself")
}

func TestResultsLookup(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	assert.Contains(t, get(r, "/results").Body.String(), directory.PromptText)

	rec := post(r, "/results", url.Values{"admission": {"fss001"}, "pin": {"PIN12345"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Aisha Balogun")
	assert.Contains(t, body, "Second Term", "latest term wins")
	assert.Contains(t, body, `value="fss001"`, "entered id is kept")

	cases := []struct {
		id, pin string
		want    error
	}{
		{"", "PIN12345", directory.ErrMissingID},
		{"FSS001", "", directory.ErrMissingPin},
		{"12345", "PIN12345", directory.ErrBadAdmissionID},
		{"FSS001", "WRONG", directory.ErrNotFound},
	}
	for _, tc := range cases {
		rec := post(r, "/results", url.Values{"admission": {tc.id}, "pin": {tc.pin}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), htmlText(directory.Notice(tc.want)))
	}
}

func TestResultsLookupKeepsRawInput(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	rec := post(r, "/results", url.Values{"admission": {" FSS001 "}, "pin": {"PIN12345"}})
	assert.Contains(t, rec.Body.String(), htmlText(directory.Notice(directory.ErrBadAdmissionID)))

	rec = post(r, "/results", url.Values{"admission": {"FSS001"}, "pin": {" PIN12345 "}})
	body := rec.Body.String()
	assert.Contains(t, body, htmlText(directory.Notice(directory.ErrNotFound)))
	assert.NotContains(t, body, "Aisha Balogun")

	rec = post(r, "/results", url.Values{"admission": {"   "}, "pin": {"PIN12345"}})
	assert.Contains(t, rec.Body.String(), htmlText(directory.Notice(directory.ErrMissingID)))
}

func TestResultsBusy(t *testing.T) {
	r, _, desk := newTestSite(t, 300*time.Millisecond)

	cookies := get(r, "/results").Result().Cookies()
	require.Len(t, cookies, 1)
	visitor := cookies[0].Value

	form := url.Values{"admission": {"FSS002"}, "pin": {"PIN67890"}}
	done := make(chan *httptest.ResponseRecorder, 1)
	go func() { done <- post(r, "/results", form, cookies...) }()
	require.Eventually(t, func() bool { return desk.Busy(visitor) }, time.Second, 5*time.Millisecond)

	busy := post(r, "/results", form, cookies...)
	assert.Equal(t, http.StatusTooManyRequests, busy.Code)
	assert.Contains(t, busy.Body.String(), results.BusyText)
	assert.Contains(t, busy.Body.String(), "disabled")

	rec := <-done
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FSS002")
	assert.False(t, desk.Busy(visitor))

	// another visitor is not blocked by the first
	other := post(r, "/results", url.Values{"admission": {"FSS003"}, "pin": {"PIN54321"}})
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestResultsPrint(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := post(r, "/results/print", url.Values{"admission": {"FSS003"}, "pin": {"PIN54321"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data:image/png;base64,")

	rec = post(r, "/results/print", url.Values{"admission": {"FSS003"}, "pin": {"nope"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestFormBlocked(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := post(r, "/login", url.Values{"firstName": {"A"}, "email": {"bad"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, forms.FailureText)
	assert.Contains(t, body, "First name must be at least 2 characters.")
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, `value="bad"`, "values are kept")
}

func TestFormSuccess(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := post(r, "/register", url.Values{
		"firstName":     {"Ada"},
		"lastName":      {"Obi"},
		"email":         {"ada@example.com"},
		"phone":         {"08012345678"},
		"dateOfBirth":   {"2010-05-04"},
		"stateOfOrigin": {"Lagos"},
		"password":      {"secret1"},
		"confirm":       {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Equal(t, "/register?ok=register", loc)

	body := get(r, loc).Body.String()
	assert.Contains(t, body, "Registration Successful! You can now log in.")
	assert.NotContains(t, body, "ada@example.com", "form is reset")
}

func TestFormMaskToggle(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	rec := post(r, "/login", url.Values{"password": {"secret1"}, "_toggle": {"password"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="_shown" value="password"`)
	assert.Contains(t, body, `name="password" type="text"`)
	assert.NotContains(t, body, forms.FailureText, "toggling does not submit")

	rec = post(r, "/login", url.Values{"password": {"secret1"}, "_shown": {"password"}, "_toggle": {"password"}})
	assert.Contains(t, rec.Body.String(), `name="password" type="password"`)
}

func TestFormToggleKeepsTouched(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	form := url.Values{"firstName": {"A"}, "email": {"bad"}}

	rec := post(r, "/login", form)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="_touched" value="firstName"`)
	assert.Contains(t, body, `name="_touched" value="confirm"`)

	// the page posts back every hidden _touched input along with the toggle
	after := url.Values{"firstName": {"A"}, "email": {"bad"}, "_toggle": {"password"}}
	for _, f := range []string{"firstName", "lastName", "email", "phone", "password", "confirm"} {
		after.Add("_touched", f)
	}
	rec = post(r, "/login", after)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "First name must be at least 2 characters.")
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, `class="field field-error" data-field="firstName"`)
	assert.Contains(t, body, `name="password" type="text"`)
	assert.NotContains(t, body, forms.FailureText, "toggling does not submit")

	// without a touched set, nothing is flagged
	rec = post(r, "/login", url.Values{"firstName": {"A"}, "_toggle": {"password"}})
	assert.NotContains(t, rec.Body.String(), "field-error")
}

func TestFormsScriptLoaded(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	assert.Contains(t, get(r, "/login").Body.String(), `src="/static/forms.js"`)

	rec := get(r, "/static/forms.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/check")
	assert.Contains(t, rec.Body.String(), "_touched")
}

func TestContactForwarded(t *testing.T) {
	r, n := newTestRouter(t, 0)
	rec := post(r, "/ContactFaith", url.Values{
		"name":    {"Bola"},
		"email":   {"bola@example.com"},
		"message": {"When does the next term begin?"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ContactFaith?ok=contact", rec.Header().Get("Location"))
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "(no subject)")
}

func TestCheckField(t *testing.T) {
	r, _ := newTestRouter(t, 0)

	rec := post(r, "/forms/login/check", url.Values{"_field": {"confirm"}, "password": {"secret1"}, "confirm": {"secret2"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"field":   "confirm",
		"state":   "error",
		"message": "Passwords do not match.",
	}, got)

	rec = post(r, "/forms/contact/check", url.Values{"_field": {"subject"}})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "neutral", got["state"], "optional fields stay neutral")

	assert.Equal(t, http.StatusNotFound, post(r, "/forms/nope/check", url.Values{}).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, "/forms/login/check", url.Values{"_field": {"zip"}}).Code)
}

// htmlText mirrors html/template escaping for the characters used in notices.
func htmlText(s string) string {
	return strings.NewReplacer(`'`, "&#39;", `"`, "&#34;").Replace(s)
}
