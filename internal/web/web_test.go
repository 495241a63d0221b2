package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/store/memory"
	"github.com/albapepper/moneyball/internal/token"
	"github.com/albapepper/moneyball/internal/user"
	"github.com/albapepper/moneyball/internal/web"
)

const standingsFixture = `{"records":[{
	"league":{"id":103,"name":"American League"},
	"division":{"id":201,"name":"American League East"},
	"teamRecords":[{"team":{"id":147,"name":"New York Yankees"},"wins":50,"losses":30,"winningPercentage":".625","gamesBack":"-"}]
}]}`

func newFrontend(t *testing.T) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/standings":
			w.Write([]byte(standingsFixture))
		case strings.HasPrefix(r.URL.Path, "/teams"):
			w.Write([]byte(`{"teams":[{"id":147,"name":"New York Yankees"}]}`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(upstream.Close)

	users := user.NewService(memory.New(), user.NewBcryptHasher(4))
	issuer := token.NewIssuer("test-secret")
	return web.Routes(users, issuer, mlb.NewClient(upstream.URL, 6000, nil))
}

func postForm(h http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersStandings(t *testing.T) {
	h := newFrontend(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "New York Yankees")
	assert.Contains(t, rec.Body.String(), ".625")
}

func TestProfileRequiresLogin(t *testing.T) {
	h := newFrontend(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/web/login", rec.Header().Get("Location"))
}

func TestSignupStartsSession(t *testing.T) {
	h := newFrontend(t)

	rec := postForm(h, "/signup", url.Values{
		"email":     {"a@x.com"},
		"password":  {"hunter22"},
		"firstName": {"Ada"},
	}, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/web/profile", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	session := cookies[0]
	assert.Equal(t, "moneyball_token", session.Name)
	assert.True(t, session.HttpOnly)

	// The cookie authenticates the profile page.
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(session)
	page := httptest.NewRecorder()
	h.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "a@x.com")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := newFrontend(t)

	postForm(h, "/signup", url.Values{
		"email": {"a@x.com"}, "password": {"hunter22"}, "firstName": {"Ada"},
	}, nil)

	rec := postForm(h, "/login", url.Values{
		"email": {"a@x.com"}, "password": {"wrong"},
	}, nil)
	// Re-rendered form, no session cookie.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestFollowTeamFromWeb(t *testing.T) {
	h := newFrontend(t)

	rec := postForm(h, "/signup", url.Values{
		"email": {"a@x.com"}, "password": {"hunter22"}, "firstName": {"Ada"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	session := rec.Result().Cookies()

	rec = postForm(h, "/favorites/teams/147", nil, session)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// Following twice from the web is tolerated.
	rec = postForm(h, "/favorites/teams/147", nil, session)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	for _, c := range session {
		req.AddCookie(c)
	}
	page := httptest.NewRecorder()
	h.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "New York Yankees")
}
