package web_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/testutil"
	"github.com/mcoot/boggle-go/internal/web"
)

// siteURL is where the browser believes the site lives; cookies are scoped to it
var siteURL = &url.URL{Scheme: "http", Host: "boggle.test", Path: "/"}

// webTestServer drives the web router in-process, carrying cookies between
// requests the way a browser would
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	jar     http.CookieJar
}

// newWebTestServer serves a test app with the test dictionary loaded
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()
	app := factory.NewTestApp()
	app.LoadTestDictionary()
	return newWebTestServerFor(t, app)
}

func newWebTestServerFor(t *testing.T, app *factory.TestApp) *webTestServer {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &webTestServer{
		t: t,
		handler: web.NewRouter(web.RouterConfig{
			Logger:         testutil.NopLogger(),
			GameController: app.GameController,
		}),
		app: app,
		jar: jar,
	}
}

func (ts *webTestServer) do(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range ts.jar.Cookies(siteURL) {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	ts.jar.SetCookies(siteURL, rr.Result().Cookies())
	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.do(http.MethodGet, path, nil, false)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.do(http.MethodPost, path, form, false)
}

func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.do(http.MethodPost, path, form, true)
}

// createGame starts a game whose id will be id and returns its page path
func (ts *webTestServer) createGame(id string) string {
	ts.t.Helper()
	ts.app.MockRandom.QueueString(id)

	rr := ts.post("/game", nil)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/game/"+id, rr.Header().Get("Location"))
	return rr.Header().Get("Location")
}

func cubeForm(id int) url.Values {
	return url.Values{"cube_id": {strconv.Itoa(id)}}
}

// selectCube clicks a cube without htmx, as a plain form post
func (ts *webTestServer) selectCube(gamePath string, cubeID int) *httptest.ResponseRecorder {
	return ts.post(gamePath+"/select", cubeForm(cubeID))
}

// selectCubesHTMX clicks each cube in turn and returns the last response
func (ts *webTestServer) selectCubesHTMX(gamePath string, cubeIDs ...int) *httptest.ResponseRecorder {
	ts.t.Helper()
	var rr *httptest.ResponseRecorder
	for _, id := range cubeIDs {
		rr = ts.postHTMX(gamePath+"/select", cubeForm(id))
		require.Equal(ts.t, http.StatusOK, rr.Code, "select cube %d", id)
	}
	return rr
}

// followRedirect honours either a Location or an HX-Redirect header
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("HX-Redirect")
	if location == "" {
		location = rr.Header().Get("Location")
	}
	require.NotEmpty(ts.t, location, "response is not a redirect")
	return ts.get(location)
}

func parseHTML(rr *httptest.ResponseRecorder) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		panic(err)
	}
	return doc
}

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.NotZero(t, doc.Find(selector).Length(), "no element matches %q", selector)
}

func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.Zero(t, doc.Find(selector).Length(), "unexpected element matching %q", selector)
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	sel := doc.Find(selector)
	if !assert.NotZero(t, sel.Length(), "no element matches %q", selector) {
		return
	}
	assert.Contains(t, sel.Text(), text, "text of %q", selector)
}

// listItems returns the text of each li under the selector
func listItems(doc *goquery.Document, selector string) []string {
	return doc.Find(selector + " li").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}
