package config

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/testutil"
	"Food-Sharing-Platform/internal/utils"
	"Food-Sharing-Platform/internal/utils/imagesearch"
	"Food-Sharing-Platform/internal/utils/mailing"
	"Food-Sharing-Platform/internal/utils/storage"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type client struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	db := testutil.NewTestDB(t)
	cfg := utils.Config{
		SessionSecret:     "test-secret",
		SessionCookieName: "yemek_session",
		ImagesDir:         t.TempDir(),
		AppURL:            "http://localhost:3000",
	}
	s3, err := storage.NewAwsS3(cfg)
	require.NoError(t, err)

	app := fiber.New()
	Register(app, db, cfg, Dependencies{
		Searcher: imagesearch.NewUnsplashClient("", ""),
		S3:       s3,
		Mailer:   mailing.NewMailer(mailing.LoadMailConfig(cfg)),
	})
	return &client{t: t, app: app}
}

func (c *client) do(method, path string, form url.Values, wantJSON bool) *http.Response {
	c.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	}
	if wantJSON {
		req.Header.Set("Accept", fiber.MIMEApplicationJSON)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "yemek_session" {
			c.cookie = cookie
		}
	}
	return resp
}

func (c *client) json(method, path string, form url.Values) (int, envelope) {
	c.t.Helper()
	resp := c.do(method, path, form, true)
	var env envelope
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func text(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAuthFlow_Redirects(t *testing.T) {
	c := newClient(t)

	resp := c.do("POST", "/register", url.Values{"email": {"giver@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/yemek_verenler", resp.Header.Get("Location"))
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)

	resp = c.do("POST", "/register", url.Values{"email": {"giver@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	assert.Equal(t, "/Ana_Sayfa.html?error=user_exists", resp.Header.Get("Location"))

	resp = c.do("POST", "/register", url.Values{"email": {"x@x.com"}}, false)
	assert.Equal(t, "/Ana_Sayfa.html?error=missing_info", resp.Header.Get("Location"))

	resp = c.do("POST", "/login", url.Values{"email": {"nobody@x.com"}, "password": {"pw"}}, false)
	assert.Equal(t, "/Ana_Sayfa.html?error=user_not_found", resp.Header.Get("Location"))

	resp = c.do("POST", "/login", url.Values{"email": {"giver@x.com"}, "password": {"bad"}}, false)
	assert.Equal(t, "/Ana_Sayfa.html?error=wrong_password", resp.Header.Get("Location"))

	resp = c.do("POST", "/login", url.Values{"email": {"giver@x.com"}}, false)
	assert.Equal(t, "/Ana_Sayfa.html?error=missing_info", resp.Header.Get("Location"))

	c.do("POST", "/register", url.Values{"email": {"taker@x.com"}, "password": {"pw"}, "role": {domain.RoleTaker}}, false)
	resp = c.do("POST", "/login", url.Values{"email": {"taker@x.com"}, "password": {"pw"}}, false)
	assert.Equal(t, "/yemek_alanlar.html", resp.Header.Get("Location"))

	code, env := c.json("GET", "/api/me", nil)
	assert.Equal(t, fiber.StatusOK, code)
	var me domain.SessionUser
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "taker@x.com", me.Email)
	assert.Equal(t, domain.RoleTaker, me.Role)

	resp = c.do("GET", "/logout", nil, false)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", resp.Header.Get("Cache-Control"))

	code, _ = c.json("GET", "/api/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	resp = c.do("POST", "/logout", nil, false)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestFoodLifecycle(t *testing.T) {
	c := newClient(t)
	c.do("POST", "/register", url.Values{"email": {"a@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)

	resp := c.do("POST", "/add-food", url.Values{"name": {"Tavuklu Pilav"}, "miktar": {"6 porsiyon"}, "zaman": {"19:00"}}, false)
	assert.Equal(t, "Eksik bilgi", text(t, resp))

	resp = c.do("POST", "/add-food", url.Values{
		"name":     {"Tavuklu Pilav"},
		"miktar":   {"6 porsiyon"},
		"zaman":    {"19:00"},
		"aciklama": {"Sıcak"},
		"lokasyon": {"Merkez"},
	}, false)
	assert.Equal(t, "/yemek_verenler", resp.Header.Get("Location"))

	code, env := c.json("GET", "/api/foods?lokasyon=Merk", nil)
	require.Equal(t, fiber.StatusOK, code)
	var foods []domain.FoodResponse
	require.NoError(t, json.Unmarshal(env.Data, &foods))
	require.Len(t, foods, 1)
	assert.Equal(t, domain.FoodStatusReady, foods[0].Status)
	assert.Equal(t, domain.DefaultFoodImage, foods[0].Image)
	id := foods[0].ID

	for i := 0; i < 5; i++ {
		resp = c.do("POST", "/take-food", url.Values{"id": {id}}, false)
		assert.Equal(t, "/yemek_listesi", resp.Header.Get("Location"))
	}

	code, env = c.json("POST", "/take-food", url.Values{"id": {id}})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, domain.MessageSuccessFoodTaken, env.Message)
	var taken domain.FulfillPortionResponse
	require.NoError(t, json.Unmarshal(env.Data, &taken))
	assert.Equal(t, domain.FoodStatusTaken, taken.Status)
	assert.Equal(t, "1 porsiyon", taken.Quantity)

	resp = c.do("POST", "/take-food", url.Values{"id": {"00000000-0000-0000-0000-000000000001"}}, false)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Food not found", text(t, resp))

	code, _ = c.json("POST", "/delete-food", url.Values{"index": {id}})
	assert.Equal(t, fiber.StatusOK, code)
	code, env = c.json("GET", "/api/foods", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestRequestsAndNotifications(t *testing.T) {
	c := newClient(t)
	c.do("POST", "/register", url.Values{"email": {"owner@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	_, env := c.json("POST", "/add-food", url.Values{
		"name": {"Pide"}, "miktar": {"2 porsiyon"}, "zaman": {"18:00"}, "aciklama": {"taze"}, "lokasyon": {"Merkez"},
	})
	var created domain.FoodResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	ownerCookie := c.cookie

	c.do("POST", "/register", url.Values{"email": {"taker@x.com"}, "password": {"pw"}, "role": {domain.RoleTaker}}, false)

	code, env := c.json("POST", "/request-food", url.Values{"id": {created.ID}})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, domain.MessageSuccessRequestFood, env.Message)

	code, _ = c.json("POST", "/api/food-requests", url.Values{"food_id": {created.ID}})
	require.Equal(t, fiber.StatusCreated, code)

	code, env = c.json("GET", "/api/notifications", nil)
	require.Equal(t, fiber.StatusOK, code)
	var mine []domain.NotificationResponse
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Contains(t, mine[0].Message, "Talep ettiğiniz yemek: Pide")

	code, _ = c.json("PUT", "/api/notifications/"+mine[0].ID+"/read", nil)
	assert.Equal(t, fiber.StatusOK, code)
	_, env = c.json("GET", "/api/notifications", nil)
	assert.JSONEq(t, "[]", string(env.Data))

	code, env = c.json("GET", "/api/food-requests?type=sent", nil)
	require.Equal(t, fiber.StatusOK, code)
	var sent []domain.FoodRequestResponse
	require.NoError(t, json.Unmarshal(env.Data, &sent))
	require.Len(t, sent, 1)
	assert.Equal(t, "Pide", sent[0].FoodName)

	c.cookie = ownerCookie
	_, env = c.json("GET", "/api/notifications", nil)
	var ownerNotes []domain.NotificationResponse
	require.NoError(t, json.Unmarshal(env.Data, &ownerNotes))
	require.Len(t, ownerNotes, 1)
	assert.Equal(t, `"Pide" yemeği için yeni bir talep aldınız.`, ownerNotes[0].Message)

	code, _ = c.json("PUT", "/api/notifications/read-all", nil)
	assert.Equal(t, fiber.StatusOK, code)
	_, env = c.json("GET", "/api/notifications", nil)
	assert.JSONEq(t, "[]", string(env.Data))

	code, env = c.json("POST", "/api/notifications", url.Values{"user_email": {"owner@x.com"}})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, env.Status)
}

func TestLocationsRequireSession(t *testing.T) {
	c := newClient(t)

	resp := c.do("GET", "/api/locations", nil, false)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, text(t, resp), "/Ana_Sayfa.html")

	c.do("POST", "/register", url.Values{"email": {"a@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	code, env := c.json("POST", "/api/locations", url.Values{"baslik": {"Ev"}, "il": {"Düzce"}, "ilce": {"Merkez"}})
	require.Equal(t, fiber.StatusCreated, code)
	var loc domain.LocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &loc))

	code, _ = c.json("POST", "/api/locations", url.Values{"il": {"Düzce"}})
	assert.Equal(t, fiber.StatusBadRequest, code)

	c.do("POST", "/register", url.Values{"email": {"b@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	code, _ = c.json("DELETE", "/api/locations/"+loc.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestFeedbackForms(t *testing.T) {
	c := newClient(t)

	resp := c.do("POST", "/send-message", url.Values{"name": {"Ali"}, "email": {"ali@x.com"}, "subject": {"Merhaba"}, "message": {"Selam"}}, false)
	assert.Equal(t, "Mesajınız başarıyla gönderildi!", text(t, resp))

	resp = c.do("POST", "/send-message", url.Values{"name": {"Ali"}}, false)
	assert.Equal(t, "Eksik bilgi", text(t, resp))

	c.do("POST", "/register", url.Values{"email": {"a@x.com"}, "password": {"pw"}, "role": {domain.RoleGiver}}, false)
	_, env := c.json("POST", "/add-food", url.Values{
		"name": {"Pide"}, "miktar": {"2 porsiyon"}, "zaman": {"18:00"}, "aciklama": {"taze"}, "lokasyon": {"Merkez"},
	})
	var created domain.FoodResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, _ := c.json("POST", "/add-review", url.Values{"food_id": {created.ID}, "rating": {"6"}})
	assert.Equal(t, fiber.StatusBadRequest, code)

	resp = c.do("POST", "/add-review", url.Values{"food_id": {created.ID}, "rating": {"5"}}, false)
	assert.Equal(t, "Yorumunuz başarıyla eklendi!", text(t, resp))

	code, env = c.json("GET", "/api/reviews", nil)
	require.Equal(t, fiber.StatusOK, code)
	var reviews []domain.ReviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "", reviews[0].Comment)

	code, env = c.json("GET", "/api/messages", nil)
	require.Equal(t, fiber.StatusOK, code)
	var messages []domain.MessageResponse
	require.NoError(t, json.Unmarshal(env.Data, &messages))
	assert.Len(t, messages, 1)
}
