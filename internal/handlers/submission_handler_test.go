package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/svitlo-fund/donation-service/internal/handlers"
	"github.com/svitlo-fund/donation-service/internal/service"
	"github.com/svitlo-fund/donation-service/internal/store"
)

func newSubmissionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	submissionService := service.NewSubmissionService(store.New(), nil)
	h := handlers.NewSubmissionHandler(submissionService)

	router := gin.New()
	router.GET("/announcements", h.ListAnnouncements)
	router.POST("/announcements", h.CreateAnnouncement)
	router.GET("/reviews", h.ListReviews)
	router.POST("/reviews", h.CreateReview)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReview_EndToEnd(t *testing.T) {
	router := newSubmissionRouter()
	before := time.Now().UTC()

	w := doJSON(router, http.MethodPost, "/reviews",
		`{"authorName":"Олена","role":"donor","text":"Дуже вдячна за допомогу!!"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OK   bool `json:"ok"`
		Item struct {
			ID        string `json:"id"`
			Status    string `json:"status"`
			CreatedAt string `json:"createdAt"`
		} `json:"item"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.Item.ID)
	assert.Equal(t, "pending", resp.Item.Status)

	createdAt, err := time.Parse(time.RFC3339Nano, resp.Item.CreatedAt)
	assert.NoError(t, err)
	assert.False(t, createdAt.Before(before.Truncate(time.Second)))
}

func TestCreateReview_ValidationError(t *testing.T) {
	router := newSubmissionRouter()

	w := doJSON(router, http.MethodPost, "/reviews",
		`{"authorName":"О","role":"donor","text":"закоротко"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "authorName")
	assert.Contains(t, resp.Error, "text")
}

func TestCreateReview_MalformedBody(t *testing.T) {
	router := newSubmissionRouter()

	w := doJSON(router, http.MethodPost, "/reviews", `{"authorName":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateAnnouncement_ThenListNewestFirst(t *testing.T) {
	router := newSubmissionRouter()

	first := doJSON(router, http.MethodPost, "/announcements",
		`{"title":"Перше оголошення","body":"Потрібна допомога з перевезенням меблів до Львова","contact":"+380501112233","category":"transport"}`)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(router, http.MethodPost, "/announcements",
		`{"title":"Друге оголошення","body":"Шукаємо волонтерів для роздачі гуманітарної допомоги","contact":"+380671234567","category":"volunteers"}`)
	assert.Equal(t, http.StatusCreated, second.Code)

	w := doJSON(router, http.MethodGet, "/announcements", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Title    string `json:"title"`
			Status   string `json:"status"`
			Verified bool   `json:"verified"`
		} `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "Друге оголошення", resp.Items[0].Title)
	assert.Equal(t, "pending", resp.Items[0].Status)
	assert.False(t, resp.Items[0].Verified)
}

func TestCreateAnnouncement_TitleBoundaries(t *testing.T) {
	router := newSubmissionRouter()

	tooShort := doJSON(router, http.MethodPost, "/announcements",
		`{"title":"1234567","body":"Потрібна допомога з перевезенням меблів до Львова","contact":"+380501112233","category":"transport"}`)
	assert.Equal(t, http.StatusBadRequest, tooShort.Code)

	atMinimum := doJSON(router, http.MethodPost, "/announcements",
		`{"title":"12345678","body":"Потрібна допомога з перевезенням меблів до Львова","contact":"+380501112233","category":"transport"}`)
	assert.Equal(t, http.StatusCreated, atMinimum.Code)
}

func TestListReviews_EmptyStore(t *testing.T) {
	router := newSubmissionRouter()

	w := doJSON(router, http.MethodGet, "/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}
