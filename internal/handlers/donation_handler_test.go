package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/svitlo-fund/donation-service/internal/handlers"
	"github.com/svitlo-fund/donation-service/internal/liqpay"
	"github.com/svitlo-fund/donation-service/internal/service"
)

func newDonationRouter(publicKey, privateKey string, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	builder := liqpay.NewBuilder(publicKey, privateKey, true, "https://svitlo.example")
	donationService := service.NewDonationService(builder, nil, production)
	h := handlers.NewDonationHandler(donationService)

	router := gin.New()
	router.POST("/payments/intent", h.CreateIntent)
	return router
}

func TestCreateIntent_SignedCheckout(t *testing.T) {
	router := newDonationRouter("pub-key", "priv-key", false)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":200,"isPublic":false,"locale":"uk"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool   `json:"ok"`
		ActionURL string `json:"actionUrl"`
		Data      string `json:"data"`
		Signature string `json:"signature"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, liqpay.CheckoutURL, resp.ActionURL)
	assert.NotEmpty(t, resp.Data)
	assert.Equal(t, liqpay.Sign(resp.Data, "priv-key"), resp.Signature)
}

func TestCreateIntent_PreviewWithoutKeys(t *testing.T) {
	router := newDonationRouter("", "", false)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":200,"isPublic":true,"name":"Олена","locale":"en"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK             bool `json:"ok"`
		PayloadPreview *struct {
			Data      string `json:"data"`
			Signature string `json:"signature"`
			Preview   bool   `json:"preview"`
		} `json:"payloadPreview"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotNil(t, resp.PayloadPreview)
	assert.True(t, resp.PayloadPreview.Preview)
	assert.Empty(t, resp.PayloadPreview.Signature)
	assert.NotEmpty(t, resp.PayloadPreview.Data)
}

func TestCreateIntent_ProductionWithoutKeysIs500(t *testing.T) {
	router := newDonationRouter("", "", true)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":200,"isPublic":false,"locale":"uk"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "LIQPAY_NOT_CONFIGURED")
}

func TestCreateIntent_AmountBelowMinimumIs400(t *testing.T) {
	router := newDonationRouter("pub-key", "priv-key", false)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":9.99,"isPublic":false,"locale":"uk"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount")
}

func TestCreateIntent_PublicWithoutNameIs400(t *testing.T) {
	router := newDonationRouter("pub-key", "priv-key", false)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":100,"isPublic":true,"name":"   ","locale":"uk"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestCreateIntent_UnsupportedLocaleIs400(t *testing.T) {
	router := newDonationRouter("pub-key", "priv-key", false)

	w := doJSON(router, http.MethodPost, "/payments/intent",
		`{"amount":100,"isPublic":false,"locale":"pl"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "locale")
}

func TestCreateIntent_MalformedBody(t *testing.T) {
	router := newDonationRouter("pub-key", "priv-key", false)

	w := doJSON(router, http.MethodPost, "/payments/intent", `{"amount":"two hundred"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
