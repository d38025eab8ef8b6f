// Package liqpay builds checkout payloads for the LiqPay hosted payment
// page. It only prepares the form the donor's browser submits to the
// gateway; it never talks to LiqPay itself and never sees settlement.
package liqpay

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/svitlo-fund/donation-service/internal/models"
)

const (
	CheckoutURL = "https://www.liqpay.ua/api/3/checkout"

	APIVersion = 3
	Currency   = "UAH"

	MinAmount     = 10
	MaxNameLength = 60
)

var (
	ErrInvalidAmount = errors.New("amount must be a finite number of at least 10")
	ErrNameRequired  = errors.New("donor name is required for a public donation")
	ErrNameTooLong   = fmt.Errorf("donor name must be at most %d characters", MaxNameLength)
	ErrUnknownLocale = errors.New("no donation description configured for locale")
)

// descriptions is the payment description shown on the LiqPay page, per
// supported locale. A locale missing here fails the build outright; we
// never fall back to another language silently.
var descriptions = map[models.Locale]string{
	models.LocaleUK: "Благодійний внесок до фонду «Світло»",
	models.LocaleEN: "Charitable donation to the Svitlo foundation",
}

type donorMeta struct {
	IsPublic  bool   `json:"isPublic"`
	DonorName string `json:"donorName,omitempty"`
}

type payload struct {
	PublicKey   string     `json:"public_key"`
	Version     int        `json:"version"`
	Action      string     `json:"action"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Description string     `json:"description"`
	OrderID     string     `json:"order_id"`
	ResultURL   string     `json:"result_url"`
	ServerURL   string     `json:"server_url"`
	Language    string     `json:"language"`
	Sandbox     int        `json:"sandbox"`
	Metadata    *donorMeta `json:"metadata,omitempty"`
}

// Checkout is a ready-to-submit payment form: base64 data plus its
// signature, or an unsigned preview when no keys are configured.
type Checkout struct {
	ActionURL string  `json:"actionUrl"`
	Data      string  `json:"data"`
	Signature string  `json:"signature,omitempty"`
	Preview   bool    `json:"preview"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Sandbox   bool    `json:"sandbox"`
}

// Builder turns validated donor input into LiqPay checkout payloads.
type Builder struct {
	publicKey  string
	privateKey string
	sandbox    bool
	baseURL    string

	now func() time.Time
}

func NewBuilder(publicKey, privateKey string, sandbox bool, siteBaseURL string) *Builder {
	return &Builder{
		publicKey:  publicKey,
		privateKey: privateKey,
		sandbox:    sandbox,
		baseURL:    siteBaseURL,
		now:        time.Now,
	}
}

// Configured reports whether both signing keys are present. Unconfigured
// builders still build, but produce preview-only payloads.
func (b *Builder) Configured() bool {
	return b.publicKey != "" && b.privateKey != ""
}

// Build validates the donor input and assembles the checkout payload.
//
// The donor name is only inspected when the donation is public; a name
// supplied on an anonymous donation is dropped and never reaches the
// outgoing metadata.
func (b *Builder) Build(amount float64, isPublic bool, donorName string, locale models.Locale) (*Checkout, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < MinAmount {
		return nil, ErrInvalidAmount
	}

	meta := &donorMeta{IsPublic: isPublic}
	if isPublic {
		name := strings.TrimSpace(donorName)
		if name == "" {
			return nil, ErrNameRequired
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, ErrNameTooLong
		}
		meta.DonorName = name
	}

	description, ok := descriptions[locale]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocale, locale)
	}

	amount = math.Round(amount*100) / 100

	sandbox := 0
	if b.sandbox {
		sandbox = 1
	}

	orderID := b.newOrderID(locale)
	p := payload{
		PublicKey:   b.publicKey,
		Version:     APIVersion,
		Action:      "pay",
		Amount:      amount,
		Currency:    Currency,
		Description: description,
		OrderID:     orderID,
		ResultURL:   fmt.Sprintf("%s/%s/donate/thank-you", b.baseURL, locale),
		ServerURL:   fmt.Sprintf("%s/api/payments/callback", b.baseURL),
		Language:    string(locale),
		Sandbox:     sandbox,
		Metadata:    meta,
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error marshaling checkout payload: %w", err)
	}
	data := base64.StdEncoding.EncodeToString(raw)

	checkout := &Checkout{
		ActionURL: CheckoutURL,
		Data:      data,
		OrderID:   orderID,
		Amount:    amount,
		Currency:  Currency,
		Sandbox:   b.sandbox,
	}

	if b.Configured() {
		checkout.Signature = Sign(data, b.privateKey)
	} else {
		checkout.Preview = true
	}

	return checkout, nil
}

// Sign computes the LiqPay checkout signature for an encoded payload:
// base64(sha1(private_key + data + private_key)).
func Sign(data, privateKey string) string {
	sum := sha1.Sum([]byte(privateKey + data + privateKey))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// newOrderID produces a best-effort unique order identifier from the
// locale, the current time and a random suffix. LiqPay only requires
// order ids to be unique per merchant, not sequential.
func (b *Builder) newOrderID(locale models.Locale) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s_%d_%s", locale, b.now().UnixMilli(), hex.EncodeToString(suffix))
}
