package submission

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"premiumpay-service/internal/config"
	"premiumpay-service/internal/middleware"
	"premiumpay-service/internal/rates"
	"premiumpay-service/internal/service/dispatch"
	pricingService "premiumpay-service/internal/service/pricing"
	service "premiumpay-service/internal/service/submission"
	"premiumpay-service/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tgRecorder fakes the Bot API, recording which chats were reached.
type tgRecorder struct {
	mu         sync.Mutex
	textChats  []int64
	photoChats []int64
	failText   map[int64]bool
}

func (r *tgRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()

		switch {
		case strings.HasSuffix(req.URL.Path, "/sendMessage"):
			var body struct {
				ChatID int64 `json:"chat_id"`
			}
			json.NewDecoder(req.Body).Decode(&body)
			r.textChats = append(r.textChats, body.ChatID)
			if r.failText[body.ChatID] {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
				return
			}
		case strings.HasSuffix(req.URL.Path, "/sendPhoto"):
			req.ParseMultipartForm(10 << 20)
			chatID, _ := strconv.ParseInt(req.FormValue("chat_id"), 10, 64)
			r.photoChats = append(r.photoChats, chatID)
		}
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}
}

func (r *tgRecorder) calls() (texts, photos []int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.textChats...), append([]int64(nil), r.photoChats...)
}

func setupRouter(t *testing.T, tg *tgRecorder, rateHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tgSrv := httptest.NewServer(tg.handler())
	t.Cleanup(tgSrv.Close)

	rateSrv := httptest.NewServer(rateHandler)
	t.Cleanup(rateSrv.Close)

	cfg := config.AppConfig{
		MaxBodyBytes:     20 << 20,
		TelegramToken:    "test-token",
		TelegramAPIBase:  tgSrv.URL,
		AdminChatID:      42,
		RateURL:          rateSrv.URL,
		RateTimeout:      2 * time.Second,
		ModeratorContact: "https://wa.me/2349114301708",
	}

	logger := zap.NewNop()
	transport := telegram.NewClient(cfg.TelegramToken, cfg.TelegramAPIBase, 2*time.Second)
	pricer := pricingService.NewService(rates.NewClient(cfg.RateURL, cfg.RateTimeout), logger)
	dispatcher := dispatch.NewDispatcher(transport, logger)
	submissionSvc := service.NewService(pricer, dispatcher, cfg, logger)

	r := gin.New()
	r.POST("/send", middleware.BodySizeLimit(cfg.MaxBodyBytes), NewSubmissionHandler(submissionSvc, logger).Submit)
	r.GET("/health", Health)
	return r
}

func liveRate(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte(`{"rates":{"USD":0.0025}}`))
}

func deadRate(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
}

func submitBody(mutate func(map[string]interface{})) []byte {
	body := map[string]interface{}{
		"buyer":    map[string]interface{}{"id": 987654321, "first_name": "Ada", "last_name": "Obi"},
		"promoId":  "555001",
		"plan":     "7",
		"method":   "bank",
		"proof":    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("fake-image-bytes")),
		"whatsapp": "+2348000000001",
		"call":     "+2348000000002",
		"desc":     "paid by transfer",
	}
	if mutate != nil {
		mutate(body)
	}
	b, _ := json.Marshal(body)
	return b
}

func postSend(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_ok(t *testing.T) {
	tg := &tgRecorder{}
	r := setupRouter(t, tg, liveRate)

	w := postSend(r, submitBody(nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	texts, photos := tg.calls()
	assert.Equal(t, []int64{42, 987654321, 555001}, texts)
	assert.Equal(t, []int64{42}, photos, "proof photo goes to the admin only")
}

func TestSubmit_missingProof(t *testing.T) {
	tg := &tgRecorder{}
	r := setupRouter(t, tg, liveRate)

	w := postSend(r, submitBody(func(b map[string]interface{}) { delete(b, "proof") }))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Missing required fields"}`, w.Body.String())

	texts, photos := tg.calls()
	assert.Empty(t, texts, "validation failure must not dispatch")
	assert.Empty(t, photos)
}

func TestSubmit_promoOwnerDeliveryFailureStillOK(t *testing.T) {
	tg := &tgRecorder{failText: map[int64]bool{555001: true}}
	r := setupRouter(t, tg, liveRate)

	w := postSend(r, submitBody(nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	texts, _ := tg.calls()
	assert.Equal(t, []int64{42, 987654321, 555001}, texts, "all three deliveries still attempted")
}

func TestSubmit_buyerDeliveryFailureDoesNotBlockOthers(t *testing.T) {
	tg := &tgRecorder{failText: map[int64]bool{987654321: true}}
	r := setupRouter(t, tg, liveRate)

	w := postSend(r, submitBody(nil))

	require.Equal(t, http.StatusOK, w.Code)
	texts, _ := tg.calls()
	assert.Contains(t, texts, int64(42))
	assert.Contains(t, texts, int64(555001))
}

func TestSubmit_rateProviderDownStillOK(t *testing.T) {
	tg := &tgRecorder{}
	r := setupRouter(t, tg, deadRate)

	w := postSend(r, submitBody(nil))

	require.Equal(t, http.StatusOK, w.Code, "rate lookup failure must never abort a submission")
	texts, _ := tg.calls()
	assert.Len(t, texts, 3)
}

func TestSubmit_invalidBody(t *testing.T) {
	tg := &tgRecorder{}
	r := setupRouter(t, tg, liveRate)

	w := postSend(r, []byte(`{not json`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	texts, _ := tg.calls()
	assert.Empty(t, texts)
}

func TestHealth(t *testing.T) {
	tg := &tgRecorder{}
	r := setupRouter(t, tg, liveRate)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
