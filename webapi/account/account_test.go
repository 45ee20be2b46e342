package account_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/fintech-ro/bancar/pkg/exchange"
	accountsvc "github.com/fintech-ro/bancar/pkg/service/account"
	"github.com/fintech-ro/bancar/webapi"
	"github.com/fintech-ro/bancar/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

func newApp() *fiber.App {
	svc := accountsvc.New(exchange.NewFixed(5.0), nil, slog.Default())
	return webapi.New(svc, slog.Default())
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) common.Response {
	t.Helper()
	defer resp.Body.Close()
	var out common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func openAccount(t *testing.T, app *fiber.App, balance float64) uuid.UUID {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/account", fiber.Map{"initial_balance": balance})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeResponse(t, resp)
	data, ok := out.Data.(map[string]any)
	require.True(t, ok)
	id, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)
	return id
}

func balanceOf(t *testing.T, app *fiber.App, id uuid.UUID) float64 {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/balance", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	data, ok := out.Data.(map[string]any)
	require.True(t, ok)
	return data["balance"].(float64)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := newApp()
	resp := doJSON(t, app, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOpenAccount(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 1000)
	assert.InDelta(t, 1000.0, balanceOf(t, app, id), 0.01)
}

func TestDepositAndWithdraw(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/deposit", id), fiber.Map{"amount": 2500})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 500})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.InDelta(t, 2000.0, balanceOf(t, app, id), 0.01)
}

func TestWithdrawOverDailyLimitConflicts(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 50000)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 9000})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 1500})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	assert.InDelta(t, 41000.0, balanceOf(t, app, id), 0.01)
}

func TestAdvanceDayResetsLimit(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 50000)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 10000})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/day/advance", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 1500})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	app := newApp()
	src := openAccount(t, app, 500000)
	dst := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/transfer", src),
		fiber.Map{"destination_id": dst.String(), "amount": 200000})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.InDelta(t, 300000.0, balanceOf(t, app, src), 0.01)
	assert.InDelta(t, 200000.0, balanceOf(t, app, dst), 0.01)
}

func TestTransferInsufficientFunds(t *testing.T) {
	t.Parallel()
	app := newApp()
	src := openAccount(t, app, 500000)
	dst := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/transfer", src),
		fiber.Map{"destination_id": dst.String(), "amount": 499999})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	assert.InDelta(t, 500000.0, balanceOf(t, app, src), 0.01)
	assert.Zero(t, balanceOf(t, app, dst))
}

func TestFxTransfer(t *testing.T) {
	t.Parallel()
	app := newApp() // fixed rate: 5 RON per EUR
	src := openAccount(t, app, 1000)
	dst := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/transfer/fx", src),
		fiber.Map{"destination_id": dst.String(), "amount": 500, "direction": "ron-to-eur"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.InDelta(t, 500.0, balanceOf(t, app, src), 0.01)
	assert.InDelta(t, 100.0, balanceOf(t, app, dst), 0.01)
}

func TestFxTransferRejectsUnknownDirection(t *testing.T) {
	t.Parallel()
	app := newApp()
	src := openAccount(t, app, 1000)
	dst := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/transfer/fx", src),
		fiber.Map{"destination_id": dst.String(), "amount": 500, "direction": "eur-to-usd"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestConvert(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 1000)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/convert", id),
		fiber.Map{"amount": 100, "direction": "ron-to-eur"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	data, ok := out.Data.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 20.0, data["converted"].(float64), 0.01)

	// Conversion is pure.
	assert.InDelta(t, 1000.0, balanceOf(t, app, id), 0.01)
}

func TestConvertNegativeAmount(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 1000)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/convert", id),
		fiber.Map{"amount": -5, "direction": "ron-to-eur"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestInterestEndpoints(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 10000)

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/interest?days=365", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	data, ok := out.Data.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 200.0, data["projected"].(float64), 0.01)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/interest", id), fiber.Map{"amount": 200})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.InDelta(t, 10200.0, balanceOf(t, app, id), 0.01)
}

func TestReport(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 10000)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/deposit", id), fiber.Map{"amount": 5000})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/report", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/plain"))
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "Account Report")
	assert.Contains(t, string(body), "Current balance:  15000.00")
}

func TestTransactionsFilter(t *testing.T) {
	t.Parallel()
	app := newApp()
	id := openAccount(t, app, 0)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/deposit", id), fiber.Map{"amount": 100})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/account/%s/withdraw", id), fiber.Map{"amount": 40})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/transactions?kind=deposit", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	items, ok := out.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/transactions?kind=bogus", id), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestInvalidAccountID(t *testing.T) {
	t.Parallel()
	app := newApp()

	resp := doJSON(t, app, fiber.MethodGet, "/account/not-a-uuid/balance", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUnknownAccountIs404(t *testing.T) {
	t.Parallel()
	app := newApp()

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/account/%s/balance", uuid.New()), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
