package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account-vault/domain"
	"account-vault/repositories"
	"account-vault/services"
	"account-vault/transfer"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, transfer.ICodec) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	store := repositories.NewSlotStore(db, log, 3)
	registry, err := services.NewSlotRegistry(store, log)
	require.NoError(t, err)

	codec := transfer.NewCodec("shared-device-secret")
	imports := services.NewImportService(registry, codec, log)
	accounts := services.NewAccountService(registry, codec, log)
	return NewServer(log, registry, imports, accounts), codec
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func mustAccount(t *testing.T) domain.Account {
	t.Helper()
	account, err := domain.NewAccount("Dana West", "")
	require.NoError(t, err)
	return account
}

func Test_Slots_Lifecycle_Over_HTTP(t *testing.T) {
	req := require.New(t)
	server, _ := newTestServer(t)
	router := server.Router()

	// Fresh registry: three empty slots, slot 1 is the first free one.
	rec := do(t, router, "GET", "/slots", "")
	req.Equal(http.StatusOK, rec.Code)
	var slots []slotDTO
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &slots))
	req.Len(slots, 3)
	for i, slot := range slots {
		req.Equal(i+1, slot.Slot)
		req.True(slot.IsEmpty)
	}

	rec = do(t, router, "GET", "/slots/empty", "")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"slot": 1}`, rec.Body.String())

	// Create into slot 2, then the refresh contract: re-fetch the listing.
	rec = do(t, router, "POST", "/slots/2", `{"name": "Alice Bright"}`)
	req.Equal(http.StatusCreated, rec.Code)
	var created slotDTO
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	req.Equal("AB", created.Account.DisplayAvatar)

	rec = do(t, router, "GET", "/slots", "")
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &slots))
	req.True(slots[0].IsEmpty)
	req.False(slots[1].IsEmpty)
	req.True(slots[2].IsEmpty)

	// Creating into the same slot again conflicts.
	rec = do(t, router, "POST", "/slots/2", `{"name": "Bob"}`)
	req.Equal(http.StatusConflict, rec.Code)

	// Remove it, slot becomes empty again.
	rec = do(t, router, "DELETE", "/slots/2", "")
	req.Equal(http.StatusNoContent, rec.Code)
	rec = do(t, router, "DELETE", "/slots/2", "")
	req.Equal(http.StatusConflict, rec.Code)
}

func Test_Import_Export_Over_HTTP(t *testing.T) {
	req := require.New(t)
	server, codec := newTestServer(t)
	router := server.Router()

	rec := do(t, router, "POST", "/slots/1", `{"name": "Alice Bright", "avatar": "🦊"}`)
	req.Equal(http.StatusCreated, rec.Code)

	rec = do(t, router, "GET", "/slots/1/export", "")
	req.Equal(http.StatusOK, rec.Code)
	var exported map[string]string
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &exported))
	req.NotEmpty(exported["payload"])

	// The exported payload decodes to the same account.
	account, err := codec.Decode(exported["payload"])
	req.NoError(err)
	req.Equal("Alice Bright", account.Name)

	// Import it into slot 3, as the receiving device would.
	body, err := json.Marshal(map[string]string{"payload": exported["payload"]})
	req.NoError(err)
	rec = do(t, router, "POST", "/slots/3/import", string(body))
	req.Equal(http.StatusCreated, rec.Code)

	// Distinct statuses for the failure taxonomy.
	rec = do(t, router, "POST", "/slots/2/import", `{"payload": ""}`)
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = do(t, router, "POST", "/slots/2/import", `{"payload": "avt1garbage"}`)
	req.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, "POST", "/slots/1/import", string(body))
	req.Equal(http.StatusConflict, rec.Code)

	rec = do(t, router, "GET", "/slots/9/export", "")
	req.Equal(http.StatusNotFound, rec.Code)
}

func Test_Import_Rejected_When_Registry_Full(t *testing.T) {
	req := require.New(t)
	server, codec := newTestServer(t)
	router := server.Router()

	for _, path := range []string{"/slots/1", "/slots/2", "/slots/3"} {
		rec := do(t, router, "POST", path, `{"name": "Occupant"}`)
		req.Equal(http.StatusCreated, rec.Code)
	}

	rec := do(t, router, "GET", "/slots/empty", "")
	req.Equal(http.StatusConflict, rec.Code)

	// Even a perfectly valid payload is rejected up front.
	payload, err := codec.Encode(mustAccount(t))
	req.NoError(err)
	body, err := json.Marshal(map[string]string{"payload": payload})
	req.NoError(err)
	rec = do(t, router, "POST", "/slots/1/import", string(body))
	req.Equal(http.StatusConflict, rec.Code)
}
