package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/strength"
)

const listQuery = `SELECT id, word, created_at FROM banned_passwords ORDER BY word ASC`

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(service.NewStrengthService(nil, false)))
}

func TestHandleGenerate(t *testing.T) {
	h := newGeneratorHandler()

	t.Run("empty body uses defaults", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleGenerate(rec, newRequest(http.MethodPost, "/api/v1/generate", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		resp := decodeBody[model.GenerateResponse](t, rec)
		assert.Len(t, resp.Password, crypto.DefaultLength)
		assert.Equal(t, crypto.DefaultLength, resp.Length)
		assert.Greater(t, resp.Entropy, 0.0)
	})

	t.Run("alphanumeric only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleGenerate(rec, newRequest(http.MethodPost, "/api/v1/generate", `{"length":20,"symbols":false}`))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[model.GenerateResponse](t, rec)
		assert.Len(t, resp.Password, 20)
		for _, r := range resp.Password {
			assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "unexpected rune %q", r)
		}
	})

	t.Run("long password is strong", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleGenerate(rec, newRequest(http.MethodPost, "/api/v1/generate", `{"length":64}`))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[model.GenerateResponse](t, rec)
		assert.Equal(t, strength.Strong, resp.Strength)
	})

	errorCases := []struct {
		name string
		body string
	}{
		{"too short", `{"length":3}`},
		{"too long", `{"length":65}`},
		{"negative", `{"length":-1}`},
		{"no character types", `{"uppercase":false,"lowercase":false,"digits":false,"symbols":false}`},
		{"malformed json", `{"length":`},
		{"wrong type", `{"length":"twelve"}`},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleGenerate(rec, newRequest(http.MethodPost, "/api/v1/generate", tc.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody[map[string]string](t, rec)["error"])
		})
	}
}

func TestHandleGeneratePronounceable(t *testing.T) {
	h := newGeneratorHandler()

	rec := httptest.NewRecorder()
	h.HandleGeneratePronounceable(rec, newRequest(http.MethodPost, "/api/v1/generate/pronounceable", `{"length":16}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[model.GenerateResponse](t, rec)
	assert.Len(t, resp.Password, 16)

	rec = httptest.NewRecorder()
	h.HandleGeneratePronounceable(rec, newRequest(http.MethodPost, "/api/v1/generate/pronounceable", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[model.GenerateResponse](t, rec).Password, crypto.DefaultLength)

	rec = httptest.NewRecorder()
	h.HandleGeneratePronounceable(rec, newRequest(http.MethodPost, "/api/v1/generate/pronounceable", `{"length":2}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCheck(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService(nil, false))

	tests := []struct {
		password string
		want     strength.Level
		denied   bool
	}{
		{"password", strength.Weak, true},
		{"Password123", strength.Medium, false},
		{"P@ssw0rd!2023XyZ", strength.Strong, false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			body, err := json.Marshal(model.StrengthRequest{Password: tt.password})
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			h.HandleCheck(rec, newRequest(http.MethodPost, "/api/v1/strength", string(body)))

			require.Equal(t, http.StatusOK, rec.Code)
			resp := decodeBody[model.StrengthResponse](t, rec)
			assert.Equal(t, tt.want, resp.Strength)
			assert.Equal(t, tt.denied, resp.Denied)
			assert.Equal(t, len([]rune(tt.password)), resp.Length)
			assert.GreaterOrEqual(t, resp.Score, 0)
			assert.LessOrEqual(t, resp.Score, 4)
		})
	}

	t.Run("missing body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleCheck(rec, newRequest(http.MethodPost, "/api/v1/strength", ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		body := `{"password":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
		rec := httptest.NewRecorder()
		h.HandleCheck(rec, newRequest(http.MethodPost, "/api/v1/strength", body))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestHandleToken(t *testing.T) {
	hash, err := crypto.HashSecret("s3cret-admin")
	require.NoError(t, err)

	h := NewAuthHandler(service.NewAuthService(hash, "jwt-test-secret", time.Hour))

	t.Run("valid secret", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleToken(rec, newRequest(http.MethodPost, "/api/v1/auth/token", `{"secret":"s3cret-admin"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[model.TokenResponse](t, rec)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		claims, err := crypto.ValidateAdminToken(resp.Token, "jwt-test-secret")
		require.NoError(t, err)
		assert.Equal(t, crypto.AdminSubject, claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleToken(rec, newRequest(http.MethodPost, "/api/v1/auth/token", `{"secret":"guess"}`))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty secret", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleToken(rec, newRequest(http.MethodPost, "/api/v1/auth/token", `{"secret":""}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func newDenylistRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewDenylistRepository(db)
	h := NewDenylistHandler(service.NewDenylistService(repo, service.NewStrengthService(repo, false)))

	r := chi.NewRouter()
	r.Get("/api/v1/denylist", h.HandleList)
	r.Post("/api/v1/denylist", h.HandleAdd)
	r.Delete("/api/v1/denylist/{word}", h.HandleRemove)
	return r, mock
}

func TestDenylistHandler_List(t *testing.T) {
	r, mock := newDenylistRouter(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "word", "created_at"}).AddRow(1, "acme2026", created),
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest(http.MethodGet, "/api/v1/denylist", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]model.DenylistEntryResponse](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "acme2026", entries[0].Word)
	assert.True(t, entries[0].CreatedAt.Equal(created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDenylistHandler_ListEmpty(t *testing.T) {
	r, mock := newDenylistRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "word", "created_at"}),
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest(http.MethodGet, "/api/v1/denylist", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDenylistHandler_Add(t *testing.T) {
	r, mock := newDenylistRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO banned_passwords (word) VALUES (?)`)).
		WithArgs("acme2026").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "word", "created_at"}).AddRow(1, "acme2026", time.Now()),
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/denylist", `{"word":"ACME2026"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "acme2026", decodeBody[model.DenylistEntryResponse](t, rec).Word)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDenylistHandler_AddErrors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		r, mock := newDenylistRouter(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO banned_passwords (word) VALUES (?)`)).
			WithArgs("acme2026").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/denylist", `{"word":"acme2026"}`))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank word", func(t *testing.T) {
		r, _ := newDenylistRouter(t)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/denylist", `{"word":"   "}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("word too long", func(t *testing.T) {
		r, _ := newDenylistRouter(t)
		body := `{"word":"` + strings.Repeat("x", 129) + `"}`
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/denylist", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDenylistHandler_Remove(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		r, mock := newDenylistRouter(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banned_passwords WHERE word = ?`)).
			WithArgs("acme2026").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "word", "created_at"}),
		)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodDelete, "/api/v1/denylist/acme2026", ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escaped word", func(t *testing.T) {
		r, mock := newDenylistRouter(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banned_passwords WHERE word = ?`)).
			WithArgs("a/b c").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "word", "created_at"}),
		)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodDelete, "/api/v1/denylist/A%2Fb%20c", ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("percent sign", func(t *testing.T) {
		r, mock := newDenylistRouter(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banned_passwords WHERE word = ?`)).
			WithArgs("100%").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "word", "created_at"}),
		)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodDelete, "/api/v1/denylist/100%25", ""))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		r, mock := newDenylistRouter(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banned_passwords WHERE word = ?`)).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, newRequest(http.MethodDelete, "/api/v1/denylist/nope", ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
