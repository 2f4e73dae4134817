package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests below exercise validation paths that fail before any store
// access, so the handlers run with nil repositories.

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdCreateRejectsInvalidEnum(t *testing.T) {
	app := fiber.New()
	h := &AdHandler{}
	app.Post("/ads", h.Create)

	resp := doJSON(t, app, http.MethodPost, "/ads",
		`{"type":"interstitial","format":"display","placement":"top","size":"728x90","priority":5,"content":"x","clientId":"c","slotId":"s"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdCreateRejectsBadPriority(t *testing.T) {
	app := fiber.New()
	h := &AdHandler{}
	app.Post("/ads", h.Create)

	resp := doJSON(t, app, http.MethodPost, "/ads",
		`{"type":"banner","format":"display","placement":"top","size":"728x90","priority":0,"content":"x","clientId":"c","slotId":"s"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTagCreateRequiresName(t *testing.T) {
	app := fiber.New()
	h := &TagHandler{}
	app.Post("/tags", h.Create)

	resp := doJSON(t, app, http.MethodPost, "/tags", `{"slug":"no-name"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTopicCreateRequiresValidCategoryID(t *testing.T) {
	app := fiber.New()
	h := &TopicHandler{}
	app.Post("/topics", h.Create)

	resp := doJSON(t, app, http.MethodPost, "/topics", `{"topicName":"Go","categoryId":"not-hex"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/topics", `{"categoryId":"64ffffffffffffffffffffff"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvalidIDParamIsBadRequest(t *testing.T) {
	app := fiber.New()
	tag := &TagHandler{}
	author := &AuthorHandler{}
	app.Get("/tags/:id", tag.Get)
	app.Delete("/author/:id", author.Delete)

	resp := doJSON(t, app, http.MethodGet, "/tags/zzz", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/author/123", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	app := fiber.New()
	h := &AdHandler{}
	app.Post("/ads", h.Create)

	resp := doJSON(t, app, http.MethodPost, "/ads", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
