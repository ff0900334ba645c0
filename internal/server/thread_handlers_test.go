package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"clipnest/internal/models"
)

func TestCreateThread(t *testing.T) {
	_, app, db := newTestServer(t)
	category := createCategory(t, db, "War")
	cookie := registerAndLogin(t, app, "alice", "secret")

	t.Run("requires auth", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/create_thread/%d", category.ID),
			url.Values{"title": {"strategy"}})
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
	})

	t.Run("success", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/create_thread/%d", category.ID),
			url.Values{"title": {"strategy"}}, cookie)
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/genre/%d", category.ID) {
			t.Fatalf("unexpected redirect %q", loc)
		}

		var thread models.Thread
		if err := db.Where("title = ?", "strategy").First(&thread).Error; err != nil {
			t.Fatalf("thread not created: %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/create_thread/%d", category.ID),
			url.Values{}, cookie)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		resp := postForm(t, app, "/create_thread/999",
			url.Values{"title": {"lost"}}, cookie)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestThreadPageAndReply(t *testing.T) {
	_, app, db := newTestServer(t)
	category := createCategory(t, db, "War")
	thread := &models.Thread{Title: "tactics", CategoryID: category.ID}
	if err := db.Create(thread).Error; err != nil {
		t.Fatalf("create thread: %v", err)
	}

	t.Run("unknown thread", func(t *testing.T) {
		resp := get(t, app, "/thread/999")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("reply needs no session", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/thread/%d", thread.ID),
			url.Values{"content": {"anonymous reply"}})
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/thread/%d", thread.ID) {
			t.Fatalf("unexpected redirect %q", loc)
		}
	})

	t.Run("page lists posts in order", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/thread/%d", thread.ID),
			url.Values{"content": {"second reply"}})
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}

		pageResp := get(t, app, fmt.Sprintf("/thread/%d", thread.ID))
		if pageResp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", pageResp.StatusCode)
		}

		var body struct {
			Thread models.Thread `json:"thread"`
			Posts  []models.Post `json:"posts"`
		}
		if err := json.NewDecoder(pageResp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Thread.ID != thread.ID || len(body.Posts) != 2 {
			t.Fatalf("unexpected payload %+v", body)
		}
		if body.Posts[0].Content != "anonymous reply" {
			t.Fatalf("unexpected post order %+v", body.Posts)
		}
	})
}
