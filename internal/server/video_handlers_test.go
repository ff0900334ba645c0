package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"clipnest/internal/models"
)

func TestIndex(t *testing.T) {
	_, app, db := newTestServer(t)
	createCategory(t, db, "Life")
	createCategory(t, db, "War")
	registerAndLogin(t, app, "alice", "secret")

	resp := get(t, app, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Categories []models.Category `json:"categories"`
		Users      []models.User     `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != 2 || len(body.Users) != 1 {
		t.Fatalf("unexpected payload: %d categories, %d users", len(body.Categories), len(body.Users))
	}
}

func TestGenre(t *testing.T) {
	_, app, db := newTestServer(t)
	category := createCategory(t, db, "Life")
	registerAndLogin(t, app, "alice", "secret")
	user := userByName(t, db, "alice")
	createVideo(t, db, category, user.ID, "clip")

	t.Run("unknown category", func(t *testing.T) {
		resp := get(t, app, "/genre/999")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("lists videos and threads", func(t *testing.T) {
		if err := db.Create(&models.Thread{Title: "hello", CategoryID: category.ID}).Error; err != nil {
			t.Fatalf("create thread: %v", err)
		}

		resp := get(t, app, fmt.Sprintf("/genre/%d", category.ID))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var body struct {
			Category models.Category `json:"category"`
			Videos   []models.Video  `json:"videos"`
			Threads  []models.Thread `json:"threads"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Category.Name != "Life" || len(body.Videos) != 1 || len(body.Threads) != 1 {
			t.Fatalf("unexpected payload %+v", body)
		}
	})
}

func TestVideoPage(t *testing.T) {
	_, app, db := newTestServer(t)
	category := createCategory(t, db, "Life")
	registerAndLogin(t, app, "alice", "secret")
	user := userByName(t, db, "alice")
	first := createVideo(t, db, category, user.ID, "first")
	second := createVideo(t, db, category, user.ID, "second")

	t.Run("unknown video", func(t *testing.T) {
		resp := get(t, app, "/video/999")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("every visit increments the view count", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			resp := get(t, app, fmt.Sprintf("/video/%d", first.ID))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}

			var body struct {
				Video models.Video `json:"video"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Video.ViewCount != want {
				t.Fatalf("visit %d: expected view count %d, got %d", want, want, body.Video.ViewCount)
			}
		}
	})

	t.Run("next video is the smallest greater id", func(t *testing.T) {
		resp := get(t, app, fmt.Sprintf("/video/%d", first.ID))

		var body struct {
			NextVideo *models.Video `json:"next_video"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.NextVideo == nil || body.NextVideo.ID != second.ID {
			t.Fatalf("unexpected next video %+v", body.NextVideo)
		}
	})

	t.Run("newest video has no next", func(t *testing.T) {
		resp := get(t, app, fmt.Sprintf("/video/%d", second.ID))

		var body struct {
			NextVideo *models.Video `json:"next_video"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.NextVideo != nil {
			t.Fatalf("expected no next video, got %+v", body.NextVideo)
		}
	})
}

func TestVideoComment(t *testing.T) {
	_, app, db := newTestServer(t)
	category := createCategory(t, db, "Life")
	cookie := registerAndLogin(t, app, "alice", "secret")
	user := userByName(t, db, "alice")
	video := createVideo(t, db, category, user.ID, "clip")

	loadVideo := func() models.Video {
		var v models.Video
		if err := db.First(&v, video.ID).Error; err != nil {
			t.Fatalf("load video: %v", err)
		}
		return v
	}

	t.Run("unauthenticated poster is redirected and still counts a view", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/video/%d", video.ID), url.Values{"content": {"hi"}})
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		wantLoc := "/login?next=" + url.QueryEscape(fmt.Sprintf("/video/%d", video.ID))
		if loc := resp.Header.Get("Location"); loc != wantLoc {
			t.Fatalf("unexpected redirect %q", loc)
		}

		if got := loadVideo().ViewCount; got != 1 {
			t.Fatalf("expected 1 view, got %d", got)
		}
		var comments int64
		db.Model(&models.Comment{}).Count(&comments)
		if comments != 0 {
			t.Fatal("no comment row expected")
		}
	})

	t.Run("comment and view commit together", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/video/%d", video.ID),
			url.Values{"content": {"great clip"}}, cookie)
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/video/%d", video.ID) {
			t.Fatalf("unexpected redirect %q", loc)
		}

		if got := loadVideo().ViewCount; got != 2 {
			t.Fatalf("expected 2 views, got %d", got)
		}
		var comment models.Comment
		if err := db.Where("video_id = ?", video.ID).First(&comment).Error; err != nil {
			t.Fatalf("comment not created: %v", err)
		}
		if comment.UserID != user.ID || comment.Content != "great clip" {
			t.Fatalf("unexpected comment %+v", comment)
		}
	})

	t.Run("empty content is rejected but the view counts", func(t *testing.T) {
		resp := postForm(t, app, fmt.Sprintf("/video/%d", video.ID),
			url.Values{"content": {""}}, cookie)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}

		if got := loadVideo().ViewCount; got != 3 {
			t.Fatalf("expected 3 views, got %d", got)
		}
		var comments int64
		db.Model(&models.Comment{}).Where("video_id = ?", video.ID).Count(&comments)
		if comments != 1 {
			t.Fatalf("expected 1 comment, got %d", comments)
		}
	})
}
