package freesound

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-token")
	client.BaseURL = server.URL
	return client, server
}

func TestSoundSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":412,"name":"rain loop","username":"fieldrec","duration":12.4,
			"license":"CC0","tags":["rain"],
			"previews":{"preview-hq-mp3":"https://cdn.example/hq.mp3"}}`))
	}))
	defer server.Close()

	sound, err := client.Sound(context.Background(), 412)
	if err != nil {
		t.Fatalf("Sound failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if sound.ID != 412 || sound.Name != "rain loop" || sound.Username != "fieldrec" {
		t.Errorf("Unexpected sound: %+v", sound)
	}
}

func TestNoTokenFailsFastWithoutNetwork(t *testing.T) {
	var hits int32
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()
	client.Token = ""

	if _, err := client.Sound(context.Background(), 1); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken, got %v", err)
	}
	if _, err := client.Search(context.Background(), "rain", 10); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken from Search, got %v", err)
	}
	if _, err := client.FetchPreview(context.Background(), server.URL); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken from FetchPreview, got %v", err)
	}

	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("Expected zero network calls, got %d", hits)
	}
}

func TestBestPreviewURL(t *testing.T) {
	tests := []struct {
		name     string
		previews Previews
		want     string
		wantErr  error
	}{
		{"hq preferred", Previews{HQMP3: "hq", LQMP3: "lq"}, "hq", nil},
		{"lq fallback", Previews{LQMP3: "lq"}, "lq", nil},
		{"none", Previews{}, "", ErrNoPreview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sound := &Sound{Previews: tt.previews}
			got, err := sound.BestPreviewURL()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSoundBadStatusIsSurfaced(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := client.Sound(context.Background(), 1); err == nil {
		t.Error("Expected an error for a non-200 response")
	}
}

func TestFetchPreviewReturnsBody(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	data, err := client.FetchPreview(context.Background(), server.URL+"/previews/412/hq.mp3")
	if err != nil {
		t.Fatalf("FetchPreview failed: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Errorf("Unexpected body: %q", data)
	}
}

func TestSearchParsesResults(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "rain" {
			t.Errorf("Expected query=rain, got %q", got)
		}
		w.Write([]byte(`{"count":1,"results":[{"id":7,"name":"drizzle","duration":3.1}]}`))
	}))
	defer server.Close()

	sounds, err := client.Search(context.Background(), "rain", 20)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(sounds) != 1 || sounds[0].ID != 7 {
		t.Errorf("Unexpected results: %+v", sounds)
	}
}

func TestToSample(t *testing.T) {
	sound := &Sound{
		ID: 9, Name: "creek", Username: "brook", Duration: 7,
		Description: "small creek", License: "CC-BY", Tags: []string{"water"},
	}

	sample := sound.ToSample()

	if sample.ID != 9 || sample.Name != "creek" || sample.Author != "brook" {
		t.Errorf("Unexpected mapping: %+v", sample)
	}
	if !sample.Enabled {
		t.Error("Converted samples must start enabled")
	}
}
