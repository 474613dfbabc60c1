package project

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestNew_Showcase(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := svc.List()
	if len(got) != 3 {
		t.Fatalf("List() returned %d projects, want 3", len(got))
	}

	wantIDs := []string{"1", "2", "3"}
	for i, p := range got {
		if p.ID != wantIDs[i] {
			t.Errorf("project %d id = %q, want %q", i, p.ID, wantIDs[i])
		}
	}
	if got[0].Title != "Hinokami Chronicles AMV" {
		t.Errorf("first title = %q", got[0].Title)
	}
	if !reflect.DeepEqual(got[0].Tags, []string{"AMV", "Action", "D&B"}) {
		t.Errorf("first tags = %v", got[0].Tags)
	}
	if got[2].VideoURL != "https://player.vimeo.com/video/90509568" {
		t.Errorf("third video_url = %q", got[2].VideoURL)
	}
}

func TestList_IsStable(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := svc.List()

	// Mutating a returned slice must not leak into later calls.
	first := svc.List()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := svc.List(); !reflect.DeepEqual(got, want) {
				t.Errorf("List() = %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestGet(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p, err := svc.Get("2")
	if err != nil {
		t.Fatalf("Get(2) error = %v", err)
	}
	if p.Title != "Breath of Thunder Montage" {
		t.Errorf("Get(2).Title = %q", p.Title)
	}

	if _, err := svc.Get("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "{{"},
		{name: "missing title", data: `- id: "1"
  video_url: https://example.com/v
  thumbnail: https://example.com/t.jpg`},
		{name: "bad url", data: `- id: "1"
  title: x
  video_url: not a url
  thumbnail: https://example.com/t.jpg`},
		{name: "duplicate id", data: `- id: "1"
  title: x
  video_url: https://example.com/v
  thumbnail: https://example.com/t.jpg
- id: "1"
  title: y
  video_url: https://example.com/v
  thumbnail: https://example.com/t.jpg`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}
}
