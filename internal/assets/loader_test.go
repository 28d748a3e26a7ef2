// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFetchDecodes(t *testing.T) {
	payload := pngBytes(t, 30, 20)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	img, raw, err := l.Fetch(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("decoded %dx%d, want 30x20", b.Dx(), b.Dy())
	}
	if !bytes.Equal(raw, payload) {
		t.Error("raw bytes differ from served payload")
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	if _, _, err := l.Fetch(context.Background(), srv.URL+"/gone.png"); err == nil {
		t.Fatal("404 response did not error")
	}
}

func TestFetchUndecodableBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	if _, _, err := l.Fetch(context.Background(), srv.URL+"/junk"); err == nil {
		t.Fatal("junk bytes decoded without error")
	}
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := l.Fetch(ctx, srv.URL+"/slow.png"); err == nil {
		t.Fatal("cancelled context did not abort the fetch")
	}
}

func TestPreloadBatches(t *testing.T) {
	payload := pngBytes(t, 5, 5)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(payload)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	p := NewPreloader(l, 2, 1) // 1ns delay keeps the test fast

	urls := []string{
		srv.URL + "/1.png",
		srv.URL + "/2.png",
		srv.URL + "/3.png",
		srv.URL + "/4.png",
		srv.URL + "/5.png",
	}
	if warmed := p.Preload(context.Background(), urls); warmed != 5 {
		t.Errorf("warmed %d, want 5", warmed)
	}
	if hits.Load() != 5 {
		t.Errorf("server hit %d times, want 5", hits.Load())
	}
}

func TestPreloadBestEffort(t *testing.T) {
	payload := pngBytes(t, 5, 5)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.png" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Write(payload)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	p := NewPreloader(l, 10, 1)

	urls := []string{srv.URL + "/ok.png", srv.URL + "/bad.png", srv.URL + "/ok2.png"}
	if warmed := p.Preload(context.Background(), urls); warmed != 2 {
		t.Errorf("warmed %d, want 2 (failure skipped)", warmed)
	}
}

func TestPreloadStopsOnCancel(t *testing.T) {
	payload := pngBytes(t, 5, 5)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(payload)
	}))
	defer srv.Close()

	l := NewLoader(srv.Client(), nil, 0)
	p := NewPreloader(l, 1, time.Hour) // cancel fires during the first pause

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	go func() {
		done <- p.Preload(ctx, []string{srv.URL + "/1.png", srv.URL + "/2.png"})
	}()

	// Let the first batch land, then cancel.
	for hits.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()

	if warmed := <-done; warmed != 1 {
		t.Errorf("warmed %d, want 1 before cancellation", warmed)
	}
}
