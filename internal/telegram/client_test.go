package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendText(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	client := NewClient("test-token", srv.URL, 2*time.Second)
	if err := client.SendText(context.Background(), 12345, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["chat_id"].(float64) != 12345 || gotBody["text"] != "hello" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
}

func TestSendTextAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	client := NewClient("test-token", srv.URL, 2*time.Second)
	err := client.SendText(context.Background(), 1, "hello")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("chat not found")) {
		t.Fatalf("error should carry the API description, got %q", err)
	}
}

func TestSendPhoto(t *testing.T) {
	image := []byte("fake-image-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendPhoto" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("chat_id"); got != "777" {
			t.Errorf("chat_id = %q", got)
		}
		file, header, err := r.FormFile("photo")
		if err != nil {
			t.Errorf("photo part: %v", err)
		} else {
			defer file.Close()
			if header.Filename != "proof.png" {
				t.Errorf("filename = %q", header.Filename)
			}
			data, _ := io.ReadAll(file)
			if !bytes.Equal(data, image) {
				t.Errorf("photo bytes mismatch")
			}
		}
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	client := NewClient("test-token", srv.URL, 2*time.Second)
	if err := client.SendPhoto(context.Background(), 777, image, "proof.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient("test-token", srv.URL, time.Second)
	if err := client.SendText(context.Background(), 1, "hi"); err == nil {
		t.Fatalf("expected error for unreachable server")
	}
	if err := client.SendPhoto(context.Background(), 1, []byte("x"), "p.jpg"); err == nil {
		t.Fatalf("expected error for unreachable server")
	}
}
