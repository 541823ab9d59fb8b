package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atn-virtual/crewcenter/internal/constants"
)

func TestWeatherProvider_FetchMetar_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/data/observations/metar/stations/NTAA.TXT" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("2024-01-01 12:00\nNTAA 011200Z 10008KT 24/22 Q1012\n"))
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, time.Second, nil)

	raw, ok := provider.FetchMetar(context.Background(), "NTAA")
	if !ok {
		t.Fatalf("Expected ok, got sentinel %q", raw)
	}
	if raw != "NTAA 011200Z 10008KT 24/22 Q1012" {
		t.Errorf("Expected observation line, got %q", raw)
	}
}

func TestWeatherProvider_FetchMetar_SingleLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("NTAA 011200Z 10008KT"))
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, time.Second, nil)

	raw, ok := provider.FetchMetar(context.Background(), "NTAA")
	if !ok || raw != "NTAA 011200Z 10008KT" {
		t.Errorf("Expected whole body, got %q (ok=%v)", raw, ok)
	}
}

func TestWeatherProvider_FetchMetar_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, time.Second, nil)

	raw, ok := provider.FetchMetar(context.Background(), "XXXX")
	if ok {
		t.Error("Expected not ok for 404 response")
	}
	if raw != constants.WeatherUnavailable {
		t.Errorf("Expected %q, got %q", constants.WeatherUnavailable, raw)
	}
}

func TestWeatherProvider_FetchMetar_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("late\nNTAA"))
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, 20*time.Millisecond, nil)

	raw, ok := provider.FetchMetar(context.Background(), "NTAA")
	if ok {
		t.Error("Expected not ok on timeout")
	}
	if raw != constants.WeatherConnectionError {
		t.Errorf("Expected %q, got %q", constants.WeatherConnectionError, raw)
	}
}

func TestWeatherProvider_FetchMetar_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	provider := NewWeatherProvider(url, time.Second, nil)

	raw, ok := provider.FetchMetar(context.Background(), "NTAA")
	if ok || raw != constants.WeatherConnectionError {
		t.Errorf("Expected connection error sentinel, got %q (ok=%v)", raw, ok)
	}
}

func TestWeatherProvider_FetchTaf_ReturnsFullBody(t *testing.T) {
	body := "2024/01/01 11:00\nTAF NTAA 011100Z 0112/0218 09010KT 9999 FEW020\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/forecasts/taf/stations/NTAA.TXT" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, time.Second, nil)

	raw, ok := provider.FetchTaf(context.Background(), "NTAA")
	if !ok {
		t.Fatalf("Expected ok, got %q", raw)
	}
	if raw != body {
		t.Errorf("Expected full body, got %q", raw)
	}
}

func TestWeatherProvider_FetchTaf_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewWeatherProvider(server.URL, time.Second, nil)

	raw, ok := provider.FetchTaf(context.Background(), "NTAA")
	if ok || raw != constants.WeatherUnavailable {
		t.Errorf("Expected unavailable sentinel, got %q (ok=%v)", raw, ok)
	}
}
