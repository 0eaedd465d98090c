package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Crypto Wire</title>
    <item>
      <title>Bitcoin climbs</title>
      <link>https://example.com/btc-climbs</link>
      <pubDate>Mon, 24 Jun 2024 10:00:00 GMT</pubDate>
      <description>BTC up on volume.</description>
    </item>
    <item>
      <title>Ethereum upgrade lands</title>
      <link>https://example.com/eth-upgrade</link>
      <pubDate>Mon, 24 Jun 2024 09:00:00 GMT</pubDate>
      <description>Network fork complete.</description>
    </item>
  </channel>
</rss>`

func TestAggregator_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	agg := NewAggregator([]string{srv.URL}, nil)
	items := agg.Fetch(context.Background())

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Bitcoin climbs" {
		t.Errorf("unexpected title %q", items[0].Title)
	}
	if items[0].Link != "https://example.com/btc-climbs" {
		t.Errorf("unexpected link %q", items[0].Link)
	}
	if items[0].Published == "" {
		t.Error("expected published date")
	}
	if items[1].Description != "Network fork complete." {
		t.Errorf("unexpected description %q", items[1].Description)
	}
}

func TestAggregator_BrokenFeedSkipped(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	agg := NewAggregator([]string{bad.URL, good.URL}, nil)
	items := agg.Fetch(context.Background())

	if len(items) != 2 {
		t.Errorf("expected the good feed's 2 items, got %d", len(items))
	}
}

func TestAggregator_NoFeeds(t *testing.T) {
	agg := NewAggregator(nil, nil)
	if items := agg.Fetch(context.Background()); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
