package core

import (
	"testing"
	"time"
)

func TestSnapshot(t *testing.T) {
	fetchedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assets := []Asset{
		{ID: "bitcoin", Symbol: "btc", CurrentPrice: 55000},
		{ID: "ethereum", Symbol: "eth", CurrentPrice: 3100},
	}

	snap := NewSnapshot(assets, fetchedAt)

	if snap.Len() != 2 {
		t.Errorf("expected 2 assets, got %d", snap.Len())
	}
	if !snap.FetchedAt().Equal(fetchedAt) {
		t.Errorf("unexpected fetchedAt %s", snap.FetchedAt())
	}

	// Provider order is preserved for pagination.
	if snap.Assets()[0].ID != "bitcoin" || snap.Assets()[1].ID != "ethereum" {
		t.Errorf("listing order not preserved: %v", snap.Assets())
	}

	eth, ok := snap.Lookup("ethereum")
	if !ok || eth.CurrentPrice != 3100 {
		t.Errorf("Lookup(ethereum) = %v, %v", eth, ok)
	}
	if _, ok := snap.Lookup("dogecoin"); ok {
		t.Error("expected dogecoin to be absent")
	}
}

func TestSeries_Values(t *testing.T) {
	s := Series{
		{Timestamp: 1, Value: 10.5},
		{Timestamp: 2, Value: 11.5},
	}
	got := s.Values()
	if len(got) != 2 || got[0] != 10.5 || got[1] != 11.5 {
		t.Errorf("unexpected values %v", got)
	}
}
