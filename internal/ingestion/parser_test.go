package ingestion_test

import (
	"encoding/json"
	"testing"

	"StableLedger/internal/ingestion"
)

func marshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestParsePriceUpdate(t *testing.T) {
	payload := map[string]interface{}{
		"asset":          "ETH",
		"usd_price":      "2543.17",
		"price_sequence": int64(100),
		"source":         "chainlink",
		"timestamp_us":   int64(1700000000000000),
	}

	update, err := ingestion.ParsePriceUpdate(marshal(t, payload))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if update.Asset != "ETH" {
		t.Errorf("asset: got %s, want ETH", update.Asset)
	}
	if update.USDPrice.String() != "2543.17" {
		t.Errorf("usd_price: got %s, want 2543.17", update.USDPrice)
	}
	if update.PriceSequence != 100 {
		t.Errorf("price_sequence: got %d, want 100", update.PriceSequence)
	}
	if update.Source != "chainlink" {
		t.Errorf("source: got %s, want chainlink", update.Source)
	}
	if update.Timestamp.UnixMicro() != 1700000000000000 {
		t.Errorf("timestamp: got %d", update.Timestamp.UnixMicro())
	}
}

func TestParsePriceUpdate_NumericPrice(t *testing.T) {
	// Producers that send JSON numbers instead of strings still parse.
	data := []byte(`{"asset":"BTC","usd_price":64000.5,"price_sequence":7,"timestamp_us":1700000000000000}`)

	update, err := ingestion.ParsePriceUpdate(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if update.USDPrice.String() != "64000.5" {
		t.Errorf("usd_price: got %s, want 64000.5", update.USDPrice)
	}
}

func TestParsePriceUpdate_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"invalid json", `{invalid`},
		{"missing asset", `{"usd_price":"1","price_sequence":1}`},
		{"zero price", `{"asset":"ETH","usd_price":"0","price_sequence":1}`},
		{"negative price", `{"asset":"ETH","usd_price":"-5","price_sequence":1}`},
		{"missing sequence", `{"asset":"ETH","usd_price":"1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ingestion.ParsePriceUpdate([]byte(tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseInterestCharge(t *testing.T) {
	payload := map[string]interface{}{
		"collateral":      "ETH",
		"rate_start":      "0",
		"rate_end":        "10",
		"substitute_rate": "4.5",
		"sequence":        int64(12),
		"timestamp_us":    int64(1700000000000000),
	}

	charge, err := ingestion.ParseInterestCharge(marshal(t, payload))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if charge.Collateral != "ETH" {
		t.Errorf("collateral: got %s, want ETH", charge.Collateral)
	}
	if charge.RateStart == nil || charge.RateEnd == nil {
		t.Fatal("explicit rate bounds parsed as absent")
	}
	if charge.RateStart.String() != "0" || charge.RateEnd.String() != "10" {
		t.Errorf("rate range: got [%s, %s), want [0, 10)", charge.RateStart, charge.RateEnd)
	}
	if charge.SubstituteRate.String() != "4.5" {
		t.Errorf("substitute_rate: got %s, want 4.5", charge.SubstituteRate)
	}
	if charge.Sequence != 12 {
		t.Errorf("sequence: got %d, want 12", charge.Sequence)
	}
}

func TestParseInterestCharge_AbsentBounds(t *testing.T) {
	// Keepers may ask for the full range by omitting the bounds; the
	// consumer fills in the protocol defaults.
	data := []byte(`{"collateral":"ETH","substitute_rate":"0.04","sequence":3,"timestamp_us":1700000000000000}`)

	charge, err := ingestion.ParseInterestCharge(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if charge.RateStart != nil || charge.RateEnd != nil {
		t.Errorf("absent bounds parsed as [%v, %v), want nil", charge.RateStart, charge.RateEnd)
	}
}

func TestParseInterestCharge_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"invalid json", `{invalid`},
		{"missing collateral", `{"rate_start":"0","rate_end":"10","sequence":1}`},
		{"empty range", `{"collateral":"ETH","rate_start":"5","rate_end":"5","sequence":1}`},
		{"inverted range", `{"collateral":"ETH","rate_start":"10","rate_end":"5","sequence":1}`},
		{"negative substitute", `{"collateral":"ETH","rate_start":"0","rate_end":"10","substitute_rate":"-1","sequence":1}`},
		{"missing sequence", `{"collateral":"ETH","rate_start":"0","rate_end":"10"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ingestion.ParseInterestCharge([]byte(tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
