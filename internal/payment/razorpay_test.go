package payment

import (
	"strconv"
	"strings"
	"testing"
)

func TestBuildOrderData(t *testing.T) {
	data := buildOrderData(500, "INR")

	if data["amount"] != int64(50000) {
		t.Fatalf("expected amount in paise 50000, got %v", data["amount"])
	}
	if data["currency"] != "INR" {
		t.Fatalf("expected currency INR, got %v", data["currency"])
	}
	receipt, ok := data["receipt"].(string)
	if !ok || !strings.HasPrefix(receipt, "receipt_order_") {
		t.Fatalf("unexpected receipt: %v", data["receipt"])
	}
	suffix := strings.TrimPrefix(receipt, "receipt_order_")
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || n > 9999 {
		t.Fatalf("receipt suffix out of range: %q", suffix)
	}
}

func TestBuildOrderData_DefaultsAndRounding(t *testing.T) {
	data := buildOrderData(12.345, "")

	if data["currency"] != "INR" {
		t.Fatalf("expected default currency INR, got %v", data["currency"])
	}
	// 12.345 rupias son 1234.5 paise; se redondea al entero más cercano.
	if data["amount"] != int64(1235) {
		t.Fatalf("expected rounded amount 1235, got %v", data["amount"])
	}
}

func TestNewReceipt_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[newReceipt()] = struct{}{}
	}
	// Con 10000 sufijos posibles, 50 sorteos no deberían colapsar en uno solo.
	if len(seen) < 2 {
		t.Fatalf("receipts are not randomized: %v", seen)
	}
}
