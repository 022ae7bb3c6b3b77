package domain

import "testing"

func TestStepQuantity(t *testing.T) {
	t.Run("walks within stock", func(t *testing.T) {
		if got := StepQuantity(1, 1, 5); got != 2 {
			t.Fatalf("got %d, want 2", got)
		}
		if got := StepQuantity(2, -1, 5); got != 1 {
			t.Fatalf("got %d, want 1", got)
		}
	})

	t.Run("rejects instead of clamping at stock", func(t *testing.T) {
		if got := StepQuantity(5, 1, 5); got != 5 {
			t.Fatalf("got %d, want 5", got)
		}
		if got := StepQuantity(3, 10, 5); got != 3 {
			t.Fatalf("got %d, want 3", got)
		}
	})

	t.Run("never reaches zero", func(t *testing.T) {
		if got := StepQuantity(1, -1, 5); got != 1 {
			t.Fatalf("got %d, want 1", got)
		}
	})

	t.Run("zero stock freezes the control", func(t *testing.T) {
		if got := StepQuantity(1, 1, 0); got != 1 {
			t.Fatalf("got %d, want 1", got)
		}
	})
}

func TestInStock(t *testing.T) {
	if (Product{StockQuantity: 0}).InStock() {
		t.Fatal("zero stock reported in stock")
	}
	if !(Product{StockQuantity: 3}).InStock() {
		t.Fatal("positive stock reported out of stock")
	}
}
