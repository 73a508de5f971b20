package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "1" + "é" + family + "2"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("empty text should have no clusters")
	}
}

func TestJoin_ClampsRange(t *testing.T) {
	cl := Split("12.5")
	if got := Join(cl, 1, 3); got != "2." {
		t.Fatalf("join=%q, want %q", got, "2.")
	}
	if got := Join(cl, -4, 99); got != "12.5" {
		t.Fatalf("join clamped=%q, want %q", got, "12.5")
	}
	if got := Join(cl, 3, 1); got != "" {
		t.Fatalf("join inverted=%q, want empty", got)
	}
}

func TestWidthAndIndexAt(t *testing.T) {
	cl := []string{"1", "一", "2"} // 1 + 2 + 1 cells
	if got := Cells(cl); got != 4 {
		t.Fatalf("cells=%d, want 4", got)
	}
	if got := Width("\u0301"); got != 1 {
		t.Fatalf("zero-width cluster width=%d, want 1", got)
	}

	tests := []struct {
		x, want int
	}{
		{-1, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {10, 3},
	}
	for _, tt := range tests {
		if got := IndexAt(cl, tt.x); got != tt.want {
			t.Fatalf("IndexAt(%d)=%d, want %d", tt.x, got, tt.want)
		}
	}
}
