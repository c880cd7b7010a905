package util

import "testing"

func TestHashShopKey(t *testing.T) {
	id := "shop-7f2d"
	got := HashShopKey(id)
	if got != HashShopKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestSanitizeFileName(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatal("expected traversal rejection")
	}
	got, err := SanitizeFileName("ro/march 2024.pdf")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "ro_march 2024.pdf" {
		t.Fatalf("unexpected sanitized name: %s", got)
	}
}
