package ordtree

import (
	"os"
	"strings"
	"testing"
)

func TestLicenseFile(t *testing.T) {
	text, err := os.ReadFile("LICENSE")
	if err != nil {
		t.Fatalf("package documentation refers to LICENSE file: %v", err)
	}
	if !strings.HasPrefix(string(text), "BSD 3-Clause License") {
		t.Errorf("expected BSD 3-Clause license text")
	}
}
