package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBack(t *testing.T) {
	if IsValid("") || IsValid("Not/AZone") {
		t.Fatal("expected invalid zones")
	}
	if loc := Location("Not/AZone"); loc == nil {
		t.Fatal("expected a fallback location")
	}
	if loc := Location("UTC"); loc != time.UTC && loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
}
