package persona

import (
	"errors"
	"testing"
)

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	store := NewMemoryStore(Seed())

	all := store.List()
	matches := store.Search("")

	if len(matches) != len(all) {
		t.Fatalf("expected %d personas, got %d", len(all), len(matches))
	}
	for i := range all {
		if matches[i].ID != all[i].ID {
			t.Fatalf("catalog order differs at %d: got %d want %d", i, matches[i].ID, all[i].ID)
		}
	}
}

func TestSearchMatchesNameDescriptionCategory(t *testing.T) {
	store := NewMemoryStore(Seed())

	byName := store.Search("einstein")
	if len(byName) != 1 || byName[0].Name != "Albert Einstein" {
		t.Fatalf("unexpected name search result: %+v", byName)
	}

	byCategory := store.Search("philosopher")
	if len(byCategory) == 0 {
		t.Fatal("expected category substring matches")
	}
	for _, p := range byCategory {
		if p.Category != "Philosophers" {
			t.Fatalf("unexpected category match: %+v", p)
		}
	}
}

func TestFindByCategoryCaseInsensitive(t *testing.T) {
	store := NewMemoryStore(Seed())

	lower := store.FindByCategory("scientists")
	upper := store.FindByCategory("SCIENTISTS")

	if len(lower) == 0 || len(lower) != len(upper) {
		t.Fatalf("case-insensitive category lookup mismatch: %d vs %d", len(lower), len(upper))
	}
}

func TestCreateCustomIdempotentByName(t *testing.T) {
	store := NewMemoryStore(Seed())

	first, err := store.CreateCustom("Ada")
	if err != nil {
		t.Fatalf("CreateCustom err: %v", err)
	}
	second, err := store.CreateCustom("ada")
	if err != nil {
		t.Fatalf("CreateCustom err: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same persona id, got %d and %d", first.ID, second.ID)
	}
	if !first.IsCustom {
		t.Fatal("expected custom flag set")
	}
	if first.Category != "Custom" {
		t.Fatalf("unexpected category: %s", first.Category)
	}
}

func TestCreateCustomReturnsCuratedMatch(t *testing.T) {
	store := NewMemoryStore(Seed())

	p, err := store.CreateCustom("albert einstein")
	if err != nil {
		t.Fatalf("CreateCustom err: %v", err)
	}
	if p.IsCustom {
		t.Fatal("expected the curated persona, not a new custom one")
	}
	if p.Name != "Albert Einstein" {
		t.Fatalf("unexpected persona: %s", p.Name)
	}
}

func TestCreateCustomRejectsBlankName(t *testing.T) {
	store := NewMemoryStore(Seed())

	if _, err := store.CreateCustom("   "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCustomIDsDisjointFromCuratedRange(t *testing.T) {
	store := NewMemoryStore(Seed())

	var maxCurated int64
	for _, p := range store.List() {
		if p.ID > maxCurated {
			maxCurated = p.ID
		}
	}

	created, err := store.CreateCustom("Grace Hopper")
	if err != nil {
		t.Fatalf("CreateCustom err: %v", err)
	}
	if created.ID <= maxCurated {
		t.Fatalf("custom id %d collides with curated range (max %d)", created.ID, maxCurated)
	}
}
