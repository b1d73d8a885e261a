package correlate

import "testing"

func TestNewRef(t *testing.T) {
	t.Run("drops empty and duplicate candidates", func(t *testing.T) {
		r := NewRef("  12 ", "", "12", "ABC-123")
		if len(r) != 2 {
			t.Fatalf("expected 2 candidates, got %v", r)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		if NewRef(" ABC ")[0] != "abc" {
			t.Fatalf("expected normalized candidate")
		}
	})
}

func TestRefMatches(t *testing.T) {
	t.Run("numeric vs string drift", func(t *testing.T) {
		// "12" coming from a JSON number on one side and a string on the other.
		a := NewRef("12", "ORD-0012")
		b := NewRef("12")
		if !a.Matches(b) {
			t.Fatalf("expected match on shared candidate")
		}
	})

	t.Run("no shared candidate", func(t *testing.T) {
		if NewRef("1").Matches(NewRef("2")) {
			t.Fatalf("unexpected match")
		}
	})

	t.Run("empty sides never match", func(t *testing.T) {
		if NewRef().Matches(NewRef("1")) || NewRef("1").Matches(NewRef()) {
			t.Fatalf("empty ref must not match")
		}
	})
}

func TestIndexMatch(t *testing.T) {
	clients := []struct {
		id  string
		dni string
	}{
		{id: "1", dni: "40111222"},
		{id: "2", dni: "40333444"},
		{id: "3", dni: ""},
	}
	ix := NewIndex(len(clients), func(i int) Ref {
		return NewRef(clients[i].id, clients[i].dni)
	})

	t.Run("matches by id", func(t *testing.T) {
		got := ix.Match(NewRef("2"))
		if len(got) != 1 || got[0] != 1 {
			t.Fatalf("expected position 1, got %v", got)
		}
	})

	t.Run("matches by natural key", func(t *testing.T) {
		got := ix.Match(NewRef("40111222"))
		if len(got) != 1 || got[0] != 0 {
			t.Fatalf("expected position 0, got %v", got)
		}
	})

	t.Run("deduplicates multi-candidate hits", func(t *testing.T) {
		// Ref carrying both the id and the dni of the same client.
		got := ix.Match(NewRef("1", "40111222"))
		if len(got) != 1 {
			t.Fatalf("expected single position, got %v", got)
		}
	})

	t.Run("no match degrades to nothing", func(t *testing.T) {
		if got := ix.Match(NewRef("99")); len(got) != 0 {
			t.Fatalf("expected no positions, got %v", got)
		}
		if ix.AnyMatch(NewRef("99")) {
			t.Fatalf("AnyMatch must be false")
		}
	})

	t.Run("nil index matches nothing", func(t *testing.T) {
		var nilIx *Index
		if got := nilIx.Match(NewRef("1")); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}
