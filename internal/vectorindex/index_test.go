package vectorindex

import (
	"math"
	"testing"
)

func vec(dim int, vals ...float32) []float32 {
	v := make([]float32, dim)
	copy(v, vals)
	return v
}

func TestSearchOrdersByCosineSimilarity(t *testing.T) {
	ix := New(3, 0, 0)
	if err := ix.Upsert("a", vec(3, 1, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := ix.Upsert("b", vec(3, 1, 1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := ix.Upsert("c", vec(3, 0, 0, 1)); err != nil {
		t.Fatal(err)
	}

	got, err := ix.Search(vec(3, 1, 0, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("order = %s, %s; want a, b", got[0].ID, got[1].ID)
	}
	if math.Abs(got[0].Score-1.0) > 1e-6 {
		t.Fatalf("identical vectors should score 1.0, got %f", got[0].Score)
	}
}

func TestSearchBreaksTiesByID(t *testing.T) {
	ix := New(2, 0, 0)
	ix.Upsert("z", vec(2, 1, 0))
	ix.Upsert("a", vec(2, 2, 0))

	got, err := ix.Search(vec(2, 1, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "a" || got[1].ID != "z" {
		t.Fatalf("tie order = %s, %s; want a, z", got[0].ID, got[1].ID)
	}
}

func TestUpsertReplacesAndDeleteRemoves(t *testing.T) {
	ix := New(2, 0, 0)
	ix.Upsert("a", vec(2, 1, 0))
	ix.Upsert("a", vec(2, 0, 1))
	if ix.Len() != 1 {
		t.Fatalf("len = %d, want 1", ix.Len())
	}

	got, _ := ix.Search(vec(2, 0, 1), 1)
	if got[0].ID != "a" || math.Abs(got[0].Score-1.0) > 1e-6 {
		t.Fatalf("replaced vector not in effect: %+v", got[0])
	}

	ix.Delete("a")
	if ix.Len() != 0 {
		t.Fatalf("len after delete = %d, want 0", ix.Len())
	}
}

func TestDimensionMismatch(t *testing.T) {
	ix := New(3, 0, 0)
	if err := ix.Upsert("a", vec(2, 1)); err != ErrDimensionMismatch {
		t.Fatalf("upsert err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := ix.Search(vec(2, 1), 1); err != ErrDimensionMismatch {
		t.Fatalf("search err = %v, want ErrDimensionMismatch", err)
	}
	if err := ix.Upsert("", vec(3)); err != ErrEmptyID {
		t.Fatalf("empty id err = %v, want ErrEmptyID", err)
	}
}

func TestZeroVectorDoesNotPanic(t *testing.T) {
	ix := New(2, 0, 0)
	ix.Upsert("zero", vec(2, 0, 0))
	got, err := ix.Search(vec(2, 1, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Score != 0 {
		t.Fatalf("zero vector similarity = %f, want 0", got[0].Score)
	}
}
