package theme

import (
	"testing"
)

func TestRegistry_NilUsesBuiltin(t *testing.T) {
	var r *Registry
	if got := r.Default().Name; got != DefaultName {
		t.Fatalf("nil registry Default().Name = %q, want %q", got, DefaultName)
	}
}

func TestRegistry_SetDefault(t *testing.T) {
	r := NewRegistry(Default())
	before := r.Default()

	r.SetDefault(MustLoad("mocha"))

	if got := r.Default().Name; got != "mocha" {
		t.Fatalf("Default().Name = %q, want mocha", got)
	}
	if before.Name != DefaultName {
		t.Fatalf("previously read theme changed to %q", before.Name)
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry(Default())

	got := r.Default()
	got.IndicatorColors[0] = "#000000"

	if r.Default().IndicatorColors[0] == "#000000" {
		t.Fatalf("registry default mutated through a returned copy")
	}
}
