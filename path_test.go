package config

import "testing"

func buildPathFixture(t *testing.T) *Node {
	root := NewGroup()
	group1 := NewGroup()
	mustAdd(t, group1, NewInteger(1).Named("a"))
	mustAdd(t, group1, NewInteger(2).Named("b"))
	mustAdd(t, root, group1.Named("group1"))

	list := NewList()
	mustAdd(t, list, NewString("zero"))
	mustAdd(t, list, NewString("one"))
	mustAdd(t, root, list.Named("items"))

	return root
}

func TestValidPathGrammar(t *testing.T) {
	cases := map[string]bool{
		"a/b/c":   true,
		"a/2/b":   true,
		"2/a":     false,
		"":        false,
		"a//b":    false,
		"a/b-c":   false,
		"a/-1":    false,
	}
	for path, want := range cases {
		if got := ValidPath(path); got != want {
			t.Errorf("ValidPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestLookupByName(t *testing.T) {
	root := buildPathFixture(t)
	n, err := root.Lookup("group1/b")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v, _ := n.IntegerValue(); v != 2 {
		t.Fatalf("group1/b = %d, want 2", v)
	}
}

func TestLookupByIndex(t *testing.T) {
	root := buildPathFixture(t)
	n, err := root.Lookup("items/1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v, _ := n.StringValue(); v != "one" {
		t.Fatalf("items/1 = %q, want %q", v, "one")
	}
}

func TestLookupMissingName(t *testing.T) {
	root := buildPathFixture(t)
	_, err := root.Lookup("group1/missing")
	if _, ok := err.(*ItemNotFoundError); !ok {
		t.Fatalf("expected ItemNotFoundError, got %v", err)
	}
}

func TestLookupIndexOutOfRange(t *testing.T) {
	root := buildPathFixture(t)
	_, err := root.Lookup("items/5")
	if _, ok := err.(*ItemNotFoundError); !ok {
		t.Fatalf("expected ItemNotFoundError, got %v", err)
	}
}

func TestLookupMalformedPath(t *testing.T) {
	root := buildPathFixture(t)
	_, err := root.Lookup("2/a")
	if _, ok := err.(*InvalidPathError); !ok {
		t.Fatalf("expected InvalidPathError, got %v", err)
	}
}

func TestExists(t *testing.T) {
	root := buildPathFixture(t)
	if !root.Exists("group1/a") {
		t.Fatalf("expected group1/a to exist")
	}
	if root.Exists("group1/nope") {
		t.Fatalf("expected group1/nope to not exist")
	}
}

func TestRemovePathByName(t *testing.T) {
	root := buildPathFixture(t)
	if err := root.RemovePath("group1/a"); err != nil {
		t.Fatalf("RemovePath: %v", err)
	}
	if root.Exists("group1/a") {
		t.Fatalf("group1/a should have been removed")
	}
	if !root.Exists("group1/b") {
		t.Fatalf("group1/b should remain")
	}
}

func TestRemovePathByIndex(t *testing.T) {
	root := buildPathFixture(t)
	if err := root.RemovePath("items/0"); err != nil {
		t.Fatalf("RemovePath: %v", err)
	}
	n, err := root.Lookup("items/0")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v, _ := n.StringValue(); v != "one" {
		t.Fatalf("items/0 after removal = %q, want %q", v, "one")
	}
}

func TestLookupThroughScalarFails(t *testing.T) {
	root := buildPathFixture(t)
	_, err := root.Lookup("group1/a/x")
	if err == nil {
		t.Fatalf("expected an error when descending through a scalar")
	}
}
