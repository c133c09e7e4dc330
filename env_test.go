package lisp

import "testing"

func Test_Env_lookup_walks_to_the_root(t *testing.T) {
	root := NewEnv(nil)
	mid := NewEnv(root)
	leaf := NewEnv(mid)

	obj := newString("v")
	root.Define("a", obj)

	got, ok := leaf.Get("a")
	if !ok || got != obj {
		t.Fatalf("lookup should find the root binding by identity")
	}
	if _, ok := leaf.Get("missing"); ok {
		t.Fatalf("lookup should fail past the root")
	}
}

func Test_Env_inner_bindings_shadow_outer(t *testing.T) {
	root := NewEnv(nil)
	leaf := NewEnv(root)

	outer, inner := newString("outer"), newString("inner")
	root.Define("a", outer)
	leaf.Define("a", inner)

	if got, _ := leaf.Get("a"); got != inner {
		t.Fatalf("inner scope should shadow")
	}
	if got, _ := root.Get("a"); got != outer {
		t.Fatalf("outer binding must be untouched by shadowing")
	}
}

func Test_Env_lookup_reports_owning_scope(t *testing.T) {
	root := NewEnv(nil)
	leaf := NewEnv(root)
	root.Define("a", newString("v"))

	if _, owner := leaf.lookup("a"); owner != root {
		t.Fatalf("owner should be the scope holding the binding")
	}
	if _, owner := leaf.lookup("b"); owner != nil {
		t.Fatalf("missing names have no owner")
	}
}
