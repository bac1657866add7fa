package types

import "testing"

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"integers", Integer(3), Integer(3), true},
		{"different integers", Integer(3), Integer(4), false},
		{"integer and string", Integer(3), String("3"), false},
		{"symbols", NewSymbol("a"), NewSymbol("a"), true},
		{"symbol and keyword", NewSymbol("a"), NewKeyword("a"), false},
		{"nils", nil, nil, true},
		{"nil and Nil", nil, Nil{}, false},
		{"atoms with equal contents", NewAtom(Integer(1)), NewAtom(Integer(1)), true},
		{"plain go strings", "x", "x", true},
		{"plain go slices", []int{1, 2}, []int{1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHashAgreesWithEquals(t *testing.T) {
	pairs := [][2]Value{
		{Integer(42), Integer(42)},
		{String("abc"), String("abc")},
		{NewKeyword("k"), NewKeyword("k")},
		{Boolean(true), Boolean(true)},
		{NewAtom(String("x")), NewAtom(String("x"))},
		{"plain", "plain"},
		{nil, nil},
	}
	for _, pair := range pairs {
		if Hash(pair[0]) != Hash(pair[1]) {
			t.Errorf("equal values %v and %v hash differently", pair[0], pair[1])
		}
	}
	if Hash(NewSymbol("a")) == Hash(NewKeyword("a")) {
		t.Errorf("symbol and keyword with the same name should hash apart")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Value
		want    int8
		wantErr bool
	}{
		{"less", Integer(1), Integer(2), -1, false},
		{"equal", Integer(2), Integer(2), 0, false},
		{"greater", String("b"), String("a"), 1, false},
		{"symbols", NewSymbol("x"), NewSymbol("y"), -1, false},
		{"mixed", Integer(1), String("1"), 0, true},
		{"unordered", Boolean(true), Boolean(false), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compare() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtomDuplicate(t *testing.T) {
	a := NewAtom(Integer(7))
	var d Duplicable = a
	b, valid := d.Duplicate().(*Atom)
	if !valid {
		t.Fatalf("Duplicate returned %T", d.Duplicate())
	}
	if a == b {
		t.Errorf("Duplicate returned the same atom")
	}
	if !Equals(a, b) {
		t.Errorf("Duplicate changed the boxed value")
	}
	b.Set(Integer(8))
	if a.Value != Integer(7) {
		t.Errorf("setting the duplicate changed the original")
	}
}
