package cons

import (
	"errors"
	"testing"

	"github.com/dball/conscell/types"
)

var (
	leaf  = MustSlotType("leaf", "", "")
	group = MustSlotType("group", "(", ")")
)

func TestNewSlotType(t *testing.T) {
	tests := []struct {
		name          string
		open, close   string
		wantDescender bool
		wantErr       bool
	}{
		{name: "xpass: leaf", wantDescender: false},
		{name: "xpass: descender", open: "(", close: ")", wantDescender: true},
		{name: "xfail: open only", open: "(", wantErr: true},
		{name: "xfail: close only", close: ")", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSlotType("t", tt.open, tt.close)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSlotType() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSlotType) {
					t.Errorf("error %v is not ErrInvalidSlotType", err)
				}
				return
			}
			if got.MarksDescender() != tt.wantDescender {
				t.Errorf("MarksDescender() = %v, want %v", got.MarksDescender(), tt.wantDescender)
			}
		})
	}
}

func TestMustSlotTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustSlotType did not panic")
		}
	}()
	MustSlotType("bad", "(", "")
}

func TestSlotTypeIdentityIsName(t *testing.T) {
	a := MustSlotType("x", "", "")
	b := MustSlotType("x", "<", ">")
	if !a.Equal(b) {
		t.Errorf("types with the same name should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("types with the same name should hash alike")
	}
	if a.Equal(leaf) {
		t.Errorf("types with different names should differ")
	}
	if Empty.Equal(nil) {
		t.Errorf("Empty should not equal nil")
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		t     *SlotType
		value types.Value
		want  string
	}{
		{"leaf", leaf, "x", "x"},
		{"descender around a cell", group, Basic.List("a", "b"), "(a b)"},
		{"descender around a leaf", group, "x", "(x)"},
		{"leaf holding a cell", CellLink, Basic.List("a", "b"), "a b"},
		{"empty", Empty, "ignored", ""},
		{"integer", IntegerType, types.Integer(12), "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Render(tt.value); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

type counter struct{ n int }

func TestTryDuplicate(t *testing.T) {
	atom := types.NewAtom(types.Integer(1))
	if dup := leaf.TryDuplicate(atom); dup == atom {
		t.Errorf("duplicable value was aliased")
	} else if !types.Equals(dup, atom) {
		t.Errorf("duplicate %v differs from %v", dup, atom)
	}

	plain := &counter{n: 3}
	if dup := leaf.TryDuplicate(plain); dup != plain {
		t.Errorf("value without a copier should be aliased")
	}

	copying := leaf.WithCopier(func(v types.Value) (types.Value, bool) {
		c, valid := v.(*counter)
		if !valid {
			return nil, false
		}
		return &counter{n: c.n}, true
	})
	if !copying.Equal(leaf) {
		t.Errorf("WithCopier changed the identity of the type")
	}
	dup, valid := copying.TryDuplicate(plain).(*counter)
	if !valid || dup == plain || dup.n != 3 {
		t.Errorf("copier was not used: %v", dup)
	}
	if got := copying.TryDuplicate("s"); got != "s" {
		t.Errorf("declined copy should alias, got %v", got)
	}

	panicking := leaf.WithCopier(func(types.Value) (types.Value, bool) { panic("boom") })
	if got := panicking.TryDuplicate(plain); got != plain {
		t.Errorf("failed duplication should alias")
	}

	cell := Basic.List("a", "b")
	cloned, valid := leaf.TryDuplicate(cell).(*Cell)
	if !valid || cloned == cell || !cloned.Equal(cell) {
		t.Errorf("cells should be cloned")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(leaf, group)
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
	if got, found := r.Lookup("leaf"); !found || got != leaf {
		t.Errorf("Lookup(leaf) = %v, %v", got, found)
	}
	if _, found := r.Lookup("missing"); found {
		t.Errorf("Lookup found a missing type")
	}
	if got, found := r.ByOpen("("); !found || got != group {
		t.Errorf("ByOpen = %v, %v", got, found)
	}
	if got, found := r.ByClose(")"); !found || got != group {
		t.Errorf("ByClose = %v, %v", got, found)
	}
	if _, found := r.ByOpen("["); found {
		t.Errorf("ByOpen found an unregistered bracket")
	}
	if got := r.Descenders(); len(got) != 1 || got[0] != group {
		t.Errorf("Descenders() = %v", got)
	}
	replaced := MustSlotType("leaf", "<", ">")
	r.Register(replaced)
	if got, _ := r.Lookup("leaf"); got != replaced || r.Len() != 4 {
		t.Errorf("Register should replace by name")
	}
}
