package control

import "testing"

func TestStanzaSetGet(t *testing.T) {
	st := NewStanza()
	st.Set("A", OneLine("1"))
	st.Set("B", MultiLine("x", "y"))

	if st.Len() != 2 {
		t.Errorf("Len = %d, want 2", st.Len())
	}
	if v, ok := st.Get("A"); !ok || !v.Equal(OneLine("1")) {
		t.Errorf("A = %+v", v)
	}
	if !st.Has("B") {
		t.Error("B should be present")
	}
	if _, ok := st.Get("C"); ok {
		t.Error("C should be absent")
	}
	if got := st.Field("B"); got != "x\ny" {
		t.Errorf("Field(B) = %q", got)
	}
	if got := st.Field("C"); got != "" {
		t.Errorf("Field(C) = %q, want empty", got)
	}
}

func TestStanzaSetOverwriteKeepsPosition(t *testing.T) {
	st := NewStanza()
	st.Set("A", OneLine("1"))
	st.Set("B", OneLine("2"))
	st.Set("A", OneLine("3"))

	if got := st.Keys(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("unexpected key order %v", got)
	}
	if got := st.Field("A"); got != "3" {
		t.Errorf("A = %q", got)
	}
}

func TestStanzaDelete(t *testing.T) {
	st := NewStanza()
	st.Set("A", OneLine("1"))
	st.Set("B", OneLine("2"))
	st.Set("C", OneLine("3"))

	if !st.Delete("B") {
		t.Error("Delete(B) should report true")
	}
	if st.Delete("B") {
		t.Error("second Delete(B) should report false")
	}
	if got := st.Keys(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("unexpected key order after delete %v", got)
	}
}

func TestStanzaEqual(t *testing.T) {
	a := NewStanza()
	a.Set("A", OneLine("1"))
	a.Set("B", MultiLine("x"))

	b := NewStanza()
	b.Set("A", OneLine("1"))
	b.Set("B", MultiLine("x"))

	if !a.Equal(b) {
		t.Error("identical stanzas should be equal")
	}

	// Same fields, different order.
	c := NewStanza()
	c.Set("B", MultiLine("x"))
	c.Set("A", OneLine("1"))
	if a.Equal(c) {
		t.Error("field order is part of stanza identity")
	}

	b.Set("B", MultiLine("y"))
	if a.Equal(b) {
		t.Error("different values should not be equal")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{OneLine("x"), OneLine("x"), true},
		{OneLine("x"), OneLine("y"), false},
		{OneLine(""), MultiLine(""), false},
		{MultiLine("a", "b"), MultiLine("a", "b"), true},
		{MultiLine("a"), MultiLine("a", "b"), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("Equal(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
