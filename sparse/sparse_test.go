package sparse

import "testing"

func TestMatrixSetAndAdd(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	if M.M() != 10 || M.N() != 10 {
		t.Errorf("Expected matrix to be 10 x 10, is %d x %d", M.M(), M.N())
	}
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	M.Add(2, 3, 123)
	if a, b := M.Values(2, 3); a != 4711 || b != 123 {
		t.Errorf("Expected M(2,3) to be (4711,123), is (%d,%d)", a, b)
	}
	if cnt := M.ValueCount(); cnt != 1 {
		t.Errorf("Expected value count to be 1, is %d", cnt)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("Expected M(9,9) to be null-value, is %d", v)
	}
	M.Set(2, 3, 7)
	if a, b := M.Values(2, 3); a != 7 || b != -1 {
		t.Errorf("Expected Set to replace both values of M(2,3), is (%d,%d)", a, b)
	}
}

func TestMatrixRowOrder(t *testing.T) {
	M := NewIntMatrix(3, 5, DefaultNullValue)
	M.Add(1, 4, 40)
	M.Add(1, 0, 0)
	M.Add(1, 2, 20)
	M.Add(0, 1, 1)
	var cols []int
	M.EachInRow(1, func(j int, a, b int32) {
		cols = append(cols, j)
		if a != int32(j*10) {
			t.Errorf("Expected M(1,%d) to be %d, is %d", j, j*10, a)
		}
		if b != DefaultNullValue {
			t.Errorf("Expected M(1,%d) to have no second value, has %d", j, b)
		}
	})
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 4 {
		t.Errorf("Expected row 1 to hold columns [0 2 4], is %v", cols)
	}
	if M.ValueCount() != 4 {
		t.Errorf("Expected value count to be 4, is %d", M.ValueCount())
	}
}

func TestMatrixPanics(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	M.Add(0, 0, 1).Add(0, 0, 2)
	assertPanics(t, "third value", func() { M.Add(0, 0, 3) })
	assertPanics(t, "row out of range", func() { M.Value(2, 0) })
	assertPanics(t, "column out of range", func() { M.Set(0, -1, 1) })
}

func assertPanics(t *testing.T, what string, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for %s", what)
		}
	}()
	f()
}
