package sparse

import "testing"

func TestMatrixSetAndAdd(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	M.Add(2, 3, 123)
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in M, have %d", M.ValueCount())
	}
	if a, b := M.Values(2, 3); a != 4711 || b != 123 {
		t.Errorf("expected M(2,3) = [4711,123], is [%d,%d]", a, b)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("expected M(9,9) to be null, is %d", v)
	}
}

func TestMatrixRowOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(1, 4, 1)
	M.Set(3, 0, 2)
	M.Set(1, 0, 3)
	M.Set(1, 2, 4)
	var cols []int
	M.EachInRow(1, func(j int, a, b int32) {
		cols = append(cols, j)
	})
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 4 {
		t.Errorf("expected row 1 to have columns [0 2 4], has %v", cols)
	}
	if M.RowCount(0) != 0 || M.RowCount(3) != 1 {
		t.Errorf("expected row counts 0 and 1, are %d and %d", M.RowCount(0), M.RowCount(3))
	}
	t.Logf("M = %v", M)
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for index out of range")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
