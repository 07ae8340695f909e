package array

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar
		{Shape{3}, 3},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate(2,3) = %v, want nil", err)
	}
	err := (Shape{2, 0}).Validate()
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Validate(2,0) = %v, want ErrInvalidShape", err)
	}
	err = (Shape{-1}).Validate()
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Validate(-1) = %v, want ErrInvalidShape", err)
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("different-rank shapes reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	clone := s.Clone()
	clone[0] = 9
	if s[0] != 2 {
		t.Error("Clone should not share backing storage")
	}
}
