package tui

import "testing"

func TestViewportFitsWindow(t *testing.T) {
	tests := []struct {
		name             string
		cols, rows       int
		wantCols, wantRs int
		wantOffset       int
	}{
		// 600 / (2*23) bounds the scale: 13.04 px per column
		{"standard terminal", 80, 23, 31, 23, 24},
		// 400 / 100 = 4 px per column, cells 8 px tall
		{"tall terminal", 100, 80, 100, 75, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(400, 600, tc.cols, tc.rows)
			if v.Cols() != tc.wantCols || v.Rows() != tc.wantRs || v.OffsetX() != tc.wantOffset {
				t.Errorf("viewport = %dx%d at %d, expected %dx%d at %d",
					v.Cols(), v.Rows(), v.OffsetX(), tc.wantCols, tc.wantRs, tc.wantOffset)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(400, 600, 100, 80)

	col, row := v.ToCell(201, 301)
	if col != 50 || row != 37 {
		t.Errorf("ToCell(201, 301) = (%d, %d), expected (50, 37)", col, row)
	}

	x, y := v.ToPixel(col, row)
	if x != 202 || y != 300 {
		t.Errorf("ToPixel(%d, %d) = (%v, %v), expected (202, 300)", col, row, x, y)
	}
}

func TestViewportClampsToWindow(t *testing.T) {
	v := NewViewport(400, 600, 80, 23)

	if x, y := v.ToPixel(0, 100); x != 0 || y != 600 {
		t.Errorf("ToPixel outside = (%v, %v), expected (0, 600)", x, y)
	}
	if x, _ := v.ToPixel(79, 0); x != 400 {
		t.Errorf("ToPixel right margin x = %v, expected 400", x)
	}
}
