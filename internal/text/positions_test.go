package text

import "testing"

func TestSpanIsValid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		span  Span
		valid bool
	}{
		"valid":                  {span: Span{Start: 0, End: 1}, valid: true},
		"empty valid":            {span: Span{Start: 3, End: 3}, valid: true},
		"negative start invalid": {span: Span{Start: -1, End: 1}, valid: false},
		"negative end invalid":   {span: Span{Start: 0, End: -1}, valid: false},
		"end before start":       {span: Span{Start: 5, End: 4}, valid: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tc.span.IsValid(); got != tc.valid {
				t.Fatalf("IsValid() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestSpanString(t *testing.T) {
	t.Parallel()

	s := Span{Start: 2, End: 5}
	if got, want := s.String(), "[2,5)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestPointOf(t *testing.T) {
	t.Parallel()

	src := []byte("ab\ncd\n\nef")
	tests := map[string]struct {
		off  ByteOffset
		want Point
	}{
		"start of input":        {off: 0, want: Point{Line: 0, Column: 0}},
		"mid first line":        {off: 1, want: Point{Line: 0, Column: 1}},
		"start of second line":  {off: 3, want: Point{Line: 1, Column: 0}},
		"mid second line":       {off: 4, want: Point{Line: 1, Column: 1}},
		"blank third line":      {off: 6, want: Point{Line: 2, Column: 0}},
		"start of fourth line":  {off: 7, want: Point{Line: 3, Column: 0}},
		"offset past input end": {off: ByteOffset(len(src) + 5), want: Point{Line: 3, Column: 2}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := PointOf(src, tc.off); got != tc.want {
				t.Fatalf("PointOf(%d) = %+v, want %+v", tc.off, got, tc.want)
			}
		})
	}
}

func TestPointString(t *testing.T) {
	t.Parallel()

	p := Point{Line: 2, Column: 4}
	if got, want := p.String(), "3:5"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
