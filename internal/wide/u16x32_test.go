package wide

import "testing"

func TestSplatU16(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
	}{
		{"zero", 0},
		{"max", 255},
		{"mid", 128},
		{"one", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatU16(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %d, want %d", i, v, tt.value)
				}
			}
		})
	}
}

func TestU16x32_Add(t *testing.T) {
	tests := []struct {
		name string
		a    U16x32
		b    U16x32
		want U16x32
	}{
		{
			name: "zeros",
			a:    SplatU16(0),
			b:    SplatU16(0),
			want: SplatU16(0),
		},
		{
			name: "ones",
			a:    SplatU16(1),
			b:    SplatU16(1),
			want: SplatU16(2),
		},
		{
			name: "mixed",
			a:    SplatU16(100),
			b:    SplatU16(50),
			want: SplatU16(150),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			if got != tt.want {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestU16x32_Sub(t *testing.T) {
	tests := []struct {
		name string
		a    U16x32
		b    U16x32
		want U16x32
	}{
		{
			name: "zeros",
			a:    SplatU16(0),
			b:    SplatU16(0),
			want: SplatU16(0),
		},
		{
			name: "equal",
			a:    SplatU16(100),
			b:    SplatU16(100),
			want: SplatU16(0),
		},
		{
			name: "mixed",
			a:    SplatU16(200),
			b:    SplatU16(50),
			want: SplatU16(150),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			if got != tt.want {
				t.Errorf("Sub() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestU16x32_Mul(t *testing.T) {
	tests := []struct {
		name string
		a    U16x32
		b    U16x32
		want U16x32
	}{
		{
			name: "by zero",
			a:    SplatU16(255),
			b:    SplatU16(0),
			want: SplatU16(0),
		},
		{
			name: "by one",
			a:    SplatU16(200),
			b:    SplatU16(1),
			want: SplatU16(200),
		},
		{
			name: "max blend product",
			a:    SplatU16(255),
			b:    SplatU16(255),
			want: SplatU16(65025),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mul(tt.b)
			if got != tt.want {
				t.Errorf("Mul() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestU16x32_Inv(t *testing.T) {
	tests := []struct {
		name string
		in   U16x32
		want U16x32
	}{
		{"zero", SplatU16(0), SplatU16(255)},
		{"max", SplatU16(255), SplatU16(0)},
		{"mid", SplatU16(100), SplatU16(155)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Inv()
			if got != tt.want {
				t.Errorf("Inv() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestU16x32_Div255_Exhaustive checks the shift formula against truncating
// division over the entire blend domain [0, 65025].
func TestU16x32_Div255_Exhaustive(t *testing.T) {
	for x := 0; x <= 65025; x += Lanes {
		var v U16x32
		for i := range v {
			n := x + i
			if n > 65025 {
				n = 65025
			}
			v[i] = uint16(n)
		}
		got := v.Div255()
		for i := range v {
			want := v[i] / 255
			if got[i] != want {
				t.Fatalf("Div255()[%d] for input %d = %d, want %d", i, v[i], got[i], want)
			}
		}
	}
}

func TestU16x32_DivPixel(t *testing.T) {
	var v U16x32
	for i := range v {
		v[i] = uint16(100 + i)
	}

	d := [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}
	got := v.DivPixel(d)
	for i := range v {
		want := v[i] / d[i/4]
		if got[i] != want {
			t.Errorf("DivPixel()[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestU16x32_AlphaSplat(t *testing.T) {
	// Each pixel p holds [10p, 10p+1, 10p+2, 10p+3].
	var v U16x32
	for p := 0; p < 8; p++ {
		for c := 0; c < 4; c++ {
			v[p*4+c] = uint16(10*p + c)
		}
	}

	for channel := 0; channel < 4; channel++ {
		got := v.AlphaSplat(channel)
		for i := range got {
			want := v[(i&^3)+channel]
			if got[i] != want {
				t.Errorf("AlphaSplat(%d)[%d] = %d, want %d", channel, i, got[i], want)
			}
		}
	}
}

func TestU16x32_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		in     U16x32
		maxVal uint16
		want   U16x32
	}{
		{"below", SplatU16(100), 255, SplatU16(100)},
		{"above", SplatU16(300), 255, SplatU16(255)},
		{"equal", SplatU16(255), 255, SplatU16(255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(tt.maxVal)
			if got != tt.want {
				t.Errorf("Clamp(%d) = %v, want %v", tt.maxVal, got, tt.want)
			}
		})
	}
}

func BenchmarkU16x32_Div255(b *testing.B) {
	v := SplatU16(65025)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = v.Div255().Add(SplatU16(65025 - 255))
	}
	_ = v
}

func BenchmarkU16x32_MulAddDiv255(b *testing.B) {
	src := SplatU16(200)
	dst := SplatU16(30)
	a := SplatU16(128)
	b.ReportAllocs()
	b.ResetTimer()
	var out U16x32
	for i := 0; i < b.N; i++ {
		out = src.Mul(a).Add(dst.Mul(a.Inv())).Div255()
	}
	_ = out
}
