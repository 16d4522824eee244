package plexus

import "testing"

// discardSurface drops every draw so benchmarks measure the field alone.
type discardSurface struct{ size Vec2 }

func (d discardSurface) Size() Vec2                          { return d.size }
func (discardSurface) Clear()                                {}
func (discardSurface) FillCircle(Vec2, float64, Color)       {}
func (discardSurface) StrokeLine(Vec2, Vec2, Color, float64) {}

func benchField(w, h float64) (*Field, *PointerTracker) {
	f := NewField(DefaultFieldConfig())
	f.Init(Vec2{w, h})
	tr := NewPointerTracker(150)
	tr.Set(w/2, h/2)
	return f, tr
}

func BenchmarkFieldStep_720p(b *testing.B) {
	f, tr := benchField(1280, 720)
	s := discardSurface{Vec2{1280, 720}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step(s, tr)
	}
}

func BenchmarkFieldStep_4K(b *testing.B) {
	f, tr := benchField(3840, 2160)
	s := discardSurface{Vec2{3840, 2160}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step(s, tr)
	}
}

func BenchmarkFieldInit_1080p(b *testing.B) {
	f := NewField(DefaultFieldConfig())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Init(Vec2{1920, 1080})
	}
}

func BenchmarkRasterSurface_Step(b *testing.B) {
	f, tr := benchField(640, 480)
	s := NewRasterSurface(640, 480, RGB8(15, 23, 42, 1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step(s, tr)
	}
}
