package gallery

import "testing"

func TestNewSlideshow_RejectsEmpty(t *testing.T) {
	if _, err := NewSlideshow(nil); err != ErrNoImages {
		t.Fatalf("NewSlideshow(nil): err = %v, want ErrNoImages", err)
	}
	if _, err := NewSlideshow([]string{}); err != ErrNoImages {
		t.Fatalf("NewSlideshow(empty): err = %v, want ErrNoImages", err)
	}
}

func TestSlideshow_NextWrapsAtEnd(t *testing.T) {
	// Two images, matching the batter-pitcher folders (favorable + unfavorable).
	s, err := NewSlideshow([]string{"today_bp/top_50_favorable_today.png", "today_bp/top_50_unfavorable_today.png"})
	if err != nil {
		t.Fatal(err)
	}

	if s.Index() != 0 {
		t.Fatalf("initial Index() = %d, want 0", s.Index())
	}
	if got := s.Next(); got != "today_bp/top_50_unfavorable_today.png" {
		t.Errorf("first Next() = %q", got)
	}
	if s.Index() != 1 {
		t.Errorf("after Next: Index() = %d, want 1", s.Index())
	}
	if got := s.Next(); got != "today_bp/top_50_favorable_today.png" {
		t.Errorf("second Next() should wrap to first image, got %q", got)
	}
	if s.Index() != 0 {
		t.Errorf("after wrap: Index() = %d, want 0", s.Index())
	}
}

func TestSlideshow_PrevWrapsAtStart(t *testing.T) {
	s, err := NewSlideshow([]string{"a.png", "b.png", "c.png"})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Prev(); got != "c.png" {
		t.Errorf("Prev from index 0 = %q, want c.png", got)
	}
	if s.Index() != 2 {
		t.Errorf("Index() = %d, want 2", s.Index())
	}
}

func TestSlideshow_NextPrevIsIdentity(t *testing.T) {
	s, err := NewSlideshow([]string{"a.png", "b.png", "c.png", "d.png"})
	if err != nil {
		t.Fatal(err)
	}

	for start := 0; start < s.Len(); start++ {
		s.Next()
		s.Prev()
		if s.Index() != start {
			t.Fatalf("Next then Prev from %d: Index() = %d", start, s.Index())
		}
		s.Prev()
		s.Next()
		if s.Index() != start {
			t.Fatalf("Prev then Next from %d: Index() = %d", start, s.Index())
		}
		s.Next() // move to the next starting position
	}
}

func TestSlideshow_CursorStaysInRange(t *testing.T) {
	s, err := NewSlideshow([]string{"a.png", "b.png", "c.png"})
	if err != nil {
		t.Fatal(err)
	}

	// An arbitrary mixed sequence never leaves [0, len).
	moves := []func() string{s.Next, s.Next, s.Prev, s.Next, s.Prev, s.Prev, s.Prev, s.Next}
	for i, mv := range moves {
		mv()
		if s.Index() < 0 || s.Index() >= s.Len() {
			t.Fatalf("move %d: Index() = %d out of [0,%d)", i, s.Index(), s.Len())
		}
	}
}

func TestSlideshow_SingleImage(t *testing.T) {
	s, err := NewSlideshow([]string{"only.png"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if got := s.Next(); got != "only.png" {
			t.Fatalf("Next() = %q", got)
		}
		if got := s.Prev(); got != "only.png" {
			t.Fatalf("Prev() = %q", got)
		}
	}
	if s.Index() != 0 {
		t.Errorf("Index() = %d, want 0", s.Index())
	}
}

func TestSlideshow_CopiesInput(t *testing.T) {
	images := []string{"a.png", "b.png"}
	s, err := NewSlideshow(images)
	if err != nil {
		t.Fatal(err)
	}
	images[0] = "mutated.png"

	if got := s.Current(); got != "a.png" {
		t.Errorf("Current() = %q after caller mutation, want a.png", got)
	}
}
