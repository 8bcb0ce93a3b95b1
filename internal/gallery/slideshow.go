package gallery

import "errors"

// ErrNoImages is returned when constructing a slideshow from an empty list.
var ErrNoImages = errors.New("slideshow requires at least one image")

// Slideshow is an ordered, circularly-navigable list of image references
// with a current position. The list is fixed at construction; only the
// cursor moves.
type Slideshow struct {
	images []string
	cursor int
}

// NewSlideshow creates a slideshow over the given image references.
// The list must be non-empty; the slice is copied so later mutation of
// the caller's slice cannot invalidate the cursor.
func NewSlideshow(images []string) (*Slideshow, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	s := &Slideshow{images: make([]string, len(images))}
	copy(s.images, images)
	return s, nil
}

// Len returns the number of images.
func (s *Slideshow) Len() int {
	return len(s.images)
}

// Index returns the current cursor position.
func (s *Slideshow) Index() int {
	return s.cursor
}

// Current returns the image reference at the cursor.
func (s *Slideshow) Current() string {
	return s.images[s.cursor]
}

// Image returns the image reference at index i. The index must already
// be valid; callers navigate via Next/Prev, which cannot go out of range.
func (s *Slideshow) Image(i int) string {
	return s.images[i]
}

// Images returns a copy of the full image list in display order.
func (s *Slideshow) Images() []string {
	out := make([]string, len(s.images))
	copy(out, s.images)
	return out
}

// Next advances the cursor one position, wrapping from the last image
// back to the first, and returns the new current image.
func (s *Slideshow) Next() string {
	s.cursor = (s.cursor + 1) % len(s.images)
	return s.Current()
}

// Prev moves the cursor back one position, wrapping from the first image
// to the last, and returns the new current image.
func (s *Slideshow) Prev() string {
	s.cursor = (s.cursor - 1 + len(s.images)) % len(s.images)
	return s.Current()
}
