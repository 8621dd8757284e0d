package editor

// Spinner is an indeterminate busy indicator.
type Spinner struct {
	Visible bool
	Label   string
}

// Show makes the spinner visible with label.
func (s *Spinner) Show(label string) {
	s.Visible = true
	s.Label = label
}

// Hide hides the spinner and keeps its label.
func (s *Spinner) Hide() {
	s.Visible = false
}
