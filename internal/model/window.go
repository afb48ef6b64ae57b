package model

// Window describes one on-screen window as reported by the OS window server.
// Descriptors are produced fresh per query and carry no identity guarantee
// across calls: an ID stops resolving as soon as the window closes.
type Window struct {
	ID       int    `yaml:"id"              json:"id"`
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Owner    string `yaml:"owner"           json:"owner"`
	PID      int    `yaml:"pid"             json:"pid"`
	Bounds   [4]int `yaml:"bounds"          json:"bounds"`
	Layer    int    `yaml:"layer,omitempty" json:"layer,omitempty"`
	OnScreen bool   `yaml:"-"               json:"-"`
}

// CaptureResult is a window's pixel content in canonical RGBA byte order,
// sized in backing (physical) pixels. Pixels is width*height*4 bytes, rows
// top to bottom with no padding.
type CaptureResult struct {
	Width  int
	Height int
	Pixels []byte
}
