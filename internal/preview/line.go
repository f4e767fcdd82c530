// Package preview turns a file or directory into coloured lines for the
// preview pane.
package preview

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Segment is a run of text drawn in one colour.
type Segment struct {
	Text  string
	Color RGB
}

// Line is one preview row.
type Line []Segment

var (
	// DirectoryColor marks subdirectories in a directory preview.
	DirectoryColor = RGB{10, 10, 150}
	// FileColor marks everything else in a directory preview.
	FileColor = RGB{200, 200, 200}
	// PlainColor is used when the theme leaves a token uncoloured.
	PlainColor = RGB{200, 200, 200}
)
