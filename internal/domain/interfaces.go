package domain

// Document is an opened PDF exposing its pages in document order.
type Document interface {
	// NumPage returns the number of pages in the document
	NumPage() int

	// PageText returns the extractable text of page i (0-based).
	// An image-only page yields an empty string and no error.
	PageText(i int) (string, error)

	// Close releases the underlying file and parser state
	Close() error
}

// Opener opens a PDF file as a Document
type Opener interface {
	Open(path string) (Document, error)
}

// OpenerFunc adapts a plain function to the Opener interface
type OpenerFunc func(path string) (Document, error)

func (f OpenerFunc) Open(path string) (Document, error) {
	return f(path)
}
