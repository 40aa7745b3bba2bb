package models

type ImageKind int

const (
	ImageNone ImageKind = iota
	ImageLocal
	ImageRemote
)

// ImageSource is where an event's picture comes from. A local image is a
// file in the document area owned by the event; a remote image is only a URL.
type ImageSource struct {
	kind ImageKind
	ref  string
}

func NoImage() ImageSource {
	return ImageSource{}
}

// LocalImage returns NoImage for an empty filename.
func LocalImage(filename string) ImageSource {
	if filename == "" {
		return NoImage()
	}
	return ImageSource{kind: ImageLocal, ref: filename}
}

// RemoteImage returns NoImage for an empty url.
func RemoteImage(url string) ImageSource {
	if url == "" {
		return NoImage()
	}
	return ImageSource{kind: ImageRemote, ref: url}
}

func (s ImageSource) Kind() ImageKind {
	return s.kind
}

func (s ImageSource) Filename() (string, bool) {
	if s.kind != ImageLocal {
		return "", false
	}
	return s.ref, true
}

func (s ImageSource) URL() (string, bool) {
	if s.kind != ImageRemote {
		return "", false
	}
	return s.ref, true
}
