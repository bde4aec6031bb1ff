package staging

// RawImage is an upload exactly as received from the browser.
type RawImage struct {
	Filename     string
	DeclaredType string
	Data         []byte
}

// UploadedImage is a validated image payload ready for a vision provider.
type UploadedImage struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"-"`
}

// Size returns the payload length in bytes.
func (i UploadedImage) Size() int {
	return len(i.Data)
}
