package ppm

// ImageInfo contains metadata about a PPM stream without decoding the
// pixel block.
type ImageInfo struct {
	Width      int
	Height     int
	MaxValue   int
	PixelBytes int  // bytes required by the pixel block
	Complete   bool // whether the stream carries the full pixel block
}

// Info parses just the header of a PPM stream and reports the declared
// geometry plus whether the pixel block is complete.
func Info(data []byte) (*ImageInfo, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	need := hdr.width * hdr.height * 3
	return &ImageInfo{
		Width:      hdr.width,
		Height:     hdr.height,
		MaxValue:   hdr.maxValue,
		PixelBytes: need,
		Complete:   len(data)-hdr.pixelOffset >= need,
	}, nil
}
