package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeFinalNewline terminates the document with a newline.
func EncodeFinalNewline(v bool) EncodeOption {
	return func(es *EncState) { es.finalNL = v }
}
