package node

// Span is a half-open byte range into the original source text.
type Span struct {
	StartOffset uint32 `json:"start_offset"`
	EndOffset   uint32 `json:"end_offset"`
}

// Valid reports whether the span is well formed.
func (s Span) Valid() bool { return s.StartOffset <= s.EndOffset }

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	if !s.Valid() {
		return 0
	}

	return s.EndOffset - s.StartOffset
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.StartOffset >= s.StartOffset && other.EndOffset <= s.EndOffset
}

// ContainsOffset reports whether the byte at offset lies within s.
func (s Span) ContainsOffset(offset uint32) bool {
	return offset >= s.StartOffset && offset < s.EndOffset
}

// Envelope carries what every portable node owns: the exact source slice,
// its span and the documentation attached to it.
type Envelope struct {
	Text       string  `json:"text"`
	Span       Span    `json:"span"`
	DocComment *string `json:"doc_comment"`
}

// Env returns the envelope itself. It is promoted to every node type.
func (e *Envelope) Env() *Envelope { return e }

// Doc returns the doc comment or the empty string.
func (e *Envelope) Doc() string {
	if e.DocComment == nil {
		return ""
	}

	return *e.DocComment
}
