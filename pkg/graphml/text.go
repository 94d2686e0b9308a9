package graphml

import "bytes"

// compositePrefix namespaces attributes assembled from nested markup.
const compositePrefix = "_graphml_composite_"

// textBuffer accumulates the name and value of the attribute element being
// read. Text is only captured between beginListening and endListening.
type textBuffer struct {
	name      bytes.Buffer
	value     bytes.Buffer
	composite bytes.Buffer

	listening bool
	// compositeMode routes text to the composite buffer.
	compositeMode bool
	// depth counts nested elements opened inside the attribute value.
	depth int
}

func (b *textBuffer) beginListening() { b.listening = true }

func (b *textBuffer) endListening() { b.listening = false }

func (b *textBuffer) setName(name string) {
	b.name.Reset()
	b.name.WriteString(name)
}

// appendValue stores text delivered by the scanner, if listening.
func (b *textBuffer) appendValue(p []byte) {
	if !b.listening {
		return
	}
	if b.compositeMode {
		b.composite.Write(p)
		return
	}
	b.value.Write(p)
}

// enterComposite switches to composite mode. Text gathered so far becomes
// the first fragment of the composite value.
func (b *textBuffer) enterComposite() {
	if !b.compositeMode {
		b.compositeMode = true
		b.composite.Write(b.value.Bytes())
		b.value.Reset()
	}
	b.depth++
}

// leaveNested closes one nested element. It reports false when no nested
// element is open, meaning the close belongs to the attribute element itself.
func (b *textBuffer) leaveNested() bool {
	if b.depth == 0 {
		return false
	}
	b.depth--
	return true
}

// take drains the buffers and returns the completed attribute. Composite
// values come back under their namespaced key.
func (b *textBuffer) take() (name, value string) {
	name = b.takeName()
	if b.compositeMode {
		name = compositePrefix + name
		value = b.composite.String()
		b.composite.Reset()
		b.value.Reset()
		b.compositeMode = false
		b.depth = 0
		return name, value
	}
	return name, b.takeValue()
}

func (b *textBuffer) takeName() string {
	s := b.name.String()
	b.name.Reset()
	return s
}

func (b *textBuffer) takeValue() string {
	s := b.value.String()
	b.value.Reset()
	return s
}
