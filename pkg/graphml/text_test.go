package graphml

import "testing"

func TestTextBufferIgnoresTextWhenNotListening(t *testing.T) {
	var b textBuffer
	b.appendValue([]byte("\n  "))
	b.setName("color")
	b.beginListening()
	b.appendValue([]byte("re"))
	b.appendValue([]byte("d"))
	b.endListening()
	b.appendValue([]byte("ignored"))

	name, value := b.take()
	if name != "color" || value != "red" {
		t.Errorf("take() = %q, %q, want color, red", name, value)
	}
	if name, value := b.take(); name != "" || value != "" {
		t.Errorf("take() after drain = %q, %q, want empty", name, value)
	}
}

func TestTextBufferComposite(t *testing.T) {
	var b textBuffer
	b.setName("label")
	b.beginListening()
	b.appendValue([]byte("a"))

	b.enterComposite()
	b.appendValue([]byte("b"))
	b.enterComposite()
	b.appendValue([]byte("c"))

	if !b.leaveNested() || !b.leaveNested() {
		t.Fatal("leaveNested() should consume both nested elements")
	}
	b.appendValue([]byte("d"))
	if b.leaveNested() {
		t.Fatal("leaveNested() should report the attribute close")
	}
	b.endListening()

	name, value := b.take()
	if name != compositePrefix+"label" {
		t.Errorf("name = %q, want %q", name, compositePrefix+"label")
	}
	if value != "abcd" {
		t.Errorf("value = %q, want abcd", value)
	}
	if b.compositeMode || b.depth != 0 {
		t.Error("take() should reset composite state")
	}
}
