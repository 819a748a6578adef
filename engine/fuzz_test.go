package engine

import (
	"testing"

	"github.com/iw2rmb/dosedit/buffer"
)

var fuzzKeys = []Key{
	NamedKey(KeyLeft),
	NamedKey(KeyRight),
	NamedKey(KeyUp),
	NamedKey(KeyDown),
	NamedKey(KeyHome),
	NamedKey(KeyEnd),
	NamedKey(KeyWordLeft),
	NamedKey(KeyWordRight),
	NamedKey(KeyPageUp),
	NamedKey(KeyPageDown),
	NamedKey(KeyDocStart),
	NamedKey(KeyDocEnd),
	NamedKey(KeyEnter),
	NamedKey(KeyBackspace),
	NamedKey(KeyDelete),
	NamedKey(KeyTab),
	NamedKey(KeySpace),
	NamedKey(KeyCutLine),
	RuneKey('x'),
	RuneKey('é'),
	TextKey("p\nq"),
}

func FuzzEngine_InvariantsHold(f *testing.F) {
	f.Add("abc", []byte{13, 13, 13}, uint8(5))
	f.Add("ab\ncd", []byte{1, 0, 12, 12, 2}, uint8(1))
	f.Add("", []byte{17, 17, 14, 20, 9, 3}, uint8(2))

	f.Fuzz(func(t *testing.T, text string, ops []byte, height uint8) {
		s := NewSession(buffer.New(text), 20, int(height%8))
		e := New(s, nil, nil)
		checkInvariants(t, s)
		for _, op := range ops {
			if err := e.Handle(fuzzKeys[int(op)%len(fuzzKeys)]); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			checkInvariants(t, s)
		}
	})
}
