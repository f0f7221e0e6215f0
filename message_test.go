package protocell_test

import (
	"testing"

	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/internal/unittest"
)

func TestCloneNil(t *testing.T) {
	var m *unittest.TestAllTypes
	if got := protocell.Clone(m); got != nil {
		t.Errorf("Clone(nil) = %v, want nil", got)
	}
}

func TestCloneKeepsType(t *testing.T) {
	m := unittest.NewTestOneof2()
	m.SetFooString("x")
	c := protocell.Clone(m)
	if c == m {
		t.Fatal("Clone returned the same pointer")
	}
	if got := c.FooString(); got != "x" {
		t.Errorf("FooString() = %q, want x", got)
	}
}

func TestEqual(t *testing.T) {
	a := unittest.NewTestProto3Optional()
	b := unittest.NewTestProto3Optional()
	if !protocell.Equal(a, b) {
		t.Error("empty messages should be equal")
	}
	a.SetOptionalInt32(0)
	if protocell.Equal(a, b) {
		t.Error("presence must participate in equality")
	}
	if !protocell.Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
	if protocell.Equal(a, nil) || protocell.Equal(nil, b) {
		t.Error("nil must not equal a message")
	}
}
