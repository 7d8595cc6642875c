package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sst-lang/sst/values"
)

func TestEnvironment_GetSet(t *testing.T) {
	env := New()
	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Set("x", &values.Int{Value: 42})
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(42), v.(*values.Int).Value)
}

func TestEnvironment_CloneIsIndependent(t *testing.T) {
	env := New()
	env.Set("x", &values.Int{Value: 1})

	clone := env.Clone()
	clone.Set("x", &values.Int{Value: 2})
	clone.Set("y", &values.Int{Value: 3})

	v, _ := env.Get("x")
	assert.Equal(t, int64(1), v.(*values.Int).Value)
	_, ok := env.Get("y")
	assert.False(t, ok)
}

func TestEnvironment_WriteBackOnlyRestoresSnapshotKeys(t *testing.T) {
	caller := New()
	caller.Set("outer", &values.Int{Value: 1})

	callEnv := caller.Clone()
	keys := caller.SnapshotKeys()

	// The callee mutates a pre-existing name and introduces a new local.
	callEnv.Set("outer", &values.Int{Value: 99})
	callEnv.Set("local", &values.Int{Value: 7})

	caller.WriteBack(callEnv, keys)

	v, ok := caller.Get("outer")
	assert.True(t, ok)
	assert.Equal(t, int64(99), v.(*values.Int).Value)

	_, ok = caller.Get("local")
	assert.False(t, ok, "locals introduced by the callee must not leak back into the caller")
}
