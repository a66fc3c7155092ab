package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/nondet/internal/frontier"
	"github.com/operator-framework/nondet/pkg/nondet"
)

func TestQueueFIFO(t *testing.T) {
	q := frontier.New()
	q.Push(nondet.Path{0})
	q.Push(nondet.Path{1})
	q.Push(nondet.Path{0, 0})

	p, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, nondet.Path{0}, p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, nondet.Path{1}, p)

	q.Push(nondet.Path{0, 1})

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, nondet.Path{0, 0}, p)

	p, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, nondet.Path{0, 1}, p)

	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueuePopEmpty(t *testing.T) {
	q := frontier.New()
	p, ok := q.Pop()
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestQueuePopRun(t *testing.T) {
	q := frontier.New()
	q.Push(nondet.Path{})
	assert.Equal(t, []nondet.Path{{}}, q.PopRun())

	q.Push(nondet.Path{0})
	q.Push(nondet.Path{1})
	q.Push(nondet.Path{0, 0})
	q.Push(nondet.Path{1, 0})

	assert.Equal(t, []nondet.Path{{0}, {1}}, q.PopRun())
	assert.Equal(t, []nondet.Path{{0, 0}, {1, 0}}, q.PopRun())
	assert.Nil(t, q.PopRun())
}
