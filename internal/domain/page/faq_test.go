package page

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []FAQEntry {
	return []FAQEntry{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}
}

func TestAccordionStartsClosed(t *testing.T) {
	a := NewAccordion(testEntries())
	_, ok := a.OpenIndex()
	assert.False(t, ok)
	assert.Equal(t, 3, a.Len())
}

func TestAccordionToggle(t *testing.T) {
	a := NewAccordion(testEntries())

	require.True(t, a.Toggle(0))
	idx, ok := a.OpenIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// Opening another closes the first.
	require.True(t, a.Toggle(2))
	idx, ok = a.OpenIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.False(t, a.IsOpen(0))

	// Clicking the open item collapses everything.
	require.True(t, a.Toggle(2))
	_, ok = a.OpenIndex()
	assert.False(t, ok)
}

func TestAccordionIgnoresOutOfRange(t *testing.T) {
	a := NewAccordion(testEntries())
	a.Toggle(1)

	assert.False(t, a.Toggle(-1))
	assert.False(t, a.Toggle(3))
	assert.True(t, a.IsOpen(1))
	assert.False(t, a.IsOpen(7))
}

func TestAccordionAtMostOneOpen(t *testing.T) {
	a := NewAccordion(testEntries())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		a.Toggle(rng.Intn(a.Len()))

		open := 0
		for _, item := range a.Items() {
			if item.Open {
				open++
			}
		}
		require.LessOrEqual(t, open, 1, "iteration %d", i)
	}
}

func TestAccordionItemsIsACopy(t *testing.T) {
	a := NewAccordion(testEntries())
	items := a.Items()
	items[0].Open = true
	assert.False(t, a.IsOpen(0))
	assert.Equal(t, "Q1", items[0].Question)
}
