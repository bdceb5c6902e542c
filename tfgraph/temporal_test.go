// SPDX-License-Identifier: MIT

package tfgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/framegraph/tfgraph"
)

func TestTemporalContext_Override(t *testing.T) {
	var tc tfgraph.TemporalContext
	assert.Equal(t, 0.0, tc.Now())

	tc.Set(3)
	restore := tc.Override(10)
	assert.Equal(t, 10.0, tc.Now())

	inner := tc.Override(20)
	assert.Equal(t, 20.0, tc.Now())
	inner()
	assert.Equal(t, 10.0, tc.Now())

	restore()
	assert.Equal(t, 3.0, tc.Now())
}

func TestTemporalContext_RestoreOnPanic(t *testing.T) {
	var tc tfgraph.TemporalContext
	tc.Set(1)

	assert.Panics(t, func() {
		restore := tc.Override(5)
		defer restore()
		panic("evaluation blew up")
	})
	assert.Equal(t, 1.0, tc.Now())
}
