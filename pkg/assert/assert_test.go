//go:build !release

package assert_test

import (
	"testing"

	"github.com/raven-engine/raven/pkg/assert"
	testify "github.com/stretchr/testify/assert"
)

func TestThat(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() { assert.That(true, "never") })
	testify.PanicsWithValue(t, "invariant violated: slot 3 out of range", func() {
		assert.That(false, "slot %d out of range", 3)
	})
}
