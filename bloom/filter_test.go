package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/jobpost/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added keys always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("key-%d", i))
		}
		for i := 0; i < 100; i++ {
			assert.True(t, f.Test(fmt.Sprintf("key-%d", i)))
		}
	})

	t.Run("unknown keys mostly test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("key-%d", i))
		}

		var positives int
		for i := 0; i < 1000; i++ {
			if f.Test(fmt.Sprintf("other-%d", i)) {
				positives++
			}
		}
		assert.Less(t, positives, 100)
	})

	t.Run("estimates the item count", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 50; i++ {
			f.Add(fmt.Sprintf("key-%d", i))
		}

		count := f.EstimatedCount()
		assert.InDelta(t, 50, float64(count), 10)
	})
}
