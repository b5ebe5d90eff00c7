package set_test

import (
	"testing"

	"github.com/goto/backoffice/lib/set"
	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	t.Run("membership", func(t *testing.T) {
		s := set.NewStringSet("card", "transfer", "card")

		assert.True(t, s.Has("card"))
		assert.False(t, s.Has("points"))
		assert.True(t, s.HasAny("points", "transfer"))
		assert.False(t, s.HasAny())
		assert.Len(t, s, 2)
	})

	t.Run("nil set contains nothing", func(t *testing.T) {
		var empty set.StringSet
		assert.False(t, empty.Has("card"))
		assert.False(t, empty.HasAny("card"))
	})

	t.Run("add chains", func(t *testing.T) {
		s := set.NewStringSet().Add("VIP").Add("GOLD")
		assert.Equal(t, set.NewStringSet("GOLD", "VIP"), s)
	})
}
