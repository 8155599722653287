//go:build unit

package errs_test

import (
	"testing"

	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("domain validation error")

	t.Run("sees the sentinel through a mark", func(t *testing.T) {
		err := errs.Mark(errs.New("booker name cannot be empty"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("sees the sentinel through a wrap", func(t *testing.T) {
		err := errs.Wrap(sentinel, "creating booking")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches the bare sentinel", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("does not match an unrelated error", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("something else"), sentinel))
	})
}

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("marked error keeps its own message", func(t *testing.T) {
		err := errs.Mark(errs.New("inner detail"), sentinel)
		assert.EqualError(t, err, "inner detail")
	})
}
