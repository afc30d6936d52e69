package sqlconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_assignRaw_Integers(t *testing.T) {
	t.Run("int64 target from int64", func(t *testing.T) {
		assert := assert.New(t)

		var target int64
		err := assignRaw(int64(412), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(int64(412), target)
	})

	t.Run("int64 target from narrower int", func(t *testing.T) {
		assert := assert.New(t)

		var target int64
		err := assignRaw(int16(88), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(int64(88), target)
	})

	t.Run("int16 target from int64 that fits", func(t *testing.T) {
		assert := assert.New(t)

		var target int16
		err := assignRaw(int64(1025), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(int16(1025), target)
	})

	t.Run("int16 target from int64 that overflows", func(t *testing.T) {
		assert := assert.New(t)

		var target int16
		err := assignRaw(int64(100000), &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrDecodingFailure)
		assert.Zero(target)
	})

	t.Run("uint8 target from negative value", func(t *testing.T) {
		assert := assert.New(t)

		var target uint8
		err := assignRaw(int64(-1), &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrDecodingFailure)
	})

	t.Run("int64 target from non-integer", func(t *testing.T) {
		assert := assert.New(t)

		var target int64
		err := assignRaw("not a number", &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrDecodingFailure)
	})
}

func Test_assignRaw_Strings(t *testing.T) {
	t.Run("string target from string", func(t *testing.T) {
		assert := assert.New(t)

		var target string
		err := assignRaw("sup", &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal("sup", target)
	})

	t.Run("string target from []byte", func(t *testing.T) {
		assert := assert.New(t)

		var target string
		err := assignRaw([]byte("sup"), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal("sup", target)
	})

	t.Run("[]byte target from string", func(t *testing.T) {
		assert := assert.New(t)

		var target []byte
		err := assignRaw("sup", &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal([]byte("sup"), target)
	})

	t.Run("[]byte target is copied from driver buffer", func(t *testing.T) {
		assert := assert.New(t)

		buf := []byte{0x41, 0x42, 0x43}
		var target []byte
		err := assignRaw(buf, &target)
		if !assert.NoError(err) {
			return
		}

		// drivers reuse row buffers; the scanned value must not alias it
		buf[0] = 0x58

		assert.Equal([]byte{0x41, 0x42, 0x43}, target)
	})
}

func Test_assignRaw_OtherKinds(t *testing.T) {
	t.Run("float32 target from float64", func(t *testing.T) {
		assert := assert.New(t)

		var target float32
		err := assignRaw(float64(2.5), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(float32(2.5), target)
	})

	t.Run("float64 target from int64", func(t *testing.T) {
		assert := assert.New(t)

		var target float64
		err := assignRaw(int64(8), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(float64(8), target)
	})

	t.Run("bool target from bool", func(t *testing.T) {
		assert := assert.New(t)

		var target bool
		err := assignRaw(true, &target)

		if !assert.NoError(err) {
			return
		}
		assert.True(target)
	})

	t.Run("bool target from 0/1 column", func(t *testing.T) {
		assert := assert.New(t)

		var target bool
		err := assignRaw(int64(1), &target)

		if !assert.NoError(err) {
			return
		}
		assert.True(target)
	})

	t.Run("bool target from out-of-range integer", func(t *testing.T) {
		assert := assert.New(t)

		var target bool
		err := assignRaw(int64(2), &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrDecodingFailure)
	})

	t.Run("time.Time target from time.Time", func(t *testing.T) {
		assert := assert.New(t)

		stamp := time.Date(2024, 2, 2, 2, 3, 12, 0, time.UTC)
		var target time.Time
		err := assignRaw(stamp, &target)

		if !assert.NoError(err) {
			return
		}
		assert.True(stamp.Equal(target))
	})

	t.Run("named raw type goes through reflection", func(t *testing.T) {
		assert := assert.New(t)

		type level int16
		var target level
		err := assignRaw(int64(3), &target)

		if !assert.NoError(err) {
			return
		}
		assert.Equal(level(3), target)
	})

	t.Run("unsupported raw type", func(t *testing.T) {
		assert := assert.New(t)

		var target struct{ X int }
		err := assignRaw(int64(1), &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrUnsupportedRawType)
	})

	t.Run("SQL NULL", func(t *testing.T) {
		assert := assert.New(t)

		var target int64
		err := assignRaw(nil, &target)

		if !assert.Error(err) {
			return
		}
		assert.ErrorIs(err, ErrDecodingFailure)
	})
}
