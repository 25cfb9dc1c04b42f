package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMd5ThenHex(t *testing.T) {
	// md5("") is a well-known constant.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Md5ThenHex(nil))
	assert.Equal(t, Md5ThenHex([]byte("qoif")), Md5ThenHex([]byte("qoif")))
}

func TestContentUUIDStable(t *testing.T) {
	a := ContentUUID([]byte("qoif"))
	b := ContentUUID([]byte("qoif"))
	c := ContentUUID([]byte("other"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}
