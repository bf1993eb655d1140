package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@x.io", "b@y.io"}, splitList(" A@x.io, ,b@y.io "))
	assert.Nil(t, splitList(""))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PAGE_TEST", "42")
	assert.Equal(t, 42, getEnvInt("PAGE_TEST", 7))

	t.Setenv("PAGE_TEST", "nope")
	assert.Equal(t, 7, getEnvInt("PAGE_TEST", 7))

	t.Setenv("PAGE_TEST", "-3")
	assert.Equal(t, 7, getEnvInt("PAGE_TEST", 7))

	assert.Equal(t, 9, getEnvInt("PAGE_TEST_MISSING", 9))
}

func TestGetEnvKeepsEmptyValue(t *testing.T) {
	t.Setenv("CORS_TEST", "")
	assert.Equal(t, "", getEnv("CORS_TEST", "fallback"))
	assert.Equal(t, "fallback", getEnv("CORS_TEST_MISSING", "fallback"))
}
