package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAnsi(t *testing.T) {
	ss := "\x1b[38;2;254;225;64m* livebar jack\x1b[0m"
	assert.Equal(t, "* livebar jack", StripANSI(ss))
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 3, StringWidth("\x1b[36m███\x1b[0m"))
	assert.Equal(t, 4, StringWidth("进度"))
	assert.Equal(t, 0, StringWidth(""))
}
