package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseLine(t *testing.T) {
	is := is.New(t)

	fields, err := parseLine("load image.png")
	is.NoErr(err)
	is.Equal(fields, []string{"load", "image.png"})

	fields, err = parseLine(`load "my holiday photos/beach.png"`)
	is.NoErr(err)
	is.Equal(fields, []string{"load", "my holiday photos/beach.png"})

	fields, err = parseLine("")
	is.NoErr(err)
	is.Equal(len(fields), 0)

	_, err = parseLine(`load "unterminated`)
	is.True(err != nil)
}
