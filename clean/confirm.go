package clean

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Confirm asks a yes/no question answered by a single keystroke. When In
// is a terminal the read is raw, no Enter required.
type Confirm struct {
	In  io.Reader
	Out io.Writer
}

func NewConfirm() *Confirm {
	return &Confirm{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Ask prompts for deletion of the content of dir and reads one keystroke.
// Only y and Y confirm; anything else declines, EOF included.
func (c *Confirm) Ask(dir string) (bool, error) {
	fmt.Fprintf(c.Out, "Are you sure you want to delete the content in this directory (%s) [yY]?", dir)

	b, err := c.readKey()

	fmt.Fprint(c.Out, "\n")

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return b == 'y' || b == 'Y', nil
}

func (c *Confirm) readKey() (byte, error) {
	if f, ok := c.In.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return readKeyRaw(f)
	}
	buf := make([]byte, 1)
	if _, err := io.ReadFull(c.In, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readKeyRaw(f *os.File) (byte, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
