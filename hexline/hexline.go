// Package hexline prints a byte-oriented stream as paired ASCII/hex
// lines, used by the `dump` subcommand to inspect a chunk's raw payload.
package hexline

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// SetLogLevel sets the log level for this package.
func SetLogLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// Print writes contents to stdout.
func Print(contents io.ReadSeeker, byteLimit int64, width int) error {
	return Write(os.Stdout, contents, byteLimit, width)
}

// Write renders contents as repeating ASCII/hex line pairs of width bytes
// each (one unbounded pair covering the whole remaining stream if width
// <= 0), stopping once byteLimit bytes have been rendered (0 for no
// limit). Each chunk is read once and formatted into both lines from the
// same bytes, rather than seeking back to re-read it a second time.
func Write(out io.Writer, contents io.Reader, byteLimit int64, width int) error {
	unbounded := width <= 0

	var totalBytesRead int64
	for {
		if byteLimit > 0 && totalBytesRead >= byteLimit {
			logger.Debugf("Reached the byte limit of %d; ending early.", byteLimit)
			return nil
		}

		var line []byte
		var err error
		if unbounded {
			line, err = io.ReadAll(contents)
		} else {
			buffer := make([]byte, width)
			var n int
			n, err = io.ReadFull(contents, buffer)
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			line = buffer[:n]
		}
		if err != nil && err != io.EOF {
			logger.Errorf("Could not read file: %v", err)
			return err
		}
		if len(line) == 0 {
			return nil
		}

		if byteLimit > 0 && totalBytesRead+int64(len(line)) > byteLimit {
			line = line[:byteLimit-totalBytesRead]
		}

		writeASCIILine(out, totalBytesRead, line)
		writeHexLine(out, totalBytesRead, line)
		totalBytesRead += int64(len(line))

		if unbounded || err == io.EOF {
			return nil
		}
	}
}

func writeASCIILine(out io.Writer, start int64, line []byte) {
	fmt.Fprintf(out, "0x%06x: ", start)
	for _, b := range line {
		if b < ' ' || b > '~' {
			out.Write([]byte(".."))
		} else {
			fmt.Fprintf(out, " %c", b)
		}
	}
	out.Write([]byte("\n"))
}

func writeHexLine(out io.Writer, start int64, line []byte) {
	fmt.Fprintf(out, "0x%06x: ", start)
	for _, b := range line {
		fmt.Fprintf(out, "%02x", b)
	}
	out.Write([]byte("\n"))
}
