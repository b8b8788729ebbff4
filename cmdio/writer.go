package cmdio

// Writer is the transmit half of the command channel. The uartx UART and
// any io.Writer satisfy it.
type Writer interface {
	Write(p []byte) (n int, err error)
}

var newline = []byte{'\n'}

// WriteLine sends s as a single newline-terminated reply line.
func WriteLine(w Writer, s string) error {
	if _, err := w.Write([]byte(s)); err != nil {
		return err
	}
	_, err := w.Write(newline)
	return err
}
