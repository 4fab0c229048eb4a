//go:build rp2040 || rp2350

package console

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

// Open brings up UART0 on the board's default pins as the console sink.
func Open(baud uint32) (io.Writer, error) {
	var u drivers.UART = uartx.UART0
	if err := uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	}); err != nil {
		return nil, openError(err)
	}
	return u, nil
}
