//go:build tinygo && wioterminal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

type wioHAL struct {
	logger *serialLogger
	led    *pinLED
	lcd    *ili9341.Device
	kbd    *pinKeyboard
	t      *tinyGoTime
	serial *consoleSerial
}

// New returns a Wio Terminal HAL implementation.
//
// Display: ILI9341 on SPI3, landscape 320x240.
// Input: the 5-way switch. Serial: USB CDC console.
func New() HAL {
	machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40_000_000,
	})
	lcd := ili9341.NewSPI(machine.SPI3, machine.LCD_DC, machine.LCD_SS_PIN, machine.LCD_RESET)
	lcd.Configure(ili9341.Config{})
	lcd.SetRotation(drivers.Rotation270)

	backlight := machine.LCD_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight.High()

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &wioHAL{
		logger: &serialLogger{s: machine.Serial},
		led:    &pinLED{pin: ledPin},
		lcd:    lcd,
		kbd: newPinKeyboard([]pinKey{
			{pin: machine.WIO_5S_UP, code: KeyUp},
			{pin: machine.WIO_5S_DOWN, code: KeyDown},
			{pin: machine.WIO_5S_LEFT, code: KeyLeft},
			{pin: machine.WIO_5S_RIGHT, code: KeyRight},
			{pin: machine.WIO_5S_PRESS, code: KeyEnter},
		}),
		t:      newTinyGoTime(),
		serial: &consoleSerial{s: machine.Serial},
	}
}

func (h *wioHAL) Logger() Logger   { return h.logger }
func (h *wioHAL) LED() LED         { return h.led }
func (h *wioHAL) Display() Display { return tinyGoDisplay{c: h.lcd} }
func (h *wioHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *wioHAL) Time() Time       { return h.t }
func (h *wioHAL) Serial() Serial   { return h.serial }
