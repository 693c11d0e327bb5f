package dmd

import (
	"errors"
	"fmt"
)

// scanPhases is the number of interleaved row groups. Phase p drives rows
// p, p+4, p+8 and p+12 of every panel.
const scanPhases = 4

// ScanStep shifts out the next row group and shows it.
//
// It must be called on a steady cadence, typically every 1 to 3ms, so that
// all four phases refresh well above the flicker threshold. If the serial
// link reports it is busy the step is skipped without side effects.
//
// The output is blanked before latching and re-enabled only after the row
// address settles, so a row group never shows on the wrong rows.
func (d *Dev) ScanStep() error {
	if d.halted {
		return errors.New("dmd: halted")
	}
	if !d.lines.Ready() {
		return nil
	}

	rowsize := d.fb.Stride()
	offset := rowsize * d.phase
	pix := d.fb.Pix
	for i := 0; i < rowsize; i++ {
		d.unit[0] = pix[offset+i+d.row3]
		d.unit[1] = pix[offset+i+d.row2]
		d.unit[2] = pix[offset+i+d.row1]
		d.unit[3] = pix[offset+i]
		if err := d.lines.Transfer(d.unit[:]); err != nil {
			return fmt.Errorf("dmd: scan transfer: %w", err)
		}
	}

	if err := d.lines.Blank(); err != nil {
		return fmt.Errorf("dmd: failed to blank: %w", err)
	}
	if err := d.lines.Latch(); err != nil {
		return fmt.Errorf("dmd: failed to latch: %w", err)
	}
	if err := d.lines.SetRowAddress(d.phase); err != nil {
		return fmt.Errorf("dmd: failed to set row address: %w", err)
	}
	d.phase = (d.phase + 1) % scanPhases
	if err := d.lines.Unblank(); err != nil {
		return fmt.Errorf("dmd: failed to unblank: %w", err)
	}
	return nil
}

// Phase returns the row group the next ScanStep will transmit.
func (d *Dev) Phase() int {
	return d.phase
}
