// This file is part of ppulookup.
//
// ppulookup is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ppulookup is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ppulookup.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/logger"
)

// CheckError is returned by Check() if the measurement cannot be completed.
const CheckError = "performance: %v"

// building a table logs every time so the measurement loop refuses
// permission.
type quiet struct{}

func (_ quiet) AllowLogging() bool {
	return false
}

// Result of a performance check.
type Result struct {
	Builds   int
	Duration time.Duration
}

// CalcRate returns the number of builds per second.
func (r Result) CalcRate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Builds) / r.Duration.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f builds/sec (%d builds in %.2f seconds)", r.CalcRate(), r.Builds, r.Duration.Seconds())
}

// Check the performance of the table builder using the supplied timing.
//
// The table will be built repeatedly for the specified duration and will
// create a cpu, memory profile, a trace (or a combination of those) as
// defined by the Profile argument.
func Check(ctx context.Context, output io.Writer, profile Profile, tm scanline.Timing, duration time.Duration) (Result, error) {
	var res Result

	if duration <= 0 {
		return res, curated.Errorf(CheckError, "duration must be positive")
	}

	// make sure timing is valid before starting so that the loop does not
	// have to worry about it
	if _, err := scanline.BuildTiming(tm); err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	runner := func() error {
		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			if _, err := scanline.BuildWithPermission(quiet{}, tm); err != nil {
				return err
			}
			res.Builds++
		}
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	logger.Logf(logger.Allow, "performance", "%d builds of %s table", res.Builds, tm.Name)

	if _, err := io.WriteString(output, res.String()+"\n"); err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	return res, nil
}
