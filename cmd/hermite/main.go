package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/enumkit/pkg/enumkit"
	"go.llib.dev/enumkit/pkg/polykit"
)

const ErrInvalidConfig errorkit.Error = "invalid hermite configuration"

// MaxAxisPoints bounds the number of rows a single table can have.
const MaxAxisPoints = 1 << 20

type Config struct {
	Order int     `env:"HERMITE_ORDER" default:"5"`
	From  float64 `env:"HERMITE_FROM" default:"-2"`
	To    float64 `env:"HERMITE_TO" default:"2"`
	Step  float64 `env:"HERMITE_STEP" default:"0.5"`
}

func (c Config) Validate() error {
	if c.Order < 0 {
		return ErrInvalidConfig.F("order must not be negative: %d", c.Order)
	}
	if !(0 < c.Step) || math.IsInf(c.Step, 0) {
		return ErrInvalidConfig.F("step must be a positive number: %v", c.Step)
	}
	if math.IsNaN(c.From) || math.IsNaN(c.To) || c.To < c.From {
		return ErrInvalidConfig.F("invalid range: [%v, %v]", c.From, c.To)
	}
	if n := c.points(); !(n <= MaxAxisPoints) {
		return ErrInvalidConfig.F("the axis would have %v points, the limit is %d", n, MaxAxisPoints)
	}
	return nil
}

// points is the axis length before conversion to int.
// The epsilon keeps To on the axis despite rounding in (To-From)/Step.
func (c Config) points() float64 {
	return math.Floor((c.To-c.From)/c.Step+1e-9) + 1
}

// Axis enumerates From, From+Step, ... up to and including To.
// It expects a validated configuration.
func (c Config) Axis() enumkit.Limited[float64, enumkit.Infinite[float64]] {
	n := int(c.points())
	return enumkit.Limit[float64](enumkit.Generate(func(k int) float64 {
		return c.From + float64(k)*c.Step
	}), n)
}

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "hermite"))
	if err := Main(ctx, os.Stdout); err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context, out io.Writer) error {
	var c Config
	if err := env.Load(&c); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	logger.Info(ctx, "printing hermite table",
		logging.Field("order", c.Order),
		logging.Field("from", c.From),
		logging.Field("to", c.To),
		logging.Field("step", c.Step))
	return Print(out, c, &polykit.Table[float64]{})
}

// Print writes one row per point of the axis with He(0, x) ... He(Order, x).
func Print(out io.Writer, c Config, table *polykit.Table[float64]) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := []string{"x"}
	for n := 0; n <= c.Order; n++ {
		header = append(header, "H"+strconv.Itoa(n))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}

	for x := range enumkit.Seq[float64](c.Axis()) {
		row := []string{format(x)}
		for v := range enumkit.Seq[float64](enumkit.Limit[float64](table.At(x), c.Order+1)) {
			row = append(row, format(v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")+"\t"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
