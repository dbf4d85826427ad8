package main

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/enumkit/pkg/enumkit"
	"go.llib.dev/enumkit/pkg/polykit"
)

func rows(tb testing.TB, out string) [][]string {
	tb.Helper()
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

func TestConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	config := testcase.Let(s, func(t *testcase.T) Config {
		return Config{Order: 3, From: -1, To: 1, Step: 0.5}
	})

	s.Describe("Validate", func(s *testcase.Spec) {
		act := func(t *testcase.T) error { return config.Get(t).Validate() }

		s.Then("a sane configuration is accepted", func(t *testcase.T) {
			assert.NoError(t, act(t))
		})

		s.When("order is negative", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				c := config.Get(t)
				c.Order = -1
				config.Set(t, c)
			})

			s.Then("it is rejected", func(t *testcase.T) {
				assert.ErrorIs(t, ErrInvalidConfig, act(t))
			})
		})

		s.When("step is not positive", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				c := config.Get(t)
				c.Step = -float64(t.Random.IntB(0, 3))
				config.Set(t, c)
			})

			s.Then("it is rejected", func(t *testcase.T) {
				assert.ErrorIs(t, ErrInvalidConfig, act(t))
			})
		})

		s.When("the range is reversed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				c := config.Get(t)
				c.From, c.To = c.To, c.From
				config.Set(t, c)
			})

			s.Then("it is rejected", func(t *testcase.T) {
				assert.ErrorIs(t, ErrInvalidConfig, act(t))
			})
		})

		s.When("the step is tiny compared to the range", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				c := config.Get(t)
				c.From, c.To, c.Step = -1e300, 1e300, 1e-300
				config.Set(t, c)
			})

			s.Then("the axis length is rejected instead of overflowing", func(t *testcase.T) {
				assert.ErrorIs(t, ErrInvalidConfig, act(t))
			})
		})

		s.When("the range is unbounded", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				c := config.Get(t)
				c.From, c.To = math.Inf(-1), math.Inf(1)
				config.Set(t, c)
			})

			s.Then("it is rejected", func(t *testcase.T) {
				assert.ErrorIs(t, ErrInvalidConfig, act(t))
			})
		})

		s.When("the axis has just as many points as allowed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				config.Set(t, Config{Order: 1, From: 0, To: MaxAxisPoints - 1, Step: 1})
			})

			s.Then("it is accepted", func(t *testcase.T) {
				assert.NoError(t, act(t))
			})

			s.Then("one more point is rejected", func(t *testcase.T) {
				c := config.Get(t)
				c.To++
				assert.ErrorIs(t, ErrInvalidConfig, c.Validate())
			})
		})
	})

	s.Describe("Axis", func(s *testcase.Spec) {
		s.Then("both ends of the range are included", func(t *testcase.T) {
			assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, enumkit.Collect[float64](config.Get(t).Axis()))
		})

		s.Then("a step that overshoots stops before the end", func(t *testcase.T) {
			c := Config{From: 0, To: 1, Step: 0.4}
			assert.Equal(t, 3, len(enumkit.Collect[float64](c.Axis())))
		})

		s.Then("a single point range", func(t *testcase.T) {
			c := Config{From: 2, To: 2, Step: 1}
			assert.Equal(t, []float64{2}, enumkit.Collect[float64](c.Axis()))
		})
	})
}

func TestPrint(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("one row per point with the requested orders", func(t *testcase.T) {
		var buf bytes.Buffer
		c := Config{Order: 4, From: 1, To: 3, Step: 1}
		assert.NoError(t, Print(&buf, c, &polykit.Table[float64]{}))

		assert.Equal(t, [][]string{
			{"x", "H0", "H1", "H2", "H3", "H4"},
			{"1", "1", "1", "0", "-2", "-2"},
			{"2", "1", "2", "3", "2", "-5"},
			{"3", "1", "3", "8", "18", "30"},
		}, rows(t, buf.String()))
	})
}

func TestMainFunc(t *testing.T) {
	logger.Testing(t)
	s := testcase.NewSpec(t)

	s.Test("environment configures the table", func(t *testcase.T) {
		testcase.SetEnv(t, "HERMITE_ORDER", "2")
		testcase.SetEnv(t, "HERMITE_FROM", "0")
		testcase.SetEnv(t, "HERMITE_TO", "1")
		testcase.SetEnv(t, "HERMITE_STEP", "1")

		var buf bytes.Buffer
		assert.NoError(t, Main(context.Background(), &buf))
		assert.Equal(t, [][]string{
			{"x", "H0", "H1", "H2"},
			{"0", "1", "0", "-1"},
			{"1", "1", "1", "0"},
		}, rows(t, buf.String()))
	})

	s.Test("invalid environment is reported", func(t *testcase.T) {
		testcase.SetEnv(t, "HERMITE_STEP", "0")

		assert.ErrorIs(t, ErrInvalidConfig, Main(context.Background(), &bytes.Buffer{}))
	})
}
