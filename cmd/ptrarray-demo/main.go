// Command ptrarray-demo exercises the owning array end to end: in-place
// construction, ownership transfer, bounds-checked and sentinel lookups,
// and guaranteed release. It exits 0 on normal completion and 1 when an
// unexpected error reaches the top level.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/LerianStudio/lib-ptrarray/ptrarray"
	"github.com/LerianStudio/lib-ptrarray/ptrarray/pointers"
	zaplog "github.com/LerianStudio/lib-ptrarray/ptrarray/zap"
	"github.com/google/uuid"
)

// ErrNegativeValue is returned when a widget is assigned a negative value.
var ErrNegativeValue = errors.New("value cannot be negative")

// ErrValueOutOfRange is returned when a processed value falls outside [0, 100].
var ErrValueOutOfRange = errors.New("value out of range")

// widget is the demo payload owned by the arrays below.
type widget struct {
	Name  string
	Value int
}

// SetValue updates the widget's value, rejecting negatives.
func (w *widget) SetValue(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeValue, value)
	}

	w.Value = value

	return nil
}

// processValue accepts values within [0, 100] only.
func processValue(value int) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: value %d must be within [0, 100]", ErrValueOutOfRange, value)
	}

	return nil
}

func main() {
	env := flag.String("env", string(zaplog.EnvironmentLocal), "logger environment profile")
	level := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	logger, _, err := zaplog.Build(zaplog.Config{
		Environment: zaplog.Environment(*env),
		Level:       *level,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}

	logger = logger.WithZapFields(zaplog.String("run_id", uuid.NewString()))

	defer func() { _ = logger.Sync(context.Background()) }()

	if err := run(logger); err != nil {
		logger.Error("unexpected failure", zaplog.ErrorField(err))
		os.Exit(1)
	}

	logger.Info("demo completed, all owned elements released")
}

func run(logger *zaplog.Logger) error {
	if err := demoWidgets(logger); err != nil {
		return err
	}

	return demoInts(logger)
}

func demoWidgets(logger *zaplog.Logger) error {
	arr := ptrarray.New(
		ptrarray.WithCapacity[widget](4),
		ptrarray.WithFinalizer(func(w *widget) {
			logger.Debug("released widget", zaplog.String("name", w.Name))
		}),
	)
	defer arr.Close()

	arr.Emplace(widget{Name: "Object 1", Value: 10})
	arr.Emplace(widget{Name: "Object 2", Value: 20})
	arr.Emplace(widget{Name: "Object 3", Value: 30})

	if err := arr.Add(pointers.New(widget{Name: "Object 4", Value: 40})); err != nil {
		return err
	}

	for i := 0; i < arr.Len(); i++ {
		w, err := arr.Value(i)
		if err != nil {
			return err
		}

		logger.Info("widget", zaplog.Int("index", i), zaplog.String("name", w.Name), zaplog.Int("value", w.Value))
	}

	// Expected rejections: surfaced, handled, and logged.
	if err := processValue(50); err != nil {
		return err
	}

	if err := processValue(150); err != nil {
		logger.Info("rejected value", zaplog.ErrorField(err))
	}

	first, err := arr.At(0)
	if err != nil {
		return err
	}

	if err := first.SetValue(-5); err != nil {
		logger.Info("rejected widget update", zaplog.ErrorField(err))
	}

	if _, err := arr.At(10); errors.Is(err, ptrarray.ErrIndexOutOfBounds) {
		logger.Info("rejected access", zaplog.ErrorField(err))
	}

	if arr.Get(10) == nil {
		logger.Info("sentinel lookup returned none", zaplog.Int("index", 10))
	}

	return nil
}

func demoInts(logger *zaplog.Logger) error {
	arr := ptrarray.New[int]()
	defer arr.Close()

	arr.Emplace(100)
	arr.Emplace(200)
	arr.Emplace(300)

	for i := 0; i < arr.Len(); i++ {
		v, err := arr.Value(i)
		if err != nil {
			return err
		}

		logger.Info("int element", zaplog.Int("index", i), zaplog.Int("value", v))
	}

	arr.Clear()

	if !arr.IsEmpty() {
		return fmt.Errorf("array not empty after clear: size %d", arr.Len())
	}

	return nil
}
