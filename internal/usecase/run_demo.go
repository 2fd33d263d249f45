package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Raza978/cpp-fundamentals/internal/domain"
)

// hidden is only visible inside this package.
const hidden = 5

type RunDemo struct {
	greeting int
	ledger   *domain.Ledger
	log      *slog.Logger
}

type DemoOption func(*RunDemo)

func WithLedger(l *domain.Ledger) DemoOption {
	return func(uc *RunDemo) {
		if l != nil {
			uc.ledger = l
		}
	}
}

func WithLogger(l *slog.Logger) DemoOption {
	return func(uc *RunDemo) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewRunDemo prepares the demo sequence; greeting is printed after "Hello world!".
func NewRunDemo(greeting int, opts ...DemoOption) *RunDemo {
	uc := &RunDemo{
		greeting: greeting,
		ledger:   domain.NewLedger(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute writes the demo sequence to w, one line per print. Every owned
// allocation is released before Execute returns.
func (uc *RunDemo) Execute(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	uc.log.Debug("demo.started", "greeting", uc.greeting, "hidden", hidden)

	fmt.Fprintf(w, "Hello world! %d\n", uc.greeting)

	var person1 domain.Person
	person1.SetFirstName("Muhammad")
	person1.SetLastName("Raza")
	person1.PrintName(w)

	err := withOwned(uc.ledger, domain.NewPerson("John", "Doe"), func(person2 *domain.Person) {
		person2.PrintName(w)
	})
	if err != nil {
		return err
	}
	uc.log.Debug("demo.released", "what", "person2")

	person3 := domain.NewPerson("Mary", "Jane")
	person3.PrintInfo(w)

	employee1 := domain.NewEmployee("Muhammad", "Raza", "Residental")
	employee1.PrintInfo(w)
	employee1.PrintAge(w)

	err = withOwned[domain.Ager](uc.ledger, domain.Dog{}, func(myAge domain.Ager) {
		myAge.PrintAge(w)
	})
	if err != nil {
		return err
	}
	uc.log.Debug("demo.released", "what", "myAge")

	if err := uc.ledger.Check(); err != nil {
		return err
	}

	acquired, released := uc.ledger.Stats()
	uc.log.Info("demo.finished", "acquired", acquired, "released", released)
	return nil
}

// withOwned allocates v, hands it to fn and releases it when fn returns,
// even if fn panics.
func withOwned[T any](ledger *domain.Ledger, v T, fn func(T)) (err error) {
	o := domain.Allocate(ledger, v)
	defer func() {
		err = errors.Join(err, o.Release())
	}()

	fn(o.Value())
	return nil
}
