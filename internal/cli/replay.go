package cli

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parking-engine/internal/domain/parking"
	"parking-engine/internal/domain/reservation"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/infra/memory"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Script is a replayable scenario: lots and subscriptions to seed, then
// steps run in order against the reservation commands.
type Script struct {
	Parkings      []ScriptParking      `json:"parkings" yaml:"parkings"`
	Subscriptions []ScriptSubscription `json:"subscriptions" yaml:"subscriptions"`
	Steps         []ScriptStep         `json:"steps" yaml:"steps"`
}

type ScriptParking struct {
	ID         uuid.UUID       `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Capacity   int             `json:"capacity" yaml:"capacity"`
	HourlyRate decimal.Decimal `json:"hourly_rate" yaml:"hourly_rate"`
	Open       string          `json:"open" yaml:"open"`
	Close      string          `json:"close" yaml:"close"`
}

type ScriptSubscription struct {
	ID        uuid.UUID    `json:"id" yaml:"id"`
	UserID    uuid.UUID    `json:"user_id" yaml:"user_id"`
	ParkingID uuid.UUID    `json:"parking_id" yaml:"parking_id"`
	From      string       `json:"from" yaml:"from"`
	To        string       `json:"to" yaml:"to"`
	Slots     []ScriptSlot `json:"slots" yaml:"slots"`
}

type ScriptSlot struct {
	Day   int    `json:"day" yaml:"day"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// ScriptStep runs Op at At. Ref names the reservation created by a book
// step so later steps can refer to it.
type ScriptStep struct {
	At        time.Time `json:"at" yaml:"at"`
	Op        string    `json:"op" yaml:"op"`
	Ref       string    `json:"ref" yaml:"ref"`
	UserID    uuid.UUID `json:"user_id" yaml:"user_id"`
	ParkingID uuid.UUID `json:"parking_id" yaml:"parking_id"`
	Start     time.Time `json:"start" yaml:"start"`
	End       time.Time `json:"end" yaml:"end"`
	Vehicle   string    `json:"vehicle" yaml:"vehicle"`
}

type StepOutput struct {
	Op            string      `json:"op"`
	Ref           string      `json:"ref,omitempty"`
	At            time.Time   `json:"at"`
	Error         string      `json:"error,omitempty"`
	ReservationID *uuid.UUID  `json:"reservation_id,omitempty"`
	Status        string      `json:"status,omitempty"`
	Amount        string      `json:"amount,omitempty"`
	Subscription  *uuid.UUID  `json:"subscription_id,omitempty"`
	Bill          *BillOutput `json:"bill,omitempty"`
}

func (r *Runner) replay(ctx context.Context, args []string, in io.Reader) ([]StepOutput, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "-", "scenario file, - for stdin")
	format := fs.String("format", "", "json or yaml, defaults to the file extension")
	if err := fs.Parse(args); err != nil {
		return nil, errs.Wrapf(ErrUsage, "replay: %v", err)
	}

	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return nil, errs.Wrapf(err, "open scenario %s", *file)
		}
		defer f.Close()
		in = f
	}

	script, err := decodeScript(in, scriptFormat(*format, *file))
	if err != nil {
		return nil, err
	}
	return r.Replay(ctx, script)
}

func scriptFormat(format, file string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func decodeScript(in io.Reader, format string) (Script, error) {
	var script Script
	switch format {
	case "json":
		dec := json.NewDecoder(in)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&script); err != nil {
			return Script{}, errs.Wrapf(ErrUsage, "decode json scenario: %v", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(in)
		dec.KnownFields(true)
		if err := dec.Decode(&script); err != nil {
			return Script{}, errs.Wrapf(ErrUsage, "decode yaml scenario: %v", err)
		}
	default:
		return Script{}, errs.Wrapf(ErrUsage, "unknown scenario format %q", format)
	}
	return script, nil
}

// Replay seeds a fresh in-memory store from script and runs its steps.
// A failing step is reported in its output and does not stop the replay.
func (r *Runner) Replay(ctx context.Context, script Script) ([]StepOutput, error) {
	store := memory.NewStore()
	if err := seed(store, script); err != nil {
		return nil, err
	}

	clk := clock.NewMockClock(r.clock.Now())
	uc := commands.NewReservationUseCase(
		store.Parkings(),
		store.Occupancy(),
		store.Subscriptions(),
		store.Reservations(),
		store.Sessions(),
		store.Transactor(),
		r.locker,
		reservation.NewFactory(clk, r.calculator, r.coverage),
		r.calculator,
		r.coverage,
		clk,
		r.logger,
	)

	refs := make(map[string]uuid.UUID)
	out := make([]StepOutput, 0, len(script.Steps))
	for _, step := range script.Steps {
		if !step.At.IsZero() {
			clk.Set(step.At)
		}
		result := StepOutput{Op: step.Op, Ref: step.Ref, At: clk.Now()}
		if err := r.runStep(ctx, uc, refs, step, &result); err != nil {
			result.Error = err.Error()
		}
		out = append(out, result)
	}
	return out, nil
}

func (r *Runner) runStep(
	ctx context.Context,
	uc commands.ReservationCommands,
	refs map[string]uuid.UUID,
	step ScriptStep,
	result *StepOutput,
) error {
	if step.Op == "book" {
		res, err := uc.Book(ctx, commands.BookParams{
			UserID:      step.UserID,
			ParkingID:   step.ParkingID,
			Start:       step.Start,
			End:         step.End,
			VehicleType: step.Vehicle,
		})
		if err != nil {
			return err
		}
		if step.Ref != "" {
			refs[step.Ref] = res.ID()
		}
		describe(result, res)
		return nil
	}

	id, ok := refs[step.Ref]
	if !ok {
		return errs.Wrapf(ErrUsage, "step %s: unknown ref %q", step.Op, step.Ref)
	}

	switch step.Op {
	case "enter":
		if _, err := uc.Enter(ctx, id); err != nil {
			return err
		}
		result.ReservationID = &id
		result.Status = reservation.StatusEntered.String()
	case "exit":
		exit, err := uc.Exit(ctx, id)
		if err != nil {
			return err
		}
		result.ReservationID = &id
		result.Status = reservation.StatusCompleted.String()
		result.Bill = newBillOutput(exit.Billing)
	case "cancel":
		res, err := uc.Cancel(ctx, id)
		if err != nil {
			return err
		}
		describe(result, res)
	default:
		return errs.Wrapf(ErrUsage, "unknown step op %q", step.Op)
	}
	return nil
}

func describe(out *StepOutput, res *reservation.Reservation) {
	id := res.ID()
	out.ReservationID = &id
	out.Status = res.Status().String()
	out.Amount = res.Amount().StringFixed(2)
	out.Subscription = res.SubscriptionID()
}

func seed(store *memory.Store, script Script) error {
	for _, sp := range script.Parkings {
		hours := parking.AlwaysOpen()
		if sp.Open != "" || sp.Close != "" {
			open, err := schedule.ParseTimeOfDay(sp.Open)
			if err != nil {
				return errs.Wrapf(ErrUsage, "parking %s open: %v", sp.ID, err)
			}
			closeAt, err := schedule.ParseTimeOfDay(sp.Close)
			if err != nil {
				return errs.Wrapf(ErrUsage, "parking %s close: %v", sp.ID, err)
			}
			hours = parking.OpeningHours{Open: open, Close: closeAt}
		}
		p, err := parking.NewParking(sp.ID, sp.Name, sp.Capacity, sp.HourlyRate, hours)
		if err != nil {
			return err
		}
		store.AddParking(p)
	}

	for _, ss := range script.Subscriptions {
		from, err := schedule.ParseDate(ss.From)
		if err != nil {
			return errs.Wrapf(ErrUsage, "subscription %s from: %v", ss.ID, err)
		}
		to, err := schedule.ParseDate(ss.To)
		if err != nil {
			return errs.Wrapf(ErrUsage, "subscription %s to: %v", ss.ID, err)
		}
		dates, err := schedule.NewDateRange(from, to)
		if err != nil {
			return err
		}
		slots := make([]schedule.WeeklySlot, 0, len(ss.Slots))
		for _, sl := range ss.Slots {
			slot, err := schedule.ParseWeeklySlot(sl.Day, sl.Start, sl.End)
			if err != nil {
				return err
			}
			slots = append(slots, slot)
		}
		store.AddSubscription(schedule.NewSubscription(ss.ID, ss.UserID, ss.ParkingID, dates, slots))
	}
	return nil
}
