package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/occupancy"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const usage = "usage: parkengine [bill|quote|covers|capacity|replay] [flags]"

var ErrUsage = errs.New(usage)

// Runner evaluates the engine offline from command-line flags and writes
// one JSON document per invocation.
type Runner struct {
	calculator *billing.Calculator
	coverage   *schedule.Coverage
	locker     commands.ParkingLocker
	clock      clock.Clock
	logger     *slog.Logger
}

func NewRunner(
	calculator *billing.Calculator,
	coverage *schedule.Coverage,
	locker commands.ParkingLocker,
	clock clock.Clock,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		calculator: calculator,
		coverage:   coverage,
		locker:     locker,
		clock:      clock,
		logger:     logger,
	}
}

// Run executes one subcommand. in feeds "replay -file -".
func (r *Runner) Run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) < 1 {
		return ErrUsage
	}

	var (
		result any
		err    error
	)
	switch args[0] {
	case "bill":
		result, err = r.bill(args[1:])
	case "quote":
		result, err = r.quote(args[1:])
	case "covers":
		result, err = r.covers(args[1:])
	case "capacity":
		result, err = r.capacity(args[1:])
	case "replay":
		result, err = r.replay(ctx, args[1:], in)
	default:
		return errs.Wrapf(ErrUsage, "unknown command %q", args[0])
	}
	if err != nil {
		return err
	}

	r.logger.Debug("command evaluated", "command", args[0])
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type BillOutput struct {
	BilledMinutes   int    `json:"billed_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	BaseAmount      string `json:"base_amount"`
	PenaltyAmount   string `json:"penalty_amount"`
	TotalAmount     string `json:"total_amount"`
}

func (r *Runner) bill(args []string) (*BillOutput, error) {
	fs := flag.NewFlagSet("bill", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	entered := fs.String("entered", "", "entry time (RFC3339)")
	exited := fs.String("exited", "", "exit time (RFC3339)")
	reservedEnd := fs.String("reserved-end", "", "reserved end time (RFC3339)")
	rate := fs.String("rate", "", "hourly rate")
	if err := fs.Parse(args); err != nil {
		return nil, errs.Wrapf(ErrUsage, "bill: %v", err)
	}

	enteredAt, err := parseTime("entered", *entered)
	if err != nil {
		return nil, err
	}
	exitedAt, err := parseTime("exited", *exited)
	if err != nil {
		return nil, err
	}
	endAt, err := parseTime("reserved-end", *reservedEnd)
	if err != nil {
		return nil, err
	}
	hourly, err := parseRate(*rate)
	if err != nil {
		return nil, err
	}

	return newBillOutput(r.calculator.Compute(enteredAt, exitedAt, endAt, hourly)), nil
}

func newBillOutput(res billing.Result) *BillOutput {
	return &BillOutput{
		BilledMinutes:   res.BilledMinutes,
		OvertimeMinutes: res.OvertimeMinutes,
		BaseAmount:      res.BaseAmount.StringFixed(2),
		PenaltyAmount:   res.PenaltyAmount.StringFixed(2),
		TotalAmount:     res.TotalAmount.StringFixed(2),
	}
}

type quoteOutput struct {
	BilledMinutes int    `json:"billed_minutes"`
	Amount        string `json:"amount"`
}

func (r *Runner) quote(args []string) (*quoteOutput, error) {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	start := fs.String("start", "", "start time (RFC3339)")
	end := fs.String("end", "", "end time (RFC3339)")
	rate := fs.String("rate", "", "hourly rate")
	if err := fs.Parse(args); err != nil {
		return nil, errs.Wrapf(ErrUsage, "quote: %v", err)
	}

	iv, err := parseInterval(*start, *end)
	if err != nil {
		return nil, err
	}
	hourly, err := parseRate(*rate)
	if err != nil {
		return nil, err
	}

	return &quoteOutput{
		BilledMinutes: r.calculator.BilledMinutes(iv.Start(), iv.End()),
		Amount:        r.calculator.Quote(iv, hourly).StringFixed(2),
	}, nil
}

type coversOutput struct {
	Covered  bool            `json:"covered"`
	Segments []segmentOutput `json:"segments"`
}

type segmentOutput struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Covered bool   `json:"covered"`
}

// slotList collects repeated -slot "DOW HH:MM HH:MM" flags.
type slotList []schedule.WeeklySlot

func (l *slotList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func (l *slotList) Set(v string) error {
	fields := strings.Fields(v)
	if len(fields) != 3 {
		return fmt.Errorf("slot %q: want \"DOW HH:MM HH:MM\"", v)
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("slot %q: %w", v, err)
	}
	slot, err := schedule.ParseWeeklySlot(day, fields[1], fields[2])
	if err != nil {
		return err
	}
	*l = append(*l, slot)
	return nil
}

func (r *Runner) covers(args []string) (*coversOutput, error) {
	fs := flag.NewFlagSet("covers", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	from := fs.String("from", "", "subscription first day (YYYY-MM-DD)")
	to := fs.String("to", "", "subscription last day (YYYY-MM-DD)")
	start := fs.String("start", "", "requested start (RFC3339)")
	end := fs.String("end", "", "requested end (RFC3339)")
	var slots slotList
	fs.Var(&slots, "slot", "weekly slot \"DOW HH:MM HH:MM\", repeatable")
	if err := fs.Parse(args); err != nil {
		return nil, errs.Wrapf(ErrUsage, "covers: %v", err)
	}

	fromDate, err := schedule.ParseDate(*from)
	if err != nil {
		return nil, errs.Wrapf(ErrUsage, "from: %v", err)
	}
	toDate, err := schedule.ParseDate(*to)
	if err != nil {
		return nil, errs.Wrapf(ErrUsage, "to: %v", err)
	}
	dates, err := schedule.NewDateRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	iv, err := parseInterval(*start, *end)
	if err != nil {
		return nil, err
	}

	sub := schedule.NewSubscription(uuid.Nil, uuid.Nil, uuid.Nil, dates, slots)
	out := &coversOutput{Covered: r.coverage.Covers(sub, iv)}
	for _, seg := range r.coverage.Segments(iv) {
		out.Segments = append(out.Segments, segmentOutput{
			Date:    seg.Date.String(),
			Day:     seg.Day.String(),
			Start:   seg.Start.String(),
			End:     seg.End.String(),
			Covered: dates.Contains(seg.Date) && schedule.SegmentCovered(seg, slots),
		})
	}
	return out, nil
}

type capacityOutput struct {
	Remaining int  `json:"remaining"`
	HasRoom   bool `json:"has_room"`
}

func (r *Runner) capacity(args []string) (*capacityOutput, error) {
	fs := flag.NewFlagSet("capacity", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	capacity := fs.Int("capacity", 0, "parking capacity")
	active := fs.Int("active", 0, "open sessions in the lot")
	unstarted := fs.Int("unstarted", 0, "overlapping reservations without an open session")
	if err := fs.Parse(args); err != nil {
		return nil, errs.Wrapf(ErrUsage, "capacity: %v", err)
	}

	counts := occupancy.Counts{ActiveSessions: *active, OverlappingUnstarted: *unstarted}
	return &capacityOutput{
		Remaining: occupancy.RemainingCapacity(*capacity, counts),
		HasRoom:   occupancy.HasRoom(*capacity, counts),
	}, nil
}

func parseTime(name, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrUsage, "%s: %v", name, err)
	}
	return t, nil
}

func parseInterval(start, end string) (interval.Interval, error) {
	s, err := parseTime("start", start)
	if err != nil {
		return interval.Interval{}, err
	}
	e, err := parseTime("end", end)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(s, e)
}

func parseRate(v string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, errs.Wrapf(ErrUsage, "rate: %v", err)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, errs.Wrapf(ErrUsage, "rate cannot be negative, got %s", rate)
	}
	return rate, nil
}
